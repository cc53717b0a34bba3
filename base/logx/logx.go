// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// Package logx provides the user logging level and
// the default slog handler setup used by command line tools.
package logx

import (
	"io"
	"log/slog"
)

// UserLevel is the verbosity [slog.Level] that the user has selected for
// what logging and printing messages should be shown. Messages at
// levels at or above this level will be shown. It should typically
// be set through [SetDefault]. It defaults to [slog.LevelInfo], but
// is [slog.LevelDebug] under the debug build tag and [slog.LevelWarn]
// under the release build tag.
var UserLevel = defaultUserLevel

// LevelFromFlags returns the [slog.Level] object corresponding to the given
// user flag options. The flags are evaluated in the order vv, v, q;
// vv corresponds to [slog.LevelDebug], v to [slog.LevelInfo], and q
// to [slog.LevelError]. If none are set, [UserLevel] is returned.
func LevelFromFlags(vv, v, q bool) slog.Level {
	switch {
	case vv:
		return slog.LevelDebug
	case v:
		return slog.LevelInfo
	case q:
		return slog.LevelError
	default:
		return UserLevel
	}
}

// SetDefault sets [UserLevel] to the given level and installs a text
// handler writing to w at that level as the default [slog.Logger].
func SetDefault(w io.Writer, level slog.Level) {
	UserLevel = level
	h := slog.NewTextHandler(w, &slog.HandlerOptions{Level: level})
	slog.SetDefault(slog.New(h))
}
