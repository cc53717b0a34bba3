// Copyright (c) 2026, Cogent Core. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package cli

import (
	"bufio"
	"fmt"
	"io"
	"strings"

	"cogentcore.org/colorcalc/colors"
	"github.com/mattn/go-shellwords"
)

// Prompter asks the user for a color model and its channel values,
// one line at a time, asking again until each answer is valid.
type Prompter struct {
	scanner *bufio.Scanner
	out     io.Writer
}

// NewPrompter returns a new [Prompter] that reads answers from r
// and writes prompts to w.
func NewPrompter(r io.Reader, w io.Writer) *Prompter {
	return &Prompter{scanner: bufio.NewScanner(r), out: w}
}

// line prints the prompt and returns the next line of input.
// It returns [io.ErrUnexpectedEOF] when the input ends.
func (p *Prompter) line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.scanner.Scan() {
		if err := p.scanner.Err(); err != nil {
			return "", err
		}
		fmt.Fprintln(p.out)
		return "", io.ErrUnexpectedEOF
	}
	return p.scanner.Text(), nil
}

// Input asks for a color model and then for each of its channels.
// A complete answer such as "rgb 0.5 0.2 0.1" to the model prompt
// is also accepted.
func (p *Prompter) Input() (Input, error) {
	names := make([]string, 0, 4)
	for _, m := range colors.ModelRGB.Values() {
		names = append(names, fmt.Sprintf("%d - %v", int(m)+1, m))
	}
	prompt := "Please, select input color model (" + strings.Join(names, ", ") + "): "
	for {
		s, err := p.line(prompt)
		if err != nil {
			return Input{}, err
		}
		args, err := shellwords.Parse(s)
		if err == nil && len(args) == 4 {
			in, err := ParseArgs(args)
			if err == nil {
				return in, nil
			}
			fmt.Fprintln(p.out, err)
			continue
		}
		m, err := ParseModel(s)
		if err != nil {
			fmt.Fprintf(p.out, "Please enter a valid integer (1 to %d) or model name\n", len(names))
			continue
		}
		in := Input{Model: m}
		in.Channels, err = p.Channels(m)
		return in, err
	}
}

// Channels asks for each of the three channels of the given model.
func (p *Prompter) Channels(m colors.Model) ([3]float64, error) {
	var chs [3]float64
	for i, name := range m.Channels() {
		rg := m.Ranges()[i]
		label := name + " value"
		if name == "value" {
			label = name
		}
		prompt := fmt.Sprintf("Please, enter %s (%v): ", label, rg)
		for {
			s, err := p.line(prompt)
			if err != nil {
				return chs, err
			}
			v, err := ParseChannel(m, i, s)
			if err != nil {
				fmt.Fprintf(p.out, "Please enter a valid number (%v)\n", rg)
				continue
			}
			chs[i] = v
			break
		}
	}
	return chs, nil
}
