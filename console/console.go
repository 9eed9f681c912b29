package console

/*
BSD 3-Clause License

Copyright (c) 2020–21, Norbert Pillmayer

All rights reserved.

Redistribution and use in source and binary forms, with or without
modification, are permitted provided that the following conditions are met:

1. Redistributions of source code must retain the above copyright notice, this
list of conditions and the following disclaimer.

2. Redistributions in binary form must reproduce the above copyright notice,
this list of conditions and the following disclaimer in the documentation
and/or other materials provided with the distribution.

3. Neither the name of the copyright holder nor the names of its
contributors may be used to endorse or promote products derived from
this software without specific prior written permission.

THIS SOFTWARE IS PROVIDED BY THE COPYRIGHT HOLDERS AND CONTRIBUTORS "AS IS"
AND ANY EXPRESS OR IMPLIED WARRANTIES, INCLUDING, BUT NOT LIMITED TO, THE
IMPLIED WARRANTIES OF MERCHANTABILITY AND FITNESS FOR A PARTICULAR PURPOSE ARE
DISCLAIMED. IN NO EVENT SHALL THE COPYRIGHT HOLDER OR CONTRIBUTORS BE LIABLE
FOR ANY DIRECT, INDIRECT, INCIDENTAL, SPECIAL, EXEMPLARY, OR CONSEQUENTIAL
DAMAGES (INCLUDING, BUT NOT LIMITED TO, PROCUREMENT OF SUBSTITUTE GOODS OR
SERVICES; LOSS OF USE, DATA, OR PROFITS; OR BUSINESS INTERRUPTION) HOWEVER
CAUSED AND ON ANY THEORY OF LIABILITY, WHETHER IN CONTRACT, STRICT LIABILITY,
OR TORT (INCLUDING NEGLIGENCE OR OTHERWISE) ARISING IN ANY WAY OUT OF THE USE
OF THIS SOFTWARE, EVEN IF ADVISED OF THE POSSIBILITY OF SUCH DAMAGE.
*/

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/fatih/color"
	"github.com/npillmayer/ostree"
	"github.com/npillmayer/uax/grapheme"
	"github.com/npillmayer/uax/uax11"
	"golang.org/x/term"
)

// Config holds parameters for printing a tree.
type Config struct {
	LineWidth int  // labels are truncated to fit into this many columns
	Indent    int  // columns per tree level
	Color     bool // print red nodes in red
	ShowSize  bool // append the subtree size to every key
	Context   *uax11.Context
}

const (
	defaultLineWidth = 65
	defaultIndent    = 4
	redMarker        = "*"
	ellipsis         = "…"
)

var setupGraphemes sync.Once

// Print outputs a tree sideways to w.
//
// If parameter config is nil, a heuristic will create a config from the
// current terminal's properties (if stdout is interactive). It is safe to
// have config.Context set to nil. In this case, uax11.LatinContext is used.
func Print[K any](w io.Writer, tree *ostree.Tree[K], config *Config) error {
	if config == nil {
		config = ConfigFromTerminal()
	}
	p := printer{
		w:      w,
		config: *config,
		red:    color.New(color.FgRed, color.Bold),
	}
	if p.config.Indent <= 0 {
		p.config.Indent = defaultIndent
	}
	if p.config.LineWidth <= 0 {
		p.config.LineWidth = defaultLineWidth
	}
	if p.config.Context == nil {
		p.config.Context = uax11.LatinContext
	}
	if p.config.Color {
		p.red.EnableColor()
	}
	root, ok := tree.Root()
	if !ok {
		_, err := io.WriteString(w, "(empty)\n")
		return err
	}
	printNode(&p, root, 0)
	if p.err != nil {
		tracer().Errorf("console: %v", p.err)
	}
	return p.err
}

type printer struct {
	w      io.Writer
	config Config
	red    *color.Color
	err    error
}

func printNode[K any](p *printer, n ostree.Node[K], depth int) {
	if r, ok := n.Right(); ok {
		printNode(p, r, depth+1)
	}
	p.line(depth, label(n, p.config.ShowSize), n.IsRed())
	if l, ok := n.Left(); ok {
		printNode(p, l, depth+1)
	}
}

func label[K any](n ostree.Node[K], showSize bool) string {
	if showSize {
		return fmt.Sprintf("%v #%d", n.Key(), n.Size())
	}
	return fmt.Sprintf("%v", n.Key())
}

func (p *printer) line(depth int, s string, isRed bool) {
	if p.err != nil {
		return
	}
	indent := depth * p.config.Indent
	s = truncate(s, p.config.LineWidth-indent, p.config.Context)
	if _, p.err = io.WriteString(p.w, strings.Repeat(" ", indent)); p.err != nil {
		return
	}
	switch {
	case isRed && p.config.Color:
		_, p.err = p.red.Fprint(p.w, s)
	case isRed:
		_, p.err = io.WriteString(p.w, s+redMarker)
	default:
		_, p.err = io.WriteString(p.w, s)
	}
	if p.err == nil {
		_, p.err = io.WriteString(p.w, "\n")
	}
}

// truncate shortens s to at most width display columns, marking a cut
// with '…'. Widths are measured per UAX#11 within context. At least one
// rune is kept.
func truncate(s string, width int, context *uax11.Context) string {
	if displayWidth(s, context) <= width {
		return s
	}
	r := []rune(s)
	limit := width - displayWidth(ellipsis, context)
	n := 1
	for n < len(r) && displayWidth(string(r[:n+1]), context) <= limit {
		n++
	}
	if n == 1 && displayWidth(string(r[:1]), context) > limit {
		return string(r[:1])
	}
	return string(r[:n]) + ellipsis
}

func displayWidth(s string, context *uax11.Context) int {
	setupGraphemes.Do(grapheme.SetupGraphemeClasses)
	return uax11.StringWidth(grapheme.StringFromString(s), context)
}

// --- Config for terminals --------------------------------------------------

// ConfigFromTerminal is a simple helper for creating a printing Config.
// It checks wether stdout is a terminal, and if so it reads the terminal's width
// and sets the Config.LineWidth parameter accordingly. Colors are switched on
// for terminals unless disabled by the environment (NO_COLOR).
// Config.Context will be created from the user's locale settings.
func ConfigFromTerminal() *Config {
	config := &Config{
		Indent:    defaultIndent,
		LineWidth: defaultLineWidth,
		Context:   uax11.ContextFromEnvironment(),
	}
	fd := int(os.Stdout.Fd())
	if term.IsTerminal(fd) {
		if w, _, err := term.GetSize(fd); err == nil {
			config.LineWidth = max(w-1, 10)
		}
		config.Color = !color.NoColor
	}
	tracer().P("format", "console").Infof("setting line length to %d columns", config.LineWidth)
	return config
}
