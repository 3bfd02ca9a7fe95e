/*
File   : jxc/cmd/jxc/repl.go

Package main's interactive session: readline-backed line editing, colored
feedback, and per-line re-formatting through the lexer/parser/decode/
serializer pipeline instead of an evaluator.
*/
package main

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/gojxc/jxc/serializer"
)

var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl is an interactive jxc session: type a value, see it re-formatted or
// see why it didn't parse.
type Repl struct {
	Banner  string
	Version string
	Author  string
	Line    string
	License string
	Prompt  string

	Settings serializer.Settings
	DumpMode bool
}

// NewRepl creates a Repl ready for Start.
func NewRepl(banner, version, author, line, license, prompt string) *Repl {
	return &Repl{
		Banner:   banner,
		Version:  version,
		Author:   author,
		Line:     line,
		License:  license,
		Prompt:   prompt,
		Settings: serializer.DefaultSettings(),
	}
}

// PrintBannerInfo prints the startup banner and usage hints.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version+" | Author: "+r.Author+" | License: "+r.License)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Welcome to jxc!")
	cyanColor.Fprintf(writer, "%s\n", "Type a JXC value and press enter to see it re-formatted")
	cyanColor.Fprintf(writer, "%s\n", "Type '.dump' to toggle element-tree dump mode")
	cyanColor.Fprintf(writer, "%s\n", "Type '.compact' to toggle compact output")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start runs the main read-format-print loop until the user exits.
func (r *Repl) Start(reader io.Reader, writer io.Writer) {
	r.PrintBannerInfo(writer)

	rl, err := readline.New(r.Prompt)
	if err != nil {
		panic(err)
	}
	defer rl.Close()

	for {
		line, err := rl.Readline()
		if err != nil {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")
		if line == "" {
			continue
		}

		switch line {
		case ".exit":
			writer.Write([]byte("Good Bye!\n"))
			return
		case ".dump":
			r.DumpMode = !r.DumpMode
			cyanColor.Fprintf(writer, "dump mode: %v\n", r.DumpMode)
			continue
		case ".compact":
			if r.Settings.PrettyPrint {
				r.Settings = serializer.CompactSettings()
			} else {
				r.Settings = serializer.DefaultSettings()
			}
			cyanColor.Fprintf(writer, "pretty print: %v\n", r.Settings.PrettyPrint)
			continue
		}

		rl.SaveHistory(line)
		r.executeWithRecovery(writer, line)
	}
}

// executeWithRecovery formats (or dumps) one line of input, recovering
// from any panic so a single bad line never kills the session.
func (r *Repl) executeWithRecovery(writer io.Writer, line string) {
	defer func() {
		if recovered := recover(); recovered != nil {
			redColor.Fprintf(writer, "[INTERNAL ERROR] %v\n", recovered)
		}
	}()

	if r.DumpMode {
		out, err := Dump(line)
		if err != nil {
			redColor.Fprintf(writer, "%s\n", err.Render(line))
			return
		}
		yellowColor.Fprint(writer, out)
		return
	}

	out, err := Format(line, r.Settings)
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Render(line))
		return
	}
	yellowColor.Fprintf(writer, "%s\n", out)
}
