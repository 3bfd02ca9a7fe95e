/*
File   : jxc/cmd/jxc/main.go

Package main is the entry point for the jxc command-line tool. It has
three modes of operation:
 1. REPL Mode (default): Interactive Read-Format-Print Loop for trying
    values at the keyboard
 2. File Mode: Reformat a JXC source file from the command line
 3. Server Mode: Accept TCP connections and run a REPL session on each

jxc never evaluates anything -- it lexes, parses, decodes, and
re-serializes. There is no eval package here, only the pipeline.
*/
package main

import (
	"fmt"
	"net"
	"os"

	"github.com/gojxc/jxc/serializer"
)

var VERSION = "v0.1.0"
var AUTHOR = "jxc contributors"
var LICENCE = "MIT"
var PROMPT = "jxc >>> "

var BANNER = `
      _
     (_)_  ___  __
     | \ \/ \ \/ /
     | |>  < >  <
     | /_/\_\_/\_\
    _/ |
   |__/   JSON eXtended Configuration
`

var LINE = "----------------------------------------------------------------"

// main dispatches on argv: --help/--version short-circuit, "server <port>"
// starts a TCP REPL, any other argument is treated as a file to reformat,
// and no arguments starts an interactive REPL on stdin/stdout.
func main() {
	if len(os.Args) > 1 {
		arg := os.Args[1]

		if arg == "--help" || arg == "-h" {
			showHelp()
			os.Exit(0)
		}

		if arg == "--version" || arg == "-v" {
			showVersion()
			os.Exit(0)
		}

		if arg == "server" {
			if len(os.Args) < 3 {
				redColor.Fprintf(os.Stderr, "[USAGE ERROR] Missing port for server mode. Usage: jxc server <port>\n")
				os.Exit(1)
			}
			startServer(os.Args[2])
			return
		}

		compact := false
		dump := false
		fileName := arg
		for _, a := range os.Args[2:] {
			switch a {
			case "--compact":
				compact = true
			case "--dump":
				dump = true
			}
		}
		runFile(fileName, compact, dump)
	} else {
		repler := NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
		repler.Start(os.Stdin, os.Stdout)
	}
}

func showHelp() {
	cyanColor.Println("jxc - a JSON eXtended Configuration formatter")
	cyanColor.Println("")
	cyanColor.Println("USAGE:")
	fmt.Println("  jxc                         Start interactive REPL mode")
	fmt.Println("  jxc <path-to-file>          Reformat a .jxc file to stdout")
	fmt.Println("  jxc <path-to-file> --compact  Reformat with no whitespace")
	fmt.Println("  jxc <path-to-file> --dump     Print the element tree instead")
	fmt.Println("  jxc server <port>           Start REPL server on specified port")
	fmt.Println("  jxc --help                  Display this help message")
	fmt.Println("  jxc --version               Display version information")
	cyanColor.Println("")
	cyanColor.Println("REPL COMMANDS:")
	fmt.Println("  .exit                       Exit the REPL")
	fmt.Println("  .dump                       Toggle element-tree dump mode")
	fmt.Println("  .compact                    Toggle compact output")
}

func showVersion() {
	cyanColor.Println("jxc - a JSON eXtended Configuration formatter")
	cyanColor.Printf("Version: %s\n", VERSION)
	cyanColor.Printf("License: %s\n", LICENCE)
}

// runFile reads fileName, reformats or dumps it, and prints the result to
// stdout. Diagnostics are rendered against the file's own source and sent
// to stderr with a non-zero exit.
func runFile(fileName string, compact bool, dump bool) {
	fileContent, err := os.ReadFile(fileName)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[FILE ERROR] Could not read file '%s': %v\n", fileName, err)
		os.Exit(1)
	}
	source := string(fileContent)

	if dump {
		out, derr := Dump(source)
		if derr != nil {
			redColor.Fprintf(os.Stderr, "%s\n", derr.Render(source))
			os.Exit(1)
		}
		fmt.Print(out)
		return
	}

	settings := serializer.DefaultSettings()
	if compact {
		settings = serializer.CompactSettings()
	}
	out, ferr := Format(source, settings)
	if ferr != nil {
		redColor.Fprintf(os.Stderr, "%s\n", ferr.Render(source))
		os.Exit(1)
	}
	fmt.Print(out)
}

// startServer listens on port and hands each accepted connection its own
// REPL session running concurrently with the others.
func startServer(port string) {
	listener, err := net.Listen("tcp", ":"+port)
	if err != nil {
		redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to start server on port %s: %v\n", port, err)
		os.Exit(1)
	}
	cyanColor.Printf("jxc REPL server listening on :%s\n", port)
	defer listener.Close()

	for {
		conn, err := listener.Accept()
		if err != nil {
			redColor.Fprintf(os.Stderr, "[SERVER ERROR] Failed to accept connection: %v\n", err)
			continue
		}
		go handleClient(conn)
	}
}

func handleClient(conn net.Conn) {
	defer conn.Close()
	cyanColor.Printf("New client connected from %s\n", conn.RemoteAddr())
	repler := NewRepl(BANNER, VERSION, AUTHOR, LINE, LICENCE, PROMPT)
	repler.Start(conn, conn)
	cyanColor.Printf("Client disconnected from %s\n", conn.RemoteAddr())
}
