/*
Package repl implements the Read-Parse-Print Loop for the template
expression parser. The repl provides an interactive environment where
users can:
- Enter one expression per line
- See the parsed AST immediately, as an indented tree
- Navigate input history using arrow keys
- Receive colored feedback for results and errors

The repl uses the readline library for enhanced line editing and
integrates with the lexer and parser only: expressions are parsed and
printed, never evaluated.
*/
package repl

import (
	"io"
	"strings"

	"github.com/chzyer/readline"
	"github.com/fatih/color"

	"github.com/texprlang/texpr/parser"
)

// Color definitions for repl output:
// - blueColor: Decorative lines and separators
// - yellowColor: Parsed AST output
// - redColor: Error messages
// - greenColor: Banner
// - cyanColor: Informational messages and instructions
var (
	blueColor   = color.New(color.FgBlue)
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
	greenColor  = color.New(color.FgGreen)
	cyanColor   = color.New(color.FgCyan)
)

// Repl represents one interactive session's configuration.
type Repl struct {
	Banner  string // Banner displayed at startup
	Version string // Version string of the parser
	Line    string // Separator line for visual formatting
	Prompt  string // Prompt shown to the user (e.g. "texpr >>> ")
}

// NewRepl creates and initializes a new Repl instance.
func NewRepl(banner string, version string, line string, prompt string) *Repl {
	return &Repl{Banner: banner, Version: version, Line: line, Prompt: prompt}
}

// PrintBannerInfo displays the welcome banner and usage instructions.
func (r *Repl) PrintBannerInfo(writer io.Writer) {
	blueColor.Fprintf(writer, "%s\n", r.Line)
	greenColor.Fprintf(writer, "%s\n", r.Banner)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	yellowColor.Fprintln(writer, "Version: "+r.Version)
	blueColor.Fprintf(writer, "%s\n", r.Line)
	cyanColor.Fprintf(writer, "%s\n", "Type an expression and press enter to see its AST")
	cyanColor.Fprintf(writer, "%s\n", "Type '.exit' to quit")
	cyanColor.Fprintf(writer, "%s\n", "Use up/down arrows to navigate input history")
	blueColor.Fprintf(writer, "%s\n", r.Line)
}

// Start begins the repl main loop:
// 1. Displays the welcome banner
// 2. Sets up readline for line editing and history
// 3. Reads one expression per line, parses it, prints the AST
// 4. Continues until '.exit' or EOF (Ctrl+D)
//
// Errors are printed in red and the loop continues, letting the user
// correct the input and try again.
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
			// EOF or error occurred (e.g., Ctrl+D pressed)
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		line = strings.Trim(line, " \n\t\r")

		if line == "" {
			continue
		}

		if line == ".exit" {
			writer.Write([]byte("Good Bye!\n"))
			break
		}

		// Save the input to history for up/down arrow navigation
		rl.SaveHistory(line)

		r.parseAndPrint(writer, line)
	}
}

// parseAndPrint parses one line as a single expression and prints either
// the AST tree (yellow) or the error (red).
func (r *Repl) parseAndPrint(writer io.Writer, line string) {
	par := parser.NewParser(line)
	root, err := par.ParseExpression()
	if err != nil {
		redColor.Fprintf(writer, "%s\n", err.Error())
		return
	}

	printer := &parser.PrintingVisitor{}
	root.Accept(printer)
	yellowColor.Fprintf(writer, "%s", printer.String())
}
