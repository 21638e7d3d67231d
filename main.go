// Package main implements the texpr command-line interface.
//
// texpr is a parser for the expression language embedded in the template
// engine. It turns expression text into a typed AST and prints it; it
// performs no evaluation.
//
// The CLI supports five modes of operation:
//   - Expression mode (-e): parse a single expression from the command line
//   - List mode (-l, with -e): parse a comma-separated expression list
//   - Token mode (-t, with -e): dump the token stream instead of the AST
//   - Interactive repl mode (-i)
//   - File mode (positional argument): parse a file as an expression list
//
// Examples:
//
//	texpr -e "1 + 2 * 3"
//	texpr -e "$user.name == 'admin' ? 'yes' : 'no'"
//	texpr -l -e "$a, $b, 42"
//	texpr -t -e "0x1A2B"
//	texpr -i
//	texpr exprs.txt
package main

import (
	"flag"
	"fmt"
	"os"

	"github.com/fatih/color"

	"github.com/texprlang/texpr/lexer"
	"github.com/texprlang/texpr/parser"
	"github.com/texprlang/texpr/repl"
)

const version = "1.0.0"

var (
	yellowColor = color.New(color.FgYellow)
	redColor    = color.New(color.FgRed)
)

// main parses command-line flags and dispatches to the appropriate mode.
func main() {
	var (
		expression  = flag.String("e", "", "Parse expression")
		list        = flag.Bool("l", false, "Treat -e input as an expression list")
		tokens      = flag.Bool("t", false, "Dump the token stream of -e input")
		interactive = flag.Bool("i", false, "Interactive repl mode")
		help        = flag.Bool("h", false, "Show help")
	)
	flag.Parse()

	switch {
	case *help:
		showHelp()
	case *tokens && *expression != "":
		if !dumpTokens(*expression) {
			os.Exit(1)
		}
	case *list && *expression != "":
		if !parseList(*expression) {
			os.Exit(1)
		}
	case *expression != "":
		if !parseExpression(*expression) {
			os.Exit(1)
		}
	case *interactive:
		r := repl.NewRepl("texpr - template expression parser", version,
			"----------------------------------------", "texpr >>> ")
		r.Start(os.Stdin, os.Stdout)
	case flag.NArg() > 0:
		if !parseFile(flag.Arg(0)) {
			os.Exit(1)
		}
	default:
		showHelp()
	}
}

// parseExpression parses one expression and prints its AST.
// Returns false when parsing failed.
func parseExpression(src string) bool {
	par := parser.NewParser(src)
	root, err := par.ParseExpression()
	if err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", err.Error())
		return false
	}
	printRoot(root)
	return true
}

// parseList parses a comma-separated expression list and prints every AST.
func parseList(src string) bool {
	par := parser.NewParser(src)
	roots, err := par.ParseExpressionList()
	if err != nil {
		msg := err.Error()
		if len(par.GetErrors()) > 1 {
			msg = parser.JoinErrors(par.GetErrors())
		}
		redColor.Fprintf(os.Stderr, "%s\n", msg)
		return false
	}
	for _, root := range roots {
		printRoot(root)
	}
	return true
}

// dumpTokens prints the token stream of the input, one token per line
// with its position.
func dumpTokens(src string) bool {
	lex := lexer.NewLexer(src)
	for _, tok := range lex.ConsumeTokens() {
		fmt.Printf("%4d [%d:%d] %-18s %q\n", tok.Offset, tok.Line, tok.Column, tok.Type, tok.Literal)
	}
	if lex.Err != nil {
		redColor.Fprintf(os.Stderr, "%s\n", lex.Err.Error())
		return false
	}
	return true
}

// parseFile reads a file and parses its contents as an expression list.
func parseFile(path string) bool {
	data, err := os.ReadFile(path)
	if err != nil {
		redColor.Fprintf(os.Stderr, "cannot read %s: %v\n", path, err)
		return false
	}
	return parseList(string(data))
}

// printRoot renders one parsed root as an indented tree.
func printRoot(root *parser.ExprRootNode) {
	printer := &parser.PrintingVisitor{}
	root.Accept(printer)
	yellowColor.Printf("%s", printer.String())
}

// showHelp prints usage information.
func showHelp() {
	fmt.Println("texpr - template expression parser")
	fmt.Println()
	fmt.Println("Usage:")
	fmt.Println("  texpr -e <expr>       Parse an expression and print its AST")
	fmt.Println("  texpr -l -e <exprs>   Parse a comma-separated expression list")
	fmt.Println("  texpr -t -e <expr>    Dump the token stream")
	fmt.Println("  texpr -i              Start the interactive repl")
	fmt.Println("  texpr <file>          Parse a file as an expression list")
}
