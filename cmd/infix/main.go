// Package main implements a command-line arithmetic expression evaluator.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/alecthomas/repr"
	"gopkg.in/alecthomas/kingpin.v2"

	"github.com/alecthomas/infix"
	"github.com/alecthomas/infix/lexer"
)

var (
	astFlag    = kingpin.Flag("ast", "Print AST for expression.").Bool()
	tokensFlag = kingpin.Flag("tokens", "Print the token stream and exit.").Bool()
	traceFlag  = kingpin.Flag("trace", "Trace the parse to stderr.").Bool()
	exprArgs   = kingpin.Arg("expression", "Expression to evaluate.").Required().Strings()
)

func main() {
	kingpin.CommandLine.Help = "An arithmetic expression parser and evaluator."
	kingpin.Parse()

	source := strings.Join(*exprArgs, " ")

	if *tokensFlag {
		tok := lexer.New(source)
		for {
			token, err := tok.Next()
			if err != nil {
				fail(source, err)
			}
			fmt.Printf("%s %q\n%s\n", token.Type, token.Value, token.Span.Underline(source))
			if token.EOF() {
				return
			}
		}
	}

	var options []infix.Option
	if *traceFlag {
		options = append(options, infix.Trace(os.Stderr))
	}
	expr, err := infix.Parse(source, options...)
	if err != nil {
		fail(source, err)
	}

	if *astFlag {
		repr.Println(expr)
		return
	}
	fmt.Println(expr)
	value, err := expr.Eval(nil)
	if err != nil {
		fail(source, err)
	}
	fmt.Println(value)
}

func fail(source string, err error) {
	fmt.Println(infix.FormatError(source, err))
	os.Exit(1)
}
