// Package main implements the lattice command-line interface.
//
// lattice embeds a small, dynamically typed scripting language built around
// a tree-walking evaluator and a protocol-mediated value runtime. The CLI
// exposes three subcommands:
//
//   - lattice eval EXPR    evaluate a single expression and print the result
//   - lattice run FILE     evaluate a script file and print the result
//   - lattice repl         start an interactive read-eval-print loop
//
// Examples:
//
//	lattice eval '1 + 2'
//	lattice run script.lat
//	lattice repl
package main

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/lattice-lang/lattice/internal/value"
	"github.com/lattice-lang/lattice/pkg/eval"
	"github.com/lattice-lang/lattice/pkg/lexer"
	"github.com/lattice-lang/lattice/pkg/parser"
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "lattice",
		Short: "Run and explore Lattice scripts",
	}

	rootCmd.AddCommand(newEvalCmd(), newRunCmd(), newReplCmd())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func newEvalCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eval EXPR",
		Short: "Evaluate a single expression and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return evalSource(cmd, args[0])
		},
	}
}

func newRunCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "run FILE",
		Short: "Evaluate a script file and print the result",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			content, err := os.ReadFile(args[0])
			if err != nil {
				return fmt.Errorf("reading %s: %w", args[0], err)
			}

			return evalSource(cmd, string(content))
		},
	}
}

func evalSource(cmd *cobra.Command, source string) error {
	l := lexer.New(source)
	p := parser.New(l)
	tree, err := p.Parse()
	if err != nil {
		return fmt.Errorf("parse error: %w", err)
	}

	e := eval.New()
	result, err := e.Eval(tree)
	if err != nil {
		return fmt.Errorf("evaluation error: %w", err)
	}

	fmt.Fprintln(cmd.OutOrStdout(), result.String())

	return nil
}

func newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Start an interactive read-eval-print loop",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			runRepl(cmd)

			return nil
		},
	}
}

// runRepl reads expressions from stdin line by line, evaluating each in a
// shared global environment so variable bindings persist across lines.
// The loop continues until EOF or a ":quit"/":q" command.
func runRepl(cmd *cobra.Command) {
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, "lattice repl - type :quit to exit")
	fmt.Fprintln(out)

	scanner := bufio.NewScanner(os.Stdin)
	e := eval.New()
	env := e.NewGlobalEnv()

	for {
		fmt.Fprint(out, "lattice> ")
		if !scanner.Scan() {
			break
		}

		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		if line == ":quit" || line == ":q" {
			break
		}

		if strings.HasPrefix(line, ":") {
			handleReplCommand(out, line)

			continue
		}

		result, err := evalLine(e, env, line)
		if err != nil {
			fmt.Fprintf(out, "error: %v\n", err)

			continue
		}

		fmt.Fprintln(out, result.String())
	}
}

func evalLine(e *eval.Evaluator, env value.Environment, line string) (value.Value, error) {
	l := lexer.New(line)
	p := parser.New(l)
	tree, err := p.Parse()
	if err != nil {
		return nil, fmt.Errorf("parse error: %w", err)
	}

	return e.EvalWithEnv(tree, env)
}

func handleReplCommand(out interface{ Write([]byte) (int, error) }, cmd string) {
	switch cmd {
	case ":help", ":h":
		fmt.Fprintln(out, "Available commands:")
		fmt.Fprintln(out, "  :help, :h    Show this help")
		fmt.Fprintln(out, "  :quit, :q    Exit the REPL")
	default:
		fmt.Fprintf(out, "unknown command: %s\n", cmd)
		fmt.Fprintln(out, "type :help for available commands")
	}
}
