// Command gocalc evaluates arithmetic expressions from the command line.
//
// One-shot:
//
//	gocalc "2 + 3 * (4 - 1)"
//
// Interactive (no arguments): starts a prompt that evaluates one expression
// per line until Esc or Ctrl+C.
package main

import (
	"fmt"
	"log/slog"
	"os"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/sandrolain/gocalc"
	"github.com/sandrolain/gocalc/pkg/evaluator"
)

var (
	precision int32
	timeout   time.Duration
	verbose   bool
)

var rootCmd = &cobra.Command{
	Use:   "gocalc [expression]",
	Short: "Decimal arithmetic expression calculator",
	Long: `gocalc evaluates arithmetic expressions with exact decimal semantics.

Supported syntax: decimal literals, the binary operators + - * / ^ and
parenthetical grouping. Power binds tightest, then * and /, then + and -;
operators of equal precedence evaluate left to right.

With an expression argument the result is printed and the program exits.
Without arguments an interactive prompt is started.`,
	Args:          cobra.ArbitraryArgs,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if verbose {
			slog.SetDefault(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
				Level: slog.LevelDebug,
			})))
		}

		opts := []evaluator.EvalOption{
			evaluator.WithDivisionPrecision(precision),
			evaluator.WithTimeout(timeout),
			evaluator.WithDebug(verbose),
		}

		if len(args) > 0 {
			result, err := gocalc.Eval(strings.Join(args, " "), opts...)
			if err != nil {
				return err
			}
			fmt.Println(result)
			return nil
		}

		_, err := tea.NewProgram(newReplModel(opts)).Run()
		return err
	},
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "Error:", err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.Flags().Int32Var(&precision, "precision", 16, "Fractional digits kept for non-terminating divisions")
	rootCmd.Flags().DurationVar(&timeout, "timeout", 30*time.Second, "Evaluation timeout")
	rootCmd.Flags().BoolVar(&verbose, "verbose", false, "Enable debug logging")
}
