package main

import (
	"fmt"
	"strings"

	"github.com/gophersatwork/abacus"
	"github.com/gophersatwork/abacus/internal/arith"
	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

// evalCmd evaluates an expression in evaluator syntax
var evalCmd = &cobra.Command{
	Use:   "eval EXPRESSION",
	Short: "Evaluate an arithmetic expression",
	Long: `Evaluates an infix expression with + - * /, parentheses, pow(x, n) and
sqrt(x), and prints it formatted the way the calculator displays numbers.`,
	Example: `  abacus eval "2 + 3 * 4"
  abacus eval "sqrt(pow(3, 2) + pow(4, 2))"`,
	Args: cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		expr := strings.Join(args, " ")
		v, err := arith.New().Evaluate(expr)
		if err != nil {
			logger.Debug("evaluation failed", zap.String("expr", expr), zap.Error(err))
			return err
		}
		text, err := abacus.FormatNumber(v)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), text)
		return nil
	},
}
