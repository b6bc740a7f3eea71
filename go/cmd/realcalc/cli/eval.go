/*
Copyright 2024 The Lazyreal Authors.

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package cli

import (
	"fmt"
	"os"
	"strconv"

	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/lazyreal/lazyreal/go/real"
	"github.com/lazyreal/lazyreal/go/real/exact"
)

// Eval returns the eval subcommand.
func Eval() *cobra.Command {
	return &cobra.Command{
		Use:   "eval <expression>",
		Short: "Evaluate an expression to an enclosing interval.",
		Long: "Evaluate an expression to an enclosing interval.\n\n" +
			"Supported syntax: decimal literals, rat(p,q) rational literals, the\n" +
			"operators + - * / ^, parentheses, and the functions exp, log, sin, cos,\n" +
			"tan, cot, sec, csc.",
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cmd.SilenceUsage = true
			return runEval(cmd, args[0])
		},
	}
}

func runEval(cmd *cobra.Command, input string) error {
	r, err := parseExpression(input)
	if err != nil {
		return err
	}
	r.SetMaxPrecision(maxPrecision)

	if trace {
		return runTrace(cmd, r)
	}
	iv, err := r.Eval(digits)
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), iv)
	return nil
}

// runTrace prints every refinement step until the target width or the
// precision bound is reached.
func runTrace(cmd *cobra.Command, r real.Real) error {
	it, err := r.Begin()
	if err != nil {
		return err
	}
	target := exact.Ulp(digits)

	table := tablewriter.NewWriter(cmd.OutOrStdout())
	table.Header("step", "precision", "lower", "upper", "width")

	step := 1
	appendRow := func() {
		iv := it.Interval()
		if err := table.Append([]string{
			strconv.Itoa(step),
			strconv.Itoa(it.Precision()),
			iv.Lower.String(),
			iv.Upper.String(),
			iv.Width().String(),
		}); err != nil {
			fmt.Fprintln(os.Stderr, err)
		}
	}
	appendRow()
	for exact.Cmp(it.Interval().Width(), target) > 0 && it.Precision() < it.MaxPrecision() {
		if err := it.Increment(); err != nil {
			_ = table.Render()
			return err
		}
		step++
		appendRow()
	}
	return table.Render()
}
