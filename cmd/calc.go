package cmd

import (
	"fmt"

	"mathplus/numutil"

	"github.com/spf13/cobra"
)

type calcFunc struct {
	nargs int
	run   func(xs []float64) numutil.Result
	help  string
}

var calcFuncs = map[string]calcFunc{
	"square": {1, func(xs []float64) numutil.Result { return numutil.Square(xs[0]) }, "x²"},
	"cube":   {1, func(xs []float64) numutil.Result { return numutil.Cube(xs[0]) }, "x³"},
	"bound": {3, func(xs []float64) numutil.Result {
		return numutil.Value(numutil.Bound(xs[0], xs[1], xs[2]))
	}, "clamp val into [lower, upper]: bound lower upper val"},
	"percent-of": {2, func(xs []float64) numutil.Result {
		return numutil.Value(numutil.PercentOfTotal(xs[0], xs[1]))
	}, "x percent of y"},
	"percent-what": {2, func(xs []float64) numutil.Result {
		return numutil.Value(numutil.PercentWhatOf(xs[0], xs[1]))
	}, "x is what percent of y"},
	"percent-change": {2, func(xs []float64) numutil.Result {
		return numutil.Value(numutil.PercentChange(xs[0], xs[1]))
	}, "percent change from x to y"},
}

var calcCmd = &cobra.Command{
	Use:   "calc function args...",
	Short: "Scalar helpers: square, cube, bound, percent-of, percent-what, percent-change",
	Args:  cobra.MinimumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		fn, ok := calcFuncs[args[0]]
		if !ok {
			return fmt.Errorf("unknown function %q", args[0])
		}
		if len(args)-1 != fn.nargs {
			return fmt.Errorf("%s takes %d arguments (%s), got %d", args[0], fn.nargs, fn.help, len(args)-1)
		}
		xs, err := parseFloats(args[1:])
		if err != nil {
			return err
		}
		_, err = fmt.Fprintln(cmd.OutOrStdout(), fn.run(xs))
		return err
	},
}

func init() {
	rootCmd.AddCommand(calcCmd)

	// Negative operands are not flags.
	calcCmd.Flags().SetInterspersed(false)
}
