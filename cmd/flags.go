package cmd

import (
	"fmt"
	"strings"

	"mathplus/numutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cast"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
)

func bindFlag(flag *pflag.Flag) {
	if err := viper.BindPFlag(flag.Name, flag); err != nil {
		logrus.Exit(1)
	}
}

// parseArgs turns command line arguments into numbers, keeping non-numeric
// ones as strings so the helpers can reject or filter them.
func parseArgs(args []string) []any {
	out := make([]any, len(args))
	for i, arg := range args {
		if numutil.IsNumber(arg) {
			out[i] = cast.ToFloat64(strings.TrimSpace(arg))
		} else {
			out[i] = arg
		}
	}
	return out
}

func parseFloats(args []string) ([]float64, error) {
	out := make([]float64, len(args))
	for i, arg := range args {
		if !numutil.IsNumber(arg) {
			return nil, fmt.Errorf("%q is not a number", arg)
		}
		out[i] = cast.ToFloat64(strings.TrimSpace(arg))
	}
	return out, nil
}
