package cmd

import (
	"errors"
	"fmt"

	"mathplus/numutil"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var randomCmd = &cobra.Command{
	Use:   "random [flags] [--] [min] [max]",
	Short: "Random numbers",
	Long: `Without arguments print a number in [0, 1).
	With --int and two bounds print an integer in [min, max].
	Otherwise one argument m gives [0, m) and two give [min, max).
	Put negative bounds after --:
	./mathplus random --int -- -5 5`,
	Args: cobra.MaximumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		bounds := parseArgs(args)
		count := viper.GetInt("count")
		for i := 0; i < count; i++ {
			if viper.GetBool("int") {
				r := numutil.RandomInt(bounds...)
				if r.IsInvalid() {
					return errors.New("--int takes no arguments or two numeric bounds")
				}
				if _, err := fmt.Fprintln(cmd.OutOrStdout(), r); err != nil {
					return err
				}
				continue
			}

			f, err := numutil.RandomFloat(bounds...)
			if err != nil {
				return err
			}
			if _, err := fmt.Fprintln(cmd.OutOrStdout(), f); err != nil {
				return err
			}
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(randomCmd)

	randomCmd.Flags().Bool("int", false, "Random integer, both bounds included")
	randomCmd.Flags().IntP("count", "n", 1, "How many numbers to print")
	bindFlag(randomCmd.Flags().Lookup("int"))
	bindFlag(randomCmd.Flags().Lookup("count"))
}
