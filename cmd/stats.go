package cmd

import (
	"errors"
	"fmt"
	"strings"

	"mathplus/numio"
	"mathplus/numutil"

	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

// statsCmd represents the stats command
var statsCmd = &cobra.Command{
	Use:   "stats [flags] [--] [numbers...]",
	Short: "Summary statistics over a set of numbers",
	Long: `Aggregate numbers given as arguments, read from a CSV column or
	read from a raster band.

	Options:
		--agg:      Comma separated aggregators. Default is all of:
		            mean, median, mode, range, rms, sum, min, max (avg is mean)
		--input:    CSV file to read numbers from, see --column
		--raster:   Raster file (anything GDAL opens) to read numbers from, see --band
		--output:   Write results to a .csv or .parquet file instead of stdout

	Non-numeric cells and arguments after the first are ignored. The first
	argument must be a number. Put negative numbers after --:
	./mathplus stats --agg mean -- -2 4`,
	RunE: func(cmd *cobra.Command, args []string) error {
		vals, err := loadValues(args)
		if err != nil {
			return err
		}

		aggs, err := chooseAggFuncs(viper.GetString("agg"))
		if err != nil {
			return err
		}

		rows := make([]numio.Row, 0, len(aggs))
		for _, name := range aggs {
			rows = append(rows, numio.RowOf(name, numutil.Aggregators[name](vals)))
		}

		if out := viper.GetString("output"); out != "" {
			return numio.WriteRows(rows, out)
		}
		numio.WriteTable(cmd.OutOrStdout(), rows)
		return nil
	},
}

func loadValues(args []string) (numutil.Values, error) {
	input := viper.GetString("input")
	raster := viper.GetString("raster")
	switch {
	case input != "" && raster != "":
		return nil, errors.New("--input and --raster are mutually exclusive")
	case input != "":
		return numio.ReadCSVFile(input, viper.GetInt("column"))
	case raster != "":
		return numio.ReadRasterBand(raster, viper.GetInt("band"))
	}
	if len(args) == 0 {
		return numutil.Nums(), nil
	}
	vals, ok := numutil.FromArgs(parseArgs(args)...)
	if !ok {
		return nil, fmt.Errorf("first argument %q is not a number", args[0])
	}
	return vals, nil
}

func chooseAggFuncs(flag string) ([]string, error) {
	if strings.TrimSpace(flag) == "" || flag == "all" {
		return numutil.AggregatorNames, nil
	}
	var names []string
	for _, name := range strings.Split(flag, ",") {
		name = strings.ToLower(strings.TrimSpace(name))
		if _, ok := numutil.Aggregators[name]; !ok {
			return nil, fmt.Errorf("aggregation function %q not recognized", name)
		}
		names = append(names, name)
	}
	logrus.Debugf("Aggregating with %v", names)
	return names, nil
}

func init() {
	rootCmd.AddCommand(statsCmd)

	statsCmd.Flags().StringP("agg", "a", "all", "Comma separated aggregation functions")
	statsCmd.Flags().StringP("input", "i", "", "CSV file to read numbers from")
	statsCmd.Flags().IntP("column", "c", 0, "CSV column index, starting at 0")
	statsCmd.Flags().String("raster", "", "Raster file to read numbers from")
	statsCmd.Flags().Int("band", 1, "Raster band, starting at 1")
	statsCmd.Flags().StringP("output", "o", "", "Output .csv or .parquet file")
	for _, name := range []string{"agg", "input", "column", "raster", "band", "output"} {
		bindFlag(statsCmd.Flags().Lookup(name))
	}
}
