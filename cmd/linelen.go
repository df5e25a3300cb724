package cmd

import (
	"fmt"

	"mathplus/numutil"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var linelenCmd = &cobra.Command{
	Use:   "linelen [flags] [--] x1 y1 x2 y2 [xn yn...]",
	Short: "Length of a polyline",
	Long: `Sum of the distances between consecutive points given as flat
	coordinates. With --spherical the pairs are lat/lng degrees and the
	great-circle length is reported in metres. Put negative coordinates
	after --:
	./mathplus linelen -- -3 0 0 4`,
	Args: cobra.MinimumNArgs(2),
	RunE: func(cmd *cobra.Command, args []string) error {
		coords, err := parseFloats(args)
		if err != nil {
			return err
		}
		if len(coords)%2 != 0 {
			return fmt.Errorf("need an even number of coordinates, got %d", len(coords))
		}

		if viper.GetBool("spherical") {
			latLngs := make([][2]float64, 0, len(coords)/2)
			for i := 0; i < len(coords); i += 2 {
				latLngs = append(latLngs, [2]float64{coords[i], coords[i+1]})
			}
			_, err := fmt.Fprintln(cmd.OutOrStdout(), numutil.SphericalLength(latLngs))
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), numutil.LineLength(numutil.Nums(coords...)))
		return err
	},
}

func init() {
	rootCmd.AddCommand(linelenCmd)

	linelenCmd.Flags().Bool("spherical", false, "Treat coordinates as lat/lng degrees")
	bindFlag(linelenCmd.Flags().Lookup("spherical"))
}
