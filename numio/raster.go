package numio

import (
	"errors"
	"fmt"

	"mathplus/numutil"

	"github.com/airbusgeo/godal"
	"github.com/sirupsen/logrus"
)

// ReadRasterBand returns the pixel values of a raster band, band numbers
// starting at 1. Pixels equal to the band's nodata value are dropped.
func ReadRasterBand(path string, bandNum int) (vals numutil.Values, err error) {
	godal.RegisterAll()

	ds, err := godal.Open(path)
	if err != nil {
		return nil, err
	}
	defer func() {
		err = errors.Join(err, ds.Close())
	}()

	bands := ds.Bands()
	if bandNum < 1 || bandNum > len(bands) {
		return nil, fmt.Errorf("%s has %d bands, no band %d", path, len(bands), bandNum)
	}
	band := bands[bandNum-1]

	noData, hasNoData := band.NoData()
	if !hasNoData {
		logrus.Debug("NoData not set")
	}

	firstBlock := band.Structure().FirstBlock()
	for block, ok := firstBlock, true; ok; block, ok = block.Next() {
		logrus.Debugf("Reading block at [%v, %v]", block.X0, block.Y0)
		blockBuf := make([]float64, block.W*block.H)
		if err := band.Read(block.X0, block.Y0, blockBuf, block.W, block.H); err != nil {
			return nil, err
		}
		for _, value := range blockBuf {
			if hasNoData && value == noData {
				continue
			}
			vals = append(vals, value)
		}
	}
	logrus.Infof("Read %d values from band %d of %s", len(vals), bandNum, path)
	return numutil.Nums(vals...), nil
}
