package numio

import (
	"path/filepath"
	"reflect"
	"testing"

	"mathplus/numutil"

	"github.com/airbusgeo/godal"
)

func TestReadRasterBand(t *testing.T) {
	path := setUpRaster(t, nil)

	vals, err := ReadRasterBand(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := numutil.Values{1, 2, 3, 4}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("got %v, want %v", vals, want)
	}
}

func TestReadRasterBandSkipsNoData(t *testing.T) {
	noData := 3.0
	path := setUpRaster(t, &noData)

	vals, err := ReadRasterBand(path, 1)
	if err != nil {
		t.Fatal(err)
	}
	want := numutil.Values{1, 2, 4}
	if !reflect.DeepEqual(vals, want) {
		t.Errorf("got %v, want %v", vals, want)
	}
}

func TestReadRasterBandOutOfRange(t *testing.T) {
	path := setUpRaster(t, nil)
	if _, err := ReadRasterBand(path, 2); err == nil {
		t.Error("expected an error for a missing band")
	}
}

func setUpRaster(t testing.TB, noData *float64) string {
	godal.RegisterAll()
	t.Helper()

	dsFile := filepath.Join(t.TempDir(), "test.tif")
	ds, err := godal.Create(
		godal.GTiff,
		dsFile,
		1,
		godal.Byte,
		2,
		2,
		godal.CreationOption("TILED=YES", "BLOCKXSIZE=16", "BLOCKYSIZE=16"),
	)
	if err != nil {
		t.Fatal(err)
	}
	if err := ds.SetGeoTransform([6]float64{0.0, 1.0, 0.0, 0.0, 0.0, -1.0}); err != nil {
		t.Fatal(err)
	}

	band := ds.Bands()[0]
	if noData != nil {
		if err := band.SetNoData(*noData); err != nil {
			t.Fatal(err)
		}
	}
	if err := band.Write(0, 0, []byte{1, 2, 3, 4}, 2, 2); err != nil {
		t.Fatal(err)
	}
	if err := ds.Close(); err != nil {
		t.Fatal(err)
	}
	return dsFile
}
