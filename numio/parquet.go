package numio

import (
	"errors"
	"os"

	"github.com/parquet-go/parquet-go"
	"github.com/sirupsen/logrus"
)

func WriteToParquet(rows []Row, path string) (err error) {
	output, err := os.Create(path)
	if err != nil {
		return err
	}

	schema := parquet.SchemaOf(new(Row))
	writer := parquet.NewGenericWriter[Row](output, schema, parquet.Compression(&parquet.Snappy))
	defer func() {
		err = errors.Join(err, writer.Close(), output.Close())
	}()

	logrus.Infof("Writing %d rows to %s", len(rows), path)
	if _, err := writer.Write(rows); err != nil {
		return err
	}
	return nil
}

func ReadParquet(path string) ([]Row, error) {
	return parquet.ReadFile[Row](path)
}
