package output

import (
	"encoding/csv"
	"io"

	"github.com/carbocation/pfx"
	"github.com/gocarina/gocsv"
)

// WriteTSV writes a slice of row structs as a tab-delimited table with a
// header line.
func WriteTSV(w io.Writer, rows interface{}) error {
	writer := csv.NewWriter(w)
	writer.Comma = '\t'

	return pfx.Err(gocsv.MarshalCSV(rows, gocsv.NewSafeCSVWriter(writer)))
}

// ReadTSV fills rows, a pointer to a slice of row structs, from a
// tab-delimited table with a header line.
func ReadTSV(r io.Reader, rows interface{}) error {
	reader := csv.NewReader(r)
	reader.Comma = '\t'

	return pfx.Err(gocsv.UnmarshalCSV(reader, rows))
}
