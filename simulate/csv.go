// SPDX-License-Identifier: MIT
// Package: halfsib/simulate
//
// csv.go — table rendering. Printing is the generator's only external I/O.

package simulate

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

const methodWriteCSV = "WriteCSV"

// csvHeader is the stable column order of the rendered table.
var csvHeader = []string{"Sire", "Dam", "Pond", "Sex", "BW"}

// WriteCSV renders the dataset as CSV with a header row, one row per
// individual, ids in decimal and BW in shortest round-trip form.
func (d Dataset) WriteCSV(w io.Writer) error {
	cw := csv.NewWriter(w)
	if err := cw.Write(csvHeader); err != nil {
		return fmt.Errorf("%s: header: %w", methodWriteCSV, err)
	}

	row := make([]string, len(csvHeader))
	for i := range d {
		row[0] = strconv.Itoa(d[i].Sire)
		row[1] = strconv.Itoa(d[i].Dam)
		row[2] = strconv.Itoa(d[i].Pond)
		row[3] = strconv.Itoa(d[i].Sex)
		row[4] = strconv.FormatFloat(d[i].BW, 'g', -1, 64)
		if err := cw.Write(row); err != nil {
			return fmt.Errorf("%s: row %d: %w", methodWriteCSV, i, err)
		}
	}

	cw.Flush()
	if err := cw.Error(); err != nil {
		return fmt.Errorf("%s: flush: %w", methodWriteCSV, err)
	}
	return nil
}
