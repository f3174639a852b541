// Package dataset loads numeric CSV data into frames, from local files or
// over HTTP.
package dataset

import (
	"encoding/csv"
	"fmt"
	"io"
	"os"
	"strconv"

	"github.com/statforge/rescale/internal/frame"
)

// Read decodes a header-first CSV of numeric cells into a frame.
func Read(r io.Reader) (*frame.Frame, error) {
	reader := csv.NewReader(r)
	reader.TrimLeadingSpace = true

	header, err := reader.Read()
	if err != nil {
		return nil, fmt.Errorf("dataset: read header: %w", err)
	}

	f, err := frame.New(header)
	if err != nil {
		return nil, fmt.Errorf("dataset: bad header: %w", err)
	}

	for line := 2; ; line++ {
		record, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}

		row := make([]float64, len(record))
		for i, cell := range record {
			v, err := strconv.ParseFloat(cell, 64)
			if err != nil {
				return nil, fmt.Errorf("dataset: line %d, column %q: parse %q: %w", line, header[i], cell, err)
			}
			row[i] = v
		}

		if err := f.AppendRow(row); err != nil {
			return nil, fmt.Errorf("dataset: line %d: %w", line, err)
		}
	}

	return f, nil
}

// Load reads a CSV file from disk into a frame.
func Load(path string) (*frame.Frame, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("dataset: open %s: %w", path, err)
	}
	defer file.Close()

	return Read(file)
}
