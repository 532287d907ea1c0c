package csvfile

import (
	"fmt"
	"os"
)

// ReadFile reads a CSV file and returns its data rows with the header
// skipped. A missing or unreadable file surfaces as an error; an empty file
// yields no rows.
func (c Codec) ReadFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: read %s: %w", path, err)
	}
	return c.Decode(string(data)), nil
}

// ReadAllFile reads a CSV file and returns every row, header included.
func (c Codec) ReadAllFile(path string) ([][]string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("csvfile: read %s: %w", path, err)
	}
	return c.DecodeAll(string(data)), nil
}

// ReadHeader reads only the header row of a CSV file. An empty file yields
// an empty header.
func (c Codec) ReadHeader(path string) ([]string, error) {
	rows, err := c.ReadAllFile(path)
	if err != nil {
		return nil, err
	}
	if len(rows) == 0 {
		return nil, nil
	}
	return rows[0], nil
}

// WriteFile writes a header and data rows to path, overwriting any existing
// content. The write is a plain full-file overwrite with no temp-file swap.
func WriteFile(path string, header []string, rows [][]string) error {
	if err := os.WriteFile(path, []byte(Encode(header, rows)), 0o644); err != nil {
		return fmt.Errorf("csvfile: write %s: %w", path, err)
	}
	return nil
}

// AppendRow appends a single row to an existing CSV file without rewriting it.
func AppendRow(path string, row []string) error {
	return AppendRows(path, [][]string{row})
}

// AppendRows appends rows to an existing CSV file without rewriting it.
func AppendRows(path string, rows [][]string) error {
	f, err := os.OpenFile(path, os.O_APPEND|os.O_CREATE|os.O_WRONLY, 0o644)
	if err != nil {
		return fmt.Errorf("csvfile: open %s for append: %w", path, err)
	}
	defer f.Close()

	for _, row := range rows {
		if _, err := f.WriteString(EncodeRow(row) + "\n"); err != nil {
			return fmt.Errorf("csvfile: append to %s: %w", path, err)
		}
	}
	return nil
}
