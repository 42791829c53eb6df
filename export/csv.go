// Package export turns derived table data into CSV files on disk.
package export

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/homemanager/hmctl/internal/errors"
)

// EncodeCSV renders one header row plus one row per record. Every value
// is wrapped in double quotes, with embedded quotes doubled. Rows are
// joined with \n.
func EncodeCSV(headers []string, rows [][]string) string {
	var b strings.Builder
	writeRow(&b, headers)
	for _, row := range rows {
		b.WriteByte('\n')
		writeRow(&b, row)
	}
	return b.String()
}

func writeRow(b *strings.Builder, cells []string) {
	for i, cell := range cells {
		if i > 0 {
			b.WriteByte(',')
		}
		b.WriteByte('"')
		b.WriteString(strings.ReplaceAll(cell, `"`, `""`))
		b.WriteByte('"')
	}
}

// FileName derives the download file name from a view title:
// lowercased, spaces collapsed to underscores, with an _export.csv
// suffix.
func FileName(title string) string {
	name := strings.ToLower(strings.TrimSpace(title))
	name = strings.Join(strings.Fields(name), "_")
	if name == "" {
		name = "data"
	}
	return name + "_export.csv"
}

// WriteFile writes the CSV for a view into dir and returns the full
// path of the created file.
func WriteFile(dir, title string, headers []string, rows [][]string) (string, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", errors.Wrapf(err, "[export.WriteFile] mkdir %s", dir)
	}
	path := filepath.Join(dir, FileName(title))
	if err := os.WriteFile(path, []byte(EncodeCSV(headers, rows)), 0o644); err != nil {
		return "", errors.Wrapf(err, "[export.WriteFile] write %s", path)
	}
	return path, nil
}
