package export_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/homemanager/hmctl/export"
)

func TestEncodeCSVQuotesEveryValue(t *testing.T) {
	got := export.EncodeCSV(
		[]string{"Name", "Status"},
		[][]string{
			{"Alice Smith", "active"},
			{"Bob Jones", "pending"},
		},
	)
	require.Equal(t, "\"Name\",\"Status\"\n\"Alice Smith\",\"active\"\n\"Bob Jones\",\"pending\"", got)
}

func TestEncodeCSVEscapesEmbeddedQuotesAndCommas(t *testing.T) {
	got := export.EncodeCSV(
		[]string{"Name"},
		[][]string{{`Alice "Ace" Smith, Jr.`}},
	)
	require.Equal(t, "\"Name\"\n\"Alice \"\"Ace\"\" Smith, Jr.\"", got)
}

func TestEncodeCSVHeadersOnly(t *testing.T) {
	got := export.EncodeCSV([]string{"Name", "Status"}, nil)
	require.Equal(t, "\"Name\",\"Status\"", got)
}

func TestEncodeCSVEmptyCells(t *testing.T) {
	got := export.EncodeCSV([]string{"Name"}, [][]string{{""}})
	require.Equal(t, "\"Name\"\n\"\"", got)
}

func TestFileName(t *testing.T) {
	require.Equal(t, "rent_payments_export.csv", export.FileName("Rent Payments"))
	require.Equal(t, "maintenance_tickets_export.csv", export.FileName("  Maintenance   Tickets "))
	require.Equal(t, "data_export.csv", export.FileName(""))
}

func TestWriteFile(t *testing.T) {
	dir := t.TempDir()

	path, err := export.WriteFile(dir, "Rent Payments", []string{"Name"}, [][]string{{"Alice"}})
	require.NoError(t, err)
	require.Equal(t, filepath.Join(dir, "rent_payments_export.csv"), path)

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Equal(t, "\"Name\"\n\"Alice\"", string(data))
}

func TestWriteFileCreatesDirectory(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "exports")

	path, err := export.WriteFile(dir, "Tenants", []string{"Name"}, nil)
	require.NoError(t, err)
	require.FileExists(t, path)
}
