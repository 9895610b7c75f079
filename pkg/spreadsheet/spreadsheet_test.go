package spreadsheet

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func xlsxBytes(t *testing.T, rows [][]interface{}) []byte {
	t.Helper()

	f := excelize.NewFile()
	defer f.Close()
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow("Sheet1", cell, &row))
	}

	var buf bytes.Buffer
	require.NoError(t, f.Write(&buf))
	return buf.Bytes()
}

func TestFormatOf(t *testing.T) {
	cases := map[string]Format{
		"roster.csv":  FormatCSV,
		"ROSTER.XLSX": FormatXLSX,
		"old.xls":     FormatXLS,
	}
	for name, want := range cases {
		got, err := FormatOf(name)
		require.NoError(t, err, name)
		assert.Equal(t, want, got, name)
	}

	_, err := FormatOf("roster.pdf")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
	_, err = FormatOf("roster")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)
}

func TestParseCSV(t *testing.T) {
	content := []byte("Name, Family Name\nJane,Doe\n,\nJohn,Smith\n")

	table, err := Parse("roster.csv", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"name", "family name"}, table.Header)
	require.Len(t, table.Rows, 3)
	assert.Equal(t, "Jane", Cell(table.Rows[0], table.Index("name")))
	assert.Equal(t, "Doe", Cell(table.Rows[0], table.Index("family name")))
	assert.True(t, IsBlank(table.Rows[1]))
	assert.Equal(t, "Smith", Cell(table.Rows[2], 1))
}

func TestParseCSVSemicolonAndBOM(t *testing.T) {
	content := append([]byte{0xEF, 0xBB, 0xBF}, []byte("fname;name\nDoe;Jane\n")...)

	table, err := Parse("export.csv", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"fname", "name"}, table.Header)
	assert.Equal(t, 0, table.Index("family name", "fname"))
	assert.Equal(t, "Jane", Cell(table.Rows[0], table.Index("name")))
}

func TestParseCSVRaggedRows(t *testing.T) {
	table, err := Parse("roster.csv", []byte("name,family name\nJane\n"))
	require.NoError(t, err)

	require.Len(t, table.Rows, 1)
	assert.Equal(t, "Jane", Cell(table.Rows[0], 0))
	assert.Equal(t, "", Cell(table.Rows[0], 1))
}

func TestParseXLSX(t *testing.T) {
	content := xlsxBytes(t, [][]interface{}{
		{"Family Name", "Name"},
		{"Doe", "Jane"},
		{"Smith", "John"},
	})

	table, err := Parse("roster.xlsx", content)
	require.NoError(t, err)

	assert.Equal(t, []string{"family name", "name"}, table.Header)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "John", Cell(table.Rows[1], table.Index("name")))
}

func TestParseRejectsMismatchedContent(t *testing.T) {
	_, err := Parse("roster.xlsx", []byte("name,family name\nJane,Doe\n"))
	assert.ErrorIs(t, err, ErrContentMismatch)

	_, err = Parse("roster.xls", []byte("name,family name\n"))
	assert.ErrorIs(t, err, ErrContentMismatch)

	_, err = Parse("roster.csv", []byte{0x00, 0x01, 0x02, 0xFF, 0xFE})
	assert.ErrorIs(t, err, ErrContentMismatch)
}

func TestParseEmpty(t *testing.T) {
	_, err := Parse("roster.csv", nil)
	assert.ErrorIs(t, err, ErrEmpty)
}

func TestNormalizeHeader(t *testing.T) {
	assert.Equal(t, "family name", NormalizeHeader("  Family   NAME "))
	assert.Equal(t, "", NormalizeHeader("   "))
}

func TestContentType(t *testing.T) {
	assert.Equal(t, "text/csv", FormatCSV.ContentType())
	assert.Equal(t, "application/octet-stream", Format("pdf").ContentType())
}
