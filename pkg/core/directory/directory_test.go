package directory

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]interface{}) string {
	t.Helper()
	f := excelize.NewFile()
	defer f.Close()

	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "fund_returns_urls.xlsx")
	require.NoError(t, f.SaveAs(path))
	return path
}

func TestLoadExcel(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Sr", " Fund Name ", "URL"},
		{1, "  Alpha Flexi Cap Fund ", " https://example.com/alpha "},
		{2, "Beta Small Cap Fund", ""},
		{3, "", "https://example.com/orphan"},
		{4, "Gamma Index Fund", "https://example.com/gamma"},
		{5, "Alpha Flexi Cap Fund", "https://example.com/alpha-v2"},
	})

	d, err := Load(path, "")
	require.NoError(t, err)

	assert.Equal(t, []string{"Alpha Flexi Cap Fund", "Gamma Index Fund"}, d.Names())
	assert.Equal(t, 2, d.Len())

	url, ok := d.Lookup(" Alpha Flexi Cap Fund")
	require.True(t, ok)
	assert.Equal(t, "https://example.com/alpha-v2", url)

	_, ok = d.Lookup("Beta Small Cap Fund")
	assert.False(t, ok)
}

func TestLoadExcel_MissingColumns(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{
		{"Name", "Link"},
		{"Alpha", "https://example.com/alpha"},
	})

	_, err := LoadExcel(path, "")
	assert.ErrorIs(t, err, ErrMissingColumns)
}

func TestLoadExcel_BadSheet(t *testing.T) {
	path := writeWorkbook(t, [][]interface{}{{"Fund Name", "URL"}})
	_, err := LoadExcel(path, "NoSuchSheet")
	assert.Error(t, err)
}

func TestLoadYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "funds.yaml")
	require.NoError(t, os.WriteFile(path, []byte(`funds:
  - name: Alpha Flexi Cap Fund
    url: https://example.com/alpha
  - name: "  "
    url: https://example.com/blank
  - name: Delta Hybrid Fund
    url: " https://example.com/delta "
`), 0644))

	d, err := Load(path, "")
	require.NoError(t, err)
	assert.Equal(t, []string{"Alpha Flexi Cap Fund", "Delta Hybrid Fund"}, d.Names())

	url, _ := d.Lookup("Delta Hybrid Fund")
	assert.Equal(t, "https://example.com/delta", url)
}

func TestLoad_Errors(t *testing.T) {
	_, err := Load("funds.csv", "")
	assert.ErrorIs(t, err, ErrUnsupportedFormat)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"), "")
	assert.Error(t, err)

	bad := filepath.Join(t.TempDir(), "bad.yml")
	require.NoError(t, os.WriteFile(bad, []byte("funds: [unclosed"), 0644))
	_, err = Load(bad, "")
	assert.Error(t, err)
}

func TestResolve(t *testing.T) {
	d := New([]Entry{
		{Name: "Alpha", URL: "https://example.com/a"},
		{Name: "Beta", URL: "https://example.com/b"},
	})

	entries, err := d.Resolve([]string{"Beta", " Alpha "})
	require.NoError(t, err)
	assert.Equal(t, []Entry{
		{Name: "Beta", URL: "https://example.com/b"},
		{Name: "Alpha", URL: "https://example.com/a"},
	}, entries)

	_, err = d.Resolve([]string{"Alpha", "Omega"})
	assert.ErrorIs(t, err, ErrUnknownFund)
}

func TestUnique(t *testing.T) {
	assert.Equal(t, []string{"A", "B"}, Unique([]string{"A", " ", "B", "A ", ""}))
	assert.Empty(t, Unique(nil))
}
