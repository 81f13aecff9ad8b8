package loader

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeWorkbook(t *testing.T, rows [][]any) string {
	t.Helper()

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	for i, row := range rows {
		cell, err := excelize.CoordinatesToCellName(1, i+1)
		require.NoError(t, err)
		require.NoError(t, f.SetSheetRow(sheet, cell, &row))
	}

	path := filepath.Join(t.TempDir(), "input.xlsx")
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())
	return path
}

func TestReadXLSX(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"asin", "product_name", "price"},
		{"B001", "Lace Front Wig", 49.99},
		{"B002", "HD Closure", 29.5},
	})

	table, err := ReadXLSX(path, "amazon_sales")
	require.NoError(t, err)

	assert.Equal(t, "amazon_sales", table.Name)
	assert.Equal(t, []string{"asin", "product_name", "price"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "B001", table.Rows[0][0])
}

func TestReadXLSXSkipsLeadingBlankRows(t *testing.T) {
	path := writeWorkbook(t, [][]any{
		{"", "", ""},
		{"asin", "price"},
		{"B001", "10"},
	})

	table, err := ReadXLSX(path, "amazon_sales")
	require.NoError(t, err)

	assert.Equal(t, []string{"asin", "price"}, table.Headers)
	require.Len(t, table.Rows, 1)
}

func TestReadXLSXEmptyWorkbook(t *testing.T) {
	path := writeWorkbook(t, nil)

	_, err := ReadXLSX(path, "amazon_sales")
	assert.Error(t, err)
}

func TestReadCSV(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	content := "comment_text,likes\ngreat quality wig,120\n,\nworth every penny,45\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := ReadCSV(path, "tiktok_comments")
	require.NoError(t, err)

	assert.Equal(t, []string{"comment_text", "likes"}, table.Headers)
	require.Len(t, table.Rows, 2)
	assert.Equal(t, "worth every penny", table.Rows[1][0])
}

func TestReadCSVRaggedRows(t *testing.T) {
	path := filepath.Join(t.TempDir(), "comments.csv")
	content := "comment_text,likes,posted_at\nshort row,3\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	table, err := ReadCSV(path, "tiktok_comments")
	require.NoError(t, err)
	require.Len(t, table.Rows, 1)
	assert.Len(t, table.Rows[0], 2)
}

func TestReadDispatchesOnExtension(t *testing.T) {
	csvPath := filepath.Join(t.TempDir(), "data.csv")
	require.NoError(t, os.WriteFile(csvPath, []byte("a,b\n1,2\n"), 0o644))

	table, err := Read(csvPath, "reviews")
	require.NoError(t, err)
	assert.Equal(t, "reviews", table.Name)

	_, err = Read(filepath.Join(t.TempDir(), "data.parquet"), "reviews")
	assert.Error(t, err)
}

func TestReadMissingFile(t *testing.T) {
	_, err := Read(filepath.Join(t.TempDir(), "absent.xlsx"), "sales")
	assert.Error(t, err)
}
