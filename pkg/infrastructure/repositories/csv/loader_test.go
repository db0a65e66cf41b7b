package csv

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeTempCSV(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "stock.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_LoadStock(t *testing.T) {
	path := writeTempCSV(t, `state,category,warehouse,date_of_stock
Blue,Keyboard,1,2021-07-26 10:40:00
Red,Mouse,2,2021-03-13 12:02:00
`)

	items, err := NewLoader().LoadStock(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.Equal(t, "Blue Keyboard", items[0].DisplayName())
	assert.Equal(t, "Red Mouse", items[1].DisplayName())
	assert.False(t, items[0].Priced())
}

func TestLoader_LoadStock_WithPrices(t *testing.T) {
	path := writeTempCSV(t, `state,category,warehouse,date_of_stock,unit_price
Blue,Keyboard,1,2021-07-26 10:40:00,29.90
Red,Mouse,2,2021-03-13 12:02:00,
`)

	items, err := NewLoader().LoadStock(path)
	require.NoError(t, err)
	require.Len(t, items, 2)

	assert.True(t, items[0].Priced())
	assert.Equal(t, "29.9", items[0].UnitPrice.String())
	assert.False(t, items[1].Priced(), "empty price column should stay unpriced")
}

func TestLoader_LoadStock_Errors(t *testing.T) {
	testCases := []struct {
		name    string
		content string
		wantErr string
	}{
		{
			name:    "header mismatch",
			content: "foo,bar\nx,y\n",
			wantErr: "header mismatch",
		},
		{
			name:    "missing data rows",
			content: "state,category,warehouse,date_of_stock\n",
			wantErr: "at least one data row",
		},
		{
			name: "malformed date",
			content: `state,category,warehouse,date_of_stock
Blue,Keyboard,1,26/07/2021
`,
			wantErr: "row 2",
		},
		{
			name: "bad price",
			content: `state,category,warehouse,date_of_stock,unit_price
Blue,Keyboard,1,2021-07-26 10:40:00,abc
`,
			wantErr: "unit_price",
		},
		{
			name: "negative price",
			content: `state,category,warehouse,date_of_stock,unit_price
Blue,Keyboard,1,2021-07-26 10:40:00,-5
`,
			wantErr: "negative",
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			path := writeTempCSV(t, tc.content)
			_, err := NewLoader().LoadStock(path)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tc.wantErr)
		})
	}
}

func TestLoader_LoadStock_MissingFile(t *testing.T) {
	_, err := NewLoader().LoadStock(filepath.Join(t.TempDir(), "nope.csv"))
	require.Error(t, err)
}
