package export_test

import (
	"bytes"
	"testing"

	"cowork/shared/export"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestXLSX_OneRowPerRecord(t *testing.T) {
	data, err := export.XLSX(export.Table{
		Sheet:   "Enquiries",
		Headers: []string{"Name", "Email", "Seats"},
		Rows: [][]any{
			{"Asha", "asha@example.com", 4},
			{"Ravi", "ravi@example.com", 2},
		},
	})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Enquiries")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	assert.Equal(t, []string{"Name", "Email", "Seats"}, rows[0])
	assert.Equal(t, []string{"Ravi", "ravi@example.com", "2"}, rows[2])
}

func TestXLSX_EmptyTable(t *testing.T) {
	data, err := export.XLSX(export.Table{Headers: []string{"Name"}})
	require.NoError(t, err)

	file, err := excelize.OpenReader(bytes.NewReader(data))
	require.NoError(t, err)
	defer file.Close()

	rows, err := file.GetRows("Sheet1")
	require.NoError(t, err)
	assert.Len(t, rows, 1)
}
