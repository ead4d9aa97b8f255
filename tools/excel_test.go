package tools

import (
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

type reportFixture struct {
	Name   string  `excel:"Nombre"`
	Total  int     `excel:"Total"`
	Note   *string `excel:"Nota"`
	Hidden string  `excel:"-"`
}

func TestExportToExcel(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	note := "ok"
	data := []reportFixture{
		{Name: "Yoga", Total: 3, Note: &note, Hidden: "x"},
		{Name: "Danza", Total: 1},
	}
	require.NoError(t, ExportToExcel(f, "Reporte", data))

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	require.Len(t, rows, 3)
	require.Equal(t, []string{"Nombre", "Total", "Nota"}, rows[0])
	require.Equal(t, "Yoga", rows[1][0])
	require.Equal(t, "3", rows[1][1])
	require.Equal(t, "ok", rows[1][2])
	require.Equal(t, "Danza", rows[2][0])
}

func TestExportToExcelEmptySliceWritesHeaders(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.NoError(t, ExportToExcel(f, "Reporte", []reportFixture{}))

	rows, err := f.GetRows("Reporte")
	require.NoError(t, err)
	require.Len(t, rows, 1)
	require.Equal(t, []string{"Nombre", "Total", "Nota"}, rows[0])
}

func TestExportToExcelRejectsNonSlice(t *testing.T) {
	f := excelize.NewFile()
	defer f.Close()

	require.Error(t, ExportToExcel(f, "Reporte", "no es un slice"))
}

func TestExcelHeaders(t *testing.T) {
	require.Equal(t, []string{"Nombre", "Total", "Nota"}, ExcelHeaders(reportFixture{}))
	require.Equal(t, []string{"Nombre", "Total", "Nota"}, ExcelHeaders(&reportFixture{}))
}
