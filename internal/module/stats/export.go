package stats

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"net/http"
	"time"

	"student-wellness-system/internal/global/response"
	"student-wellness-system/tools"

	"github.com/gin-gonic/gin"
	"github.com/xuri/excelize/v2"
)

const (
	contentTypeXLSX = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"
	contentTypeCSV  = "text/csv; charset=utf-8"
)

// ExportRow mirrors one segmentation bucket in the export files. Both the
// XLSX and the CSV emit exactly these headers, in this order.
type ExportRow struct {
	Period       string `excel:"Periodo"`
	Key          string `excel:"Actividad"`
	Enrolled     int    `excel:"Total de Inscritos"`
	Participants int    `excel:"Total de Participantes"`
	Rate         string `excel:"Tasa de Participación"`
}

func exportRows(groups []GroupRow) []ExportRow {
	rows := make([]ExportRow, 0, len(groups))
	for _, g := range groups {
		period := g.Period
		if period == "" {
			period = "Todos"
		}
		rows = append(rows, ExportRow{
			Period:       period,
			Key:          g.Key,
			Enrolled:     g.EnrolledCount,
			Participants: g.ParticipantCount,
			Rate:         fmt.Sprintf("%.2f", g.ParticipationRate),
		})
	}
	return rows
}

// ExportSegmentation streams the report as XLSX (default) or CSV. Same
// filters, same row set, same header text as the on-screen table; zero
// matching rows still produce a valid header-only file.
func ExportSegmentation(c *gin.Context) {
	var f Filters
	if err := c.ShouldBindQuery(&f); err != nil {
		response.Fail(c, response.ErrInvalidRequest.WithOrigin(err))
		return
	}

	groups, err := BuildSegmentation(f, time.Now())
	if err != nil {
		log.Error("Error al construir la segmentación para exportar", "error", err)
		response.Fail(c, response.ErrDatabase.WithOrigin(err))
		return
	}

	rows := exportRows(groups)

	switch c.Query("format") {
	case "csv":
		writeCSV(c, rows)
	default:
		writeXLSX(c, rows)
	}
}

func writeXLSX(c *gin.Context, rows []ExportRow) {
	f := excelize.NewFile()
	defer f.Close()

	const sheet = "Reporte"
	if err := tools.ExportToExcel(f, sheet, rows); err != nil {
		log.Error("Error al generar el XLSX", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	// drop the default sheet so the report opens on the data
	if idx, err := f.GetSheetIndex(sheet); err == nil {
		f.SetActiveSheet(idx)
	}
	_ = f.DeleteSheet("Sheet1")

	var buf bytes.Buffer
	if err := f.Write(&buf); err != nil {
		log.Error("Error al serializar el XLSX", "error", err)
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte_segmentacion.xlsx"`)
	c.Data(http.StatusOK, contentTypeXLSX, buf.Bytes())
}

func writeCSV(c *gin.Context, rows []ExportRow) {
	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	// header text must match the XLSX export exactly
	if err := w.Write(tools.ExcelHeaders(ExportRow{})); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}
	for _, row := range rows {
		record := []string{
			row.Period,
			row.Key,
			fmt.Sprintf("%d", row.Enrolled),
			fmt.Sprintf("%d", row.Participants),
			row.Rate,
		}
		if err := w.Write(record); err != nil {
			response.Fail(c, response.ErrInternal.WithOrigin(err))
			return
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		response.Fail(c, response.ErrInternal.WithOrigin(err))
		return
	}

	c.Header("Content-Disposition", `attachment; filename="reporte_segmentacion.csv"`)
	c.Data(http.StatusOK, contentTypeCSV, buf.Bytes())
}
