package export

import (
	"encoding/csv"
	"io"
	"strconv"
	"strings"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
)

// CSVHeader is the fixed column set of the attendance CSV export. Column
// names stay in Spanish because downstream spreadsheets key on them.
var CSVHeader = []string{
	"Nombre",
	"Documento",
	"Entradas",
	"Salidas",
	"Faltó_Entrada",
	"Faltó_Salida",
	"Cant_Días_Faltantes",
	"Detalle_Días_Faltantes",
}

// WriteCSV streams the report rows as CSV. Missing days are packed into a
// single semicolon-separated column so the record count stays fixed.
func WriteCSV(w io.Writer, rows []report.Row) error {
	cw := csv.NewWriter(w)

	if err := cw.Write(CSVHeader); err != nil {
		return err
	}
	for _, row := range rows {
		record := []string{
			row.Name,
			row.DocumentNumber,
			strconv.Itoa(row.TotalEntries),
			strconv.Itoa(row.TotalExits),
			strconv.Itoa(row.MissingEntries),
			strconv.Itoa(row.MissingExits),
			strconv.Itoa(len(row.MissingDays)),
			strings.Join(row.MissingDays, ";"),
		}
		if err := cw.Write(record); err != nil {
			return err
		}
	}

	cw.Flush()
	return cw.Error()
}
