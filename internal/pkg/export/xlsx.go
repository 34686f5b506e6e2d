package export

import (
	"fmt"
	"io"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
)

const sheetName = "Asistencia"

var xlsxHeader = []string{
	"Nombre",
	"Documento",
	"Entradas",
	"Salidas",
	"Días Laborables",
	"Días Presentes",
	"Faltó Entrada",
	"Faltó Salida",
	"Tardanzas",
	"Faltas",
	"Puntaje",
	"Detalle Días Faltantes",
	"Último Evento",
}

// WriteXLSX renders the report rows as a single-sheet workbook. Unlike the
// CSV export it carries the full column set, including the derived counts.
func WriteXLSX(w io.Writer, rows []report.Row) error {
	f := excelize.NewFile()
	defer f.Close()

	index, err := f.NewSheet(sheetName)
	if err != nil {
		return fmt.Errorf("failed to create sheet: %w", err)
	}
	f.SetActiveSheet(index)
	if err := f.DeleteSheet("Sheet1"); err != nil {
		return fmt.Errorf("failed to drop default sheet: %w", err)
	}

	for i, h := range xlsxHeader {
		cell, err := excelize.CoordinatesToCellName(i+1, 1)
		if err != nil {
			return err
		}
		if err := f.SetCellValue(sheetName, cell, h); err != nil {
			return err
		}
	}

	for i, row := range rows {
		values := []interface{}{
			row.Name,
			row.DocumentNumber,
			row.TotalEntries,
			row.TotalExits,
			row.WorkingDaysInRange,
			row.DaysPresent,
			row.MissingEntries,
			row.MissingExits,
			row.LateDays,
			row.Absences,
			row.PenaltyScore,
			strings.Join(row.MissingDays, ";"),
			row.LastEventDate,
		}
		for j, v := range values {
			cell, err := excelize.CoordinatesToCellName(j+1, i+2)
			if err != nil {
				return err
			}
			if err := f.SetCellValue(sheetName, cell, v); err != nil {
				return err
			}
		}
	}

	if err := f.Write(w); err != nil {
		return fmt.Errorf("failed to write workbook: %w", err)
	}
	return nil
}
