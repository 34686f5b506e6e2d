package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/utp-asistencia/asistencia-backend-go/internal/domain/report"
)

func sampleRows() []report.Row {
	return []report.Row{
		{
			Name:               "Ana Soto",
			DocumentNumber:     "11112222",
			TotalEntries:       4,
			TotalExits:         3,
			WorkingDaysInRange: 5,
			DaysPresent:        4,
			MissingEntries:     1,
			MissingExits:       2,
			LateDays:           1,
			Absences:           1,
			PenaltyScore:       7,
			MissingDays:        []string{"2025-11-04", "2025-11-06"},
			LastEventDate:      "2025-11-07 17:00:00",
		},
		{
			Name:        "Jorge, Flores", // comma forces CSV quoting
			MissingDays: []string{},
		},
	}
}

func TestWriteCSV(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}

	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(records) != 3 {
		t.Fatalf("got %d records, want header + 2 rows", len(records))
	}

	for i, want := range CSVHeader {
		if records[0][i] != want {
			t.Errorf("header[%d] = %q, want %q", i, records[0][i], want)
		}
	}

	ana := records[1]
	if ana[0] != "Ana Soto" || ana[1] != "11112222" {
		t.Errorf("row 1 identity = %q %q", ana[0], ana[1])
	}
	if ana[2] != "4" || ana[3] != "3" || ana[4] != "1" || ana[5] != "2" {
		t.Errorf("row 1 counts = %v", ana[2:6])
	}
	if ana[6] != "2" || ana[7] != "2025-11-04;2025-11-06" {
		t.Errorf("row 1 missing days = %q %q", ana[6], ana[7])
	}

	jorge := records[2]
	if jorge[0] != "Jorge, Flores" {
		t.Errorf("quoted name round-trip = %q", jorge[0])
	}
	if jorge[6] != "0" || jorge[7] != "" {
		t.Errorf("empty missing days = %q %q", jorge[6], jorge[7])
	}
}

func TestWriteCSVEmpty(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteCSV(&buf, nil); err != nil {
		t.Fatalf("WriteCSV: %v", err)
	}
	records, err := csv.NewReader(&buf).ReadAll()
	if err != nil {
		t.Fatalf("reading back CSV: %v", err)
	}
	if len(records) != 1 {
		t.Fatalf("got %d records, want header only", len(records))
	}
}

func TestWriteXLSX(t *testing.T) {
	var buf bytes.Buffer
	if err := WriteXLSX(&buf, sampleRows()); err != nil {
		t.Fatalf("WriteXLSX: %v", err)
	}

	f, err := excelize.OpenReader(&buf)
	if err != nil {
		t.Fatalf("reading back workbook: %v", err)
	}
	defer f.Close()

	sheets := f.GetSheetList()
	if len(sheets) != 1 || sheets[0] != "Asistencia" {
		t.Fatalf("sheets = %v, want [Asistencia]", sheets)
	}

	cases := map[string]string{
		"A1": "Nombre",
		"E1": "Días Laborables",
		"A2": "Ana Soto",
		"B2": "11112222",
		"C2": "4",
		"J2": "1",
		"L2": "2025-11-04;2025-11-06",
		"A3": "Jorge, Flores",
	}
	for cell, want := range cases {
		got, err := f.GetCellValue("Asistencia", cell)
		if err != nil {
			t.Fatalf("GetCellValue(%s): %v", cell, err)
		}
		if got != want {
			t.Errorf("cell %s = %q, want %q", cell, got, want)
		}
	}
}
