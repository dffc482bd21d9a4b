package reports

import (
	"github.com/tealeg/xlsx/v3"
)

const (
	workbookSheetNameSummary = "Monthly Summary"
)

// Workbook renders a monthly summary as an xlsx file for hand-off to
// billing staff.
type Workbook struct {
	summary MonthlySummary
}

func NewWorkbook(summary MonthlySummary) Workbook {
	return Workbook{summary: summary}
}

func (w Workbook) Generate() (*xlsx.File, error) {
	file := xlsx.NewFile()

	components := []func(file *xlsx.File) error{
		w.addSummarySheet,
	}
	for _, fn := range components {
		if err := fn(file); err != nil {
			return nil, err
		}
	}

	return file, nil
}

func (w Workbook) addSummarySheet(file *xlsx.File) error {
	sh, err := file.AddSheet(workbookSheetNameSummary)
	if err != nil {
		return err
	}

	header := sh.AddRow()
	header.AddCell().SetValue("Month")
	header.AddCell().SetValue(w.summary.Month)

	rows := []struct {
		label string
		value int
	}{
		{"Total Patients", w.summary.TotalPatients},
		{"New Patients", w.summary.NewPatients},
		{"Billed Patients", w.summary.BilledPatients},
		{"Unable To Contact", w.summary.UnableToContact},
		{"Medicaid Issues", w.summary.MedicaidIssues},
	}
	for _, row := range rows {
		r := sh.AddRow()
		r.AddCell().SetValue(row.label)
		r.AddCell().SetValue(row.value)
	}

	return nil
}
