package analysis

import (
	"encoding/csv"
	"encoding/json"
	"fmt"
	"os"

	"github.com/xuri/excelize/v2"

	"mostest/internal/errors"
)

var csvHeader = []string{"test_type", "system", "mean", "ci_lower", "ci_upper", "n_samples"}

// WriteCSV emits the aggregate rows in the standard column order.
func WriteCSV(rows []SystemStat, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return errors.Wrap(errors.StoreError("could not create "+path), err.Error())
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return errors.Wrap(errors.StoreError("could not write csv header"), err.Error())
	}
	for _, row := range rows {
		record := []string{
			string(row.TestType),
			row.System,
			fmt.Sprintf("%.4f", row.Mean),
			fmt.Sprintf("%.4f", row.CILower),
			fmt.Sprintf("%.4f", row.CIUpper),
			fmt.Sprintf("%d", row.N),
		}
		if err := w.Write(record); err != nil {
			return errors.Wrap(errors.StoreError("could not write csv row"), err.Error())
		}
	}
	w.Flush()
	return w.Error()
}

// WriteXLSX emits one worksheet per test type with the same columns as the
// CSV, for sharing with collaborators who live in spreadsheets.
func WriteXLSX(rows []SystemStat, path string) error {
	book := excelize.NewFile()
	defer book.Close()

	sheets := make(map[string]int)
	for _, row := range rows {
		sheet := string(row.TestType)
		if _, ok := sheets[sheet]; !ok {
			idx, err := book.NewSheet(sheet)
			if err != nil {
				return errors.Wrap(errors.StoreError("could not create sheet "+sheet), err.Error())
			}
			book.SetActiveSheet(idx)
			for col, name := range []string{"System", "Mean", "CI lower", "CI upper", "N"} {
				cell, _ := excelize.CoordinatesToCellName(col+1, 1)
				if err := book.SetCellValue(sheet, cell, name); err != nil {
					return errors.Wrap(errors.StoreError("could not write sheet header"), err.Error())
				}
			}
			sheets[sheet] = 1
		}
		sheets[sheet]++
		rowIdx := sheets[sheet]
		values := []interface{}{row.System, row.Mean, row.CILower, row.CIUpper, row.N}
		for col, v := range values {
			cell, _ := excelize.CoordinatesToCellName(col+1, rowIdx)
			if err := book.SetCellValue(sheet, cell, v); err != nil {
				return errors.Wrap(errors.StoreError("could not write sheet row"), err.Error())
			}
		}
	}
	if len(sheets) > 0 {
		// the default sheet is noise once real sheets exist
		book.DeleteSheet("Sheet1")
	}
	if err := book.SaveAs(path); err != nil {
		return errors.Wrap(errors.StoreError("could not save "+path), err.Error())
	}
	return nil
}

// WriteUtteranceJSON emits the per-utterance aggregate file.
func WriteUtteranceJSON(rows []UtteranceStat, path string) error {
	data, err := json.MarshalIndent(rows, "", "  ")
	if err != nil {
		return errors.Wrap(errors.StoreError("could not encode utterance aggregates"), err.Error())
	}
	if err := os.WriteFile(path, data, 0644); err != nil {
		return errors.Wrap(errors.StoreError("could not write "+path), err.Error())
	}
	return nil
}
