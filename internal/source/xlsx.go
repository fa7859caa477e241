package source

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/xuri/excelize/v2"
)

const defaultSheet = "Sheet1"

// Header says whether the first row of a worksheet holds series names.
type Header string

const (
	// HeaderAuto takes the first row as names when any cell in it is not a
	// number. A row of numeric names, such as years, reads as samples.
	HeaderAuto Header = "auto"
	HeaderYes  Header = "yes"
	HeaderNo   Header = "no"
)

// Workbook selects what to read from an xlsx file. The zero value reads the
// first sheet with HeaderAuto.
type Workbook struct {
	Sheet  string
	Header Header
}

// loadWorkbook reads one worksheet where every column is a series. Blank
// cells are skipped.
func loadWorkbook(path string, wb Workbook) ([]Series, error) {
	f, err := excelize.OpenFile(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	sheet := wb.Sheet
	if sheet == "" {
		sheets := f.GetSheetList()
		if len(sheets) == 0 {
			return nil, ErrNoData
		}
		sheet = sheets[0]
	}
	rows, err := f.GetRows(sheet)
	if err != nil {
		return nil, fmt.Errorf("reading sheet %q: %w", sheet, err)
	}
	return columns(rows, wb.Header)
}

func columns(rows [][]string, header Header) ([]Series, error) {
	width := 0
	for _, row := range rows {
		width = max(width, len(row))
	}
	if width == 0 {
		return nil, nil
	}

	series := make([]Series, width)
	first := 1
	if hasNames(rows[0], header) {
		for col, name := range rows[0] {
			series[col].Name = strings.TrimSpace(name)
		}
		rows = rows[1:]
		first = 2
	}

	for r, row := range rows {
		for col, cell := range row {
			cell = strings.TrimSpace(cell)
			if cell == "" {
				continue
			}
			v, err := parseSample(cell)
			if err != nil {
				name, _ := excelize.CoordinatesToCellName(col+1, r+first)
				return nil, fmt.Errorf("cell %s: %w", name, err)
			}
			series[col].Samples = append(series[col].Samples, v)
		}
	}
	return series, nil
}

func hasNames(row []string, header Header) bool {
	switch header {
	case HeaderYes:
		return true
	case HeaderNo:
		return false
	}
	for _, cell := range row {
		cell = strings.TrimSpace(cell)
		if cell == "" {
			continue
		}
		if _, err := strconv.ParseFloat(cell, 64); err != nil {
			return true
		}
	}
	return false
}

// parseSample reads a numeric cell, rounding to the nearest integer.
func parseSample(cell string) (int, error) {
	f, err := strconv.ParseFloat(cell, 64)
	if err != nil {
		return 0, fmt.Errorf("not a number: %q", cell)
	}
	v, ok := toSample(f)
	if !ok {
		return 0, fmt.Errorf("out of range: %q", cell)
	}
	return v, nil
}

// saveWorkbook always writes a row of names above the samples, so reading the
// file back with HeaderYes restores every name. Unnamed series are written as
// "series N".
func saveWorkbook(path, sheet string, series []Series) error {
	f := excelize.NewFile()
	defer f.Close()

	if sheet != "" && sheet != defaultSheet {
		if err := f.SetSheetName(defaultSheet, sheet); err != nil {
			return fmt.Errorf("naming sheet: %w", err)
		}
	} else {
		sheet = defaultSheet
	}

	for col, s := range series {
		name := s.Name
		if name == "" {
			name = fmt.Sprintf("series %d", col)
		}
		if err := setCell(f, sheet, col, 0, name); err != nil {
			return err
		}
		for row, v := range s.Samples {
			if err := setCell(f, sheet, col, row+1, v); err != nil {
				return err
			}
		}
	}

	if err := f.SaveAs(path); err != nil {
		return fmt.Errorf("saving %s: %w", path, err)
	}
	return nil
}

func setCell(f *excelize.File, sheet string, col, row int, value any) error {
	cell, err := excelize.CoordinatesToCellName(col+1, row+1)
	if err != nil {
		return err
	}
	return f.SetCellValue(sheet, cell, value)
}
