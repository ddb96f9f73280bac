package render

import (
	"fmt"
	"io"

	"github.com/cmlabs-hris/timetracker-backend-go/internal/domain/invoice"
	"github.com/xuri/excelize/v2"
)

// SheetName is the only sheet of the invoice workbook.
const SheetName = "Invoice"

const (
	headerRow    = 14
	firstItemRow = headerRow + 1
)

var columns = []string{"Date", "Arrival", "Departure", "Hours", "Pay Rate", "Amount"}

// XLSXContentType is the media type of the workbook.
const XLSXContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

type sheetWriter struct {
	f   *excelize.File
	err error
}

func (s *sheetWriter) set(cell string, value interface{}) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellValue(SheetName, cell, value)
}

func (s *sheetWriter) float(cell string, value float64) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellFloat(SheetName, cell, value, 2, 64)
}

func (s *sheetWriter) style(from, to string, id int) {
	if s.err != nil {
		return
	}
	s.err = s.f.SetCellStyle(SheetName, from, to, id)
}

// WriteXLSX writes the invoice workbook to w.
func WriteXLSX(w io.Writer, inv invoice.Invoice) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", SheetName); err != nil {
		return fmt.Errorf("rename sheet: %w", err)
	}

	title, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 20}})
	if err != nil {
		return err
	}
	bold, err := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}
	header, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{Bold: true},
		Fill: excelize.Fill{Type: "pattern", Color: []string{"D3D3D3"}, Pattern: 1},
	})
	if err != nil {
		return err
	}
	money, err := f.NewStyle(&excelize.Style{NumFmt: 2})
	if err != nil {
		return err
	}
	boldMoney, err := f.NewStyle(&excelize.Style{NumFmt: 2, Font: &excelize.Font{Bold: true}})
	if err != nil {
		return err
	}

	s := &sheetWriter{f: f}

	s.set("A1", "INVOICE")
	s.style("A1", "A1", title)

	from := inv.From
	s.set("A3", "From:")
	s.style("A3", "A3", bold)
	s.set("B3", from.DisplayName())
	s.set("B4", from.Address)
	s.set("B5", CityStateZip(from.City, from.State, from.Zip))
	s.set("B6", from.Phone)
	s.set("B7", from.Email)

	to := inv.BillTo
	s.set("D3", "Bill To:")
	s.style("D3", "D3", bold)
	s.set("E3", to.FacilityName)
	s.set("E4", to.ContactName)
	s.set("E5", to.Address)
	s.set("E6", CityStateZip(to.City, to.State, to.Zip))
	s.set("E7", to.ContactPhone)
	s.set("E8", to.ContactEmail)

	s.set("A10", "Invoice Date:")
	s.set("B10", inv.IssuedOn.String())
	s.set("A11", "Period:")
	s.set("B11", fmt.Sprintf("%s to %s", inv.Start, inv.End))

	for i, name := range columns {
		cell, _ := excelize.CoordinatesToCellName(i+1, headerRow)
		s.set(cell, name)
	}
	s.style(fmt.Sprintf("A%d", headerRow), fmt.Sprintf("F%d", headerRow), header)

	row := firstItemRow
	for _, item := range inv.Items {
		s.set(fmt.Sprintf("A%d", row), item.Date.String())
		s.set(fmt.Sprintf("B%d", row), item.Arrival)
		s.set(fmt.Sprintf("C%d", row), item.Departure)
		s.float(fmt.Sprintf("D%d", row), item.Hours)
		s.set(fmt.Sprintf("E%d", row), "$"+item.Rate.StringFixed(2))
		s.float(fmt.Sprintf("F%d", row), item.Amount.Round(2).InexactFloat64())
		s.style(fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), money)
		if item.Anomaly {
			s.set(fmt.Sprintf("G%d", row), "Check times")
		}
		row++
	}

	row++
	s.set(fmt.Sprintf("E%d", row), "TOTAL:")
	s.style(fmt.Sprintf("E%d", row), fmt.Sprintf("E%d", row), bold)
	s.float(fmt.Sprintf("F%d", row), inv.Total.Round(2).InexactFloat64())
	s.style(fmt.Sprintf("F%d", row), fmt.Sprintf("F%d", row), boldMoney)

	if len(inv.Notes) > 0 {
		row += 2
		s.set(fmt.Sprintf("A%d", row), "Notes:")
		s.style(fmt.Sprintf("A%d", row), fmt.Sprintf("A%d", row), bold)
		for _, note := range inv.Notes {
			row++
			s.set(fmt.Sprintf("A%d", row), note)
		}
	}

	if s.err == nil {
		s.err = f.SetColWidth(SheetName, "A", "G", 16)
	}
	if s.err != nil {
		return fmt.Errorf("build invoice sheet: %w", s.err)
	}

	return f.Write(w)
}
