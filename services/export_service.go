package services

import (
	"fmt"

	"github.com/xuri/excelize/v2"
)

// exportHeader is the fixed 11-column layout of the monthly report.
var exportHeader = []interface{}{
	"Date", "Tour Option", "Hotel", "Room", "Customer", "Contact",
	"PAX", "Tour Amount", "Paid Amount", "Payment Status", "Payment Method",
}

type ExportService struct {
	Reservations *ReservationService
}

func NewExportService(rs *ReservationService) *ExportService {
	return &ExportService{Reservations: rs}
}

// ExportMonth builds the spreadsheet for one calendar month: a single sheet
// named YYYY-MM with the header row plus one row per reservation, in the
// same order as the dashboard listing. A month without reservations still
// yields a valid workbook with just the header.
func (es *ExportService) ExportMonth(year, month int) (*excelize.File, error) {
	reservations, err := es.Reservations.MonthReservations(year, month)
	if err != nil {
		return nil, err
	}

	f := excelize.NewFile()
	sheet := fmt.Sprintf("%d-%02d", year, month)
	f.SetSheetName("Sheet1", sheet)

	if err := f.SetSheetRow(sheet, "A1", &exportHeader); err != nil {
		return nil, err
	}

	for i, r := range reservations {
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return nil, err
		}
		row := []interface{}{
			r.Date.Format("2006-01-02"),
			r.TourOption,
			r.Hotel,
			r.RoomNumber,
			r.CustomerName,
			r.Contact,
			cellInt(r.Pax),
			cellFloat(r.Amount),
			cellFloat(r.PaidAmount),
			r.PaymentStatus,
			r.PaymentMethod,
		}
		if err := f.SetSheetRow(sheet, cell, &row); err != nil {
			return nil, err
		}
	}
	return f, nil
}

// cellInt unwraps an optional integer; nil becomes an empty cell.
func cellInt(v *int) interface{} {
	if v == nil {
		return nil
	}
	return *v
}

func cellFloat(v *float64) interface{} {
	if v == nil {
		return nil
	}
	return *v
}
