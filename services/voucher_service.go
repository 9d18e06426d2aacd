package services

import (
	"bytes"
	"fmt"

	"github.com/go-pdf/fpdf"

	"github.com/danieltravel/reservation-panel/models"
)

// VoucherService renders a printable one-page PDF voucher for a single
// reservation, handed to the customer as booking confirmation.
type VoucherService struct{}

func NewVoucherService() *VoucherService {
	return &VoucherService{}
}

func (vs *VoucherService) Build(r *models.Reservation) (*bytes.Buffer, error) {
	pdf := fpdf.New("P", "mm", "A4", "")
	pdf.SetTitle(fmt.Sprintf("Reservation Voucher #%d", r.ID), false)
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 20)
	pdf.CellFormat(0, 12, "RESERVATION VOUCHER", "", 1, "C", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 7, "DANIEL TRAVEL - Adventure Awaits", "", 1, "C", false, 0, "")
	pdf.Ln(6)
	pdf.SetTextColor(0, 0, 0)

	vs.detail(pdf, "Reservation ID", fmt.Sprintf("#%06d", r.ID))
	vs.detail(pdf, "Customer Name", r.CustomerName)
	if r.Contact != "" {
		vs.detail(pdf, "Contact", r.Contact)
	}
	if r.PassportID != "" {
		vs.detail(pdf, "Passport / ID", r.PassportID)
	}
	vs.detail(pdf, "Booking Date", r.CreatedAt.Format("2006-01-02"))
	vs.detail(pdf, "Tour Option", r.TourOption)
	vs.detail(pdf, "Travel Date", r.Date.Format("2006-01-02"))

	hotel := r.Hotel
	if hotel == "" {
		hotel = "N/A"
	}
	if r.RoomNumber != "" {
		hotel = fmt.Sprintf("%s, Room %s", hotel, r.RoomNumber)
	}
	vs.detail(pdf, "Hotel & Room", hotel)

	if r.Pax != nil {
		vs.detail(pdf, "PAX", fmt.Sprintf("%d", *r.Pax))
	}
	if r.Amount != nil {
		vs.detail(pdf, "Tour Amount", fmt.Sprintf("%.2f", *r.Amount))
	}
	if r.PaidAmount != nil {
		vs.detail(pdf, "Paid Amount", fmt.Sprintf("%.2f", *r.PaidAmount))
	}
	if r.PaymentStatus != "" {
		vs.detail(pdf, "Payment Status", r.PaymentStatus)
	}

	pdf.Ln(10)
	pdf.SetFont("Helvetica", "I", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(0, 6, "Please present this voucher at the start of your tour.", "", 1, "C", false, 0, "")

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, err
	}
	return &buf, nil
}

func (vs *VoucherService) detail(pdf *fpdf.Fpdf, label, value string) {
	pdf.SetFont("Helvetica", "B", 9)
	pdf.SetTextColor(102, 102, 102)
	pdf.CellFormat(50, 8, label, "", 0, "L", false, 0, "")
	pdf.SetFont("Helvetica", "", 11)
	pdf.SetTextColor(0, 0, 0)
	pdf.CellFormat(0, 8, value, "", 1, "L", false, 0, "")
}
