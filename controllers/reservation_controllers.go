package controllers

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/models"
	"github.com/danieltravel/reservation-panel/services"
	"github.com/danieltravel/reservation-panel/utils"
)

const xlsxContentType = "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"

// monthChoices drives the month dropdowns on the dashboard.
var monthChoices = []struct {
	Num  int
	Name string
}{
	{1, "January"}, {2, "February"}, {3, "March"}, {4, "April"},
	{5, "May"}, {6, "June"}, {7, "July"}, {8, "August"},
	{9, "September"}, {10, "October"}, {11, "November"}, {12, "December"},
}

type ReservationController struct {
	Reservations *services.ReservationService
	Exports      *services.ExportService
	Vouchers     *services.VoucherService
}

func NewReservationController(db *gorm.DB) *ReservationController {
	rs := services.NewReservationService(db)
	return &ReservationController{
		Reservations: rs,
		Exports:      services.NewExportService(rs),
		Vouchers:     services.NewVoucherService(),
	}
}

// reservationForm holds the raw posted values so an invalid submission can
// be re-rendered with everything the user already typed.
type reservationForm struct {
	TourOption    string
	Date          string
	Hotel         string
	RoomNumber    string
	CustomerName  string
	PassportID    string
	Contact       string
	Pax           string
	Amount        string
	PaidAmount    string
	PaymentStatus string
	PaymentMethod string
}

func bindReservationForm(c *gin.Context) reservationForm {
	return reservationForm{
		TourOption:    c.PostForm("tour_option"),
		Date:          strings.TrimSpace(c.PostForm("date")),
		Hotel:         strings.TrimSpace(c.PostForm("hotel")),
		RoomNumber:    strings.TrimSpace(c.PostForm("room_number")),
		CustomerName:  strings.TrimSpace(c.PostForm("customer_name")),
		PassportID:    strings.TrimSpace(c.PostForm("passport_id")),
		Contact:       strings.TrimSpace(c.PostForm("contact")),
		Pax:           strings.TrimSpace(c.PostForm("pax")),
		Amount:        strings.TrimSpace(c.PostForm("amount")),
		PaidAmount:    strings.TrimSpace(c.PostForm("paid_amount")),
		PaymentStatus: c.PostForm("payment_status"),
		PaymentMethod: c.PostForm("payment_method"),
	}
}

// Dashboard lists reservations with the search box and month/year filter.
// Query params q, month and year are all best-effort: a malformed month or
// year silently drops the date filter instead of erroring.
func (rc *ReservationController) Dashboard(c *gin.Context) {
	q := strings.TrimSpace(c.Query("q"))
	month := c.Query("month")
	year := c.Query("year")

	reservations, err := rc.Reservations.Search(q, month, year)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to query reservations: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	years, err := rc.Reservations.DistinctYears()
	if err != nil {
		utils.ErrorLogger.Printf("Failed to list reservation years: %v", err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.HTML(http.StatusOK, "dashboard.html", gin.H{
		"reservations": reservations,
		"stats":        services.ComputeStats(reservations),
		"years":        years,
		"months":       monthChoices,
		"q":            q,
		"month":        month,
		"year":         year,
		"username":     c.GetString("username"),
		"flashes":      utils.TakeFlashes(c),
		"csrf_token":   utils.CSRFToken(c),
	})
}

// ShowAdd renders an empty reservation form.
func (rc *ReservationController) ShowAdd(c *gin.Context) {
	rc.renderAddForm(c, reservationForm{}, map[string]string{})
}

// Add creates a reservation from the posted form. On validation failure the
// form is re-rendered with field errors and the entered values preserved.
func (rc *ReservationController) Add(c *gin.Context) {
	form := bindReservationForm(c)
	fieldErrors := map[string]string{}

	input := services.ReservationInput{
		TourOption:    form.TourOption,
		Date:          form.Date,
		Hotel:         form.Hotel,
		RoomNumber:    form.RoomNumber,
		CustomerName:  form.CustomerName,
		PassportID:    form.PassportID,
		Contact:       form.Contact,
		PaymentStatus: form.PaymentStatus,
		PaymentMethod: form.PaymentMethod,
	}

	if form.Pax != "" {
		pax, err := strconv.Atoi(form.Pax)
		if err != nil {
			fieldErrors["pax"] = "Not a valid integer value."
		} else {
			input.Pax = &pax
		}
	}
	if form.Amount != "" {
		amount, err := strconv.ParseFloat(form.Amount, 64)
		if err != nil {
			fieldErrors["amount"] = "Not a valid decimal value."
		} else {
			input.Amount = &amount
		}
	}
	if form.PaidAmount != "" {
		paid, err := strconv.ParseFloat(form.PaidAmount, 64)
		if err != nil {
			fieldErrors["paid_amount"] = "Not a valid decimal value."
		} else {
			input.PaidAmount = &paid
		}
	}

	if len(fieldErrors) == 0 {
		r, err := rc.Reservations.Create(input)
		if err != nil {
			var verrs services.ValidationErrors
			if errors.As(err, &verrs) {
				for _, verr := range verrs {
					fieldErrors[verr.Field] = verr.Message
				}
			} else {
				utils.ErrorLogger.Printf("Failed to create reservation: %v", err)
				c.String(http.StatusInternalServerError, "Internal server error")
				return
			}
		} else {
			utils.InfoLogger.Printf("Reservation %d created for %s (%s on %s)",
				r.ID, r.CustomerName, r.TourOption, r.Date.Format("2006-01-02"))
			utils.AddFlash(c, "success", "Reservation saved")
			c.Redirect(http.StatusFound, "/dashboard")
			return
		}
	}

	rc.renderAddForm(c, form, fieldErrors)
}

func (rc *ReservationController) renderAddForm(c *gin.Context, form reservationForm, fieldErrors map[string]string) {
	c.HTML(http.StatusOK, "add_reservation.html", gin.H{
		"form":            form,
		"errors":          fieldErrors,
		"tour_options":    models.TourOptions,
		"payment_status":  models.PaymentStatusChoices,
		"payment_methods": models.PaymentMethodChoices,
		"username":        c.GetString("username"),
		"flashes":         utils.TakeFlashes(c),
		"csrf_token":      utils.CSRFToken(c),
	})
}

// Export streams the month's reservations as an xlsx attachment.
func (rc *ReservationController) Export(c *gin.Context) {
	year, errY := strconv.Atoi(c.PostForm("year"))
	month, errM := strconv.Atoi(c.PostForm("month"))
	if errY != nil || errM != nil || month < 1 || month > 12 {
		utils.AddFlash(c, "danger", "Select a year and month to export")
		c.Redirect(http.StatusFound, "/dashboard")
		return
	}

	f, err := rc.Exports.ExportMonth(year, month)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to build export for %d-%02d: %v", year, month, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	filename := fmt.Sprintf("reservations_%d_%02d.xlsx", year, month)
	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%s", filename))
	c.Header("Content-Type", xlsxContentType)
	if err := f.Write(c.Writer); err != nil {
		utils.ErrorLogger.Printf("Failed to stream export %s: %v", filename, err)
	}
}

// Voucher streams a PDF voucher for one reservation.
func (rc *ReservationController) Voucher(c *gin.Context) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.String(http.StatusNotFound, "Reservation not found")
		return
	}

	r, err := rc.Reservations.Get(uint(id))
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			c.String(http.StatusNotFound, "Reservation not found")
			return
		}
		utils.ErrorLogger.Printf("Failed to load reservation %d: %v", id, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	buf, err := rc.Vouchers.Build(r)
	if err != nil {
		utils.ErrorLogger.Printf("Failed to build voucher for reservation %d: %v", r.ID, err)
		c.String(http.StatusInternalServerError, "Internal server error")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=voucher_%d.pdf", r.ID))
	c.Data(http.StatusOK, "application/pdf", buf.Bytes())
}
