package services

import (
	"fmt"
	"sort"
	"strconv"
	"strings"
	"time"

	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/models"
)

// ValidationError names the reservation field that failed validation.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// ValidationErrors collects every field that failed validation so the form
// can show them all in one round trip.
type ValidationErrors []*ValidationError

func (e ValidationErrors) Error() string {
	msgs := make([]string, len(e))
	for i, v := range e {
		msgs[i] = v.Error()
	}
	return strings.Join(msgs, "; ")
}

// ReservationInput carries the values for a new reservation. Pointer fields
// are optional and stay NULL in the store when absent.
type ReservationInput struct {
	TourOption    string
	Date          string // YYYY-MM-DD
	Hotel         string
	RoomNumber    string
	CustomerName  string
	PassportID    string
	Contact       string
	Pax           *int
	Amount        *float64
	PaidAmount    *float64
	PaymentStatus string
	PaymentMethod string
}

type ReservationService struct {
	DB *gorm.DB
}

func NewReservationService(db *gorm.DB) *ReservationService {
	return &ReservationService{DB: db}
}

// Create validates the input and persists a reservation. The store assigns
// the id and creation timestamp. When validation fails the returned
// ValidationErrors carries one entry per missing or malformed field.
func (rs *ReservationService) Create(input ReservationInput) (*models.Reservation, error) {
	var errs ValidationErrors

	switch {
	case input.TourOption == "":
		errs = append(errs, &ValidationError{Field: "tour_option", Message: "This field is required."})
	case !models.ValidTourOption(input.TourOption):
		errs = append(errs, &ValidationError{Field: "tour_option", Message: "Not a valid tour option."})
	}
	if strings.TrimSpace(input.CustomerName) == "" {
		errs = append(errs, &ValidationError{Field: "customer_name", Message: "This field is required."})
	}
	var date time.Time
	if input.Date == "" {
		errs = append(errs, &ValidationError{Field: "date", Message: "This field is required."})
	} else if d, err := time.Parse("2006-01-02", input.Date); err != nil {
		errs = append(errs, &ValidationError{Field: "date", Message: "Not a valid date value."})
	} else {
		date = d
	}
	if input.PaymentStatus != "" && !models.ValidChoice(models.PaymentStatusChoices, input.PaymentStatus) {
		errs = append(errs, &ValidationError{Field: "payment_status", Message: "Not a valid choice."})
	}
	if input.PaymentMethod != "" && !models.ValidChoice(models.PaymentMethodChoices, input.PaymentMethod) {
		errs = append(errs, &ValidationError{Field: "payment_method", Message: "Not a valid choice."})
	}
	if len(errs) > 0 {
		return nil, errs
	}

	r := models.Reservation{
		TourOption:    input.TourOption,
		Date:          date,
		Hotel:         input.Hotel,
		RoomNumber:    input.RoomNumber,
		CustomerName:  strings.TrimSpace(input.CustomerName),
		PassportID:    input.PassportID,
		Contact:       input.Contact,
		Pax:           input.Pax,
		Amount:        input.Amount,
		PaidAmount:    input.PaidAmount,
		PaymentStatus: input.PaymentStatus,
		PaymentMethod: input.PaymentMethod,
	}
	if err := rs.DB.Create(&r).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// Search returns reservations matching a case-insensitive substring query
// against customer name, hotel or tour option. An empty query matches all
// rows. month and year are applied together only when both parse as
// integers; otherwise the date filter is silently skipped so that malformed
// input never breaks the listing. Results are ordered date desc, id desc.
func (rs *ReservationService) Search(q, month, year string) ([]models.Reservation, error) {
	tx := rs.DB.Model(&models.Reservation{})

	if q != "" {
		like := "%" + strings.ToLower(q) + "%"
		tx = tx.Where(
			"LOWER(customer_name) LIKE ? OR LOWER(hotel) LIKE ? OR LOWER(tour_option) LIKE ?",
			like, like, like,
		)
	}

	if month != "" && year != "" {
		monthI, errM := strconv.Atoi(month)
		yearI, errY := strconv.Atoi(year)
		if errM == nil && errY == nil {
			start, end := monthRange(yearI, monthI)
			tx = tx.Where("date >= ? AND date < ?", start, end)
		}
	}

	var reservations []models.Reservation
	if err := tx.Order("date DESC").Order("id DESC").Find(&reservations).Error; err != nil {
		return nil, err
	}
	return reservations, nil
}

// MonthReservations returns the reservations whose date falls in the given
// calendar month, in the same order as Search.
func (rs *ReservationService) MonthReservations(year, month int) ([]models.Reservation, error) {
	start, end := monthRange(year, month)

	var reservations []models.Reservation
	err := rs.DB.
		Where("date >= ? AND date < ?", start, end).
		Order("date DESC").Order("id DESC").
		Find(&reservations).Error
	if err != nil {
		return nil, err
	}
	return reservations, nil
}

// Get fetches a single reservation by id.
func (rs *ReservationService) Get(id uint) (*models.Reservation, error) {
	var r models.Reservation
	if err := rs.DB.First(&r, id).Error; err != nil {
		return nil, err
	}
	return &r, nil
}

// DistinctYears lists the years present across all reservations, most
// recent first. With no reservations it falls back to the current year so
// the export form always has a choice.
func (rs *ReservationService) DistinctYears() ([]int, error) {
	var dates []time.Time
	if err := rs.DB.Model(&models.Reservation{}).Pluck("date", &dates).Error; err != nil {
		return nil, err
	}

	seen := make(map[int]bool)
	var years []int
	for _, d := range dates {
		if y := d.Year(); !seen[y] {
			seen[y] = true
			years = append(years, y)
		}
	}
	if len(years) == 0 {
		return []int{time.Now().Year()}, nil
	}
	sort.Sort(sort.Reverse(sort.IntSlice(years)))
	return years, nil
}

// Stats aggregates the money columns of a result set for the dashboard:
// booking count, total tour amount, total paid and the outstanding balance.
type Stats struct {
	Count       int
	TotalAmount float64
	TotalPaid   float64
	Outstanding float64
}

// ComputeStats folds a reservation list into its dashboard totals.
func ComputeStats(reservations []models.Reservation) Stats {
	stats := Stats{Count: len(reservations)}
	for _, r := range reservations {
		if r.Amount != nil {
			stats.TotalAmount += *r.Amount
		}
		if r.PaidAmount != nil {
			stats.TotalPaid += *r.PaidAmount
		}
	}
	stats.Outstanding = stats.TotalAmount - stats.TotalPaid
	return stats
}

// monthRange returns the half-open interval [first of month, first of next
// month) used for exact month matching across both SQL dialects.
func monthRange(year, month int) (time.Time, time.Time) {
	start := time.Date(year, time.Month(month), 1, 0, 0, 0, 0, time.UTC)
	return start, start.AddDate(0, 1, 0)
}
