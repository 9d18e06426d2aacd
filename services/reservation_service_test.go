package services

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"

	"github.com/danieltravel/reservation-panel/models"
)

func setupTestDB(t *testing.T) *gorm.DB {
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&models.User{}, &models.Reservation{}))
	return db
}

func intPtr(v int) *int           { return &v }
func floatPtr(v float64) *float64 { return &v }

func validInput() ReservationInput {
	return ReservationInput{
		TourOption:    "Red tour",
		Date:          "2026-02-15",
		Hotel:         "Hotel Luxe",
		RoomNumber:    "205",
		CustomerName:  "Jane Smith",
		Contact:       "jane@example.com",
		Pax:           intPtr(3),
		Amount:        floatPtr(500),
		PaidAmount:    floatPtr(250),
		PaymentStatus: "Deposit",
		PaymentMethod: "Card",
	}
}

func TestCreateAssignsIDAndTimestamp(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	r, err := svc.Create(validInput())
	require.NoError(t, err)

	assert.NotZero(t, r.ID)
	assert.False(t, r.CreatedAt.IsZero())
	assert.Equal(t, "Jane Smith", r.CustomerName)
	assert.Equal(t, "2026-02-15", r.Date.Format("2006-01-02"))
}

func TestCreateValidation(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	cases := []struct {
		name      string
		mutate    func(*ReservationInput)
		wantField string
	}{
		{"missing tour option", func(in *ReservationInput) { in.TourOption = "" }, "tour_option"},
		{"unknown tour option", func(in *ReservationInput) { in.TourOption = "Moon tour" }, "tour_option"},
		{"missing customer name", func(in *ReservationInput) { in.CustomerName = "  " }, "customer_name"},
		{"missing date", func(in *ReservationInput) { in.Date = "" }, "date"},
		{"malformed date", func(in *ReservationInput) { in.Date = "15/02/2026" }, "date"},
		{"unknown payment status", func(in *ReservationInput) { in.PaymentStatus = "Maybe" }, "payment_status"},
		{"unknown payment method", func(in *ReservationInput) { in.PaymentMethod = "Barter" }, "payment_method"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			input := validInput()
			tc.mutate(&input)

			_, err := svc.Create(input)
			require.Error(t, err)

			var verrs ValidationErrors
			require.True(t, errors.As(err, &verrs))
			require.Len(t, verrs, 1)
			assert.Equal(t, tc.wantField, verrs[0].Field)
		})
	}

	var count int64
	svc.DB.Model(&models.Reservation{}).Count(&count)
	assert.Zero(t, count, "no invalid reservation should be persisted")
}

func TestCreateReportsAllInvalidFields(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	input := validInput()
	input.TourOption = "Moon tour"
	input.CustomerName = ""
	input.Date = "15/02/2026"
	input.PaymentMethod = "Barter"

	_, err := svc.Create(input)
	require.Error(t, err)

	var verrs ValidationErrors
	require.True(t, errors.As(err, &verrs))

	fields := make([]string, len(verrs))
	for i, verr := range verrs {
		fields[i] = verr.Field
	}
	assert.Equal(t, []string{"tour_option", "customer_name", "date", "payment_method"}, fields)
}

func TestCreateOptionalFieldsMayBeEmpty(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	r, err := svc.Create(ReservationInput{
		TourOption:   "Green tour",
		Date:         "2026-03-01",
		CustomerName: "Min Imal",
	})
	require.NoError(t, err)

	assert.Nil(t, r.Pax)
	assert.Nil(t, r.Amount)
	assert.Nil(t, r.PaidAmount)
	assert.Empty(t, r.Hotel)
}

func TestSearchEmptyQueryReturnsAll(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	for _, date := range []string{"2026-02-10", "2026-02-20", "2026-03-05"} {
		input := validInput()
		input.Date = date
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	got, err := svc.Search("", "", "")
	require.NoError(t, err)
	assert.Len(t, got, 3)
}

func TestSearchSubstringAcrossFields(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	jane := validInput()
	john := validInput()
	john.CustomerName = "John Doe"
	john.Hotel = "Grand Palace"
	john.TourOption = "Bursa tour"
	for _, in := range []ReservationInput{jane, john} {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	// Case-insensitive match on customer name.
	got, err := svc.Search("jane", "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "Jane Smith", got[0].CustomerName)

	// Hotel substring.
	got, err = svc.Search("palace", "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].CustomerName)

	// Tour option substring.
	got, err = svc.Search("BURSA", "", "")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "John Doe", got[0].CustomerName)

	// No match.
	got, err = svc.Search("nobody", "", "")
	require.NoError(t, err)
	assert.Empty(t, got)
}

func TestSearchMonthYearFilter(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	feb := validInput()
	feb.Date = "2026-02-15"
	mar := validInput()
	mar.Date = "2026-03-15"
	lastYear := validInput()
	lastYear.Date = "2025-02-15"
	for _, in := range []ReservationInput{feb, mar, lastYear} {
		_, err := svc.Create(in)
		require.NoError(t, err)
	}

	got, err := svc.Search("", "2", "2026")
	require.NoError(t, err)
	require.Len(t, got, 1)
	assert.Equal(t, "2026-02-15", got[0].Date.Format("2006-01-02"))
}

func TestSearchMalformedFilterFailsOpen(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	for _, date := range []string{"2026-02-10", "2026-03-10"} {
		input := validInput()
		input.Date = date
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	// Non-integer month or year drops the date filter, never errors.
	for _, filter := range [][2]string{
		{"invalid", "invalid"},
		{"2", "not-a-year"},
		{"x", "2026"},
		{"2", ""},
		{"", "2026"},
	} {
		got, err := svc.Search("", filter[0], filter[1])
		require.NoError(t, err)
		assert.Len(t, got, 2, "filter %v should be ignored", filter)
	}
}

func TestSearchOrdering(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	dates := []string{"2026-02-10", "2026-02-20", "2026-02-20", "2026-01-05"}
	for _, date := range dates {
		input := validInput()
		input.Date = date
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	got, err := svc.Search("", "", "")
	require.NoError(t, err)
	require.Len(t, got, 4)

	// Date descending, then id descending for same-day rows.
	assert.Equal(t, "2026-02-20", got[0].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-02-20", got[1].Date.Format("2006-01-02"))
	assert.Greater(t, got[0].ID, got[1].ID)
	assert.Equal(t, "2026-02-10", got[2].Date.Format("2006-01-02"))
	assert.Equal(t, "2026-01-05", got[3].Date.Format("2006-01-02"))
}

func TestDistinctYears(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	for _, date := range []string{"2024-06-01", "2026-02-15", "2025-12-31", "2025-01-01"} {
		input := validInput()
		input.Date = date
		_, err := svc.Create(input)
		require.NoError(t, err)
	}

	years, err := svc.DistinctYears()
	require.NoError(t, err)
	assert.Equal(t, []int{2026, 2025, 2024}, years)
}

func TestDistinctYearsFallsBackToCurrentYear(t *testing.T) {
	svc := NewReservationService(setupTestDB(t))

	years, err := svc.DistinctYears()
	require.NoError(t, err)
	require.Len(t, years, 1)
	assert.NotZero(t, years[0])
}

func TestComputeStats(t *testing.T) {
	reservations := []models.Reservation{
		{Amount: floatPtr(500), PaidAmount: floatPtr(250)},
		{Amount: floatPtr(300), PaidAmount: floatPtr(300)},
		{}, // no amounts recorded
	}

	stats := ComputeStats(reservations)
	assert.Equal(t, 3, stats.Count)
	assert.Equal(t, 800.0, stats.TotalAmount)
	assert.Equal(t, 550.0, stats.TotalPaid)
	assert.Equal(t, 250.0, stats.Outstanding)
}
