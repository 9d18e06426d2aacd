package models

import "time"

// Choice pairs a stored value with the label shown on forms.
type Choice struct {
	Value string
	Label string
}

// TourOptions is the fixed set of tour products on offer.
var TourOptions = []string{
	"Red tour",
	"Sapanca tour",
	"Green tour",
	"Dinner cruise",
	"Bursa tour",
	"IST airport transfer",
	"SAW airport transfer",
}

var PaymentStatusChoices = []Choice{
	{Value: "Paid", Label: "Paid"},
	{Value: "Deposit", Label: "Deposit Received"},
	{Value: "Pending", Label: "Pending"},
}

var PaymentMethodChoices = []Choice{
	{Value: "Cash", Label: "Cash"},
	{Value: "Card", Label: "Credit Card"},
	{Value: "Bank", Label: "Bank Transfer"},
}

type Reservation struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	TourOption    string    `gorm:"type:varchar(100);not null" json:"tour_option"`
	Date          time.Time `gorm:"type:date;not null" json:"date"`
	Hotel         string    `gorm:"type:varchar(200)" json:"hotel"`
	RoomNumber    string    `gorm:"type:varchar(50)" json:"room_number"`
	CustomerName  string    `gorm:"type:varchar(200);not null" json:"customer_name"`
	PassportID    string    `gorm:"type:varchar(100)" json:"passport_id"`
	Contact       string    `gorm:"type:varchar(200)" json:"contact"`
	Pax           *int      `json:"pax,omitempty"`
	Amount        *float64  `gorm:"type:decimal(10,2)" json:"amount,omitempty"`
	PaidAmount    *float64  `gorm:"type:decimal(10,2)" json:"paid_amount,omitempty"`
	PaymentStatus string    `gorm:"type:varchar(50)" json:"payment_status"`
	PaymentMethod string    `gorm:"type:varchar(50)" json:"payment_method"`
	CreatedAt     time.Time `gorm:"not null" json:"created_at"`
}

// ValidTourOption reports whether v is one of the fixed tour products.
func ValidTourOption(v string) bool {
	for _, opt := range TourOptions {
		if opt == v {
			return true
		}
	}
	return false
}

// ValidChoice reports whether v is one of the stored values in choices.
func ValidChoice(choices []Choice, v string) bool {
	for _, ch := range choices {
		if ch.Value == v {
			return true
		}
	}
	return false
}
