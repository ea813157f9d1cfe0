package types

import (
	"database/sql/driver"
	"encoding/json"
	"errors"
	"time"
)

type Timestamps struct {
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at,omitempty"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at,omitempty"`
}

const (
	ROLE_CLIENT = "client"
	ROLE_ADMIN  = "admin"
)

const (
	BOOKING_NEW       = "new"
	BOOKING_CONFIRMED = "confirmed"
	BOOKING_COMPLETED = "completed"
	BOOKING_CANCELLED = "cancelled"
)

const (
	PAYMENT_PENDING        = "pending"
	PAYMENT_METHOD_DEFAULT = "prepay_50"
)

// StringList is a jsonb-backed list of feature labels.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	valueString, err := json.Marshal(l)
	return string(valueString), err
}
func (l *StringList) Scan(value any) error {
	switch v := value.(type) {
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	case nil:
		*l = nil
		return nil
	}
	return errors.New("type assertion to []byte failed")
}

// JSONBAny wraps an arbitrary decoded JSON value so it can be bound as a
// jsonb parameter in a column update map.
type JSONBAny struct {
	Inner any
}

func (a JSONBAny) Value() (driver.Value, error) {
	valueString, err := json.Marshal(a.Inner)
	return string(valueString), err
}
func (a *JSONBAny) Scan(value any) error {
	b, ok := value.([]byte)
	if !ok {
		return errors.New("type assertion to []byte failed")
	}
	var inner any
	if err := json.Unmarshal(b, &inner); err != nil {
		return err
	}
	a.Inner = inner
	return nil
}

type RegisterUserRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	FullName string `json:"full_name"`
	Phone    string `json:"phone"`
}

type LoginRequestBody struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UserInfo struct {
	ID       uint   `json:"id"`
	Email    string `json:"email"`
	FullName string `json:"full_name,omitempty"`
	Phone    string `json:"phone,omitempty"`
	Role     string `json:"role"`
}

type AuthResponse struct {
	Token string   `json:"token"`
	User  UserInfo `json:"user"`
}

type CreateTariffRequestBody struct {
	Name          string     `json:"name" binding:"required"`
	Category      string     `json:"category" binding:"required"`
	Description   string     `json:"description,omitempty"`
	BasePrice     float64    `json:"base_price" binding:"required"`
	PricePerKm    float64    `json:"price_per_km,omitempty"`
	MaxPassengers int        `json:"max_passengers" binding:"required"`
	Features      StringList `json:"features,omitempty"`
	IsActive      *bool      `json:"is_active,omitempty"`
}

type CreateVehicleRequestBody struct {
	Name     string     `json:"name" binding:"required"`
	Model    string     `json:"model" binding:"required"`
	Category string     `json:"category" binding:"required"`
	Seats    int        `json:"seats" binding:"required"`
	ImageURL string     `json:"image_url,omitempty"`
	Features StringList `json:"features,omitempty"`
	IsActive *bool      `json:"is_active,omitempty"`
}

type CreateAdvertisementRequestBody struct {
	Title        string `json:"title" binding:"required"`
	Content      string `json:"content,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	Position     string `json:"position,omitempty"`
	IsActive     *bool  `json:"is_active,omitempty"`
	DisplayOrder int    `json:"display_order,omitempty"`
}

type CreateBookingRequestBody struct {
	GuestName  string `json:"guest_name,omitempty"`
	Name       string `json:"name,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
	Phone      string `json:"phone,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`
	Email      string `json:"email,omitempty"`

	FromLocation  string `json:"from_location,omitempty"`
	ToLocation    string `json:"to_location,omitempty"`
	TravelDate    string `json:"travel_date,omitempty" binding:"omitempty,traveldate"`
	TravelTime    string `json:"travel_time,omitempty" binding:"omitempty,traveltime"`
	Passengers    int    `json:"passengers,omitempty"`
	TariffID      uint   `json:"tariff_id,omitempty"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`
}

type SimpleRequestParams struct {
	ID uint `uri:"id" binding:"required"`
}

type BookingSummary struct {
	ID            uint      `json:"id"`
	FromLocation  string    `json:"from_location"`
	ToLocation    string    `json:"to_location"`
	TravelDate    string    `json:"travel_date"`
	TravelTime    string    `json:"travel_time"`
	Passengers    int       `json:"passengers"`
	TariffName    *string   `json:"tariff_name"`
	Category      *string   `json:"category"`
	TotalPrice    float64   `json:"total_price"`
	Status        string    `json:"status"`
	PaymentStatus string    `json:"payment_status"`
	PaymentMethod string    `json:"payment_method"`
	CreatedAt     time.Time `json:"created_at"`
	UserName      string    `json:"user_name"`
	UserEmail     string    `json:"user_email"`
	Phone         string    `json:"phone"`
}

type DailyBookingCount struct {
	Date  string `json:"date"`
	Count int64  `json:"count"`
}

type BookingStats struct {
	TotalBookings     int64               `json:"total_bookings"`
	NewBookings       int64               `json:"new_bookings"`
	ConfirmedBookings int64               `json:"confirmed_bookings"`
	CompletedBookings int64               `json:"completed_bookings"`
	CancelledBookings int64               `json:"cancelled_bookings"`
	TotalRevenue      float64             `json:"total_revenue"`
	DailyBookings     []DailyBookingCount `json:"daily_bookings"`
}
