package models

import "transferd/src/types"

type Booking struct {
	ID         uint   `gorm:"primarykey" json:"id"`
	UserID     *uint  `json:"user_id,omitempty"`
	GuestName  string `json:"guest_name,omitempty"`
	GuestPhone string `json:"guest_phone,omitempty"`
	GuestEmail string `json:"guest_email,omitempty"`

	FromLocation string `json:"from_location"`
	ToLocation   string `json:"to_location"`
	TravelDate   string `json:"travel_date"`
	TravelTime   string `json:"travel_time"`
	Passengers   int    `gorm:"default:1" json:"passengers"`

	TariffID   uint    `json:"tariff_id"`
	VehicleID  *uint   `json:"vehicle_id,omitempty"`
	TotalPrice float64 `gorm:"type:numeric(10,2)" json:"total_price"`

	Status        string `gorm:"default:new" json:"status"`
	PaymentStatus string `gorm:"default:pending" json:"payment_status"`
	PaymentMethod string `json:"payment_method,omitempty"`
	Notes         string `json:"notes,omitempty"`

	Tariff  *Tariff  `gorm:"foreignKey:tariff_id" json:"tariff,omitempty"`
	Vehicle *Vehicle `gorm:"foreignKey:vehicle_id" json:"vehicle,omitempty"`
	User    *User    `gorm:"foreignKey:user_id" json:"user,omitempty"`

	types.Timestamps
}
