package models

import "transferd/src/types"

type Tariff struct {
	ID            uint             `gorm:"primarykey" json:"id"`
	Name          string           `json:"name"`
	Category      string           `json:"category"`
	Description   string           `json:"description,omitempty"`
	BasePrice     float64          `gorm:"type:numeric(10,2)" json:"base_price"`
	PricePerKm    float64          `gorm:"type:numeric(10,2)" json:"price_per_km"`
	MaxPassengers int              `json:"max_passengers"`
	Features      types.StringList `gorm:"type:jsonb" json:"features"`
	IsActive      bool             `gorm:"default:true" json:"is_active"`

	types.Timestamps
}
