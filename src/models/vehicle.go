package models

import "transferd/src/types"

type Vehicle struct {
	ID       uint             `gorm:"primarykey" json:"id"`
	Name     string           `json:"name"`
	Model    string           `json:"model"`
	Category string           `json:"category"`
	Seats    int              `json:"seats"`
	ImageURL string           `json:"image_url,omitempty"`
	Features types.StringList `gorm:"type:jsonb" json:"features"`
	IsActive bool             `gorm:"default:true" json:"is_active"`

	types.Timestamps
}
