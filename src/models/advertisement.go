package models

import "transferd/src/types"

type Advertisement struct {
	ID           uint   `gorm:"primarykey" json:"id"`
	Title        string `json:"title"`
	Content      string `json:"content,omitempty"`
	ImageURL     string `json:"image_url,omitempty"`
	LinkURL      string `json:"link_url,omitempty"`
	Position     string `json:"position,omitempty"`
	IsActive     bool   `gorm:"default:true" json:"is_active"`
	DisplayOrder int    `gorm:"default:0" json:"display_order"`

	types.Timestamps
}
