package models

import "time"

type MediaType string

const (
	MediaImage MediaType = "IMAGE"
	MediaVideo MediaType = "VIDEO"
)

type MediaItem struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title     *string   `gorm:"column:title;size:255" json:"title,omitempty"`
	URL       string    `gorm:"column:url;size:500;not null" json:"url"`
	Type      MediaType `gorm:"column:type;size:10;not null;default:'IMAGE'" json:"type"`
	Category  string    `gorm:"column:category;size:50;default:'gallery'" json:"category"`
	Featured  bool      `gorm:"column:featured;default:false" json:"featured"`
	IsActive  bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (MediaItem) TableName() string {
	return "media_items"
}
