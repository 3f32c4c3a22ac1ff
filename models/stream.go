package models

import "time"

type Stream struct {
	ID          uint       `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title       string     `gorm:"column:title;size:255;not null" json:"title"`
	Description *string    `gorm:"column:description;type:text" json:"description,omitempty"`
	URL         string     `gorm:"column:url;size:500;not null" json:"url"`
	ScheduledAt *time.Time `gorm:"column:scheduled_at" json:"scheduled_at,omitempty"`
	IsLive      bool       `gorm:"column:is_live;default:false" json:"is_live"`
	IsActive    bool       `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time  `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time  `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Stream) TableName() string {
	return "streams"
}
