package models

import "time"

type Venue struct {
	ID      uint    `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name    string  `gorm:"column:name;size:150;not null" json:"name"`
	Address string  `gorm:"column:address;size:255;not null" json:"address"`
	City    string  `gorm:"column:city;size:100;not null" json:"city"`
	Country string  `gorm:"column:country;size:100;not null" json:"country"`
	MapURL  *string `gorm:"column:map_url;size:500" json:"map_url,omitempty"`
}

func (Venue) TableName() string {
	return "venues"
}

type Event struct {
	ID           uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Title        string    `gorm:"column:title;size:255;not null" json:"title"`
	Description  string    `gorm:"column:description;type:text" json:"description"`
	Date         time.Time `gorm:"column:date;not null" json:"date"`
	Time         string    `gorm:"column:time;size:20" json:"time"`
	VenueID      uint      `gorm:"column:venue_id;not null" json:"venue_id"`
	Venue        Venue     `gorm:"foreignKey:VenueID" json:"venue"`
	DisplayOrder int       `gorm:"column:display_order;default:0" json:"display_order"`
	IsActive     bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt    time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt    time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	RSVPs []RSVP `gorm:"foreignKey:EventID" json:"-"`
}

func (Event) TableName() string {
	return "events"
}
