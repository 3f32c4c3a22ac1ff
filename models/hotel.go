package models

import "time"

type Hotel struct {
	ID          uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name        string    `gorm:"column:name;size:150;not null" json:"name"`
	Address     string    `gorm:"column:address;size:255;not null" json:"address"`
	Phone       *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`
	Email       *string   `gorm:"column:email;size:150" json:"email,omitempty"`
	Website     *string   `gorm:"column:website;size:255" json:"website,omitempty"`
	BookingCode *string   `gorm:"column:booking_code;size:50" json:"booking_code,omitempty"`
	IsActive    bool      `gorm:"column:is_active;default:true" json:"is_active"`
	CreatedAt   time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt   time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (Hotel) TableName() string {
	return "hotels"
}
