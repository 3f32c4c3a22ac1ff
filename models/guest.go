package models

import "time"

type Guest struct {
	ID        uint      `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name      string    `gorm:"column:name;size:150;not null" json:"name"`
	Email     string    `gorm:"column:email;size:150;unique;not null" json:"email"`
	Token     string    `gorm:"column:token;size:32;unique;not null" json:"token"`
	Country   *string   `gorm:"column:country;size:100" json:"country,omitempty"`
	Phone     *string   `gorm:"column:phone;size:30" json:"phone,omitempty"`
	CreatedAt time.Time `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`

	RSVPs []RSVP `gorm:"foreignKey:GuestID" json:"-"`
}

func (Guest) TableName() string {
	return "guests"
}
