package models

import "time"

type ContactSubject string

const (
	SubjectGeneral ContactSubject = "GENERAL"
	SubjectRSVP    ContactSubject = "RSVP"
	SubjectTravel  ContactSubject = "TRAVEL"
	SubjectMedia   ContactSubject = "MEDIA"
	SubjectOther   ContactSubject = "OTHER"
)

type ContactStatus string

const (
	ContactPending   ContactStatus = "PENDING"
	ContactResponded ContactStatus = "RESPONDED"
	ContactClosed    ContactStatus = "CLOSED"
)

type ContactRequest struct {
	ID         uint           `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	Name       string         `gorm:"column:name;size:150;not null" json:"name"`
	Email      string         `gorm:"column:email;size:150;not null" json:"email"`
	Phone      *string        `gorm:"column:phone;size:30" json:"phone,omitempty"`
	Subject    ContactSubject `gorm:"column:subject;size:20;not null;default:'GENERAL'" json:"subject"`
	Message    string         `gorm:"column:message;type:text;not null" json:"message"`
	Status     ContactStatus  `gorm:"column:status;size:20;default:'PENDING'" json:"status"`
	AdminNotes *string        `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`
	CreatedAt  time.Time      `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time      `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (ContactRequest) TableName() string {
	return "contact_requests"
}
