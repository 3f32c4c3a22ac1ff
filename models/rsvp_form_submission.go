package models

import "time"

type SubmissionStatus string

const (
	SubmissionNew      SubmissionStatus = "NEW"
	SubmissionReviewed SubmissionStatus = "REVIEWED"
)

// RSVPFormSubmission is the free-form intake record, distinct from the
// per-event RSVP. Every POST inserts a fresh row; there is no uniqueness
// tying a submission to a guest or token.
type RSVPFormSubmission struct {
	ID              uint             `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GuestName       string           `gorm:"column:guest_name;size:150;not null" json:"guest_name"`
	Email           string           `gorm:"column:email;size:150;not null" json:"email"`
	WillAttendDhaka string           `gorm:"column:will_attend_dhaka;size:10;not null" json:"will_attend_dhaka"`
	FamilySide      string           `gorm:"column:family_side;size:10;not null" json:"family_side"`
	GuestCount      string           `gorm:"column:guest_count;size:10;not null" json:"guest_count"`
	GuestCountOther *string          `gorm:"column:guest_count_other;size:100" json:"guest_count_other,omitempty"`
	PreferredNumber *string          `gorm:"column:preferred_number;size:30" json:"preferred_number,omitempty"`
	PreferredWAPP   *bool            `gorm:"column:preferred_whatsapp" json:"preferred_whatsapp,omitempty"`
	PreferredBotim  *bool            `gorm:"column:preferred_botim" json:"preferred_botim,omitempty"`
	SecondaryNumber *string          `gorm:"column:secondary_number;size:30" json:"secondary_number,omitempty"`
	SecondaryWAPP   *bool            `gorm:"column:secondary_whatsapp" json:"secondary_whatsapp,omitempty"`
	SecondaryBotim  *bool            `gorm:"column:secondary_botim" json:"secondary_botim,omitempty"`
	EmergencyName   *string          `gorm:"column:emergency_name;size:150" json:"emergency_name,omitempty"`
	EmergencyPhone  *string          `gorm:"column:emergency_phone;size:30" json:"emergency_phone,omitempty"`
	EmergencyEmail  *string          `gorm:"column:emergency_email;size:150" json:"emergency_email,omitempty"`
	Status          SubmissionStatus `gorm:"column:status;size:20;default:'NEW'" json:"status"`
	AdminNotes      *string          `gorm:"column:admin_notes;type:text" json:"admin_notes,omitempty"`
	CreatedAt       time.Time        `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt       time.Time        `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RSVPFormSubmission) TableName() string {
	return "rsvp_form_submissions"
}
