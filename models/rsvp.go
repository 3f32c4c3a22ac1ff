package models

import "time"

// RSVPResponse is a guest's answer for a single event.
type RSVPResponse string

const (
	ResponseAttending    RSVPResponse = "ATTENDING"
	ResponseNotAttending RSVPResponse = "NOT_ATTENDING"
	ResponseMaybe        RSVPResponse = "MAYBE"
)

// RSVP holds at most one response per (guest, event) pair; the composite
// unique index backs the upsert in the submission handler.
type RSVP struct {
	ID                 uint         `gorm:"column:id;primaryKey;autoIncrement" json:"id"`
	GuestID            uint         `gorm:"column:guest_id;not null;uniqueIndex:idx_rsvp_guest_event" json:"guest_id"`
	Guest              Guest        `gorm:"foreignKey:GuestID;constraint:OnDelete:CASCADE" json:"-"`
	EventID            uint         `gorm:"column:event_id;not null;uniqueIndex:idx_rsvp_guest_event" json:"event_id"`
	Event              Event        `gorm:"foreignKey:EventID;constraint:OnDelete:CASCADE" json:"event"`
	Response           RSVPResponse `gorm:"column:response;size:20;not null" json:"response"`
	Attendees          int          `gorm:"column:attendees;default:1" json:"attendees"`
	DietaryPreferences *string      `gorm:"column:dietary_preferences;size:255" json:"dietary_preferences,omitempty"`
	Comments           *string      `gorm:"column:comments;type:text" json:"comments,omitempty"`
	CreatedAt          time.Time    `gorm:"column:created_at;autoCreateTime" json:"created_at"`
	UpdatedAt          time.Time    `gorm:"column:updated_at;autoUpdateTime" json:"updated_at"`
}

func (RSVP) TableName() string {
	return "rsvps"
}
