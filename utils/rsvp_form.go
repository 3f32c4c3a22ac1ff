package utils

import (
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"
)

// The public site posts contact details nested under contact.preferred /
// contact.secondary / contact.emergency. FlattenRSVPForm maps that wire
// shape onto the flat record the validator and the table row use, so a
// wire-format change never touches the validation rules.

type ContactNumber struct {
	Number   string `json:"number"`
	Whatsapp bool   `json:"whatsapp"`
	Botim    bool   `json:"botim"`
}

type EmergencyContact struct {
	Name  string `json:"name"`
	Phone string `json:"phone"`
	Email string `json:"email"`
}

type RSVPFormPayload struct {
	GuestName       string  `json:"guestName"`
	Email           string  `json:"email"`
	WillAttendDhaka string  `json:"willAttendDhaka"`
	FamilySide      string  `json:"familySide"`
	GuestCount      string  `json:"guestCount"`
	GuestCountOther *string `json:"guestCountOther"`
	Contact         struct {
		Preferred *ContactNumber    `json:"preferred"`
		Secondary *ContactNumber    `json:"secondary"`
		Emergency *EmergencyContact `json:"emergency"`
	} `json:"contact"`
}

type RSVPFormRecord struct {
	GuestName       string `validate:"required"`
	Email           string `validate:"required,email"`
	WillAttendDhaka string `validate:"required,oneof=yes no maybe"`
	FamilySide      string `validate:"required,oneof=bride groom both"`
	GuestCount      string `validate:"required,oneof=1 2 3 4 other"`
	GuestCountOther string `validate:"required_if=GuestCount other"`
	PreferredNumber string
	PreferredWAPP   bool
	PreferredBotim  bool
	SecondaryNumber string
	SecondaryWAPP   bool
	SecondaryBotim  bool
	EmergencyName   string
	EmergencyPhone  string
	EmergencyEmail  string `validate:"omitempty,email"`
}

var formValidate = validator.New()

// FlattenRSVPForm adapts the nested wire payload into the flat record.
func FlattenRSVPForm(p *RSVPFormPayload) RSVPFormRecord {
	rec := RSVPFormRecord{
		GuestName:       strings.TrimSpace(p.GuestName),
		Email:           strings.TrimSpace(p.Email),
		WillAttendDhaka: p.WillAttendDhaka,
		FamilySide:      p.FamilySide,
		GuestCount:      p.GuestCount,
	}
	if p.GuestCountOther != nil {
		rec.GuestCountOther = strings.TrimSpace(*p.GuestCountOther)
	}
	if c := p.Contact.Preferred; c != nil {
		rec.PreferredNumber = c.Number
		rec.PreferredWAPP = c.Whatsapp
		rec.PreferredBotim = c.Botim
	}
	if c := p.Contact.Secondary; c != nil {
		rec.SecondaryNumber = c.Number
		rec.SecondaryWAPP = c.Whatsapp
		rec.SecondaryBotim = c.Botim
	}
	if e := p.Contact.Emergency; e != nil {
		rec.EmergencyName = e.Name
		rec.EmergencyPhone = e.Phone
		rec.EmergencyEmail = strings.TrimSpace(e.Email)
	}
	return rec
}

// ValidateRSVPForm checks the flattened record and returns per-field
// messages suitable for the 400 response body.
func ValidateRSVPForm(rec *RSVPFormRecord) []string {
	err := formValidate.Struct(rec)
	if err == nil {
		return nil
	}

	verrs, ok := err.(validator.ValidationErrors)
	if !ok {
		return []string{err.Error()}
	}

	details := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		switch {
		case fe.Field() == "GuestCountOther":
			details = append(details, "guestCountOther is required when guestCount is \"other\"")
		case fe.Tag() == "required":
			details = append(details, fmt.Sprintf("%s is required", lowerFirst(fe.Field())))
		case fe.Tag() == "email":
			details = append(details, fmt.Sprintf("%s must be a valid email address", lowerFirst(fe.Field())))
		case fe.Tag() == "oneof":
			details = append(details, fmt.Sprintf("%s must be one of: %s", lowerFirst(fe.Field()), fe.Param()))
		default:
			details = append(details, fmt.Sprintf("%s is invalid", lowerFirst(fe.Field())))
		}
	}
	return details
}

func lowerFirst(s string) string {
	if s == "" {
		return s
	}
	return strings.ToLower(s[:1]) + s[1:]
}
