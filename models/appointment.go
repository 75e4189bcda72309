package models

import "time"

// DefaultReason is stored when the patient leaves the reason field blank.
const DefaultReason = "Sin especificar"

// Appointment is a booking request submitted through the public intake form.
// Records are created once and never updated; the therapist follows up by
// direct contact.
type Appointment struct {
	ID        string    `bson:"_id" json:"_id"`
	Name      string    `bson:"name" json:"name"`
	Email     string    `bson:"email" json:"email"`
	Phone     string    `bson:"phone" json:"phone"` // E.164, e.g. "+525512345678"
	Date      string    `bson:"date" json:"date"`   // "2006-01-02"
	Time      string    `bson:"time" json:"time"`   // "15:04", 24-hour
	Reason    string    `bson:"reason" json:"reason"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}

// AppointmentInput is the untrusted intake payload as received from the form.
type AppointmentInput struct {
	Name   string `json:"name"`
	Email  string `json:"email"`
	Phone  string `json:"phone"`
	Date   string `json:"date"`
	Time   string `json:"time"`
	Reason string `json:"reason"`
}
