package models

import "time"

// Review is an anonymous patient testimonial. Reviews are created hidden and
// only show up on the public page after an administrator approves them.
type Review struct {
	ID        string    `bson:"_id" json:"_id"`
	Text      string    `bson:"text" json:"text"`
	IsVisible bool      `bson:"isVisible" json:"isVisible"`
	CreatedAt time.Time `bson:"createdAt" json:"createdAt"`
}
