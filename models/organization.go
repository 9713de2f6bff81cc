package models

import "time"

type ContactEntry struct {
	Number string `json:"number" bson:"number"`
	Label  string `json:"label" bson:"label"`
}

// Organization is the portal owner shown in the header of exported job lists.
type Organization struct {
	ID        string         `json:"id" bson:"_id,omitempty" db:"id"`
	Name      string         `json:"name" bson:"name" db:"name" validate:"required"`
	Address   string         `json:"address" bson:"address" db:"address"`
	Email     string         `json:"email" bson:"email" db:"email" validate:"omitempty,email"`
	Website   string         `json:"website" bson:"website" db:"website" validate:"omitempty,url"`
	Footnote  string         `json:"footnote" bson:"footnote" db:"footnote"`
	Contacts  []ContactEntry `json:"contacts" bson:"contacts" db:"contacts" validate:"dive"`
	CreatedAt time.Time      `json:"createdAt" bson:"createdAt" db:"created_at"`
}
