package models

import "time"

type UserType string

const (
	UserTypeAdmin    UserType = "admin"
	UserTypeEmployee UserType = "employee"
)

func (t UserType) Valid() bool {
	return t == UserTypeAdmin || t == UserTypeEmployee
}

type User struct {
	ID        string    `json:"id" bson:"_id,omitempty" db:"id"`
	FullName  string    `json:"fullName" bson:"fullName" db:"full_name"`
	Email     string    `json:"email" bson:"email" db:"email"`
	Password  string    `json:"-" bson:"password" db:"password_hash"`
	ImagePath *string   `json:"imagePath" bson:"imagePath" db:"image_path"`
	Type      UserType  `json:"type" bson:"type" db:"type"`
	CreatedAt time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}

// UserSummary is the public projection returned by listings and login.
type UserSummary struct {
	FullName string   `json:"fullName"`
	Email    string   `json:"email"`
	Type     UserType `json:"type"`
}

func (u *User) Summary() UserSummary {
	return UserSummary{FullName: u.FullName, Email: u.Email, Type: u.Type}
}

func (u *User) HasImage() bool {
	return u.ImagePath != nil && *u.ImagePath != ""
}
