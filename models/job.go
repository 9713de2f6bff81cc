package models

import "time"

type Job struct {
	ID          string    `json:"id" bson:"_id,omitempty" db:"id"`
	CompanyName string    `json:"companyName" bson:"companyName" db:"company_name" validate:"required"`
	JobTitle    string    `json:"jobTitle" bson:"jobTitle" db:"job_title" validate:"required"`
	Description string    `json:"description" bson:"description" db:"description" validate:"required"`
	Salary      float64   `json:"salary" bson:"salary" db:"salary" validate:"required,gt=0,lte=1000000000000"`
	CreatedAt   time.Time `json:"createdAt" bson:"createdAt" db:"created_at"`
	UpdatedAt   time.Time `json:"updatedAt" bson:"updatedAt" db:"updated_at"`
}
