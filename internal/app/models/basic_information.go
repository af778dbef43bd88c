package models

import "time"

// BasicInformation holds the personal data of a user. At most one per user.
type BasicInformation struct {
	ID             int64      `json:"id" db:"id"`
	UserID         int64      `json:"userId" db:"user_id"`
	DocumentType   string     `json:"documentType" db:"document_type"`
	DocumentNumber string     `json:"documentNumber" db:"document_number"`
	FirstNames     string     `json:"firstNames" db:"first_names"`
	LastNames      string     `json:"lastNames" db:"last_names"`
	Gender         string     `json:"gender" db:"gender"`
	BirthDate      *time.Time `json:"birthDate,omitempty" db:"birth_date"`
	Phone          string     `json:"phone" db:"phone"`
	Address        string     `json:"address" db:"address"`
	City           string     `json:"city" db:"city"`
	Department     string     `json:"department" db:"department"`
	Country        string     `json:"country" db:"country"`
	MaritalStatus  string     `json:"maritalStatus" db:"marital_status"`
	CreatedAt      time.Time  `json:"createdAt" db:"created_at"`
	UpdatedAt      time.Time  `json:"updatedAt" db:"updated_at"`
}

// FullName joins first and last names.
func (b *BasicInformation) FullName() string {
	if b.LastNames == "" {
		return b.FirstNames
	}
	return b.FirstNames + " " + b.LastNames
}
