package domain

import "time"

// Career is a published job opening.
type Career struct {
	ID          string    `json:"id"`
	Title       string    `json:"title" validate:"required"`
	Department  string    `json:"department"`
	Location    string    `json:"location"`
	Type        string    `json:"type"` // full-time, part-time, contract
	Description string    `json:"description" validate:"required"`
	Active      bool      `json:"active"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// Product is a listed product or service offering.
type Product struct {
	ID          string    `json:"id"`
	Name        string    `json:"name" validate:"required"`
	Tagline     string    `json:"tagline"`
	Description string    `json:"description" validate:"required"`
	Features    []string  `json:"features"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

// ContactMessage is an inbound message from the public contact form.
type ContactMessage struct {
	ID        string    `json:"id"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message" validate:"required"`
	Read      bool      `json:"read"`
	CreatedAt time.Time `json:"createdAt"`
}

// JobApplication is a candidate application for a career opening.
type JobApplication struct {
	ID        string    `json:"id"`
	CareerID  string    `json:"careerId" validate:"required"`
	Name      string    `json:"name" validate:"required"`
	Email     string    `json:"email" validate:"required,email"`
	Phone     string    `json:"phone"`
	ResumeURL string    `json:"resumeUrl"`
	CoverNote string    `json:"coverNote"`
	CreatedAt time.Time `json:"createdAt"`
}

// Admin is a dashboard user. PasswordHash is a bcrypt hash and is never
// serialised.
type Admin struct {
	ID           string    `json:"id"`
	Email        string    `json:"email"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"createdAt"`
}
