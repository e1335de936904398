package model

import "time"

// ContactSubmission is a message left through the public contact form.
type ContactSubmission struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Email     string    `json:"email"`
	Subject   string    `json:"subject"`
	Message   string    `json:"message"`
	Company   string    `json:"company,omitempty"`
	Phone     string    `json:"phone,omitempty"`
	CreatedAt time.Time `json:"created_at"`
}

// ContactSubjects lists the accepted values of ContactRequest.Subject.
var ContactSubjects = []string{"general", "sales", "support", "partnership", "other"}

// ContactRequest is the payload of the public contact form.
type ContactRequest struct {
	Name    string `json:"name" validate:"required"`
	Email   string `json:"email" validate:"required,contact_email"`
	Subject string `json:"subject" validate:"required,oneof=general sales support partnership other"`
	Message string `json:"message" validate:"required,trimmed_min=10"`
	Company string `json:"company,omitempty"`
	Phone   string `json:"phone,omitempty"`
}
