package model

// Submission is one contact form submission as posted by the site.
// It lives only for the duration of the request; nothing is persisted.
type Submission struct {
	FullName      string `json:"fullName"`
	Email         string `json:"email"`
	CompanyName   string `json:"companyName,omitempty"`
	ContactNumber string `json:"contactNumber,omitempty"`
	Message       string `json:"message"`
}
