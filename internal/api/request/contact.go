package request

// ContactRequest represents the request body of the contact form.
// Subject and category are optional; category defaults to "General Inquiry".
type ContactRequest struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Category string `json:"category,omitempty"`
	Subject  string `json:"subject,omitempty"`
	Message  string `json:"message"`
}
