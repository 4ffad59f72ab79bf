package model

// ContactCategory is the topic picked on the contact form.
type ContactCategory string

const (
	ContactGeneral      ContactCategory = "General Inquiry"
	ContactSupport      ContactCategory = "Technical Support"
	ContactFeature      ContactCategory = "Feature Request"
	ContactBug          ContactCategory = "Report a Bug"
	ContactSubscription ContactCategory = "Subscription Issue"
)

// ValidContactCategories lists accepted categories.
var ValidContactCategories = map[ContactCategory]bool{
	ContactGeneral:      true,
	ContactSupport:      true,
	ContactFeature:      true,
	ContactBug:          true,
	ContactSubscription: true,
}

// ContactMessage is a validated contact form submission.
type ContactMessage struct {
	Name     string
	Email    string
	Category ContactCategory
	Subject  string
	Message  string
}

// ContactReceipt is returned to the client after a submission.
type ContactReceipt struct {
	ID      string `json:"id"`
	Message string `json:"message"`
}
