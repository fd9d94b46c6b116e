package models

// Email templates sent by the notifier.
const (
	EmailFirstUpload     = "first_upload"
	EmailLowCredits      = "low_credits"
	EmailCreditsDepleted = "credits_depleted"
)

// EmailData is rendered into every email template.
type EmailData struct {
	Name    string
	Credits int
	AppURL  string
}
