package dto

const (
	MailKindVerify = "verify"
	MailKindReset  = "reset"
)

// MailEvent is the payload published to Kafka for the mailer to deliver.
// Kind selects both the template and the link path segment.
type MailEvent struct {
	EventID string `json:"event_id"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Kind    string `json:"kind"`
	BaseURL string `json:"base_url"`
	Token   string `json:"token"`
}
