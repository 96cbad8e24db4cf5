package mailer

// SendRequest is the payload posted to the mail gateway.
type SendRequest struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}

// SendResponse is the gateway's acknowledgement.
type SendResponse struct {
	Status    string `json:"status"`
	MessageID string `json:"message_id"`
}
