package response

import "time"

// WebhookAckResponse acknowledges an inbound gateway callback. The gateway
// only requires a 200; the echoed event/status help when reading its logs.
type WebhookAckResponse struct {
	Received  bool      `json:"received"`
	Processed bool      `json:"processed"`
	Event     string    `json:"event"`
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// WebhookLivenessResponse answers the gateway's GET validation probe.
type WebhookLivenessResponse struct {
	Status    string    `json:"status"`
	Timestamp time.Time `json:"timestamp"`
}

// WebhookSetupResponse reports the result of registering the callback URL
// with the gateway.
type WebhookSetupResponse struct {
	Success    bool     `json:"success"`
	Message    string   `json:"message"`
	WebhookURL string   `json:"webhookUrl"`
	Events     []string `json:"events"`
	Result     any      `json:"result"`
}
