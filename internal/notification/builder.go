// Package notification builds outcome emails for resolved membership
// requests. Building is pure; delivery is handed off to a Sender.
package notification

import "fmt"

// Subject is constant across outcomes.
const subject = "An update from PhotoComp!"

// Outcome is the resolution a notification describes.
type Outcome string

// Outcome constants.
const (
	OutcomeApproved Outcome = "approved"
	OutcomeDenied   Outcome = "denied"
)

// Payload is the structured message queued for external delivery. It is
// never persisted; ownership transfers to the delivery subsystem once built.
type Payload struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Header  string `json:"header"`
	Message string `json:"message"`
}

// Build produces the notification payload for a resolved membership request.
// Deterministic given inputs, no side effects.
func Build(outcome Outcome, orgName, recipient string) Payload {
	p := Payload{
		To:      recipient,
		Subject: subject,
	}
	switch outcome {
	case OutcomeApproved:
		p.Header = fmt.Sprintf("Your membership application for %s has been approved!", orgName)
		p.Message = fmt.Sprintf("You will now get updates about %s. Know more by checking out the website!", orgName)
	case OutcomeDenied:
		p.Header = fmt.Sprintf("Your membership application for %s has been denied!", orgName)
		p.Message = fmt.Sprintf("Please contact %s's admin for more info. In the meantime... You can check other organizations to apply to.", orgName)
	}
	return p
}
