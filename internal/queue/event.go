// Package queue defines message payloads exchanged over the message broker
// and the background consumer that turns them into outbound email.
package queue

// MailRequestedEvent is published whenever the API wants an email delivered:
// account confirmations at signup and appointment reminders from the daily
// sweep. It carries the full rendered message so the consumer never has to
// query the primary database.
type MailRequestedEvent struct {
	To      string `json:"to"`
	Subject string `json:"subject"`
	Text    string `json:"text"`
	HTML    string `json:"html"`
}
