// Package service holds outbound integrations the handlers call into.
// Errors are logged and returned so callers can decide whether a failed
// publish should abort the request (signup) or be ignored (reminders).
package service

import (
	"context"
	"encoding/json"
	"time"

	amqp "github.com/rabbitmq/amqp091-go"
	"github.com/sirupsen/logrus"

	"github.com/medicore/hospital-api/internal/queue"
)

// MailPublisher pushes MailRequestedEvents onto the mail.outbound queue for
// the background consumer to deliver. A fresh connection per publish keeps
// the implementation simple and robust against broker restarts; mail volume
// here is far too low for connection reuse to matter.
type MailPublisher struct {
	URL string
	Log *logrus.Logger
}

// NewMailPublisher builds a publisher against the given broker URL.
func NewMailPublisher(url string, log *logrus.Logger) *MailPublisher {
	return &MailPublisher{URL: url, Log: log}
}

// Publish marshals the event and publishes it persistently to mail.outbound.
// The queue declare is idempotent so publisher and consumer can start in any
// order. Any error is logged and returned.
func (p *MailPublisher) Publish(ctx context.Context, event queue.MailRequestedEvent) error {
	conn, err := amqp.Dial(p.URL)
	if err != nil {
		p.Log.WithError(err).Error("rabbitmq: dial failed")
		return err
	}
	defer func() { _ = conn.Close() }()

	ch, err := conn.Channel()
	if err != nil {
		p.Log.WithError(err).Error("rabbitmq: channel open failed")
		return err
	}
	defer func() { _ = ch.Close() }()

	// Durable so queued mail survives broker restarts.
	if _, err := ch.QueueDeclare(
		queue.MailQueueName, // name
		true,                // durable
		false,               // autoDelete
		false,               // exclusive
		false,               // noWait
		nil,                 // args
	); err != nil {
		p.Log.WithError(err).Error("rabbitmq: queue declare failed")
		return err
	}

	body, err := json.Marshal(event)
	if err != nil {
		p.Log.WithError(err).Error("rabbitmq: marshal event failed")
		return err
	}

	pub := amqp.Publishing{
		ContentType:  "application/json",
		DeliveryMode: amqp.Persistent, // store on disk
		Timestamp:    time.Now().UTC(),
		Body:         body,
	}

	if err := ch.PublishWithContext(ctx,
		"",                  // default exchange
		queue.MailQueueName, // routing key = queue name
		false,               // mandatory
		false,               // immediate
		pub,
	); err != nil {
		p.Log.WithError(err).Error("rabbitmq: publish failed")
		return err
	}

	return nil
}
