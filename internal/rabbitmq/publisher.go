package rabbitmq

import (
	"encoding/json"
	"fmt"

	"github.com/streadway/amqp"
)

// GearReminderEvent is the message body published when a gear-reminder
// post is created.
type GearReminderEvent struct {
	PostID     string   `json:"post_id"`
	AuthorName string   `json:"author_name"`
	Content    string   `json:"content"`
	Items      []string `json:"items"`
	Priority   string   `json:"priority"`
}

// Publisher publishes reminder events over one channel.
type Publisher struct {
	ch *amqp.Channel
}

// NewPublisher creates a Publisher bound to an open channel.
func NewPublisher(ch *amqp.Channel) *Publisher {
	return &Publisher{ch: ch}
}

// PublishGearReminder routes a gear-reminder event to the worker queue.
func (p *Publisher) PublishGearReminder(event GearReminderEvent) error {
	return PublishMessage(p.ch, Exchange, GearRoutingKey, event)
}

// PublishMessage publishes a JSON-encoded message to the exchange with
// the given routing key.
func PublishMessage(ch *amqp.Channel, exchange, routingKey string, message any) error {
	const op = "rabbitmq.PublishMessage"
	body, err := json.Marshal(message)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}

	err = ch.Publish(
		exchange,
		routingKey,
		false,
		false,
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
		},
	)
	if err != nil {
		return fmt.Errorf("%s: %w", op, err)
	}
	return nil
}
