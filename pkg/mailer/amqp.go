package mailer

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	amqp "github.com/streadway/amqp"
)

// AMQPMailer publishes email messages to a durable RabbitMQ queue consumed
// by a separate mail worker.
type AMQPMailer struct {
	conn    *amqp.Connection
	channel *amqp.Channel
	queue   string
}

// NewAMQPMailer connects to RabbitMQ and declares the mail queue.
func NewAMQPMailer(url, queue string) (*AMQPMailer, error) {
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ: %w", err)
	}

	ch, err := conn.Channel()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to open channel: %w", err)
	}

	if _, err := ch.QueueDeclare(
		queue,
		true,  // durable
		false, // delete when unused
		false, // exclusive
		false, // no-wait
		nil,
	); err != nil {
		ch.Close()
		conn.Close()
		return nil, fmt.Errorf("failed to declare %s: %w", queue, err)
	}

	return &AMQPMailer{
		conn:    conn,
		channel: ch,
		queue:   queue,
	}, nil
}

// Close closes the RabbitMQ channel and connection.
func (m *AMQPMailer) Close() error {
	var errs []error
	if m.channel != nil {
		if err := m.channel.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close channel: %w", err))
		}
	}
	if m.conn != nil {
		if err := m.conn.Close(); err != nil {
			errs = append(errs, fmt.Errorf("failed to close connection: %w", err))
		}
	}
	if len(errs) > 0 {
		return fmt.Errorf("errors closing AMQP mailer: %v", errs)
	}
	return nil
}

func (m *AMQPMailer) SendActivationEmail(_ context.Context, to, link string) error {
	return m.publish(Message{Kind: KindActivation, To: to, Link: link})
}

func (m *AMQPMailer) SendPasswordResetEmail(_ context.Context, to, link string) error {
	return m.publish(Message{Kind: KindPasswordReset, To: to, Link: link})
}

func (m *AMQPMailer) publish(msg Message) error {
	if m.channel == nil {
		return fmt.Errorf("AMQP channel is not available")
	}

	body, err := json.Marshal(msg)
	if err != nil {
		return fmt.Errorf("failed to marshal mail message: %w", err)
	}

	err = m.channel.Publish(
		"",      // default exchange
		m.queue, // routing key
		false,   // mandatory
		false,   // immediate
		amqp.Publishing{
			ContentType:  "application/json",
			Body:         body,
			DeliveryMode: amqp.Persistent,
			Timestamp:    time.Now(),
		})
	if err != nil {
		return fmt.Errorf("failed to publish mail message: %w", err)
	}
	return nil
}
