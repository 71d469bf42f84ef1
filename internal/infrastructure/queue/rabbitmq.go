package queue

import (
	"fmt"

	amqp "github.com/rabbitmq/amqp091-go"
)

// NewConnection dials the broker. Each consumer opens its own channel on
// the shared connection.
func NewConnection(host, port, user, password string) (*amqp.Connection, error) {
	url := fmt.Sprintf("amqp://%s:%s@%s:%s/", user, password, host, port)
	conn, err := amqp.Dial(url)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to RabbitMQ at %s:%s: %w", host, port, err)
	}
	return conn, nil
}
