package messaging

import (
	"context"
	"encoding/json"
	"fmt"
	"log"

	"github.com/Rovan44/shopping-app-44/internal/events"
	"github.com/streadway/amqp"
)

type EventHandler func(ctx context.Context, event events.Event) error

type Consumer struct {
	client      *RabbitMQClient
	queueName   string
	consumerTag string
}

func NewConsumer(client *RabbitMQClient, queueName, consumerTag string) *Consumer {
	return &Consumer{
		client:      client,
		queueName:   queueName,
		consumerTag: consumerTag,
	}
}

type subscribeFunc func() (<-chan amqp.Delivery, <-chan struct{}, error)

// ConsumeEvents binds the queue to every routing key and dispatches
// deliveries to handler until the client is closed. The subscription is
// re-established after each reconnect. Failed messages are rejected
// without requeue; there is no retry.
func (c *Consumer) ConsumeEvents(routingKeys []string, handler EventHandler) error {
	if !c.client.IsConnected() {
		return ErrNotConnected
	}

	subscribe := func() (<-chan amqp.Delivery, <-chan struct{}, error) {
		return c.subscribe(routingKeys)
	}
	messages, reconnected, err := subscribe()
	if err != nil {
		return err
	}

	go c.run(messages, reconnected, subscribe, handler)
	return nil
}

func (c *Consumer) subscribe(routingKeys []string) (<-chan amqp.Delivery, <-chan struct{}, error) {
	channel, reconnected := c.client.session()
	if channel == nil {
		return nil, reconnected, ErrNotConnected
	}

	queue, err := channel.QueueDeclare(
		c.queueName, // name
		true,        // durable
		false,       // delete when unused
		false,       // exclusive
		false,       // no-wait
		nil,         // arguments
	)
	if err != nil {
		return nil, reconnected, fmt.Errorf("queue declare error: %w", err)
	}

	for _, routingKey := range routingKeys {
		err = channel.QueueBind(
			queue.Name,          // queue name
			routingKey,          // routing key
			c.client.Exchange(), // exchange
			false,               // no-wait
			nil,                 // arguments
		)
		if err != nil {
			return nil, reconnected, fmt.Errorf("queue bind error (%s): %w", routingKey, err)
		}
		log.Printf("Queue %s bound to routing key: %s", queue.Name, routingKey)
	}

	messages, err := channel.Consume(
		queue.Name,    // queue
		c.consumerTag, // consumer
		false,         // auto-ack
		false,         // exclusive
		false,         // no-local
		false,         // no-wait
		nil,           // args
	)
	if err != nil {
		return nil, reconnected, fmt.Errorf("consume start error: %w", err)
	}

	log.Printf("Consuming events on queue: %s", queue.Name)
	return messages, reconnected, nil
}

// run dispatches deliveries and resubscribes whenever the client installs a
// new session. A nil messages channel means the consumer is waiting for the
// next reconnect.
func (c *Consumer) run(messages <-chan amqp.Delivery, reconnected <-chan struct{}, subscribe subscribeFunc, handler EventHandler) {
	for {
		select {
		case msg, ok := <-messages:
			if !ok {
				log.Printf("Delivery channel closed: %s, waiting for reconnect", c.consumerTag)
				messages = nil
				continue
			}
			c.handleMessage(msg, handler)
		case <-reconnected:
			var err error
			messages, reconnected, err = subscribe()
			if err != nil {
				log.Printf("Resubscribe error: %v", err)
				messages = nil
				continue
			}
			log.Printf("Consumer resubscribed: %s", c.consumerTag)
		case <-c.client.Done():
			log.Printf("Consumer is stopped: %s", c.consumerTag)
			return
		}
	}
}

func (c *Consumer) handleMessage(msg amqp.Delivery, handler EventHandler) {
	var event events.Event

	if err := json.Unmarshal(msg.Body, &event); err != nil {
		log.Printf("Event deserialize error: %v", err)
		msg.Nack(false, false)
		return
	}

	log.Printf("Event received: %s from %s", event.EventType, event.Service)

	if err := handler(c.client.ctx, event); err != nil {
		log.Printf("Event process error: %v", err)
		msg.Nack(false, false)
		return
	}

	msg.Ack(false)
	log.Printf("Event processed successfully: %s", event.EventType)
}
