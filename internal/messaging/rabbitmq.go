package messaging

import (
	"context"
	"errors"
	"fmt"
	"log"
	"sync"
	"time"

	"github.com/streadway/amqp"
)

var errClientClosed = errors.New("rabbitmq client is closed")

type RabbitMQClient struct {
	config      *RabbitMQConfig
	connection  *amqp.Connection
	channel     *amqp.Channel
	reconnected chan struct{}
	mu          sync.RWMutex
	isClosing   bool
	ctx         context.Context
	cancel      context.CancelFunc
}

func NewRabbitMQClient(ctx context.Context, config *RabbitMQConfig) *RabbitMQClient {
	ctx, cancel := context.WithCancel(ctx)

	return &RabbitMQClient{
		config:      config,
		reconnected: make(chan struct{}),
		ctx:         ctx,
		cancel:      cancel,
	}
}

// Connect dials the broker and declares the topic exchange, retrying
// RetryCount times with RetryDelay between attempts. The client lock is
// only taken to install the new session, so publishers fail fast with
// ErrNotConnected while a dial is in progress.
func (r *RabbitMQClient) Connect() error {
	var err error
	for i := 0; i < r.config.RetryCount; i++ {
		var (
			connection *amqp.Connection
			channel    *amqp.Channel
		)
		if connection, channel, err = r.dial(); err == nil {
			if err = r.setSession(connection, channel); err != nil {
				return err
			}
			log.Printf("Successfully connected to RabbitMQ: %s", r.config.Host)
			go r.handleReconnection(connection)
			return nil
		}

		log.Printf("RabbitMQ connection error (attempt %d/%d): %v", i+1, r.config.RetryCount, err)
		if i < r.config.RetryCount-1 {
			select {
			case <-time.After(r.config.RetryDelay):
			case <-r.ctx.Done():
				return r.ctx.Err()
			}
		}
	}

	return fmt.Errorf("failed to connect to RabbitMQ: %w", err)
}

func (r *RabbitMQClient) dial() (*amqp.Connection, *amqp.Channel, error) {
	connection, err := amqp.DialConfig(r.config.ConnectionURL(), amqp.Config{
		Dial: amqp.DefaultDial(r.config.ConnectionTimeout),
	})
	if err != nil {
		return nil, nil, err
	}

	channel, err := connection.Channel()
	if err != nil {
		connection.Close()
		return nil, nil, fmt.Errorf("failed to open channel: %w", err)
	}

	err = channel.ExchangeDeclare(
		r.config.Exchange, // name
		"topic",           // type
		true,              // durable
		false,             // auto-deleted
		false,             // internal
		false,             // no-wait
		nil,               // arguments
	)
	if err != nil {
		channel.Close()
		connection.Close()
		return nil, nil, fmt.Errorf("failed to create exchange: %w", err)
	}

	return connection, channel, nil
}

// setSession installs a freshly dialed connection and wakes consumers
// waiting on the previous session.
func (r *RabbitMQClient) setSession(connection *amqp.Connection, channel *amqp.Channel) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isClosing {
		if channel != nil {
			channel.Close()
		}
		if connection != nil {
			connection.Close()
		}
		return errClientClosed
	}

	r.connection = connection
	r.channel = channel
	close(r.reconnected)
	r.reconnected = make(chan struct{})
	return nil
}

func (r *RabbitMQClient) handleReconnection(connection *amqp.Connection) {
	notifyClose := connection.NotifyClose(make(chan *amqp.Error, 1))

	select {
	case err := <-notifyClose:
		r.mu.RLock()
		closing := r.isClosing
		r.mu.RUnlock()
		if closing {
			return
		}

		log.Printf("RabbitMQ connection is lost: %v. Trying reconnect...", err)
		select {
		case <-time.After(2 * time.Second):
		case <-r.ctx.Done():
			return
		}
		if reconnectErr := r.Connect(); reconnectErr != nil {
			log.Printf("Reconnect error: %v", reconnectErr)
		}
	case <-r.ctx.Done():
	}
}

func (r *RabbitMQClient) Channel() *amqp.Channel {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.channel
}

// session returns the current channel together with a channel that is
// closed the next time a new session replaces it.
func (r *RabbitMQClient) session() (*amqp.Channel, <-chan struct{}) {
	r.mu.RLock()
	defer r.mu.RUnlock()
	return r.channel, r.reconnected
}

func (r *RabbitMQClient) Exchange() string {
	return r.config.Exchange
}

func (r *RabbitMQClient) Done() <-chan struct{} {
	return r.ctx.Done()
}

func (r *RabbitMQClient) Close() error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.isClosing {
		return nil
	}

	r.isClosing = true
	r.cancel()

	var closeErr error

	if r.channel != nil {
		if err := r.channel.Close(); err != nil {
			closeErr = fmt.Errorf("channel close error: %w", err)
			log.Printf("Failed to close channel: %v", err)
		}
	}

	if r.connection != nil {
		if err := r.connection.Close(); err != nil {
			if closeErr != nil {
				closeErr = fmt.Errorf("%v; connection close error: %w", closeErr, err)
			} else {
				closeErr = fmt.Errorf("connection close error: %w", err)
			}
			log.Printf("Failed to close connection: %v", err)
		}
	}

	if closeErr == nil {
		log.Println("RabbitMQ connection closed successfully")
	}

	return closeErr
}

func (r *RabbitMQClient) IsConnected() bool {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return r.connection != nil && !r.connection.IsClosed()
}
