// internal/publisher/mqtt/client.go
package mqtt

import (
	"context"
	"errors"
	"fmt"
	"net"
	"strconv"
	"time"

	paho "github.com/eclipse/paho.mqtt.golang"
	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// Client is a single broker session.
// Publishes are serialized by paho; Client adds only timeouts and context.
type Client struct {
	cli     paho.Client
	timeout time.Duration
	log     zerolog.Logger
}

type Config struct {
	Host     string
	Port     int
	Username string
	Password string

	ClientIDPrefix string
	KeepAlive      time.Duration
	Timeout        time.Duration
}

// BrokerURL returns the tcp:// URL for host and port.
func BrokerURL(host string, port int) string {
	return "tcp://" + net.JoinHostPort(host, strconv.Itoa(port))
}

// ClientID returns prefix-<uuid>. A random suffix keeps restarted
// containers from kicking each other off the broker.
func ClientID(prefix string) string {
	if prefix == "" {
		return uuid.NewString()
	}
	return prefix + "-" + uuid.NewString()
}

func options(cfg Config, log zerolog.Logger) *paho.ClientOptions {
	opts := paho.NewClientOptions().
		AddBroker(BrokerURL(cfg.Host, cfg.Port)).
		SetClientID(ClientID(cfg.ClientIDPrefix)).
		SetKeepAlive(cfg.KeepAlive).
		SetConnectTimeout(cfg.Timeout).
		SetAutoReconnect(true).
		SetConnectRetry(false).
		SetCleanSession(true)

	if cfg.Username != "" {
		opts.SetUsername(cfg.Username)
		opts.SetPassword(cfg.Password)
	}

	opts.SetOnConnectHandler(func(paho.Client) {
		log.Info().Msg("mqtt connected")
	})
	opts.SetConnectionLostHandler(func(_ paho.Client, err error) {
		log.Warn().Err(err).Msg("mqtt connection lost")
	})
	opts.SetReconnectingHandler(func(paho.Client, *paho.ClientOptions) {
		log.Info().Msg("mqtt reconnecting")
	})

	return opts
}

// Dial connects to the broker and fails fast: the first connect is not
// retried.
func Dial(cfg Config, log zerolog.Logger) (*Client, error) {
	if cfg.Host == "" {
		return nil, errors.New("mqtt: host required")
	}

	cli := paho.NewClient(options(cfg, log))

	tok := cli.Connect()
	if !tok.WaitTimeout(cfg.Timeout) {
		cli.Disconnect(0)
		return nil, fmt.Errorf("mqtt: connect %s: timed out after %s", BrokerURL(cfg.Host, cfg.Port), cfg.Timeout)
	}
	if err := tok.Error(); err != nil {
		return nil, fmt.Errorf("mqtt: connect %s: %w", BrokerURL(cfg.Host, cfg.Port), err)
	}

	return &Client{cli: cli, timeout: cfg.Timeout, log: log}, nil
}

// Publish sends payload and waits until the broker acknowledges it (for
// QoS > 0), the timeout elapses, or ctx is done.
func (c *Client) Publish(ctx context.Context, topic string, qos byte, retained bool, payload []byte) error {
	tok := c.cli.Publish(topic, qos, retained, payload)

	var timeout <-chan time.Time
	if c.timeout > 0 {
		t := time.NewTimer(c.timeout)
		defer t.Stop()
		timeout = t.C
	}

	select {
	case <-tok.Done():
		if err := tok.Error(); err != nil {
			return fmt.Errorf("mqtt: publish %s: %w", topic, err)
		}
		return nil
	case <-timeout:
		return fmt.Errorf("mqtt: publish %s: timed out after %s", topic, c.timeout)
	case <-ctx.Done():
		return fmt.Errorf("mqtt: publish %s: %w", topic, ctx.Err())
	}
}

// Connected reports whether the session is currently up.
func (c *Client) Connected() bool {
	return c.cli.IsConnectionOpen()
}

// Close disconnects, giving in-flight work 250ms to finish.
func (c *Client) Close() error {
	c.cli.Disconnect(250)
	return nil
}
