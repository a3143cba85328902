// Package nats publishes pass snapshots to NATS subjects with OpenTelemetry
// trace context carried in the message headers.
package nats

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/fwojciec/alpenpass"
	"github.com/nats-io/nats.go"
	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/propagation"
)

// DefaultSubject is the subject prefix; a snapshot of key k is published
// to "<prefix>.k".
const DefaultSubject = "alpenpass.pass"

// MsgPublisher is the part of *nats.Conn the Publisher needs.
type MsgPublisher interface {
	PublishMsg(m *nats.Msg) error
}

var _ alpenpass.Publisher = (*Publisher)(nil)

// Publisher publishes snapshots as JSON messages.
type Publisher struct {
	conn       MsgPublisher
	subject    string
	propagator propagation.TextMapPropagator
}

// Option configures a Publisher.
type Option func(*Publisher)

// WithSubject sets the subject prefix. Defaults to DefaultSubject.
func WithSubject(subject string) Option {
	return func(p *Publisher) {
		p.subject = subject
	}
}

// WithPropagator sets the propagator that writes trace headers.
// Defaults to the global OpenTelemetry propagator.
func WithPropagator(tmp propagation.TextMapPropagator) Option {
	return func(p *Publisher) {
		p.propagator = tmp
	}
}

// NewPublisher creates a Publisher on conn.
func NewPublisher(conn MsgPublisher, opts ...Option) *Publisher {
	p := &Publisher{
		conn:    conn,
		subject: DefaultSubject,
	}
	for _, opt := range opts {
		opt(p)
	}
	if p.propagator == nil {
		p.propagator = otel.GetTextMapPropagator()
	}
	return p
}

// Connect opens a named NATS connection that reconnects forever.
func Connect(url string) (*nats.Conn, error) {
	nc, err := nats.Connect(url, nats.Name("alpenpass"), nats.MaxReconnects(-1))
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS: %w", err)
	}
	return nc, nil
}

// Subject returns the subject a snapshot of key is published to.
func (p *Publisher) Subject(key string) string {
	return p.subject + "." + key
}

// Publish sends s as JSON to the subject of its key.
func (p *Publisher) Publish(ctx context.Context, s *alpenpass.Snapshot) error {
	if err := s.Validate(); err != nil {
		return err
	}
	data, err := json.Marshal(s)
	if err != nil {
		return err
	}
	msg := &nats.Msg{
		Subject: p.Subject(s.Key),
		Data:    data,
	}
	p.propagator.Inject(ctx, (*headerCarrier)(msg))
	return p.conn.PublishMsg(msg)
}

// headerCarrier adapts nats.Msg headers to propagation.TextMapCarrier.
type headerCarrier nats.Msg

func (c *headerCarrier) Get(key string) string {
	if c.Header == nil {
		return ""
	}
	return c.Header.Get(key)
}

func (c *headerCarrier) Set(key, val string) {
	if c.Header == nil {
		c.Header = make(nats.Header)
	}
	c.Header.Set(key, val)
}

func (c *headerCarrier) Keys() []string {
	if c.Header == nil {
		return nil
	}
	keys := make([]string, 0, len(c.Header))
	for k := range c.Header {
		keys = append(keys, k)
	}
	return keys
}
