// Package producer publishes records to Kafka with franz-go.
package producer

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	pkgstring "github.com/be1500616/zergoqrf/pkg/string"
)

var (
	ErrNoBrokers = errors.New("kafka brokers not configured")
	ErrClosed    = errors.New("producer is closed")
)

const flushTimeout = 10 * time.Second

// Message is one record to publish.
type Message struct {
	Topic   string
	Key     []byte
	Value   []byte
	Headers map[string]string
}

type settings struct {
	acks            kgo.Acks
	retries         int
	deliveryTimeout time.Duration
	clientID        string
	logger          *slog.Logger
}

type Option func(*settings)

// WithAcks accepts "0", "1" or "all". Anything else means all in-sync replicas.
func WithAcks(level string) Option {
	return func(s *settings) { s.acks = parseAcks(level) }
}

func WithRetries(n int) Option {
	return func(s *settings) { s.retries = n }
}

func WithDeliveryTimeout(d time.Duration) Option {
	return func(s *settings) { s.deliveryTimeout = d }
}

func WithClientID(id string) Option {
	return func(s *settings) { s.clientID = id }
}

func WithLogger(logger *slog.Logger) Option {
	return func(s *settings) { s.logger = logger }
}

func parseAcks(level string) kgo.Acks {
	switch level {
	case "0":
		return kgo.NoAck()
	case "1":
		return kgo.LeaderAck()
	default:
		return kgo.AllISRAcks()
	}
}

// Producer sends records synchronously. Safe for concurrent use.
type Producer struct {
	client *kgo.Client
	logger *slog.Logger

	mu     sync.RWMutex
	closed bool
}

// New connects lazily; brokers is a comma-separated seed list.
func New(brokers string, opts ...Option) (*Producer, error) {
	seeds := pkgstring.SplitList(brokers)
	if len(seeds) == 0 {
		return nil, ErrNoBrokers
	}

	s := settings{
		acks:            kgo.AllISRAcks(),
		retries:         3,
		deliveryTimeout: 30 * time.Second,
		clientID:        "zergoqrf-auth",
		logger:          slog.Default(),
	}
	for _, opt := range opts {
		opt(&s)
	}

	kopts := []kgo.Opt{
		kgo.SeedBrokers(seeds...),
		kgo.ClientID(s.clientID),
		kgo.RequiredAcks(s.acks),
		kgo.RecordRetries(s.retries),
		kgo.ProducerLinger(5 * time.Millisecond),
		kgo.AllowAutoTopicCreation(),
	}
	// Idempotent writes require acks=all.
	if s.acks != kgo.AllISRAcks() {
		kopts = append(kopts, kgo.DisableIdempotentWrite())
	}
	if s.deliveryTimeout > 0 {
		kopts = append(kopts, kgo.RecordDeliveryTimeout(s.deliveryTimeout))
	}

	client, err := kgo.NewClient(kopts...)
	if err != nil {
		return nil, fmt.Errorf("create kafka client: %w", err)
	}
	return &Producer{client: client, logger: s.logger}, nil
}

func toRecord(msg *Message) *kgo.Record {
	rec := &kgo.Record{Topic: msg.Topic, Key: msg.Key, Value: msg.Value}
	for k, v := range msg.Headers {
		rec.Headers = append(rec.Headers, kgo.RecordHeader{Key: k, Value: []byte(v)})
	}
	return rec
}

// Produce blocks until the broker acknowledges msg or ctx ends.
func (p *Producer) Produce(ctx context.Context, msg *Message) error {
	p.mu.RLock()
	defer p.mu.RUnlock()
	if p.closed {
		return ErrClosed
	}

	if err := p.client.ProduceSync(ctx, toRecord(msg)).FirstErr(); err != nil {
		return fmt.Errorf("produce to %s: %w", msg.Topic, err)
	}
	return nil
}

func (p *Producer) Health(ctx context.Context) error {
	if err := p.client.Ping(ctx); err != nil {
		return fmt.Errorf("kafka ping: %w", err)
	}
	return nil
}

// Close flushes what is buffered, then releases the client. Calling it twice
// is a no-op.
func (p *Producer) Close() error {
	p.mu.Lock()
	defer p.mu.Unlock()
	if p.closed {
		return nil
	}
	p.closed = true

	ctx, cancel := context.WithTimeout(context.Background(), flushTimeout)
	defer cancel()
	if err := p.client.Flush(ctx); err != nil {
		p.logger.Warn("kafka flush incomplete on close", "error", err)
	}
	p.client.Close()
	return nil
}
