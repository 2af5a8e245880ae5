package transfer

import (
	"context"
	"fmt"
	"time"

	"github.com/cenkalti/backoff/v4"
	"github.com/nats-io/nats.go"
	"go.uber.org/zap"

	"github.com/plats-network/sponsor-ledger/internal/adapter"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/logger"
)

// Config holds the configuration for the NATS JetStream transfer publisher
type Config struct {
	URL            string
	StreamName     string
	MaxReconnects  int
	ReconnectWait  time.Duration
	ConnectionName string
}

type publisher struct {
	nc         adapter.NatsConn
	js         adapter.JetStream
	streamName string
	json       adapter.JSON
}

// NewPublisher creates a new NATS JetStream transfer publisher
func NewPublisher(cfg Config, natsJS adapter.NatsJetStream, jsonAdapter adapter.JSON) (Publisher, error) {
	opts := []nats.Option{
		nats.Name(cfg.ConnectionName),
		nats.MaxReconnects(cfg.MaxReconnects),
		nats.ReconnectWait(cfg.ReconnectWait),
		nats.DisconnectErrHandler(func(nc *nats.Conn, err error) {
			if err != nil {
				logger.Error(err, zap.String("message", "Disconnected from NATS"))
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info("Reconnected to NATS", zap.String("url", nc.ConnectedUrl()))
		}),
		nats.ClosedHandler(func(nc *nats.Conn) {
			logger.Info("NATS connection closed")
		}),
	}

	nc, js, err := natsJS.Connect(cfg.URL, opts...)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to NATS and create JetStream: %w", err)
	}

	return &publisher{
		nc:         nc,
		js:         js,
		streamName: cfg.StreamName,
		json:       jsonAdapter,
	}, nil
}

// PublishTransferRequest publishes an outbound transfer request
func (p *publisher) PublishTransferRequest(ctx context.Context, req *domain.TransferRequest) error {
	logger.Debug("Publishing transfer request",
		zap.String("correlationID", req.CorrelationID),
		zap.String("eventID", string(req.EventID)),
		zap.String("receiver", string(req.Receiver)),
		zap.String("asset", string(req.Asset)),
		zap.Uint64("amount", req.Amount))

	return p.publish(ctx, RequestSubject(req.Asset), req)
}

// PublishStorageRegistration publishes the storage registration request
func (p *publisher) PublishStorageRegistration(ctx context.Context, req *domain.StorageRegistration) error {
	logger.Debug("Publishing storage registration",
		zap.String("account", string(req.Account)))

	return p.publish(ctx, SubjectRegister, req)
}

// publish marshals and publishes a message with exponential backoff retry
func (p *publisher) publish(ctx context.Context, subject string, message interface{}) error {
	data, err := p.json.Marshal(message)
	if err != nil {
		return fmt.Errorf("failed to marshal message: %w", err)
	}

	operation := func() error {
		_, err := p.js.Publish(ctx, subject, data)
		return err
	}

	b := backoff.NewExponentialBackOff()
	b.InitialInterval = 500 * time.Millisecond
	b.MaxInterval = 5 * time.Second
	b.MaxElapsedTime = 30 * time.Second
	b.Multiplier = 2.0
	b.RandomizationFactor = 0.5

	if err := backoff.Retry(operation, backoff.WithContext(b, ctx)); err != nil {
		return fmt.Errorf("failed to publish to %s after retries: %w", subject, err)
	}

	return nil
}

// Close closes the NATS connection
func (p *publisher) Close() {
	if p.nc == nil {
		return
	}

	p.nc.Close()
}
