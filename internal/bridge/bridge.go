package bridge

import (
	"context"
	"fmt"
	"time"

	"github.com/alitto/pond/v2"
	"github.com/nats-io/nats.go"
	"github.com/nats-io/nats.go/jetstream"
	"go.uber.org/zap"

	"github.com/plats-network/sponsor-ledger/internal/adapter"
	"github.com/plats-network/sponsor-ledger/internal/domain"
	"github.com/plats-network/sponsor-ledger/internal/logger"
	"github.com/plats-network/sponsor-ledger/internal/providers/temporal"
	"github.com/plats-network/sponsor-ledger/internal/store"
	"github.com/plats-network/sponsor-ledger/internal/store/schema"
	"github.com/plats-network/sponsor-ledger/internal/transfer"
)

const (
	defaultWorkerPoolSize  = 10
	defaultWorkerQueueSize = 100
)

// Config holds the configuration for the transfer result bridge
type Config struct {
	URL             string
	StreamName      string
	ConsumerName    string
	MaxReconnects   int
	ReconnectWait   time.Duration
	ConnectionName  string
	AckWaitTimeout  time.Duration
	MaxDeliver      int
	WorkerPoolSize  int
	WorkerQueueSize int
}

// Bridge defines the interface for the transfer result bridge
type Bridge interface {
	// Run starts consuming transfer results
	Run(ctx context.Context) error
	// Close closes the bridge and cleans up resources
	Close()
}

type bridge struct {
	nc           adapter.NatsConn
	js           adapter.JetStream
	store        store.Store
	orchestrator temporal.TemporalOrchestrator
	json         adapter.JSON
	config       Config
}

// NewBridge creates a new transfer result bridge
func NewBridge(
	cfg Config,
	natsJS adapter.NatsJetStream,
	st store.Store,
	orchestrator temporal.TemporalOrchestrator,
	jsonAdapter adapter.JSON,
) (Bridge, error) {
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

	b := &bridge{
		nc:           nc,
		js:           js,
		store:        st,
		orchestrator: orchestrator,
		json:         jsonAdapter,
		config:       cfg,
	}

	return b, nil
}

// Run starts consuming transfer results
func (b *bridge) Run(ctx context.Context) error {
	logger.Info("Starting transfer result bridge",
		zap.String("stream", b.config.StreamName),
		zap.String("consumer", b.config.ConsumerName))

	consumerConfig := jetstream.ConsumerConfig{
		Durable:       b.config.ConsumerName,
		AckPolicy:     jetstream.AckExplicitPolicy,
		AckWait:       b.config.AckWaitTimeout,
		MaxDeliver:    b.config.MaxDeliver,
		FilterSubject: transfer.SubjectResultWildcard,
	}

	consumer, err := b.js.CreateOrUpdateConsumer(ctx, b.config.StreamName, consumerConfig)
	if err != nil {
		return fmt.Errorf("failed to create/update consumer: %w", err)
	}

	consumerInfo, err := consumer.Info(ctx)
	if err != nil {
		return fmt.Errorf("failed to get consumer info: %w", err)
	}
	logger.Info("Consumer created/retrieved", zap.String("consumer", consumerInfo.Name))

	workerPoolSize := b.config.WorkerPoolSize
	if workerPoolSize == 0 {
		workerPoolSize = defaultWorkerPoolSize
	}
	workerQueueSize := b.config.WorkerQueueSize
	if workerQueueSize == 0 {
		workerQueueSize = defaultWorkerQueueSize
	}

	pool := pond.NewPool(
		workerPoolSize,
		pond.WithQueueSize(workerQueueSize),
		pond.WithContext(ctx),
	)
	defer pool.StopAndWait()

	sub, err := consumer.Consume(func(msg adapter.Message) {
		pool.Submit(func() {
			b.handleMessage(ctx, msg)
		})
	})
	if err != nil {
		return fmt.Errorf("failed to create subscription: %w", err)
	}
	defer sub.Stop()

	logger.Info("Started consuming transfer results")

	<-ctx.Done()
	logger.Info("Shutting down transfer result bridge",
		zap.Uint64("submitted", pool.SubmittedTasks()),
		zap.Uint64("waiting", pool.WaitingTasks()))
	return ctx.Err()
}

// handleMessage processes a single transfer result message
func (b *bridge) handleMessage(ctx context.Context, msg adapter.Message) {
	metadata, _ := msg.Metadata()

	var result domain.TransferResult
	if err := b.json.Unmarshal(msg.Data(), &result); err != nil {
		logger.Error(err, zap.String("message", "Failed to unmarshal transfer result"))
		// Terminate message for unparseable data
		if err := msg.Term(); err != nil {
			logger.Error(err, zap.String("message", "Failed to terminate message"))
		}
		return
	}

	deliveryCount := uint64(0)
	if metadata != nil {
		deliveryCount = metadata.NumDelivered
	}
	logger.Info("Received transfer result",
		zap.String("correlationID", result.CorrelationID),
		zap.Bool("success", result.Success),
		zap.Uint64("deliveryCount", deliveryCount),
	)

	if err := b.resolveTransfer(ctx, &result); err != nil {
		logger.Error(err, zap.String("message", "Failed to resolve transfer"))
		// NAK to retry
		if err := msg.Nak(); err != nil {
			logger.Error(err, zap.String("message", "Failed to NAK message"))
		}
		return
	}

	if err := msg.Ack(); err != nil {
		logger.Error(err, zap.String("message", "Failed to ACK message"))
	}
}

// resolveTransfer signals the settlement workflow waiting on this transfer
func (b *bridge) resolveTransfer(ctx context.Context, result *domain.TransferResult) error {
	claimTransfer, err := b.store.GetClaimTransfer(ctx, result.CorrelationID)
	if err != nil {
		return fmt.Errorf("failed to look up claim transfer: %w", err)
	}
	if claimTransfer == nil {
		// No settlement ever issued this transfer; there is nothing to retry
		logger.Warn("Dropping result for unknown transfer",
			zap.String("correlationID", result.CorrelationID))
		return nil
	}

	if claimTransfer.Status != schema.ClaimTransferStatusPending {
		// Redelivered result for an already-resolved transfer
		logger.Info("Transfer already resolved, skipping",
			zap.String("correlationID", result.CorrelationID),
			zap.String("status", string(claimTransfer.Status)))
		return nil
	}

	err = b.orchestrator.SignalWorkflow(
		ctx,
		claimTransfer.WorkflowID,
		"",
		domain.TransferResolvedSignal,
		result,
	)
	if err != nil {
		return fmt.Errorf("failed to signal workflow %s: %w", claimTransfer.WorkflowID, err)
	}

	logger.Info("Transfer result forwarded to settlement",
		zap.String("correlationID", result.CorrelationID),
		zap.String("workflowID", claimTransfer.WorkflowID),
	)

	return nil
}

// Close closes the bridge and cleans up resources
func (b *bridge) Close() {
	if b.nc == nil {
		return
	}

	b.nc.Close()
}
