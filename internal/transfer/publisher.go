package transfer

import (
	"context"

	"github.com/plats-network/sponsor-ledger/internal/domain"
)

// Subjects on the transfer stream. The asset-transfer service consumes
// transfers.request.* and transfers.register, and publishes results to
// transfers.result.{asset}.
const (
	subjectRequestPrefix = "transfers.request."
	subjectResultPrefix  = "transfers.result."
	// SubjectResultWildcard matches every result subject
	SubjectResultWildcard = "transfers.result.*"
	// SubjectRegister carries the one-time storage registration request
	SubjectRegister = "transfers.register"
)

// RequestSubject returns the request subject for an asset kind
func RequestSubject(asset domain.AssetKind) string {
	return subjectRequestPrefix + string(asset)
}

// ResultSubject returns the result subject for an asset kind
func ResultSubject(asset domain.AssetKind) string {
	return subjectResultPrefix + string(asset)
}

// Publisher defines the interface for publishing transfer requests to the
// asset-transfer service
//
//go:generate mockgen -source=publisher.go -destination=../mocks/transfer_publisher.go -package=mocks -mock_names=Publisher=MockTransferPublisher
type Publisher interface {
	// PublishTransferRequest publishes an outbound transfer request
	PublishTransferRequest(ctx context.Context, req *domain.TransferRequest) error
	// PublishStorageRegistration publishes the storage registration request
	PublishStorageRegistration(ctx context.Context, req *domain.StorageRegistration) error
	// Close closes the connection
	Close()
}
