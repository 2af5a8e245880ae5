package domain

// TransferRequest is the outbound message asking the asset-transfer service to
// move value out of the contract holdings to a receiver. CorrelationID,
// EventID, and Receiver together are the correlation data the service echoes
// back in its result so the matching settlement can resume.
type TransferRequest struct {
	CorrelationID string    `json:"correlation_id"`
	EventID       EventID   `json:"event_id"`
	Receiver      Account   `json:"receiver"`
	Asset         AssetKind `json:"asset"`
	Amount        uint64    `json:"amount"`
}

// TransferResult is the asynchronous confirmation delivered by the
// asset-transfer service, at most once per request.
type TransferResult struct {
	CorrelationID string    `json:"correlation_id"`
	EventID       EventID   `json:"event_id"`
	Receiver      Account   `json:"receiver"`
	Asset         AssetKind `json:"asset"`
	Amount        uint64    `json:"amount"`
	Success       bool      `json:"success"`
	Reason        string    `json:"reason,omitempty"`
}

// StorageRegistration is the one-time administrative request registering the
// contract account with the token service's storage accounting.
type StorageRegistration struct {
	Account Account `json:"account"`
}

// TransferResolvedSignal is the name of the workflow signal channel carrying
// transfer results into a running claim settlement.
const TransferResolvedSignal = "transfer-resolved"
