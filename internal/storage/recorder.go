package storage

import (
	"context"
	"encoding/json"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"

	"github.com/jumblecash/raffle-go/contracts"
)

// Recorder adapts Storage to the lifecycle client's observation hook. Claim
// and refund events additionally refresh the per-ticket snapshot.
type Recorder struct {
	storage Storage
}

func NewRecorder(s Storage) *Recorder {
	return &Recorder{storage: s}
}

func (r *Recorder) RecordEvent(ctx context.Context, stage string, raffleID *big.Int, txHash common.Hash, blockNumber uint64, fields map[string]interface{}) error {
	payload, err := json.Marshal(fields)
	if err != nil {
		return err
	}

	record := &EventRecord{
		RaffleID:    raffleID.String(),
		Stage:       stage,
		TxHash:      txHash.Hex(),
		BlockNumber: blockNumber,
		Payload:     string(payload),
		ObservedAt:  time.Now().Unix(),
	}
	if err := r.storage.AppendEvent(record); err != nil {
		return err
	}

	switch stage {
	case contracts.EventPrizeClaimed:
		return r.storage.UpsertTicket(&TicketRecord{
			RaffleID: raffleID.String(),
			TicketID: fieldBig(fields, "ticketId"),
			Owner:    fieldAddress(fields, "winner"),
			Claimed:  true,
		})
	case contracts.EventTicketRefunded:
		return r.storage.UpsertTicket(&TicketRecord{
			RaffleID: raffleID.String(),
			TicketID: fieldBig(fields, "ticketId"),
			Owner:    fieldAddress(fields, "user"),
			Refunded: true,
		})
	}
	return nil
}

func fieldBig(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(*big.Int); ok && v != nil {
		return v.String()
	}
	return ""
}

func fieldAddress(fields map[string]interface{}, name string) string {
	if v, ok := fields[name].(common.Address); ok {
		return v.Hex()
	}
	return ""
}
