package raffle

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// FinalizeRaffle requests the randomness sequence for a raffle whose end
// block has passed. The randomness-request fee is re-read immediately before
// submission rather than taken from any earlier quote; the provider may
// reprice between blocks. Randomness delivery is asynchronous and is not
// awaited here — callers poll GetRaffleInfo for the finalized flag.
func (c *Client) FinalizeRaffle(ctx context.Context, raffleID *big.Int) (*SequenceRequested, error) {
	fee, err := c.GetSequenceFees(ctx)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	logger.Debug("finalizing raffle...",
		zap.Stringer("raffleId", raffleID),
		zap.Stringer("sequenceFee", fee),
	)
	receipt, err := c.pipeline.submit(ctx, c.raffleAddress, c.raffleOps, contracts.OpFinalizeRaffle, fee,
		raffleID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	fields, ok := extractEvent(receipt, c.raffleAddress, contracts.Raffle(), contracts.EventSequenceNumberRequested)
	if !ok {
		eventAbsent(contracts.EventSequenceNumberRequested, receipt)
		return nil, nil
	}

	event := &SequenceRequested{
		RaffleID:       fields["raffleId"].(*big.Int),
		SequenceNumber: fields["sequenceNumber"].(uint64),
	}
	c.record(ctx, contracts.EventSequenceNumberRequested, receipt, event.RaffleID, fields)

	logger.Info("randomness sequence requested",
		zap.Stringer("raffleId", event.RaffleID),
		zap.Uint64("sequenceNumber", event.SequenceNumber),
	)
	return event, nil
}
