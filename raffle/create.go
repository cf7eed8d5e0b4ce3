package raffle

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// CreateRaffle submits the raffle parameters and returns the decoded
// RaffleCreated event carrying the new raffle id. A nil event with a nil
// error means the transaction landed but the event was absent; callers
// re-query ground truth.
func (c *Client) CreateRaffle(ctx context.Context, params CreateParams) (*RaffleCreated, error) {
	logger.Debug("creating raffle...",
		zap.Uint32("totalTickets", params.TotalTickets),
		zap.Uint32("duration", params.Duration),
		zap.Uint32("minTicketsRequired", params.MinTicketsRequired),
	)

	receipt, err := c.pipeline.submit(ctx, c.raffleAddress, c.raffleOps, contracts.OpCreateRaffle, nil,
		params.TotalTickets,
		c.tokenAddress,
		params.TicketTokenQuantity,
		params.Distribution,
		params.Duration,
		params.MinTicketsRequired,
	)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	fields, ok := extractEvent(receipt, c.raffleAddress, contracts.Raffle(), contracts.EventRaffleCreated)
	if !ok {
		eventAbsent(contracts.EventRaffleCreated, receipt)
		return nil, nil
	}

	event := &RaffleCreated{
		RaffleID:     fields["raffleId"].(*big.Int),
		Creator:      fields["creator"].(common.Address),
		TotalTickets: fields["totalTickets"].(*big.Int),
	}
	c.record(ctx, contracts.EventRaffleCreated, receipt, event.RaffleID, fields)

	logger.Info("raffle created", zap.Stringer("raffleId", event.RaffleID))
	return event, nil
}
