package raffle

import (
	"context"
	"math/big"

	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// SelectWinners triggers winner selection once randomness has been delivered
// to the contract. Calling earlier surfaces the decoded RaffleNotFinalized
// failure; there is no silent no-op.
func (c *Client) SelectWinners(ctx context.Context, raffleID *big.Int) (*WinnersSelected, error) {
	logger.Debug("selecting winners...", zap.Stringer("raffleId", raffleID))

	receipt, err := c.pipeline.submit(ctx, c.raffleAddress, c.raffleOps, contracts.OpSelectWinners, nil,
		raffleID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	fields, ok := extractEvent(receipt, c.raffleAddress, contracts.Raffle(), contracts.EventWinnersSelected)
	if !ok {
		eventAbsent(contracts.EventWinnersSelected, receipt)
		return nil, nil
	}

	event := &WinnersSelected{
		RaffleID:     fields["raffleId"].(*big.Int),
		ValidTickets: fields["validTickets"].(*big.Int),
	}
	c.record(ctx, contracts.EventWinnersSelected, receipt, event.RaffleID, fields)

	logger.Info("winners selected",
		zap.Stringer("raffleId", event.RaffleID),
		zap.Stringer("validTickets", event.ValidTickets),
	)
	return event, nil
}
