package raffle

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// ClaimPrize collects the prize for a winning ticket. A repeated claim for
// the same ticket surfaces the decoded AlreadyClaimed failure rather than a
// generic error, so callers can treat the operation as idempotent.
func (c *Client) ClaimPrize(ctx context.Context, raffleID, ticketID *big.Int) (*PrizeClaimed, error) {
	logger.Debug("claiming prize...",
		zap.Stringer("raffleId", raffleID),
		zap.Stringer("ticketId", ticketID),
	)

	receipt, err := c.pipeline.submit(ctx, c.raffleAddress, c.raffleOps, contracts.OpClaimPrize, nil,
		raffleID, ticketID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	fields, ok := extractEvent(receipt, c.raffleAddress, contracts.Raffle(), contracts.EventPrizeClaimed)
	if !ok {
		eventAbsent(contracts.EventPrizeClaimed, receipt)
		return nil, nil
	}

	event := &PrizeClaimed{
		RaffleID: fields["raffleId"].(*big.Int),
		Winner:   fields["winner"].(common.Address),
		TicketID: fields["ticketId"].(*big.Int),
		Amount:   fields["amount"].(*big.Int),
	}
	c.record(ctx, contracts.EventPrizeClaimed, receipt, event.RaffleID, fields)

	logger.Info("prize claimed",
		zap.Stringer("raffleId", event.RaffleID),
		zap.Stringer("ticketId", event.TicketID),
		zap.Stringer("amount", event.Amount),
	)
	return event, nil
}
