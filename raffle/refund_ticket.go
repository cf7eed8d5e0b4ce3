package raffle

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// RefundTicket invalidates a ticket and returns its purchase price. Refunds
// are only possible before finalization; a repeated refund surfaces the
// decoded TicketAlreadyRefunded failure.
func (c *Client) RefundTicket(ctx context.Context, raffleID, ticketID *big.Int) (*TicketRefunded, error) {
	logger.Debug("refunding ticket...",
		zap.Stringer("raffleId", raffleID),
		zap.Stringer("ticketId", ticketID),
	)

	receipt, err := c.pipeline.submit(ctx, c.raffleAddress, c.raffleOps, contracts.OpRefundTicket, nil,
		raffleID, ticketID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	fields, ok := extractEvent(receipt, c.raffleAddress, contracts.Raffle(), contracts.EventTicketRefunded)
	if !ok {
		eventAbsent(contracts.EventTicketRefunded, receipt)
		return nil, nil
	}

	event := &TicketRefunded{
		RaffleID: fields["raffleId"].(*big.Int),
		User:     fields["user"].(common.Address),
		TicketID: fields["ticketId"].(*big.Int),
	}
	c.record(ctx, contracts.EventTicketRefunded, receipt, event.RaffleID, fields)

	logger.Info("ticket refunded",
		zap.Stringer("raffleId", event.RaffleID),
		zap.Stringer("ticketId", event.TicketID),
	)
	return event, nil
}
