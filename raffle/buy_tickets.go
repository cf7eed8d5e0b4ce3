package raffle

import (
	"context"
	"math/big"

	"github.com/ethereum/go-ethereum/common"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// BuyTickets runs the strictly ordered two-transaction purchase protocol:
// first an ERC-20 allowance covering the full cost is granted to the raffle
// contract and confirmed, then the purchase itself is submitted. The
// allowance is sized from a fresh price read taken inside this call — the
// price is demand-sensitive, and a cached quote can under-approve.
func (c *Client) BuyTickets(ctx context.Context, raffleID *big.Int, quantity uint32) (*TicketsPurchased, error) {
	price, err := c.GetTicketPrice(ctx, raffleID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	totalCost := new(big.Int).Mul(price, new(big.Int).SetUint64(uint64(quantity)))

	logger.Debug("approving ticket payment...",
		zap.Stringer("raffleId", raffleID),
		zap.Uint32("quantity", quantity),
		zap.Stringer("ticketPrice", price),
		zap.Stringer("totalCost", totalCost),
	)
	_, err = c.pipeline.submit(ctx, c.tokenAddress, c.tokenOps, contracts.OpApprove, nil,
		c.raffleAddress, totalCost)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	logger.Debug("buying tickets...", zap.Stringer("raffleId", raffleID), zap.Uint32("quantity", quantity))
	receipt, err := c.pipeline.submit(ctx, c.raffleAddress, c.raffleOps, contracts.OpBuyTickets, nil,
		raffleID, quantity)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}

	fields, ok := extractEvent(receipt, c.raffleAddress, contracts.Raffle(), contracts.EventTicketsPurchased)
	if !ok {
		eventAbsent(contracts.EventTicketsPurchased, receipt)
		return nil, nil
	}

	event := &TicketsPurchased{
		RaffleID: fields["raffleId"].(*big.Int),
		Buyer:    fields["buyer"].(common.Address),
		Quantity: fields["quantity"].(*big.Int),
	}
	c.record(ctx, contracts.EventTicketsPurchased, receipt, event.RaffleID, fields)

	logger.Info("tickets purchased",
		zap.Stringer("raffleId", event.RaffleID),
		zap.Stringer("quantity", event.Quantity),
	)
	return event, nil
}
