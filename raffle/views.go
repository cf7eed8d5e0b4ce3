package raffle

import (
	"context"
	"math/big"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"

	"github.com/jumblecash/raffle-go/contracts"
)

// call executes a read-only contract method and unpacks its outputs. Reads
// retry on rate limiting only; reverts are surfaced immediately.
func (c *Client) call(ctx context.Context, to common.Address, contractABI abi.ABI, method string, args ...interface{}) ([]interface{}, error) {
	calldata, err := contractABI.Pack(method, args...)
	if err != nil {
		return nil, err
	}
	ret, err := retryRateLimited(ctx, func() ([]byte, error) {
		return c.backend.CallContract(ctx, ethereum.CallMsg{
			From: c.sender,
			To:   &to,
			Data: calldata,
		}, nil)
	})
	if err != nil {
		return nil, err
	}
	return contractABI.Unpack(method, ret)
}

// GetRaffleInfo reads the current contract-owned snapshot of a raffle.
func (c *Client) GetRaffleInfo(ctx context.Context, raffleID *big.Int) (*RaffleInfo, error) {
	out, err := c.call(ctx, c.raffleAddress, contracts.Raffle(), contracts.OpGetRaffleInfo, raffleID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return &RaffleInfo{
		TicketToken:         out[0].(common.Address),
		TicketTokenQuantity: out[1].(*big.Int),
		EndBlock:            out[2].(uint32),
		MinTicketsRequired:  out[3].(uint32),
		TotalSold:           out[4].(uint32),
		AvailableTickets:    out[5].(uint32),
		TicketsRefunded:     out[6].(uint32),
		SequenceNumber:      out[7].(uint64),
		IsActive:            out[8].(bool),
		IsFinalized:         out[9].(bool),
		IsNull:              out[10].(bool),
	}, nil
}

// GetUserTickets lists the ticket ids a user holds in a raffle.
func (c *Client) GetUserTickets(ctx context.Context, raffleID *big.Int, user common.Address) ([]*big.Int, error) {
	out, err := c.call(ctx, c.raffleAddress, contracts.Raffle(), contracts.OpGetUserTickets, raffleID, user)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return out[0].([]*big.Int), nil
}

// GetWinningTicketsForPool lists the winning ticket ids drawn for one prize
// pool; meaningful only after winner selection.
func (c *Client) GetWinningTicketsForPool(ctx context.Context, raffleID, poolIndex *big.Int) ([]*big.Int, error) {
	out, err := c.call(ctx, c.raffleAddress, contracts.Raffle(), contracts.OpGetWinningTicketsForPool, raffleID, poolIndex)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return out[0].([]*big.Int), nil
}

// GetTicketInfo reads the current contract-owned snapshot of one ticket.
func (c *Client) GetTicketInfo(ctx context.Context, raffleID, ticketID *big.Int) (*TicketInfo, error) {
	out, err := c.call(ctx, c.raffleAddress, contracts.Raffle(), contracts.OpGetTicketInfo, raffleID, ticketID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return &TicketInfo{
		Owner:         out[0].(common.Address),
		PurchasePrice: out[1].(*big.Int),
		PrizeShare:    out[2].(*big.Int),
		IsRefunded:    out[3].(bool),
		IsClaimed:     out[4].(bool),
	}, nil
}

// GetSequenceFees reads the current randomness-request fee. The quote can
// change between blocks; FinalizeRaffle re-reads it itself.
func (c *Client) GetSequenceFees(ctx context.Context) (*big.Int, error) {
	out, err := c.call(ctx, c.raffleAddress, contracts.Raffle(), contracts.OpGetSequenceFees)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return out[0].(*big.Int), nil
}

// GetTicketPrice reads the current per-ticket price, which may move with
// demand.
func (c *Client) GetTicketPrice(ctx context.Context, raffleID *big.Int) (*big.Int, error) {
	out, err := c.call(ctx, c.raffleAddress, contracts.Raffle(), contracts.OpGetTicketPrice, raffleID)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return out[0].(*big.Int), nil
}

// GetAllowance reads the token allowance currently granted by owner to the
// raffle contract.
func (c *Client) GetAllowance(ctx context.Context, owner common.Address) (*big.Int, error) {
	out, err := c.call(ctx, c.tokenAddress, contracts.ERC20(), "allowance", owner, c.raffleAddress)
	if err != nil {
		return nil, c.decoder.Decode(err)
	}
	return out[0].(*big.Int), nil
}
