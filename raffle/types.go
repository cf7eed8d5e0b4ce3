package raffle

import (
	"math/big"

	"github.com/ethereum/go-ethereum/common"
)

// TicketDistribution is one prize pool: the share of the collected funds it
// pays out and the number of winning tickets drawn for it. Field names must
// line up with the ABI tuple components.
type TicketDistribution struct {
	FundPercentage *big.Int
	TicketQuantity *big.Int
}

// CreateParams carries the raffle parameters submitted at creation. The
// distribution percentages must sum to 100; the contract validates this and
// the client does not re-check.
type CreateParams struct {
	TotalTickets        uint32
	TicketTokenQuantity *big.Int // base per-ticket price, token units
	Distribution        []TicketDistribution
	Duration            uint32 // blocks until the sale ends
	MinTicketsRequired  uint32
}

// RaffleInfo is a snapshot of contract-owned raffle state. The contract is
// the source of truth; snapshots go stale as soon as they are read.
type RaffleInfo struct {
	TicketToken         common.Address
	TicketTokenQuantity *big.Int
	EndBlock            uint32
	MinTicketsRequired  uint32
	TotalSold           uint32
	AvailableTickets    uint32
	TicketsRefunded     uint32
	SequenceNumber      uint64
	IsActive            bool
	IsFinalized         bool
	IsNull              bool
}

// TicketInfo is a snapshot of one ticket's contract-owned state.
type TicketInfo struct {
	Owner         common.Address
	PurchasePrice *big.Int
	PrizeShare    *big.Int
	IsRefunded    bool
	IsClaimed     bool
}

// RaffleCreated is the decoded result of a successful creation.
type RaffleCreated struct {
	RaffleID     *big.Int
	Creator      common.Address
	TotalTickets *big.Int
}

// TicketsPurchased reports the quantity actually purchased.
type TicketsPurchased struct {
	RaffleID *big.Int
	Buyer    common.Address
	Quantity *big.Int
}

// SequenceRequested carries the pending randomness request identifier.
// Randomness itself is delivered to the contract out of band.
type SequenceRequested struct {
	RaffleID       *big.Int
	SequenceNumber uint64
}

// WinnersSelected reports the count of tickets deemed valid for prize
// allocation.
type WinnersSelected struct {
	RaffleID     *big.Int
	ValidTickets *big.Int
}

// PrizeClaimed is the decoded result of a successful claim.
type PrizeClaimed struct {
	RaffleID *big.Int
	Winner   common.Address
	TicketID *big.Int
	Amount   *big.Int
}

// TicketRefunded is the decoded result of a successful refund.
type TicketRefunded struct {
	RaffleID *big.Int
	User     common.Address
	TicketID *big.Int
}
