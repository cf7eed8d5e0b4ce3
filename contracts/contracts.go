// Package contracts is the static catalogue of the external interfaces the
// client talks to: ABI declarations for the raffle and token contracts, the
// lifecycle event names, the closed set of declared failure reasons, and the
// typed operation registry used to encode mutating calls.
package contracts

import (
	"strings"
	"sync"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Lifecycle events emitted by the raffle contract.
const (
	EventRaffleCreated           = "RaffleCreated"
	EventTicketsPurchased        = "TicketsPurchased"
	EventSequenceNumberRequested = "SequenceNumberRequested"
	EventWinnersSelected         = "WinnersSelected"
	EventPrizeClaimed            = "PrizeClaimed"
	EventTicketRefunded          = "TicketRefunded"
	EventRaffleDeclaredNull      = "RaffleDeclaredNull"
)

// Mutating operations of the raffle contract.
const (
	OpCreateRaffle   = "createRaffle"
	OpBuyTickets     = "buyTickets"
	OpFinalizeRaffle = "finalizeRaffle"
	OpSelectWinners  = "selectWinners"
	OpClaimPrize     = "claimPrize"
	OpRefundTicket   = "refundTicket"
)

// Read operations of the raffle contract.
const (
	OpGetRaffleInfo            = "getRaffleInfo"
	OpGetUserTickets           = "getUserTickets"
	OpGetWinningTicketsForPool = "getWinningTicketsForPool"
	OpGetTicketInfo            = "getTicketInfo"
	OpGetSequenceFees          = "getSequenceFees"
	OpGetTicketPrice           = "getTicketPrice"
)

// Token contract operation used ahead of a purchase.
const OpApprove = "approve"

var (
	parseOnce sync.Once
	raffleABI abi.ABI
	erc20ABI  abi.ABI
)

func parse() {
	var err error
	raffleABI, err = abi.JSON(strings.NewReader(RaffleABI))
	if err != nil {
		panic("contracts: invalid raffle ABI: " + err.Error())
	}
	erc20ABI, err = abi.JSON(strings.NewReader(ERC20ABI))
	if err != nil {
		panic("contracts: invalid erc20 ABI: " + err.Error())
	}
}

// Raffle returns the parsed raffle contract ABI.
func Raffle() abi.ABI {
	parseOnce.Do(parse)
	return raffleABI
}

// ERC20 returns the parsed token contract ABI.
func ERC20() abi.ABI {
	parseOnce.Do(parse)
	return erc20ABI
}
