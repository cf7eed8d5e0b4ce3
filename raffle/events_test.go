package raffle

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jumblecash/raffle-go/contracts"
)

func TestExtractEventIgnoresForeignAndUnknownEntries(t *testing.T) {
	buyer := common.HexToAddress("0x3333333333333333333333333333333333333333")
	raffleID := big.NewInt(7)

	// A purchase receipt interleaves the token transfer, an entry with a
	// signature the catalogue does not declare, and the purchase event.
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			tokenTransferLog(t, buyer, testRaffleAddress, big.NewInt(500)),
			{
				Address: testRaffleAddress,
				Topics:  []common.Hash{common.HexToHash("0xdeadbeef")},
			},
			raffleLog(t, testRaffleAddress, contracts.EventTicketsPurchased,
				[]common.Hash{bigTopic(raffleID), addressTopic(buyer)},
				big.NewInt(4),
			),
		},
	}

	fields, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventTicketsPurchased)
	require.True(t, found)
	assert.Equal(t, 0, raffleID.Cmp(fields["raffleId"].(*big.Int)))
	assert.Equal(t, buyer, fields["buyer"].(common.Address))
	assert.Equal(t, int64(4), fields["quantity"].(*big.Int).Int64())
}

func TestExtractEventPositionIndependent(t *testing.T) {
	creator := common.HexToAddress("0x4444444444444444444444444444444444444444")
	created := raffleLog(t, testRaffleAddress, contracts.EventRaffleCreated,
		[]common.Hash{bigTopic(big.NewInt(1))},
		creator, big.NewInt(100),
	)
	noise := tokenTransferLog(t, creator, testRaffleAddress, big.NewInt(1))

	for _, logs := range [][]*types.Log{
		{created, noise},
		{noise, created},
	} {
		receipt := &types.Receipt{Status: types.ReceiptStatusSuccessful, Logs: logs}
		fields, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventRaffleCreated)
		require.True(t, found)
		assert.Equal(t, creator, fields["creator"].(common.Address))
		assert.Equal(t, int64(100), fields["totalTickets"].(*big.Int).Int64())
	}
}

func TestExtractEventAbsent(t *testing.T) {
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			tokenTransferLog(t, common.Address{}, testRaffleAddress, big.NewInt(1)),
		},
	}

	fields, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventWinnersSelected)
	assert.False(t, found)
	assert.Nil(t, fields)
}

func TestExtractEventSkipsKnownTopicWithMissingData(t *testing.T) {
	// A proxy or interface mismatch can emit a recognized signature without
	// the data section. The entry must be skipped whole, never returned as a
	// partial field map.
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			{
				Address: testRaffleAddress,
				Topics: []common.Hash{
					contracts.Raffle().Events[contracts.EventRaffleCreated].ID,
					bigTopic(big.NewInt(9)),
				},
				Data: nil,
			},
		},
	}

	fields, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventRaffleCreated)
	assert.False(t, found)
	assert.Nil(t, fields)
}

func TestExtractEventDatalessEventAcceptsEmptyData(t *testing.T) {
	// RaffleDeclaredNull carries no non-indexed inputs, so an empty data
	// section is its well-formed encoding.
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			raffleLog(t, testRaffleAddress, contracts.EventRaffleDeclaredNull,
				[]common.Hash{bigTopic(big.NewInt(9))},
			),
		},
	}

	fields, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventRaffleDeclaredNull)
	require.True(t, found)
	assert.Equal(t, int64(9), fields["raffleId"].(*big.Int).Int64())
}

func TestExtractEventSameContractDifferentEvent(t *testing.T) {
	// A WinnersSelected entry must not satisfy a SequenceNumberRequested
	// lookup even though both came from the raffle contract.
	receipt := &types.Receipt{
		Status: types.ReceiptStatusSuccessful,
		Logs: []*types.Log{
			raffleLog(t, testRaffleAddress, contracts.EventWinnersSelected,
				[]common.Hash{bigTopic(big.NewInt(3))},
				big.NewInt(42),
			),
		},
	}

	_, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventSequenceNumberRequested)
	assert.False(t, found)

	fields, found := extractEvent(receipt, testRaffleAddress, contracts.Raffle(), contracts.EventWinnersSelected)
	require.True(t, found)
	assert.Equal(t, int64(42), fields["validTickets"].(*big.Int).Int64())
}
