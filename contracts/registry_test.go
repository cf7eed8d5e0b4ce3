package contracts

import (
	"math/big"
	"testing"

	"github.com/ethereum/go-ethereum/common"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRaffleRegistryCoversLifecycle(t *testing.T) {
	registry := RaffleRegistry()

	for _, name := range []string{
		OpCreateRaffle, OpBuyTickets, OpFinalizeRaffle,
		OpSelectWinners, OpClaimPrize, OpRefundTicket,
	} {
		op, ok := registry.Operation(name)
		require.True(t, ok, "operation %s must be registered", name)
		assert.Equal(t, name, op.Name)
	}

	// Read methods are not submittable operations.
	_, ok := registry.Operation(OpGetRaffleInfo)
	assert.False(t, ok)
}

func TestRegistryPayability(t *testing.T) {
	registry := RaffleRegistry()

	finalize, _ := registry.Operation(OpFinalizeRaffle)
	assert.True(t, finalize.Payable, "finalizeRaffle carries the randomness fee")

	buy, _ := registry.Operation(OpBuyTickets)
	assert.False(t, buy.Payable)
}

func TestRegistryPackSelectorAndArguments(t *testing.T) {
	registry := RaffleRegistry()

	calldata, err := registry.Pack(OpClaimPrize, big.NewInt(5), big.NewInt(12))
	require.NoError(t, err)

	method := Raffle().Methods[OpClaimPrize]
	require.Equal(t, method.ID, calldata[:4])

	args, err := method.Inputs.Unpack(calldata[4:])
	require.NoError(t, err)
	assert.Equal(t, int64(5), args[0].(*big.Int).Int64())
	assert.Equal(t, int64(12), args[1].(*big.Int).Int64())
}

func TestRegistryPackReturnsIndependentCalldata(t *testing.T) {
	registry := RaffleRegistry()

	first, err := registry.Pack(OpClaimPrize, big.NewInt(5), big.NewInt(12))
	require.NoError(t, err)
	snapshot := append([]byte(nil), first...)

	// Neither a later Pack nor caller-side mutation may reach back into a
	// previously returned buffer or the shared method schema.
	second, err := registry.Pack(OpClaimPrize, big.NewInt(6), big.NewInt(13))
	require.NoError(t, err)
	assert.Equal(t, snapshot, first)

	second[0] ^= 0xff
	third, err := registry.Pack(OpClaimPrize, big.NewInt(6), big.NewInt(13))
	require.NoError(t, err)
	assert.Equal(t, Raffle().Methods[OpClaimPrize].ID, third[:4])
}

func TestRegistryPackUnknownOperation(t *testing.T) {
	_, err := RaffleRegistry().Pack("drainFunds", big.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown operation")
}

func TestRegistryPackArityMismatch(t *testing.T) {
	_, err := RaffleRegistry().Pack(OpBuyTickets, big.NewInt(1))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "argument")
}

func TestRegistryPackArgumentTypeMismatch(t *testing.T) {
	// quantity is uint32; a string cannot encode.
	_, err := RaffleRegistry().Pack(OpBuyTickets, big.NewInt(1), "four")
	require.Error(t, err)
}

func TestRegistryPackTupleSlice(t *testing.T) {
	type pool struct {
		FundPercentage *big.Int
		TicketQuantity *big.Int
	}
	token := common.HexToAddress("0x2222222222222222222222222222222222222222")

	calldata, err := RaffleRegistry().Pack(OpCreateRaffle,
		uint32(100),
		token,
		big.NewInt(1_000_000),
		[]pool{
			{FundPercentage: big.NewInt(70), TicketQuantity: big.NewInt(10)},
			{FundPercentage: big.NewInt(30), TicketQuantity: big.NewInt(40)},
		},
		uint32(20),
		uint32(2),
	)
	require.NoError(t, err)
	assert.Equal(t, Raffle().Methods[OpCreateRaffle].ID, calldata[:4])
}

func TestNewRegistryRejectsUndeclaredName(t *testing.T) {
	assert.Panics(t, func() {
		NewRegistry(Raffle(), "selfDestruct")
	})
}

func TestTokenRegistry(t *testing.T) {
	registry := TokenRegistry()

	spender := common.HexToAddress("0x1111111111111111111111111111111111111111")
	calldata, err := registry.Pack(OpApprove, spender, big.NewInt(500))
	require.NoError(t, err)
	assert.Equal(t, ERC20().Methods[OpApprove].ID, calldata[:4])

	_, ok := registry.Operation(OpBuyTickets)
	assert.False(t, ok)
}
