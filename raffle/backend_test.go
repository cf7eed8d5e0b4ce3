package raffle

import (
	"context"
	"math/big"
	"sync"
	"testing"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/require"

	"github.com/jumblecash/raffle-go/contracts"
)

var (
	testRaffleAddress = common.HexToAddress("0x1111111111111111111111111111111111111111")
	testTokenAddress  = common.HexToAddress("0x2222222222222222222222222222222222222222")
	testChainID       = big.NewInt(1337)
)

// rpcError mimics a JSON-RPC error carrying revert data, the shape
// *ethclient.Client surfaces for reverted calls.
type rpcError struct {
	msg  string
	data interface{}
}

func (e *rpcError) Error() string          { return e.msg }
func (e *rpcError) ErrorData() interface{} { return e.data }

// revertWith encodes a declared contract failure the way a node would
// return it.
func revertWith(t *testing.T, name string, args ...interface{}) error {
	t.Helper()
	declared, ok := contracts.Raffle().Errors[name]
	require.True(t, ok, "failure %s not declared", name)
	packed, err := declared.Inputs.Pack(args...)
	require.NoError(t, err)
	data := append(append([]byte{}, declared.ID.Bytes()[:4]...), packed...)
	return &rpcError{msg: "execution reverted", data: hexutil.Encode(data)}
}

// fakeBackend is a scripted Backend. Responses to reads are keyed by the
// 4-byte selector; receipts for sent transactions come from receiptFn.
type fakeBackend struct {
	mu          sync.Mutex
	nonce       uint64
	blockNumber uint64
	sent        []*types.Transaction
	receipts    map[common.Hash]*types.Receipt

	callResults map[string][]byte
	callErrs    map[string]error
	estimateErr map[string]error
	receiptFn   func(tx *types.Transaction) *types.Receipt
}

func newFakeBackend() *fakeBackend {
	b := &fakeBackend{
		receipts:    make(map[common.Hash]*types.Receipt),
		callResults: make(map[string][]byte),
		callErrs:    make(map[string]error),
		estimateErr: make(map[string]error),
	}
	b.receiptFn = func(*types.Transaction) *types.Receipt {
		return &types.Receipt{Status: types.ReceiptStatusSuccessful}
	}
	return b
}

func selectorOf(data []byte) string {
	if len(data) < 4 {
		return ""
	}
	return hexutil.Encode(data[:4])
}

func (b *fakeBackend) PendingNonceAt(ctx context.Context, account common.Address) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.nonce, nil
}

func (b *fakeBackend) SuggestGasPrice(ctx context.Context) (*big.Int, error) {
	return big.NewInt(1_000_000_000), nil
}

func (b *fakeBackend) EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	if err, ok := b.estimateErr[selectorOf(msg.Data)]; ok {
		return 0, err
	}
	return 50_000, nil
}

func (b *fakeBackend) SendTransaction(ctx context.Context, tx *types.Transaction) error {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.nonce++
	b.blockNumber++
	b.sent = append(b.sent, tx)
	receipt := b.receiptFn(tx)
	if receipt == nil {
		return nil
	}
	receipt.TxHash = tx.Hash()
	if receipt.BlockNumber == nil {
		receipt.BlockNumber = new(big.Int).SetUint64(b.blockNumber)
	}
	b.receipts[tx.Hash()] = receipt
	return nil
}

func (b *fakeBackend) TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	receipt, ok := b.receipts[txHash]
	if !ok {
		return nil, ethereum.NotFound
	}
	return receipt, nil
}

func (b *fakeBackend) CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	selector := selectorOf(msg.Data)
	if err, ok := b.callErrs[selector]; ok {
		return nil, err
	}
	if result, ok := b.callResults[selector]; ok {
		return result, nil
	}
	return nil, &rpcError{msg: "unexpected call " + selector}
}

// scriptCall prepares the return data of a read method.
func (b *fakeBackend) scriptCall(t *testing.T, contractABI string, method string, outputs ...interface{}) {
	t.Helper()
	var m = contracts.Raffle().Methods
	if contractABI == "erc20" {
		m = contracts.ERC20().Methods
	}
	declared, ok := m[method]
	require.True(t, ok)
	packed, err := declared.Outputs.Pack(outputs...)
	require.NoError(t, err)
	b.mu.Lock()
	defer b.mu.Unlock()
	b.callResults[hexutil.Encode(declared.ID)] = packed
}

func methodSelector(t *testing.T, name string) string {
	t.Helper()
	declared, ok := contracts.Raffle().Methods[name]
	require.True(t, ok)
	return hexutil.Encode(declared.ID)
}

func newTestClient(t *testing.T, backend Backend, recorder Recorder) *Client {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)

	client, err := NewClient(backend, Config{
		RaffleAddress: testRaffleAddress,
		TokenAddress:  testTokenAddress,
		ChainID:       testChainID,
		PrivateKey:    key,
		PollInterval:  time.Millisecond,
		Recorder:      recorder,
	})
	require.NoError(t, err)
	return client
}

// raffleLog encodes a log entry for one of the raffle contract's events.
// indexedTopics excludes topic0, which is derived from the event signature.
func raffleLog(t *testing.T, source common.Address, eventName string, indexedTopics []common.Hash, dataArgs ...interface{}) *types.Log {
	t.Helper()
	declared, ok := contracts.Raffle().Events[eventName]
	require.True(t, ok)
	data, err := declared.Inputs.NonIndexed().Pack(dataArgs...)
	require.NoError(t, err)
	return &types.Log{
		Address: source,
		Topics:  append([]common.Hash{declared.ID}, indexedTopics...),
		Data:    data,
	}
}

// tokenTransferLog encodes an ERC-20 Transfer entry, the kind of unrelated
// log that shares a purchase receipt.
func tokenTransferLog(t *testing.T, from, to common.Address, value *big.Int) *types.Log {
	t.Helper()
	declared, ok := contracts.ERC20().Events["Transfer"]
	require.True(t, ok)
	data, err := declared.Inputs.NonIndexed().Pack(value)
	require.NoError(t, err)
	return &types.Log{
		Address: testTokenAddress,
		Topics:  []common.Hash{declared.ID, addressTopic(from), addressTopic(to)},
		Data:    data,
	}
}

func bigTopic(v *big.Int) common.Hash {
	return common.BigToHash(v)
}

func addressTopic(a common.Address) common.Hash {
	return common.BytesToHash(a.Bytes())
}
