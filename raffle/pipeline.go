package raffle

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"fmt"
	"math/big"
	"time"

	ethereum "github.com/ethereum/go-ethereum"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// Backend is the slice of the JSON-RPC surface the client needs.
// *ethclient.Client satisfies it.
type Backend interface {
	PendingNonceAt(ctx context.Context, account common.Address) (uint64, error)
	SuggestGasPrice(ctx context.Context) (*big.Int, error)
	EstimateGas(ctx context.Context, msg ethereum.CallMsg) (uint64, error)
	SendTransaction(ctx context.Context, tx *types.Transaction) error
	TransactionReceipt(ctx context.Context, txHash common.Hash) (*types.Receipt, error)
	CallContract(ctx context.Context, msg ethereum.CallMsg, blockNumber *big.Int) ([]byte, error)
}

// pipeline submits state-changing calls and blocks until the network reports
// inclusion. It surfaces raw failures unmodified; decoding belongs to the
// error decoder.
type pipeline struct {
	backend      Backend
	key          *ecdsa.PrivateKey
	sender       common.Address
	chainID      *big.Int
	pollInterval time.Duration
}

func newPipeline(backend Backend, key *ecdsa.PrivateKey, chainID *big.Int, pollInterval time.Duration) *pipeline {
	if pollInterval <= 0 {
		pollInterval = time.Second
	}
	return &pipeline{
		backend:      backend,
		key:          key,
		sender:       crypto.PubkeyToAddress(key.PublicKey),
		chainID:      chainID,
		pollInterval: pollInterval,
	}
}

// submit encodes op against the registry, sends one signed transaction and
// waits for its receipt. Submission is at-most-once: the network, not the
// client, defines finality, and an abandoned wait does not mean the
// transaction will not land.
func (p *pipeline) submit(ctx context.Context, to common.Address, registry *contracts.Registry, op string, value *big.Int, args ...interface{}) (*types.Receipt, error) {
	calldata, err := registry.Pack(op, args...)
	if err != nil {
		return nil, err
	}
	if value != nil && value.Sign() > 0 {
		operation, ok := registry.Operation(op)
		if !ok || !operation.Payable {
			return nil, fmt.Errorf("raffle: operation %s is not payable", op)
		}
	}

	nonce, err := p.backend.PendingNonceAt(ctx, p.sender)
	if err != nil {
		return nil, fmt.Errorf("raffle: fetch nonce: %w", err)
	}
	gasPrice, err := p.backend.SuggestGasPrice(ctx)
	if err != nil {
		return nil, fmt.Errorf("raffle: suggest gas price: %w", err)
	}

	msg := ethereum.CallMsg{
		From:     p.sender,
		To:       &to,
		Value:    value,
		Data:     calldata,
		GasPrice: gasPrice,
	}
	gasLimit, err := p.backend.EstimateGas(ctx, msg)
	if err != nil {
		// An estimation revert carries the same payload execution would.
		return nil, err
	}

	tx := types.NewTx(&types.LegacyTx{
		Nonce:    nonce,
		To:       &to,
		Value:    value,
		Gas:      gasLimit,
		GasPrice: gasPrice,
		Data:     calldata,
	})
	signed, err := types.SignTx(tx, types.LatestSignerForChainID(p.chainID), p.key)
	if err != nil {
		return nil, fmt.Errorf("raffle: sign %s: %w", op, err)
	}
	if err := p.backend.SendTransaction(ctx, signed); err != nil {
		return nil, err
	}

	logger.Debug("transaction submitted, awaiting inclusion...",
		zap.String("operation", op),
		zap.Stringer("tx", signed.Hash()),
	)
	receipt, err := p.waitMined(ctx, signed.Hash())
	if err != nil {
		return nil, err
	}
	if receipt.Status == types.ReceiptStatusFailed {
		return nil, p.replayRevert(ctx, msg, gasLimit, receipt)
	}

	logger.Debug("transaction included",
		zap.String("operation", op),
		zap.Stringer("tx", signed.Hash()),
		zap.Uint64("block", receipt.BlockNumber.Uint64()),
	)
	return receipt, nil
}

// waitMined polls for the receipt until the transaction is included or the
// context ends.
func (p *pipeline) waitMined(ctx context.Context, txHash common.Hash) (*types.Receipt, error) {
	ticker := time.NewTicker(p.pollInterval)
	defer ticker.Stop()

	for {
		receipt, err := p.backend.TransactionReceipt(ctx, txHash)
		if err == nil {
			return receipt, nil
		}
		if !errors.Is(err, ethereum.NotFound) {
			logger.Warn("receipt lookup failed, retrying...", zap.Stringer("tx", txHash), zap.Error(err))
		}

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-ticker.C:
		}
	}
}

// replayRevert re-executes a failed transaction as a read-only call at its
// inclusion block to recover the revert payload the receipt does not carry.
func (p *pipeline) replayRevert(ctx context.Context, msg ethereum.CallMsg, gasLimit uint64, receipt *types.Receipt) error {
	msg.Gas = gasLimit
	if _, err := p.backend.CallContract(ctx, msg, receipt.BlockNumber); err != nil {
		return err
	}
	return fmt.Errorf("raffle: transaction %s reverted with no recoverable reason", receipt.TxHash)
}
