// Package raffle drives the client side of the raffle lifecycle held by an
// external ledger contract: create, buy tickets, finalize, select winners,
// claim and refund, plus the read-only queries. The contract owns all state;
// the client only requests transitions and observes the outcome.
package raffle

import (
	"context"
	"crypto/ecdsa"
	"errors"
	"math/big"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"github.com/ethereum/go-ethereum/crypto"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/contracts"
	"github.com/jumblecash/raffle-go/internal/logger"
)

// Recorder receives a notification for every successfully decoded lifecycle
// event. Implementations persist observations only; they are never consulted
// as a source of truth, and a recording failure never fails the operation.
type Recorder interface {
	RecordEvent(ctx context.Context, stage string, raffleID *big.Int, txHash common.Hash, blockNumber uint64, fields map[string]interface{}) error
}

// Config wires a Client to a deployed raffle contract and its payment token.
type Config struct {
	RaffleAddress common.Address
	TokenAddress  common.Address
	ChainID       *big.Int
	PrivateKey    *ecdsa.PrivateKey

	// PollInterval is the receipt polling cadence; defaults to one second.
	PollInterval time.Duration

	// Recorder, when set, persists observed lifecycle events.
	Recorder Recorder
}

// Client is the raffle lifecycle orchestrator. Operations are sequential
// pipelines of network round trips with no internal parallelism; concurrent
// callers racing the same raffle must serialize themselves.
type Client struct {
	backend       Backend
	pipeline      *pipeline
	decoder       *decoder
	raffleOps     *contracts.Registry
	tokenOps      *contracts.Registry
	raffleAddress common.Address
	tokenAddress  common.Address
	sender        common.Address
	recorder      Recorder
}

// NewClient builds a Client over an RPC backend. The backend is typically an
// *ethclient.Client; tests substitute a fake.
func NewClient(backend Backend, cfg Config) (*Client, error) {
	if backend == nil {
		return nil, errors.New("raffle: backend is required")
	}
	if cfg.PrivateKey == nil {
		return nil, errors.New("raffle: signing key is required")
	}
	if cfg.ChainID == nil {
		return nil, errors.New("raffle: chain id is required")
	}
	if cfg.RaffleAddress == (common.Address{}) || cfg.TokenAddress == (common.Address{}) {
		return nil, errors.New("raffle: raffle and token addresses are required")
	}

	return &Client{
		backend:       backend,
		pipeline:      newPipeline(backend, cfg.PrivateKey, cfg.ChainID, cfg.PollInterval),
		decoder:       &decoder{contractABI: contracts.Raffle()},
		raffleOps:     contracts.RaffleRegistry(),
		tokenOps:      contracts.TokenRegistry(),
		raffleAddress: cfg.RaffleAddress,
		tokenAddress:  cfg.TokenAddress,
		sender:        crypto.PubkeyToAddress(cfg.PrivateKey.PublicKey),
		recorder:      cfg.Recorder,
	}, nil
}

// Sender returns the signing account's address.
func (c *Client) Sender() common.Address {
	return c.sender
}

// record forwards a decoded lifecycle event to the recorder, if any.
func (c *Client) record(ctx context.Context, stage string, receipt *types.Receipt, raffleID *big.Int, fields map[string]interface{}) {
	if c.recorder == nil {
		return
	}
	err := c.recorder.RecordEvent(ctx, stage, raffleID, receipt.TxHash, receipt.BlockNumber.Uint64(), fields)
	if err != nil {
		logger.Warn("failed to record lifecycle event",
			zap.String("stage", stage),
			zap.Stringer("tx", receipt.TxHash),
			zap.Error(err),
		)
	}
}
