package main

import (
	"context"
	"fmt"
	"math/big"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/ethereum/go-ethereum/ethclient"
	"github.com/joho/godotenv"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/internal/logger"
	"github.com/jumblecash/raffle-go/internal/storage"
	"github.com/jumblecash/raffle-go/raffle"
)

func main() {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	errCh := make(chan error, 1)

	go func() {
		errCh <- run(ctx)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			fmt.Printf("flow stopped with error: %v\n", err)
			cancel()
			os.Exit(1)
		}
	case <-waitForInterrupt():
		fmt.Println("interrupt received")
		cancel()
	}
}

func run(ctx context.Context) error {
	logger.Initialize(logger.Configuration{
		Level:   getenv("LOG_LEVEL", "debug"),
		Console: true,
	})

	if err := godotenv.Load(); err != nil {
		logger.Warn("no .env file found, relying on the environment")
	}

	client, backend, err := newClient()
	if err != nil {
		return err
	}
	defer backend.Close()

	// Create a raffle with a 70/20/10 split across three pools.
	created, err := client.CreateRaffle(ctx, raffle.CreateParams{
		TotalTickets:        100,
		TicketTokenQuantity: big.NewInt(1e18),
		Distribution: []raffle.TicketDistribution{
			{FundPercentage: big.NewInt(70), TicketQuantity: big.NewInt(10)},
			{FundPercentage: big.NewInt(20), TicketQuantity: big.NewInt(50)},
			{FundPercentage: big.NewInt(10), TicketQuantity: big.NewInt(40)},
		},
		Duration:           10,
		MinTicketsRequired: 2,
	})
	if err != nil {
		return err
	}
	if created == nil {
		return fmt.Errorf("raffle creation landed but emitted no event; re-query the contract")
	}

	if _, err := client.BuyTickets(ctx, created.RaffleID, 4); err != nil {
		return err
	}

	if err := waitForEndBlock(ctx, backend, client, created.RaffleID); err != nil {
		return err
	}

	if _, err := client.FinalizeRaffle(ctx, created.RaffleID); err != nil {
		return err
	}

	if err := waitForRandomness(ctx, client, created.RaffleID); err != nil {
		return err
	}

	if _, err := client.SelectWinners(ctx, created.RaffleID); err != nil {
		return err
	}

	tickets, err := client.GetUserTickets(ctx, created.RaffleID, client.Sender())
	if err != nil {
		return err
	}
	for _, ticketID := range tickets {
		if _, err := client.ClaimPrize(ctx, created.RaffleID, ticketID); err != nil {
			logger.Warn("claim failed", zap.Stringer("ticketId", ticketID), zap.Error(err))
		}
	}

	info, err := client.GetRaffleInfo(ctx, created.RaffleID)
	if err != nil {
		return err
	}
	logger.Info("final raffle state",
		zap.Uint32("totalSold", info.TotalSold),
		zap.Uint32("ticketsRefunded", info.TicketsRefunded),
		zap.Bool("isFinalized", info.IsFinalized),
		zap.Bool("isNull", info.IsNull),
	)
	return nil
}

func newClient() (*raffle.Client, *ethclient.Client, error) {
	backend, err := ethclient.Dial(os.Getenv("RPC_URL"))
	if err != nil {
		return nil, nil, fmt.Errorf("dial rpc: %w", err)
	}

	chainID, err := backend.ChainID(context.Background())
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("fetch chain id: %w", err)
	}

	key, err := crypto.HexToECDSA(os.Getenv("PRIVATE_KEY"))
	if err != nil {
		backend.Close()
		return nil, nil, fmt.Errorf("parse private key: %w", err)
	}

	client, err := raffle.NewClient(backend, raffle.Config{
		RaffleAddress: common.HexToAddress(os.Getenv("RAFFLE_ADDRESS")),
		TokenAddress:  common.HexToAddress(os.Getenv("TOKEN_ADDRESS")),
		ChainID:       chainID,
		PrivateKey:    key,
		Recorder:      storage.NewRecorder(storage.NewSqliteStorage(getenv("STORAGE_PATH", "observations.db"))),
	})
	if err != nil {
		backend.Close()
		return nil, nil, err
	}
	return client, backend, nil
}

// waitForEndBlock blocks until the chain passes the raffle's end block.
func waitForEndBlock(ctx context.Context, backend *ethclient.Client, client *raffle.Client, raffleID *big.Int) error {
	info, err := client.GetRaffleInfo(ctx, raffleID)
	if err != nil {
		return err
	}
	for {
		head, err := backend.BlockNumber(ctx)
		if err != nil {
			return err
		}
		if head >= uint64(info.EndBlock) {
			return nil
		}
		logger.Debug("waiting for raffle end block...",
			zap.Uint64("head", head),
			zap.Uint32("endBlock", info.EndBlock),
		)
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(12 * time.Second):
		}
	}
}

// waitForRandomness polls until the contract reports the raffle finalized.
func waitForRandomness(ctx context.Context, client *raffle.Client, raffleID *big.Int) error {
	for {
		info, err := client.GetRaffleInfo(ctx, raffleID)
		if err != nil {
			return err
		}
		if info.IsFinalized {
			return nil
		}
		if info.IsNull {
			return fmt.Errorf("raffle %s declared null", raffleID)
		}
		logger.Debug("waiting for randomness delivery...", zap.Stringer("raffleId", raffleID))
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(12 * time.Second):
		}
	}
}

func getenv(key, fallback string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return fallback
}

func waitForInterrupt() <-chan os.Signal {
	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, os.Interrupt, syscall.SIGTERM)
	return sigCh
}
