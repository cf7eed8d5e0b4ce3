package raffle

import (
	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/core/types"
	"go.uber.org/zap"

	"github.com/jumblecash/raffle-go/internal/logger"
)

// extractEvent locates the first log entry emitted by the contract at source
// that decodes to eventName and returns its fields. Entries from other
// contracts (the token approval shares the purchase receipt) and entries
// whose signature the catalogue does not know are skipped, not errors. A
// missing event is reported as absent: the transaction did succeed on-chain.
func extractEvent(receipt *types.Receipt, source common.Address, contractABI abi.ABI, eventName string) (map[string]interface{}, bool) {
	for _, entry := range receipt.Logs {
		if entry.Address != source || len(entry.Topics) == 0 {
			continue
		}
		event, err := contractABI.EventByID(entry.Topics[0])
		if err != nil || event.Name != eventName {
			continue
		}

		// Unpack unconditionally: an empty data section only passes when the
		// event declares no non-indexed inputs. A known topic with a missing
		// data section must not yield a partial field map.
		fields := make(map[string]interface{})
		if err := contractABI.UnpackIntoMap(fields, event.Name, entry.Data); err != nil {
			logger.Warn("malformed log entry for a known event, skipping",
				zap.String("event", event.Name),
				zap.Stringer("tx", receipt.TxHash),
				zap.Error(err),
			)
			continue
		}
		if err := abi.ParseTopicsIntoMap(fields, indexedArguments(event.Inputs), entry.Topics[1:]); err != nil {
			logger.Warn("malformed topics for a known event, skipping",
				zap.String("event", event.Name),
				zap.Stringer("tx", receipt.TxHash),
				zap.Error(err),
			)
			continue
		}
		return fields, true
	}
	return nil, false
}

func indexedArguments(args abi.Arguments) abi.Arguments {
	var indexed abi.Arguments
	for _, arg := range args {
		if arg.Indexed {
			indexed = append(indexed, arg)
		}
	}
	return indexed
}

// eventAbsent reports a soft anomaly: the transaction succeeded but the
// expected semantic signal was not found, e.g. due to a proxy or interface
// mismatch. Callers re-query ground truth instead of trusting the client.
func eventAbsent(eventName string, receipt *types.Receipt) {
	logger.Warn("expected event not found in transaction receipt",
		zap.String("event", eventName),
		zap.Stringer("tx", receipt.TxHash),
	)
}
