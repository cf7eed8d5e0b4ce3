package raffle

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/ethereum/go-ethereum/rpc"
)

type callFunc[T any] func() (T, error)

// retryRateLimited repeats a read while the endpoint answers 429. Reverts
// and every other failure return immediately: a revert means a protocol
// precondition is unmet, not a transient fault.
func retryRateLimited[T any](ctx context.Context, fn callFunc[T]) (T, error) {
	for {
		result, err := fn()
		if err != nil {
			var httpErr rpc.HTTPError
			if errors.As(err, &httpErr) && httpErr.StatusCode == http.StatusTooManyRequests {
				select {
				case <-ctx.Done():
					return result, ctx.Err()
				case <-time.After(500 * time.Millisecond):
					continue
				}
			}
		}
		return result, err
	}
}
