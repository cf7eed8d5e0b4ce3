package raffle

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/rpc"
)

// UnknownFailure names a revert whose payload does not match any declared
// signature. The raw payload stays attached for diagnostics.
const UnknownFailure = "UnknownFailure"

// RevertReason names a plain require-style revert, the standard
// Error(string) ABI encoding. The message is Args[0].
const RevertReason = "Error"

// DecodedFailure is a raw failure translated into a named reason from the
// contract's declared failure set.
type DecodedFailure struct {
	Name  string
	Args  []interface{}
	Raw   []byte
	cause error
}

func (f *DecodedFailure) Error() string {
	switch {
	case f.Name == UnknownFailure:
		return fmt.Sprintf("raffle: unknown failure: %v", f.cause)
	case len(f.Args) > 0:
		return fmt.Sprintf("raffle: %s%v", f.Name, f.Args)
	default:
		return "raffle: " + f.Name
	}
}

func (f *DecodedFailure) Unwrap() error {
	return f.cause
}

// decoder maps raw failures onto the declared failure signatures of the
// interface catalogue. Decoding is best-effort and total: the decoder never
// fails, and decoding the same failure twice yields the same result.
type decoder struct {
	contractABI abi.ABI
}

func (d *decoder) Decode(err error) *DecodedFailure {
	if err == nil {
		return nil
	}
	var decoded *DecodedFailure
	if errors.As(err, &decoded) {
		// Decoded once already, at the boundary.
		return decoded
	}

	data, ok := revertData(err)
	if !ok || len(data) < 4 {
		return &DecodedFailure{Name: UnknownFailure, Raw: data, cause: err}
	}

	for name, declared := range d.contractABI.Errors {
		if !bytes.Equal(declared.ID.Bytes()[:4], data[:4]) {
			continue
		}
		args, unpackErr := declared.Inputs.Unpack(data[4:])
		if unpackErr != nil {
			break
		}
		return &DecodedFailure{Name: name, Args: args, Raw: data, cause: err}
	}

	if reason, unpackErr := abi.UnpackRevert(data); unpackErr == nil {
		return &DecodedFailure{Name: RevertReason, Args: []interface{}{reason}, Raw: data, cause: err}
	}

	return &DecodedFailure{Name: UnknownFailure, Raw: data, cause: err}
}

// revertData digs the revert payload out of a raw failure. JSON-RPC errors
// expose it through the rpc.DataError interface, usually hex-encoded.
func revertData(err error) ([]byte, bool) {
	var dataErr rpc.DataError
	if !errors.As(err, &dataErr) {
		return nil, false
	}
	switch v := dataErr.ErrorData().(type) {
	case string:
		decoded, decodeErr := hexutil.Decode(v)
		return decoded, decodeErr == nil
	case hexutil.Bytes:
		return v, true
	case []byte:
		return v, true
	}
	return nil, false
}
