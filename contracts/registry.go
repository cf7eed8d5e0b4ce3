package contracts

import (
	"fmt"

	"github.com/ethereum/go-ethereum/accounts/abi"
)

// Operation is one registered mutating contract method.
type Operation struct {
	Name    string
	Payable bool
	method  abi.Method
}

// Registry maps operation names to their fixed ABI method schemas. Calls are
// validated against the schema when the calldata is constructed, not at the
// network boundary, so a misshapen call never leaves the process.
type Registry struct {
	ops map[string]Operation
}

// NewRegistry builds a registry over the given ABI, restricted to the named
// operations. Registering a name the ABI does not declare is a programming
// error and panics.
func NewRegistry(contractABI abi.ABI, names ...string) *Registry {
	ops := make(map[string]Operation, len(names))
	for _, name := range names {
		method, ok := contractABI.Methods[name]
		if !ok {
			panic(fmt.Sprintf("contracts: operation %q not declared in ABI", name))
		}
		ops[name] = Operation{
			Name:    name,
			Payable: method.StateMutability == "payable",
			method:  method,
		}
	}
	return &Registry{ops: ops}
}

// RaffleRegistry returns the registry of the raffle contract's mutating
// operations.
func RaffleRegistry() *Registry {
	return NewRegistry(Raffle(),
		OpCreateRaffle,
		OpBuyTickets,
		OpFinalizeRaffle,
		OpSelectWinners,
		OpClaimPrize,
		OpRefundTicket,
	)
}

// TokenRegistry returns the registry of the token operations the client may
// submit.
func TokenRegistry() *Registry {
	return NewRegistry(ERC20(), OpApprove)
}

// Operation reports the registered operation for name.
func (r *Registry) Operation(name string) (Operation, bool) {
	op, ok := r.ops[name]
	return op, ok
}

// Pack validates args against the operation's declared schema and returns the
// encoded calldata.
func (r *Registry) Pack(name string, args ...interface{}) ([]byte, error) {
	op, ok := r.ops[name]
	if !ok {
		return nil, fmt.Errorf("contracts: unknown operation %q", name)
	}
	if len(args) != len(op.method.Inputs) {
		return nil, fmt.Errorf("contracts: %s expects %d argument(s), got %d",
			name, len(op.method.Inputs), len(args))
	}
	input, err := op.method.Inputs.Pack(args...)
	if err != nil {
		return nil, fmt.Errorf("contracts: encode %s: %w", name, err)
	}
	// Appending onto method.ID would share its backing array across calls.
	calldata := make([]byte, 0, 4+len(input))
	calldata = append(calldata, op.method.ID...)
	return append(calldata, input...), nil
}
