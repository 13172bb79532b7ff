package simulate

import (
	"context"
	"math/big"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/safe"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/tenderly"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

type TransactionReader interface {
	GetTransaction(ctx context.Context, safeTxHash string) (*safe.MultisigTransaction, error)
}

type BlockNumberReader interface {
	BlockNumber(ctx context.Context) (uint64, error)
}

type Simulator interface {
	CheckConfig() error
	Simulate(ctx context.Context, call tenderly.Call) (*tenderly.TransactionInfo, error)
}

type simulationService struct {
	safe      TransactionReader
	chain     BlockNumberReader
	simulator Simulator
}

// Simulate dry-runs the recorded Safe transaction against the latest block.
// Only a configuration problem is returned as an error; every other failure
// is carried in the result so the frame can show it.
func (s *simulationService) Simulate(ctx context.Context, request model.TransactionRequest) (model.Fetched[*tenderly.TransactionInfo], error) {
	if err := s.simulator.CheckConfig(); err != nil {
		return model.NotAttempted[*tenderly.TransactionInfo](), err
	}

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Str("safeTxHash", request.SafeTxHash).
		Str("safeAddress", request.SafeAddress).
		Msg("Starting simulation")

	info, err := s.run(ctx, request)
	if err != nil {
		logger.Error().Err(err).Str("safeTxHash", request.SafeTxHash).Msg("Simulation error")
		return model.Failed[*tenderly.TransactionInfo](err), nil
	}
	return model.Succeeded(info), nil
}

func (s *simulationService) run(ctx context.Context, request model.TransactionRequest) (*tenderly.TransactionInfo, error) {
	call, err := s.call(ctx, request)
	if err != nil {
		return nil, err
	}

	blockNumber, err := s.chain.BlockNumber(ctx)
	if err != nil {
		return nil, errors.Wrap(err, "Failed to read block number")
	}
	call.BlockNumber = blockNumber

	return s.simulator.Simulate(ctx, call)
}

// call resolves what to simulate: the recorded transaction when a hash is
// given, otherwise the call carried by the request.
func (s *simulationService) call(ctx context.Context, request model.TransactionRequest) (tenderly.Call, error) {
	if request.SafeTxHash == "" {
		value, err := parseWei(request.Value)
		if err != nil {
			return tenderly.Call{}, err
		}
		input := request.Data
		if input == "" {
			input = "0x"
		}
		return tenderly.Call{From: request.SafeAddress, To: request.To, Value: value, Input: input}, nil
	}

	tx, err := s.safe.GetTransaction(ctx, request.SafeTxHash)
	if err != nil {
		return tenderly.Call{}, errors.Wrap(err, "Failed to fetch Safe transaction")
	}

	value, err := parseWei(tx.Value)
	if err != nil {
		return tenderly.Call{}, err
	}

	from := tx.Safe
	if from == "" {
		from = request.SafeAddress
	}
	return tenderly.Call{From: from, To: tx.To, Value: value, Input: tx.CallData()}, nil
}

func parseWei(value string) (*big.Int, error) {
	if value == "" {
		return new(big.Int), nil
	}
	wei, ok := new(big.Int).SetString(value, 10)
	if !ok || wei.Sign() < 0 {
		return nil, errors.Errorf("invalid transaction value %q", value)
	}
	return wei, nil
}
