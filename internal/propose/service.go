package propose

import (
	"context"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/safe"
	"github.com/rs/zerolog"
)

// SafeReader is the part of the coordination service the review needs.
type SafeReader interface {
	GetTransaction(ctx context.Context, safeTxHash string) (*safe.MultisigTransaction, error)
	GetSafeInfo(ctx context.Context, address string) (*safe.SafeInfo, error)
}

type reviewState struct {
	Transaction model.Fetched[*safe.MultisigTransaction]
	SafeInfo    model.Fetched[*safe.SafeInfo]
}

type proposeService struct {
	safe SafeReader
}

// Load fetches the transaction and the Safe independently. Failures are
// logged and kept in the returned state, never returned.
func (s *proposeService) Load(ctx context.Context, request model.TransactionRequest) reviewState {
	logger := zerolog.Ctx(ctx)
	state := reviewState{
		Transaction: model.NotAttempted[*safe.MultisigTransaction](),
	}

	if request.SafeTxHash != "" {
		tx, err := s.safe.GetTransaction(ctx, request.SafeTxHash)
		if err != nil {
			logger.Warn().Err(err).Str("safeTxHash", request.SafeTxHash).Msg("Error fetching Safe transaction")
			state.Transaction = model.Failed[*safe.MultisigTransaction](err)
		} else {
			state.Transaction = model.Succeeded(tx)
		}
	}

	info, err := s.safe.GetSafeInfo(ctx, request.SafeAddress)
	if err != nil {
		logger.Warn().Err(err).Str("safeAddress", request.SafeAddress).Msg("Error fetching Safe info")
		state.SafeInfo = model.Failed[*safe.SafeInfo](err)
	} else {
		state.SafeInfo = model.Succeeded(info)
	}

	return state
}
