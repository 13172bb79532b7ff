package propose

import (
	"errors"
	"testing"
	"time"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/safe"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	safeAddress = "0x5afe5afe5afe5afe5afe5afe5afe5afe5afe5afe"
	ownerA      = "0xAaAa000000000000000000000000000000000001"
	ownerB      = "0xbBbB000000000000000000000000000000000002"
	ownerC      = "0xCCCC000000000000000000000000000000000003"
	txHash      = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

var signedAt = time.Date(2024, time.October, 1, 12, 0, 0, 0, time.UTC)

func pendingTx() *safe.MultisigTransaction {
	data := "0xa9059cbb"
	return &safe.MultisigTransaction{
		Safe:                  safeAddress,
		To:                    "0x000000000000000000000000000000000000dEaD",
		Value:                 "1000",
		Data:                  &data,
		SafeTxHash:            txHash,
		ConfirmationsRequired: 2,
		Confirmations: []safe.Confirmation{
			{Owner: "0xaaaa000000000000000000000000000000000001", SubmissionDate: signedAt},
		},
	}
}

func threeOwners() *safe.SafeInfo {
	return &safe.SafeInfo{Address: safeAddress, Owners: []string{ownerA, ownerB, ownerC}, Threshold: 2}
}

func TestDeriveReviewRatioAndOwners(t *testing.T) {
	request := model.TransactionRequest{SafeAddress: safeAddress, SafeTxHash: txHash}
	state := reviewState{
		Transaction: model.Succeeded(pendingTx()),
		SafeInfo:    model.Succeeded(threeOwners()),
	}

	review := deriveReview(request, state)

	require.NotNil(t, review.Confirmations)
	assert.Equal(t, "1/2", review.Confirmations.Ratio())
	assert.Equal(t, 3, review.Confirmations.OwnerCount)

	owners := review.Confirmations.Owners
	require.Len(t, owners, 3)
	assert.True(t, owners[0].Confirmed, "confirmation must match owner ignoring case")
	assert.Equal(t, "Oct 1, 2024", owners[0].Status())
	assert.False(t, owners[1].Confirmed)
	assert.Equal(t, "Not signed yet", owners[1].Status())
	assert.False(t, owners[2].Confirmed)
	assert.False(t, review.Executed)
}

func TestDeriveReviewDenominatorIsServiceRequiredCount(t *testing.T) {
	tx := pendingTx()
	tx.ConfirmationsRequired = 5
	state := reviewState{
		Transaction: model.Succeeded(tx),
		SafeInfo:    model.Succeeded(&safe.SafeInfo{Owners: []string{ownerA}}),
	}

	review := deriveReview(model.TransactionRequest{SafeAddress: safeAddress}, state)

	assert.Equal(t, "1/5", review.Confirmations.Ratio())
	assert.Equal(t, 1, review.Confirmations.OwnerCount)
}

func TestDeriveReviewOmitsConfirmationsWhenAFetchFailed(t *testing.T) {
	request := model.TransactionRequest{SafeAddress: safeAddress, SafeTxHash: txHash}

	withoutInfo := deriveReview(request, reviewState{
		Transaction: model.Succeeded(pendingTx()),
		SafeInfo:    model.Failed[*safe.SafeInfo](errors.New("down")),
	})
	assert.Nil(t, withoutInfo.Confirmations)

	withoutTx := deriveReview(request, reviewState{
		Transaction: model.Failed[*safe.MultisigTransaction](errors.New("down")),
		SafeInfo:    model.Succeeded(threeOwners()),
	})
	assert.Nil(t, withoutTx.Confirmations)
	assert.False(t, withoutTx.Executed)
}

func TestDeriveReviewFallsBackToRecordedCall(t *testing.T) {
	request := model.TransactionRequest{SenderAddress: ownerA, SafeAddress: safeAddress, SafeTxHash: txHash}

	review := deriveReview(request, reviewState{
		Transaction: model.Succeeded(pendingTx()),
		SafeInfo:    model.Succeeded(threeOwners()),
	})

	assert.Equal(t, []Detail{
		{Label: "Proposer", Value: ownerA},
		{Label: "Safe", Value: safeAddress},
		{Label: "To", Value: "0x000000000000000000000000000000000000dEaD"},
		{Label: "Value", Value: "1000"},
		{Label: "Data", Value: "0xa9059cbb"},
	}, review.Details)
}

func TestDeriveReviewKeepsRequestedCall(t *testing.T) {
	request := model.TransactionRequest{SafeAddress: safeAddress, To: ownerB, Value: "7", Data: "0x"}

	review := deriveReview(request, reviewState{
		Transaction: model.NotAttempted[*safe.MultisigTransaction](),
		SafeInfo:    model.Succeeded(threeOwners()),
	})

	assert.Equal(t, ownerB, review.Details[2].Value)
	assert.Equal(t, "7", review.Details[3].Value)
	assert.Nil(t, review.Confirmations)
}

func TestExecutedTransactionOffersNoSimulation(t *testing.T) {
	tx := pendingTx()
	tx.IsExecuted = true
	review := deriveReview(model.TransactionRequest{SafeAddress: safeAddress, SafeTxHash: txHash}, reviewState{
		Transaction: model.Succeeded(tx),
		SafeInfo:    model.Failed[*safe.SafeInfo](errors.New("down")),
	})

	button := actionButton(review, "/frames", "safeTxHash="+txHash)
	assert.Equal(t, "Already Executed", button.Label)
	assert.Equal(t, "/frames/propose?safeTxHash="+txHash, button.Target)
}

func TestPendingTransactionOffersSimulation(t *testing.T) {
	button := actionButton(Review{}, "/frames", "a=b")
	assert.Equal(t, "Simulate", button.Label)
	assert.Equal(t, "/frames/propose/simulate?a=b", button.Target)
}
