package propose

import (
	"fmt"
	"time"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
)

const notSignedYet = "Not signed yet"

type Detail struct {
	Label string
	Value string
}

type OwnerStatus struct {
	Address     string
	Confirmed   bool
	ConfirmedAt time.Time
}

// Status is the confirmation date, or a placeholder for owners yet to sign.
func (o OwnerStatus) Status() string {
	if !o.Confirmed {
		return notSignedYet
	}
	return o.ConfirmedAt.Format("Jan 2, 2006")
}

type ConfirmationSummary struct {
	Recorded   int
	Required   int
	OwnerCount int
	Owners     []OwnerStatus
}

func (c ConfirmationSummary) Ratio() string {
	return fmt.Sprintf("%d/%d", c.Recorded, c.Required)
}

// Review is everything the transaction details frame shows.
type Review struct {
	Details       []Detail
	Confirmations *ConfirmationSummary
	Executed      bool
}

func deriveReview(request model.TransactionRequest, state reviewState) Review {
	to, value, data := request.To, request.Value, request.Data
	if state.Transaction.Ok() {
		tx := state.Transaction.Value
		if to == "" {
			to = tx.To
		}
		if value == "" {
			value = tx.Value
		}
		if data == "" {
			data = tx.CallData()
		}
	}

	review := Review{
		Details: []Detail{
			{Label: "Proposer", Value: request.SenderAddress},
			{Label: "Safe", Value: request.SafeAddress},
			{Label: "To", Value: to},
			{Label: "Value", Value: value},
			{Label: "Data", Value: data},
		},
	}

	if state.Transaction.Ok() {
		review.Executed = state.Transaction.Value.IsExecuted
	}

	if state.Transaction.Ok() && state.SafeInfo.Ok() {
		summary := summarizeConfirmations(state)
		review.Confirmations = &summary
	}

	return review
}

func summarizeConfirmations(state reviewState) ConfirmationSummary {
	tx := state.Transaction.Value
	info := state.SafeInfo.Value

	owners := make([]OwnerStatus, 0, len(info.Owners))
	for _, owner := range info.Owners {
		status := OwnerStatus{Address: owner}
		for _, confirmation := range tx.Confirmations {
			if utils.SameAddress(confirmation.Owner, owner) {
				status.Confirmed = true
				status.ConfirmedAt = confirmation.SubmissionDate
				break
			}
		}
		owners = append(owners, status)
	}

	return ConfirmationSummary{
		Recorded:   len(tx.Confirmations),
		Required:   tx.ConfirmationsRequired,
		OwnerCount: len(info.Owners),
		Owners:     owners,
	}
}
