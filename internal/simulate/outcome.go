package simulate

import (
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/tenderly"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
	"github.com/shopspring/decimal"
)

type Status string

const (
	// StatusPending marks a simulation that was never attempted. The handler
	// answers those requests with a configuration problem instead, so the
	// pending banner only comes out of deriveOutcome itself.
	StatusPending Status = "Pending"
	StatusSuccess Status = "Success"
	StatusFailed  Status = "Failed"
)

type Direction string

const (
	Receiving Direction = "Receiving"
	Sending   Direction = "Sending"
)

type AssetRow struct {
	TokenName    string
	Symbol       string
	Logo         string
	Direction    Direction
	Counterparty string
	Amount       string
	DollarValue  string
}

type BalanceRow struct {
	Address     string
	DollarValue string
	Positive    bool
}

// Outcome is everything the simulation results frame shows.
type Outcome struct {
	Status   Status
	Error    string
	Assets   []AssetRow
	Balances []BalanceRow
}

// Banner is the status line shown under the results, empty on success.
func (o Outcome) Banner() string {
	switch o.Status {
	case StatusSuccess:
		return ""
	case StatusFailed:
		return "Simulation Failed: " + o.Error
	default:
		return "Simulation Pending"
	}
}

func deriveOutcome(request model.TransactionRequest, result model.Fetched[*tenderly.TransactionInfo]) Outcome {
	switch {
	case !result.Attempted:
		return Outcome{Status: StatusPending}
	case result.Err != nil:
		return Outcome{Status: StatusFailed, Error: result.Err.Error()}
	}

	outcome := Outcome{Status: StatusSuccess}
	if result.Value == nil {
		return outcome
	}

	for _, change := range result.Value.AssetChanges {
		outcome.Assets = append(outcome.Assets, assetRow(request.SafeAddress, change))
	}
	for _, change := range result.Value.BalanceChanges {
		outcome.Balances = append(outcome.Balances, balanceRow(change))
	}
	return outcome
}

func assetRow(safeAddress string, change tenderly.AssetChange) AssetRow {
	row := AssetRow{
		TokenName:    change.TokenInfo.Name,
		Symbol:       change.TokenInfo.Symbol,
		Logo:         change.TokenInfo.Logo,
		Direction:    Sending,
		Counterparty: change.To,
		Amount:       change.Amount,
		DollarValue:  formatDollars(change.DollarValue),
	}
	if utils.SameAddress(change.To, safeAddress) {
		row.Direction = Receiving
		row.Counterparty = change.From
	}
	return row
}

func balanceRow(change tenderly.BalanceChange) BalanceRow {
	value, err := decimal.NewFromString(change.DollarValue)
	return BalanceRow{
		Address:     change.Address,
		DollarValue: formatDollars(change.DollarValue),
		Positive:    err == nil && value.Sign() >= 0,
	}
}

// formatDollars renders a decimal string with four decimals, or verbatim when it
// does not parse.
func formatDollars(value string) string {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return value
	}
	return d.StringFixed(4)
}
