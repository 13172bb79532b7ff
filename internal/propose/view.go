package propose

import (
	"strconv"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/frame"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
)

const (
	simulateLabel        = "Simulate"
	alreadyExecutedLabel = "Already Executed"
)

func renderReview(review Review, basePath string, query string) frame.Frame {
	children := []frame.Node{
		frame.Text(frame.Title.With(frame.Style{"justifyContent": "center", "marginBottom": "1rem"}), "Transaction Details"),
		detailsCard(review.Details),
	}
	if review.Confirmations != nil {
		children = append(children, confirmationsCard(*review.Confirmations))
	}

	return frame.Frame{
		Image:        frame.Box(frame.Page.With(frame.Style{"justifyContent": "center"}), children...),
		Buttons:      []frame.Button{actionButton(review, basePath, query)},
		ImageOptions: frame.Square(),
	}
}

// actionButton offers a simulation unless the transaction already went on chain.
func actionButton(review Review, basePath string, query string) frame.Button {
	if review.Executed {
		return frame.Post(alreadyExecutedLabel, utils.Target(basePath+frame.ReviewRoute, query))
	}
	return frame.Post(simulateLabel, utils.Target(basePath+frame.SimulationRoute, query))
}

func detailsCard(details []Detail) frame.Node {
	rows := make([]frame.Node, 0, len(details))
	for _, d := range details {
		wordBreak := "normal"
		if d.Label == "Data" {
			wordBreak = "break-all"
		}
		rows = append(rows, frame.Box(frame.Row,
			frame.Span(frame.Label, d.Label),
			frame.Span(frame.Mono.With(frame.Style{"flex": "1", "textAlign": "right", "wordBreak": wordBreak}), d.Value),
		))
	}
	return frame.Box(frame.Card, rows...)
}

func confirmationsCard(summary ConfirmationSummary) frame.Node {
	badge := frame.Style{
		"backgroundColor": frame.Background,
		"padding":         "0 0.5rem",
		"borderRadius":    "0.5rem",
		"border":          "1px solid " + frame.Gold,
	}

	header := frame.Box(frame.Row.With(frame.Style{"borderBottom": "1px solid " + frame.Gold, "paddingBottom": "0.75rem"}),
		frame.Span(frame.Label.With(frame.Style{"display": "flex", "gap": "0.5rem"}), "Confirmations",
			frame.Span(badge.With(frame.Style{"color": frame.Green}), summary.Ratio()),
			frame.Span(nil, "of"),
			frame.Span(badge, strconv.Itoa(summary.OwnerCount)),
			frame.Span(nil, "owners"),
		),
	)

	owners := make([]frame.Node, 0, len(summary.Owners))
	for _, owner := range summary.Owners {
		addressColor, statusColor := frame.Red, frame.Red
		if owner.Confirmed {
			addressColor, statusColor = frame.Gold, frame.Green
		}
		owners = append(owners, frame.Box(frame.Row.With(frame.Style{
			"backgroundColor": frame.Background,
			"padding":         "0.75rem",
			"borderRadius":    "0.75rem",
			"border":          "1px solid " + frame.Gold,
		}),
			frame.Span(frame.Style{"fontFamily": "monospace", "fontSize": "1.4rem", "color": addressColor}, utils.ShortAddress(owner.Address)),
			frame.Span(frame.Style{"fontSize": "1.4rem", "color": statusColor}, owner.Status()),
		))
	}

	return frame.Box(frame.Card,
		header,
		frame.Box(frame.Style{"display": "flex", "flexDirection": "column", "gap": "0.75rem"}, owners...),
	)
}
