package simulate

import (
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/frame"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
)

const (
	noAssetChanges   = "No supported token balance changes"
	noBalanceChanges = "No dollar value changes caused by supported ERC20 and ERC721 tokens"
)

func renderOutcome(outcome Outcome, basePath string, query string) frame.Frame {
	children := []frame.Node{
		frame.Box(frame.Style{"display": "flex", "justifyContent": "center", "marginBottom": "1.5rem"},
			frame.Text(frame.Title, "Transaction Simulation Results"),
		),
		assetSection(outcome.Assets),
		balanceSection(outcome.Balances),
	}

	if banner := outcome.Banner(); banner != "" {
		children = append(children, frame.Text(frame.Placeholder.With(frame.Style{
			"color":     frame.Loss,
			"fontSize":  "1.8rem",
			"marginTop": "1.5rem",
		}), banner))
	}

	return frame.Frame{
		Image:        frame.Box(frame.Page, children...),
		Buttons:      []frame.Button{frame.Post("Back", utils.Target(basePath+frame.ReviewRoute, query))},
		ImageOptions: frame.Square(),
	}
}

var section = frame.Style{"display": "flex", "flexDirection": "column", "gap": "1.5rem"}

func assetSection(assets []AssetRow) frame.Node {
	children := []frame.Node{frame.Text(frame.Heading, "Asset Changes")}
	if len(assets) == 0 {
		children = append(children, frame.Text(frame.Placeholder, noAssetChanges))
	}

	for _, asset := range assets {
		color := frame.Red
		counterpartyLabel := "To:"
		if asset.Direction == Receiving {
			color = frame.Green
			counterpartyLabel = "From:"
		}

		children = append(children, frame.Box(frame.Card.With(frame.Style{"flexDirection": "row", "alignItems": "center", "padding": "1rem"}),
			frame.Image(asset.Logo, asset.Symbol, frame.Style{
				"width":        "64px",
				"height":       "64px",
				"borderRadius": "50%",
				"border":       "2px solid " + frame.Gold,
			}),
			frame.Box(frame.Style{"display": "flex", "flexDirection": "column", "flex": "1", "gap": "0.5rem"},
				frame.Box(frame.Row,
					frame.Span(frame.Style{"display": "flex", "fontWeight": "600", "fontSize": "1.8rem", "gap": "0.5rem"}, asset.TokenName,
						frame.Span(frame.Style{
							"color":           color,
							"fontSize":        "1.6rem",
							"backgroundColor": frame.Background,
							"padding":         "0.25rem 0.5rem",
							"borderRadius":    "0.5rem",
							"border":          "1px solid " + frame.Gold,
						}, string(asset.Direction)),
					),
					frame.Span(frame.Style{"color": color, "fontSize": "1.8rem"}, "$"+asset.DollarValue),
				),
				frame.Box(frame.Row.With(frame.Style{"fontSize": "1.4rem"}),
					frame.Span(frame.Style{"display": "flex", "gap": "0.5rem", "color": frame.Gold}, counterpartyLabel,
						frame.Span(frame.Mono.With(frame.Style{"padding": "0.25rem 0.5rem"}), utils.ShortAddress(asset.Counterparty)),
					),
					frame.Span(nil, asset.Amount+" "+asset.Symbol),
				),
			),
		))
	}

	return frame.Box(section, children...)
}

func balanceSection(balances []BalanceRow) frame.Node {
	children := []frame.Node{frame.Text(frame.Heading, "Balance Changes")}
	if len(balances) == 0 {
		children = append(children, frame.Text(frame.Placeholder, noBalanceChanges))
	}

	for _, balance := range balances {
		color := frame.Loss
		if balance.Positive {
			color = frame.Gain
		}
		children = append(children, frame.Box(frame.Card,
			frame.Box(frame.Row.With(frame.Style{"width": "100%", "fontSize": "1.6rem"}),
				frame.Span(frame.Mono.With(frame.Style{"display": "flex", "padding": "0.5rem 1rem"}), utils.ShortAddress(balance.Address)),
				frame.Span(frame.Style{"display": "flex", "color": color, "fontWeight": "600"}, "$"+balance.DollarValue),
			),
		))
	}

	return frame.Box(section.With(frame.Style{"marginTop": "1.5rem"}), children...)
}
