package welcome

import (
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/frame"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
)

const (
	welcomeTitle      = "Welcome to Safe Transaction Simulator"
	notificationTitle = "New Transaction Detected"
	confirmedBadge    = "● Transaction Confirmed"
)

func renderWelcome(basePath string, query string) frame.Frame {
	return frame.Frame{
		Image: frame.Box(frame.Page.With(frame.Style{"padding": "3rem", "gap": "2rem", "justifyContent": "center", "alignItems": "center"}),
			frame.Text(frame.Title.With(frame.Style{"fontSize": "3rem", "textAlign": "center"}), welcomeTitle),
			frame.Text(frame.Style{"display": "flex", "fontSize": "1.8rem", "color": frame.Cream, "textAlign": "center"}, "Click Next to review your transaction details"),
		),
		Buttons: []frame.Button{frame.Post("Next", utils.Target(basePath+frame.ReviewRoute, query))},
	}
}

func renderNotification(n Notification) frame.Frame {
	rows := []struct{ icon, label, value string }{
		{"🕒", "Time", n.Time},
		{"🌐", "Network", n.Network},
		{"#", "Hash", n.Hash},
	}

	details := make([]frame.Node, 0, len(rows))
	for _, row := range rows {
		wordBreak := "normal"
		if row.label == "Hash" {
			wordBreak = "break-all"
		}
		details = append(details, frame.Box(frame.Row,
			frame.Box(frame.Style{"display": "flex", "alignItems": "center", "gap": "0.5rem"},
				frame.Span(frame.Style{"fontSize": "1.4rem", "marginRight": "0.5rem"}, row.icon),
				frame.Span(frame.Label.With(frame.Style{"minWidth": "100px"}), row.label),
			),
			frame.Span(frame.Mono.With(frame.Style{"flex": "1", "textAlign": "right", "wordBreak": wordBreak}), row.value),
		))
	}

	buttons := make([]frame.Button, 0, len(n.Explorers))
	for _, explorer := range n.Explorers {
		buttons = append(buttons, frame.Link(explorer.Label, explorer.URL))
	}

	return frame.Frame{
		Image: frame.Box(frame.Page.With(frame.Style{"padding": "2rem", "justifyContent": "center"}),
			frame.Box(frame.Style{"display": "flex", "alignItems": "center", "justifyContent": "center", "gap": "1rem", "marginBottom": "1rem"},
				frame.Text(frame.Style{
					"display":         "flex",
					"width":           "3rem",
					"height":          "3rem",
					"backgroundColor": frame.Gold,
					"borderRadius":    "50%",
					"alignItems":      "center",
					"justifyContent":  "center",
					"fontSize":        "2rem",
				}, "⚡"),
				frame.Text(frame.Title.With(frame.Style{"textAlign": "center"}), notificationTitle),
			),
			frame.Box(frame.Style{
				"display":         "flex",
				"backgroundColor": frame.Panel,
				"padding":         "0.5rem 1rem",
				"borderRadius":    "1rem",
				"alignSelf":       "center",
				"border":          "1px solid " + frame.Gold,
				"marginBottom":    "1rem",
			},
				frame.Span(frame.Style{"color": frame.Live, "fontSize": "1.4rem"}, confirmedBadge),
			),
			frame.Box(frame.Card, details...),
			frame.Text(frame.Style{"display": "flex", "justifyContent": "center", "fontSize": "1.2rem", "color": frame.Muted, "marginTop": "0.5rem"},
				"Click below to view detailed transaction information"),
		),
		Buttons:      buttons,
		ImageOptions: frame.Square(),
	}
}
