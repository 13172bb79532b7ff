package welcome

import (
	"math"
	"regexp"
	"strconv"
	"strings"
	"time"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/model"
)

const timeLayout = "Jan 2, 2006, 3:04:05 PM UTC"

var schemePrefix = regexp.MustCompile(`^[a-zA-Z][a-zA-Z0-9+.-]*://`)

// ExplorerLink is a block explorer the notification card links out to.
type ExplorerLink struct {
	Label string
	URL   string
}

// Notification is the confirmed-transaction card announced by a webhook.
type Notification struct {
	Time      string
	Network   string
	Hash      string
	Explorers []ExplorerLink
}

func deriveNotification(request model.WebhookRequest, now time.Time) Notification {
	network := request.Network
	if request.ChainID != "" {
		network = request.Network + " (" + request.ChainID + ")"
	}

	notification := Notification{
		Time:    confirmedAt(request.Timestamp, now).UTC().Format(timeLayout),
		Network: network,
		Hash:    request.Hash,
	}

	if request.BlockscoutURL != "" {
		notification.Explorers = append(notification.Explorers, ExplorerLink{Label: "View in BlockScout", URL: absoluteURL(request.BlockscoutURL)})
	}
	if request.MultibaasURL != "" {
		notification.Explorers = append(notification.Explorers, ExplorerLink{Label: "View in MultiBaas Tx Explorer", URL: absoluteURL(request.MultibaasURL)})
	}
	return notification
}

// confirmedAt reads unix seconds, fractions included, falling back to now when
// absent or malformed.
func confirmedAt(timestamp string, now time.Time) time.Time {
	seconds, err := strconv.ParseFloat(strings.TrimSpace(timestamp), 64)
	if err != nil || math.IsNaN(seconds) || math.IsInf(seconds, 0) {
		return now
	}
	return time.UnixMilli(int64(math.Round(seconds * 1000)))
}

func absoluteURL(raw string) string {
	raw = strings.TrimSpace(raw)
	if schemePrefix.MatchString(raw) {
		return raw
	}
	return "https://" + strings.TrimPrefix(raw, "//")
}
