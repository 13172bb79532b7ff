package tenderly

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"math/big"
	"net/http"
	"strings"
	"time"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/monitor"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const (
	serviceName           = "tenderly"
	DefaultAPIURL         = "https://api.tenderly.co/api/v1"
	simulationTypeQuick   = "quick"
	defaultFailureMessage = "Simulation failed"
)

type Config struct {
	AccessKey   string
	AccountSlug string
	ProjectSlug string
	NetworkID   string
	APIURL      string
}

// Missing names every required setting that is empty.
func (c Config) Missing() []string {
	var missing []string
	if c.AccessKey == "" {
		missing = append(missing, "TENDERLY_ACCESS_KEY")
	}
	if c.AccountSlug == "" {
		missing = append(missing, "TENDERLY_ACCOUNT_SLUG")
	}
	if c.ProjectSlug == "" {
		missing = append(missing, "TENDERLY_PROJECT_SLUG")
	}
	if c.NetworkID == "" {
		missing = append(missing, "CHAIN_ID")
	}
	return missing
}

type Client struct {
	cfg        Config
	httpClient *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) *Client {
	if cfg.APIURL == "" {
		cfg.APIURL = DefaultAPIURL
	}
	cfg.APIURL = strings.TrimRight(cfg.APIURL, "/")

	return &Client{cfg: cfg, httpClient: httpClient}
}

// CheckConfig fails with a ConfigurationError when any required setting is absent.
func (c *Client) CheckConfig() error {
	if missing := c.cfg.Missing(); len(missing) > 0 {
		return &reject.ConfigurationError{Missing: missing}
	}
	return nil
}

// Simulate runs a quick simulation of call and saves it in the project,
// including when it reverts.
func (c *Client) Simulate(ctx context.Context, call Call) (result *TransactionInfo, err error) {
	if err := c.CheckConfig(); err != nil {
		return nil, err
	}

	start := time.Now()
	defer func() { monitor.ObserveUpstream(serviceName, start, err) }()

	value := call.Value
	if value == nil {
		value = new(big.Int)
	}

	body := simulationRequest{
		NetworkID:      c.cfg.NetworkID,
		BlockNumber:    call.BlockNumber,
		From:           call.From,
		To:             call.To,
		Value:          value,
		Input:          call.Input,
		SimulationType: simulationTypeQuick,
		Save:           true,
		SaveIfFails:    true,
	}

	uri := fmt.Sprintf("%s/account/%s/project/%s/simulate", c.cfg.APIURL, c.cfg.AccountSlug, c.cfg.ProjectSlug)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, uri, bytes.NewReader(utils.JsonEncode(body)))
	if err != nil {
		return nil, errors.Wrap(err, "building simulation request")
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Accept", "application/json")
	req.Header.Set("X-Access-Key", c.cfg.AccessKey)

	logger := zerolog.Ctx(ctx)
	logger.Info().
		Uint64("blockNumber", call.BlockNumber).
		Str("from", call.From).
		Str("to", call.To).
		Msg("Submitting transaction simulation")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "calling simulation service")
	}
	defer res.Body.Close()

	raw, err := io.ReadAll(res.Body)
	if err != nil {
		return nil, errors.Wrap(err, "reading simulation response")
	}

	if res.StatusCode < 200 || res.StatusCode > 299 {
		message := defaultFailureMessage
		if envelope, decodeErr := utils.JsonDecodeByteStream[errorResponse](raw); decodeErr == nil && envelope.Error.Message != "" {
			message = envelope.Error.Message
		}
		logger.Error().
			Int("status", res.StatusCode).
			Str("message", message).
			Msg("Simulation service returned an error")
		return nil, &reject.SimulationFailedError{Status: res.StatusCode, Message: message}
	}

	if len(bytes.TrimSpace(raw)) == 0 || string(bytes.TrimSpace(raw)) == "null" {
		return nil, &reject.SimulationFailedError{Status: res.StatusCode, Message: "Empty response from simulation service"}
	}

	decoded, err := utils.JsonDecodeByteStream[SimulationResponse](raw)
	if err != nil {
		return nil, errors.Wrap(err, "decoding simulation response")
	}

	return &decoded.Transaction.TransactionInfo, nil
}
