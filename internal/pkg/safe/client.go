package safe

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/ethereum/go-ethereum/common"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/monitor"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"
	"github.com/pkg/errors"
	"github.com/rs/zerolog"
)

const serviceName = "safe-transaction-service"

var ErrNotFound = errors.New("not found")

// Transaction service short names per chain id.
var transactionServices = map[string]string{
	"1":        "eth",
	"10":       "oeth",
	"56":       "bnb",
	"100":      "gno",
	"137":      "pol",
	"324":      "zksync",
	"8453":     "base",
	"42161":    "arb1",
	"43114":    "avax",
	"59144":    "linea",
	"84532":    "basesep",
	"11155111": "sep",
}

type Config struct {
	ChainID    string
	ServiceURL string
	APIKey     string
}

// Client reads multisig state from the Safe Transaction Service.
type Client struct {
	baseURL    string
	apiKey     string
	httpClient *http.Client
}

func NewClient(cfg Config, httpClient *http.Client) (*Client, error) {
	baseURL := strings.TrimRight(cfg.ServiceURL, "/")
	if baseURL == "" {
		shortName, ok := transactionServices[cfg.ChainID]
		if !ok {
			return nil, &reject.ConfigurationError{Missing: []string{"SAFE_TX_SERVICE_URL"}}
		}
		baseURL = "https://api.safe.global/tx-service/" + shortName
	}

	return &Client{
		baseURL:    baseURL,
		apiKey:     cfg.APIKey,
		httpClient: httpClient,
	}, nil
}

func (c *Client) BaseURL() string {
	return c.baseURL
}

func (c *Client) GetTransaction(ctx context.Context, safeTxHash string) (*MultisigTransaction, error) {
	uri := fmt.Sprintf("%s/api/v1/multisig-transactions/%s/", c.baseURL, safeTxHash)
	return get[MultisigTransaction](ctx, c, uri)
}

func (c *Client) GetSafeInfo(ctx context.Context, address string) (*SafeInfo, error) {
	if !common.IsHexAddress(address) {
		return nil, errors.Errorf("invalid safe address %q", address)
	}
	uri := fmt.Sprintf("%s/api/v1/safes/%s/", c.baseURL, common.HexToAddress(address).Hex())
	return get[SafeInfo](ctx, c, uri)
}

func get[T any](ctx context.Context, c *Client, uri string) (result *T, err error) {
	start := time.Now()
	defer func() { monitor.ObserveUpstream(serviceName, start, err) }()

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, uri, nil)
	if err != nil {
		return nil, errors.Wrap(err, "building request")
	}
	req.Header.Set("Accept", "application/json")
	if c.apiKey != "" {
		req.Header.Set("Authorization", "Bearer "+c.apiKey)
	}

	zerolog.Ctx(ctx).Debug().Str("uri", uri).Msg("Calling Safe transaction service")

	res, err := c.httpClient.Do(req)
	if err != nil {
		return nil, &reject.UpstreamError{Service: serviceName, Cause: err}
	}
	defer res.Body.Close()

	if res.StatusCode == http.StatusNotFound {
		return nil, &reject.UpstreamError{Service: serviceName, Status: res.StatusCode, Cause: ErrNotFound}
	}
	if res.StatusCode < 200 || res.StatusCode > 299 {
		return nil, &reject.UpstreamError{
			Service: serviceName,
			Status:  res.StatusCode,
			Cause:   errors.Errorf("unexpected response %s", res.Status),
		}
	}

	result, err = utils.JsonDecode[T](res.Body)
	if err != nil {
		return nil, &reject.UpstreamError{Service: serviceName, Status: res.StatusCode, Cause: errors.Wrap(err, "decoding response")}
	}
	return result, nil
}
