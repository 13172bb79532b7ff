package tenderly

import (
	"context"
	"encoding/json"
	"errors"
	"math/big"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"

	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validConfig(apiURL string) Config {
	return Config{
		AccessKey:   "key",
		AccountSlug: "acme",
		ProjectSlug: "frames",
		NetworkID:   "84532",
		APIURL:      apiURL,
	}
}

func testCall() Call {
	value, _ := new(big.Int).SetString("123456789012345678901234567890", 10)
	return Call{
		BlockNumber: 42,
		From:        "0x5afe5afe5afe5afe5afe5afe5afe5afe5afe5afe",
		To:          "0x000000000000000000000000000000000000dEaD",
		Value:       value,
		Input:       "0x",
	}
}

func TestSimulateSendsQuickSavedSimulation(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/account/acme/project/frames/simulate", r.URL.Path)
		assert.Equal(t, "key", r.Header.Get("X-Access-Key"))
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))

		var body map[string]json.RawMessage
		require.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.JSONEq(t, `"84532"`, string(body["network_id"]))
		assert.JSONEq(t, `42`, string(body["block_number"]))
		assert.Equal(t, `123456789012345678901234567890`, string(body["value"]))
		assert.JSONEq(t, `"quick"`, string(body["simulation_type"]))
		assert.JSONEq(t, `true`, string(body["save"]))
		assert.JSONEq(t, `true`, string(body["save_if_fails"]))
		assert.JSONEq(t, `"0x"`, string(body["input"]))

		w.Write([]byte(`{"transaction":{"transaction_info":{
			"asset_changes":[{"token_info":{"symbol":"USDC","name":"USD Coin"},"type":"Transfer","from":"0x1","to":"0x2","amount":"5","dollar_value":"5.0001"}],
			"balance_changes":[{"address":"0x2","dollar_value":"-5.0001","transfers":[0]}]
		}}}`))
	}))
	defer server.Close()

	info, err := NewClient(validConfig(server.URL), server.Client()).Simulate(context.Background(), testCall())
	require.NoError(t, err)
	require.Len(t, info.AssetChanges, 1)
	assert.Equal(t, "USDC", info.AssetChanges[0].TokenInfo.Symbol)
	require.Len(t, info.BalanceChanges, 1)
	assert.Equal(t, "-5.0001", info.BalanceChanges[0].DollarValue)
}

func TestSimulateSurfacesUpstreamMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":{"message":"insufficient funds"}}`))
	}))
	defer server.Close()

	_, err := NewClient(validConfig(server.URL), server.Client()).Simulate(context.Background(), testCall())

	var failed *reject.SimulationFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "insufficient funds", failed.Message)
	assert.Equal(t, http.StatusInternalServerError, failed.Status)
}

func TestSimulateFallsBackToGenericMessage(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusBadRequest)
		w.Write([]byte(`not json`))
	}))
	defer server.Close()

	_, err := NewClient(validConfig(server.URL), server.Client()).Simulate(context.Background(), testCall())

	var failed *reject.SimulationFailedError
	require.True(t, errors.As(err, &failed))
	assert.Equal(t, "Simulation failed", failed.Message)
}

func TestSimulateRejectsEmptyBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
	}))
	defer server.Close()

	_, err := NewClient(validConfig(server.URL), server.Client()).Simulate(context.Background(), testCall())

	var failed *reject.SimulationFailedError
	assert.True(t, errors.As(err, &failed))
}

func TestSimulateWithIncompleteConfigNeverCallsService(t *testing.T) {
	var hits int32
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
	}))
	defer server.Close()

	cases := map[string]func(*Config){
		"TENDERLY_ACCESS_KEY":   func(c *Config) { c.AccessKey = "" },
		"TENDERLY_ACCOUNT_SLUG": func(c *Config) { c.AccountSlug = "" },
		"TENDERLY_PROJECT_SLUG": func(c *Config) { c.ProjectSlug = "" },
		"CHAIN_ID":              func(c *Config) { c.NetworkID = "" },
	}

	for missing, unset := range cases {
		t.Run(missing, func(t *testing.T) {
			cfg := validConfig(server.URL)
			unset(&cfg)
			client := NewClient(cfg, server.Client())

			_, err := client.Simulate(context.Background(), testCall())

			var config *reject.ConfigurationError
			require.True(t, errors.As(err, &config))
			assert.Equal(t, []string{missing}, config.Missing)
			assert.Equal(t, err, client.CheckConfig())
		})
	}

	assert.Zero(t, atomic.LoadInt32(&hits))
}

func TestNewClientDefaultsAPIURL(t *testing.T) {
	client := NewClient(Config{}, http.DefaultClient)
	assert.Equal(t, DefaultAPIURL, client.cfg.APIURL)
	assert.Len(t, client.cfg.Missing(), 4)
}
