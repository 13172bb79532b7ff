package model

import (
	"errors"
	"net/http/httptest"
	"os"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/kollektive-hackathon/safe-frames/internal/pkg/reject"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const (
	safeAddr = "0x1111111111111111111111111111111111111111"
	txHash   = "0xaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaaa"
)

func TestMain(m *testing.M) {
	gin.SetMode(gin.TestMode)
	if err := SetupValidators(); err != nil {
		panic(err)
	}
	os.Exit(m.Run())
}

func bind[T any](t *testing.T, rawQuery string) (T, error) {
	t.Helper()
	c, _ := gin.CreateTestContext(httptest.NewRecorder())
	c.Request = httptest.NewRequest("GET", "/frames/propose?"+rawQuery, nil)

	var params T
	err := c.ShouldBindQuery(&params)
	return params, err
}

func invalidProperties(t *testing.T, err error) []string {
	t.Helper()
	var invalid *reject.InvalidRequestError
	require.True(t, errors.As(InvalidRequest(err), &invalid))

	var props []string
	for _, d := range invalid.Details {
		props = append(props, d.Property)
	}
	return props
}

func TestReviewParamsRequireSafeAddress(t *testing.T) {
	_, err := bind[ReviewParams](t, "safeTxHash="+txHash)
	require.Error(t, err)
	assert.Contains(t, invalidProperties(t, err), "safeAddress")
}

func TestReviewParamsAcceptHashOnly(t *testing.T) {
	p, err := bind[ReviewParams](t, "safeAddress="+safeAddr+"&safeTxHash="+txHash)
	require.NoError(t, err)
	assert.Equal(t, txHash, p.TransactionRequest().SafeTxHash)
}

func TestReviewParamsAcceptFullCall(t *testing.T) {
	p, err := bind[ReviewParams](t, "safeAddress="+safeAddr+"&to="+safeAddr+"&value=0&data=0x")
	require.NoError(t, err)
	assert.Equal(t, "0", p.Value)
}

func TestReviewParamsRequireEveryCallFieldWithoutHash(t *testing.T) {
	_, err := bind[ReviewParams](t, "safeAddress="+safeAddr+"&to="+safeAddr+"&value=1")
	require.Error(t, err)
	assert.Equal(t, []string{"data"}, invalidProperties(t, err))
}

func TestReviewParamsRejectMalformedHash(t *testing.T) {
	_, err := bind[ReviewParams](t, "safeAddress="+safeAddr+"&safeTxHash=0x1234")
	require.Error(t, err)
	assert.Equal(t, []string{"safeTxHash"}, invalidProperties(t, err))
}

func TestSimulationParamsAcceptFullCall(t *testing.T) {
	p, err := bind[SimulationParams](t, "safeAddress="+safeAddr+"&to="+safeAddr+"&value=1&data=0x")
	require.NoError(t, err)
	assert.Empty(t, p.TransactionRequest().SafeTxHash)
	assert.Equal(t, "0x", p.TransactionRequest().Data)
}

func TestSimulationParamsRequireHashOrFullCall(t *testing.T) {
	_, err := bind[SimulationParams](t, "safeAddress="+safeAddr+"&to="+safeAddr)
	require.Error(t, err)
	assert.Equal(t, []string{"value", "data"}, invalidProperties(t, err))
}

func TestSimulationParamsRequireSafeAddress(t *testing.T) {
	_, err := bind[SimulationParams](t, "safeTxHash="+txHash)
	require.Error(t, err)
	assert.Equal(t, []string{"safeAddress"}, invalidProperties(t, err))
}

func TestTransactionRequestQueryForwardsNonEmptyFields(t *testing.T) {
	r := TransactionRequest{SafeAddress: safeAddr, SafeTxHash: txHash}
	assert.Equal(t, "safeAddress="+safeAddr+"&safeTxHash="+txHash, r.Query())
}

func TestLandingParamsWebhookDetection(t *testing.T) {
	assert.True(t, LandingParams{Webhook: "true", Hash: "0x1"}.IsWebhook())
	assert.False(t, LandingParams{Webhook: "true"}.IsWebhook())
	assert.False(t, LandingParams{Webhook: "false", Hash: "0x1"}.IsWebhook())
}

func TestLandingParamsQueryDropsFalseWebhook(t *testing.T) {
	p := LandingParams{SafeAddress: safeAddr, Webhook: "false", Network: "base"}
	assert.Equal(t, "network=base&safeAddress="+safeAddr, p.Query())

	p.Webhook = "true"
	assert.Equal(t, "network=base&safeAddress="+safeAddr+"&webhook=true", p.Query())
}

func TestFetchedStates(t *testing.T) {
	assert.False(t, NotAttempted[int]().Ok())
	assert.False(t, NotAttempted[int]().Attempted)
	assert.True(t, Succeeded(3).Ok())
	f := Failed[int](errors.New("down"))
	assert.True(t, f.Attempted)
	assert.False(t, f.Ok())
}
