package model

import "github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"

// TransactionRequest identifies one pending or executed Safe transaction.
type TransactionRequest struct {
	SenderAddress string
	SafeAddress   string
	To            string
	Value         string
	Data          string
	SafeTxHash    string
}

// Query returns the forwarded parameters in the encoded form used by button targets.
func (r TransactionRequest) Query() string {
	return utils.ForwardQuery(r.params()...)
}

func (r TransactionRequest) params() []utils.QueryParam {
	return []utils.QueryParam{
		{Key: "senderAddress", Value: r.SenderAddress},
		{Key: "safeAddress", Value: r.SafeAddress},
		{Key: "to", Value: r.To},
		{Key: "value", Value: r.Value},
		{Key: "data", Value: r.Data},
		{Key: "safeTxHash", Value: r.SafeTxHash},
	}
}

// ReviewParams binds the query of the review view: a Safe plus either a
// transaction hash or the full call (to, value, data).
type ReviewParams struct {
	SenderAddress string `form:"senderAddress"`
	SafeAddress   string `form:"safeAddress" binding:"required,eth_addr"`
	To            string `form:"to" binding:"required_without=SafeTxHash"`
	Value         string `form:"value" binding:"required_without=SafeTxHash"`
	Data          string `form:"data" binding:"required_without=SafeTxHash"`
	SafeTxHash    string `form:"safeTxHash" binding:"omitempty,tx_hash"`
}

func (p ReviewParams) TransactionRequest() TransactionRequest {
	return TransactionRequest{
		SenderAddress: p.SenderAddress,
		SafeAddress:   p.SafeAddress,
		To:            p.To,
		Value:         p.Value,
		Data:          p.Data,
		SafeTxHash:    p.SafeTxHash,
	}
}

// SimulationParams binds the query of the simulation view: either a
// transaction known to the coordination service or the full call.
type SimulationParams struct {
	SenderAddress string `form:"senderAddress"`
	SafeAddress   string `form:"safeAddress" binding:"required,eth_addr"`
	To            string `form:"to" binding:"required_without=SafeTxHash"`
	Value         string `form:"value" binding:"required_without=SafeTxHash"`
	Data          string `form:"data" binding:"required_without=SafeTxHash"`
	SafeTxHash    string `form:"safeTxHash" binding:"omitempty,tx_hash"`
}

func (p SimulationParams) TransactionRequest() TransactionRequest {
	return TransactionRequest{
		SenderAddress: p.SenderAddress,
		SafeAddress:   p.SafeAddress,
		To:            p.To,
		Value:         p.Value,
		Data:          p.Data,
		SafeTxHash:    p.SafeTxHash,
	}
}
