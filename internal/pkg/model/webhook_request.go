package model

import "github.com/kollektive-hackathon/safe-frames/internal/pkg/utils"

// LandingParams is everything the landing route accepts: the transaction
// fields it forwards plus the webhook notification metadata.
type LandingParams struct {
	SenderAddress string `form:"senderAddress"`
	SafeAddress   string `form:"safeAddress"`
	To            string `form:"to"`
	Value         string `form:"value"`
	Data          string `form:"data"`
	SafeTxHash    string `form:"safeTxHash"`
	Webhook       string `form:"webhook"`
	Hash          string `form:"hash"`
	ChainID       string `form:"chainId"`
	Network       string `form:"network"`
	Timestamp     string `form:"timestamp"`
	BlockscoutURL string `form:"blockscoutUrl"`
	MultibaasURL  string `form:"multibaasUrl"`
}

// IsWebhook reports whether the request announces a confirmed transaction.
func (p LandingParams) IsWebhook() bool {
	return p.Webhook == "true" && p.Hash != ""
}

func (p LandingParams) Query() string {
	webhook := p.Webhook
	if webhook == "false" {
		webhook = ""
	}

	return utils.ForwardQuery(
		utils.QueryParam{Key: "senderAddress", Value: p.SenderAddress},
		utils.QueryParam{Key: "safeAddress", Value: p.SafeAddress},
		utils.QueryParam{Key: "to", Value: p.To},
		utils.QueryParam{Key: "value", Value: p.Value},
		utils.QueryParam{Key: "data", Value: p.Data},
		utils.QueryParam{Key: "safeTxHash", Value: p.SafeTxHash},
		utils.QueryParam{Key: "webhook", Value: webhook},
		utils.QueryParam{Key: "hash", Value: p.Hash},
		utils.QueryParam{Key: "chainId", Value: p.ChainID},
		utils.QueryParam{Key: "network", Value: p.Network},
		utils.QueryParam{Key: "timestamp", Value: p.Timestamp},
		utils.QueryParam{Key: "blockscoutUrl", Value: p.BlockscoutURL},
		utils.QueryParam{Key: "multibaasUrl", Value: p.MultibaasURL},
	)
}

// WebhookRequest is the network metadata shown on the confirmation card.
type WebhookRequest struct {
	Hash          string
	ChainID       string
	Network       string
	Timestamp     string
	BlockscoutURL string
	MultibaasURL  string
}

func (p LandingParams) WebhookRequest() WebhookRequest {
	return WebhookRequest{
		Hash:          p.Hash,
		ChainID:       p.ChainID,
		Network:       p.Network,
		Timestamp:     p.Timestamp,
		BlockscoutURL: p.BlockscoutURL,
		MultibaasURL:  p.MultibaasURL,
	}
}
