package tenderly

import "math/big"

type TokenInfo struct {
	Standard        string `json:"standard"`
	Type            string `json:"type"`
	ContractAddress string `json:"contract_address"`
	Symbol          string `json:"symbol"`
	Name            string `json:"name"`
	Logo            string `json:"logo"`
	Decimals        int    `json:"decimals"`
	DollarValue     string `json:"dollar_value"`
}

// AssetChange is one predicted token movement. Type is Transfer, Mint or Burn.
type AssetChange struct {
	TokenInfo   TokenInfo `json:"token_info"`
	Type        string    `json:"type"`
	From        string    `json:"from"`
	To          string    `json:"to"`
	Amount      string    `json:"amount"`
	RawAmount   string    `json:"raw_amount"`
	DollarValue string    `json:"dollar_value"`
}

type BalanceChange struct {
	Address     string `json:"address"`
	DollarValue string `json:"dollar_value"`
	Transfers   []int  `json:"transfers"`
}

type TransactionInfo struct {
	AssetChanges   []AssetChange   `json:"asset_changes"`
	BalanceChanges []BalanceChange `json:"balance_changes"`
}

type SimulationResponse struct {
	Transaction struct {
		TransactionInfo TransactionInfo `json:"transaction_info"`
	} `json:"transaction"`
}

// Call is the transaction to dry-run against a given block.
type Call struct {
	BlockNumber uint64
	From        string
	To          string
	Value       *big.Int
	Input       string
}

type simulationRequest struct {
	NetworkID      string   `json:"network_id"`
	BlockNumber    uint64   `json:"block_number"`
	From           string   `json:"from"`
	To             string   `json:"to"`
	Value          *big.Int `json:"value"`
	Input          string   `json:"input"`
	SimulationType string   `json:"simulation_type"`
	Save           bool     `json:"save"`
	SaveIfFails    bool     `json:"save_if_fails"`
}

type errorResponse struct {
	Error struct {
		Message string `json:"message"`
	} `json:"error"`
}
