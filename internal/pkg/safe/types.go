package safe

import "time"

// SafeInfo is the owner set of a Safe account.
type SafeInfo struct {
	Address   string   `json:"address"`
	Owners    []string `json:"owners"`
	Threshold int      `json:"threshold"`
	Version   string   `json:"version"`
}

type Confirmation struct {
	Owner          string    `json:"owner"`
	SubmissionDate time.Time `json:"submissionDate"`
	SignatureType  string    `json:"signatureType"`
}

// MultisigTransaction is the coordination service's view of one Safe transaction.
type MultisigTransaction struct {
	Safe                  string         `json:"safe"`
	To                    string         `json:"to"`
	Value                 string         `json:"value"`
	Data                  *string        `json:"data"`
	Operation             int            `json:"operation"`
	SafeTxHash            string         `json:"safeTxHash"`
	TransactionHash       *string        `json:"transactionHash"`
	IsExecuted            bool           `json:"isExecuted"`
	IsSuccessful          *bool          `json:"isSuccessful"`
	ConfirmationsRequired int            `json:"confirmationsRequired"`
	Confirmations         []Confirmation `json:"confirmations"`
}

// CallData returns the transaction input, 0x when the service has none.
func (t MultisigTransaction) CallData() string {
	if t.Data == nil || *t.Data == "" {
		return "0x"
	}
	return *t.Data
}
