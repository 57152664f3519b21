package model

// Customer is an immutable customer record. Each customer owns exactly one
// account; the account number equals the customer id.
type Customer struct {
	ID            int64  `json:"id"`
	Name          string `json:"name"`
	AccountNumber int64  `json:"accountNumber"`
}
