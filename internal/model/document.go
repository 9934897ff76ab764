package model

// Document is the in-memory ledger: declared accounts and persisted
// transactions, in file order.
type Document struct {
	Accounts     []Account
	Transactions []Transaction
}
