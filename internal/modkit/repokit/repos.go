// Package repokit holds the seams repositories are written against, so they
// never import a driver
package repokit

import "formvoice/internal/platform/store"

type (
	// Queryer is what a SQL repo reads and writes through
	Queryer = store.RowQuerier

	// TxRunner runs a function in a transaction
	TxRunner = store.TxRunner
)
