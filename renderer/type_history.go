package renderer

import "github.com/etnz/debtservice"

// History is the view of the ledger.
type History struct {
	Path string
	Rows []debtservice.LedgerRow
}
