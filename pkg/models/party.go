package models

import (
	"strings"

	"github.com/shopspring/decimal"
)

const (
	PartyTypeClient = "client"
	PartyTypeVendor = "vendor"
)

// Party is a client or vendor record. Balance is authoritative on the
// backend; the console only displays it and passes edits through.
type Party struct {
	ID      FlexInt         `json:"id"`
	Name    string          `json:"name"`
	Type    string          `json:"type"`
	Address string          `json:"address,omitempty"`
	TaxID   string          `json:"tax_id,omitempty"`
	Phone   string          `json:"phone,omitempty"`
	Email   string          `json:"email,omitempty"`
	Balance decimal.Decimal `json:"balance"`
}

// Normalize lowercases the type the way every screen of the old SPA did
// before comparing ("Client" and "client" both occur in the data).
func (p *Party) Normalize() {
	p.Type = strings.ToLower(strings.TrimSpace(p.Type))
}

func (p *Party) IsParty() bool {
	return p.Type == PartyTypeClient || p.Type == PartyTypeVendor
}
