package price

import (
	"github.com/shopspring/decimal"

	"catalog-sync/core/catalog"
)

// UpdateRequest is the price update batch.
type UpdateRequest struct {
	Updates []UpdateItem `json:"updates"`
}

// UpdateItem is one submitted price change. Exactly one of ID and
// ProductNumber must be set, and at least one of Price and Prices.
// A present-but-empty Prices slice is an intentional full tier deletion.
type UpdateItem struct {
	ID            string        `json:"id"`
	ProductNumber string        `json:"productNumber"`
	Price         PriceSetInput `json:"price"`
	Prices        []TierInput   `json:"prices"`
}

// PriceSetInput maps a human-readable currency code (e.g. "EUR") to a
// submitted money value. Codes are translated to internal currency ids
// during normalization.
type PriceSetInput map[string]MoneyInput

// MoneyInput is a submitted money value. Pointer fields distinguish
// absent from zero during validation.
type MoneyInput struct {
	Net             *decimal.Decimal `json:"net"`
	Gross           *decimal.Decimal `json:"gross"`
	Linked          *bool            `json:"linked"`
	ListPrice       *MoneyInput      `json:"listPrice"`
	RegulationPrice *MoneyInput      `json:"regulationPrice"`
}

// TierInput is one submitted advanced price tier.
type TierInput struct {
	RuleID        string        `json:"ruleId"`
	QuantityStart *int          `json:"quantityStart"`
	QuantityEnd   *int          `json:"quantityEnd"`
	Price         PriceSetInput `json:"price"`
}

// Result is the per-product outcome of a price batch.
type Result struct {
	Updated bool   `json:"updated"`
	Reason  string `json:"reason,omitempty"`
}

// updateItem is a validated, normalized update addressed by id (or still
// by product number before resolution). price is nil when the simple
// price was not submitted; hasTiers records whether the prices field was
// present at all, since an empty tier list is a deletion request.
type updateItem struct {
	id            string
	productNumber string
	price         catalog.PriceSet
	tiers         []tierUpdate
	hasTiers      bool
}

// tierUpdate is a normalized submitted tier with defaults applied.
type tierUpdate struct {
	ruleID        string
	quantityStart int
	quantityEnd   *int
	price         catalog.PriceSet
}
