package catalog

import (
	"fmt"

	"github.com/shopspring/decimal"
)

func init() {
	// Price payloads carry plain JSON numbers, both on the wire and in the
	// serialized price columns.
	decimal.MarshalJSONWithoutQuotes = true
}

// Money is a single currency-scoped price value. Nested ListPrice and
// RegulationPrice values inherit the parent's currency and therefore carry
// no currency id of their own.
type Money struct {
	CurrencyID      string          `json:"currencyId,omitempty"`
	Net             decimal.Decimal `json:"net"`
	Gross           decimal.Decimal `json:"gross"`
	Linked          bool            `json:"linked"`
	ListPrice       *Money          `json:"listPrice,omitempty"`
	RegulationPrice *Money          `json:"regulationPrice,omitempty"`
}

// Equal reports structural equality. Decimal values compare by numeric
// value, so 1.0 and 1.00 are the same price.
func (m Money) Equal(o Money) bool {
	if m.CurrencyID != o.CurrencyID || m.Linked != o.Linked {
		return false
	}
	if !m.Net.Equal(o.Net) || !m.Gross.Equal(o.Gross) {
		return false
	}
	if !moneyPtrEqual(m.ListPrice, o.ListPrice) {
		return false
	}
	return moneyPtrEqual(m.RegulationPrice, o.RegulationPrice)
}

func moneyPtrEqual(a, b *Money) bool {
	if a == nil || b == nil {
		return a == b
	}
	return a.Equal(*b)
}

// PriceSet maps a currency id to its Money value.
type PriceSet map[string]Money

// Equal reports key-wise structural equality. A currency present on only
// one side counts as a difference.
func (p PriceSet) Equal(o PriceSet) bool {
	if len(p) != len(o) {
		return false
	}
	for key, money := range p {
		other, ok := o[key]
		if !ok || !money.Equal(other) {
			return false
		}
	}
	return true
}

// TierKey builds the identity key of an advanced price tier. Two tiers
// occupy the same slot iff rule id and quantity bounds all match; the
// stored row id plays no part in identity.
func TierKey(ruleID string, quantityStart int, quantityEnd *int) string {
	end := "null"
	if quantityEnd != nil {
		end = fmt.Sprintf("%d", *quantityEnd)
	}
	return fmt.Sprintf("%s_%d_%s", ruleID, quantityStart, end)
}
