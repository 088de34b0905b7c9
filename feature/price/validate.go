package price

import (
	"fmt"

	"catalog-sync/core/catalog"
	"catalog-sync/core/validation"
)

// validateUpdates checks the whole batch eagerly and, when it is clean,
// returns the normalized items: currency codes replaced by ids, linked
// flags defaulted to false, tier quantity starts defaulted to 1.
// Any violation means no item is returned and nothing is written.
func validateUpdates(updates []UpdateItem, currencies map[string]string) ([]updateItem, error) {
	var violations validation.Violations

	if len(updates) == 0 {
		violations.Add("updates", validation.CodeRequired, "at least one update must be provided")
		return nil, violations.OrNil()
	}

	for i, update := range updates {
		path := fmt.Sprintf("updates/%d", i)

		switch {
		case update.ID == "" && update.ProductNumber == "":
			violations.Add(path, validation.CodeIdentifierNotGiven,
				`either "id" or "productNumber" must be provided`)
		case update.ID != "" && update.ProductNumber != "":
			violations.Add(path, validation.CodeIdentifierNotGiven,
				`only one of "id" and "productNumber" may be provided`)
		}

		if update.Price == nil && update.Prices == nil {
			violations.Add(path, validation.CodePriceDataRequired,
				`either "price" or "prices" must be provided`)
		}

		if update.Price != nil {
			validatePriceSet(path+"/price", update.Price, currencies, &violations)
		}

		for j, tier := range update.Prices {
			tierPath := fmt.Sprintf("%s/prices/%d", path, j)

			if tier.RuleID == "" {
				violations.Add(tierPath+"/ruleId", validation.CodeRequired, "ruleId is required")
			}
			if tier.QuantityStart != nil && *tier.QuantityStart < 1 {
				violations.Add(tierPath+"/quantityStart", validation.CodeOutOfRange,
					"quantityStart must be at least 1")
			}
			if tier.QuantityEnd != nil && *tier.QuantityEnd < 1 {
				violations.Add(tierPath+"/quantityEnd", validation.CodeOutOfRange,
					"quantityEnd must be at least 1")
			}
			if tier.Price == nil {
				violations.Add(tierPath+"/price", validation.CodeRequired, "price is required")
				continue
			}
			validatePriceSet(tierPath+"/price", tier.Price, currencies, &violations)
		}
	}

	if err := violations.OrNil(); err != nil {
		return nil, err
	}

	items := make([]updateItem, 0, len(updates))
	for _, update := range updates {
		item := updateItem{
			id:            update.ID,
			productNumber: update.ProductNumber,
		}

		if update.Price != nil {
			item.price = normalizePriceSet(update.Price, currencies)
		}

		if update.Prices != nil {
			item.hasTiers = true
			item.tiers = make([]tierUpdate, 0, len(update.Prices))
			for _, tier := range update.Prices {
				quantityStart := 1
				if tier.QuantityStart != nil {
					quantityStart = *tier.QuantityStart
				}
				item.tiers = append(item.tiers, tierUpdate{
					ruleID:        tier.RuleID,
					quantityStart: quantityStart,
					quantityEnd:   tier.QuantityEnd,
					price:         normalizePriceSet(tier.Price, currencies),
				})
			}
		}

		items = append(items, item)
	}

	return items, nil
}

// validatePriceSet checks one submitted price set: every currency code
// must resolve, and every money value (including nested list and
// regulation prices) must carry net and gross.
func validatePriceSet(path string, set PriceSetInput, currencies map[string]string, violations *validation.Violations) {
	for code, money := range set {
		moneyPath := path + "/" + code

		if _, ok := currencies[code]; !ok {
			violations.Add(moneyPath, validation.CodeCurrencyNotFound,
				fmt.Sprintf("the currency with code %q cannot be found", code))
		}

		validateMoney(moneyPath, money, violations)
		if money.ListPrice != nil {
			validateMoney(moneyPath+"/listPrice", *money.ListPrice, violations)
		}
		if money.RegulationPrice != nil {
			validateMoney(moneyPath+"/regulationPrice", *money.RegulationPrice, violations)
		}
	}
}

func validateMoney(path string, money MoneyInput, violations *validation.Violations) {
	if money.Net == nil {
		violations.Add(path+"/net", validation.CodeRequired, "net is required")
	}
	if money.Gross == nil {
		violations.Add(path+"/gross", validation.CodeRequired, "gross is required")
	}
}

// normalizePriceSet translates currency codes to ids and applies the
// linked default. Nested prices inherit the parent currency and carry no
// currency id of their own.
func normalizePriceSet(set PriceSetInput, currencies map[string]string) catalog.PriceSet {
	normalized := make(catalog.PriceSet, len(set))
	for code, input := range set {
		currencyID := currencies[code]
		money := normalizeMoney(input)
		money.CurrencyID = currencyID
		normalized[currencyID] = money
	}
	return normalized
}

func normalizeMoney(input MoneyInput) catalog.Money {
	money := catalog.Money{
		Net:   *input.Net,
		Gross: *input.Gross,
	}
	if input.Linked != nil {
		money.Linked = *input.Linked
	}
	if input.ListPrice != nil {
		nested := normalizeMoney(*input.ListPrice)
		money.ListPrice = &nested
	}
	if input.RegulationPrice != nil {
		nested := normalizeMoney(*input.RegulationPrice)
		money.RegulationPrice = &nested
	}
	return money
}
