package price_test

import (
	"context"
	"testing"

	"catalog-sync/core/catalog"
	"catalog-sync/core/database"
	"catalog-sync/core/validation"
	"catalog-sync/feature/price"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Currency{}, &catalog.Product{}, &catalog.ProductPrice{})
	require.NoError(t, err)

	require.NoError(t, db.Create(&catalog.Currency{ID: "cur-eur", ISOCode: "EUR"}).Error)

	return db
}

func dec(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

func inputSet(net, gross string) price.PriceSetInput {
	return price.PriceSetInput{"EUR": price.MoneyInput{Net: dec(net), Gross: dec(gross)}}
}

func storedSet(net, gross string) catalog.PriceSet {
	return catalog.PriceSet{"cur-eur": catalog.Money{
		CurrencyID: "cur-eur",
		Net:        decimal.RequireFromString(net),
		Gross:      decimal.RequireFromString(gross),
	}}
}

func TestUpdatePrices_Idempotence(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001",
		Price: storedSet("10", "11.90"),
	}).Error)

	service := price.NewService(db, zap.NewNop())
	req := price.UpdateRequest{Updates: []price.UpdateItem{
		{ID: "p1", Price: inputSet("20", "23.80")},
	}}

	results, err := service.UpdatePrices(context.Background(), catalog.LiveVersion, req)
	require.NoError(t, err)
	assert.Equal(t, price.Result{Updated: true}, results["p1"])

	var product catalog.Product
	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.True(t, product.Price.Equal(storedSet("20", "23.80")))

	// Same submission again: nothing differs, nothing is written.
	results, err = service.UpdatePrices(context.Background(), catalog.LiveVersion, req)
	require.NoError(t, err)
	assert.Equal(t, price.Result{Updated: false, Reason: "No changes detected"}, results["p1"])
}

func TestUpdatePrices_TierReplaceByFullSet(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001",
	}).Error)

	end := 10
	require.NoError(t, db.Create(&catalog.ProductPrice{
		ID: "id-a", ProductID: "p1", RuleID: "rule-1", QuantityStart: 1, QuantityEnd: &end,
		Price: storedSet("8", "9.52"),
	}).Error)
	require.NoError(t, db.Create(&catalog.ProductPrice{
		ID: "id-b", ProductID: "p1", RuleID: "rule-1", QuantityStart: 11,
		Price: storedSet("7", "8.33"),
	}).Error)
	require.NoError(t, db.Create(&catalog.ProductPrice{
		ID: "id-c", ProductID: "p1", RuleID: "rule-2", QuantityStart: 1,
		Price: storedSet("6", "7.14"),
	}).Error)

	qStart := 11
	qEnd := 10
	req := price.UpdateRequest{Updates: []price.UpdateItem{{
		ID: "p1",
		Prices: []price.TierInput{
			// A with a changed price (quantityStart defaults to 1).
			{RuleID: "rule-1", QuantityEnd: &qEnd, Price: inputSet("8.5", "10.12")},
			// B unchanged.
			{RuleID: "rule-1", QuantityStart: &qStart, Price: inputSet("7", "8.33")},
			// C omitted: deleted.
		},
	}}}

	service := price.NewService(db, zap.NewNop())
	results, err := service.UpdatePrices(context.Background(), catalog.LiveVersion, req)
	require.NoError(t, err)
	assert.Equal(t, price.Result{Updated: true}, results["p1"])

	var tiers []catalog.ProductPrice
	require.NoError(t, db.Order("id").Find(&tiers).Error)
	require.Len(t, tiers, 2)

	assert.Equal(t, "id-a", tiers[0].ID, "changed tier updated in place")
	assert.True(t, tiers[0].Price.Equal(storedSet("8.5", "10.12")))
	assert.Equal(t, "id-b", tiers[1].ID, "unchanged tier keeps its row")
	assert.True(t, tiers[1].Price.Equal(storedSet("7", "8.33")))
}

func TestUpdatePrices_EmptyTierListDeletesAll(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001",
	}).Error)
	require.NoError(t, db.Create(&catalog.ProductPrice{
		ID: "id-a", ProductID: "p1", RuleID: "rule-1", QuantityStart: 1,
		Price: storedSet("8", "9.52"),
	}).Error)

	service := price.NewService(db, zap.NewNop())
	results, err := service.UpdatePrices(context.Background(), catalog.LiveVersion, price.UpdateRequest{
		Updates: []price.UpdateItem{{ID: "p1", Prices: []price.TierInput{}}},
	})
	require.NoError(t, err)
	assert.Equal(t, price.Result{Updated: true}, results["p1"])

	var count int64
	require.NoError(t, db.Model(&catalog.ProductPrice{}).Count(&count).Error)
	assert.Zero(t, count)
}

func TestUpdatePrices_ResolveByProductNumber(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001",
		Price: storedSet("10", "11.90"),
	}).Error)

	service := price.NewService(db, zap.NewNop())
	results, err := service.UpdatePrices(context.Background(), catalog.LiveVersion, price.UpdateRequest{
		Updates: []price.UpdateItem{
			{ProductNumber: "SW-1001", Price: inputSet("20", "23.80")},
			{ProductNumber: "SW-UNKNOWN", Price: inputSet("5", "5.95")},
		},
	})
	require.NoError(t, err)

	// The unknown reference is dropped silently: one result, keyed by id.
	require.Len(t, results, 1)
	assert.Equal(t, price.Result{Updated: true}, results["p1"])
}

func TestUpdatePrices_UnknownCurrencyRejected(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001",
		Price: storedSet("10", "11.90"),
	}).Error)

	service := price.NewService(db, zap.NewNop())
	_, err := service.UpdatePrices(context.Background(), catalog.LiveVersion, price.UpdateRequest{
		Updates: []price.UpdateItem{{ID: "p1", Price: price.PriceSetInput{
			"XXX": price.MoneyInput{Net: dec("1"), Gross: dec("1.19")},
		}}},
	})

	var violations validation.Violations
	require.ErrorAs(t, err, &violations)

	// Validation failed before any write.
	var product catalog.Product
	require.NoError(t, db.First(&product, "id = ?", "p1").Error)
	assert.True(t, product.Price.Equal(storedSet("10", "11.90")))
}
