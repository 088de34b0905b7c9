package catalog_test

import (
	"context"
	"testing"

	"catalog-sync/core/catalog"
	"catalog-sync/core/database"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func testDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := database.Connect(database.Config{Driver: "sqlite", Name: ":memory:"})
	require.NoError(t, err)

	err = db.AutoMigrate(&catalog.Currency{}, &catalog.Product{}, &catalog.ProductPrice{})
	require.NoError(t, err)

	return db
}

func boolPtr(b bool) *bool { return &b }
func intPtr(i int) *int    { return &i }
func strPtr(s string) *string {
	return &s
}

func TestCurrencies(t *testing.T) {
	db := testDB(t)
	require.NoError(t, db.Create(&catalog.Currency{ID: "cur-eur", ISOCode: "EUR"}).Error)
	require.NoError(t, db.Create(&catalog.Currency{ID: "cur-usd", ISOCode: "USD"}).Error)

	codes, err := catalog.Currencies(context.Background(), db)
	assert.NoError(t, err)
	assert.Equal(t, map[string]string{"EUR": "cur-eur", "USD": "cur-usd"}, codes)
}

func TestProductNumbersToIDs(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&catalog.Product{ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001"}).Error)
	require.NoError(t, db.Create(&catalog.Product{ID: "p2", VersionID: catalog.LiveVersion, ProductNumber: "SW-1002"}).Error)
	// Same number in a draft partition must not resolve for live lookups.
	require.NoError(t, db.Create(&catalog.Product{ID: "p3", VersionID: "draft-version", ProductNumber: "SW-2001"}).Error)

	resolved, err := catalog.ProductNumbersToIDs(context.Background(), db, catalog.LiveVersion,
		[]string{"SW-1001", "SW-1002", "SW-2001", "SW-MISSING"})
	assert.NoError(t, err)

	assert.Equal(t, map[string]string{"SW-1001": "p1", "SW-1002": "p2"}, resolved)
}

func TestProductNumbersToIDs_EmptyInput(t *testing.T) {
	db := testDB(t)

	resolved, err := catalog.ProductNumbersToIDs(context.Background(), db, catalog.LiveVersion, nil)
	assert.NoError(t, err)
	assert.Empty(t, resolved)
}

func TestLoadPriceSnapshots(t *testing.T) {
	db := testDB(t)

	price := catalog.PriceSet{"cur-eur": catalog.Money{
		CurrencyID: "cur-eur",
		Net:        decimal.NewFromInt(10),
		Gross:      decimal.RequireFromString("11.9"),
	}}
	require.NoError(t, db.Create(&catalog.Product{ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001", Price: price}).Error)
	require.NoError(t, db.Create(&catalog.Product{ID: "p2", VersionID: catalog.LiveVersion, ProductNumber: "SW-1002"}).Error)

	end := 10
	require.NoError(t, db.Create(&catalog.ProductPrice{ID: "t1", ProductID: "p1", RuleID: "rule-1", QuantityStart: 1, QuantityEnd: &end, Price: price}).Error)
	require.NoError(t, db.Create(&catalog.ProductPrice{ID: "t2", ProductID: "p1", RuleID: "rule-1", QuantityStart: 11, Price: price}).Error)

	snapshots, err := catalog.LoadPriceSnapshots(context.Background(), db, catalog.LiveVersion,
		[]string{"p1", "p2", "missing"})
	assert.NoError(t, err)
	assert.Len(t, snapshots, 2)

	p1 := snapshots["p1"]
	assert.True(t, p1.Price.Equal(price))
	assert.Len(t, p1.Tiers, 2)
	assert.Equal(t, "t1", p1.Tiers[0].ID)
	assert.Equal(t, 10, *p1.Tiers[0].QuantityEnd)
	assert.Nil(t, p1.Tiers[1].QuantityEnd)

	p2 := snapshots["p2"]
	assert.Empty(t, p2.Tiers)

	_, found := snapshots["missing"]
	assert.False(t, found)
}

func TestLoadStockSnapshots(t *testing.T) {
	db := testDB(t)

	// Standalone closeout product with its own settings.
	require.NoError(t, db.Create(&catalog.Product{
		ID: "p1", VersionID: catalog.LiveVersion, ProductNumber: "SW-1001",
		Stock: 5, Available: true, IsCloseout: boolPtr(true), MinPurchase: intPtr(3),
	}).Error)

	// Parent with closeout settings and a variant inheriting them.
	require.NoError(t, db.Create(&catalog.Product{
		ID: "parent", VersionID: catalog.LiveVersion, ProductNumber: "SW-2000",
		Stock: 0, Available: false, IsCloseout: boolPtr(true), MinPurchase: intPtr(2),
	}).Error)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "variant", VersionID: catalog.LiveVersion, ProductNumber: "SW-2000.1",
		ParentID: strPtr("parent"), Stock: 7, Available: true,
	}).Error)

	// Product without any closeout settings falls back to defaults.
	require.NoError(t, db.Create(&catalog.Product{
		ID: "plain", VersionID: catalog.LiveVersion, ProductNumber: "SW-3000",
		Stock: 1, Available: true,
	}).Error)

	snapshots, err := catalog.LoadStockSnapshots(context.Background(), db, catalog.LiveVersion,
		[]string{"p1", "variant", "plain", "missing"})
	assert.NoError(t, err)
	assert.Len(t, snapshots, 3)

	p1 := snapshots["p1"]
	assert.Equal(t, 5, p1.Stock)
	assert.True(t, p1.Available)
	assert.True(t, p1.IsCloseout)
	assert.Equal(t, 3, p1.MinPurchase)

	variant := snapshots["variant"]
	assert.True(t, variant.IsCloseout, "variant inherits closeout from parent")
	assert.Equal(t, 2, variant.MinPurchase, "variant inherits min purchase from parent")

	plain := snapshots["plain"]
	assert.False(t, plain.IsCloseout)
	assert.Equal(t, 1, plain.MinPurchase)
}

func TestLoadStockSnapshots_OwnValueWinsOverParent(t *testing.T) {
	db := testDB(t)

	require.NoError(t, db.Create(&catalog.Product{
		ID: "parent", VersionID: catalog.LiveVersion, ProductNumber: "SW-2000",
		IsCloseout: boolPtr(true), MinPurchase: intPtr(10),
	}).Error)
	require.NoError(t, db.Create(&catalog.Product{
		ID: "variant", VersionID: catalog.LiveVersion, ProductNumber: "SW-2000.1",
		ParentID: strPtr("parent"), IsCloseout: boolPtr(false), MinPurchase: intPtr(4),
	}).Error)

	snapshots, err := catalog.LoadStockSnapshots(context.Background(), db, catalog.LiveVersion, []string{"variant"})
	assert.NoError(t, err)

	variant := snapshots["variant"]
	assert.False(t, variant.IsCloseout)
	assert.Equal(t, 4, variant.MinPurchase)
}
