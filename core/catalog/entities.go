package catalog

// LiveVersion identifies the canonical, publicly visible catalog
// partition. Draft or preview working copies use other version ids.
const LiveVersion = "0fa91ce3e96a4bc2be4bd9ce752c3425"

// VersionHeader is the request header that selects the catalog partition.
// Absent means LiveVersion.
const VersionHeader = "sync-version"

// Currency maps a human-readable ISO code to the internal currency id
// used as PriceSet key.
type Currency struct {
	ID      string `gorm:"column:id;primaryKey;size:36"`
	ISOCode string `gorm:"column:iso_code;uniqueIndex;size:8"`
}

// TableName overrides the table name.
func (Currency) TableName() string {
	return "currency"
}

// Product is a catalog item in one version partition. IsCloseout and
// MinPurchase are nullable: a variant with NULL inherits its parent's
// value.
type Product struct {
	ID            string   `gorm:"column:id;primaryKey;size:36"`
	VersionID     string   `gorm:"column:version_id;primaryKey;size:36"`
	ProductNumber string   `gorm:"column:product_number;size:64;index"`
	ParentID      *string  `gorm:"column:parent_id;size:36"`
	Price         PriceSet `gorm:"column:price;serializer:json"`
	Stock         int      `gorm:"column:stock"`
	Available     bool     `gorm:"column:available"`
	IsCloseout    *bool    `gorm:"column:is_closeout"`
	MinPurchase   *int     `gorm:"column:min_purchase"`
}

// TableName overrides the table name.
func (Product) TableName() string {
	return "product"
}

// ProductPrice is one advanced price tier: a quantity- and rule-scoped
// override of the product's simple price.
type ProductPrice struct {
	ID            string   `gorm:"column:id;primaryKey;size:36"`
	ProductID     string   `gorm:"column:product_id;size:36;index"`
	RuleID        string   `gorm:"column:rule_id;size:36"`
	QuantityStart int      `gorm:"column:quantity_start"`
	QuantityEnd   *int     `gorm:"column:quantity_end"`
	Price         PriceSet `gorm:"column:price;serializer:json"`
}

// TableName overrides the table name.
func (ProductPrice) TableName() string {
	return "product_price"
}

// ProductPricePatch is the write shape for a simple price update: only
// the price column of the addressed product row changes.
type ProductPricePatch struct {
	ID        string
	VersionID string
	Price     PriceSet
}
