package reconcile

// Action is the kind of mutation an Operation performs.
type Action string

const (
	// ActionUpsert creates or updates records.
	ActionUpsert Action = "upsert"
	// ActionDelete removes records by primary key.
	ActionDelete Action = "delete"
)

// Entities addressable by operations.
const (
	EntityProduct      = "product"
	EntityProductPrice = "product_price"
)

// Operation is one tagged unit of work in the log. Records is the
// entity-specific payload:
//
//	upsert product        []catalog.ProductPricePatch
//	upsert product_price  []catalog.ProductPrice
//	delete product_price  []string (row ids)
type Operation struct {
	// Key names the operation for logs and errors, e.g. "product-price-update".
	Key string
	// Action is the mutation kind.
	Action Action
	// Entity is the target entity.
	Entity string
	// Records is the entity-specific payload.
	Records any
}
