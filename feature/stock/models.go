package stock

// UpdateRequest is the stock update batch.
type UpdateRequest struct {
	Updates []UpdateItem `json:"updates"`
}

// UpdateItem is one submitted stock change. Exactly one of ID and
// ProductNumber must be set; Stock is required. Threshold optionally
// requests a cache invalidation when the stock level crosses it upward.
type UpdateItem struct {
	ID            string `json:"id"`
	ProductNumber string `json:"productNumber"`
	Stock         *int   `json:"stock"`
	Threshold     *int   `json:"threshold"`
}

// Result records the before/after state of one applied stock change.
type Result struct {
	OldStock     int  `json:"oldStock"`
	NewStock     int  `json:"newStock"`
	OldAvailable bool `json:"oldAvailable"`
	NewAvailable bool `json:"newAvailable"`
}
