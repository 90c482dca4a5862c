package entity

// CategoryStats is one row of the order-stats aggregation.
type CategoryStats struct {
	Category string  `bson:"category" json:"category"`
	Quantity int64   `bson:"quantity" json:"quantity"`
	Revenue  float64 `bson:"revenue" json:"revenue"`
}
