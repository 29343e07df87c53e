package domain

// Product is a catalog entry. Products are written only by the seeding
// routine; everything else treats them as read-only.
type Product struct {
	ID          string  `json:"id" bson:"_id,omitempty"`
	Name        string  `json:"name" bson:"name"`
	Price       float64 `json:"price" bson:"price"`
	Image       string  `json:"image" bson:"image"`
	Description string  `json:"description" bson:"description"`
}
