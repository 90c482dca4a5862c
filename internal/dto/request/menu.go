package request

// MenuItemRequest is the body of POST /menu.
type MenuItemRequest struct {
	Name     string  `json:"name" validate:"required,max=200"`
	Recipe   string  `json:"recipe"`
	Image    string  `json:"image"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price" validate:"gte=0"`
}

// MenuUpdateRequest is the body of PATCH /menu/{id}. Only the fields present
// are changed.
type MenuUpdateRequest struct {
	Name     *string  `json:"name" validate:"omitempty,max=200"`
	Recipe   *string  `json:"recipe"`
	Category *string  `json:"category"`
	Price    *float64 `json:"price" validate:"omitempty,gte=0"`
}
