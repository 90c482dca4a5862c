package request

type CartItemRequest struct {
	MenuID string  `json:"menuId" validate:"required"`
	Email  string  `json:"email" validate:"required,email"`
	Name   string  `json:"name"`
	Image  string  `json:"image"`
	Price  float64 `json:"price"`
}
