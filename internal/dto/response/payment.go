package response

type ClientSecretResponse struct {
	ClientSecret string `json:"clientSecret"`
}

// PaymentResponse answers POST /payments with both halves of the checkout.
type PaymentResponse struct {
	PaymentResult *InsertResponse `json:"paymentResult"`
	DeleteResult  *DeleteResponse `json:"deleteResult"`
}
