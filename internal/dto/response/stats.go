package response

type AdminStatsResponse struct {
	Customers int64   `json:"customers"`
	Products  int64   `json:"products"`
	Orders    int64   `json:"orders"`
	Revenue   float64 `json:"revenue"`
}
