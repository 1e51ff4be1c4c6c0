package response

import "order-time-checker/internal/domain/ordertime"

type OrderTimeResponse struct {
	// Result is the lead time in minutes (>= 0) or a rejection code (-3, -2, -1, 0).
	Result int `json:"result" example:"60"`
}

func FromOutcome(o ordertime.Outcome) *OrderTimeResponse {
	return &OrderTimeResponse{Result: o.Result()}
}
