package models

type Response struct {
	Success bool        `json:"success"`
	Message string      `json:"message,omitempty"`
	Data    interface{} `json:"data,omitempty"`
}

type ErrorResponse struct {
	Success bool   `json:"success"`
	Message string `json:"message"`
	Field   string `json:"field,omitempty"`
	Error   string `json:"error,omitempty"`
}

type PaginationMeta struct {
	Page       int `json:"page"`
	Limit      int `json:"limit"`
	TotalItems int `json:"total_items"`
	TotalPages int `json:"total_pages"`
}

type PaginatedResponse struct {
	Success bool           `json:"success"`
	Message string         `json:"message,omitempty"`
	Data    interface{}    `json:"data"`
	Meta    PaginationMeta `json:"meta"`
}

type CartSummary struct {
	Items    []CartItem `json:"items"`
	Count    int        `json:"count"`
	Subtotal float64    `json:"subtotal"`
}

type OrderSummary struct {
	OrderID  string     `json:"order_id"`
	Items    []CartItem `json:"items"`
	Subtotal float64    `json:"subtotal"`
	Shipping float64    `json:"shipping"`
	Tax      float64    `json:"tax"`
	Total    float64    `json:"total"`
}
