package domain

import (
	"strings"
	"time"
)

// Order status vocabulary. Transitions are managed by an external process;
// this service only ever writes the initial "pending" and displays the rest.
const (
	StatusPending        = "pending"
	StatusConfirmed      = "confirmed"
	StatusPreparing      = "preparing"
	StatusOutForDelivery = "out_for_delivery"
	StatusDelivered      = "delivered"
	StatusCancelled      = "cancelled"
)

var (
	MessageSuccessGetOrders = "orders retrieved successfully"
	MessageFailedGetOrders  = "failed to retrieve orders"
)

var statusColors = map[string]string{
	StatusPending:        "yellow",
	StatusConfirmed:      "blue",
	StatusPreparing:      "purple",
	StatusOutForDelivery: "orange",
	StatusDelivered:      "green",
	StatusCancelled:      "red",
}

// StatusColor returns the badge color for a status, falling back to a
// neutral gray for anything outside the known vocabulary.
func StatusColor(status string) string {
	if color, ok := statusColors[status]; ok {
		return color
	}
	return "gray"
}

// StatusLabel turns "out_for_delivery" into "Out For Delivery".
func StatusLabel(status string) string {
	words := strings.Split(status, "_")
	for i, word := range words {
		if word == "" {
			continue
		}
		words[i] = strings.ToUpper(word[:1]) + word[1:]
	}
	return strings.Join(words, " ")
}

type (
	OrderItemResponse struct {
		MenuItemID string  `json:"menu_item_id"`
		Name       string  `json:"name"`
		Quantity   int     `json:"quantity"`
		Price      float64 `json:"price"`
		Subtotal   float64 `json:"subtotal"`
	}

	OrderResponse struct {
		ID              string              `json:"id"`
		ShortID         string              `json:"short_id"`
		Status          string              `json:"status"`
		StatusLabel     string              `json:"status_label"`
		StatusColor     string              `json:"status_color"`
		TotalAmount     float64             `json:"total_amount"`
		DeliveryAddress string              `json:"delivery_address"`
		Phone           string              `json:"phone"`
		Notes           string              `json:"notes,omitempty"`
		CreatedAt       time.Time           `json:"created_at"`
		Items           []OrderItemResponse `json:"items"`
	}
)
