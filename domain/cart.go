package domain

import "errors"

var (
	MessageSuccessAddToCart      = "item added to cart"
	MessageSuccessGetCart        = "cart retrieved successfully"
	MessageSuccessUpdateCartItem = "cart item updated successfully"
	MessageSuccessRemoveCartItem = "item removed from cart"
	MessageSuccessCheckout       = "order placed successfully"

	MessageFailedAddToCart      = "failed to add item to cart"
	MessageFailedGetCart        = "failed to retrieve cart"
	MessageFailedUpdateCartItem = "failed to update cart item"
	MessageFailedRemoveCartItem = "failed to remove item from cart"
	MessageFailedCheckout       = "failed to place order"

	ErrCartItemNotFound = errors.New("cart item not found")
	ErrCartEmpty        = errors.New("cart is empty")
	ErrInvalidQuantity  = errors.New("quantity must be at least 1")
)

type (
	AddToCartRequest struct {
		MenuItemID string `json:"menu_item_id" validate:"required,uuid"`
		// Quantity 0 means the untouched selector, displayed as 1.
		Quantity int `json:"quantity" validate:"omitempty,min=0"`
	}

	UpdateCartItemRequest struct {
		Quantity int `json:"quantity" validate:"required"`
	}

	CartLineResponse struct {
		ID         string  `json:"id"`
		MenuItemID string  `json:"menu_item_id"`
		Name       string  `json:"name"`
		Price      float64 `json:"price"`
		ImageURL   string  `json:"image_url,omitempty"`
		Quantity   int     `json:"quantity"`
		LineTotal  float64 `json:"line_total"`
	}

	CartResponse struct {
		Items           []CartLineResponse `json:"items"`
		DeliveryAddress string             `json:"delivery_address,omitempty"`
		Phone           string             `json:"phone,omitempty"`
		Subtotal        float64            `json:"subtotal"`
		Total           float64            `json:"total"`
	}

	CheckoutRequest struct {
		DeliveryAddress string `json:"delivery_address" validate:"required"`
		Phone           string `json:"phone" validate:"required"`
		Notes           string `json:"notes"`
	}

	CheckoutResponse struct {
		OrderID     string  `json:"order_id"`
		TotalAmount float64 `json:"total_amount"`
		Status      string  `json:"status"`
	}
)
