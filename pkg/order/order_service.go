package order

import (
	"food-ordering-api/domain"
	"context"
	"math"
)

type (
	OrderService interface {
		GetOrderHistory(ctx context.Context, userID string) ([]domain.OrderResponse, error)
	}

	orderService struct {
		orderRepository OrderRepository
	}
)

func NewOrderService(orderRepository OrderRepository) OrderService {
	return &orderService{
		orderRepository: orderRepository,
	}
}

func (s *orderService) GetOrderHistory(ctx context.Context, userID string) ([]domain.OrderResponse, error) {
	orders, err := s.orderRepository.GetOrdersByUser(ctx, userID)
	if err != nil {
		return nil, err
	}

	response := make([]domain.OrderResponse, 0, len(orders))
	for _, o := range orders {
		items := make([]domain.OrderItemResponse, 0, len(o.Items))
		for _, item := range o.Items {
			name := ""
			if item.MenuItem != nil {
				name = item.MenuItem.Name
			}
			items = append(items, domain.OrderItemResponse{
				MenuItemID: item.MenuItemID.String(),
				Name:       name,
				Quantity:   item.Quantity,
				Price:      item.Price,
				Subtotal:   round2(item.Price * float64(item.Quantity)),
			})
		}

		id := o.ID.String()
		response = append(response, domain.OrderResponse{
			ID:              id,
			ShortID:         shortID(id),
			Status:          o.Status,
			StatusLabel:     domain.StatusLabel(o.Status),
			StatusColor:     domain.StatusColor(o.Status),
			TotalAmount:     o.TotalAmount,
			DeliveryAddress: o.DeliveryAddress,
			Phone:           o.Phone,
			Notes:           o.Notes,
			CreatedAt:       o.CreatedAt,
			Items:           items,
		})
	}
	return response, nil
}

func shortID(id string) string {
	if len(id) <= 8 {
		return id
	}
	return id[:8]
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
