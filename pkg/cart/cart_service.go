package cart

import (
	"food-ordering-api/domain"
	"food-ordering-api/entities"
	"food-ordering-api/internal/utils/mailing"
	"food-ordering-api/pkg/menu"
	"food-ordering-api/pkg/order"
	"food-ordering-api/pkg/user"
	"context"
	"errors"
	"fmt"
	"math"
	"github.com/gofiber/fiber/v2/log"
	"github.com/google/uuid"
	"gorm.io/gorm"
)

type (
	CartService interface {
		AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error)
		GetCart(ctx context.Context, userID string) (domain.CartResponse, error)
		UpdateQuantity(ctx context.Context, itemID string, userID string, quantity int) error
		RemoveItem(ctx context.Context, itemID string, userID string) error
		Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error)
	}

	cartService struct {
		cartRepository  CartRepository
		menuRepository  menu.MenuRepository
		orderRepository order.OrderRepository
		userRepository  user.UserRepository
		mailer          mailing.Mailer
	}
)

func NewCartService(
	cartRepository CartRepository,
	menuRepository menu.MenuRepository,
	orderRepository order.OrderRepository,
	userRepository user.UserRepository,
	mailer mailing.Mailer,
) CartService {
	return &cartService{
		cartRepository:  cartRepository,
		menuRepository:  menuRepository,
		orderRepository: orderRepository,
		userRepository:  userRepository,
		mailer:          mailer,
	}
}

// AddToCart merges into an existing row for the same menu item, so one user
// never holds two cart rows for one item.
func (s *cartService) AddToCart(ctx context.Context, req domain.AddToCartRequest, userID string) (domain.CartLineResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CartLineResponse{}, domain.ErrParseUUID
	}

	menuItem, err := s.menuRepository.GetMenuItemByID(ctx, req.MenuItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.CartLineResponse{}, domain.ErrMenuItemNotFound
		}
		return domain.CartLineResponse{}, err
	}
	if !menuItem.IsAvailable {
		return domain.CartLineResponse{}, domain.ErrMenuItemUnavailable
	}

	// An untouched quantity selector displays 1.
	quantity := req.Quantity
	if quantity <= 0 {
		quantity = 1
	}

	existing, err := s.cartRepository.GetCartItemByMenuItem(ctx, userID, req.MenuItemID)
	if err != nil && !errors.Is(err, gorm.ErrRecordNotFound) {
		return domain.CartLineResponse{}, err
	}

	var cartItem *entities.CartItem
	if existing != nil {
		newQuantity := existing.Quantity + quantity
		if err := s.cartRepository.UpdateCartItemQuantity(ctx, existing.ID.String(), newQuantity); err != nil {
			return domain.CartLineResponse{}, err
		}
		existing.Quantity = newQuantity
		cartItem = existing
	} else {
		cartItem = &entities.CartItem{
			ID:         uuid.New(),
			UserID:     userUUID,
			MenuItemID: menuItem.ID,
			Quantity:   quantity,
		}
		if err := s.cartRepository.CreateCartItem(ctx, cartItem); err != nil {
			return domain.CartLineResponse{}, err
		}
	}

	return domain.CartLineResponse{
		ID:         cartItem.ID.String(),
		MenuItemID: menuItem.ID.String(),
		Name:       menuItem.Name,
		Price:      menuItem.Price,
		ImageURL:   menuItem.ImageURL,
		Quantity:   cartItem.Quantity,
		LineTotal:  round2(menuItem.Price * float64(cartItem.Quantity)),
	}, nil
}

func (s *cartService) GetCart(ctx context.Context, userID string) (domain.CartResponse, error) {
	items, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return domain.CartResponse{}, err
	}

	lines := make([]domain.CartLineResponse, 0, len(items))
	for _, item := range items {
		line := domain.CartLineResponse{
			ID:         item.ID.String(),
			MenuItemID: item.MenuItemID.String(),
			Quantity:   item.Quantity,
		}
		if item.MenuItem != nil {
			line.Name = item.MenuItem.Name
			line.Price = item.MenuItem.Price
			line.ImageURL = item.MenuItem.ImageURL
			line.LineTotal = round2(item.MenuItem.Price * float64(item.Quantity))
		}
		lines = append(lines, line)
	}

	response := domain.CartResponse{
		Items:    lines,
		Subtotal: cartTotal(items),
		Total:    cartTotal(items),
	}

	// Prefill from the saved profile; missing contact info is not an error.
	if profile, err := s.userRepository.GetUserByID(ctx, userID); err == nil {
		response.DeliveryAddress = profile.Address
		response.Phone = profile.Phone
	}

	return response, nil
}

func (s *cartService) UpdateQuantity(ctx context.Context, itemID string, userID string, quantity int) error {
	if quantity < 1 {
		return domain.ErrInvalidQuantity
	}

	item, err := s.cartRepository.GetCartItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}
	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.cartRepository.UpdateCartItemQuantity(ctx, itemID, quantity)
}

func (s *cartService) RemoveItem(ctx context.Context, itemID string, userID string) error {
	item, err := s.cartRepository.GetCartItemByID(ctx, itemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.ErrCartItemNotFound
		}
		return err
	}
	if item.UserID.String() != userID {
		return domain.ErrUserNotAllowed
	}

	return s.cartRepository.DeleteCartItem(ctx, itemID)
}

// Checkout runs the write chain in order: order row, order item rows, cart
// clear, profile update. The chain is not transactional; a failed cart clear
// or profile update is logged and the order stands.
func (s *cartService) Checkout(ctx context.Context, req domain.CheckoutRequest, userID string) (domain.CheckoutResponse, error) {
	userUUID, err := uuid.Parse(userID)
	if err != nil {
		return domain.CheckoutResponse{}, domain.ErrParseUUID
	}

	items, err := s.cartRepository.GetCartItems(ctx, userID)
	if err != nil {
		return domain.CheckoutResponse{}, err
	}
	if len(items) == 0 {
		return domain.CheckoutResponse{}, domain.ErrCartEmpty
	}

	total := cartTotal(items)

	newOrder := &entities.Order{
		ID:              uuid.New(),
		UserID:          userUUID,
		TotalAmount:     total,
		DeliveryAddress: req.DeliveryAddress,
		Phone:           req.Phone,
		Notes:           req.Notes,
		Status:          domain.StatusPending,
	}
	if err := s.orderRepository.CreateOrder(ctx, newOrder); err != nil {
		return domain.CheckoutResponse{}, err
	}

	orderItems := make([]*entities.OrderItem, 0, len(items))
	for _, item := range items {
		orderItem := &entities.OrderItem{
			ID:         uuid.New(),
			OrderID:    newOrder.ID,
			MenuItemID: item.MenuItemID,
			Quantity:   item.Quantity,
		}
		if item.MenuItem != nil {
			orderItem.Price = item.MenuItem.Price
		}
		orderItems = append(orderItems, orderItem)
	}
	if err := s.orderRepository.CreateOrderItems(ctx, orderItems); err != nil {
		// The order row from the previous step stays in place.
		return domain.CheckoutResponse{}, err
	}

	if err := s.cartRepository.DeleteCartItemsByUser(ctx, userID); err != nil {
		log.Errorf("failed to clear cart for user %s after order %s: %v", userID, newOrder.ID, err)
	}

	if err := s.userRepository.UpdateContactInfo(ctx, userID, req.DeliveryAddress, req.Phone); err != nil {
		log.Errorf("failed to update contact info for user %s: %v", userID, err)
	}

	s.sendConfirmation(ctx, userID, newOrder)

	return domain.CheckoutResponse{
		OrderID:     newOrder.ID.String(),
		TotalAmount: total,
		Status:      newOrder.Status,
	}, nil
}

func (s *cartService) sendConfirmation(ctx context.Context, userID string, o *entities.Order) {
	if s.mailer == nil {
		return
	}
	profile, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil || profile.Email == "" {
		return
	}
	subject := fmt.Sprintf("Order #%.8s confirmed", o.ID.String())
	body := fmt.Sprintf(
		"<p>Thanks for your order!</p><p>Order <b>#%.8s</b> for <b>$%.2f</b> was placed and is now pending. We will deliver to:</p><p>%s</p>",
		o.ID.String(), o.TotalAmount, o.DeliveryAddress,
	)
	go func() {
		if err := s.mailer.Send(profile.Email, subject, body); err != nil {
			log.Errorf("failed to send order confirmation for order %s: %v", o.ID, err)
		}
	}()
}

func cartTotal(items []*entities.CartItem) float64 {
	var total float64
	for _, item := range items {
		if item.MenuItem == nil {
			continue
		}
		total += item.MenuItem.Price * float64(item.Quantity)
	}
	return round2(total)
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
