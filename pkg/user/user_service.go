package user

import (
	"food-ordering-api/domain"
	"context"
	"errors"
	"github.com/gofiber/fiber/v2/log"
	"gorm.io/gorm"
)

type (
	// CartCounter is the slice of the cart repository the session summary
	// needs; the concrete implementation lives in pkg/cart.
	CartCounter interface {
		CountCartQuantity(ctx context.Context, userID string) (int64, error)
	}

	UserService interface {
		GetSessionSummary(ctx context.Context, userID string) (domain.SessionSummaryResponse, error)
	}

	userService struct {
		userRepository UserRepository
		cartCounter    CartCounter
	}
)

func NewUserService(userRepository UserRepository, cartCounter CartCounter) UserService {
	return &userService{
		userRepository: userRepository,
		cartCounter:    cartCounter,
	}
}

func (s *userService) GetSessionSummary(ctx context.Context, userID string) (domain.SessionSummaryResponse, error) {
	user, err := s.userRepository.GetUserByID(ctx, userID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return domain.SessionSummaryResponse{}, domain.ErrUserNotFound
		}
		return domain.SessionSummaryResponse{}, err
	}

	// The badge count is best-effort: a failed query shows as zero.
	count, err := s.cartCounter.CountCartQuantity(ctx, userID)
	if err != nil {
		log.Errorf("failed to count cart items for user %s: %v", userID, err)
		count = 0
	}

	return domain.SessionSummaryResponse{
		UserID:    user.ID.String(),
		Email:     user.Email,
		Name:      user.Name,
		CartCount: int(count),
	}, nil
}
