package user_test

import (
	"context"
	"errors"
	"food-ordering-api/domain"
	"food-ordering-api/entities"
	"food-ordering-api/pkg/user"
	"testing"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

type userRepoMock struct {
	GetUserByIDFunc func(ctx context.Context, id string) (*entities.User, error)
}

func (m *userRepoMock) GetUserByID(ctx context.Context, id string) (*entities.User, error) {
	return m.GetUserByIDFunc(ctx, id)
}
func (m *userRepoMock) UpdateContactInfo(ctx context.Context, userID, address, phone string) error {
	return nil
}

type cartCounterMock struct {
	CountFunc func(ctx context.Context, userID string) (int64, error)
}

func (m *cartCounterMock) CountCartQuantity(ctx context.Context, userID string) (int64, error) {
	return m.CountFunc(ctx, userID)
}

func TestGetSessionSummary(t *testing.T) {
	userID := uuid.New()
	repo := &userRepoMock{
		GetUserByIDFunc: func(ctx context.Context, id string) (*entities.User, error) {
			return &entities.User{ID: userID, Email: "jess@example.com", Name: "Jess"}, nil
		},
	}

	t.Run("returns profile and cart count", func(t *testing.T) {
		counter := &cartCounterMock{
			CountFunc: func(ctx context.Context, uid string) (int64, error) { return 3, nil },
		}

		summary, err := user.NewUserService(repo, counter).GetSessionSummary(context.Background(), userID.String())
		require.NoError(t, err)
		assert.Equal(t, userID.String(), summary.UserID)
		assert.Equal(t, "jess@example.com", summary.Email)
		assert.Equal(t, "Jess", summary.Name)
		assert.Equal(t, 3, summary.CartCount)
	})

	t.Run("count failure degrades to zero", func(t *testing.T) {
		counter := &cartCounterMock{
			CountFunc: func(ctx context.Context, uid string) (int64, error) {
				return 0, errors.New("db down")
			},
		}

		summary, err := user.NewUserService(repo, counter).GetSessionSummary(context.Background(), userID.String())
		require.NoError(t, err)
		assert.Equal(t, 0, summary.CartCount)
	})

	t.Run("unknown user", func(t *testing.T) {
		missingRepo := &userRepoMock{
			GetUserByIDFunc: func(ctx context.Context, id string) (*entities.User, error) {
				return nil, gorm.ErrRecordNotFound
			},
		}
		counter := &cartCounterMock{
			CountFunc: func(ctx context.Context, uid string) (int64, error) { return 0, nil },
		}

		_, err := user.NewUserService(missingRepo, counter).GetSessionSummary(context.Background(), uuid.NewString())
		assert.ErrorIs(t, err, domain.ErrUserNotFound)
	})
}
