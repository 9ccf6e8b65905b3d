package service

import (
	"context"
	"testing"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestUserService_Create(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	user, err := svc.Create(context.Background(), domain.CreateUserInput{
		FullName: "Alice Wanjiku",
		Email:    "Alice@Example.com",
		Phone:    "0712 345 678",
	})

	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "alice@example.com", user.Email)
	assert.Equal(t, "254712345678", user.Phone)
}

func TestUserService_Create_Validation(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	cases := []struct {
		name  string
		input domain.CreateUserInput
	}{
		{"missing name", domain.CreateUserInput{Email: "a@b.com", Phone: "0712345678"}},
		{"bad email", domain.CreateUserInput{FullName: "Alice", Email: "not-an-email", Phone: "0712345678"}},
		{"bad phone", domain.CreateUserInput{FullName: "Alice", Email: "a@b.com", Phone: "12345"}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.Create(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestUserService_Create_DuplicateEmail(t *testing.T) {
	repo := mocks.NewMockUserRepo(t)
	svc := NewUserService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(domain.ErrEmailTaken)

	_, err := svc.Create(context.Background(), domain.CreateUserInput{
		FullName: "Alice Wanjiku",
		Email:    "alice@example.com",
		Phone:    "0712345678",
	})

	assert.ErrorIs(t, err, domain.ErrEmailTaken)
}
