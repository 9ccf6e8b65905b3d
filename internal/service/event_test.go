package service

import (
	"context"
	"testing"
	"time"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
	"github.com/devray254/bookable-festivals-sub000/internal/service/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

func TestEventService_CreateEvent(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().Create(mock.Anything, mock.Anything).Return(nil)

	event, err := svc.CreateEvent(context.Background(), domain.CreateEventInput{
		Title:          "Annual Summit",
		Venue:          "KICC, Nairobi",
		Price:          1500,
		CPDPoints:      5,
		TargetAudience: "Clinical officers",
		EventDate:      time.Now().Add(30 * 24 * time.Hour),
	})

	require.NoError(t, err)
	assert.NotEmpty(t, event.ID)
	assert.Equal(t, "Annual Summit", event.Title)
	assert.Equal(t, int64(1500), event.Price)
	assert.False(t, event.IsFree())
}

func TestEventService_CreateEvent_Validation(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	cases := []struct {
		name  string
		input domain.CreateEventInput
	}{
		{"missing title", domain.CreateEventInput{Price: 100, EventDate: time.Now().Add(time.Hour)}},
		{"negative price", domain.CreateEventInput{Title: "X", Price: -1, EventDate: time.Now().Add(time.Hour)}},
		{"past date", domain.CreateEventInput{Title: "X", Price: 100, EventDate: time.Now().Add(-time.Hour)}},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			_, err := svc.CreateEvent(context.Background(), tc.input)
			assert.ErrorIs(t, err, domain.ErrValidation)
		})
	}
}

func TestEventService_GetByID_NotFound(t *testing.T) {
	repo := mocks.NewMockEventRepo(t)
	svc := NewEventService(repo)

	repo.EXPECT().GetByID(mock.Anything, "missing").Return(nil, domain.ErrEventNotFound)

	_, err := svc.GetByID(context.Background(), "missing")

	assert.ErrorIs(t, err, domain.ErrEventNotFound)
}
