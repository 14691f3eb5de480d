package usecase_room

import (
	"context"
	"errors"
	"testing"

	"github.com/google/uuid"
	"github.com/ozontech/allure-go/pkg/framework/provider"
	"github.com/ozontech/allure-go/pkg/framework/suite"
	"github.com/stretchr/testify/assert"

	"github.com/Ewen02/swipe-movie-sub000/internal/model"
	mocks "github.com/Ewen02/swipe-movie-sub000/mocks/room"
)

type UsecaseRoomUnitSuite struct {
	suite.Suite

	mockRepo *mocks.RoomRepository
	usecase  *Usecase
	ctx      context.Context
}

func validRoomID() uuid.UUID {
	return uuid.MustParse("22222222-2222-2222-2222-222222222222")
}

func validRoom() model.Room {
	return model.Room{
		ID:        validRoomID(),
		Code:      "ABC123",
		Capacity:  4,
		MediaType: model.MediaTypeMovie,
		Filters:   model.Filters{GenreID: 28},
	}
}

func (s *UsecaseRoomUnitSuite) BeforeEach(t provider.T) {
	s.mockRepo = mocks.NewRoomRepository(t)
	s.usecase = New(s.mockRepo)
	s.ctx = context.Background()
}

func (s *UsecaseRoomUnitSuite) TestGet(t provider.T) {
	t.Run("Should return the room", func(t provider.T) {
		s.mockRepo.On("ByID", s.ctx, validRoomID()).Return(validRoom(), nil).Once()

		room, err := s.usecase.Get(s.ctx, validRoomID())

		assert.NoError(t, err)
		assert.Equal(t, validRoom(), room)
	})

	t.Run("Should pass through not found", func(t provider.T) {
		s.mockRepo.On("ByID", s.ctx, validRoomID()).
			Return(model.Room{}, ErrResourceNotFound).Once()

		_, err := s.usecase.Get(s.ctx, validRoomID())

		assert.ErrorIs(t, err, ErrResourceNotFound)
	})

	t.Run("Should wrap repository failures", func(t provider.T) {
		s.mockRepo.On("ByID", s.ctx, validRoomID()).
			Return(model.Room{}, errors.New("pq: connection refused")).Once()

		_, err := s.usecase.Get(s.ctx, validRoomID())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseRoomUnitSuite) TestContext(t provider.T) {
	t.Run("Should assemble the room snapshot", func(t provider.T) {
		members := []uuid.UUID{uuid.New(), uuid.New()}

		s.mockRepo.On("ByID", s.ctx, validRoomID()).Return(validRoom(), nil).Once()
		s.mockRepo.On("MemberIDs", s.ctx, validRoomID()).Return(members, nil).Once()

		rc, err := s.usecase.Context(s.ctx, validRoomID())

		assert.NoError(t, err)
		assert.Equal(t, validRoomID(), rc.RoomID)
		assert.Equal(t, members, rc.MemberIDs)
		assert.Equal(t, model.MediaTypeMovie, rc.MediaType)
		assert.Equal(t, 28, rc.Filters.GenreID)
	})

	t.Run("Should fail when members cannot be loaded", func(t provider.T) {
		s.mockRepo.On("ByID", s.ctx, validRoomID()).Return(validRoom(), nil).Once()
		s.mockRepo.On("MemberIDs", s.ctx, validRoomID()).
			Return(nil, errors.New("pq: connection refused")).Once()

		_, err := s.usecase.Context(s.ctx, validRoomID())

		assert.ErrorIs(t, err, ErrInternal)
	})
}

func (s *UsecaseRoomUnitSuite) TestIsMember(t provider.T) {
	t.Run("Should report membership", func(t provider.T) {
		userID := uuid.New()

		s.mockRepo.On("IsMember", s.ctx, validRoomID(), userID).Return(true, nil).Once()

		isMember, err := s.usecase.IsMember(s.ctx, validRoomID(), userID)

		assert.NoError(t, err)
		assert.True(t, isMember)
	})
}

func TestUnitSuite(t *testing.T) {
	suite.RunSuite(t, new(UsecaseRoomUnitSuite))
}
