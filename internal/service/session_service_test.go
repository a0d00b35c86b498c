package service_test

import (
	"context"
	"testing"

	"scenario-server/internal/models"
	"scenario-server/internal/repository/mocks"
	"scenario-server/internal/service"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type sessionMocks struct {
	sessionRepo   *mocks.SessionRepository
	playerRepo    *mocks.SessionPlayerRepository
	timelineRepo  *mocks.TimelineRepository
	characterRepo *mocks.CharacterRepository
}

func newSessionService() (*service.SessionService, *sessionMocks) {
	m := &sessionMocks{
		sessionRepo:   new(mocks.SessionRepository),
		playerRepo:    new(mocks.SessionPlayerRepository),
		timelineRepo:  new(mocks.TimelineRepository),
		characterRepo: new(mocks.CharacterRepository),
	}
	svc := service.NewSessionService(m.sessionRepo, m.playerRepo, m.timelineRepo, m.characterRepo, zap.NewNop())
	return svc, m
}

func TestSessionService_CreateSession(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()

	t.Run("Defaults are applied", func(t *testing.T) {
		svc, m := newSessionService()
		m.sessionRepo.On("Create", mock.Anything, mock.MatchedBy(func(s *models.Session) bool {
			return s.UserID == userID &&
				s.CreatorMode == models.CreatorModeRoad &&
				s.AIMode == models.AIModeOff
		})).Return(nil).Once()

		err := svc.CreateSession(ctx, userID, &models.Session{Name: "Friday table"})

		require.NoError(t, err)
		m.sessionRepo.AssertExpectations(t)
	})

	t.Run("Unknown creator mode is rejected", func(t *testing.T) {
		svc, m := newSessionService()

		err := svc.CreateSession(ctx, userID, &models.Session{
			Name:        "Broken",
			CreatorMode: models.CreatorMode("dungeon"),
		})

		verr, ok := models.AsValidationError(err)
		require.True(t, ok)
		require.Len(t, verr.Fields, 1)
		assert.Equal(t, "creatorMode", verr.Fields[0].Field)
		m.sessionRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSessionService_GetPacingAdvice(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	expectSession := func(m *sessionMocks, session *models.Session) {
		session.ID = sessionID
		session.UserID = userID
		m.sessionRepo.On("GetByID", mock.Anything, sessionID).Return(session, nil).Once()
	}

	t.Run("Behind schedule in road mode", func(t *testing.T) {
		svc, m := newSessionService()
		// Фаза encounter: план 30+75+60 = 165 минут
		expectSession(m, &models.Session{CreatorMode: models.CreatorModeRoad, CurrentPhase: 2, Duration: 200})

		advice, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "encounter", advice.Phase)
		assert.Equal(t, 2, advice.PhaseIndex)
		assert.Equal(t, 165, advice.ExpectedMinutes)
		assert.Equal(t, 200, advice.ElapsedMinutes)
		assert.Contains(t, advice.Advice, "behind schedule")
	})

	t.Run("Ahead of schedule in road mode", func(t *testing.T) {
		svc, m := newSessionService()
		expectSession(m, &models.Session{CreatorMode: models.CreatorModeRoad, CurrentPhase: 2, Duration: 100})

		advice, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		require.NoError(t, err)
		assert.Contains(t, advice.Advice, "ahead of schedule")
	})

	t.Run("On pace within the slack window", func(t *testing.T) {
		svc, m := newSessionService()
		expectSession(m, &models.Session{CreatorMode: models.CreatorModeRoad, CurrentPhase: 2, Duration: 170})

		advice, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		require.NoError(t, err)
		assert.Contains(t, advice.Advice, "on pace")
	})

	t.Run("First phase never reports ahead", func(t *testing.T) {
		svc, m := newSessionService()
		expectSession(m, &models.Session{CreatorMode: models.CreatorModeRoad, CurrentPhase: 0, Duration: 0})

		advice, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "departure", advice.Phase)
		assert.Contains(t, advice.Advice, "on pace")
	})

	t.Run("Phase index beyond the table is clamped", func(t *testing.T) {
		svc, m := newSessionService()
		expectSession(m, &models.Session{CreatorMode: models.CreatorModeRoad, CurrentPhase: 99, Duration: 240})

		advice, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "resolution", advice.Phase)
		assert.Equal(t, 4, advice.PhaseIndex)
		assert.Equal(t, 240, advice.ExpectedMinutes)
	})

	t.Run("City mode uses its own phase table", func(t *testing.T) {
		svc, m := newSessionService()
		// Фаза investigation: план 20+70 = 90 минут
		expectSession(m, &models.Session{CreatorMode: models.CreatorModeCity, CurrentPhase: 1, Duration: 90})

		advice, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		require.NoError(t, err)
		assert.Equal(t, "investigation", advice.Phase)
		assert.Equal(t, 90, advice.ExpectedMinutes)
	})

	t.Run("Foreign session is not found", func(t *testing.T) {
		svc, m := newSessionService()
		m.sessionRepo.On("GetByID", mock.Anything, sessionID).
			Return(&models.Session{ID: sessionID, UserID: uuid.New()}, nil).Once()

		_, err := svc.GetPacingAdvice(ctx, userID, sessionID)

		assert.ErrorIs(t, err, models.ErrSessionNotFound)
	})
}

func TestSessionService_AddPlayer(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	ownSession := func(m *sessionMocks) {
		m.sessionRepo.On("GetByID", mock.Anything, sessionID).
			Return(&models.Session{ID: sessionID, UserID: userID}, nil).Once()
	}

	t.Run("Default role is player", func(t *testing.T) {
		svc, m := newSessionService()
		ownSession(m)
		m.playerRepo.On("Create", mock.Anything, mock.MatchedBy(func(p *models.SessionPlayer) bool {
			return p.SessionID == sessionID && p.Role == models.PlayerRolePlayer
		})).Return(nil).Once()

		err := svc.AddPlayer(ctx, userID, sessionID, &models.SessionPlayer{UserID: uuid.New()})

		require.NoError(t, err)
		m.playerRepo.AssertExpectations(t)
	})

	t.Run("Attached character must exist", func(t *testing.T) {
		svc, m := newSessionService()
		ownSession(m)
		characterID := uuid.New()
		m.characterRepo.On("GetByID", mock.Anything, characterID).
			Return(nil, models.ErrCharacterNotFound).Once()

		err := svc.AddPlayer(ctx, userID, sessionID, &models.SessionPlayer{
			UserID:      uuid.New(),
			CharacterID: &characterID,
		})

		assert.ErrorIs(t, err, models.ErrCharacterNotFound)
		m.playerRepo.AssertNotCalled(t, "Create", mock.Anything, mock.Anything)
	})
}

func TestSessionService_TimelineEvents(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()
	eventID := uuid.New()

	ownSession := func(m *sessionMocks) {
		m.sessionRepo.On("GetByID", mock.Anything, sessionID).
			Return(&models.Session{ID: sessionID, UserID: userID}, nil).Once()
	}

	t.Run("Event from another session is not found", func(t *testing.T) {
		svc, m := newSessionService()
		ownSession(m)
		m.timelineRepo.On("GetEventByID", mock.Anything, eventID).
			Return(&models.TimelineEvent{ID: eventID, SessionID: uuid.New(), Title: "Ambush"}, nil).Once()

		newTitle := "Renamed"
		_, err := svc.UpdateTimelineEvent(ctx, userID, sessionID, eventID, models.TimelineEventUpdate{Title: &newTitle})

		assert.ErrorIs(t, err, models.ErrEventNotFound)
		m.timelineRepo.AssertNotCalled(t, "UpdateEvent", mock.Anything, mock.Anything)
	})

	t.Run("Partial update keeps untouched fields", func(t *testing.T) {
		svc, m := newSessionService()
		ownSession(m)
		m.timelineRepo.On("GetEventByID", mock.Anything, eventID).
			Return(&models.TimelineEvent{ID: eventID, SessionID: sessionID, Title: "Ambush", Position: 3}, nil).Once()
		m.timelineRepo.On("UpdateEvent", mock.Anything, mock.MatchedBy(func(e *models.TimelineEvent) bool {
			return e.Title == "Ambush at the ford" && e.Position == 3
		})).Return(nil).Once()

		newTitle := "Ambush at the ford"
		event, err := svc.UpdateTimelineEvent(ctx, userID, sessionID, eventID, models.TimelineEventUpdate{Title: &newTitle})

		require.NoError(t, err)
		assert.Equal(t, 3, event.Position)
		m.timelineRepo.AssertExpectations(t)
	})
}

func TestSessionService_CreateConnection(t *testing.T) {
	ctx := context.Background()
	userID := uuid.New()
	sessionID := uuid.New()

	ownSession := func(m *sessionMocks) {
		m.sessionRepo.On("GetByID", mock.Anything, sessionID).
			Return(&models.Session{ID: sessionID, UserID: userID}, nil).Once()
	}

	nodeA := uuid.New()
	nodeB := uuid.New()
	nodes := []models.Node{
		{ID: nodeA, SessionID: sessionID, Label: "Tavern"},
		{ID: nodeB, SessionID: sessionID, Label: "Docks"},
	}

	t.Run("Both endpoints must exist", func(t *testing.T) {
		svc, m := newSessionService()
		ownSession(m)
		m.timelineRepo.On("ListNodesBySessionID", mock.Anything, sessionID).Return(nodes, nil).Once()

		err := svc.CreateConnection(ctx, userID, sessionID, &models.Connection{
			FromNode: nodeA,
			ToNode:   uuid.New(), // узла нет в сессии
		})

		assert.ErrorIs(t, err, models.ErrNodeNotFound)
		m.timelineRepo.AssertNotCalled(t, "CreateConnection", mock.Anything, mock.Anything)
	})

	t.Run("Valid connection is created", func(t *testing.T) {
		svc, m := newSessionService()
		ownSession(m)
		m.timelineRepo.On("ListNodesBySessionID", mock.Anything, sessionID).Return(nodes, nil).Once()
		m.timelineRepo.On("CreateConnection", mock.Anything, mock.MatchedBy(func(c *models.Connection) bool {
			return c.SessionID == sessionID && c.FromNode == nodeA && c.ToNode == nodeB
		})).Return(nil).Once()

		err := svc.CreateConnection(ctx, userID, sessionID, &models.Connection{FromNode: nodeA, ToNode: nodeB})

		require.NoError(t, err)
		m.timelineRepo.AssertExpectations(t)
	})
}
