package service

import (
	"context"

	"scenario-server/internal/models"
	"scenario-server/internal/repository"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// SessionService владеет игровыми сессиями и всем, что внутри них:
// участниками, таймлайном и графом узлов.
type SessionService struct {
	sessionRepo   repository.SessionRepository
	playerRepo    repository.SessionPlayerRepository
	timelineRepo  repository.TimelineRepository
	characterRepo repository.CharacterRepository
	logger        *zap.Logger
}

func NewSessionService(
	sessionRepo repository.SessionRepository,
	playerRepo repository.SessionPlayerRepository,
	timelineRepo repository.TimelineRepository,
	characterRepo repository.CharacterRepository,
	logger *zap.Logger,
) *SessionService {
	return &SessionService{
		sessionRepo:   sessionRepo,
		playerRepo:    playerRepo,
		timelineRepo:  timelineRepo,
		characterRepo: characterRepo,
		logger:        logger.Named("SessionService"),
	}
}

// getOwnedSession возвращает сессию, только если userID - ее мастер.
func (s *SessionService) getOwnedSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.Session, error) {
	session, err := s.sessionRepo.GetByID(ctx, sessionID)
	if err != nil {
		return nil, err
	}
	if session.UserID != userID {
		return nil, models.ErrSessionNotFound
	}
	return session, nil
}

func (s *SessionService) CreateSession(ctx context.Context, userID uuid.UUID, session *models.Session) error {
	session.UserID = userID
	if session.CreatorMode == "" {
		session.CreatorMode = models.CreatorModeRoad
	}
	if session.AIMode == "" {
		session.AIMode = models.AIModeOff
	}
	if err := validateSession(session); err != nil {
		return err
	}
	return s.sessionRepo.Create(ctx, session)
}

func (s *SessionService) GetSession(ctx context.Context, userID, sessionID uuid.UUID) (*models.Session, error) {
	return s.getOwnedSession(ctx, userID, sessionID)
}

func (s *SessionService) ListSessions(ctx context.Context, userID uuid.UUID) ([]models.Session, error) {
	return s.sessionRepo.ListByUserID(ctx, userID)
}

func (s *SessionService) UpdateSession(ctx context.Context, userID, sessionID uuid.UUID, upd models.SessionUpdate) (*models.Session, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	if upd.Name != nil {
		session.Name = *upd.Name
	}
	if upd.CreatorMode != nil {
		session.CreatorMode = *upd.CreatorMode
	}
	if upd.CurrentPhase != nil {
		session.CurrentPhase = *upd.CurrentPhase
	}
	if upd.Duration != nil {
		session.Duration = *upd.Duration
	}
	if upd.AIMode != nil {
		session.AIMode = *upd.AIMode
	}
	if err := validateSession(session); err != nil {
		return nil, err
	}
	if err := s.sessionRepo.Update(ctx, session); err != nil {
		return nil, err
	}
	return session, nil
}

func (s *SessionService) DeleteSession(ctx context.Context, userID, sessionID uuid.UUID) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.sessionRepo.Delete(ctx, sessionID)
}

// GetPacingAdvice считает сводку темпа по текущей фазе и накопленному
// времени. Ничего не пишет - чистая производная от состояния сессии.
func (s *SessionService) GetPacingAdvice(ctx context.Context, userID, sessionID uuid.UUID) (*models.PacingAdvice, error) {
	session, err := s.getOwnedSession(ctx, userID, sessionID)
	if err != nil {
		return nil, err
	}
	advice := computePacing(session)
	return &advice, nil
}

// --- участники сессии ---

func (s *SessionService) AddPlayer(ctx context.Context, userID, sessionID uuid.UUID, player *models.SessionPlayer) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	player.SessionID = sessionID
	if player.Role == "" {
		player.Role = models.PlayerRolePlayer
	}
	if err := validateSessionPlayer(player); err != nil {
		return err
	}
	if player.CharacterID != nil {
		if _, err := s.characterRepo.GetByID(ctx, *player.CharacterID); err != nil {
			return err
		}
	}
	return s.playerRepo.Create(ctx, player)
}

func (s *SessionService) ListPlayers(ctx context.Context, userID, sessionID uuid.UUID) ([]models.SessionPlayer, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.playerRepo.ListBySessionID(ctx, sessionID)
}

func (s *SessionService) getSessionPlayer(ctx context.Context, userID, sessionID, playerID uuid.UUID) (*models.SessionPlayer, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	player, err := s.playerRepo.GetByID(ctx, playerID)
	if err != nil {
		return nil, err
	}
	if player.SessionID != sessionID {
		return nil, models.ErrPlayerNotFound
	}
	return player, nil
}

func (s *SessionService) UpdatePlayer(ctx context.Context, userID, sessionID, playerID uuid.UUID, upd models.SessionPlayerUpdate) (*models.SessionPlayer, error) {
	player, err := s.getSessionPlayer(ctx, userID, sessionID, playerID)
	if err != nil {
		return nil, err
	}
	if upd.CharacterID != nil {
		if _, err := s.characterRepo.GetByID(ctx, *upd.CharacterID); err != nil {
			return nil, err
		}
		player.CharacterID = upd.CharacterID
	}
	if upd.Role != nil {
		player.Role = *upd.Role
	}
	if upd.IsOnline != nil {
		player.IsOnline = *upd.IsOnline
	}
	if err := validateSessionPlayer(player); err != nil {
		return nil, err
	}
	if err := s.playerRepo.Update(ctx, player); err != nil {
		return nil, err
	}
	return player, nil
}

func (s *SessionService) RemovePlayer(ctx context.Context, userID, sessionID, playerID uuid.UUID) error {
	if _, err := s.getSessionPlayer(ctx, userID, sessionID, playerID); err != nil {
		return err
	}
	return s.playerRepo.Delete(ctx, playerID)
}

// --- таймлайн ---

func (s *SessionService) CreateTimelineEvent(ctx context.Context, userID, sessionID uuid.UUID, event *models.TimelineEvent) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	event.SessionID = sessionID
	if err := validateTimelineEvent(event); err != nil {
		return err
	}
	return s.timelineRepo.CreateEvent(ctx, event)
}

func (s *SessionService) ListTimelineEvents(ctx context.Context, userID, sessionID uuid.UUID) ([]models.TimelineEvent, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.timelineRepo.ListEventsBySessionID(ctx, sessionID)
}

func (s *SessionService) UpdateTimelineEvent(ctx context.Context, userID, sessionID, eventID uuid.UUID, upd models.TimelineEventUpdate) (*models.TimelineEvent, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	event, err := s.timelineRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return nil, err
	}
	if event.SessionID != sessionID {
		return nil, models.ErrEventNotFound
	}
	if upd.Title != nil {
		event.Title = *upd.Title
	}
	if upd.Description != nil {
		event.Description = *upd.Description
	}
	if upd.Kind != nil {
		event.Kind = *upd.Kind
	}
	if upd.Position != nil {
		event.Position = *upd.Position
	}
	if err := validateTimelineEvent(event); err != nil {
		return nil, err
	}
	if err := s.timelineRepo.UpdateEvent(ctx, event); err != nil {
		return nil, err
	}
	return event, nil
}

func (s *SessionService) DeleteTimelineEvent(ctx context.Context, userID, sessionID, eventID uuid.UUID) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	event, err := s.timelineRepo.GetEventByID(ctx, eventID)
	if err != nil {
		return err
	}
	if event.SessionID != sessionID {
		return models.ErrEventNotFound
	}
	return s.timelineRepo.DeleteEvent(ctx, eventID)
}

// --- граф узлов ---

func (s *SessionService) CreateNode(ctx context.Context, userID, sessionID uuid.UUID, node *models.Node) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	node.SessionID = sessionID
	if err := validateNode(node); err != nil {
		return err
	}
	return s.timelineRepo.CreateNode(ctx, node)
}

func (s *SessionService) ListNodes(ctx context.Context, userID, sessionID uuid.UUID) ([]models.Node, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.timelineRepo.ListNodesBySessionID(ctx, sessionID)
}

func (s *SessionService) DeleteNode(ctx context.Context, userID, sessionID, nodeID uuid.UUID) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.timelineRepo.DeleteNode(ctx, nodeID)
}

// CreateConnection связывает два узла графа. Оба узла должны принадлежать
// той же сессии.
func (s *SessionService) CreateConnection(ctx context.Context, userID, sessionID uuid.UUID, conn *models.Connection) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	conn.SessionID = sessionID
	nodes, err := s.timelineRepo.ListNodesBySessionID(ctx, sessionID)
	if err != nil {
		return err
	}
	if !nodeExists(nodes, conn.FromNode) || !nodeExists(nodes, conn.ToNode) {
		return models.ErrNodeNotFound
	}
	return s.timelineRepo.CreateConnection(ctx, conn)
}

func (s *SessionService) ListConnections(ctx context.Context, userID, sessionID uuid.UUID) ([]models.Connection, error) {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return nil, err
	}
	return s.timelineRepo.ListConnectionsBySessionID(ctx, sessionID)
}

func (s *SessionService) DeleteConnection(ctx context.Context, userID, sessionID, connectionID uuid.UUID) error {
	if _, err := s.getOwnedSession(ctx, userID, sessionID); err != nil {
		return err
	}
	return s.timelineRepo.DeleteConnection(ctx, connectionID)
}

func nodeExists(nodes []models.Node, id uuid.UUID) bool {
	for i := range nodes {
		if nodes[i].ID == id {
			return true
		}
	}
	return false
}
