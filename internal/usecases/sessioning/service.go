package sessioning

import (
	"time"

	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"github.com/vfigueroa/casino-manager-api/pkg/utils"
)

// Sessioner administra las sesiones de trabajo de los dealers.
// Un dealer tiene a lo más una sesión activa a la vez.
type Sessioner interface {
	CreateSession(session *domain.Session) (*domain.Session, error)
	GetSessionByID(sessionID string) (*domain.Session, error)
	ListSessions(skip, limit int) ([]*domain.Session, error)
	ListSessionsByDealer(dealerID string, skip, limit int) ([]*domain.Session, error)
	ListActiveSessions(skip, limit int) ([]*domain.Session, error)
	EndSession(sessionID string, endTime *time.Time) (*domain.Session, error)
	AddJackpot(sessionID string, amount int) (*domain.Session, error)
	AddReik(sessionID string, amount int) (*domain.Session, error)
	AddTips(sessionID string, amount int) (*domain.Session, error)
	UpdateSession(request *domain.UpdateSessionRequest) (*domain.Session, error)
	DeleteSession(sessionID string) error
	Stats() (*domain.SessionStats, error)
}

// Service implementa la interface Sessioner
type Service struct {
	sessionRepo repository.SessionRepository
	userRepo    repository.UserRepository
	clock       timezone.Clock
}

// NewService crea una nueva instancia del servicio de sesiones
func NewService(
	sessionRepo repository.SessionRepository,
	userRepo repository.UserRepository,
	clock timezone.Clock,
) Sessioner {
	return &Service{
		sessionRepo: sessionRepo,
		userRepo:    userRepo,
		clock:       clock,
	}
}

// CreateSession abre una nueva sesión para un dealer sin sesión activa.
func (s *Service) CreateSession(session *domain.Session) (*domain.Session, error) {
	if session.StartTime.IsZero() {
		session.StartTime = timezone.NowBogota(s.clock)
	}

	if validationErrors := session.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewSessionError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	dealer, err := s.userRepo.GetUserByID(session.DealerID)
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if dealer == nil {
		return nil, NewSessionError(ErrDealerNotFound, "RES_001", session.DealerID)
	}
	if !dealer.IsDealer() && !dealer.IsAdmin() {
		return nil, NewSessionError(ErrDealerRoleRequired, "AUTH_006", session.DealerID)
	}

	active, err := s.sessionRepo.GetActiveSessionByDealer(session.DealerID)
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if active != nil {
		return nil, NewSessionIDError(ErrDealerSessionActive, "RES_002", active.ID, session.DealerID)
	}

	sessionID, err := utils.GenerateID()
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_001", err.Error())
	}

	now := timezone.NowBogota(s.clock)
	session.ID = sessionID
	session.EndTime = nil
	session.CreatedAt = now
	session.UpdatedAt = now

	created, err := s.sessionRepo.CreateSession(session)
	if err != nil {
		logrus.Error("Error al crear sesión", map[string]any{
			"dealerID": session.DealerID,
			"error":    err,
		})
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return created, nil
}

// GetSessionByID busca una sesión por su identificador
func (s *Service) GetSessionByID(sessionID string) (*domain.Session, error) {
	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if session == nil {
		return nil, NewSessionIDError(ErrSessionNotFound, "RES_001", sessionID, "")
	}

	return session, nil
}

// ListSessions retorna las sesiones registradas, las más recientes primero
func (s *Service) ListSessions(skip, limit int) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListSessions(skip, limit)
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sessions, nil
}

// ListSessionsByDealer retorna las sesiones de un dealer
func (s *Service) ListSessionsByDealer(dealerID string, skip, limit int) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListSessionsByDealer(dealerID, skip, limit)
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sessions, nil
}

// ListActiveSessions retorna las sesiones aún abiertas
func (s *Service) ListActiveSessions(skip, limit int) ([]*domain.Session, error) {
	sessions, err := s.sessionRepo.ListActiveSessions(skip, limit)
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sessions, nil
}

// EndSession cierra una sesión abierta. Una sesión ya cerrada no puede
// cerrarse de nuevo.
func (s *Service) EndSession(sessionID string, endTime *time.Time) (*domain.Session, error) {
	session, err := s.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsActive() {
		return nil, NewSessionIDError(ErrSessionAlreadyEnded, "RES_002", sessionID, "")
	}

	now := timezone.NowBogota(s.clock)
	effectiveEnd := now
	if endTime != nil {
		effectiveEnd = *endTime
	}

	if effectiveEnd.Before(session.StartTime) {
		return nil, NewSessionIDError(ErrInvalidInput, "VAL_001", sessionID,
			"el tiempo de fin no puede ser anterior al tiempo de inicio")
	}

	ended := session.WithEnd(effectiveEnd, now)
	if err := s.sessionRepo.UpdateSession(&ended); err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return &ended, nil
}

// AddJackpot acumula un monto al jackpot de una sesión abierta
func (s *Service) AddJackpot(sessionID string, amount int) (*domain.Session, error) {
	return s.accumulate(sessionID, amount, domain.Session.WithJackpot)
}

// AddReik acumula un monto al reik de una sesión abierta
func (s *Service) AddReik(sessionID string, amount int) (*domain.Session, error) {
	return s.accumulate(sessionID, amount, domain.Session.WithReik)
}

// AddTips acumula propinas a una sesión abierta
func (s *Service) AddTips(sessionID string, amount int) (*domain.Session, error) {
	return s.accumulate(sessionID, amount, domain.Session.WithTips)
}

func (s *Service) accumulate(
	sessionID string,
	amount int,
	apply func(domain.Session, int, time.Time) domain.Session,
) (*domain.Session, error) {
	if amount < 0 {
		return nil, NewSessionIDError(ErrNegativeAmount, "VAL_002", sessionID, "")
	}

	session, err := s.GetSessionByID(sessionID)
	if err != nil {
		return nil, err
	}

	if !session.IsActive() {
		return nil, NewSessionIDError(ErrSessionAlreadyEnded, "RES_002", sessionID, "")
	}

	updated := apply(*session, amount, timezone.NowBogota(s.clock))
	if err := s.sessionRepo.UpdateSession(&updated); err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return &updated, nil
}

// UpdateSession aplica una actualización parcial de la sesión
func (s *Service) UpdateSession(request *domain.UpdateSessionRequest) (*domain.Session, error) {
	session, err := s.GetSessionByID(request.ID)
	if err != nil {
		return nil, err
	}

	if request.EndTime != nil {
		session.EndTime = request.EndTime
	}
	if request.Jackpot != nil {
		session.Jackpot = *request.Jackpot
	}
	if request.Reik != nil {
		session.Reik = *request.Reik
	}
	if request.Tips != nil {
		session.Tips = *request.Tips
	}
	if request.HourlyPay != nil {
		session.HourlyPay = *request.HourlyPay
	}
	if request.Comment != nil {
		session.Comment = request.Comment
	}

	if validationErrors := session.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewSessionError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	session.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.sessionRepo.UpdateSession(session); err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return session, nil
}

// DeleteSession elimina una sesión de forma definitiva
func (s *Service) DeleteSession(sessionID string) error {
	deleted, err := s.sessionRepo.DeleteSession(sessionID)
	if err != nil {
		return NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if !deleted {
		return NewSessionIDError(ErrSessionNotFound, "RES_001", sessionID, "")
	}

	return nil
}

// Stats retorna los totales agregados de sesiones
func (s *Service) Stats() (*domain.SessionStats, error) {
	stats, err := s.sessionRepo.SessionStats()
	if err != nil {
		return nil, NewSessionError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return stats, nil
}
