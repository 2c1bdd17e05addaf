package awarding

import (
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"github.com/vfigueroa/casino-manager-api/pkg/utils"
)

// Awarder administra los bonos a usuarios y los premios de jackpot pagados.
type Awarder interface {
	CreateBono(bono *domain.Bono) (*domain.Bono, error)
	GetBonoByID(bonoID string) (*domain.Bono, error)
	ListBonos(userID, sessionID *string, skip, limit int) ([]*domain.Bono, error)
	UpdateBono(bono *domain.Bono) (*domain.Bono, error)
	DeleteBono(bonoID string) error
	SumBonosByUser(userID string) (int, error)
	SumBonosBySession(sessionID string) (int, error)

	CreateJackpotWin(win *domain.JackpotWin) (*domain.JackpotWin, error)
	GetJackpotWinByID(winID string) (*domain.JackpotWin, error)
	ListJackpotWins(userID, sessionID *string, skip, limit int) ([]*domain.JackpotWin, error)
	ListHighValueJackpotWins(skip, limit int) ([]*domain.JackpotWin, error)
	GetBiggestJackpotWin() (*domain.JackpotWin, error)
	UpdateJackpotWin(win *domain.JackpotWin) (*domain.JackpotWin, error)
	DeleteJackpotWin(winID string) error
	SumJackpotWinsByUser(userID string) (int, error)
	SumJackpotWinsBySession(sessionID string) (int, error)
}

// Service implementa la interface Awarder
type Service struct {
	cfg            *config.Config
	bonoRepo       repository.BonoRepository
	jackpotWinRepo repository.JackpotWinRepository
	userRepo       repository.UserRepository
	sessionRepo    repository.SessionRepository
	clock          timezone.Clock
}

// NewService crea una nueva instancia del servicio de premios
func NewService(
	cfg *config.Config,
	bonoRepo repository.BonoRepository,
	jackpotWinRepo repository.JackpotWinRepository,
	userRepo repository.UserRepository,
	sessionRepo repository.SessionRepository,
	clock timezone.Clock,
) Awarder {
	return &Service{
		cfg:            cfg,
		bonoRepo:       bonoRepo,
		jackpotWinRepo: jackpotWinRepo,
		userRepo:       userRepo,
		sessionRepo:    sessionRepo,
		clock:          clock,
	}
}

// CreateBono registra un bono para un usuario contra una sesión existente
func (s *Service) CreateBono(bono *domain.Bono) (*domain.Bono, error) {
	if validationErrors := bono.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewAwardError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	if err := s.checkReferences(bono.UserID, bono.SessionID); err != nil {
		return nil, err
	}

	bonoID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_001", err.Error())
	}

	now := timezone.NowBogota(s.clock)
	bono.ID = bonoID
	bono.CreatedAt = now
	bono.UpdatedAt = now

	created, err := s.bonoRepo.CreateBono(bono)
	if err != nil {
		logrus.Error("Error al crear bono", map[string]any{
			"userID": bono.UserID,
			"error":  err,
		})
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return created, nil
}

// GetBonoByID busca un bono por su identificador
func (s *Service) GetBonoByID(bonoID string) (*domain.Bono, error) {
	bono, err := s.bonoRepo.GetBonoByID(bonoID)
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if bono == nil {
		return nil, NewAwardError(ErrBonoNotFound, "RES_001", bonoID)
	}

	return bono, nil
}

// ListBonos retorna los bonos, opcionalmente filtrados por usuario o sesión
func (s *Service) ListBonos(userID, sessionID *string, skip, limit int) ([]*domain.Bono, error) {
	bonos, err := s.bonoRepo.ListBonos(userID, sessionID, skip, limit)
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return bonos, nil
}

// UpdateBono reemplaza los datos modificables de un bono
func (s *Service) UpdateBono(bono *domain.Bono) (*domain.Bono, error) {
	existing, err := s.GetBonoByID(bono.ID)
	if err != nil {
		return nil, err
	}

	existing.Value = bono.Value
	if bono.Comment != nil {
		existing.Comment = bono.Comment
	}

	if validationErrors := existing.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewAwardError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	existing.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.bonoRepo.UpdateBono(existing); err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return existing, nil
}

// DeleteBono elimina un bono de forma definitiva
func (s *Service) DeleteBono(bonoID string) error {
	deleted, err := s.bonoRepo.DeleteBono(bonoID)
	if err != nil {
		return NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if !deleted {
		return NewAwardError(ErrBonoNotFound, "RES_001", bonoID)
	}

	return nil
}

// SumBonosByUser retorna el total de bonos otorgados a un usuario
func (s *Service) SumBonosByUser(userID string) (int, error) {
	sum, err := s.bonoRepo.SumBonosByUser(userID)
	if err != nil {
		return 0, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sum, nil
}

// SumBonosBySession retorna el total de bonos otorgados en una sesión
func (s *Service) SumBonosBySession(sessionID string) (int, error) {
	sum, err := s.bonoRepo.SumBonosBySession(sessionID)
	if err != nil {
		return 0, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sum, nil
}

// CreateJackpotWin registra un premio de jackpot pagado en una sesión
func (s *Service) CreateJackpotWin(win *domain.JackpotWin) (*domain.JackpotWin, error) {
	if validationErrors := win.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewAwardError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	if err := s.checkReferences(win.UserID, win.SessionID); err != nil {
		return nil, err
	}

	winID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_001", err.Error())
	}

	now := timezone.NowBogota(s.clock)
	win.ID = winID
	win.CreatedAt = now
	win.UpdatedAt = now

	created, err := s.jackpotWinRepo.CreateJackpotWin(win)
	if err != nil {
		logrus.Error("Error al crear premio de jackpot", map[string]any{
			"userID": win.UserID,
			"error":  err,
		})
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return created, nil
}

// GetJackpotWinByID busca un premio por su identificador
func (s *Service) GetJackpotWinByID(winID string) (*domain.JackpotWin, error) {
	win, err := s.jackpotWinRepo.GetJackpotWinByID(winID)
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if win == nil {
		return nil, NewAwardError(ErrJackpotWinNotFound, "RES_001", winID)
	}

	return win, nil
}

// ListJackpotWins retorna los premios, opcionalmente filtrados
func (s *Service) ListJackpotWins(userID, sessionID *string, skip, limit int) ([]*domain.JackpotWin, error) {
	wins, err := s.jackpotWinRepo.ListJackpotWins(userID, sessionID, skip, limit)
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return wins, nil
}

// ListHighValueJackpotWins retorna los premios que superan el umbral configurado
func (s *Service) ListHighValueJackpotWins(skip, limit int) ([]*domain.JackpotWin, error) {
	wins, err := s.jackpotWinRepo.ListHighValueJackpotWins(s.cfg.Award.HighValueThreshold, skip, limit)
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return wins, nil
}

// GetBiggestJackpotWin retorna el premio más grande registrado
func (s *Service) GetBiggestJackpotWin() (*domain.JackpotWin, error) {
	win, err := s.jackpotWinRepo.GetBiggestJackpotWin()
	if err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if win == nil {
		return nil, NewAwardError(ErrJackpotWinNotFound, "RES_001", "")
	}

	return win, nil
}

// UpdateJackpotWin reemplaza los datos modificables de un premio
func (s *Service) UpdateJackpotWin(win *domain.JackpotWin) (*domain.JackpotWin, error) {
	existing, err := s.GetJackpotWinByID(win.ID)
	if err != nil {
		return nil, err
	}

	existing.Value = win.Value
	if win.WinnerHand != nil {
		existing.WinnerHand = win.WinnerHand
	}
	if win.Comment != nil {
		existing.Comment = win.Comment
	}

	if validationErrors := existing.ValidateBusinessRules(); len(validationErrors) > 0 {
		return nil, NewAwardError(ErrInvalidInput, "VAL_001", validationErrors[0])
	}

	existing.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.jackpotWinRepo.UpdateJackpotWin(existing); err != nil {
		return nil, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return existing, nil
}

// DeleteJackpotWin elimina un premio de forma definitiva
func (s *Service) DeleteJackpotWin(winID string) error {
	deleted, err := s.jackpotWinRepo.DeleteJackpotWin(winID)
	if err != nil {
		return NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if !deleted {
		return NewAwardError(ErrJackpotWinNotFound, "RES_001", winID)
	}

	return nil
}

// SumJackpotWinsByUser retorna el total de premios pagados a un usuario
func (s *Service) SumJackpotWinsByUser(userID string) (int, error) {
	sum, err := s.jackpotWinRepo.SumJackpotWinsByUser(userID)
	if err != nil {
		return 0, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sum, nil
}

// SumJackpotWinsBySession retorna el total de premios pagados en una sesión
func (s *Service) SumJackpotWinsBySession(sessionID string) (int, error) {
	sum, err := s.jackpotWinRepo.SumJackpotWinsBySession(sessionID)
	if err != nil {
		return 0, NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}

	return sum, nil
}

// checkReferences valida que existan el usuario y la sesión referenciados
func (s *Service) checkReferences(userID, sessionID string) error {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if user == nil {
		return NewAwardError(ErrUserNotFound, "RES_001", userID)
	}

	session, err := s.sessionRepo.GetSessionByID(sessionID)
	if err != nil {
		return NewAwardError(ErrDatabaseOperation, "SRV_002", err.Error())
	}
	if session == nil {
		return NewAwardError(ErrSessionNotFound, "RES_001", sessionID)
	}

	return nil
}
