package sessioning

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository/mocks"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"go.uber.org/mock/gomock"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newSessionService(t *testing.T, now time.Time) (Sessioner, *mocks.MockSessionRepository, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)

	sessionRepo := mocks.NewMockSessionRepository(ctrl)
	userRepo := mocks.NewMockUserRepository(ctrl)

	service := NewService(sessionRepo, userRepo, fixedClock{now: now})
	return service, sessionRepo, userRepo
}

func dealer() *domain.User {
	return &domain.User{
		ID:     "USR001",
		Name:   "Carlos",
		Roles:  []domain.UserRole{domain.RoleDealer},
		Active: true,
	}
}

func TestService_CreateSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 14, 0, 0, 0, timezone.Bogota())

	tests := []struct {
		name     string
		session  *domain.Session
		setup    func(sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, created *domain.Session, err error)
	}{
		{
			name:    "Sesión válida para un dealer libre",
			session: &domain.Session{DealerID: "USR001", HourlyPay: 100},
			setup: func(sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID("USR001").Return(dealer(), nil)
				sessionRepo.EXPECT().GetActiveSessionByDealer("USR001").Return(nil, nil)
				sessionRepo.EXPECT().
					CreateSession(gomock.Any()).
					DoAndReturn(func(session *domain.Session) (*domain.Session, error) {
						assert.NotEmpty(t, session.ID)
						assert.Nil(t, session.EndTime)
						// Sin inicio explícito arranca en el instante actual de Bogotá
						assert.True(t, session.StartTime.Equal(now))
						return session, nil
					})
			},
			validate: func(t *testing.T, created *domain.Session, err error) {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.True(t, created.IsActive())
			},
		},
		{
			name:    "Dealer inexistente",
			session: &domain.Session{DealerID: "USR404"},
			setup: func(sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID("USR404").Return(nil, nil)
			},
			validate: func(t *testing.T, created *domain.Session, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrDealerNotFound)
			},
		},
		{
			name:    "Usuario sin rol de dealer",
			session: &domain.Session{DealerID: "USR002"},
			setup: func(sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByID("USR002").
					Return(&domain.User{ID: "USR002", Roles: []domain.UserRole{domain.RoleManager}}, nil)
			},
			validate: func(t *testing.T, created *domain.Session, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrDealerRoleRequired)
			},
		},
		{
			name:    "Dealer con sesión activa no puede abrir otra",
			session: &domain.Session{DealerID: "USR001"},
			setup: func(sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByID("USR001").Return(dealer(), nil)
				sessionRepo.EXPECT().
					GetActiveSessionByDealer("USR001").
					Return(&domain.Session{ID: "SES001", DealerID: "USR001", StartTime: now.Add(-time.Hour)}, nil)
			},
			validate: func(t *testing.T, created *domain.Session, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrDealerSessionActive)
			},
		},
		{
			name:    "Montos negativos rechazados",
			session: &domain.Session{DealerID: "USR001", Reik: -5},
			setup:   func(sessionRepo *mocks.MockSessionRepository, userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, created *domain.Session, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrInvalidInput)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, sessionRepo, userRepo := newSessionService(t, now)
			tt.setup(sessionRepo, userRepo)

			created, err := service.CreateSession(tt.session)
			tt.validate(t, created, err)
		})
	}
}

func TestService_EndSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, timezone.Bogota())
	start := now.Add(-8 * time.Hour)

	t.Run("Sesión abierta se cierra en el instante actual", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)

		sessionRepo.EXPECT().
			GetSessionByID("SES001").
			Return(&domain.Session{ID: "SES001", DealerID: "USR001", StartTime: start}, nil)
		sessionRepo.EXPECT().
			UpdateSession(gomock.Any()).
			DoAndReturn(func(session *domain.Session) error {
				require.NotNil(t, session.EndTime)
				assert.True(t, session.EndTime.Equal(now))
				return nil
			})

		ended, err := service.EndSession("SES001", nil)

		require.NoError(t, err)
		assert.False(t, ended.IsActive())
	})

	t.Run("Cierre con hora explícita", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)
		explicitEnd := start.Add(6 * time.Hour)

		sessionRepo.EXPECT().
			GetSessionByID("SES001").
			Return(&domain.Session{ID: "SES001", DealerID: "USR001", StartTime: start}, nil)
		sessionRepo.EXPECT().
			UpdateSession(gomock.Any()).
			DoAndReturn(func(session *domain.Session) error {
				assert.True(t, session.EndTime.Equal(explicitEnd))
				return nil
			})

		ended, err := service.EndSession("SES001", &explicitEnd)

		require.NoError(t, err)
		assert.Equal(t, 6.0, *ended.Duration())
	})

	t.Run("Sesión ya cerrada no se cierra de nuevo", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)
		end := start.Add(4 * time.Hour)

		sessionRepo.EXPECT().
			GetSessionByID("SES001").
			Return(&domain.Session{ID: "SES001", DealerID: "USR001", StartTime: start, EndTime: &end}, nil)

		ended, err := service.EndSession("SES001", nil)

		assert.Nil(t, ended)
		assert.ErrorIs(t, err, ErrSessionAlreadyEnded)
	})

	t.Run("Fin anterior al inicio rechazado", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)
		beforeStart := start.Add(-time.Minute)

		sessionRepo.EXPECT().
			GetSessionByID("SES001").
			Return(&domain.Session{ID: "SES001", DealerID: "USR001", StartTime: start}, nil)

		ended, err := service.EndSession("SES001", &beforeStart)

		assert.Nil(t, ended)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Sesión inexistente", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)

		sessionRepo.EXPECT().GetSessionByID("SES404").Return(nil, nil)

		ended, err := service.EndSession("SES404", nil)

		assert.Nil(t, ended)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_Accumulators(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, timezone.Bogota())
	start := now.Add(-2 * time.Hour)

	open := func() *domain.Session {
		return &domain.Session{
			ID:        "SES001",
			DealerID:  "USR001",
			StartTime: start,
			Jackpot:   100,
			Reik:      500,
			Tips:      20,
		}
	}

	t.Run("AddJackpot acumula sobre el valor vigente", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)

		sessionRepo.EXPECT().GetSessionByID("SES001").Return(open(), nil)
		sessionRepo.EXPECT().UpdateSession(gomock.Any()).Return(nil)

		updated, err := service.AddJackpot("SES001", 50)

		require.NoError(t, err)
		assert.Equal(t, 150, updated.Jackpot)
	})

	t.Run("AddReik acumula sobre el valor vigente", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)

		sessionRepo.EXPECT().GetSessionByID("SES001").Return(open(), nil)
		sessionRepo.EXPECT().UpdateSession(gomock.Any()).Return(nil)

		updated, err := service.AddReik("SES001", 250)

		require.NoError(t, err)
		assert.Equal(t, 750, updated.Reik)
	})

	t.Run("AddTips acumula sobre el valor vigente", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)

		sessionRepo.EXPECT().GetSessionByID("SES001").Return(open(), nil)
		sessionRepo.EXPECT().UpdateSession(gomock.Any()).Return(nil)

		updated, err := service.AddTips("SES001", 30)

		require.NoError(t, err)
		assert.Equal(t, 50, updated.Tips)
	})

	t.Run("Monto negativo rechazado sin tocar la sesión", func(t *testing.T) {
		service, _, _ := newSessionService(t, now)

		updated, err := service.AddReik("SES001", -10)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrNegativeAmount)
	})

	t.Run("Sesión cerrada no acumula", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)
		end := start.Add(time.Hour)
		closed := open()
		closed.EndTime = &end

		sessionRepo.EXPECT().GetSessionByID("SES001").Return(closed, nil)

		updated, err := service.AddTips("SES001", 30)

		assert.Nil(t, updated)
		assert.ErrorIs(t, err, ErrSessionAlreadyEnded)
	})
}

func TestService_DeleteSession(t *testing.T) {
	now := time.Date(2025, 3, 10, 18, 0, 0, 0, timezone.Bogota())

	t.Run("Sesión existente se elimina", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)
		sessionRepo.EXPECT().DeleteSession("SES001").Return(true, nil)

		assert.NoError(t, service.DeleteSession("SES001"))
	})

	t.Run("Sesión inexistente retorna no encontrada", func(t *testing.T) {
		service, sessionRepo, _ := newSessionService(t, now)
		sessionRepo.EXPECT().DeleteSession("SES404").Return(false, nil)

		assert.ErrorIs(t, service.DeleteSession("SES404"), ErrSessionNotFound)
	})
}
