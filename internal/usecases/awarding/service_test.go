package awarding

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository/mocks"
	"github.com/vfigueroa/casino-manager-api/internal/config"
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

type awardServiceMocks struct {
	bonoRepo       *mocks.MockBonoRepository
	jackpotWinRepo *mocks.MockJackpotWinRepository
	userRepo       *mocks.MockUserRepository
	sessionRepo    *mocks.MockSessionRepository
}

func newAwardService(t *testing.T) (Awarder, awardServiceMocks) {
	ctrl := gomock.NewController(t)

	m := awardServiceMocks{
		bonoRepo:       mocks.NewMockBonoRepository(ctrl),
		jackpotWinRepo: mocks.NewMockJackpotWinRepository(ctrl),
		userRepo:       mocks.NewMockUserRepository(ctrl),
		sessionRepo:    mocks.NewMockSessionRepository(ctrl),
	}

	cfg := &config.Config{
		Award: config.Award{HighValueThreshold: 10000},
	}

	now := time.Date(2025, 3, 10, 14, 0, 0, 0, timezone.Bogota())
	service := NewService(cfg, m.bonoRepo, m.jackpotWinRepo, m.userRepo, m.sessionRepo, fixedClock{now: now})
	return service, m
}

func expectValidReferences(m awardServiceMocks) {
	m.userRepo.EXPECT().
		GetUserByID("USR001").
		Return(&domain.User{ID: "USR001", Roles: []domain.UserRole{domain.RoleUser}}, nil)
	m.sessionRepo.EXPECT().
		GetSessionByID("SES001").
		Return(&domain.Session{ID: "SES001", DealerID: "USR002"}, nil)
}

func TestService_CreateBono(t *testing.T) {
	t.Run("Bono válido", func(t *testing.T) {
		service, m := newAwardService(t)

		expectValidReferences(m)
		m.bonoRepo.EXPECT().
			CreateBono(gomock.Any()).
			DoAndReturn(func(bono *domain.Bono) (*domain.Bono, error) {
				assert.NotEmpty(t, bono.ID)
				return bono, nil
			})

		created, err := service.CreateBono(&domain.Bono{UserID: "USR001", SessionID: "SES001", Value: 500})

		require.NoError(t, err)
		assert.Equal(t, 500, created.Value)
	})

	t.Run("Valor cero rechazado", func(t *testing.T) {
		service, _ := newAwardService(t)

		created, err := service.CreateBono(&domain.Bono{UserID: "USR001", SessionID: "SES001", Value: 0})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrInvalidInput)
	})

	t.Run("Usuario inexistente", func(t *testing.T) {
		service, m := newAwardService(t)

		m.userRepo.EXPECT().GetUserByID("USR404").Return(nil, nil)

		created, err := service.CreateBono(&domain.Bono{UserID: "USR404", SessionID: "SES001", Value: 500})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Sesión inexistente", func(t *testing.T) {
		service, m := newAwardService(t)

		m.userRepo.EXPECT().
			GetUserByID("USR001").
			Return(&domain.User{ID: "USR001"}, nil)
		m.sessionRepo.EXPECT().GetSessionByID("SES404").Return(nil, nil)

		created, err := service.CreateBono(&domain.Bono{UserID: "USR001", SessionID: "SES404", Value: 500})

		assert.Nil(t, created)
		assert.ErrorIs(t, err, ErrSessionNotFound)
	})
}

func TestService_CreateJackpotWin(t *testing.T) {
	service, m := newAwardService(t)

	expectValidReferences(m)
	hand := "escalera real"
	m.jackpotWinRepo.EXPECT().
		CreateJackpotWin(gomock.Any()).
		DoAndReturn(func(win *domain.JackpotWin) (*domain.JackpotWin, error) {
			assert.NotEmpty(t, win.ID)
			assert.Equal(t, &hand, win.WinnerHand)
			return win, nil
		})

	created, err := service.CreateJackpotWin(&domain.JackpotWin{
		UserID:     "USR001",
		SessionID:  "SES001",
		Value:      15000,
		WinnerHand: &hand,
	})

	require.NoError(t, err)
	assert.True(t, created.IsHighValue(10000))
}

func TestService_ListHighValueJackpotWins(t *testing.T) {
	service, m := newAwardService(t)

	// El umbral configurado baja al repositorio tal cual
	m.jackpotWinRepo.EXPECT().
		ListHighValueJackpotWins(10000, 0, 50).
		Return([]*domain.JackpotWin{{ID: "JPW001", Value: 15000}}, nil)

	wins, err := service.ListHighValueJackpotWins(0, 50)

	require.NoError(t, err)
	require.Len(t, wins, 1)
	assert.Equal(t, "JPW001", wins[0].ID)
}

func TestService_GetBiggestJackpotWin(t *testing.T) {
	t.Run("Premio más grande registrado", func(t *testing.T) {
		service, m := newAwardService(t)

		m.jackpotWinRepo.EXPECT().
			GetBiggestJackpotWin().
			Return(&domain.JackpotWin{ID: "JPW001", Value: 50000}, nil)

		win, err := service.GetBiggestJackpotWin()

		require.NoError(t, err)
		assert.Equal(t, 50000, win.Value)
	})

	t.Run("Sin premios registrados", func(t *testing.T) {
		service, m := newAwardService(t)

		m.jackpotWinRepo.EXPECT().GetBiggestJackpotWin().Return(nil, nil)

		win, err := service.GetBiggestJackpotWin()

		assert.Nil(t, win)
		assert.ErrorIs(t, err, ErrJackpotWinNotFound)
	})
}

func TestService_SumBonosByUser(t *testing.T) {
	service, m := newAwardService(t)

	m.bonoRepo.EXPECT().SumBonosByUser("USR001").Return(1200, nil)

	total, err := service.SumBonosByUser("USR001")

	require.NoError(t, err)
	assert.Equal(t, 1200, total)
}
