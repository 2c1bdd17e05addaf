package authenticating

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository/mocks"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"go.uber.org/mock/gomock"
	"golang.org/x/crypto/bcrypt"
)

type fixedClock struct {
	now time.Time
}

func (c fixedClock) Now() time.Time {
	return c.now
}

func newAuthService(t *testing.T) (Authenticator, *mocks.MockUserRepository) {
	ctrl := gomock.NewController(t)
	userRepo := mocks.NewMockUserRepository(ctrl)

	cfg := &config.Config{
		SecretKey: "clave-de-prueba",
		Auth:      config.Auth{TokenExpireHours: 24},
	}

	clock := fixedClock{now: time.Date(2025, 3, 10, 9, 0, 0, 0, time.UTC)}
	service := NewService(userRepo, cfg, clock)
	return service, userRepo
}

func hashedPassword(t *testing.T, password string) string {
	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	require.NoError(t, err)
	return string(hash)
}

func TestService_CreateUser(t *testing.T) {
	tests := []struct {
		name     string
		user     *domain.User
		setup    func(userRepo *mocks.MockUserRepository)
		validate func(t *testing.T, created *domain.User, err error)
	}{
		{
			name: "Usuario válido con rol por defecto",
			user: &domain.User{Name: "Carlos", Email: "Carlos@Casino.Co", PasswordHash: "secreto123"},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().GetUserByEmail("carlos@casino.co").Return(nil, nil)
				userRepo.EXPECT().
					CreateUser(gomock.Any()).
					DoAndReturn(func(user *domain.User) error {
						assert.NotEmpty(t, user.ID)
						assert.Equal(t, "carlos@casino.co", user.Email)
						assert.Equal(t, []domain.UserRole{domain.RoleUser}, user.Roles)
						assert.True(t, user.Active)
						// La contraseña se persiste como hash bcrypt
						assert.NoError(t, bcrypt.CompareHashAndPassword(
							[]byte(user.PasswordHash), []byte("secreto123")))
						return nil
					})
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				require.NoError(t, err)
				require.NotNil(t, created)
				assert.Empty(t, created.PasswordHash)
			},
		},
		{
			name:  "Campos obligatorios ausentes",
			user:  &domain.User{Name: "Carlos"},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrMissingRequiredData)
			},
		},
		{
			name:  "Contraseña demasiado corta",
			user:  &domain.User{Name: "Carlos", Email: "carlos@casino.co", PasswordHash: "corta"},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrWeakPassword)
			},
		},
		{
			name: "Rol desconocido rechazado",
			user: &domain.User{
				Name:         "Carlos",
				Email:        "carlos@casino.co",
				PasswordHash: "secreto123",
				Roles:        []domain.UserRole{"SUPERVISOR"},
			},
			setup: func(userRepo *mocks.MockUserRepository) {},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrInvalidRole)
			},
		},
		{
			name: "Email duplicado rechazado",
			user: &domain.User{Name: "Carlos", Email: "carlos@casino.co", PasswordHash: "secreto123"},
			setup: func(userRepo *mocks.MockUserRepository) {
				userRepo.EXPECT().
					GetUserByEmail("carlos@casino.co").
					Return(&domain.User{ID: "USR001", Email: "carlos@casino.co"}, nil)
			},
			validate: func(t *testing.T, created *domain.User, err error) {
				assert.Nil(t, created)
				assert.ErrorIs(t, err, ErrUserAlreadyExists)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			service, userRepo := newAuthService(t)
			tt.setup(userRepo)

			created, err := service.CreateUser(tt.user)
			tt.validate(t, created, err)
		})
	}
}

func TestService_LoginUser(t *testing.T) {
	activeUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           "USR001",
			Name:         "Carlos",
			Email:        "carlos@casino.co",
			PasswordHash: hashedPassword(t, "secreto123"),
			Roles:        []domain.UserRole{domain.RoleDealer},
			Active:       true,
		}
	}

	t.Run("Credenciales válidas retornan un token verificable", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("carlos@casino.co").Return(activeUser(t), nil)

		token, err := service.LoginUser("Carlos@Casino.Co", "secreto123")

		require.NoError(t, err)
		require.NotEmpty(t, token)

		claims, err := service.ValidateToken(token)
		require.NoError(t, err)
		assert.Equal(t, "USR001", claims.UserID)
		assert.Equal(t, []domain.UserRole{domain.RoleDealer}, claims.UserRoles)
	})

	t.Run("Contraseña incorrecta", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("carlos@casino.co").Return(activeUser(t), nil)

		token, err := service.LoginUser("carlos@casino.co", "equivocada")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Usuario inexistente", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByEmail("nadie@casino.co").Return(nil, nil)

		token, err := service.LoginUser("nadie@casino.co", "secreto123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserNotFound)
	})

	t.Run("Cuenta desactivada no puede ingresar", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		disabled := activeUser(t)
		disabled.Active = false
		userRepo.EXPECT().GetUserByEmail("carlos@casino.co").Return(disabled, nil)

		token, err := service.LoginUser("carlos@casino.co", "secreto123")

		assert.Empty(t, token)
		assert.ErrorIs(t, err, ErrUserDisabled)
	})
}

func TestService_ChangePassword(t *testing.T) {
	storedUser := func(t *testing.T) *domain.User {
		return &domain.User{
			ID:           "USR001",
			Name:         "Carlos",
			Email:        "carlos@casino.co",
			PasswordHash: hashedPassword(t, "secreto123"),
			Roles:        []domain.UserRole{domain.RoleDealer},
			Active:       true,
		}
	}

	t.Run("Contraseña actual correcta reemplaza el hash", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByID("USR001").Return(storedUser(t), nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.NoError(t, bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte("nuevaclave456")))
				return nil
			})

		err := service.ChangePassword("USR001", "secreto123", "nuevaclave456")

		assert.NoError(t, err)
	})

	t.Run("Contraseña actual incorrecta", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByID("USR001").Return(storedUser(t), nil)

		err := service.ChangePassword("USR001", "equivocada", "nuevaclave456")

		assert.ErrorIs(t, err, ErrInvalidCredentials)
	})

	t.Run("Contraseña nueva demasiado corta", func(t *testing.T) {
		service, _ := newAuthService(t)

		err := service.ChangePassword("USR001", "secreto123", "corta")

		assert.ErrorIs(t, err, ErrWeakPassword)
	})

	t.Run("Usuario inexistente", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByID("USR999").Return(nil, nil)

		err := service.ChangePassword("USR999", "secreto123", "nuevaclave456")

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestService_ValidateToken_Invalid(t *testing.T) {
	service, _ := newAuthService(t)

	claims, err := service.ValidateToken("no-es-un-jwt")

	assert.Nil(t, claims)
	assert.ErrorIs(t, err, ErrInvalidToken)
}

func TestService_UpdateUser(t *testing.T) {
	t.Run("Actualización parcial de nombre y estado", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		stored := &domain.User{
			ID:     "USR001",
			Name:   "Carlos",
			Email:  "carlos@casino.co",
			Roles:  []domain.UserRole{domain.RoleDealer},
			Active: true,
		}
		newName := "Carlos Pérez"
		inactive := false

		userRepo.EXPECT().GetUserByID("USR001").Return(stored, nil)
		userRepo.EXPECT().
			UpdateUser(gomock.Any()).
			DoAndReturn(func(user *domain.User) error {
				assert.Equal(t, "Carlos Pérez", user.Name)
				assert.False(t, user.Active)
				assert.Equal(t, []domain.UserRole{domain.RoleDealer}, user.Roles)
				return nil
			})

		err := service.UpdateUser(&domain.UpdateUserRequest{
			ID:     "USR001",
			Name:   &newName,
			Active: &inactive,
		})

		assert.NoError(t, err)
	})

	t.Run("Usuario inexistente", func(t *testing.T) {
		service, userRepo := newAuthService(t)

		userRepo.EXPECT().GetUserByID("USR404").Return(nil, nil)

		err := service.UpdateUser(&domain.UpdateUserRequest{ID: "USR404"})

		assert.ErrorIs(t, err, ErrUserNotFound)
	})
}

func TestHandleEmail(t *testing.T) {
	assert.Equal(t, "carlos@casino.co", handleEmail("  Carlos@Casino.Co "))
	assert.Equal(t, "ana@casino.co", handleEmail("a na@casino.co"))
}
