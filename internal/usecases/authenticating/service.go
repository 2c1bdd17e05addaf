package authenticating

import (
	"fmt"
	"strings"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/sirupsen/logrus"
	"github.com/vfigueroa/casino-manager-api/infrastructure/repository"
	"github.com/vfigueroa/casino-manager-api/internal/config"
	"github.com/vfigueroa/casino-manager-api/internal/domain"
	"github.com/vfigueroa/casino-manager-api/pkg/apiErrors"
	"github.com/vfigueroa/casino-manager-api/pkg/timezone"
	"github.com/vfigueroa/casino-manager-api/pkg/utils"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

var validRoles = map[domain.UserRole]bool{
	domain.RoleUser:    true,
	domain.RoleAdmin:   true,
	domain.RoleDealer:  true,
	domain.RoleManager: true,
}

type Authenticator interface {
	CreateUser(user *domain.User) (*domain.User, error)
	UpdateUser(request *domain.UpdateUserRequest) error
	ChangePassword(userID, currentPassword, newPassword string) error
	ListUsers(skip, limit int) ([]*domain.User, error)
	DeleteUser(userID string) error
	LoginUser(email, password string) (string, error)
	GetUserProfile(userID string) (*domain.User, error)
	ValidateToken(tokenString string) (*domain.Claims, error)
}

type Service struct {
	userRepo repository.UserRepository
	cfg      *config.Config
	clock    timezone.Clock
}

func NewService(userRepo repository.UserRepository, cfg *config.Config, clock timezone.Clock) Authenticator {
	return &Service{
		userRepo: userRepo,
		cfg:      cfg,
		clock:    clock,
	}
}

func (s *Service) CreateUser(user *domain.User) (*domain.User, error) {
	if user.Email == "" || user.Name == "" || user.PasswordHash == "" {
		return nil, NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"Email, nombre y contraseña son obligatorios")
	}

	if len(user.PasswordHash) < minPasswordLength {
		return nil, NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("La contraseña debe tener al menos %d caracteres", minPasswordLength))
	}

	if err := validateRoles(user.Roles); err != nil {
		return nil, err
	}

	user.Email = handleEmail(user.Email)

	existing, err := s.userRepo.GetUserByEmail(user.Email)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar usuario")
	}
	if existing != nil {
		return nil, NewAuthError(ErrUserAlreadyExists, apiErrors.ErrUserAlreadyExists, "Email ya registrado")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(user.PasswordHash), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	userID, err := utils.GenerateID()
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar identificador")
	}

	if len(user.Roles) == 0 {
		user.Roles = []domain.UserRole{domain.RoleUser}
	}

	now := timezone.NowBogota(s.clock)
	user.ID = userID
	user.PasswordHash = string(hashedPassword)
	user.Active = true
	user.CreatedAt = now
	user.UpdatedAt = now

	if err := s.userRepo.CreateUser(user); err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al crear usuario")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) UpdateUser(request *domain.UpdateUserRequest) error {
	if request.ID == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData, "El ID es obligatorio")
	}

	user, err := s.userRepo.GetUserByID(request.ID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar usuario")
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, request.ID, "")
	}

	if request.Name != nil {
		user.Name = *request.Name
	}

	if request.Email != nil {
		user.Email = handleEmail(*request.Email)
	}

	if request.Roles != nil {
		if err := validateRoles(*request.Roles); err != nil {
			return err
		}
		user.Roles = *request.Roles
	}

	if request.Active != nil {
		user.Active = *request.Active
	}

	user.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.userRepo.UpdateUser(user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al actualizar usuario")
	}

	return nil
}

// ChangePassword reemplaza la contraseña de un usuario verificando primero la actual.
func (s *Service) ChangePassword(userID, currentPassword, newPassword string) error {
	if userID == "" || currentPassword == "" || newPassword == "" {
		return NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"El ID, la contraseña actual y la contraseña nueva son obligatorios")
	}

	if len(newPassword) < minPasswordLength {
		return NewAuthError(ErrWeakPassword, apiErrors.ErrInvalidRequest,
			fmt.Sprintf("La contraseña debe tener al menos %d caracteres", minPasswordLength))
	}

	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar usuario")
	}
	if user == nil {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(currentPassword)); err != nil {
		return NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Contraseña incorrecta")
	}

	hashedPassword, err := bcrypt.GenerateFromPassword([]byte(newPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	user.PasswordHash = string(hashedPassword)
	user.UpdatedAt = timezone.NowBogota(s.clock)

	if err := s.userRepo.UpdateUser(user); err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al actualizar la contraseña")
	}

	return nil
}

func (s *Service) ListUsers(skip, limit int) ([]*domain.User, error) {
	users, err := s.userRepo.ListUsers(skip, limit)
	if err != nil {
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al listar usuarios")
	}

	for _, user := range users {
		user.PasswordHash = ""
	}

	return users, nil
}

func (s *Service) DeleteUser(userID string) error {
	deleted, err := s.userRepo.DeleteUser(userID)
	if err != nil {
		return NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al eliminar usuario")
	}
	if !deleted {
		return NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	return nil
}

func (s *Service) LoginUser(email, password string) (string, error) {
	if email == "" || password == "" {
		return "", NewAuthError(ErrMissingRequiredData, apiErrors.ErrMissingRequiredData,
			"Email y contraseña son obligatorios")
	}

	email = handleEmail(email)

	user, err := s.userRepo.GetUserByEmail(email)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar usuario")
	}

	if user == nil {
		return "", NewAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, "Usuario no encontrado")
	}

	if !user.Active {
		return "", NewUserAuthError(ErrUserDisabled, apiErrors.ErrUserDisabled, user.ID, "Cuenta desactivada")
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return "", NewUserAuthError(ErrInvalidCredentials, apiErrors.ErrInvalidCredentials, user.ID, "Contraseña incorrecta")
	}

	token, err := s.generateJWT(user)
	if err != nil {
		return "", NewAuthError(err, apiErrors.ErrInternalServer, "Error al generar token de autenticación")
	}

	return token, nil
}

func (s *Service) GetUserProfile(userID string) (*domain.User, error) {
	user, err := s.userRepo.GetUserByID(userID)
	if err != nil {
		logrus.Error(err)
		return nil, NewAuthError(err, apiErrors.ErrDatabaseOperation, "Error al consultar usuario")
	}
	if user == nil {
		return nil, NewUserAuthError(ErrUserNotFound, apiErrors.ErrUserNotFound, userID, "")
	}

	user.PasswordHash = ""
	return user, nil
}

func (s *Service) generateJWT(user *domain.User) (string, error) {
	expiresAt := time.Now().Add(time.Duration(s.cfg.Auth.TokenExpireHours) * time.Hour)

	claims := domain.Claims{
		UserID:    user.ID,
		UserName:  user.Name,
		UserEmail: user.Email,
		UserRoles: user.Roles,
		RegisteredClaims: jwt.RegisteredClaims{
			ExpiresAt: jwt.NewNumericDate(expiresAt),
		},
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return token.SignedString([]byte(s.cfg.SecretKey))
}

func (s *Service) ValidateToken(tokenString string) (*domain.Claims, error) {
	token, err := jwt.ParseWithClaims(tokenString, &domain.Claims{}, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("método de firma inesperado: %v", token.Header["alg"])
		}
		return []byte(s.cfg.SecretKey), nil
	})
	if err != nil {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, err.Error())
	}

	claims, ok := token.Claims.(*domain.Claims)
	if !ok || !token.Valid {
		return nil, NewAuthError(ErrInvalidToken, apiErrors.ErrInvalidToken, "")
	}

	return claims, nil
}

func validateRoles(roles []domain.UserRole) error {
	for _, role := range roles {
		if !validRoles[role] {
			return NewAuthError(ErrInvalidRole, apiErrors.ErrInvalidRequest, string(role))
		}
	}
	return nil
}

func handleEmail(s string) string {
	email := strings.ToLower(s)
	email = strings.TrimSpace(email)
	email = strings.ReplaceAll(email, " ", "")
	return email
}
