package services

import (
	"context"

	"github.com/edumarket/tutoring-service/internal/models"
	"github.com/edumarket/tutoring-service/internal/repository"
	"github.com/edumarket/tutoring-service/internal/session"
)

// AuthService отвечает за вход, регистрацию и клиентскую сессию.
type AuthService struct {
	users    repository.UserRepository
	sessions session.Store
}

// NewAuthService создает новый экземпляр AuthService.
func NewAuthService(users repository.UserRepository, sessions session.Store) *AuthService {
	return &AuthService{users: users, sessions: sessions}
}

// Login находит пользователя по email и открывает сессию.
// Пароль принимается, но не проверяется: реальной аутентификации здесь нет.
func (s *AuthService) Login(ctx context.Context, email, password string) (*models.User, error) {
	if email == "" {
		return nil, models.NewValidationError("email is required")
	}

	user, err := s.users.GetUserByEmail(ctx, email)
	if err != nil {
		return nil, models.NewNotFoundError("user with this email does not exist")
	}

	if err := s.sessions.SetCurrentUser(ctx, user.ID); err != nil {
		return nil, err
	}
	return user, nil
}

// Register создает нового пользователя и сразу открывает его сессию.
func (s *AuthService) Register(ctx context.Context, registerReq models.RegisterRequest) (*models.User, error) {
	if registerReq.Name == "" || registerReq.Email == "" {
		return nil, models.NewValidationError("missing required fields")
	}

	allowedRoles := map[models.UserRole]bool{
		models.RoleStudent: true,
		models.RoleTutor:   true,
		models.RoleAdmin:   true,
	}
	if !allowedRoles[registerReq.Role] {
		return nil, models.NewValidationError("invalid role. Must be 'student', 'tutor' or 'admin'")
	}

	exists, err := s.users.UserExistsByEmail(ctx, registerReq.Email)
	if err != nil {
		return nil, err
	}
	if exists {
		return nil, models.NewDuplicateEmailError("user with this email already exists")
	}

	newUser, err := s.users.CreateUser(ctx, models.User{
		Name:  registerReq.Name,
		Email: registerReq.Email,
		Role:  registerReq.Role,
	})
	if err != nil {
		return nil, err
	}

	if err := s.sessions.SetCurrentUser(ctx, newUser.ID); err != nil {
		return nil, err
	}
	return newUser, nil
}

// Logout завершает текущую сессию.
func (s *AuthService) Logout(ctx context.Context) error {
	return s.sessions.Clear(ctx)
}

// CurrentUser возвращает пользователя активной сессии.
func (s *AuthService) CurrentUser(ctx context.Context) (*models.User, error) {
	userID, err := s.sessions.CurrentUser(ctx)
	if err != nil {
		return nil, err
	}
	if userID == "" {
		return nil, models.NewNotFoundError("no active session")
	}

	user, err := s.users.GetUserByID(ctx, userID)
	if err != nil {
		return nil, models.NewNotFoundError("session user not found")
	}
	return user, nil
}

// SetTheme сохраняет флаг темы клиента.
func (s *AuthService) SetTheme(ctx context.Context, theme string) error {
	if theme != "light" && theme != "dark" {
		return models.NewValidationError("invalid theme, must be either 'light' or 'dark'")
	}
	return s.sessions.SetTheme(ctx, theme)
}

// Theme возвращает сохранённый флаг темы.
func (s *AuthService) Theme(ctx context.Context) (string, error) {
	return s.sessions.Theme(ctx)
}
