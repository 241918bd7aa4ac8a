package memory

import (
	"context"
	"fmt"
	"sort"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/google/uuid"
)

// UserRepository - реализация repository.UserRepository в памяти.
type UserRepository struct {
	store *Store
}

// CreateUser создает нового пользователя.
func (r *UserRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	newUser := models.User{
		ID:    uuid.New().String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	r.store.users = append(r.store.users, newUser)
	return &newUser, nil
}

// GetUserByID возвращает пользователя по его ID.
func (r *UserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.ID == userID {
			found := user
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user %s not found", userID)
}

// GetUserByEmail возвращает пользователя по email.
func (r *UserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			found := user
			return &found, nil
		}
	}
	return nil, fmt.Errorf("user with email %s not found", email)
}

// UserExistsByEmail проверяет, занят ли email.
func (r *UserRepository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	if err := r.store.wait(ctx); err != nil {
		return false, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	for _, user := range r.store.users {
		if user.Email == email {
			return true, nil
		}
	}
	return false, nil
}

// GetAllUsers возвращает список пользователей. limit = 0 означает без ограничения.
func (r *UserRepository) GetAllUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	if err := r.store.wait(ctx); err != nil {
		return nil, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	users := make([]models.User, len(r.store.users))
	copy(users, r.store.users)
	sort.Slice(users, func(i, j int) bool { return users[i].Name < users[j].Name })

	return sliceWindow(users, limit, offset), nil
}

// CountUsers возвращает общее число пользователей.
func (r *UserRepository) CountUsers(ctx context.Context) (int, error) {
	if err := r.store.wait(ctx); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	return len(r.store.users), nil
}

// CountUsersByRole возвращает число пользователей с указанной ролью.
func (r *UserRepository) CountUsersByRole(ctx context.Context, role models.UserRole) (int, error) {
	if err := r.store.wait(ctx); err != nil {
		return 0, err
	}
	r.store.mu.Lock()
	defer r.store.mu.Unlock()

	count := 0
	for _, user := range r.store.users {
		if user.Role == role {
			count++
		}
	}
	return count, nil
}

// sliceWindow применяет limit и offset к срезу; limit = 0 означает без ограничения.
func sliceWindow[T any](items []T, limit, offset int) []T {
	if offset >= len(items) {
		return []T{}
	}
	items = items[offset:]
	if limit > 0 && limit < len(items) {
		items = items[:limit]
	}
	return items
}
