package repository

import (
	"context"
	"fmt"

	"github.com/edumarket/tutoring-service/internal/models"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"
)

// UserRepository - интерфейс для работы с пользователями.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (*models.User, error)
	GetUserByID(ctx context.Context, userID string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
	UserExistsByEmail(ctx context.Context, email string) (bool, error)
	GetAllUsers(ctx context.Context, limit, offset int) ([]models.User, error)
	CountUsers(ctx context.Context) (int, error)
	CountUsersByRole(ctx context.Context, role models.UserRole) (int, error)
}

// PostgresUserRepository - реализация UserRepository для базы данных.
type PostgresUserRepository struct {
	DB *pgxpool.Pool
}

// NewPostgresUserRepository создаёт новый экземпляр PostgresUserRepository.
func NewPostgresUserRepository(db *pgxpool.Pool) *PostgresUserRepository {
	return &PostgresUserRepository{DB: db}
}

// CreateUser создает нового пользователя.
func (r *PostgresUserRepository) CreateUser(ctx context.Context, user models.User) (*models.User, error) {
	newUser := models.User{
		ID:    uuid.New().String(),
		Name:  user.Name,
		Email: user.Email,
		Role:  user.Role,
	}
	insertQuery := `INSERT INTO platform_user (id, name, email, role) VALUES ($1, $2, $3, $4)`
	_, err := r.DB.Exec(ctx, insertQuery, newUser.ID, newUser.Name, newUser.Email, newUser.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to insert user: %w", err)
	}
	return &newUser, nil
}

// GetUserByID возвращает пользователя по его ID.
func (r *PostgresUserRepository) GetUserByID(ctx context.Context, userID string) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, role FROM platform_user WHERE id = $1`
	err := r.DB.QueryRow(ctx, query, userID).Scan(&user.ID, &user.Name, &user.Email, &user.Role)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// GetUserByEmail возвращает пользователя по email.
func (r *PostgresUserRepository) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	var user models.User
	query := `SELECT id, name, email, role FROM platform_user WHERE email = $1`
	err := r.DB.QueryRow(ctx, query, email).Scan(&user.ID, &user.Name, &user.Email, &user.Role)
	if err != nil {
		return nil, err
	}
	return &user, nil
}

// UserExistsByEmail проверяет, занят ли email.
func (r *PostgresUserRepository) UserExistsByEmail(ctx context.Context, email string) (bool, error) {
	var exists bool
	query := `SELECT EXISTS(SELECT 1 FROM platform_user WHERE email = $1)`
	err := r.DB.QueryRow(ctx, query, email).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

// GetAllUsers возвращает список пользователей. limit = 0 означает без ограничения.
func (r *PostgresUserRepository) GetAllUsers(ctx context.Context, limit, offset int) ([]models.User, error) {
	query := `SELECT id, name, email, role FROM platform_user ORDER BY name`
	var args []interface{}
	argIndex := 1

	if limit > 0 {
		query += fmt.Sprintf(" LIMIT $%d", argIndex)
		args = append(args, limit)
		argIndex++
	}
	if offset > 0 {
		query += fmt.Sprintf(" OFFSET $%d", argIndex)
		args = append(args, offset)
	}

	rows, err := r.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	users := []models.User{}
	for rows.Next() {
		var user models.User
		if err := rows.Scan(&user.ID, &user.Name, &user.Email, &user.Role); err != nil {
			return nil, err
		}
		users = append(users, user)
	}
	return users, nil
}

// CountUsers возвращает общее число пользователей.
func (r *PostgresUserRepository) CountUsers(ctx context.Context) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM platform_user`
	err := r.DB.QueryRow(ctx, query).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}

// CountUsersByRole возвращает число пользователей с указанной ролью.
func (r *PostgresUserRepository) CountUsersByRole(ctx context.Context, role models.UserRole) (int, error) {
	var count int
	query := `SELECT COUNT(*) FROM platform_user WHERE role = $1`
	err := r.DB.QueryRow(ctx, query, role).Scan(&count)
	if err != nil {
		return 0, err
	}
	return count, nil
}
