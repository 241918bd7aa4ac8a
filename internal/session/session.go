package session

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/redis/go-redis/v9"
)

// Ключи постоянного клиентского состояния. Значения под ними
// переживают перезапуск сервиса при redis-бэкенде.
const (
	currentUserKey = "session:current_user"
	themeKey       = "settings:theme"
)

// DefaultTheme возвращается, пока тема явно не выбрана.
const DefaultTheme = "light"

// Store - интерфейс клиентской сессии: активный пользователь и флаг темы.
type Store interface {
	SetCurrentUser(ctx context.Context, userID string) error
	CurrentUser(ctx context.Context) (string, error)
	Clear(ctx context.Context) error
	SetTheme(ctx context.Context, theme string) error
	Theme(ctx context.Context) (string, error)
}

// RedisStore хранит состояние сессии в redis.
type RedisStore struct {
	client *redis.Client
}

// NewRedisStore подключается к redis с короткими таймаутами.
func NewRedisStore(addr string) *RedisStore {
	client := redis.NewClient(&redis.Options{
		Addr:         addr,
		DialTimeout:  2 * time.Second,
		ReadTimeout:  1 * time.Second,
		WriteTimeout: 1 * time.Second,
	})
	return &RedisStore{client: client}
}

// Healthy проверяет доступность redis.
func (s *RedisStore) Healthy(ctx context.Context) bool {
	if s == nil || s.client == nil {
		return false
	}
	return s.client.Ping(ctx).Err() == nil
}

// SetCurrentUser сохраняет ID активного пользователя.
func (s *RedisStore) SetCurrentUser(ctx context.Context, userID string) error {
	return s.client.Set(ctx, currentUserKey, userID, 0).Err()
}

// CurrentUser возвращает ID активного пользователя; пустая строка - сессии нет.
func (s *RedisStore) CurrentUser(ctx context.Context) (string, error) {
	userID, err := s.client.Get(ctx, currentUserKey).Result()
	if errors.Is(err, redis.Nil) {
		return "", nil
	}
	if err != nil {
		return "", err
	}
	return userID, nil
}

// Clear завершает сессию.
func (s *RedisStore) Clear(ctx context.Context) error {
	return s.client.Del(ctx, currentUserKey).Err()
}

// SetTheme сохраняет флаг темы.
func (s *RedisStore) SetTheme(ctx context.Context, theme string) error {
	return s.client.Set(ctx, themeKey, theme, 0).Err()
}

// Theme возвращает сохранённую тему либо тему по умолчанию.
func (s *RedisStore) Theme(ctx context.Context) (string, error) {
	theme, err := s.client.Get(ctx, themeKey).Result()
	if errors.Is(err, redis.Nil) {
		return DefaultTheme, nil
	}
	if err != nil {
		return "", err
	}
	return theme, nil
}

// MemoryStore хранит состояние сессии в памяти процесса.
// Используется в тестах и при запуске без redis.
type MemoryStore struct {
	mu     sync.Mutex
	values map[string]string
}

// NewMemoryStore создает новый экземпляр MemoryStore.
func NewMemoryStore() *MemoryStore {
	return &MemoryStore{values: make(map[string]string)}
}

// SetCurrentUser сохраняет ID активного пользователя.
func (s *MemoryStore) SetCurrentUser(ctx context.Context, userID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[currentUserKey] = userID
	return nil
}

// CurrentUser возвращает ID активного пользователя; пустая строка - сессии нет.
func (s *MemoryStore) CurrentUser(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.values[currentUserKey], nil
}

// Clear завершает сессию.
func (s *MemoryStore) Clear(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.values, currentUserKey)
	return nil
}

// SetTheme сохраняет флаг темы.
func (s *MemoryStore) SetTheme(ctx context.Context, theme string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.values[themeKey] = theme
	return nil
}

// Theme возвращает сохранённую тему либо тему по умолчанию.
func (s *MemoryStore) Theme(ctx context.Context) (string, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if theme, ok := s.values[themeKey]; ok {
		return theme, nil
	}
	return DefaultTheme, nil
}
