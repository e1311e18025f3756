package services

import (
	"context"
	"errors"
	"log/slog"
	"strings"

	"github.com/baharkarakas/bookshelf/internal/api/validate"
	"github.com/baharkarakas/bookshelf/internal/auth"
	"github.com/baharkarakas/bookshelf/internal/metrics"
	"github.com/baharkarakas/bookshelf/internal/models"
	repo "github.com/baharkarakas/bookshelf/internal/repository"
)

// ErrInvalidCredentials covers both unknown usernames and wrong passwords.
var ErrInvalidCredentials = errors.New("invalid credentials")

// DemoUsers are created on an empty identity store.
var DemoUsers = []models.NewUserCommand{
	{Username: "developer", Password: "developer", Role: models.RoleAdmin},
	{Username: "guest", Password: "guest", Role: models.RoleUser},
}

type UserService struct {
	r   repo.Users
	log *slog.Logger
}

func NewUserService(r repo.Users, log *slog.Logger) *UserService {
	return &UserService{r: r, log: log}
}

func (s *UserService) Register(ctx context.Context, cmd models.NewUserCommand) (models.User, error) {
	cmd.Username = strings.TrimSpace(cmd.Username)
	if cmd.Role == "" {
		cmd.Role = models.RoleUser
	}
	if err := validate.Struct(cmd); err != nil {
		return models.User{}, err
	}
	hash, err := auth.HashPassword(cmd.Password)
	if err != nil {
		return models.User{}, err
	}
	return s.r.Create(ctx, models.User{Username: cmd.Username, PasswordHash: hash, Role: cmd.Role})
}

// Login checks username (exact) and password. Every failure mode that
// depends on user input collapses into ErrInvalidCredentials.
func (s *UserService) Login(ctx context.Context, username, password string) (models.User, error) {
	u, err := s.r.GetByUsername(ctx, username)
	if errors.Is(err, repo.ErrNotFound) {
		metrics.Logins.WithLabelValues("failure").Inc()
		return models.User{}, ErrInvalidCredentials
	}
	if err != nil {
		return models.User{}, err
	}
	ok, err := auth.VerifyPassword(password, u.PasswordHash)
	if err != nil {
		return models.User{}, err
	}
	if !ok {
		metrics.Logins.WithLabelValues("failure").Inc()
		return models.User{}, ErrInvalidCredentials
	}
	metrics.Logins.WithLabelValues("success").Inc()
	return u, nil
}

// SeedDemo creates DemoUsers when the store has no users. Duplicate-key
// errors from a concurrent first boot are ignored.
func (s *UserService) SeedDemo(ctx context.Context) error {
	n, err := s.r.Count(ctx)
	if err != nil {
		return err
	}
	if n > 0 {
		return nil
	}
	for _, cmd := range DemoUsers {
		if _, err := s.Register(ctx, cmd); err != nil && !errors.Is(err, repo.ErrDuplicate) {
			return err
		}
	}
	s.log.Info("seeded demo users", "count", len(DemoUsers))
	return nil
}
