package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/baharkarakas/bookshelf/internal/api/validate"
	"github.com/baharkarakas/bookshelf/internal/config"
	"github.com/baharkarakas/bookshelf/internal/logger"
	"github.com/baharkarakas/bookshelf/internal/models"
	repo "github.com/baharkarakas/bookshelf/internal/repository"
	"github.com/baharkarakas/bookshelf/internal/services"
	"github.com/baharkarakas/bookshelf/internal/store"
)

// useradd creates an account in the configured store.
//
//	go run ./cmd/useradd -username alice -password s3cret [-role admin]
func main() {
	username := flag.String("username", "", "login name (3-30 chars)")
	password := flag.String("password", "", "password (3-100 chars)")
	role := flag.String("role", models.RoleUser, "user or admin")
	flag.Parse()

	cfg := config.Load()
	log := logger.New(cfg.Env)

	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()

	repos, err := store.Open(ctx, cfg, log)
	if err != nil {
		fmt.Fprintln(os.Stderr, "store:", err)
		os.Exit(1)
	}
	defer func() { _ = repos.Close(context.Background()) }()

	u, err := services.NewUserService(repos.Users, log).Register(ctx, models.NewUserCommand{
		Username: *username,
		Password: *password,
		Role:     *role,
	})
	var verrs validate.Errs
	switch {
	case errors.As(err, &verrs):
		fmt.Fprintln(os.Stderr, "invalid:", verrs.Error())
		os.Exit(2)
	case errors.Is(err, repo.ErrDuplicate):
		fmt.Fprintf(os.Stderr, "user %q already exists\n", *username)
		os.Exit(1)
	case err != nil:
		fmt.Fprintln(os.Stderr, "create user:", err)
		os.Exit(1)
	}
	fmt.Printf("created %s (%s) id=%s\n", u.Username, u.Role, u.ID)
}
