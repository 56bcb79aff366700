// Package services implements the CLI use cases on top of the API client and
// the local session store.
package services

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/dmitrijs2005/ecotracker/internal/client/client"
	"github.com/dmitrijs2005/ecotracker/internal/client/repositories/metadata"
	"github.com/dmitrijs2005/ecotracker/internal/dbx"
)

var ErrNotLoggedIn = errors.New("not logged in")

type AuthService interface {
	Register(ctx context.Context, username, password string) (string, error)
	Login(ctx context.Context, username, password string) error
	Logout(ctx context.Context) error
	// Restore loads a cached session into the client and returns its username.
	Restore(ctx context.Context) (string, error)
	Ping(ctx context.Context) error
}

type authService struct {
	client client.Client
	db     *sql.DB
	meta   metadata.Repository
}

func NewAuthService(c client.Client, db *sql.DB) AuthService {
	return &authService{client: c, db: db, meta: metadata.NewSQLiteRepository(db)}
}

func (s *authService) Register(ctx context.Context, username, password string) (string, error) {
	return s.client.Register(ctx, username, password)
}

func (s *authService) Login(ctx context.Context, username, password string) error {
	t, err := s.client.Login(ctx, username, password)
	if err != nil {
		return err
	}

	err = dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		meta := metadata.NewSQLiteRepository(tx)
		if err := meta.Set(ctx, metadata.KeyUsername, username); err != nil {
			return err
		}
		return storeTokens(ctx, meta, t)
	})
	if err != nil {
		return fmt.Errorf("save session: %w", err)
	}

	s.client.OnTokensRefreshed(s.saveTokens)
	return nil
}

func (s *authService) Logout(ctx context.Context) error {
	s.client.SetTokens(client.Tokens{})
	return s.meta.Clear(ctx)
}

func (s *authService) Restore(ctx context.Context) (string, error) {
	m, err := s.meta.List(ctx)
	if err != nil {
		return "", err
	}

	t := client.Tokens{AccessToken: m[metadata.KeyAccessToken], RefreshToken: m[metadata.KeyRefreshToken]}
	if t.AccessToken == "" || t.RefreshToken == "" {
		return "", ErrNotLoggedIn
	}

	s.client.SetTokens(t)
	s.client.OnTokensRefreshed(s.saveTokens)
	return m[metadata.KeyUsername], nil
}

func (s *authService) Ping(ctx context.Context) error {
	return s.client.Ping(ctx)
}

func (s *authService) saveTokens(ctx context.Context, t client.Tokens) error {
	return dbx.WithTx(ctx, s.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		return storeTokens(ctx, metadata.NewSQLiteRepository(tx), t)
	})
}

func storeTokens(ctx context.Context, meta metadata.Repository, t client.Tokens) error {
	if err := meta.Set(ctx, metadata.KeyAccessToken, t.AccessToken); err != nil {
		return err
	}
	return meta.Set(ctx, metadata.KeyRefreshToken, t.RefreshToken)
}
