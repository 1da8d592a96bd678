// Package services contains the application services for the marketplace
// client. This file defines authentication: register, login, logout, the
// best-effort session probe, and the locally cached identity.
package services

import (
	"context"
	"database/sql"

	"github.com/onkmade/secondhand/internal/client/api"
	"github.com/onkmade/secondhand/internal/client/models"
	"github.com/onkmade/secondhand/internal/client/repositories/session"
	"github.com/onkmade/secondhand/internal/client/repositories/watchlist"
	"github.com/onkmade/secondhand/internal/dbx"
)

// AuthService defines the authentication operations for the CLI.
//
// Contract:
//   - Register/Login authenticate against the server and persist the
//     returned identity locally.
//   - Probe asks the server who we are; on failure it falls back to the
//     locally cached identity and reports the probe error alongside it.
//   - Logout clears the local identity; the remote logout is best-effort.
//   - Current reads the cached identity without touching the network.
//
// All methods honor context cancellation/timeouts.
type AuthService interface {
	Register(ctx context.Context, email string, password []byte) (models.Session, error)
	Login(ctx context.Context, email string, password []byte) (models.Session, error)
	Logout(ctx context.Context) error
	Probe(ctx context.Context) (models.Session, error)
	Current(ctx context.Context) (models.Session, error)
	Close(ctx context.Context) error
}

type authService struct {
	client api.Client
	db     *sql.DB
}

// NewAuthService constructs an AuthService bound to the given API client
// and local database.
func NewAuthService(client api.Client, db *sql.DB) AuthService {
	return &authService{client: client, db: db}
}

func (a *authService) Register(ctx context.Context, email string, password []byte) (models.Session, error) {
	s, err := a.client.Register(ctx, email, string(password))
	if err != nil {
		return models.Session{}, err
	}
	if err := a.saveSession(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *authService) Login(ctx context.Context, email string, password []byte) (models.Session, error) {
	s, err := a.client.Login(ctx, email, string(password))
	if err != nil {
		return models.Session{}, err
	}
	if err := a.saveSession(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// Logout clears the cached identity and the local watchlist mirror, so a
// later anonymous session does not inherit the previous user's set. The
// remote logout call is best-effort: an unreachable server must not keep
// the user logged in locally.
func (a *authService) Logout(ctx context.Context) error {
	_ = a.client.Logout(ctx)
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		if err := session.NewSQLiteRepository(tx).Clear(ctx); err != nil {
			return err
		}
		return watchlist.NewSQLiteRepository(tx).Clear(ctx)
	})
}

// Probe asks the backend for the current identity. On success the local
// cache is refreshed. On failure the cached identity is returned together
// with the probe error so the caller can log and degrade to it.
func (a *authService) Probe(ctx context.Context) (models.Session, error) {
	s, err := a.client.Me(ctx)
	if err != nil {
		cached, cacheErr := a.Current(ctx)
		if cacheErr != nil {
			return models.Session{}, cacheErr
		}
		return cached, err
	}
	if err := a.saveSession(ctx, s); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

func (a *authService) Current(ctx context.Context) (models.Session, error) {
	repo := session.NewSQLiteRepository(a.db)

	var s models.Session
	var err error
	if s.UserID, err = repo.Get(ctx, "user_id"); err != nil {
		return models.Session{}, err
	}
	if s.Email, err = repo.Get(ctx, "email"); err != nil {
		return models.Session{}, err
	}
	if s.Name, err = repo.Get(ctx, "name"); err != nil {
		return models.Session{}, err
	}
	return s, nil
}

// saveSession persists the identity keys in a single transaction.
func (a *authService) saveSession(ctx context.Context, s models.Session) error {
	return dbx.WithTx(ctx, a.db, nil, func(ctx context.Context, tx dbx.DBTX) error {
		repo := session.NewSQLiteRepository(tx)
		if err := repo.Set(ctx, "user_id", s.UserID); err != nil {
			return err
		}
		if err := repo.Set(ctx, "email", s.Email); err != nil {
			return err
		}
		return repo.Set(ctx, "name", s.Name)
	})
}

func (a *authService) Close(ctx context.Context) error {
	return a.client.Close()
}
