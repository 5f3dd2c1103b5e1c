// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

// Package session holds the credentials of the signed-in user for the
// lifetime of the process and mirrors them into the durable credential store.
//
// A single *Session is created by the composition root and shared by every
// component that needs the current access token. Concurrent access is safe;
// when several goroutines write the credential the last write wins.
package session

import (
	"context"
	"errors"
	"fmt"
	"sync"

	"github.com/MKhiriev/go-orders-admin/internal/logger"
	"github.com/MKhiriev/go-orders-admin/internal/store"
)

// Session is the in-memory view of the persisted credentials.
type Session struct {
	mu           sync.RWMutex
	accessToken  string
	refreshToken string

	repo   store.CredentialRepository
	logger *logger.Logger
}

// New creates an empty session backed by repo. Call Load to seed it from
// previously persisted credentials.
func New(repo store.CredentialRepository, logger *logger.Logger) *Session {
	return &Session{repo: repo, logger: logger}
}

// Load reads both credentials from the store. A missing record leaves the
// corresponding token empty.
func (s *Session) Load(ctx context.Context) error {
	access, err := s.read(ctx, store.AccessTokenKey)
	if err != nil {
		return err
	}
	refresh, err := s.read(ctx, store.RefreshTokenKey)
	if err != nil {
		return err
	}

	s.mu.Lock()
	s.accessToken = access
	s.refreshToken = refresh
	s.mu.Unlock()

	s.logger.Debug().
		Str("func", "*Session.Load").
		Bool("authenticated", access != "").
		Msg("session loaded")

	return nil
}

// AccessToken returns the current bearer credential or "" when none is set.
func (s *Session) AccessToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.accessToken
}

// RefreshToken returns the current refresh token or "".
func (s *Session) RefreshToken() string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.refreshToken
}

// Authenticated reports whether an access token is present.
func (s *Session) Authenticated() bool {
	return s.AccessToken() != ""
}

// SetCredential replaces the access token. The empty token removes it.
// Memory is always updated; a store failure is logged and returned.
func (s *Session) SetCredential(ctx context.Context, token string) error {
	s.mu.Lock()
	s.accessToken = token
	s.mu.Unlock()

	return s.persist(ctx, store.AccessTokenKey, token)
}

// SetTokens replaces both tokens at once. An empty refresh token keeps the
// current one, since not every server response rotates it.
func (s *Session) SetTokens(ctx context.Context, access, refresh string) error {
	s.mu.Lock()
	s.accessToken = access
	if refresh != "" {
		s.refreshToken = refresh
	}
	s.mu.Unlock()

	err := s.persist(ctx, store.AccessTokenKey, access)
	if refresh != "" {
		err = errors.Join(err, s.persist(ctx, store.RefreshTokenKey, refresh))
	}
	return err
}

// Clear drops both tokens from memory and from the store.
func (s *Session) Clear(ctx context.Context) error {
	s.mu.Lock()
	s.accessToken = ""
	s.refreshToken = ""
	s.mu.Unlock()

	return errors.Join(
		s.persist(ctx, store.AccessTokenKey, ""),
		s.persist(ctx, store.RefreshTokenKey, ""),
	)
}

func (s *Session) read(ctx context.Context, name string) (string, error) {
	value, err := s.repo.Get(ctx, name)
	switch {
	case errors.Is(err, store.ErrCredentialNotFound):
		return "", nil
	case err != nil:
		s.logger.Err(err).Str("func", "*Session.read").Str("name", name).Msg("failed to load credential")
		return "", fmt.Errorf("load %s: %w", name, err)
	}
	return value, nil
}

// persist writes value under name, deleting the record for the empty value.
func (s *Session) persist(ctx context.Context, name, value string) error {
	var err error
	if value == "" {
		err = s.repo.Delete(ctx, name)
	} else {
		err = s.repo.Put(ctx, name, value)
	}
	if err != nil {
		s.logger.Err(err).Str("func", "*Session.persist").Str("name", name).Msg("failed to persist credential")
		return fmt.Errorf("persist %s: %w", name, err)
	}
	return nil
}
