// Copyright 2026 The Praxis Authors
// SPDX-License-Identifier: Apache-2.0

package backend

import (
	"context"
	"fmt"
	"net/http"
	"sync"
	"time"
)

// Notifier is the user-facing notification sink consumed by the session
// and the synchronization tasks.
type Notifier interface {
	// ShowSuccess surfaces a transient success message.
	ShowSuccess(message string, duration time.Duration)
	// ShowWarning surfaces a warning message.
	ShowWarning(message string)
}

// Navigator is the routing sink: forced logout navigates to "/", a
// successful login to "/academy", and so on.
type Navigator interface {
	NavigateTo(path string)
}

// SessionConfig holds the sinks a Session reports through.
type SessionConfig struct {
	// Notifier receives the forced-logout warning. Required.
	Notifier Notifier
	// Navigator receives the forced navigation back to the login route.
	// Required.
	Navigator Navigator
}

// Session is the authenticated request orchestrator. It owns the
// credential pair: no other component replaces or clears it. A Session
// starts logged out; Authenticate populates it.
//
// Sessions are safe for concurrent use. Overlapping calls that both hit
// a 401 share a single in-flight renewal.
type Session struct {
	client    *Client
	notifier  Notifier
	navigator Navigator

	mu      sync.Mutex
	creds   *Credentials // nil when logged out; both fields set otherwise
	renewal *renewal     // non-nil while a renewal is in flight
}

// renewal is one in-flight credential renewal. Callers that find it
// pending wait on done and adopt err.
type renewal struct {
	done chan struct{}
	err  error
}

// NewSession creates a logged-out Session.
func (c *Client) NewSession(config SessionConfig) (*Session, error) {
	if config.Notifier == nil {
		return nil, fmt.Errorf("backend: Notifier is required")
	}
	if config.Navigator == nil {
		return nil, fmt.Errorf("backend: Navigator is required")
	}
	return &Session{
		client:    c,
		notifier:  config.Notifier,
		navigator: config.Navigator,
	}, nil
}

// Credentials returns the current credential pair, if any.
func (s *Session) Credentials() (Credentials, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.creds == nil {
		return Credentials{}, false
	}
	return *s.creds, true
}

// LoggedIn reports whether a credential pair is present.
func (s *Session) LoggedIn() bool {
	_, ok := s.Credentials()
	return ok
}

// replace installs a new credential pair. Both fields must be set; the
// logged-out state is represented by absence, never by empty strings.
func (s *Session) replace(pair Credentials) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = &pair
}

// clear drops the credential pair. Idempotent.
func (s *Session) clear() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.creds = nil
}

// Authenticate exchanges a login code for a credential pair. On success
// the pair is installed in the session. On failure the forced-logout
// path runs with a login-specific warning.
func (s *Session) Authenticate(ctx context.Context, code string) error {
	response, err := s.Call(ctx, http.MethodPost, "auth", CallOptions{
		Body:         map[string]any{"login": map[string]any{"access_code": code}},
		ErrorMessage: "Could not login. Please contact the module administrator.",
	})
	if err != nil {
		return err
	}

	var tokens wireTokens
	if err := response.Decode(&tokens); err != nil {
		return fmt.Errorf("backend: parsing auth response: %w", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return fmt.Errorf("backend: auth response missing credential pair")
	}

	s.replace(Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	s.client.logger.Info("authenticated with backend")
	return nil
}

// Call performs an authenticated request against the backend.
//
// The current access credential (if any) is attached as a bearer header.
// A 2xx response is returned as-is. A 401 with opts.Refresh set triggers
// one credential renewal and exactly one retry with renewal disabled; a
// second 401, or a renewal failure, is terminal. Terminal failures force
// a logout (credentials cleared, warning shown, navigation to "/") and
// return an error matching [ErrSessionEnded] — unless opts.NoAutoLogout
// is set, in which case a non-2xx response is returned to the caller
// as-is and a transport failure is returned as a plain error without
// touching the credentials.
//
// A caller never receives a Response together with cleared credentials:
// every path that clears the pair returns a nil Response.
func (s *Session) Call(ctx context.Context, method, path string, opts CallOptions) (*Response, error) {
	return s.call(ctx, method, path, opts, opts.Refresh)
}

func (s *Session) call(ctx context.Context, method, path string, opts CallOptions, renewOn401 bool) (*Response, error) {
	accessToken := ""
	if pair, ok := s.Credentials(); ok {
		accessToken = pair.AccessToken
	}

	response, err := s.client.do(ctx, method, path, accessToken, opts)
	if err != nil {
		if opts.NoAutoLogout {
			return nil, err
		}
		return nil, s.endSession(method, path, opts.ErrorMessage, err)
	}

	if response.OK() {
		return response, nil
	}

	if renewOn401 && response.StatusCode == http.StatusUnauthorized {
		if renewErr := s.renew(ctx); renewErr != nil {
			// Renewal failure is terminal even for callers that opted
			// out of automatic logout: without a valid pair there is
			// nothing left to retry against.
			return nil, s.endSession(method, path, opts.ErrorMessage, renewErr)
		}
		// Exactly one retry per logical call, renewal disabled.
		return s.call(ctx, method, path, opts, false)
	}

	if opts.NoAutoLogout {
		return response, nil
	}
	return nil, s.endSession(method, path, opts.ErrorMessage, &APIError{
		StatusCode: response.StatusCode,
		Body:       response.Body,
	})
}

// renew exchanges the refresh credential for a new pair. Concurrent
// callers share one in-flight exchange: the first performs it, the rest
// wait and adopt its outcome.
func (s *Session) renew(ctx context.Context) error {
	s.mu.Lock()
	if pending := s.renewal; pending != nil {
		s.mu.Unlock()
		select {
		case <-pending.done:
			return pending.err
		case <-ctx.Done():
			return ctx.Err()
		}
	}

	current := &renewal{done: make(chan struct{})}
	s.renewal = current
	refreshToken := ""
	if s.creds != nil {
		refreshToken = s.creds.RefreshToken
	}
	s.mu.Unlock()

	current.err = s.exchangeRefreshToken(ctx, refreshToken)

	s.mu.Lock()
	s.renewal = nil
	s.mu.Unlock()
	close(current.done)
	return current.err
}

func (s *Session) exchangeRefreshToken(ctx context.Context, refreshToken string) error {
	if refreshToken == "" {
		return fmt.Errorf("backend: no refresh credential")
	}

	response, err := s.client.do(ctx, http.MethodPost, "auth/refresh", "", CallOptions{
		Body: map[string]any{"refresh_token": refreshToken},
	})
	if err != nil {
		return fmt.Errorf("backend: renewing credentials: %w", err)
	}
	if !response.OK() {
		return fmt.Errorf("backend: renewing credentials: %w", &APIError{
			StatusCode: response.StatusCode,
			Body:       response.Body,
		})
	}

	var tokens wireTokens
	if err := response.Decode(&tokens); err != nil {
		return fmt.Errorf("backend: parsing refresh response: %w", err)
	}
	if tokens.AccessToken == "" || tokens.RefreshToken == "" {
		return fmt.Errorf("backend: refresh response missing credential pair")
	}

	s.replace(Credentials{
		AccessToken:  tokens.AccessToken,
		RefreshToken: tokens.RefreshToken,
	})
	s.client.logger.Info("renewed backend credentials")
	return nil
}

// endSession runs the forced-logout path: clear the credential pair,
// warn the user, and navigate back to the login route. The returned
// error wraps ErrSessionEnded.
func (s *Session) endSession(method, path, message string, cause error) error {
	s.clear()
	if message == "" {
		message = "Please login again."
	}
	s.notifier.ShowWarning(message)
	s.navigator.NavigateTo("/")
	s.client.logger.Warn("backend session ended",
		"method", method,
		"path", path,
		"cause", cause,
	)
	return fmt.Errorf("backend: %s %s: %w: %v", method, path, ErrSessionEnded, cause)
}
