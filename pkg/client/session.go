package client

import "context"

// TokenStore persists the bearer token between runs. The CLI backs this
// with the OS keyring; anything implementing the three methods works.
type TokenStore interface {
	Save(token string) error
	Load() (string, error)
	Clear() error
}

// Session ties a Client to a TokenStore so login survives process
// restarts.
type Session struct {
	Client *Client
	store  TokenStore
}

// NewSession restores any saved token onto the client. A missing token is
// not an error, the session just starts logged out.
func NewSession(c *Client, store TokenStore) *Session {
	s := &Session{Client: c, store: store}
	if token, err := store.Load(); err == nil && token != "" {
		c.SetToken(token)
	}
	return s
}

// Login authenticates and persists the token.
func (s *Session) Login(ctx context.Context, email, password string) (*LoginResult, error) {
	result, err := s.Client.Auth.Login(ctx, email, password)
	if err != nil {
		return nil, err
	}
	if err := s.store.Save(result.Token); err != nil {
		return nil, err
	}
	return result, nil
}

// Logout clears both the in-memory token and the stored one.
func (s *Session) Logout() error {
	s.Client.SetToken("")
	return s.store.Clear()
}

// LoggedIn reports whether a token is installed. It says nothing about
// expiry; the server is the authority on that.
func (s *Session) LoggedIn() bool {
	return s.Client.Token() != ""
}
