package gitlab

import (
	"context"
	"encoding/json"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/jmgilman/go/errors"
)

// LoginOptions contains the credentials for Login. Exactly one of Username or
// Email must be set alongside the password.
type LoginOptions struct {
	// Username is the GitLab login name.
	Username string

	// Email is the account email address. Used when Username is empty.
	Email string

	// Password is the account password (required).
	Password string
}

// Session is the response of a successful login: the account plus the private
// token GitLab issued for it.
type Session struct {
	User

	// PrivateToken authenticates subsequent API calls.
	PrivateToken string `json:"private_token"`
}

// Login authenticates against the remote instance and stores the returned
// private token on the client, so every subsequent call carries it.
//
// Unlike the resource operations, a rejected login is always surfaced as an
// authentication error carrying the remote message: the distinguishing
// message is valuable to the caller here.
func (c *Client) Login(ctx context.Context, opts LoginOptions) (*Session, error) {
	form := url.Values{}
	switch {
	case opts.Username != "":
		form.Set("login", opts.Username)
	case opts.Email != "":
		form.Set("email", opts.Email)
	default:
		return nil, newInvalidInputError("credentials", "either username or email must be provided")
	}
	form.Set("password", opts.Password)

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+"/session", strings.NewReader(form.Encode()))
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeInvalidInput, "failed to build request")
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "request failed")
	}
	defer func() { _ = resp.Body.Close() }()

	data, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, errors.Wrap(err, errors.CodeNetwork, "failed to read response body")
	}

	if resp.StatusCode != http.StatusCreated {
		msg := remoteMessage(data)
		if msg == "" {
			msg = "login rejected"
		}
		authErr := errors.New(errors.CodeUnauthorized, msg)
		return nil, errors.WithContext(authErr, "status_code", resp.StatusCode)
	}

	var session Session
	if err := json.Unmarshal(data, &session); err != nil {
		return nil, errors.Wrap(err, errors.CodeInternal, "failed to decode response")
	}

	c.mu.Lock()
	c.token = session.PrivateToken
	c.mu.Unlock()

	return &session, nil
}

// SetSudo makes all subsequent calls act on behalf of the given user id or
// username. Requires administrative privileges on the token.
func (c *Client) SetSudo(user string) {
	c.mu.Lock()
	c.sudo = user
	c.mu.Unlock()
}

// ClearSudo stops impersonating and returns to the token's own identity.
// Clearing when nothing was set is a no-op.
func (c *Client) ClearSudo() {
	c.mu.Lock()
	c.sudo = ""
	c.mu.Unlock()
}
