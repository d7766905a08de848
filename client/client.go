package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/cookiejar"
	"time"
)

// APIError is an error body returned by the server. A request that fails
// without any server response (connection refused, timeout) comes back as a
// plain wrapped error instead, so callers can show a generic connectivity
// message for those.
type APIError struct {
	Status  int
	Message string
}

func (e *APIError) Error() string {
	return fmt.Sprintf("server returned %d: %s", e.Status, e.Message)
}

// Client is the HTTP client for the portfolio API. The session cookie set at
// sign-in rides the cookie jar on later requests.
type Client struct {
	baseURL string
	http    *http.Client
	auth    *AuthContext
}

// New creates an API client against baseURL. Auth state persists through the
// given storage.
func New(baseURL string, store Storage) (*Client, error) {
	jar, err := cookiejar.New(nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create cookie jar: %w", err)
	}

	return &Client{
		baseURL: baseURL,
		http: &http.Client{
			Jar:     jar,
			Timeout: 15 * time.Second,
		},
		auth: NewAuthContext(store),
	}, nil
}

// Auth returns the client's auth context
func (c *Client) Auth() *AuthContext {
	return c.auth
}

// authResponse is the body returned by sign-up and sign-in
type authResponse struct {
	Message string `json:"message"`
	Token   string `json:"token"`
	User    User   `json:"user"`
}

// SignUp registers a new account and logs the auth context in
func (c *Client) SignUp(ctx context.Context, username, email, password string) (User, error) {
	body := map[string]string{
		"username": username,
		"email":    email,
		"password": password,
	}

	var resp authResponse
	if err := c.post(ctx, "/auth/signup", body, &resp); err != nil {
		return User{}, err
	}

	if err := c.auth.Login(resp.User, resp.User.Role); err != nil {
		return User{}, err
	}
	if err := c.auth.setToken(resp.Token); err != nil {
		return User{}, err
	}

	return resp.User, nil
}

// SignIn authenticates with a username or email and logs the auth context in
func (c *Client) SignIn(ctx context.Context, usernameOrEmail, password string) (User, error) {
	body := map[string]string{
		"username": usernameOrEmail,
		"password": password,
	}

	var resp authResponse
	if err := c.post(ctx, "/auth/signin", body, &resp); err != nil {
		return User{}, err
	}

	if err := c.auth.Login(resp.User, resp.User.Role); err != nil {
		return User{}, err
	}
	if err := c.auth.setToken(resp.Token); err != nil {
		return User{}, err
	}

	return resp.User, nil
}

// SignOut clears the server cookie and the local auth state. The old token
// stays valid server-side until it expires.
func (c *Client) SignOut(ctx context.Context) error {
	if err := c.get(ctx, "/auth/signout", nil); err != nil {
		return err
	}

	c.auth.Logout()
	return nil
}

// Profile fetches the authenticated user's profile
func (c *Client) Profile(ctx context.Context) (User, error) {
	var resp struct {
		Message string `json:"message"`
		User    User   `json:"user"`
	}
	if err := c.get(ctx, "/auth/profile", &resp); err != nil {
		return User{}, err
	}
	return resp.User, nil
}

// post sends a JSON POST and decodes the response into out
func (c *Client) post(ctx context.Context, path string, body any, out any) error {
	raw, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to marshal request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(raw))
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	return c.do(req, out)
}

// get sends a GET and decodes the response into out (out may be nil)
func (c *Client) get(ctx context.Context, path string, out any) error {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, c.baseURL+path, nil)
	if err != nil {
		return fmt.Errorf("failed to create request: %w", err)
	}

	return c.do(req, out)
}

// do executes a request, distinguishing transport failures from server error
// bodies: the former are wrapped errors, the latter *APIError.
func (c *Client) do(req *http.Request, out any) error {
	// Non-browser clients can also authenticate with a bearer header
	if token, ok := c.auth.store.Get(storageKeyToken); ok {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 400 {
		var errBody struct {
			Error   string `json:"error"`
			Message string `json:"message"`
		}
		message := http.StatusText(resp.StatusCode)
		if err := json.NewDecoder(resp.Body).Decode(&errBody); err == nil {
			if errBody.Error != "" {
				message = errBody.Error
			} else if errBody.Message != "" {
				message = errBody.Message
			}
		}
		return &APIError{Status: resp.StatusCode, Message: message}
	}

	if out == nil {
		return nil
	}
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
