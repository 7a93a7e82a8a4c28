// Package api is the HTTP client for the BudgetBox backend. All calls speak
// the uniform JSON envelope and decode failures into *APIError so callers
// can classify them by status and business code.
package api

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// Budget is the server-side budget record as returned by the API.
type Budget struct {
	ID            string `json:"id"`
	UserID        string `json:"user_id"`
	Income        string `json:"income"`
	MonthlyBills  string `json:"monthly_bills"`
	Food          string `json:"food"`
	Transport     string `json:"transport"`
	Subscriptions string `json:"subscriptions"`
	Misc          string `json:"misc"`
	Description   string `json:"description"`
	CreatedAt     string `json:"created_at"`
	UpdatedAt     string `json:"updated_at"`
}

// BudgetPayload is the seven-field body of POST /budget/sync.
type BudgetPayload struct {
	Income        string `json:"income"`
	MonthlyBills  string `json:"monthly_bills"`
	Food          string `json:"food"`
	Transport     string `json:"transport"`
	Subscriptions string `json:"subscriptions"`
	Misc          string `json:"misc"`
	Description   string `json:"description"`
}

// User is the public identity returned by auth endpoints.
type User struct {
	ID        string `json:"id"`
	Email     string `json:"email"`
	CreatedAt string `json:"created_at,omitempty"`
}

// Client talks to one backend instance.
type Client struct {
	baseURL string
	http    *http.Client
}

// New returns a Client for the given base URL (e.g. "http://127.0.0.1:4000").
func New(baseURL string) *Client {
	return &Client{
		baseURL: baseURL,
		http:    &http.Client{Timeout: 15 * time.Second},
	}
}

type envelope struct {
	Success bool            `json:"success"`
	Code    int             `json:"code"`
	Message string          `json:"message"`
	Errors  []string        `json:"errors"`
	Token   string          `json:"token"`
	User    *User           `json:"user"`
	Users   []User          `json:"users"`
	Budget  *Budget         `json:"budget"`
	Status  string          `json:"status"`
}

// Register creates an account and returns its public identity.
func (c *Client) Register(ctx context.Context, email, password, confirmPassword string) (*User, error) {
	body := map[string]string{
		"email":           email,
		"password":        password,
		"confirmPassword": confirmPassword,
	}
	env, err := c.do(ctx, http.MethodPost, "/auth/register", "", body)
	if err != nil {
		return nil, err
	}
	return env.User, nil
}

// Login authenticates and returns the bearer token plus the public identity.
func (c *Client) Login(ctx context.Context, email, password string) (string, *User, error) {
	body := map[string]string{"email": email, "password": password}
	env, err := c.do(ctx, http.MethodPost, "/auth/login", "", body)
	if err != nil {
		return "", nil, err
	}
	return env.Token, env.User, nil
}

// SyncBudget pushes the whole draft to the server and returns the stored record.
func (c *Client) SyncBudget(ctx context.Context, token string, payload BudgetPayload) (*Budget, error) {
	env, err := c.do(ctx, http.MethodPost, "/budget/sync", token, payload)
	if err != nil {
		return nil, err
	}
	return env.Budget, nil
}

// LatestBudget fetches the server's record for the token's user. A missing
// record surfaces as an *APIError with StatusNotFound.
func (c *Client) LatestBudget(ctx context.Context, token string) (*Budget, error) {
	env, err := c.do(ctx, http.MethodGet, "/budget/latest", token, nil)
	if err != nil {
		return nil, err
	}
	return env.Budget, nil
}

// Users fetches the debug user listing.
func (c *Client) Users(ctx context.Context) ([]User, error) {
	env, err := c.do(ctx, http.MethodGet, "/auth/users", "", nil)
	if err != nil {
		return nil, err
	}
	return env.Users, nil
}

// Health probes the server's liveness endpoint.
func (c *Client) Health(ctx context.Context) error {
	_, err := c.do(ctx, http.MethodGet, "/health", "", nil)
	return err
}

func (c *Client) do(ctx context.Context, method, path, token string, body any) (*envelope, error) {
	var reader *bytes.Reader
	if body != nil {
		data, err := json.Marshal(body)
		if err != nil {
			return nil, fmt.Errorf("encode request: %w", err)
		}
		reader = bytes.NewReader(data)
	} else {
		reader = bytes.NewReader(nil)
	}

	req, err := http.NewRequestWithContext(ctx, method, c.baseURL+path, reader)
	if err != nil {
		return nil, fmt.Errorf("build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, fmt.Errorf("request %s %s: %w", method, path, err)
	}
	defer resp.Body.Close()

	var env envelope
	if err := json.NewDecoder(resp.Body).Decode(&env); err != nil {
		if resp.StatusCode >= 400 {
			return nil, &APIError{Status: resp.StatusCode, Message: resp.Status}
		}
		return nil, fmt.Errorf("decode response: %w", err)
	}

	if resp.StatusCode >= 400 || !env.Success {
		return nil, &APIError{
			Status:  resp.StatusCode,
			Code:    env.Code,
			Message: env.Message,
			Errors:  env.Errors,
		}
	}
	return &env, nil
}
