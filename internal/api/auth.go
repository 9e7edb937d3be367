package api

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
)

// Token is the backend's login response.
type Token struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
}

// Login exchanges credentials for a bearer token. The token is not
// stored here; session persistence belongs to the config layer.
func (c *Client) Login(ctx context.Context, email, password string) (string, error) {
	payload := map[string]string{"email": email, "password": password}
	data, err := c.do(ctx, http.MethodPost, "/auth/login", payload)
	if err != nil {
		return "", err
	}

	var tok Token
	if err := json.Unmarshal(data, &tok); err != nil {
		return "", fmt.Errorf("api: parsing login response: %w", err)
	}
	if tok.AccessToken == "" {
		return "", fmt.Errorf("api: login response missing access token")
	}
	return tok.AccessToken, nil
}

// RegisterInput is the payload for creating an advisor account.
type RegisterInput struct {
	Name     string `json:"name"`
	Email    string `json:"email"`
	Password string `json:"password"`
	IsActive bool   `json:"is_active"`
}

// Register creates a new advisor account on the backend.
func (c *Client) Register(ctx context.Context, in RegisterInput) error {
	_, err := c.do(ctx, http.MethodPost, "/auth/register", in)
	return err
}
