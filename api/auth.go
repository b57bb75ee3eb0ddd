// ABOUTME: Auth endpoints: login, signup, profile
// ABOUTME: Persists the returned token pair and user record into the session store
package api

import (
	"context"
	"fmt"
	"net/http"
	"strings"

	"calldeck/models"
)

// TokenPair is the access/refresh pair nested in auth responses.
type TokenPair struct {
	Access  string `json:"access"`
	Refresh string `json:"refresh"`
}

type authResponse struct {
	User   *models.User `json:"user"`
	Tokens TokenPair    `json:"tokens"`
}

// SignupRequest is the flat signup payload. The backend creates the company
// record from company_name; there is no nested company object.
type SignupRequest struct {
	FirstName   string `json:"first_name"`
	LastName    string `json:"last_name"`
	Email       string `json:"email"`
	Password    string `json:"password"`
	CompanyName string `json:"company_name"`
	Phone       string `json:"phone"`
}

// Login authenticates with email and password and stores the session.
func (c *Client) Login(ctx context.Context, email, password string) (*models.User, error) {
	if strings.TrimSpace(email) == "" || password == "" {
		return nil, &ValidationError{Message: "Email and password are required"}
	}

	req := map[string]string{"email": email, "password": password}
	var resp authResponse
	if err := c.doUnauthenticated(ctx, http.MethodPost, "/auth/login/", req, &resp); err != nil {
		return nil, err
	}

	if err := c.storeTokens(&resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Signup registers a new account and stores the session.
func (c *Client) Signup(ctx context.Context, req *SignupRequest) (*models.User, error) {
	if strings.TrimSpace(req.FirstName) == "" || strings.TrimSpace(req.Email) == "" || req.Password == "" {
		return nil, &ValidationError{Message: "First name, email and password are required"}
	}

	var resp authResponse
	if err := c.doUnauthenticated(ctx, http.MethodPost, "/auth/signup/", req, &resp); err != nil {
		return nil, err
	}

	if err := c.storeTokens(&resp); err != nil {
		return nil, err
	}
	return resp.User, nil
}

// Profile fetches the signed-in user's record.
func (c *Client) Profile(ctx context.Context) (*models.User, error) {
	var user models.User
	if err := c.do(ctx, http.MethodGet, "/auth/profile/", nil, &user); err != nil {
		return nil, err
	}
	return &user, nil
}

// Logout clears the stored session. Purely client-side: the backend keeps
// no session state beyond token validity.
func (c *Client) Logout() error {
	return c.store.Clear()
}

func (c *Client) storeTokens(resp *authResponse) error {
	sess, err := c.store.Load()
	if err != nil {
		return fmt.Errorf("failed to load session: %w", err)
	}
	sess.AccessToken = resp.Tokens.Access
	sess.RefreshToken = resp.Tokens.Refresh
	sess.User = resp.User
	if err := c.store.Save(sess); err != nil {
		return fmt.Errorf("failed to store session: %w", err)
	}
	return nil
}
