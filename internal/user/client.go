package user

import (
	"context"

	"github.com/smartbuyr/storefront/internal/rest"
)

// Client performs the auth calls. Failures carry the backend's reason string,
// never a raw transport error.
type Client struct {
	api *rest.Client
}

func NewClient(api *rest.Client) *Client {
	return &Client{api: api}
}

type signInRequest struct {
	Username string `json:"username"`
	Password string `json:"password"`
}

// SignUpFields is the registration payload.
type SignUpFields struct {
	Username  string `json:"username"`
	Email     string `json:"email"`
	Password  string `json:"password"`
	FirstName string `json:"first_name,omitempty"`
	LastName  string `json:"last_name,omitempty"`
}

type authResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// SignIn exchanges credentials for a session.
func (c *Client) SignIn(ctx context.Context, username, password string) (Session, error) {
	var res authResponse
	if err := c.api.Post(ctx, "/api/signin/", "", signInRequest{Username: username, Password: password}, &res); err != nil {
		return Session{}, err
	}
	return Session{Token: res.Token, User: res.User}, nil
}

// SignUp registers a new account and yields a session for it.
func (c *Client) SignUp(ctx context.Context, fields SignUpFields) (Session, error) {
	var res authResponse
	if err := c.api.Post(ctx, "/api/signup/", "", fields, &res); err != nil {
		return Session{}, err
	}
	return Session{Token: res.Token, User: res.User}, nil
}
