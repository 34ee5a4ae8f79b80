package tableside

import (
	"context"
	"fmt"
	"time"

	jwt "github.com/dgrijalva/jwt-go"
)

// AuthClient talks to the authentication endpoint. It shares the dispatch
// machinery and error taxonomy with Client but targets the auth URL.
type AuthClient struct {
	client *Client
}

// NewAuthClient creates an authentication client from config.
func NewAuthClient(config Config, opts ...Option) *AuthClient {
	config.applyDefaults()
	config.APIURL = config.AuthURL
	return &AuthClient{client: NewClient(config, opts...)}
}

type loginRequest struct {
	Type     string `json:"type"`
	ClientID string `json:"clientId"`
	Secret   string `json:"secret"`
}

// Token is an issued access token.
type Token struct {
	AccessToken string `json:"accessToken"`
}

// Login exchanges client credentials for an access token.
func (a *AuthClient) Login(ctx context.Context, clientID, secret string) (*Token, error) {
	request := loginRequest{
		Type:     "login",
		ClientID: clientID,
		Secret:   secret,
	}

	var token Token
	if err := a.client.call(ctx, request.Type, request, &token); err != nil {
		return nil, err
	}
	return &token, nil
}

// Expiry reads the token's expiration from its JWT exp claim, without
// verifying the signature. Verification is the server's job; clients only
// need to know when to log in again.
func (t *Token) Expiry() (time.Time, error) {
	claims := jwt.MapClaims{}
	if _, _, err := new(jwt.Parser).ParseUnverified(t.AccessToken, claims); err != nil {
		return time.Time{}, fmt.Errorf("parse access token: %w", err)
	}

	exp, ok := claims["exp"].(float64)
	if !ok {
		return time.Time{}, fmt.Errorf("access token has no exp claim")
	}
	return time.Unix(int64(exp), 0), nil
}
