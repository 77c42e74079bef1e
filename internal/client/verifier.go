// Package client holds thin clients for the external collaborators: the
// identity verifier, the items service, and the admin message channel.
package client

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"time"
)

// IdentityVerifier validates a bearer credential and returns the caller's
// username. Any non-valid verdict is returned as an error; callers treat
// every failure uniformly as unauthorized.
type IdentityVerifier interface {
	Verify(ctx context.Context, token string) (string, error)
}

type authResponse struct {
	Message  string `json:"message"`
	Username string `json:"username"`
}

type remoteVerifier struct {
	endpoint string
	client   *http.Client
}

// NewRemoteVerifier returns a verifier backed by the authentication service.
// The service echoes back {"message": "Token is valid", "username": ...} for
// a good credential; anything else is a rejection.
func NewRemoteVerifier(endpoint string) IdentityVerifier {
	return &remoteVerifier{
		endpoint: endpoint,
		client:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (v *remoteVerifier) Verify(ctx context.Context, token string) (string, error) {
	payload, err := json.Marshal(map[string]string{"token": token})
	if err != nil {
		return "", err
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, v.endpoint, bytes.NewReader(payload))
	if err != nil {
		return "", err
	}
	req.Header.Set("Authorization", "Bearer "+token)
	req.Header.Set("Content-Type", "application/json")

	resp, err := v.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("auth service returned status %d", resp.StatusCode)
	}

	var auth authResponse
	if err := json.NewDecoder(resp.Body).Decode(&auth); err != nil {
		return "", err
	}
	if auth.Message != "Token is valid" {
		return "", fmt.Errorf("token rejected: %s", auth.Message)
	}
	return auth.Username, nil
}
