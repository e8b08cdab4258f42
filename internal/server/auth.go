package server

import (
	"fmt"

	"auction-arena/internal/auctionerrors"
	"auction-arena/internal/repository"
	"auction-arena/internal/transport"
)

// TokenAuthenticator resolves websocket handshake tokens: the admin token
// grants the admin role, a team access code binds the connection to that
// team. Validation happens once at handshake, never per command.
type TokenAuthenticator struct {
	store      *repository.Store
	adminToken string
}

// NewTokenAuthenticator creates the handshake validator.
func NewTokenAuthenticator(store *repository.Store, adminToken string) *TokenAuthenticator {
	return &TokenAuthenticator{store: store, adminToken: adminToken}
}

// Authenticate implements transport.Authenticator.
func (a *TokenAuthenticator) Authenticate(token string) (transport.Identity, error) {
	if token == "" {
		return transport.Identity{}, fmt.Errorf("auth: empty token: %w", auctionerrors.ErrInvalidInput)
	}
	if a.adminToken != "" && token == a.adminToken {
		return transport.Identity{Admin: true}, nil
	}
	team, err := a.store.FindTeamByAccessCode(token)
	if err != nil {
		return transport.Identity{}, fmt.Errorf("auth: %w", err)
	}
	return transport.Identity{TeamID: team.TeamID}, nil
}
