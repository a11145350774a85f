package auth

import (
	"context"
	"errors"

	"github.com/google/uuid"
)

// UserRecord is what the credential store exposes to the auth core.
type UserRecord struct {
	ID           uuid.UUID
	Name         string
	Email        string
	PasswordHash string
	Role         Role
}

// Identity maps the record to the claim set used at issuance time.
func (u *UserRecord) Identity() Identity {
	return Identity{
		UserID: u.ID.String(),
		Email:  u.Email,
		Role:   u.Role,
	}
}

// CredentialStore is the user identity collaborator. The auth core never
// owns it; any concurrency control around user records belongs to the
// implementation.
type CredentialStore interface {
	FindByEmail(ctx context.Context, email string) (*UserRecord, error)
	FindByID(ctx context.Context, id uuid.UUID) (*UserRecord, error)
}

// Authenticator verifies credentials against the store and issues session
// tokens for verified identities.
type Authenticator struct {
	store  CredentialStore
	tokens *TokenService
	logger Logger
}

// NewAuthenticator returns a new Authenticator
func NewAuthenticator(store CredentialStore, tokens *TokenService, logger Logger) *Authenticator {
	if logger == nil {
		logger = defLogger{}
	}
	return &Authenticator{
		store:  store,
		tokens: tokens,
		logger: logger,
	}
}

// Login authenticates the email/password pair and returns a signed session
// token with the matching record. A missing user and a wrong password both
// come back as ErrMismatchedHashAndPassword so callers cannot leak which
// one it was.
func (a *Authenticator) Login(ctx context.Context, email, password string) (string, *UserRecord, error) {
	user, err := a.store.FindByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, ErrIdentityNotFound) {
			return "", nil, ErrMismatchedHashAndPassword
		}
		a.logger.Error("login failed to look up identity", "error", err)
		return "", nil, err
	}

	if err := ComparePasswordAndHash(password, user.PasswordHash); err != nil {
		return "", nil, ErrMismatchedHashAndPassword
	}

	token, err := a.tokens.Sign(user.Identity())
	if err != nil {
		a.logger.Error("login failed to sign token", "error", err)
		return "", nil, err
	}

	return token, user, nil
}

// IssueToken signs a session token for an already verified record, e.g.
// right after registration.
func (a *Authenticator) IssueToken(user *UserRecord) (string, error) {
	return a.tokens.Sign(user.Identity())
}
