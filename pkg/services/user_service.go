package services

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/user"
	"github.com/oikos-sh/brigade/pkg/auth"
)

// UserService manages users and their sealed third-party credentials.
type UserService struct {
	db     *ent.Client
	sealer *auth.Sealer
}

// NewUserService creates a UserService. sealer may be nil when no seal key
// is configured; credential operations then fail with ErrSealKeyMissing.
func NewUserService(db *ent.Client, sealer *auth.Sealer) *UserService {
	return &UserService{db: db, sealer: sealer}
}

// GetOrCreateByEmail returns the user for an email, creating it on first use.
func (s *UserService) GetOrCreateByEmail(ctx context.Context, email string) (*ent.User, error) {
	if email == "" {
		return nil, NewValidationError("email", "must not be empty")
	}
	u, err := s.db.User.Query().Where(user.EmailEQ(email)).Only(ctx)
	if ent.IsNotFound(err) {
		u, err = s.db.User.Create().SetEmail(email).Save(ctx)
		if ent.IsConstraintError(err) {
			// Concurrent first login; the row exists now
			return s.db.User.Query().Where(user.EmailEQ(email)).Only(ctx)
		}
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get or create user: %w", err)
	}
	return u, nil
}

// Get returns a user by id.
func (s *UserService) Get(ctx context.Context, id int) (*ent.User, error) {
	u, err := s.db.User.Get(ctx, id)
	if ent.IsNotFound(err) {
		return nil, fmt.Errorf("%w: user %d", ErrNotFound, id)
	}
	return u, err
}

// StoreCredentials encrypts and stores per-user connector credentials.
func (s *UserService) StoreCredentials(ctx context.Context, userID int, creds map[string]string) error {
	if s.sealer == nil {
		return auth.ErrSealKeyMissing
	}
	plain, err := json.Marshal(creds)
	if err != nil {
		return fmt.Errorf("failed to marshal credentials: %w", err)
	}
	sealed, err := s.sealer.Seal(plain)
	if err != nil {
		return err
	}
	err = s.db.User.UpdateOneID(userID).SetSealedCredentials(sealed).Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: user %d", ErrNotFound, userID)
	}
	return err
}

// LoadCredentials decrypts a user's stored connector credentials. A user
// with none stored gets an empty map.
func (s *UserService) LoadCredentials(ctx context.Context, userID int) (map[string]string, error) {
	if s.sealer == nil {
		return nil, auth.ErrSealKeyMissing
	}
	u, err := s.Get(ctx, userID)
	if err != nil {
		return nil, err
	}
	if len(u.SealedCredentials) == 0 {
		return map[string]string{}, nil
	}
	plain, err := s.sealer.Open(u.SealedCredentials)
	if err != nil {
		return nil, err
	}
	var creds map[string]string
	if err := json.Unmarshal(plain, &creds); err != nil {
		return nil, fmt.Errorf("corrupt sealed credentials for user %d: %w", userID, err)
	}
	return creds, nil
}
