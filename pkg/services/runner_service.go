package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/enrolltoken"
	"github.com/oikos-sh/brigade/ent/runner"
	"github.com/oikos-sh/brigade/pkg/auth"
	"github.com/oikos-sh/brigade/pkg/models"
)

// enrollTokenTTL is how long a minted enrollment token stays redeemable.
const enrollTokenTTL = 24 * time.Hour

// RunnerService manages the runner registry: enrollment tokens, single-use
// registration, secret rotation, and revocation.
type RunnerService struct {
	db *ent.Client
}

// NewRunnerService creates a RunnerService.
func NewRunnerService(db *ent.Client) *RunnerService {
	return &RunnerService{db: db}
}

// MintEnrollToken creates a single-use registration token. The plaintext is
// returned once; only its salted hash is stored.
func (s *RunnerService) MintEnrollToken(ctx context.Context, createdBy int) (*models.EnrollTokenResponse, error) {
	token, err := auth.GenerateSecret(32)
	if err != nil {
		return nil, err
	}
	hash, err := auth.HashSecret(token)
	if err != nil {
		return nil, err
	}

	expiresAt := time.Now().Add(enrollTokenTTL)
	if _, err := s.db.EnrollToken.Create().
		SetTokenHash(hash).
		SetCreatedBy(createdBy).
		SetExpiresAt(expiresAt).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to store enroll token: %w", err)
	}

	return &models.EnrollTokenResponse{Token: token, ExpiresAt: expiresAt}, nil
}

// Register redeems an enrollment token and creates a runner. The token is
// consumed atomically: the used_at stamp is written with a guard on
// used_at IS NULL, so concurrent redemptions of the same token produce
// exactly one runner.
func (s *RunnerService) Register(ctx context.Context, req *models.RegisterRunnerRequest) (*models.RegisterRunnerResponse, error) {
	tok, err := s.findLiveToken(ctx, req.EnrollToken)
	if err != nil {
		return nil, err
	}

	secret, err := auth.GenerateSecret(32)
	if err != nil {
		return nil, err
	}
	secretHash, err := auth.HashSecret(secret)
	if err != nil {
		return nil, err
	}

	name := req.Name
	if name == "" {
		name = "runner-" + uuid.New().String()[:8]
	}

	create := s.db.Runner.Create().
		SetName(name).
		SetSecretHash(secretHash).
		SetStatus(runner.StatusOffline)
	if len(req.Labels) > 0 {
		create = create.SetLabels(req.Labels)
	}
	if len(req.Metadata) > 0 {
		create = create.SetMetadata(req.Metadata)
	}
	r, err := create.Save(ctx)
	if err != nil {
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: runner name %q", ErrAlreadyExists, name)
		}
		return nil, fmt.Errorf("failed to create runner: %w", err)
	}

	// Consume the token. The IS NULL guard makes double-spends lose.
	n, err := s.db.EnrollToken.Update().
		Where(
			enrolltoken.IDEQ(tok.ID),
			enrolltoken.UsedAtIsNil(),
		).
		SetUsedAt(time.Now()).
		SetRunnerID(r.ID).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to consume enroll token: %w", err)
	}
	if n == 0 {
		// Lost the race: roll the runner back and report the spent token
		if derr := s.db.Runner.DeleteOneID(r.ID).Exec(ctx); derr != nil {
			slog.Error("Failed to delete runner after token race", "runner_id", r.ID, "error", derr)
		}
		return nil, ErrTokenSpent
	}

	slog.Info("Runner registered", "runner_id", r.ID, "name", r.Name)
	return &models.RegisterRunnerResponse{
		RunnerID:     r.ID,
		Name:         r.Name,
		RunnerSecret: secret,
	}, nil
}

// RotateSecret issues a new secret for a runner and forces it offline until
// it reconnects with the new credential.
func (s *RunnerService) RotateSecret(ctx context.Context, runnerID int) (*models.RotateSecretResponse, error) {
	r, err := s.db.Runner.Get(ctx, runnerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: runner %d", ErrNotFound, runnerID)
		}
		return nil, fmt.Errorf("failed to load runner: %w", err)
	}
	if r.Status == runner.StatusRevoked {
		return nil, NewValidationError("status", "revoked runners cannot rotate secrets")
	}

	secret, err := auth.GenerateSecret(32)
	if err != nil {
		return nil, err
	}
	secretHash, err := auth.HashSecret(secret)
	if err != nil {
		return nil, err
	}

	r, err = s.db.Runner.UpdateOneID(r.ID).
		SetSecretHash(secretHash).
		SetStatus(runner.StatusOffline).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to rotate runner secret: %w", err)
	}

	slog.Info("Runner secret rotated", "runner_id", r.ID)
	return &models.RotateSecretResponse{
		RunnerID:     r.ID,
		RunnerSecret: secret,
		Status:       string(r.Status),
	}, nil
}

// Authenticate verifies a runner secret and stamps last_seen_at, moving the
// runner online. Revoked runners never authenticate.
func (s *RunnerService) Authenticate(ctx context.Context, runnerID int, secret string) (*ent.Runner, error) {
	r, err := s.db.Runner.Get(ctx, runnerID)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: runner %d", ErrNotFound, runnerID)
		}
		return nil, fmt.Errorf("failed to load runner: %w", err)
	}
	if r.Status == runner.StatusRevoked {
		return nil, fmt.Errorf("%w: runner %d is revoked", ErrAccessDenied, runnerID)
	}
	if !auth.VerifySecret(secret, r.SecretHash) {
		return nil, fmt.Errorf("%w: bad runner secret", ErrAccessDenied)
	}

	r, err = s.db.Runner.UpdateOneID(r.ID).
		SetStatus(runner.StatusOnline).
		SetLastSeenAt(time.Now()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to mark runner online: %w", err)
	}
	return r, nil
}

// Revoke permanently disables a runner.
func (s *RunnerService) Revoke(ctx context.Context, runnerID int) error {
	err := s.db.Runner.UpdateOneID(runnerID).
		SetStatus(runner.StatusRevoked).
		Exec(ctx)
	if ent.IsNotFound(err) {
		return fmt.Errorf("%w: runner %d", ErrNotFound, runnerID)
	}
	return err
}

// List returns all runners.
func (s *RunnerService) List(ctx context.Context) ([]*ent.Runner, error) {
	return s.db.Runner.Query().Order(ent.Asc(runner.FieldID)).All(ctx)
}

// findLiveToken scans unspent, unexpired tokens and verifies the presented
// plaintext against each salted hash. The per-token salt rules out a direct
// hash lookup.
func (s *RunnerService) findLiveToken(ctx context.Context, token string) (*ent.EnrollToken, error) {
	candidates, err := s.db.EnrollToken.Query().
		Where(
			enrolltoken.UsedAtIsNil(),
			enrolltoken.ExpiresAtGT(time.Now()),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query enroll tokens: %w", err)
	}
	for _, tok := range candidates {
		if auth.VerifySecret(token, tok.TokenHash) {
			return tok, nil
		}
	}
	return nil, ErrTokenSpent
}
