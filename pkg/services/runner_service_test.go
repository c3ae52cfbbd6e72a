package services_test

import (
	"context"
	"fmt"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/services"
	testdb "github.com/oikos-sh/brigade/test/database"
)

func TestRunnerEnrollmentLifecycle(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := services.NewRunnerService(client.Client)

	minted, err := svc.MintEnrollToken(ctx, 1)
	require.NoError(t, err)
	require.NotEmpty(t, minted.Token)

	reg, err := svc.Register(ctx, &models.RegisterRunnerRequest{
		EnrollToken: minted.Token,
		Name:        "edge-runner-1",
		Labels:      map[string]string{"zone": "eu-west"},
	})
	require.NoError(t, err)
	assert.Equal(t, "edge-runner-1", reg.Name)
	require.NotEmpty(t, reg.RunnerSecret)

	// The token is single-use
	_, err = svc.Register(ctx, &models.RegisterRunnerRequest{EnrollToken: minted.Token})
	require.ErrorIs(t, err, services.ErrTokenSpent)

	// The plaintext secret authenticates and brings the runner online
	r, err := svc.Authenticate(ctx, reg.RunnerID, reg.RunnerSecret)
	require.NoError(t, err)
	assert.Equal(t, "online", string(r.Status))
	assert.NotNil(t, r.LastSeenAt)

	_, err = svc.Authenticate(ctx, reg.RunnerID, "not-the-secret")
	require.ErrorIs(t, err, services.ErrAccessDenied)
}

func TestRunnerRotateSecret(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := services.NewRunnerService(client.Client)

	reg := registerRunner(t, svc, "rotator")

	rotated, err := svc.RotateSecret(ctx, reg.RunnerID)
	require.NoError(t, err)
	require.NotEmpty(t, rotated.RunnerSecret)
	assert.NotEqual(t, reg.RunnerSecret, rotated.RunnerSecret)
	assert.Equal(t, "offline", rotated.Status)

	// Old secret is dead, new one works
	_, err = svc.Authenticate(ctx, reg.RunnerID, reg.RunnerSecret)
	require.ErrorIs(t, err, services.ErrAccessDenied)
	_, err = svc.Authenticate(ctx, reg.RunnerID, rotated.RunnerSecret)
	require.NoError(t, err)
}

func TestRunnerRevoke(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := services.NewRunnerService(client.Client)

	reg := registerRunner(t, svc, "doomed")
	require.NoError(t, svc.Revoke(ctx, reg.RunnerID))

	_, err := svc.Authenticate(ctx, reg.RunnerID, reg.RunnerSecret)
	require.ErrorIs(t, err, services.ErrAccessDenied)

	_, err = svc.RotateSecret(ctx, reg.RunnerID)
	assert.True(t, services.IsValidationError(err), "rotate on a revoked runner: %v", err)

	_, err = svc.RotateSecret(ctx, 99999)
	require.ErrorIs(t, err, services.ErrNotFound)
}

func TestRegisterRejectsGarbageToken(t *testing.T) {
	client := testdb.NewTestClient(t)
	svc := services.NewRunnerService(client.Client)

	_, err := svc.Register(context.Background(), &models.RegisterRunnerRequest{EnrollToken: "bogus"})
	require.ErrorIs(t, err, services.ErrTokenSpent)
}

func TestRegisterDuplicateName(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := services.NewRunnerService(client.Client)

	registerRunner(t, svc, "twin")

	minted, err := svc.MintEnrollToken(ctx, 1)
	require.NoError(t, err)
	_, err = svc.Register(ctx, &models.RegisterRunnerRequest{EnrollToken: minted.Token, Name: "twin"})
	require.ErrorIs(t, err, services.ErrAlreadyExists)
}

func TestRegisterConcurrentSingleWinner(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()
	svc := services.NewRunnerService(client.Client)

	minted, err := svc.MintEnrollToken(ctx, 1)
	require.NoError(t, err)

	const racers = 8
	var wg sync.WaitGroup
	errs := make([]error, racers)
	for i := 0; i < racers; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			_, errs[i] = svc.Register(ctx, &models.RegisterRunnerRequest{
				EnrollToken: minted.Token,
				Name:        fmt.Sprintf("racer-%d", i),
			})
		}(i)
	}
	wg.Wait()

	winners := 0
	for _, err := range errs {
		if err == nil {
			winners++
		} else {
			require.ErrorIs(t, err, services.ErrTokenSpent)
		}
	}
	assert.Equal(t, 1, winners)

	// The losers rolled their runner rows back
	count, err := client.Runner.Query().Count(ctx)
	require.NoError(t, err)
	assert.Equal(t, 1, count)
}

func registerRunner(t *testing.T, svc *services.RunnerService, name string) *models.RegisterRunnerResponse {
	t.Helper()
	ctx := context.Background()
	minted, err := svc.MintEnrollToken(ctx, 1)
	require.NoError(t, err)
	reg, err := svc.Register(ctx, &models.RegisterRunnerRequest{EnrollToken: minted.Token, Name: name})
	require.NoError(t, err)
	return reg
}
