package deploy_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/pkg/config"
	"github.com/oikos-sh/brigade/pkg/deploy"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/services"
	testdb "github.com/oikos-sh/brigade/test/database"
)

// fakeProvisioner simulates the data-plane provisioner. Health is keyed by
// the image last provisioned onto a subdomain, so rollbacks to a good image
// recover.
type fakeProvisioner struct {
	mu            sync.Mutex
	pullErr       error
	badImages     map[string]bool
	current       map[string]string
	deprovisioned []string
}

func newFakeProvisioner() *fakeProvisioner {
	return &fakeProvisioner{
		badImages: map[string]bool{},
		current:   map[string]string{},
	}
}

func (f *fakeProvisioner) PullImage(_ context.Context, image string) (string, error) {
	if f.pullErr != nil {
		return "", f.pullErr
	}
	return "sha256:" + image, nil
}

func (f *fakeProvisioner) Provision(_ context.Context, _, subdomain, image string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.current[subdomain] = image
	return nil
}

func (f *fakeProvisioner) CheckHealth(_ context.Context, subdomain string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	if f.badImages[f.current[subdomain]] {
		return errors.New("health check failed")
	}
	return nil
}

func (f *fakeProvisioner) Deprovision(_ context.Context, containerName string) error {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.deprovisioned = append(f.deprovisioned, containerName)
	return nil
}

func testDeployConfig() *config.DeployConfig {
	return &config.DeployConfig{
		DefaultMaxParallel:      2,
		DefaultFailureThreshold: 1,
		HealthTimeout:           200 * time.Millisecond,
		HealthInterval:          20 * time.Millisecond,
	}
}

func seedDeployment(t *testing.T, db *ent.Client, image string, maxParallel, threshold int) *ent.Deployment {
	t.Helper()
	dep, err := db.Deployment.Create().
		SetID(deploy.GenerateDeployID()).
		SetImage(image).
		SetMaxParallel(maxParallel).
		SetFailureThreshold(threshold).
		Save(context.Background())
	require.NoError(t, err)
	return dep
}

func seedInstance(t *testing.T, db *ent.Client, subdomain string, ring int, depID string) *ent.Instance {
	t.Helper()
	create := db.Instance.Create().
		SetSubdomain(subdomain).
		SetContainerName("tenant-" + subdomain).
		SetDeployRing(ring)
	if depID != "" {
		create = create.SetDeployID(depID).SetDeployState(instance.DeployStatePending)
	}
	inst, err := create.Save(context.Background())
	require.NoError(t, err)
	return inst
}

func TestEngineRolloutCompletes(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	engine := deploy.NewEngine(client.Client, prov, testDeployConfig())

	dep := seedDeployment(t, client.Client, "app:2", 2, 1)
	seedInstance(t, client.Client, "alpha", 0, dep.ID)
	seedInstance(t, client.Client, "beta", 0, dep.ID)
	seedInstance(t, client.Client, "gamma", 1, dep.ID)

	require.NoError(t, engine.Run(ctx, dep.ID))

	got, err := client.Deployment.Get(ctx, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, deployment.StatusCompleted, got.Status)
	assert.Equal(t, 0, got.FailureCount)
	assert.NotNil(t, got.FinishedAt)

	rows, err := client.Instance.Query().All(ctx)
	require.NoError(t, err)
	for _, inst := range rows {
		assert.Equal(t, instance.DeployStateSucceeded, inst.DeployState, inst.Subdomain)
		assert.Equal(t, "app:2", inst.CurrentImage)
		require.NotNil(t, inst.LastHealthyImage)
		assert.Equal(t, "app:2", *inst.LastHealthyImage)
		require.NotNil(t, inst.ImageDigest)
		assert.Equal(t, "sha256:app:2", *inst.ImageDigest)
	}
}

func TestEngineFailureBudgetPausesRollout(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	prov.badImages["app:2"] = true
	engine := deploy.NewEngine(client.Client, prov, testDeployConfig())

	dep := seedDeployment(t, client.Client, "app:2", 1, 1)
	first := seedInstance(t, client.Client, "alpha", 0, dep.ID)
	second := seedInstance(t, client.Client, "beta", 1, dep.ID)

	require.NoError(t, engine.Run(ctx, dep.ID))

	got, err := client.Deployment.Get(ctx, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, deployment.StatusPaused, got.Status)
	assert.Equal(t, 1, got.FailureCount)
	require.NotNil(t, got.Error)
	assert.Contains(t, *got.Error, "failure threshold")

	firstRow, err := client.Instance.Get(ctx, first.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateFailed, firstRow.DeployState)
	assert.Equal(t, instance.StatusFailed, firstRow.Status)

	// The untouched target keeps its deploy link but never deploys.
	secondRow, err := client.Instance.Get(ctx, second.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateSkipped, secondRow.DeployState)
	require.NotNil(t, secondRow.DeployID)
	assert.Equal(t, dep.ID, *secondRow.DeployID)
}

func TestEngineRollsBackToLastHealthyImage(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	prov.badImages["app:2"] = true
	engine := deploy.NewEngine(client.Client, prov, testDeployConfig())

	// Threshold 2: the rolled-back instance spends one failure but the
	// rollout still completes.
	dep := seedDeployment(t, client.Client, "app:2", 1, 2)
	inst := seedInstance(t, client.Client, "alpha", 0, dep.ID)
	require.NoError(t, client.Instance.UpdateOneID(inst.ID).
		SetCurrentImage("app:1").
		SetLastHealthyImage("app:1").
		Exec(ctx))

	require.NoError(t, engine.Run(ctx, dep.ID))

	got, err := client.Deployment.Get(ctx, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, deployment.StatusCompleted, got.Status)
	assert.Equal(t, 1, got.FailureCount)

	row, err := client.Instance.Get(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateRolledBack, row.DeployState)
	assert.Equal(t, "app:1", row.CurrentImage)
	assert.Equal(t, instance.StatusActive, row.Status)
}

func TestEnginePullFailureFailsDeployment(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	prov.pullErr = errors.New("manifest unknown")
	engine := deploy.NewEngine(client.Client, prov, testDeployConfig())

	dep := seedDeployment(t, client.Client, "app:missing", 1, 1)
	inst := seedInstance(t, client.Client, "alpha", 0, dep.ID)

	err := engine.Run(ctx, dep.ID)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "image pull failed")

	got, err := client.Deployment.Get(ctx, dep.ID)
	require.NoError(t, err)
	assert.Equal(t, deployment.StatusFailed, got.Status)

	// No instance was touched by the provisioner.
	row, err := client.Instance.Get(ctx, inst.ID)
	require.NoError(t, err)
	assert.Equal(t, instance.DeployStateSkipped, row.DeployState)
	assert.Empty(t, prov.current)
}

func TestServiceDryRunDoesNotMutate(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	cfg := testDeployConfig()
	svc := deploy.NewService(client.Client, deploy.NewEngine(client.Client, prov, cfg), cfg)

	seedInstance(t, client.Client, "alpha", 1, "")
	seedInstance(t, client.Client, "beta", 0, "")

	status, dryRun, err := svc.Create(ctx, &models.CreateDeploymentRequest{Image: "app:2", DryRun: true})
	require.NoError(t, err)
	assert.Nil(t, status)
	require.NotNil(t, dryRun)
	assert.True(t, dryRun.DryRun)
	require.Len(t, dryRun.Instances, 2)
	// Ring order
	assert.Equal(t, "beta", dryRun.Instances[0].Subdomain)
	assert.Equal(t, "alpha", dryRun.Instances[1].Subdomain)

	count, err := client.Deployment.Query().Count(ctx)
	require.NoError(t, err)
	assert.Zero(t, count)
}

func TestServiceRejectsConcurrentDeployment(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	cfg := testDeployConfig()
	svc := deploy.NewService(client.Client, deploy.NewEngine(client.Client, prov, cfg), cfg)

	seedDeployment(t, client.Client, "app:1", 1, 1) // live (pending)
	seedInstance(t, client.Client, "alpha", 0, "")

	_, _, err := svc.Create(ctx, &models.CreateDeploymentRequest{Image: "app:2"})
	require.ErrorIs(t, err, services.ErrDeploymentActive)
}

func TestServiceDeprovision(t *testing.T) {
	client := testdb.NewTestClient(t)
	ctx := context.Background()

	prov := newFakeProvisioner()
	cfg := testDeployConfig()
	svc := deploy.NewService(client.Client, deploy.NewEngine(client.Client, prov, cfg), cfg)

	idle := seedInstance(t, client.Client, "alpha", 0, "")
	require.NoError(t, svc.Deprovision(ctx, idle.ID))
	assert.Equal(t, []string{"tenant-alpha"}, prov.deprovisioned)

	exists, err := client.Instance.Query().Where(instance.IDEQ(idle.ID)).Exist(ctx)
	require.NoError(t, err)
	assert.False(t, exists)

	// Mid-deploy instances cannot be deprovisioned.
	dep := seedDeployment(t, client.Client, "app:2", 1, 1)
	busy := seedInstance(t, client.Client, "beta", 0, dep.ID)
	err = svc.Deprovision(ctx, busy.ID)
	require.ErrorIs(t, err, services.ErrDeploymentActive)
}
