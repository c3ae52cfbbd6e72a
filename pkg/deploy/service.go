package deploy

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/pkg/config"
	"github.com/oikos-sh/brigade/pkg/models"
	"github.com/oikos-sh/brigade/pkg/services"
)

// Service is the control-plane surface of the deployer: creation with the
// single-live-deployment guard, status, rollback, and deprovisioning.
type Service struct {
	db     *ent.Client
	engine *Engine
	cfg    *config.DeployConfig
}

// NewService creates a deploy Service.
func NewService(db *ent.Client, engine *Engine, cfg *config.DeployConfig) *Service {
	return &Service{db: db, engine: engine, cfg: cfg}
}

// Create starts a new rollout, or returns its dry-run plan. At most one
// non-terminal deployment may exist; force never overrides that guard.
func (s *Service) Create(ctx context.Context, req *models.CreateDeploymentRequest) (*models.DeploymentStatus, *models.DryRunResponse, error) {
	if req.Image == "" {
		return nil, nil, services.NewValidationError("image", "must not be empty")
	}
	maxParallel := req.MaxParallel
	if maxParallel <= 0 {
		maxParallel = s.cfg.DefaultMaxParallel
	}
	failureThreshold := req.FailureThreshold
	if failureThreshold <= 0 {
		failureThreshold = s.cfg.DefaultFailureThreshold
	}

	targets, err := s.db.Instance.Query().
		Where(instance.StatusEQ(instance.StatusActive)).
		Order(ent.Asc(instance.FieldDeployRing), ent.Asc(instance.FieldID)).
		All(ctx)
	if err != nil {
		return nil, nil, fmt.Errorf("failed to query active instances: %w", err)
	}

	if req.DryRun {
		return nil, &models.DryRunResponse{
			Image:     req.Image,
			DryRun:    true,
			Instances: instanceViews(targets),
		}, nil
	}

	dep, err := s.createGuarded(ctx, req.Image, maxParallel, failureThreshold, targets)
	if err != nil {
		return nil, nil, err
	}

	// The rollout runs in the background; callers poll GET for progress.
	go func() {
		if err := s.engine.Run(context.Background(), dep.ID); err != nil {
			slog.Error("Rollout failed", "deploy_id", dep.ID, "error", err)
		}
	}()

	status, err := s.Get(ctx, dep.ID)
	if err != nil {
		return nil, nil, err
	}
	return status, nil, nil
}

// createGuarded creates the deployment row and links its targets inside one
// transaction, rejecting creation while another deployment is live.
func (s *Service) createGuarded(ctx context.Context, image string, maxParallel, failureThreshold int, targets []*ent.Instance) (*ent.Deployment, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to start deployment transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	// The lock serializes concurrent creations so the liveness check below
	// cannot race.
	live, err := tx.Deployment.Query().
		Where(deployment.StatusIn(
			deployment.StatusPending,
			deployment.StatusInProgress,
			deployment.StatusPaused,
		)).
		ForUpdate().
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for live deployments: %w", err)
	}
	if live {
		return nil, fmt.Errorf("%w: another deployment is in progress or paused", services.ErrDeploymentActive)
	}

	dep, err := tx.Deployment.Create().
		SetID(GenerateDeployID()).
		SetImage(image).
		SetStatus(deployment.StatusPending).
		SetMaxParallel(maxParallel).
		SetFailureThreshold(failureThreshold).
		Save(ctx)
	if err != nil {
		// The partial unique index on live deployments backs the check above;
		// a constraint error here means a concurrent creator won the race.
		if ent.IsConstraintError(err) {
			return nil, fmt.Errorf("%w: another deployment is in progress or paused", services.ErrDeploymentActive)
		}
		return nil, fmt.Errorf("failed to create deployment: %w", err)
	}

	ids := make([]int, len(targets))
	for i, inst := range targets {
		ids[i] = inst.ID
	}
	if len(ids) > 0 {
		if _, err := tx.Instance.Update().
			Where(instance.IDIn(ids...)).
			SetDeployID(dep.ID).
			SetDeployState(instance.DeployStatePending).
			ClearDeployError().
			Save(ctx); err != nil {
			return nil, fmt.Errorf("failed to link target instances: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, fmt.Errorf("failed to commit deployment: %w", err)
	}
	slog.Info("Deployment created",
		"deploy_id", dep.ID, "image", image, "targets", len(targets))
	return dep, nil
}

// Get returns a deployment with its per-state instance counts.
func (s *Service) Get(ctx context.Context, id string) (*models.DeploymentStatus, error) {
	dep, err := s.db.Deployment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: deployment %s", services.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load deployment: %w", err)
	}

	instances, err := s.db.Instance.Query().
		Where(instance.DeployIDEQ(dep.ID)).
		Order(ent.Asc(instance.FieldDeployRing), ent.Asc(instance.FieldID)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to load deployment instances: %w", err)
	}

	status := &models.DeploymentStatus{
		ID:               dep.ID,
		Image:            dep.Image,
		Status:           string(dep.Status),
		MaxParallel:      dep.MaxParallel,
		FailureThreshold: dep.FailureThreshold,
		FailureCount:     dep.FailureCount,
		CreatedAt:        dep.CreatedAt,
		FinishedAt:       dep.FinishedAt,
		Counts:           countStates(instances),
		Instances:        instanceViews(instances),
	}
	if dep.Error != nil {
		status.Error = *dep.Error
	}
	return status, nil
}

// List returns all deployments, newest first.
func (s *Service) List(ctx context.Context) ([]*models.DeploymentStatus, error) {
	deps, err := s.db.Deployment.Query().
		Order(ent.Desc(deployment.FieldCreatedAt)).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to list deployments: %w", err)
	}

	out := make([]*models.DeploymentStatus, 0, len(deps))
	for _, dep := range deps {
		status := &models.DeploymentStatus{
			ID:               dep.ID,
			Image:            dep.Image,
			Status:           string(dep.Status),
			MaxParallel:      dep.MaxParallel,
			FailureThreshold: dep.FailureThreshold,
			FailureCount:     dep.FailureCount,
			CreatedAt:        dep.CreatedAt,
			FinishedAt:       dep.FinishedAt,
		}
		if dep.Error != nil {
			status.Error = *dep.Error
		}
		out = append(out, status)
	}
	return out, nil
}

// Rollback re-provisions a failed/paused deployment's failed instances to
// their shared last healthy image. All targeted instances must agree on that
// image; a mix is rejected.
func (s *Service) Rollback(ctx context.Context, id string) (*models.DeploymentStatus, error) {
	dep, err := s.db.Deployment.Get(ctx, id)
	if err != nil {
		if ent.IsNotFound(err) {
			return nil, fmt.Errorf("%w: deployment %s", services.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to load deployment: %w", err)
	}
	if dep.Status != deployment.StatusFailed && dep.Status != deployment.StatusPaused {
		return nil, services.NewValidationError("status",
			fmt.Sprintf("only failed or paused deployments can be rolled back, not %s", dep.Status))
	}

	otherLive, err := s.db.Deployment.Query().
		Where(
			deployment.IDNEQ(dep.ID),
			deployment.StatusIn(
				deployment.StatusPending,
				deployment.StatusInProgress,
				deployment.StatusPaused,
			),
		).
		Exist(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to check for live deployments: %w", err)
	}
	if otherLive {
		return nil, fmt.Errorf("%w: another deployment is in progress", services.ErrDeploymentActive)
	}

	failed, err := s.db.Instance.Query().
		Where(
			instance.DeployIDEQ(dep.ID),
			instance.DeployStateEQ(instance.DeployStateFailed),
		).
		All(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to query failed instances: %w", err)
	}
	if len(failed) == 0 {
		return nil, services.NewValidationError("instances", "no failed instances to roll back")
	}

	target, err := sharedLastHealthy(failed)
	if err != nil {
		return nil, err
	}

	for _, inst := range failed {
		if rerr := s.engine.rollbackInstance(ctx, inst, target); rerr != nil {
			slog.Error("Rollback failed for instance",
				"deploy_id", dep.ID, "instance", inst.Subdomain, "error", rerr)
			continue
		}
		if uerr := s.db.Instance.UpdateOneID(inst.ID).
			SetDeployState(instance.DeployStateRolledBack).
			SetStatus(instance.StatusActive).
			Exec(ctx); uerr != nil {
			slog.Error("Failed to record instance rollback",
				"deploy_id", dep.ID, "instance", inst.Subdomain, "error", uerr)
		}
	}

	return s.Get(ctx, dep.ID)
}

// sharedLastHealthy requires every failed instance to carry the same
// non-empty last healthy image.
func sharedLastHealthy(failed []*ent.Instance) (string, error) {
	var target string
	for _, inst := range failed {
		if inst.LastHealthyImage == nil || *inst.LastHealthyImage == "" {
			return "", services.NewValidationError("last_healthy_image",
				fmt.Sprintf("instance %s has no last healthy image", inst.Subdomain))
		}
		if target == "" {
			target = *inst.LastHealthyImage
			continue
		}
		if *inst.LastHealthyImage != target {
			return "", services.NewValidationError("last_healthy_image",
				"failed instances have different last healthy images")
		}
	}
	return target, nil
}

// Deprovision removes an instance's container and its row. Rejected while
// the instance is part of a live rollout.
func (s *Service) Deprovision(ctx context.Context, instanceID int) error {
	inst, err := s.db.Instance.Get(ctx, instanceID)
	if err != nil {
		if ent.IsNotFound(err) {
			return fmt.Errorf("%w: instance %d", services.ErrNotFound, instanceID)
		}
		return fmt.Errorf("failed to load instance: %w", err)
	}

	if inst.DeployState == instance.DeployStatePending || inst.DeployState == instance.DeployStateDeploying {
		if inst.DeployID != nil {
			dep, derr := s.db.Deployment.Get(ctx, *inst.DeployID)
			if derr == nil && models.DeploymentLive(string(dep.Status)) {
				return fmt.Errorf("%w: instance %s is part of deployment %s", services.ErrDeploymentActive, inst.Subdomain, dep.ID)
			}
		}
	}

	if err := s.db.Instance.UpdateOneID(inst.ID).
		SetStatus(instance.StatusDeprovisioning).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to mark instance deprovisioning: %w", err)
	}
	if err := s.engine.provisioner.Deprovision(ctx, inst.ContainerName); err != nil {
		return fmt.Errorf("failed to deprovision instance %s: %w", inst.Subdomain, err)
	}
	if err := s.db.Instance.DeleteOneID(inst.ID).Exec(ctx); err != nil {
		return fmt.Errorf("failed to delete instance row: %w", err)
	}
	slog.Info("Instance deprovisioned", "subdomain", inst.Subdomain)
	return nil
}

func countStates(instances []*ent.Instance) models.DeployCounts {
	var c models.DeployCounts
	for _, inst := range instances {
		switch inst.DeployState {
		case instance.DeployStatePending:
			c.Pending++
		case instance.DeployStateDeploying:
			c.InProgress++
		case instance.DeployStateSucceeded:
			c.Succeeded++
		case instance.DeployStateFailed:
			c.Failed++
		case instance.DeployStateRolledBack:
			c.RolledBack++
		case instance.DeployStateSkipped:
			c.Skipped++
		}
	}
	return c
}

func instanceViews(instances []*ent.Instance) []models.InstanceDeployView {
	out := make([]models.InstanceDeployView, 0, len(instances))
	for _, inst := range instances {
		v := models.InstanceDeployView{
			ID:          inst.ID,
			Subdomain:   inst.Subdomain,
			DeployRing:  inst.DeployRing,
			DeployState: string(inst.DeployState),
		}
		if inst.DeployError != nil {
			v.DeployError = *inst.DeployError
		}
		out = append(out, v)
	}
	return out
}
