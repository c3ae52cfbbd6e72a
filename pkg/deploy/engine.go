package deploy

import (
	"context"
	"fmt"
	"log/slog"
	"sort"
	"sync"
	"time"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/deployment"
	"github.com/oikos-sh/brigade/ent/instance"
	"github.com/oikos-sh/brigade/pkg/config"
)

// Engine drives one deployment at a time: ring-ordered, cohorts of
// max_parallel, halting when the failure budget is spent.
type Engine struct {
	db          *ent.Client
	provisioner Provisioner
	cfg         *config.DeployConfig
}

// NewEngine creates an Engine.
func NewEngine(db *ent.Client, provisioner Provisioner, cfg *config.DeployConfig) *Engine {
	return &Engine{db: db, provisioner: provisioner, cfg: cfg}
}

// Run executes the rollout for a pending deployment to a terminal status:
// completed (all succeeded), paused (failure budget spent), or failed (image
// pull or pre-flight failure).
func (e *Engine) Run(ctx context.Context, deployID string) error {
	dep, err := e.db.Deployment.Get(ctx, deployID)
	if err != nil {
		return fmt.Errorf("failed to load deployment %s: %w", deployID, err)
	}

	log := slog.With("deploy_id", dep.ID, "image", dep.Image)
	log.Info("Starting rollout",
		"max_parallel", dep.MaxParallel, "failure_threshold", dep.FailureThreshold)

	if err := e.db.Deployment.UpdateOneID(dep.ID).
		SetStatus(deployment.StatusInProgress).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to start deployment: %w", err)
	}

	// One pull for the whole rollout; a pull failure fails the deployment
	// before any instance is touched.
	digest, err := e.provisioner.PullImage(ctx, dep.Image)
	if err != nil {
		log.Error("Image pull failed, aborting rollout", "error", err)
		return e.abort(ctx, dep, fmt.Sprintf("image pull failed: %v", err))
	}

	targets, err := e.db.Instance.Query().
		Where(
			instance.DeployIDEQ(dep.ID),
			instance.DeployStateEQ(instance.DeployStatePending),
		).
		Order(ent.Asc(instance.FieldDeployRing), ent.Asc(instance.FieldID)).
		All(ctx)
	if err != nil {
		return e.abort(ctx, dep, fmt.Sprintf("failed to query target instances: %v", err))
	}

	budgetSpent := false
	for _, ring := range ringOrder(targets) {
		if budgetSpent {
			break
		}
		ringInstances := byRing(targets, ring)
		log.Info("Deploying ring", "ring", ring, "instances", len(ringInstances))

		for start := 0; start < len(ringInstances); start += dep.MaxParallel {
			end := start + dep.MaxParallel
			if end > len(ringInstances) {
				end = len(ringInstances)
			}
			e.deployCohort(ctx, dep, ringInstances[start:end], digest)

			spent, err := e.budgetSpent(ctx, dep)
			if err != nil {
				return e.abort(ctx, dep, fmt.Sprintf("failed to check failure budget: %v", err))
			}
			if spent {
				budgetSpent = true
				break
			}
		}
	}

	return e.finish(ctx, dep, budgetSpent)
}

// deployCohort rolls one cohort concurrently and waits for all of it.
func (e *Engine) deployCohort(ctx context.Context, dep *ent.Deployment, cohort []*ent.Instance, digest string) {
	var wg sync.WaitGroup
	for _, inst := range cohort {
		wg.Add(1)
		go func(inst *ent.Instance) {
			defer wg.Done()
			e.deployInstance(ctx, dep, inst, digest)
		}(inst)
	}
	wg.Wait()
}

// deployInstance drives one instance: provision, health wait, and on health
// failure a rollback attempt to the last healthy image. Every non-succeeded
// outcome increments the deployment's failure count.
func (e *Engine) deployInstance(ctx context.Context, dep *ent.Deployment, inst *ent.Instance, digest string) {
	log := slog.With("deploy_id", dep.ID, "instance", inst.Subdomain)

	if err := e.db.Instance.UpdateOneID(inst.ID).
		SetDeployState(instance.DeployStateDeploying).
		Exec(ctx); err != nil {
		log.Error("Failed to mark instance deploying", "error", err)
		e.recordFailure(ctx, dep, inst, instance.DeployStateFailed, err.Error())
		return
	}

	err := e.provisioner.Provision(ctx, inst.ContainerName, inst.Subdomain, dep.Image)
	if err == nil {
		err = e.waitHealthy(ctx, inst.Subdomain)
	}
	if err == nil {
		update := e.db.Instance.UpdateOneID(inst.ID).
			SetDeployState(instance.DeployStateSucceeded).
			SetCurrentImage(dep.Image).
			SetLastHealthyImage(dep.Image).
			SetLastHealthAt(time.Now()).
			ClearDeployError()
		if digest != "" {
			update = update.SetImageDigest(digest)
		}
		if uerr := update.Exec(ctx); uerr != nil {
			log.Error("Failed to mark instance succeeded", "error", uerr)
		}
		log.Info("Instance deployed")
		return
	}

	log.Warn("Instance deploy unhealthy", "error", err)

	// Rollback only when a distinct last healthy image exists; re-deploying
	// the same image would reproduce the failure.
	if inst.LastHealthyImage != nil && *inst.LastHealthyImage != dep.Image {
		rerr := e.rollbackInstance(ctx, inst, *inst.LastHealthyImage)
		if rerr == nil {
			e.recordFailure(ctx, dep, inst, instance.DeployStateRolledBack, err.Error())
			log.Info("Instance rolled back", "image", *inst.LastHealthyImage)
			return
		}
		log.Error("Instance rollback failed", "error", rerr)
	}

	// No rollback possible or rollback unhealthy: the instance is down
	e.recordFailure(ctx, dep, inst, instance.DeployStateFailed, err.Error())
	if uerr := e.db.Instance.UpdateOneID(inst.ID).
		SetStatus(instance.StatusFailed).
		Exec(ctx); uerr != nil {
		log.Error("Failed to mark instance down", "error", uerr)
	}
}

// rollbackInstance re-provisions the previous image and requires it to come
// back healthy.
func (e *Engine) rollbackInstance(ctx context.Context, inst *ent.Instance, image string) error {
	if err := e.provisioner.Provision(ctx, inst.ContainerName, inst.Subdomain, image); err != nil {
		return err
	}
	if err := e.waitHealthy(ctx, inst.Subdomain); err != nil {
		return err
	}
	return e.db.Instance.UpdateOneID(inst.ID).
		SetCurrentImage(image).
		SetLastHealthAt(time.Now()).
		Exec(ctx)
}

// recordFailure writes the instance's terminal deploy state and increments
// the deployment failure count.
func (e *Engine) recordFailure(ctx context.Context, dep *ent.Deployment, inst *ent.Instance, state instance.DeployState, errMsg string) {
	if err := e.db.Instance.UpdateOneID(inst.ID).
		SetDeployState(state).
		SetDeployError(errMsg).
		Exec(ctx); err != nil {
		slog.Error("Failed to record instance deploy failure",
			"deploy_id", dep.ID, "instance", inst.Subdomain, "error", err)
	}
	if err := e.db.Deployment.UpdateOneID(dep.ID).
		AddFailureCount(1).
		Exec(ctx); err != nil {
		slog.Error("Failed to increment deployment failure count",
			"deploy_id", dep.ID, "error", err)
	}
}

// waitHealthy polls the instance's health until success or the configured
// timeout.
func (e *Engine) waitHealthy(ctx context.Context, subdomain string) error {
	deadline := time.Now().Add(e.cfg.HealthTimeout)
	var lastErr error
	for time.Now().Before(deadline) {
		if err := ctx.Err(); err != nil {
			return err
		}
		if lastErr = e.provisioner.CheckHealth(ctx, subdomain); lastErr == nil {
			return nil
		}
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-time.After(e.cfg.HealthInterval):
		}
	}
	return fmt.Errorf("instance %s not healthy within %v: %w", subdomain, e.cfg.HealthTimeout, lastErr)
}

// budgetSpent reports whether the failure budget has been reached.
func (e *Engine) budgetSpent(ctx context.Context, dep *ent.Deployment) (bool, error) {
	current, err := e.db.Deployment.Get(ctx, dep.ID)
	if err != nil {
		return false, err
	}
	return current.FailureCount >= current.FailureThreshold, nil
}

// finish settles the deployment: paused when the budget was spent (remaining
// pending instances become skipped but keep their deploy link), completed
// otherwise.
func (e *Engine) finish(ctx context.Context, dep *ent.Deployment, budgetSpent bool) error {
	if budgetSpent {
		if _, err := e.db.Instance.Update().
			Where(
				instance.DeployIDEQ(dep.ID),
				instance.DeployStateEQ(instance.DeployStatePending),
			).
			SetDeployState(instance.DeployStateSkipped).
			Save(ctx); err != nil {
			return fmt.Errorf("failed to skip remaining instances: %w", err)
		}
		if err := e.db.Deployment.UpdateOneID(dep.ID).
			SetStatus(deployment.StatusPaused).
			SetError("failure threshold reached").
			SetFinishedAt(time.Now()).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to pause deployment: %w", err)
		}
		slog.Warn("Rollout paused, failure budget spent", "deploy_id", dep.ID)
		return nil
	}

	if err := e.db.Deployment.UpdateOneID(dep.ID).
		SetStatus(deployment.StatusCompleted).
		SetFinishedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to complete deployment: %w", err)
	}
	slog.Info("Rollout completed", "deploy_id", dep.ID)
	return nil
}

// abort fails the deployment before (or without) touching further instances;
// targeted pending instances are skipped.
func (e *Engine) abort(ctx context.Context, dep *ent.Deployment, errMsg string) error {
	if _, err := e.db.Instance.Update().
		Where(
			instance.DeployIDEQ(dep.ID),
			instance.DeployStateEQ(instance.DeployStatePending),
		).
		SetDeployState(instance.DeployStateSkipped).
		Save(ctx); err != nil {
		slog.Error("Failed to skip instances on abort", "deploy_id", dep.ID, "error", err)
	}
	if err := e.db.Deployment.UpdateOneID(dep.ID).
		SetStatus(deployment.StatusFailed).
		SetError(errMsg).
		SetFinishedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to fail deployment: %w", err)
	}
	return fmt.Errorf("deployment %s failed: %s", dep.ID, errMsg)
}

// ringOrder returns the distinct rings present, ascending.
func ringOrder(instances []*ent.Instance) []int {
	seen := map[int]bool{}
	var rings []int
	for _, inst := range instances {
		if !seen[inst.DeployRing] {
			seen[inst.DeployRing] = true
			rings = append(rings, inst.DeployRing)
		}
	}
	sort.Ints(rings)
	return rings
}

func byRing(instances []*ent.Instance, ring int) []*ent.Instance {
	var out []*ent.Instance
	for _, inst := range instances {
		if inst.DeployRing == ring {
			out = append(out, inst)
		}
	}
	return out
}
