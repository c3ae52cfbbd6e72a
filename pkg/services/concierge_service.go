package services

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/oikos-sh/brigade/ent"
	"github.com/oikos-sh/brigade/ent/commisjob"
	"github.com/oikos-sh/brigade/ent/course"
	"github.com/oikos-sh/brigade/ent/fiche"
	"github.com/oikos-sh/brigade/ent/thread"
	"github.com/oikos-sh/brigade/ent/threadmessage"
	"github.com/oikos-sh/brigade/pkg/agent"
	"github.com/oikos-sh/brigade/pkg/artifact"
	"github.com/oikos-sh/brigade/pkg/events"
	"github.com/oikos-sh/brigade/pkg/models"
)

// conciergeSystemInstructions is the default system prompt for the per-user
// concierge fiche.
const conciergeSystemInstructions = `You are a concierge agent. You hold the conversation with your user, answer directly when you can, and delegate substantial background work to commis workers via the spawn_commis tool. When a commis result arrives, summarize it for the user in plain language.`

// ConciergeService owns the concierge lifecycle: the per-user durable
// concierge fiche and thread, chat course creation, commis spawning, course
// execution, and the resume path that unwedges waiting courses.
type ConciergeService struct {
	db        *ent.Client
	runner    *agent.FicheRunner
	events    *EventService
	artifacts *artifact.Store

	defaultModel string
}

// NewConciergeService creates a ConciergeService.
func NewConciergeService(db *ent.Client, runner *agent.FicheRunner, eventSvc *EventService, store *artifact.Store, defaultModel string) *ConciergeService {
	return &ConciergeService{
		db:           db,
		runner:       runner,
		events:       eventSvc,
		artifacts:    store,
		defaultModel: defaultModel,
	}
}

// GetOrCreateConcierge returns the owner's concierge fiche and thread,
// creating both on first use.
func (s *ConciergeService) GetOrCreateConcierge(ctx context.Context, ownerID int) (*ent.Fiche, *ent.Thread, error) {
	f, err := s.db.Fiche.Query().
		Where(fiche.OwnerIDEQ(ownerID), fiche.IsConcierge(true)).
		First(ctx)
	if ent.IsNotFound(err) {
		f, err = s.db.Fiche.Create().
			SetOwnerID(ownerID).
			SetName("Concierge").
			SetSystemInstructions(conciergeSystemInstructions).
			SetModel(s.defaultModel).
			SetIsConcierge(true).
			Save(ctx)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get or create concierge fiche: %w", err)
	}

	t, err := s.db.Thread.Query().
		Where(thread.FicheIDEQ(f.ID)).
		Order(ent.Asc(thread.FieldID)).
		First(ctx)
	if ent.IsNotFound(err) {
		t, err = s.db.Thread.Create().
			SetFicheID(f.ID).
			SetOwnerID(ownerID).
			SetTitle("Concierge").
			Save(ctx)
	}
	if err != nil {
		return nil, nil, fmt.Errorf("failed to get or create concierge thread: %w", err)
	}
	return f, t, nil
}

// Chat persists the user's message and enqueues a new course on the owner's
// concierge thread. The dispatcher picks the course up asynchronously.
func (s *ConciergeService) Chat(ctx context.Context, ownerID int, message string) (*models.ChatResponse, error) {
	if message == "" {
		return nil, NewValidationError("message", "must not be empty")
	}

	f, t, err := s.GetOrCreateConcierge(ctx, ownerID)
	if err != nil {
		return nil, err
	}

	if _, err := s.db.ThreadMessage.Create().
		SetThreadID(t.ID).
		SetRole(threadmessage.RoleUser).
		SetContent(message).
		Save(ctx); err != nil {
		return nil, fmt.Errorf("failed to persist user message: %w", err)
	}

	c, err := s.db.Course.Create().
		SetFicheID(f.ID).
		SetThreadID(t.ID).
		SetOwnerID(ownerID).
		SetStatus(course.StatusQueued).
		SetTrigger(course.TriggerAPI).
		SetCorrelationID(uuid.New().String()).
		Save(ctx)
	if err != nil {
		return nil, fmt.Errorf("failed to create course: %w", err)
	}

	s.emitCourseUpdated(ctx, c.ID, ownerID, string(c.Status), c.CorrelationID)
	return &models.ChatResponse{
		CourseID:      c.ID,
		CorrelationID: c.CorrelationID,
		Status:        string(c.Status),
	}, nil
}

// SpawnCommis enqueues a commis job for a suspending tool call and creates
// its artifact directory. Implements tools.CommisSpawner.
func (s *ConciergeService) SpawnCommis(ctx context.Context, courseID, ownerID int, toolCallID, task string, config map[string]interface{}) (int, string, error) {
	commisID, err := s.artifacts.Create(task, config, ownerID, "")
	if err != nil {
		return 0, "", fmt.Errorf("failed to create commis artifacts: %w", err)
	}

	if config == nil {
		config = map[string]interface{}{}
	}
	job, err := s.db.CommisJob.Create().
		SetOwnerID(ownerID).
		SetTask(task).
		SetModel(s.defaultModel).
		SetStatus(commisjob.StatusQueued).
		SetConciergeCourseID(courseID).
		SetToolCallID(toolCallID).
		SetCommisID(commisID).
		SetConfig(config).
		Save(ctx)
	if err != nil {
		return 0, "", fmt.Errorf("failed to enqueue commis job: %w", err)
	}

	s.events.Emit(ctx, courseID, ownerID, events.EventCommisSpawned, events.CommisSpawnedPayload{
		JobID:      job.ID,
		CommisID:   commisID,
		ToolCallID: toolCallID,
		Task:       task,
	}.Map())

	slog.Info("Commis job spawned",
		"job_id", job.ID, "commis_id", commisID, "course_id", courseID)
	return job.ID, commisID, nil
}

// ExecuteCourse runs one queued course to its next settlement point. Called
// by the dispatcher after claiming the course.
func (s *ConciergeService) ExecuteCourse(ctx context.Context, courseID int) error {
	c, err := s.db.Course.Get(ctx, courseID)
	if err != nil {
		return fmt.Errorf("failed to load course %d: %w", courseID, err)
	}
	f, err := s.db.Fiche.Get(ctx, c.FicheID)
	if err != nil {
		return fmt.Errorf("failed to load fiche %d: %w", c.FicheID, err)
	}

	result, err := s.runner.Run(ctx, c, f)
	return s.settle(ctx, c, result, err)
}

// ResumeWithCommisResult is the sole path that unwedges a WAITING course.
// The course row is locked FOR UPDATE; a course that is not waiting is
// skipped, making duplicate deliveries harmless.
func (s *ConciergeService) ResumeWithCommisResult(ctx context.Context, jobID int, jobStatus, result string) error {
	job, err := s.db.CommisJob.Get(ctx, jobID)
	if err != nil {
		return fmt.Errorf("failed to load commis job %d: %w", jobID, err)
	}
	if job.ConciergeCourseID == nil {
		slog.Info("Commis job has no concierge course, nothing to resume", "job_id", jobID)
		return nil
	}
	courseID := *job.ConciergeCourseID

	c, toolCallID, err := s.claimWaitingCourse(ctx, courseID, job)
	if err != nil {
		return err
	}
	if c == nil {
		return nil // skipped: not waiting, or unresolvable tool call
	}

	if jobStatus != models.JobSuccess {
		result = fmt.Sprintf("Commis job %s finished with status %s.\n\n%s", job.CommisID, jobStatus, result)
	}

	f, err := s.db.Fiche.Get(ctx, c.FicheID)
	if err != nil {
		return fmt.Errorf("failed to load fiche %d: %w", c.FicheID, err)
	}

	runResult, runErr := s.runner.RunContinuation(ctx, c, f, toolCallID, result)
	return s.settle(ctx, c, runResult, runErr)
}

// claimWaitingCourse atomically moves a waiting course to running and
// resolves the tool_call_id the continuation must answer. Returns (nil, "",
// nil) when the resume should be skipped, and marks the course failed when
// no tool_call_id can be resolved.
func (s *ConciergeService) claimWaitingCourse(ctx context.Context, courseID int, job *ent.CommisJob) (*ent.Course, string, error) {
	tx, err := s.db.Tx(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to start resume transaction: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	c, err := tx.Course.Query().
		Where(course.IDEQ(courseID)).
		ForUpdate().
		Only(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to lock course %d: %w", courseID, err)
	}

	if c.Status != course.StatusWaiting {
		slog.Info("Course not waiting, resume skipped",
			"course_id", courseID, "status", c.Status, "job_id", job.ID)
		return nil, "", nil
	}

	toolCallID, err := s.resolveToolCallID(ctx, tx, c, job)
	if err != nil {
		return nil, "", err
	}
	if toolCallID == "" {
		errMsg := "cannot resume: no tool_call_id on job or paused assistant message"
		if err := tx.Course.UpdateOneID(c.ID).
			SetStatus(course.StatusFailed).
			SetError(errMsg).
			SetFinishedAt(time.Now()).
			Exec(ctx); err != nil {
			return nil, "", fmt.Errorf("failed to fail unresumable course: %w", err)
		}
		if err := tx.Commit(); err != nil {
			return nil, "", fmt.Errorf("failed to commit resume failure: %w", err)
		}
		s.emitCourseUpdated(ctx, c.ID, c.OwnerID, string(course.StatusFailed), c.CorrelationID)
		slog.Error("Waiting course unresumable", "course_id", c.ID, "job_id", job.ID)
		return nil, "", nil
	}

	c, err = tx.Course.UpdateOneID(c.ID).
		SetStatus(course.StatusRunning).
		Save(ctx)
	if err != nil {
		return nil, "", fmt.Errorf("failed to move course to running: %w", err)
	}
	if err := tx.Commit(); err != nil {
		return nil, "", fmt.Errorf("failed to commit resume claim: %w", err)
	}

	s.emitCourseUpdated(ctx, c.ID, c.OwnerID, string(course.StatusRunning), c.CorrelationID)
	return c, toolCallID, nil
}

// resolveToolCallID prefers the id recorded on the job; as a fallback it
// reads the paused assistant message and takes its spawn_commis call.
func (s *ConciergeService) resolveToolCallID(ctx context.Context, tx *ent.Tx, c *ent.Course, job *ent.CommisJob) (string, error) {
	if job.ToolCallID != nil && *job.ToolCallID != "" {
		return *job.ToolCallID, nil
	}
	if c.AssistantMessageID == nil {
		return "", nil
	}
	msg, err := tx.ThreadMessage.Get(ctx, *c.AssistantMessageID)
	if err != nil {
		if ent.IsNotFound(err) {
			return "", nil
		}
		return "", fmt.Errorf("failed to load paused assistant message: %w", err)
	}
	for _, tc := range models.ToolCallsFromMaps(msg.ToolCalls) {
		if tc.Name == "spawn_commis" {
			return tc.ID, nil
		}
	}
	return "", nil
}

// settle writes the course's post-run state from the tagged run result.
func (s *ConciergeService) settle(ctx context.Context, c *ent.Course, result *agent.RunResult, runErr error) error {
	// Run errors and cancellations settle as failed/cancelled
	if runErr != nil {
		status := course.StatusFailed
		if ctx.Err() != nil {
			status = course.StatusCancelled
		}
		if err := s.db.Course.UpdateOneID(c.ID).
			SetStatus(status).
			SetError(runErr.Error()).
			SetFinishedAt(time.Now()).
			Exec(context.WithoutCancel(ctx)); err != nil {
			return fmt.Errorf("failed to settle failed course: %w", err)
		}
		s.events.Emit(context.WithoutCancel(ctx), c.ID, c.OwnerID, events.EventError, map[string]interface{}{
			"message": runErr.Error(),
		})
		s.emitCourseUpdated(context.WithoutCancel(ctx), c.ID, c.OwnerID, string(status), c.CorrelationID)
		return runErr
	}

	if result.Kind == agent.ResultSuspended {
		if err := s.db.Course.UpdateOneID(c.ID).
			SetStatus(course.StatusWaiting).
			SetAssistantMessageID(result.AssistantMessageID).
			Exec(ctx); err != nil {
			return fmt.Errorf("failed to park waiting course: %w", err)
		}
		s.emitCourseUpdated(ctx, c.ID, c.OwnerID, string(course.StatusWaiting), c.CorrelationID)
		return nil
	}

	summary := result.Content
	if err := s.db.Course.UpdateOneID(c.ID).
		SetStatus(course.StatusSuccess).
		SetSummary(summary).
		SetFinishedAt(time.Now()).
		Exec(ctx); err != nil {
		return fmt.Errorf("failed to settle successful course: %w", err)
	}
	s.emitCourseUpdated(ctx, c.ID, c.OwnerID, string(course.StatusSuccess), c.CorrelationID)
	return nil
}

// emitCourseUpdated broadcasts a status transition on the course channel
// (and the owner's user channel).
func (s *ConciergeService) emitCourseUpdated(ctx context.Context, courseID, ownerID int, status, correlationID string) {
	s.events.Emit(ctx, courseID, ownerID, events.EventCourseUpdated, events.CourseUpdatedPayload{
		CourseID:      courseID,
		Status:        status,
		CorrelationID: correlationID,
	}.Map())
}
