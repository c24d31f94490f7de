package jobs

import (
	"context"
	"fmt"
	"strings"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/container"
	"github.com/codeready-toolchain/warden/ent/infostore"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/permissions"
	"github.com/codeready-toolchain/warden/pkg/sandbox"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/shell"
)

// Executor runs one approved job. Validate is called before evaluation so a
// malformed payload denies the job instead of failing it mid-execution.
// Execute returns the result data for Completed, or an error for Failed.
type Executor interface {
	Validate(j *ent.Job) error
	Execute(ctx context.Context, j *ent.Job) (string, error)
}

// Directory is the principal lookup/mutation surface the administrative
// executors need. Implemented by services.DirectoryService.
type Directory interface {
	GetAgent(ctx context.Context, agentID string) (*ent.Agent, error)
	CreateAgent(ctx context.Context, req models.CreateAgentRequest) (*ent.Agent, error)
	UpdateAgent(ctx context.Context, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error)
}

// Resources is the resource lookup/mutation surface the executors need.
// Implemented by services.ResourceService.
type Resources interface {
	GetContainer(ctx context.Context, containerID string) (*ent.Container, error)
	CreateContainer(ctx context.Context, name, path, description string, kind container.Kind) (*ent.Container, error)
	GetSystemUser(ctx context.Context, systemUserID string) (*ent.SystemUser, error)
	GetSkill(ctx context.Context, skillID string) (*ent.Skill, error)
	GetTask(ctx context.Context, taskID string) (*ent.Task, error)
	UpdateTask(ctx context.Context, taskID string, name *string, repeatIntervalSeconds, maxRetries *int) (*ent.Task, error)
	CreateInfoStore(ctx context.Context, req models.CreateInfoStoreRequest) (*ent.InfoStore, error)
	GetInfoStore(ctx context.Context, storeID string) (*ent.InfoStore, error)
}

// Registry dispatches jobs to executors by action kind. Transcription kinds
// are absent: the manager hands those to the transcription orchestrator.
type Registry struct {
	executors map[job.Action]Executor
}

// NewRegistry wires the built-in executors over the given collaborators.
func NewRegistry(directory Directory, resources Resources, compiler sandbox.Compiler, registrar sandbox.Registrar, runner shell.Runner) *Registry {
	r := &Registry{executors: make(map[job.Action]Executor)}

	r.Register(job.ActionExecuteAsSafeShell, &safeShellExecutor{resources: resources, compiler: compiler})
	r.Register(job.ActionUnsafeExecuteAsDangerousShell, &dangerousShellExecutor{resources: resources, runner: runner})
	r.Register(job.ActionCreateSubAgent, &createSubAgentExecutor{directory: directory})
	r.Register(job.ActionCreateContainer, &createContainerExecutor{resources: resources, registrar: registrar})
	r.Register(job.ActionManageAgent, &manageAgentExecutor{directory: directory})
	r.Register(job.ActionEditTask, &editTaskExecutor{resources: resources})
	r.Register(job.ActionEditAnyTask, &editTaskExecutor{resources: resources})
	r.Register(job.ActionAccessSkill, &accessSkillExecutor{resources: resources})
	r.Register(job.ActionRegisterInfoStore, &registerInfoStoreExecutor{resources: resources})

	for _, action := range []job.Action{
		job.ActionAccessWebsite,
		job.ActionQuerySearchEngine,
		job.ActionAccessLocalInfoStore,
		job.ActionAccessExternalInfoStore,
		job.ActionAccessContainer,
	} {
		r.Register(action, &accessExecutor{resources: resources, action: action})
	}

	return r
}

// Register binds an executor to an action kind, replacing any existing one.
func (r *Registry) Register(action job.Action, ex Executor) {
	r.executors[action] = ex
}

// Get returns the executor for an action kind.
func (r *Registry) Get(action job.Action) (Executor, bool) {
	ex, ok := r.executors[action]
	return ex, ok
}

// --- payload helpers ---

func strv(p *string) string {
	if p == nil {
		return ""
	}
	return *p
}

func payloadString(payload map[string]interface{}, key string) string {
	if payload == nil {
		return ""
	}
	if v, ok := payload[key].(string); ok {
		return v
	}
	return ""
}

// payloadInt reads an integer payload field. JSON numbers decode as float64.
func payloadInt(payload map[string]interface{}, key string) (int, bool) {
	if payload == nil {
		return 0, false
	}
	switch v := payload[key].(type) {
	case float64:
		return int(v), true
	case int:
		return v, true
	}
	return 0, false
}

// --- safe-DSL execution ---

type safeShellExecutor struct {
	resources Resources
	compiler  sandbox.Compiler
}

func (e *safeShellExecutor) Validate(j *ent.Job) error {
	if strings.TrimSpace(strv(j.Script)) == "" {
		return services.NewValidationError("script", "required")
	}
	if strv(j.ResourceID) == "" {
		return services.NewValidationError("resource_id", "required: names the sandbox container")
	}
	return nil
}

func (e *safeShellExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	c, err := e.resources.GetContainer(ctx, strv(j.ResourceID))
	if err != nil {
		return "", fmt.Errorf("loading container %s: %w", strv(j.ResourceID), err)
	}
	if c.Kind != container.KindSandboxedDsl {
		return "", fmt.Errorf("container %s is not a sandboxed DSL workspace", c.ID)
	}

	compiled, err := e.compiler.Compile(ctx, strv(j.Script), c.Path)
	if err != nil {
		return "", fmt.Errorf("compile failed: %w", err)
	}

	result, err := compiled.Execute(ctx)
	if err != nil {
		return "", fmt.Errorf("sandbox execution failed: %w", err)
	}

	summary := sandbox.Summarize(result)
	if !result.AllSucceeded {
		failure := sandbox.FirstFailure(result)
		return "", fmt.Errorf("step %d (%s) failed: %s\npartial output:\n%s",
			failure.Index+1, failure.Verb, failure.Error, summary)
	}
	return summary, nil
}

// --- dangerous shell ---

type dangerousShellExecutor struct {
	resources Resources
	runner    shell.Runner
}

func (e *dangerousShellExecutor) Validate(j *ent.Job) error {
	if j.ShellKind == "" {
		return services.NewValidationError("shell_kind", "required")
	}
	if err := job.ShellKindValidator(j.ShellKind); err != nil {
		return services.NewValidationError("shell_kind", fmt.Sprintf("unknown shell kind %q", j.ShellKind))
	}
	if strings.TrimSpace(strv(j.Script)) == "" {
		return services.NewValidationError("script", "required")
	}
	if strv(j.ResourceID) == "" {
		return services.NewValidationError("resource_id", "required: names the system user")
	}
	return nil
}

func (e *dangerousShellExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	su, err := e.resources.GetSystemUser(ctx, strv(j.ResourceID))
	if err != nil {
		return "", fmt.Errorf("loading system user %s: %w", strv(j.ResourceID), err)
	}

	// Working directory chain: job override, then the system user's working
	// directory, then its sandbox root, then the process working directory.
	workdir := strv(j.WorkingDirectory)
	if workdir == "" {
		workdir = strv(su.WorkingDirectory)
	}
	if workdir == "" {
		workdir = strv(su.SandboxRoot)
	}

	result, err := e.runner.Run(ctx, j.ShellKind, strv(j.Script), workdir)
	if err != nil {
		return "", err
	}
	if result.ExitCode != 0 {
		return "", fmt.Errorf("exit code %d: %s", result.ExitCode, strings.TrimSpace(result.Stderr))
	}
	return result.Stdout, nil
}

// --- administrative executors ---

type createSubAgentExecutor struct {
	directory Directory
}

func (e *createSubAgentExecutor) Validate(j *ent.Job) error {
	if payloadString(j.Payload, "name") == "" {
		return services.NewValidationError("payload.name", "required")
	}
	return nil
}

func (e *createSubAgentExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	creator, err := e.directory.GetAgent(ctx, j.AgentID)
	if err != nil {
		return "", fmt.Errorf("loading creating agent: %w", err)
	}

	// The sub-agent inherits the creator's role, and with it the same
	// permission set.
	created, err := e.directory.CreateAgent(ctx, models.CreateAgentRequest{
		Name:         payloadString(j.Payload, "name"),
		SystemPrompt: payloadString(j.Payload, "systemPrompt"),
		ModelID:      payloadString(j.Payload, "modelId"),
		RoleID:       strv(creator.RoleID),
	})
	if err != nil {
		return "", fmt.Errorf("creating sub-agent: %w", err)
	}
	return created.ID, nil
}

type createContainerExecutor struct {
	resources Resources
	registrar sandbox.Registrar
}

func (e *createContainerExecutor) Validate(j *ent.Job) error {
	if payloadString(j.Payload, "name") == "" {
		return services.NewValidationError("payload.name", "required")
	}
	if payloadString(j.Payload, "path") == "" {
		return services.NewValidationError("payload.path", "required")
	}
	return nil
}

func (e *createContainerExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	name := payloadString(j.Payload, "name")
	path := payloadString(j.Payload, "path")

	// Register with the provisioner first: a workspace that cannot be
	// provisioned must not be persisted as available.
	if err := e.registrar.Register(ctx, name, path); err != nil {
		return "", fmt.Errorf("registering sandbox workspace: %w", err)
	}

	created, err := e.resources.CreateContainer(ctx, name, path,
		payloadString(j.Payload, "description"), container.KindSandboxedDsl)
	if err != nil {
		return "", fmt.Errorf("persisting container: %w", err)
	}
	return created.ID, nil
}

type manageAgentExecutor struct {
	directory Directory
}

func (e *manageAgentExecutor) Validate(j *ent.Job) error {
	if strv(j.ResourceID) == "" {
		return services.NewValidationError("resource_id", "required: names the target agent")
	}
	return nil
}

func (e *manageAgentExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	var req models.UpdateAgentRequest
	if v := payloadString(j.Payload, "name"); v != "" {
		req.Name = &v
	}
	if v, ok := j.Payload["systemPrompt"].(string); ok {
		req.SystemPrompt = &v
	}
	if v := payloadString(j.Payload, "modelId"); v != "" {
		req.ModelID = &v
	}

	updated, err := e.directory.UpdateAgent(ctx, strv(j.ResourceID), req)
	if err != nil {
		return "", fmt.Errorf("updating agent %s: %w", strv(j.ResourceID), err)
	}
	return updated.ID, nil
}

type editTaskExecutor struct {
	resources Resources
}

func (e *editTaskExecutor) Validate(j *ent.Job) error {
	if strv(j.ResourceID) == "" {
		return services.NewValidationError("resource_id", "required: names the target task")
	}
	return nil
}

func (e *editTaskExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	var name *string
	if v := payloadString(j.Payload, "name"); v != "" {
		name = &v
	}
	var repeat, retries *int
	if v, ok := payloadInt(j.Payload, "repeatIntervalSeconds"); ok {
		repeat = &v
	}
	if v, ok := payloadInt(j.Payload, "maxRetries"); ok {
		retries = &v
	}

	updated, err := e.resources.UpdateTask(ctx, strv(j.ResourceID), name, repeat, retries)
	if err != nil {
		return "", fmt.Errorf("updating task %s: %w", strv(j.ResourceID), err)
	}
	return updated.ID, nil
}

type accessSkillExecutor struct {
	resources Resources
}

func (e *accessSkillExecutor) Validate(j *ent.Job) error {
	if strv(j.ResourceID) == "" {
		return services.NewValidationError("resource_id", "required: names the skill")
	}
	return nil
}

func (e *accessSkillExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	sk, err := e.resources.GetSkill(ctx, strv(j.ResourceID))
	if err != nil {
		return "", fmt.Errorf("loading skill %s: %w", strv(j.ResourceID), err)
	}
	return sk.Content, nil
}

type registerInfoStoreExecutor struct {
	resources Resources
}

func (e *registerInfoStoreExecutor) Validate(j *ent.Job) error {
	if payloadString(j.Payload, "name") == "" {
		return services.NewValidationError("payload.name", "required")
	}
	if payloadString(j.Payload, "location") == "" {
		return services.NewValidationError("payload.location", "required")
	}
	kind := payloadString(j.Payload, "kind")
	if kind != "" {
		if err := infostore.KindValidator(infostore.Kind(kind)); err != nil {
			return services.NewValidationError("payload.kind", fmt.Sprintf("unknown info store kind %q", kind))
		}
	}
	return nil
}

func (e *registerInfoStoreExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	kind := infostore.Kind(payloadString(j.Payload, "kind"))
	if kind == "" {
		kind = infostore.KindLocal
	}

	created, err := e.resources.CreateInfoStore(ctx, models.CreateInfoStoreRequest{
		Name:     payloadString(j.Payload, "name"),
		Kind:     kind,
		Location: payloadString(j.Payload, "location"),
	})
	if err != nil {
		return "", fmt.Errorf("registering info store: %w", err)
	}
	return created.ID, nil
}

// accessExecutor serves the authorization-recording access kinds. The job is
// the auditable authorization: the agent performs the actual access through
// its own tooling after completion. Resources with local persistence are
// verified to exist before the grant is recorded.
type accessExecutor struct {
	resources Resources
	action    job.Action
}

// Validate leaves the resource-presence check to the evaluator: a resourceless
// access job denies with the evaluator's ResourceId-required reason, and an
// approved verdict guarantees a resource before Execute runs.
func (e *accessExecutor) Validate(j *ent.Job) error {
	return nil
}

func (e *accessExecutor) Execute(ctx context.Context, j *ent.Job) (string, error) {
	resourceID := strv(j.ResourceID)

	switch e.action {
	case job.ActionAccessContainer:
		if _, err := e.resources.GetContainer(ctx, resourceID); err != nil {
			return "", fmt.Errorf("loading container %s: %w", resourceID, err)
		}
	case job.ActionAccessLocalInfoStore, job.ActionAccessExternalInfoStore:
		if _, err := e.resources.GetInfoStore(ctx, resourceID); err != nil {
			return "", fmt.Errorf("loading info store %s: %w", resourceID, err)
		}
	}
	// Websites and search engines have no local persistence to verify.

	category, _ := permissions.CategoryFor(e.action)
	return fmt.Sprintf("access granted: category=%s resource=%s", category, resourceID), nil
}
