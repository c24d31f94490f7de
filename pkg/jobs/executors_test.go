package jobs

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/container"
	"github.com/codeready-toolchain/warden/ent/infostore"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/sandbox"
	"github.com/codeready-toolchain/warden/pkg/services"
	"github.com/codeready-toolchain/warden/pkg/shell"
)

func ptr(s string) *string { return &s }

// --- fakes ---

type fakeDirectory struct {
	agents  map[string]*ent.Agent
	created []models.CreateAgentRequest
	updated map[string]models.UpdateAgentRequest
}

func newFakeDirectory() *fakeDirectory {
	return &fakeDirectory{
		agents:  make(map[string]*ent.Agent),
		updated: make(map[string]models.UpdateAgentRequest),
	}
}

func (d *fakeDirectory) GetAgent(_ context.Context, agentID string) (*ent.Agent, error) {
	a, ok := d.agents[agentID]
	if !ok {
		return nil, services.ErrNotFound
	}
	return a, nil
}

func (d *fakeDirectory) CreateAgent(_ context.Context, req models.CreateAgentRequest) (*ent.Agent, error) {
	d.created = append(d.created, req)
	a := &ent.Agent{ID: fmt.Sprintf("agent-%d", len(d.created)), Name: req.Name}
	if req.RoleID != "" {
		a.RoleID = ptr(req.RoleID)
	}
	d.agents[a.ID] = a
	return a, nil
}

func (d *fakeDirectory) UpdateAgent(_ context.Context, agentID string, req models.UpdateAgentRequest) (*ent.Agent, error) {
	a, ok := d.agents[agentID]
	if !ok {
		return nil, services.ErrNotFound
	}
	d.updated[agentID] = req
	return a, nil
}

type fakeResources struct {
	containers  map[string]*ent.Container
	systemUsers map[string]*ent.SystemUser
	skills      map[string]*ent.Skill
	tasks       map[string]*ent.Task
	stores      map[string]*ent.InfoStore

	createdStores []models.CreateInfoStoreRequest
	taskUpdates   map[string][]interface{}
}

func newFakeResources() *fakeResources {
	return &fakeResources{
		containers:  make(map[string]*ent.Container),
		systemUsers: make(map[string]*ent.SystemUser),
		skills:      make(map[string]*ent.Skill),
		tasks:       make(map[string]*ent.Task),
		stores:      make(map[string]*ent.InfoStore),
		taskUpdates: make(map[string][]interface{}),
	}
}

func (r *fakeResources) GetContainer(_ context.Context, id string) (*ent.Container, error) {
	c, ok := r.containers[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return c, nil
}

func (r *fakeResources) CreateContainer(_ context.Context, name, path, description string, kind container.Kind) (*ent.Container, error) {
	c := &ent.Container{ID: "container-new", Name: name, Path: path, Description: description, Kind: kind}
	r.containers[c.ID] = c
	return c, nil
}

func (r *fakeResources) GetSystemUser(_ context.Context, id string) (*ent.SystemUser, error) {
	su, ok := r.systemUsers[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return su, nil
}

func (r *fakeResources) GetSkill(_ context.Context, id string) (*ent.Skill, error) {
	sk, ok := r.skills[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return sk, nil
}

func (r *fakeResources) GetTask(_ context.Context, id string) (*ent.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return t, nil
}

func (r *fakeResources) UpdateTask(_ context.Context, id string, name *string, repeat, retries *int) (*ent.Task, error) {
	t, ok := r.tasks[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	r.taskUpdates[id] = []interface{}{name, repeat, retries}
	return t, nil
}

func (r *fakeResources) CreateInfoStore(_ context.Context, req models.CreateInfoStoreRequest) (*ent.InfoStore, error) {
	r.createdStores = append(r.createdStores, req)
	st := &ent.InfoStore{ID: "store-new", Name: req.Name, Kind: req.Kind, Location: req.Location}
	r.stores[st.ID] = st
	return st, nil
}

func (r *fakeResources) GetInfoStore(_ context.Context, id string) (*ent.InfoStore, error) {
	st, ok := r.stores[id]
	if !ok {
		return nil, services.ErrNotFound
	}
	return st, nil
}

type fakeRunner struct {
	result  *shell.Result
	err     error
	gotKind job.ShellKind
	gotDir  string
}

func (f *fakeRunner) Run(_ context.Context, kind job.ShellKind, _ string, workdir string) (*shell.Result, error) {
	f.gotKind = kind
	f.gotDir = workdir
	if f.err != nil {
		return nil, f.err
	}
	return f.result, nil
}

type fakeCompiled struct {
	result *sandbox.Result
	err    error
}

func (f *fakeCompiled) Execute(context.Context) (*sandbox.Result, error) {
	return f.result, f.err
}

type fakeCompiler struct {
	compiled   sandbox.Compiled
	compileErr error
}

func (f *fakeCompiler) Compile(_ context.Context, _, _ string) (sandbox.Compiled, error) {
	if f.compileErr != nil {
		return nil, f.compileErr
	}
	return f.compiled, nil
}

type fakeRegistrar struct {
	registered [][2]string
	err        error
}

func (f *fakeRegistrar) Register(_ context.Context, name, rootPath string) error {
	if f.err != nil {
		return f.err
	}
	f.registered = append(f.registered, [2]string{name, rootPath})
	return nil
}

// --- dangerous shell ---

func TestDangerousShellExecutor_WorkdirChain(t *testing.T) {
	tests := []struct {
		name        string
		jobDir      string
		userDir     string
		sandboxRoot string
		want        string
	}{
		{"job override wins", "/job", "/user", "/root-sb", "/job"},
		{"system user working dir", "", "/user", "/root-sb", "/user"},
		{"sandbox root fallback", "", "", "/root-sb", "/root-sb"},
		{"process cwd when nothing set", "", "", "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			resources := newFakeResources()
			su := &ent.SystemUser{ID: "su-1", Username: "runner"}
			if tt.userDir != "" {
				su.WorkingDirectory = ptr(tt.userDir)
			}
			if tt.sandboxRoot != "" {
				su.SandboxRoot = ptr(tt.sandboxRoot)
			}
			resources.systemUsers["su-1"] = su

			runner := &fakeRunner{result: &shell.Result{ExitCode: 0, Stdout: "ok"}}
			ex := &dangerousShellExecutor{resources: resources, runner: runner}

			j := &ent.Job{
				ID:         "j1",
				AgentID:    "a1",
				Action:     job.ActionUnsafeExecuteAsDangerousShell,
				ShellKind:  job.ShellKindBash,
				Script:     ptr("echo hi"),
				ResourceID: ptr("su-1"),
			}
			if tt.jobDir != "" {
				j.WorkingDirectory = ptr(tt.jobDir)
			}

			out, err := ex.Execute(context.Background(), j)
			require.NoError(t, err)
			assert.Equal(t, "ok", out)
			assert.Equal(t, tt.want, runner.gotDir)
			assert.Equal(t, job.ShellKindBash, runner.gotKind)
		})
	}
}

func TestDangerousShellExecutor_NonZeroExitFails(t *testing.T) {
	resources := newFakeResources()
	resources.systemUsers["su-1"] = &ent.SystemUser{ID: "su-1", Username: "runner"}
	runner := &fakeRunner{result: &shell.Result{ExitCode: 2, Stderr: "boom\n"}}
	ex := &dangerousShellExecutor{resources: resources, runner: runner}

	j := &ent.Job{
		ID: "j1", AgentID: "a1",
		Action: job.ActionUnsafeExecuteAsDangerousShell, ShellKind: job.ShellKindBash,
		Script: ptr("false"), ResourceID: ptr("su-1"),
	}
	_, err := ex.Execute(context.Background(), j)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "exit code 2")
	assert.Contains(t, err.Error(), "boom")
}

func TestDangerousShellExecutor_Validate(t *testing.T) {
	ex := &dangerousShellExecutor{}

	err := ex.Validate(&ent.Job{Script: ptr("x"), ResourceID: ptr("su-1")})
	require.Error(t, err) // no shell kind

	err = ex.Validate(&ent.Job{ShellKind: job.ShellKindBash, ResourceID: ptr("su-1")})
	require.Error(t, err) // no script

	err = ex.Validate(&ent.Job{ShellKind: job.ShellKindBash, Script: ptr("x")})
	require.Error(t, err) // no system user

	err = ex.Validate(&ent.Job{ShellKind: job.ShellKindBash, Script: ptr("x"), ResourceID: ptr("su-1")})
	assert.NoError(t, err)
}

// --- safe DSL ---

func TestSafeShellExecutor_Success(t *testing.T) {
	resources := newFakeResources()
	resources.containers["c1"] = &ent.Container{ID: "c1", Path: "/sb/c1", Kind: container.KindSandboxedDsl}

	compiler := &fakeCompiler{compiled: &fakeCompiled{result: &sandbox.Result{
		AllSucceeded:  true,
		Steps:         []sandbox.StepResult{{Index: 0, Verb: "fetch", Success: true, Attempts: 1}},
		TotalDuration: 120 * time.Millisecond,
	}}}
	ex := &safeShellExecutor{resources: resources, compiler: compiler}

	out, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionExecuteAsSafeShell,
		Script: ptr("fetch x"), ResourceID: ptr("c1"),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "1 step(s)")
	assert.Contains(t, out, "fetch: ok")
}

func TestSafeShellExecutor_StepFailure(t *testing.T) {
	resources := newFakeResources()
	resources.containers["c1"] = &ent.Container{ID: "c1", Path: "/sb/c1", Kind: container.KindSandboxedDsl}

	compiler := &fakeCompiler{compiled: &fakeCompiled{result: &sandbox.Result{
		AllSucceeded: false,
		Steps: []sandbox.StepResult{
			{Index: 0, Verb: "fetch", Success: true, Attempts: 1},
			{Index: 1, Verb: "write", Success: false, Attempts: 3, Error: "disk full"},
		},
	}}}
	ex := &safeShellExecutor{resources: resources, compiler: compiler}

	_, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionExecuteAsSafeShell,
		Script: ptr("fetch x; write y"), ResourceID: ptr("c1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "step 2 (write) failed: disk full")
	assert.Contains(t, err.Error(), "partial output")
}

func TestSafeShellExecutor_CompileError(t *testing.T) {
	resources := newFakeResources()
	resources.containers["c1"] = &ent.Container{ID: "c1", Path: "/sb/c1", Kind: container.KindSandboxedDsl}
	compiler := &fakeCompiler{compileErr: errors.New("syntax error at line 3")}
	ex := &safeShellExecutor{resources: resources, compiler: compiler}

	_, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionExecuteAsSafeShell,
		Script: ptr("??"), ResourceID: ptr("c1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "compile failed")
	assert.Contains(t, err.Error(), "syntax error at line 3")
}

func TestSafeShellExecutor_RejectsGenericContainer(t *testing.T) {
	resources := newFakeResources()
	resources.containers["c1"] = &ent.Container{ID: "c1", Path: "/sb/c1", Kind: container.KindGeneric}
	ex := &safeShellExecutor{resources: resources, compiler: &fakeCompiler{}}

	_, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionExecuteAsSafeShell,
		Script: ptr("fetch x"), ResourceID: ptr("c1"),
	})
	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a sandboxed DSL workspace")
}

// --- administrative executors ---

func TestCreateSubAgentExecutor_InheritsCreatorRole(t *testing.T) {
	directory := newFakeDirectory()
	directory.agents["a1"] = &ent.Agent{ID: "a1", Name: "parent", RoleID: ptr("role-1")}
	ex := &createSubAgentExecutor{directory: directory}

	id, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionCreateSubAgent,
		Payload: map[string]interface{}{
			"name": "child", "modelId": "m1", "systemPrompt": "be helpful",
		},
	})
	require.NoError(t, err)
	assert.NotEmpty(t, id)
	require.Len(t, directory.created, 1)
	assert.Equal(t, "child", directory.created[0].Name)
	assert.Equal(t, "role-1", directory.created[0].RoleID)
	assert.Equal(t, "m1", directory.created[0].ModelID)
}

func TestCreateContainerExecutor_RegistersBeforePersisting(t *testing.T) {
	resources := newFakeResources()
	registrar := &fakeRegistrar{}
	ex := &createContainerExecutor{resources: resources, registrar: registrar}

	id, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionCreateContainer,
		Payload: map[string]interface{}{"name": "ws", "path": "/sb/ws", "description": "scratch"},
	})
	require.NoError(t, err)
	assert.Equal(t, "container-new", id)
	require.Len(t, registrar.registered, 1)
	assert.Equal(t, [2]string{"ws", "/sb/ws"}, registrar.registered[0])
}

func TestCreateContainerExecutor_RegistrarFailureDoesNotPersist(t *testing.T) {
	resources := newFakeResources()
	registrar := &fakeRegistrar{err: errors.New("provisioner unreachable")}
	ex := &createContainerExecutor{resources: resources, registrar: registrar}

	_, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionCreateContainer,
		Payload: map[string]interface{}{"name": "ws", "path": "/sb/ws"},
	})
	require.Error(t, err)
	assert.Empty(t, resources.containers)
}

func TestEditTaskExecutor_NumericPayloadFields(t *testing.T) {
	resources := newFakeResources()
	resources.tasks["t1"] = &ent.Task{ID: "t1", Name: "nightly"}
	ex := &editTaskExecutor{resources: resources}

	// JSON numbers arrive as float64.
	_, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionEditTask, ResourceID: ptr("t1"),
		Payload: map[string]interface{}{"repeatIntervalSeconds": float64(3600), "maxRetries": float64(5)},
	})
	require.NoError(t, err)

	update := resources.taskUpdates["t1"]
	require.Len(t, update, 3)
	assert.Nil(t, update[0])
	assert.Equal(t, 3600, *update[1].(*int))
	assert.Equal(t, 5, *update[2].(*int))
}

func TestAccessSkillExecutor_ReturnsContent(t *testing.T) {
	resources := newFakeResources()
	resources.skills["sk1"] = &ent.Skill{ID: "sk1", Name: "triage", Content: "step one: look"}
	ex := &accessSkillExecutor{resources: resources}

	out, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionAccessSkill, ResourceID: ptr("sk1"),
	})
	require.NoError(t, err)
	assert.Equal(t, "step one: look", out)
}

func TestRegisterInfoStoreExecutor_DefaultsKindLocal(t *testing.T) {
	resources := newFakeResources()
	ex := &registerInfoStoreExecutor{resources: resources}

	_, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionRegisterInfoStore,
		Payload: map[string]interface{}{"name": "docs", "location": "/var/docs"},
	})
	require.NoError(t, err)
	require.Len(t, resources.createdStores, 1)
	assert.Equal(t, infostore.KindLocal, resources.createdStores[0].Kind)
}

// --- access kinds ---

func TestAccessExecutor_VerifiesLocalResources(t *testing.T) {
	resources := newFakeResources()
	resources.containers["c1"] = &ent.Container{ID: "c1", Kind: container.KindGeneric}
	ex := &accessExecutor{resources: resources, action: job.ActionAccessContainer}

	out, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionAccessContainer, ResourceID: ptr("c1"),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "category=container")
	assert.Contains(t, out, "resource=c1")

	_, err = ex.Execute(context.Background(), &ent.Job{
		ID: "j2", AgentID: "a1", Action: job.ActionAccessContainer, ResourceID: ptr("missing"),
	})
	require.Error(t, err)
	assert.ErrorIs(t, err, services.ErrNotFound)
}

func TestAccessExecutor_WebsiteNeedsNoLocalLookup(t *testing.T) {
	ex := &accessExecutor{resources: newFakeResources(), action: job.ActionAccessWebsite}

	out, err := ex.Execute(context.Background(), &ent.Job{
		ID: "j1", AgentID: "a1", Action: job.ActionAccessWebsite, ResourceID: ptr("site-1"),
	})
	require.NoError(t, err)
	assert.Contains(t, out, "category=website")
}

func TestRegistry_CoversAllNonTranscriptionActions(t *testing.T) {
	r := NewRegistry(newFakeDirectory(), newFakeResources(), &fakeCompiler{}, &fakeRegistrar{}, &fakeRunner{})

	actions := []job.Action{
		job.ActionCreateSubAgent, job.ActionCreateContainer, job.ActionRegisterInfoStore,
		job.ActionEditAnyTask, job.ActionExecuteAsSafeShell, job.ActionUnsafeExecuteAsDangerousShell,
		job.ActionAccessLocalInfoStore, job.ActionAccessExternalInfoStore, job.ActionAccessWebsite,
		job.ActionQuerySearchEngine, job.ActionAccessContainer, job.ActionManageAgent,
		job.ActionEditTask, job.ActionAccessSkill, job.ActionTranscribeFromAudioDevice,
		job.ActionTranscribeFromAudioStream, job.ActionTranscribeFromAudioFile,
	}
	for _, a := range actions {
		if isTranscriptionAction(a) {
			_, ok := r.Get(a)
			assert.False(t, ok, "transcription kind %s must not have an inline executor", a)
			continue
		}
		_, ok := r.Get(a)
		assert.True(t, ok, "missing executor for %s", a)
	}
}
