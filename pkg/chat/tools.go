package chat

import (
	"encoding/json"
	"fmt"

	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/pkg/models"
	"github.com/codeready-toolchain/warden/pkg/provider"
)

// toolActions is the fixed tool-name to action-kind table. Tool names are
// the action enum values; a model-invented name never reaches submission.
var toolActions = map[string]job.Action{
	"create_sub_agent":                  job.ActionCreateSubAgent,
	"create_container":                  job.ActionCreateContainer,
	"register_info_store":               job.ActionRegisterInfoStore,
	"edit_any_task":                     job.ActionEditAnyTask,
	"execute_as_safe_shell":             job.ActionExecuteAsSafeShell,
	"unsafe_execute_as_dangerous_shell": job.ActionUnsafeExecuteAsDangerousShell,
	"access_local_info_store":           job.ActionAccessLocalInfoStore,
	"access_external_info_store":        job.ActionAccessExternalInfoStore,
	"access_website":                    job.ActionAccessWebsite,
	"query_search_engine":               job.ActionQuerySearchEngine,
	"access_container":                  job.ActionAccessContainer,
	"manage_agent":                      job.ActionManageAgent,
	"edit_task":                         job.ActionEditTask,
	"access_skill":                      job.ActionAccessSkill,
	"transcribe_from_audio_device":      job.ActionTranscribeFromAudioDevice,
	"transcribe_from_audio_stream":      job.ActionTranscribeFromAudioStream,
	"transcribe_from_audio_file":        job.ActionTranscribeFromAudioFile,
}

// resourceArgSchema is the common shape of per-resource tools.
const resourceArgSchema = `{"type":"object","properties":{"resource_id":{"type":"string","description":"Target resource id; omitted to use the channel default"}}}`

const shellArgSchema = `{"type":"object","properties":{"resource_id":{"type":"string"},"script":{"type":"string"},"shell_kind":{"type":"string","enum":["bash","powershell_cross_platform","command_prompt_windows","git_subcommand"]},"working_directory":{"type":"string"}},"required":["script"]}`

const safeShellArgSchema = `{"type":"object","properties":{"resource_id":{"type":"string"},"script":{"type":"string"}},"required":["script"]}`

const transcribeArgSchema = `{"type":"object","properties":{"resource_id":{"type":"string"},"transcription_model_id":{"type":"string"},"language":{"type":"string"}},"required":["transcription_model_id"]}`

const adminArgSchema = `{"type":"object","properties":{"name":{"type":"string"}},"additionalProperties":true}`

// toolDefinitions is the table offered to the model each round.
var toolDefinitions = []provider.ToolDefinition{
	{Name: "execute_as_safe_shell", Description: "Run a script in the sandboxed DSL shell of a sandbox container.", ParametersSchema: safeShellArgSchema},
	{Name: "unsafe_execute_as_dangerous_shell", Description: "Run a script in an unrestricted native shell as a system user.", ParametersSchema: shellArgSchema},
	{Name: "access_website", Description: "Access a registered website.", ParametersSchema: resourceArgSchema},
	{Name: "query_search_engine", Description: "Query a registered search engine.", ParametersSchema: resourceArgSchema},
	{Name: "access_container", Description: "Access a registered container.", ParametersSchema: resourceArgSchema},
	{Name: "access_local_info_store", Description: "Read a local information store.", ParametersSchema: resourceArgSchema},
	{Name: "access_external_info_store", Description: "Read an external information store.", ParametersSchema: resourceArgSchema},
	{Name: "access_skill", Description: "Load a registered skill's content.", ParametersSchema: resourceArgSchema},
	{Name: "create_sub_agent", Description: "Create a sub-agent inheriting the creator's role.", ParametersSchema: adminArgSchema},
	{Name: "create_container", Description: "Register and persist a new container.", ParametersSchema: adminArgSchema},
	{Name: "register_info_store", Description: "Register a new information store.", ParametersSchema: adminArgSchema},
	{Name: "manage_agent", Description: "Update an existing agent.", ParametersSchema: resourceArgSchema},
	{Name: "edit_task", Description: "Edit a task the agent holds a grant for.", ParametersSchema: resourceArgSchema},
	{Name: "edit_any_task", Description: "Edit any task (requires the global flag).", ParametersSchema: resourceArgSchema},
	{Name: "transcribe_from_audio_device", Description: "Start live transcription from an audio device.", ParametersSchema: transcribeArgSchema},
	{Name: "transcribe_from_audio_stream", Description: "Start live transcription from an audio stream.", ParametersSchema: transcribeArgSchema},
	{Name: "transcribe_from_audio_file", Description: "Transcribe an audio file.", ParametersSchema: transcribeArgSchema},
}

// submissionFromToolCall translates a model tool call into a job submission.
// Well-known argument keys map to typed request fields; the remainder rides
// in the administrative payload.
func submissionFromToolCall(call provider.ToolCall, agentID, channelID, sessionUserID string) (models.SubmitJobRequest, error) {
	action, ok := toolActions[call.Name]
	if !ok {
		return models.SubmitJobRequest{}, fmt.Errorf("unknown tool %q", call.Name)
	}

	args := map[string]any{}
	if call.Arguments != "" {
		if err := json.Unmarshal([]byte(call.Arguments), &args); err != nil {
			return models.SubmitJobRequest{}, fmt.Errorf("tool %q: malformed arguments: %w", call.Name, err)
		}
	}

	req := models.SubmitJobRequest{
		AgentID:       agentID,
		ChannelID:     channelID,
		Caller:        models.AgentCaller(agentID),
		Action:        action,
		SessionUserID: sessionUserID,
	}

	take := func(key string) string {
		v, ok := args[key].(string)
		if ok {
			delete(args, key)
		}
		return v
	}
	req.ResourceID = take("resource_id")
	req.Script = take("script")
	req.WorkingDirectory = take("working_directory")
	req.TranscriptionModelID = take("transcription_model_id")
	req.Language = take("language")
	if kind := take("shell_kind"); kind != "" {
		req.ShellKind = job.ShellKind(kind)
	}
	if len(args) > 0 {
		req.Payload = args
	}
	return req, nil
}
