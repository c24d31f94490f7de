// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/codeready-toolchain/warden/ent/agent"
	"github.com/codeready-toolchain/warden/ent/channel"
	"github.com/codeready-toolchain/warden/ent/channelcontext"
	"github.com/codeready-toolchain/warden/ent/chatmessage"
	"github.com/codeready-toolchain/warden/ent/container"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/infostore"
	"github.com/codeready-toolchain/warden/ent/job"
	"github.com/codeready-toolchain/warden/ent/joblogentry"
	"github.com/codeready-toolchain/warden/ent/permissionset"
	"github.com/codeready-toolchain/warden/ent/providermodel"
	"github.com/codeready-toolchain/warden/ent/role"
	"github.com/codeready-toolchain/warden/ent/schema"
	"github.com/codeready-toolchain/warden/ent/skill"
	"github.com/codeready-toolchain/warden/ent/systemuser"
	"github.com/codeready-toolchain/warden/ent/task"
	"github.com/codeready-toolchain/warden/ent/transcriptionsegment"
	"github.com/codeready-toolchain/warden/ent/user"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	agentFields := schema.Agent{}.Fields()
	_ = agentFields
	// agentDescCreatedAt is the schema descriptor for created_at field.
	agentDescCreatedAt := agentFields[5].Descriptor()
	// agent.DefaultCreatedAt holds the default value on creation for the created_at field.
	agent.DefaultCreatedAt = agentDescCreatedAt.Default.(func() time.Time)
	// agentDescUpdatedAt is the schema descriptor for updated_at field.
	agentDescUpdatedAt := agentFields[6].Descriptor()
	// agent.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	agent.DefaultUpdatedAt = agentDescUpdatedAt.Default.(func() time.Time)
	// agent.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	agent.UpdateDefaultUpdatedAt = agentDescUpdatedAt.UpdateDefault.(func() time.Time)
	channelFields := schema.Channel{}.Fields()
	_ = channelFields
	// channelDescCreatedAt is the schema descriptor for created_at field.
	channelDescCreatedAt := channelFields[5].Descriptor()
	// channel.DefaultCreatedAt holds the default value on creation for the created_at field.
	channel.DefaultCreatedAt = channelDescCreatedAt.Default.(func() time.Time)
	channelcontextFields := schema.ChannelContext{}.Fields()
	_ = channelcontextFields
	// channelcontextDescCreatedAt is the schema descriptor for created_at field.
	channelcontextDescCreatedAt := channelcontextFields[3].Descriptor()
	// channelcontext.DefaultCreatedAt holds the default value on creation for the created_at field.
	channelcontext.DefaultCreatedAt = channelcontextDescCreatedAt.Default.(func() time.Time)
	chatmessageFields := schema.ChatMessage{}.Fields()
	_ = chatmessageFields
	// chatmessageDescCreatedAt is the schema descriptor for created_at field.
	chatmessageDescCreatedAt := chatmessageFields[4].Descriptor()
	// chatmessage.DefaultCreatedAt holds the default value on creation for the created_at field.
	chatmessage.DefaultCreatedAt = chatmessageDescCreatedAt.Default.(func() time.Time)
	containerFields := schema.Container{}.Fields()
	_ = containerFields
	// containerDescCreatedAt is the schema descriptor for created_at field.
	containerDescCreatedAt := containerFields[5].Descriptor()
	// container.DefaultCreatedAt holds the default value on creation for the created_at field.
	container.DefaultCreatedAt = containerDescCreatedAt.Default.(func() time.Time)
	grantFields := schema.Grant{}.Fields()
	_ = grantFields
	// grantDescIsDefault is the schema descriptor for is_default field.
	grantDescIsDefault := grantFields[5].Descriptor()
	// grant.DefaultIsDefault holds the default value on creation for the is_default field.
	grant.DefaultIsDefault = grantDescIsDefault.Default.(bool)
	// grantDescCreatedAt is the schema descriptor for created_at field.
	grantDescCreatedAt := grantFields[6].Descriptor()
	// grant.DefaultCreatedAt holds the default value on creation for the created_at field.
	grant.DefaultCreatedAt = grantDescCreatedAt.Default.(func() time.Time)
	infostoreFields := schema.InfoStore{}.Fields()
	_ = infostoreFields
	// infostoreDescCreatedAt is the schema descriptor for created_at field.
	infostoreDescCreatedAt := infostoreFields[4].Descriptor()
	// infostore.DefaultCreatedAt holds the default value on creation for the created_at field.
	infostore.DefaultCreatedAt = infostoreDescCreatedAt.Default.(func() time.Time)
	jobFields := schema.Job{}.Fields()
	_ = jobFields
	// jobDescCreatedAt is the schema descriptor for created_at field.
	jobDescCreatedAt := jobFields[19].Descriptor()
	// job.DefaultCreatedAt holds the default value on creation for the created_at field.
	job.DefaultCreatedAt = jobDescCreatedAt.Default.(func() time.Time)
	joblogentryFields := schema.JobLogEntry{}.Fields()
	_ = joblogentryFields
	// joblogentryDescCreatedAt is the schema descriptor for created_at field.
	joblogentryDescCreatedAt := joblogentryFields[5].Descriptor()
	// joblogentry.DefaultCreatedAt holds the default value on creation for the created_at field.
	joblogentry.DefaultCreatedAt = joblogentryDescCreatedAt.Default.(func() time.Time)
	permissionsetFields := schema.PermissionSet{}.Fields()
	_ = permissionsetFields
	// permissionsetDescAllowCreateSubAgent is the schema descriptor for allow_create_sub_agent field.
	permissionsetDescAllowCreateSubAgent := permissionsetFields[2].Descriptor()
	// permissionset.DefaultAllowCreateSubAgent holds the default value on creation for the allow_create_sub_agent field.
	permissionset.DefaultAllowCreateSubAgent = permissionsetDescAllowCreateSubAgent.Default.(bool)
	// permissionsetDescAllowCreateContainer is the schema descriptor for allow_create_container field.
	permissionsetDescAllowCreateContainer := permissionsetFields[3].Descriptor()
	// permissionset.DefaultAllowCreateContainer holds the default value on creation for the allow_create_container field.
	permissionset.DefaultAllowCreateContainer = permissionsetDescAllowCreateContainer.Default.(bool)
	// permissionsetDescAllowRegisterInfoStore is the schema descriptor for allow_register_info_store field.
	permissionsetDescAllowRegisterInfoStore := permissionsetFields[4].Descriptor()
	// permissionset.DefaultAllowRegisterInfoStore holds the default value on creation for the allow_register_info_store field.
	permissionset.DefaultAllowRegisterInfoStore = permissionsetDescAllowRegisterInfoStore.Default.(bool)
	// permissionsetDescAllowEditAnyTask is the schema descriptor for allow_edit_any_task field.
	permissionsetDescAllowEditAnyTask := permissionsetFields[5].Descriptor()
	// permissionset.DefaultAllowEditAnyTask holds the default value on creation for the allow_edit_any_task field.
	permissionset.DefaultAllowEditAnyTask = permissionsetDescAllowEditAnyTask.Default.(bool)
	// permissionsetDescAllowLocalhostBrowser is the schema descriptor for allow_localhost_browser field.
	permissionsetDescAllowLocalhostBrowser := permissionsetFields[6].Descriptor()
	// permissionset.DefaultAllowLocalhostBrowser holds the default value on creation for the allow_localhost_browser field.
	permissionset.DefaultAllowLocalhostBrowser = permissionsetDescAllowLocalhostBrowser.Default.(bool)
	// permissionsetDescAllowLocalhostCli is the schema descriptor for allow_localhost_cli field.
	permissionsetDescAllowLocalhostCli := permissionsetFields[7].Descriptor()
	// permissionset.DefaultAllowLocalhostCli holds the default value on creation for the allow_localhost_cli field.
	permissionset.DefaultAllowLocalhostCli = permissionsetDescAllowLocalhostCli.Default.(bool)
	// permissionsetDescCreatedAt is the schema descriptor for created_at field.
	permissionsetDescCreatedAt := permissionsetFields[8].Descriptor()
	// permissionset.DefaultCreatedAt holds the default value on creation for the created_at field.
	permissionset.DefaultCreatedAt = permissionsetDescCreatedAt.Default.(func() time.Time)
	// permissionsetDescUpdatedAt is the schema descriptor for updated_at field.
	permissionsetDescUpdatedAt := permissionsetFields[9].Descriptor()
	// permissionset.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	permissionset.DefaultUpdatedAt = permissionsetDescUpdatedAt.Default.(func() time.Time)
	// permissionset.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	permissionset.UpdateDefaultUpdatedAt = permissionsetDescUpdatedAt.UpdateDefault.(func() time.Time)
	providermodelFields := schema.ProviderModel{}.Fields()
	_ = providermodelFields
	// providermodelDescCreatedAt is the schema descriptor for created_at field.
	providermodelDescCreatedAt := providermodelFields[6].Descriptor()
	// providermodel.DefaultCreatedAt holds the default value on creation for the created_at field.
	providermodel.DefaultCreatedAt = providermodelDescCreatedAt.Default.(func() time.Time)
	roleFields := schema.Role{}.Fields()
	_ = roleFields
	// roleDescCreatedAt is the schema descriptor for created_at field.
	roleDescCreatedAt := roleFields[4].Descriptor()
	// role.DefaultCreatedAt holds the default value on creation for the created_at field.
	role.DefaultCreatedAt = roleDescCreatedAt.Default.(func() time.Time)
	skillFields := schema.Skill{}.Fields()
	_ = skillFields
	// skillDescCreatedAt is the schema descriptor for created_at field.
	skillDescCreatedAt := skillFields[3].Descriptor()
	// skill.DefaultCreatedAt holds the default value on creation for the created_at field.
	skill.DefaultCreatedAt = skillDescCreatedAt.Default.(func() time.Time)
	systemuserFields := schema.SystemUser{}.Fields()
	_ = systemuserFields
	// systemuserDescCreatedAt is the schema descriptor for created_at field.
	systemuserDescCreatedAt := systemuserFields[4].Descriptor()
	// systemuser.DefaultCreatedAt holds the default value on creation for the created_at field.
	systemuser.DefaultCreatedAt = systemuserDescCreatedAt.Default.(func() time.Time)
	taskFields := schema.Task{}.Fields()
	_ = taskFields
	// taskDescRepeatIntervalSeconds is the schema descriptor for repeat_interval_seconds field.
	taskDescRepeatIntervalSeconds := taskFields[2].Descriptor()
	// task.DefaultRepeatIntervalSeconds holds the default value on creation for the repeat_interval_seconds field.
	task.DefaultRepeatIntervalSeconds = taskDescRepeatIntervalSeconds.Default.(int)
	// taskDescMaxRetries is the schema descriptor for max_retries field.
	taskDescMaxRetries := taskFields[3].Descriptor()
	// task.DefaultMaxRetries holds the default value on creation for the max_retries field.
	task.DefaultMaxRetries = taskDescMaxRetries.Default.(int)
	// taskDescCreatedAt is the schema descriptor for created_at field.
	taskDescCreatedAt := taskFields[4].Descriptor()
	// task.DefaultCreatedAt holds the default value on creation for the created_at field.
	task.DefaultCreatedAt = taskDescCreatedAt.Default.(func() time.Time)
	// taskDescUpdatedAt is the schema descriptor for updated_at field.
	taskDescUpdatedAt := taskFields[5].Descriptor()
	// task.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	task.DefaultUpdatedAt = taskDescUpdatedAt.Default.(func() time.Time)
	// task.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	task.UpdateDefaultUpdatedAt = taskDescUpdatedAt.UpdateDefault.(func() time.Time)
	transcriptionsegmentFields := schema.TranscriptionSegment{}.Fields()
	_ = transcriptionsegmentFields
	// transcriptionsegmentDescCapturedAt is the schema descriptor for captured_at field.
	transcriptionsegmentDescCapturedAt := transcriptionsegmentFields[7].Descriptor()
	// transcriptionsegment.DefaultCapturedAt holds the default value on creation for the captured_at field.
	transcriptionsegment.DefaultCapturedAt = transcriptionsegmentDescCapturedAt.Default.(func() time.Time)
	userFields := schema.User{}.Fields()
	_ = userFields
	// userDescCreatedAt is the schema descriptor for created_at field.
	userDescCreatedAt := userFields[4].Descriptor()
	// user.DefaultCreatedAt holds the default value on creation for the created_at field.
	user.DefaultCreatedAt = userDescCreatedAt.Default.(func() time.Time)
}
