// Package permissions implements the clearance model: the two-dimensional
// check of what the acting agent's permission set allows and who may approve
// when approval is required.
package permissions

import (
	"github.com/codeready-toolchain/warden/ent"
	"github.com/codeready-toolchain/warden/ent/grant"
	"github.com/codeready-toolchain/warden/ent/job"
)

// resourceCategories maps each per-resource action kind to the grant
// category its evaluation reads. Transcription stream/file kinds evaluate
// under the audio-device category with the stream/file identifier as the
// resource id.
var resourceCategories = map[job.Action]grant.Category{
	job.ActionExecuteAsSafeShell:            grant.CategorySafeShell,
	job.ActionUnsafeExecuteAsDangerousShell: grant.CategoryDangerousShell,
	job.ActionAccessLocalInfoStore:          grant.CategoryLocalInfoStore,
	job.ActionAccessExternalInfoStore:       grant.CategoryExternalInfoStore,
	job.ActionAccessWebsite:                 grant.CategoryWebsite,
	job.ActionQuerySearchEngine:             grant.CategorySearchEngine,
	job.ActionAccessContainer:               grant.CategoryContainer,
	job.ActionManageAgent:                   grant.CategoryAgent,
	job.ActionEditTask:                      grant.CategoryTask,
	job.ActionAccessSkill:                   grant.CategorySkill,
	job.ActionTranscribeFromAudioDevice:     grant.CategoryAudioDevice,
	job.ActionTranscribeFromAudioStream:     grant.CategoryAudioDevice,
	job.ActionTranscribeFromAudioFile:       grant.CategoryAudioDevice,
}

// globalFlags maps each resourceless action kind to the permission-set flag
// it requires.
var globalFlags = map[job.Action]func(*ent.PermissionSet) bool{
	job.ActionCreateSubAgent:    func(s *ent.PermissionSet) bool { return s.AllowCreateSubAgent },
	job.ActionCreateContainer:   func(s *ent.PermissionSet) bool { return s.AllowCreateContainer },
	job.ActionRegisterInfoStore: func(s *ent.PermissionSet) bool { return s.AllowRegisterInfoStore },
	job.ActionEditAnyTask:       func(s *ent.PermissionSet) bool { return s.AllowEditAnyTask },
}

// CategoryFor returns the grant category a per-resource action evaluates
// against. ok is false for global-flag actions.
func CategoryFor(action job.Action) (grant.Category, bool) {
	c, ok := resourceCategories[action]
	return c, ok
}

// IsGlobalFlagAction reports whether the action is resourceless and gated by
// a permission-set flag.
func IsGlobalFlagAction(action job.Action) bool {
	_, ok := globalFlags[action]
	return ok
}

// hasGlobalFlag reports whether the set carries the flag for a global-flag
// action.
func hasGlobalFlag(set *ent.PermissionSet, action job.Action) bool {
	f, ok := globalFlags[action]
	return ok && f(set)
}
