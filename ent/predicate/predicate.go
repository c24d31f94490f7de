// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// Agent is the predicate function for agent builders.
type Agent func(*sql.Selector)

// Channel is the predicate function for channel builders.
type Channel func(*sql.Selector)

// ChannelContext is the predicate function for channelcontext builders.
type ChannelContext func(*sql.Selector)

// ChatMessage is the predicate function for chatmessage builders.
type ChatMessage func(*sql.Selector)

// Container is the predicate function for container builders.
type Container func(*sql.Selector)

// Grant is the predicate function for grant builders.
type Grant func(*sql.Selector)

// InfoStore is the predicate function for infostore builders.
type InfoStore func(*sql.Selector)

// Job is the predicate function for job builders.
type Job func(*sql.Selector)

// JobLogEntry is the predicate function for joblogentry builders.
type JobLogEntry func(*sql.Selector)

// PermissionSet is the predicate function for permissionset builders.
type PermissionSet func(*sql.Selector)

// ProviderModel is the predicate function for providermodel builders.
type ProviderModel func(*sql.Selector)

// Role is the predicate function for role builders.
type Role func(*sql.Selector)

// Skill is the predicate function for skill builders.
type Skill func(*sql.Selector)

// SystemUser is the predicate function for systemuser builders.
type SystemUser func(*sql.Selector)

// Task is the predicate function for task builders.
type Task func(*sql.Selector)

// TranscriptionSegment is the predicate function for transcriptionsegment builders.
type TranscriptionSegment func(*sql.Selector)

// User is the predicate function for user builders.
type User func(*sql.Selector)
