// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/hikaru-dev/soroban/ent/attemptevent"
	"github.com/hikaru-dev/soroban/ent/masteryevent"
	"github.com/hikaru-dev/soroban/ent/plansnapshot"
	"github.com/hikaru-dev/soroban/ent/schema"
	"github.com/hikaru-dev/soroban/ent/sessionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescSessionID is the schema descriptor for session_id field.
	attempteventDescSessionID := attempteventFields[0].Descriptor()
	// attemptevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	attemptevent.SessionIDValidator = attempteventDescSessionID.Validators[0].(func(string) error)
	// attempteventDescUsedHelp is the schema descriptor for used_help field.
	attempteventDescUsedHelp := attempteventFields[9].Descriptor()
	// attemptevent.DefaultUsedHelp holds the default value on creation for the used_help field.
	attemptevent.DefaultUsedHelp = attempteventDescUsedHelp.Default.(bool)
	// attempteventDescSource is the schema descriptor for source field.
	attempteventDescSource := attempteventFields[10].Descriptor()
	// attemptevent.DefaultSource holds the default value on creation for the source field.
	attemptevent.DefaultSource = attempteventDescSource.Default.(string)
	// attempteventDescIsRetry is the schema descriptor for is_retry field.
	attempteventDescIsRetry := attempteventFields[11].Descriptor()
	// attemptevent.DefaultIsRetry holds the default value on creation for the is_retry field.
	attemptevent.DefaultIsRetry = attempteventDescIsRetry.Default.(bool)
	// attempteventDescEpoch is the schema descriptor for epoch field.
	attempteventDescEpoch := attempteventFields[12].Descriptor()
	// attemptevent.DefaultEpoch holds the default value on creation for the epoch field.
	attemptevent.DefaultEpoch = attempteventDescEpoch.Default.(int)
	// attempteventDescOriginalSlotIndex is the schema descriptor for original_slot_index field.
	attempteventDescOriginalSlotIndex := attempteventFields[14].Descriptor()
	// attemptevent.DefaultOriginalSlotIndex holds the default value on creation for the original_slot_index field.
	attemptevent.DefaultOriginalSlotIndex = attempteventDescOriginalSlotIndex.Default.(int)
	masteryeventMixin := schema.MasteryEvent{}.Mixin()
	masteryeventMixinFields0 := masteryeventMixin[0].Fields()
	_ = masteryeventMixinFields0
	masteryeventFields := schema.MasteryEvent{}.Fields()
	_ = masteryeventFields
	// masteryeventDescTimestamp is the schema descriptor for timestamp field.
	masteryeventDescTimestamp := masteryeventMixinFields0[1].Descriptor()
	// masteryevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	masteryevent.DefaultTimestamp = masteryeventDescTimestamp.Default.(func() time.Time)
	// masteryeventDescSkillID is the schema descriptor for skill_id field.
	masteryeventDescSkillID := masteryeventFields[0].Descriptor()
	// masteryevent.SkillIDValidator is a validator for the "skill_id" field. It is called by the builders before save.
	masteryevent.SkillIDValidator = masteryeventDescSkillID.Validators[0].(func(string) error)
	plansnapshotFields := schema.PlanSnapshot{}.Fields()
	_ = plansnapshotFields
	// plansnapshotDescPlanID is the schema descriptor for plan_id field.
	plansnapshotDescPlanID := plansnapshotFields[0].Descriptor()
	// plansnapshot.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	plansnapshot.PlanIDValidator = plansnapshotDescPlanID.Validators[0].(func(string) error)
	// plansnapshotDescVersion is the schema descriptor for version field.
	plansnapshotDescVersion := plansnapshotFields[1].Descriptor()
	// plansnapshot.DefaultVersion holds the default value on creation for the version field.
	plansnapshot.DefaultVersion = plansnapshotDescVersion.Default.(int64)
	// plansnapshotDescUpdatedAt is the schema descriptor for updated_at field.
	plansnapshotDescUpdatedAt := plansnapshotFields[2].Descriptor()
	// plansnapshot.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	plansnapshot.DefaultUpdatedAt = plansnapshotDescUpdatedAt.Default.(func() time.Time)
	// plansnapshot.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	plansnapshot.UpdateDefaultUpdatedAt = plansnapshotDescUpdatedAt.UpdateDefault.(func() time.Time)
	sessioneventMixin := schema.SessionEvent{}.Mixin()
	sessioneventMixinFields0 := sessioneventMixin[0].Fields()
	_ = sessioneventMixinFields0
	sessioneventFields := schema.SessionEvent{}.Fields()
	_ = sessioneventFields
	// sessioneventDescTimestamp is the schema descriptor for timestamp field.
	sessioneventDescTimestamp := sessioneventMixinFields0[1].Descriptor()
	// sessionevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	sessionevent.DefaultTimestamp = sessioneventDescTimestamp.Default.(func() time.Time)
	// sessioneventDescSessionID is the schema descriptor for session_id field.
	sessioneventDescSessionID := sessioneventFields[0].Descriptor()
	// sessionevent.SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	sessionevent.SessionIDValidator = sessioneventDescSessionID.Validators[0].(func(string) error)
	// sessioneventDescKind is the schema descriptor for kind field.
	sessioneventDescKind := sessioneventFields[1].Descriptor()
	// sessionevent.KindValidator is a validator for the "kind" field. It is called by the builders before save.
	sessionevent.KindValidator = sessioneventDescKind.Validators[0].(func(string) error)
}
