package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// AttemptEvent records one completed problem attempt with its full context.
// The attempt log is the source of truth for BKT estimates and readiness: a
// skill's history is always rebuilt by replaying these events in sequence
// order.
type AttemptEvent struct {
	ent.Schema
}

func (AttemptEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (AttemptEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Plan/session this attempt belongs to"),
		field.Int("part_index").
			Comment("Session part (0 abacus, 1 visualization, 2 linear)"),
		field.Int("slot_index").
			Comment("Slot within the part"),
		field.JSON("terms", []int{}).
			Comment("Signed term sequence of the problem"),
		field.Int("answer").
			Comment("Correct answer (sum of terms)"),
		field.Int("student_answer").
			Comment("What the student entered"),
		field.Bool("correct").
			Comment("Whether the answer was correct"),
		field.Int("time_ms").
			Comment("Milliseconds to answer"),
		field.JSON("skill_ids", []string{}).
			Comment("Dotted IDs of the skills the problem exercised"),
		field.Bool("used_help").
			Default(false).
			Comment("Whether the student used help on this attempt"),
		field.String("source").
			Default("practice").
			Comment("practice, recency-refresh, teacher-corrected, or teacher-excluded"),
		field.Bool("is_retry").
			Default(false).
			Comment("Whether this attempt was a retry-epoch replay"),
		field.Int("epoch").
			Default(0).
			Comment("Retry epoch number (0 = original pass)"),
		field.Float("mastery_weight").
			Comment("Credit weight fed to mastery estimation"),
		field.Int("original_slot_index").
			Default(0).
			Comment("For retries, the slot originally missed"),
	}
}

func (AttemptEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("correct"),
		index.Fields("source"),
	}
}
