package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// MasteryEvent snapshots a skill's BKT readout after new evidence arrived.
// These are derived records for display and audit; the attempt log remains
// authoritative.
type MasteryEvent struct {
	ent.Schema
}

func (MasteryEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (MasteryEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("skill_id").
			NotEmpty().
			Comment("Dotted skill ID"),
		field.Float("p_known").
			Comment("Posterior mastery probability"),
		field.Float("confidence").
			Comment("Evidence confidence (0-1)"),
		field.Int("opportunities").
			Comment("Weighted attempt count behind the estimate"),
		field.String("classification").
			Comment("weak, developing, strong, or empty when unclassified"),
	}
}

func (MasteryEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("skill_id"),
	}
}
