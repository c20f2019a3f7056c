package schema

import (
	"time"

	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// PlanSnapshot stores the current state of a session plan as an opaque JSON
// blob plus a version counter. Writers bump the version on every save;
// compare-and-swap on it gives optimistic concurrency when two devices race
// to submit the same session.
type PlanSnapshot struct {
	ent.Schema
}

func (PlanSnapshot) Fields() []ent.Field {
	return []ent.Field{
		field.String("plan_id").
			NotEmpty().
			Comment("UUID of the plan"),
		field.Int64("version").
			Default(1).
			Comment("Optimistic concurrency counter"),
		field.Time("updated_at").
			Default(time.Now).
			UpdateDefault(time.Now).
			Comment("Last save time"),
		field.JSON("data", map[string]any{}).
			Comment("Full plan state as JSON"),
	}
}

func (PlanSnapshot) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("plan_id").Unique(),
	}
}
