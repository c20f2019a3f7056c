package schema

import (
	"entgo.io/ent"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"
)

// SessionEvent records session lifecycle changes: started, completed,
// abandoned. Distinct session counting for the readiness volume dimension
// runs over these.
type SessionEvent struct {
	ent.Schema
}

func (SessionEvent) Mixin() []ent.Mixin {
	return []ent.Mixin{EventMixin{}}
}

func (SessionEvent) Fields() []ent.Field {
	return []ent.Field{
		field.String("session_id").
			NotEmpty().
			Comment("Plan ID of the session"),
		field.String("kind").
			NotEmpty().
			Comment("started, completed, or abandoned"),
		field.String("mode").
			Comment("remediation, progression, or maintenance"),
	}
}

func (SessionEvent) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("session_id"),
		index.Fields("kind"),
	}
}
