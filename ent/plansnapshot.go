// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hikaru-dev/soroban/ent/plansnapshot"
)

// PlanSnapshot is the model entity for the PlanSnapshot schema.
type PlanSnapshot struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// UUID of the plan
	PlanID string `json:"plan_id,omitempty"`
	// Optimistic concurrency counter
	Version int64 `json:"version,omitempty"`
	// Last save time
	UpdatedAt time.Time `json:"updated_at,omitempty"`
	// Full plan state as JSON
	Data         map[string]interface{} `json:"data,omitempty"`
	selectValues sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PlanSnapshot) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case plansnapshot.FieldData:
			values[i] = new([]byte)
		case plansnapshot.FieldID, plansnapshot.FieldVersion:
			values[i] = new(sql.NullInt64)
		case plansnapshot.FieldPlanID:
			values[i] = new(sql.NullString)
		case plansnapshot.FieldUpdatedAt:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PlanSnapshot fields.
func (ps *PlanSnapshot) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case plansnapshot.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ps.ID = int(value.Int64)
		case plansnapshot.FieldPlanID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field plan_id", values[i])
			} else if value.Valid {
				ps.PlanID = value.String
			}
		case plansnapshot.FieldVersion:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field version", values[i])
			} else if value.Valid {
				ps.Version = value.Int64
			}
		case plansnapshot.FieldUpdatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field updated_at", values[i])
			} else if value.Valid {
				ps.UpdatedAt = value.Time
			}
		case plansnapshot.FieldData:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field data", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ps.Data); err != nil {
					return fmt.Errorf("unmarshal field data: %w", err)
				}
			}
		default:
			ps.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PlanSnapshot.
// This includes values selected through modifiers, order, etc.
func (ps *PlanSnapshot) Value(name string) (ent.Value, error) {
	return ps.selectValues.Get(name)
}

// Update returns a builder for updating this PlanSnapshot.
// Note that you need to call PlanSnapshot.Unwrap() before calling this method if this PlanSnapshot
// was returned from a transaction, and the transaction was committed or rolled back.
func (ps *PlanSnapshot) Update() *PlanSnapshotUpdateOne {
	return NewPlanSnapshotClient(ps.config).UpdateOne(ps)
}

// Unwrap unwraps the PlanSnapshot entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ps *PlanSnapshot) Unwrap() *PlanSnapshot {
	_tx, ok := ps.config.driver.(*txDriver)
	if !ok {
		panic("ent: PlanSnapshot is not a transactional entity")
	}
	ps.config.driver = _tx.drv
	return ps
}

// String implements the fmt.Stringer.
func (ps *PlanSnapshot) String() string {
	var builder strings.Builder
	builder.WriteString("PlanSnapshot(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ps.ID))
	builder.WriteString("plan_id=")
	builder.WriteString(ps.PlanID)
	builder.WriteString(", ")
	builder.WriteString("version=")
	builder.WriteString(fmt.Sprintf("%v", ps.Version))
	builder.WriteString(", ")
	builder.WriteString("updated_at=")
	builder.WriteString(ps.UpdatedAt.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("data=")
	builder.WriteString(fmt.Sprintf("%v", ps.Data))
	builder.WriteByte(')')
	return builder.String()
}

// PlanSnapshots is a parsable slice of PlanSnapshot.
type PlanSnapshots []*PlanSnapshot
