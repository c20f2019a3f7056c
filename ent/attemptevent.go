// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/hikaru-dev/soroban/ent/attemptevent"
)

// AttemptEvent is the model entity for the AttemptEvent schema.
type AttemptEvent struct {
	config `json:"-"`
	// ID of the ent.
	ID int `json:"id,omitempty"`
	// Monotonically increasing global sequence number
	Sequence int64 `json:"sequence,omitempty"`
	// UTC wall-clock time of the event
	Timestamp time.Time `json:"timestamp,omitempty"`
	// Plan/session this attempt belongs to
	SessionID string `json:"session_id,omitempty"`
	// Session part (0 abacus, 1 visualization, 2 linear)
	PartIndex int `json:"part_index,omitempty"`
	// Slot within the part
	SlotIndex int `json:"slot_index,omitempty"`
	// Signed term sequence of the problem
	Terms []int `json:"terms,omitempty"`
	// Correct answer (sum of terms)
	Answer int `json:"answer,omitempty"`
	// What the student entered
	StudentAnswer int `json:"student_answer,omitempty"`
	// Whether the answer was correct
	Correct bool `json:"correct,omitempty"`
	// Milliseconds to answer
	TimeMs int `json:"time_ms,omitempty"`
	// Dotted IDs of the skills the problem exercised
	SkillIds []string `json:"skill_ids,omitempty"`
	// Whether the student used help on this attempt
	UsedHelp bool `json:"used_help,omitempty"`
	// practice, recency-refresh, teacher-corrected, or teacher-excluded
	Source string `json:"source,omitempty"`
	// Whether this attempt was a retry-epoch replay
	IsRetry bool `json:"is_retry,omitempty"`
	// Retry epoch number (0 = original pass)
	Epoch int `json:"epoch,omitempty"`
	// Credit weight fed to mastery estimation
	MasteryWeight float64 `json:"mastery_weight,omitempty"`
	// For retries, the slot originally missed
	OriginalSlotIndex int `json:"original_slot_index,omitempty"`
	selectValues      sql.SelectValues
}

// scanValues returns the types for scanning values from sql.Rows.
func (*AttemptEvent) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldTerms, attemptevent.FieldSkillIds:
			values[i] = new([]byte)
		case attemptevent.FieldCorrect, attemptevent.FieldUsedHelp, attemptevent.FieldIsRetry:
			values[i] = new(sql.NullBool)
		case attemptevent.FieldMasteryWeight:
			values[i] = new(sql.NullFloat64)
		case attemptevent.FieldID, attemptevent.FieldSequence, attemptevent.FieldPartIndex, attemptevent.FieldSlotIndex, attemptevent.FieldAnswer, attemptevent.FieldStudentAnswer, attemptevent.FieldTimeMs, attemptevent.FieldEpoch, attemptevent.FieldOriginalSlotIndex:
			values[i] = new(sql.NullInt64)
		case attemptevent.FieldSessionID, attemptevent.FieldSource:
			values[i] = new(sql.NullString)
		case attemptevent.FieldTimestamp:
			values[i] = new(sql.NullTime)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the AttemptEvent fields.
func (ae *AttemptEvent) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case attemptevent.FieldID:
			value, ok := values[i].(*sql.NullInt64)
			if !ok {
				return fmt.Errorf("unexpected type %T for field id", value)
			}
			ae.ID = int(value.Int64)
		case attemptevent.FieldSequence:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field sequence", values[i])
			} else if value.Valid {
				ae.Sequence = value.Int64
			}
		case attemptevent.FieldTimestamp:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field timestamp", values[i])
			} else if value.Valid {
				ae.Timestamp = value.Time
			}
		case attemptevent.FieldSessionID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field session_id", values[i])
			} else if value.Valid {
				ae.SessionID = value.String
			}
		case attemptevent.FieldPartIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field part_index", values[i])
			} else if value.Valid {
				ae.PartIndex = int(value.Int64)
			}
		case attemptevent.FieldSlotIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field slot_index", values[i])
			} else if value.Valid {
				ae.SlotIndex = int(value.Int64)
			}
		case attemptevent.FieldTerms:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field terms", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.Terms); err != nil {
					return fmt.Errorf("unmarshal field terms: %w", err)
				}
			}
		case attemptevent.FieldAnswer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field answer", values[i])
			} else if value.Valid {
				ae.Answer = int(value.Int64)
			}
		case attemptevent.FieldStudentAnswer:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field student_answer", values[i])
			} else if value.Valid {
				ae.StudentAnswer = int(value.Int64)
			}
		case attemptevent.FieldCorrect:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field correct", values[i])
			} else if value.Valid {
				ae.Correct = value.Bool
			}
		case attemptevent.FieldTimeMs:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field time_ms", values[i])
			} else if value.Valid {
				ae.TimeMs = int(value.Int64)
			}
		case attemptevent.FieldSkillIds:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field skill_ids", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &ae.SkillIds); err != nil {
					return fmt.Errorf("unmarshal field skill_ids: %w", err)
				}
			}
		case attemptevent.FieldUsedHelp:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field used_help", values[i])
			} else if value.Valid {
				ae.UsedHelp = value.Bool
			}
		case attemptevent.FieldSource:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source", values[i])
			} else if value.Valid {
				ae.Source = value.String
			}
		case attemptevent.FieldIsRetry:
			if value, ok := values[i].(*sql.NullBool); !ok {
				return fmt.Errorf("unexpected type %T for field is_retry", values[i])
			} else if value.Valid {
				ae.IsRetry = value.Bool
			}
		case attemptevent.FieldEpoch:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field epoch", values[i])
			} else if value.Valid {
				ae.Epoch = int(value.Int64)
			}
		case attemptevent.FieldMasteryWeight:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field mastery_weight", values[i])
			} else if value.Valid {
				ae.MasteryWeight = value.Float64
			}
		case attemptevent.FieldOriginalSlotIndex:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field original_slot_index", values[i])
			} else if value.Valid {
				ae.OriginalSlotIndex = int(value.Int64)
			}
		default:
			ae.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the AttemptEvent.
// This includes values selected through modifiers, order, etc.
func (ae *AttemptEvent) Value(name string) (ent.Value, error) {
	return ae.selectValues.Get(name)
}

// Update returns a builder for updating this AttemptEvent.
// Note that you need to call AttemptEvent.Unwrap() before calling this method if this AttemptEvent
// was returned from a transaction, and the transaction was committed or rolled back.
func (ae *AttemptEvent) Update() *AttemptEventUpdateOne {
	return NewAttemptEventClient(ae.config).UpdateOne(ae)
}

// Unwrap unwraps the AttemptEvent entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (ae *AttemptEvent) Unwrap() *AttemptEvent {
	_tx, ok := ae.config.driver.(*txDriver)
	if !ok {
		panic("ent: AttemptEvent is not a transactional entity")
	}
	ae.config.driver = _tx.drv
	return ae
}

// String implements the fmt.Stringer.
func (ae *AttemptEvent) String() string {
	var builder strings.Builder
	builder.WriteString("AttemptEvent(")
	builder.WriteString(fmt.Sprintf("id=%v, ", ae.ID))
	builder.WriteString("sequence=")
	builder.WriteString(fmt.Sprintf("%v", ae.Sequence))
	builder.WriteString(", ")
	builder.WriteString("timestamp=")
	builder.WriteString(ae.Timestamp.Format(time.ANSIC))
	builder.WriteString(", ")
	builder.WriteString("session_id=")
	builder.WriteString(ae.SessionID)
	builder.WriteString(", ")
	builder.WriteString("part_index=")
	builder.WriteString(fmt.Sprintf("%v", ae.PartIndex))
	builder.WriteString(", ")
	builder.WriteString("slot_index=")
	builder.WriteString(fmt.Sprintf("%v", ae.SlotIndex))
	builder.WriteString(", ")
	builder.WriteString("terms=")
	builder.WriteString(fmt.Sprintf("%v", ae.Terms))
	builder.WriteString(", ")
	builder.WriteString("answer=")
	builder.WriteString(fmt.Sprintf("%v", ae.Answer))
	builder.WriteString(", ")
	builder.WriteString("student_answer=")
	builder.WriteString(fmt.Sprintf("%v", ae.StudentAnswer))
	builder.WriteString(", ")
	builder.WriteString("correct=")
	builder.WriteString(fmt.Sprintf("%v", ae.Correct))
	builder.WriteString(", ")
	builder.WriteString("time_ms=")
	builder.WriteString(fmt.Sprintf("%v", ae.TimeMs))
	builder.WriteString(", ")
	builder.WriteString("skill_ids=")
	builder.WriteString(fmt.Sprintf("%v", ae.SkillIds))
	builder.WriteString(", ")
	builder.WriteString("used_help=")
	builder.WriteString(fmt.Sprintf("%v", ae.UsedHelp))
	builder.WriteString(", ")
	builder.WriteString("source=")
	builder.WriteString(ae.Source)
	builder.WriteString(", ")
	builder.WriteString("is_retry=")
	builder.WriteString(fmt.Sprintf("%v", ae.IsRetry))
	builder.WriteString(", ")
	builder.WriteString("epoch=")
	builder.WriteString(fmt.Sprintf("%v", ae.Epoch))
	builder.WriteString(", ")
	builder.WriteString("mastery_weight=")
	builder.WriteString(fmt.Sprintf("%v", ae.MasteryWeight))
	builder.WriteString(", ")
	builder.WriteString("original_slot_index=")
	builder.WriteString(fmt.Sprintf("%v", ae.OriginalSlotIndex))
	builder.WriteByte(')')
	return builder.String()
}

// AttemptEvents is a parsable slice of AttemptEvent.
type AttemptEvents []*AttemptEvent
