// Code generated by ent, DO NOT EDIT.

package attemptevent

import (
	"time"

	"entgo.io/ent/dialect/sql"
)

const (
	// Label holds the string label denoting the attemptevent type in the database.
	Label = "attempt_event"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldSequence holds the string denoting the sequence field in the database.
	FieldSequence = "sequence"
	// FieldTimestamp holds the string denoting the timestamp field in the database.
	FieldTimestamp = "timestamp"
	// FieldSessionID holds the string denoting the session_id field in the database.
	FieldSessionID = "session_id"
	// FieldPartIndex holds the string denoting the part_index field in the database.
	FieldPartIndex = "part_index"
	// FieldSlotIndex holds the string denoting the slot_index field in the database.
	FieldSlotIndex = "slot_index"
	// FieldTerms holds the string denoting the terms field in the database.
	FieldTerms = "terms"
	// FieldAnswer holds the string denoting the answer field in the database.
	FieldAnswer = "answer"
	// FieldStudentAnswer holds the string denoting the student_answer field in the database.
	FieldStudentAnswer = "student_answer"
	// FieldCorrect holds the string denoting the correct field in the database.
	FieldCorrect = "correct"
	// FieldTimeMs holds the string denoting the time_ms field in the database.
	FieldTimeMs = "time_ms"
	// FieldSkillIds holds the string denoting the skill_ids field in the database.
	FieldSkillIds = "skill_ids"
	// FieldUsedHelp holds the string denoting the used_help field in the database.
	FieldUsedHelp = "used_help"
	// FieldSource holds the string denoting the source field in the database.
	FieldSource = "source"
	// FieldIsRetry holds the string denoting the is_retry field in the database.
	FieldIsRetry = "is_retry"
	// FieldEpoch holds the string denoting the epoch field in the database.
	FieldEpoch = "epoch"
	// FieldMasteryWeight holds the string denoting the mastery_weight field in the database.
	FieldMasteryWeight = "mastery_weight"
	// FieldOriginalSlotIndex holds the string denoting the original_slot_index field in the database.
	FieldOriginalSlotIndex = "original_slot_index"
	// Table holds the table name of the attemptevent in the database.
	Table = "attempt_events"
)

// Columns holds all SQL columns for attemptevent fields.
var Columns = []string{
	FieldID,
	FieldSequence,
	FieldTimestamp,
	FieldSessionID,
	FieldPartIndex,
	FieldSlotIndex,
	FieldTerms,
	FieldAnswer,
	FieldStudentAnswer,
	FieldCorrect,
	FieldTimeMs,
	FieldSkillIds,
	FieldUsedHelp,
	FieldSource,
	FieldIsRetry,
	FieldEpoch,
	FieldMasteryWeight,
	FieldOriginalSlotIndex,
}

// ValidColumn reports if the column name is valid (part of the table columns).
func ValidColumn(column string) bool {
	for i := range Columns {
		if column == Columns[i] {
			return true
		}
	}
	return false
}

var (
	// DefaultTimestamp holds the default value on creation for the "timestamp" field.
	DefaultTimestamp func() time.Time
	// SessionIDValidator is a validator for the "session_id" field. It is called by the builders before save.
	SessionIDValidator func(string) error
	// DefaultUsedHelp holds the default value on creation for the "used_help" field.
	DefaultUsedHelp bool
	// DefaultSource holds the default value on creation for the "source" field.
	DefaultSource string
	// DefaultIsRetry holds the default value on creation for the "is_retry" field.
	DefaultIsRetry bool
	// DefaultEpoch holds the default value on creation for the "epoch" field.
	DefaultEpoch int
	// DefaultOriginalSlotIndex holds the default value on creation for the "original_slot_index" field.
	DefaultOriginalSlotIndex int
)

// OrderOption defines the ordering options for the AttemptEvent queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// BySequence orders the results by the sequence field.
func BySequence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSequence, opts...).ToFunc()
}

// ByTimestamp orders the results by the timestamp field.
func ByTimestamp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimestamp, opts...).ToFunc()
}

// BySessionID orders the results by the session_id field.
func BySessionID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSessionID, opts...).ToFunc()
}

// ByPartIndex orders the results by the part_index field.
func ByPartIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPartIndex, opts...).ToFunc()
}

// BySlotIndex orders the results by the slot_index field.
func BySlotIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSlotIndex, opts...).ToFunc()
}

// ByAnswer orders the results by the answer field.
func ByAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldAnswer, opts...).ToFunc()
}

// ByStudentAnswer orders the results by the student_answer field.
func ByStudentAnswer(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldStudentAnswer, opts...).ToFunc()
}

// ByCorrect orders the results by the correct field.
func ByCorrect(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCorrect, opts...).ToFunc()
}

// ByTimeMs orders the results by the time_ms field.
func ByTimeMs(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldTimeMs, opts...).ToFunc()
}

// ByUsedHelp orders the results by the used_help field.
func ByUsedHelp(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldUsedHelp, opts...).ToFunc()
}

// BySource orders the results by the source field.
func BySource(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldSource, opts...).ToFunc()
}

// ByIsRetry orders the results by the is_retry field.
func ByIsRetry(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldIsRetry, opts...).ToFunc()
}

// ByEpoch orders the results by the epoch field.
func ByEpoch(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEpoch, opts...).ToFunc()
}

// ByMasteryWeight orders the results by the mastery_weight field.
func ByMasteryWeight(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldMasteryWeight, opts...).ToFunc()
}

// ByOriginalSlotIndex orders the results by the original_slot_index field.
func ByOriginalSlotIndex(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOriginalSlotIndex, opts...).ToFunc()
}
