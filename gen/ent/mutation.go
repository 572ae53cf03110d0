// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Volpestyle/paystub-extractor/gen/ent/extractjob"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
	"github.com/Volpestyle/paystub-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

const (
	// Operation types.
	OpCreate    = ent.OpCreate
	OpDelete    = ent.OpDelete
	OpDeleteOne = ent.OpDeleteOne
	OpUpdate    = ent.OpUpdate
	OpUpdateOne = ent.OpUpdateOne

	// Node types.
	TypeExtractJob  = "ExtractJob"
	TypePaystub     = "Paystub"
	TypePaystubFile = "PaystubFile"
)

// ExtractJobMutation represents an operation that mutates the ExtractJob nodes in the graph.
type ExtractJobMutation struct {
	config
	op                       Op
	typ                      string
	id                       *uuid.UUID
	format                   *string
	started_at               *time.Time
	finished_at              *time.Time
	status                   *string
	error_message            *string
	extraction_confidence    *float32
	addextraction_confidence *float32
	needs_review             *bool
	raw_text                 *string
	extracted_json           *json.RawMessage
	appendextracted_json     json.RawMessage
	method                   *string
	clearedFields            map[string]struct{}
	file                     *uuid.UUID
	clearedfile              bool
	paystub                  *uuid.UUID
	clearedpaystub           bool
	done                     bool
	oldValue                 func(context.Context) (*ExtractJob, error)
	predicates               []predicate.ExtractJob
}

var _ ent.Mutation = (*ExtractJobMutation)(nil)

// extractjobOption allows management of the mutation configuration using functional options.
type extractjobOption func(*ExtractJobMutation)

// newExtractJobMutation creates new mutation for the ExtractJob entity.
func newExtractJobMutation(c config, op Op, opts ...extractjobOption) *ExtractJobMutation {
	m := &ExtractJobMutation{
		config:        c,
		op:            op,
		typ:           TypeExtractJob,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withExtractJobID sets the ID field of the mutation.
func withExtractJobID(id uuid.UUID) extractjobOption {
	return func(m *ExtractJobMutation) {
		var (
			err   error
			once  sync.Once
			value *ExtractJob
		)
		m.oldValue = func(ctx context.Context) (*ExtractJob, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().ExtractJob.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withExtractJob sets the old ExtractJob of the mutation.
func withExtractJob(node *ExtractJob) extractjobOption {
	return func(m *ExtractJobMutation) {
		m.oldValue = func(context.Context) (*ExtractJob, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m ExtractJobMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m ExtractJobMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of ExtractJob entities.
func (m *ExtractJobMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *ExtractJobMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *ExtractJobMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().ExtractJob.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *ExtractJobMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *ExtractJobMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *ExtractJobMutation) ResetFileID() {
	m.file = nil
}

// SetPaystubID sets the "paystub_id" field.
func (m *ExtractJobMutation) SetPaystubID(u uuid.UUID) {
	m.paystub = &u
}

// PaystubID returns the value of the "paystub_id" field in the mutation.
func (m *ExtractJobMutation) PaystubID() (r uuid.UUID, exists bool) {
	v := m.paystub
	if v == nil {
		return
	}
	return *v, true
}

// OldPaystubID returns the old "paystub_id" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldPaystubID(ctx context.Context) (v *uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPaystubID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPaystubID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPaystubID: %w", err)
	}
	return oldValue.PaystubID, nil
}

// ClearPaystubID clears the value of the "paystub_id" field.
func (m *ExtractJobMutation) ClearPaystubID() {
	m.paystub = nil
	m.clearedFields[extractjob.FieldPaystubID] = struct{}{}
}

// PaystubIDCleared returns if the "paystub_id" field was cleared in this mutation.
func (m *ExtractJobMutation) PaystubIDCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldPaystubID]
	return ok
}

// ResetPaystubID resets all changes to the "paystub_id" field.
func (m *ExtractJobMutation) ResetPaystubID() {
	m.paystub = nil
	delete(m.clearedFields, extractjob.FieldPaystubID)
}

// SetFormat sets the "format" field.
func (m *ExtractJobMutation) SetFormat(s string) {
	m.format = &s
}

// Format returns the value of the "format" field in the mutation.
func (m *ExtractJobMutation) Format() (r string, exists bool) {
	v := m.format
	if v == nil {
		return
	}
	return *v, true
}

// OldFormat returns the old "format" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFormat(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFormat is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFormat requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFormat: %w", err)
	}
	return oldValue.Format, nil
}

// ResetFormat resets all changes to the "format" field.
func (m *ExtractJobMutation) ResetFormat() {
	m.format = nil
}

// SetStartedAt sets the "started_at" field.
func (m *ExtractJobMutation) SetStartedAt(t time.Time) {
	m.started_at = &t
}

// StartedAt returns the value of the "started_at" field in the mutation.
func (m *ExtractJobMutation) StartedAt() (r time.Time, exists bool) {
	v := m.started_at
	if v == nil {
		return
	}
	return *v, true
}

// OldStartedAt returns the old "started_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStartedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStartedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStartedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStartedAt: %w", err)
	}
	return oldValue.StartedAt, nil
}

// ResetStartedAt resets all changes to the "started_at" field.
func (m *ExtractJobMutation) ResetStartedAt() {
	m.started_at = nil
}

// SetFinishedAt sets the "finished_at" field.
func (m *ExtractJobMutation) SetFinishedAt(t time.Time) {
	m.finished_at = &t
}

// FinishedAt returns the value of the "finished_at" field in the mutation.
func (m *ExtractJobMutation) FinishedAt() (r time.Time, exists bool) {
	v := m.finished_at
	if v == nil {
		return
	}
	return *v, true
}

// OldFinishedAt returns the old "finished_at" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldFinishedAt(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFinishedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFinishedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFinishedAt: %w", err)
	}
	return oldValue.FinishedAt, nil
}

// ClearFinishedAt clears the value of the "finished_at" field.
func (m *ExtractJobMutation) ClearFinishedAt() {
	m.finished_at = nil
	m.clearedFields[extractjob.FieldFinishedAt] = struct{}{}
}

// FinishedAtCleared returns if the "finished_at" field was cleared in this mutation.
func (m *ExtractJobMutation) FinishedAtCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldFinishedAt]
	return ok
}

// ResetFinishedAt resets all changes to the "finished_at" field.
func (m *ExtractJobMutation) ResetFinishedAt() {
	m.finished_at = nil
	delete(m.clearedFields, extractjob.FieldFinishedAt)
}

// SetStatus sets the "status" field.
func (m *ExtractJobMutation) SetStatus(s string) {
	m.status = &s
}

// Status returns the value of the "status" field in the mutation.
func (m *ExtractJobMutation) Status() (r string, exists bool) {
	v := m.status
	if v == nil {
		return
	}
	return *v, true
}

// OldStatus returns the old "status" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldStatus(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldStatus is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldStatus requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldStatus: %w", err)
	}
	return oldValue.Status, nil
}

// ClearStatus clears the value of the "status" field.
func (m *ExtractJobMutation) ClearStatus() {
	m.status = nil
	m.clearedFields[extractjob.FieldStatus] = struct{}{}
}

// StatusCleared returns if the "status" field was cleared in this mutation.
func (m *ExtractJobMutation) StatusCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldStatus]
	return ok
}

// ResetStatus resets all changes to the "status" field.
func (m *ExtractJobMutation) ResetStatus() {
	m.status = nil
	delete(m.clearedFields, extractjob.FieldStatus)
}

// SetErrorMessage sets the "error_message" field.
func (m *ExtractJobMutation) SetErrorMessage(s string) {
	m.error_message = &s
}

// ErrorMessage returns the value of the "error_message" field in the mutation.
func (m *ExtractJobMutation) ErrorMessage() (r string, exists bool) {
	v := m.error_message
	if v == nil {
		return
	}
	return *v, true
}

// OldErrorMessage returns the old "error_message" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldErrorMessage(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldErrorMessage is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldErrorMessage requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldErrorMessage: %w", err)
	}
	return oldValue.ErrorMessage, nil
}

// ClearErrorMessage clears the value of the "error_message" field.
func (m *ExtractJobMutation) ClearErrorMessage() {
	m.error_message = nil
	m.clearedFields[extractjob.FieldErrorMessage] = struct{}{}
}

// ErrorMessageCleared returns if the "error_message" field was cleared in this mutation.
func (m *ExtractJobMutation) ErrorMessageCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldErrorMessage]
	return ok
}

// ResetErrorMessage resets all changes to the "error_message" field.
func (m *ExtractJobMutation) ResetErrorMessage() {
	m.error_message = nil
	delete(m.clearedFields, extractjob.FieldErrorMessage)
}

// SetExtractionConfidence sets the "extraction_confidence" field.
func (m *ExtractJobMutation) SetExtractionConfidence(f float32) {
	m.extraction_confidence = &f
	m.addextraction_confidence = nil
}

// ExtractionConfidence returns the value of the "extraction_confidence" field in the mutation.
func (m *ExtractJobMutation) ExtractionConfidence() (r float32, exists bool) {
	v := m.extraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractionConfidence returns the old "extraction_confidence" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractionConfidence(ctx context.Context) (v *float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractionConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractionConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractionConfidence: %w", err)
	}
	return oldValue.ExtractionConfidence, nil
}

// AddExtractionConfidence adds f to the "extraction_confidence" field.
func (m *ExtractJobMutation) AddExtractionConfidence(f float32) {
	if m.addextraction_confidence != nil {
		*m.addextraction_confidence += f
	} else {
		m.addextraction_confidence = &f
	}
}

// AddedExtractionConfidence returns the value that was added to the "extraction_confidence" field in this mutation.
func (m *ExtractJobMutation) AddedExtractionConfidence() (r float32, exists bool) {
	v := m.addextraction_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ClearExtractionConfidence clears the value of the "extraction_confidence" field.
func (m *ExtractJobMutation) ClearExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	m.clearedFields[extractjob.FieldExtractionConfidence] = struct{}{}
}

// ExtractionConfidenceCleared returns if the "extraction_confidence" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractionConfidenceCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractionConfidence]
	return ok
}

// ResetExtractionConfidence resets all changes to the "extraction_confidence" field.
func (m *ExtractJobMutation) ResetExtractionConfidence() {
	m.extraction_confidence = nil
	m.addextraction_confidence = nil
	delete(m.clearedFields, extractjob.FieldExtractionConfidence)
}

// SetNeedsReview sets the "needs_review" field.
func (m *ExtractJobMutation) SetNeedsReview(b bool) {
	m.needs_review = &b
}

// NeedsReview returns the value of the "needs_review" field in the mutation.
func (m *ExtractJobMutation) NeedsReview() (r bool, exists bool) {
	v := m.needs_review
	if v == nil {
		return
	}
	return *v, true
}

// OldNeedsReview returns the old "needs_review" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldNeedsReview(ctx context.Context) (v bool, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNeedsReview is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNeedsReview requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNeedsReview: %w", err)
	}
	return oldValue.NeedsReview, nil
}

// ResetNeedsReview resets all changes to the "needs_review" field.
func (m *ExtractJobMutation) ResetNeedsReview() {
	m.needs_review = nil
}

// SetRawText sets the "raw_text" field.
func (m *ExtractJobMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *ExtractJobMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *ExtractJobMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[extractjob.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *ExtractJobMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *ExtractJobMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, extractjob.FieldRawText)
}

// SetExtractedJSON sets the "extracted_json" field.
func (m *ExtractJobMutation) SetExtractedJSON(jm json.RawMessage) {
	m.extracted_json = &jm
	m.appendextracted_json = nil
}

// ExtractedJSON returns the value of the "extracted_json" field in the mutation.
func (m *ExtractJobMutation) ExtractedJSON() (r json.RawMessage, exists bool) {
	v := m.extracted_json
	if v == nil {
		return
	}
	return *v, true
}

// OldExtractedJSON returns the old "extracted_json" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldExtractedJSON(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldExtractedJSON is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldExtractedJSON requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldExtractedJSON: %w", err)
	}
	return oldValue.ExtractedJSON, nil
}

// AppendExtractedJSON adds jm to the "extracted_json" field.
func (m *ExtractJobMutation) AppendExtractedJSON(jm json.RawMessage) {
	m.appendextracted_json = append(m.appendextracted_json, jm...)
}

// AppendedExtractedJSON returns the list of values that were appended to the "extracted_json" field in this mutation.
func (m *ExtractJobMutation) AppendedExtractedJSON() (json.RawMessage, bool) {
	if len(m.appendextracted_json) == 0 {
		return nil, false
	}
	return m.appendextracted_json, true
}

// ClearExtractedJSON clears the value of the "extracted_json" field.
func (m *ExtractJobMutation) ClearExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	m.clearedFields[extractjob.FieldExtractedJSON] = struct{}{}
}

// ExtractedJSONCleared returns if the "extracted_json" field was cleared in this mutation.
func (m *ExtractJobMutation) ExtractedJSONCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldExtractedJSON]
	return ok
}

// ResetExtractedJSON resets all changes to the "extracted_json" field.
func (m *ExtractJobMutation) ResetExtractedJSON() {
	m.extracted_json = nil
	m.appendextracted_json = nil
	delete(m.clearedFields, extractjob.FieldExtractedJSON)
}

// SetMethod sets the "method" field.
func (m *ExtractJobMutation) SetMethod(s string) {
	m.method = &s
}

// Method returns the value of the "method" field in the mutation.
func (m *ExtractJobMutation) Method() (r string, exists bool) {
	v := m.method
	if v == nil {
		return
	}
	return *v, true
}

// OldMethod returns the old "method" field's value of the ExtractJob entity.
// If the ExtractJob object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *ExtractJobMutation) OldMethod(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldMethod is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldMethod requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldMethod: %w", err)
	}
	return oldValue.Method, nil
}

// ClearMethod clears the value of the "method" field.
func (m *ExtractJobMutation) ClearMethod() {
	m.method = nil
	m.clearedFields[extractjob.FieldMethod] = struct{}{}
}

// MethodCleared returns if the "method" field was cleared in this mutation.
func (m *ExtractJobMutation) MethodCleared() bool {
	_, ok := m.clearedFields[extractjob.FieldMethod]
	return ok
}

// ResetMethod resets all changes to the "method" field.
func (m *ExtractJobMutation) ResetMethod() {
	m.method = nil
	delete(m.clearedFields, extractjob.FieldMethod)
}

// ClearFile clears the "file" edge to the PaystubFile entity.
func (m *ExtractJobMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[extractjob.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the PaystubFile entity was cleared.
func (m *ExtractJobMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *ExtractJobMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// ClearPaystub clears the "paystub" edge to the Paystub entity.
func (m *ExtractJobMutation) ClearPaystub() {
	m.clearedpaystub = true
	m.clearedFields[extractjob.FieldPaystubID] = struct{}{}
}

// PaystubCleared reports if the "paystub" edge to the Paystub entity was cleared.
func (m *ExtractJobMutation) PaystubCleared() bool {
	return m.PaystubIDCleared() || m.clearedpaystub
}

// PaystubIDs returns the "paystub" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// PaystubID instead. It exists only for internal usage by the builders.
func (m *ExtractJobMutation) PaystubIDs() (ids []uuid.UUID) {
	if id := m.paystub; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetPaystub resets all changes to the "paystub" edge.
func (m *ExtractJobMutation) ResetPaystub() {
	m.paystub = nil
	m.clearedpaystub = false
}

// Where appends a list predicates to the ExtractJobMutation builder.
func (m *ExtractJobMutation) Where(ps ...predicate.ExtractJob) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the ExtractJobMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *ExtractJobMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.ExtractJob, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *ExtractJobMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *ExtractJobMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (ExtractJob).
func (m *ExtractJobMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *ExtractJobMutation) Fields() []string {
	fields := make([]string, 0, 12)
	if m.file != nil {
		fields = append(fields, extractjob.FieldFileID)
	}
	if m.paystub != nil {
		fields = append(fields, extractjob.FieldPaystubID)
	}
	if m.format != nil {
		fields = append(fields, extractjob.FieldFormat)
	}
	if m.started_at != nil {
		fields = append(fields, extractjob.FieldStartedAt)
	}
	if m.finished_at != nil {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.status != nil {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.error_message != nil {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.extraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.needs_review != nil {
		fields = append(fields, extractjob.FieldNeedsReview)
	}
	if m.raw_text != nil {
		fields = append(fields, extractjob.FieldRawText)
	}
	if m.extracted_json != nil {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.method != nil {
		fields = append(fields, extractjob.FieldMethod)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *ExtractJobMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldFileID:
		return m.FileID()
	case extractjob.FieldPaystubID:
		return m.PaystubID()
	case extractjob.FieldFormat:
		return m.Format()
	case extractjob.FieldStartedAt:
		return m.StartedAt()
	case extractjob.FieldFinishedAt:
		return m.FinishedAt()
	case extractjob.FieldStatus:
		return m.Status()
	case extractjob.FieldErrorMessage:
		return m.ErrorMessage()
	case extractjob.FieldExtractionConfidence:
		return m.ExtractionConfidence()
	case extractjob.FieldNeedsReview:
		return m.NeedsReview()
	case extractjob.FieldRawText:
		return m.RawText()
	case extractjob.FieldExtractedJSON:
		return m.ExtractedJSON()
	case extractjob.FieldMethod:
		return m.Method()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *ExtractJobMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case extractjob.FieldFileID:
		return m.OldFileID(ctx)
	case extractjob.FieldPaystubID:
		return m.OldPaystubID(ctx)
	case extractjob.FieldFormat:
		return m.OldFormat(ctx)
	case extractjob.FieldStartedAt:
		return m.OldStartedAt(ctx)
	case extractjob.FieldFinishedAt:
		return m.OldFinishedAt(ctx)
	case extractjob.FieldStatus:
		return m.OldStatus(ctx)
	case extractjob.FieldErrorMessage:
		return m.OldErrorMessage(ctx)
	case extractjob.FieldExtractionConfidence:
		return m.OldExtractionConfidence(ctx)
	case extractjob.FieldNeedsReview:
		return m.OldNeedsReview(ctx)
	case extractjob.FieldRawText:
		return m.OldRawText(ctx)
	case extractjob.FieldExtractedJSON:
		return m.OldExtractedJSON(ctx)
	case extractjob.FieldMethod:
		return m.OldMethod(ctx)
	}
	return nil, fmt.Errorf("unknown ExtractJob field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) SetField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case extractjob.FieldPaystubID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPaystubID(v)
		return nil
	case extractjob.FieldFormat:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFormat(v)
		return nil
	case extractjob.FieldStartedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStartedAt(v)
		return nil
	case extractjob.FieldFinishedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFinishedAt(v)
		return nil
	case extractjob.FieldStatus:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetStatus(v)
		return nil
	case extractjob.FieldErrorMessage:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetErrorMessage(v)
		return nil
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractionConfidence(v)
		return nil
	case extractjob.FieldNeedsReview:
		v, ok := value.(bool)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNeedsReview(v)
		return nil
	case extractjob.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case extractjob.FieldExtractedJSON:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetExtractedJSON(v)
		return nil
	case extractjob.FieldMethod:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetMethod(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *ExtractJobMutation) AddedFields() []string {
	var fields []string
	if m.addextraction_confidence != nil {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *ExtractJobMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case extractjob.FieldExtractionConfidence:
		return m.AddedExtractionConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *ExtractJobMutation) AddField(name string, value ent.Value) error {
	switch name {
	case extractjob.FieldExtractionConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddExtractionConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown ExtractJob numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *ExtractJobMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(extractjob.FieldPaystubID) {
		fields = append(fields, extractjob.FieldPaystubID)
	}
	if m.FieldCleared(extractjob.FieldFinishedAt) {
		fields = append(fields, extractjob.FieldFinishedAt)
	}
	if m.FieldCleared(extractjob.FieldStatus) {
		fields = append(fields, extractjob.FieldStatus)
	}
	if m.FieldCleared(extractjob.FieldErrorMessage) {
		fields = append(fields, extractjob.FieldErrorMessage)
	}
	if m.FieldCleared(extractjob.FieldExtractionConfidence) {
		fields = append(fields, extractjob.FieldExtractionConfidence)
	}
	if m.FieldCleared(extractjob.FieldRawText) {
		fields = append(fields, extractjob.FieldRawText)
	}
	if m.FieldCleared(extractjob.FieldExtractedJSON) {
		fields = append(fields, extractjob.FieldExtractedJSON)
	}
	if m.FieldCleared(extractjob.FieldMethod) {
		fields = append(fields, extractjob.FieldMethod)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *ExtractJobMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *ExtractJobMutation) ClearField(name string) error {
	switch name {
	case extractjob.FieldPaystubID:
		m.ClearPaystubID()
		return nil
	case extractjob.FieldFinishedAt:
		m.ClearFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ClearStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ClearErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ClearExtractionConfidence()
		return nil
	case extractjob.FieldRawText:
		m.ClearRawText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ClearExtractedJSON()
		return nil
	case extractjob.FieldMethod:
		m.ClearMethod()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *ExtractJobMutation) ResetField(name string) error {
	switch name {
	case extractjob.FieldFileID:
		m.ResetFileID()
		return nil
	case extractjob.FieldPaystubID:
		m.ResetPaystubID()
		return nil
	case extractjob.FieldFormat:
		m.ResetFormat()
		return nil
	case extractjob.FieldStartedAt:
		m.ResetStartedAt()
		return nil
	case extractjob.FieldFinishedAt:
		m.ResetFinishedAt()
		return nil
	case extractjob.FieldStatus:
		m.ResetStatus()
		return nil
	case extractjob.FieldErrorMessage:
		m.ResetErrorMessage()
		return nil
	case extractjob.FieldExtractionConfidence:
		m.ResetExtractionConfidence()
		return nil
	case extractjob.FieldNeedsReview:
		m.ResetNeedsReview()
		return nil
	case extractjob.FieldRawText:
		m.ResetRawText()
		return nil
	case extractjob.FieldExtractedJSON:
		m.ResetExtractedJSON()
		return nil
	case extractjob.FieldMethod:
		m.ResetMethod()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *ExtractJobMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.paystub != nil {
		edges = append(edges, extractjob.EdgePaystub)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *ExtractJobMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case extractjob.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case extractjob.EdgePaystub:
		if id := m.paystub; id != nil {
			return []ent.Value{*id}
		}
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *ExtractJobMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *ExtractJobMutation) RemovedIDs(name string) []ent.Value {
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *ExtractJobMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, extractjob.EdgeFile)
	}
	if m.clearedpaystub {
		edges = append(edges, extractjob.EdgePaystub)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *ExtractJobMutation) EdgeCleared(name string) bool {
	switch name {
	case extractjob.EdgeFile:
		return m.clearedfile
	case extractjob.EdgePaystub:
		return m.clearedpaystub
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *ExtractJobMutation) ClearEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ClearFile()
		return nil
	case extractjob.EdgePaystub:
		m.ClearPaystub()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *ExtractJobMutation) ResetEdge(name string) error {
	switch name {
	case extractjob.EdgeFile:
		m.ResetFile()
		return nil
	case extractjob.EdgePaystub:
		m.ResetPaystub()
		return nil
	}
	return fmt.Errorf("unknown ExtractJob edge %s", name)
}

// PaystubMutation represents an operation that mutates the Paystub nodes in the graph.
type PaystubMutation struct {
	config
	op                    Op
	typ                   string
	id                    *uuid.UUID
	provider              *string
	gross_pay             *string
	net_pay               *string
	ytd_gross_pay         *string
	ytd_net_pay           *string
	currency_code         *string
	pay_period_start      *time.Time
	pay_period_end        *time.Time
	pay_date              *time.Time
	pay_frequency         *string
	employee_name         *string
	employee_id           *string
	employer_name         *string
	deductions            *json.RawMessage
	appenddeductions      json.RawMessage
	overall_confidence    *float32
	addoverall_confidence *float32
	raw_text              *string
	created_at            *time.Time
	clearedFields         map[string]struct{}
	file                  *uuid.UUID
	clearedfile           bool
	jobs                  map[uuid.UUID]struct{}
	removedjobs           map[uuid.UUID]struct{}
	clearedjobs           bool
	done                  bool
	oldValue              func(context.Context) (*Paystub, error)
	predicates            []predicate.Paystub
}

var _ ent.Mutation = (*PaystubMutation)(nil)

// paystubOption allows management of the mutation configuration using functional options.
type paystubOption func(*PaystubMutation)

// newPaystubMutation creates new mutation for the Paystub entity.
func newPaystubMutation(c config, op Op, opts ...paystubOption) *PaystubMutation {
	m := &PaystubMutation{
		config:        c,
		op:            op,
		typ:           TypePaystub,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaystubID sets the ID field of the mutation.
func withPaystubID(id uuid.UUID) paystubOption {
	return func(m *PaystubMutation) {
		var (
			err   error
			once  sync.Once
			value *Paystub
		)
		m.oldValue = func(ctx context.Context) (*Paystub, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().Paystub.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaystub sets the old Paystub of the mutation.
func withPaystub(node *Paystub) paystubOption {
	return func(m *PaystubMutation) {
		m.oldValue = func(context.Context) (*Paystub, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaystubMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaystubMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of Paystub entities.
func (m *PaystubMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaystubMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaystubMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().Paystub.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetFileID sets the "file_id" field.
func (m *PaystubMutation) SetFileID(u uuid.UUID) {
	m.file = &u
}

// FileID returns the value of the "file_id" field in the mutation.
func (m *PaystubMutation) FileID() (r uuid.UUID, exists bool) {
	v := m.file
	if v == nil {
		return
	}
	return *v, true
}

// OldFileID returns the old "file_id" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldFileID(ctx context.Context) (v uuid.UUID, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileID: %w", err)
	}
	return oldValue.FileID, nil
}

// ResetFileID resets all changes to the "file_id" field.
func (m *PaystubMutation) ResetFileID() {
	m.file = nil
}

// SetProvider sets the "provider" field.
func (m *PaystubMutation) SetProvider(s string) {
	m.provider = &s
}

// Provider returns the value of the "provider" field in the mutation.
func (m *PaystubMutation) Provider() (r string, exists bool) {
	v := m.provider
	if v == nil {
		return
	}
	return *v, true
}

// OldProvider returns the old "provider" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldProvider(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldProvider is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldProvider requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldProvider: %w", err)
	}
	return oldValue.Provider, nil
}

// ResetProvider resets all changes to the "provider" field.
func (m *PaystubMutation) ResetProvider() {
	m.provider = nil
}

// SetGrossPay sets the "gross_pay" field.
func (m *PaystubMutation) SetGrossPay(s string) {
	m.gross_pay = &s
}

// GrossPay returns the value of the "gross_pay" field in the mutation.
func (m *PaystubMutation) GrossPay() (r string, exists bool) {
	v := m.gross_pay
	if v == nil {
		return
	}
	return *v, true
}

// OldGrossPay returns the old "gross_pay" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldGrossPay(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldGrossPay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldGrossPay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldGrossPay: %w", err)
	}
	return oldValue.GrossPay, nil
}

// ClearGrossPay clears the value of the "gross_pay" field.
func (m *PaystubMutation) ClearGrossPay() {
	m.gross_pay = nil
	m.clearedFields[paystub.FieldGrossPay] = struct{}{}
}

// GrossPayCleared returns if the "gross_pay" field was cleared in this mutation.
func (m *PaystubMutation) GrossPayCleared() bool {
	_, ok := m.clearedFields[paystub.FieldGrossPay]
	return ok
}

// ResetGrossPay resets all changes to the "gross_pay" field.
func (m *PaystubMutation) ResetGrossPay() {
	m.gross_pay = nil
	delete(m.clearedFields, paystub.FieldGrossPay)
}

// SetNetPay sets the "net_pay" field.
func (m *PaystubMutation) SetNetPay(s string) {
	m.net_pay = &s
}

// NetPay returns the value of the "net_pay" field in the mutation.
func (m *PaystubMutation) NetPay() (r string, exists bool) {
	v := m.net_pay
	if v == nil {
		return
	}
	return *v, true
}

// OldNetPay returns the old "net_pay" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldNetPay(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldNetPay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldNetPay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldNetPay: %w", err)
	}
	return oldValue.NetPay, nil
}

// ClearNetPay clears the value of the "net_pay" field.
func (m *PaystubMutation) ClearNetPay() {
	m.net_pay = nil
	m.clearedFields[paystub.FieldNetPay] = struct{}{}
}

// NetPayCleared returns if the "net_pay" field was cleared in this mutation.
func (m *PaystubMutation) NetPayCleared() bool {
	_, ok := m.clearedFields[paystub.FieldNetPay]
	return ok
}

// ResetNetPay resets all changes to the "net_pay" field.
func (m *PaystubMutation) ResetNetPay() {
	m.net_pay = nil
	delete(m.clearedFields, paystub.FieldNetPay)
}

// SetYtdGrossPay sets the "ytd_gross_pay" field.
func (m *PaystubMutation) SetYtdGrossPay(s string) {
	m.ytd_gross_pay = &s
}

// YtdGrossPay returns the value of the "ytd_gross_pay" field in the mutation.
func (m *PaystubMutation) YtdGrossPay() (r string, exists bool) {
	v := m.ytd_gross_pay
	if v == nil {
		return
	}
	return *v, true
}

// OldYtdGrossPay returns the old "ytd_gross_pay" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldYtdGrossPay(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYtdGrossPay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYtdGrossPay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYtdGrossPay: %w", err)
	}
	return oldValue.YtdGrossPay, nil
}

// ClearYtdGrossPay clears the value of the "ytd_gross_pay" field.
func (m *PaystubMutation) ClearYtdGrossPay() {
	m.ytd_gross_pay = nil
	m.clearedFields[paystub.FieldYtdGrossPay] = struct{}{}
}

// YtdGrossPayCleared returns if the "ytd_gross_pay" field was cleared in this mutation.
func (m *PaystubMutation) YtdGrossPayCleared() bool {
	_, ok := m.clearedFields[paystub.FieldYtdGrossPay]
	return ok
}

// ResetYtdGrossPay resets all changes to the "ytd_gross_pay" field.
func (m *PaystubMutation) ResetYtdGrossPay() {
	m.ytd_gross_pay = nil
	delete(m.clearedFields, paystub.FieldYtdGrossPay)
}

// SetYtdNetPay sets the "ytd_net_pay" field.
func (m *PaystubMutation) SetYtdNetPay(s string) {
	m.ytd_net_pay = &s
}

// YtdNetPay returns the value of the "ytd_net_pay" field in the mutation.
func (m *PaystubMutation) YtdNetPay() (r string, exists bool) {
	v := m.ytd_net_pay
	if v == nil {
		return
	}
	return *v, true
}

// OldYtdNetPay returns the old "ytd_net_pay" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldYtdNetPay(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldYtdNetPay is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldYtdNetPay requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldYtdNetPay: %w", err)
	}
	return oldValue.YtdNetPay, nil
}

// ClearYtdNetPay clears the value of the "ytd_net_pay" field.
func (m *PaystubMutation) ClearYtdNetPay() {
	m.ytd_net_pay = nil
	m.clearedFields[paystub.FieldYtdNetPay] = struct{}{}
}

// YtdNetPayCleared returns if the "ytd_net_pay" field was cleared in this mutation.
func (m *PaystubMutation) YtdNetPayCleared() bool {
	_, ok := m.clearedFields[paystub.FieldYtdNetPay]
	return ok
}

// ResetYtdNetPay resets all changes to the "ytd_net_pay" field.
func (m *PaystubMutation) ResetYtdNetPay() {
	m.ytd_net_pay = nil
	delete(m.clearedFields, paystub.FieldYtdNetPay)
}

// SetCurrencyCode sets the "currency_code" field.
func (m *PaystubMutation) SetCurrencyCode(s string) {
	m.currency_code = &s
}

// CurrencyCode returns the value of the "currency_code" field in the mutation.
func (m *PaystubMutation) CurrencyCode() (r string, exists bool) {
	v := m.currency_code
	if v == nil {
		return
	}
	return *v, true
}

// OldCurrencyCode returns the old "currency_code" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldCurrencyCode(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCurrencyCode is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCurrencyCode requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCurrencyCode: %w", err)
	}
	return oldValue.CurrencyCode, nil
}

// ResetCurrencyCode resets all changes to the "currency_code" field.
func (m *PaystubMutation) ResetCurrencyCode() {
	m.currency_code = nil
}

// SetPayPeriodStart sets the "pay_period_start" field.
func (m *PaystubMutation) SetPayPeriodStart(t time.Time) {
	m.pay_period_start = &t
}

// PayPeriodStart returns the value of the "pay_period_start" field in the mutation.
func (m *PaystubMutation) PayPeriodStart() (r time.Time, exists bool) {
	v := m.pay_period_start
	if v == nil {
		return
	}
	return *v, true
}

// OldPayPeriodStart returns the old "pay_period_start" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldPayPeriodStart(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayPeriodStart is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayPeriodStart requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayPeriodStart: %w", err)
	}
	return oldValue.PayPeriodStart, nil
}

// ClearPayPeriodStart clears the value of the "pay_period_start" field.
func (m *PaystubMutation) ClearPayPeriodStart() {
	m.pay_period_start = nil
	m.clearedFields[paystub.FieldPayPeriodStart] = struct{}{}
}

// PayPeriodStartCleared returns if the "pay_period_start" field was cleared in this mutation.
func (m *PaystubMutation) PayPeriodStartCleared() bool {
	_, ok := m.clearedFields[paystub.FieldPayPeriodStart]
	return ok
}

// ResetPayPeriodStart resets all changes to the "pay_period_start" field.
func (m *PaystubMutation) ResetPayPeriodStart() {
	m.pay_period_start = nil
	delete(m.clearedFields, paystub.FieldPayPeriodStart)
}

// SetPayPeriodEnd sets the "pay_period_end" field.
func (m *PaystubMutation) SetPayPeriodEnd(t time.Time) {
	m.pay_period_end = &t
}

// PayPeriodEnd returns the value of the "pay_period_end" field in the mutation.
func (m *PaystubMutation) PayPeriodEnd() (r time.Time, exists bool) {
	v := m.pay_period_end
	if v == nil {
		return
	}
	return *v, true
}

// OldPayPeriodEnd returns the old "pay_period_end" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldPayPeriodEnd(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayPeriodEnd is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayPeriodEnd requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayPeriodEnd: %w", err)
	}
	return oldValue.PayPeriodEnd, nil
}

// ClearPayPeriodEnd clears the value of the "pay_period_end" field.
func (m *PaystubMutation) ClearPayPeriodEnd() {
	m.pay_period_end = nil
	m.clearedFields[paystub.FieldPayPeriodEnd] = struct{}{}
}

// PayPeriodEndCleared returns if the "pay_period_end" field was cleared in this mutation.
func (m *PaystubMutation) PayPeriodEndCleared() bool {
	_, ok := m.clearedFields[paystub.FieldPayPeriodEnd]
	return ok
}

// ResetPayPeriodEnd resets all changes to the "pay_period_end" field.
func (m *PaystubMutation) ResetPayPeriodEnd() {
	m.pay_period_end = nil
	delete(m.clearedFields, paystub.FieldPayPeriodEnd)
}

// SetPayDate sets the "pay_date" field.
func (m *PaystubMutation) SetPayDate(t time.Time) {
	m.pay_date = &t
}

// PayDate returns the value of the "pay_date" field in the mutation.
func (m *PaystubMutation) PayDate() (r time.Time, exists bool) {
	v := m.pay_date
	if v == nil {
		return
	}
	return *v, true
}

// OldPayDate returns the old "pay_date" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldPayDate(ctx context.Context) (v *time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayDate is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayDate requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayDate: %w", err)
	}
	return oldValue.PayDate, nil
}

// ClearPayDate clears the value of the "pay_date" field.
func (m *PaystubMutation) ClearPayDate() {
	m.pay_date = nil
	m.clearedFields[paystub.FieldPayDate] = struct{}{}
}

// PayDateCleared returns if the "pay_date" field was cleared in this mutation.
func (m *PaystubMutation) PayDateCleared() bool {
	_, ok := m.clearedFields[paystub.FieldPayDate]
	return ok
}

// ResetPayDate resets all changes to the "pay_date" field.
func (m *PaystubMutation) ResetPayDate() {
	m.pay_date = nil
	delete(m.clearedFields, paystub.FieldPayDate)
}

// SetPayFrequency sets the "pay_frequency" field.
func (m *PaystubMutation) SetPayFrequency(s string) {
	m.pay_frequency = &s
}

// PayFrequency returns the value of the "pay_frequency" field in the mutation.
func (m *PaystubMutation) PayFrequency() (r string, exists bool) {
	v := m.pay_frequency
	if v == nil {
		return
	}
	return *v, true
}

// OldPayFrequency returns the old "pay_frequency" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldPayFrequency(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldPayFrequency is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldPayFrequency requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldPayFrequency: %w", err)
	}
	return oldValue.PayFrequency, nil
}

// ResetPayFrequency resets all changes to the "pay_frequency" field.
func (m *PaystubMutation) ResetPayFrequency() {
	m.pay_frequency = nil
}

// SetEmployeeName sets the "employee_name" field.
func (m *PaystubMutation) SetEmployeeName(s string) {
	m.employee_name = &s
}

// EmployeeName returns the value of the "employee_name" field in the mutation.
func (m *PaystubMutation) EmployeeName() (r string, exists bool) {
	v := m.employee_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeName returns the old "employee_name" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldEmployeeName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeName: %w", err)
	}
	return oldValue.EmployeeName, nil
}

// ClearEmployeeName clears the value of the "employee_name" field.
func (m *PaystubMutation) ClearEmployeeName() {
	m.employee_name = nil
	m.clearedFields[paystub.FieldEmployeeName] = struct{}{}
}

// EmployeeNameCleared returns if the "employee_name" field was cleared in this mutation.
func (m *PaystubMutation) EmployeeNameCleared() bool {
	_, ok := m.clearedFields[paystub.FieldEmployeeName]
	return ok
}

// ResetEmployeeName resets all changes to the "employee_name" field.
func (m *PaystubMutation) ResetEmployeeName() {
	m.employee_name = nil
	delete(m.clearedFields, paystub.FieldEmployeeName)
}

// SetEmployeeID sets the "employee_id" field.
func (m *PaystubMutation) SetEmployeeID(s string) {
	m.employee_id = &s
}

// EmployeeID returns the value of the "employee_id" field in the mutation.
func (m *PaystubMutation) EmployeeID() (r string, exists bool) {
	v := m.employee_id
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployeeID returns the old "employee_id" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldEmployeeID(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployeeID is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployeeID requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployeeID: %w", err)
	}
	return oldValue.EmployeeID, nil
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (m *PaystubMutation) ClearEmployeeID() {
	m.employee_id = nil
	m.clearedFields[paystub.FieldEmployeeID] = struct{}{}
}

// EmployeeIDCleared returns if the "employee_id" field was cleared in this mutation.
func (m *PaystubMutation) EmployeeIDCleared() bool {
	_, ok := m.clearedFields[paystub.FieldEmployeeID]
	return ok
}

// ResetEmployeeID resets all changes to the "employee_id" field.
func (m *PaystubMutation) ResetEmployeeID() {
	m.employee_id = nil
	delete(m.clearedFields, paystub.FieldEmployeeID)
}

// SetEmployerName sets the "employer_name" field.
func (m *PaystubMutation) SetEmployerName(s string) {
	m.employer_name = &s
}

// EmployerName returns the value of the "employer_name" field in the mutation.
func (m *PaystubMutation) EmployerName() (r string, exists bool) {
	v := m.employer_name
	if v == nil {
		return
	}
	return *v, true
}

// OldEmployerName returns the old "employer_name" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldEmployerName(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldEmployerName is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldEmployerName requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldEmployerName: %w", err)
	}
	return oldValue.EmployerName, nil
}

// ClearEmployerName clears the value of the "employer_name" field.
func (m *PaystubMutation) ClearEmployerName() {
	m.employer_name = nil
	m.clearedFields[paystub.FieldEmployerName] = struct{}{}
}

// EmployerNameCleared returns if the "employer_name" field was cleared in this mutation.
func (m *PaystubMutation) EmployerNameCleared() bool {
	_, ok := m.clearedFields[paystub.FieldEmployerName]
	return ok
}

// ResetEmployerName resets all changes to the "employer_name" field.
func (m *PaystubMutation) ResetEmployerName() {
	m.employer_name = nil
	delete(m.clearedFields, paystub.FieldEmployerName)
}

// SetDeductions sets the "deductions" field.
func (m *PaystubMutation) SetDeductions(jm json.RawMessage) {
	m.deductions = &jm
	m.appenddeductions = nil
}

// Deductions returns the value of the "deductions" field in the mutation.
func (m *PaystubMutation) Deductions() (r json.RawMessage, exists bool) {
	v := m.deductions
	if v == nil {
		return
	}
	return *v, true
}

// OldDeductions returns the old "deductions" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldDeductions(ctx context.Context) (v json.RawMessage, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldDeductions is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldDeductions requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldDeductions: %w", err)
	}
	return oldValue.Deductions, nil
}

// AppendDeductions adds jm to the "deductions" field.
func (m *PaystubMutation) AppendDeductions(jm json.RawMessage) {
	m.appenddeductions = append(m.appenddeductions, jm...)
}

// AppendedDeductions returns the list of values that were appended to the "deductions" field in this mutation.
func (m *PaystubMutation) AppendedDeductions() (json.RawMessage, bool) {
	if len(m.appenddeductions) == 0 {
		return nil, false
	}
	return m.appenddeductions, true
}

// ClearDeductions clears the value of the "deductions" field.
func (m *PaystubMutation) ClearDeductions() {
	m.deductions = nil
	m.appenddeductions = nil
	m.clearedFields[paystub.FieldDeductions] = struct{}{}
}

// DeductionsCleared returns if the "deductions" field was cleared in this mutation.
func (m *PaystubMutation) DeductionsCleared() bool {
	_, ok := m.clearedFields[paystub.FieldDeductions]
	return ok
}

// ResetDeductions resets all changes to the "deductions" field.
func (m *PaystubMutation) ResetDeductions() {
	m.deductions = nil
	m.appenddeductions = nil
	delete(m.clearedFields, paystub.FieldDeductions)
}

// SetOverallConfidence sets the "overall_confidence" field.
func (m *PaystubMutation) SetOverallConfidence(f float32) {
	m.overall_confidence = &f
	m.addoverall_confidence = nil
}

// OverallConfidence returns the value of the "overall_confidence" field in the mutation.
func (m *PaystubMutation) OverallConfidence() (r float32, exists bool) {
	v := m.overall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// OldOverallConfidence returns the old "overall_confidence" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldOverallConfidence(ctx context.Context) (v float32, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldOverallConfidence is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldOverallConfidence requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldOverallConfidence: %w", err)
	}
	return oldValue.OverallConfidence, nil
}

// AddOverallConfidence adds f to the "overall_confidence" field.
func (m *PaystubMutation) AddOverallConfidence(f float32) {
	if m.addoverall_confidence != nil {
		*m.addoverall_confidence += f
	} else {
		m.addoverall_confidence = &f
	}
}

// AddedOverallConfidence returns the value that was added to the "overall_confidence" field in this mutation.
func (m *PaystubMutation) AddedOverallConfidence() (r float32, exists bool) {
	v := m.addoverall_confidence
	if v == nil {
		return
	}
	return *v, true
}

// ResetOverallConfidence resets all changes to the "overall_confidence" field.
func (m *PaystubMutation) ResetOverallConfidence() {
	m.overall_confidence = nil
	m.addoverall_confidence = nil
}

// SetRawText sets the "raw_text" field.
func (m *PaystubMutation) SetRawText(s string) {
	m.raw_text = &s
}

// RawText returns the value of the "raw_text" field in the mutation.
func (m *PaystubMutation) RawText() (r string, exists bool) {
	v := m.raw_text
	if v == nil {
		return
	}
	return *v, true
}

// OldRawText returns the old "raw_text" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldRawText(ctx context.Context) (v *string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldRawText is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldRawText requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldRawText: %w", err)
	}
	return oldValue.RawText, nil
}

// ClearRawText clears the value of the "raw_text" field.
func (m *PaystubMutation) ClearRawText() {
	m.raw_text = nil
	m.clearedFields[paystub.FieldRawText] = struct{}{}
}

// RawTextCleared returns if the "raw_text" field was cleared in this mutation.
func (m *PaystubMutation) RawTextCleared() bool {
	_, ok := m.clearedFields[paystub.FieldRawText]
	return ok
}

// ResetRawText resets all changes to the "raw_text" field.
func (m *PaystubMutation) ResetRawText() {
	m.raw_text = nil
	delete(m.clearedFields, paystub.FieldRawText)
}

// SetCreatedAt sets the "created_at" field.
func (m *PaystubMutation) SetCreatedAt(t time.Time) {
	m.created_at = &t
}

// CreatedAt returns the value of the "created_at" field in the mutation.
func (m *PaystubMutation) CreatedAt() (r time.Time, exists bool) {
	v := m.created_at
	if v == nil {
		return
	}
	return *v, true
}

// OldCreatedAt returns the old "created_at" field's value of the Paystub entity.
// If the Paystub object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubMutation) OldCreatedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldCreatedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldCreatedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldCreatedAt: %w", err)
	}
	return oldValue.CreatedAt, nil
}

// ResetCreatedAt resets all changes to the "created_at" field.
func (m *PaystubMutation) ResetCreatedAt() {
	m.created_at = nil
}

// ClearFile clears the "file" edge to the PaystubFile entity.
func (m *PaystubMutation) ClearFile() {
	m.clearedfile = true
	m.clearedFields[paystub.FieldFileID] = struct{}{}
}

// FileCleared reports if the "file" edge to the PaystubFile entity was cleared.
func (m *PaystubMutation) FileCleared() bool {
	return m.clearedfile
}

// FileIDs returns the "file" edge IDs in the mutation.
// Note that IDs always returns len(IDs) <= 1 for unique edges, and you should use
// FileID instead. It exists only for internal usage by the builders.
func (m *PaystubMutation) FileIDs() (ids []uuid.UUID) {
	if id := m.file; id != nil {
		ids = append(ids, *id)
	}
	return
}

// ResetFile resets all changes to the "file" edge.
func (m *PaystubMutation) ResetFile() {
	m.file = nil
	m.clearedfile = false
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *PaystubMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *PaystubMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *PaystubMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *PaystubMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *PaystubMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *PaystubMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *PaystubMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// Where appends a list predicates to the PaystubMutation builder.
func (m *PaystubMutation) Where(ps ...predicate.Paystub) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaystubMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaystubMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.Paystub, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaystubMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaystubMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (Paystub).
func (m *PaystubMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaystubMutation) Fields() []string {
	fields := make([]string, 0, 18)
	if m.file != nil {
		fields = append(fields, paystub.FieldFileID)
	}
	if m.provider != nil {
		fields = append(fields, paystub.FieldProvider)
	}
	if m.gross_pay != nil {
		fields = append(fields, paystub.FieldGrossPay)
	}
	if m.net_pay != nil {
		fields = append(fields, paystub.FieldNetPay)
	}
	if m.ytd_gross_pay != nil {
		fields = append(fields, paystub.FieldYtdGrossPay)
	}
	if m.ytd_net_pay != nil {
		fields = append(fields, paystub.FieldYtdNetPay)
	}
	if m.currency_code != nil {
		fields = append(fields, paystub.FieldCurrencyCode)
	}
	if m.pay_period_start != nil {
		fields = append(fields, paystub.FieldPayPeriodStart)
	}
	if m.pay_period_end != nil {
		fields = append(fields, paystub.FieldPayPeriodEnd)
	}
	if m.pay_date != nil {
		fields = append(fields, paystub.FieldPayDate)
	}
	if m.pay_frequency != nil {
		fields = append(fields, paystub.FieldPayFrequency)
	}
	if m.employee_name != nil {
		fields = append(fields, paystub.FieldEmployeeName)
	}
	if m.employee_id != nil {
		fields = append(fields, paystub.FieldEmployeeID)
	}
	if m.employer_name != nil {
		fields = append(fields, paystub.FieldEmployerName)
	}
	if m.deductions != nil {
		fields = append(fields, paystub.FieldDeductions)
	}
	if m.overall_confidence != nil {
		fields = append(fields, paystub.FieldOverallConfidence)
	}
	if m.raw_text != nil {
		fields = append(fields, paystub.FieldRawText)
	}
	if m.created_at != nil {
		fields = append(fields, paystub.FieldCreatedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaystubMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paystub.FieldFileID:
		return m.FileID()
	case paystub.FieldProvider:
		return m.Provider()
	case paystub.FieldGrossPay:
		return m.GrossPay()
	case paystub.FieldNetPay:
		return m.NetPay()
	case paystub.FieldYtdGrossPay:
		return m.YtdGrossPay()
	case paystub.FieldYtdNetPay:
		return m.YtdNetPay()
	case paystub.FieldCurrencyCode:
		return m.CurrencyCode()
	case paystub.FieldPayPeriodStart:
		return m.PayPeriodStart()
	case paystub.FieldPayPeriodEnd:
		return m.PayPeriodEnd()
	case paystub.FieldPayDate:
		return m.PayDate()
	case paystub.FieldPayFrequency:
		return m.PayFrequency()
	case paystub.FieldEmployeeName:
		return m.EmployeeName()
	case paystub.FieldEmployeeID:
		return m.EmployeeID()
	case paystub.FieldEmployerName:
		return m.EmployerName()
	case paystub.FieldDeductions:
		return m.Deductions()
	case paystub.FieldOverallConfidence:
		return m.OverallConfidence()
	case paystub.FieldRawText:
		return m.RawText()
	case paystub.FieldCreatedAt:
		return m.CreatedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaystubMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paystub.FieldFileID:
		return m.OldFileID(ctx)
	case paystub.FieldProvider:
		return m.OldProvider(ctx)
	case paystub.FieldGrossPay:
		return m.OldGrossPay(ctx)
	case paystub.FieldNetPay:
		return m.OldNetPay(ctx)
	case paystub.FieldYtdGrossPay:
		return m.OldYtdGrossPay(ctx)
	case paystub.FieldYtdNetPay:
		return m.OldYtdNetPay(ctx)
	case paystub.FieldCurrencyCode:
		return m.OldCurrencyCode(ctx)
	case paystub.FieldPayPeriodStart:
		return m.OldPayPeriodStart(ctx)
	case paystub.FieldPayPeriodEnd:
		return m.OldPayPeriodEnd(ctx)
	case paystub.FieldPayDate:
		return m.OldPayDate(ctx)
	case paystub.FieldPayFrequency:
		return m.OldPayFrequency(ctx)
	case paystub.FieldEmployeeName:
		return m.OldEmployeeName(ctx)
	case paystub.FieldEmployeeID:
		return m.OldEmployeeID(ctx)
	case paystub.FieldEmployerName:
		return m.OldEmployerName(ctx)
	case paystub.FieldDeductions:
		return m.OldDeductions(ctx)
	case paystub.FieldOverallConfidence:
		return m.OldOverallConfidence(ctx)
	case paystub.FieldRawText:
		return m.OldRawText(ctx)
	case paystub.FieldCreatedAt:
		return m.OldCreatedAt(ctx)
	}
	return nil, fmt.Errorf("unknown Paystub field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaystubMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paystub.FieldFileID:
		v, ok := value.(uuid.UUID)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileID(v)
		return nil
	case paystub.FieldProvider:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetProvider(v)
		return nil
	case paystub.FieldGrossPay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetGrossPay(v)
		return nil
	case paystub.FieldNetPay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetNetPay(v)
		return nil
	case paystub.FieldYtdGrossPay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYtdGrossPay(v)
		return nil
	case paystub.FieldYtdNetPay:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetYtdNetPay(v)
		return nil
	case paystub.FieldCurrencyCode:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCurrencyCode(v)
		return nil
	case paystub.FieldPayPeriodStart:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayPeriodStart(v)
		return nil
	case paystub.FieldPayPeriodEnd:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayPeriodEnd(v)
		return nil
	case paystub.FieldPayDate:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayDate(v)
		return nil
	case paystub.FieldPayFrequency:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetPayFrequency(v)
		return nil
	case paystub.FieldEmployeeName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeName(v)
		return nil
	case paystub.FieldEmployeeID:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployeeID(v)
		return nil
	case paystub.FieldEmployerName:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetEmployerName(v)
		return nil
	case paystub.FieldDeductions:
		v, ok := value.(json.RawMessage)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetDeductions(v)
		return nil
	case paystub.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetOverallConfidence(v)
		return nil
	case paystub.FieldRawText:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetRawText(v)
		return nil
	case paystub.FieldCreatedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetCreatedAt(v)
		return nil
	}
	return fmt.Errorf("unknown Paystub field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaystubMutation) AddedFields() []string {
	var fields []string
	if m.addoverall_confidence != nil {
		fields = append(fields, paystub.FieldOverallConfidence)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaystubMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paystub.FieldOverallConfidence:
		return m.AddedOverallConfidence()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaystubMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paystub.FieldOverallConfidence:
		v, ok := value.(float32)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddOverallConfidence(v)
		return nil
	}
	return fmt.Errorf("unknown Paystub numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaystubMutation) ClearedFields() []string {
	var fields []string
	if m.FieldCleared(paystub.FieldGrossPay) {
		fields = append(fields, paystub.FieldGrossPay)
	}
	if m.FieldCleared(paystub.FieldNetPay) {
		fields = append(fields, paystub.FieldNetPay)
	}
	if m.FieldCleared(paystub.FieldYtdGrossPay) {
		fields = append(fields, paystub.FieldYtdGrossPay)
	}
	if m.FieldCleared(paystub.FieldYtdNetPay) {
		fields = append(fields, paystub.FieldYtdNetPay)
	}
	if m.FieldCleared(paystub.FieldPayPeriodStart) {
		fields = append(fields, paystub.FieldPayPeriodStart)
	}
	if m.FieldCleared(paystub.FieldPayPeriodEnd) {
		fields = append(fields, paystub.FieldPayPeriodEnd)
	}
	if m.FieldCleared(paystub.FieldPayDate) {
		fields = append(fields, paystub.FieldPayDate)
	}
	if m.FieldCleared(paystub.FieldEmployeeName) {
		fields = append(fields, paystub.FieldEmployeeName)
	}
	if m.FieldCleared(paystub.FieldEmployeeID) {
		fields = append(fields, paystub.FieldEmployeeID)
	}
	if m.FieldCleared(paystub.FieldEmployerName) {
		fields = append(fields, paystub.FieldEmployerName)
	}
	if m.FieldCleared(paystub.FieldDeductions) {
		fields = append(fields, paystub.FieldDeductions)
	}
	if m.FieldCleared(paystub.FieldRawText) {
		fields = append(fields, paystub.FieldRawText)
	}
	return fields
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaystubMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaystubMutation) ClearField(name string) error {
	switch name {
	case paystub.FieldGrossPay:
		m.ClearGrossPay()
		return nil
	case paystub.FieldNetPay:
		m.ClearNetPay()
		return nil
	case paystub.FieldYtdGrossPay:
		m.ClearYtdGrossPay()
		return nil
	case paystub.FieldYtdNetPay:
		m.ClearYtdNetPay()
		return nil
	case paystub.FieldPayPeriodStart:
		m.ClearPayPeriodStart()
		return nil
	case paystub.FieldPayPeriodEnd:
		m.ClearPayPeriodEnd()
		return nil
	case paystub.FieldPayDate:
		m.ClearPayDate()
		return nil
	case paystub.FieldEmployeeName:
		m.ClearEmployeeName()
		return nil
	case paystub.FieldEmployeeID:
		m.ClearEmployeeID()
		return nil
	case paystub.FieldEmployerName:
		m.ClearEmployerName()
		return nil
	case paystub.FieldDeductions:
		m.ClearDeductions()
		return nil
	case paystub.FieldRawText:
		m.ClearRawText()
		return nil
	}
	return fmt.Errorf("unknown Paystub nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaystubMutation) ResetField(name string) error {
	switch name {
	case paystub.FieldFileID:
		m.ResetFileID()
		return nil
	case paystub.FieldProvider:
		m.ResetProvider()
		return nil
	case paystub.FieldGrossPay:
		m.ResetGrossPay()
		return nil
	case paystub.FieldNetPay:
		m.ResetNetPay()
		return nil
	case paystub.FieldYtdGrossPay:
		m.ResetYtdGrossPay()
		return nil
	case paystub.FieldYtdNetPay:
		m.ResetYtdNetPay()
		return nil
	case paystub.FieldCurrencyCode:
		m.ResetCurrencyCode()
		return nil
	case paystub.FieldPayPeriodStart:
		m.ResetPayPeriodStart()
		return nil
	case paystub.FieldPayPeriodEnd:
		m.ResetPayPeriodEnd()
		return nil
	case paystub.FieldPayDate:
		m.ResetPayDate()
		return nil
	case paystub.FieldPayFrequency:
		m.ResetPayFrequency()
		return nil
	case paystub.FieldEmployeeName:
		m.ResetEmployeeName()
		return nil
	case paystub.FieldEmployeeID:
		m.ResetEmployeeID()
		return nil
	case paystub.FieldEmployerName:
		m.ResetEmployerName()
		return nil
	case paystub.FieldDeductions:
		m.ResetDeductions()
		return nil
	case paystub.FieldOverallConfidence:
		m.ResetOverallConfidence()
		return nil
	case paystub.FieldRawText:
		m.ResetRawText()
		return nil
	case paystub.FieldCreatedAt:
		m.ResetCreatedAt()
		return nil
	}
	return fmt.Errorf("unknown Paystub field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaystubMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.file != nil {
		edges = append(edges, paystub.EdgeFile)
	}
	if m.jobs != nil {
		edges = append(edges, paystub.EdgeJobs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaystubMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paystub.EdgeFile:
		if id := m.file; id != nil {
			return []ent.Value{*id}
		}
	case paystub.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaystubMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, paystub.EdgeJobs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaystubMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case paystub.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaystubMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedfile {
		edges = append(edges, paystub.EdgeFile)
	}
	if m.clearedjobs {
		edges = append(edges, paystub.EdgeJobs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaystubMutation) EdgeCleared(name string) bool {
	switch name {
	case paystub.EdgeFile:
		return m.clearedfile
	case paystub.EdgeJobs:
		return m.clearedjobs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaystubMutation) ClearEdge(name string) error {
	switch name {
	case paystub.EdgeFile:
		m.ClearFile()
		return nil
	}
	return fmt.Errorf("unknown Paystub unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaystubMutation) ResetEdge(name string) error {
	switch name {
	case paystub.EdgeFile:
		m.ResetFile()
		return nil
	case paystub.EdgeJobs:
		m.ResetJobs()
		return nil
	}
	return fmt.Errorf("unknown Paystub edge %s", name)
}

// PaystubFileMutation represents an operation that mutates the PaystubFile nodes in the graph.
type PaystubFileMutation struct {
	config
	op              Op
	typ             string
	id              *uuid.UUID
	source_path     *string
	content_hash    *[]byte
	filename        *string
	file_ext        *string
	content_type    *string
	file_size       *int
	addfile_size    *int
	uploaded_at     *time.Time
	clearedFields   map[string]struct{}
	jobs            map[uuid.UUID]struct{}
	removedjobs     map[uuid.UUID]struct{}
	clearedjobs     bool
	paystubs        map[uuid.UUID]struct{}
	removedpaystubs map[uuid.UUID]struct{}
	clearedpaystubs bool
	done            bool
	oldValue        func(context.Context) (*PaystubFile, error)
	predicates      []predicate.PaystubFile
}

var _ ent.Mutation = (*PaystubFileMutation)(nil)

// paystubfileOption allows management of the mutation configuration using functional options.
type paystubfileOption func(*PaystubFileMutation)

// newPaystubFileMutation creates new mutation for the PaystubFile entity.
func newPaystubFileMutation(c config, op Op, opts ...paystubfileOption) *PaystubFileMutation {
	m := &PaystubFileMutation{
		config:        c,
		op:            op,
		typ:           TypePaystubFile,
		clearedFields: make(map[string]struct{}),
	}
	for _, opt := range opts {
		opt(m)
	}
	return m
}

// withPaystubFileID sets the ID field of the mutation.
func withPaystubFileID(id uuid.UUID) paystubfileOption {
	return func(m *PaystubFileMutation) {
		var (
			err   error
			once  sync.Once
			value *PaystubFile
		)
		m.oldValue = func(ctx context.Context) (*PaystubFile, error) {
			once.Do(func() {
				if m.done {
					err = errors.New("querying old values post mutation is not allowed")
				} else {
					value, err = m.Client().PaystubFile.Get(ctx, id)
				}
			})
			return value, err
		}
		m.id = &id
	}
}

// withPaystubFile sets the old PaystubFile of the mutation.
func withPaystubFile(node *PaystubFile) paystubfileOption {
	return func(m *PaystubFileMutation) {
		m.oldValue = func(context.Context) (*PaystubFile, error) {
			return node, nil
		}
		m.id = &node.ID
	}
}

// Client returns a new `ent.Client` from the mutation. If the mutation was
// executed in a transaction (ent.Tx), a transactional client is returned.
func (m PaystubFileMutation) Client() *Client {
	client := &Client{config: m.config}
	client.init()
	return client
}

// Tx returns an `ent.Tx` for mutations that were executed in transactions;
// it returns an error otherwise.
func (m PaystubFileMutation) Tx() (*Tx, error) {
	if _, ok := m.driver.(*txDriver); !ok {
		return nil, errors.New("ent: mutation is not running in a transaction")
	}
	tx := &Tx{config: m.config}
	tx.init()
	return tx, nil
}

// SetID sets the value of the id field. Note that this
// operation is only accepted on creation of PaystubFile entities.
func (m *PaystubFileMutation) SetID(id uuid.UUID) {
	m.id = &id
}

// ID returns the ID value in the mutation. Note that the ID is only available
// if it was provided to the builder or after it was returned from the database.
func (m *PaystubFileMutation) ID() (id uuid.UUID, exists bool) {
	if m.id == nil {
		return
	}
	return *m.id, true
}

// IDs queries the database and returns the entity ids that match the mutation's predicate.
// That means, if the mutation is applied within a transaction with an isolation level such
// as sql.LevelSerializable, the returned ids match the ids of the rows that will be updated
// or updated by the mutation.
func (m *PaystubFileMutation) IDs(ctx context.Context) ([]uuid.UUID, error) {
	switch {
	case m.op.Is(OpUpdateOne | OpDeleteOne):
		id, exists := m.ID()
		if exists {
			return []uuid.UUID{id}, nil
		}
		fallthrough
	case m.op.Is(OpUpdate | OpDelete):
		return m.Client().PaystubFile.Query().Where(m.predicates...).IDs(ctx)
	default:
		return nil, fmt.Errorf("IDs is not allowed on %s operations", m.op)
	}
}

// SetSourcePath sets the "source_path" field.
func (m *PaystubFileMutation) SetSourcePath(s string) {
	m.source_path = &s
}

// SourcePath returns the value of the "source_path" field in the mutation.
func (m *PaystubFileMutation) SourcePath() (r string, exists bool) {
	v := m.source_path
	if v == nil {
		return
	}
	return *v, true
}

// OldSourcePath returns the old "source_path" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldSourcePath(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldSourcePath is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldSourcePath requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldSourcePath: %w", err)
	}
	return oldValue.SourcePath, nil
}

// ResetSourcePath resets all changes to the "source_path" field.
func (m *PaystubFileMutation) ResetSourcePath() {
	m.source_path = nil
}

// SetContentHash sets the "content_hash" field.
func (m *PaystubFileMutation) SetContentHash(b []byte) {
	m.content_hash = &b
}

// ContentHash returns the value of the "content_hash" field in the mutation.
func (m *PaystubFileMutation) ContentHash() (r []byte, exists bool) {
	v := m.content_hash
	if v == nil {
		return
	}
	return *v, true
}

// OldContentHash returns the old "content_hash" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldContentHash(ctx context.Context) (v []byte, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentHash is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentHash requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentHash: %w", err)
	}
	return oldValue.ContentHash, nil
}

// ResetContentHash resets all changes to the "content_hash" field.
func (m *PaystubFileMutation) ResetContentHash() {
	m.content_hash = nil
}

// SetFilename sets the "filename" field.
func (m *PaystubFileMutation) SetFilename(s string) {
	m.filename = &s
}

// Filename returns the value of the "filename" field in the mutation.
func (m *PaystubFileMutation) Filename() (r string, exists bool) {
	v := m.filename
	if v == nil {
		return
	}
	return *v, true
}

// OldFilename returns the old "filename" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldFilename(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFilename is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFilename requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFilename: %w", err)
	}
	return oldValue.Filename, nil
}

// ResetFilename resets all changes to the "filename" field.
func (m *PaystubFileMutation) ResetFilename() {
	m.filename = nil
}

// SetFileExt sets the "file_ext" field.
func (m *PaystubFileMutation) SetFileExt(s string) {
	m.file_ext = &s
}

// FileExt returns the value of the "file_ext" field in the mutation.
func (m *PaystubFileMutation) FileExt() (r string, exists bool) {
	v := m.file_ext
	if v == nil {
		return
	}
	return *v, true
}

// OldFileExt returns the old "file_ext" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldFileExt(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileExt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileExt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileExt: %w", err)
	}
	return oldValue.FileExt, nil
}

// ResetFileExt resets all changes to the "file_ext" field.
func (m *PaystubFileMutation) ResetFileExt() {
	m.file_ext = nil
}

// SetContentType sets the "content_type" field.
func (m *PaystubFileMutation) SetContentType(s string) {
	m.content_type = &s
}

// ContentType returns the value of the "content_type" field in the mutation.
func (m *PaystubFileMutation) ContentType() (r string, exists bool) {
	v := m.content_type
	if v == nil {
		return
	}
	return *v, true
}

// OldContentType returns the old "content_type" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldContentType(ctx context.Context) (v string, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldContentType is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldContentType requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldContentType: %w", err)
	}
	return oldValue.ContentType, nil
}

// ResetContentType resets all changes to the "content_type" field.
func (m *PaystubFileMutation) ResetContentType() {
	m.content_type = nil
}

// SetFileSize sets the "file_size" field.
func (m *PaystubFileMutation) SetFileSize(i int) {
	m.file_size = &i
	m.addfile_size = nil
}

// FileSize returns the value of the "file_size" field in the mutation.
func (m *PaystubFileMutation) FileSize() (r int, exists bool) {
	v := m.file_size
	if v == nil {
		return
	}
	return *v, true
}

// OldFileSize returns the old "file_size" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldFileSize(ctx context.Context) (v int, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldFileSize is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldFileSize requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldFileSize: %w", err)
	}
	return oldValue.FileSize, nil
}

// AddFileSize adds i to the "file_size" field.
func (m *PaystubFileMutation) AddFileSize(i int) {
	if m.addfile_size != nil {
		*m.addfile_size += i
	} else {
		m.addfile_size = &i
	}
}

// AddedFileSize returns the value that was added to the "file_size" field in this mutation.
func (m *PaystubFileMutation) AddedFileSize() (r int, exists bool) {
	v := m.addfile_size
	if v == nil {
		return
	}
	return *v, true
}

// ResetFileSize resets all changes to the "file_size" field.
func (m *PaystubFileMutation) ResetFileSize() {
	m.file_size = nil
	m.addfile_size = nil
}

// SetUploadedAt sets the "uploaded_at" field.
func (m *PaystubFileMutation) SetUploadedAt(t time.Time) {
	m.uploaded_at = &t
}

// UploadedAt returns the value of the "uploaded_at" field in the mutation.
func (m *PaystubFileMutation) UploadedAt() (r time.Time, exists bool) {
	v := m.uploaded_at
	if v == nil {
		return
	}
	return *v, true
}

// OldUploadedAt returns the old "uploaded_at" field's value of the PaystubFile entity.
// If the PaystubFile object wasn't provided to the builder, the object is fetched from the database.
// An error is returned if the mutation operation is not UpdateOne, or the database query fails.
func (m *PaystubFileMutation) OldUploadedAt(ctx context.Context) (v time.Time, err error) {
	if !m.op.Is(OpUpdateOne) {
		return v, errors.New("OldUploadedAt is only allowed on UpdateOne operations")
	}
	if m.id == nil || m.oldValue == nil {
		return v, errors.New("OldUploadedAt requires an ID field in the mutation")
	}
	oldValue, err := m.oldValue(ctx)
	if err != nil {
		return v, fmt.Errorf("querying old value for OldUploadedAt: %w", err)
	}
	return oldValue.UploadedAt, nil
}

// ResetUploadedAt resets all changes to the "uploaded_at" field.
func (m *PaystubFileMutation) ResetUploadedAt() {
	m.uploaded_at = nil
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by ids.
func (m *PaystubFileMutation) AddJobIDs(ids ...uuid.UUID) {
	if m.jobs == nil {
		m.jobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.jobs[ids[i]] = struct{}{}
	}
}

// ClearJobs clears the "jobs" edge to the ExtractJob entity.
func (m *PaystubFileMutation) ClearJobs() {
	m.clearedjobs = true
}

// JobsCleared reports if the "jobs" edge to the ExtractJob entity was cleared.
func (m *PaystubFileMutation) JobsCleared() bool {
	return m.clearedjobs
}

// RemoveJobIDs removes the "jobs" edge to the ExtractJob entity by IDs.
func (m *PaystubFileMutation) RemoveJobIDs(ids ...uuid.UUID) {
	if m.removedjobs == nil {
		m.removedjobs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.jobs, ids[i])
		m.removedjobs[ids[i]] = struct{}{}
	}
}

// RemovedJobs returns the removed IDs of the "jobs" edge to the ExtractJob entity.
func (m *PaystubFileMutation) RemovedJobsIDs() (ids []uuid.UUID) {
	for id := range m.removedjobs {
		ids = append(ids, id)
	}
	return
}

// JobsIDs returns the "jobs" edge IDs in the mutation.
func (m *PaystubFileMutation) JobsIDs() (ids []uuid.UUID) {
	for id := range m.jobs {
		ids = append(ids, id)
	}
	return
}

// ResetJobs resets all changes to the "jobs" edge.
func (m *PaystubFileMutation) ResetJobs() {
	m.jobs = nil
	m.clearedjobs = false
	m.removedjobs = nil
}

// AddPaystubIDs adds the "paystubs" edge to the Paystub entity by ids.
func (m *PaystubFileMutation) AddPaystubIDs(ids ...uuid.UUID) {
	if m.paystubs == nil {
		m.paystubs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		m.paystubs[ids[i]] = struct{}{}
	}
}

// ClearPaystubs clears the "paystubs" edge to the Paystub entity.
func (m *PaystubFileMutation) ClearPaystubs() {
	m.clearedpaystubs = true
}

// PaystubsCleared reports if the "paystubs" edge to the Paystub entity was cleared.
func (m *PaystubFileMutation) PaystubsCleared() bool {
	return m.clearedpaystubs
}

// RemovePaystubIDs removes the "paystubs" edge to the Paystub entity by IDs.
func (m *PaystubFileMutation) RemovePaystubIDs(ids ...uuid.UUID) {
	if m.removedpaystubs == nil {
		m.removedpaystubs = make(map[uuid.UUID]struct{})
	}
	for i := range ids {
		delete(m.paystubs, ids[i])
		m.removedpaystubs[ids[i]] = struct{}{}
	}
}

// RemovedPaystubs returns the removed IDs of the "paystubs" edge to the Paystub entity.
func (m *PaystubFileMutation) RemovedPaystubsIDs() (ids []uuid.UUID) {
	for id := range m.removedpaystubs {
		ids = append(ids, id)
	}
	return
}

// PaystubsIDs returns the "paystubs" edge IDs in the mutation.
func (m *PaystubFileMutation) PaystubsIDs() (ids []uuid.UUID) {
	for id := range m.paystubs {
		ids = append(ids, id)
	}
	return
}

// ResetPaystubs resets all changes to the "paystubs" edge.
func (m *PaystubFileMutation) ResetPaystubs() {
	m.paystubs = nil
	m.clearedpaystubs = false
	m.removedpaystubs = nil
}

// Where appends a list predicates to the PaystubFileMutation builder.
func (m *PaystubFileMutation) Where(ps ...predicate.PaystubFile) {
	m.predicates = append(m.predicates, ps...)
}

// WhereP appends storage-level predicates to the PaystubFileMutation builder. Using this method,
// users can use type-assertion to append predicates that do not depend on any generated package.
func (m *PaystubFileMutation) WhereP(ps ...func(*sql.Selector)) {
	p := make([]predicate.PaystubFile, len(ps))
	for i := range ps {
		p[i] = ps[i]
	}
	m.Where(p...)
}

// Op returns the operation name.
func (m *PaystubFileMutation) Op() Op {
	return m.op
}

// SetOp allows setting the mutation operation.
func (m *PaystubFileMutation) SetOp(op Op) {
	m.op = op
}

// Type returns the node type of this mutation (PaystubFile).
func (m *PaystubFileMutation) Type() string {
	return m.typ
}

// Fields returns all fields that were changed during this mutation. Note that in
// order to get all numeric fields that were incremented/decremented, call
// AddedFields().
func (m *PaystubFileMutation) Fields() []string {
	fields := make([]string, 0, 7)
	if m.source_path != nil {
		fields = append(fields, paystubfile.FieldSourcePath)
	}
	if m.content_hash != nil {
		fields = append(fields, paystubfile.FieldContentHash)
	}
	if m.filename != nil {
		fields = append(fields, paystubfile.FieldFilename)
	}
	if m.file_ext != nil {
		fields = append(fields, paystubfile.FieldFileExt)
	}
	if m.content_type != nil {
		fields = append(fields, paystubfile.FieldContentType)
	}
	if m.file_size != nil {
		fields = append(fields, paystubfile.FieldFileSize)
	}
	if m.uploaded_at != nil {
		fields = append(fields, paystubfile.FieldUploadedAt)
	}
	return fields
}

// Field returns the value of a field with the given name. The second boolean
// return value indicates that this field was not set, or was not defined in the
// schema.
func (m *PaystubFileMutation) Field(name string) (ent.Value, bool) {
	switch name {
	case paystubfile.FieldSourcePath:
		return m.SourcePath()
	case paystubfile.FieldContentHash:
		return m.ContentHash()
	case paystubfile.FieldFilename:
		return m.Filename()
	case paystubfile.FieldFileExt:
		return m.FileExt()
	case paystubfile.FieldContentType:
		return m.ContentType()
	case paystubfile.FieldFileSize:
		return m.FileSize()
	case paystubfile.FieldUploadedAt:
		return m.UploadedAt()
	}
	return nil, false
}

// OldField returns the old value of the field from the database. An error is
// returned if the mutation operation is not UpdateOne, or the query to the
// database failed.
func (m *PaystubFileMutation) OldField(ctx context.Context, name string) (ent.Value, error) {
	switch name {
	case paystubfile.FieldSourcePath:
		return m.OldSourcePath(ctx)
	case paystubfile.FieldContentHash:
		return m.OldContentHash(ctx)
	case paystubfile.FieldFilename:
		return m.OldFilename(ctx)
	case paystubfile.FieldFileExt:
		return m.OldFileExt(ctx)
	case paystubfile.FieldContentType:
		return m.OldContentType(ctx)
	case paystubfile.FieldFileSize:
		return m.OldFileSize(ctx)
	case paystubfile.FieldUploadedAt:
		return m.OldUploadedAt(ctx)
	}
	return nil, fmt.Errorf("unknown PaystubFile field %s", name)
}

// SetField sets the value of a field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaystubFileMutation) SetField(name string, value ent.Value) error {
	switch name {
	case paystubfile.FieldSourcePath:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetSourcePath(v)
		return nil
	case paystubfile.FieldContentHash:
		v, ok := value.([]byte)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentHash(v)
		return nil
	case paystubfile.FieldFilename:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFilename(v)
		return nil
	case paystubfile.FieldFileExt:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileExt(v)
		return nil
	case paystubfile.FieldContentType:
		v, ok := value.(string)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetContentType(v)
		return nil
	case paystubfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetFileSize(v)
		return nil
	case paystubfile.FieldUploadedAt:
		v, ok := value.(time.Time)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.SetUploadedAt(v)
		return nil
	}
	return fmt.Errorf("unknown PaystubFile field %s", name)
}

// AddedFields returns all numeric fields that were incremented/decremented during
// this mutation.
func (m *PaystubFileMutation) AddedFields() []string {
	var fields []string
	if m.addfile_size != nil {
		fields = append(fields, paystubfile.FieldFileSize)
	}
	return fields
}

// AddedField returns the numeric value that was incremented/decremented on a field
// with the given name. The second boolean return value indicates that this field
// was not set, or was not defined in the schema.
func (m *PaystubFileMutation) AddedField(name string) (ent.Value, bool) {
	switch name {
	case paystubfile.FieldFileSize:
		return m.AddedFileSize()
	}
	return nil, false
}

// AddField adds the value to the field with the given name. It returns an error if
// the field is not defined in the schema, or if the type mismatched the field
// type.
func (m *PaystubFileMutation) AddField(name string, value ent.Value) error {
	switch name {
	case paystubfile.FieldFileSize:
		v, ok := value.(int)
		if !ok {
			return fmt.Errorf("unexpected type %T for field %s", value, name)
		}
		m.AddFileSize(v)
		return nil
	}
	return fmt.Errorf("unknown PaystubFile numeric field %s", name)
}

// ClearedFields returns all nullable fields that were cleared during this
// mutation.
func (m *PaystubFileMutation) ClearedFields() []string {
	return nil
}

// FieldCleared returns a boolean indicating if a field with the given name was
// cleared in this mutation.
func (m *PaystubFileMutation) FieldCleared(name string) bool {
	_, ok := m.clearedFields[name]
	return ok
}

// ClearField clears the value of the field with the given name. It returns an
// error if the field is not defined in the schema.
func (m *PaystubFileMutation) ClearField(name string) error {
	return fmt.Errorf("unknown PaystubFile nullable field %s", name)
}

// ResetField resets all changes in the mutation for the field with the given name.
// It returns an error if the field is not defined in the schema.
func (m *PaystubFileMutation) ResetField(name string) error {
	switch name {
	case paystubfile.FieldSourcePath:
		m.ResetSourcePath()
		return nil
	case paystubfile.FieldContentHash:
		m.ResetContentHash()
		return nil
	case paystubfile.FieldFilename:
		m.ResetFilename()
		return nil
	case paystubfile.FieldFileExt:
		m.ResetFileExt()
		return nil
	case paystubfile.FieldContentType:
		m.ResetContentType()
		return nil
	case paystubfile.FieldFileSize:
		m.ResetFileSize()
		return nil
	case paystubfile.FieldUploadedAt:
		m.ResetUploadedAt()
		return nil
	}
	return fmt.Errorf("unknown PaystubFile field %s", name)
}

// AddedEdges returns all edge names that were set/added in this mutation.
func (m *PaystubFileMutation) AddedEdges() []string {
	edges := make([]string, 0, 2)
	if m.jobs != nil {
		edges = append(edges, paystubfile.EdgeJobs)
	}
	if m.paystubs != nil {
		edges = append(edges, paystubfile.EdgePaystubs)
	}
	return edges
}

// AddedIDs returns all IDs (to other nodes) that were added for the given edge
// name in this mutation.
func (m *PaystubFileMutation) AddedIDs(name string) []ent.Value {
	switch name {
	case paystubfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.jobs))
		for id := range m.jobs {
			ids = append(ids, id)
		}
		return ids
	case paystubfile.EdgePaystubs:
		ids := make([]ent.Value, 0, len(m.paystubs))
		for id := range m.paystubs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// RemovedEdges returns all edge names that were removed in this mutation.
func (m *PaystubFileMutation) RemovedEdges() []string {
	edges := make([]string, 0, 2)
	if m.removedjobs != nil {
		edges = append(edges, paystubfile.EdgeJobs)
	}
	if m.removedpaystubs != nil {
		edges = append(edges, paystubfile.EdgePaystubs)
	}
	return edges
}

// RemovedIDs returns all IDs (to other nodes) that were removed for the edge with
// the given name in this mutation.
func (m *PaystubFileMutation) RemovedIDs(name string) []ent.Value {
	switch name {
	case paystubfile.EdgeJobs:
		ids := make([]ent.Value, 0, len(m.removedjobs))
		for id := range m.removedjobs {
			ids = append(ids, id)
		}
		return ids
	case paystubfile.EdgePaystubs:
		ids := make([]ent.Value, 0, len(m.removedpaystubs))
		for id := range m.removedpaystubs {
			ids = append(ids, id)
		}
		return ids
	}
	return nil
}

// ClearedEdges returns all edge names that were cleared in this mutation.
func (m *PaystubFileMutation) ClearedEdges() []string {
	edges := make([]string, 0, 2)
	if m.clearedjobs {
		edges = append(edges, paystubfile.EdgeJobs)
	}
	if m.clearedpaystubs {
		edges = append(edges, paystubfile.EdgePaystubs)
	}
	return edges
}

// EdgeCleared returns a boolean which indicates if the edge with the given name
// was cleared in this mutation.
func (m *PaystubFileMutation) EdgeCleared(name string) bool {
	switch name {
	case paystubfile.EdgeJobs:
		return m.clearedjobs
	case paystubfile.EdgePaystubs:
		return m.clearedpaystubs
	}
	return false
}

// ClearEdge clears the value of the edge with the given name. It returns an error
// if that edge is not defined in the schema.
func (m *PaystubFileMutation) ClearEdge(name string) error {
	switch name {
	}
	return fmt.Errorf("unknown PaystubFile unique edge %s", name)
}

// ResetEdge resets all changes to the edge with the given name in this mutation.
// It returns an error if the edge is not defined in the schema.
func (m *PaystubFileMutation) ResetEdge(name string) error {
	switch name {
	case paystubfile.EdgeJobs:
		m.ResetJobs()
		return nil
	case paystubfile.EdgePaystubs:
		m.ResetPaystubs()
		return nil
	}
	return fmt.Errorf("unknown PaystubFile edge %s", name)
}
