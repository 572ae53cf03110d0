// Code generated by ent, DO NOT EDIT.

package ent

import (
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
	"github.com/google/uuid"
)

// PaystubFile is the model entity for the PaystubFile schema.
type PaystubFile struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// SourcePath holds the value of the "source_path" field.
	SourcePath string `json:"source_path,omitempty"`
	// ContentHash holds the value of the "content_hash" field.
	ContentHash []byte `json:"content_hash,omitempty"`
	// Filename holds the value of the "filename" field.
	Filename string `json:"filename,omitempty"`
	// FileExt holds the value of the "file_ext" field.
	FileExt string `json:"file_ext,omitempty"`
	// ContentType holds the value of the "content_type" field.
	ContentType string `json:"content_type,omitempty"`
	// FileSize holds the value of the "file_size" field.
	FileSize int `json:"file_size,omitempty"`
	// UploadedAt holds the value of the "uploaded_at" field.
	UploadedAt time.Time `json:"uploaded_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaystubFileQuery when eager-loading is set.
	Edges        PaystubFileEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaystubFileEdges holds the relations/edges for other nodes in the graph.
type PaystubFileEdges struct {
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// Paystubs holds the value of the paystubs edge.
	Paystubs []*Paystub `json:"paystubs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e PaystubFileEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[0] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// PaystubsOrErr returns the Paystubs value or an error if the edge
// was not loaded in eager-loading.
func (e PaystubFileEdges) PaystubsOrErr() ([]*Paystub, error) {
	if e.loadedTypes[1] {
		return e.Paystubs, nil
	}
	return nil, &NotLoadedError{edge: "paystubs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*PaystubFile) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paystubfile.FieldContentHash:
			values[i] = new([]byte)
		case paystubfile.FieldFileSize:
			values[i] = new(sql.NullInt64)
		case paystubfile.FieldSourcePath, paystubfile.FieldFilename, paystubfile.FieldFileExt, paystubfile.FieldContentType:
			values[i] = new(sql.NullString)
		case paystubfile.FieldUploadedAt:
			values[i] = new(sql.NullTime)
		case paystubfile.FieldID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the PaystubFile fields.
func (_m *PaystubFile) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paystubfile.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paystubfile.FieldSourcePath:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field source_path", values[i])
			} else if value.Valid {
				_m.SourcePath = value.String
			}
		case paystubfile.FieldContentHash:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field content_hash", values[i])
			} else if value != nil {
				_m.ContentHash = *value
			}
		case paystubfile.FieldFilename:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field filename", values[i])
			} else if value.Valid {
				_m.Filename = value.String
			}
		case paystubfile.FieldFileExt:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field file_ext", values[i])
			} else if value.Valid {
				_m.FileExt = value.String
			}
		case paystubfile.FieldContentType:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field content_type", values[i])
			} else if value.Valid {
				_m.ContentType = value.String
			}
		case paystubfile.FieldFileSize:
			if value, ok := values[i].(*sql.NullInt64); !ok {
				return fmt.Errorf("unexpected type %T for field file_size", values[i])
			} else if value.Valid {
				_m.FileSize = int(value.Int64)
			}
		case paystubfile.FieldUploadedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field uploaded_at", values[i])
			} else if value.Valid {
				_m.UploadedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the PaystubFile.
// This includes values selected through modifiers, order, etc.
func (_m *PaystubFile) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryJobs queries the "jobs" edge of the PaystubFile entity.
func (_m *PaystubFile) QueryJobs() *ExtractJobQuery {
	return NewPaystubFileClient(_m.config).QueryJobs(_m)
}

// QueryPaystubs queries the "paystubs" edge of the PaystubFile entity.
func (_m *PaystubFile) QueryPaystubs() *PaystubQuery {
	return NewPaystubFileClient(_m.config).QueryPaystubs(_m)
}

// Update returns a builder for updating this PaystubFile.
// Note that you need to call PaystubFile.Unwrap() before calling this method if this PaystubFile
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *PaystubFile) Update() *PaystubFileUpdateOne {
	return NewPaystubFileClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the PaystubFile entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *PaystubFile) Unwrap() *PaystubFile {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: PaystubFile is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *PaystubFile) String() string {
	var builder strings.Builder
	builder.WriteString("PaystubFile(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("source_path=")
	builder.WriteString(_m.SourcePath)
	builder.WriteString(", ")
	builder.WriteString("content_hash=")
	builder.WriteString(fmt.Sprintf("%v", _m.ContentHash))
	builder.WriteString(", ")
	builder.WriteString("filename=")
	builder.WriteString(_m.Filename)
	builder.WriteString(", ")
	builder.WriteString("file_ext=")
	builder.WriteString(_m.FileExt)
	builder.WriteString(", ")
	builder.WriteString("content_type=")
	builder.WriteString(_m.ContentType)
	builder.WriteString(", ")
	builder.WriteString("file_size=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileSize))
	builder.WriteString(", ")
	builder.WriteString("uploaded_at=")
	builder.WriteString(_m.UploadedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// PaystubFiles is a parsable slice of PaystubFile.
type PaystubFiles []*PaystubFile
