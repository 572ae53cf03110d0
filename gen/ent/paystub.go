// Code generated by ent, DO NOT EDIT.

package ent

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect/sql"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
	"github.com/google/uuid"
)

// Paystub is the model entity for the Paystub schema.
type Paystub struct {
	config `json:"-"`
	// ID of the ent.
	ID uuid.UUID `json:"id,omitempty"`
	// FileID holds the value of the "file_id" field.
	FileID uuid.UUID `json:"file_id,omitempty"`
	// Provider holds the value of the "provider" field.
	Provider string `json:"provider,omitempty"`
	// GrossPay holds the value of the "gross_pay" field.
	GrossPay *string `json:"gross_pay,omitempty"`
	// NetPay holds the value of the "net_pay" field.
	NetPay *string `json:"net_pay,omitempty"`
	// YtdGrossPay holds the value of the "ytd_gross_pay" field.
	YtdGrossPay *string `json:"ytd_gross_pay,omitempty"`
	// YtdNetPay holds the value of the "ytd_net_pay" field.
	YtdNetPay *string `json:"ytd_net_pay,omitempty"`
	// CurrencyCode holds the value of the "currency_code" field.
	CurrencyCode string `json:"currency_code,omitempty"`
	// PayPeriodStart holds the value of the "pay_period_start" field.
	PayPeriodStart *time.Time `json:"pay_period_start,omitempty"`
	// PayPeriodEnd holds the value of the "pay_period_end" field.
	PayPeriodEnd *time.Time `json:"pay_period_end,omitempty"`
	// PayDate holds the value of the "pay_date" field.
	PayDate *time.Time `json:"pay_date,omitempty"`
	// PayFrequency holds the value of the "pay_frequency" field.
	PayFrequency string `json:"pay_frequency,omitempty"`
	// EmployeeName holds the value of the "employee_name" field.
	EmployeeName *string `json:"employee_name,omitempty"`
	// EmployeeID holds the value of the "employee_id" field.
	EmployeeID *string `json:"employee_id,omitempty"`
	// EmployerName holds the value of the "employer_name" field.
	EmployerName *string `json:"employer_name,omitempty"`
	// Deductions holds the value of the "deductions" field.
	Deductions json.RawMessage `json:"deductions,omitempty"`
	// OverallConfidence holds the value of the "overall_confidence" field.
	OverallConfidence float32 `json:"overall_confidence,omitempty"`
	// RawText holds the value of the "raw_text" field.
	RawText *string `json:"raw_text,omitempty"`
	// CreatedAt holds the value of the "created_at" field.
	CreatedAt time.Time `json:"created_at,omitempty"`
	// Edges holds the relations/edges for other nodes in the graph.
	// The values are being populated by the PaystubQuery when eager-loading is set.
	Edges        PaystubEdges `json:"edges"`
	selectValues sql.SelectValues
}

// PaystubEdges holds the relations/edges for other nodes in the graph.
type PaystubEdges struct {
	// File holds the value of the file edge.
	File *PaystubFile `json:"file,omitempty"`
	// Jobs holds the value of the jobs edge.
	Jobs []*ExtractJob `json:"jobs,omitempty"`
	// loadedTypes holds the information for reporting if a
	// type was loaded (or requested) in eager-loading or not.
	loadedTypes [2]bool
}

// FileOrErr returns the File value or an error if the edge
// was not loaded in eager-loading, or loaded but was not found.
func (e PaystubEdges) FileOrErr() (*PaystubFile, error) {
	if e.File != nil {
		return e.File, nil
	} else if e.loadedTypes[0] {
		return nil, &NotFoundError{label: paystubfile.Label}
	}
	return nil, &NotLoadedError{edge: "file"}
}

// JobsOrErr returns the Jobs value or an error if the edge
// was not loaded in eager-loading.
func (e PaystubEdges) JobsOrErr() ([]*ExtractJob, error) {
	if e.loadedTypes[1] {
		return e.Jobs, nil
	}
	return nil, &NotLoadedError{edge: "jobs"}
}

// scanValues returns the types for scanning values from sql.Rows.
func (*Paystub) scanValues(columns []string) ([]any, error) {
	values := make([]any, len(columns))
	for i := range columns {
		switch columns[i] {
		case paystub.FieldDeductions:
			values[i] = new([]byte)
		case paystub.FieldOverallConfidence:
			values[i] = new(sql.NullFloat64)
		case paystub.FieldProvider, paystub.FieldGrossPay, paystub.FieldNetPay, paystub.FieldYtdGrossPay, paystub.FieldYtdNetPay, paystub.FieldCurrencyCode, paystub.FieldPayFrequency, paystub.FieldEmployeeName, paystub.FieldEmployeeID, paystub.FieldEmployerName, paystub.FieldRawText:
			values[i] = new(sql.NullString)
		case paystub.FieldPayPeriodStart, paystub.FieldPayPeriodEnd, paystub.FieldPayDate, paystub.FieldCreatedAt:
			values[i] = new(sql.NullTime)
		case paystub.FieldID, paystub.FieldFileID:
			values[i] = new(uuid.UUID)
		default:
			values[i] = new(sql.UnknownType)
		}
	}
	return values, nil
}

// assignValues assigns the values that were returned from sql.Rows (after scanning)
// to the Paystub fields.
func (_m *Paystub) assignValues(columns []string, values []any) error {
	if m, n := len(values), len(columns); m < n {
		return fmt.Errorf("mismatch number of scan values: %d != %d", m, n)
	}
	for i := range columns {
		switch columns[i] {
		case paystub.FieldID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field id", values[i])
			} else if value != nil {
				_m.ID = *value
			}
		case paystub.FieldFileID:
			if value, ok := values[i].(*uuid.UUID); !ok {
				return fmt.Errorf("unexpected type %T for field file_id", values[i])
			} else if value != nil {
				_m.FileID = *value
			}
		case paystub.FieldProvider:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field provider", values[i])
			} else if value.Valid {
				_m.Provider = value.String
			}
		case paystub.FieldGrossPay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field gross_pay", values[i])
			} else if value.Valid {
				_m.GrossPay = new(string)
				*_m.GrossPay = value.String
			}
		case paystub.FieldNetPay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field net_pay", values[i])
			} else if value.Valid {
				_m.NetPay = new(string)
				*_m.NetPay = value.String
			}
		case paystub.FieldYtdGrossPay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ytd_gross_pay", values[i])
			} else if value.Valid {
				_m.YtdGrossPay = new(string)
				*_m.YtdGrossPay = value.String
			}
		case paystub.FieldYtdNetPay:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field ytd_net_pay", values[i])
			} else if value.Valid {
				_m.YtdNetPay = new(string)
				*_m.YtdNetPay = value.String
			}
		case paystub.FieldCurrencyCode:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field currency_code", values[i])
			} else if value.Valid {
				_m.CurrencyCode = value.String
			}
		case paystub.FieldPayPeriodStart:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pay_period_start", values[i])
			} else if value.Valid {
				_m.PayPeriodStart = new(time.Time)
				*_m.PayPeriodStart = value.Time
			}
		case paystub.FieldPayPeriodEnd:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pay_period_end", values[i])
			} else if value.Valid {
				_m.PayPeriodEnd = new(time.Time)
				*_m.PayPeriodEnd = value.Time
			}
		case paystub.FieldPayDate:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field pay_date", values[i])
			} else if value.Valid {
				_m.PayDate = new(time.Time)
				*_m.PayDate = value.Time
			}
		case paystub.FieldPayFrequency:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field pay_frequency", values[i])
			} else if value.Valid {
				_m.PayFrequency = value.String
			}
		case paystub.FieldEmployeeName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_name", values[i])
			} else if value.Valid {
				_m.EmployeeName = new(string)
				*_m.EmployeeName = value.String
			}
		case paystub.FieldEmployeeID:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employee_id", values[i])
			} else if value.Valid {
				_m.EmployeeID = new(string)
				*_m.EmployeeID = value.String
			}
		case paystub.FieldEmployerName:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field employer_name", values[i])
			} else if value.Valid {
				_m.EmployerName = new(string)
				*_m.EmployerName = value.String
			}
		case paystub.FieldDeductions:
			if value, ok := values[i].(*[]byte); !ok {
				return fmt.Errorf("unexpected type %T for field deductions", values[i])
			} else if value != nil && len(*value) > 0 {
				if err := json.Unmarshal(*value, &_m.Deductions); err != nil {
					return fmt.Errorf("unmarshal field deductions: %w", err)
				}
			}
		case paystub.FieldOverallConfidence:
			if value, ok := values[i].(*sql.NullFloat64); !ok {
				return fmt.Errorf("unexpected type %T for field overall_confidence", values[i])
			} else if value.Valid {
				_m.OverallConfidence = float32(value.Float64)
			}
		case paystub.FieldRawText:
			if value, ok := values[i].(*sql.NullString); !ok {
				return fmt.Errorf("unexpected type %T for field raw_text", values[i])
			} else if value.Valid {
				_m.RawText = new(string)
				*_m.RawText = value.String
			}
		case paystub.FieldCreatedAt:
			if value, ok := values[i].(*sql.NullTime); !ok {
				return fmt.Errorf("unexpected type %T for field created_at", values[i])
			} else if value.Valid {
				_m.CreatedAt = value.Time
			}
		default:
			_m.selectValues.Set(columns[i], values[i])
		}
	}
	return nil
}

// Value returns the ent.Value that was dynamically selected and assigned to the Paystub.
// This includes values selected through modifiers, order, etc.
func (_m *Paystub) Value(name string) (ent.Value, error) {
	return _m.selectValues.Get(name)
}

// QueryFile queries the "file" edge of the Paystub entity.
func (_m *Paystub) QueryFile() *PaystubFileQuery {
	return NewPaystubClient(_m.config).QueryFile(_m)
}

// QueryJobs queries the "jobs" edge of the Paystub entity.
func (_m *Paystub) QueryJobs() *ExtractJobQuery {
	return NewPaystubClient(_m.config).QueryJobs(_m)
}

// Update returns a builder for updating this Paystub.
// Note that you need to call Paystub.Unwrap() before calling this method if this Paystub
// was returned from a transaction, and the transaction was committed or rolled back.
func (_m *Paystub) Update() *PaystubUpdateOne {
	return NewPaystubClient(_m.config).UpdateOne(_m)
}

// Unwrap unwraps the Paystub entity that was returned from a transaction after it was closed,
// so that all future queries will be executed through the driver which created the transaction.
func (_m *Paystub) Unwrap() *Paystub {
	_tx, ok := _m.config.driver.(*txDriver)
	if !ok {
		panic("ent: Paystub is not a transactional entity")
	}
	_m.config.driver = _tx.drv
	return _m
}

// String implements the fmt.Stringer.
func (_m *Paystub) String() string {
	var builder strings.Builder
	builder.WriteString("Paystub(")
	builder.WriteString(fmt.Sprintf("id=%v, ", _m.ID))
	builder.WriteString("file_id=")
	builder.WriteString(fmt.Sprintf("%v", _m.FileID))
	builder.WriteString(", ")
	builder.WriteString("provider=")
	builder.WriteString(_m.Provider)
	builder.WriteString(", ")
	if v := _m.GrossPay; v != nil {
		builder.WriteString("gross_pay=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.NetPay; v != nil {
		builder.WriteString("net_pay=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.YtdGrossPay; v != nil {
		builder.WriteString("ytd_gross_pay=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.YtdNetPay; v != nil {
		builder.WriteString("ytd_net_pay=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("currency_code=")
	builder.WriteString(_m.CurrencyCode)
	builder.WriteString(", ")
	if v := _m.PayPeriodStart; v != nil {
		builder.WriteString("pay_period_start=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PayPeriodEnd; v != nil {
		builder.WriteString("pay_period_end=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	if v := _m.PayDate; v != nil {
		builder.WriteString("pay_date=")
		builder.WriteString(v.Format(time.ANSIC))
	}
	builder.WriteString(", ")
	builder.WriteString("pay_frequency=")
	builder.WriteString(_m.PayFrequency)
	builder.WriteString(", ")
	if v := _m.EmployeeName; v != nil {
		builder.WriteString("employee_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmployeeID; v != nil {
		builder.WriteString("employee_id=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	if v := _m.EmployerName; v != nil {
		builder.WriteString("employer_name=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("deductions=")
	builder.WriteString(fmt.Sprintf("%v", _m.Deductions))
	builder.WriteString(", ")
	builder.WriteString("overall_confidence=")
	builder.WriteString(fmt.Sprintf("%v", _m.OverallConfidence))
	builder.WriteString(", ")
	if v := _m.RawText; v != nil {
		builder.WriteString("raw_text=")
		builder.WriteString(*v)
	}
	builder.WriteString(", ")
	builder.WriteString("created_at=")
	builder.WriteString(_m.CreatedAt.Format(time.ANSIC))
	builder.WriteByte(')')
	return builder.String()
}

// Paystubs is a parsable slice of Paystub.
type Paystubs []*Paystub
