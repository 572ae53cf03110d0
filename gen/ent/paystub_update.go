// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/dialect/sql/sqljson"
	"entgo.io/ent/schema/field"
	"github.com/Volpestyle/paystub-extractor/gen/ent/extractjob"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
	"github.com/Volpestyle/paystub-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// PaystubUpdate is the builder for updating Paystub entities.
type PaystubUpdate struct {
	config
	hooks    []Hook
	mutation *PaystubMutation
}

// Where appends a list predicates to the PaystubUpdate builder.
func (_u *PaystubUpdate) Where(ps ...predicate.Paystub) *PaystubUpdate {
	_u.mutation.Where(ps...)
	return _u
}

// SetFileID sets the "file_id" field.
func (_u *PaystubUpdate) SetFileID(v uuid.UUID) *PaystubUpdate {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableFileID(v *uuid.UUID) *PaystubUpdate {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PaystubUpdate) SetProvider(v string) *PaystubUpdate {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableProvider(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetGrossPay sets the "gross_pay" field.
func (_u *PaystubUpdate) SetGrossPay(v string) *PaystubUpdate {
	_u.mutation.SetGrossPay(v)
	return _u
}

// SetNillableGrossPay sets the "gross_pay" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableGrossPay(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetGrossPay(*v)
	}
	return _u
}

// ClearGrossPay clears the value of the "gross_pay" field.
func (_u *PaystubUpdate) ClearGrossPay() *PaystubUpdate {
	_u.mutation.ClearGrossPay()
	return _u
}

// SetNetPay sets the "net_pay" field.
func (_u *PaystubUpdate) SetNetPay(v string) *PaystubUpdate {
	_u.mutation.SetNetPay(v)
	return _u
}

// SetNillableNetPay sets the "net_pay" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableNetPay(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetNetPay(*v)
	}
	return _u
}

// ClearNetPay clears the value of the "net_pay" field.
func (_u *PaystubUpdate) ClearNetPay() *PaystubUpdate {
	_u.mutation.ClearNetPay()
	return _u
}

// SetYtdGrossPay sets the "ytd_gross_pay" field.
func (_u *PaystubUpdate) SetYtdGrossPay(v string) *PaystubUpdate {
	_u.mutation.SetYtdGrossPay(v)
	return _u
}

// SetNillableYtdGrossPay sets the "ytd_gross_pay" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableYtdGrossPay(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetYtdGrossPay(*v)
	}
	return _u
}

// ClearYtdGrossPay clears the value of the "ytd_gross_pay" field.
func (_u *PaystubUpdate) ClearYtdGrossPay() *PaystubUpdate {
	_u.mutation.ClearYtdGrossPay()
	return _u
}

// SetYtdNetPay sets the "ytd_net_pay" field.
func (_u *PaystubUpdate) SetYtdNetPay(v string) *PaystubUpdate {
	_u.mutation.SetYtdNetPay(v)
	return _u
}

// SetNillableYtdNetPay sets the "ytd_net_pay" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableYtdNetPay(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetYtdNetPay(*v)
	}
	return _u
}

// ClearYtdNetPay clears the value of the "ytd_net_pay" field.
func (_u *PaystubUpdate) ClearYtdNetPay() *PaystubUpdate {
	_u.mutation.ClearYtdNetPay()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *PaystubUpdate) SetCurrencyCode(v string) *PaystubUpdate {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableCurrencyCode(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetPayPeriodStart sets the "pay_period_start" field.
func (_u *PaystubUpdate) SetPayPeriodStart(v time.Time) *PaystubUpdate {
	_u.mutation.SetPayPeriodStart(v)
	return _u
}

// SetNillablePayPeriodStart sets the "pay_period_start" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillablePayPeriodStart(v *time.Time) *PaystubUpdate {
	if v != nil {
		_u.SetPayPeriodStart(*v)
	}
	return _u
}

// ClearPayPeriodStart clears the value of the "pay_period_start" field.
func (_u *PaystubUpdate) ClearPayPeriodStart() *PaystubUpdate {
	_u.mutation.ClearPayPeriodStart()
	return _u
}

// SetPayPeriodEnd sets the "pay_period_end" field.
func (_u *PaystubUpdate) SetPayPeriodEnd(v time.Time) *PaystubUpdate {
	_u.mutation.SetPayPeriodEnd(v)
	return _u
}

// SetNillablePayPeriodEnd sets the "pay_period_end" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillablePayPeriodEnd(v *time.Time) *PaystubUpdate {
	if v != nil {
		_u.SetPayPeriodEnd(*v)
	}
	return _u
}

// ClearPayPeriodEnd clears the value of the "pay_period_end" field.
func (_u *PaystubUpdate) ClearPayPeriodEnd() *PaystubUpdate {
	_u.mutation.ClearPayPeriodEnd()
	return _u
}

// SetPayDate sets the "pay_date" field.
func (_u *PaystubUpdate) SetPayDate(v time.Time) *PaystubUpdate {
	_u.mutation.SetPayDate(v)
	return _u
}

// SetNillablePayDate sets the "pay_date" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillablePayDate(v *time.Time) *PaystubUpdate {
	if v != nil {
		_u.SetPayDate(*v)
	}
	return _u
}

// ClearPayDate clears the value of the "pay_date" field.
func (_u *PaystubUpdate) ClearPayDate() *PaystubUpdate {
	_u.mutation.ClearPayDate()
	return _u
}

// SetPayFrequency sets the "pay_frequency" field.
func (_u *PaystubUpdate) SetPayFrequency(v string) *PaystubUpdate {
	_u.mutation.SetPayFrequency(v)
	return _u
}

// SetNillablePayFrequency sets the "pay_frequency" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillablePayFrequency(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetPayFrequency(*v)
	}
	return _u
}

// SetEmployeeName sets the "employee_name" field.
func (_u *PaystubUpdate) SetEmployeeName(v string) *PaystubUpdate {
	_u.mutation.SetEmployeeName(v)
	return _u
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableEmployeeName(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetEmployeeName(*v)
	}
	return _u
}

// ClearEmployeeName clears the value of the "employee_name" field.
func (_u *PaystubUpdate) ClearEmployeeName() *PaystubUpdate {
	_u.mutation.ClearEmployeeName()
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *PaystubUpdate) SetEmployeeID(v string) *PaystubUpdate {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableEmployeeID(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *PaystubUpdate) ClearEmployeeID() *PaystubUpdate {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetEmployerName sets the "employer_name" field.
func (_u *PaystubUpdate) SetEmployerName(v string) *PaystubUpdate {
	_u.mutation.SetEmployerName(v)
	return _u
}

// SetNillableEmployerName sets the "employer_name" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableEmployerName(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetEmployerName(*v)
	}
	return _u
}

// ClearEmployerName clears the value of the "employer_name" field.
func (_u *PaystubUpdate) ClearEmployerName() *PaystubUpdate {
	_u.mutation.ClearEmployerName()
	return _u
}

// SetDeductions sets the "deductions" field.
func (_u *PaystubUpdate) SetDeductions(v json.RawMessage) *PaystubUpdate {
	_u.mutation.SetDeductions(v)
	return _u
}

// AppendDeductions appends value to the "deductions" field.
func (_u *PaystubUpdate) AppendDeductions(v json.RawMessage) *PaystubUpdate {
	_u.mutation.AppendDeductions(v)
	return _u
}

// ClearDeductions clears the value of the "deductions" field.
func (_u *PaystubUpdate) ClearDeductions() *PaystubUpdate {
	_u.mutation.ClearDeductions()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *PaystubUpdate) SetOverallConfidence(v float32) *PaystubUpdate {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableOverallConfidence(v *float32) *PaystubUpdate {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *PaystubUpdate) AddOverallConfidence(v float32) *PaystubUpdate {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *PaystubUpdate) SetRawText(v string) *PaystubUpdate {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableRawText(v *string) *PaystubUpdate {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *PaystubUpdate) ClearRawText() *PaystubUpdate {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PaystubUpdate) SetCreatedAt(v time.Time) *PaystubUpdate {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PaystubUpdate) SetNillableCreatedAt(v *time.Time) *PaystubUpdate {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the PaystubFile entity.
func (_u *PaystubUpdate) SetFile(v *PaystubFile) *PaystubUpdate {
	return _u.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *PaystubUpdate) AddJobIDs(ids ...uuid.UUID) *PaystubUpdate {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *PaystubUpdate) AddJobs(v ...*ExtractJob) *PaystubUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PaystubMutation object of the builder.
func (_u *PaystubUpdate) Mutation() *PaystubMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the PaystubFile entity.
func (_u *PaystubUpdate) ClearFile() *PaystubUpdate {
	_u.mutation.ClearFile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *PaystubUpdate) ClearJobs() *PaystubUpdate {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *PaystubUpdate) RemoveJobIDs(ids ...uuid.UUID) *PaystubUpdate {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *PaystubUpdate) RemoveJobs(v ...*ExtractJob) *PaystubUpdate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Save executes the query and returns the number of nodes affected by the update operation.
func (_u *PaystubUpdate) Save(ctx context.Context) (int, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaystubUpdate) SaveX(ctx context.Context) int {
	affected, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return affected
}

// Exec executes the query.
func (_u *PaystubUpdate) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaystubUpdate) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaystubUpdate) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := paystub.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Paystub.provider": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Paystub.file"`)
	}
	return nil
}

func (_u *PaystubUpdate) sqlSave(ctx context.Context) (_node int, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paystub.Table, paystub.Columns, sqlgraph.NewFieldSpec(paystub.FieldID, field.TypeUUID))
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(paystub.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrossPay(); ok {
		_spec.SetField(paystub.FieldGrossPay, field.TypeString, value)
	}
	if _u.mutation.GrossPayCleared() {
		_spec.ClearField(paystub.FieldGrossPay, field.TypeString)
	}
	if value, ok := _u.mutation.NetPay(); ok {
		_spec.SetField(paystub.FieldNetPay, field.TypeString, value)
	}
	if _u.mutation.NetPayCleared() {
		_spec.ClearField(paystub.FieldNetPay, field.TypeString)
	}
	if value, ok := _u.mutation.YtdGrossPay(); ok {
		_spec.SetField(paystub.FieldYtdGrossPay, field.TypeString, value)
	}
	if _u.mutation.YtdGrossPayCleared() {
		_spec.ClearField(paystub.FieldYtdGrossPay, field.TypeString)
	}
	if value, ok := _u.mutation.YtdNetPay(); ok {
		_spec.SetField(paystub.FieldYtdNetPay, field.TypeString, value)
	}
	if _u.mutation.YtdNetPayCleared() {
		_spec.ClearField(paystub.FieldYtdNetPay, field.TypeString)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(paystub.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PayPeriodStart(); ok {
		_spec.SetField(paystub.FieldPayPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PayPeriodStartCleared() {
		_spec.ClearField(paystub.FieldPayPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PayPeriodEnd(); ok {
		_spec.SetField(paystub.FieldPayPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PayPeriodEndCleared() {
		_spec.ClearField(paystub.FieldPayPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.PayDate(); ok {
		_spec.SetField(paystub.FieldPayDate, field.TypeTime, value)
	}
	if _u.mutation.PayDateCleared() {
		_spec.ClearField(paystub.FieldPayDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PayFrequency(); ok {
		_spec.SetField(paystub.FieldPayFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeName(); ok {
		_spec.SetField(paystub.FieldEmployeeName, field.TypeString, value)
	}
	if _u.mutation.EmployeeNameCleared() {
		_spec.ClearField(paystub.FieldEmployeeName, field.TypeString)
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(paystub.FieldEmployeeID, field.TypeString, value)
	}
	if _u.mutation.EmployeeIDCleared() {
		_spec.ClearField(paystub.FieldEmployeeID, field.TypeString)
	}
	if value, ok := _u.mutation.EmployerName(); ok {
		_spec.SetField(paystub.FieldEmployerName, field.TypeString, value)
	}
	if _u.mutation.EmployerNameCleared() {
		_spec.ClearField(paystub.FieldEmployerName, field.TypeString)
	}
	if value, ok := _u.mutation.Deductions(); ok {
		_spec.SetField(paystub.FieldDeductions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeductions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paystub.FieldDeductions, value)
		})
	}
	if _u.mutation.DeductionsCleared() {
		_spec.ClearField(paystub.FieldDeductions, field.TypeJSON)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(paystub.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(paystub.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(paystub.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(paystub.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(paystub.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paystub.FileTable,
			Columns: []string{paystub.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paystubfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paystub.FileTable,
			Columns: []string{paystub.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paystubfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paystub.JobsTable,
			Columns: []string{paystub.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paystub.JobsTable,
			Columns: []string{paystub.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paystub.JobsTable,
			Columns: []string{paystub.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _node, err = sqlgraph.UpdateNodes(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paystub.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return 0, err
	}
	_u.mutation.done = true
	return _node, nil
}

// PaystubUpdateOne is the builder for updating a single Paystub entity.
type PaystubUpdateOne struct {
	config
	fields   []string
	hooks    []Hook
	mutation *PaystubMutation
}

// SetFileID sets the "file_id" field.
func (_u *PaystubUpdateOne) SetFileID(v uuid.UUID) *PaystubUpdateOne {
	_u.mutation.SetFileID(v)
	return _u
}

// SetNillableFileID sets the "file_id" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableFileID(v *uuid.UUID) *PaystubUpdateOne {
	if v != nil {
		_u.SetFileID(*v)
	}
	return _u
}

// SetProvider sets the "provider" field.
func (_u *PaystubUpdateOne) SetProvider(v string) *PaystubUpdateOne {
	_u.mutation.SetProvider(v)
	return _u
}

// SetNillableProvider sets the "provider" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableProvider(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetProvider(*v)
	}
	return _u
}

// SetGrossPay sets the "gross_pay" field.
func (_u *PaystubUpdateOne) SetGrossPay(v string) *PaystubUpdateOne {
	_u.mutation.SetGrossPay(v)
	return _u
}

// SetNillableGrossPay sets the "gross_pay" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableGrossPay(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetGrossPay(*v)
	}
	return _u
}

// ClearGrossPay clears the value of the "gross_pay" field.
func (_u *PaystubUpdateOne) ClearGrossPay() *PaystubUpdateOne {
	_u.mutation.ClearGrossPay()
	return _u
}

// SetNetPay sets the "net_pay" field.
func (_u *PaystubUpdateOne) SetNetPay(v string) *PaystubUpdateOne {
	_u.mutation.SetNetPay(v)
	return _u
}

// SetNillableNetPay sets the "net_pay" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableNetPay(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetNetPay(*v)
	}
	return _u
}

// ClearNetPay clears the value of the "net_pay" field.
func (_u *PaystubUpdateOne) ClearNetPay() *PaystubUpdateOne {
	_u.mutation.ClearNetPay()
	return _u
}

// SetYtdGrossPay sets the "ytd_gross_pay" field.
func (_u *PaystubUpdateOne) SetYtdGrossPay(v string) *PaystubUpdateOne {
	_u.mutation.SetYtdGrossPay(v)
	return _u
}

// SetNillableYtdGrossPay sets the "ytd_gross_pay" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableYtdGrossPay(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetYtdGrossPay(*v)
	}
	return _u
}

// ClearYtdGrossPay clears the value of the "ytd_gross_pay" field.
func (_u *PaystubUpdateOne) ClearYtdGrossPay() *PaystubUpdateOne {
	_u.mutation.ClearYtdGrossPay()
	return _u
}

// SetYtdNetPay sets the "ytd_net_pay" field.
func (_u *PaystubUpdateOne) SetYtdNetPay(v string) *PaystubUpdateOne {
	_u.mutation.SetYtdNetPay(v)
	return _u
}

// SetNillableYtdNetPay sets the "ytd_net_pay" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableYtdNetPay(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetYtdNetPay(*v)
	}
	return _u
}

// ClearYtdNetPay clears the value of the "ytd_net_pay" field.
func (_u *PaystubUpdateOne) ClearYtdNetPay() *PaystubUpdateOne {
	_u.mutation.ClearYtdNetPay()
	return _u
}

// SetCurrencyCode sets the "currency_code" field.
func (_u *PaystubUpdateOne) SetCurrencyCode(v string) *PaystubUpdateOne {
	_u.mutation.SetCurrencyCode(v)
	return _u
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableCurrencyCode(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetCurrencyCode(*v)
	}
	return _u
}

// SetPayPeriodStart sets the "pay_period_start" field.
func (_u *PaystubUpdateOne) SetPayPeriodStart(v time.Time) *PaystubUpdateOne {
	_u.mutation.SetPayPeriodStart(v)
	return _u
}

// SetNillablePayPeriodStart sets the "pay_period_start" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillablePayPeriodStart(v *time.Time) *PaystubUpdateOne {
	if v != nil {
		_u.SetPayPeriodStart(*v)
	}
	return _u
}

// ClearPayPeriodStart clears the value of the "pay_period_start" field.
func (_u *PaystubUpdateOne) ClearPayPeriodStart() *PaystubUpdateOne {
	_u.mutation.ClearPayPeriodStart()
	return _u
}

// SetPayPeriodEnd sets the "pay_period_end" field.
func (_u *PaystubUpdateOne) SetPayPeriodEnd(v time.Time) *PaystubUpdateOne {
	_u.mutation.SetPayPeriodEnd(v)
	return _u
}

// SetNillablePayPeriodEnd sets the "pay_period_end" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillablePayPeriodEnd(v *time.Time) *PaystubUpdateOne {
	if v != nil {
		_u.SetPayPeriodEnd(*v)
	}
	return _u
}

// ClearPayPeriodEnd clears the value of the "pay_period_end" field.
func (_u *PaystubUpdateOne) ClearPayPeriodEnd() *PaystubUpdateOne {
	_u.mutation.ClearPayPeriodEnd()
	return _u
}

// SetPayDate sets the "pay_date" field.
func (_u *PaystubUpdateOne) SetPayDate(v time.Time) *PaystubUpdateOne {
	_u.mutation.SetPayDate(v)
	return _u
}

// SetNillablePayDate sets the "pay_date" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillablePayDate(v *time.Time) *PaystubUpdateOne {
	if v != nil {
		_u.SetPayDate(*v)
	}
	return _u
}

// ClearPayDate clears the value of the "pay_date" field.
func (_u *PaystubUpdateOne) ClearPayDate() *PaystubUpdateOne {
	_u.mutation.ClearPayDate()
	return _u
}

// SetPayFrequency sets the "pay_frequency" field.
func (_u *PaystubUpdateOne) SetPayFrequency(v string) *PaystubUpdateOne {
	_u.mutation.SetPayFrequency(v)
	return _u
}

// SetNillablePayFrequency sets the "pay_frequency" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillablePayFrequency(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetPayFrequency(*v)
	}
	return _u
}

// SetEmployeeName sets the "employee_name" field.
func (_u *PaystubUpdateOne) SetEmployeeName(v string) *PaystubUpdateOne {
	_u.mutation.SetEmployeeName(v)
	return _u
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableEmployeeName(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetEmployeeName(*v)
	}
	return _u
}

// ClearEmployeeName clears the value of the "employee_name" field.
func (_u *PaystubUpdateOne) ClearEmployeeName() *PaystubUpdateOne {
	_u.mutation.ClearEmployeeName()
	return _u
}

// SetEmployeeID sets the "employee_id" field.
func (_u *PaystubUpdateOne) SetEmployeeID(v string) *PaystubUpdateOne {
	_u.mutation.SetEmployeeID(v)
	return _u
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableEmployeeID(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetEmployeeID(*v)
	}
	return _u
}

// ClearEmployeeID clears the value of the "employee_id" field.
func (_u *PaystubUpdateOne) ClearEmployeeID() *PaystubUpdateOne {
	_u.mutation.ClearEmployeeID()
	return _u
}

// SetEmployerName sets the "employer_name" field.
func (_u *PaystubUpdateOne) SetEmployerName(v string) *PaystubUpdateOne {
	_u.mutation.SetEmployerName(v)
	return _u
}

// SetNillableEmployerName sets the "employer_name" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableEmployerName(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetEmployerName(*v)
	}
	return _u
}

// ClearEmployerName clears the value of the "employer_name" field.
func (_u *PaystubUpdateOne) ClearEmployerName() *PaystubUpdateOne {
	_u.mutation.ClearEmployerName()
	return _u
}

// SetDeductions sets the "deductions" field.
func (_u *PaystubUpdateOne) SetDeductions(v json.RawMessage) *PaystubUpdateOne {
	_u.mutation.SetDeductions(v)
	return _u
}

// AppendDeductions appends value to the "deductions" field.
func (_u *PaystubUpdateOne) AppendDeductions(v json.RawMessage) *PaystubUpdateOne {
	_u.mutation.AppendDeductions(v)
	return _u
}

// ClearDeductions clears the value of the "deductions" field.
func (_u *PaystubUpdateOne) ClearDeductions() *PaystubUpdateOne {
	_u.mutation.ClearDeductions()
	return _u
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_u *PaystubUpdateOne) SetOverallConfidence(v float32) *PaystubUpdateOne {
	_u.mutation.ResetOverallConfidence()
	_u.mutation.SetOverallConfidence(v)
	return _u
}

// SetNillableOverallConfidence sets the "overall_confidence" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableOverallConfidence(v *float32) *PaystubUpdateOne {
	if v != nil {
		_u.SetOverallConfidence(*v)
	}
	return _u
}

// AddOverallConfidence adds value to the "overall_confidence" field.
func (_u *PaystubUpdateOne) AddOverallConfidence(v float32) *PaystubUpdateOne {
	_u.mutation.AddOverallConfidence(v)
	return _u
}

// SetRawText sets the "raw_text" field.
func (_u *PaystubUpdateOne) SetRawText(v string) *PaystubUpdateOne {
	_u.mutation.SetRawText(v)
	return _u
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableRawText(v *string) *PaystubUpdateOne {
	if v != nil {
		_u.SetRawText(*v)
	}
	return _u
}

// ClearRawText clears the value of the "raw_text" field.
func (_u *PaystubUpdateOne) ClearRawText() *PaystubUpdateOne {
	_u.mutation.ClearRawText()
	return _u
}

// SetCreatedAt sets the "created_at" field.
func (_u *PaystubUpdateOne) SetCreatedAt(v time.Time) *PaystubUpdateOne {
	_u.mutation.SetCreatedAt(v)
	return _u
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_u *PaystubUpdateOne) SetNillableCreatedAt(v *time.Time) *PaystubUpdateOne {
	if v != nil {
		_u.SetCreatedAt(*v)
	}
	return _u
}

// SetFile sets the "file" edge to the PaystubFile entity.
func (_u *PaystubUpdateOne) SetFile(v *PaystubFile) *PaystubUpdateOne {
	return _u.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_u *PaystubUpdateOne) AddJobIDs(ids ...uuid.UUID) *PaystubUpdateOne {
	_u.mutation.AddJobIDs(ids...)
	return _u
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_u *PaystubUpdateOne) AddJobs(v ...*ExtractJob) *PaystubUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.AddJobIDs(ids...)
}

// Mutation returns the PaystubMutation object of the builder.
func (_u *PaystubUpdateOne) Mutation() *PaystubMutation {
	return _u.mutation
}

// ClearFile clears the "file" edge to the PaystubFile entity.
func (_u *PaystubUpdateOne) ClearFile() *PaystubUpdateOne {
	_u.mutation.ClearFile()
	return _u
}

// ClearJobs clears all "jobs" edges to the ExtractJob entity.
func (_u *PaystubUpdateOne) ClearJobs() *PaystubUpdateOne {
	_u.mutation.ClearJobs()
	return _u
}

// RemoveJobIDs removes the "jobs" edge to ExtractJob entities by IDs.
func (_u *PaystubUpdateOne) RemoveJobIDs(ids ...uuid.UUID) *PaystubUpdateOne {
	_u.mutation.RemoveJobIDs(ids...)
	return _u
}

// RemoveJobs removes "jobs" edges to ExtractJob entities.
func (_u *PaystubUpdateOne) RemoveJobs(v ...*ExtractJob) *PaystubUpdateOne {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _u.RemoveJobIDs(ids...)
}

// Where appends a list predicates to the PaystubUpdate builder.
func (_u *PaystubUpdateOne) Where(ps ...predicate.Paystub) *PaystubUpdateOne {
	_u.mutation.Where(ps...)
	return _u
}

// Select allows selecting one or more fields (columns) of the returned entity.
// The default is selecting all fields defined in the entity schema.
func (_u *PaystubUpdateOne) Select(field string, fields ...string) *PaystubUpdateOne {
	_u.fields = append([]string{field}, fields...)
	return _u
}

// Save executes the query and returns the updated Paystub entity.
func (_u *PaystubUpdateOne) Save(ctx context.Context) (*Paystub, error) {
	return withHooks(ctx, _u.sqlSave, _u.mutation, _u.hooks)
}

// SaveX is like Save, but panics if an error occurs.
func (_u *PaystubUpdateOne) SaveX(ctx context.Context) *Paystub {
	node, err := _u.Save(ctx)
	if err != nil {
		panic(err)
	}
	return node
}

// Exec executes the query on the entity.
func (_u *PaystubUpdateOne) Exec(ctx context.Context) error {
	_, err := _u.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_u *PaystubUpdateOne) ExecX(ctx context.Context) {
	if err := _u.Exec(ctx); err != nil {
		panic(err)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_u *PaystubUpdateOne) check() error {
	if v, ok := _u.mutation.Provider(); ok {
		if err := paystub.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Paystub.provider": %w`, err)}
		}
	}
	if _u.mutation.FileCleared() && len(_u.mutation.FileIDs()) > 0 {
		return errors.New(`ent: clearing a required unique edge "Paystub.file"`)
	}
	return nil
}

func (_u *PaystubUpdateOne) sqlSave(ctx context.Context) (_node *Paystub, err error) {
	if err := _u.check(); err != nil {
		return _node, err
	}
	_spec := sqlgraph.NewUpdateSpec(paystub.Table, paystub.Columns, sqlgraph.NewFieldSpec(paystub.FieldID, field.TypeUUID))
	id, ok := _u.mutation.ID()
	if !ok {
		return nil, &ValidationError{Name: "id", err: errors.New(`ent: missing "Paystub.id" for update`)}
	}
	_spec.Node.ID.Value = id
	if fields := _u.fields; len(fields) > 0 {
		_spec.Node.Columns = make([]string, 0, len(fields))
		_spec.Node.Columns = append(_spec.Node.Columns, paystub.FieldID)
		for _, f := range fields {
			if !paystub.ValidColumn(f) {
				return nil, &ValidationError{Name: f, err: fmt.Errorf("ent: invalid field %q for query", f)}
			}
			if f != paystub.FieldID {
				_spec.Node.Columns = append(_spec.Node.Columns, f)
			}
		}
	}
	if ps := _u.mutation.predicates; len(ps) > 0 {
		_spec.Predicate = func(selector *sql.Selector) {
			for i := range ps {
				ps[i](selector)
			}
		}
	}
	if value, ok := _u.mutation.Provider(); ok {
		_spec.SetField(paystub.FieldProvider, field.TypeString, value)
	}
	if value, ok := _u.mutation.GrossPay(); ok {
		_spec.SetField(paystub.FieldGrossPay, field.TypeString, value)
	}
	if _u.mutation.GrossPayCleared() {
		_spec.ClearField(paystub.FieldGrossPay, field.TypeString)
	}
	if value, ok := _u.mutation.NetPay(); ok {
		_spec.SetField(paystub.FieldNetPay, field.TypeString, value)
	}
	if _u.mutation.NetPayCleared() {
		_spec.ClearField(paystub.FieldNetPay, field.TypeString)
	}
	if value, ok := _u.mutation.YtdGrossPay(); ok {
		_spec.SetField(paystub.FieldYtdGrossPay, field.TypeString, value)
	}
	if _u.mutation.YtdGrossPayCleared() {
		_spec.ClearField(paystub.FieldYtdGrossPay, field.TypeString)
	}
	if value, ok := _u.mutation.YtdNetPay(); ok {
		_spec.SetField(paystub.FieldYtdNetPay, field.TypeString, value)
	}
	if _u.mutation.YtdNetPayCleared() {
		_spec.ClearField(paystub.FieldYtdNetPay, field.TypeString)
	}
	if value, ok := _u.mutation.CurrencyCode(); ok {
		_spec.SetField(paystub.FieldCurrencyCode, field.TypeString, value)
	}
	if value, ok := _u.mutation.PayPeriodStart(); ok {
		_spec.SetField(paystub.FieldPayPeriodStart, field.TypeTime, value)
	}
	if _u.mutation.PayPeriodStartCleared() {
		_spec.ClearField(paystub.FieldPayPeriodStart, field.TypeTime)
	}
	if value, ok := _u.mutation.PayPeriodEnd(); ok {
		_spec.SetField(paystub.FieldPayPeriodEnd, field.TypeTime, value)
	}
	if _u.mutation.PayPeriodEndCleared() {
		_spec.ClearField(paystub.FieldPayPeriodEnd, field.TypeTime)
	}
	if value, ok := _u.mutation.PayDate(); ok {
		_spec.SetField(paystub.FieldPayDate, field.TypeTime, value)
	}
	if _u.mutation.PayDateCleared() {
		_spec.ClearField(paystub.FieldPayDate, field.TypeTime)
	}
	if value, ok := _u.mutation.PayFrequency(); ok {
		_spec.SetField(paystub.FieldPayFrequency, field.TypeString, value)
	}
	if value, ok := _u.mutation.EmployeeName(); ok {
		_spec.SetField(paystub.FieldEmployeeName, field.TypeString, value)
	}
	if _u.mutation.EmployeeNameCleared() {
		_spec.ClearField(paystub.FieldEmployeeName, field.TypeString)
	}
	if value, ok := _u.mutation.EmployeeID(); ok {
		_spec.SetField(paystub.FieldEmployeeID, field.TypeString, value)
	}
	if _u.mutation.EmployeeIDCleared() {
		_spec.ClearField(paystub.FieldEmployeeID, field.TypeString)
	}
	if value, ok := _u.mutation.EmployerName(); ok {
		_spec.SetField(paystub.FieldEmployerName, field.TypeString, value)
	}
	if _u.mutation.EmployerNameCleared() {
		_spec.ClearField(paystub.FieldEmployerName, field.TypeString)
	}
	if value, ok := _u.mutation.Deductions(); ok {
		_spec.SetField(paystub.FieldDeductions, field.TypeJSON, value)
	}
	if value, ok := _u.mutation.AppendedDeductions(); ok {
		_spec.AddModifier(func(u *sql.UpdateBuilder) {
			sqljson.Append(u, paystub.FieldDeductions, value)
		})
	}
	if _u.mutation.DeductionsCleared() {
		_spec.ClearField(paystub.FieldDeductions, field.TypeJSON)
	}
	if value, ok := _u.mutation.OverallConfidence(); ok {
		_spec.SetField(paystub.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.AddedOverallConfidence(); ok {
		_spec.AddField(paystub.FieldOverallConfidence, field.TypeFloat32, value)
	}
	if value, ok := _u.mutation.RawText(); ok {
		_spec.SetField(paystub.FieldRawText, field.TypeString, value)
	}
	if _u.mutation.RawTextCleared() {
		_spec.ClearField(paystub.FieldRawText, field.TypeString)
	}
	if value, ok := _u.mutation.CreatedAt(); ok {
		_spec.SetField(paystub.FieldCreatedAt, field.TypeTime, value)
	}
	if _u.mutation.FileCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paystub.FileTable,
			Columns: []string{paystub.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paystubfile.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.FileIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.M2O,
			Inverse: true,
			Table:   paystub.FileTable,
			Columns: []string{paystub.FileColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(paystubfile.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	if _u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paystub.JobsTable,
			Columns: []string{paystub.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.RemovedJobsIDs(); len(nodes) > 0 && !_u.mutation.JobsCleared() {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paystub.JobsTable,
			Columns: []string{paystub.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Clear = append(_spec.Edges.Clear, edge)
	}
	if nodes := _u.mutation.JobsIDs(); len(nodes) > 0 {
		edge := &sqlgraph.EdgeSpec{
			Rel:     sqlgraph.O2M,
			Inverse: false,
			Table:   paystub.JobsTable,
			Columns: []string{paystub.JobsColumn},
			Bidi:    false,
			Target: &sqlgraph.EdgeTarget{
				IDSpec: sqlgraph.NewFieldSpec(extractjob.FieldID, field.TypeUUID),
			},
		}
		for _, k := range nodes {
			edge.Target.Nodes = append(edge.Target.Nodes, k)
		}
		_spec.Edges.Add = append(_spec.Edges.Add, edge)
	}
	_node = &Paystub{config: _u.config}
	_spec.Assign = _node.assignValues
	_spec.ScanValues = _node.scanValues
	if err = sqlgraph.UpdateNode(ctx, _u.driver, _spec); err != nil {
		if _, ok := err.(*sqlgraph.NotFoundError); ok {
			err = &NotFoundError{paystub.Label}
		} else if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	_u.mutation.done = true
	return _node, nil
}
