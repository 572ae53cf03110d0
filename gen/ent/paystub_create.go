// Code generated by ent, DO NOT EDIT.

package ent

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"entgo.io/ent/dialect/sql/sqlgraph"
	"entgo.io/ent/schema/field"
	"github.com/Volpestyle/paystub-extractor/gen/ent/extractjob"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystub"
	"github.com/Volpestyle/paystub-extractor/gen/ent/paystubfile"
	"github.com/google/uuid"
)

// PaystubCreate is the builder for creating a Paystub entity.
type PaystubCreate struct {
	config
	mutation *PaystubMutation
	hooks    []Hook
}

// SetFileID sets the "file_id" field.
func (_c *PaystubCreate) SetFileID(v uuid.UUID) *PaystubCreate {
	_c.mutation.SetFileID(v)
	return _c
}

// SetProvider sets the "provider" field.
func (_c *PaystubCreate) SetProvider(v string) *PaystubCreate {
	_c.mutation.SetProvider(v)
	return _c
}

// SetGrossPay sets the "gross_pay" field.
func (_c *PaystubCreate) SetGrossPay(v string) *PaystubCreate {
	_c.mutation.SetGrossPay(v)
	return _c
}

// SetNillableGrossPay sets the "gross_pay" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableGrossPay(v *string) *PaystubCreate {
	if v != nil {
		_c.SetGrossPay(*v)
	}
	return _c
}

// SetNetPay sets the "net_pay" field.
func (_c *PaystubCreate) SetNetPay(v string) *PaystubCreate {
	_c.mutation.SetNetPay(v)
	return _c
}

// SetNillableNetPay sets the "net_pay" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableNetPay(v *string) *PaystubCreate {
	if v != nil {
		_c.SetNetPay(*v)
	}
	return _c
}

// SetYtdGrossPay sets the "ytd_gross_pay" field.
func (_c *PaystubCreate) SetYtdGrossPay(v string) *PaystubCreate {
	_c.mutation.SetYtdGrossPay(v)
	return _c
}

// SetNillableYtdGrossPay sets the "ytd_gross_pay" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableYtdGrossPay(v *string) *PaystubCreate {
	if v != nil {
		_c.SetYtdGrossPay(*v)
	}
	return _c
}

// SetYtdNetPay sets the "ytd_net_pay" field.
func (_c *PaystubCreate) SetYtdNetPay(v string) *PaystubCreate {
	_c.mutation.SetYtdNetPay(v)
	return _c
}

// SetNillableYtdNetPay sets the "ytd_net_pay" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableYtdNetPay(v *string) *PaystubCreate {
	if v != nil {
		_c.SetYtdNetPay(*v)
	}
	return _c
}

// SetCurrencyCode sets the "currency_code" field.
func (_c *PaystubCreate) SetCurrencyCode(v string) *PaystubCreate {
	_c.mutation.SetCurrencyCode(v)
	return _c
}

// SetNillableCurrencyCode sets the "currency_code" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableCurrencyCode(v *string) *PaystubCreate {
	if v != nil {
		_c.SetCurrencyCode(*v)
	}
	return _c
}

// SetPayPeriodStart sets the "pay_period_start" field.
func (_c *PaystubCreate) SetPayPeriodStart(v time.Time) *PaystubCreate {
	_c.mutation.SetPayPeriodStart(v)
	return _c
}

// SetNillablePayPeriodStart sets the "pay_period_start" field if the given value is not nil.
func (_c *PaystubCreate) SetNillablePayPeriodStart(v *time.Time) *PaystubCreate {
	if v != nil {
		_c.SetPayPeriodStart(*v)
	}
	return _c
}

// SetPayPeriodEnd sets the "pay_period_end" field.
func (_c *PaystubCreate) SetPayPeriodEnd(v time.Time) *PaystubCreate {
	_c.mutation.SetPayPeriodEnd(v)
	return _c
}

// SetNillablePayPeriodEnd sets the "pay_period_end" field if the given value is not nil.
func (_c *PaystubCreate) SetNillablePayPeriodEnd(v *time.Time) *PaystubCreate {
	if v != nil {
		_c.SetPayPeriodEnd(*v)
	}
	return _c
}

// SetPayDate sets the "pay_date" field.
func (_c *PaystubCreate) SetPayDate(v time.Time) *PaystubCreate {
	_c.mutation.SetPayDate(v)
	return _c
}

// SetNillablePayDate sets the "pay_date" field if the given value is not nil.
func (_c *PaystubCreate) SetNillablePayDate(v *time.Time) *PaystubCreate {
	if v != nil {
		_c.SetPayDate(*v)
	}
	return _c
}

// SetPayFrequency sets the "pay_frequency" field.
func (_c *PaystubCreate) SetPayFrequency(v string) *PaystubCreate {
	_c.mutation.SetPayFrequency(v)
	return _c
}

// SetNillablePayFrequency sets the "pay_frequency" field if the given value is not nil.
func (_c *PaystubCreate) SetNillablePayFrequency(v *string) *PaystubCreate {
	if v != nil {
		_c.SetPayFrequency(*v)
	}
	return _c
}

// SetEmployeeName sets the "employee_name" field.
func (_c *PaystubCreate) SetEmployeeName(v string) *PaystubCreate {
	_c.mutation.SetEmployeeName(v)
	return _c
}

// SetNillableEmployeeName sets the "employee_name" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableEmployeeName(v *string) *PaystubCreate {
	if v != nil {
		_c.SetEmployeeName(*v)
	}
	return _c
}

// SetEmployeeID sets the "employee_id" field.
func (_c *PaystubCreate) SetEmployeeID(v string) *PaystubCreate {
	_c.mutation.SetEmployeeID(v)
	return _c
}

// SetNillableEmployeeID sets the "employee_id" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableEmployeeID(v *string) *PaystubCreate {
	if v != nil {
		_c.SetEmployeeID(*v)
	}
	return _c
}

// SetEmployerName sets the "employer_name" field.
func (_c *PaystubCreate) SetEmployerName(v string) *PaystubCreate {
	_c.mutation.SetEmployerName(v)
	return _c
}

// SetNillableEmployerName sets the "employer_name" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableEmployerName(v *string) *PaystubCreate {
	if v != nil {
		_c.SetEmployerName(*v)
	}
	return _c
}

// SetDeductions sets the "deductions" field.
func (_c *PaystubCreate) SetDeductions(v json.RawMessage) *PaystubCreate {
	_c.mutation.SetDeductions(v)
	return _c
}

// SetOverallConfidence sets the "overall_confidence" field.
func (_c *PaystubCreate) SetOverallConfidence(v float32) *PaystubCreate {
	_c.mutation.SetOverallConfidence(v)
	return _c
}

// SetRawText sets the "raw_text" field.
func (_c *PaystubCreate) SetRawText(v string) *PaystubCreate {
	_c.mutation.SetRawText(v)
	return _c
}

// SetNillableRawText sets the "raw_text" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableRawText(v *string) *PaystubCreate {
	if v != nil {
		_c.SetRawText(*v)
	}
	return _c
}

// SetCreatedAt sets the "created_at" field.
func (_c *PaystubCreate) SetCreatedAt(v time.Time) *PaystubCreate {
	_c.mutation.SetCreatedAt(v)
	return _c
}

// SetNillableCreatedAt sets the "created_at" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableCreatedAt(v *time.Time) *PaystubCreate {
	if v != nil {
		_c.SetCreatedAt(*v)
	}
	return _c
}

// SetID sets the "id" field.
func (_c *PaystubCreate) SetID(v uuid.UUID) *PaystubCreate {
	_c.mutation.SetID(v)
	return _c
}

// SetNillableID sets the "id" field if the given value is not nil.
func (_c *PaystubCreate) SetNillableID(v *uuid.UUID) *PaystubCreate {
	if v != nil {
		_c.SetID(*v)
	}
	return _c
}

// SetFile sets the "file" edge to the PaystubFile entity.
func (_c *PaystubCreate) SetFile(v *PaystubFile) *PaystubCreate {
	return _c.SetFileID(v.ID)
}

// AddJobIDs adds the "jobs" edge to the ExtractJob entity by IDs.
func (_c *PaystubCreate) AddJobIDs(ids ...uuid.UUID) *PaystubCreate {
	_c.mutation.AddJobIDs(ids...)
	return _c
}

// AddJobs adds the "jobs" edges to the ExtractJob entity.
func (_c *PaystubCreate) AddJobs(v ...*ExtractJob) *PaystubCreate {
	ids := make([]uuid.UUID, len(v))
	for i := range v {
		ids[i] = v[i].ID
	}
	return _c.AddJobIDs(ids...)
}

// Mutation returns the PaystubMutation object of the builder.
func (_c *PaystubCreate) Mutation() *PaystubMutation {
	return _c.mutation
}

// Save creates the Paystub in the database.
func (_c *PaystubCreate) Save(ctx context.Context) (*Paystub, error) {
	_c.defaults()
	return withHooks(ctx, _c.sqlSave, _c.mutation, _c.hooks)
}

// SaveX calls Save and panics if Save returns an error.
func (_c *PaystubCreate) SaveX(ctx context.Context) *Paystub {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaystubCreate) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaystubCreate) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}

// defaults sets the default values of the builder before save.
func (_c *PaystubCreate) defaults() {
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		v := paystub.DefaultCurrencyCode
		_c.mutation.SetCurrencyCode(v)
	}
	if _, ok := _c.mutation.PayFrequency(); !ok {
		v := paystub.DefaultPayFrequency
		_c.mutation.SetPayFrequency(v)
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		v := paystub.DefaultCreatedAt()
		_c.mutation.SetCreatedAt(v)
	}
	if _, ok := _c.mutation.ID(); !ok {
		v := paystub.DefaultID()
		_c.mutation.SetID(v)
	}
}

// check runs all checks and user-defined validators on the builder.
func (_c *PaystubCreate) check() error {
	if _, ok := _c.mutation.FileID(); !ok {
		return &ValidationError{Name: "file_id", err: errors.New(`ent: missing required field "Paystub.file_id"`)}
	}
	if _, ok := _c.mutation.Provider(); !ok {
		return &ValidationError{Name: "provider", err: errors.New(`ent: missing required field "Paystub.provider"`)}
	}
	if v, ok := _c.mutation.Provider(); ok {
		if err := paystub.ProviderValidator(v); err != nil {
			return &ValidationError{Name: "provider", err: fmt.Errorf(`ent: validator failed for field "Paystub.provider": %w`, err)}
		}
	}
	if _, ok := _c.mutation.CurrencyCode(); !ok {
		return &ValidationError{Name: "currency_code", err: errors.New(`ent: missing required field "Paystub.currency_code"`)}
	}
	if _, ok := _c.mutation.PayFrequency(); !ok {
		return &ValidationError{Name: "pay_frequency", err: errors.New(`ent: missing required field "Paystub.pay_frequency"`)}
	}
	if _, ok := _c.mutation.OverallConfidence(); !ok {
		return &ValidationError{Name: "overall_confidence", err: errors.New(`ent: missing required field "Paystub.overall_confidence"`)}
	}
	if _, ok := _c.mutation.CreatedAt(); !ok {
		return &ValidationError{Name: "created_at", err: errors.New(`ent: missing required field "Paystub.created_at"`)}
	}
	if len(_c.mutation.FileIDs()) == 0 {
		return &ValidationError{Name: "file", err: errors.New(`ent: missing required edge "Paystub.file"`)}
	}
	return nil
}

func (_c *PaystubCreate) sqlSave(ctx context.Context) (*Paystub, error) {
	if err := _c.check(); err != nil {
		return nil, err
	}
	_node, _spec := _c.createSpec()
	if err := sqlgraph.CreateNode(ctx, _c.driver, _spec); err != nil {
		if sqlgraph.IsConstraintError(err) {
			err = &ConstraintError{msg: err.Error(), wrap: err}
		}
		return nil, err
	}
	if _spec.ID.Value != nil {
		if id, ok := _spec.ID.Value.(*uuid.UUID); ok {
			_node.ID = *id
		} else if err := _node.ID.Scan(_spec.ID.Value); err != nil {
			return nil, err
		}
	}
	_c.mutation.id = &_node.ID
	_c.mutation.done = true
	return _node, nil
}

func (_c *PaystubCreate) createSpec() (*Paystub, *sqlgraph.CreateSpec) {
	var (
		_node = &Paystub{config: _c.config}
		_spec = sqlgraph.NewCreateSpec(paystub.Table, sqlgraph.NewFieldSpec(paystub.FieldID, field.TypeUUID))
	)
	if id, ok := _c.mutation.ID(); ok {
		_node.ID = id
		_spec.ID.Value = &id
	}
	if value, ok := _c.mutation.Provider(); ok {
		_spec.SetField(paystub.FieldProvider, field.TypeString, value)
		_node.Provider = value
	}
	if value, ok := _c.mutation.GrossPay(); ok {
		_spec.SetField(paystub.FieldGrossPay, field.TypeString, value)
		_node.GrossPay = &value
	}
	if value, ok := _c.mutation.NetPay(); ok {
		_spec.SetField(paystub.FieldNetPay, field.TypeString, value)
		_node.NetPay = &value
	}
	if value, ok := _c.mutation.YtdGrossPay(); ok {
		_spec.SetField(paystub.FieldYtdGrossPay, field.TypeString, value)
		_node.YtdGrossPay = &value
	}
	if value, ok := _c.mutation.YtdNetPay(); ok {
		_spec.SetField(paystub.FieldYtdNetPay, field.TypeString, value)
		_node.YtdNetPay = &value
	}
	if value, ok := _c.mutation.CurrencyCode(); ok {
		_spec.SetField(paystub.FieldCurrencyCode, field.TypeString, value)
		_node.CurrencyCode = value
	}
	if value, ok := _c.mutation.PayPeriodStart(); ok {
		_spec.SetField(paystub.FieldPayPeriodStart, field.TypeTime, value)
		_node.PayPeriodStart = &value
	}
	if value, ok := _c.mutation.PayPeriodEnd(); ok {
		_spec.SetField(paystub.FieldPayPeriodEnd, field.TypeTime, value)
		_node.PayPeriodEnd = &value
	}
	if value, ok := _c.mutation.PayDate(); ok {
		_spec.SetField(paystub.FieldPayDate, field.TypeTime, value)
		_node.PayDate = &value
	}
	if value, ok := _c.mutation.PayFrequency(); ok {
		_spec.SetField(paystub.FieldPayFrequency, field.TypeString, value)
		_node.PayFrequency = value
	}
	if value, ok := _c.mutation.EmployeeName(); ok {
		_spec.SetField(paystub.FieldEmployeeName, field.TypeString, value)
		_node.EmployeeName = &value
	}
	if value, ok := _c.mutation.EmployeeID(); ok {
		_spec.SetField(paystub.FieldEmployeeID, field.TypeString, value)
		_node.EmployeeID = &value
	}
	if value, ok := _c.mutation.EmployerName(); ok {
		_spec.SetField(paystub.FieldEmployerName, field.TypeString, value)
		_node.EmployerName = &value
	}
	if value, ok := _c.mutation.Deductions(); ok {
		_spec.SetField(paystub.FieldDeductions, field.TypeJSON, value)
		_node.Deductions = value
	}
	if value, ok := _c.mutation.OverallConfidence(); ok {
		_spec.SetField(paystub.FieldOverallConfidence, field.TypeFloat32, value)
		_node.OverallConfidence = value
	}
	if value, ok := _c.mutation.RawText(); ok {
		_spec.SetField(paystub.FieldRawText, field.TypeString, value)
		_node.RawText = &value
	}
	if value, ok := _c.mutation.CreatedAt(); ok {
		_spec.SetField(paystub.FieldCreatedAt, field.TypeTime, value)
		_node.CreatedAt = value
	}
	if nodes := _c.mutation.FileIDs(); len(nodes) > 0 {
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
		_node.FileID = nodes[0]
		_spec.Edges = append(_spec.Edges, edge)
	}
	if nodes := _c.mutation.JobsIDs(); len(nodes) > 0 {
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
		_spec.Edges = append(_spec.Edges, edge)
	}
	return _node, _spec
}

// PaystubCreateBulk is the builder for creating many Paystub entities in bulk.
type PaystubCreateBulk struct {
	config
	err      error
	builders []*PaystubCreate
}

// Save creates the Paystub entities in the database.
func (_c *PaystubCreateBulk) Save(ctx context.Context) ([]*Paystub, error) {
	if _c.err != nil {
		return nil, _c.err
	}
	specs := make([]*sqlgraph.CreateSpec, len(_c.builders))
	nodes := make([]*Paystub, len(_c.builders))
	mutators := make([]Mutator, len(_c.builders))
	for i := range _c.builders {
		func(i int, root context.Context) {
			builder := _c.builders[i]
			builder.defaults()
			var mut Mutator = MutateFunc(func(ctx context.Context, m Mutation) (Value, error) {
				mutation, ok := m.(*PaystubMutation)
				if !ok {
					return nil, fmt.Errorf("unexpected mutation type %T", m)
				}
				if err := builder.check(); err != nil {
					return nil, err
				}
				builder.mutation = mutation
				var err error
				nodes[i], specs[i] = builder.createSpec()
				if i < len(mutators)-1 {
					_, err = mutators[i+1].Mutate(root, _c.builders[i+1].mutation)
				} else {
					spec := &sqlgraph.BatchCreateSpec{Nodes: specs}
					// Invoke the actual operation on the latest mutation in the chain.
					if err = sqlgraph.BatchCreate(ctx, _c.driver, spec); err != nil {
						if sqlgraph.IsConstraintError(err) {
							err = &ConstraintError{msg: err.Error(), wrap: err}
						}
					}
				}
				if err != nil {
					return nil, err
				}
				mutation.id = &nodes[i].ID
				mutation.done = true
				return nodes[i], nil
			})
			for i := len(builder.hooks) - 1; i >= 0; i-- {
				mut = builder.hooks[i](mut)
			}
			mutators[i] = mut
		}(i, ctx)
	}
	if len(mutators) > 0 {
		if _, err := mutators[0].Mutate(ctx, _c.builders[0].mutation); err != nil {
			return nil, err
		}
	}
	return nodes, nil
}

// SaveX is like Save, but panics if an error occurs.
func (_c *PaystubCreateBulk) SaveX(ctx context.Context) []*Paystub {
	v, err := _c.Save(ctx)
	if err != nil {
		panic(err)
	}
	return v
}

// Exec executes the query.
func (_c *PaystubCreateBulk) Exec(ctx context.Context) error {
	_, err := _c.Save(ctx)
	return err
}

// ExecX is like Exec, but panics if an error occurs.
func (_c *PaystubCreateBulk) ExecX(ctx context.Context) {
	if err := _c.Exec(ctx); err != nil {
		panic(err)
	}
}
