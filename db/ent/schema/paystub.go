package schema

import (
	"encoding/json"
	"time"

	"entgo.io/ent"
	"entgo.io/ent/dialect"
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/schema"
	"entgo.io/ent/schema/edge"
	"entgo.io/ent/schema/field"
	"entgo.io/ent/schema/index"

	"github.com/google/uuid"
)

// Paystub stores one extracted record. Money lands as decimal strings;
// deduction lists as JSON. Floats only for confidences.
type Paystub struct{ ent.Schema }

func (Paystub) Annotations() []schema.Annotation {
	return []schema.Annotation{
		entsql.Annotation{Table: "paystubs"},
	}
}

func (Paystub) Fields() []ent.Field {
	return []ent.Field{
		field.UUID("id", uuid.UUID{}).Default(uuid.New).Immutable(),
		field.UUID("file_id", uuid.UUID{}),
		field.String("provider").NotEmpty(),
		field.String("gross_pay").Optional().Nillable(),
		field.String("net_pay").Optional().Nillable(),
		field.String("ytd_gross_pay").Optional().Nillable(),
		field.String("ytd_net_pay").Optional().Nillable(),
		field.String("currency_code").Default("USD"),
		field.Time("pay_period_start").Optional().Nillable(),
		field.Time("pay_period_end").Optional().Nillable(),
		field.Time("pay_date").Optional().Nillable(),
		field.String("pay_frequency").Default("UNKNOWN"),
		field.String("employee_name").Optional().Nillable(),
		field.String("employee_id").Optional().Nillable(),
		field.String("employer_name").Optional().Nillable(),
		field.JSON("deductions", json.RawMessage{}).Optional(),
		field.Float32("overall_confidence"),
		field.String("raw_text").Optional().Nillable().
			SchemaType(map[string]string{dialect.Postgres: "text"}),
		field.Time("created_at").Default(time.Now),
	}
}

func (Paystub) Edges() []ent.Edge {
	return []ent.Edge{
		edge.From("file", PaystubFile.Type).
			Ref("paystubs").
			Field("file_id").
			Unique().
			Required(),
		edge.To("jobs", ExtractJob.Type),
	}
}

func (Paystub) Indexes() []ent.Index {
	return []ent.Index{
		index.Fields("file_id"),
		index.Fields("pay_date"),
		index.Fields("created_at"),
	}
}
