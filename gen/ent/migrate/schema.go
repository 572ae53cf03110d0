// Code generated by ent, DO NOT EDIT.

package migrate

import (
	"entgo.io/ent/dialect/entsql"
	"entgo.io/ent/dialect/sql/schema"
	"entgo.io/ent/schema/field"
)

var (
	// ExtractJobColumns holds the columns for the "extract_job" table.
	ExtractJobColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "format", Type: field.TypeString},
		{Name: "started_at", Type: field.TypeTime},
		{Name: "finished_at", Type: field.TypeTime, Nullable: true},
		{Name: "status", Type: field.TypeString, Nullable: true},
		{Name: "error_message", Type: field.TypeString, Nullable: true},
		{Name: "extraction_confidence", Type: field.TypeFloat32, Nullable: true},
		{Name: "needs_review", Type: field.TypeBool, Default: false},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "extracted_json", Type: field.TypeJSON, Nullable: true},
		{Name: "method", Type: field.TypeString, Nullable: true},
		{Name: "paystub_id", Type: field.TypeUUID, Nullable: true},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// ExtractJobTable holds the schema information for the "extract_job" table.
	ExtractJobTable = &schema.Table{
		Name:       "extract_job",
		Columns:    ExtractJobColumns,
		PrimaryKey: []*schema.Column{ExtractJobColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "extract_job_paystubs_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[11]},
				RefColumns: []*schema.Column{PaystubsColumns[0]},
				OnDelete:   schema.SetNull,
			},
			{
				Symbol:     "extract_job_paystub_files_jobs",
				Columns:    []*schema.Column{ExtractJobColumns[12]},
				RefColumns: []*schema.Column{PaystubFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "extractjob_status_started_at",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[4], ExtractJobColumns[2]},
			},
			{
				Name:    "extractjob_file_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[12]},
			},
			{
				Name:    "extractjob_paystub_id",
				Unique:  false,
				Columns: []*schema.Column{ExtractJobColumns[11]},
			},
		},
	}
	// PaystubsColumns holds the columns for the "paystubs" table.
	PaystubsColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "provider", Type: field.TypeString},
		{Name: "gross_pay", Type: field.TypeString, Nullable: true},
		{Name: "net_pay", Type: field.TypeString, Nullable: true},
		{Name: "ytd_gross_pay", Type: field.TypeString, Nullable: true},
		{Name: "ytd_net_pay", Type: field.TypeString, Nullable: true},
		{Name: "currency_code", Type: field.TypeString, Default: "USD"},
		{Name: "pay_period_start", Type: field.TypeTime, Nullable: true},
		{Name: "pay_period_end", Type: field.TypeTime, Nullable: true},
		{Name: "pay_date", Type: field.TypeTime, Nullable: true},
		{Name: "pay_frequency", Type: field.TypeString, Default: "UNKNOWN"},
		{Name: "employee_name", Type: field.TypeString, Nullable: true},
		{Name: "employee_id", Type: field.TypeString, Nullable: true},
		{Name: "employer_name", Type: field.TypeString, Nullable: true},
		{Name: "deductions", Type: field.TypeJSON, Nullable: true},
		{Name: "overall_confidence", Type: field.TypeFloat32},
		{Name: "raw_text", Type: field.TypeString, Nullable: true, SchemaType: map[string]string{"postgres": "text"}},
		{Name: "created_at", Type: field.TypeTime},
		{Name: "file_id", Type: field.TypeUUID},
	}
	// PaystubsTable holds the schema information for the "paystubs" table.
	PaystubsTable = &schema.Table{
		Name:       "paystubs",
		Columns:    PaystubsColumns,
		PrimaryKey: []*schema.Column{PaystubsColumns[0]},
		ForeignKeys: []*schema.ForeignKey{
			{
				Symbol:     "paystubs_paystub_files_paystubs",
				Columns:    []*schema.Column{PaystubsColumns[18]},
				RefColumns: []*schema.Column{PaystubFilesColumns[0]},
				OnDelete:   schema.NoAction,
			},
		},
		Indexes: []*schema.Index{
			{
				Name:    "paystub_file_id",
				Unique:  false,
				Columns: []*schema.Column{PaystubsColumns[18]},
			},
			{
				Name:    "paystub_pay_date",
				Unique:  false,
				Columns: []*schema.Column{PaystubsColumns[9]},
			},
			{
				Name:    "paystub_created_at",
				Unique:  false,
				Columns: []*schema.Column{PaystubsColumns[17]},
			},
		},
	}
	// PaystubFilesColumns holds the columns for the "paystub_files" table.
	PaystubFilesColumns = []*schema.Column{
		{Name: "id", Type: field.TypeUUID},
		{Name: "source_path", Type: field.TypeString},
		{Name: "content_hash", Type: field.TypeBytes, SchemaType: map[string]string{"postgres": "bytea"}},
		{Name: "filename", Type: field.TypeString},
		{Name: "file_ext", Type: field.TypeString},
		{Name: "content_type", Type: field.TypeString},
		{Name: "file_size", Type: field.TypeInt},
		{Name: "uploaded_at", Type: field.TypeTime},
	}
	// PaystubFilesTable holds the schema information for the "paystub_files" table.
	PaystubFilesTable = &schema.Table{
		Name:       "paystub_files",
		Columns:    PaystubFilesColumns,
		PrimaryKey: []*schema.Column{PaystubFilesColumns[0]},
		Indexes: []*schema.Index{
			{
				Name:    "paystubfile_content_hash",
				Unique:  true,
				Columns: []*schema.Column{PaystubFilesColumns[2]},
			},
			{
				Name:    "paystubfile_uploaded_at",
				Unique:  false,
				Columns: []*schema.Column{PaystubFilesColumns[7]},
			},
		},
	}
	// Tables holds all the tables in the schema.
	Tables = []*schema.Table{
		ExtractJobTable,
		PaystubsTable,
		PaystubFilesTable,
	}
)

func init() {
	ExtractJobTable.ForeignKeys[0].RefTable = PaystubsTable
	ExtractJobTable.ForeignKeys[1].RefTable = PaystubFilesTable
	ExtractJobTable.Annotation = &entsql.Annotation{
		Table: "extract_job",
	}
	PaystubsTable.ForeignKeys[0].RefTable = PaystubFilesTable
	PaystubsTable.Annotation = &entsql.Annotation{
		Table: "paystubs",
	}
	PaystubFilesTable.Annotation = &entsql.Annotation{
		Table: "paystub_files",
	}
}
