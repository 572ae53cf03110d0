// Code generated by ent, DO NOT EDIT.

package paystub

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/google/uuid"
)

const (
	// Label holds the string label denoting the paystub type in the database.
	Label = "paystub"
	// FieldID holds the string denoting the id field in the database.
	FieldID = "id"
	// FieldFileID holds the string denoting the file_id field in the database.
	FieldFileID = "file_id"
	// FieldProvider holds the string denoting the provider field in the database.
	FieldProvider = "provider"
	// FieldGrossPay holds the string denoting the gross_pay field in the database.
	FieldGrossPay = "gross_pay"
	// FieldNetPay holds the string denoting the net_pay field in the database.
	FieldNetPay = "net_pay"
	// FieldYtdGrossPay holds the string denoting the ytd_gross_pay field in the database.
	FieldYtdGrossPay = "ytd_gross_pay"
	// FieldYtdNetPay holds the string denoting the ytd_net_pay field in the database.
	FieldYtdNetPay = "ytd_net_pay"
	// FieldCurrencyCode holds the string denoting the currency_code field in the database.
	FieldCurrencyCode = "currency_code"
	// FieldPayPeriodStart holds the string denoting the pay_period_start field in the database.
	FieldPayPeriodStart = "pay_period_start"
	// FieldPayPeriodEnd holds the string denoting the pay_period_end field in the database.
	FieldPayPeriodEnd = "pay_period_end"
	// FieldPayDate holds the string denoting the pay_date field in the database.
	FieldPayDate = "pay_date"
	// FieldPayFrequency holds the string denoting the pay_frequency field in the database.
	FieldPayFrequency = "pay_frequency"
	// FieldEmployeeName holds the string denoting the employee_name field in the database.
	FieldEmployeeName = "employee_name"
	// FieldEmployeeID holds the string denoting the employee_id field in the database.
	FieldEmployeeID = "employee_id"
	// FieldEmployerName holds the string denoting the employer_name field in the database.
	FieldEmployerName = "employer_name"
	// FieldDeductions holds the string denoting the deductions field in the database.
	FieldDeductions = "deductions"
	// FieldOverallConfidence holds the string denoting the overall_confidence field in the database.
	FieldOverallConfidence = "overall_confidence"
	// FieldRawText holds the string denoting the raw_text field in the database.
	FieldRawText = "raw_text"
	// FieldCreatedAt holds the string denoting the created_at field in the database.
	FieldCreatedAt = "created_at"
	// EdgeFile holds the string denoting the file edge name in mutations.
	EdgeFile = "file"
	// EdgeJobs holds the string denoting the jobs edge name in mutations.
	EdgeJobs = "jobs"
	// Table holds the table name of the paystub in the database.
	Table = "paystubs"
	// FileTable is the table that holds the file relation/edge.
	FileTable = "paystubs"
	// FileInverseTable is the table name for the PaystubFile entity.
	// It exists in this package in order to avoid circular dependency with the "paystubfile" package.
	FileInverseTable = "paystub_files"
	// FileColumn is the table column denoting the file relation/edge.
	FileColumn = "file_id"
	// JobsTable is the table that holds the jobs relation/edge.
	JobsTable = "extract_job"
	// JobsInverseTable is the table name for the ExtractJob entity.
	// It exists in this package in order to avoid circular dependency with the "extractjob" package.
	JobsInverseTable = "extract_job"
	// JobsColumn is the table column denoting the jobs relation/edge.
	JobsColumn = "paystub_id"
)

// Columns holds all SQL columns for paystub fields.
var Columns = []string{
	FieldID,
	FieldFileID,
	FieldProvider,
	FieldGrossPay,
	FieldNetPay,
	FieldYtdGrossPay,
	FieldYtdNetPay,
	FieldCurrencyCode,
	FieldPayPeriodStart,
	FieldPayPeriodEnd,
	FieldPayDate,
	FieldPayFrequency,
	FieldEmployeeName,
	FieldEmployeeID,
	FieldEmployerName,
	FieldDeductions,
	FieldOverallConfidence,
	FieldRawText,
	FieldCreatedAt,
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
	// ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	ProviderValidator func(string) error
	// DefaultCurrencyCode holds the default value on creation for the "currency_code" field.
	DefaultCurrencyCode string
	// DefaultPayFrequency holds the default value on creation for the "pay_frequency" field.
	DefaultPayFrequency string
	// DefaultCreatedAt holds the default value on creation for the "created_at" field.
	DefaultCreatedAt func() time.Time
	// DefaultID holds the default value on creation for the "id" field.
	DefaultID func() uuid.UUID
)

// OrderOption defines the ordering options for the Paystub queries.
type OrderOption func(*sql.Selector)

// ByID orders the results by the id field.
func ByID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldID, opts...).ToFunc()
}

// ByFileID orders the results by the file_id field.
func ByFileID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldFileID, opts...).ToFunc()
}

// ByProvider orders the results by the provider field.
func ByProvider(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldProvider, opts...).ToFunc()
}

// ByGrossPay orders the results by the gross_pay field.
func ByGrossPay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldGrossPay, opts...).ToFunc()
}

// ByNetPay orders the results by the net_pay field.
func ByNetPay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldNetPay, opts...).ToFunc()
}

// ByYtdGrossPay orders the results by the ytd_gross_pay field.
func ByYtdGrossPay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYtdGrossPay, opts...).ToFunc()
}

// ByYtdNetPay orders the results by the ytd_net_pay field.
func ByYtdNetPay(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldYtdNetPay, opts...).ToFunc()
}

// ByCurrencyCode orders the results by the currency_code field.
func ByCurrencyCode(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCurrencyCode, opts...).ToFunc()
}

// ByPayPeriodStart orders the results by the pay_period_start field.
func ByPayPeriodStart(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayPeriodStart, opts...).ToFunc()
}

// ByPayPeriodEnd orders the results by the pay_period_end field.
func ByPayPeriodEnd(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayPeriodEnd, opts...).ToFunc()
}

// ByPayDate orders the results by the pay_date field.
func ByPayDate(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayDate, opts...).ToFunc()
}

// ByPayFrequency orders the results by the pay_frequency field.
func ByPayFrequency(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldPayFrequency, opts...).ToFunc()
}

// ByEmployeeName orders the results by the employee_name field.
func ByEmployeeName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeName, opts...).ToFunc()
}

// ByEmployeeID orders the results by the employee_id field.
func ByEmployeeID(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployeeID, opts...).ToFunc()
}

// ByEmployerName orders the results by the employer_name field.
func ByEmployerName(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldEmployerName, opts...).ToFunc()
}

// ByOverallConfidence orders the results by the overall_confidence field.
func ByOverallConfidence(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldOverallConfidence, opts...).ToFunc()
}

// ByRawText orders the results by the raw_text field.
func ByRawText(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldRawText, opts...).ToFunc()
}

// ByCreatedAt orders the results by the created_at field.
func ByCreatedAt(opts ...sql.OrderTermOption) OrderOption {
	return sql.OrderByField(FieldCreatedAt, opts...).ToFunc()
}

// ByFileField orders the results by file field.
func ByFileField(field string, opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newFileStep(), sql.OrderByField(field, opts...))
	}
}

// ByJobsCount orders the results by jobs count.
func ByJobsCount(opts ...sql.OrderTermOption) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborsCount(s, newJobsStep(), opts...)
	}
}

// ByJobs orders the results by jobs terms.
func ByJobs(term sql.OrderTerm, terms ...sql.OrderTerm) OrderOption {
	return func(s *sql.Selector) {
		sqlgraph.OrderByNeighborTerms(s, newJobsStep(), append([]sql.OrderTerm{term}, terms...)...)
	}
}
func newFileStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(FileInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
	)
}
func newJobsStep() *sqlgraph.Step {
	return sqlgraph.NewStep(
		sqlgraph.From(Table, FieldID),
		sqlgraph.To(JobsInverseTable, FieldID),
		sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
	)
}
