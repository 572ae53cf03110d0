// Code generated by ent, DO NOT EDIT.

package paystub

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/Volpestyle/paystub-extractor/gen/ent/predicate"
	"github.com/google/uuid"
)

// ID filters vertices based on their ID field.
func ID(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldID, id))
}

// FileID applies equality check predicate on the "file_id" field. It's identical to FileIDEQ.
func FileID(v uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldFileID, v))
}

// Provider applies equality check predicate on the "provider" field. It's identical to ProviderEQ.
func Provider(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldProvider, v))
}

// GrossPay applies equality check predicate on the "gross_pay" field. It's identical to GrossPayEQ.
func GrossPay(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldGrossPay, v))
}

// NetPay applies equality check predicate on the "net_pay" field. It's identical to NetPayEQ.
func NetPay(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldNetPay, v))
}

// YtdGrossPay applies equality check predicate on the "ytd_gross_pay" field. It's identical to YtdGrossPayEQ.
func YtdGrossPay(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldYtdGrossPay, v))
}

// YtdNetPay applies equality check predicate on the "ytd_net_pay" field. It's identical to YtdNetPayEQ.
func YtdNetPay(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldYtdNetPay, v))
}

// CurrencyCode applies equality check predicate on the "currency_code" field. It's identical to CurrencyCodeEQ.
func CurrencyCode(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldCurrencyCode, v))
}

// PayPeriodStart applies equality check predicate on the "pay_period_start" field. It's identical to PayPeriodStartEQ.
func PayPeriodStart(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayPeriodStart, v))
}

// PayPeriodEnd applies equality check predicate on the "pay_period_end" field. It's identical to PayPeriodEndEQ.
func PayPeriodEnd(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayPeriodEnd, v))
}

// PayDate applies equality check predicate on the "pay_date" field. It's identical to PayDateEQ.
func PayDate(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayDate, v))
}

// PayFrequency applies equality check predicate on the "pay_frequency" field. It's identical to PayFrequencyEQ.
func PayFrequency(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayFrequency, v))
}

// EmployeeName applies equality check predicate on the "employee_name" field. It's identical to EmployeeNameEQ.
func EmployeeName(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldEmployeeName, v))
}

// EmployeeID applies equality check predicate on the "employee_id" field. It's identical to EmployeeIDEQ.
func EmployeeID(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployerName applies equality check predicate on the "employer_name" field. It's identical to EmployerNameEQ.
func EmployerName(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldEmployerName, v))
}

// OverallConfidence applies equality check predicate on the "overall_confidence" field. It's identical to OverallConfidenceEQ.
func OverallConfidence(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldOverallConfidence, v))
}

// RawText applies equality check predicate on the "raw_text" field. It's identical to RawTextEQ.
func RawText(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldRawText, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldCreatedAt, v))
}

// FileIDEQ applies the EQ predicate on the "file_id" field.
func FileIDEQ(v uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldFileID, v))
}

// FileIDNEQ applies the NEQ predicate on the "file_id" field.
func FileIDNEQ(v uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldFileID, v))
}

// FileIDIn applies the In predicate on the "file_id" field.
func FileIDIn(vs ...uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldFileID, vs...))
}

// FileIDNotIn applies the NotIn predicate on the "file_id" field.
func FileIDNotIn(vs ...uuid.UUID) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldFileID, vs...))
}

// ProviderEQ applies the EQ predicate on the "provider" field.
func ProviderEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldProvider, v))
}

// ProviderNEQ applies the NEQ predicate on the "provider" field.
func ProviderNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldProvider, v))
}

// ProviderIn applies the In predicate on the "provider" field.
func ProviderIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldProvider, vs...))
}

// ProviderNotIn applies the NotIn predicate on the "provider" field.
func ProviderNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldProvider, vs...))
}

// ProviderGT applies the GT predicate on the "provider" field.
func ProviderGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldProvider, v))
}

// ProviderGTE applies the GTE predicate on the "provider" field.
func ProviderGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldProvider, v))
}

// ProviderLT applies the LT predicate on the "provider" field.
func ProviderLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldProvider, v))
}

// ProviderLTE applies the LTE predicate on the "provider" field.
func ProviderLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldProvider, v))
}

// ProviderContains applies the Contains predicate on the "provider" field.
func ProviderContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldProvider, v))
}

// ProviderHasPrefix applies the HasPrefix predicate on the "provider" field.
func ProviderHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldProvider, v))
}

// ProviderHasSuffix applies the HasSuffix predicate on the "provider" field.
func ProviderHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldProvider, v))
}

// ProviderEqualFold applies the EqualFold predicate on the "provider" field.
func ProviderEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldProvider, v))
}

// ProviderContainsFold applies the ContainsFold predicate on the "provider" field.
func ProviderContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldProvider, v))
}

// GrossPayEQ applies the EQ predicate on the "gross_pay" field.
func GrossPayEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldGrossPay, v))
}

// GrossPayNEQ applies the NEQ predicate on the "gross_pay" field.
func GrossPayNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldGrossPay, v))
}

// GrossPayIn applies the In predicate on the "gross_pay" field.
func GrossPayIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldGrossPay, vs...))
}

// GrossPayNotIn applies the NotIn predicate on the "gross_pay" field.
func GrossPayNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldGrossPay, vs...))
}

// GrossPayGT applies the GT predicate on the "gross_pay" field.
func GrossPayGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldGrossPay, v))
}

// GrossPayGTE applies the GTE predicate on the "gross_pay" field.
func GrossPayGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldGrossPay, v))
}

// GrossPayLT applies the LT predicate on the "gross_pay" field.
func GrossPayLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldGrossPay, v))
}

// GrossPayLTE applies the LTE predicate on the "gross_pay" field.
func GrossPayLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldGrossPay, v))
}

// GrossPayContains applies the Contains predicate on the "gross_pay" field.
func GrossPayContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldGrossPay, v))
}

// GrossPayHasPrefix applies the HasPrefix predicate on the "gross_pay" field.
func GrossPayHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldGrossPay, v))
}

// GrossPayHasSuffix applies the HasSuffix predicate on the "gross_pay" field.
func GrossPayHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldGrossPay, v))
}

// GrossPayIsNil applies the IsNil predicate on the "gross_pay" field.
func GrossPayIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldGrossPay))
}

// GrossPayNotNil applies the NotNil predicate on the "gross_pay" field.
func GrossPayNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldGrossPay))
}

// GrossPayEqualFold applies the EqualFold predicate on the "gross_pay" field.
func GrossPayEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldGrossPay, v))
}

// GrossPayContainsFold applies the ContainsFold predicate on the "gross_pay" field.
func GrossPayContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldGrossPay, v))
}

// NetPayEQ applies the EQ predicate on the "net_pay" field.
func NetPayEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldNetPay, v))
}

// NetPayNEQ applies the NEQ predicate on the "net_pay" field.
func NetPayNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldNetPay, v))
}

// NetPayIn applies the In predicate on the "net_pay" field.
func NetPayIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldNetPay, vs...))
}

// NetPayNotIn applies the NotIn predicate on the "net_pay" field.
func NetPayNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldNetPay, vs...))
}

// NetPayGT applies the GT predicate on the "net_pay" field.
func NetPayGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldNetPay, v))
}

// NetPayGTE applies the GTE predicate on the "net_pay" field.
func NetPayGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldNetPay, v))
}

// NetPayLT applies the LT predicate on the "net_pay" field.
func NetPayLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldNetPay, v))
}

// NetPayLTE applies the LTE predicate on the "net_pay" field.
func NetPayLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldNetPay, v))
}

// NetPayContains applies the Contains predicate on the "net_pay" field.
func NetPayContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldNetPay, v))
}

// NetPayHasPrefix applies the HasPrefix predicate on the "net_pay" field.
func NetPayHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldNetPay, v))
}

// NetPayHasSuffix applies the HasSuffix predicate on the "net_pay" field.
func NetPayHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldNetPay, v))
}

// NetPayIsNil applies the IsNil predicate on the "net_pay" field.
func NetPayIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldNetPay))
}

// NetPayNotNil applies the NotNil predicate on the "net_pay" field.
func NetPayNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldNetPay))
}

// NetPayEqualFold applies the EqualFold predicate on the "net_pay" field.
func NetPayEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldNetPay, v))
}

// NetPayContainsFold applies the ContainsFold predicate on the "net_pay" field.
func NetPayContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldNetPay, v))
}

// YtdGrossPayEQ applies the EQ predicate on the "ytd_gross_pay" field.
func YtdGrossPayEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldYtdGrossPay, v))
}

// YtdGrossPayNEQ applies the NEQ predicate on the "ytd_gross_pay" field.
func YtdGrossPayNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldYtdGrossPay, v))
}

// YtdGrossPayIn applies the In predicate on the "ytd_gross_pay" field.
func YtdGrossPayIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldYtdGrossPay, vs...))
}

// YtdGrossPayNotIn applies the NotIn predicate on the "ytd_gross_pay" field.
func YtdGrossPayNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldYtdGrossPay, vs...))
}

// YtdGrossPayGT applies the GT predicate on the "ytd_gross_pay" field.
func YtdGrossPayGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldYtdGrossPay, v))
}

// YtdGrossPayGTE applies the GTE predicate on the "ytd_gross_pay" field.
func YtdGrossPayGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldYtdGrossPay, v))
}

// YtdGrossPayLT applies the LT predicate on the "ytd_gross_pay" field.
func YtdGrossPayLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldYtdGrossPay, v))
}

// YtdGrossPayLTE applies the LTE predicate on the "ytd_gross_pay" field.
func YtdGrossPayLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldYtdGrossPay, v))
}

// YtdGrossPayContains applies the Contains predicate on the "ytd_gross_pay" field.
func YtdGrossPayContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldYtdGrossPay, v))
}

// YtdGrossPayHasPrefix applies the HasPrefix predicate on the "ytd_gross_pay" field.
func YtdGrossPayHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldYtdGrossPay, v))
}

// YtdGrossPayHasSuffix applies the HasSuffix predicate on the "ytd_gross_pay" field.
func YtdGrossPayHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldYtdGrossPay, v))
}

// YtdGrossPayIsNil applies the IsNil predicate on the "ytd_gross_pay" field.
func YtdGrossPayIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldYtdGrossPay))
}

// YtdGrossPayNotNil applies the NotNil predicate on the "ytd_gross_pay" field.
func YtdGrossPayNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldYtdGrossPay))
}

// YtdGrossPayEqualFold applies the EqualFold predicate on the "ytd_gross_pay" field.
func YtdGrossPayEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldYtdGrossPay, v))
}

// YtdGrossPayContainsFold applies the ContainsFold predicate on the "ytd_gross_pay" field.
func YtdGrossPayContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldYtdGrossPay, v))
}

// YtdNetPayEQ applies the EQ predicate on the "ytd_net_pay" field.
func YtdNetPayEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldYtdNetPay, v))
}

// YtdNetPayNEQ applies the NEQ predicate on the "ytd_net_pay" field.
func YtdNetPayNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldYtdNetPay, v))
}

// YtdNetPayIn applies the In predicate on the "ytd_net_pay" field.
func YtdNetPayIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldYtdNetPay, vs...))
}

// YtdNetPayNotIn applies the NotIn predicate on the "ytd_net_pay" field.
func YtdNetPayNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldYtdNetPay, vs...))
}

// YtdNetPayGT applies the GT predicate on the "ytd_net_pay" field.
func YtdNetPayGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldYtdNetPay, v))
}

// YtdNetPayGTE applies the GTE predicate on the "ytd_net_pay" field.
func YtdNetPayGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldYtdNetPay, v))
}

// YtdNetPayLT applies the LT predicate on the "ytd_net_pay" field.
func YtdNetPayLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldYtdNetPay, v))
}

// YtdNetPayLTE applies the LTE predicate on the "ytd_net_pay" field.
func YtdNetPayLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldYtdNetPay, v))
}

// YtdNetPayContains applies the Contains predicate on the "ytd_net_pay" field.
func YtdNetPayContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldYtdNetPay, v))
}

// YtdNetPayHasPrefix applies the HasPrefix predicate on the "ytd_net_pay" field.
func YtdNetPayHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldYtdNetPay, v))
}

// YtdNetPayHasSuffix applies the HasSuffix predicate on the "ytd_net_pay" field.
func YtdNetPayHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldYtdNetPay, v))
}

// YtdNetPayIsNil applies the IsNil predicate on the "ytd_net_pay" field.
func YtdNetPayIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldYtdNetPay))
}

// YtdNetPayNotNil applies the NotNil predicate on the "ytd_net_pay" field.
func YtdNetPayNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldYtdNetPay))
}

// YtdNetPayEqualFold applies the EqualFold predicate on the "ytd_net_pay" field.
func YtdNetPayEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldYtdNetPay, v))
}

// YtdNetPayContainsFold applies the ContainsFold predicate on the "ytd_net_pay" field.
func YtdNetPayContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldYtdNetPay, v))
}

// CurrencyCodeEQ applies the EQ predicate on the "currency_code" field.
func CurrencyCodeEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldCurrencyCode, v))
}

// CurrencyCodeNEQ applies the NEQ predicate on the "currency_code" field.
func CurrencyCodeNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldCurrencyCode, v))
}

// CurrencyCodeIn applies the In predicate on the "currency_code" field.
func CurrencyCodeIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeNotIn applies the NotIn predicate on the "currency_code" field.
func CurrencyCodeNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldCurrencyCode, vs...))
}

// CurrencyCodeGT applies the GT predicate on the "currency_code" field.
func CurrencyCodeGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldCurrencyCode, v))
}

// CurrencyCodeGTE applies the GTE predicate on the "currency_code" field.
func CurrencyCodeGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldCurrencyCode, v))
}

// CurrencyCodeLT applies the LT predicate on the "currency_code" field.
func CurrencyCodeLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldCurrencyCode, v))
}

// CurrencyCodeLTE applies the LTE predicate on the "currency_code" field.
func CurrencyCodeLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldCurrencyCode, v))
}

// CurrencyCodeContains applies the Contains predicate on the "currency_code" field.
func CurrencyCodeContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldCurrencyCode, v))
}

// CurrencyCodeHasPrefix applies the HasPrefix predicate on the "currency_code" field.
func CurrencyCodeHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldCurrencyCode, v))
}

// CurrencyCodeHasSuffix applies the HasSuffix predicate on the "currency_code" field.
func CurrencyCodeHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldCurrencyCode, v))
}

// CurrencyCodeEqualFold applies the EqualFold predicate on the "currency_code" field.
func CurrencyCodeEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldCurrencyCode, v))
}

// CurrencyCodeContainsFold applies the ContainsFold predicate on the "currency_code" field.
func CurrencyCodeContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldCurrencyCode, v))
}

// PayPeriodStartEQ applies the EQ predicate on the "pay_period_start" field.
func PayPeriodStartEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayPeriodStart, v))
}

// PayPeriodStartNEQ applies the NEQ predicate on the "pay_period_start" field.
func PayPeriodStartNEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldPayPeriodStart, v))
}

// PayPeriodStartIn applies the In predicate on the "pay_period_start" field.
func PayPeriodStartIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldPayPeriodStart, vs...))
}

// PayPeriodStartNotIn applies the NotIn predicate on the "pay_period_start" field.
func PayPeriodStartNotIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldPayPeriodStart, vs...))
}

// PayPeriodStartGT applies the GT predicate on the "pay_period_start" field.
func PayPeriodStartGT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldPayPeriodStart, v))
}

// PayPeriodStartGTE applies the GTE predicate on the "pay_period_start" field.
func PayPeriodStartGTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldPayPeriodStart, v))
}

// PayPeriodStartLT applies the LT predicate on the "pay_period_start" field.
func PayPeriodStartLT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldPayPeriodStart, v))
}

// PayPeriodStartLTE applies the LTE predicate on the "pay_period_start" field.
func PayPeriodStartLTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldPayPeriodStart, v))
}

// PayPeriodStartIsNil applies the IsNil predicate on the "pay_period_start" field.
func PayPeriodStartIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldPayPeriodStart))
}

// PayPeriodStartNotNil applies the NotNil predicate on the "pay_period_start" field.
func PayPeriodStartNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldPayPeriodStart))
}

// PayPeriodEndEQ applies the EQ predicate on the "pay_period_end" field.
func PayPeriodEndEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayPeriodEnd, v))
}

// PayPeriodEndNEQ applies the NEQ predicate on the "pay_period_end" field.
func PayPeriodEndNEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldPayPeriodEnd, v))
}

// PayPeriodEndIn applies the In predicate on the "pay_period_end" field.
func PayPeriodEndIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldPayPeriodEnd, vs...))
}

// PayPeriodEndNotIn applies the NotIn predicate on the "pay_period_end" field.
func PayPeriodEndNotIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldPayPeriodEnd, vs...))
}

// PayPeriodEndGT applies the GT predicate on the "pay_period_end" field.
func PayPeriodEndGT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldPayPeriodEnd, v))
}

// PayPeriodEndGTE applies the GTE predicate on the "pay_period_end" field.
func PayPeriodEndGTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldPayPeriodEnd, v))
}

// PayPeriodEndLT applies the LT predicate on the "pay_period_end" field.
func PayPeriodEndLT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldPayPeriodEnd, v))
}

// PayPeriodEndLTE applies the LTE predicate on the "pay_period_end" field.
func PayPeriodEndLTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldPayPeriodEnd, v))
}

// PayPeriodEndIsNil applies the IsNil predicate on the "pay_period_end" field.
func PayPeriodEndIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldPayPeriodEnd))
}

// PayPeriodEndNotNil applies the NotNil predicate on the "pay_period_end" field.
func PayPeriodEndNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldPayPeriodEnd))
}

// PayDateEQ applies the EQ predicate on the "pay_date" field.
func PayDateEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayDate, v))
}

// PayDateNEQ applies the NEQ predicate on the "pay_date" field.
func PayDateNEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldPayDate, v))
}

// PayDateIn applies the In predicate on the "pay_date" field.
func PayDateIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldPayDate, vs...))
}

// PayDateNotIn applies the NotIn predicate on the "pay_date" field.
func PayDateNotIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldPayDate, vs...))
}

// PayDateGT applies the GT predicate on the "pay_date" field.
func PayDateGT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldPayDate, v))
}

// PayDateGTE applies the GTE predicate on the "pay_date" field.
func PayDateGTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldPayDate, v))
}

// PayDateLT applies the LT predicate on the "pay_date" field.
func PayDateLT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldPayDate, v))
}

// PayDateLTE applies the LTE predicate on the "pay_date" field.
func PayDateLTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldPayDate, v))
}

// PayDateIsNil applies the IsNil predicate on the "pay_date" field.
func PayDateIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldPayDate))
}

// PayDateNotNil applies the NotNil predicate on the "pay_date" field.
func PayDateNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldPayDate))
}

// PayFrequencyEQ applies the EQ predicate on the "pay_frequency" field.
func PayFrequencyEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldPayFrequency, v))
}

// PayFrequencyNEQ applies the NEQ predicate on the "pay_frequency" field.
func PayFrequencyNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldPayFrequency, v))
}

// PayFrequencyIn applies the In predicate on the "pay_frequency" field.
func PayFrequencyIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldPayFrequency, vs...))
}

// PayFrequencyNotIn applies the NotIn predicate on the "pay_frequency" field.
func PayFrequencyNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldPayFrequency, vs...))
}

// PayFrequencyGT applies the GT predicate on the "pay_frequency" field.
func PayFrequencyGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldPayFrequency, v))
}

// PayFrequencyGTE applies the GTE predicate on the "pay_frequency" field.
func PayFrequencyGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldPayFrequency, v))
}

// PayFrequencyLT applies the LT predicate on the "pay_frequency" field.
func PayFrequencyLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldPayFrequency, v))
}

// PayFrequencyLTE applies the LTE predicate on the "pay_frequency" field.
func PayFrequencyLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldPayFrequency, v))
}

// PayFrequencyContains applies the Contains predicate on the "pay_frequency" field.
func PayFrequencyContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldPayFrequency, v))
}

// PayFrequencyHasPrefix applies the HasPrefix predicate on the "pay_frequency" field.
func PayFrequencyHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldPayFrequency, v))
}

// PayFrequencyHasSuffix applies the HasSuffix predicate on the "pay_frequency" field.
func PayFrequencyHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldPayFrequency, v))
}

// PayFrequencyEqualFold applies the EqualFold predicate on the "pay_frequency" field.
func PayFrequencyEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldPayFrequency, v))
}

// PayFrequencyContainsFold applies the ContainsFold predicate on the "pay_frequency" field.
func PayFrequencyContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldPayFrequency, v))
}

// EmployeeNameEQ applies the EQ predicate on the "employee_name" field.
func EmployeeNameEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldEmployeeName, v))
}

// EmployeeNameNEQ applies the NEQ predicate on the "employee_name" field.
func EmployeeNameNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldEmployeeName, v))
}

// EmployeeNameIn applies the In predicate on the "employee_name" field.
func EmployeeNameIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldEmployeeName, vs...))
}

// EmployeeNameNotIn applies the NotIn predicate on the "employee_name" field.
func EmployeeNameNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldEmployeeName, vs...))
}

// EmployeeNameGT applies the GT predicate on the "employee_name" field.
func EmployeeNameGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldEmployeeName, v))
}

// EmployeeNameGTE applies the GTE predicate on the "employee_name" field.
func EmployeeNameGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldEmployeeName, v))
}

// EmployeeNameLT applies the LT predicate on the "employee_name" field.
func EmployeeNameLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldEmployeeName, v))
}

// EmployeeNameLTE applies the LTE predicate on the "employee_name" field.
func EmployeeNameLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldEmployeeName, v))
}

// EmployeeNameContains applies the Contains predicate on the "employee_name" field.
func EmployeeNameContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldEmployeeName, v))
}

// EmployeeNameHasPrefix applies the HasPrefix predicate on the "employee_name" field.
func EmployeeNameHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldEmployeeName, v))
}

// EmployeeNameHasSuffix applies the HasSuffix predicate on the "employee_name" field.
func EmployeeNameHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldEmployeeName, v))
}

// EmployeeNameIsNil applies the IsNil predicate on the "employee_name" field.
func EmployeeNameIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldEmployeeName))
}

// EmployeeNameNotNil applies the NotNil predicate on the "employee_name" field.
func EmployeeNameNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldEmployeeName))
}

// EmployeeNameEqualFold applies the EqualFold predicate on the "employee_name" field.
func EmployeeNameEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldEmployeeName, v))
}

// EmployeeNameContainsFold applies the ContainsFold predicate on the "employee_name" field.
func EmployeeNameContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldEmployeeName, v))
}

// EmployeeIDEQ applies the EQ predicate on the "employee_id" field.
func EmployeeIDEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldEmployeeID, v))
}

// EmployeeIDNEQ applies the NEQ predicate on the "employee_id" field.
func EmployeeIDNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldEmployeeID, v))
}

// EmployeeIDIn applies the In predicate on the "employee_id" field.
func EmployeeIDIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldEmployeeID, vs...))
}

// EmployeeIDNotIn applies the NotIn predicate on the "employee_id" field.
func EmployeeIDNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldEmployeeID, vs...))
}

// EmployeeIDGT applies the GT predicate on the "employee_id" field.
func EmployeeIDGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldEmployeeID, v))
}

// EmployeeIDGTE applies the GTE predicate on the "employee_id" field.
func EmployeeIDGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldEmployeeID, v))
}

// EmployeeIDLT applies the LT predicate on the "employee_id" field.
func EmployeeIDLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldEmployeeID, v))
}

// EmployeeIDLTE applies the LTE predicate on the "employee_id" field.
func EmployeeIDLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldEmployeeID, v))
}

// EmployeeIDContains applies the Contains predicate on the "employee_id" field.
func EmployeeIDContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldEmployeeID, v))
}

// EmployeeIDHasPrefix applies the HasPrefix predicate on the "employee_id" field.
func EmployeeIDHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldEmployeeID, v))
}

// EmployeeIDHasSuffix applies the HasSuffix predicate on the "employee_id" field.
func EmployeeIDHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldEmployeeID, v))
}

// EmployeeIDIsNil applies the IsNil predicate on the "employee_id" field.
func EmployeeIDIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldEmployeeID))
}

// EmployeeIDNotNil applies the NotNil predicate on the "employee_id" field.
func EmployeeIDNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldEmployeeID))
}

// EmployeeIDEqualFold applies the EqualFold predicate on the "employee_id" field.
func EmployeeIDEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldEmployeeID, v))
}

// EmployeeIDContainsFold applies the ContainsFold predicate on the "employee_id" field.
func EmployeeIDContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldEmployeeID, v))
}

// EmployerNameEQ applies the EQ predicate on the "employer_name" field.
func EmployerNameEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldEmployerName, v))
}

// EmployerNameNEQ applies the NEQ predicate on the "employer_name" field.
func EmployerNameNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldEmployerName, v))
}

// EmployerNameIn applies the In predicate on the "employer_name" field.
func EmployerNameIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldEmployerName, vs...))
}

// EmployerNameNotIn applies the NotIn predicate on the "employer_name" field.
func EmployerNameNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldEmployerName, vs...))
}

// EmployerNameGT applies the GT predicate on the "employer_name" field.
func EmployerNameGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldEmployerName, v))
}

// EmployerNameGTE applies the GTE predicate on the "employer_name" field.
func EmployerNameGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldEmployerName, v))
}

// EmployerNameLT applies the LT predicate on the "employer_name" field.
func EmployerNameLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldEmployerName, v))
}

// EmployerNameLTE applies the LTE predicate on the "employer_name" field.
func EmployerNameLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldEmployerName, v))
}

// EmployerNameContains applies the Contains predicate on the "employer_name" field.
func EmployerNameContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldEmployerName, v))
}

// EmployerNameHasPrefix applies the HasPrefix predicate on the "employer_name" field.
func EmployerNameHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldEmployerName, v))
}

// EmployerNameHasSuffix applies the HasSuffix predicate on the "employer_name" field.
func EmployerNameHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldEmployerName, v))
}

// EmployerNameIsNil applies the IsNil predicate on the "employer_name" field.
func EmployerNameIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldEmployerName))
}

// EmployerNameNotNil applies the NotNil predicate on the "employer_name" field.
func EmployerNameNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldEmployerName))
}

// EmployerNameEqualFold applies the EqualFold predicate on the "employer_name" field.
func EmployerNameEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldEmployerName, v))
}

// EmployerNameContainsFold applies the ContainsFold predicate on the "employer_name" field.
func EmployerNameContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldEmployerName, v))
}

// DeductionsIsNil applies the IsNil predicate on the "deductions" field.
func DeductionsIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldDeductions))
}

// DeductionsNotNil applies the NotNil predicate on the "deductions" field.
func DeductionsNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldDeductions))
}

// OverallConfidenceEQ applies the EQ predicate on the "overall_confidence" field.
func OverallConfidenceEQ(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldOverallConfidence, v))
}

// OverallConfidenceNEQ applies the NEQ predicate on the "overall_confidence" field.
func OverallConfidenceNEQ(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldOverallConfidence, v))
}

// OverallConfidenceIn applies the In predicate on the "overall_confidence" field.
func OverallConfidenceIn(vs ...float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceNotIn applies the NotIn predicate on the "overall_confidence" field.
func OverallConfidenceNotIn(vs ...float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldOverallConfidence, vs...))
}

// OverallConfidenceGT applies the GT predicate on the "overall_confidence" field.
func OverallConfidenceGT(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldOverallConfidence, v))
}

// OverallConfidenceGTE applies the GTE predicate on the "overall_confidence" field.
func OverallConfidenceGTE(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldOverallConfidence, v))
}

// OverallConfidenceLT applies the LT predicate on the "overall_confidence" field.
func OverallConfidenceLT(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldOverallConfidence, v))
}

// OverallConfidenceLTE applies the LTE predicate on the "overall_confidence" field.
func OverallConfidenceLTE(v float32) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldOverallConfidence, v))
}

// RawTextEQ applies the EQ predicate on the "raw_text" field.
func RawTextEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldRawText, v))
}

// RawTextNEQ applies the NEQ predicate on the "raw_text" field.
func RawTextNEQ(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldRawText, v))
}

// RawTextIn applies the In predicate on the "raw_text" field.
func RawTextIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldRawText, vs...))
}

// RawTextNotIn applies the NotIn predicate on the "raw_text" field.
func RawTextNotIn(vs ...string) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldRawText, vs...))
}

// RawTextGT applies the GT predicate on the "raw_text" field.
func RawTextGT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldRawText, v))
}

// RawTextGTE applies the GTE predicate on the "raw_text" field.
func RawTextGTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldRawText, v))
}

// RawTextLT applies the LT predicate on the "raw_text" field.
func RawTextLT(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldRawText, v))
}

// RawTextLTE applies the LTE predicate on the "raw_text" field.
func RawTextLTE(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldRawText, v))
}

// RawTextContains applies the Contains predicate on the "raw_text" field.
func RawTextContains(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContains(FieldRawText, v))
}

// RawTextHasPrefix applies the HasPrefix predicate on the "raw_text" field.
func RawTextHasPrefix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasPrefix(FieldRawText, v))
}

// RawTextHasSuffix applies the HasSuffix predicate on the "raw_text" field.
func RawTextHasSuffix(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldHasSuffix(FieldRawText, v))
}

// RawTextIsNil applies the IsNil predicate on the "raw_text" field.
func RawTextIsNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldIsNull(FieldRawText))
}

// RawTextNotNil applies the NotNil predicate on the "raw_text" field.
func RawTextNotNil() predicate.Paystub {
	return predicate.Paystub(sql.FieldNotNull(FieldRawText))
}

// RawTextEqualFold applies the EqualFold predicate on the "raw_text" field.
func RawTextEqualFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldEqualFold(FieldRawText, v))
}

// RawTextContainsFold applies the ContainsFold predicate on the "raw_text" field.
func RawTextContainsFold(v string) predicate.Paystub {
	return predicate.Paystub(sql.FieldContainsFold(FieldRawText, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.Paystub {
	return predicate.Paystub(sql.FieldLTE(FieldCreatedAt, v))
}

// HasFile applies the HasEdge predicate on the "file" edge.
func HasFile() predicate.Paystub {
	return predicate.Paystub(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.M2O, true, FileTable, FileColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasFileWith applies the HasEdge predicate on the "file" edge with a given conditions (other predicates).
func HasFileWith(preds ...predicate.PaystubFile) predicate.Paystub {
	return predicate.Paystub(func(s *sql.Selector) {
		step := newFileStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// HasJobs applies the HasEdge predicate on the "jobs" edge.
func HasJobs() predicate.Paystub {
	return predicate.Paystub(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, JobsTable, JobsColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasJobsWith applies the HasEdge predicate on the "jobs" edge with a given conditions (other predicates).
func HasJobsWith(preds ...predicate.ExtractJob) predicate.Paystub {
	return predicate.Paystub(func(s *sql.Selector) {
		step := newJobsStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.Paystub) predicate.Paystub {
	return predicate.Paystub(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.Paystub) predicate.Paystub {
	return predicate.Paystub(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.Paystub) predicate.Paystub {
	return predicate.Paystub(sql.NotPredicates(p))
}
