// Code generated by protoc-gen-go. DO NOT EDIT.
// versions:
// 	protoc-gen-go v1.36.6
// 	protoc        (unknown)
// source: paystubs/v1/paystubs.proto

package paystubsv1

import (
	protoreflect "google.golang.org/protobuf/reflect/protoreflect"
	protoimpl "google.golang.org/protobuf/runtime/protoimpl"
	reflect "reflect"
	sync "sync"
	unsafe "unsafe"
)

const (
	// Verify that this generated code is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(20 - protoimpl.MinVersion)
	// Verify that runtime/protoimpl is sufficiently up-to-date.
	_ = protoimpl.EnforceVersion(protoimpl.MaxVersion - 20)
)

// Money carries an exact decimal amount as a string plus an ISO 4217 code.
type Money struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Amount        string                 `protobuf:"bytes,1,opt,name=amount,proto3" json:"amount,omitempty"`
	Currency      string                 `protobuf:"bytes,2,opt,name=currency,proto3" json:"currency,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Money) Reset() {
	*x = Money{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[0]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Money) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Money) ProtoMessage() {}

func (x *Money) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[0]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Money.ProtoReflect.Descriptor instead.
func (*Money) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{0}
}

func (x *Money) GetAmount() string {
	if x != nil {
		return x.Amount
	}
	return ""
}

func (x *Money) GetCurrency() string {
	if x != nil {
		return x.Currency
	}
	return ""
}

// MoneyField is a money value with extraction provenance.
type MoneyField struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Value         *Money                 `protobuf:"bytes,1,opt,name=value,proto3" json:"value,omitempty"`
	Confidence    float32                `protobuf:"fixed32,2,opt,name=confidence,proto3" json:"confidence,omitempty"`
	Source        string                 `protobuf:"bytes,3,opt,name=source,proto3" json:"source,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *MoneyField) Reset() {
	*x = MoneyField{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[1]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *MoneyField) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*MoneyField) ProtoMessage() {}

func (x *MoneyField) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[1]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use MoneyField.ProtoReflect.Descriptor instead.
func (*MoneyField) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{1}
}

func (x *MoneyField) GetValue() *Money {
	if x != nil {
		return x.Value
	}
	return nil
}

func (x *MoneyField) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

func (x *MoneyField) GetSource() string {
	if x != nil {
		return x.Source
	}
	return ""
}

type Deduction struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Name          string                 `protobuf:"bytes,1,opt,name=name,proto3" json:"name,omitempty"`
	Amount        *Money                 `protobuf:"bytes,2,opt,name=amount,proto3" json:"amount,omitempty"`
	Category      string                 `protobuf:"bytes,3,opt,name=category,proto3" json:"category,omitempty"`
	Confidence    float32                `protobuf:"fixed32,4,opt,name=confidence,proto3" json:"confidence,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *Deduction) Reset() {
	*x = Deduction{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[2]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Deduction) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Deduction) ProtoMessage() {}

func (x *Deduction) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[2]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Deduction.ProtoReflect.Descriptor instead.
func (*Deduction) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{2}
}

func (x *Deduction) GetName() string {
	if x != nil {
		return x.Name
	}
	return ""
}

func (x *Deduction) GetAmount() *Money {
	if x != nil {
		return x.Amount
	}
	return nil
}

func (x *Deduction) GetCategory() string {
	if x != nil {
		return x.Category
	}
	return ""
}

func (x *Deduction) GetConfidence() float32 {
	if x != nil {
		return x.Confidence
	}
	return 0
}

type Paystub struct {
	state       protoimpl.MessageState `protogen:"open.v1"`
	Id          string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	FileId      string                 `protobuf:"bytes,2,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Provider    string                 `protobuf:"bytes,3,opt,name=provider,proto3" json:"provider,omitempty"`
	GrossPay    *MoneyField            `protobuf:"bytes,4,opt,name=gross_pay,json=grossPay,proto3" json:"gross_pay,omitempty"`
	NetPay      *MoneyField            `protobuf:"bytes,5,opt,name=net_pay,json=netPay,proto3" json:"net_pay,omitempty"`
	YtdGrossPay *Money                 `protobuf:"bytes,6,opt,name=ytd_gross_pay,json=ytdGrossPay,proto3" json:"ytd_gross_pay,omitempty"`
	YtdNetPay   *Money                 `protobuf:"bytes,7,opt,name=ytd_net_pay,json=ytdNetPay,proto3" json:"ytd_net_pay,omitempty"`
	// Dates are YYYY-MM-DD; empty when not extracted.
	PayPeriodStart    string       `protobuf:"bytes,8,opt,name=pay_period_start,json=payPeriodStart,proto3" json:"pay_period_start,omitempty"`
	PayPeriodEnd      string       `protobuf:"bytes,9,opt,name=pay_period_end,json=payPeriodEnd,proto3" json:"pay_period_end,omitempty"`
	PayDate           string       `protobuf:"bytes,10,opt,name=pay_date,json=payDate,proto3" json:"pay_date,omitempty"`
	PayFrequency      string       `protobuf:"bytes,11,opt,name=pay_frequency,json=payFrequency,proto3" json:"pay_frequency,omitempty"`
	EmployeeName      string       `protobuf:"bytes,12,opt,name=employee_name,json=employeeName,proto3" json:"employee_name,omitempty"`
	EmployeeId        string       `protobuf:"bytes,13,opt,name=employee_id,json=employeeId,proto3" json:"employee_id,omitempty"`
	EmployerName      string       `protobuf:"bytes,14,opt,name=employer_name,json=employerName,proto3" json:"employer_name,omitempty"`
	TaxDeductions     []*Deduction `protobuf:"bytes,15,rep,name=tax_deductions,json=taxDeductions,proto3" json:"tax_deductions,omitempty"`
	BenefitDeductions []*Deduction `protobuf:"bytes,16,rep,name=benefit_deductions,json=benefitDeductions,proto3" json:"benefit_deductions,omitempty"`
	OtherDeductions   []*Deduction `protobuf:"bytes,17,rep,name=other_deductions,json=otherDeductions,proto3" json:"other_deductions,omitempty"`
	OverallConfidence float32      `protobuf:"fixed32,18,opt,name=overall_confidence,json=overallConfidence,proto3" json:"overall_confidence,omitempty"`
	SourceMethod      string       `protobuf:"bytes,19,opt,name=source_method,json=sourceMethod,proto3" json:"source_method,omitempty"`
	CreatedAt         string       `protobuf:"bytes,20,opt,name=created_at,json=createdAt,proto3" json:"created_at,omitempty"`
	unknownFields     protoimpl.UnknownFields
	sizeCache         protoimpl.SizeCache
}

func (x *Paystub) Reset() {
	*x = Paystub{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[3]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *Paystub) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*Paystub) ProtoMessage() {}

func (x *Paystub) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[3]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use Paystub.ProtoReflect.Descriptor instead.
func (*Paystub) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{3}
}

func (x *Paystub) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

func (x *Paystub) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *Paystub) GetProvider() string {
	if x != nil {
		return x.Provider
	}
	return ""
}

func (x *Paystub) GetGrossPay() *MoneyField {
	if x != nil {
		return x.GrossPay
	}
	return nil
}

func (x *Paystub) GetNetPay() *MoneyField {
	if x != nil {
		return x.NetPay
	}
	return nil
}

func (x *Paystub) GetYtdGrossPay() *Money {
	if x != nil {
		return x.YtdGrossPay
	}
	return nil
}

func (x *Paystub) GetYtdNetPay() *Money {
	if x != nil {
		return x.YtdNetPay
	}
	return nil
}

func (x *Paystub) GetPayPeriodStart() string {
	if x != nil {
		return x.PayPeriodStart
	}
	return ""
}

func (x *Paystub) GetPayPeriodEnd() string {
	if x != nil {
		return x.PayPeriodEnd
	}
	return ""
}

func (x *Paystub) GetPayDate() string {
	if x != nil {
		return x.PayDate
	}
	return ""
}

func (x *Paystub) GetPayFrequency() string {
	if x != nil {
		return x.PayFrequency
	}
	return ""
}

func (x *Paystub) GetEmployeeName() string {
	if x != nil {
		return x.EmployeeName
	}
	return ""
}

func (x *Paystub) GetEmployeeId() string {
	if x != nil {
		return x.EmployeeId
	}
	return ""
}

func (x *Paystub) GetEmployerName() string {
	if x != nil {
		return x.EmployerName
	}
	return ""
}

func (x *Paystub) GetTaxDeductions() []*Deduction {
	if x != nil {
		return x.TaxDeductions
	}
	return nil
}

func (x *Paystub) GetBenefitDeductions() []*Deduction {
	if x != nil {
		return x.BenefitDeductions
	}
	return nil
}

func (x *Paystub) GetOtherDeductions() []*Deduction {
	if x != nil {
		return x.OtherDeductions
	}
	return nil
}

func (x *Paystub) GetOverallConfidence() float32 {
	if x != nil {
		return x.OverallConfidence
	}
	return 0
}

func (x *Paystub) GetSourceMethod() string {
	if x != nil {
		return x.SourceMethod
	}
	return ""
}

func (x *Paystub) GetCreatedAt() string {
	if x != nil {
		return x.CreatedAt
	}
	return ""
}

type ExtractPaystubRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Content       []byte                 `protobuf:"bytes,1,opt,name=content,proto3" json:"content,omitempty"`
	ContentType   string                 `protobuf:"bytes,2,opt,name=content_type,json=contentType,proto3" json:"content_type,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractPaystubRequest) Reset() {
	*x = ExtractPaystubRequest{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[4]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractPaystubRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractPaystubRequest) ProtoMessage() {}

func (x *ExtractPaystubRequest) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[4]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractPaystubRequest.ProtoReflect.Descriptor instead.
func (*ExtractPaystubRequest) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{4}
}

func (x *ExtractPaystubRequest) GetContent() []byte {
	if x != nil {
		return x.Content
	}
	return nil
}

func (x *ExtractPaystubRequest) GetContentType() string {
	if x != nil {
		return x.ContentType
	}
	return ""
}

type ExtractPaystubResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Paystub       *Paystub               `protobuf:"bytes,1,opt,name=paystub,proto3" json:"paystub,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExtractPaystubResponse) Reset() {
	*x = ExtractPaystubResponse{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[5]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExtractPaystubResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExtractPaystubResponse) ProtoMessage() {}

func (x *ExtractPaystubResponse) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[5]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExtractPaystubResponse.ProtoReflect.Descriptor instead.
func (*ExtractPaystubResponse) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{5}
}

func (x *ExtractPaystubResponse) GetPaystub() *Paystub {
	if x != nil {
		return x.Paystub
	}
	return nil
}

type GetPaystubRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Id            string                 `protobuf:"bytes,1,opt,name=id,proto3" json:"id,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPaystubRequest) Reset() {
	*x = GetPaystubRequest{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[6]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPaystubRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPaystubRequest) ProtoMessage() {}

func (x *GetPaystubRequest) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[6]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPaystubRequest.ProtoReflect.Descriptor instead.
func (*GetPaystubRequest) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{6}
}

func (x *GetPaystubRequest) GetId() string {
	if x != nil {
		return x.Id
	}
	return ""
}

type GetPaystubResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Paystub       *Paystub               `protobuf:"bytes,1,opt,name=paystub,proto3" json:"paystub,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *GetPaystubResponse) Reset() {
	*x = GetPaystubResponse{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[7]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *GetPaystubResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*GetPaystubResponse) ProtoMessage() {}

func (x *GetPaystubResponse) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[7]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use GetPaystubResponse.ProtoReflect.Descriptor instead.
func (*GetPaystubResponse) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{7}
}

func (x *GetPaystubResponse) GetPaystub() *Paystub {
	if x != nil {
		return x.Paystub
	}
	return nil
}

type ListPaystubsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional pay-date window, YYYY-MM-DD.
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPaystubsRequest) Reset() {
	*x = ListPaystubsRequest{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[8]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPaystubsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPaystubsRequest) ProtoMessage() {}

func (x *ListPaystubsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[8]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPaystubsRequest.ProtoReflect.Descriptor instead.
func (*ListPaystubsRequest) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{8}
}

func (x *ListPaystubsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ListPaystubsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ListPaystubsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Paystubs      []*Paystub             `protobuf:"bytes,1,rep,name=paystubs,proto3" json:"paystubs,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ListPaystubsResponse) Reset() {
	*x = ListPaystubsResponse{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[9]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ListPaystubsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ListPaystubsResponse) ProtoMessage() {}

func (x *ListPaystubsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[9]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ListPaystubsResponse.ProtoReflect.Descriptor instead.
func (*ListPaystubsResponse) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{9}
}

func (x *ListPaystubsResponse) GetPaystubs() []*Paystub {
	if x != nil {
		return x.Paystubs
	}
	return nil
}

type IngestFileRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Path          string                 `protobuf:"bytes,1,opt,name=path,proto3" json:"path,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestFileRequest) Reset() {
	*x = IngestFileRequest{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[10]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestFileRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestFileRequest) ProtoMessage() {}

func (x *IngestFileRequest) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[10]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestFileRequest.ProtoReflect.Descriptor instead.
func (*IngestFileRequest) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{10}
}

func (x *IngestFileRequest) GetPath() string {
	if x != nil {
		return x.Path
	}
	return ""
}

type IngestResponse struct {
	state          protoimpl.MessageState `protogen:"open.v1"`
	FileId         string                 `protobuf:"bytes,1,opt,name=file_id,json=fileId,proto3" json:"file_id,omitempty"`
	Deduplicated   bool                   `protobuf:"varint,2,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	ContentHashHex string                 `protobuf:"bytes,3,opt,name=content_hash_hex,json=contentHashHex,proto3" json:"content_hash_hex,omitempty"`
	FileExt        string                 `protobuf:"bytes,4,opt,name=file_ext,json=fileExt,proto3" json:"file_ext,omitempty"`
	UploadedAt     string                 `protobuf:"bytes,5,opt,name=uploaded_at,json=uploadedAt,proto3" json:"uploaded_at,omitempty"`
	SourcePath     string                 `protobuf:"bytes,6,opt,name=source_path,json=sourcePath,proto3" json:"source_path,omitempty"`
	Error          string                 `protobuf:"bytes,7,opt,name=error,proto3" json:"error,omitempty"`
	unknownFields  protoimpl.UnknownFields
	sizeCache      protoimpl.SizeCache
}

func (x *IngestResponse) Reset() {
	*x = IngestResponse{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[11]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestResponse) ProtoMessage() {}

func (x *IngestResponse) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[11]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestResponse.ProtoReflect.Descriptor instead.
func (*IngestResponse) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{11}
}

func (x *IngestResponse) GetFileId() string {
	if x != nil {
		return x.FileId
	}
	return ""
}

func (x *IngestResponse) GetDeduplicated() bool {
	if x != nil {
		return x.Deduplicated
	}
	return false
}

func (x *IngestResponse) GetContentHashHex() string {
	if x != nil {
		return x.ContentHashHex
	}
	return ""
}

func (x *IngestResponse) GetFileExt() string {
	if x != nil {
		return x.FileExt
	}
	return ""
}

func (x *IngestResponse) GetUploadedAt() string {
	if x != nil {
		return x.UploadedAt
	}
	return ""
}

func (x *IngestResponse) GetSourcePath() string {
	if x != nil {
		return x.SourcePath
	}
	return ""
}

func (x *IngestResponse) GetError() string {
	if x != nil {
		return x.Error
	}
	return ""
}

type IngestDirectoryRequest struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	RootPath      string                 `protobuf:"bytes,1,opt,name=root_path,json=rootPath,proto3" json:"root_path,omitempty"`
	SkipHidden    bool                   `protobuf:"varint,2,opt,name=skip_hidden,json=skipHidden,proto3" json:"skip_hidden,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryRequest) Reset() {
	*x = IngestDirectoryRequest{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[12]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryRequest) ProtoMessage() {}

func (x *IngestDirectoryRequest) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[12]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryRequest.ProtoReflect.Descriptor instead.
func (*IngestDirectoryRequest) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{12}
}

func (x *IngestDirectoryRequest) GetRootPath() string {
	if x != nil {
		return x.RootPath
	}
	return ""
}

func (x *IngestDirectoryRequest) GetSkipHidden() bool {
	if x != nil {
		return x.SkipHidden
	}
	return false
}

type IngestDirectoryResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Scanned       uint32                 `protobuf:"varint,1,opt,name=scanned,proto3" json:"scanned,omitempty"`
	Matched       uint32                 `protobuf:"varint,2,opt,name=matched,proto3" json:"matched,omitempty"`
	Succeeded     uint32                 `protobuf:"varint,3,opt,name=succeeded,proto3" json:"succeeded,omitempty"`
	Deduplicated  uint32                 `protobuf:"varint,4,opt,name=deduplicated,proto3" json:"deduplicated,omitempty"`
	Failed        uint32                 `protobuf:"varint,5,opt,name=failed,proto3" json:"failed,omitempty"`
	Results       []*IngestResponse      `protobuf:"bytes,6,rep,name=results,proto3" json:"results,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *IngestDirectoryResponse) Reset() {
	*x = IngestDirectoryResponse{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[13]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *IngestDirectoryResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*IngestDirectoryResponse) ProtoMessage() {}

func (x *IngestDirectoryResponse) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[13]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use IngestDirectoryResponse.ProtoReflect.Descriptor instead.
func (*IngestDirectoryResponse) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{13}
}

func (x *IngestDirectoryResponse) GetScanned() uint32 {
	if x != nil {
		return x.Scanned
	}
	return 0
}

func (x *IngestDirectoryResponse) GetMatched() uint32 {
	if x != nil {
		return x.Matched
	}
	return 0
}

func (x *IngestDirectoryResponse) GetSucceeded() uint32 {
	if x != nil {
		return x.Succeeded
	}
	return 0
}

func (x *IngestDirectoryResponse) GetDeduplicated() uint32 {
	if x != nil {
		return x.Deduplicated
	}
	return 0
}

func (x *IngestDirectoryResponse) GetFailed() uint32 {
	if x != nil {
		return x.Failed
	}
	return 0
}

func (x *IngestDirectoryResponse) GetResults() []*IngestResponse {
	if x != nil {
		return x.Results
	}
	return nil
}

type ExportPaystubsRequest struct {
	state protoimpl.MessageState `protogen:"open.v1"`
	// Optional pay-date window, YYYY-MM-DD.
	FromDate      string `protobuf:"bytes,1,opt,name=from_date,json=fromDate,proto3" json:"from_date,omitempty"`
	ToDate        string `protobuf:"bytes,2,opt,name=to_date,json=toDate,proto3" json:"to_date,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPaystubsRequest) Reset() {
	*x = ExportPaystubsRequest{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[14]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPaystubsRequest) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPaystubsRequest) ProtoMessage() {}

func (x *ExportPaystubsRequest) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[14]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPaystubsRequest.ProtoReflect.Descriptor instead.
func (*ExportPaystubsRequest) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{14}
}

func (x *ExportPaystubsRequest) GetFromDate() string {
	if x != nil {
		return x.FromDate
	}
	return ""
}

func (x *ExportPaystubsRequest) GetToDate() string {
	if x != nil {
		return x.ToDate
	}
	return ""
}

type ExportPaystubsResponse struct {
	state         protoimpl.MessageState `protogen:"open.v1"`
	Xlsx          []byte                 `protobuf:"bytes,1,opt,name=xlsx,proto3" json:"xlsx,omitempty"`
	unknownFields protoimpl.UnknownFields
	sizeCache     protoimpl.SizeCache
}

func (x *ExportPaystubsResponse) Reset() {
	*x = ExportPaystubsResponse{}
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[15]
	ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
	ms.StoreMessageInfo(mi)
}

func (x *ExportPaystubsResponse) String() string {
	return protoimpl.X.MessageStringOf(x)
}

func (*ExportPaystubsResponse) ProtoMessage() {}

func (x *ExportPaystubsResponse) ProtoReflect() protoreflect.Message {
	mi := &file_paystubs_v1_paystubs_proto_msgTypes[15]
	if x != nil {
		ms := protoimpl.X.MessageStateOf(protoimpl.Pointer(x))
		if ms.LoadMessageInfo() == nil {
			ms.StoreMessageInfo(mi)
		}
		return ms
	}
	return mi.MessageOf(x)
}

// Deprecated: Use ExportPaystubsResponse.ProtoReflect.Descriptor instead.
func (*ExportPaystubsResponse) Descriptor() ([]byte, []int) {
	return file_paystubs_v1_paystubs_proto_rawDescGZIP(), []int{15}
}

func (x *ExportPaystubsResponse) GetXlsx() []byte {
	if x != nil {
		return x.Xlsx
	}
	return nil
}

var File_paystubs_v1_paystubs_proto protoreflect.FileDescriptor

const file_paystubs_v1_paystubs_proto_rawDesc = "" +
	"\n" +
	"\x1apaystubs/v1/paystubs.proto\x12\vpaystubs.v1\";\n" +
	"\x05Money\x12\x16\n" +
	"\x06amount\x18\x01 \x01(\tR\x06amount\x12\x1a\n" +
	"\bcurrency\x18\x02 \x01(\tR\bcurrency\"n\n" +
	"\n" +
	"MoneyField\x12(\n" +
	"\x05value\x18\x01 \x01(\v2\x12.paystubs.v1.MoneyR\x05value\x12\x1e\n" +
	"\n" +
	"confidence\x18\x02 \x01(\x02R\n" +
	"confidence\x12\x16\n" +
	"\x06source\x18\x03 \x01(\tR\x06source\"\x87\x01\n" +
	"\tDeduction\x12\x12\n" +
	"\x04name\x18\x01 \x01(\tR\x04name\x12*\n" +
	"\x06amount\x18\x02 \x01(\v2\x12.paystubs.v1.MoneyR\x06amount\x12\x1a\n" +
	"\bcategory\x18\x03 \x01(\tR\bcategory\x12\x1e\n" +
	"\n" +
	"confidence\x18\x04 \x01(\x02R\n" +
	"confidence\"\xd9\x06\n" +
	"\aPaystub\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\x12\x17\n" +
	"\afile_id\x18\x02 \x01(\tR\x06fileId\x12\x1a\n" +
	"\bprovider\x18\x03 \x01(\tR\bprovider\x124\n" +
	"\tgross_pay\x18\x04 \x01(\v2\x17.paystubs.v1.MoneyFieldR\bgrossPay\x120\n" +
	"\anet_pay\x18\x05 \x01(\v2\x17.paystubs.v1.MoneyFieldR\x06netPay\x126\n" +
	"\rytd_gross_pay\x18\x06 \x01(\v2\x12.paystubs.v1.MoneyR\vytdGrossPay\x122\n" +
	"\vytd_net_pay\x18\a \x01(\v2\x12.paystubs.v1.MoneyR\tytdNetPay\x12(\n" +
	"\x10pay_period_start\x18\b \x01(\tR\x0epayPeriodStart\x12$\n" +
	"\x0epay_period_end\x18\t \x01(\tR\fpayPeriodEnd\x12\x19\n" +
	"\bpay_date\x18\n" +
	" \x01(\tR\apayDate\x12#\n" +
	"\rpay_frequency\x18\v \x01(\tR\fpayFrequency\x12#\n" +
	"\remployee_name\x18\f \x01(\tR\femployeeName\x12\x1f\n" +
	"\vemployee_id\x18\r \x01(\tR\n" +
	"employeeId\x12#\n" +
	"\remployer_name\x18\x0e \x01(\tR\femployerName\x12=\n" +
	"\x0etax_deductions\x18\x0f \x03(\v2\x16.paystubs.v1.DeductionR\rtaxDeductions\x12E\n" +
	"\x12benefit_deductions\x18\x10 \x03(\v2\x16.paystubs.v1.DeductionR\x11benefitDeductions\x12A\n" +
	"\x10other_deductions\x18\x11 \x03(\v2\x16.paystubs.v1.DeductionR\x0fotherDeductions\x12-\n" +
	"\x12overall_confidence\x18\x12 \x01(\x02R\x11overallConfidence\x12#\n" +
	"\rsource_method\x18\x13 \x01(\tR\fsourceMethod\x12\x1d\n" +
	"\n" +
	"created_at\x18\x14 \x01(\tR\tcreatedAt\"T\n" +
	"\x15ExtractPaystubRequest\x12\x18\n" +
	"\acontent\x18\x01 \x01(\fR\acontent\x12!\n" +
	"\fcontent_type\x18\x02 \x01(\tR\vcontentType\"H\n" +
	"\x16ExtractPaystubResponse\x12.\n" +
	"\apaystub\x18\x01 \x01(\v2\x14.paystubs.v1.PaystubR\apaystub\"#\n" +
	"\x11GetPaystubRequest\x12\x0e\n" +
	"\x02id\x18\x01 \x01(\tR\x02id\"D\n" +
	"\x12GetPaystubResponse\x12.\n" +
	"\apaystub\x18\x01 \x01(\v2\x14.paystubs.v1.PaystubR\apaystub\"K\n" +
	"\x13ListPaystubsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\"H\n" +
	"\x14ListPaystubsResponse\x120\n" +
	"\bpaystubs\x18\x01 \x03(\v2\x14.paystubs.v1.PaystubR\bpaystubs\"'\n" +
	"\x11IngestFileRequest\x12\x12\n" +
	"\x04path\x18\x01 \x01(\tR\x04path\"\xea\x01\n" +
	"\x0eIngestResponse\x12\x17\n" +
	"\afile_id\x18\x01 \x01(\tR\x06fileId\x12\"\n" +
	"\fdeduplicated\x18\x02 \x01(\bR\fdeduplicated\x12(\n" +
	"\x10content_hash_hex\x18\x03 \x01(\tR\x0econtentHashHex\x12\x19\n" +
	"\bfile_ext\x18\x04 \x01(\tR\afileExt\x12\x1f\n" +
	"\vuploaded_at\x18\x05 \x01(\tR\n" +
	"uploadedAt\x12\x1f\n" +
	"\vsource_path\x18\x06 \x01(\tR\n" +
	"sourcePath\x12\x14\n" +
	"\x05error\x18\a \x01(\tR\x05error\"V\n" +
	"\x16IngestDirectoryRequest\x12\x1b\n" +
	"\troot_path\x18\x01 \x01(\tR\brootPath\x12\x1f\n" +
	"\vskip_hidden\x18\x02 \x01(\bR\n" +
	"skipHidden\"\xde\x01\n" +
	"\x17IngestDirectoryResponse\x12\x18\n" +
	"\ascanned\x18\x01 \x01(\rR\ascanned\x12\x18\n" +
	"\amatched\x18\x02 \x01(\rR\amatched\x12\x1c\n" +
	"\tsucceeded\x18\x03 \x01(\rR\tsucceeded\x12\"\n" +
	"\fdeduplicated\x18\x04 \x01(\rR\fdeduplicated\x12\x16\n" +
	"\x06failed\x18\x05 \x01(\rR\x06failed\x125\n" +
	"\aresults\x18\x06 \x03(\v2\x1b.paystubs.v1.IngestResponseR\aresults\"M\n" +
	"\x15ExportPaystubsRequest\x12\x1b\n" +
	"\tfrom_date\x18\x01 \x01(\tR\bfromDate\x12\x17\n" +
	"\ato_date\x18\x02 \x01(\tR\x06toDate\",\n" +
	"\x16ExportPaystubsResponse\x12\x12\n" +
	"\x04xlsx\x18\x01 \x01(\fR\x04xlsx2\x90\x02\n" +
	"\x0fPaystubsService\x12Y\n" +
	"\x0eExtractPaystub\x12\".paystubs.v1.ExtractPaystubRequest\x1a#.paystubs.v1.ExtractPaystubResponse\x12M\n" +
	"\n" +
	"GetPaystub\x12\x1e.paystubs.v1.GetPaystubRequest\x1a\x1f.paystubs.v1.GetPaystubResponse\x12S\n" +
	"\fListPaystubs\x12 .paystubs.v1.ListPaystubsRequest\x1a!.paystubs.v1.ListPaystubsResponse2\xbb\x01\n" +
	"\x10IngestionService\x12I\n" +
	"\n" +
	"IngestFile\x12\x1e.paystubs.v1.IngestFileRequest\x1a\x1b.paystubs.v1.IngestResponse\x12\\\n" +
	"\x0fIngestDirectory\x12#.paystubs.v1.IngestDirectoryRequest\x1a$.paystubs.v1.IngestDirectoryResponse2j\n" +
	"\rExportService\x12Y\n" +
	"\x0eExportPaystubs\x12\".paystubs.v1.ExportPaystubsRequest\x1a#.paystubs.v1.ExportPaystubsResponseBJZHgithub.com/Volpestyle/paystub-extractor/gen/proto/paystubs/v1;paystubsv1b\x06proto3"

var (
	file_paystubs_v1_paystubs_proto_rawDescOnce sync.Once
	file_paystubs_v1_paystubs_proto_rawDescData []byte
)

func file_paystubs_v1_paystubs_proto_rawDescGZIP() []byte {
	file_paystubs_v1_paystubs_proto_rawDescOnce.Do(func() {
		file_paystubs_v1_paystubs_proto_rawDescData = protoimpl.X.CompressGZIP(unsafe.Slice(unsafe.StringData(file_paystubs_v1_paystubs_proto_rawDesc), len(file_paystubs_v1_paystubs_proto_rawDesc)))
	})
	return file_paystubs_v1_paystubs_proto_rawDescData
}

var file_paystubs_v1_paystubs_proto_msgTypes = make([]protoimpl.MessageInfo, 16)
var file_paystubs_v1_paystubs_proto_goTypes = []any{
	(*Money)(nil),                   // 0: paystubs.v1.Money
	(*MoneyField)(nil),              // 1: paystubs.v1.MoneyField
	(*Deduction)(nil),               // 2: paystubs.v1.Deduction
	(*Paystub)(nil),                 // 3: paystubs.v1.Paystub
	(*ExtractPaystubRequest)(nil),   // 4: paystubs.v1.ExtractPaystubRequest
	(*ExtractPaystubResponse)(nil),  // 5: paystubs.v1.ExtractPaystubResponse
	(*GetPaystubRequest)(nil),       // 6: paystubs.v1.GetPaystubRequest
	(*GetPaystubResponse)(nil),      // 7: paystubs.v1.GetPaystubResponse
	(*ListPaystubsRequest)(nil),     // 8: paystubs.v1.ListPaystubsRequest
	(*ListPaystubsResponse)(nil),    // 9: paystubs.v1.ListPaystubsResponse
	(*IngestFileRequest)(nil),       // 10: paystubs.v1.IngestFileRequest
	(*IngestResponse)(nil),          // 11: paystubs.v1.IngestResponse
	(*IngestDirectoryRequest)(nil),  // 12: paystubs.v1.IngestDirectoryRequest
	(*IngestDirectoryResponse)(nil), // 13: paystubs.v1.IngestDirectoryResponse
	(*ExportPaystubsRequest)(nil),   // 14: paystubs.v1.ExportPaystubsRequest
	(*ExportPaystubsResponse)(nil),  // 15: paystubs.v1.ExportPaystubsResponse
}
var file_paystubs_v1_paystubs_proto_depIdxs = []int32{
	0,  // 0: paystubs.v1.MoneyField.value:type_name -> paystubs.v1.Money
	0,  // 1: paystubs.v1.Deduction.amount:type_name -> paystubs.v1.Money
	1,  // 2: paystubs.v1.Paystub.gross_pay:type_name -> paystubs.v1.MoneyField
	1,  // 3: paystubs.v1.Paystub.net_pay:type_name -> paystubs.v1.MoneyField
	0,  // 4: paystubs.v1.Paystub.ytd_gross_pay:type_name -> paystubs.v1.Money
	0,  // 5: paystubs.v1.Paystub.ytd_net_pay:type_name -> paystubs.v1.Money
	2,  // 6: paystubs.v1.Paystub.tax_deductions:type_name -> paystubs.v1.Deduction
	2,  // 7: paystubs.v1.Paystub.benefit_deductions:type_name -> paystubs.v1.Deduction
	2,  // 8: paystubs.v1.Paystub.other_deductions:type_name -> paystubs.v1.Deduction
	3,  // 9: paystubs.v1.ExtractPaystubResponse.paystub:type_name -> paystubs.v1.Paystub
	3,  // 10: paystubs.v1.GetPaystubResponse.paystub:type_name -> paystubs.v1.Paystub
	3,  // 11: paystubs.v1.ListPaystubsResponse.paystubs:type_name -> paystubs.v1.Paystub
	11, // 12: paystubs.v1.IngestDirectoryResponse.results:type_name -> paystubs.v1.IngestResponse
	4,  // 13: paystubs.v1.PaystubsService.ExtractPaystub:input_type -> paystubs.v1.ExtractPaystubRequest
	6,  // 14: paystubs.v1.PaystubsService.GetPaystub:input_type -> paystubs.v1.GetPaystubRequest
	8,  // 15: paystubs.v1.PaystubsService.ListPaystubs:input_type -> paystubs.v1.ListPaystubsRequest
	10, // 16: paystubs.v1.IngestionService.IngestFile:input_type -> paystubs.v1.IngestFileRequest
	12, // 17: paystubs.v1.IngestionService.IngestDirectory:input_type -> paystubs.v1.IngestDirectoryRequest
	14, // 18: paystubs.v1.ExportService.ExportPaystubs:input_type -> paystubs.v1.ExportPaystubsRequest
	5,  // 19: paystubs.v1.PaystubsService.ExtractPaystub:output_type -> paystubs.v1.ExtractPaystubResponse
	7,  // 20: paystubs.v1.PaystubsService.GetPaystub:output_type -> paystubs.v1.GetPaystubResponse
	9,  // 21: paystubs.v1.PaystubsService.ListPaystubs:output_type -> paystubs.v1.ListPaystubsResponse
	11, // 22: paystubs.v1.IngestionService.IngestFile:output_type -> paystubs.v1.IngestResponse
	13, // 23: paystubs.v1.IngestionService.IngestDirectory:output_type -> paystubs.v1.IngestDirectoryResponse
	15, // 24: paystubs.v1.ExportService.ExportPaystubs:output_type -> paystubs.v1.ExportPaystubsResponse
	19, // [19:25] is the sub-list for method output_type
	13, // [13:19] is the sub-list for method input_type
	13, // [13:13] is the sub-list for extension type_name
	13, // [13:13] is the sub-list for extension extendee
	0,  // [0:13] is the sub-list for field type_name
}

func init() { file_paystubs_v1_paystubs_proto_init() }
func file_paystubs_v1_paystubs_proto_init() {
	if File_paystubs_v1_paystubs_proto != nil {
		return
	}
	type x struct{}
	out := protoimpl.TypeBuilder{
		File: protoimpl.DescBuilder{
			GoPackagePath: reflect.TypeOf(x{}).PkgPath(),
			RawDescriptor: unsafe.Slice(unsafe.StringData(file_paystubs_v1_paystubs_proto_rawDesc), len(file_paystubs_v1_paystubs_proto_rawDesc)),
			NumEnums:      0,
			NumMessages:   16,
			NumExtensions: 0,
			NumServices:   3,
		},
		GoTypes:           file_paystubs_v1_paystubs_proto_goTypes,
		DependencyIndexes: file_paystubs_v1_paystubs_proto_depIdxs,
		MessageInfos:      file_paystubs_v1_paystubs_proto_msgTypes,
	}.Build()
	File_paystubs_v1_paystubs_proto = out.File
	file_paystubs_v1_paystubs_proto_goTypes = nil
	file_paystubs_v1_paystubs_proto_depIdxs = nil
}
