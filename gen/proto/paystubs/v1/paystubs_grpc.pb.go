// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.5.1
// - protoc             (unknown)
// source: paystubs/v1/paystubs.proto

package paystubsv1

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.64.0 or later.
const _ = grpc.SupportPackageIsVersion9

const (
	PaystubsService_ExtractPaystub_FullMethodName = "/paystubs.v1.PaystubsService/ExtractPaystub"
	PaystubsService_GetPaystub_FullMethodName     = "/paystubs.v1.PaystubsService/GetPaystub"
	PaystubsService_ListPaystubs_FullMethodName   = "/paystubs.v1.PaystubsService/ListPaystubs"
)

// PaystubsServiceClient is the client API for PaystubsService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PaystubsServiceClient interface {
	// ExtractPaystub runs the extraction pipeline over inline file bytes
	// without persisting anything.
	ExtractPaystub(ctx context.Context, in *ExtractPaystubRequest, opts ...grpc.CallOption) (*ExtractPaystubResponse, error)
	GetPaystub(ctx context.Context, in *GetPaystubRequest, opts ...grpc.CallOption) (*GetPaystubResponse, error)
	ListPaystubs(ctx context.Context, in *ListPaystubsRequest, opts ...grpc.CallOption) (*ListPaystubsResponse, error)
}

type paystubsServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPaystubsServiceClient(cc grpc.ClientConnInterface) PaystubsServiceClient {
	return &paystubsServiceClient{cc}
}

func (c *paystubsServiceClient) ExtractPaystub(ctx context.Context, in *ExtractPaystubRequest, opts ...grpc.CallOption) (*ExtractPaystubResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExtractPaystubResponse)
	err := c.cc.Invoke(ctx, PaystubsService_ExtractPaystub_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paystubsServiceClient) GetPaystub(ctx context.Context, in *GetPaystubRequest, opts ...grpc.CallOption) (*GetPaystubResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(GetPaystubResponse)
	err := c.cc.Invoke(ctx, PaystubsService_GetPaystub_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *paystubsServiceClient) ListPaystubs(ctx context.Context, in *ListPaystubsRequest, opts ...grpc.CallOption) (*ListPaystubsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ListPaystubsResponse)
	err := c.cc.Invoke(ctx, PaystubsService_ListPaystubs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PaystubsServiceServer is the server API for PaystubsService service.
// All implementations must embed UnimplementedPaystubsServiceServer
// for forward compatibility.
type PaystubsServiceServer interface {
	// ExtractPaystub runs the extraction pipeline over inline file bytes
	// without persisting anything.
	ExtractPaystub(context.Context, *ExtractPaystubRequest) (*ExtractPaystubResponse, error)
	GetPaystub(context.Context, *GetPaystubRequest) (*GetPaystubResponse, error)
	ListPaystubs(context.Context, *ListPaystubsRequest) (*ListPaystubsResponse, error)
	mustEmbedUnimplementedPaystubsServiceServer()
}

// UnimplementedPaystubsServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedPaystubsServiceServer struct{}

func (UnimplementedPaystubsServiceServer) ExtractPaystub(context.Context, *ExtractPaystubRequest) (*ExtractPaystubResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExtractPaystub not implemented")
}
func (UnimplementedPaystubsServiceServer) GetPaystub(context.Context, *GetPaystubRequest) (*GetPaystubResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GetPaystub not implemented")
}
func (UnimplementedPaystubsServiceServer) ListPaystubs(context.Context, *ListPaystubsRequest) (*ListPaystubsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ListPaystubs not implemented")
}
func (UnimplementedPaystubsServiceServer) mustEmbedUnimplementedPaystubsServiceServer() {}
func (UnimplementedPaystubsServiceServer) testEmbeddedByValue()                         {}

// UnsafePaystubsServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PaystubsServiceServer will
// result in compilation errors.
type UnsafePaystubsServiceServer interface {
	mustEmbedUnimplementedPaystubsServiceServer()
}

func RegisterPaystubsServiceServer(s grpc.ServiceRegistrar, srv PaystubsServiceServer) {
	// If the following call pancis, it indicates UnimplementedPaystubsServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&PaystubsService_ServiceDesc, srv)
}

func _PaystubsService_ExtractPaystub_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExtractPaystubRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaystubsServiceServer).ExtractPaystub(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaystubsService_ExtractPaystub_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaystubsServiceServer).ExtractPaystub(ctx, req.(*ExtractPaystubRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PaystubsService_GetPaystub_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GetPaystubRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaystubsServiceServer).GetPaystub(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaystubsService_GetPaystub_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaystubsServiceServer).GetPaystub(ctx, req.(*GetPaystubRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _PaystubsService_ListPaystubs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ListPaystubsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PaystubsServiceServer).ListPaystubs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PaystubsService_ListPaystubs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PaystubsServiceServer).ListPaystubs(ctx, req.(*ListPaystubsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PaystubsService_ServiceDesc is the grpc.ServiceDesc for PaystubsService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PaystubsService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "paystubs.v1.PaystubsService",
	HandlerType: (*PaystubsServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExtractPaystub",
			Handler:    _PaystubsService_ExtractPaystub_Handler,
		},
		{
			MethodName: "GetPaystub",
			Handler:    _PaystubsService_GetPaystub_Handler,
		},
		{
			MethodName: "ListPaystubs",
			Handler:    _PaystubsService_ListPaystubs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paystubs/v1/paystubs.proto",
}

const (
	IngestionService_IngestFile_FullMethodName      = "/paystubs.v1.IngestionService/IngestFile"
	IngestionService_IngestDirectory_FullMethodName = "/paystubs.v1.IngestionService/IngestDirectory"
)

// IngestionServiceClient is the client API for IngestionService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type IngestionServiceClient interface {
	IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error)
	IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error)
}

type ingestionServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewIngestionServiceClient(cc grpc.ClientConnInterface) IngestionServiceClient {
	return &ingestionServiceClient{cc}
}

func (c *ingestionServiceClient) IngestFile(ctx context.Context, in *IngestFileRequest, opts ...grpc.CallOption) (*IngestResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestFile_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

func (c *ingestionServiceClient) IngestDirectory(ctx context.Context, in *IngestDirectoryRequest, opts ...grpc.CallOption) (*IngestDirectoryResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(IngestDirectoryResponse)
	err := c.cc.Invoke(ctx, IngestionService_IngestDirectory_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// IngestionServiceServer is the server API for IngestionService service.
// All implementations must embed UnimplementedIngestionServiceServer
// for forward compatibility.
type IngestionServiceServer interface {
	IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error)
	IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error)
	mustEmbedUnimplementedIngestionServiceServer()
}

// UnimplementedIngestionServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedIngestionServiceServer struct{}

func (UnimplementedIngestionServiceServer) IngestFile(context.Context, *IngestFileRequest) (*IngestResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestFile not implemented")
}
func (UnimplementedIngestionServiceServer) IngestDirectory(context.Context, *IngestDirectoryRequest) (*IngestDirectoryResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method IngestDirectory not implemented")
}
func (UnimplementedIngestionServiceServer) mustEmbedUnimplementedIngestionServiceServer() {}
func (UnimplementedIngestionServiceServer) testEmbeddedByValue()                          {}

// UnsafeIngestionServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to IngestionServiceServer will
// result in compilation errors.
type UnsafeIngestionServiceServer interface {
	mustEmbedUnimplementedIngestionServiceServer()
}

func RegisterIngestionServiceServer(s grpc.ServiceRegistrar, srv IngestionServiceServer) {
	// If the following call pancis, it indicates UnimplementedIngestionServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&IngestionService_ServiceDesc, srv)
}

func _IngestionService_IngestFile_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestFileRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestFile(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestFile_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestFile(ctx, req.(*IngestFileRequest))
	}
	return interceptor(ctx, in, info, handler)
}

func _IngestionService_IngestDirectory_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(IngestDirectoryRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: IngestionService_IngestDirectory_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(IngestionServiceServer).IngestDirectory(ctx, req.(*IngestDirectoryRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// IngestionService_ServiceDesc is the grpc.ServiceDesc for IngestionService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var IngestionService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "paystubs.v1.IngestionService",
	HandlerType: (*IngestionServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "IngestFile",
			Handler:    _IngestionService_IngestFile_Handler,
		},
		{
			MethodName: "IngestDirectory",
			Handler:    _IngestionService_IngestDirectory_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paystubs/v1/paystubs.proto",
}

const (
	ExportService_ExportPaystubs_FullMethodName = "/paystubs.v1.ExportService/ExportPaystubs"
)

// ExportServiceClient is the client API for ExportService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type ExportServiceClient interface {
	ExportPaystubs(ctx context.Context, in *ExportPaystubsRequest, opts ...grpc.CallOption) (*ExportPaystubsResponse, error)
}

type exportServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewExportServiceClient(cc grpc.ClientConnInterface) ExportServiceClient {
	return &exportServiceClient{cc}
}

func (c *exportServiceClient) ExportPaystubs(ctx context.Context, in *ExportPaystubsRequest, opts ...grpc.CallOption) (*ExportPaystubsResponse, error) {
	cOpts := append([]grpc.CallOption{grpc.StaticMethod()}, opts...)
	out := new(ExportPaystubsResponse)
	err := c.cc.Invoke(ctx, ExportService_ExportPaystubs_FullMethodName, in, out, cOpts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// ExportServiceServer is the server API for ExportService service.
// All implementations must embed UnimplementedExportServiceServer
// for forward compatibility.
type ExportServiceServer interface {
	ExportPaystubs(context.Context, *ExportPaystubsRequest) (*ExportPaystubsResponse, error)
	mustEmbedUnimplementedExportServiceServer()
}

// UnimplementedExportServiceServer must be embedded to have
// forward compatible implementations.
//
// NOTE: this should be embedded by value instead of pointer to avoid a nil
// pointer dereference when methods are called.
type UnimplementedExportServiceServer struct{}

func (UnimplementedExportServiceServer) ExportPaystubs(context.Context, *ExportPaystubsRequest) (*ExportPaystubsResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method ExportPaystubs not implemented")
}
func (UnimplementedExportServiceServer) mustEmbedUnimplementedExportServiceServer() {}
func (UnimplementedExportServiceServer) testEmbeddedByValue()                       {}

// UnsafeExportServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to ExportServiceServer will
// result in compilation errors.
type UnsafeExportServiceServer interface {
	mustEmbedUnimplementedExportServiceServer()
}

func RegisterExportServiceServer(s grpc.ServiceRegistrar, srv ExportServiceServer) {
	// If the following call pancis, it indicates UnimplementedExportServiceServer was
	// embedded by pointer and is nil.  This will cause panics if an
	// unimplemented method is ever invoked, so we test this at initialization
	// time to prevent it from happening at runtime later due to I/O.
	if t, ok := srv.(interface{ testEmbeddedByValue() }); ok {
		t.testEmbeddedByValue()
	}
	s.RegisterService(&ExportService_ServiceDesc, srv)
}

func _ExportService_ExportPaystubs_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(ExportPaystubsRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(ExportServiceServer).ExportPaystubs(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: ExportService_ExportPaystubs_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(ExportServiceServer).ExportPaystubs(ctx, req.(*ExportPaystubsRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// ExportService_ServiceDesc is the grpc.ServiceDesc for ExportService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var ExportService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "paystubs.v1.ExportService",
	HandlerType: (*ExportServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "ExportPaystubs",
			Handler:    _ExportService_ExportPaystubs_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "paystubs/v1/paystubs.proto",
}
