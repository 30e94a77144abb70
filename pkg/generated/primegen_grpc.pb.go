// Code generated by protoc-gen-go-grpc. DO NOT EDIT.
// versions:
// - protoc-gen-go-grpc v1.3.0
// - protoc             (unknown)
// source: primegen.proto

package generated

import (
	context "context"
	grpc "google.golang.org/grpc"
	codes "google.golang.org/grpc/codes"
	status "google.golang.org/grpc/status"
)

// This is a compile-time assertion to ensure that this generated file
// is compatible with the grpc package it is being compiled against.
// Requires gRPC-Go v1.32.0 or later.
const _ = grpc.SupportPackageIsVersion7

const (
	PrimeService_GeneratePrimes_FullMethodName = "/primegen.v1.PrimeService/GeneratePrimes"
)

// PrimeServiceClient is the client API for PrimeService service.
//
// For semantics around ctx use and closing/ending streaming RPCs, please refer to https://pkg.go.dev/google.golang.org/grpc/?tab=doc#ClientConn.NewStream.
type PrimeServiceClient interface {
	// Generate a run of count primes, each >= the decimal start bound. The
	// service continues past the 64-bit numeric range with the
	// arbitrary-precision engine, so the run always holds count primes.
	GeneratePrimes(ctx context.Context, in *GeneratePrimesRequest, opts ...grpc.CallOption) (*GeneratePrimesResponse, error)
}

type primeServiceClient struct {
	cc grpc.ClientConnInterface
}

func NewPrimeServiceClient(cc grpc.ClientConnInterface) PrimeServiceClient {
	return &primeServiceClient{cc}
}

func (c *primeServiceClient) GeneratePrimes(ctx context.Context, in *GeneratePrimesRequest, opts ...grpc.CallOption) (*GeneratePrimesResponse, error) {
	out := new(GeneratePrimesResponse)
	err := c.cc.Invoke(ctx, PrimeService_GeneratePrimes_FullMethodName, in, out, opts...)
	if err != nil {
		return nil, err
	}
	return out, nil
}

// PrimeServiceServer is the server API for PrimeService service.
// All implementations must embed UnimplementedPrimeServiceServer
// for forward compatibility
type PrimeServiceServer interface {
	// Generate a run of count primes, each >= the decimal start bound. The
	// service continues past the 64-bit numeric range with the
	// arbitrary-precision engine, so the run always holds count primes.
	GeneratePrimes(context.Context, *GeneratePrimesRequest) (*GeneratePrimesResponse, error)
	mustEmbedUnimplementedPrimeServiceServer()
}

// UnimplementedPrimeServiceServer must be embedded to have forward compatible implementations.
type UnimplementedPrimeServiceServer struct {
}

func (UnimplementedPrimeServiceServer) GeneratePrimes(context.Context, *GeneratePrimesRequest) (*GeneratePrimesResponse, error) {
	return nil, status.Errorf(codes.Unimplemented, "method GeneratePrimes not implemented")
}
func (UnimplementedPrimeServiceServer) mustEmbedUnimplementedPrimeServiceServer() {}

// UnsafePrimeServiceServer may be embedded to opt out of forward compatibility for this service.
// Use of this interface is not recommended, as added methods to PrimeServiceServer will
// result in compilation errors.
type UnsafePrimeServiceServer interface {
	mustEmbedUnimplementedPrimeServiceServer()
}

func RegisterPrimeServiceServer(s grpc.ServiceRegistrar, srv PrimeServiceServer) {
	s.RegisterService(&PrimeService_ServiceDesc, srv)
}

func _PrimeService_GeneratePrimes_Handler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(GeneratePrimesRequest)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(PrimeServiceServer).GeneratePrimes(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: PrimeService_GeneratePrimes_FullMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(PrimeServiceServer).GeneratePrimes(ctx, req.(*GeneratePrimesRequest))
	}
	return interceptor(ctx, in, info, handler)
}

// PrimeService_ServiceDesc is the grpc.ServiceDesc for PrimeService service.
// It's only intended for direct use with grpc.RegisterService,
// and not to be introspected or modified (even as a copy)
var PrimeService_ServiceDesc = grpc.ServiceDesc{
	ServiceName: "primegen.v1.PrimeService",
	HandlerType: (*PrimeServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GeneratePrimes",
			Handler:    _PrimeService_GeneratePrimes_Handler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "primegen.proto",
}
