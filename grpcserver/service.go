// Package grpcserver exposes lispust as the gRPC service lispust.Lispust.
//
// The service has a single unary method, Run, that takes the expression and
// returns the rendered value, both as google.protobuf.StringValue.
package grpcserver

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

const (
	serviceName   = "lispust.Lispust"
	runMethodName = "/" + serviceName + "/Run"
)

// LispustServer is the server API of the lispust.Lispust service.
type LispustServer interface {
	Run(context.Context, *wrapperspb.StringValue) (*wrapperspb.StringValue, error)
}

// ServiceDesc describes the lispust.Lispust service.
var ServiceDesc = grpc.ServiceDesc{
	ServiceName: serviceName,
	HandlerType: (*LispustServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "Run",
			Handler:    runHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "lispust.proto",
}

// RegisterLispustServer registers srv on s.
func RegisterLispustServer(s grpc.ServiceRegistrar, srv LispustServer) {
	s.RegisterService(&ServiceDesc, srv)
}

func runHandler(srv interface{}, ctx context.Context, dec func(interface{}) error, interceptor grpc.UnaryServerInterceptor) (interface{}, error) {
	in := new(wrapperspb.StringValue)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(LispustServer).Run(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: runMethodName,
	}
	handler := func(ctx context.Context, req interface{}) (interface{}, error) {
		return srv.(LispustServer).Run(ctx, req.(*wrapperspb.StringValue))
	}
	return interceptor(ctx, in, info, handler)
}
