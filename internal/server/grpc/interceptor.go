package grpc

import (
	"context"
	"time"

	"google.golang.org/grpc"
	"google.golang.org/grpc/status"
)

func (s *GRPCServer) observe(ctx context.Context, method string, started time.Time, err error) {
	code := status.Code(err)
	elapsed := time.Since(started)

	if s.metrics != nil {
		s.metrics.ObserveRPC(method, code.String(), elapsed)
	}
	s.logger.Info(ctx, "rpc", "method", method, "code", code.String(), "duration", elapsed)
}

func (s *GRPCServer) unaryInterceptor(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
	started := time.Now()
	resp, err := handler(ctx, req)
	s.observe(ctx, info.FullMethod, started, err)
	return resp, err
}

func (s *GRPCServer) streamInterceptor(srv any, ss grpc.ServerStream, info *grpc.StreamServerInfo, handler grpc.StreamHandler) error {
	started := time.Now()
	s.logger.Info(ss.Context(), "stream opened", "method", info.FullMethod)
	err := handler(srv, ss)
	s.observe(ss.Context(), info.FullMethod, started, err)
	return err
}
