package grpc

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/dmitrijs2005/timeline/internal/logging"
	pb "github.com/dmitrijs2005/timeline/internal/proto"
)

type fakeServerStream struct {
	grpc.ServerStream
	ctx context.Context
}

func (f *fakeServerStream) Context() context.Context { return f.ctx }

func TestUnaryInterceptor_RecordsCode(t *testing.T) {
	obs := &fakeObserver{}
	s := &GRPCServer{logger: logging.Nop{}, metrics: obs}
	info := &grpc.UnaryServerInfo{FullMethod: pb.TimelineService_GetEvent_FullMethodName}

	resp, err := s.unaryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return "ok", nil
	})
	require.NoError(t, err)
	assert.Equal(t, "ok", resp)

	_, err = s.unaryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, status.Error(codes.NotFound, "event not found")
	})
	require.Equal(t, codes.NotFound, status.Code(err))

	assert.Equal(t, []observed{
		{pb.TimelineService_GetEvent_FullMethodName, "OK"},
		{pb.TimelineService_GetEvent_FullMethodName, "NotFound"},
	}, obs.snapshot())
}

func TestStreamInterceptor_RecordsCode(t *testing.T) {
	obs := &fakeObserver{}
	s := &GRPCServer{logger: logging.Nop{}, metrics: obs}
	info := &grpc.StreamServerInfo{FullMethod: pb.TimelineService_SubscribeEvents_FullMethodName, IsServerStream: true}

	called := false
	err := s.streamInterceptor(nil, &fakeServerStream{ctx: context.Background()}, info, func(any, grpc.ServerStream) error {
		called = true
		return status.Error(codes.Canceled, "bye")
	})
	require.Equal(t, codes.Canceled, status.Code(err))
	assert.True(t, called)
	assert.Equal(t, []observed{{pb.TimelineService_SubscribeEvents_FullMethodName, "Canceled"}}, obs.snapshot())
}

func TestInterceptor_WithoutMetrics(t *testing.T) {
	s := &GRPCServer{logger: logging.Nop{}}
	info := &grpc.UnaryServerInfo{FullMethod: pb.TimelineService_Ping_FullMethodName}

	_, err := s.unaryInterceptor(context.Background(), nil, info, func(context.Context, any) (any, error) {
		return nil, nil
	})
	require.NoError(t, err)
}
