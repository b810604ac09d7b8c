package grpc

import (
	"context"
	"errors"

	"github.com/dmitrijs2005/timeline/internal/api"
	"github.com/dmitrijs2005/timeline/internal/common"
	pb "github.com/dmitrijs2005/timeline/internal/proto"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// toStatus maps service errors to gRPC status codes. Unexpected errors are
// logged and hidden behind a generic message.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "event not found")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, err.Error())
	case errors.Is(err, context.Canceled):
		return status.Error(codes.Canceled, err.Error())
	case errors.Is(err, context.DeadlineExceeded):
		return status.Error(codes.DeadlineExceeded, err.Error())
	}
	s.logger.Error(ctx, "request failed", "error", err)
	return status.Error(codes.Internal, common.ErrorInternal.Error())
}

func (s *GRPCServer) Ping(ctx context.Context, _ *emptypb.Empty) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) CreateEvent(ctx context.Context, req *pb.CreateEventRequest) (*pb.CreateEventResponse, error) {
	if req.GetEvent() == nil {
		return nil, status.Error(codes.InvalidArgument, "event is required")
	}

	e, err := s.events.Create(ctx, api.ToModel(req.GetEvent()))
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateEventResponse{Id: e.ID}, nil
}

func (s *GRPCServer) GetEvent(ctx context.Context, req *pb.GetEventRequest) (*pb.GetEventResponse, error) {
	e, err := s.events.Get(ctx, req.GetId())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetEventResponse{Event: api.FromModel(e)}, nil
}

func (s *GRPCServer) UpdateEvent(ctx context.Context, req *pb.UpdateEventRequest) (*pb.UpdateEventResponse, error) {
	if req.GetId() == "" || req.GetEvent() == nil {
		return nil, status.Error(codes.InvalidArgument, "id and event are required")
	}

	e, err := s.events.Update(ctx, req.GetId(), api.ToModel(req.GetEvent()), req.GetUpdateMask())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.UpdateEventResponse{Event: api.FromModel(e)}, nil
}

func (s *GRPCServer) ListEvents(ctx context.Context, _ *emptypb.Empty) (*pb.ListEventsResponse, error) {
	events, err := s.events.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.ListEventsResponse{Events: api.FromModels(events)}, nil
}

// SubscribeEvents streams the full collection now and again after every
// change, until the client goes away.
func (s *GRPCServer) SubscribeEvents(_ *emptypb.Empty, stream pb.TimelineService_SubscribeEventsServer) error {
	ctx := stream.Context()

	ch, cancel, err := s.events.Subscribe(ctx)
	if err != nil {
		return s.toStatus(ctx, err)
	}
	defer cancel()

	for {
		select {
		case <-ctx.Done():
			return nil
		case snap, ok := <-ch:
			if !ok {
				return nil
			}
			if err := stream.Send(api.FromSnapshot(*snap)); err != nil {
				return err
			}
		}
	}
}

func (s *GRPCServer) ListReferenceTags(ctx context.Context, _ *emptypb.Empty) (*pb.ListReferenceTagsResponse, error) {
	tags, err := s.references.List(ctx)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	names := make([]string, 0, len(tags))
	for _, t := range tags {
		names = append(names, t.Name)
	}
	return &pb.ListReferenceTagsResponse{Tags: names}, nil
}

func (s *GRPCServer) CreateReferenceTag(ctx context.Context, req *pb.CreateReferenceTagRequest) (*pb.CreateReferenceTagResponse, error) {
	tag, err := s.references.Create(ctx, req.GetName())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.CreateReferenceTagResponse{Id: tag.ID}, nil
}

func (s *GRPCServer) GetOverlayUploadURL(ctx context.Context, req *pb.GetOverlayUploadURLRequest) (*pb.GetOverlayUploadURLResponse, error) {
	up, err := s.overlays.NewUpload(ctx, req.GetContentType())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetOverlayUploadURLResponse{Key: up.Key, UploadUrl: up.UploadURL, ImageUrl: up.ImageURL}, nil
}
