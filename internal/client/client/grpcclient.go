package client

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/timeline/internal/api"
	"github.com/dmitrijs2005/timeline/internal/common"
	"github.com/dmitrijs2005/timeline/internal/logging"
	"github.com/dmitrijs2005/timeline/internal/models"
	pb "github.com/dmitrijs2005/timeline/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
)

// resubscribeDelay is how long a broken subscription waits before reopening.
var resubscribeDelay = time.Second

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.TimelineServiceClient
	logger      logging.Logger
}

func NewTimelineClient(endpointURL string, logger logging.Logger) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL, logger: logger.With("module", "grpc_client")}
	if err := c.InitGRPCClient(); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) InitGRPCClient() error {
	conn, err := grpc.NewClient(s.endpointURL, grpc.WithTransportCredentials(insecure.NewCredentials()))
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewTimelineServiceClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	if s.conn == nil {
		return nil
	}
	return s.conn.Close()
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &emptypb.Empty{})
	if err != nil {
		return s.mapError(err)
	}
	if resp.GetStatus() != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) CreateEvent(ctx context.Context, e *models.Event) (string, error) {
	resp, err := s.client.CreateEvent(ctx, &pb.CreateEventRequest{Event: api.FromModel(e)})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetId(), nil
}

func (s *GRPCClient) GetEvent(ctx context.Context, id string) (*models.Event, error) {
	resp, err := s.client.GetEvent(ctx, &pb.GetEventRequest{Id: id})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.ToModel(resp.GetEvent()), nil
}

// UpdateEvent sends the fields of e named in mask; an empty mask replaces
// the whole record.
func (s *GRPCClient) UpdateEvent(ctx context.Context, id string, e *models.Event, mask []string) (*models.Event, error) {
	resp, err := s.client.UpdateEvent(ctx, &pb.UpdateEventRequest{Id: id, Event: api.FromModel(e), UpdateMask: mask})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.ToModel(resp.GetEvent()), nil
}

func (s *GRPCClient) ListEvents(ctx context.Context) ([]*models.Event, error) {
	resp, err := s.client.ListEvents(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return api.ToModels(resp.GetEvents()), nil
}

func (s *GRPCClient) ListReferenceTags(ctx context.Context) ([]string, error) {
	resp, err := s.client.ListReferenceTags(ctx, &emptypb.Empty{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return resp.GetTags(), nil
}

func (s *GRPCClient) CreateReferenceTag(ctx context.Context, name string) (string, error) {
	resp, err := s.client.CreateReferenceTag(ctx, &pb.CreateReferenceTagRequest{Name: name})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetId(), nil
}

func (s *GRPCClient) GetOverlayUploadURL(ctx context.Context, contentType string) (*OverlayUpload, error) {
	resp, err := s.client.GetOverlayUploadURL(ctx, &pb.GetOverlayUploadURLRequest{ContentType: contentType})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &OverlayUpload{Key: resp.GetKey(), UploadURL: resp.GetUploadUrl(), ImageURL: resp.GetImageUrl()}, nil
}

// SubscribeToEvents opens the snapshot stream and calls onUpdate with every
// snapshot, the current collection first. The stream is opened before it
// returns, so a dead server is reported immediately. The first snapshot of
// every stream, including one reopened after a broken connection, is marked
// Resync.
//
// The returned func unsubscribes. Once it returns, onUpdate is neither
// running nor called again; it must not be called from within onUpdate.
func (s *GRPCClient) SubscribeToEvents(ctx context.Context, onUpdate func(*models.Snapshot)) (func(), error) {
	ctx, cancel := context.WithCancel(ctx)

	stream, err := s.client.SubscribeEvents(ctx, &emptypb.Empty{})
	if err != nil {
		cancel()
		return nil, s.mapError(err)
	}

	var mu sync.Mutex
	deliver := func(m *pb.EventsSnapshot, resync bool) {
		mu.Lock()
		defer mu.Unlock()
		if ctx.Err() != nil {
			return
		}
		snap := models.NewSnapshot(api.ToModels(m.GetEvents()), m.GetSequence())
		snap.Resync = resync
		onUpdate(&snap)
	}

	go s.receive(ctx, stream, deliver)

	return func() {
		cancel()
		// wait out a delivery already in progress
		mu.Lock()
		mu.Unlock()
	}, nil
}

func (s *GRPCClient) receive(ctx context.Context, stream pb.TimelineService_SubscribeEventsClient, deliver func(*pb.EventsSnapshot, bool)) {
	fresh := true
	for {
		m, err := stream.Recv()
		if err == nil {
			deliver(m, fresh)
			fresh = false
			continue
		}
		if ctx.Err() != nil {
			return
		}
		s.logger.Warn(ctx, "subscription interrupted, retrying", "error", err)

		for {
			select {
			case <-ctx.Done():
				return
			case <-time.After(resubscribeDelay):
			}
			stream, err = s.client.SubscribeEvents(ctx, &emptypb.Empty{})
			if err == nil {
				break
			}
			s.logger.Debug(ctx, "resubscribe failed", "error", err)
		}
		// the server may have restarted and reset its sequence
		fresh = true
	}
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, ok := status.FromError(err)
	if !ok {
		return fmt.Errorf("%w: %v", common.ErrorStore, err)
	}
	switch st.Code() {
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.NotFound:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorNotFound)
	case codes.InvalidArgument:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorValidation)
	case codes.AlreadyExists:
		return fmt.Errorf("%s: %w", st.Message(), common.ErrorAlreadyExists)
	case codes.Canceled:
		return errors.Join(context.Canceled, err)
	default:
		return fmt.Errorf("%w: %s", common.ErrorStore, st.Message())
	}
}
