package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/timeline/internal/logging"
	"github.com/dmitrijs2005/timeline/internal/models"
	pb "github.com/dmitrijs2005/timeline/internal/proto"
	"github.com/dmitrijs2005/timeline/internal/server/services"
	"google.golang.org/grpc"
)

type eventService interface {
	Create(ctx context.Context, e *models.Event) (*models.Event, error)
	Get(ctx context.Context, id string) (*models.Event, error)
	Update(ctx context.Context, id string, patch *models.Event, mask []string) (*models.Event, error)
	List(ctx context.Context) ([]*models.Event, error)
	Subscribe(ctx context.Context) (<-chan *models.Snapshot, func(), error)
}

type referenceService interface {
	List(ctx context.Context) ([]*models.ReferenceTag, error)
	Create(ctx context.Context, name string) (*models.ReferenceTag, error)
}

type overlayService interface {
	NewUpload(ctx context.Context, contentType string) (*services.OverlayUpload, error)
}

// rpcObserver is satisfied by *metrics.Metrics.
type rpcObserver interface {
	ObserveRPC(method, code string, d time.Duration)
}

type GRPCServer struct {
	pb.UnimplementedTimelineServiceServer
	address    string
	events     eventService
	references referenceService
	overlays   overlayService
	metrics    rpcObserver
	logger     logging.Logger
}

// NewGRPCServer wires the service layer to the gRPC transport. m may be nil.
func NewGRPCServer(a string, l logging.Logger, es eventService, rs referenceService, os overlayService, m rpcObserver) *GRPCServer {
	return &GRPCServer{
		address:    a,
		logger:     l.With("module", "grpc_server"),
		events:     es,
		references: rs,
		overlays:   os,
		metrics:    m,
	}
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(
		grpc.ChainUnaryInterceptor(s.unaryInterceptor),
		grpc.ChainStreamInterceptor(s.streamInterceptor),
	)
	pb.RegisterTimelineServiceServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {
	listen, err := net.Listen("tcp", s.address)
	if err != nil {
		return err
	}
	return s.Serve(ctx, listen)
}

// Serve accepts connections on lis until ctx is cancelled.
func (s *GRPCServer) Serve(ctx context.Context, lis net.Listener) error {
	srv := s.newServer()

	go func() {
		<-ctx.Done()
		s.logger.Info(ctx, "Stopping gRPC server...")
		// open subscription streams only end when their context does
		srv.Stop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	if err := srv.Serve(lis); err != nil {
		return err
	}
	return nil
}
