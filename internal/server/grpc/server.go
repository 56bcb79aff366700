// Package grpc exposes the EcoTracker services over gRPC.
package grpc

import (
	"context"
	"net"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	"github.com/dmitrijs2005/ecotracker/internal/logging"
	pb "github.com/dmitrijs2005/ecotracker/internal/proto"
	"github.com/dmitrijs2005/ecotracker/internal/server/metrics"
	"github.com/dmitrijs2005/ecotracker/internal/server/models"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/services"
	"google.golang.org/grpc"
)

type userSvc interface {
	Register(ctx context.Context, username, password string) (*models.User, error)
	Login(ctx context.Context, username, password string) (*services.TokenPair, error)
	RefreshToken(ctx context.Context, refreshToken string) (*services.TokenPair, error)
}

type entrySvc interface {
	Submit(ctx context.Context, userID string, d emission.Details, occurredAt time.Time) (*models.Entry, error)
	Preview(ctx context.Context, d emission.Details) (emission.Assessment, error)
	History(ctx context.Context, userID string, filter entries.ListFilter) ([]*models.Entry, error)
}

type summarySvc interface {
	Dashboard(ctx context.Context, userID string) (footprint.Dashboard, error)
	Profile(ctx context.Context, userID string) (*services.Profile, error)
	Suggestions(ctx context.Context, userID string, co2 *float64) (footprint.Suggestions, error)
}

type reportSvc interface {
	Export(ctx context.Context, userID string) (*services.ExportResult, error)
}

// Services groups the business services the server dispatches to.
type Services struct {
	Users   userSvc
	Entries entrySvc
	Summary summarySvc
	Reports reportSvc
}

type GRPCServer struct {
	pb.UnimplementedEcoTrackerServer
	address   string
	users     userSvc
	entries   entrySvc
	summary   summarySvc
	reports   reportSvc
	metrics   *metrics.Metrics
	logger    logging.Logger
	jwtSecret []byte
}

func NewGRPCServer(a string, l logging.Logger, m *metrics.Metrics, svc Services, secretKey string) (*GRPCServer, error) {
	return &GRPCServer{
		address:   a,
		logger:    l.With("module", "grpc_server"),
		metrics:   m,
		users:     svc.Users,
		entries:   svc.Entries,
		summary:   svc.Summary,
		reports:   svc.Reports,
		jwtSecret: []byte(secretKey),
	}, nil
}

func (s *GRPCServer) newServer() *grpc.Server {
	srv := grpc.NewServer(grpc.ChainUnaryInterceptor(s.metricsInterceptor, s.accessTokenInterceptor))
	pb.RegisterEcoTrackerServer(srv, s)
	return srv
}

func (s *GRPCServer) Run(ctx context.Context) error {

	// announces address
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
		srv.GracefulStop()
	}()

	s.logger.Info(ctx, "Starting gRPC server", "address", lis.Addr().String())

	// starts accepting incoming connections
	if err := srv.Serve(lis); err != nil {
		return err
	}

	return nil
}
