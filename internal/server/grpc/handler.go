package grpc

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	pb "github.com/dmitrijs2005/ecotracker/internal/proto"
	"github.com/dmitrijs2005/ecotracker/internal/server/repositories/entries"
	"github.com/dmitrijs2005/ecotracker/internal/server/shared"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
)

func (s *GRPCServer) Register(ctx context.Context, req *pb.RegisterRequest) (*pb.RegisterResponse, error) {

	s.logger.Info(ctx, "Registration request")

	user, err := s.users.Register(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	s.logger.Info(ctx, "Registered", "username", user.UserName)
	return &pb.RegisterResponse{UserId: user.ID, Username: user.UserName}, nil
}

func (s *GRPCServer) Login(ctx context.Context, req *pb.LoginRequest) (*pb.LoginResponse, error) {

	tokens, err := s.users.Login(ctx, req.Username, req.Password)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.LoginResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) RefreshToken(ctx context.Context, req *pb.RefreshTokenRequest) (*pb.RefreshTokenResponse, error) {

	tokens, err := s.users.RefreshToken(ctx, req.RefreshToken)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	return &pb.RefreshTokenResponse{AccessToken: tokens.AccessToken, RefreshToken: tokens.RefreshToken}, nil
}

func (s *GRPCServer) Ping(ctx context.Context, req *pb.PingRequest) (*pb.PingResponse, error) {
	return &pb.PingResponse{Status: "OK"}, nil
}

func (s *GRPCServer) SubmitEntry(ctx context.Context, req *pb.SubmitEntryRequest) (*pb.SubmitEntryResponse, error) {
	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	d, err := decodeDetails(req.GetCategory(), req.GetDetails())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	var at time.Time
	if req.GetOccurredAt() != nil {
		at = req.GetOccurredAt().AsTime()
	}

	e, err := s.entries.Submit(ctx, userID, d, at)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.SubmitEntryResponse{Entry: toPBEntry(e)}, nil
}

func (s *GRPCServer) PreviewEntry(ctx context.Context, req *pb.PreviewEntryRequest) (*pb.PreviewEntryResponse, error) {
	d, err := decodeDetails(req.GetCategory(), req.GetDetails())
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	a, err := s.entries.Preview(ctx, d)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	details, err := json.Marshal(a.Details)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.PreviewEntryResponse{
		Category:     string(a.Category),
		Co2Emissions: a.CO2Emissions,
		Co2Offset:    a.CO2Offset,
		EcoPoints:    int64(a.EcoPoints),
		Details:      details,
	}, nil
}

func (s *GRPCServer) ListEntries(ctx context.Context, req *pb.ListEntriesRequest) (*pb.ListEntriesResponse, error) {
	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	list, err := s.entries.History(ctx, userID, entries.ListFilter{Category: req.GetCategory(), Limit: int(req.GetLimit())})
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}

	resp := &pb.ListEntriesResponse{Entries: make([]*pb.Entry, 0, len(list))}
	for _, e := range list {
		resp.Entries = append(resp.Entries, toPBEntry(e))
	}
	return resp, nil
}

func (s *GRPCServer) GetSummary(ctx context.Context, req *pb.GetSummaryRequest) (*pb.GetSummaryResponse, error) {
	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	d, err := s.summary.Dashboard(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetSummaryResponse{Dashboard: toPBDashboard(d)}, nil
}

func (s *GRPCServer) GetProfile(ctx context.Context, req *pb.GetProfileRequest) (*pb.GetProfileResponse, error) {
	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	p, err := s.summary.Profile(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return &pb.GetProfileResponse{
		UserId:      p.UserID,
		Username:    p.UserName,
		MemberSince: timestamppb.New(p.MemberSince),
		Dashboard:   toPBDashboard(p.Dashboard),
		ByCategory:  toPBCategoryTotals(p.ByCategory),
	}, nil
}

func (s *GRPCServer) GetSuggestions(ctx context.Context, req *pb.GetSuggestionsRequest) (*pb.GetSuggestionsResponse, error) {
	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	var co2 *float64
	if req.GetCo2() != nil {
		v := req.GetCo2().GetValue()
		co2 = &v
	}

	sg, err := s.summary.Suggestions(ctx, userID, co2)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	return toPBSuggestions(sg), nil
}

func (s *GRPCServer) ExportReport(ctx context.Context, req *pb.ExportReportRequest) (*pb.ExportReportResponse, error) {
	userID, ok := shared.UserIDFromContext(ctx)
	if !ok {
		return nil, status.Error(codes.Unauthenticated, "unauthorized")
	}

	r, err := s.reports.Export(ctx, userID)
	if err != nil {
		return nil, s.toStatus(ctx, err)
	}
	s.logger.Info(ctx, "report exported", "user_id", userID, "key", r.Key)
	return &pb.ExportReportResponse{Key: r.Key, Url: r.URL, ExpiresAt: timestamppb.New(r.ExpiresAt)}, nil
}

func decodeDetails(category string, raw []byte) (emission.Details, error) {
	c, err := emission.ParseCategory(category)
	if err != nil {
		return nil, err
	}
	return emission.DecodeDetails(c, raw)
}

// toStatus maps service errors to gRPC statuses. Unknown errors are logged
// and hidden behind codes.Internal.
func (s *GRPCServer) toStatus(ctx context.Context, err error) error {
	switch {
	case errors.Is(err, emission.ErrInvalidInput), errors.Is(err, common.ErrorValidation):
		return status.Error(codes.InvalidArgument, err.Error())
	case errors.Is(err, common.ErrTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
	case errors.Is(err, common.ErrRefreshTokenExpired):
		return status.Error(codes.Unauthenticated, common.ErrRefreshTokenExpired.Error())
	case errors.Is(err, common.ErrorUnauthorized), errors.Is(err, common.ErrInvalidToken):
		return status.Error(codes.Unauthenticated, "unauthorized")
	case errors.Is(err, common.ErrorAlreadyExists):
		return status.Error(codes.AlreadyExists, "already exists")
	case errors.Is(err, common.ErrorNotFound):
		return status.Error(codes.NotFound, "not found")
	}
	s.logger.Error(ctx, err.Error())
	return status.Error(codes.Internal, "internal error")
}
