package client

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	"github.com/dmitrijs2005/ecotracker/internal/emission"
	"github.com/dmitrijs2005/ecotracker/internal/footprint"
	pb "github.com/dmitrijs2005/ecotracker/internal/proto"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/timestamppb"
	"google.golang.org/protobuf/types/known/wrapperspb"
)

type GRPCClient struct {
	endpointURL string
	conn        *grpc.ClientConn
	client      pb.EcoTrackerClient

	mu           sync.Mutex
	accessToken  string
	refreshToken string
	onRefresh    TokenSaver
}

func withAccessToken(ctx context.Context, token string) context.Context {
	md, _ := metadata.FromOutgoingContext(ctx)
	md = md.Copy()
	if md == nil {
		md = metadata.MD{}
	}
	md.Delete(common.AccessTokenHeaderName)
	if token != "" {
		md.Set(common.AccessTokenHeaderName, token)
	}

	return metadata.NewOutgoingContext(ctx, md)
}

func (s *GRPCClient) tokens() Tokens {
	s.mu.Lock()
	defer s.mu.Unlock()
	return Tokens{AccessToken: s.accessToken, RefreshToken: s.refreshToken}
}

func (s *GRPCClient) accessTokenInterceptor(
	ctx context.Context,
	method string,
	req, reply interface{},
	cc *grpc.ClientConn,
	invoker grpc.UnaryInvoker,
	opts ...grpc.CallOption,
) error {

	t := s.tokens()
	err := invoker(withAccessToken(ctx, t.AccessToken), method, req, reply, cc, opts...)
	if err == nil || method == pb.EcoTracker_RefreshToken_FullMethodName {
		return err
	}

	st, ok := status.FromError(err)
	if !ok || st.Code() != codes.Unauthenticated || st.Message() != common.ErrTokenExpired.Error() {
		return err
	}
	if t.RefreshToken == "" {
		return err
	}

	resp, rerr := s.client.RefreshToken(ctx, &pb.RefreshTokenRequest{RefreshToken: t.RefreshToken})
	if rerr != nil {
		return rerr
	}

	fresh := Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.SetTokens(fresh)

	s.mu.Lock()
	save := s.onRefresh
	s.mu.Unlock()
	if save != nil {
		if serr := save(ctx, fresh); serr != nil {
			return fmt.Errorf("save refreshed tokens: %w", serr)
		}
	}

	return invoker(withAccessToken(ctx, fresh.AccessToken), method, req, reply, cc, opts...)
}

// NewGRPCClient connects lazily to endpointURL. Extra dial options are
// appended after the defaults (plaintext transport, token interceptor).
func NewGRPCClient(endpointURL string, opts ...grpc.DialOption) (*GRPCClient, error) {
	c := &GRPCClient{endpointURL: endpointURL}
	if err := c.initGRPCClient(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (s *GRPCClient) initGRPCClient(opts ...grpc.DialOption) error {
	dialOpts := append([]grpc.DialOption{
		grpc.WithTransportCredentials(insecure.NewCredentials()),
		grpc.WithUnaryInterceptor(s.accessTokenInterceptor),
	}, opts...)

	conn, err := grpc.NewClient(s.endpointURL, dialOpts...)
	if err != nil {
		return err
	}
	s.conn = conn
	s.client = pb.NewEcoTrackerClient(conn)
	return nil
}

func (s *GRPCClient) Close() error {
	return s.conn.Close()
}

func (s *GRPCClient) SetTokens(t Tokens) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.accessToken = t.AccessToken
	s.refreshToken = t.RefreshToken
}

func (s *GRPCClient) OnTokensRefreshed(fn TokenSaver) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.onRefresh = fn
}

func (s *GRPCClient) Register(ctx context.Context, username, password string) (string, error) {
	resp, err := s.client.Register(ctx, &pb.RegisterRequest{Username: username, Password: password})
	if err != nil {
		return "", s.mapError(err)
	}
	return resp.GetUserId(), nil
}

func (s *GRPCClient) Login(ctx context.Context, username, password string) (Tokens, error) {
	resp, err := s.client.Login(ctx, &pb.LoginRequest{Username: username, Password: password})
	if err != nil {
		return Tokens{}, s.mapError(err)
	}

	t := Tokens{AccessToken: resp.AccessToken, RefreshToken: resp.RefreshToken}
	s.SetTokens(t)
	return t, nil
}

func (s *GRPCClient) Ping(ctx context.Context) error {
	resp, err := s.client.Ping(ctx, &pb.PingRequest{})
	if err != nil {
		return s.mapError(err)
	}

	if resp.Status != "OK" {
		return ErrUnavailable
	}
	return nil
}

func (s *GRPCClient) SubmitEntry(ctx context.Context, d emission.Details, occurredAt *time.Time) (*Entry, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	req := &pb.SubmitEntryRequest{Category: string(d.Category()), Details: raw}
	if occurredAt != nil {
		req.OccurredAt = timestamppb.New(*occurredAt)
	}

	resp, err := s.client.SubmitEntry(ctx, req)
	if err != nil {
		return nil, s.mapError(err)
	}
	e := fromPBEntry(resp.GetEntry())
	return &e, nil
}

func (s *GRPCClient) PreviewEntry(ctx context.Context, d emission.Details) (*Preview, error) {
	raw, err := json.Marshal(d)
	if err != nil {
		return nil, err
	}

	resp, err := s.client.PreviewEntry(ctx, &pb.PreviewEntryRequest{Category: string(d.Category()), Details: raw})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Preview{
		Category:     resp.GetCategory(),
		CO2Emissions: resp.GetCo2Emissions(),
		CO2Offset:    resp.GetCo2Offset(),
		EcoPoints:    int(resp.GetEcoPoints()),
		Details:      resp.GetDetails(),
	}, nil
}

func (s *GRPCClient) ListEntries(ctx context.Context, category string, limit int) ([]Entry, error) {
	resp, err := s.client.ListEntries(ctx, &pb.ListEntriesRequest{Category: category, Limit: int32(limit)})
	if err != nil {
		return nil, s.mapError(err)
	}

	out := make([]Entry, 0, len(resp.GetEntries()))
	for _, e := range resp.GetEntries() {
		out = append(out, fromPBEntry(e))
	}
	return out, nil
}

func (s *GRPCClient) Summary(ctx context.Context) (footprint.Dashboard, error) {
	resp, err := s.client.GetSummary(ctx, &pb.GetSummaryRequest{})
	if err != nil {
		return footprint.Dashboard{}, s.mapError(err)
	}
	return fromPBDashboard(resp.GetDashboard()), nil
}

func (s *GRPCClient) Profile(ctx context.Context) (*Profile, error) {
	resp, err := s.client.GetProfile(ctx, &pb.GetProfileRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return fromPBProfile(resp), nil
}

func (s *GRPCClient) Suggestions(ctx context.Context, co2 *float64) (footprint.Suggestions, error) {
	req := &pb.GetSuggestionsRequest{}
	if co2 != nil {
		req.Co2 = wrapperspb.Double(*co2)
	}

	resp, err := s.client.GetSuggestions(ctx, req)
	if err != nil {
		return footprint.Suggestions{}, s.mapError(err)
	}
	return fromPBSuggestions(resp), nil
}

func (s *GRPCClient) ExportReport(ctx context.Context) (*Report, error) {
	resp, err := s.client.ExportReport(ctx, &pb.ExportReportRequest{})
	if err != nil {
		return nil, s.mapError(err)
	}
	return &Report{Key: resp.GetKey(), URL: resp.GetUrl(), ExpiresAt: asTime(resp.GetExpiresAt())}, nil
}

func (s *GRPCClient) mapError(err error) error {
	if err == nil {
		return nil
	}
	st, _ := status.FromError(err)
	switch st.Code() {
	case codes.Unauthenticated, codes.PermissionDenied:
		return ErrUnauthorized
	case codes.Unavailable, codes.DeadlineExceeded:
		return ErrUnavailable
	case codes.InvalidArgument:
		return fmt.Errorf("%w: %s", ErrInvalidInput, st.Message())
	case codes.AlreadyExists:
		return ErrAlreadyExists
	case codes.NotFound:
		return ErrNotFound
	default:
		return fmt.Errorf("rpc error: %w", err)
	}
}
