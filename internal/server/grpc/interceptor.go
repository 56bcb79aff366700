package grpc

import (
	"context"
	"errors"
	"path"
	"time"

	"github.com/dmitrijs2005/ecotracker/internal/common"
	pb "github.com/dmitrijs2005/ecotracker/internal/proto"
	"github.com/dmitrijs2005/ecotracker/internal/server/auth"
	"github.com/dmitrijs2005/ecotracker/internal/server/shared"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
)

// publicMethods can be called without an access token.
var publicMethods = map[string]bool{
	pb.EcoTracker_Register_FullMethodName:     true,
	pb.EcoTracker_Login_FullMethodName:        true,
	pb.EcoTracker_RefreshToken_FullMethodName: true,
	pb.EcoTracker_Ping_FullMethodName:         true,
	pb.EcoTracker_PreviewEntry_FullMethodName: true,
}

func (s *GRPCServer) accessTokenInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {

	if publicMethods[info.FullMethod] {
		return handler(ctx, req)
	}

	var accessToken string
	if md, ok := metadata.FromIncomingContext(ctx); ok {
		values := md.Get(common.AccessTokenHeaderName)
		if len(values) > 0 {
			accessToken = values[0]
		}
	}
	if len(accessToken) == 0 {
		return nil, status.Error(codes.Unauthenticated, "missing token")
	}

	userID, err := auth.GetUserIDFromToken(accessToken, s.jwtSecret)
	if err != nil {
		if errors.Is(err, common.ErrTokenExpired) {
			return nil, status.Error(codes.Unauthenticated, common.ErrTokenExpired.Error())
		}
		return nil, status.Error(codes.Unauthenticated, "invalid token")
	}

	return handler(shared.WithUserID(ctx, userID), req)
}

func (s *GRPCServer) metricsInterceptor(ctx context.Context, req interface{}, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (interface{}, error) {
	start := time.Now()
	resp, err := handler(ctx, req)
	s.metrics.ObserveRequest("grpc", path.Base(info.FullMethod), status.Code(err).String(), time.Since(start))
	return resp, err
}
