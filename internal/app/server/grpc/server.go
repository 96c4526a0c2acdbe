package grpc

import (
	"context"
	"errors"
	"fmt"
	"net"

	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/logging"
	"github.com/grpc-ecosystem/go-grpc-middleware/v2/interceptors/recovery"
	"go.uber.org/zap"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	"github.com/atinyakov/go-movie-gateway/internal/app/service"
	"github.com/atinyakov/go-movie-gateway/internal/intercepters"
	"github.com/atinyakov/go-movie-gateway/internal/models"
)

// Server wraps the gRPC server and dependencies.
type Server struct {
	grpcServer *grpc.Server
	address    string
	logger     *zap.Logger
}

// New creates a new gRPC server instance.
func New(address string, logger *zap.Logger, manager service.MovieManagerIface) *Server {
	s := grpc.NewServer(
		grpc.ChainUnaryInterceptor(
			recovery.UnaryServerInterceptor(recovery.WithRecoveryHandlerContext(panicHandler(logger))),
			intercepters.WithRequestID(),
			logging.UnaryServerInterceptor(intercepters.InterceptorLogger(logger)),
		),
	)

	RegisterMovieServiceServer(s, &MoviesServer{Manager: manager, logger: logger})

	return &Server{
		grpcServer: s,
		address:    address,
		logger:     logger,
	}
}

// panicHandler turns a recovered panic into codes.Internal. The panic value
// is logged, never returned to the caller.
func panicHandler(logger *zap.Logger) recovery.RecoveryHandlerFuncContext {
	return func(ctx context.Context, p any) error {
		logger.Error("panic recovered", zap.Any("panic", p))
		return status.Error(codes.Internal, "internal error")
	}
}

// Start listens on the configured address and serves until stopped.
func (s *Server) Start() error {
	lis, err := net.Listen("tcp", s.address)
	if err != nil {
		s.logger.Error("gRPC server failed to listen", zap.String("address", s.address), zap.Error(err))
		return err
	}

	return s.Serve(lis)
}

// Serve accepts connections on lis. A server stopped before or while serving
// returns nil.
func (s *Server) Serve(lis net.Listener) error {
	s.logger.Info("gRPC server listening", zap.String("address", lis.Addr().String()))
	if err := s.grpcServer.Serve(lis); err != nil && !errors.Is(err, grpc.ErrServerStopped) {
		return err
	}
	return nil
}

// GracefulStop shuts down the server gracefully.
func (s *Server) GracefulStop() {
	s.grpcServer.GracefulStop()
}

// MoviesServer implements MovieServiceServer on top of the movie manager.
type MoviesServer struct {
	Manager service.MovieManagerIface
	logger  *zap.Logger
}

// GetAllMovies returns the consolidated catalog.
func (m *MoviesServer) GetAllMovies(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	result, err := m.Manager.GetAllMoviesAsync(ctx)
	if err != nil {
		return nil, m.internal("GetAllMovies", err)
	}
	return toListValue(result)
}

// GetAllMoviesByGenre returns one catalog per genre source.
func (m *MoviesServer) GetAllMoviesByGenre(ctx context.Context, _ *emptypb.Empty) (*structpb.ListValue, error) {
	result, err := m.Manager.GetAllMoviesByGenre(ctx)
	if err != nil {
		return nil, m.internal("GetAllMoviesByGenre", err)
	}
	return toListValue(result)
}

func (m *MoviesServer) internal(method string, err error) error {
	if m.logger != nil {
		m.logger.Error("cannot load movies", zap.String("method", method), zap.Error(err))
	}
	return status.Error(codes.Internal, "cannot load movies")
}

func toListValue(result models.AggregateResult) (*structpb.ListValue, error) {
	catalogs := make([]any, 0, len(result))
	for _, catalog := range result {
		movies := make([]any, 0, len(catalog))
		for _, m := range catalog {
			movies = append(movies, map[string]any{
				"Title":    m.Title,
				"Year":     m.Year,
				"Genre":    m.Genre,
				"ImageUrl": m.ImageURL,
			})
		}
		catalogs = append(catalogs, movies)
	}

	list, err := structpb.NewList(catalogs)
	if err != nil {
		return nil, status.Error(codes.Internal, fmt.Sprintf("encode movies: %v", err))
	}
	return list, nil
}
