package grpc

import (
	"context"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"
)

// ServiceName is the fully qualified name of the movie service.
const ServiceName = "movies.v1.MovieService"

const (
	getAllMoviesMethod        = "/" + ServiceName + "/GetAllMovies"
	getAllMoviesByGenreMethod = "/" + ServiceName + "/GetAllMoviesByGenre"
)

// MovieServiceServer is the server API for the movie service. Both methods
// answer with a list of catalogs, each catalog a list of movie structs.
type MovieServiceServer interface {
	GetAllMovies(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
	GetAllMoviesByGenre(context.Context, *emptypb.Empty) (*structpb.ListValue, error)
}

// RegisterMovieServiceServer registers srv on s.
func RegisterMovieServiceServer(s grpc.ServiceRegistrar, srv MovieServiceServer) {
	s.RegisterService(&movieServiceDesc, srv)
}

func getAllMoviesHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).GetAllMovies(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getAllMoviesMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).GetAllMovies(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

func getAllMoviesByGenreHandler(srv any, ctx context.Context, dec func(any) error, interceptor grpc.UnaryServerInterceptor) (any, error) {
	in := new(emptypb.Empty)
	if err := dec(in); err != nil {
		return nil, err
	}
	if interceptor == nil {
		return srv.(MovieServiceServer).GetAllMoviesByGenre(ctx, in)
	}
	info := &grpc.UnaryServerInfo{
		Server:     srv,
		FullMethod: getAllMoviesByGenreMethod,
	}
	handler := func(ctx context.Context, req any) (any, error) {
		return srv.(MovieServiceServer).GetAllMoviesByGenre(ctx, req.(*emptypb.Empty))
	}
	return interceptor(ctx, in, info, handler)
}

var movieServiceDesc = grpc.ServiceDesc{
	ServiceName: ServiceName,
	HandlerType: (*MovieServiceServer)(nil),
	Methods: []grpc.MethodDesc{
		{
			MethodName: "GetAllMovies",
			Handler:    getAllMoviesHandler,
		},
		{
			MethodName: "GetAllMoviesByGenre",
			Handler:    getAllMoviesByGenreHandler,
		},
	},
	Streams:  []grpc.StreamDesc{},
	Metadata: "movies/v1/movies.proto",
}
