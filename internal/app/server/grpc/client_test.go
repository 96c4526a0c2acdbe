package grpc_test

import (
	"context"
	"encoding/json"
	"fmt"

	"google.golang.org/grpc"
	"google.golang.org/protobuf/encoding/protojson"
	"google.golang.org/protobuf/types/known/emptypb"
	"google.golang.org/protobuf/types/known/structpb"

	grpcserver "github.com/atinyakov/go-movie-gateway/internal/app/server/grpc"
	"github.com/atinyakov/go-movie-gateway/internal/models"
)

// movieClient calls the movie service and decodes replies back into models.
type movieClient struct {
	cc grpc.ClientConnInterface
}

func (c *movieClient) GetAllMovies(ctx context.Context, opts ...grpc.CallOption) (models.AggregateResult, error) {
	return c.call(ctx, "GetAllMovies", opts...)
}

func (c *movieClient) GetAllMoviesByGenre(ctx context.Context, opts ...grpc.CallOption) (models.AggregateResult, error) {
	return c.call(ctx, "GetAllMoviesByGenre", opts...)
}

func (c *movieClient) call(ctx context.Context, method string, opts ...grpc.CallOption) (models.AggregateResult, error) {
	out := new(structpb.ListValue)
	fullMethod := "/" + grpcserver.ServiceName + "/" + method
	if err := c.cc.Invoke(ctx, fullMethod, &emptypb.Empty{}, out, opts...); err != nil {
		return nil, err
	}

	raw, err := protojson.Marshal(out)
	if err != nil {
		return nil, fmt.Errorf("encode %s reply: %w", method, err)
	}

	var result models.AggregateResult
	if err := json.Unmarshal(raw, &result); err != nil {
		return nil, fmt.Errorf("decode %s reply: %w", method, err)
	}

	return result, nil
}
