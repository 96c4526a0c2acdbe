package intercepters

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"google.golang.org/grpc"
	"google.golang.org/grpc/metadata"

	"github.com/atinyakov/go-movie-gateway/internal/middleware"
)

// requestIDMetadata is the metadata key matching the HTTP X-Request-ID header.
const requestIDMetadata = "x-request-id"

// WithRequestID is the gRPC counterpart of middleware.WithRequestID: it takes
// the caller's x-request-id or generates one, stores it in the context and
// sends it back as a response header.
func WithRequestID() grpc.UnaryServerInterceptor {
	return func(ctx context.Context, req any, info *grpc.UnaryServerInfo, handler grpc.UnaryHandler) (any, error) {
		id := ""
		if md, ok := metadata.FromIncomingContext(ctx); ok {
			if v := md.Get(requestIDMetadata); len(v) > 0 {
				id = strings.TrimSpace(v[0])
			}
		}
		if id == "" || len(id) > 128 {
			id = uuid.NewString()
		}

		_ = grpc.SetHeader(ctx, metadata.Pairs(requestIDMetadata, id))

		return handler(context.WithValue(ctx, middleware.RequestIDKey, id), req)
	}
}
