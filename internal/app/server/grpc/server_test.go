package grpc_test

import (
	"context"
	"errors"
	"net"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
	"go.uber.org/zap"
	"go.uber.org/zap/zaptest/observer"
	"google.golang.org/grpc"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/credentials/insecure"
	"google.golang.org/grpc/metadata"
	"google.golang.org/grpc/status"
	"google.golang.org/grpc/test/bufconn"

	grpcserver "github.com/atinyakov/go-movie-gateway/internal/app/server/grpc"
	"github.com/atinyakov/go-movie-gateway/internal/mocks"
	"github.com/atinyakov/go-movie-gateway/internal/models"
)

func startServer(t *testing.T, manager *mocks.MockMovieManagerIface, logger *zap.Logger) *movieClient {
	t.Helper()

	lis := bufconn.Listen(1024 * 1024)
	srv := grpcserver.New("bufnet", logger, manager)
	go func() {
		_ = srv.Serve(lis)
	}()
	t.Cleanup(srv.GracefulStop)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)
	t.Cleanup(func() { _ = conn.Close() })

	return &movieClient{cc: conn}
}

func TestGetAllMovies(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockMovieManagerIface(ctrl)

	want := models.AggregateResult{{
		{Title: "Heat", Year: 1995, Genre: "Action", ImageURL: "heat.jpg"},
		{Title: "Her", Year: 2013, Genre: "Drama", ImageURL: "her.jpg"},
	}}
	manager.EXPECT().GetAllMoviesAsync(gomock.Any()).Return(want, nil)

	client := startServer(t, manager, zap.NewNop())

	var header metadata.MD
	got, err := client.GetAllMovies(context.Background(), grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, want, got)
	assert.NotEmpty(t, header.Get("x-request-id"))
}

func TestGetAllMoviesByGenre_Order(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockMovieManagerIface(ctrl)

	want := models.AggregateResult{
		{{Title: "Heat", Year: 1995, Genre: "Action"}},
		{},
		{{Title: "Alien", Year: 1979, Genre: "SciFi"}},
	}
	manager.EXPECT().GetAllMoviesByGenre(gomock.Any()).Return(want, nil)

	client := startServer(t, manager, zap.NewNop())

	got, err := client.GetAllMoviesByGenre(context.Background())
	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, want[0], got[0])
	assert.Empty(t, got[1])
	assert.Equal(t, want[2], got[2])
}

func TestRequestIDIsEchoed(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockMovieManagerIface(ctrl)
	manager.EXPECT().GetAllMoviesAsync(gomock.Any()).Return(models.AggregateResult{{}}, nil)

	client := startServer(t, manager, zap.NewNop())

	ctx := metadata.AppendToOutgoingContext(context.Background(), "x-request-id", "abc-123")
	var header metadata.MD
	_, err := client.GetAllMovies(ctx, grpc.Header(&header))
	require.NoError(t, err)
	assert.Equal(t, []string{"abc-123"}, header.Get("x-request-id"))
}

func TestUpstreamFailureIsInternal(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockMovieManagerIface(ctrl)
	manager.EXPECT().GetAllMoviesAsync(gomock.Any()).Return(nil, errors.New("upstream down"))

	client := startServer(t, manager, zap.NewNop())

	_, err := client.GetAllMovies(context.Background())
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "upstream down")
}

func TestPanicIsRecovered(t *testing.T) {
	ctrl := gomock.NewController(t)
	manager := mocks.NewMockMovieManagerIface(ctrl)
	manager.EXPECT().GetAllMoviesByGenre(gomock.Any()).DoAndReturn(func(context.Context) (models.AggregateResult, error) {
		panic("boom")
	})

	core, logs := observer.New(zap.ErrorLevel)
	client := startServer(t, manager, zap.New(core))

	_, err := client.GetAllMoviesByGenre(context.Background())
	require.Error(t, err)
	st, ok := status.FromError(err)
	require.True(t, ok)
	assert.Equal(t, codes.Internal, st.Code())
	assert.NotContains(t, st.Message(), "boom")

	recovered := logs.FilterMessage("panic recovered").All()
	require.Len(t, recovered, 1)
	assert.Equal(t, "boom", recovered[0].ContextMap()["panic"])

	// the server keeps serving after a recovered panic
	manager.EXPECT().GetAllMoviesByGenre(gomock.Any()).Return(models.AggregateResult{}, nil)
	_, err = client.GetAllMoviesByGenre(context.Background())
	require.NoError(t, err)
}

func TestServeAfterGracefulStop(t *testing.T) {
	ctrl := gomock.NewController(t)
	srv := grpcserver.New("bufnet", zap.NewNop(), mocks.NewMockMovieManagerIface(ctrl))

	srv.GracefulStop()

	lis := bufconn.Listen(1024)
	require.NoError(t, srv.Serve(lis))
}
