package grpc

import (
	"bytes"
	"context"
	"net"
	"testing"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/goleak"
	"google.golang.org/grpc"
	"google.golang.org/grpc/credentials/insecure"
	healthpb "google.golang.org/grpc/health/grpc_health_v1"
	"google.golang.org/grpc/test/bufconn"

	"github.com/MKhiriev/go-site-keeper/internal/logger"
	"github.com/MKhiriev/go-site-keeper/internal/service"
)

func startBufServer(t *testing.T, h *Handler) (healthpb.HealthClient, func()) {
	t.Helper()

	lis := bufconn.Listen(1 << 20)
	srv := grpc.NewServer(grpc.UnaryInterceptor(h.UnaryLoggingInterceptor()))
	h.Register(srv)

	go srv.Serve(lis)

	conn, err := grpc.NewClient("passthrough:///bufnet",
		grpc.WithContextDialer(func(ctx context.Context, _ string) (net.Conn, error) {
			return lis.DialContext(ctx)
		}),
		grpc.WithTransportCredentials(insecure.NewCredentials()),
	)
	require.NoError(t, err)

	stop := func() {
		conn.Close()
		srv.Stop()
	}

	return healthpb.NewHealthClient(conn), stop
}

func TestHandler_HealthServing(t *testing.T) {
	defer goleak.VerifyNone(t, goleak.IgnoreCurrent())

	var buf bytes.Buffer
	h := NewHandler(&service.Services{}, &logger.Logger{Logger: zerolog.New(&buf)})

	func() {
		client, stop := startBufServer(t, h)
		defer stop()
		ctx := context.Background()

		for _, name := range []string{"", SiteConfigServiceName} {
			resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: name})
			require.NoError(t, err)
			assert.Equal(t, healthpb.HealthCheckResponse_SERVING, resp.GetStatus())
		}

		h.SetServing(false)
		resp, err := client.Check(ctx, &healthpb.HealthCheckRequest{Service: SiteConfigServiceName})
		require.NoError(t, err)
		assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
	}()

	assert.Contains(t, buf.String(), `"method":"/grpc.health.v1.Health/Check"`)
	assert.Contains(t, buf.String(), `"code":"OK"`)
}

func TestHandler_NotServingWithoutServices(t *testing.T) {
	h := NewHandler(nil, logger.Nop())
	client, stop := startBufServer(t, h)
	defer stop()

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}

func TestHandler_ShutdownReportsNotServing(t *testing.T) {
	h := NewHandler(&service.Services{}, logger.Nop())
	client, stop := startBufServer(t, h)
	defer stop()

	h.Shutdown()
	h.SetServing(true)

	resp, err := client.Check(context.Background(), &healthpb.HealthCheckRequest{})
	require.NoError(t, err)
	assert.Equal(t, healthpb.HealthCheckResponse_NOT_SERVING, resp.GetStatus())
}
