package server

import (
	"bytes"
	"context"
	"io"
	"net"
	"net/http"
	"strconv"
	"testing"
	"time"

	"github.com/MKhiriev/infomilo/internal/app"
	"github.com/MKhiriev/infomilo/internal/handler"
	"github.com/MKhiriev/infomilo/internal/logger"
	"github.com/MKhiriev/infomilo/internal/service"
	"github.com/MKhiriev/infomilo/models"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestProfile(port int) *models.Profile {
	return &models.Profile{
		Environment: "home",
		Description: "Casa",
		Development: models.Development{Port: port, Host: "127.0.0.1", DebugMode: true},
		Network:     models.Network{Proxy: true},
	}
}

func newTestServer(t *testing.T, p *models.Profile, log *logger.Logger) Server {
	t.Helper()

	services, err := service.NewServices(app.NewContext(p), log)
	require.NoError(t, err)
	handlers, err := handler.NewHandlers(services, log)
	require.NoError(t, err)

	srv, err := NewServer(handlers, p, log)
	require.NoError(t, err)
	return srv
}

func TestNewServer_Errors(t *testing.T) {
	p := newTestProfile(0)

	_, err := NewServer(nil, p, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)

	_, err = NewServer(&handler.Handlers{}, p, logger.Nop())
	assert.ErrorIs(t, err, errNoServersAreCreated)
}

func TestServer_ServesAndShutsDown(t *testing.T) {
	var logBuf bytes.Buffer
	log := &logger.Logger{Logger: zerolog.New(&logBuf)}
	srv := newTestServer(t, newTestProfile(0), log)

	addr, err := srv.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- srv.Serve(ctx) }()

	resp, err := http.Get("http://" + addr.String() + "/api/status")
	require.NoError(t, err)
	body, _ := io.ReadAll(resp.Body)
	resp.Body.Close()
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), `"status":"running"`)

	cancel()

	select {
	case err = <-done:
		require.NoError(t, err)
	case <-time.After(5 * time.Second):
		t.Fatal("server did not shut down")
	}

	_, err = net.DialTimeout("tcp", addr.String(), 200*time.Millisecond)
	assert.Error(t, err, "listener must be closed after shutdown")

	out := logBuf.String()
	assert.Contains(t, out, app.MsgStarting)
	assert.Contains(t, out, app.MsgServerStarted)
	assert.Contains(t, out, "http://127.0.0.1:"+strconv.Itoa(addr.(*net.TCPAddr).Port))
	assert.Contains(t, out, `"proxy":"Configurado"`)
	assert.Contains(t, out, "Modo debug: ACTIVADO")
	assert.Contains(t, out, app.MsgShuttingDown)
	assert.Contains(t, out, app.MsgServerClosed)
}

func TestServer_InFlightRequestCompletes(t *testing.T) {
	release := make(chan struct{})
	entered := make(chan struct{})
	slow := http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		close(entered)
		<-release
		_, _ = w.Write([]byte("done"))
	})

	s := &server{
		httpServer: newHTTPServer(slow, "127.0.0.1:0"),
		profile:    newTestProfile(0),
		logger:     logger.Nop(),
	}
	addr, err := s.Listen()
	require.NoError(t, err)

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- s.Serve(ctx) }()

	got := make(chan string, 1)
	go func() {
		resp, err := http.Get("http://" + addr.String() + "/")
		if err != nil {
			got <- err.Error()
			return
		}
		defer resp.Body.Close()
		b, _ := io.ReadAll(resp.Body)
		got <- string(b)
	}()

	<-entered
	cancel()

	select {
	case <-done:
		t.Fatal("shutdown finished before the in-flight request")
	case <-time.After(100 * time.Millisecond):
	}

	close(release)
	assert.Equal(t, "done", <-got)
	require.NoError(t, <-done)
}

func TestServer_BindError(t *testing.T) {
	busy, err := net.Listen("tcp", "127.0.0.1:0")
	require.NoError(t, err)
	defer busy.Close()

	port := busy.Addr().(*net.TCPAddr).Port
	srv := newTestServer(t, newTestProfile(port), logger.Nop())

	err = srv.Run(context.Background())

	assert.ErrorIs(t, err, ErrListen)
}

func TestServer_ServeWithoutListen(t *testing.T) {
	srv := newTestServer(t, newTestProfile(0), logger.Nop())

	err := srv.Serve(context.Background())

	assert.ErrorIs(t, err, ErrNotListening)
}
