package client

import (
	"bytes"
	"context"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gbasileGP/profgetter/internal/config"
	"github.com/gbasileGP/profgetter/internal/model"
	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestClient(t *testing.T, handler http.HandlerFunc) *StatsClient {
	t.Helper()
	srv := httptest.NewServer(handler)
	t.Cleanup(srv.Close)

	logger := logrus.New()
	logger.SetOutput(io.Discard)

	return NewStatsClient(&config.Config{APIEndpoint: srv.URL + "/", Timeout: time.Second}, logger)
}

func TestGetPlayerStats(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		assert.Equal(t, http.MethodGet, r.Method)
		assert.Empty(t, r.Header.Get("Authorization"))
		w.Header().Set("Content-Type", "application/json")
		_, _ = io.WriteString(w, `{"data":[{"characters":{"u1":{"type":"Archer","professions":{"mining":{"level":12,"xp":45.5}}}}}]}`)
	})

	stats, err := c.GetPlayerStats(context.Background(), "Bob")
	require.NoError(t, err)
	assert.Equal(t, "/v2/player/Bob/stats", gotPath)

	require.Len(t, stats.Data, 1)
	ch, ok := stats.Data[0].Characters.Get("u1")
	require.True(t, ok)
	assert.Equal(t, "Archer", ch.Type)
	mining, ok := ch.Professions.Get("mining")
	require.True(t, ok)
	assert.Equal(t, model.ProfessionStats{Level: 12, XP: 45.5}, mining)
}

func TestGetPlayerStatsEscapesPlayer(t *testing.T) {
	var gotPath string
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.EscapedPath()
		_, _ = io.WriteString(w, `{"data":[]}`)
	})

	_, err := c.GetPlayerStats(context.Background(), "a b/c")
	require.NoError(t, err)
	assert.Equal(t, "/v2/player/a%20b%2Fc/stats", gotPath)
}

func TestGetPlayerStatsErrors(t *testing.T) {
	tests := []struct {
		name    string
		status  int
		body    string
		checkFn func(t *testing.T, err error)
	}{
		{
			name:   "non 2xx status",
			status: http.StatusNotFound,
			body:   `{"error":"not found"}`,
			checkFn: func(t *testing.T, err error) {
				var netErr *model.NetworkError
				require.True(t, errors.As(err, &netErr))
				assert.Equal(t, http.StatusNotFound, netErr.StatusCode)
				assert.Equal(t, "Bob", netErr.Player)
			},
		},
		{
			name:   "malformed json",
			status: http.StatusOK,
			body:   `{"data":[`,
			checkFn: func(t *testing.T, err error) {
				var parseErr *model.ParseError
				assert.True(t, errors.As(err, &parseErr))
			},
		},
		{
			name:   "wrong shape",
			status: http.StatusOK,
			body:   `{"data":{"characters":1}}`,
			checkFn: func(t *testing.T, err error) {
				assert.ErrorIs(t, err, model.ErrInvalidData)
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) {
				w.WriteHeader(tt.status)
				_, _ = io.WriteString(w, tt.body)
			})

			stats, err := c.GetPlayerStats(context.Background(), "Bob")
			assert.Nil(t, stats)
			require.Error(t, err)
			tt.checkFn(t, err)
		})
	}
}

func TestGetPlayerStatsTransportFailure(t *testing.T) {
	srv := httptest.NewServer(http.NotFoundHandler())
	url := srv.URL
	srv.Close()

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := NewStatsClient(&config.Config{APIEndpoint: url, Timeout: time.Second}, logger)

	_, err := c.GetPlayerStats(context.Background(), "Bob")
	var netErr *model.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
}

func TestGetPlayerStatsRejectsEmptyPlayer(t *testing.T) {
	called := false
	c := newTestClient(t, func(w http.ResponseWriter, r *http.Request) { called = true })

	_, err := c.GetPlayerStats(context.Background(), "  ")
	assert.ErrorIs(t, err, model.ErrInvalidData)
	assert.False(t, called)
}

func TestGetPlayerStatsTimeout(t *testing.T) {
	release := make(chan struct{})
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		select {
		case <-release:
		case <-time.After(2 * time.Second):
		}
		_, _ = io.WriteString(w, `{"data":[]}`)
	}))
	t.Cleanup(srv.Close)
	t.Cleanup(func() { close(release) })

	logger := logrus.New()
	logger.SetOutput(io.Discard)
	c := NewStatsClient(&config.Config{APIEndpoint: srv.URL, Timeout: 50 * time.Millisecond}, logger)

	start := time.Now()
	_, err := c.GetPlayerStats(context.Background(), "Bob")
	assert.Less(t, time.Since(start), time.Second)

	var netErr *model.NetworkError
	require.True(t, errors.As(err, &netErr))
	assert.Zero(t, netErr.StatusCode)
}

func TestGetPlayerStatsLogsResponseBody(t *testing.T) {
	const body = `{"data":[{"characters":{"u1":{"type":"Archer"}}}]}`
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, _ = io.WriteString(w, body)
	}))
	t.Cleanup(srv.Close)

	var logs bytes.Buffer
	logger := logrus.New()
	logger.SetOutput(&logs)
	logger.SetLevel(logrus.DebugLevel)
	logger.SetFormatter(&logrus.JSONFormatter{})
	c := NewStatsClient(&config.Config{APIEndpoint: srv.URL, Timeout: time.Second}, logger)

	_, err := c.GetPlayerStats(context.Background(), "Bob")
	require.NoError(t, err)
	assert.Contains(t, logs.String(), `"msg":"client: GetPlayerStats - Response data"`)
	assert.Contains(t, logs.String(), `\"type\":\"Archer\"`)
}
