package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNew_DefaultsFromEnvironment(t *testing.T) {
	t.Setenv("ROADMAP_API_URL", "")
	t.Setenv("ROADMAP_DEBUG", "")
	t.Setenv("DEBUG", "")

	c, err := New(WithLogger(zerolog.Nop()), WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)
	assert.Equal(t, DefaultBaseURL, c.BaseURL())
	assert.Equal(t, DefaultTimeout, c.http.GetClient().Timeout)
	assert.Equal(t, "application/json", c.http.Header.Get("Content-Type"))
	_, isDebug := c.http.GetClient().Transport.(*debugTransport)
	assert.False(t, isDebug)

	// a relative base cannot be dialled; the failure comes from the transport
	_, err = c.ListRoadmaps(context.Background())
	require.Error(t, err)
	assert.Equal(t, 0, StatusCode(err))
}

func TestNew_BaseURLFromEnvironment(t *testing.T) {
	t.Setenv("ROADMAP_API_URL", "http://roadmaps.internal:8000/api")
	c, err := New(WithLogger(zerolog.Nop()), WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)
	assert.Equal(t, "http://roadmaps.internal:8000/api", c.BaseURL())

	c, err = New(WithBaseURL("http://override/api/"), WithLogger(zerolog.Nop()), WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)
	assert.Equal(t, "http://override/api", c.BaseURL())
}

func TestNew_ConfigErrorPropagates(t *testing.T) {
	t.Setenv("ROADMAP_DEBUG", "definitely")
	c, err := New()
	assert.Nil(t, c)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to process environment variables")
}

func TestNew_AutoEnableDebugViaEnv(t *testing.T) {
	t.Setenv("ROADMAP_DEBUG", "")
	t.Setenv("DEBUG", "true")
	c, err := New(WithLogger(zerolog.Nop()), WithMetrics(prometheus.NewRegistry()))
	require.NoError(t, err)
	if _, ok := c.http.GetClient().Transport.(*debugTransport); !ok {
		t.Fatalf("expected debugTransport to be installed when DEBUG=true")
	}
}

func TestDebugTransport_WrapsInjectedTransport(t *testing.T) {
	var called bool
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		called = true
		return &http.Response{StatusCode: http.StatusNoContent, Body: http.NoBody, Header: make(http.Header), Request: r}, nil
	})
	c := newTestClient(t, WithBaseURL("http://stub/api"), WithDebugLogging(true), WithTransport(rt))
	dt, ok := c.http.GetClient().Transport.(*debugTransport)
	require.True(t, ok)
	assert.NotNil(t, dt.base)

	require.NoError(t, c.DeleteRoadmap(context.Background(), "5"))
	assert.True(t, called, "base transport not invoked")
}

func TestDebugTransport_ErrorPath(t *testing.T) {
	rt := roundTripFunc(func(r *http.Request) (*http.Response, error) {
		return nil, context.DeadlineExceeded
	})
	c := newTestClient(t, WithBaseURL("http://stub/api"), WithDebugLogging(true), WithTransport(rt))
	err := c.DeleteRoadmap(context.Background(), "5")
	assert.ErrorIs(t, err, context.DeadlineExceeded)
}

func TestOptions_RejectInvalid(t *testing.T) {
	c := &Client{}
	assert.Error(t, WithBaseURL("  ")(c))
	assert.Error(t, WithTransport(nil)(c))

	_, err := New(WithBaseURL(""))
	assert.Error(t, err)
}

func TestDefaultMetricsShared(t *testing.T) {
	a, err := New(WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	b, err := New(WithLogger(zerolog.Nop()))
	require.NoError(t, err)
	assert.Same(t, a.metrics, b.metrics)
}

func TestNew_CookiesAreNotReplayed(t *testing.T) {
	var (
		mu      sync.Mutex
		cookies []string
	)
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		cookies = append(cookies, r.Header.Get("Cookie"))
		mu.Unlock()
		http.SetCookie(w, &http.Cookie{Name: "session", Value: "abc", Path: "/"})
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"roadmaps":[],"total":0}`))
	}))
	defer srv.Close()

	c := newTestClient(t, WithBaseURL(srv.URL+"/api"))
	assert.Nil(t, c.http.GetClient().Jar)
	for i := 0; i < 2; i++ {
		_, err := c.ListRoadmaps(context.Background())
		require.NoError(t, err)
	}

	mu.Lock()
	defer mu.Unlock()
	assert.Equal(t, []string{"", ""}, cookies)
}
