package sis_test

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"roster-sync/core/sis"
)

type testRow struct {
	ID int `json:"id"`
}

// testClient builds a client against srv with short delays so retry tests
// stay fast. Mutate adjusts the config before the client is built.
func testClient(t *testing.T, srv *httptest.Server, mutate func(*sis.Config)) *sis.Client {
	t.Helper()
	cfg := sis.Config{
		BaseURL:             srv.URL,
		Token:               "test-token",
		PageSize:            2,
		MaxRetries:          3,
		InitialDelaySeconds: 1,
	}
	if mutate != nil {
		mutate(&cfg)
	}
	return sis.NewClient(cfg, sis.SessionFromConfig(cfg), zap.NewNop())
}

func TestDo_SendsBearerToken(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "Bearer test-token", r.Header.Get("Authorization"))
		assert.Equal(t, "application/json", r.Header.Get("Accept"))
		fmt.Fprint(w, `{"count":12}`)
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	n, err := c.QueryCount(context.Background(), "students", nil)
	require.NoError(t, err)
	assert.Equal(t, 12, n)
}

func TestDo_RetryAfterSecondsHonored(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			w.Header().Set("Retry-After", "2")
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"count":7}`)
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	start := time.Now()
	n, err := c.QueryCount(context.Background(), "students", nil)
	require.NoError(t, err)

	assert.Equal(t, 7, n)
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits), "expected exactly one retry")
	assert.GreaterOrEqual(t, time.Since(start), 2*time.Second, "Retry-After delay was not honored")
}

func TestDo_RetryAfterDateFlooredToOneSecond(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if atomic.AddInt32(&hits, 1) == 1 {
			// A date that is already in the past must still wait the floor,
			// not fall back to the longer backoff schedule.
			w.Header().Set("Retry-After", time.Now().UTC().Add(-time.Second).Format(http.TimeFormat))
			w.WriteHeader(http.StatusTooManyRequests)
			return
		}
		fmt.Fprint(w, `{"count":1}`)
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *sis.Config) {
		cfg.InitialDelaySeconds = 4
	})
	start := time.Now()
	_, err := c.QueryCount(context.Background(), "students", nil)
	require.NoError(t, err)

	elapsed := time.Since(start)
	assert.GreaterOrEqual(t, elapsed, time.Second)
	assert.Less(t, elapsed, 4*time.Second, "fell back to backoff instead of the floored header delay")
}

func TestDo_ServerErrorBackoffDoubles(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch atomic.AddInt32(&hits, 1) {
		case 1:
			w.WriteHeader(http.StatusBadGateway)
		case 2:
			w.WriteHeader(http.StatusServiceUnavailable)
		default:
			fmt.Fprint(w, `{"count":3}`)
		}
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	start := time.Now()
	n, err := c.QueryCount(context.Background(), "students", nil)
	require.NoError(t, err)

	assert.Equal(t, 3, n)
	assert.EqualValues(t, 3, atomic.LoadInt32(&hits))
	// First wait 1s, second wait 2s.
	assert.GreaterOrEqual(t, time.Since(start), 3*time.Second)
}

func TestDo_ClientErrorFailsImmediately(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		http.Error(w, "no such query", http.StatusBadRequest)
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	_, err := c.QueryCount(context.Background(), "students", nil)
	require.Error(t, err)

	var reqErr *sis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusBadRequest, reqErr.Status)
	assert.Equal(t, 1, reqErr.Attempts)
	assert.False(t, reqErr.Temporary())
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "client errors must not be retried")
}

func TestDo_RetryBudgetExhausted(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *sis.Config) {
		cfg.MaxRetries = 1
	})
	_, err := c.QueryCount(context.Background(), "students", nil)
	require.Error(t, err)

	var reqErr *sis.RequestError
	require.ErrorAs(t, err, &reqErr)
	assert.Equal(t, http.StatusTooManyRequests, reqErr.Status)
	assert.Equal(t, 2, reqErr.Attempts)
	assert.True(t, reqErr.Temporary())
	assert.EqualValues(t, 2, atomic.LoadInt32(&hits))
}

func TestDo_CancellationStopsRetries(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	c := testClient(t, srv, func(cfg *sis.Config) {
		cfg.InitialDelaySeconds = 30
	})
	ctx, cancel := context.WithTimeout(context.Background(), 100*time.Millisecond)
	defer cancel()

	start := time.Now()
	_, err := c.QueryCount(ctx, "students", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.DeadlineExceeded)
	assert.Less(t, time.Since(start), 5*time.Second, "cancellation did not interrupt the backoff wait")
}

func TestQueryAll_PaginatesSequentially(t *testing.T) {
	var pages []string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/query/students/count" {
			fmt.Fprint(w, `{"count":5}`)
			return
		}
		require.Equal(t, "/query/students", r.URL.Path)
		page := r.URL.Query().Get("page")
		assert.Equal(t, "2", r.URL.Query().Get("pagesize"))
		pages = append(pages, page)
		switch page {
		case "1":
			fmt.Fprint(w, `{"results":[{"id":1},{"id":2}]}`)
		case "2":
			fmt.Fprint(w, `{"results":[{"id":3},{"id":4}]}`)
		case "3":
			fmt.Fprint(w, `{"results":[{"id":5}]}`)
		default:
			t.Errorf("unexpected page %q", page)
		}
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	raw, err := c.QueryAll(context.Background(), "students", nil)
	require.NoError(t, err)
	assert.Equal(t, []string{"1", "2", "3"}, pages)

	rows, err := sis.DecodeRows[testRow](raw)
	require.NoError(t, err)
	require.Len(t, rows, 5)
	for i, row := range rows {
		assert.Equal(t, i+1, row.ID)
	}
}

func TestQueryAll_EmptyPageIsIncomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/query/students/count" {
			fmt.Fprint(w, `{"count":5}`)
			return
		}
		fmt.Fprint(w, `{"results":[]}`)
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	_, err := c.QueryAll(context.Background(), "students", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, sis.ErrIncomplete)
}

func TestQueryAll_ShortPageIsIncomplete(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/query/students/count" {
			fmt.Fprint(w, `{"count":5}`)
			return
		}
		switch r.URL.Query().Get("page") {
		case "1":
			fmt.Fprint(w, `{"results":[{"id":1},{"id":2}]}`)
		default:
			fmt.Fprint(w, `{"results":[{"id":3}]}`)
		}
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	_, err := c.QueryAll(context.Background(), "students", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, sis.ErrIncomplete)
}

func TestQueryAll_CancelledBetweenPages(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	defer cancel()

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path == "/query/students/count" {
			fmt.Fprint(w, `{"count":4}`)
			return
		}
		fmt.Fprint(w, `{"results":[{"id":1},{"id":2}]}`)
		cancel()
	}))
	defer srv.Close()

	c := testClient(t, srv, nil)
	_, err := c.QueryAll(ctx, "students", nil)
	require.Error(t, err)
	assert.ErrorIs(t, err, context.Canceled)
}

func TestStaticTokenSource(t *testing.T) {
	tok, err := sis.StaticTokenSource("abc").Token(context.Background())
	require.NoError(t, err)
	assert.Equal(t, "abc", tok)

	_, err = sis.StaticTokenSource("").Token(context.Background())
	assert.Error(t, err)
}

func TestClientCredentialsTokenSource_CachesToken(t *testing.T) {
	var hits int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		atomic.AddInt32(&hits, 1)
		require.NoError(t, r.ParseForm())
		assert.Equal(t, "client_credentials", r.FormValue("grant_type"))
		assert.Equal(t, "client-1", r.FormValue("client_id"))
		assert.Equal(t, "hunter2", r.FormValue("client_secret"))
		fmt.Fprint(w, `{"access_token":"tok-1","expires_in":3600}`)
	}))
	defer srv.Close()

	src := sis.NewClientCredentialsTokenSource(srv.URL, "client-1", "hunter2")
	first, err := src.Token(context.Background())
	require.NoError(t, err)
	second, err := src.Token(context.Background())
	require.NoError(t, err)

	assert.Equal(t, "tok-1", first)
	assert.Equal(t, "tok-1", second)
	assert.EqualValues(t, 1, atomic.LoadInt32(&hits), "second call should reuse the cached token")
}

func TestClientCredentialsTokenSource_RejectsFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "bad credentials", http.StatusUnauthorized)
	}))
	defer srv.Close()

	src := sis.NewClientCredentialsTokenSource(srv.URL, "client-1", "wrong")
	_, err := src.Token(context.Background())
	assert.Error(t, err)
}

func TestSessionFromConfig(t *testing.T) {
	static := sis.SessionFromConfig(sis.Config{BaseURL: "https://sis.example.org/api/", Token: "abc"})
	assert.Equal(t, "https://sis.example.org/api", static.BaseURL)
	_, ok := static.Tokens.(sis.StaticTokenSource)
	assert.True(t, ok)

	oauth := sis.SessionFromConfig(sis.Config{
		BaseURL:  "https://sis.example.org/api",
		TokenURL: "https://sis.example.org/oauth/token",
		ClientID: "client-1",
	})
	_, ok = oauth.Tokens.(*sis.ClientCredentialsTokenSource)
	assert.True(t, ok)
}

func TestRequestError_Message(t *testing.T) {
	withStatus := &sis.RequestError{Method: "POST", Path: "/query/students", Status: 503, Attempts: 4}
	assert.Contains(t, withStatus.Error(), "503")
	assert.Contains(t, withStatus.Error(), "4 attempt")

	netErr := &sis.RequestError{Method: "POST", Path: "/query/students", Attempts: 4, Err: errors.New("connection refused")}
	assert.Contains(t, netErr.Error(), "connection refused")
	assert.True(t, netErr.Temporary())
}
