package middleware

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	"connectrpc.com/connect"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mmynk/groupsplit/pkg/api"
	"github.com/mmynk/groupsplit/pkg/api/apiconnect"
)

// echoGroups answers CreateGroup with the request ID it saw and fails GetGroup.
type echoGroups struct{}

func (echoGroups) CreateGroup(ctx context.Context, req *connect.Request[api.CreateGroupRequest]) (*connect.Response[api.CreateGroupResponse], error) {
	return connect.NewResponse(&api.CreateGroupResponse{
		Group: &api.Group{ID: 1, Name: GetRequestID(ctx)},
	}), nil
}

func (echoGroups) GetGroup(context.Context, *connect.Request[api.GetGroupRequest]) (*connect.Response[api.GetGroupResponse], error) {
	return nil, connect.NewError(connect.CodeNotFound, errors.New("group not found"))
}

func (echoGroups) ListGroups(context.Context, *connect.Request[api.ListGroupsRequest]) (*connect.Response[api.ListGroupsResponse], error) {
	return connect.NewResponse(&api.ListGroupsResponse{}), nil
}

func (echoGroups) DeleteGroup(context.Context, *connect.Request[api.DeleteGroupRequest]) (*connect.Response[api.DeleteGroupResponse], error) {
	return connect.NewResponse(&api.DeleteGroupResponse{}), nil
}

func setupInterceptedServer(t *testing.T, metrics *Metrics) apiconnect.GroupServiceClient {
	t.Helper()

	path, handler := apiconnect.NewGroupServiceHandler(echoGroups{},
		connect.WithInterceptors(metrics.Interceptor(), LoggingInterceptor()),
	)
	mux := http.NewServeMux()
	mux.Handle(path, handler)

	server := httptest.NewServer(mux)
	t.Cleanup(server.Close)

	return apiconnect.NewGroupServiceClient(server.Client(), server.URL)
}

func TestLoggingInterceptor(t *testing.T) {
	client := setupInterceptedServer(t, NewMetrics(prometheus.NewRegistry()))
	ctx := context.Background()

	t.Run("propagates caller request ID", func(t *testing.T) {
		req := connect.NewRequest(&api.CreateGroupRequest{Name: "ignored"})
		req.Header().Set(RequestIDHeader, "req-123")

		resp, err := client.CreateGroup(ctx, req)
		require.NoError(t, err)
		assert.Equal(t, "req-123", resp.Msg.Group.Name)
		assert.Equal(t, "req-123", resp.Header().Get(RequestIDHeader))
	})

	t.Run("generates request ID when absent", func(t *testing.T) {
		resp, err := client.CreateGroup(ctx, connect.NewRequest(&api.CreateGroupRequest{}))
		require.NoError(t, err)

		id := resp.Header().Get(RequestIDHeader)
		_, parseErr := uuid.Parse(id)
		assert.NoError(t, parseErr, "request id %q is not a uuid", id)
		assert.Equal(t, id, resp.Msg.Group.Name)
	})

	t.Run("request ID is attached to errors", func(t *testing.T) {
		req := connect.NewRequest(&api.GetGroupRequest{GroupID: 1})
		req.Header().Set(RequestIDHeader, "req-err")

		_, err := client.GetGroup(ctx, req)
		require.Error(t, err)
		assert.Equal(t, connect.CodeNotFound, connect.CodeOf(err))

		var connectErr *connect.Error
		require.True(t, errors.As(err, &connectErr))
		assert.Equal(t, "req-err", connectErr.Meta().Get(RequestIDHeader))
	})
}

func TestMetricsInterceptor(t *testing.T) {
	metrics := NewMetrics(prometheus.NewRegistry())
	client := setupInterceptedServer(t, metrics)
	ctx := context.Background()

	for range 2 {
		_, err := client.ListGroups(ctx, connect.NewRequest(&api.ListGroupsRequest{}))
		require.NoError(t, err)
	}
	_, err := client.GetGroup(ctx, connect.NewRequest(&api.GetGroupRequest{GroupID: 7}))
	require.Error(t, err)

	assert.Equal(t, 2.0, testutil.ToFloat64(
		metrics.requests.WithLabelValues(apiconnect.GroupServiceListGroupsProcedure, "ok")))
	assert.Equal(t, 1.0, testutil.ToFloat64(
		metrics.requests.WithLabelValues(apiconnect.GroupServiceGetGroupProcedure, "not_found")))
	assert.Equal(t, 2, testutil.CollectAndCount(metrics.duration))
}

func TestNewMetricsRegistersOnce(t *testing.T) {
	reg := prometheus.NewRegistry()
	NewMetrics(reg)

	assert.Panics(t, func() { NewMetrics(reg) }, "duplicate registration should panic")
}

func TestCORS(t *testing.T) {
	var reached bool
	handler := CORS("https://app.example.com")(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		reached = true
		w.WriteHeader(http.StatusTeapot)
	}))

	t.Run("preflight short-circuits", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodOptions, "/splitter.v1.GroupService/ListGroups", nil))

		assert.Equal(t, http.StatusOK, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.False(t, reached)
	})

	t.Run("other methods pass through", func(t *testing.T) {
		reached = false
		rec := httptest.NewRecorder()
		handler.ServeHTTP(rec, httptest.NewRequest(http.MethodPost, "/", nil))

		assert.Equal(t, http.StatusTeapot, rec.Code)
		assert.Equal(t, "https://app.example.com", rec.Header().Get("Access-Control-Allow-Origin"))
		assert.True(t, reached)
	})
}

func TestLoggingRecordsStatus(t *testing.T) {
	handler := Logging(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.NotFound(w, r)
	}))

	rec := httptest.NewRecorder()
	handler.ServeHTTP(rec, httptest.NewRequest(http.MethodGet, "/missing", nil))
	assert.Equal(t, http.StatusNotFound, rec.Code)
}
