package upstream_test

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"

	"github.com/guttosm/bistpulse/internal/payload"
	"github.com/guttosm/bistpulse/internal/upstream"
)

func TestTradingViewClient_Scan_RequestShape(t *testing.T) {
	t.Parallel()

	// Arrange: a scanner stub that validates the request and answers with one row.
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "application/json", r.Header.Get("Content-Type"))
		assert.Equal(t, upstream.DefaultUserAgent, r.Header.Get("User-Agent"))

		var body map[string]any
		assert.NoError(t, json.NewDecoder(r.Body).Decode(&body))
		assert.Equal(t, []any{"BIST:ALARK", "BIST:FORTE"}, payload.Field(payload.Field(body, "symbols"), "tickers"))
		assert.Equal(t, []any{}, payload.Field(payload.Path(body, "symbols", "query"), "types"))
		assert.Equal(t, []any{"close", "change", "change_abs", "volume", "description", "name"}, payload.Field(body, "columns"))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"totalCount":1,"data":[{"s":"BIST:ALARK","d":[12.5,1.2]}]}`))
	}))
	defer server.Close()

	client := upstream.NewTradingViewClient(upstream.WithEndpoint(server.URL), upstream.WithHTTPClient(server.Client()))

	// Act
	doc, err := client.Scan(t.Context(), []string{"BIST:ALARK", "BIST:FORTE"})

	// Assert
	require.NoError(t, err)
	require.Len(t, payload.List(payload.Field(doc, "data")), 1)
}

func TestTradingViewClient_Scan_StatusError(t *testing.T) {
	t.Parallel()

	long := strings.Repeat("x", 400)
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, long, http.StatusServiceUnavailable)
	}))
	defer server.Close()

	client := upstream.NewTradingViewClient(upstream.WithEndpoint(server.URL), upstream.WithHTTPClient(server.Client()))
	_, err := client.Scan(t.Context(), []string{"BIST:ALARK"})
	require.Error(t, err)

	var uerr *upstream.Error
	require.True(t, errors.As(err, &uerr))
	require.Equal(t, http.StatusServiceUnavailable, uerr.Status)
	require.Len(t, uerr.Body, 160)
	require.Equal(t, "TradingView HTTP 503: "+strings.Repeat("x", 160), err.Error())
}

func TestTradingViewClient_Scan_EmptyErrorBody(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusTooManyRequests)
	}))
	defer server.Close()

	client := upstream.NewTradingViewClient(upstream.WithEndpoint(server.URL), upstream.WithHTTPClient(server.Client()))
	_, err := client.Scan(t.Context(), []string{"BIST:ALARK"})
	require.EqualError(t, err, "TradingView HTTP 429")
}

func TestTradingViewClient_Scan_InvalidJSON(t *testing.T) {
	t.Parallel()

	// Arrange: mock HTTP client returning an HTML page with 200.
	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		Return(&http.Response{
			StatusCode: http.StatusOK,
			Body:       io.NopCloser(strings.NewReader("<html>captcha</html>")),
		}, nil).
		Times(1)

	client := upstream.NewTradingViewClient(upstream.WithHTTPClient(httpClient))

	// Act
	_, err := client.Scan(t.Context(), []string{"BIST:ALARK"})

	// Assert
	var uerr *upstream.Error
	require.ErrorAs(t, err, &uerr)
	require.Equal(t, "TradingView", uerr.Provider)
	require.Contains(t, err.Error(), "invalid JSON")
}

func TestTradingViewClient_Scan_TransportError(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	cause := errors.New("connection refused")
	httpClient.EXPECT().Do(gomock.Any()).Return(nil, cause).Times(1)

	client := upstream.NewTradingViewClient(upstream.WithHTTPClient(httpClient))
	_, err := client.Scan(t.Context(), []string{"BIST:ALARK"})

	require.ErrorIs(t, err, cause)
	require.Equal(t, "TradingView: connection refused", err.Error())
}

func TestTradingViewClient_WithHeader(t *testing.T) {
	t.Parallel()

	ctrl := gomock.NewController(t)
	httpClient := NewMockHTTPClient(ctrl)
	httpClient.EXPECT().
		Do(gomock.Any()).
		DoAndReturn(func(req *http.Request) (*http.Response, error) {
			require.Equal(t, "bar", req.Header.Get("foo"))
			require.Equal(t, "bistpulse-test", req.Header.Get("User-Agent"))
			require.True(t, strings.HasPrefix(req.URL.String(), "http://localhost:9999/scan"))
			return &http.Response{
				StatusCode: http.StatusOK,
				Body:       io.NopCloser(strings.NewReader(`{"data":[]}`)),
			}, nil
		}).
		Times(1)

	client := upstream.NewTradingViewClient(
		upstream.WithHTTPClient(httpClient),
		upstream.WithEndpoint("http://localhost:9999/scan/"),
		upstream.WithUserAgent("bistpulse-test"),
		upstream.WithHeader(http.Header{"foo": []string{"bar"}}),
	)

	_, err := client.Scan(t.Context(), []string{"BIST:ALARK"})
	require.NoError(t, err)
}
