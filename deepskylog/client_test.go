package deepskylog

import (
	"context"
	"io"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const testUser = "alice"

func testClient(baseURL string, metrics *Metrics) *Client {
	return NewClient(baseURL, 5*time.Second, slog.New(slog.NewTextHandler(io.Discard, nil)), metrics)
}

func TestClient_Instruments_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/instrument/alice", r.URL.Path)
		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{
			"1": {"id":1,"name":"8in Dobsonian","diameter":203,"fd":6,"type":3,"fixedMagnification":null},
			"4": {"id":4,"name":"Fujinon 25x150","diameter":150,"type":1,"fixedMagnification":25}
		}`))
	}))
	defer srv.Close()

	metrics := NewMetricsForTesting()
	c := testClient(srv.URL, metrics)

	instruments, err := c.Instruments(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, instruments, 2)

	dob := instruments[1]
	assert.Equal(t, "8in Dobsonian", dob.Name)
	assert.Equal(t, Reflector, dob.Type)
	assert.Equal(t, 203.0, dob.Diameter)
	assert.Equal(t, 6.0, dob.FD)
	assert.Nil(t, dob.FixedMagnification)

	bino := instruments[4]
	assert.Equal(t, Binoculars, bino.Type)
	require.NotNil(t, bino.FixedMagnification)
	assert.Equal(t, 25.0, *bino.FixedMagnification)

	assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("instrument", "success")))
	assert.GreaterOrEqual(t, testutil.CollectAndCount(metrics.RequestDuration), 1)
}

func TestClient_Eyepieces_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/eyepieces/alice", r.URL.Path)
		_, _ = w.Write([]byte(`{"2": {"id":2,"name":"Nagler 31mm","focal_length_mm":31,"eyepieceactive":1}}`))
	}))
	defer srv.Close()

	eyepieces, err := testClient(srv.URL, nil).Eyepieces(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, eyepieces, 1)
	assert.Equal(t, 31.0, eyepieces[2].FocalLength)
	assert.True(t, eyepieces[2].Active)
}

func TestClient_Lenses_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/lenses/alice", r.URL.Path)
		_, _ = w.Write([]byte(`{"9": {"id":9,"name":"TeleVue Powermate","factor":2.5}}`))
	}))
	defer srv.Close()

	lenses, err := testClient(srv.URL, nil).Lenses(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, 2.5, lenses[9].Factor)
}

func TestClient_Filters_Success(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/filters/alice", r.URL.Path)
		_, _ = w.Write([]byte(`{"3": {"id":3,"name":"OIII","type":4}}`))
	}))
	defer srv.Close()

	filters, err := testClient(srv.URL, nil).Filters(context.Background(), testUser)
	require.NoError(t, err)
	assert.Equal(t, "OIII", filters[3].Name)
	assert.Equal(t, 4, filters[3].Type)
}

func TestClient_ArrayResponse(t *testing.T) {
	// Older API versions returned arrays of records; each must carry an id.
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		_, _ = w.Write([]byte(`[{"id":5,"name":"UHC","type":2},{"id":8,"name":"H-beta","type":5}]`))
	}))
	defer srv.Close()

	filters, err := testClient(srv.URL, nil).Filters(context.Background(), testUser)
	require.NoError(t, err)
	require.Len(t, filters, 2)
	assert.Equal(t, "UHC", filters[5].Name)
	assert.Equal(t, "H-beta", filters[8].Name)
}

func TestClient_EmptyEquipment(t *testing.T) {
	// "No equipment" is success, distinguished from a malformed body by the
	// body still parsing as a JSON object.
	for _, body := range []string{`{}`, `[]`} {
		t.Run(body, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(body))
			}))
			defer srv.Close()

			instruments, err := testClient(srv.URL, nil).Instruments(context.Background(), testUser)
			require.NoError(t, err)
			assert.Empty(t, instruments)
		})
	}
}

func TestClient_AuthenticationError(t *testing.T) {
	for _, status := range []int{http.StatusUnauthorized, http.StatusForbidden} {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
			w.WriteHeader(status)
		}))
		defer srv.Close()

		metrics := NewMetricsForTesting()
		_, err := testClient(srv.URL, metrics).Instruments(context.Background(), testUser)

		var authErr *AuthenticationError
		require.ErrorAs(t, err, &authErr, "status %d", status)
		assert.Equal(t, testUser, authErr.Username)
		assert.Equal(t, status, authErr.StatusCode)
		assert.Contains(t, err.Error(), "alice")
		assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("instrument", "auth_error")))
	}
}

func TestClient_ServerError(t *testing.T) {
	tests := []struct {
		name   string
		status int
	}{
		{"internal server error", http.StatusInternalServerError},
		{"bad gateway", http.StatusBadGateway},
		{"unknown user", http.StatusNotFound},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				w.WriteHeader(tt.status)
			}))
			defer srv.Close()

			_, err := testClient(srv.URL, nil).Eyepieces(context.Background(), testUser)

			var srvErr *ServerError
			require.ErrorAs(t, err, &srvErr)
			assert.Equal(t, tt.status, srvErr.StatusCode)
			assert.Equal(t, "eyepieces", srvErr.Resource)
		})
	}
}

func TestClient_MalformedResponse(t *testing.T) {
	tests := []struct {
		name string
		body string
	}{
		{"not JSON", `<html>maintenance</html>`},
		{"truncated JSON", `{"1": {"id":1`},
		{"top-level string", `"hello"`},
		{"top-level number", `42`},
		{"empty body", ``},
		{"non-numeric item ID", `{"first": {"id":1,"name":"x"}}`},
		{"item is not an object", `{"1": 5}`},
		{"array item without id", `[{"name":"no id here"}]`},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
				_, _ = w.Write([]byte(tt.body))
			}))
			defer srv.Close()

			metrics := NewMetricsForTesting()
			_, err := testClient(srv.URL, metrics).Instruments(context.Background(), testUser)

			var malErr *MalformedResponseError
			require.ErrorAs(t, err, &malErr)
			assert.Equal(t, "instrument", malErr.Resource)
			assert.Contains(t, err.Error(), "instrument")
			assert.Equal(t, 1.0, testutil.ToFloat64(metrics.Requests.WithLabelValues("instrument", "malformed")))
		})
	}
}

func TestClient_EmptyUsername(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(_ http.ResponseWriter, _ *http.Request) {
		t.Fatal("no request should be sent for an empty username")
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, nil).Instruments(context.Background(), "")
	require.Error(t, err)
}

func TestClient_UsernameEscaped(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/instrument/jan%20de%20wit", r.URL.EscapedPath())
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	_, err := testClient(srv.URL, nil).Instruments(context.Background(), "jan de wit")
	require.NoError(t, err)
}

func TestClient_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, _ *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte(`{}`))
	}))
	defer srv.Close()

	c := NewClient(srv.URL, 50*time.Millisecond, slog.New(slog.NewTextHandler(io.Discard, nil)), nil)
	_, err := c.Instruments(context.Background(), testUser)

	var transErr *TransportError
	require.ErrorAs(t, err, &transErr)
	assert.Equal(t, "instrument", transErr.Resource)
}

func TestNewClient_Defaults(t *testing.T) {
	c := NewClient("", 0, nil, nil)
	assert.Equal(t, DefaultBaseURL, c.baseURL)
	assert.Equal(t, DefaultTimeout, c.httpClient.Timeout)
	assert.NotNil(t, c.logger)

	trailing := NewClient("https://example.org/", 0, nil, nil)
	assert.Equal(t, "https://example.org", trailing.baseURL)
}
