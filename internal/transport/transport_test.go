package transport

import (
	"context"
	"io"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	"emprunteo/tarificateur/internal/clienterror"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCallHeadersAndBody(t *testing.T) {
	var gotContentType, gotAction, gotBody string
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotContentType = r.Header.Get("Content-Type")
		gotAction = r.Header.Get("SOAPAction")
		buf, _ := io.ReadAll(r.Body)
		gotBody = string(buf)
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer server.Close()

	tr := New(Config{SimulationURL: server.URL})
	body, err := tr.Call(context.Background(), "<envelope/>", false)
	require.NoError(t, err)

	assert.Equal(t, "<ok/>", string(body))
	assert.Equal(t, ContentType, gotContentType)
	assert.Equal(t, SOAPAction, gotAction)
	assert.Equal(t, "<envelope/>", gotBody)
}

func TestCallSelectsEndpoint(t *testing.T) {
	var simulationHits, persistentHits int
	simulation := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		simulationHits++
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer simulation.Close()
	persistent := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		persistentHits++
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer persistent.Close()

	tr := New(Config{SimulationURL: simulation.URL, PersistentURL: persistent.URL})

	_, err := tr.Call(context.Background(), "<e/>", false)
	require.NoError(t, err)
	_, err = tr.Call(context.Background(), "<e/>", true)
	require.NoError(t, err)

	assert.Equal(t, 1, simulationHits)
	assert.Equal(t, 1, persistentHits)
}

func TestCallNonSuccessStatus(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		_, _ = w.Write([]byte(strings.Repeat("x", 2000)))
	}))
	defer server.Close()

	tr := New(Config{SimulationURL: server.URL})
	_, err := tr.Call(context.Background(), "<e/>", false)
	require.Error(t, err)

	var terr *clienterror.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Equal(t, http.StatusInternalServerError, terr.StatusCode)
	assert.False(t, terr.Timeout)
	// Excerpt is truncated so large payloads never reach the logs
	assert.LessOrEqual(t, len(terr.BodyExcerpt), 512+len("..."))
}

func TestCallContextTimeout(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
		_, _ = w.Write([]byte("<ok/>"))
	}))
	defer server.Close()

	tr := New(Config{SimulationURL: server.URL})
	ctx, cancel := context.WithTimeout(context.Background(), 20*time.Millisecond)
	defer cancel()

	_, err := tr.Call(ctx, "<e/>", false)
	require.Error(t, err)

	var terr *clienterror.TransportError
	require.ErrorAs(t, err, &terr)
	assert.True(t, terr.Timeout)
	assert.Zero(t, terr.StatusCode)
}

func TestCallNetworkError(t *testing.T) {
	// Closed server to force a connection error
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {}))
	url := server.URL
	server.Close()

	tr := New(Config{SimulationURL: url})
	_, err := tr.Call(context.Background(), "<e/>", false)
	require.Error(t, err)

	var terr *clienterror.TransportError
	require.ErrorAs(t, err, &terr)
	assert.Zero(t, terr.StatusCode)
}

func TestCallMissingEndpoint(t *testing.T) {
	tr := New(Config{})
	_, err := tr.Call(context.Background(), "<e/>", true)

	var terr *clienterror.TransportError
	require.ErrorAs(t, err, &terr)
}
