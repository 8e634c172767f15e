package command

import (
	"bytes"
	"context"
	"net/http"
	"net/http/httptest"
	"place-distance-service/internal/client"
	"place-distance-service/internal/form"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newTestForm(t *testing.T) (*form.Form, *bytes.Buffer) {
	t.Helper()

	mux := http.NewServeMux()
	mux.HandleFunc("/api/geocode", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		switch r.URL.Query().Get("query") {
		case "Seoul Station":
			w.Write([]byte(`{"found":true,"address":"Seoul Station","lat":37.5547,"lon":126.9707}`))
		case "Gangnam Station":
			w.Write([]byte(`{"found":true,"address":"Gangnam Station","lat":37.4979,"lon":127.0276}`))
		default:
			w.Write([]byte(`{"found":false,"message":"Location not found"}`))
		}
	})
	mux.HandleFunc("/api/calculate", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"distance_km":8.09}`))
	})
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)

	c, err := client.New(srv.URL, 5*time.Second)
	require.NoError(t, err)

	var out bytes.Buffer
	return form.New(c, form.NewTextView(&out)), &out
}

func TestRunShell_SearchAndCalculate(t *testing.T) {
	f, out := newTestForm(t)

	in := strings.NewReader("start Seoul Station\nend Gangnam Station\ncalc\nstatus\nquit\n")
	err := runShell(context.Background(), in, out, f)
	require.NoError(t, err)

	st := f.Snapshot()
	assert.True(t, st.Ready)
	assert.True(t, st.ResultVisible)
	require.NotNil(t, st.Result)
	assert.Equal(t, "8.09", st.Result.DistanceKm.String())
	assert.Contains(t, out.String(), "Distance: 8.09 km")
	assert.Contains(t, out.String(), "route=37.5547%2C126.9707%3B37.4979%2C127.0276")
}

func TestRunShell_CalcBeforeReady(t *testing.T) {
	f, out := newTestForm(t)

	in := strings.NewReader("start Seoul Station\ncalc\n")
	require.NoError(t, runShell(context.Background(), in, out, f))

	assert.Contains(t, out.String(), "Resolve both places first.")
	assert.False(t, f.Snapshot().ResultVisible)
}

func TestRunShell_UnknownCommand(t *testing.T) {
	f, out := newTestForm(t)

	require.NoError(t, runShell(context.Background(), strings.NewReader("jump\n"), out, f))
	assert.Contains(t, out.String(), `unknown command "jump"`)
}

func TestRunRoute(t *testing.T) {
	f, out := newTestForm(t)

	err := runRoute(context.Background(), f, "Seoul Station", "Gangnam Station")
	require.NoError(t, err)
	assert.Contains(t, out.String(), "Distance: 8.09 km")
}

func TestRunRoute_NotFound(t *testing.T) {
	f, _ := newTestForm(t)

	err := runRoute(context.Background(), f, "Seoul Station", "Atlantis")
	require.Error(t, err)
	assert.Contains(t, err.Error(), form.MsgNotFound)
	assert.False(t, f.Ready())
}
