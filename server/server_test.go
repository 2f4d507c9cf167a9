package server_test

import (
	"encoding/json"
	"os"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/plus3/blockfall/config"
	"github.com/plus3/blockfall/server"
	"github.com/plus3/blockfall/tetris"
)

var plainGlyphs = tetris.Glyphs{Empty: '.', Solid: '#'}

// seededConfig fixes the process-wide session's spawns for the whole package.
var seededConfig = func() *config.Config {
	cfg := config.Default()
	cfg.Seed = 42
	return cfg
}()

func TestMain(m *testing.M) {
	tetris.ConfigureDefault(seededConfig.SessionOptions(0, nil)...)
	os.Exit(m.Run())
}

func newTestServer(t *testing.T, limit int) *httptest.Server {
	t.Helper()
	registry := server.NewRegistry(limit, func(id server.SessionId) *tetris.Session {
		return tetris.NewSession(tetris.WithPiece(tetris.Piece{
			Shape:    tetris.ShapeO,
			Position: tetris.Point{X: 4, Y: 2},
		}))
	})
	ts := httptest.NewServer(server.NewRouter(registry, plainGlyphs, nil))
	t.Cleanup(ts.Close)
	return ts
}

func do(t *testing.T, method, url string) *http.Response {
	t.Helper()
	req, err := http.NewRequest(method, url, nil)
	require.NoError(t, err)
	resp, err := http.DefaultClient.Do(req)
	require.NoError(t, err)
	t.Cleanup(func() { resp.Body.Close() })
	return resp
}

func decode[T any](t *testing.T, resp *http.Response) T {
	t.Helper()
	var v T
	require.NoError(t, json.NewDecoder(resp.Body).Decode(&v))
	return v
}

func createSession(t *testing.T, ts *httptest.Server) string {
	t.Helper()
	resp := do(t, http.MethodPost, ts.URL+"/api/sessions")
	require.Equal(t, http.StatusCreated, resp.StatusCode)
	body := decode[map[string]uint64](t, resp)
	return ts.URL + "/api/sessions/" + strconv.FormatUint(body["id"], 10)
}

func TestHealth(t *testing.T) {
	ts := newTestServer(t, 4)

	resp := do(t, http.MethodGet, ts.URL+"/api/health")
	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "ok", decode[map[string]string](t, resp)["status"])
}

func TestSessionLifecycle(t *testing.T) {
	ts := newTestServer(t, 4)
	url := createSession(t, ts)

	resp := do(t, http.MethodGet, url+"/frame")
	require.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Equal(t, "text/plain; charset=utf-8", resp.Header.Get("Content-Type"))

	for _, action := range []string{"left", "tick", "rotate-left", "rotate-right", "right", "right"} {
		resp := do(t, http.MethodPost, url+"/"+action)
		assert.Equal(t, http.StatusNoContent, resp.StatusCode, action)
	}

	state := decode[server.StateResponse](t, do(t, http.MethodGet, url))
	assert.Equal(t, server.PieceResponse{Shape: "O", Orientation: 0, X: 5, Y: 3}, state.Piece)
	assert.Equal(t, uint64(1), state.Stats.Ticks)
	assert.NotZero(t, state.Id)
	assert.False(t, state.AtTop)

	lines := strings.Split(state.Frame, "\n")
	assert.Equal(t, "..........", lines[1])
	assert.Equal(t, ".....##...", lines[2])
	assert.Equal(t, ".....##...", lines[3])

	resp = do(t, http.MethodDelete, url)
	assert.Equal(t, http.StatusNoContent, resp.StatusCode)

	resp = do(t, http.MethodGet, url+"/frame")
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	resp = do(t, http.MethodDelete, url)
	assert.Equal(t, http.StatusNotFound, resp.StatusCode)
}

func TestSessionErrors(t *testing.T) {
	ts := newTestServer(t, 1)
	url := createSession(t, ts)

	t.Run("unknown action", func(t *testing.T) {
		resp := do(t, http.MethodPost, url+"/hold")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
		assert.Contains(t, decode[map[string]string](t, resp)["error"], "hold")
	})

	t.Run("malformed id", func(t *testing.T) {
		resp := do(t, http.MethodGet, ts.URL+"/api/sessions/abc")
		assert.Equal(t, http.StatusBadRequest, resp.StatusCode)
	})

	t.Run("unknown id", func(t *testing.T) {
		resp := do(t, http.MethodPost, ts.URL+"/api/sessions/999/tick")
		assert.Equal(t, http.StatusNotFound, resp.StatusCode)
	})

	t.Run("limit", func(t *testing.T) {
		resp := do(t, http.MethodPost, ts.URL+"/api/sessions")
		assert.Equal(t, http.StatusServiceUnavailable, resp.StatusCode)

		count := decode[map[string]int](t, do(t, http.MethodGet, ts.URL+"/api/sessions"))
		assert.Equal(t, 1, count["count"])
	})
}

func TestSessionsAreIndependent(t *testing.T) {
	ts := newTestServer(t, 4)
	a := createSession(t, ts)
	b := createSession(t, ts)
	assert.NotEqual(t, a, b)

	do(t, http.MethodPost, a+"/tick")
	do(t, http.MethodPost, a+"/tick")

	stateA := decode[server.StateResponse](t, do(t, http.MethodGet, a))
	stateB := decode[server.StateResponse](t, do(t, http.MethodGet, b))
	assert.Equal(t, 4, stateA.Piece.Y)
	assert.Equal(t, 2, stateB.Piece.Y)
}

func TestDefaultSessionUsesConfiguredSeed(t *testing.T) {
	ts := newTestServer(t, 1)
	want := tetris.NewSession(seededConfig.SessionOptions(0, nil)...).Piece()

	// A tick on the empty grid only moves the first piece down, so shape and
	// orientation still come from the first spawn.
	for range 2 {
		state := decode[server.StateResponse](t, do(t, http.MethodGet, ts.URL+"/api/state"))
		assert.Equal(t, want.Shape.String(), state.Piece.Shape)
		assert.Equal(t, int(want.Orientation), state.Piece.Orientation)
		assert.Equal(t, uint64(1), state.Stats.Spawns)
	}
}

func TestDefaultSessionRoutes(t *testing.T) {
	ts := newTestServer(t, 1)

	resp := do(t, http.MethodGet, ts.URL+"/api/frame")
	require.Equal(t, http.StatusOK, resp.StatusCode)

	for _, action := range tetris.Actions() {
		resp := do(t, http.MethodPost, ts.URL+"/api/"+action.String())
		assert.Equal(t, http.StatusNoContent, resp.StatusCode, action.String())
	}

	state := decode[server.StateResponse](t, do(t, http.MethodGet, ts.URL+"/api/state"))
	assert.GreaterOrEqual(t, state.Stats.Ticks, uint64(1))
	assert.Equal(t, tetris.Height-tetris.HiddenRows-1, strings.Count(state.Frame, "\n"))
}

func TestRegistryConcurrentAccess(t *testing.T) {
	registry := server.NewRegistry(8, func(server.SessionId) *tetris.Session {
		return tetris.NewSession()
	})
	id, err := registry.Create()
	require.NoError(t, err)

	var wg sync.WaitGroup
	for range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for range 100 {
				assert.NoError(t, registry.Do(id, (*tetris.Session).Tick))
			}
		}()
	}
	wg.Wait()

	require.NoError(t, registry.Do(id, func(s *tetris.Session) {
		assert.Equal(t, uint64(400), s.Stats().Ticks)
	}))
	assert.ErrorIs(t, registry.Do(id+1, (*tetris.Session).Tick), server.ErrSessionNotFound)
	assert.NoError(t, registry.Delete(id))
	assert.ErrorIs(t, registry.Delete(id), server.ErrSessionNotFound)
	assert.Equal(t, 0, registry.Len())
}
