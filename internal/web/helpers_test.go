package web

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gorilla/mux"
	"github.com/justinabrahms/hotseat/internal/config"
	"github.com/stretchr/testify/require"
)

func testConfig() *config.Config {
	return &config.Config{
		Server: config.ServerConfig{
			Host: "localhost",
			Port: 8080,
		},
		Game: config.GameConfig{MaxSessions: 4},
		Render: config.RenderConfig{
			SquareSize: 16,
			LightColor: "#eeeeee",
			DarkColor:  "#333333",
		},
	}
}

// newTestService returns a service with a running hub that stops when the
// test ends.
func newTestService(t *testing.T, cfg *config.Config) (*Service, *mux.Router) {
	t.Helper()

	hub := NewHub()
	ctx, cancel := context.WithCancel(context.Background())
	go hub.Run(ctx)
	t.Cleanup(cancel)

	s := NewService(cfg, hub)
	return s, NewRouter(s)
}

func do(t *testing.T, router http.Handler, method, path string, body interface{}) *httptest.ResponseRecorder {
	t.Helper()

	var buf bytes.Buffer
	if body != nil {
		require.NoError(t, json.NewEncoder(&buf).Encode(body))
	}
	req := httptest.NewRequest(method, path, &buf)
	req.Header.Set("Content-Type", "application/json")

	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

func createGame(t *testing.T, router http.Handler) GameResponse {
	t.Helper()

	w := do(t, router, "POST", "/api/games", nil)
	require.Equal(t, http.StatusCreated, w.Code, w.Body.String())

	var resp GameResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func selectSquare(t *testing.T, router http.Handler, gameID, square string) (int, SelectResponse) {
	t.Helper()

	w := do(t, router, "POST", "/api/games/"+gameID+"/select", SelectRequest{Square: square})
	var resp SelectResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp), w.Body.String())
	return w.Code, resp
}
