package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"net/http"

	"github.com/gorilla/mux"
	"github.com/justinabrahms/hotseat/internal/chess"
	"github.com/justinabrahms/hotseat/internal/config"
	"github.com/justinabrahms/hotseat/internal/render"
	"github.com/rs/zerolog/log"
)

type Service struct {
	store    *GameStore
	hub      *Hub
	renderer *render.Renderer
	config   *config.Config
}

// NewService wires a game store whose engines report to hub. With debug
// enabled every notification is also logged.
func NewService(cfg *config.Config, hub *Hub) *Service {
	s := &Service{
		hub:      hub,
		renderer: render.New(cfg.Render),
		config:   cfg,
	}
	s.store = NewGameStore(cfg.Game.MaxSessions, s.notifierFor)
	return s
}

func (s *Service) notifierFor(gameID string) chess.Notifier {
	var sinks chess.MultiNotifier
	if s.hub != nil {
		sinks = append(sinks, hubNotifier{hub: s.hub, gameID: gameID})
	}
	if s.config.Development.Debug {
		sinks = append(sinks, chess.LogNotifier{Logger: log.With().Str("gameID", gameID).Logger()})
	}
	return sinks
}

func (s *Service) Store() *GameStore {
	return s.store
}

type GameResponse struct {
	ID       string         `json:"id"`
	Snapshot chess.Snapshot `json:"snapshot"`
}

type SelectRequest struct {
	Square string `json:"square"`
}

type SelectResponse struct {
	Snapshot chess.Snapshot    `json:"snapshot"`
	Result   *chess.MoveResult `json:"result,omitempty"`
	Error    string            `json:"error,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v interface{}) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// engineStatus maps engine errors to HTTP statuses. Rule violations are the
// client's to fix, anything else is ours.
func engineStatus(err error) int {
	switch {
	case errors.Is(err, chess.ErrInvalidSquare):
		return http.StatusBadRequest
	case errors.Is(err, chess.ErrIllegalDestination),
		errors.Is(err, chess.ErrSelfCheck),
		errors.Is(err, chess.ErrNotSelectable),
		errors.Is(err, chess.ErrGameOver),
		errors.Is(err, chess.ErrNothingToUndo),
		errors.Is(err, chess.ErrSelectionPending):
		return http.StatusUnprocessableEntity
	}
	return http.StatusInternalServerError
}

// session resolves the {id} route variable, writing a 404 when it is unknown.
func (s *Service) session(w http.ResponseWriter, r *http.Request) (*Session, bool) {
	gameID := mux.Vars(r)["id"]
	session, err := s.store.Get(gameID)
	if err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return nil, false
	}
	return session, true
}

func (s *Service) HealthHandler(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]interface{}{
		"status": "ok",
		"games":  s.store.Len(),
	})
}

func (s *Service) CreateGameHandler(w http.ResponseWriter, r *http.Request) {
	session, err := s.store.Create()
	if errors.Is(err, ErrTooManySessions) {
		log.Warn().Int("max", s.config.Game.MaxSessions).Msg("Session limit reached")
		http.Error(w, "Too many active games", http.StatusServiceUnavailable)
		return
	}
	if err != nil {
		log.Error().Err(err).Msg("Failed to create game")
		http.Error(w, "Failed to create game", http.StatusInternalServerError)
		return
	}

	log.Info().Str("gameID", session.ID).Msg("Game created")
	writeJSON(w, http.StatusCreated, GameResponse{ID: session.ID, Snapshot: session.Snapshot()})
}

func (s *Service) GetGameHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}
	writeJSON(w, http.StatusOK, GameResponse{ID: session.ID, Snapshot: session.Snapshot()})
}

func (s *Service) SelectHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var req SelectRequest
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		http.Error(w, "Invalid request body", http.StatusBadRequest)
		return
	}
	sq, err := chess.ParseCoordinate(req.Square)
	if err != nil {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	var resp SelectResponse
	moveErr := session.Do(func(e *chess.Engine) error {
		result, err := e.Select(sq)
		resp.Result = result
		resp.Snapshot = e.Snapshot()
		return err
	})
	if moveErr != nil {
		log.Debug().Err(moveErr).Str("gameID", session.ID).Str("square", req.Square).Msg("Selection rejected")
		resp.Error = moveErr.Error()
		writeJSON(w, engineStatus(moveErr), resp)
		return
	}

	if resp.Result != nil {
		log.Info().
			Str("gameID", session.ID).
			Str("from", resp.Result.From).
			Str("to", resp.Result.To).
			Bool("check", resp.Result.Check).
			Bool("checkmate", resp.Result.Checkmate).
			Msg("Move executed successfully")
	}
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) CancelHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var resp SelectResponse
	_ = session.Do(func(e *chess.Engine) error {
		e.Cancel()
		resp.Snapshot = e.Snapshot()
		return nil
	})
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) UndoHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var resp SelectResponse
	err := session.Do(func(e *chess.Engine) error {
		err := e.UndoLastTurn()
		resp.Snapshot = e.Snapshot()
		return err
	})
	if err != nil {
		resp.Error = err.Error()
		writeJSON(w, engineStatus(err), resp)
		return
	}

	log.Info().Str("gameID", session.ID).Int("undoDepth", resp.Snapshot.UndoDepth).Msg("Turn undone")
	writeJSON(w, http.StatusOK, resp)
}

func (s *Service) DeleteGameHandler(w http.ResponseWriter, r *http.Request) {
	gameID := mux.Vars(r)["id"]
	if err := s.store.Delete(gameID); err != nil {
		http.Error(w, "Game not found", http.StatusNotFound)
		return
	}

	log.Info().Str("gameID", gameID).Msg("Game deleted")
	w.WriteHeader(http.StatusNoContent)
}

func (s *Service) BoardSVGHandler(w http.ResponseWriter, r *http.Request) {
	session, ok := s.session(w, r)
	if !ok {
		return
	}

	var buf bytes.Buffer
	session.View(func(e *chess.Engine) {
		if sq, ok := e.Selected(); ok {
			s.renderer.Board(&buf, e.Board(), sq)
		} else {
			s.renderer.Board(&buf, e.Board())
		}
	})

	w.Header().Set("Content-Type", "image/svg+xml")
	_, _ = buf.WriteTo(w)
}
