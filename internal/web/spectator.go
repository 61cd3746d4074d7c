package web

import (
	"net/http"
	"time"

	"github.com/justinabrahms/hotseat/internal/chess"
)

// GameIndex summarises one session for the lobby and for spectators.
type GameIndex struct {
	GameID         string              `json:"gameId"`
	Status         chess.GameStatus    `json:"status"`
	Turn           string              `json:"turn"`
	UndoDepth      int                 `json:"undoDepth"`
	CreatedAt      time.Time           `json:"createdAt"`
	LastActiveAt   time.Time           `json:"lastActiveAt"`
	SpectatorCount int                 `json:"spectatorCount"`
	MaterialCount  chess.MaterialCount `json:"materialCount"`
}

// GetActiveGamesHandler lists every in-memory game, oldest first.
func (s *Service) GetActiveGamesHandler(w http.ResponseWriter, r *http.Request) {
	games := []GameIndex{}
	for _, session := range s.store.List() {
		index := GameIndex{
			GameID:       session.ID,
			CreatedAt:    session.Created,
			LastActiveAt: session.LastActive(),
		}
		session.View(func(e *chess.Engine) {
			index.Status = e.GetStatus()
			index.Turn = e.GetActiveColor()
			index.UndoDepth = e.UndoDepth()
			index.MaterialCount = e.GetMaterialCount()
		})
		if s.hub != nil {
			index.SpectatorCount = s.hub.ClientCount(session.ID)
		}
		games = append(games, index)
	}

	writeJSON(w, http.StatusOK, map[string]interface{}{
		"games": games,
		"total": len(games),
	})
}
