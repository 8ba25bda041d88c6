package httpadapter

import (
	"net/http"

	"github.com/gorilla/websocket"
	"go.uber.org/zap"

	"github.com/PabloGalante/mawazo/internal/observability"
)

var upgrader = websocket.Upgrader{
	CheckOrigin: func(r *http.Request) bool {
		return true // same policy as withCORS
	},
}

// Message types pushed on /ws/life-story.
const (
	wsStarted  = "started"
	wsProgress = "progress"
	wsDone     = "done"
	wsError    = "error"
)

type lifeStoryMessage struct {
	Type       string `json:"type"`
	Story      string `json:"story,omitempty"`
	EntryCount int    `json:"entryCount,omitempty"`
	Error      string `json:"error,omitempty"`
}

// handleLifeStoryWS generates a life story and pushes it over a websocket:
// "started", then "progress" when the host produced a story, then "done".
func (s *Server) handleLifeStoryWS(w http.ResponseWriter, r *http.Request) {
	log := observability.LoggerFromContext(r.Context())

	conn, err := upgrader.Upgrade(w, r, nil)
	if err != nil {
		log.Warn("websocket upgrade failed", zap.Error(err))
		return
	}
	defer conn.Close()

	send := func(msg lifeStoryMessage) {
		if err := conn.WriteJSON(msg); err != nil {
			log.Warn("websocket write failed", zap.String("type", msg.Type), zap.Error(err))
		}
	}

	contents, err := s.journal.EntryContents(r.Context())
	if err != nil {
		log.Error("loading entries for life story", zap.Error(err))
		send(lifeStoryMessage{Type: wsError, Error: "internal server error"})
		return
	}

	send(lifeStoryMessage{Type: wsStarted, EntryCount: len(contents)})

	story := s.ai.GenerateLifeStory(r.Context(), contents, func(partial string) {
		send(lifeStoryMessage{Type: wsProgress, Story: partial})
	})

	send(lifeStoryMessage{Type: wsDone, Story: story, EntryCount: len(contents)})

	_ = conn.WriteMessage(websocket.CloseMessage,
		websocket.FormatCloseMessage(websocket.CloseNormalClosure, ""))
}
