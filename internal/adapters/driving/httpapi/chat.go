package httpapi

import (
	"net/http"
	"strings"

	"github.com/arah-infotech/sitebot/internal/core/domain"
	"github.com/arah-infotech/sitebot/internal/logger"
)

// handleChat answers a single chatbot message.
//
// Degraded states (assistant disabled, knowledge still loading, provider
// outage) return HTTP 200 with a fixed fallback reply so the widget never
// has to distinguish failure shapes. Only a missing message is a client
// error.
func (s *Server) handleChat(w http.ResponseWriter, r *http.Request) {
	var req domain.ChatRequest
	r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)
	if err := decodeBody(r, &req); err != nil {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		writeError(w, http.StatusBadRequest, "message is required")
		return
	}

	reply, err := s.chat.Reply(r.Context(), message)
	if err != nil {
		fallback, ok := domain.DisplayReply(err)
		if !ok {
			logger.Warn("Chat request failed: %v", err)
			writeError(w, http.StatusInternalServerError, "internal server error")
			return
		}
		logger.Debug("Chat degraded: %v", err)
		writeJSON(w, http.StatusOK, domain.ChatResponse{Reply: fallback})
		return
	}

	writeJSON(w, http.StatusOK, domain.ChatResponse{Reply: reply})
}
