package chat

import (
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"log/slog"
	"net/http"

	"github.com/go-chi/render"
)

func Reset(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if handler == nil {
			log.Error("reset conversation not available")
			http.Error(w, "reset conversation not available", http.StatusServiceUnavailable)
			return
		}

		sessionId := r.URL.Query().Get("session_id")
		if sessionId == "" {
			http.Error(w, "Missing session_id parameter", http.StatusBadRequest)
			return
		}

		if err := handler.ResetConversation(sessionId); err != nil {
			log.Error("reset conversation", sl.Err(err))
			http.Error(w, "Reset failed: "+err.Error(), http.StatusInternalServerError)
			return
		}

		render.JSON(w, r, response.Ok("Conversation reset successfully"))
	}
}
