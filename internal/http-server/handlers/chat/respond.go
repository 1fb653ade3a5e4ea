package chat

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

func Respond(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.chat")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("chat not available")
			render.JSON(w, r, response.Error("Chat not available"))
			return
		}

		var req entity.ChatRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.Message == "" {
			logger.Error("no message provided")
			render.JSON(w, r, response.Error("No message provided"))
			return
		}

		logger = logger.With(slog.String("message", req.Message))

		reply, err := handler.ComposeResponse(req)
		if err != nil {
			logger.Error("compose response", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Compose failed: %v", err)))
			return
		}
		logger.Debug("compose response")

		render.JSON(w, r, response.Ok(reply))
	}
}
