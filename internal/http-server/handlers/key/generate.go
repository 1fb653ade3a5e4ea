package key

import (
	"PharmaCS/internal/lib/api/response"
	"PharmaCS/internal/lib/sl"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"

	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type GenerateRequest struct {
	Username string `json:"username"`
}

func Generate(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.key")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("key generation not available")
			render.JSON(w, r, response.Error("Key generation not available"))
			return
		}

		var req GenerateRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if req.Username == "" {
			logger.Error("no username provided")
			render.JSON(w, r, response.Error("No username provided"))
			return
		}

		apiKey, err := handler.GenerateApiKey(req.Username)
		if err != nil {
			logger.Error("generate api key", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Generate failed: %v", err)))
			return
		}

		logger.With(
			slog.String("username", req.Username),
		).Info("api key generated")

		render.JSON(w, r, response.Ok(apiKey))
	}
}
