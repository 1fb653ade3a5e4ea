package product

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

type InfoRequest struct {
	Ids []string `json:"ids"`
}

func ProductsInfo(log *slog.Logger, handler Core) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		mod := sl.Module("http.handlers.product")

		logger := log.With(
			mod,
			slog.String("request_id", middleware.GetReqID(r.Context())),
		)

		if handler == nil {
			logger.Error("product catalog not available")
			render.JSON(w, r, response.Error("Product catalog not available"))
			return
		}

		var req InfoRequest
		if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
			logger.Error("failed to decode request body", sl.Err(err))
			render.JSON(w, r, response.Error("Invalid request body"))
			return
		}

		if len(req.Ids) == 0 {
			logger.Error("no product ids provided")
			render.JSON(w, r, response.Error("No product ids provided"))
			return
		}

		logger = logger.With(slog.Any("ids", req.Ids))

		products, err := handler.ProductsInfo(req.Ids)
		if err != nil {
			logger.Error("product lookup", sl.Err(err))
			render.JSON(w, r, response.Error(fmt.Sprintf("Lookup failed: %v", err)))
			return
		}
		logger.Debug("product lookup")

		render.JSON(w, r, response.Ok(products))
	}
}
