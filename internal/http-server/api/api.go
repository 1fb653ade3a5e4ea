package api

import (
	"PharmaCS/internal/config"
	chathandler "PharmaCS/internal/http-server/handlers/chat"
	"PharmaCS/internal/http-server/handlers/errors"
	"PharmaCS/internal/http-server/handlers/key"
	"PharmaCS/internal/http-server/handlers/product"
	"PharmaCS/internal/http-server/middleware/authenticate"
	"PharmaCS/internal/http-server/middleware/timeout"
	"PharmaCS/internal/lib/sl"
	"PharmaCS/internal/ws"
	"fmt"
	"log/slog"
	"net"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/render"
)

type Server struct {
	conf       *config.Config
	httpServer *http.Server
	log        *slog.Logger
}

type Handler interface {
	authenticate.Authenticate
	chathandler.Core
	product.Core
	key.Core
}

func New(conf *config.Config, log *slog.Logger, handler Handler, hub *ws.Hub) error {

	server := Server{
		conf: conf,
		log:  log.With(sl.Module("api.server")),
	}

	router := chi.NewRouter()
	router.Use(timeout.Timeout(5))
	router.Use(middleware.RequestID)
	router.Use(middleware.Recoverer)
	router.Use(render.SetContentType(render.ContentTypeJSON))
	router.Use(authenticate.New(log, handler))

	router.NotFound(errors.NotFound(log))
	router.MethodNotAllowed(errors.NotAllowed(log))

	router.Route("/api/v1", func(v1 chi.Router) {
		v1.Route("/chat", func(r chi.Router) {
			r.Post("/", chathandler.Respond(log, handler))
			r.Post("/reset", chathandler.Reset(log, handler))
			r.Get("/ws", ws.ServeChat(hub))
		})
		v1.Route("/products", func(r chi.Router) {
			r.Post("/info", product.ProductsInfo(log, handler))
		})
		v1.Route("/key", func(r chi.Router) {
			r.Post("/new", key.Generate(log, handler))
		})
	})

	httpLog := slog.NewLogLogger(log.Handler(), slog.LevelError)
	server.httpServer = &http.Server{
		Handler:  router,
		ErrorLog: httpLog,
	}

	serverAddress := fmt.Sprintf("%s:%s", conf.Listen.BindIP, conf.Listen.Port)
	listener, err := net.Listen("tcp", serverAddress)
	if err != nil {
		return err
	}

	server.log.Info("starting api server", slog.String("address", serverAddress))

	return server.httpServer.Serve(listener)
}
