package main

import (
	"PharmaCS/entity"
	"PharmaCS/impl/core"
	"PharmaCS/internal/catalog"
	"PharmaCS/internal/chat"
	"PharmaCS/internal/config"
	"PharmaCS/internal/database"
	"PharmaCS/internal/http-server/api"
	"PharmaCS/internal/lib/logger"
	"PharmaCS/internal/lib/sl"
	"PharmaCS/internal/ws"
	"context"
	"flag"
	"log/slog"
	"time"
)

func main() {

	configPath := flag.String("conf", "config.yml", "path to config file")
	logPath := flag.String("log", "/var/log/", "path to log file directory")
	flag.Parse()

	conf := config.MustLoad(*configPath)
	lg := logger.SetupLogger(conf.Env, *logPath)

	lg.Info("starting pharmacs", slog.String("config", *configPath), slog.String("env", conf.Env))
	lg.Debug("debug messages enabled")

	handler := core.New(lg)
	handler.SetAuthKey(conf.Listen.ApiKey)

	db, err := repository.NewMongoClient(conf, lg)
	if err != nil {
		lg.With(
			sl.Err(err),
		).Error("mongo client")
	}
	if db != nil {
		handler.SetRepository(db)
		lg.With(
			slog.String("host", conf.Mongo.Host),
			slog.String("port", conf.Mongo.Port),
			slog.String("user", conf.Mongo.User),
			slog.String("database", conf.Mongo.Database),
		).Info("mongo client initialized")
	}

	products, err := loadProducts(conf, db, lg)
	if err != nil {
		lg.Error("load catalog", sl.Err(err))
		return
	}

	cat, err := catalog.New(products)
	if err != nil {
		lg.Error("catalog validation", sl.Err(err))
		return
	}
	handler.SetCatalog(cat)
	lg.With(
		slog.Int("size", cat.Size()),
	).Info("catalog loaded")

	sessions := chat.NewSessionStore(
		time.Duration(conf.Session.TTLMinutes)*time.Minute,
		time.Duration(conf.Session.JanitorMinutes)*time.Minute,
		lg,
	)
	go sessions.Run()

	engine := chat.NewEngine(cat.Products(), lg)
	handler.SetChatEngine(engine)
	handler.SetSessionStore(sessions)
	lg.Info("chat engine initialized")

	hub := ws.NewHub(handler, lg)
	go hub.Run()

	// *** blocking start with http server ***
	err = api.New(conf, lg, handler, hub)
	if err != nil {
		lg.Error("server start", sl.Err(err))
		return
	}
	lg.Error("service stopped")
}

// loadProducts prefers the database catalog, falling back to the JSON file.
// A file catalog also seeds an empty products collection.
func loadProducts(conf *config.Config, db *repository.MongoDB, lg *slog.Logger) ([]entity.Product, error) {
	if db != nil {
		products, err := db.GetAllProducts(context.Background())
		if err != nil {
			return nil, err
		}
		if len(products) > 0 {
			return products, nil
		}
	}

	products, err := catalog.LoadFile(conf.Catalog.Path)
	if err != nil {
		return nil, err
	}

	if db != nil {
		if err := db.SeedProducts(context.Background(), products); err != nil {
			lg.With(
				sl.Err(err),
			).Error("seed products")
		}
	}

	return products, nil
}
