package core

import (
	"PharmaCS/internal/catalog"
	"PharmaCS/internal/chat"
	"PharmaCS/internal/lib/sl"
	"log/slog"
	"sync"
)

type Repository interface {
	CheckApiKey(key string) (string, error)
	GenerateApiKey(username string) (string, error)
}

type Core struct {
	repo     Repository
	catalog  *catalog.Catalog
	engine   *chat.Engine
	sessions *chat.SessionStore
	authKey  string

	// keys caches issued API keys. Written by GenerateApiKey while
	// AuthenticateByToken reads it on every request.
	keysMu sync.RWMutex
	keys   map[string]string

	log *slog.Logger
}

func New(log *slog.Logger) *Core {
	return &Core{
		log:  log.With(sl.Module("core")),
		keys: make(map[string]string),
	}
}

func (c *Core) SetRepository(repo Repository) {
	c.repo = repo
}

func (c *Core) SetAuthKey(key string) {
	c.authKey = key
}

func (c *Core) SetCatalog(cat *catalog.Catalog) {
	c.catalog = cat
}

func (c *Core) SetChatEngine(engine *chat.Engine) {
	c.engine = engine
}

func (c *Core) SetSessionStore(sessions *chat.SessionStore) {
	c.sessions = sessions
}
