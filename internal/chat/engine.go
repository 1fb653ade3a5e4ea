package chat

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"log/slog"
)

// Engine runs conversation turns against the read-only catalog. A turn is a
// single synchronous computation over in-memory data; the engine holds no
// per-conversation state and is safe for concurrent use.
type Engine struct {
	products []entity.Product
	matcher  *Matcher
	composer *Composer
	log      *slog.Logger
}

func NewEngine(products []entity.Product, log *slog.Logger) *Engine {
	return &Engine{
		products: products,
		matcher:  NewMatcher(log),
		composer: NewComposer(),
		log:      log.With(sl.Module("chat.engine")),
	}
}

// Turn handles one conversation turn. The given context is never mutated;
// the successor context is returned alongside the composed reply.
func (e *Engine) Turn(ctx Context, message string) (string, Context) {
	intent := ClassifyIntent(message, ctx.LastTopic != "")

	logger := e.log.With(slog.String("intent", intent.String()))

	switch intent {
	case IntentDeflect:
		// Medical questions are never resolved against the catalog.
		logger.Debug("deflecting medical question")
		return deflectMessage, ctx

	case IntentFollowUp:
		next, ok := ctx.NextRelated(e.products)
		if !ok {
			logger.Debug("related products exhausted")
			return allShownMessage, ctx
		}
		logger.With(slog.String("product", next.Name)).Debug("follow-up resolved")
		return e.composer.Compose(IntentOverview, message, []entity.Product{next}), ctx.Append(next)
	}

	query := Normalize(message)
	matched := e.matcher.Resolve(query, Tokenize(query), e.products)
	if len(matched) == 0 {
		logger.With(slog.String("query", query)).Debug("no product matched")
		return notFoundMessage, ctx
	}

	return e.composer.Compose(intent, message, matched), ctx.Remember(matched)
}
