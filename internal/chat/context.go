package chat

import (
	"PharmaCS/entity"
	"strings"
)

// The shown list never holds more than this many products, on either the
// search path or the follow-up path.
const maxRemembered = 3

// Context is the per-conversation state: the topic of the most recently
// resolved product and the products already shown for it. The zero value is
// a fresh conversation. Context values are immutable; updates return a
// successor value.
type Context struct {
	LastTopic    string           `json:"last_topic"`
	LastProducts []entity.Product `json:"last_products"`
}

// Remember records the outcome of a non-follow-up turn: the topic becomes
// the first match's indication and the shown list is replaced by the first
// products of the match, capped.
func (c Context) Remember(matched []entity.Product) Context {
	if len(matched) == 0 {
		return c
	}
	kept := matched
	if len(kept) > maxRemembered {
		kept = kept[:maxRemembered]
	}
	return Context{
		LastTopic:    matched[0].Uses,
		LastProducts: append([]entity.Product(nil), kept...),
	}
}

// Append records one more product surfaced by a follow-up turn. The topic is
// unchanged; the shown list keeps only the most recent products.
func (c Context) Append(p entity.Product) Context {
	shown := make([]entity.Product, 0, len(c.LastProducts)+1)
	shown = append(shown, c.LastProducts...)
	shown = append(shown, p)
	if len(shown) > maxRemembered {
		shown = shown[len(shown)-maxRemembered:]
	}
	return Context{
		LastTopic:    c.LastTopic,
		LastProducts: shown,
	}
}

// NextRelated finds the first catalog product related to the current topic
// that has not been shown yet. ok is false when no topic is set or every
// related product has already been shown.
func (c Context) NextRelated(products []entity.Product) (entity.Product, bool) {
	if c.LastTopic == "" {
		return entity.Product{}, false
	}
	topic := strings.ToLower(c.LastTopic)
	for _, p := range products {
		if c.seen(p.Id) {
			continue
		}
		if productMentions(p, topic) {
			return p, true
		}
	}
	return entity.Product{}, false
}

func (c Context) seen(id string) bool {
	for _, p := range c.LastProducts {
		if p.Id == id {
			return true
		}
	}
	return false
}
