package chat

import (
	"PharmaCS/entity"
	"PharmaCS/internal/lib/sl"
	"log/slog"
	"strings"
)

// tier is one matching strategy. Tiers are consulted in order and the first
// tier returning at least one product wins; lower tiers are never consulted
// for that query.
type tier interface {
	Name() string
	Match(query string, tokens []string, products []entity.Product) []entity.Product
}

// Matcher resolves a normalized query to a ranked product list.
type Matcher struct {
	tiers []tier
	log   *slog.Logger
}

func NewMatcher(log *slog.Logger) *Matcher {
	return &Matcher{
		tiers: []tier{
			specialKeywordTier{},
			exactTier{},
			substringTier{},
			usageTier{},
			tokenTier{},
		},
		log: log.With(sl.Module("chat.matcher")),
	}
}

// Resolve returns the matched products in rank order. An empty result means
// no product was found and is a normal outcome, not an error.
func (m *Matcher) Resolve(query string, tokens []string, products []entity.Product) []entity.Product {
	if query == "" {
		return nil
	}

	for _, t := range m.tiers {
		matched := t.Match(query, tokens, products)
		if len(matched) == 0 {
			continue
		}
		m.log.With(
			slog.String("tier", t.Name()),
			slog.Int("matched", len(matched)),
		).Debug("query resolved")
		return matched
	}
	return nil
}

// specialKeywordTier answers queries containing a curated condition phrase
// with that phrase's product list, in dictionary order. The first phrase
// found while scanning the dictionary wins.
type specialKeywordTier struct{}

func (specialKeywordTier) Name() string { return "special-keyword" }

func (specialKeywordTier) Match(query string, _ []string, products []entity.Product) []entity.Product {
	for _, entry := range specialKeywords {
		if !strings.Contains(query, entry.Phrase) {
			continue
		}
		var matched []entity.Product
		for _, name := range entry.Products {
			for _, p := range products {
				if strings.EqualFold(p.Name, name) {
					matched = append(matched, p)
					break
				}
			}
		}
		return matched
	}
	return nil
}

// exactTier matches the whole query against product names and active
// ingredients. A single product is returned, first catalog-order match wins.
type exactTier struct{}

func (exactTier) Name() string { return "exact" }

func (exactTier) Match(query string, _ []string, products []entity.Product) []entity.Product {
	for _, p := range products {
		if strings.ToLower(p.Name) == query || strings.ToLower(p.ActiveIngredient) == query {
			return []entity.Product{p}
		}
	}
	return nil
}

// substringTier collects every product whose name or active ingredient
// contains the query.
type substringTier struct{}

func (substringTier) Name() string { return "substring" }

func (substringTier) Match(query string, _ []string, products []entity.Product) []entity.Product {
	var matched []entity.Product
	for _, p := range products {
		if strings.Contains(strings.ToLower(p.Name), query) ||
			strings.Contains(strings.ToLower(p.ActiveIngredient), query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// usageTier matches the query against the indication text and the symptom
// keywords.
type usageTier struct{}

func (usageTier) Name() string { return "usage-symptom" }

func (usageTier) Match(query string, _ []string, products []entity.Product) []entity.Product {
	var matched []entity.Product
	for _, p := range products {
		if productMentions(p, query) {
			matched = append(matched, p)
		}
	}
	return matched
}

// tokenTier is the last resort: any retained token hitting any searchable
// field counts. A product matching several tokens still appears once.
type tokenTier struct{}

func (tokenTier) Name() string { return "tokenized" }

func (tokenTier) Match(_ string, tokens []string, products []entity.Product) []entity.Product {
	var matched []entity.Product
	for _, p := range products {
		for _, token := range tokens {
			if strings.Contains(strings.ToLower(p.Name), token) ||
				strings.Contains(strings.ToLower(p.ActiveIngredient), token) ||
				productMentions(p, token) {
				matched = append(matched, p)
				break
			}
		}
	}
	return matched
}

func productMentions(p entity.Product, text string) bool {
	if strings.Contains(strings.ToLower(p.Uses), text) {
		return true
	}
	for _, symptom := range p.Symptoms {
		if strings.Contains(strings.ToLower(symptom), text) {
			return true
		}
	}
	return false
}
