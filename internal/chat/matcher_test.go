package chat

import (
	"PharmaCS/entity"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func resolve(t *testing.T, query string) []string {
	t.Helper()
	m := NewMatcher(testLogger())
	normalized := Normalize(query)
	return productNames(m.Resolve(normalized, Tokenize(normalized), testCatalog()))
}

func TestSpecialKeywordTier(t *testing.T) {
	// The dictionary entry decides both membership and order.
	names := resolve(t, "tôi bị loãng xương")
	assert.Equal(t, []string{"Alendronate", "Risedronate", "Calcium Carbonate", "Vitamin D3"}, names)
}

func TestSpecialKeywordTierDictionaryOrderTieBreak(t *testing.T) {
	// Both "loãng xương" and "dị ứng" appear; the dictionary scans
	// "loãng xương" first, so its list wins.
	names := resolve(t, "loãng xương và dị ứng")
	assert.Equal(t, []string{"Alendronate", "Risedronate", "Calcium Carbonate", "Vitamin D3"}, names)
}

func TestSpecialKeywordTierFallsThroughWhenProductsAbsent(t *testing.T) {
	// The condition phrase is in the dictionary but none of its products
	// exist in this catalog. The tier must yield nothing so a lower tier
	// can still resolve the query.
	m := NewMatcher(testLogger())
	products := []entity.Product{
		testProduct("SP101", "Osteocare", "Calcium citrate", "Hỗ trợ điều trị loãng xương",
			[]string{"loãng xương"}, 180000),
	}

	normalized := Normalize("tôi bị loãng xương")
	names := productNames(m.Resolve(normalized, Tokenize(normalized), products))
	assert.Equal(t, []string{"Osteocare"}, names)
}

func TestExactTierBeatsSubstring(t *testing.T) {
	// "paracetamol" is also a substring of the Paracetamol entry, but the
	// exact tier returns the single product before the substring tier runs.
	names := resolve(t, "Paracetamol")
	assert.Equal(t, []string{"Paracetamol"}, names)
}

func TestExactTierActiveIngredient(t *testing.T) {
	names := resolve(t, "acetylsalicylic acid")
	assert.Equal(t, []string{"Aspirin"}, names)
}

func TestSubstringTierCatalogOrder(t *testing.T) {
	names := resolve(t, "ate")
	// Every product whose name or ingredient contains "ate", in catalog order.
	assert.Equal(t, []string{"Alendronate", "Risedronate", "Calcium Carbonate"}, names)
}

func TestUsageTier(t *testing.T) {
	names := resolve(t, "trào ngược")
	assert.Equal(t, []string{"Omeprazole"}, names)
}

func TestTokenTierMatchesOnce(t *testing.T) {
	// No earlier tier matches the full phrase; the token "viêm" hits
	// Ibuprofen on both uses and symptoms but it appears once.
	names := resolve(t, "thuốc viêm khớp giúp")
	require.Contains(t, names, "Ibuprofen")
	assert.Equal(t, 1, count(names, "Ibuprofen"))
}

func TestNoTierMatches(t *testing.T) {
	assert.Empty(t, resolve(t, "xyzabc"))
}

func TestEmptyQuery(t *testing.T) {
	m := NewMatcher(testLogger())
	assert.Empty(t, m.Resolve("", nil, testCatalog()))
}

func count(items []string, want string) int {
	n := 0
	for _, item := range items {
		if item == want {
			n++
		}
	}
	return n
}
