package chat

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testEngine() *Engine {
	return NewEngine(testCatalog(), testLogger())
}

func TestTurnDeflectionShortCircuits(t *testing.T) {
	e := testEngine()

	// A diagnosis phrase wins even when a product name is present.
	reply, next := e.Turn(Context{}, "Paracetamol chữa được ung thư không?")
	assert.Equal(t, deflectMessage, reply)
	assert.Equal(t, Context{}, next, "deflected turns leave the context untouched")
}

func TestTurnNotFound(t *testing.T) {
	e := testEngine()

	prior := Context{LastTopic: "Giảm đau, hạ sốt"}
	reply, next := e.Turn(prior, "xyzabc")
	assert.Equal(t, notFoundMessage, reply)
	assert.Equal(t, prior, next)
}

func TestTurnResolvesAndRemembers(t *testing.T) {
	e := testEngine()

	reply, next := e.Turn(Context{}, "Paracetamol giá bao nhiêu?")
	assert.Contains(t, reply, "25.000đ")
	assert.Equal(t, "Giảm đau, hạ sốt", next.LastTopic)
	assert.Equal(t, []string{"Paracetamol"}, productNames(next.LastProducts))
}

func TestTurnIdempotentForRepeatedQuery(t *testing.T) {
	e := testEngine()

	reply1, ctx1 := e.Turn(Context{}, "tôi bị loãng xương")
	reply2, ctx2 := e.Turn(ctx1, "tôi bị loãng xương")

	assert.Equal(t, reply1, reply2)
	assert.Equal(t, ctx1, ctx2)
	assert.Len(t, ctx2.LastProducts, 3)
}

func TestTurnFollowUpFlow(t *testing.T) {
	e := testEngine()

	_, ctx := e.Turn(Context{}, "Paracetamol")
	require.Equal(t, "Giảm đau, hạ sốt", ctx.LastTopic)

	reply, ctx := e.Turn(ctx, "còn thuốc nào khác không")
	assert.Contains(t, reply, "Aspirin", "the next related product is offered")
	assert.NotContains(t, reply, "Paracetamol")
	assert.Equal(t, []string{"Paracetamol", "Aspirin"}, productNames(ctx.LastProducts))
	assert.Equal(t, "Giảm đau, hạ sốt", ctx.LastTopic, "follow-ups keep the topic")

	reply, ctx2 := e.Turn(ctx, "thuốc khác nữa đi")
	assert.Equal(t, allShownMessage, reply)
	assert.Equal(t, ctx, ctx2, "an exhausted follow-up changes nothing")
}

func TestTurnFollowUpWithoutTopicIsASearch(t *testing.T) {
	e := testEngine()

	// Without a topic the continuation phrase is just another query; it
	// matches nothing in the catalog.
	reply, _ := e.Turn(Context{}, "khác")
	assert.Equal(t, notFoundMessage, reply)
}

func TestTurnMultiProductList(t *testing.T) {
	e := testEngine()

	reply, ctx := e.Turn(Context{}, "thuốc trị loãng xương")
	assert.Contains(t, reply, "1. Alendronate")
	assert.Contains(t, reply, "3. Calcium Carbonate")
	assert.Len(t, ctx.LastProducts, 3)
}

func TestTurnDoesNotMutateCaller(t *testing.T) {
	e := testEngine()

	original := Context{
		LastTopic:    "Giảm đau, hạ sốt",
		LastProducts: testCatalog()[:1],
	}
	snapshot := Context{
		LastTopic:    original.LastTopic,
		LastProducts: productsCopy(original.LastProducts),
	}

	_, _ = e.Turn(original, "còn thuốc nào khác không")
	assert.Equal(t, snapshot.LastTopic, original.LastTopic)
	assert.Equal(t, productNames(snapshot.LastProducts), productNames(original.LastProducts))
}
