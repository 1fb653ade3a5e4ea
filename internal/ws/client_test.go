package ws

import (
	"PharmaCS/internal/lib/api/response"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReplyQueuesUntilBufferIsFull(t *testing.T) {
	c := &Client{send: make(chan []byte, 2)}

	assert.True(t, c.reply(response.Ok("first")))
	assert.True(t, c.reply(response.Ok("second")))

	// A client that stopped draining must be reported so the caller can
	// drop the connection instead of losing replies silently.
	assert.False(t, c.reply(response.Ok("third")))
	assert.Len(t, c.send, 2)
}

func TestReplyFreesUpAfterDrain(t *testing.T) {
	c := &Client{send: make(chan []byte, 1)}

	require.True(t, c.reply(response.Ok("first")))
	require.False(t, c.reply(response.Ok("second")))

	<-c.send
	assert.True(t, c.reply(response.Ok("third")))
}
