package core

import (
	"fmt"
	"io"
	"log/slog"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakeRepo struct {
	mu     sync.Mutex
	issued int
}

func (f *fakeRepo) CheckApiKey(key string) (string, error) {
	if key == "stored-key" {
		return "crm", nil
	}
	return "", fmt.Errorf("api key not found")
}

func (f *fakeRepo) GenerateApiKey(username string) (string, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.issued++
	return fmt.Sprintf("key-%s-%d", username, f.issued), nil
}

func authCore() *Core {
	c := New(slog.New(slog.NewTextHandler(io.Discard, nil)))
	c.SetAuthKey("static-key")
	c.SetRepository(&fakeRepo{})
	return c
}

func TestAuthenticateByToken(t *testing.T) {
	c := authCore()

	user, err := c.AuthenticateByToken("static-key")
	require.NoError(t, err)
	assert.Equal(t, "service", user.Username)

	user, err = c.AuthenticateByToken("stored-key")
	require.NoError(t, err)
	assert.Equal(t, "crm", user.Username)

	_, err = c.AuthenticateByToken("bogus")
	assert.Error(t, err)

	_, err = c.AuthenticateByToken("")
	assert.Error(t, err)
}

func TestGenerateApiKeyIsCached(t *testing.T) {
	c := authCore()

	key, err := c.GenerateApiKey("openai")
	require.NoError(t, err)

	user, err := c.AuthenticateByToken(key)
	require.NoError(t, err)
	assert.Equal(t, "openai", user.Username)
}

func TestApiKeyCacheConcurrentAccess(t *testing.T) {
	c := authCore()

	// Key issuance racing authentication must be safe: run with -race.
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_, err := c.GenerateApiKey("openai")
			assert.NoError(t, err)
		}
	}()
	go func() {
		defer wg.Done()
		for i := 0; i < 1000; i++ {
			_, _ = c.AuthenticateByToken("stored-key")
		}
	}()
	wg.Wait()
}
