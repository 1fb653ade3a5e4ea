package core

import (
	"PharmaCS/entity"
	"fmt"
)

// AuthenticateByToken resolves an API token to a client identity. The
// configured static key and keys issued at runtime are checked before
// falling back to the repository.
func (c *Core) AuthenticateByToken(token string) (*entity.UserAuth, error) {
	if token == "" {
		return nil, fmt.Errorf("token is required")
	}

	if c.authKey != "" && token == c.authKey {
		return &entity.UserAuth{Username: "service"}, nil
	}

	c.keysMu.RLock()
	username, ok := c.keys[token]
	c.keysMu.RUnlock()
	if ok {
		return &entity.UserAuth{Username: username}, nil
	}

	if c.repo == nil {
		return nil, fmt.Errorf("unknown token")
	}

	username, err := c.repo.CheckApiKey(token)
	if err != nil {
		return nil, fmt.Errorf("unknown token: %w", err)
	}

	return &entity.UserAuth{Username: username}, nil
}

func (c *Core) GenerateApiKey(username string) (string, error) {
	if c.repo == nil {
		return "", fmt.Errorf("repository is not set")
	}

	apiKey, err := c.repo.GenerateApiKey(username)
	if err != nil {
		return "", fmt.Errorf("failed to generate API key: %w", err)
	}

	c.keysMu.Lock()
	c.keys[apiKey] = username
	c.keysMu.Unlock()

	return apiKey, nil
}
