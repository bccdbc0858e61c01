package session

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"edubit/internal/api"
)

// memStorage mirrors the browser's JSON-valued local storage.
type memStorage map[string][]byte

func (m memStorage) Set(k string, v any) error {
	b, err := json.Marshal(v)
	if err != nil {
		return err
	}
	m[k] = b
	return nil
}

func (m memStorage) Get(k string, v any) error {
	b, ok := m[k]
	if !ok {
		return nil
	}
	return json.Unmarshal(b, v)
}

func (m memStorage) Del(k string) { delete(m, k) }

func token() api.AuthToken {
	return api.AuthToken{
		AccessToken: "tok",
		TokenType:   "bearer",
		User:        api.User{ID: 1, Email: "ada@edu.bit", Role: api.RoleCreator},
	}
}

func TestSetAuthPersistsAcrossReload(t *testing.T) {
	t.Cleanup(Forget)
	storage := memStorage{}

	require.NoError(t, SetAuth(storage, token()))
	assert.True(t, LoggedIn())
	assert.Equal(t, "tok", Token())
	assert.True(t, IsCreator())

	// Simulated page reload: in-memory snapshot gone, storage intact.
	Forget()
	assert.False(t, LoggedIn())
	Load(storage)
	assert.True(t, LoggedIn())
	assert.Equal(t, "ada@edu.bit", User().Email)
}

func TestClearRemovesCredential(t *testing.T) {
	t.Cleanup(Forget)
	storage := memStorage{}
	require.NoError(t, SetAuth(storage, token()))

	Clear(storage)
	assert.False(t, LoggedIn())
	assert.Empty(t, Token())
	assert.Empty(t, User().Email)

	Forget()
	Load(storage)
	assert.False(t, LoggedIn(), "cleared session must not survive a reload")
}

func TestLoadIsOncePerPageLoad(t *testing.T) {
	t.Cleanup(Forget)
	storage := memStorage{}
	require.NoError(t, SetAuth(storage, token()))

	Load(storage)
	storage.Del("edubit.token")
	Load(storage)
	assert.True(t, LoggedIn(), "later Load calls are no-ops")
}

func TestLoadWithEmptyStorage(t *testing.T) {
	t.Cleanup(Forget)
	Load(memStorage{})
	assert.False(t, LoggedIn())
	assert.False(t, IsCreator())
}
