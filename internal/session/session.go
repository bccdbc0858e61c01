// Package session holds the one piece of client-owned persistent
// state: the bearer credential and the profile of the signed-in user,
// surviving page reloads in browser local storage. Views read
// snapshots; only the login/register flow and logout write.
package session

import "edubit/internal/api"

const (
	tokenKey = "edubit.token"
	userKey  = "edubit.user"
)

// Storage is the slice of go-app's BrowserStorage the session needs,
// so tests can substitute a map.
type Storage interface {
	Set(k string, v any) error
	Get(k string, v any) error
	Del(k string)
}

var current struct {
	token  string
	user   api.User
	loaded bool
}

// Load reads the persisted credential once per page load. Later calls
// are no-ops.
func Load(s Storage) {
	if current.loaded {
		return
	}
	current.loaded = true
	var tok string
	if err := s.Get(tokenKey, &tok); err != nil || tok == "" {
		return
	}
	var u api.User
	if err := s.Get(userKey, &u); err != nil {
		return
	}
	current.token = tok
	current.user = u
}

// SetAuth persists a fresh credential and profile after login or
// registration.
func SetAuth(s Storage, t api.AuthToken) error {
	if err := s.Set(tokenKey, t.AccessToken); err != nil {
		return err
	}
	if err := s.Set(userKey, t.User); err != nil {
		return err
	}
	current.token = t.AccessToken
	current.user = t.User
	current.loaded = true
	return nil
}

// Clear drops the session. It always succeeds locally; logout never
// depends on the network.
func Clear(s Storage) {
	s.Del(tokenKey)
	s.Del(userKey)
	current.token = ""
	current.user = api.User{}
}

func Token() string   { return current.token }
func User() api.User  { return current.user }
func LoggedIn() bool  { return current.token != "" }
func IsCreator() bool { return current.user.Role == api.RoleCreator }

// Forget resets the in-memory snapshot without touching storage.
// Tests use it between cases.
func Forget() {
	current.token = ""
	current.user = api.User{}
	current.loaded = false
}
