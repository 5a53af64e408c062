package port

import "errors"

// Storage keys shared by the session store and the 401 handler. They match
// the keys the browser console uses, so a backend session survives a client
// swap.
const (
	KeyToken = "simbu_token"
	KeyUser  = "simbu_user"
)

// ErrKeyNotFound is returned by CredentialStore.Get for absent keys.
var ErrKeyNotFound = errors.New("credential key not found")

// CredentialStore is the durable local storage behind the session. It is an
// outbound port so tests can substitute an in-memory implementation.
// Implementations must be safe for concurrent use.
type CredentialStore interface {
	Get(key string) (string, error)
	Set(key, value string) error
	Delete(key string) error
}

// Navigator abstracts the forced navigation performed by the 401 handler.
// The browser original replaces window.location; the console prints the
// login prompt and resets its screen.
type Navigator interface {
	NavigateLogin()
}

// NavigatorFunc adapts a plain function to Navigator.
type NavigatorFunc func()

func (f NavigatorFunc) NavigateLogin() { f() }
