// Package gate implements the session-level password check guarding
// the page. It is orthogonal to the bookmark data.
package gate

import "crypto/subtle"

// Gate holds the configured password and the session's authentication
// state.
type Gate struct {
	password      string
	authenticated bool
}

// New creates a gate. An empty password disables it: the session
// counts as authenticated immediately.
func New(password string) *Gate {
	return &Gate{
		password:      password,
		authenticated: password == "",
	}
}

// Enabled reports whether a password is configured.
func (g *Gate) Enabled() bool {
	return g.password != ""
}

// Authenticated reports whether the session has passed the gate.
func (g *Gate) Authenticated() bool {
	return g.authenticated
}

// Submit checks the candidate password and reports whether it matched.
// A match flips the session to authenticated; a mismatch leaves any
// earlier authentication intact. The comparison is constant time.
func (g *Gate) Submit(candidate string) bool {
	ok := subtle.ConstantTimeCompare([]byte(candidate), []byte(g.password)) == 1
	if ok {
		g.authenticated = true
	}
	return ok
}
