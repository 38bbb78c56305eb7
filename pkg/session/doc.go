// Package session manages server-side session lifecycle for request-handling
// applications: establishing a session from inbound request metadata,
// validating integrity of signed cookies, and mediating reads, writes and
// deletes against a pluggable persistent store.
//
// # Architecture
//
// A Manager orchestrates everything. Resolve maps a request's headers to a
// session through a fixed sequence of states: no credential, signature
// invalid, not found, expired, active. Every per-request ambiguity degrades
// to an ephemeral session — a throwaway instance that lives only for the
// current request and is never persisted — so a missing or tampered cookie
// never raises. Only configuration mistakes (no store, signing enabled
// without keys, both reported once by New) and store failures surface as
// errors.
//
//	headers ──► Resolve ──► verified token ──► Store.Get ──► Session{Status}
//
// The lifecycle methods (Create, Set, Remove, RemoveAllForUser, Get, GetAll)
// layer on the same Store. Temporary sessions are inert: store-mutating
// calls on them are silent no-ops.
//
// # Status contract
//
// Every resolved or created session carries a Status directive for the
// calling request layer:
//
//   - StatusActive         – nothing to do
//   - StatusNeedsSave      – emit the session cookie (WriteCookie)
//   - StatusNeedsDeletion  – clear the session cookie (ClearCookie)
//
// Expired sessions are deleted from the store during resolution and come
// back with StatusNeedsDeletion; they are never reported active.
//
// # Storage
//
// Any backend satisfying the Store interface can be plugged in. Session
// data is always a structured map at the API boundary; it crosses the Store
// boundary only as an encoded JSON string, with the reserved "maxAge" key
// holding the absolute expiry in epoch milliseconds. A concurrent in-memory
// store ships with the package; Redis and PostgreSQL adapters live in
// pkg/redisstore and pkg/pgstore.
//
// # Usage
//
//	manager, err := session.New(
//	    session.WithStore(session.NewMemoryStore()),
//	    session.WithKeys("current-key", "old-rotation-key"),
//	)
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	func handler(w http.ResponseWriter, r *http.Request) {
//	    sess, err := manager.Resolve(r.Context(), r.Header)
//	    // ...
//	    created, _ := manager.Create(r.Context(), session.CreateArgs{
//	        UserID: 42,
//	        Data:   map[string]any{"theme": "dark"},
//	    })
//	    manager.WriteCookie(w, created)
//	}
//
// Twelve-factor deployments can populate Config from environment variables
// via LoadConfig.
package session
