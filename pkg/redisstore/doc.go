// Package redisstore provides a Redis-backed implementation of the session
// Store interface, plus a Connect helper that retries the initial
// connection using the supplied configuration.
//
// Records are persisted as JSON values without a TTL: session expiry is
// evaluated by the session package at resolution time, so the store keeps
// records until they are explicitly deleted. A per-user set indexes record
// IDs to make DeleteAllForUser a targeted operation instead of a keyspace
// scan.
//
// # Usage
//
//	client, err := redisstore.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer client.Close()
//
//	manager, err := session.New(session.WithStore(redisstore.New(client)))
//
// Configuration fields can be populated from environment variables via
// github.com/caarlos0/env.
package redisstore
