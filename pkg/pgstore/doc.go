// Package pgstore provides a PostgreSQL-backed implementation of the
// session Store interface using a pgx connection pool.
//
// The schema lives in embedded goose migrations; call Migrate once at
// startup to apply them. Session expiry is evaluated by the session package
// at resolution time, so no TTL or background cleanup runs here — records
// persist until explicitly deleted.
//
// # Usage
//
//	pool, err := pgstore.Connect(ctx, cfg)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer pool.Close()
//
//	if err := pgstore.Migrate(ctx, pool, cfg, logger); err != nil {
//	    log.Fatal(err)
//	}
//
//	manager, err := session.New(session.WithStore(pgstore.New(pool)))
package pgstore
