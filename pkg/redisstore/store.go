package redisstore

import (
	"context"
	"encoding/json"
	"errors"
	"strconv"

	"github.com/google/uuid"
	"github.com/redis/go-redis/v9"

	"github.com/dmitrymomot/sessionkit/pkg/session"
)

const (
	recordPrefix = "session:"
	userPrefix   = "session_user:"
)

// Store is a Redis-backed session store. Records are stored as JSON under
// "session:<id>"; a per-user set under "session_user:<uid>" indexes record
// IDs so bulk deletion does not scan the keyspace.
type Store struct {
	client *redis.Client
}

// New creates a Redis-backed session store
func New(client *redis.Client) *Store {
	return &Store{client: client}
}

func recordKey(id string) string {
	return recordPrefix + id
}

func userKey(userID int64) string {
	return userPrefix + strconv.FormatInt(userID, 10)
}

// Create stores a new record, assigning a fresh ID when none is set.
func (s *Store) Create(ctx context.Context, rec session.Record) (session.Record, error) {
	if rec.ID == "" {
		rec.ID = uuid.NewString()
	}

	payload, err := json.Marshal(rec)
	if err != nil {
		return session.Record{}, err
	}

	pipe := s.client.TxPipeline()
	pipe.Set(ctx, recordKey(rec.ID), payload, 0)
	if rec.UserID != 0 {
		pipe.SAdd(ctx, userKey(rec.UserID), rec.ID)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return session.Record{}, err
	}

	return rec, nil
}

// Get retrieves a record by ID.
func (s *Store) Get(ctx context.Context, id string) (session.Record, error) {
	val, err := s.client.Get(ctx, recordKey(id)).Result()
	if errors.Is(err, redis.Nil) {
		return session.Record{}, session.ErrSessionNotFound
	}
	if err != nil {
		return session.Record{}, err
	}

	var rec session.Record
	if err := json.Unmarshal([]byte(val), &rec); err != nil {
		return session.Record{}, errors.Join(ErrCorruptedRecord, err)
	}
	return rec, nil
}

// Set replaces the encoded data of an existing record. Conflicting writes
// resolve last-writer-wins.
func (s *Store) Set(ctx context.Context, id string, data string) error {
	rec, err := s.Get(ctx, id)
	if err != nil {
		return err
	}

	rec.Data = data
	payload, err := json.Marshal(rec)
	if err != nil {
		return err
	}

	return s.client.Set(ctx, recordKey(id), payload, 0).Err()
}

// Delete removes a record and its user index entry. Deleting a missing
// record is a no-op.
func (s *Store) Delete(ctx context.Context, id string) error {
	rec, err := s.Get(ctx, id)
	if errors.Is(err, session.ErrSessionNotFound) {
		return nil
	}
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	pipe.Del(ctx, recordKey(id))
	if rec.UserID != 0 {
		pipe.SRem(ctx, userKey(rec.UserID), id)
	}
	_, err = pipe.Exec(ctx)
	return err
}

// DeleteAllForUser removes every record indexed for the given user.
func (s *Store) DeleteAllForUser(ctx context.Context, userID int64) error {
	ids, err := s.client.SMembers(ctx, userKey(userID)).Result()
	if err != nil {
		return err
	}

	pipe := s.client.TxPipeline()
	for _, id := range ids {
		pipe.Del(ctx, recordKey(id))
	}
	pipe.Del(ctx, userKey(userID))
	_, err = pipe.Exec(ctx)
	return err
}

// GetAll enumerates all stored records via SCAN over the record prefix.
func (s *Store) GetAll(ctx context.Context) ([]session.Record, error) {
	var recs []session.Record

	iter := s.client.Scan(ctx, 0, recordPrefix+"*", 100).Iterator()
	for iter.Next(ctx) {
		val, err := s.client.Get(ctx, iter.Val()).Result()
		if errors.Is(err, redis.Nil) {
			// Deleted between scan and fetch
			continue
		}
		if err != nil {
			return nil, err
		}

		var rec session.Record
		if err := json.Unmarshal([]byte(val), &rec); err != nil {
			return nil, errors.Join(ErrCorruptedRecord, err)
		}
		recs = append(recs, rec)
	}
	if err := iter.Err(); err != nil {
		return nil, err
	}

	return recs, nil
}
