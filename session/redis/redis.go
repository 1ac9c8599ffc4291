// Package redis implements core.SessionStore on Redis. Each session is kept
// as two keys: a small state key holding the current pipeline state and a
// record key holding the JSON snapshot. The conditional update is a single
// Lua script comparing the state key and writing both keys, so the
// compare-and-swap is atomic server-side and safe across processes.
package redis

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/hupe1980/dinersim/core"
	"github.com/hupe1980/dinersim/session"
	backend "github.com/redis/go-redis/v9"
)

// casScript compares the state key against the expected state and, on match,
// replaces both the state key and the record key. ARGV[4] is a TTL in
// milliseconds (0 keeps the keys without expiry). Returns the matched count.
var casScript = backend.NewScript(`
if redis.call("GET", KEYS[1]) == ARGV[1] then
	if tonumber(ARGV[4]) > 0 then
		redis.call("SET", KEYS[1], ARGV[2], "PX", ARGV[4])
		redis.call("SET", KEYS[2], ARGV[3], "PX", ARGV[4])
	else
		redis.call("SET", KEYS[1], ARGV[2])
		redis.call("SET", KEYS[2], ARGV[3])
	end
	return 1
else
	return 0
end
`)

// Store implements core.SessionStore using Redis.
type Store struct {
	client *backend.Client
	prefix string
	ttl    time.Duration
}

// Option configures a Store.
type Option func(*Store)

// WithTTL sets the expiration for session keys. Zero (the default) keeps
// sessions without expiry.
func WithTTL(ttl time.Duration) Option {
	return func(s *Store) { s.ttl = ttl }
}

// WithPrefix sets the key prefix for session keys.
func WithPrefix(prefix string) Option {
	return func(s *Store) { s.prefix = prefix }
}

// New creates a Redis store connecting to the given address.
func New(address, password string, db int, opts ...Option) *Store {
	client := backend.NewClient(&backend.Options{
		Addr:     address,
		Password: password,
		DB:       db,
	})
	return NewFromClient(client, opts...)
}

// NewFromClient creates a Redis store from an existing client.
func NewFromClient(client *backend.Client, opts ...Option) *Store {
	store := &Store{
		client: client,
		prefix: "dinersim:session:",
	}
	for _, opt := range opts {
		opt(store)
	}
	return store
}

func (s *Store) recordKey(id string) string { return s.prefix + id }
func (s *Store) stateKey(id string) string  { return s.prefix + id + ":state" }

// Create persists a new session record. It fails if the id already exists.
func (s *Store) Create(ctx context.Context, sess *core.Session) error {
	data, err := json.Marshal(sess)
	if err != nil {
		return fmt.Errorf("failed to marshal session: %w", err)
	}

	ok, err := s.client.SetNX(ctx, s.recordKey(sess.ID), data, s.ttl).Result()
	if err != nil {
		return fmt.Errorf("failed to save to redis: %w", err)
	}
	if !ok {
		return fmt.Errorf("session %s already exists", sess.ID)
	}
	if err := s.client.Set(ctx, s.stateKey(sess.ID), sess.State.String(), s.ttl).Err(); err != nil {
		return fmt.Errorf("failed to save state to redis: %w", err)
	}
	return nil
}

// Get retrieves the current session snapshot.
func (s *Store) Get(ctx context.Context, id string) (*core.Session, error) {
	val, err := s.client.Get(ctx, s.recordKey(id)).Result()
	if err != nil {
		if errors.Is(err, backend.Nil) {
			return nil, fmt.Errorf("%w: %s", session.ErrNotFound, id)
		}
		return nil, fmt.Errorf("failed to get from redis: %w", err)
	}

	var sess core.Session
	if err := json.Unmarshal([]byte(val), &sess); err != nil {
		return nil, fmt.Errorf("failed to unmarshal session: %w", err)
	}
	return &sess, nil
}

// ConditionalUpdate applies the update and advances the state only if the
// stored state still equals expected.
//
// The update is materialized in Go against the snapshot read at the expected
// state; the Lua script then commits it only if the state key is still
// unchanged. Session fields only ever change together with a state advance,
// so an unchanged state key implies an unchanged record.
func (s *Store) ConditionalUpdate(
	ctx context.Context,
	id string,
	expected core.PipelineState,
	update core.SessionUpdate,
	next core.PipelineState,
) (int64, error) {
	sess, err := s.Get(ctx, id)
	if err != nil {
		return 0, err
	}
	if sess.State != expected {
		return 0, nil
	}

	sess.Apply(update, next)
	data, err := json.Marshal(sess)
	if err != nil {
		return 0, fmt.Errorf("failed to marshal session: %w", err)
	}

	matched, err := casScript.Run(
		ctx,
		s.client,
		[]string{s.stateKey(id), s.recordKey(id)},
		expected.String(),
		next.String(),
		data,
		s.ttl.Milliseconds(),
	).Int64()
	if err != nil {
		return 0, fmt.Errorf("failed to run conditional update: %w", err)
	}
	return matched, nil
}
