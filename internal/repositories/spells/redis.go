package spells

import (
	"context"
	"encoding/json"
	"log/slog"
	"sort"
	"strings"
	"time"

	redis "github.com/redis/go-redis/v9"

	"github.com/KirkDiggler/rpg-toolkit/core"

	"github.com/KirkDiggler/rpg-spellfx/internal/entities/spell"
	"github.com/KirkDiggler/rpg-spellfx/internal/errors"
	"github.com/KirkDiggler/rpg-spellfx/internal/pkg/clock"
	"github.com/KirkDiggler/rpg-spellfx/internal/pkg/idgen"
	redisclient "github.com/KirkDiggler/rpg-spellfx/internal/redis"
)

const (
	indexKey  = "spells:index"
	keyPrefix = spell.EntityType + ":"

	// Error messages
	errSpellNil     = "spell cannot be nil"
	errSpellIDEmpty = "spell ID cannot be empty"
)

// RedisConfig contains configuration for the Redis spell repository
type RedisConfig struct {
	Client      redisclient.Client
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate validates the RedisConfig
func (cfg *RedisConfig) Validate() error {
	vb := errors.NewValidationBuilder()

	if cfg.Client == nil {
		vb.RequiredField("Client")
	}
	if cfg.IDGenerator == nil {
		vb.RequiredField("IDGenerator")
	}
	if cfg.Clock == nil {
		vb.RequiredField("Clock")
	}

	return vb.Build()
}

type redisRepository struct {
	client redisclient.Client
	idGen  idgen.Generator
	clock  clock.Clock
}

// NewRedis creates a new Redis-backed spell repository
func NewRedis(cfg *RedisConfig) (Repository, error) {
	if cfg == nil {
		return nil, errors.InvalidArgument("config cannot be nil")
	}
	if err := cfg.Validate(); err != nil {
		return nil, errors.Wrap(err, "invalid config")
	}

	return &redisRepository{
		client: cfg.Client,
		idGen:  cfg.IDGenerator,
		clock:  cfg.Clock,
	}, nil
}

// spellData is the storage structure for a spell
type spellData struct {
	Spell    *spell.Config `json:"spell"`
	StoredAt int64         `json:"stored_at"`
}

// Key returns the Redis key for an entity. Exposed for testing.
func Key(e core.Entity) string {
	return e.GetType() + ":" + e.GetID()
}

func keyFor(id string) string {
	return Key(&spell.Config{ID: id})
}

func (r *redisRepository) Put(ctx context.Context, input PutInput) (*PutOutput, error) {
	if input.Spell == nil {
		return nil, errors.InvalidArgument(errSpellNil)
	}

	s := spell.Normalize(input.Spell)
	if s.ID == "" {
		s.ID = r.idGen.Generate()
	}

	storedAt := r.clock.Now().UTC()
	data, err := json.Marshal(spellData{Spell: s, StoredAt: storedAt.Unix()})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to marshal spell %s", s.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Set(ctx, Key(s), data, 0)
	pipe.SAdd(ctx, indexKey, s.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to store spell %s", s.ID)
	}

	return &PutOutput{Record: &Record{Spell: s, StoredAt: storedAt}}, nil
}

func (r *redisRepository) Get(ctx context.Context, input GetInput) (*GetOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	result, err := r.client.Get(ctx, keyFor(input.ID)).Result()
	if err != nil {
		if err == redis.Nil {
			return nil, errors.NotFoundf("spell %s not found", input.ID)
		}
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to get spell %s", input.ID)
	}

	record, err := decodeRecord(result)
	if err != nil {
		return nil, err
	}
	return &GetOutput{Record: record}, nil
}

func (r *redisRepository) GetMany(ctx context.Context, input GetManyInput) (*GetManyOutput, error) {
	out := &GetManyOutput{Spells: make(map[string]*spell.Config, len(input.IDs))}
	if len(input.IDs) == 0 {
		return out, nil
	}

	records, err := r.load(ctx, input.IDs)
	if err != nil {
		return nil, err
	}
	for _, rec := range records {
		out.Spells[rec.Spell.ID] = rec.Spell
	}
	return out, nil
}

func (r *redisRepository) List(ctx context.Context, _ ListInput) (*ListOutput, error) {
	ids, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to list spells")
	}
	sort.Strings(ids)

	records, err := r.load(ctx, ids)
	if err != nil {
		return nil, err
	}
	return &ListOutput{Records: records}, nil
}

// load fetches the records for ids in order. Missing keys and records that
// fail to decode are skipped; Check reports and repairs the latter.
func (r *redisRepository) load(ctx context.Context, ids []string) ([]*Record, error) {
	if len(ids) == 0 {
		return nil, nil
	}

	keys := make([]string, len(ids))
	for i, id := range ids {
		keys[i] = keyFor(id)
	}

	values, err := r.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to load spells")
	}

	records := make([]*Record, 0, len(values))
	for i, v := range values {
		raw, ok := v.(string)
		if !ok {
			continue
		}
		record, err := decodeRecord(raw)
		if err != nil {
			slog.WarnContext(ctx, "Skipping corrupt spell record",
				"key", keys[i],
				"error", err)
			continue
		}
		records = append(records, record)
	}
	return records, nil
}

func (r *redisRepository) Delete(ctx context.Context, input DeleteInput) (*DeleteOutput, error) {
	if input.ID == "" {
		return nil, errors.InvalidArgument(errSpellIDEmpty)
	}

	key := keyFor(input.ID)
	exists, err := r.client.Exists(ctx, key).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to check spell existence")
	}
	if exists == 0 {
		return nil, errors.NotFoundf("spell %s not found", input.ID)
	}

	pipe := r.client.TxPipeline()
	pipe.Del(ctx, key)
	pipe.SRem(ctx, indexKey, input.ID)
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to delete spell %s", input.ID)
	}

	return &DeleteOutput{}, nil
}

func (r *redisRepository) Check(ctx context.Context, input CheckInput) (*CheckOutput, error) {
	indexed, err := r.client.SMembers(ctx, indexKey).Result()
	if err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to read spell index")
	}
	inIndex := make(map[string]bool, len(indexed))
	for _, id := range indexed {
		inIndex[id] = true
	}

	out := &CheckOutput{}
	stored := make(map[string]bool)

	iter := r.client.Scan(ctx, 0, keyPrefix+"*", 0).Iterator()
	for iter.Next(ctx) {
		key := iter.Val()
		id := strings.TrimPrefix(key, keyPrefix)
		if stored[id] {
			// SCAN may return a key more than once
			continue
		}
		stored[id] = true
		out.Checked++

		raw, err := r.client.Get(ctx, key).Result()
		switch {
		case err == redis.Nil:
			// deleted mid-scan
			delete(stored, id)
			out.Checked--
			continue
		case err != nil && strings.HasPrefix(err.Error(), "WRONGTYPE"):
			out.Corrupt = append(out.Corrupt, id)
			continue
		case err != nil:
			return nil, errors.WrapWithCodef(err, errors.CodeInternal, "failed to read %s", key)
		}

		if _, err := decodeRecord(raw); err != nil {
			slog.WarnContext(ctx, "Corrupt spell record",
				"key", key,
				"error", err)
			out.Corrupt = append(out.Corrupt, id)
			continue
		}
		if !inIndex[id] {
			out.Unindexed = append(out.Unindexed, id)
		}
	}
	if err := iter.Err(); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to scan spell keys")
	}

	for _, id := range indexed {
		if !stored[id] {
			out.Orphaned = append(out.Orphaned, id)
		}
	}
	sort.Strings(out.Corrupt)
	sort.Strings(out.Unindexed)
	sort.Strings(out.Orphaned)

	if !input.Repair || out.Clean() {
		return out, nil
	}

	pipe := r.client.TxPipeline()
	for _, id := range out.Corrupt {
		pipe.Del(ctx, keyFor(id))
		pipe.SRem(ctx, indexKey, id)
	}
	for _, id := range out.Unindexed {
		pipe.SAdd(ctx, indexKey, id)
	}
	for _, id := range out.Orphaned {
		pipe.SRem(ctx, indexKey, id)
	}
	if _, err := pipe.Exec(ctx); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to repair spell library")
	}
	out.Repaired = true

	slog.InfoContext(ctx, "Repaired spell library",
		"corrupt", len(out.Corrupt),
		"unindexed", len(out.Unindexed),
		"orphaned", len(out.Orphaned))

	return out, nil
}

func decodeRecord(raw string) (*Record, error) {
	var data spellData
	if err := json.Unmarshal([]byte(raw), &data); err != nil {
		return nil, errors.WrapWithCode(err, errors.CodeInternal, "failed to unmarshal spell")
	}
	if data.Spell == nil {
		return nil, errors.Internal("stored spell record is empty")
	}
	return &Record{
		Spell:    spell.Normalize(data.Spell),
		StoredAt: time.Unix(data.StoredAt, 0).UTC(),
	}, nil
}
