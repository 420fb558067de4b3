package repo

import (
	"context"
	"errors"
	"strconv"
	"time"

	perr "formvoice/internal/platform/errors"
	"formvoice/internal/platform/store/rdb"

	"github.com/redis/go-redis/v9"
)

// upsertScript writes the field hash and advances the stored write time, never backwards.
// KEYS[1] values hash, KEYS[2] updated_at; ARGV[1] unix micros, then field/value pairs
var upsertScript = redis.NewScript(`
redis.call('HSET', KEYS[1], unpack(ARGV, 2))
local cur = tonumber(redis.call('GET', KEYS[2]) or '0')
if tonumber(ARGV[1]) > cur then
	redis.call('SET', KEYS[2], ARGV[1])
end
return 1
`)

// Redis implements Repo over a redis hash per form type
type Redis struct {
	c *rdb.Client
}

// NewRedis returns a redis backed Repo. It panics on a nil client
func NewRedis(c *rdb.Client) *Redis {
	if c == nil {
		panic("forms: nil redis client")
	}
	return &Redis{c: c}
}

func (r *Redis) keys(formType string) (values, updated string) {
	return r.c.Key("form", formType, "values"), r.c.Key("form", formType, "updated_at")
}

// Values implements Repo
func (r *Redis) Values(ctx context.Context, formType string) (map[string]string, time.Time, error) {
	vk, uk := r.keys(formType)
	out, err := r.c.Cmd().HGetAll(ctx, vk).Result()
	if err != nil {
		return nil, time.Time{}, perr.Wrap(err, perr.ErrorCodeDB, "forms: load values")
	}

	var at time.Time
	us, err := r.c.Cmd().Get(ctx, uk).Result()
	switch {
	case errors.Is(err, redis.Nil):
	case err != nil:
		return nil, time.Time{}, perr.Wrap(err, perr.ErrorCodeDB, "forms: load updated_at")
	default:
		micros, e := strconv.ParseInt(us, 10, 64)
		if e != nil {
			return nil, time.Time{}, perr.Wrap(e, perr.ErrorCodeDB, "forms: bad updated_at")
		}
		at = time.UnixMicro(micros).UTC()
	}
	return out, at, nil
}

// Upsert implements Repo
func (r *Redis) Upsert(ctx context.Context, formType string, values map[string]string, at time.Time) error {
	if len(values) == 0 {
		return nil
	}
	ids, vals := split(values)
	args := make([]any, 0, 1+2*len(ids))
	args = append(args, at.UnixMicro())
	for i, id := range ids {
		args = append(args, id, vals[i])
	}

	vk, uk := r.keys(formType)
	if err := upsertScript.Run(ctx, r.c.Cmd(), []string{vk, uk}, args...).Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "forms: upsert values")
	}
	return nil
}

// Clear implements Repo
func (r *Redis) Clear(ctx context.Context, formType string) error {
	vk, uk := r.keys(formType)
	if err := r.c.Cmd().Del(ctx, vk, uk).Err(); err != nil {
		return perr.Wrap(err, perr.ErrorCodeDB, "forms: clear values")
	}
	return nil
}
