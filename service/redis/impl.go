package redis

import (
	"errors"
	"time"

	"github.com/gomodule/redigo/redis"

	"github.com/shery8595/fhe-auction-sub000/base/ctx"
	"github.com/shery8595/fhe-auction-sub000/base/log"
	"github.com/shery8595/fhe-auction-sub000/base/metrics"
)

var (
	// ErrNotFound is returned when the key does not exist
	ErrNotFound = errors.New("key not found")
)

const (
	// retTTLNoKey is the return value of TTL when the key does not exist
	retTTLNoKey = -2

	keyAttribute = "key"
)

// Pools represents different pool types
type Pools struct {
	Src *redis.Pool
}

// Service provides interface for redis operations
type Service interface {
	Get(ctx ctx.Ctx, key string) ([]byte, error)
	Set(ctx ctx.Ctx, key string, value []byte, ttl time.Duration) error
	Del(ctx ctx.Ctx, key string) error
	Exists(ctx ctx.Ctx, key string) (bool, error)
	TTL(ctx ctx.Ctx, key string) (int64, error)
	Incrby(ctx ctx.Ctx, key string, amount int) (int64, error)
}

type redImpl struct {
	name  string
	met   metrics.Service
	pools *Pools
}

// New redis pool
func New(name string, met metrics.Service, pools *Pools) Service {
	return &redImpl{
		name:  name,
		met:   met,
		pools: pools,
	}
}

func (r *redImpl) do(context ctx.Ctx, cmd string, args ...interface{}) (interface{}, error) {
	defer r.met.BumpTime("redis.time", "cmd", cmd).End()

	conn := r.pools.Src.Get()
	defer conn.Close()

	reply, err := conn.Do(cmd, args...)
	if err != nil {
		r.met.BumpSum("redis.err", 1, "cmd", cmd)
	}
	return reply, err
}

func (r *redImpl) Get(context ctx.Ctx, key string) ([]byte, error) {
	reply, err := redis.Bytes(r.do(context, "GET", key))
	if err == redis.ErrNil {
		return nil, ErrNotFound
	} else if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("redis GET failed")
		return nil, err
	}
	return reply, nil
}

func (r *redImpl) Set(context ctx.Ctx, key string, value []byte, ttl time.Duration) error {
	var err error
	if ttl > 0 {
		_, err = r.do(context, "SET", key, value, "EX", int(ttl.Seconds()))
	} else {
		_, err = r.do(context, "SET", key, value)
	}
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("redis SET failed")
		return err
	}
	return nil
}

func (r *redImpl) Del(context ctx.Ctx, key string) error {
	if _, err := r.do(context, "DEL", key); err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("redis DEL failed")
		return err
	}
	return nil
}

func (r *redImpl) Exists(context ctx.Ctx, key string) (bool, error) {
	reply, err := redis.Int(r.do(context, "EXISTS", key))
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("redis EXISTS failed")
		return false, err
	}
	return reply == 1, nil
}

func (r *redImpl) TTL(context ctx.Ctx, key string) (int64, error) {
	reply, err := redis.Int64(r.do(context, "TTL", key))
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("redis TTL failed")
		return 0, err
	}
	if reply == retTTLNoKey {
		return 0, ErrNotFound
	}
	return reply, nil
}

func (r *redImpl) Incrby(context ctx.Ctx, key string, amount int) (int64, error) {
	reply, err := redis.Int64(r.do(context, "INCRBY", key, amount))
	if err != nil {
		context.WithFields(log.Fields{"err": err, keyAttribute: key}).Error("redis INCRBY failed")
		return 0, err
	}
	return reply, nil
}
