package cache

import (
	"context"
	"strconv"

	"github.com/redis/rueidis"
	"github.com/zhulik/starmatch/internal/core"
	"github.com/zhulik/starmatch/pkg/starmatch"
)

// Redis keeps match results in redis with a TTL.
type Redis struct {
	Config *core.Config

	client rueidis.Client
}

func (r *Redis) Init(_ context.Context) error {
	client, err := rueidis.NewClient(rueidis.ClientOption{
		InitAddress:  []string{r.Config.RedisAddress},
		DisableCache: true,
	})
	if err != nil {
		return err
	}

	r.client = client

	return nil
}

func (r *Redis) Shutdown(_ context.Context) error {
	r.client.Close()

	return nil
}

func (r *Redis) HealthCheck(ctx context.Context) error {
	return r.client.Do(ctx, r.client.B().Ping().Build()).Error()
}

func (r *Redis) Get(ctx context.Context, algorithm starmatch.Algorithm, text, pattern string) (int, bool, error) {
	cmd := r.client.B().Get().Key(Key(algorithm, text, pattern)).Build()

	idx, err := r.client.Do(ctx, cmd).AsInt64()
	if rueidis.IsRedisNil(err) {
		return 0, false, nil
	}

	if err != nil {
		return 0, false, err
	}

	return int(idx), true, nil
}

func (r *Redis) Set(ctx context.Context, algorithm starmatch.Algorithm, text, pattern string, index int) error {
	cmd := r.client.B().Set().
		Key(Key(algorithm, text, pattern)).
		Value(strconv.Itoa(index)).
		Px(r.Config.CacheTTL).
		Build()

	return r.client.Do(ctx, cmd).Error()
}
