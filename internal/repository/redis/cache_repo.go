package redis

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/DRSN-tech/inventory-backend/pkg/e"
	"github.com/jimlawless/whereami"
	r "github.com/redis/go-redis/v9"
)

const (
	alertAckKeyPrefix = "alert:ack:"
	insightKeyPrefix  = "insight:"
)

// CacheRepo хранит в Redis флаги подтверждения алертов и кэш AI-текста.
// Оба вида записей самоочищаются по TTL.
type CacheRepo struct {
	client      *r.Client
	alertAckTTL time.Duration
	insightTTL  time.Duration
}

func NewCacheRepo(client *r.Client, alertAckTTL, insightTTL time.Duration) *CacheRepo {
	return &CacheRepo{
		client:      client,
		alertAckTTL: alertAckTTL,
		insightTTL:  insightTTL,
	}
}

// AcknowledgeAlert помечает алерт подтверждённым. Флаг истекает сам:
// если условие алерта сохраняется, алерт снова станет видимым.
func (c *CacheRepo) AcknowledgeAlert(ctx context.Context, alertID string) error {
	key := alertAckKeyPrefix + alertID
	if err := c.client.Set(ctx, key, "1", c.alertAckTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}

// AcknowledgedAlerts возвращает для каждого переданного ID признак
// подтверждения. Один MGET вместо запроса на каждый алерт.
func (c *CacheRepo) AcknowledgedAlerts(ctx context.Context, alertIDs []string) (map[string]bool, error) {
	result := make(map[string]bool, len(alertIDs))
	if len(alertIDs) == 0 {
		return result, nil
	}

	keys := make([]string, 0, len(alertIDs))
	for _, id := range alertIDs {
		keys = append(keys, alertAckKeyPrefix+id)
	}

	values, err := c.client.MGet(ctx, keys...).Result()
	if err != nil {
		return nil, e.Wrap(whereami.WhereAmI(), err)
	}

	if len(values) != len(alertIDs) {
		return nil, fmt.Errorf("%s: expected %d values, got %d", whereami.WhereAmI(), len(alertIDs), len(values))
	}

	for i, id := range alertIDs {
		result[id] = values[i] != nil
	}

	return result, nil
}

// GetInsight возвращает закэшированный AI-текст или пустую строку при промахе.
func (c *CacheRepo) GetInsight(ctx context.Context, key string) (string, error) {
	text, err := c.client.Get(ctx, insightKeyPrefix+key).Result()
	if err != nil {
		if errors.Is(err, r.Nil) {
			return "", nil
		}

		return "", e.Wrap(whereami.WhereAmI(), err)
	}

	return text, nil
}

func (c *CacheRepo) SetInsight(ctx context.Context, key, text string) error {
	if err := c.client.Set(ctx, insightKeyPrefix+key, text, c.insightTTL).Err(); err != nil {
		return e.Wrap(whereami.WhereAmI(), err)
	}

	return nil
}
