package chatRepo

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"calmfix/models"

	"github.com/go-redis/redis/v8"
)

const chatKeyPrefix = "chat:booking:"

// RedisChatRepo stores each conversation as a Redis list of JSON messages.
type RedisChatRepo struct {
	client *redis.Client
	ttl    time.Duration
}

// NewRedisChatRepo creates a ChatRepository whose conversations expire ttl after the last write.
func NewRedisChatRepo(client *redis.Client, ttl time.Duration) ChatRepository {
	return &RedisChatRepo{client: client, ttl: ttl}
}

func chatKey(bookingID string) string {
	return chatKeyPrefix + bookingID
}

func encodeMessages(msgs []models.Message) ([]interface{}, error) {
	values := make([]interface{}, 0, len(msgs))
	for _, m := range msgs {
		b, err := json.Marshal(m)
		if err != nil {
			return nil, err
		}
		values = append(values, b)
	}
	return values, nil
}

func (r *RedisChatRepo) Seed(ctx context.Context, bookingID string, msgs []models.Message) (bool, error) {
	key := chatKey(bookingID)
	values, err := encodeMessages(msgs)
	if err != nil {
		return false, err
	}

	seeded := false
	err = r.client.Watch(ctx, func(tx *redis.Tx) error {
		n, err := tx.LLen(ctx, key).Result()
		if err != nil {
			return err
		}
		if n > 0 {
			return nil
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.RPush(ctx, key, values...)
			pipe.Expire(ctx, key, r.ttl)
			return nil
		})
		if err == nil {
			seeded = true
		}
		return err
	}, key)
	if errors.Is(err, redis.TxFailedErr) {
		// Someone else wrote first; the conversation exists.
		return false, nil
	}
	if err != nil {
		return false, fmt.Errorf("failed to seed chat %s: %w", bookingID, err)
	}
	return seeded, nil
}

func (r *RedisChatRepo) Append(ctx context.Context, msg models.Message) error {
	values, err := encodeMessages([]models.Message{msg})
	if err != nil {
		return err
	}
	key := chatKey(msg.BookingID)
	_, err = r.client.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
		pipe.RPush(ctx, key, values...)
		pipe.Expire(ctx, key, r.ttl)
		return nil
	})
	if err != nil {
		return fmt.Errorf("failed to append chat message: %w", err)
	}
	return nil
}

func decodeMessages(raw []string) ([]models.Message, error) {
	msgs := make([]models.Message, 0, len(raw))
	for _, item := range raw {
		var m models.Message
		if err := json.Unmarshal([]byte(item), &m); err != nil {
			return nil, err
		}
		msgs = append(msgs, m)
	}
	return msgs, nil
}

func (r *RedisChatRepo) List(ctx context.Context, bookingID string) ([]models.Message, error) {
	raw, err := r.client.LRange(ctx, chatKey(bookingID), 0, -1).Result()
	if err != nil && !errors.Is(err, redis.Nil) {
		return nil, fmt.Errorf("failed to read chat %s: %w", bookingID, err)
	}
	return decodeMessages(raw)
}

// MarkRead rewrites the list inside a WATCH transaction; a concurrent append aborts and retries once.
func (r *RedisChatRepo) MarkRead(ctx context.Context, bookingID, sender string) error {
	key := chatKey(bookingID)
	markFn := func(tx *redis.Tx) error {
		raw, err := tx.LRange(ctx, key, 0, -1).Result()
		if err != nil && !errors.Is(err, redis.Nil) {
			return err
		}
		msgs, err := decodeMessages(raw)
		if err != nil {
			return err
		}
		changed := false
		for i := range msgs {
			if msgs[i].Sender == sender && msgs[i].Status != models.MessageRead {
				msgs[i].Status = models.MessageRead
				changed = true
			}
		}
		if !changed {
			return nil
		}
		values, err := encodeMessages(msgs)
		if err != nil {
			return err
		}
		_, err = tx.TxPipelined(ctx, func(pipe redis.Pipeliner) error {
			pipe.Del(ctx, key)
			pipe.RPush(ctx, key, values...)
			pipe.Expire(ctx, key, r.ttl)
			return nil
		})
		return err
	}

	var err error
	for attempt := 0; attempt < 2; attempt++ {
		err = r.client.Watch(ctx, markFn, key)
		if !errors.Is(err, redis.TxFailedErr) {
			break
		}
	}
	if err != nil {
		return fmt.Errorf("failed to mark chat %s read: %w", bookingID, err)
	}
	return nil
}
