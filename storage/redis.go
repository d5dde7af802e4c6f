package storage

import (
	"context"
	"log"

	"github.com/redis/go-redis/v9"
)

// NewRedisClient connects to Redis, preferring a URL over individual
// settings. Returns nil when Redis is unreachable so callers can degrade
// to running without it.
func NewRedisClient(redisURL, addr, password string) *redis.Client {
	var opt *redis.Options
	if redisURL != "" {
		parsedOpt, err := redis.ParseURL(redisURL)
		if err != nil {
			log.Println("Failed to parse Redis URL:", err)
			return nil
		}
		opt = parsedOpt
	} else {
		opt = &redis.Options{
			Addr:     addr,
			Password: password,
			DB:       0,
		}
	}

	client := redis.NewClient(opt)
	if _, err := client.Ping(context.Background()).Result(); err != nil {
		log.Println("Redis connection failed:", err)
		client.Close()
		return nil
	}

	log.Println("Redis connected")
	return client
}

// RedisStore is a Store backed by a Redis instance.
type RedisStore struct {
	client *redis.Client
}

func NewRedisStore(client *redis.Client) *RedisStore {
	return &RedisStore{client: client}
}

func (s *RedisStore) Save(key string, value []byte) error {
	return s.client.Set(context.Background(), key, value, 0).Err()
}

func (s *RedisStore) Load(key string) ([]byte, bool, error) {
	data, err := s.client.Get(context.Background(), key).Bytes()
	if err == redis.Nil {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, err
	}
	return data, true, nil
}

func (s *RedisStore) Delete(key string) error {
	return s.client.Del(context.Background(), key).Err()
}
