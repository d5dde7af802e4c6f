package catalog

import (
	"context"
	"encoding/json"
	"time"

	"github.com/redis/go-redis/v9"

	"storefront/models"
)

const productsCacheKey = "catalog_products"

// Service serves catalog reads: full list, detail, categories and the
// filtered listing view. The full product list is cached in Redis when a
// client is configured; a nil client means every read goes upstream.
type Service struct {
	client *Client
	cache  *redis.Client
	ttl    time.Duration
}

func NewService(client *Client, cache *redis.Client, ttl time.Duration) *Service {
	return &Service{client: client, cache: cache, ttl: ttl}
}

func (s *Service) Products(ctx context.Context) ([]models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productsCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				return products, nil
			}
		}
	}

	products, err := s.client.Products(ctx)
	if err != nil {
		return nil, err
	}

	if s.cache != nil {
		if data, err := json.Marshal(products); err == nil {
			s.cache.Set(ctx, productsCacheKey, data, s.ttl)
		}
	}

	return products, nil
}

// Product answers from the cached list when possible and falls back to a
// direct upstream fetch on a cache miss.
func (s *Service) Product(ctx context.Context, id int) (models.Product, error) {
	if s.cache != nil {
		cached, err := s.cache.Get(ctx, productsCacheKey).Result()
		if err == nil {
			var products []models.Product
			if err := json.Unmarshal([]byte(cached), &products); err == nil {
				for _, p := range products {
					if p.ID == id {
						return p, nil
					}
				}
				return models.Product{}, ErrNotFound
			}
		}
	}
	return s.client.ProductByID(ctx, id)
}

func (s *Service) Categories(ctx context.Context) ([]string, error) {
	return s.client.Categories(ctx)
}

// Browse applies the listing pipeline to the full catalog.
func (s *Service) Browse(ctx context.Context, filters models.FilterOptions, sortKey SortKey, page, pageSize int) ([]models.Product, int, error) {
	products, err := s.Products(ctx)
	if err != nil {
		return nil, 0, err
	}
	items, total := ApplyView(products, filters, sortKey, page, pageSize)
	return items, total, nil
}
