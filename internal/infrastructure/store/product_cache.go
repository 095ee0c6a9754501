package store

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/smart-agroconnect/api/internal/domain/contract"
	"github.com/smart-agroconnect/api/internal/domain/entity"
)

// ProductCacheStore caches product detail and list pages in redis.
type ProductCacheStore struct {
	rdb       *redis.Client
	detailTTL time.Duration
	listTTL   time.Duration
}

var _ contract.IProductCache = (*ProductCacheStore)(nil)

func NewProductCacheStore(rdb *redis.Client) *ProductCacheStore {
	return &ProductCacheStore{
		rdb:       rdb,
		detailTTL: 30 * time.Minute,
		listTTL:   10 * time.Minute,
	}
}

func productDetailKey(id string) string { return fmt.Sprintf("product:id:%s", id) }

const productListPrefix = "products:list:"

func (c *ProductCacheStore) GetProductByID(ctx context.Context, id string) (*entity.Product, bool, error) {
	b, err := c.rdb.Get(ctx, productDetailKey(id)).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var product entity.Product
	if err := json.Unmarshal(b, &product); err != nil {
		return nil, false, nil
	}
	return &product, true, nil
}

func (c *ProductCacheStore) SetProductByID(ctx context.Context, id string, product *entity.Product) error {
	data, err := json.Marshal(product)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, productDetailKey(id), data, c.detailTTL).Err()
}

func (c *ProductCacheStore) InvalidateProductByID(ctx context.Context, id string) error {
	return c.rdb.Del(ctx, productDetailKey(id)).Err()
}

func (c *ProductCacheStore) GetProductsPage(ctx context.Context, key string) (*contract.CachedProductsPage, bool, error) {
	b, err := c.rdb.Get(ctx, key).Bytes()
	if err != nil {
		if err == redis.Nil {
			return nil, false, nil
		}
		return nil, false, err
	}
	var page contract.CachedProductsPage
	if err := json.Unmarshal(b, &page); err != nil {
		return nil, false, nil
	}
	return &page, true, nil
}

func (c *ProductCacheStore) SetProductsPage(ctx context.Context, key string, page *contract.CachedProductsPage) error {
	data, err := json.Marshal(page)
	if err != nil {
		return err
	}
	return c.rdb.Set(ctx, key, data, c.listTTL).Err()
}

// InvalidateProductLists drops every cached list page.
func (c *ProductCacheStore) InvalidateProductLists(ctx context.Context) error {
	iter := c.rdb.Scan(ctx, 0, productListPrefix+"*", 100).Iterator()
	keys := []string{}
	for iter.Next(ctx) {
		keys = append(keys, iter.Val())
	}
	if err := iter.Err(); err != nil {
		return err
	}
	if len(keys) == 0 {
		return nil
	}
	return c.rdb.Del(ctx, keys...).Err()
}
