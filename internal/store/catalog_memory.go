package store

import (
	"context"
	"slices"
	"strconv"
	"sync"

	"github.com/MKhiriev/go-bill-desk/internal/logger"
	"github.com/MKhiriev/go-bill-desk/models"
)

// memoryCatalog keeps the catalog in process memory. Ids are sequential
// integers starting at 1.
type memoryCatalog struct {
	mu     sync.RWMutex
	items  []models.CatalogItem
	names  map[string]struct{}
	lastID int64
	logger *logger.Logger
}

// NewMemoryCatalog returns an in-memory [CatalogRepository] holding seed.
// Duplicate names in seed are skipped.
func NewMemoryCatalog(logger *logger.Logger, seed ...models.NewItem) CatalogRepository {
	c := &memoryCatalog{
		names:  make(map[string]struct{}, len(seed)),
		logger: logger,
	}
	for _, item := range seed {
		if _, err := c.add(item); err != nil {
			logger.Warn().Err(err).Str("name", item.Name).Msg("skip seed item")
		}
	}
	return c
}

func (c *memoryCatalog) ListItems(ctx context.Context) ([]models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	c.mu.RLock()
	defer c.mu.RUnlock()

	items := slices.Clone(c.items)
	if items == nil {
		items = []models.CatalogItem{}
	}
	return items, nil
}

func (c *memoryCatalog) AddItem(ctx context.Context, item models.NewItem) (models.CatalogItem, error) {
	if err := ctx.Err(); err != nil {
		return models.CatalogItem{}, err
	}

	created, err := c.add(item)
	if err != nil {
		return models.CatalogItem{}, err
	}

	c.logger.Debug().Str("id", created.ID.String()).Str("name", created.Name).Msg("catalog item stored")
	return created, nil
}

func (c *memoryCatalog) add(item models.NewItem) (models.CatalogItem, error) {
	c.mu.Lock()
	defer c.mu.Unlock()

	if _, ok := c.names[item.Name]; ok {
		return models.CatalogItem{}, ErrItemAlreadyExists
	}

	c.lastID++
	created := models.CatalogItem{
		ID:    models.NewItemID(strconv.FormatInt(c.lastID, 10)),
		Name:  item.Name,
		Price: item.Price,
	}
	c.items = append(c.items, created)
	c.names[item.Name] = struct{}{}

	return created, nil
}
