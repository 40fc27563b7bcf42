package cache

import (
	"context"
	"encoding/json"
	"log"

	"menumaster/internal/menu"

	"github.com/go-redis/redis/v8"
)

// SnapshotProvider is a cache-aside layer in front of the repository-backed
// loader: hit serves Redis, miss falls through to Postgres and repopulates.
type SnapshotProvider struct {
	next   menu.SnapshotProvider
	client *Client
}

func NewSnapshotProvider(next menu.SnapshotProvider, client *Client) *SnapshotProvider {
	return &SnapshotProvider{next: next, client: client}
}

func (p *SnapshotProvider) LoadSnapshot(ctx context.Context, restaurantID string) (*menu.Snapshot, error) {
	key := menuKey(restaurantID)

	data, err := p.client.rdb.Get(ctx, key).Bytes()
	if err == nil {
		var snap menu.Snapshot
		if err := json.Unmarshal(data, &snap); err == nil {
			return &snap, nil
		}
		// Corrupt entry: drop it and reload from the source.
		p.client.InvalidateMenu(ctx, restaurantID)
	} else if err != redis.Nil {
		log.Printf("cache read failed for %s, falling back to DB: %v", restaurantID, err)
	}

	snap, err := p.next.LoadSnapshot(ctx, restaurantID)
	if err != nil {
		return nil, err
	}

	p.populate(ctx, restaurantID, snap)
	return snap, nil
}

// populate stores the restaurant-scoped snapshot. Offer validity is not
// baked in; it is evaluated against the clock on every render.
func (p *SnapshotProvider) populate(ctx context.Context, restaurantID string, snap *menu.Snapshot) {
	categories, products := menu.Project(restaurantID, snap.Categories, snap.Products)

	scoped := menu.Snapshot{
		Restaurant: snap.Restaurant,
		Categories: categories,
		Products:   products,
	}
	for _, o := range snap.Offers {
		if o.RestaurantID == restaurantID {
			scoped.Offers = append(scoped.Offers, o)
		}
	}

	data, err := json.Marshal(scoped)
	if err != nil {
		log.Printf("cache marshal failed for %s: %v", restaurantID, err)
		return
	}
	if err := p.client.rdb.Set(ctx, menuKey(restaurantID), data, p.client.ttl).Err(); err != nil {
		log.Printf("cache populate failed for %s: %v", restaurantID, err)
	}
}
