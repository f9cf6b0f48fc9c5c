package actions

import (
	"context"

	"github.com/s0up4200/clientele/rest"
)

// ListCachesOptions filters and orders ListCaches.
type ListCachesOptions struct {
	ListOptions
	// Ref is a full Git reference such as refs/heads/main.
	Ref string
	// Key matches caches whose key starts with this prefix.
	Key       string
	Sort      CacheSort
	Direction Direction
}

// GetCacheUsage reports the cache usage of a repository.
func (c *Client) GetCacheUsage(ctx context.Context, owner, repo string) (*CacheUsage, error) {
	path, err := repoPath(owner, repo, "/cache/usage")
	if err != nil {
		return nil, err
	}

	var out CacheUsage
	if err := c.get(ctx, path, nil, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// ListCaches lists the caches of a repository.
func (c *Client) ListCaches(ctx context.Context, owner, repo string, opts *ListCachesOptions) (*CacheList, error) {
	path, err := repoPath(owner, repo, "/caches")
	if err != nil {
		return nil, err
	}

	q := rest.NewQuery()
	if opts != nil {
		opts.ListOptions.apply(q).
			String("ref", opts.Ref).
			String("key", opts.Key).
			String("sort", string(opts.Sort)).
			String("direction", string(opts.Direction))
	}

	var out CacheList
	if err := c.get(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCachesByKey deletes every cache with the given key, optionally
// restricted to one ref, and returns the deleted entries.
func (c *Client) DeleteCachesByKey(ctx context.Context, owner, repo, key, ref string) (*CacheList, error) {
	path, err := repoPath(owner, repo, "/caches")
	if err != nil {
		return nil, err
	}

	q := rest.NewQuery().Set("key", key).String("ref", ref)

	var out CacheList
	if err := c.delete(ctx, path, q, &out); err != nil {
		return nil, err
	}
	return &out, nil
}

// DeleteCacheByID deletes one cache entry.
func (c *Client) DeleteCacheByID(ctx context.Context, owner, repo string, cacheID int64) error {
	path, err := repoPath(owner, repo, "/caches/{cache_id}", cacheID)
	if err != nil {
		return err
	}
	return c.delete(ctx, path, nil, nil)
}
