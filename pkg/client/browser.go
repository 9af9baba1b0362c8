package client

import (
	"context"
	"sync"
	"time"
)

// ListFunc fetches one page of an entity. Resources provide these as
// closures, e.g. wrapping MangaResource.List with a fixed filter set.
type ListFunc[T any] func(ctx context.Context, page, limit int) (*List[T], error)

// Browser holds paginated list state for an interactive frontend: current
// page, items, envelope, last error. Loads go through the QueryCache, and
// mutations funnel through Add/Update/Delete so the cache and page position
// stay consistent. Overlapping loads are resolved by a generation counter:
// only the newest request may update the visible state, so a slow page 1
// response can never clobber a page 2 the user already navigated to.
type Browser[T any] struct {
	entity  string
	limit   int
	filters any
	list    ListFunc[T]
	cache   *QueryCache

	mu         sync.Mutex
	page       int
	items      []T
	pagination Pagination
	err        error

	// gen increments on every load; responses carrying an older gen lose.
	gen uint64

	prefetch bool
}

type BrowserOption[T any] func(*Browser[T])

// WithFilters makes filter state part of the cache key.
func WithFilters[T any](filters any) BrowserOption[T] {
	return func(b *Browser[T]) { b.filters = filters }
}

// WithPrefetch warms the cache for the following page after each load.
func WithPrefetch[T any]() BrowserOption[T] {
	return func(b *Browser[T]) { b.prefetch = true }
}

func NewBrowser[T any](entity string, limit int, list ListFunc[T], cache *QueryCache, opts ...BrowserOption[T]) *Browser[T] {
	b := &Browser[T]{
		entity: entity,
		limit:  limit,
		list:   list,
		cache:  cache,
		page:   1,
	}
	for _, opt := range opts {
		opt(b)
	}
	return b
}

func (b *Browser[T]) Items() []T {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.items
}

func (b *Browser[T]) Pagination() Pagination {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.pagination
}

func (b *Browser[T]) Page() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.page
}

func (b *Browser[T]) Err() error {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.err
}

// Load fetches the current page, serving from cache when possible.
func (b *Browser[T]) Load(ctx context.Context) error {
	return b.load(ctx, b.Page())
}

func (b *Browser[T]) load(ctx context.Context, page int) error {
	key := QueryKey(b.entity, page, b.limit, b.filters)
	if cached, ok := b.cache.Get(key); ok {
		if result, ok := cached.(*List[T]); ok {
			b.mu.Lock()
			b.gen++ // cached navigation also outdates any in-flight fetch
			b.apply(page, result)
			b.mu.Unlock()
			return nil
		}
	}

	b.mu.Lock()
	b.gen++
	gen := b.gen
	b.mu.Unlock()

	result, err := b.list(ctx, page, b.limit)

	b.mu.Lock()
	defer b.mu.Unlock()

	// a newer load started while this one was in flight; its result, not
	// ours, reflects what the caller wants to see
	if gen != b.gen {
		return nil
	}
	if err != nil {
		b.err = err
		return err
	}

	b.cache.Set(key, result)
	b.apply(page, result)

	if b.prefetch && result.Pagination.Next {
		go b.prefetchPage(page + 1)
	}
	return nil
}

// apply requires b.mu held.
func (b *Browser[T]) apply(page int, result *List[T]) {
	b.page = page
	b.items = result.Data
	b.pagination = result.Pagination
	b.err = nil
}

func (b *Browser[T]) prefetchPage(page int) {
	key := QueryKey(b.entity, page, b.limit, b.filters)
	if _, ok := b.cache.Get(key); ok {
		return
	}

	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()

	if result, err := b.list(ctx, page, b.limit); err == nil {
		b.cache.Set(key, result)
	}
}

// Refresh drops the entity's cached pages and refetches the current one.
func (b *Browser[T]) Refresh(ctx context.Context) error {
	b.cache.InvalidateEntity(b.entity)
	return b.load(ctx, b.Page())
}

func (b *Browser[T]) GoToPage(ctx context.Context, page int) error {
	if page < 1 {
		page = 1
	}
	return b.load(ctx, page)
}

func (b *Browser[T]) Next(ctx context.Context) error {
	b.mu.Lock()
	ok, page := b.pagination.Next, b.page
	b.mu.Unlock()
	if !ok {
		return nil
	}
	return b.load(ctx, page+1)
}

func (b *Browser[T]) Prev(ctx context.Context) error {
	b.mu.Lock()
	ok, page := b.pagination.Prev, b.page
	b.mu.Unlock()
	if !ok {
		return nil
	}
	return b.load(ctx, page-1)
}

// Add runs a create mutation, then invalidates and reloads so the new
// record shows up with server-assigned fields.
func (b *Browser[T]) Add(ctx context.Context, create func(ctx context.Context) error) error {
	if err := create(ctx); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// Update runs an edit mutation, then invalidates and reloads.
func (b *Browser[T]) Update(ctx context.Context, mutate func(ctx context.Context) error) error {
	if err := mutate(ctx); err != nil {
		return err
	}
	return b.Refresh(ctx)
}

// Delete runs a delete mutation. When it removes the only item on the
// current page and there is a previous page, the browser steps back one
// page instead of landing on an empty one.
func (b *Browser[T]) Delete(ctx context.Context, del func(ctx context.Context) error) error {
	if err := del(ctx); err != nil {
		return err
	}

	b.mu.Lock()
	if len(b.items) == 1 && b.page > 1 {
		b.page--
	}
	b.mu.Unlock()
	return b.Refresh(ctx)
}
