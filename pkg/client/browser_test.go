package client_test

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

// tagBackend is an in-memory stand-in for the tags endpoint. It counts
// list calls so tests can tell cache hits from real fetches.
type tagBackend struct {
	mu    sync.Mutex
	tags  []client.Tag
	calls int
}

func newTagBackend(n int) *tagBackend {
	b := &tagBackend{}
	for i := 1; i <= n; i++ {
		b.tags = append(b.tags, client.Tag{
			ID:   fmt.Sprintf("tag-%02d", i),
			Name: fmt.Sprintf("Tag %02d", i),
		})
	}
	return b
}

func (b *tagBackend) list(_ context.Context, page, limit int) (*client.List[client.Tag], error) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.calls++
	return paginate(b.tags, page, limit), nil
}

func (b *tagBackend) deleteLast() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tags = b.tags[:len(b.tags)-1]
}

func (b *tagBackend) add(tag client.Tag) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.tags = append(b.tags, tag)
}

func (b *tagBackend) callCount() int {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.calls
}

func paginate(tags []client.Tag, page, limit int) *client.List[client.Tag] {
	total := len(tags)
	totalPages := (total + limit - 1) / limit

	start := (page - 1) * limit
	if start > total {
		start = total
	}
	end := start + limit
	if end > total {
		end = total
	}

	data := make([]client.Tag, end-start)
	copy(data, tags[start:end])

	return &client.List[client.Tag]{
		Data: data,
		Pagination: client.Pagination{
			Total:      int64(total),
			Page:       page,
			Limit:      limit,
			TotalPages: totalPages,
			Next:       page < totalPages,
			Prev:       page > 1,
		},
	}
}

func TestBrowserLoadsFirstPage(t *testing.T) {
	backend := newTagBackend(25)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))

	require.NoError(t, b.Load(context.Background()))

	assert.Equal(t, 1, b.Page())
	assert.Len(t, b.Items(), 10)
	assert.Equal(t, "tag-01", b.Items()[0].ID)

	p := b.Pagination()
	assert.Equal(t, int64(25), p.Total)
	assert.Equal(t, 3, p.TotalPages)
	assert.True(t, p.Next)
	assert.False(t, p.Prev)
}

func TestBrowserNavigationServesRevisitsFromCache(t *testing.T) {
	backend := newTagBackend(25)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.Next(ctx))
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, "tag-11", b.Items()[0].ID)
	assert.Equal(t, 2, backend.callCount())

	// going back must not hit the backend again
	require.NoError(t, b.Prev(ctx))
	assert.Equal(t, 1, b.Page())
	assert.Equal(t, "tag-01", b.Items()[0].ID)
	assert.Equal(t, 2, backend.callCount())
}

func TestBrowserNextStopsAtLastPage(t *testing.T) {
	backend := newTagBackend(5)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.NoError(t, b.Next(ctx))
	assert.Equal(t, 1, b.Page())
	assert.Equal(t, 1, backend.callCount())

	require.NoError(t, b.Prev(ctx))
	assert.Equal(t, 1, b.Page())
}

func TestBrowserGoToPageClampsToOne(t *testing.T) {
	backend := newTagBackend(5)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))

	require.NoError(t, b.GoToPage(context.Background(), -3))
	assert.Equal(t, 1, b.Page())
}

func TestBrowserDeleteLastItemOnPageStepsBack(t *testing.T) {
	// 11 tags at limit 10 leave exactly one item on page 2
	backend := newTagBackend(11)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))
	ctx := context.Background()

	require.NoError(t, b.GoToPage(ctx, 2))
	require.Len(t, b.Items(), 1)

	err := b.Delete(ctx, func(ctx context.Context) error {
		backend.deleteLast()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 1, b.Page())
	assert.Len(t, b.Items(), 10)
	assert.False(t, b.Pagination().Next)
}

func TestBrowserDeleteStaysOnPageWithItemsLeft(t *testing.T) {
	backend := newTagBackend(12)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))
	ctx := context.Background()

	require.NoError(t, b.GoToPage(ctx, 2))
	require.Len(t, b.Items(), 2)

	err := b.Delete(ctx, func(ctx context.Context) error {
		backend.deleteLast()
		return nil
	})
	require.NoError(t, err)

	assert.Equal(t, 2, b.Page())
	assert.Len(t, b.Items(), 1)
}

func TestBrowserAddInvalidatesAndReloads(t *testing.T) {
	backend := newTagBackend(3)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	require.Len(t, b.Items(), 3)

	err := b.Add(ctx, func(ctx context.Context) error {
		color := "#ff0000"
		backend.add(client.Tag{ID: "tag-romance", Name: "Romance", Color: &color})
		return nil
	})
	require.NoError(t, err)

	assert.Len(t, b.Items(), 4)
	assert.Equal(t, "Romance", b.Items()[3].Name)
	assert.Equal(t, int64(4), b.Pagination().Total)
}

func TestBrowserMutationErrorSkipsRefresh(t *testing.T) {
	backend := newTagBackend(3)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute))
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))
	calls := backend.callCount()

	boom := errors.New("server said no")
	err := b.Update(ctx, func(ctx context.Context) error { return boom })
	assert.ErrorIs(t, err, boom)
	assert.Equal(t, calls, backend.callCount())
}

func TestBrowserListErrorIsRetained(t *testing.T) {
	boom := errors.New("connection refused")
	list := func(ctx context.Context, page, limit int) (*client.List[client.Tag], error) {
		return nil, boom
	}
	b := client.NewBrowser("tags", 10, list, client.NewQueryCache(time.Minute))

	err := b.Load(context.Background())
	assert.ErrorIs(t, err, boom)
	assert.ErrorIs(t, b.Err(), boom)
}

func TestBrowserStaleResponseDiscarded(t *testing.T) {
	backend := newTagBackend(25)
	started := make(chan struct{})
	release := make(chan struct{})

	list := func(ctx context.Context, page, limit int) (*client.List[client.Tag], error) {
		if page == 1 {
			close(started)
			<-release
		}
		return backend.list(ctx, page, limit)
	}

	// nil cache keeps every load on the slow path
	b := client.NewBrowser[client.Tag]("tags", 10, list, nil)
	ctx := context.Background()

	done := make(chan error, 1)
	go func() { done <- b.Load(ctx) }()
	<-started

	// the user moves on while page 1 is still in flight
	require.NoError(t, b.GoToPage(ctx, 2))
	require.Equal(t, 2, b.Page())

	close(release)
	require.NoError(t, <-done)

	// the late page 1 response must not win
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, "tag-11", b.Items()[0].ID)
}

func TestBrowserPrefetchWarmsNextPage(t *testing.T) {
	backend := newTagBackend(25)
	b := client.NewBrowser("tags", 10, backend.list, client.NewQueryCache(time.Minute),
		client.WithPrefetch[client.Tag]())
	ctx := context.Background()

	require.NoError(t, b.Load(ctx))

	// the prefetch goroutine should fetch page 2 shortly after
	assert.Eventually(t, func() bool {
		return backend.callCount() == 2
	}, time.Second, 10*time.Millisecond)

	require.NoError(t, b.Next(ctx))
	assert.Equal(t, 2, b.Page())
	assert.Equal(t, 2, backend.callCount())
}

func TestBrowserFiltersKeyTheCacheSeparately(t *testing.T) {
	backend := newTagBackend(5)
	cache := client.NewQueryCache(time.Minute)
	ctx := context.Background()

	all := client.NewBrowser("tags", 10, backend.list, cache)
	filtered := client.NewBrowser("tags", 10, backend.list, cache,
		client.WithFilters[client.Tag](map[string]string{"search": "romance"}))

	require.NoError(t, all.Load(ctx))
	require.NoError(t, filtered.Load(ctx))

	// different filter hash, so the second load cannot reuse the first page
	assert.Equal(t, 2, backend.callCount())
}
