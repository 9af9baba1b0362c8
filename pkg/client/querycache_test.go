package client_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"github.com/JohnnyBoySou/dash-s2mangas/pkg/client"
)

func TestQueryKeyFormat(t *testing.T) {
	key := client.QueryKey("mangas", 2, 25, nil)
	assert.Equal(t, "list:mangas:p2:l25:fnone", key)

	filtered := client.QueryKey("mangas", 2, 25, map[string]string{"status": "ongoing"})
	assert.NotEqual(t, key, filtered)
	assert.Contains(t, filtered, "list:mangas:p2:l25:f")

	// same filters hash the same
	again := client.QueryKey("mangas", 2, 25, map[string]string{"status": "ongoing"})
	assert.Equal(t, filtered, again)
}

func TestQueryCacheExpiry(t *testing.T) {
	qc := client.NewQueryCache(20 * time.Millisecond)
	qc.Set("list:tags:p1:l10:fnone", "page-one")

	got, ok := qc.Get("list:tags:p1:l10:fnone")
	assert.True(t, ok)
	assert.Equal(t, "page-one", got)

	time.Sleep(30 * time.Millisecond)
	_, ok = qc.Get("list:tags:p1:l10:fnone")
	assert.False(t, ok)
}

func TestQueryCacheInvalidateEntity(t *testing.T) {
	qc := client.NewQueryCache(time.Minute)
	qc.Set("list:tags:p1:l10:fnone", "tags-1")
	qc.Set("list:tags:p2:l10:fnone", "tags-2")
	qc.Set("list:categories:p1:l10:fnone", "cats-1")

	qc.InvalidateEntity("tags")

	_, ok := qc.Get("list:tags:p1:l10:fnone")
	assert.False(t, ok)
	_, ok = qc.Get("list:tags:p2:l10:fnone")
	assert.False(t, ok)

	got, ok := qc.Get("list:categories:p1:l10:fnone")
	assert.True(t, ok)
	assert.Equal(t, "cats-1", got)
}

func TestQueryCacheNilReceiverIsSafe(t *testing.T) {
	var qc *client.QueryCache
	qc.Set("list:tags:p1:l10:fnone", "ignored")
	_, ok := qc.Get("list:tags:p1:l10:fnone")
	assert.False(t, ok)
	qc.InvalidateEntity("tags")
}
