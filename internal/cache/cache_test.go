package cache

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestNilClientIsEmptyCache(t *testing.T) {
	var c *Client
	ctx := context.Background()

	data, err := c.Get(ctx, KeySlideshow)
	assert.NoError(t, err)
	assert.Nil(t, data)

	assert.NoError(t, c.Set(ctx, KeySlideshow, []byte("x"), time.Minute))
	assert.NoError(t, c.Delete(ctx, KeySlideshow, KeyPublicEvents))

	var dst []string
	assert.False(t, c.GetJSON(ctx, KeySlideshow, &dst))
	c.SetJSON(ctx, KeySlideshow, []string{"a"}, time.Minute)
	assert.NoError(t, c.Ping(ctx))
	assert.NoError(t, c.Close())
}

func TestUnreachableRedisFailsSafe(t *testing.T) {
	c := New("127.0.0.1:1", "", 0)
	defer c.Close()

	ctx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()

	data, err := c.Get(ctx, "missing")
	assert.NoError(t, err)
	assert.Nil(t, data)
	assert.NoError(t, c.Set(ctx, "k", []byte("v"), time.Second))
	assert.Error(t, c.Ping(ctx))
}
