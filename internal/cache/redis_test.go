package cache

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/go-redis/redismock/v9"
	"github.com/stretchr/testify/assert"
)

type page struct {
	Items []string
	Total int
}

func TestRedis_Get(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	c := NewRedis[page](client, "jobs:", time.Minute)

	mock.ExpectGet("jobs:1:12").SetVal(`{"Items":["a"],"Total":1}`)
	value, ok := c.Get(ctx, "1:12")
	assert.True(t, ok)
	assert.Equal(t, page{Items: []string{"a"}, Total: 1}, value)

	mock.ExpectGet("jobs:2:12").RedisNil()
	_, ok = c.Get(ctx, "2:12")
	assert.False(t, ok)

	mock.ExpectGet("jobs:3:12").SetErr(errors.New("connection refused"))
	_, ok = c.Get(ctx, "3:12")
	assert.False(t, ok)

	mock.ExpectGet("jobs:4:12").SetVal(`not json`)
	_, ok = c.Get(ctx, "4:12")
	assert.False(t, ok)

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_Set(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	c := NewRedis[page](client, "jobs:", 30*time.Second)

	mock.ExpectSet("jobs:1:12", []byte(`{"Items":["a"],"Total":1}`), 30*time.Second).SetVal("OK")
	c.Set(ctx, "1:12", page{Items: []string{"a"}, Total: 1})

	assert.NoError(t, mock.ExpectationsWereMet())
}

func TestRedis_Purge(t *testing.T) {
	ctx := context.Background()
	client, mock := redismock.NewClientMock()
	c := NewRedis[page](client, "jobs:", time.Minute)

	mock.ExpectKeys("jobs:*").SetVal([]string{"jobs:1:12", "jobs:2:12"})
	mock.ExpectDel("jobs:1:12", "jobs:2:12").SetVal(2)
	c.Purge(ctx)

	mock.ExpectKeys("jobs:*").SetVal([]string{})
	c.Purge(ctx)

	assert.NoError(t, mock.ExpectationsWereMet())
}
