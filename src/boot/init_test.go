package boot

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"travel/src/config"
	"travel/src/lib"
	"travel/src/storage"
)

func TestInitStorage(t *testing.T) {
	prev := config.STORAGE_DRIVER
	t.Cleanup(func() { config.STORAGE_DRIVER = prev })

	config.STORAGE_DRIVER = "memory"
	s, err := InitStorage(context.Background())
	require.NoError(t, err)
	assert.IsType(t, &storage.MemStorage{}, s)

	config.STORAGE_DRIVER = "mongo"
	_, err = InitStorage(context.Background())
	assert.ErrorContains(t, err, "unknown storage driver")
}

func TestInitNotifier(t *testing.T) {
	t.Setenv("NOTIFIER", "log")
	n := InitNotifier(context.Background())
	require.NotNil(t, n)
	multi, ok := n.(lib.MultiNotifier)
	require.True(t, ok)
	assert.Len(t, multi, 1)
	assert.Equal(t, "log", multi[0].Name())

	prev := config.SQS_QUEUE_URL
	t.Cleanup(func() { config.SQS_QUEUE_URL = prev })
	config.SQS_QUEUE_URL = ""
	t.Setenv("NOTIFIER", "sqs, bogus")
	assert.Nil(t, InitNotifier(context.Background()))
}

func TestInitCacheWithoutRedis(t *testing.T) {
	prev := config.REDIS_HOST
	t.Cleanup(func() { config.REDIS_HOST = prev })
	config.REDIS_HOST = ""
	assert.Nil(t, InitCache())
}
