package database

import (
	"context"
	"errors"
	"testing"
	"time"

	"everaftr-workers/internal/common/config"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/alicebob/miniredis/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fakePinger struct {
	name string
	err  error
}

func (f fakePinger) Name() string                 { return f.name }
func (f fakePinger) Ping(_ context.Context) error { return f.err }

func TestCheckAll(t *testing.T) {
	failures := CheckAll(context.Background(), time.Second,
		fakePinger{name: "ok"},
		fakePinger{name: "broken", err: errors.New("connection refused")},
		nil,
	)
	assert.Equal(t, map[string]string{"broken": "connection refused"}, failures)
}

func TestRedisClient_Ping(t *testing.T) {
	mr, err := miniredis.Run()
	require.NoError(t, err)
	t.Cleanup(mr.Close)

	client, err := NewRedis(config.RedisConfig{Address: mr.Addr()})
	require.NoError(t, err)
	defer client.Close()

	assert.NoError(t, client.Ping(context.Background()))
	assert.Equal(t, "redis", client.Name())

	mr.Close()
	assert.Error(t, client.Ping(context.Background()))
}

func TestNewRedis_RequiresAddress(t *testing.T) {
	_, err := NewRedis(config.RedisConfig{})
	assert.Error(t, err)
}

func TestPostgresClient_Ping(t *testing.T) {
	db, mock, err := sqlmock.New(sqlmock.MonitorPingsOption(true))
	require.NoError(t, err)
	defer db.Close()

	mock.ExpectPing()
	client := &PostgresClient{DB: db}
	assert.NoError(t, client.Ping(context.Background()))
	assert.NoError(t, mock.ExpectationsWereMet())
}
