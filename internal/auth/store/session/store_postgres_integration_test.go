//go:build integration

package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/stretchr/testify/suite"

	"github.com/be1500616/zergoqrf/pkg/platform/requestcontext"
	"github.com/be1500616/zergoqrf/pkg/testutil/containers"
)

func TestPostgresStore(t *testing.T) {
	pg := containers.GetManager().GetPostgres(t)

	suite.Run(t, &StoreSuite{newStore: func() store {
		ctx := context.Background()
		require.NoError(t, pg.TruncateAll(ctx))
		_, err := pg.Exec(ctx, `INSERT INTO restaurants (id, name, code) VALUES ($1, 'Session Test', 'SESS01')`, restaurantID)
		require.NoError(t, err)
		return NewPostgres(pg.DB)
	}})
}

func TestPostgresStoreRetriesTokenCollision(t *testing.T) {
	pg := containers.GetManager().GetPostgres(t)
	ctx := requestcontext.WithTime(context.Background(), time.Date(2025, 6, 1, 18, 30, 0, 0, time.UTC))
	require.NoError(t, pg.TruncateAll(ctx))
	_, err := pg.Exec(ctx, `INSERT INTO restaurants (id, name, code) VALUES ($1, 'Session Test', 'SESS01')`, restaurantID)
	require.NoError(t, err)

	store := NewPostgres(pg.DB)
	first, err := store.CreateAnonymousSession(ctx, restaurantID, nil, time.Hour)
	require.NoError(t, err)

	t.Run("regenerates after a duplicate token", func(t *testing.T) {
		calls := 0
		store.newToken = func() (string, error) {
			calls++
			if calls == 1 {
				return first.SessionToken, nil
			}
			return newToken()
		}

		second, err := store.CreateAnonymousSession(ctx, restaurantID, nil, time.Hour)
		require.NoError(t, err)
		assert.Equal(t, 2, calls)
		assert.NotEqual(t, first.SessionToken, second.SessionToken)
	})

	t.Run("gives up after repeated collisions", func(t *testing.T) {
		store.newToken = func() (string, error) { return first.SessionToken, nil }

		_, err := store.CreateAnonymousSession(ctx, restaurantID, nil, time.Hour)
		require.Error(t, err)
		assert.Contains(t, err.Error(), "create anonymous session")
	})
}
