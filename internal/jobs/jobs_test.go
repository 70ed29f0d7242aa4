package jobs

import (
	"context"
	"testing"
	"time"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/sirupsen/logrus/hooks/test"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/01moynul/vapeshop-golang/internal/metrics"
	"github.com/01moynul/vapeshop-golang/internal/middleware"
	"github.com/01moynul/vapeshop-golang/internal/models"
	"github.com/01moynul/vapeshop-golang/internal/storage/memory"
)

func TestPruneSessions(t *testing.T) {
	ctx := context.Background()
	store := memory.New()
	m := metrics.New()
	log, _ := test.NewNullLogger()

	require.NoError(t, store.SaveSession(ctx, models.Session{ID: "old", UserID: 1, ExpiresAt: time.Now().Add(-time.Minute)}))
	require.NoError(t, store.SaveSession(ctx, models.Session{ID: "live", UserID: 1, ExpiresAt: time.Now().Add(time.Hour)}))

	s := New(store, nil, m, log)
	n, err := s.PruneSessions(ctx)
	require.NoError(t, err)
	assert.Equal(t, int64(1), n)
	assert.Equal(t, float64(1), testutil.ToFloat64(m.SessionsPruned))

	live, err := store.GetSession(ctx, "live")
	require.NoError(t, err)
	assert.NotNil(t, live)

	n, err = s.PruneSessions(ctx)
	require.NoError(t, err)
	assert.Zero(t, n)
}

func TestStartRegistersJobs(t *testing.T) {
	log, hook := test.NewNullLogger()
	s := New(memory.New(), middleware.NewRateLimiter(5, log), metrics.New(), log)

	require.NoError(t, s.Start())
	assert.Len(t, s.cron.Entries(), 2)

	ctx, cancel := context.WithTimeout(context.Background(), time.Second)
	defer cancel()
	s.Stop(ctx)

	require.NotNil(t, hook.LastEntry())
	assert.Equal(t, "Background jobs started", hook.LastEntry().Message)
}
