package session

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"skinlab/internal/app/analysis"
	"skinlab/internal/app/ds"
	"skinlab/internal/app/repository"
)

type fakeClock struct{ t time.Time }

func (c *fakeClock) Now() time.Time { return c.t }

func newTestStore(ttl time.Duration) (*Store, *fakeClock, *analysis.ManualScheduler) {
	sched := analysis.NewManualScheduler()
	repo := repository.New()
	st := NewStore(ttl, func(id string) *analysis.Session {
		return analysis.NewSession(id, repo, analysis.WithScheduler(sched))
	})
	clock := &fakeClock{t: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC)}
	st.now = clock.Now
	return st, clock, sched
}

func TestStore_CreateGet(t *testing.T) {
	st, _, _ := newTestStore(time.Hour)
	sess := st.Create()
	require.NotEmpty(t, sess.ID())

	got, ok := st.Get(sess.ID())
	require.True(t, ok)
	assert.Same(t, sess, got)

	_, ok = st.Get("nope")
	assert.False(t, ok)
	assert.Equal(t, 1, st.Len())
}

func TestStore_GetExtendsLifetime(t *testing.T) {
	st, clock, _ := newTestStore(time.Hour)
	sess := st.Create()

	clock.t = clock.t.Add(50 * time.Minute)
	_, ok := st.Get(sess.ID())
	require.True(t, ok)

	clock.t = clock.t.Add(50 * time.Minute)
	_, ok = st.Get(sess.ID())
	assert.True(t, ok)

	clock.t = clock.t.Add(61 * time.Minute)
	_, ok = st.Get(sess.ID())
	assert.False(t, ok)
	assert.Equal(t, 0, st.Len())
}

func TestStore_EvictCancelsPendingAnalysis(t *testing.T) {
	st, clock, sched := newTestStore(time.Minute)
	sess := st.Create()
	fresh := st.Create()

	require.NoError(t, sess.SubmitFile(ds.UploadedImage{MediaType: "image/png", Data: []byte{1}}))
	require.NoError(t, sess.SelectSymptom(ds.SymptomCracks))
	started, err := sess.Start()
	require.NoError(t, err)
	require.True(t, started)
	require.Equal(t, 1, sched.Pending())

	clock.t = clock.t.Add(2 * time.Minute)
	_, ok := st.Get(fresh.ID())
	require.False(t, ok)

	assert.Equal(t, 1, st.Evict())
	assert.Equal(t, 0, st.Evict())
	assert.Equal(t, 0, sched.Pending())
	assert.Equal(t, ds.PhaseIdle, sess.Phase())
}

func TestStore_Delete(t *testing.T) {
	st, _, _ := newTestStore(0)
	sess := st.Create()
	st.Delete(sess.ID())
	st.Delete(sess.ID())

	_, ok := st.Get(sess.ID())
	assert.False(t, ok)
}

func TestStore_RunStopsOnCancel(t *testing.T) {
	st, _, _ := newTestStore(time.Minute)
	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- st.Run(ctx, time.Millisecond) }()

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(time.Second):
		t.Fatal("janitor did not stop")
	}
}
