package state

import (
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/five82/doggallery/internal/dogapi"
)

func TestStore_ZeroValueIsLoading(t *testing.T) {
	var s Store
	snap := s.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.Empty(t, snap.Images)
	assert.Empty(t, snap.Message)
	assert.Zero(t, s.Generation())
}

func TestStore_ResolveBeforeBeginIgnored(t *testing.T) {
	var s Store

	assert.False(t, s.Resolve(0, dogapi.ImageList{"https://a/1.jpg"}, nil))
	assert.False(t, s.Resolve(s.Generation(), nil, errors.New("boom")))
	assert.Equal(t, PhaseLoading, s.Snapshot().Phase)
	assert.True(t, s.LastUpdated().IsZero())
}

func TestStore_ResolveSuccessAndSnapshotClone(t *testing.T) {
	var s Store

	gen := s.Begin()
	before := time.Now()
	applied := s.Resolve(gen, dogapi.ImageList{"https://a/1.jpg", "https://a/2.jpg"}, nil)
	require.True(t, applied)

	snap := s.Snapshot()
	assert.Equal(t, PhaseReady, snap.Phase)
	assert.Equal(t, dogapi.ImageList{"https://a/1.jpg", "https://a/2.jpg"}, snap.Images)
	assert.False(t, s.LastUpdated().Before(before))

	// Returned snapshot should be independent of the stored one.
	snap.Images[0] = "mutated"
	assert.Equal(t, "https://a/1.jpg", s.Snapshot().Images[0])
}

func TestStore_ResolveCopiesInput(t *testing.T) {
	var s Store
	images := dogapi.ImageList{"https://a/1.jpg"}

	gen := s.Begin()
	require.True(t, s.Resolve(gen, images, nil))
	images[0] = "mutated"

	assert.Equal(t, "https://a/1.jpg", s.Snapshot().Images[0])
}

func TestStore_ResolveFailureUsesUserMessage(t *testing.T) {
	var s Store

	gen := s.Begin()
	require.True(t, s.Resolve(gen, nil, errors.New("dial tcp: connection refused")))

	snap := s.Snapshot()
	assert.Equal(t, PhaseFailed, snap.Phase)
	assert.Equal(t, "dial tcp: connection refused", snap.Message)
	assert.Nil(t, snap.Images)
}

func TestStore_SecondResultForGenerationIgnored(t *testing.T) {
	var s Store

	gen := s.Begin()
	require.True(t, s.Resolve(gen, dogapi.ImageList{"a"}, nil))

	// A second result for the same generation must not move Ready anywhere.
	assert.False(t, s.Resolve(gen, nil, errors.New("late")))
	assert.Equal(t, PhaseReady, s.Snapshot().Phase)
}

func TestStore_StaleGenerationDiscarded(t *testing.T) {
	var s Store

	first := s.Begin()
	second := s.Begin()
	require.NotEqual(t, first, second)

	assert.False(t, s.Resolve(first, dogapi.ImageList{"old"}, nil))
	assert.Equal(t, PhaseLoading, s.Snapshot().Phase)

	assert.True(t, s.Resolve(second, dogapi.ImageList{"new"}, nil))
	assert.Equal(t, dogapi.ImageList{"new"}, s.Snapshot().Images)
}

func TestStore_BeginResetsToLoading(t *testing.T) {
	var s Store

	gen := s.Begin()
	require.True(t, s.Resolve(gen, nil, errors.New("boom")))
	require.Equal(t, PhaseFailed, s.Snapshot().Phase)

	s.Begin()
	snap := s.Snapshot()
	assert.Equal(t, PhaseLoading, snap.Phase)
	assert.Empty(t, snap.Message)
	assert.Equal(t, 2, s.Fetches())
}

func TestStore_CloseDiscardsPendingResults(t *testing.T) {
	var s Store

	gen := s.Begin()
	s.Close()

	assert.True(t, s.Closed())
	assert.False(t, s.Resolve(gen, dogapi.ImageList{"late"}, nil))
	assert.Equal(t, PhaseLoading, s.Snapshot().Phase)

	// Begin after close is inert.
	assert.Equal(t, gen, s.Begin())
	assert.Equal(t, 1, s.Fetches())
}

func TestReady_NilImagesBecomeEmptyList(t *testing.T) {
	vs := Ready(nil)
	assert.Equal(t, PhaseReady, vs.Phase)
	assert.NotNil(t, vs.Images)
	assert.Empty(t, vs.Images)
}

func TestPhaseString(t *testing.T) {
	assert.Equal(t, "loading", PhaseLoading.String())
	assert.Equal(t, "failed", PhaseFailed.String())
	assert.Equal(t, "ready", PhaseReady.String())
}
