package collision

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestTracker_TrackAndCount(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("field-a", 111))
	require.NoError(t, tr.Track("field-b", 222))
	require.Equal(t, 2, tr.Count())
	require.False(t, tr.HasCollision())
}

func TestTracker_EmptyLabelRejected(t *testing.T) {
	tr := NewTracker()
	require.Error(t, tr.Track("", 111))
}

func TestTracker_SameLabelDifferentFingerprint(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("field-a", 111))
	require.Error(t, tr.Track("field-a", 222))
}

func TestTracker_FingerprintCollisionSetsFlagNotError(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("field-a", 111))
	require.NoError(t, tr.Track("field-b", 111))
	require.True(t, tr.HasCollision())
}

func TestTracker_Reset(t *testing.T) {
	tr := NewTracker()
	require.NoError(t, tr.Track("field-a", 111))
	tr.Reset()
	require.Equal(t, 0, tr.Count())
	require.False(t, tr.HasCollision())
}
