package embed_test

import (
	"testing"

	"github.com/PerifanosPrometheus/graspologic/embed"
	"github.com/stretchr/testify/require"
)

// TestSnapshotRestore: a restored model projects exactly like the original.
func TestSnapshotRestore(t *testing.T) {
	m := fitted(t, embed.WithSemiSupervised(true), embed.WithCommittedLimit(3))
	_, err := m.Predict(constRows(t, 2, 10, 1))
	require.NoError(t, err)

	snap, err := m.Snapshot()
	require.NoError(t, err)
	require.Len(t, snap.Committed, 2)

	r, err := embed.Restore(snap)
	require.NoError(t, err)
	require.True(t, r.Fitted())
	require.Equal(t, m.ReferenceSize(), r.ReferenceSize())
	require.Equal(t, m.Vertices(), r.Vertices())
	require.Equal(t, m.InSampleIndices(), r.InSampleIndices())
	require.Equal(t, m.SingularValues(), r.SingularValues())

	x := constRows(t, 1, 12, 0.25)
	want, err := m.Predict(x)
	require.NoError(t, err)
	got, err := r.Predict(x)
	require.NoError(t, err)
	requireClose(t, want, got, 1e-12)
	require.Equal(t, m.ReferenceSize(), r.ReferenceSize())
}

// TestRestore_Invalid rejects inconsistent snapshots.
func TestRestore_Invalid(t *testing.T) {
	_, err := embed.Restore(nil)
	require.ErrorIs(t, err, embed.ErrNilInput)

	snap, err := fitted(t).Snapshot()
	require.NoError(t, err)
	snap.Singular = snap.Singular[:1]
	_, err = embed.Restore(snap)
	require.ErrorIs(t, err, embed.ErrDimensionMismatch)

	snap, err = fitted(t).Snapshot()
	require.NoError(t, err)
	snap.InSample[0] = 99
	_, err = embed.Restore(snap)
	require.ErrorIs(t, err, embed.ErrInSampleIndex)
}
