package service

import (
	"context"
	"testing"

	"hospital-management/internal/testutil"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDiff(t *testing.T) {
	a, b, c, d := uuid.New(), uuid.New(), uuid.New(), uuid.New()

	tests := []struct {
		name       string
		current    []uuid.UUID
		next       []uuid.UUID
		wantAdd    []uuid.UUID
		wantRemove []uuid.UUID
	}{
		{name: "equal sets", current: []uuid.UUID{a, b}, next: []uuid.UUID{b, a}},
		{name: "from empty", next: []uuid.UUID{a, b}, wantAdd: []uuid.UUID{a, b}},
		{name: "to empty", current: []uuid.UUID{a}, wantRemove: []uuid.UUID{a}},
		{
			name:       "overlap",
			current:    []uuid.UUID{a, b, c},
			next:       []uuid.UUID{b, d, d},
			wantAdd:    []uuid.UUID{d},
			wantRemove: []uuid.UUID{a, c},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			toAdd, toRemove := Diff(tt.current, tt.next)
			assert.Equal(t, tt.wantAdd, toAdd)
			assert.Equal(t, tt.wantRemove, toRemove)
		})
	}
}

func TestReconcileWritesOnlyTheDifference(t *testing.T) {
	ctx := context.Background()
	store := testutil.NewStore()
	linker := NewSpecializationLinker(testutil.NewLogger(), testutil.NewDoctorSpecializationRepository(store))

	doctorID := uuid.New()
	cardio, neuro, peds := uuid.New(), uuid.New(), uuid.New()

	require.NoError(t, linker.Reconcile(ctx, nil, doctorID, []uuid.UUID{cardio, neuro}))
	assert.Len(t, store.LinkWrites, 2)

	store.ResetLinkWrites()
	require.NoError(t, linker.Reconcile(ctx, nil, doctorID, []uuid.UUID{neuro, cardio}))
	assert.Empty(t, store.LinkWrites)

	require.NoError(t, linker.Reconcile(ctx, nil, doctorID, []uuid.UUID{neuro, peds}))
	assert.ElementsMatch(t, []testutil.LinkWrite{
		{Op: "remove", DoctorID: doctorID, SpecializationID: cardio},
		{Op: "add", DoctorID: doctorID, SpecializationID: peds},
	}, store.LinkWrites)

	current := store.DoctorLinks[doctorID]
	assert.Len(t, current, 2)
	assert.Contains(t, current, neuro)
	assert.Contains(t, current, peds)

	require.NoError(t, linker.RemoveAll(ctx, nil, doctorID))
	assert.Empty(t, store.DoctorLinks[doctorID])
}
