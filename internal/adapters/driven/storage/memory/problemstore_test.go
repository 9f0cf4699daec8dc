package memory

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/solvio-labs/simplexa/internal/core/domain"
)

func storedProblem(t *testing.T, id, name string) *domain.Problem {
	t.Helper()
	lp := domain.LinearProgram{}
	require.NoError(t, lp.SetVariableCount(1))
	require.NoError(t, lp.SetObjective(domain.Maximize, []float64{1}))
	require.NoError(t, lp.AddConstraint(domain.Constraint{
		Coefficients: []float64{1},
		Relation:     domain.LessEqual,
		RHS:          3,
	}))

	now := time.Now().UTC()
	return &domain.Problem{
		ID:         id,
		Name:       name,
		Definition: lp,
		CreatedAt:  now,
		UpdatedAt:  now,
	}
}

func TestProblemStore_SaveAndGet(t *testing.T) {
	store := NewProblemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storedProblem(t, "id-1", "first")))

	got, err := store.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "first", got.Name)

	_, err = store.Get(ctx, "missing")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProblemStore_GetByName(t *testing.T) {
	store := NewProblemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storedProblem(t, "id-1", "first")))

	got, err := store.GetByName(ctx, "first")
	require.NoError(t, err)
	assert.Equal(t, "id-1", got.ID)

	_, err = store.GetByName(ctx, "second")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestProblemStore_SaveOverwritesByID(t *testing.T) {
	store := NewProblemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storedProblem(t, "id-1", "before")))
	require.NoError(t, store.Save(ctx, storedProblem(t, "id-1", "after")))

	got, err := store.Get(ctx, "id-1")
	require.NoError(t, err)
	assert.Equal(t, "after", got.Name)
}

func TestProblemStore_List(t *testing.T) {
	store := NewProblemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storedProblem(t, "id-1", "zeta")))
	require.NoError(t, store.Save(ctx, storedProblem(t, "id-2", "alpha")))

	problems, err := store.List(ctx)
	require.NoError(t, err)
	require.Len(t, problems, 2)
	assert.Equal(t, "alpha", problems[0].Name)
	assert.Equal(t, "zeta", problems[1].Name)
}

func TestProblemStore_Delete(t *testing.T) {
	store := NewProblemStore()
	ctx := context.Background()

	require.NoError(t, store.Save(ctx, storedProblem(t, "id-1", "first")))
	require.NoError(t, store.Delete(ctx, "id-1"))

	_, err := store.Get(ctx, "id-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)

	assert.ErrorIs(t, store.Delete(ctx, "id-1"), domain.ErrNotFound)
}
