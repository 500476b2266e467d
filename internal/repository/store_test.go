package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/zenith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStores_AreWired(t *testing.T) {
	stores := map[string]*Store{
		"sqlite": NewSQLiteStore(testutil.NewTestDB(t)),
		"memory": NewMemoryStore(),
	}
	for name, s := range stores {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			require.NotNil(t, s.Goals)
			require.NotNil(t, s.Preferences)
			require.NotNil(t, s.Routine)

			require.NoError(t, s.Goals.Create(ctx, testutil.NewTestGoal("Wired")))
			goals, err := s.Goals.List(ctx)
			require.NoError(t, err)
			assert.Len(t, goals, 1)
		})
	}
}
