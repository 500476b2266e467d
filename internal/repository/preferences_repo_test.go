package repository

import (
	"context"
	"testing"

	"github.com/alexanderramin/zenith/internal/domain"
	"github.com/alexanderramin/zenith/internal/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func preferencesRepoImpls(t *testing.T) map[string]PreferencesRepo {
	return map[string]PreferencesRepo{
		"sqlite": NewSQLitePreferencesRepo(testutil.NewTestDB(t)),
		"memory": NewMemoryPreferencesRepo(),
	}
}

func TestPreferencesRepo_NotFoundUntilStored(t *testing.T) {
	for name, repo := range preferencesRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			_, err := repo.Get(context.Background())
			assert.ErrorIs(t, err, ErrNotFound)
		})
	}
}

func TestPreferencesRepo_UpsertReplaces(t *testing.T) {
	for name, repo := range preferencesRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			first := domain.DefaultPreferences()
			require.NoError(t, repo.Upsert(ctx, &first))

			second := domain.UserPreferences{
				WakeUpTime: "05:30",
				SleepTime:  "21:45",
				FocusTime:  domain.FocusAfternoon,
				Interests:  []string{"Chess", "Jazz \"bebop\""},
			}
			require.NoError(t, repo.Upsert(ctx, &second))

			got, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Equal(t, second, *got)
		})
	}
}

func TestPreferencesRepo_EmptyInterests(t *testing.T) {
	for name, repo := range preferencesRepoImpls(t) {
		t.Run(name, func(t *testing.T) {
			ctx := context.Background()
			p := domain.DefaultPreferences()
			p.Interests = []string{}
			require.NoError(t, repo.Upsert(ctx, &p))

			got, err := repo.Get(ctx)
			require.NoError(t, err)
			assert.Empty(t, got.Interests)
		})
	}
}

func TestMemoryPreferencesRepo_Isolation(t *testing.T) {
	repo := NewMemoryPreferencesRepo()
	ctx := context.Background()
	p := domain.DefaultPreferences()
	require.NoError(t, repo.Upsert(ctx, &p))

	p.Interests[0] = "Mutated"
	got, err := repo.Get(ctx)
	require.NoError(t, err)
	assert.Equal(t, "Tech", got.Interests[0])
}
