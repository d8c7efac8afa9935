package recommend_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/bough/pkg/recommend"
)

func TestBuild_Recommendations(t *testing.T) {
	tree := recommend.Build()
	ctx := context.Background()

	cases := []struct {
		name  string
		prefs recommend.Preferences
		want  string
	}{
		{"SummerShoestring", recommend.Preferences{Season: "summer", Budget: 300}, "camping by the lake"},
		{"SummerOutdoor", recommend.Preferences{Season: "summer", Budget: 1200, Outdoor: true}, "beach resort on the coast"},
		{"SpringIndoor", recommend.Preferences{Season: "spring", Budget: 1200}, "city break with museums"},
		{"SummerPremium", recommend.Preferences{Season: "summer", Budget: 5000}, "island hopping in Greece"},
		{"WinterBigGroup", recommend.Preferences{Season: "winter", Budget: 900, Party: 6}, "big cabin weekend"},
		{"WinterBudget", recommend.Preferences{Season: "winter", Budget: 500, Party: 2}, "hostel city hop"},
		{"WinterSki", recommend.Preferences{Season: "winter", Budget: 1500, Party: 2, Outdoor: true}, "ski week in the Alps"},
		{"AutumnSpa", recommend.Preferences{Season: "autumn", Budget: 1500, Party: 2}, "spa retreat in the mountains"},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			res, err := tree.Traverse(ctx, tc.prefs)
			require.NoError(t, err)
			assert.Equal(t, tc.want, res.Value)
		})
	}
}

func TestBuild_UnknownSeasonStopsAtRoot(t *testing.T) {
	tree := recommend.Build()

	res, err := tree.Traverse(context.Background(), recommend.Preferences{Season: "monsoon"})
	require.NoError(t, err)

	// Stopping at the root is the documented "no recommendation" outcome.
	assert.Empty(t, res.Value)
	assert.Equal(t, []string{"checked the season"}, res.Effects)
}

func TestBuild_MapInput(t *testing.T) {
	tree := recommend.Build()

	// The shape a JSON body takes after decoding: strings and float64s.
	input := map[string]any{
		"season":  "winter",
		"budget":  float64(1500),
		"party":   float64(2),
		"outdoor": true,
	}

	res, err := tree.Traverse(context.Background(), input)
	require.NoError(t, err)
	assert.Equal(t, "ski week in the Alps", res.Value)
	assert.Equal(t, []string{"checked the season", "counted the party", "checked the budget"}, res.Effects)
}

func TestBuild_UnsupportedInputShape(t *testing.T) {
	tree := recommend.Build()

	res, err := tree.Traverse(context.Background(), 42)
	require.NoError(t, err)
	assert.Empty(t, res.Value)
}

func TestLoadPreferences(t *testing.T) {
	path := filepath.Join(t.TempDir(), "prefs.yaml")
	content := []byte("season: winter\nbudget: 1200\nparty: 2\noutdoor: true\n")
	require.NoError(t, os.WriteFile(path, content, 0o644))

	prefs, err := recommend.LoadPreferences(path)
	require.NoError(t, err)

	assert.Equal(t, "winter", prefs.Season)
	assert.Equal(t, float64(1200), prefs.Budget)
	assert.Equal(t, 2, prefs.Party)
	assert.True(t, prefs.Outdoor)
}

func TestLoadPreferences_Missing(t *testing.T) {
	_, err := recommend.LoadPreferences(filepath.Join(t.TempDir(), "absent.yaml"))
	assert.Error(t, err)
}
