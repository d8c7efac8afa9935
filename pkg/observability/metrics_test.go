package observability_test

import (
	"context"
	"testing"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/aretw0/bough"
	"github.com/aretw0/bough/pkg/observability"
)

func TestMetrics_CountsVisits(t *testing.T) {
	reg := prometheus.NewRegistry()
	metrics := observability.New(reg)

	leaf := bough.NewLeaf("end", "")
	root := bough.NewDecision[string](func(any) int { return 0 }, "gate")

	tree := bough.New(root, bough.WithLifecycleHooks(metrics.Hooks()))
	tree.AddChild(root, leaf)

	for i := 0; i < 3; i++ {
		_, err := tree.Traverse(context.Background(), nil)
		require.NoError(t, err)
	}

	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.NodeVisits.WithLabelValues("gate")))
	assert.Equal(t, float64(3), testutil.ToFloat64(metrics.NodeVisits.WithLabelValues("(unlabeled)")))

	count := testutil.CollectAndCount(metrics.TraversalDuration)
	assert.Equal(t, 1, count, "duration histogram should be collectable")
}
