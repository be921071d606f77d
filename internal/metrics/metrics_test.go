package metrics

import (
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"mesa-rewards/internal/core/domain"
)

func TestCollectorCounts(t *testing.T) {
	c := NewCollector("test")

	c.LoadRequested(domain.RewardStoryUnlock)
	c.SlotTransition(domain.RewardStoryUnlock, domain.SlotEmpty, domain.SlotLoading)
	c.DisplayStarted(domain.RewardStoryUnlock)
	c.DisplayFinished(domain.RewardStoryUnlock)
	c.RewardResolved(domain.RewardOutcome{Granted: true, Amount: 10, RewardKind: domain.RewardStoryUnlock})
	c.RewardResolved(domain.Declined(domain.RewardTranslation, domain.DeclineCooldown))

	assert.Equal(t, 1.0, testutil.ToFloat64(c.loadRequests.WithLabelValues("story_unlock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.slotTransitions.WithLabelValues("story_unlock", "empty", "loading")))
	assert.Equal(t, 0.0, testutil.ToFloat64(c.displaysInFlight.WithLabelValues("story_unlock")))
	assert.Equal(t, 10.0, testutil.ToFloat64(c.granted.WithLabelValues("story_unlock")))
	assert.Equal(t, 1.0, testutil.ToFloat64(c.outcomes.WithLabelValues("translation", "false", "cooldown")))
}

func TestCollectorHandler(t *testing.T) {
	c := NewCollector("test")
	c.LoadRequested(domain.RewardTranslation)

	rec := httptest.NewRecorder()
	c.Handler().ServeHTTP(rec, httptest.NewRequest("GET", "/metrics", nil))

	require.Equal(t, 200, rec.Code)
	assert.True(t, strings.Contains(rec.Body.String(), `test_slot_load_requests_total{reward_kind="translation"} 1`))
}
