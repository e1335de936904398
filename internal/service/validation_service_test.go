package service_test

import (
	"net/http"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/model"
	"threadline/web/internal/poller"
	"threadline/web/internal/service"
)

func TestValidationService_TrackStopsWhenNoLongerActive(t *testing.T) {
	env := setupEnv(t)
	statuses := []model.ValidationStatus{model.ValidationPending, model.ValidationActive, model.ValidationExpired}
	var calls int32
	env.router.Get("/validations/{id}", func(w http.ResponseWriter, r *http.Request) {
		n := int(atomic.AddInt32(&calls, 1))
		if n > len(statuses) {
			n = len(statuses)
		}
		writeJSON(w, http.StatusOK, data(model.Validation{ID: 4, DesignID: 21, Status: statuses[n-1]}))
	})
	svc := service.NewValidationService(env.api, env.deps)

	settled := make(chan model.Validation, 1)
	require.NoError(t, svc.Track(env.ctx, 4, func(v model.Validation) { settled <- v }))

	waitFor(t, &calls, 1)
	env.clock.Add(10 * time.Second)
	waitFor(t, &calls, 2)
	assert.Equal(t, poller.StateTracking, svc.TrackState(env.ctx, 4))
	env.clock.Add(10 * time.Second)

	select {
	case v := <-settled:
		assert.Equal(t, model.ValidationExpired, v.Status)
	case <-time.After(time.Second):
		t.Fatal("validation never settled")
	}
	require.Eventually(t, func() bool { return svc.TrackState(env.ctx, 4) == poller.StateSettled }, time.Second, 2*time.Millisecond)
}
