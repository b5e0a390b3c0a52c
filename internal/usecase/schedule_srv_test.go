package usecase

import (
	"context"
	"testing"
	"time"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newScheduleService(env *testEnv) ScheduleService {
	return NewScheduleService(env.repo, zap.NewNop())
}

func TestScheduleCreate_DerivesEndFromPlanDuration(t *testing.T) {
	env := newTestEnv()
	svc := newScheduleService(env)

	plan := env.addPlan("通常レッスン", 8000, 90)
	startAt := time.Now().AddDate(0, 0, 7).Truncate(time.Second)

	resp, err := svc.Create(context.Background(), &request.CreateScheduleRequest{
		LessonPlanID: plan.ID.String(),
		StartAt:      startAt.Format(time.RFC3339),
	})
	require.NoError(t, err)

	assert.Equal(t, 90*time.Minute, resp.EndAt.Sub(resp.StartAt))
	assert.True(t, resp.IsAvailable)
	assert.True(t, resp.IsBookable)
	assert.Equal(t, plan.Name, resp.PlanName)
}

func TestScheduleCreate_UnknownPlan(t *testing.T) {
	env := newTestEnv()
	svc := newScheduleService(env)

	_, err := svc.Create(context.Background(), &request.CreateScheduleRequest{
		LessonPlanID: "2f5b0c1a-9a65-4a7e-b9a4-0a3c1f2d3e4f",
		StartAt:      time.Now().AddDate(0, 0, 7).Format(time.RFC3339),
	})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestScheduleDelete_RefusesActiveReservation(t *testing.T) {
	env := newTestEnv()
	svc := newScheduleService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 7))
	env.sched.active[schedule.ID] = true

	err := svc.Delete(context.Background(), schedule.ID.String())
	assert.ErrorIs(t, err, entity.ErrSlotInUse)

	// Slot must still exist.
	stored, findErr := env.sched.FindByID(context.Background(), schedule.ID)
	require.NoError(t, findErr)
	assert.NotNil(t, stored)
}

func TestScheduleDelete_RemovesFreeSlot(t *testing.T) {
	env := newTestEnv()
	svc := newScheduleService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 7))

	err := svc.Delete(context.Background(), schedule.ID.String())
	require.NoError(t, err)

	stored, findErr := env.sched.FindByID(context.Background(), schedule.ID)
	require.NoError(t, findErr)
	assert.Nil(t, stored)
}

func TestScheduleBookability_DerivedFromReservations(t *testing.T) {
	env := newTestEnv()
	svc := newScheduleService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)
	open := env.addSchedule(plan, time.Now().AddDate(0, 0, 7))
	taken := env.addSchedule(plan, time.Now().AddDate(0, 0, 8))
	blocked := env.addSchedule(plan, time.Now().AddDate(0, 0, 9))

	env.sched.active[taken.ID] = true
	blocked.IsAvailable = false

	schedules, err := svc.ListUpcoming(context.Background())
	require.NoError(t, err)
	require.Len(t, schedules, 3)

	byID := make(map[string]bool, len(schedules))
	for _, s := range schedules {
		byID[s.ID] = s.IsBookable
	}

	assert.True(t, byID[open.ID.String()])
	assert.False(t, byID[taken.ID.String()])
	assert.False(t, byID[blocked.ID.String()])
}

func TestScheduleSetAvailability_Toggles(t *testing.T) {
	env := newTestEnv()
	svc := newScheduleService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 7))

	resp, err := svc.SetAvailability(context.Background(), schedule.ID.String(), &request.SetAvailabilityRequest{
		IsAvailable: false,
	})
	require.NoError(t, err)

	assert.False(t, resp.IsAvailable)
	assert.False(t, resp.IsBookable)
}
