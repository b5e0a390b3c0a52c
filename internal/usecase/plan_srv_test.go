package usecase

import (
	"context"
	"testing"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/dto/request"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newPlanService(env *testEnv) LessonPlanService {
	return NewLessonPlanService(env.repo, zap.NewNop())
}

func TestPlanListPublished_HidesDrafts(t *testing.T) {
	env := newTestEnv()
	svc := newPlanService(env)

	published := env.addPlan("通常レッスン", 8000, 60)
	draft := env.addPlan("新プラン", 10000, 90)
	draft.IsPublished = false

	plans, err := svc.ListPublished(context.Background())
	require.NoError(t, err)

	require.Len(t, plans, 1)
	assert.Equal(t, published.ID.String(), plans[0].ID)
}

func TestPlanUpdate_PartialFields(t *testing.T) {
	env := newTestEnv()
	svc := newPlanService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)

	newPrice := 9000
	resp, err := svc.Update(context.Background(), plan.ID.String(), &request.LessonPlanUpdateRequest{
		Price: &newPrice,
	})
	require.NoError(t, err)

	assert.Equal(t, 9000, resp.Price)
	assert.Equal(t, "通常レッスン", resp.Name)
	assert.Equal(t, 60, resp.DurationMinutes)
}

func TestPlanDelete_RefusesWhenScheduled(t *testing.T) {
	env := newTestEnv()
	svc := newPlanService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)
	env.plans.scheduleCount[plan.ID] = 2

	err := svc.Delete(context.Background(), plan.ID.String())
	assert.ErrorIs(t, err, entity.ErrSlotInUse)
}

func TestPlanDelete_RemovesUnscheduled(t *testing.T) {
	env := newTestEnv()
	svc := newPlanService(env)

	plan := env.addPlan("通常レッスン", 8000, 60)

	err := svc.Delete(context.Background(), plan.ID.String())
	require.NoError(t, err)

	stored, findErr := env.plans.FindByID(context.Background(), plan.ID)
	require.NoError(t, findErr)
	assert.Nil(t, stored)
}
