package usecase

import (
	"context"
	"testing"
	"time"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/dto/request"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

func newReservationService(env *testEnv) ReservationService {
	return NewReservationService(env.repo, zap.NewNop(), env.notifier)
}

func waitForNotifications(t *testing.T, check func() bool) {
	t.Helper()
	deadline := time.Now().Add(time.Second)
	for time.Now().Before(deadline) {
		if check() {
			return
		}
		time.Sleep(10 * time.Millisecond)
	}
	t.Fatal("notification was not delivered in time")
}

func TestReservationCreate_Succeeds(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user := env.addCustomer("hanako")
	plan := env.addPlan("ラウンドレッスン", 13000, 120)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 14))

	concern := "スライスを直したい"
	resp, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		Concern:            &concern,
		AgreedCancelPolicy: true,
		AgreedPhotoPost:    true,
	})

	require.NoError(t, err)
	require.NotNil(t, resp)

	assert.Equal(t, entity.ReservationStatusPending, resp.Status)
	assert.NotEmpty(t, resp.Code)
	assert.Equal(t, plan.Name, resp.PlanName)
	assert.Equal(t, plan.Price, resp.PlanPrice)
	assert.Equal(t, plan.DurationMinutes, resp.PlanDuration)
	assert.Equal(t, user.Email, resp.UserEmail)
	assert.True(t, resp.AgreedCancelPolicy)

	// Far enough out that cancelling would still be free.
	require.NotNil(t, resp.CancelPolicy)
	assert.Equal(t, entity.CancelTierFree, resp.CancelPolicy.Tier)

	waitForNotifications(t, func() bool {
		env.notifier.mu.Lock()
		defer env.notifier.mu.Unlock()
		return len(env.notifier.created) == 1
	})
}

func TestReservationCreate_RequiresPolicyAgreement(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user := env.addCustomer("taro")
	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 14))

	_, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: false,
	})

	assert.ErrorIs(t, err, entity.ErrAgreementRequired)
}

func TestReservationCreate_RejectsBlockedSlot(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user := env.addCustomer("taro")
	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 14))
	schedule.IsAvailable = false

	_, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: true,
	})

	assert.ErrorIs(t, err, entity.ErrSlotUnavailable)
}

func TestReservationCreate_RejectsTakenSlot(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user := env.addCustomer("taro")
	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 14))
	env.sched.active[schedule.ID] = true

	_, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: true,
	})

	assert.ErrorIs(t, err, entity.ErrSlotUnavailable)
}

func TestReservationCreate_RejectsPastSlot(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user := env.addCustomer("taro")
	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().Add(-time.Hour))

	_, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: true,
	})

	assert.ErrorIs(t, err, entity.ErrSlotUnavailable)
}

func TestReservationCreate_UnknownSchedule(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user := env.addCustomer("taro")

	_, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         uuid.New().String(),
		AgreedCancelPolicy: true,
	})

	assert.ErrorIs(t, err, entity.ErrNotFound)
}

func TestReservationCreate_InsertRejectsSecondActiveReservation(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	first := env.addCustomer("first")
	second := env.addCustomer("second")
	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, 14))

	_, err := svc.Create(context.Background(), first.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: true,
	})
	require.NoError(t, err)

	// A request racing the first insert sees the slot as still open in
	// the availability pre-check; the unique constraint on the insert
	// is what refuses it.
	env.sched.active[schedule.ID] = false

	_, err = svc.Create(context.Background(), second.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: true,
	})
	assert.ErrorIs(t, err, entity.ErrSlotUnavailable)

	count, err := env.rsvs.Count(context.Background())
	require.NoError(t, err)
	assert.EqualValues(t, 1, count)
}

func createTestReservation(t *testing.T, env *testEnv, svc ReservationService, daysOut int) (*entity.User, uuid.UUID) {
	t.Helper()

	user := env.addCustomer("customer")
	plan := env.addPlan("通常レッスン", 8000, 60)
	schedule := env.addSchedule(plan, time.Now().AddDate(0, 0, daysOut))

	resp, err := svc.Create(context.Background(), user.ID.String(), &request.CreateReservationRequest{
		ScheduleID:         schedule.ID.String(),
		AgreedCancelPolicy: true,
	})
	require.NoError(t, err)

	id, err := uuid.Parse(resp.ID)
	require.NoError(t, err)

	return user, id
}

func TestReservationApprove_PendingBecomesConfirmed(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	_, id := createTestReservation(t, env, svc, 14)

	resp, err := svc.Approve(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusConfirmed, resp.Status)

	waitForNotifications(t, func() bool {
		env.notifier.mu.Lock()
		defer env.notifier.mu.Unlock()
		return len(env.notifier.approved) == 1
	})
}

func TestReservationApprove_RejectsTerminalState(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	_, id := createTestReservation(t, env, svc, 14)

	_, err := svc.Reject(context.Background(), id.String(), &request.RejectReservationRequest{})
	require.NoError(t, err)

	_, err = svc.Approve(context.Background(), id.String())
	assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
}

func TestReservationReject_OnlyFromPending(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	_, id := createTestReservation(t, env, svc, 14)

	_, err := svc.Approve(context.Background(), id.String())
	require.NoError(t, err)

	_, err = svc.Reject(context.Background(), id.String(), &request.RejectReservationRequest{})
	assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)
}

func TestReservationComplete_OnlyFromConfirmed(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	_, id := createTestReservation(t, env, svc, 14)

	_, err := svc.Complete(context.Background(), id.String())
	assert.ErrorIs(t, err, entity.ErrInvalidStateTransition)

	_, err = svc.Approve(context.Background(), id.String())
	require.NoError(t, err)

	resp, err := svc.Complete(context.Background(), id.String())
	require.NoError(t, err)
	assert.Equal(t, entity.ReservationStatusCompleted, resp.Status)
}

func TestRequestCancellation_PreviewDoesNotMutate(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user, id := createTestReservation(t, env, svc, 4)

	resp, err := svc.RequestCancellation(context.Background(), user.ID.String(), id.String(), &request.RequestCancellationRequest{
		Confirm: false,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReservationStatusPending, resp.Status)
	assert.False(t, resp.CancelRequested)
	require.NotNil(t, resp.CancelPolicy)
	assert.Equal(t, entity.CancelTierHalf, resp.CancelPolicy.Tier)
	assert.Equal(t, 4000, resp.CancelPolicy.FeeAmount)

	stored, err := env.rsvs.FindByID(context.Background(), id)
	require.NoError(t, err)
	assert.False(t, stored.CancelRequested)
	assert.Nil(t, stored.CancelTier)
}

func TestRequestCancellation_FreeTierCancelsImmediately(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user, id := createTestReservation(t, env, svc, 10)

	resp, err := svc.RequestCancellation(context.Background(), user.ID.String(), id.String(), &request.RequestCancellationRequest{
		Confirm: true,
	})
	require.NoError(t, err)

	assert.Equal(t, entity.ReservationStatusCancelled, resp.Status)
	require.NotNil(t, resp.CancelTier)
	assert.Equal(t, entity.CancelTierFree, *resp.CancelTier)
	assert.NotNil(t, resp.CancelledAt)
	assert.False(t, resp.CancelRequested)

	waitForNotifications(t, func() bool {
		env.notifier.mu.Lock()
		defer env.notifier.mu.Unlock()
		return len(env.notifier.cancelled) == 1
	})
}

func TestRequestCancellation_HalfTierNeedsApproval(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user, id := createTestReservation(t, env, svc, 4)

	reason := "急用が入りました"
	resp, err := svc.RequestCancellation(context.Background(), user.ID.String(), id.String(), &request.RequestCancellationRequest{
		Confirm: true,
		Reason:  &reason,
	})
	require.NoError(t, err)

	// Status must not change until the instructor approves.
	assert.Equal(t, entity.ReservationStatusPending, resp.Status)
	assert.True(t, resp.CancelRequested)
	require.NotNil(t, resp.CancelTier)
	assert.Equal(t, entity.CancelTierHalf, *resp.CancelTier)
	assert.Nil(t, resp.CancelledAt)

	waitForNotifications(t, func() bool {
		env.notifier.mu.Lock()
		defer env.notifier.mu.Unlock()
		return len(env.notifier.requested) == 1
	})

	// A second request on the same reservation is refused.
	_, err = svc.RequestCancellation(context.Background(), user.ID.String(), id.String(), &request.RequestCancellationRequest{
		Confirm: true,
	})
	assert.ErrorIs(t, err, entity.ErrNotCancellable)
}

func TestRequestCancellation_OnlyOwner(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	_, id := createTestReservation(t, env, svc, 10)
	stranger := env.addCustomer("stranger")

	_, err := svc.RequestCancellation(context.Background(), stranger.ID.String(), id.String(), &request.RequestCancellationRequest{
		Confirm: true,
	})
	assert.ErrorIs(t, err, entity.ErrForbidden)
}

func TestApproveCancellation_CompletesRequest(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user, id := createTestReservation(t, env, svc, 4)

	_, err := svc.RequestCancellation(context.Background(), user.ID.String(), id.String(), &request.RequestCancellationRequest{
		Confirm: true,
	})
	require.NoError(t, err)

	resp, err := svc.ApproveCancellation(context.Background(), id.String())
	require.NoError(t, err)

	assert.Equal(t, entity.ReservationStatusCancelled, resp.Status)
	assert.NotNil(t, resp.CancelledAt)
	require.NotNil(t, resp.CancelTier)
	assert.Equal(t, entity.CancelTierHalf, *resp.CancelTier)
}

func TestApproveCancellation_RequiresPendingRequest(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	_, id := createTestReservation(t, env, svc, 4)

	_, err := svc.ApproveCancellation(context.Background(), id.String())
	assert.ErrorIs(t, err, entity.ErrNotCancellable)
}

func TestGetByID_OwnerAndAdminOnly(t *testing.T) {
	env := newTestEnv()
	svc := newReservationService(env)

	user, id := createTestReservation(t, env, svc, 10)
	stranger := env.addCustomer("stranger")

	_, err := svc.GetByID(context.Background(), id.String(), user.ID.String(), false)
	assert.NoError(t, err)

	_, err = svc.GetByID(context.Background(), id.String(), stranger.ID.String(), false)
	assert.ErrorIs(t, err, entity.ErrForbidden)

	_, err = svc.GetByID(context.Background(), id.String(), stranger.ID.String(), true)
	assert.NoError(t, err)
}
