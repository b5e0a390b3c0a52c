package usecase

import (
	"context"
	"sync"
	"time"

	"golf-lesson-booking/internal/data/entity"
	"golf-lesson-booking/internal/data/repository"

	"github.com/google/uuid"
)

// In-memory repository fakes. Only the methods the services under test
// reach are meaningfully implemented.

type fakeUserRepo struct {
	users map[uuid.UUID]*entity.User
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: make(map[uuid.UUID]*entity.User)}
}

func (f *fakeUserRepo) Create(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.User, error) {
	return f.users[id], nil
}

func (f *fakeUserRepo) FindByEmail(_ context.Context, email string) (*entity.User, error) {
	for _, user := range f.users {
		if user.Email == email {
			return user, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(_ context.Context, user *entity.User) error {
	f.users[user.ID] = user
	return nil
}

func (f *fakeUserRepo) FindCustomers(_ context.Context) ([]*entity.User, error) {
	var customers []*entity.User
	for _, user := range f.users {
		if user.Role == entity.RoleUser {
			customers = append(customers, user)
		}
	}
	return customers, nil
}

func (f *fakeUserRepo) FindAdminEmails(_ context.Context) ([]string, error) {
	var emails []string
	for _, user := range f.users {
		if user.Role == entity.RoleAdmin && user.IsActive {
			emails = append(emails, user.Email)
		}
	}
	return emails, nil
}

type fakeScheduleRepo struct {
	schedules map[uuid.UUID]*entity.Schedule
	active    map[uuid.UUID]bool
}

func newFakeScheduleRepo() *fakeScheduleRepo {
	return &fakeScheduleRepo{
		schedules: make(map[uuid.UUID]*entity.Schedule),
		active:    make(map[uuid.UUID]bool),
	}
}

func (f *fakeScheduleRepo) Create(_ context.Context, schedule *entity.Schedule) error {
	f.schedules[schedule.ID] = schedule
	return nil
}

func (f *fakeScheduleRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Schedule, error) {
	return f.schedules[id], nil
}

func (f *fakeScheduleRepo) FindUpcoming(_ context.Context, from time.Time) ([]*entity.Schedule, error) {
	var result []*entity.Schedule
	for _, schedule := range f.schedules {
		if !schedule.StartAt.Before(from) {
			result = append(result, schedule)
		}
	}
	return result, nil
}

func (f *fakeScheduleRepo) SetAvailability(_ context.Context, id uuid.UUID, isAvailable bool) error {
	if schedule, ok := f.schedules[id]; ok {
		schedule.IsAvailable = isAvailable
	}
	return nil
}

func (f *fakeScheduleRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.schedules, id)
	return nil
}

func (f *fakeScheduleRepo) HasActiveReservation(_ context.Context, id uuid.UUID) (bool, error) {
	return f.active[id], nil
}

type fakeReservationRepo struct {
	reservations map[uuid.UUID]*entity.Reservation
}

func newFakeReservationRepo() *fakeReservationRepo {
	return &fakeReservationRepo{reservations: make(map[uuid.UUID]*entity.Reservation)}
}

func (f *fakeReservationRepo) Create(_ context.Context, rsv *entity.Reservation) error {
	// Mirrors the unique index: one non-terminal reservation per slot.
	for _, existing := range f.reservations {
		if existing.ScheduleID == rsv.ScheduleID && !existing.IsTerminal() {
			return entity.ErrSlotUnavailable
		}
	}
	stored := *rsv
	f.reservations[rsv.ID] = &stored
	return nil
}

func (f *fakeReservationRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.Reservation, error) {
	rsv, ok := f.reservations[id]
	if !ok {
		return nil, nil
	}
	copied := *rsv
	return &copied, nil
}

func (f *fakeReservationRepo) FindByUserID(_ context.Context, userID uuid.UUID) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, rsv := range f.reservations {
		if rsv.UserID == userID {
			copied := *rsv
			result = append(result, &copied)
		}
	}
	return result, nil
}

func (f *fakeReservationRepo) FindAll(_ context.Context, limit, offset int) ([]*entity.Reservation, error) {
	var result []*entity.Reservation
	for _, rsv := range f.reservations {
		copied := *rsv
		result = append(result, &copied)
	}
	if offset >= len(result) {
		return nil, nil
	}
	result = result[offset:]
	if limit < len(result) {
		result = result[:limit]
	}
	return result, nil
}

func (f *fakeReservationRepo) Count(_ context.Context) (int64, error) {
	return int64(len(f.reservations)), nil
}

func (f *fakeReservationRepo) CountByUserID(_ context.Context, userID uuid.UUID) (int64, error) {
	var count int64
	for _, rsv := range f.reservations {
		if rsv.UserID == userID {
			count++
		}
	}
	return count, nil
}

func (f *fakeReservationRepo) Update(_ context.Context, rsv *entity.Reservation) error {
	stored := *rsv
	f.reservations[rsv.ID] = &stored
	return nil
}

type fakeLessonPlanRepo struct {
	plans         map[uuid.UUID]*entity.LessonPlan
	scheduleCount map[uuid.UUID]int64
}

func newFakeLessonPlanRepo() *fakeLessonPlanRepo {
	return &fakeLessonPlanRepo{
		plans:         make(map[uuid.UUID]*entity.LessonPlan),
		scheduleCount: make(map[uuid.UUID]int64),
	}
}

func (f *fakeLessonPlanRepo) Create(_ context.Context, plan *entity.LessonPlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeLessonPlanRepo) FindByID(_ context.Context, id uuid.UUID) (*entity.LessonPlan, error) {
	return f.plans[id], nil
}

func (f *fakeLessonPlanRepo) FindAll(_ context.Context) ([]*entity.LessonPlan, error) {
	var result []*entity.LessonPlan
	for _, plan := range f.plans {
		result = append(result, plan)
	}
	return result, nil
}

func (f *fakeLessonPlanRepo) FindPublished(_ context.Context) ([]*entity.LessonPlan, error) {
	var result []*entity.LessonPlan
	for _, plan := range f.plans {
		if plan.IsPublished {
			result = append(result, plan)
		}
	}
	return result, nil
}

func (f *fakeLessonPlanRepo) Update(_ context.Context, plan *entity.LessonPlan) error {
	f.plans[plan.ID] = plan
	return nil
}

func (f *fakeLessonPlanRepo) Delete(_ context.Context, id uuid.UUID) error {
	delete(f.plans, id)
	return nil
}

func (f *fakeLessonPlanRepo) CountSchedules(_ context.Context, planID uuid.UUID) (int64, error) {
	return f.scheduleCount[planID], nil
}

type fakeSessionRepo struct {
	sessions map[string]*entity.Session
}

func newFakeSessionRepo() *fakeSessionRepo {
	return &fakeSessionRepo{sessions: make(map[string]*entity.Session)}
}

func (f *fakeSessionRepo) Create(_ context.Context, session *entity.Session) error {
	f.sessions[session.Token.String()] = session
	return nil
}

func (f *fakeSessionRepo) FindValidSession(_ context.Context, token string) (*entity.Session, error) {
	session, ok := f.sessions[token]
	if !ok || session.ExpiresAt.Before(time.Now()) {
		return nil, nil
	}
	return session, nil
}

func (f *fakeSessionRepo) DeleteByToken(_ context.Context, token string) error {
	delete(f.sessions, token)
	return nil
}

// recordingNotifier captures notification calls for assertions.
type recordingNotifier struct {
	mu        sync.Mutex
	created   []*entity.Reservation
	approved  []*entity.Reservation
	rejected  []*entity.Reservation
	requested []*entity.Reservation
	cancelled []*entity.Reservation
}

func (n *recordingNotifier) NotifyReservationCreated(_ context.Context, rsv *entity.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.created = append(n.created, rsv)
}

func (n *recordingNotifier) NotifyReservationApproved(_ context.Context, rsv *entity.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.approved = append(n.approved, rsv)
}

func (n *recordingNotifier) NotifyReservationRejected(_ context.Context, rsv *entity.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.rejected = append(n.rejected, rsv)
}

func (n *recordingNotifier) NotifyCancellationRequested(_ context.Context, rsv *entity.Reservation, _ CancelPolicy) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.requested = append(n.requested, rsv)
}

func (n *recordingNotifier) NotifyReservationCancelled(_ context.Context, rsv *entity.Reservation) {
	n.mu.Lock()
	defer n.mu.Unlock()
	n.cancelled = append(n.cancelled, rsv)
}

type testEnv struct {
	repo     *repository.Repository
	users    *fakeUserRepo
	sessions *fakeSessionRepo
	plans    *fakeLessonPlanRepo
	sched    *fakeScheduleRepo
	rsvs     *fakeReservationRepo
	notifier *recordingNotifier
}

func newTestEnv() *testEnv {
	users := newFakeUserRepo()
	sessions := newFakeSessionRepo()
	plans := newFakeLessonPlanRepo()
	sched := newFakeScheduleRepo()
	rsvs := newFakeReservationRepo()

	return &testEnv{
		repo: &repository.Repository{
			User:        users,
			Session:     sessions,
			LessonPlan:  plans,
			Schedule:    sched,
			Reservation: rsvs,
		},
		users:    users,
		sessions: sessions,
		plans:    plans,
		sched:    sched,
		rsvs:     rsvs,
		notifier: &recordingNotifier{},
	}
}

func (e *testEnv) addCustomer(name string) *entity.User {
	now := time.Now()
	user := &entity.User{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Email:        name + "@example.com",
		Name:         &name,
		PasswordHash: "x",
		Role:         entity.RoleUser,
		IsActive:     true,
	}
	e.users.users[user.ID] = user
	return user
}

func (e *testEnv) addPlan(name string, price, duration int) *entity.LessonPlan {
	now := time.Now()
	plan := &entity.LessonPlan{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:            name,
		Category:        entity.CategoryRegular,
		Price:           price,
		DurationMinutes: duration,
		MaxAttendees:    1,
		IsPublished:     true,
	}
	e.plans.plans[plan.ID] = plan
	return plan
}

func (e *testEnv) addSchedule(plan *entity.LessonPlan, startAt time.Time) *entity.Schedule {
	now := time.Now()
	schedule := &entity.Schedule{
		Base: entity.Base{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		LessonPlanID: plan.ID,
		StartAt:      startAt,
		EndAt:        startAt.Add(time.Duration(plan.DurationMinutes) * time.Minute),
		IsAvailable:  true,
	}
	e.sched.schedules[schedule.ID] = schedule
	return schedule
}
