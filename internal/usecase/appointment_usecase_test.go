package usecase

import (
	"context"
	"testing"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type appointmentFixture struct {
	uc         *AppointmentUseCase
	repo       *fakeAppointmentRepo
	cache      *fakeCache
	notifier   *recordingNotifier
	specialist *entity.User
	member     *entity.User
	other      *entity.User
}

func newAppointmentFixture(appts ...*entity.Appointment) *appointmentFixture {
	specialist := adminUser("specialist-1", "Dr. Amel")
	member := memberUser("user-1", "Sami")
	other := memberUser("user-2", "Lina")
	repo := newFakeAppointmentRepo(appts...)
	notifier := &recordingNotifier{}
	cache := newFakeCache()
	uc := NewAppointmentUseCase(repo, newFakeUserRepo(specialist, member, other), &seqUUID{}, notifier, nopLogger, fakeConfig{})
	uc.SetCache(cache)
	return &appointmentFixture{uc: uc, repo: repo, cache: cache, notifier: notifier, specialist: specialist, member: member, other: other}
}

func day(date string) time.Time {
	d, _ := time.Parse("2006-01-02", date)
	return d
}

func validBooking() usecasecontract.BookingInput {
	return usecasecontract.BookingInput{
		SpecialistID: "specialist-1",
		Date:         "2025-06-10",
		StartTime:    "10:00",
		Type:         entity.AppointmentTypeVideo,
		Timezone:     "Africa/Tunis",
	}
}

func TestGetAvailabilityRemovesBookedStarts(t *testing.T) {
	f := newAppointmentFixture(
		&entity.Appointment{ID: "a1", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "10:00", Status: entity.AppointmentStatusPending},
		&entity.Appointment{ID: "a2", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "14:00", Status: entity.AppointmentStatusConfirmed},
		&entity.Appointment{ID: "a3", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "11:00", Status: entity.AppointmentStatusCancelled},
		&entity.Appointment{ID: "a4", SpecialistID: "specialist-1", Date: day("2025-06-11"), StartTime: "09:00", Status: entity.AppointmentStatusPending},
	)
	ctx := context.Background()

	av, err := f.uc.GetAvailability(ctx, actorOf(f.member), "specialist-1", "2025-06-10", "")
	require.NoError(t, err)

	starts := make([]string, 0, len(av.Slots))
	for _, s := range av.Slots {
		starts = append(starts, s.StartTime)
	}
	assert.Equal(t, []string{"09:00", "11:00", "12:00", "13:00", "15:00", "16:00"}, starts)
	assert.Len(t, av.BookedAppointments, 2)
	assert.Equal(t, "2025-06-10", av.Date)

	// second read is served from cache
	_, err = f.uc.GetAvailability(ctx, actorOf(f.member), "specialist-1", "2025-06-10", "")
	require.NoError(t, err)
	assert.Equal(t, 1, f.repo.holdingCalls)
}

func TestGetAvailabilityValidation(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	_, err := f.uc.GetAvailability(ctx, actorOf(f.member), "", "2025-06-10", "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	_, err = f.uc.GetAvailability(ctx, actorOf(f.member), "specialist-1", "10/06/2025", "")
	assert.ErrorIs(t, err, apperror.ErrValidation)
	_, err = f.uc.GetAvailability(ctx, actorOf(f.member), "specialist-1", "2025-06-10", "Nowhere/City")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestBookCreatesPendingAndNotifiesBothParties(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	// warm the cache so invalidation is observable
	_, err := f.uc.GetAvailability(ctx, actorOf(f.member), "specialist-1", "2025-06-10", "")
	require.NoError(t, err)
	require.NotEmpty(t, f.cache.data)

	appt, err := f.uc.Book(ctx, actorOf(f.member), validBooking())
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusPending, appt.Status)
	assert.Equal(t, "11:00", appt.EndTime)
	assert.Equal(t, 60, appt.Duration)
	assert.Equal(t, "Dr. Amel", appt.SpecialistName)
	assert.Equal(t, f.member.Email, appt.UserEmail)
	assert.Equal(t, day("2025-06-10"), appt.Date)
	assert.Empty(t, f.cache.data)

	assert.Eventually(t, func() bool { return f.notifier.count() == 2 }, time.Second, 10*time.Millisecond)
	assert.Equal(t, []string{f.specialist.Email, f.member.Email}, f.notifier.recipients())
}

func TestBookSameDayConflict(t *testing.T) {
	f := newAppointmentFixture(
		&entity.Appointment{ID: "a1", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "15:00", Status: entity.AppointmentStatusConfirmed},
	)
	// a different start time on the same day is still refused
	_, err := f.uc.Book(context.Background(), actorOf(f.member), validBooking())
	assert.ErrorIs(t, err, apperror.ErrConflict)
	assert.Len(t, f.repo.appointments, 1)
}

func TestBookIgnoresReleasedAppointments(t *testing.T) {
	f := newAppointmentFixture(
		&entity.Appointment{ID: "a1", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "10:00", Status: entity.AppointmentStatusRejected},
	)
	_, err := f.uc.Book(context.Background(), actorOf(f.member), validBooking())
	assert.NoError(t, err)
}

func TestBookValidationAndLookup(t *testing.T) {
	f := newAppointmentFixture()
	ctx := context.Background()

	cases := map[string]struct {
		mutate func(*usecasecontract.BookingInput)
		kind   error
	}{
		"bad date":        {func(in *usecasecontract.BookingInput) { in.Date = "2025-02-30" }, apperror.ErrValidation},
		"bad start":       {func(in *usecasecontract.BookingInput) { in.StartTime = "25:00" }, apperror.ErrValidation},
		"end before":      {func(in *usecasecontract.BookingInput) { in.EndTime = "09:00" }, apperror.ErrValidation},
		"bad type":        {func(in *usecasecontract.BookingInput) { in.Type = "carrier_pigeon" }, apperror.ErrValidation},
		"bad timezone":    {func(in *usecasecontract.BookingInput) { in.Timezone = "Mars/Base" }, apperror.ErrValidation},
		"negative length": {func(in *usecasecontract.BookingInput) { in.Duration = -5 }, apperror.ErrValidation},
		"no specialist":   {func(in *usecasecontract.BookingInput) { in.SpecialistID = "ghost" }, apperror.ErrNotFound},
		"not specialist":  {func(in *usecasecontract.BookingInput) { in.SpecialistID = "user-2" }, apperror.ErrNotFound},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			in := validBooking()
			tc.mutate(&in)
			_, err := f.uc.Book(ctx, actorOf(f.member), in)
			assert.ErrorIs(t, err, tc.kind)
		})
	}

	_, err := f.uc.Book(ctx, entity.Actor{UserID: "deleted-user", Role: entity.UserRoleUser}, validBooking())
	assert.ErrorIs(t, err, apperror.ErrNotFound)
}

func TestListScopesByRole(t *testing.T) {
	f := newAppointmentFixture(
		&entity.Appointment{ID: "a2", UserID: "user-1", SpecialistID: "specialist-1", Date: day("2025-06-11"), StartTime: "09:00", Status: entity.AppointmentStatusPending},
		&entity.Appointment{ID: "a1", UserID: "user-1", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "10:00", Status: entity.AppointmentStatusConfirmed},
		&entity.Appointment{ID: "a3", UserID: "user-2", SpecialistID: "specialist-9", Date: day("2025-06-10"), StartTime: "10:00", Status: entity.AppointmentStatusPending},
	)
	ctx := context.Background()

	mine, err := f.uc.List(ctx, actorOf(f.member), "")
	require.NoError(t, err)
	require.Len(t, mine, 2)
	assert.Equal(t, "a1", mine[0].ID)

	asSpecialist, err := f.uc.List(ctx, actorOf(f.specialist), "pending")
	require.NoError(t, err)
	require.Len(t, asSpecialist, 1)
	assert.Equal(t, "a2", asSpecialist[0].ID)

	_, err = f.uc.List(ctx, actorOf(f.member), "archived")
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestUpdateTransitions(t *testing.T) {
	link := "https://meet.example.com/xyz"
	f := newAppointmentFixture(
		&entity.Appointment{ID: "a1", UserID: "user-1", UserEmail: "user-1@mail.example", SpecialistID: "specialist-1", SpecialistEmail: "specialist-1@coach.example", Date: day("2025-06-10"), StartTime: "10:00", Status: entity.AppointmentStatusPending},
	)
	ctx := context.Background()

	// owner may not confirm
	_, err := f.uc.Update(ctx, actorOf(f.member), usecasecontract.AppointmentUpdateInput{AppointmentID: "a1", Status: entity.AppointmentStatusConfirmed})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// strangers are refused
	_, err = f.uc.Update(ctx, actorOf(f.other), usecasecontract.AppointmentUpdateInput{AppointmentID: "a1", Status: entity.AppointmentStatusCancelled})
	assert.ErrorIs(t, err, apperror.ErrForbidden)

	// pending cannot jump to completed
	_, err = f.uc.Update(ctx, actorOf(f.specialist), usecasecontract.AppointmentUpdateInput{AppointmentID: "a1", Status: entity.AppointmentStatusCompleted})
	assert.ErrorIs(t, err, apperror.ErrConflict)

	confirmed, err := f.uc.Update(ctx, actorOf(f.specialist), usecasecontract.AppointmentUpdateInput{AppointmentID: "a1", Status: entity.AppointmentStatusConfirmed, MeetingLink: &link})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusConfirmed, confirmed.Status)
	assert.Equal(t, link, confirmed.MeetingLink)
	assert.Eventually(t, func() bool { return f.notifier.count() == 2 }, time.Second, 10*time.Millisecond)

	cancelled, err := f.uc.Update(ctx, actorOf(f.member), usecasecontract.AppointmentUpdateInput{AppointmentID: "a1", Status: entity.AppointmentStatusCancelled})
	require.NoError(t, err)
	assert.Equal(t, entity.AppointmentStatusCancelled, cancelled.Status)
	assert.Eventually(t, func() bool { return f.notifier.count() == 3 }, time.Second, 10*time.Millisecond)

	_, err = f.uc.Update(ctx, actorOf(f.specialist), usecasecontract.AppointmentUpdateInput{AppointmentID: "missing", Status: entity.AppointmentStatusConfirmed})
	assert.ErrorIs(t, err, apperror.ErrNotFound)
	_, err = f.uc.Update(ctx, actorOf(f.specialist), usecasecontract.AppointmentUpdateInput{AppointmentID: "a1", Status: "done"})
	assert.ErrorIs(t, err, apperror.ErrValidation)
}

func TestCancelOnlyByBookingUser(t *testing.T) {
	f := newAppointmentFixture(
		&entity.Appointment{ID: "a1", UserID: "user-1", SpecialistID: "specialist-1", Date: day("2025-06-10"), StartTime: "10:00", Status: entity.AppointmentStatusPending},
	)
	ctx := context.Background()

	assert.ErrorIs(t, f.uc.Cancel(ctx, actorOf(f.specialist), "a1"), apperror.ErrForbidden)
	assert.ErrorIs(t, f.uc.Cancel(ctx, actorOf(f.member), "nope"), apperror.ErrNotFound)
	require.NoError(t, f.uc.Cancel(ctx, actorOf(f.member), "a1"))
	assert.Empty(t, f.repo.appointments)
}

func TestNotificationFailureIsNotSurfaced(t *testing.T) {
	f := newAppointmentFixture()
	f.notifier.ShouldFail = true

	_, err := f.uc.Book(context.Background(), actorOf(f.member), validBooking())
	require.NoError(t, err)
	assert.Eventually(t, func() bool { return f.notifier.count() == 2 }, time.Second, 10*time.Millisecond)
}
