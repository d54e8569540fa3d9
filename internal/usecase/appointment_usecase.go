package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/medcharfeddine/nutricoach/internal/domain/apperror"
	"github.com/medcharfeddine/nutricoach/internal/domain/contract"
	"github.com/medcharfeddine/nutricoach/internal/domain/entity"
	"github.com/medcharfeddine/nutricoach/internal/infrastructure/metrics"
	usecasecontract "github.com/medcharfeddine/nutricoach/internal/usecase/contract"
	"github.com/medcharfeddine/nutricoach/internal/utils"
)

const maxAppointmentMinutes = 8 * 60

// AppointmentUseCase books specialists on the fixed daily grid.
type AppointmentUseCase struct {
	appointmentRepo contract.IAppointmentRepository
	userRepo        contract.IUserRepository
	uuidgen         contract.IUUIDGenerator
	logger          usecasecontract.IAppLogger
	config          usecasecontract.IConfigProvider
	notify          *dispatcher
	cache           contract.ICache
}

func NewAppointmentUseCase(
	appointmentRepo contract.IAppointmentRepository,
	userRepo contract.IUserRepository,
	uuidgen contract.IUUIDGenerator,
	notifier contract.INotifier,
	logger usecasecontract.IAppLogger,
	cfg usecasecontract.IConfigProvider,
) *AppointmentUseCase {
	return &AppointmentUseCase{
		appointmentRepo: appointmentRepo,
		userRepo:        userRepo,
		uuidgen:         uuidgen,
		logger:          logger,
		config:          cfg,
		notify:          newDispatcher(notifier, logger, cfg.GetNotificationTimeout()),
	}
}

var _ usecasecontract.IAppointmentUseCase = (*AppointmentUseCase)(nil)

// SetCache enables availability caching.
func (uc *AppointmentUseCase) SetCache(cache contract.ICache) {
	uc.cache = cache
}

func availabilityKeyPrefix(specialistID string) string {
	return "availability:" + specialistID + ":"
}

func availabilityKey(specialistID, date, timezone string) string {
	return availabilityKeyPrefix(specialistID) + date + ":" + timezone
}

func (uc *AppointmentUseCase) invalidateAvailability(ctx context.Context, specialistID string) {
	if uc.cache == nil {
		return
	}
	if err := uc.cache.DeletePrefix(ctx, availabilityKeyPrefix(specialistID)); err != nil {
		uc.logger.Warnf("cache error: availability invalidation specialist=%s err=%v", specialistID, err)
	}
}

// GetAvailability returns the hourly grid minus the start times held by
// pending or confirmed appointments of that day.
func (uc *AppointmentUseCase) GetAvailability(ctx context.Context, actor entity.Actor, specialistID, date, timezone string) (*entity.Availability, error) {
	if specialistID == "" || date == "" {
		return nil, apperror.Validation("specialistId and date are required")
	}
	day, err := utils.ParseDay(date)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}
	if _, err := utils.LoadTimezone(timezone); err != nil {
		return nil, apperror.Validation("invalid timezone %q", timezone)
	}

	key := availabilityKey(specialistID, date, timezone)
	if uc.cache != nil {
		var cached entity.Availability
		found, err := uc.cache.GetJSON(ctx, key, &cached)
		switch {
		case err != nil:
			uc.logger.Warningf("cache error: availability key=%s err=%v", key, err)
		case found:
			metrics.IncCacheHit("availability")
			return &cached, nil
		default:
			metrics.IncCacheMiss("availability")
		}
	}

	from, to := utils.DayBounds(day)
	booked, err := uc.appointmentRepo.FindHoldingSlots(ctx, specialistID, from, to)
	if err != nil {
		return nil, apperror.Internal("failed to load appointments", err)
	}

	reserved := make(map[string]bool, len(booked))
	for _, a := range booked {
		reserved[a.StartTime] = true
	}
	if booked == nil {
		booked = []entity.Appointment{}
	}
	availability := &entity.Availability{
		Date:               date,
		SpecialistID:       specialistID,
		Timezone:           timezone,
		Slots:              utils.FilterReserved(utils.DailySlots(), reserved),
		BookedAppointments: booked,
	}

	if uc.cache != nil {
		if err := uc.cache.SetJSON(ctx, key, availability, uc.config.GetAvailabilityCacheTTL()); err != nil {
			uc.logger.Warningf("cache error: availability set key=%s err=%v", key, err)
		}
	}
	return availability, nil
}

// Book creates a pending appointment. A specialist with any pending or
// confirmed appointment on that calendar day is treated as unavailable for
// the whole day. The check and the insert are not atomic.
func (uc *AppointmentUseCase) Book(ctx context.Context, actor entity.Actor, input usecasecontract.BookingInput) (*entity.Appointment, error) {
	if input.SpecialistID == "" {
		return nil, apperror.Validation("specialistId is required")
	}
	day, err := utils.ParseDay(input.Date)
	if err != nil {
		return nil, apperror.Validation("%v", err)
	}
	start, err := utils.ParseClockToMinutes(input.StartTime)
	if err != nil {
		return nil, apperror.Validation("startTime: %v", err)
	}
	if input.Duration < 0 || input.Duration > maxAppointmentMinutes {
		return nil, apperror.Validation("duration must be between 1 and %d minutes", maxAppointmentMinutes)
	}
	duration := input.Duration
	endTime := input.EndTime
	if endTime == "" {
		if duration == 0 {
			duration = entity.DefaultAppointmentDuration
		}
		if start+duration > 24*60 {
			return nil, apperror.Validation("appointment must end on the same day")
		}
		endTime = utils.MinutesToClock(start + duration)
	} else {
		end, err := utils.ParseClockToMinutes(endTime)
		if err != nil {
			return nil, apperror.Validation("endTime: %v", err)
		}
		if end <= start {
			return nil, apperror.Validation("endTime must be after startTime")
		}
		if duration == 0 {
			duration = end - start
		}
	}
	apptType := input.Type
	if apptType == "" {
		apptType = entity.AppointmentTypeVideo
	}
	if !apptType.IsValid() {
		return nil, apperror.Validation("invalid appointment type %q", input.Type)
	}
	if _, err := utils.LoadTimezone(input.Timezone); err != nil {
		return nil, apperror.Validation("invalid timezone %q", input.Timezone)
	}

	specialist, err := uc.userRepo.GetUserByID(ctx, input.SpecialistID)
	if err != nil {
		return nil, lookupErr(err, "specialist")
	}
	if !specialist.IsSpecialist() {
		return nil, apperror.NotFound("specialist not found")
	}
	user, err := uc.userRepo.GetUserByID(ctx, actor.UserID)
	if err != nil {
		return nil, lookupErr(err, "user")
	}

	from, to := utils.DayBounds(day)
	existing, err := uc.appointmentRepo.FindHoldingSlots(ctx, specialist.ID, from, to)
	if err != nil {
		return nil, apperror.Internal("failed to check specialist availability", err)
	}
	if len(existing) > 0 {
		metrics.IncBookingConflict()
		return nil, apperror.Conflict("the specialist is not available on %s", input.Date)
	}

	now := time.Now()
	appointment := &entity.Appointment{
		ID:              uc.uuidgen.NewUUID(),
		UserID:          user.ID,
		UserName:        user.Name,
		UserEmail:       user.Email,
		SpecialistID:    specialist.ID,
		SpecialistName:  specialist.Name,
		SpecialistEmail: specialist.Email,
		Date:            day,
		StartTime:       utils.MinutesToClock(start),
		EndTime:         endTime,
		Duration:        duration,
		Type:            apptType,
		Notes:           strings.TrimSpace(input.Notes),
		Timezone:        input.Timezone,
		Status:          entity.AppointmentStatusPending,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
	if err := uc.appointmentRepo.Create(ctx, appointment); err != nil {
		uc.logger.Errorf("failed to create appointment for user %s: %v", user.ID, err)
		return nil, apperror.Internal("failed to create appointment", err)
	}

	metrics.IncAppointmentBooked()
	uc.invalidateAvailability(ctx, specialist.ID)
	uc.notify.send(
		entity.Notification{Kind: entity.NotificationAppointmentBooked, RecipientName: user.Name, RecipientEmail: user.Email, Appointment: appointment},
		entity.Notification{Kind: entity.NotificationAppointmentBooked, RecipientName: specialist.Name, RecipientEmail: specialist.Email, Appointment: appointment},
	)
	return appointment, nil
}

// List shows admins the appointments booked with them and users their own bookings.
func (uc *AppointmentUseCase) List(ctx context.Context, actor entity.Actor, status string) ([]entity.Appointment, error) {
	filter := entity.AppointmentFilter{}
	if actor.IsAdmin() {
		filter.SpecialistID = actor.UserID
	} else {
		filter.UserID = actor.UserID
	}
	if status != "" {
		s := entity.AppointmentStatus(status)
		if !s.IsValid() {
			return nil, apperror.Validation("invalid status %q", status)
		}
		filter.Status = &s
	}

	appointments, err := uc.appointmentRepo.List(ctx, filter)
	if err != nil {
		return nil, apperror.Internal("failed to list appointments", err)
	}
	return appointments, nil
}

// Update moves an appointment along its state machine. The booking user may
// only cancel; the specialist drives every other transition.
func (uc *AppointmentUseCase) Update(ctx context.Context, actor entity.Actor, input usecasecontract.AppointmentUpdateInput) (*entity.Appointment, error) {
	if input.AppointmentID == "" {
		return nil, apperror.Validation("appointmentId is required")
	}
	if !input.Status.IsValid() {
		return nil, apperror.Validation("invalid status %q", input.Status)
	}

	current, err := uc.appointmentRepo.GetByID(ctx, input.AppointmentID)
	if err != nil {
		return nil, lookupErr(err, "appointment")
	}

	isSpecialist := current.SpecialistID == actor.UserID
	isOwner := current.UserID == actor.UserID
	if !isSpecialist && !isOwner {
		return nil, apperror.Forbidden("you are not a participant of this appointment")
	}
	changes := entity.AppointmentChanges{Status: input.Status}
	if isSpecialist {
		changes.AdminNotes = input.AdminNotes
		changes.MeetingLink = input.MeetingLink
	} else if input.Status != entity.AppointmentStatusCancelled {
		return nil, apperror.Forbidden("only the specialist can set status %s", input.Status)
	}
	if !current.Status.CanTransitionTo(input.Status) {
		return nil, apperror.Conflict("cannot change appointment from %s to %s", current.Status, input.Status)
	}

	updated, err := uc.appointmentRepo.UpdateStatus(ctx, current.ID, current.Status, changes)
	if err != nil {
		switch {
		case errors.Is(err, apperror.ErrConflict):
			return nil, apperror.Conflict("appointment was updated concurrently")
		case errors.Is(err, apperror.ErrNotFound):
			return nil, apperror.NotFound("appointment not found")
		}
		uc.logger.Errorf("failed to update appointment %s: %v", current.ID, err)
		return nil, apperror.Internal("failed to update appointment", err)
	}

	uc.invalidateAvailability(ctx, updated.SpecialistID)
	uc.notify.send(statusNotifications(updated)...)
	return updated, nil
}

func statusNotifications(a *entity.Appointment) []entity.Notification {
	toUser := entity.Notification{RecipientName: a.UserName, RecipientEmail: a.UserEmail, Appointment: a}
	toSpecialist := entity.Notification{RecipientName: a.SpecialistName, RecipientEmail: a.SpecialistEmail, Appointment: a}
	switch a.Status {
	case entity.AppointmentStatusConfirmed:
		toUser.Kind, toSpecialist.Kind = entity.NotificationAppointmentConfirmed, entity.NotificationAppointmentConfirmed
		return []entity.Notification{toUser, toSpecialist}
	case entity.AppointmentStatusRejected:
		toUser.Kind = entity.NotificationAppointmentRejected
		return []entity.Notification{toUser}
	case entity.AppointmentStatusCancelled:
		toSpecialist.Kind = entity.NotificationAppointmentCancelled
		return []entity.Notification{toSpecialist}
	}
	return nil
}

// Cancel deletes an appointment. Only the user who booked it may do so.
func (uc *AppointmentUseCase) Cancel(ctx context.Context, actor entity.Actor, appointmentID string) error {
	if appointmentID == "" {
		return apperror.Validation("appointment id is required")
	}
	appointment, err := uc.appointmentRepo.GetByID(ctx, appointmentID)
	if err != nil {
		return lookupErr(err, "appointment")
	}
	if appointment.UserID != actor.UserID {
		return apperror.Forbidden("only the booking user can cancel this appointment")
	}
	if err := uc.appointmentRepo.Delete(ctx, appointmentID); err != nil {
		if errors.Is(err, apperror.ErrNotFound) {
			return apperror.NotFound("appointment not found")
		}
		return apperror.Internal("failed to delete appointment", err)
	}
	uc.invalidateAvailability(ctx, appointment.SpecialistID)
	return nil
}
