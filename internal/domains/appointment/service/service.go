package service

import (
	"context"
	"errors"
	"fmt"
	"mime/multipart"
	"path"
	"pitstop/config"
	"pitstop/infras/kafka"
	"pitstop/infras/otel"
	"pitstop/infras/s3"
	"pitstop/internal/domains/appointment/model"
	"pitstop/internal/domains/appointment/model/dto"
	"pitstop/internal/domains/appointment/repository"
	"pitstop/internal/domains/appointment/schedule"
	userModel "pitstop/internal/domains/user/model"
	"pitstop/internal/domains/user/redtag"
	userRepo "pitstop/internal/domains/user/repository"
	"pitstop/shared"
	"pitstop/shared/cache"
	"pitstop/shared/constant"
	gDto "pitstop/shared/dto"
	"pitstop/shared/failure"
	"pitstop/shared/timezone"
	"time"

	"github.com/google/uuid"
	"github.com/lib/pq"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetAppointment    = "appointment:get"
	cacheGetAllAppointment = "appointment:gets"
	cacheCountAppointment  = "appointment:count"
	cacheGetSlots          = "appointment:slots"

	paymentProofDirectory = "payment-proofs"
)

type Appointment interface {
	Create(ctx context.Context, req dto.CreateAppointmentRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetAppointmentsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.AppointmentResponse, error)
	Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) error
	Cancel(ctx context.Context, id string) error
	Accept(ctx context.Context, id string) error
	Reject(ctx context.Context, id string) error
	UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) error
	UploadPaymentProof(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (string, error)
	GetSlots(ctx context.Context, date, category string) (dto.GetSlotsResponse, error)
}

type serviceImpl struct {
	repo     repository.Appointment
	userRepo userRepo.User
	cfg      *config.Config
	cache    cache.RedisCache
	otel     otel.Otel
	kafka    kafka.Client
	s3       s3.S3
}

func New(repo repository.Appointment, users userRepo.User, cfg *config.Config, cache cache.RedisCache, otl otel.Otel, kafkaClient kafka.Client, s3Client s3.S3) Appointment {
	return &serviceImpl{
		repo:     repo,
		userRepo: users,
		cfg:      cfg,
		cache:    cache,
		otel:     otl,
		kafka:    kafkaClient,
		s3:       s3Client,
	}
}

func (s *serviceImpl) Create(ctx context.Context, req dto.CreateAppointmentRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	// Customers book as Requested and wait for staff acceptance. Staff and
	// admins book on a customer's behalf, confirmed immediately.
	status := model.StatusUpcoming
	if role == constant.RoleUser {
		status = model.StatusRequested

		if err = s.ensureNotRedTagged(ctx, actor); err != nil {
			return err
		}
	}

	appointment, err := req.ToModel(actor, status)
	if err != nil {
		log.Error().Err(err).Msg("failed to parse appointment request")

		return failure.BadRequestFromString(fmt.Sprintf("invalid appointment date/time: %v", err)) // nolint:wrapcheck
	}

	if err = s.ensureSlotFree(ctx, appointment.AppointmentDateTime, appointment.ServiceCategory, constant.Empty); err != nil {
		return err
	}

	if err = s.repo.Insert(ctx, appointment); err != nil {
		if isUniqueViolation(err) {
			return failure.Conflict("slot was just booked by someone else") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to create appointment")

		return fmt.Errorf("failed to create appointment: %w", err)
	}

	s.invalidateLists(ctx)
	s.publishStatusEvent(ctx, appointment, constant.Empty, status)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetAppointmentsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointments")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointments")

		return res, fmt.Errorf("failed to get appointments: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointments to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountAppointment, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count appointments")

		return res, fmt.Errorf("failed to count appointments: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.AppointmentResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetAppointment, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for appointment")

		return res, nil
	}

	appointment, err := s.getOwned(ctx, id)
	if err != nil {
		return res, err
	}

	res.FromModel(appointment)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save appointment to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateAppointmentRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateAppointmentRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	appointment, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(appointment.Status) {
		return failure.Conflict(fmt.Sprintf("appointment is %s and can no longer be modified", appointment.Status)) // nolint:wrapcheck
	}

	fields := shared.TransformFields(req, actor)
	newStatus := appointment.Status

	if req.AppointmentDateTime != "" {
		at, parseErr := time.Parse(time.RFC3339, req.AppointmentDateTime)
		if parseErr != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid appointment date/time: %v", parseErr)) // nolint:wrapcheck
		}

		at = timezone.ToAppTime(at)

		if !at.Equal(appointment.AppointmentDateTime) {
			category := appointment.ServiceCategory
			if req.ServiceCategory != "" {
				category = req.ServiceCategory
			}

			if err = s.ensureSlotFree(ctx, at, category, appointment.ID); err != nil {
				return err
			}

			fields[model.FieldAppointmentDateTime] = at

			// Moving a confirmed appointment reschedules it.
			if role != constant.RoleUser && appointment.Status == model.StatusUpcoming {
				newStatus = model.StatusRescheduled
				fields[model.FieldStatus] = newStatus
			}
		}
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		if isUniqueViolation(err) {
			return failure.Conflict("slot was just booked by someone else") // nolint:wrapcheck
		}

		log.Error().Err(err).Msg("failed to update appointment")

		return fmt.Errorf("failed to update appointment: %w", err)
	}

	s.invalidate(ctx, id)

	if newStatus != appointment.Status {
		s.publishStatusEvent(ctx, appointment, appointment.Status, newStatus)
	}

	return nil
}

func (s *serviceImpl) Cancel(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Cancel")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getOwned(ctx, id)
	if err != nil {
		return err
	}

	if !model.CanTransition(appointment.Status, model.StatusCancelled) {
		return failure.Conflict(fmt.Sprintf("appointment is %s and cannot be cancelled", appointment.Status)) // nolint:wrapcheck
	}

	if err = s.setStatus(ctx, appointment, model.StatusCancelled); err != nil {
		return err
	}

	return nil
}

func (s *serviceImpl) Accept(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accept")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if appointment.Status != model.StatusRequested {
		return failure.Conflict("only requested appointments can be accepted") // nolint:wrapcheck
	}

	return s.setStatus(ctx, appointment, model.StatusUpcoming)
}

// Reject permanently removes a pending request. Unlike cancellation, a
// rejected request leaves no record behind.
func (s *serviceImpl) Reject(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Reject")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if appointment.Status != model.StatusRequested {
		return failure.Conflict("only requested appointments can be rejected") // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to reject appointment")

		return fmt.Errorf("failed to reject appointment: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) UpdateStatus(ctx context.Context, req dto.UpdateStatusRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UpdateStatus")
	defer scope.End()
	defer scope.TraceIfError(err)

	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return err
	}

	if model.IsTerminal(appointment.Status) {
		return failure.Conflict(fmt.Sprintf("appointment is %s and can no longer change status", appointment.Status)) // nolint:wrapcheck
	}

	if !model.CanTransition(appointment.Status, req.Status) {
		return failure.Conflict(fmt.Sprintf("cannot change status from %s to %s", appointment.Status, req.Status)) // nolint:wrapcheck
	}

	if err = s.setStatus(ctx, appointment, req.Status); err != nil {
		return err
	}

	if req.Status == model.StatusNoArrival {
		s.redTagCustomer(ctx, appointment)
	}

	return nil
}

func (s *serviceImpl) UploadPaymentProof(ctx context.Context, id string, file multipart.File, header *multipart.FileHeader) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadPaymentProof")
	defer scope.End()
	defer scope.TraceIfError(err)

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	appointment, err := s.getOwned(ctx, id)
	if err != nil {
		return constant.Empty, err
	}

	fileName := uuid.NewString() + path.Ext(header.Filename)

	url, err = s.s3.UploadFile(ctx, constant.Empty, paymentProofDirectory, file, header, fileName)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload payment proof")

		return constant.Empty, fmt.Errorf("failed to upload payment proof: %w", err)
	}

	fields := map[string]any{
		model.FieldPaymentProofURL: url,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   actor,
	}

	if err = s.repo.Update(ctx, fields, shared.FilterByID(appointment.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to save payment proof url")

		return constant.Empty, fmt.Errorf("failed to save payment proof url: %w", err)
	}

	s.invalidate(ctx, id)

	return url, nil
}

func (s *serviceImpl) GetSlots(ctx context.Context, date, category string) (res dto.GetSlotsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetSlots")
	defer scope.End()
	defer scope.TraceIfError(err)

	day, err := timezone.Parse(constant.DateOnlyFormat, date)
	if err != nil {
		return res, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD") // nolint:wrapcheck
	}

	cacheKey := shared.BuildCacheKey(cacheGetSlots, date, category)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		return res, nil
	}

	entries, err := s.dayEntries(ctx, day)
	if err != nil {
		return res, err
	}

	now := timezone.Now()
	res.Date = date
	res.Slots = make([]dto.SlotResponse, len(schedule.Slots))

	for i, label := range schedule.Slots {
		status, classifyErr := schedule.Classify(label, day, entries, category, now)
		if classifyErr != nil {
			return res, fmt.Errorf("failed to classify slot: %w", classifyErr)
		}

		res.Slots[i] = dto.SlotResponse{Label: label, Status: string(status)}
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save slots to cache")
		}
	}()

	return res, nil
}

// getByID loads an appointment without an ownership check, for staff flows.
func (s *serviceImpl) getByID(ctx context.Context, id string) (model.Appointment, error) {
	appointment, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get appointment")

		return appointment, fmt.Errorf("failed to get appointment: %w", err)
	}

	if appointment.ID == constant.Empty {
		return appointment, failure.NotFound("appointment") // nolint:wrapcheck
	}

	return appointment, nil
}

// getOwned loads an appointment and enforces that customers only touch their
// own records. Staff and admins see everything.
func (s *serviceImpl) getOwned(ctx context.Context, id string) (model.Appointment, error) {
	appointment, err := s.getByID(ctx, id)
	if err != nil {
		return appointment, err
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleUser && appointment.UserID != actor {
		return appointment, failure.Forbidden("appointment belongs to another customer") // nolint:wrapcheck
	}

	return appointment, nil
}

func (s *serviceImpl) ensureNotRedTagged(ctx context.Context, userID string) error {
	user, err := s.userRepo.Get(ctx, shared.FilterByID(userID, userModel.FieldID, userModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check red tag")

		return fmt.Errorf("failed to check red tag: %w", err)
	}

	flag := user.RedTagFlag()
	now := timezone.Now()

	if redtag.Restricted(flag, now) {
		days := redtag.DaysLeft(flag, now)

		return failure.Forbidden(fmt.Sprintf("booking is restricted for %d more day(s) due to a missed appointment", days)) // nolint:wrapcheck
	}

	return nil
}

// ensureSlotFree recomputes the conflict from fresh store data right before a
// write. The partial unique index remains the authoritative guard for races
// that slip between this check and the insert.
func (s *serviceImpl) ensureSlotFree(ctx context.Context, at time.Time, category, excludeID string) error {
	label, ok := schedule.LabelFor(at)
	if !ok {
		return failure.BadRequestFromString("appointment time does not match a bookable slot") // nolint:wrapcheck
	}

	entries, err := s.dayEntriesExcluding(ctx, at, excludeID)
	if err != nil {
		return err
	}

	if s.cfg.Booking.StrictCategoryConflict {
		category = constant.Empty
	}

	status, err := schedule.Classify(label, at, entries, category, timezone.Now())
	if err != nil {
		return fmt.Errorf("failed to classify slot: %w", err)
	}

	switch status {
	case schedule.StatusBooked:
		return failure.Conflict("slot is already booked") // nolint:wrapcheck
	case schedule.StatusPast:
		return failure.BadRequestFromString("cannot book a slot in the past") // nolint:wrapcheck
	default:
		return nil
	}
}

func (s *serviceImpl) dayEntries(ctx context.Context, day time.Time) ([]schedule.Entry, error) {
	return s.dayEntriesExcluding(ctx, day, constant.Empty)
}

func (s *serviceImpl) dayEntriesExcluding(ctx context.Context, day time.Time, excludeID string) ([]schedule.Entry, error) {
	dayStart := time.Date(day.Year(), day.Month(), day.Day(), 0, 0, 0, 0, day.Location())
	dayEnd := dayStart.Add(24*time.Hour - time.Second)

	filters := []any{
		gDto.Filter{
			ArgName:  "appointment_from",
			Field:    model.FieldAppointmentDateTime,
			Operator: gDto.FilterOperatorGreaterEq,
			Value:    dayStart,
			Table:    model.TableName,
		},
		gDto.Filter{
			ArgName:  "appointment_to",
			Field:    model.FieldAppointmentDateTime,
			Operator: gDto.FilterOperatorLessEq,
			Value:    dayEnd,
			Table:    model.TableName,
		},
	}

	if excludeID != constant.Empty {
		filters = append(filters, gDto.Filter{
			Field:    model.FieldID,
			Operator: gDto.FilterOperatorNotEq,
			Value:    excludeID,
			Table:    model.TableName,
		})
	}

	models, err := s.repo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  filters,
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to load day appointments")

		return nil, fmt.Errorf("failed to load day appointments: %w", err)
	}

	entries := make([]schedule.Entry, len(models))
	for i, mod := range models {
		entries[i] = schedule.Entry{
			StartsAt: mod.AppointmentDateTime,
			Status:   mod.Status,
			Category: mod.ServiceCategory,
		}
	}

	return entries, nil
}

func (s *serviceImpl) setStatus(ctx context.Context, appointment model.Appointment, status string) error {
	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)

	fields := map[string]any{
		model.FieldStatus:        status,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: actor,
	}

	if err := s.repo.Update(ctx, fields, shared.FilterByID(appointment.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update appointment status")

		return fmt.Errorf("failed to update appointment status: %w", err)
	}

	s.invalidate(ctx, appointment.ID)
	s.publishStatusEvent(ctx, appointment, appointment.Status, status)

	return nil
}

func (s *serviceImpl) redTagCustomer(ctx context.Context, appointment model.Appointment) {
	if appointment.UserID == constant.Empty {
		return
	}

	actor, _ := ctx.Value(constant.ContextKeyUserID).(string)
	flag := redtag.Raise(timezone.Now(), s.cfg.Booking.RedTagDays)

	fields := map[string]any{
		userModel.FieldIsRedTagged:     true,
		userModel.FieldRedTagExpiresAt: flag.ExpiresAt,
		constant.FieldModifiedAt:       timezone.Now(),
		constant.FieldModifiedBy:       actor,
	}

	if err := s.userRepo.Update(ctx, fields, shared.FilterByID(appointment.UserID, userModel.FieldID, userModel.TableName)); err != nil {
		log.Error().Err(err).Str("userId", appointment.UserID).Msg("failed to red tag customer")

		return
	}

	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.RedTagEvent{
			UserID:        appointment.UserID,
			AppointmentID: appointment.ID,
			ExpiresAt:     flag.ExpiresAt.Format(time.RFC3339),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.RedTag, kafka.Message{Key: appointment.UserID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish red tag event")
		}
	}()
}

func (s *serviceImpl) publishStatusEvent(ctx context.Context, appointment model.Appointment, from, to string) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.StatusEvent{
			AppointmentID:   appointment.ID,
			UserID:          appointment.UserID,
			Email:           appointment.Email,
			ServiceCategory: appointment.ServiceCategory,
			From:            from,
			To:              to,
			OccurredAt:      timezone.Now().Format(time.RFC3339),
		}

		if err := s.kafka.SendMessages(c, s.cfg.Kafka.Topic.AppointmentStatus, kafka.Message{Key: appointment.ID, Value: event}); err != nil {
			log.Error().Err(err).Msg("failed to publish appointment status event")
		}
	}()
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetAppointment, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete appointment from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
		shared.InvalidateCaches(c, s.cache, cacheGetSlots)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllAppointment)
		shared.InvalidateCaches(c, s.cache, cacheCountAppointment)
		shared.InvalidateCaches(c, s.cache, cacheGetSlots)
	}()
}

func isUniqueViolation(err error) bool {
	var pqErr *pq.Error

	return errors.As(err, &pqErr) && string(pqErr.Code) == constant.PqErrorCodeUniqueViolation
}
