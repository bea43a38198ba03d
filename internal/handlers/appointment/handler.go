package appointment

import (
	"net/http"
	"pitstop/infras/otel"
	"pitstop/internal/domains/appointment/model"
	"pitstop/internal/domains/appointment/model/dto"
	"pitstop/internal/domains/appointment/service"
	"pitstop/shared/constant"
	gDto "pitstop/shared/dto"
	"pitstop/shared/failure"
	"pitstop/shared/timezone"
	"pitstop/shared/validator"
	"pitstop/transport/http/response"
	"time"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Appointment
	otel    otel.Otel
}

func New(service service.Appointment, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/appointments", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateAppointment)
		routerGroup.Get("/", handler.GetAppointments)
		routerGroup.Get("/myappointments", handler.GetMyAppointments)
		routerGroup.Get("/slots", handler.GetSlots)
		routerGroup.Get("/{id}", handler.GetAppointmentByID)
		routerGroup.Patch("/{id}", handler.UpdateAppointment)
		routerGroup.Delete("/{id}", handler.CancelAppointment)
		routerGroup.Patch("/{id}/accept", handler.AcceptAppointment)
		routerGroup.Delete("/{id}/reject", handler.RejectAppointment)
		routerGroup.Patch("/{id}/status", handler.UpdateAppointmentStatus)
		routerGroup.Post("/{id}/proof", handler.UploadPaymentProof)
	})
}

// CreateAppointment books a service slot.
// @Summary Create a new appointment
// @Description Book a service slot. Customers create requests; staff and admins create confirmed appointments.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param request body dto.CreateAppointmentRequest true "Create Appointment Request"
// @Success 201 {object} response.Message "Appointment created successfully"
// @Failure 400 {object} response.Error
// @Failure 403 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [post]
// @Security BearerAuth
func (handler *Handler) CreateAppointment(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateAppointment")
	defer scope.End()

	req := dto.CreateAppointmentRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Create(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create appointment")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Appointment created successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Appointment created successfully")
}

// GetAppointments retrieves appointments with optional filters.
// @Summary Get all appointments
// @Description Retrieve appointments with optional date, status, user and category filters.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status"
// @Param userId query string false "Filter by owning user"
// @Param category query string false "Filter by service category"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of appointments"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments [get]
// @Security BearerAuth
func (handler *Handler) GetAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointments")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := filtersFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	if userID := r.URL.Query().Get(constant.RequestParamUserID); userID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldUserID,
			Operator: gDto.FilterOperatorEq,
			Value:    userID,
			Table:    model.TableName,
		})
	}

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointments retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetMyAppointments retrieves the authenticated customer's appointments.
// @Summary Get my appointments
// @Description Retrieve the authenticated user's appointments with optional filters.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param date query string false "Filter by date (YYYY-MM-DD)"
// @Param status query string false "Filter by status"
// @Param category query string false "Filter by service category"
// @Success 200 {object} response.Data[dto.GetAppointmentsResponse] "List of user's appointments"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/myappointments [get]
// @Security BearerAuth
func (handler *Handler) GetMyAppointments(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyAppointments")
	defer scope.End()

	userID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || userID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup, err := filtersFromQuery(r)
	if err != nil {
		scope.TraceError(err)
		response.WithError(w, err)

		return
	}

	filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
		Field:    model.FieldUserID,
		Operator: gDto.FilterOperatorEq,
		Value:    userID,
		Table:    model.TableName,
	})

	appointments, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get user appointments")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("User appointments retrieved successfully for user " + userID)

	response.WithJSON(w, http.StatusOK, appointments)
}

// GetSlots lists the day's booking grid.
// @Summary Get slot availability
// @Description List every slot of the given day as Available, Booked or Past.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param date query string true "Day to inspect (YYYY-MM-DD)"
// @Param category query string false "Scope the conflict check to a service category"
// @Success 200 {object} response.Data[dto.GetSlotsResponse] "Slot statuses"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/slots [get]
// @Security BearerAuth
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	date := r.URL.Query().Get(constant.RequestParamDate)
	category := r.URL.Query().Get(constant.RequestParamCategory)

	slots, err := handler.service.GetSlots(ctx, date, category)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	response.WithJSON(w, http.StatusOK, slots)
}

// GetAppointmentByID retrieves an appointment by its ID.
// @Summary Get an appointment by ID
// @Description Retrieve an appointment by its unique identifier.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Data[dto.AppointmentResponse] "Appointment details"
// @Failure 403 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [get]
// @Security BearerAuth
func (handler *Handler) GetAppointmentByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetAppointmentByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	appointment, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get appointment by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment retrieved successfully")

	response.WithJSON(w, http.StatusOK, appointment)
}

// UpdateAppointment updates an open appointment.
// @Summary Update an appointment by ID
// @Description Update an open appointment. Moving a confirmed appointment to a new slot reschedules it.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateAppointmentRequest true "Update Appointment Request"
// @Success 200 {object} response.Message "Appointment updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateAppointmentRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment updated successfully")

	response.WithMessage(w, http.StatusOK, "Appointment updated successfully")
}

// CancelAppointment cancels an open appointment.
// @Summary Cancel an appointment by ID
// @Description Cancel an open appointment. The record is kept with status Cancelled.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment cancelled successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CancelAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Cancel(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Appointment cancelled successfully")
}

// AcceptAppointment confirms a customer's request.
// @Summary Accept a requested appointment
// @Description Confirm a requested appointment, moving it to Upcoming.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment accepted successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/accept [patch]
// @Security BearerAuth
func (handler *Handler) AcceptAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Accept(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment accepted successfully")

	response.WithMessage(w, http.StatusOK, "Appointment accepted successfully")
}

// RejectAppointment permanently removes a customer's request.
// @Summary Reject a requested appointment
// @Description Permanently delete a requested appointment.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Success 200 {object} response.Message "Appointment rejected successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/reject [delete]
// @Security BearerAuth
func (handler *Handler) RejectAppointment(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectAppointment")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Reject(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject appointment")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment rejected successfully")

	response.WithMessage(w, http.StatusOK, "Appointment rejected successfully")
}

// UpdateAppointmentStatus moves an appointment through its lifecycle.
// @Summary Update appointment status
// @Description Move an appointment to Completed, Cancelled or No Arrival. No Arrival red-tags the customer.
// @Tags Appointment
// @Accept json
// @Produce json
// @Param id path string true "Appointment ID"
// @Param request body dto.UpdateStatusRequest true "Update Status Request"
// @Success 200 {object} response.Message "Appointment status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) UpdateAppointmentStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateAppointmentStatus")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateStatusRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.UpdateStatus(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update appointment status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Appointment status updated successfully")

	response.WithMessage(w, http.StatusOK, "Appointment status updated successfully")
}

// UploadPaymentProof attaches a proof image to an appointment.
// @Summary Upload payment proof
// @Description Attach a payment proof image to an appointment. Stored in object storage.
// @Tags Appointment
// @Accept multipart/form-data
// @Produce json
// @Param id path string true "Appointment ID"
// @Param file formData file true "Proof image"
// @Success 200 {object} response.Data[string] "Uploaded file URL"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/appointments/{id}/proof [post]
// @Security BearerAuth
func (handler *Handler) UploadPaymentProof(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadPaymentProof")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := r.ParseMultipartForm(constant.RequestMaxMemory); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to parse multipart form")

		response.WithError(w, failure.BadRequestFromString("invalid multipart form"))

		return
	}

	file, header, err := r.FormFile(constant.FormFile)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to read uploaded file")

		response.WithError(w, failure.BadRequestFromString("file is required"))

		return
	}
	defer file.Close()

	url, err := handler.service.UploadPaymentProof(ctx, id, file, header)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload payment proof")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Payment proof uploaded successfully")

	response.WithJSON(w, http.StatusOK, url)
}

// filtersFromQuery builds the filters shared by the list endpoints: date,
// status and category. The date parameter must be YYYY-MM-DD.
func filtersFromQuery(r *http.Request) (gDto.FilterGroup, error) {
	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if date := r.URL.Query().Get(constant.RequestParamDate); date != "" {
		day, err := timezone.Parse(constant.DateOnlyFormat, date)
		if err != nil {
			return filterGroup, failure.BadRequestFromString("invalid date, expected YYYY-MM-DD")
		}

		filterGroup.Filters = append(filterGroup.Filters,
			gDto.Filter{
				ArgName:  "appointment_from",
				Field:    model.FieldAppointmentDateTime,
				Operator: gDto.FilterOperatorGreaterEq,
				Value:    day,
				Table:    model.TableName,
			},
			gDto.Filter{
				ArgName:  "appointment_to",
				Field:    model.FieldAppointmentDateTime,
				Operator: gDto.FilterOperatorLessEq,
				Value:    day.Add(24*time.Hour - time.Second),
				Table:    model.TableName,
			},
		)
	}

	if status := r.URL.Query().Get(constant.RequestParamStatus); status != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldStatus,
			Operator: gDto.FilterOperatorEq,
			Value:    status,
			Table:    model.TableName,
		})
	}

	if category := r.URL.Query().Get(constant.RequestParamCategory); category != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldServiceCategory,
			Operator: gDto.FilterOperatorEq,
			Value:    category,
			Table:    model.TableName,
		})
	}

	return filterGroup, nil
}
