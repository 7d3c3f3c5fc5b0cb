package booking

import (
	"net/http"
	"trimly/infras/otel"
	"trimly/internal/domains/booking/model/dto"
	"trimly/internal/domains/booking/service"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"
	"trimly/shared/validator"
	"trimly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Booking
	otel    otel.Otel
}

func New(service service.Booking, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/bookings", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.CreateBooking)
		routerGroup.Get("/my", handler.GetMyBookings)
		routerGroup.Post("/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/{id}/reschedule/respond", handler.RespondReschedule)
		routerGroup.Post("/{id}/rate", handler.RateBooking)
	})
}

// CreateBooking places a new booking request.
// @Summary Create a booking
// @Description Book seats at a slot. Fails with 409 when the slot cannot fit the requested seats.
// @Tags Booking
// @Accept json
// @Produce json
// @Param request body dto.CreateBookingRequest true "Create Booking Request"
// @Success 201 {object} response.Data[dto.BookingResponse] "Created booking"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings [post]
// @Security BearerAuth
func (handler *Handler) CreateBooking(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CreateBooking")
	defer scope.End()

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(writer, failure.Unauthorized("unauthorized"))

		return
	}

	req := dto.CreateBookingRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	booking, err := handler.service.Create(ctx, customerID, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to create booking")

		response.WithError(writer, err)

		return
	}

	scope.AddEvent("Booking created successfully by user " + customerID)

	response.WithJSON(writer, http.StatusCreated, booking)
}

// GetMyBookings lists the caller's bookings.
// @Summary Get my bookings
// @Description List the authenticated customer's bookings. Fee fields are hidden.
// @Tags Booking
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Success 200 {object} response.Data[dto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/my [get]
// @Security BearerAuth
func (handler *Handler) GetMyBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetMyBookings")
	defer scope.End()

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	bookings, err := handler.service.GetCustomerBookings(ctx, customerID, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully for user " + customerID)

	response.WithJSON(w, http.StatusOK, bookings)
}

// CancelBooking cancels the caller's booking.
// @Summary Cancel a booking
// @Description Cancel a booking that is PENDING, CONFIRMED or RESCHEDULE_REQUESTED.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.CancelBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.CancelByCustomer(ctx, customerID, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully by user " + customerID)

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// RespondReschedule answers an outstanding reschedule proposal.
// @Summary Respond to a reschedule proposal
// @Description Accept (slot replaced) or decline (slot kept) the barber's proposal. Either way the booking reverts to CONFIRMED.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RespondRescheduleRequest true "Respond Reschedule Request"
// @Success 200 {object} response.Message "Reschedule answered successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/reschedule/respond [post]
// @Security BearerAuth
func (handler *Handler) RespondReschedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RespondReschedule")
	defer scope.End()

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RespondRescheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.RespondReschedule(ctx, customerID, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to respond to reschedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reschedule answered successfully by user " + customerID)

	response.WithMessage(w, http.StatusOK, "Reschedule answered successfully")
}

// RateBooking rates a completed booking.
// @Summary Rate a booking
// @Description Attach a 1-5 rating and optional review to a completed booking. Allowed exactly once; updates the shop aggregate.
// @Tags Booking
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body dto.RateBookingRequest true "Rate Booking Request"
// @Success 200 {object} response.Message "Booking rated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/bookings/{id}/rate [post]
// @Security BearerAuth
func (handler *Handler) RateBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RateBooking")
	defer scope.End()

	customerID, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || customerID == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return
	}

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.RateBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Rate(ctx, customerID, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to rate booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking rated successfully by user " + customerID)

	response.WithMessage(w, http.StatusOK, "Booking rated successfully")
}
