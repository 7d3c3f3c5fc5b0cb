package barber

import (
	"context"
	"net/http"
	"trimly/infras/otel"
	bookingDto "trimly/internal/domains/booking/model/dto"
	bookingService "trimly/internal/domains/booking/service"
	"trimly/internal/domains/shop/model/dto"
	"trimly/internal/domains/shop/service"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/shared/failure"
	"trimly/shared/validator"
	"trimly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	shopService    service.Shop
	bookingService bookingService.Booking
	otel           otel.Otel
}

func New(shopService service.Shop, bookingService bookingService.Booking, otel otel.Otel) Handler {
	return Handler{
		shopService:    shopService,
		bookingService: bookingService,
		otel:           otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/barber", func(routerGroup chi.Router) {
		routerGroup.Get("/shop", handler.GetShop)
		routerGroup.Patch("/shop", handler.UpdateShop)

		routerGroup.Post("/services", handler.AddService)
		routerGroup.Patch("/services/{id}", handler.UpdateService)
		routerGroup.Delete("/services/{id}", handler.DeleteService)

		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Get("/stats", handler.GetStats)
		routerGroup.Post("/bookings/{id}/accept", handler.AcceptBooking)
		routerGroup.Post("/bookings/{id}/reject", handler.RejectBooking)
		routerGroup.Post("/bookings/{id}/cancel", handler.CancelBooking)
		routerGroup.Post("/bookings/{id}/complete", handler.CompleteBooking)
		routerGroup.Post("/bookings/{id}/reschedule", handler.RequestReschedule)

		routerGroup.Get("/blocked-slots", handler.GetBlockedSlots)
		routerGroup.Post("/blocked-slots", handler.BlockSlot)
		routerGroup.Delete("/blocked-slots/{id}", handler.UnblockSlot)
	})
}

func ownerID(ctx context.Context, w http.ResponseWriter) (string, bool) {
	id, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || id == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return "", false
	}

	return id, true
}

// GetShop returns the caller's shop with financial fields.
// @Summary Get own shop
// @Description Retrieve the authenticated owner's shop including commission and revenue.
// @Tags Barber
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.ShopResponse] "Shop details"
// @Failure 401 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/shop [get]
// @Security BearerAuth
func (handler *Handler) GetShop(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShop")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	shop, err := handler.shopService.GetOwnShop(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shop")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shop retrieved successfully")

	response.WithJSON(w, http.StatusOK, shop)
}

// UpdateShop updates the caller's shop.
// @Summary Update own shop
// @Description Update shop profile, hours, seats, slot duration or the open flag.
// @Tags Barber
// @Accept json
// @Produce json
// @Param request body dto.UpdateShopRequest true "Update Shop Request"
// @Success 200 {object} response.Data[dto.ShopResponse] "Updated shop"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/shop [patch]
// @Security BearerAuth
func (handler *Handler) UpdateShop(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateShop")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	req := dto.UpdateShopRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	shop, err := handler.shopService.UpdateOwnShop(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update shop")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shop updated successfully")

	response.WithJSON(w, http.StatusOK, shop)
}

// AddService adds a service to the caller's shop.
// @Summary Add a service
// @Description Create a new service on the owner's shop. New services start enabled.
// @Tags Barber
// @Accept json
// @Produce json
// @Param request body dto.CreateServiceRequest true "Create Service Request"
// @Success 201 {object} response.Data[dto.ServiceResponse] "Created service"
// @Failure 400 {object} response.Error
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/services [post]
// @Security BearerAuth
func (handler *Handler) AddService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddService")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	req := dto.CreateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	created, err := handler.shopService.AddService(ctx, id, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service added successfully")

	response.WithJSON(w, http.StatusCreated, created)
}

// UpdateService updates one of the caller's services.
// @Summary Update a service
// @Description Update service fields or toggle the enabled flag.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Param request body dto.UpdateServiceRequest true "Update Service Request"
// @Success 200 {object} response.Message "Service updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/services/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateService")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	serviceID := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateServiceRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.shopService.UpdateService(ctx, id, serviceID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service updated successfully")

	response.WithMessage(w, http.StatusOK, "Service updated successfully")
}

// DeleteService removes one of the caller's services.
// @Summary Delete a service
// @Description Delete a service from the owner's shop.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Service ID"
// @Success 200 {object} response.Message "Service deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/services/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteService(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteService")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	serviceID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.shopService.DeleteService(ctx, id, serviceID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete service")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Service deleted successfully")

	response.WithMessage(w, http.StatusOK, "Service deleted successfully")
}

// GetBookings lists the bookings of the caller's shop.
// @Summary Get shop bookings
// @Description List bookings of the owner's shop with optional status filter. Fee fields are visible.
// @Tags Barber
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)

	bookings, err := handler.bookingService.GetBarberBookings(ctx, id, status, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetStats returns the dashboard counters of the caller's shop.
// @Summary Get shop stats
// @Description Booking counters plus revenue, platform fee and earning totals.
// @Tags Barber
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[bookingDto.BarberStatsResponse] "Stats"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	stats, err := handler.bookingService.GetBarberStats(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}

// AcceptBooking confirms a pending booking.
// @Summary Accept a booking
// @Description Move a PENDING booking to CONFIRMED.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking accepted successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/bookings/{id}/accept [post]
// @Security BearerAuth
func (handler *Handler) AcceptBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AcceptBooking")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.bookingService.Accept(ctx, id, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accept booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking accepted successfully")

	response.WithMessage(w, http.StatusOK, "Booking accepted successfully")
}

// RejectBooking rejects a pending booking.
// @Summary Reject a booking
// @Description Move a PENDING booking to REJECTED with a reason.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.RejectBookingRequest true "Reject Booking Request"
// @Success 200 {object} response.Message "Booking rejected successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/bookings/{id}/reject [post]
// @Security BearerAuth
func (handler *Handler) RejectBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RejectBooking")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.RejectBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.bookingService.Reject(ctx, id, bookingID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to reject booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking rejected successfully")

	response.WithMessage(w, http.StatusOK, "Booking rejected successfully")
}

// CancelBooking cancels a confirmed booking.
// @Summary Cancel a booking
// @Description Move a CONFIRMED booking to CANCELLED with a reason.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.CancelBookingRequest true "Cancel Booking Request"
// @Success 200 {object} response.Message "Booking cancelled successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/bookings/{id}/cancel [post]
// @Security BearerAuth
func (handler *Handler) CancelBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CancelBooking")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.CancelBookingRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.bookingService.CancelByBarber(ctx, id, bookingID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to cancel booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking cancelled successfully")

	response.WithMessage(w, http.StatusOK, "Booking cancelled successfully")
}

// CompleteBooking completes a confirmed booking.
// @Summary Complete a booking
// @Description Move a CONFIRMED booking to COMPLETED and bump the shop totals.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Success 200 {object} response.Message "Booking completed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/bookings/{id}/complete [post]
// @Security BearerAuth
func (handler *Handler) CompleteBooking(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CompleteBooking")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.bookingService.Complete(ctx, id, bookingID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to complete booking")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Booking completed successfully")

	response.WithMessage(w, http.StatusOK, "Booking completed successfully")
}

// RequestReschedule proposes a new slot for a booking.
// @Summary Propose a reschedule
// @Description Propose a new date and time. The booking moves to RESCHEDULE_REQUESTED until the customer answers.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Booking ID"
// @Param request body bookingDto.RescheduleRequest true "Reschedule Request"
// @Success 200 {object} response.Message "Reschedule proposed successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/bookings/{id}/reschedule [post]
// @Security BearerAuth
func (handler *Handler) RequestReschedule(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RequestReschedule")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	bookingID := chi.URLParam(r, constant.RequestParamID)

	req := bookingDto.RescheduleRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.bookingService.RequestReschedule(ctx, id, bookingID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to propose reschedule")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Reschedule proposed successfully")

	response.WithMessage(w, http.StatusOK, "Reschedule proposed successfully")
}

// GetBlockedSlots lists the caller's blocked slots.
// @Summary Get blocked slots
// @Description List blocked slots of the owner's shop, optionally for one date.
// @Tags Barber
// @Accept json
// @Produce json
// @Param date query string false "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[[]dto.BlockedSlotResponse] "Blocked slots"
// @Failure 401 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/blocked-slots [get]
// @Security BearerAuth
func (handler *Handler) GetBlockedSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBlockedSlots")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	date := r.URL.Query().Get(constant.RequestParamDate)

	slots, err := handler.shopService.GetBlockedSlots(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get blocked slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Blocked slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// BlockSlot blocks a slot of the caller's shop.
// @Summary Block a slot
// @Description Block one slot so customers cannot book it.
// @Tags Barber
// @Accept json
// @Produce json
// @Param request body dto.BlockSlotRequest true "Block Slot Request"
// @Success 201 {object} response.Message "Slot blocked successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/blocked-slots [post]
// @Security BearerAuth
func (handler *Handler) BlockSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".BlockSlot")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	req := dto.BlockSlotRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.shopService.BlockSlot(ctx, id, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to block slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot blocked successfully")

	response.WithMessage(w, http.StatusCreated, "Slot blocked successfully")
}

// UnblockSlot removes a blocked slot of the caller's shop.
// @Summary Unblock a slot
// @Description Remove a blocked slot so it becomes bookable again.
// @Tags Barber
// @Accept json
// @Produce json
// @Param id path string true "Blocked Slot ID"
// @Success 200 {object} response.Message "Slot unblocked successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/barber/blocked-slots/{id} [delete]
// @Security BearerAuth
func (handler *Handler) UnblockSlot(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UnblockSlot")
	defer scope.End()

	id, ok := ownerID(ctx, w)
	if !ok {
		return
	}

	blockedSlotID := chi.URLParam(r, constant.RequestParamID)

	if err := handler.shopService.UnblockSlot(ctx, id, blockedSlotID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to unblock slot")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slot unblocked successfully")

	response.WithMessage(w, http.StatusOK, "Slot unblocked successfully")
}
