package admin

import (
	"context"
	"net/http"
	"trimly/infras/otel"
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
	router.Route("/admin", func(routerGroup chi.Router) {
		routerGroup.Get("/shops", handler.GetShops)
		routerGroup.Patch("/shops/{id}/status", handler.SetShopStatus)
		routerGroup.Patch("/shops/{id}/commission", handler.SetCommission)
		routerGroup.Get("/bookings", handler.GetBookings)
		routerGroup.Get("/stats", handler.GetStats)
	})
}

func adminID(ctx context.Context, w http.ResponseWriter) (string, bool) {
	id, ok := ctx.Value(constant.ContextKeyUserID).(string)
	if !ok || id == "" {
		log.Error().Msg("failed to get user ID from context")
		response.WithError(w, failure.Unauthorized("unauthorized"))

		return "", false
	}

	return id, true
}

// GetShops lists every shop regardless of status.
// @Summary Get all shops
// @Description List shops with optional status filter. Financial fields are visible.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status (PENDING, ACTIVE, DISABLED)"
// @Success 200 {object} response.Data[dto.GetShopsResponse] "List of shops"
// @Failure 500 {object} response.Error
// @Router /v1/admin/shops [get]
// @Security BearerAuth
func (handler *Handler) GetShops(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShops")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)

	shops, err := handler.shopService.GetAllShops(ctx, queryParams, status)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shops")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shops retrieved successfully")

	response.WithJSON(w, http.StatusOK, shops)
}

// SetShopStatus moves a shop between PENDING, ACTIVE and DISABLED.
// @Summary Set shop status
// @Description Change a shop's status. DISABLED also forces the open flag off.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param request body dto.UpdateShopStatusRequest true "Update Shop Status Request"
// @Success 200 {object} response.Message "Shop status updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/shops/{id}/status [patch]
// @Security BearerAuth
func (handler *Handler) SetShopStatus(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetShopStatus")
	defer scope.End()

	id, ok := adminID(ctx, w)
	if !ok {
		return
	}

	shopID := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateShopStatusRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.shopService.SetShopStatus(ctx, id, shopID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set shop status")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shop status updated successfully")

	response.WithMessage(w, http.StatusOK, "Shop status updated successfully")
}

// SetCommission changes the platform commission of a shop.
// @Summary Set shop commission
// @Description Change the commission percent (0-50) for future bookings. Existing snapshots are untouched.
// @Tags Admin
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param request body dto.UpdateCommissionRequest true "Update Commission Request"
// @Success 200 {object} response.Message "Commission updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/admin/shops/{id}/commission [patch]
// @Security BearerAuth
func (handler *Handler) SetCommission(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetCommission")
	defer scope.End()

	id, ok := adminID(ctx, w)
	if !ok {
		return
	}

	shopID := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateCommissionRequest{}

	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.shopService.SetCommission(ctx, id, shopID, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set commission")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Commission updated successfully")

	response.WithMessage(w, http.StatusOK, "Commission updated successfully")
}

// GetBookings lists every booking on the platform.
// @Summary Get all bookings
// @Description List bookings across all shops with optional status filter.
// @Tags Admin
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param status query string false "Filter by status"
// @Success 200 {object} response.Data[bookingDto.GetBookingsResponse] "List of bookings"
// @Failure 500 {object} response.Error
// @Router /v1/admin/bookings [get]
// @Security BearerAuth
func (handler *Handler) GetBookings(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBookings")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	status := r.URL.Query().Get(constant.RequestParamStatus)

	bookings, err := handler.bookingService.GetAdminBookings(ctx, status, queryParams)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get bookings")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Bookings retrieved successfully")

	response.WithJSON(w, http.StatusOK, bookings)
}

// GetStats returns platform-wide counters.
// @Summary Get platform stats
// @Description Shop and booking counters plus completed revenue and platform fees.
// @Tags Admin
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[bookingDto.AdminStatsResponse] "Stats"
// @Failure 500 {object} response.Error
// @Router /v1/admin/stats [get]
// @Security BearerAuth
func (handler *Handler) GetStats(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetStats")
	defer scope.End()

	stats, err := handler.bookingService.GetAdminStats(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get stats")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Stats retrieved successfully")

	response.WithJSON(w, http.StatusOK, stats)
}
