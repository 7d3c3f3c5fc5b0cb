package shop

import (
	"net/http"
	"trimly/infras/otel"
	"trimly/internal/domains/shop/service"
	"trimly/shared/constant"
	gDto "trimly/shared/dto"
	"trimly/transport/http/response"

	"github.com/go-chi/chi/v5"

	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Shop
	otel    otel.Otel
}

func New(service service.Shop, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/shops", func(routerGroup chi.Router) {
		routerGroup.Get("/", handler.GetShops)
		routerGroup.Get("/{id}", handler.GetShopByID)
		routerGroup.Get("/slug/{slug}", handler.GetShopBySlug)
		routerGroup.Get("/{id}/slots", handler.GetSlots)
	})

	router.Route("/meta", func(routerGroup chi.Router) {
		routerGroup.Get("/locations", handler.GetLocations)
	})
}

// GetShops lists active shops.
// @Summary Browse shops
// @Description List active shops with optional search and location filters.
// @Tags Shop
// @Accept json
// @Produce json
// @Param pagination query gDto.QueryParams false "Pagination parameters"
// @Param q query string false "Search by shop name"
// @Param city query string false "Filter by city"
// @Param area query string false "Filter by area"
// @Success 200 {object} response.Data[dto.GetShopsResponse] "List of shops"
// @Failure 500 {object} response.Error
// @Router /v1/shops [get]
func (handler *Handler) GetShops(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShops")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	query := r.URL.Query().Get(constant.RequestParamQuery)
	city := r.URL.Query().Get(constant.RequestParamCity)
	area := r.URL.Query().Get(constant.RequestParamArea)

	shops, err := handler.service.GetPublicShops(ctx, queryParams, query, city, area)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shops")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shops retrieved successfully")

	response.WithJSON(w, http.StatusOK, shops)
}

// GetShopByID retrieves one active shop.
// @Summary Get a shop by ID
// @Description Retrieve an active shop with its enabled services.
// @Tags Shop
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Success 200 {object} response.Data[dto.ShopResponse] "Shop details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shops/{id} [get]
func (handler *Handler) GetShopByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShopByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	shop, err := handler.service.GetPublicShop(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shop by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shop retrieved successfully")

	response.WithJSON(w, http.StatusOK, shop)
}

// GetShopBySlug retrieves one active shop by its slug.
// @Summary Get a shop by slug
// @Description Retrieve an active shop by its URL slug.
// @Tags Shop
// @Accept json
// @Produce json
// @Param slug path string true "Shop slug"
// @Success 200 {object} response.Data[dto.ShopResponse] "Shop details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shops/slug/{slug} [get]
func (handler *Handler) GetShopBySlug(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetShopBySlug")
	defer scope.End()

	slug := chi.URLParam(r, constant.RequestParamSlug)

	shop, err := handler.service.GetPublicShopBySlug(ctx, slug)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get shop by slug")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Shop retrieved successfully")

	response.WithJSON(w, http.StatusOK, shop)
}

// GetSlots returns the slot grid of a shop for one date.
// @Summary Get slot availability
// @Description Walk the shop working hours and return per-slot seat availability for a date.
// @Tags Shop
// @Accept json
// @Produce json
// @Param id path string true "Shop ID"
// @Param date query string true "Date (YYYY-MM-DD)"
// @Success 200 {object} response.Data[dto.SlotAvailabilityResponse] "Slot grid"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/shops/{id}/slots [get]
func (handler *Handler) GetSlots(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetSlots")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	date := r.URL.Query().Get(constant.RequestParamDate)

	slots, err := handler.service.GetSlots(ctx, id, date)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get slots")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Slots retrieved successfully")

	response.WithJSON(w, http.StatusOK, slots)
}

// GetLocations lists the cities and areas of active shops.
// @Summary Get locations
// @Description List active cities and the areas inside each city.
// @Tags Shop
// @Accept json
// @Produce json
// @Success 200 {object} response.Data[dto.LocationMetaResponse] "Locations"
// @Failure 500 {object} response.Error
// @Router /v1/meta/locations [get]
func (handler *Handler) GetLocations(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetLocations")
	defer scope.End()

	locations, err := handler.service.GetLocations(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get locations")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Locations retrieved successfully")

	response.WithJSON(w, http.StatusOK, locations)
}
