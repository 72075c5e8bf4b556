package http

import (
	"fmt"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/YelzhanWeb/aquave/internal/adapter/logger"
	"github.com/YelzhanWeb/aquave/internal/app/checkout"
	"github.com/YelzhanWeb/aquave/internal/app/storefront"
	"github.com/YelzhanWeb/aquave/internal/domain"
)

type StorefrontHandler struct {
	service *storefront.Service
	logger  logger.Logger
}

func NewStorefrontHandler(service *storefront.Service, logger logger.Logger) *StorefrontHandler {
	return &StorefrontHandler{
		service: service,
		logger:  logger,
	}
}

type MoodRequest struct {
	MoodID string `json:"mood_id"`
}

type FilterRequest struct {
	Search   *string `json:"search"`
	Category *string `json:"category"`
	Sort     *string `json:"sort"`
}

type PageRequest struct {
	Page      *int   `json:"page"`
	Direction string `json:"direction"`
}

type FavoriteRequest struct {
	Favorite *bool `json:"favorite"`
}

type AmbianceRequest struct {
	LightingIntensity    *int    `json:"lighting_intensity"`
	MusicVolume          *int    `json:"music_volume"`
	SmartLightingEnabled *bool   `json:"smart_lighting_enabled"`
	MusicEnabled         *bool   `json:"music_enabled"`
	Genre                *string `json:"genre"`
}

type CheckoutRequest struct {
	SpiritID *string `json:"spirit_id"`
	Delivery *string `json:"delivery"`
}

type RecommendationsResponse struct {
	Filters domain.FilterState `json:"filters"`
	Results domain.PageView    `json:"results"`
}

func (h *StorefrontHandler) Health(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":   "ok",
		"sessions": h.service.SessionCount(),
	})
}

func (h *StorefrontHandler) ListMoods(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Moods())
}

func (h *StorefrontHandler) ListDrinks(c *gin.Context) {
	c.JSON(http.StatusOK, h.service.Catalog().Drinks())
}

// Recommend runs the filter pipeline over the whole catalog without a session
func (h *StorefrontHandler) Recommend(c *gin.Context) {
	state := domain.DefaultFilterState()
	state.Search = c.Query("search")

	if raw := c.Query("category"); raw != "" {
		category, err := domain.ParseCategoryFilter(raw)
		if err != nil {
			h.respondError(c, err)
			return
		}
		state.Category = category
	}
	if raw := c.Query("sort"); raw != "" {
		sort, err := domain.ParseSortKey(raw)
		if err != nil {
			h.respondError(c, err)
			return
		}
		state.Sort = sort
	}
	if raw := c.Query("page"); raw != "" {
		page, err := strconv.Atoi(raw)
		if err != nil {
			h.respondError(c, fmt.Errorf("%w: page must be a number", errBadRequest))
			return
		}
		state.Page = page
	}

	view := domain.Recommend(h.service.Catalog().Drinks(), state)
	state.Page = view.Page
	c.JSON(http.StatusOK, RecommendationsResponse{Filters: state, Results: view})
}

func (h *StorefrontHandler) CreateSession(c *gin.Context) {
	session := h.service.CreateSession(c.Request.Context())
	c.JSON(http.StatusCreated, session.View())
}

func (h *StorefrontHandler) GetSession(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	c.JSON(http.StatusOK, session.View())
}

func (h *StorefrontHandler) DeleteSession(c *gin.Context) {
	if err := h.service.DisposeSession(c.Request.Context(), c.Param("id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StorefrontHandler) SelectMood(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req MoodRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.MoodID == "" {
		h.respondError(c, fmt.Errorf("%w: mood_id is required", errBadRequest))
		return
	}
	if err := session.SelectMood(req.MoodID); err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, session.View())
}

func (h *StorefrontHandler) GetRecommendations(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	h.respondRecommendations(c, session)
}

func (h *StorefrontHandler) UpdateRecommendations(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req FilterRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	update := storefront.FilterUpdate{Search: req.Search}
	if req.Category != nil {
		category, err := domain.ParseCategoryFilter(*req.Category)
		if err != nil {
			h.respondError(c, err)
			return
		}
		update.Category = &category
	}
	if req.Sort != nil {
		sort, err := domain.ParseSortKey(*req.Sort)
		if err != nil {
			h.respondError(c, err)
			return
		}
		update.Sort = &sort
	}

	if _, err := session.UpdateFilters(update); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondRecommendations(c, session)
}

func (h *StorefrontHandler) ChangePage(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req PageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	var err error
	switch {
	case req.Page != nil:
		_, err = session.GoToPage(*req.Page)
	case req.Direction == "next":
		_, err = session.NextPage()
	case req.Direction == "prev":
		_, err = session.PrevPage()
	default:
		err = fmt.Errorf("%w: page or direction next|prev is required", errBadRequest)
	}
	if err != nil {
		h.respondError(c, err)
		return
	}
	h.respondRecommendations(c, session)
}

func (h *StorefrontHandler) ClearFilters(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if _, err := session.ClearFilters(); err != nil {
		h.respondError(c, err)
		return
	}
	h.respondRecommendations(c, session)
}

func (h *StorefrontHandler) respondRecommendations(c *gin.Context, session *storefront.Session) {
	view, filters, err := session.Recommendations()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, RecommendationsResponse{Filters: filters, Results: view})
}

// SelectDrink answers 200 with the session view whether or not the id matched
func (h *StorefrontHandler) SelectDrink(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	session.SelectDrink(c.Param("drink_id"))
	c.JSON(http.StatusOK, session.View())
}

func (h *StorefrontHandler) AddToCart(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.AddToCart(c.Param("drink_id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StorefrontHandler) Share(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.Share(c.Param("drink_id")); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StorefrontHandler) ToggleFavorite(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req FavoriteRequest
	if err := c.ShouldBindJSON(&req); err != nil || req.Favorite == nil {
		h.respondError(c, fmt.Errorf("%w: favorite is required", errBadRequest))
		return
	}
	if err := session.ToggleFavorite(c.Param("drink_id"), *req.Favorite); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StorefrontHandler) GetVisualization(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	st, err := session.Visualization()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StorefrontHandler) CloseVisualization(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	if err := session.CloseVisualization(); err != nil {
		h.respondError(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

func (h *StorefrontHandler) GetAmbiance(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	st, err := session.Ambiance()
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StorefrontHandler) UpdateAmbiance(c *gin.Context) {
	session, ok := h.session(c)
	if !ok {
		return
	}

	var req AmbianceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	st, err := session.UpdateAmbiance(storefront.AmbianceUpdate{
		LightingIntensity:    req.LightingIntensity,
		MusicVolume:          req.MusicVolume,
		SmartLightingEnabled: req.SmartLightingEnabled,
		MusicEnabled:         req.MusicEnabled,
		Genre:                req.Genre,
	})
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StorefrontHandler) GetCheckout(c *gin.Context) {
	h.checkoutOp(c, (*storefront.Session).Checkout)
}

func (h *StorefrontHandler) UpdateCheckout(c *gin.Context) {
	var req CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.respondError(c, fmt.Errorf("%w: %v", errBadRequest, err))
		return
	}

	update := storefront.CheckoutUpdate{SpiritID: req.SpiritID}
	if req.Delivery != nil {
		delivery, err := domain.ParseDeliveryOption(*req.Delivery)
		if err != nil {
			h.respondError(c, err)
			return
		}
		update.Delivery = &delivery
	}

	h.checkoutOp(c, func(s *storefront.Session) (checkout.State, error) {
		return s.UpdateCheckout(update)
	})
}

func (h *StorefrontHandler) AdvanceCheckout(c *gin.Context) {
	h.checkoutOp(c, (*storefront.Session).AdvanceCheckout)
}

func (h *StorefrontHandler) RetreatCheckout(c *gin.Context) {
	h.checkoutOp(c, (*storefront.Session).RetreatCheckout)
}

func (h *StorefrontHandler) OpenCheckout(c *gin.Context) {
	h.checkoutOp(c, (*storefront.Session).OpenCheckout)
}

func (h *StorefrontHandler) CloseCheckout(c *gin.Context) {
	h.checkoutOp(c, (*storefront.Session).CloseCheckout)
}

func (h *StorefrontHandler) checkoutOp(c *gin.Context, op func(*storefront.Session) (checkout.State, error)) {
	session, ok := h.session(c)
	if !ok {
		return
	}
	st, err := op(session)
	if err != nil {
		h.respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, st)
}

func (h *StorefrontHandler) session(c *gin.Context) (*storefront.Session, bool) {
	session, err := h.service.Session(c.Param("id"))
	if err != nil {
		h.respondError(c, err)
		return nil, false
	}
	return session, true
}
