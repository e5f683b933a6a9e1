package api

import (
	"net/http"
	"time"

	"dh-booking/internal/domain/reservation"
	reqdto "dh-booking/internal/handler/dto/request"
	resdto "dh-booking/internal/handler/dto/response"
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ProductHandler struct {
	availability queries.AvailabilityQueries
	ratings      queries.RatingQueries
	ratingCmds   commands.RatingCommands
}

func NewProductHandler(availability queries.AvailabilityQueries, ratings queries.RatingQueries, ratingCmds commands.RatingCommands) *ProductHandler {
	return &ProductHandler{
		availability: availability,
		ratings:      ratings,
		ratingCmds:   ratingCmds,
	}
}

// @Summary Product availability
// @Description Free date ranges of the product; defaults to today through the configured horizon
// @Tags products
// @Produce json
// @Param id path string true "Product ID"
// @Param from query string false "First day (YYYY-MM-DD)"
// @Param to query string false "Last day (YYYY-MM-DD)"
// @Success 200 {object} resdto.AvailabilityResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/availability [get]
func (h *ProductHandler) GetAvailability(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid product ID format")
		return
	}
	from, err := optionalDay(c.Query("from"))
	if err != nil {
		respondError(c, err)
		return
	}
	to, err := optionalDay(c.Query("to"))
	if err != nil {
		respondError(c, err)
		return
	}

	view, err := h.availability.GetAvailability(c.Request.Context(), productID, from, to)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromAvailabilityView(view))
}

// @Summary Rating eligibility
// @Tags ratings
// @Produce json
// @Param id path string true "Product ID"
// @Param userId query string true "User ID"
// @Success 200 {object} resdto.CanRateResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products/{id}/can-rate [get]
func (h *ProductHandler) CanRate(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid product ID format")
		return
	}
	userID, err := uuid.Parse(c.Query("userId"))
	if err != nil {
		badRequest(c, err, "Invalid user ID format")
		return
	}

	ok, err := h.ratingCmds.CanRate(c.Request.Context(), userID, productID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.CanRateResponse{ProductID: productID, UserID: userID, CanRate: ok})
}

// @Summary Submit rating
// @Description Requires a finished reservation; one rating per user and product
// @Tags ratings
// @Accept json
// @Produce json
// @Param id path string true "Product ID"
// @Param request body reqdto.SubmitRatingRequest true "Rating"
// @Success 201 {object} resdto.RatingResponse
// @Failure 400 {object} httperr.Response
// @Failure 403 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/products/{id}/ratings [post]
func (h *ProductHandler) SubmitRating(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid product ID format")
		return
	}
	var req reqdto.SubmitRatingRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request format")
		return
	}

	r, err := h.ratingCmds.SubmitRating(c.Request.Context(), req.ToInput(productID))
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromRating(r))
}

// @Summary Product ratings
// @Tags ratings
// @Produce json
// @Param id path string true "Product ID"
// @Success 200 {object} resdto.ProductRatingsResponse
// @Failure 404 {object} httperr.Response
// @Router /api/products/{id}/ratings [get]
func (h *ProductHandler) ListRatings(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid product ID format")
		return
	}
	view, err := h.ratings.ListByProduct(c.Request.Context(), productID)
	if err != nil {
		respondError(c, err)
		return
	}
	res, err := resdto.FromProductRatingsView(view)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, res)
}

func optionalDay(raw string) (*time.Time, error) {
	if raw == "" {
		return nil, nil
	}
	d, err := reservation.ParseDay(raw)
	if err != nil {
		return nil, err
	}
	return &d, nil
}
