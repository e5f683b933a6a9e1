package api

import (
	"net/http"
	"slices"
	"strings"

	"dh-booking/internal/domain/reservation"
	reqdto "dh-booking/internal/handler/dto/request"
	resdto "dh-booking/internal/handler/dto/response"
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

type ReservationHandler struct {
	cmds commands.ReservationCommands
	q    queries.ReservationQueries
}

func NewReservationHandler(cmds commands.ReservationCommands, q queries.ReservationQueries) *ReservationHandler {
	return &ReservationHandler{cmds: cmds, q: q}
}

// @Summary Create reservation
// @Description Admit a reservation when no pending or confirmed one overlaps its dates
// @Tags reservations
// @Accept json
// @Produce json
// @Param request body reqdto.CreateReservationRequest true "Reservation request"
// @Success 201 {object} resdto.CreateReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Failure 503 {object} httperr.Response
// @Router /api/reservations [post]
func (h *ReservationHandler) CreateReservation(c *gin.Context) {
	var req reqdto.CreateReservationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		badRequest(c, err, "Invalid request format")
		return
	}
	in, err := req.ToInput()
	if err != nil {
		respondError(c, err)
		return
	}

	result, err := h.cmds.CreateReservation(c.Request.Context(), in)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusCreated, resdto.FromCreateReservationResult(result))
}

// @Summary Get reservation
// @Tags reservations
// @Produce json
// @Param id path string true "Reservation ID"
// @Success 200 {object} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Router /api/reservations/{id} [get]
func (h *ReservationHandler) GetReservation(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation ID format")
		return
	}
	view, err := h.q.GetByID(c.Request.Context(), id)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationView(view))
}

// @Summary Change reservation status
// @Description Apply a lifecycle transition (PENDING to CONFIRMED or CANCELLED, CONFIRMED to FINISHED or CANCELLED)
// @Tags reservations
// @Accept json
// @Produce json
// @Param id path string true "Reservation ID"
// @Param request body reqdto.ChangeStatusRequest true "Target status"
// @Success 200 {object} resdto.ReservationStatusResponse
// @Failure 400 {object} httperr.Response
// @Failure 404 {object} httperr.Response
// @Failure 409 {object} httperr.Response
// @Router /api/reservations/{id}/status [patch]
func (h *ReservationHandler) ChangeStatus(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid reservation ID format")
		return
	}
	var req reqdto.ChangeStatusRequest
	if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
		badRequest(c, bindErr, "Invalid request format")
		return
	}

	res, err := h.cmds.ChangeStatus(c.Request.Context(), id, req.Status)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservation(res))
}

// @Summary List user reservations
// @Tags reservations
// @Produce json
// @Param id path string true "User ID"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/users/{id}/reservations [get]
func (h *ReservationHandler) ListByUser(c *gin.Context) {
	userID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid user ID format")
		return
	}
	views, err := h.q.ListByUser(c.Request.Context(), userID)
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

// @Summary List product reservations
// @Description Optionally narrowed to one renter and to a set of statuses
// @Tags reservations
// @Produce json
// @Param id path string true "Product ID"
// @Param userId query string false "Renter ID"
// @Param status query string false "Comma separated statuses"
// @Success 200 {array} resdto.ReservationResponse
// @Failure 400 {object} httperr.Response
// @Router /api/products/{id}/reservations [get]
func (h *ReservationHandler) ListByProduct(c *gin.Context) {
	productID, err := uuid.Parse(c.Param("id"))
	if err != nil {
		badRequest(c, err, "Invalid product ID format")
		return
	}
	statuses, err := parseStatuses(c.QueryArray("status"))
	if err != nil {
		respondError(c, err)
		return
	}

	var views []*queries.ReservationView
	if raw := c.Query("userId"); raw != "" {
		userID, perr := uuid.Parse(raw)
		if perr != nil {
			badRequest(c, perr, "Invalid user ID format")
			return
		}
		views, err = h.q.ListByProductAndUser(c.Request.Context(), productID, userID)
		if err == nil && len(statuses) > 0 {
			views = slices.DeleteFunc(views, func(v *queries.ReservationView) bool {
				return !slices.Contains(statuses, v.Status)
			})
		}
	} else {
		views, err = h.q.ListByProduct(c.Request.Context(), productID, statuses)
	}
	if err != nil {
		respondError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromReservationViews(views))
}

func parseStatuses(values []string) ([]reservation.Status, error) {
	var out []reservation.Status
	for _, v := range values {
		for _, part := range strings.Split(v, ",") {
			if strings.TrimSpace(part) == "" {
				continue
			}
			s, err := reservation.ParseStatus(part)
			if err != nil {
				return nil, err
			}
			out = append(out, s)
		}
	}
	return out, nil
}
