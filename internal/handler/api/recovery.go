package api

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"storefront-payments/internal/handler/httperr"
	"storefront-payments/internal/pkg/errs"
	"storefront-payments/internal/usecase/commands"
	"storefront-payments/internal/usecase/queries"
)

type RecoveryHandler struct {
	processor commands.ProcessorCommands
	q         queries.RecoveryQueries
}

func NewRecoveryHandler(processor commands.ProcessorCommands, q queries.RecoveryQueries) *RecoveryHandler {
	return &RecoveryHandler{processor: processor, q: q}
}

// @Summary List dead-lettered events
// @Description List webhook events that exhausted retries and need operator attention
// @Tags recovery
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} queries.DeadLetterView
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recovery/dead-letters [get]
func (h *RecoveryHandler) ListDeadLetters(c *gin.Context) {
	limit := parseLimit(c)
	views, err := h.q.ListDeadLetters(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list dead letters", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"dead_letters": views})
}

// @Summary List emergency orders
// @Description List orders created from payments that matched no known order
// @Tags recovery
// @Produce json
// @Security BearerAuth
// @Param limit query int false "Max items (default 50)"
// @Success 200 {array} queries.EmergencyOrderView
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /recovery/emergency-orders [get]
func (h *RecoveryHandler) ListEmergencyOrders(c *gin.Context) {
	limit := parseLimit(c)
	views, err := h.q.ListEmergencyOrders(c.Request.Context(), limit)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Failed to list emergency orders", nil)
		return
	}
	c.JSON(http.StatusOK, gin.H{"emergency_orders": views})
}

// @Summary Replay a staged event
// @Description Re-run one webhook event through the full processing pipeline
// @Tags recovery
// @Produce json
// @Security BearerAuth
// @Param id path string true "Event ID"
// @Success 200 {object} map[string]string
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /recovery/events/{id}/replay [post]
func (h *RecoveryHandler) ReplayEvent(c *gin.Context) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid event id", nil)
		return
	}

	reason, err := h.processor.ProcessOne(c.Request.Context(), id)
	if err != nil {
		switch {
		case errors.Is(err, errs.ErrEventNotFound):
			httperr.AbortWithError(c, http.StatusNotFound, err, "Event not found", nil)
		case errors.Is(err, errs.ErrLockNotAcquired):
			httperr.AbortWithError(c, http.StatusConflict, err, "Event is being processed", nil)
		case errors.Is(err, errs.ErrManualIntervention):
			httperr.AbortWithError(c, http.StatusConflict, err, "Event dead-lettered again", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Replay failed", nil)
		}
		return
	}

	c.JSON(http.StatusOK, gin.H{"event_id": id.String(), "outcome": reason})
}

func parseLimit(c *gin.Context) int {
	if v := c.Query("limit"); v != "" {
		if iv, err := strconv.Atoi(v); err == nil {
			return iv
		}
	}
	return 0
}
