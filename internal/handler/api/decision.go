package api

import (
	"log/slog"
	"net/http"

	"booking-ops-portal/internal/domain/decision"
	reqdto "booking-ops-portal/internal/handler/dto/request"
	resdto "booking-ops-portal/internal/handler/dto/response"
	"booking-ops-portal/internal/handler/httperr"
	"booking-ops-portal/internal/handler/middleware"
	"booking-ops-portal/internal/pkg/errs"
	"booking-ops-portal/internal/usecase/commands"
	"booking-ops-portal/internal/usecase/queries"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

var errNoActor = errs.New("no authenticated actor on request")

type DecisionHandler struct {
	cmds commands.DecisionCommands
	q    queries.DecisionQueries
}

func NewDecisionHandler(cmds commands.DecisionCommands, q queries.DecisionQueries) *DecisionHandler {
	return &DecisionHandler{cmds: cmds, q: q}
}

// @Summary Approve application
// @Description Approve a pending application to an opportunity
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} resdto.DecisionResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Failure 503 {object} map[string]string
// @Router /applications/{id}/approve [post]
func (h *DecisionHandler) ApproveApplication(c *gin.Context) {
	h.decide(c, decision.KindApplication, decision.ActionApprove)
}

// @Summary Reject application
// @Description Reject a pending application to an opportunity
// @Tags applications
// @Produce json
// @Security BearerAuth
// @Param id path string true "Application ID"
// @Success 200 {object} resdto.DecisionResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /applications/{id}/reject [post]
func (h *DecisionHandler) RejectApplication(c *gin.Context) {
	h.decide(c, decision.KindApplication, decision.ActionReject)
}

// @Summary Approve form response
// @Description Approve a pending application form response
// @Tags form-responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form response ID"
// @Success 200 {object} resdto.DecisionResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /form-responses/{id}/approve [post]
func (h *DecisionHandler) ApproveFormResponse(c *gin.Context) {
	h.decide(c, decision.KindFormResponse, decision.ActionApprove)
}

// @Summary Reject form response
// @Description Reject a pending application form response
// @Tags form-responses
// @Produce json
// @Security BearerAuth
// @Param id path string true "Form response ID"
// @Success 200 {object} resdto.DecisionResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /form-responses/{id}/reject [post]
func (h *DecisionHandler) RejectFormResponse(c *gin.Context) {
	h.decide(c, decision.KindFormResponse, decision.ActionReject)
}

// @Summary Accept booking request
// @Description Accept a pending booking request, optionally with response notes
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Param request body reqdto.DecisionRequest false "Response notes"
// @Success 200 {object} resdto.DecisionResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests/{id}/accept [post]
func (h *DecisionHandler) AcceptBookingRequest(c *gin.Context) {
	h.decide(c, decision.KindBookingRequest, decision.ActionAccept)
}

// @Summary Decline booking request
// @Description Decline a pending booking request, optionally with response notes
// @Tags booking-requests
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param id path string true "Booking request ID"
// @Param request body reqdto.DecisionRequest false "Response notes"
// @Success 200 {object} resdto.DecisionResultResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /booking-requests/{id}/decline [post]
func (h *DecisionHandler) DeclineBookingRequest(c *gin.Context) {
	h.decide(c, decision.KindBookingRequest, decision.ActionDecline)
}

func (h *DecisionHandler) decide(c *gin.Context, kind decision.Kind, action decision.Action) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
		return
	}

	var req reqdto.DecisionRequest
	// the body is optional; an empty one means no notes
	if c.Request.ContentLength != 0 {
		if bindErr := c.ShouldBindJSON(&req); bindErr != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, bindErr, "Invalid request", nil)
			return
		}
	}

	result, err := h.cmds.Decide(c.Request.Context(), actor, commands.DecideRequest{
		Kind:   kind,
		ID:     id,
		Action: action,
		Notes:  req.Notes,
	})
	if err != nil {
		abortWithDecisionError(c, err)
		return
	}

	res, err := resdto.FromDecisionResult(result)
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}
	c.JSON(http.StatusOK, res)
}

// @Summary List decision records
// @Description List applications, form responses or booking requests visible to the actor, newest first
// @Tags decisions
// @Produce json
// @Security BearerAuth
// @Param status query string false "Status filter"
// @Param opportunity_id query string false "Opportunity ID"
// @Param organizer_id query string false "Organizer (brand) ID"
// @Param dj_id query string false "DJ ID"
// @Param limit query int false "Max items (default 20)"
// @Param after query string false "Cursor for keyset pagination"
// @Success 200 {object} resdto.DecisionListResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Router /applications [get]
// @Router /form-responses [get]
// @Router /booking-requests [get]
func (h *DecisionHandler) List(kind decision.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
			return
		}
		var query reqdto.ListDecisionsQuery
		if err := c.ShouldBindQuery(&query); err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid query", nil)
			return
		}

		items, next, err := h.q.List(c.Request.Context(), actor, kind, query.ToFilter(), query.Cursor(), queries.ValidateLimit(query.Limit))
		if err != nil {
			abortWithQueryError(c, err)
			return
		}
		res, err := resdto.FromDecisionList(items, next)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Get decision record
// @Description Get one application, form response or booking request
// @Tags decisions
// @Produce json
// @Security BearerAuth
// @Param id path string true "Record ID"
// @Success 200 {object} resdto.DecisionViewResponse
// @Failure 400 {object} map[string]string
// @Failure 401 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 404 {object} map[string]string
// @Router /applications/{id} [get]
// @Router /form-responses/{id} [get]
// @Router /booking-requests/{id} [get]
func (h *DecisionHandler) Get(kind decision.Kind) gin.HandlerFunc {
	return func(c *gin.Context) {
		actor, ok := middleware.GetActor(c)
		if !ok {
			httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
			return
		}
		id, err := uuid.Parse(c.Param("id"))
		if err != nil {
			httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid id", nil)
			return
		}

		view, err := h.q.GetByID(c.Request.Context(), actor, kind, id)
		if err != nil {
			abortWithQueryError(c, err)
			return
		}
		res, err := resdto.FromDecisionView(view)
		if err != nil {
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
			return
		}
		c.JSON(http.StatusOK, res)
	}
}

// @Summary Pending summary
// @Description Count pending records per kind visible to the actor
// @Tags decisions
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.PendingSummaryResponse
// @Failure 401 {object} map[string]string
// @Failure 500 {object} map[string]string
// @Router /decisions/summary [get]
func (h *DecisionHandler) Summary(c *gin.Context) {
	actor, ok := middleware.GetActor(c)
	if !ok {
		httperr.AbortWithError(c, http.StatusUnauthorized, errNoActor, "Unauthorized", nil)
		return
	}
	summary, err := h.q.PendingSummary(c.Request.Context(), actor)
	if err != nil {
		abortWithQueryError(c, err)
		return
	}
	c.JSON(http.StatusOK, resdto.FromPendingSummary(summary))
}

type decisionErrorDetail struct {
	Retryable bool `json:"retryable"`
}

func abortWithDecisionError(c *gin.Context, err error) {
	fm := commands.Describe(err)
	status := http.StatusInternalServerError

	switch {
	case errs.Is(err, commands.ErrInvalidRequest):
		status = http.StatusBadRequest
	case errs.Is(err, commands.ErrNotFound):
		status = http.StatusNotFound
	case errs.Is(err, commands.ErrAccessDenied):
		status = http.StatusForbidden
	case errs.Is(err, commands.ErrAlreadyDecided):
		status = http.StatusConflict
	case errs.Is(err, commands.ErrInvalidAction):
		status = http.StatusUnprocessableEntity
	case errs.Is(err, commands.ErrSchemaHazard):
		status = http.StatusServiceUnavailable
	case errs.Is(err, commands.ErrTimeout):
		status = http.StatusGatewayTimeout
	case errs.Is(err, commands.ErrTransitionFailed):
		status = http.StatusBadGateway
	default:
		slog.ErrorContext(c.Request.Context(), "unclassified decision error", "error", err)
	}
	httperr.AbortWithError(c, status, err, fm.Message, decisionErrorDetail{Retryable: fm.Retryable})
}

func abortWithQueryError(c *gin.Context, err error) {
	switch {
	case errs.Is(err, queries.ErrDecisionNotFound):
		httperr.AbortWithError(c, http.StatusNotFound, err, "Not found", nil)
	case errs.Is(err, queries.ErrDecisionAccess):
		httperr.AbortWithError(c, http.StatusForbidden, err, "Access denied", nil)
	case errs.Is(err, queries.ErrInvalidCursor),
		errs.Is(err, queries.ErrInvalidKind),
		errs.Is(err, queries.ErrInvalidStatus):
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request", nil)
	default:
		slog.ErrorContext(c.Request.Context(), "decision query failed", "error", err)
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal error", nil)
	}
}
