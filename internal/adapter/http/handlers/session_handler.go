package handlers

import (
	"errors"
	"log"
	"net/http"

	request "github.com/acg-data/bizgenius-sub001/internal/adapter/http/dto/request"
	response "github.com/acg-data/bizgenius-sub001/internal/adapter/http/dto/response"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"
	"github.com/acg-data/bizgenius-sub001/internal/usecase"
	"github.com/acg-data/bizgenius-sub001/pkg"

	"github.com/gin-gonic/gin"
)

var (
	errInvalidSessionPayload = pkg.NewDomainErrorSimple("INVALID_SESSION_INPUT", "Invalid session payload", http.StatusBadRequest)
)

// SessionHandler handles HTTP requests for report generation sessions.
type SessionHandler struct {
	usecase usecase.ISessionUseCase
}

func NewSessionHandler(uc usecase.ISessionUseCase) *SessionHandler {
	return &SessionHandler{usecase: uc}
}

// CreateSession stores a pending session and starts generation in the
// background. The response returns before any section is generated.
//
// @Summary      Start a report generation
// @Tags         sessions
// @Accept       json
// @Produce      json
// @Security     Bearer
// @Param        body  body      request.CreateSessionRequest  true  "Business idea"
// @Success      202   {object}  response.SessionResponse
// @Failure      400   {object}  pkg.HTTPError
// @Router       /sessions [post]
func (h *SessionHandler) CreateSession(c *gin.Context) {
	userID := middleware.UserID(c)
	var payload request.CreateSessionRequest
	if err := c.ShouldBindJSON(&payload); err != nil {
		log.Printf("[session][handler] invalid payload user_id=%s err=%v", userID, err)
		c.JSON(errInvalidSessionPayload.HTTPStatus, errInvalidSessionPayload.ToHTTPError())
		return
	}

	s, err := h.usecase.CreateSession(c.Request.Context(), userID, payload.ResolveIdea(), payload.Answers, payload.Branding)
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	c.JSON(http.StatusAccepted, response.FromSession(s))
}

// @Summary      List the caller's sessions, newest first
// @Tags         sessions
// @Produce      json
// @Security     Bearer
// @Success      200  {array}   response.SessionSummaryResponse
// @Router       /sessions [get]
func (h *SessionHandler) ListSessions(c *gin.Context) {
	items, err := h.usecase.ListSessions(c.Request.Context(), middleware.UserID(c))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessions(items))
}

// @Summary      Get a session with its report
// @Tags         sessions
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionResponse
// @Failure      404  {object}  pkg.HTTPError
// @Router       /sessions/{id} [get]
func (h *SessionHandler) GetSession(c *gin.Context) {
	s, err := h.usecase.GetSession(c.Request.Context(), middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSession(s))
}

// RetrySession re-runs a failed session from the first section.
//
// @Summary      Retry a failed session
// @Tags         sessions
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Session ID"
// @Success      202  {object}  response.SessionResponse
// @Failure      409  {object}  pkg.HTTPError
// @Router       /sessions/{id}/retry [post]
func (h *SessionHandler) RetrySession(c *gin.Context) {
	id := c.Param("id")
	s, err := h.usecase.RetrySession(c.Request.Context(), middleware.UserID(c), id)
	if err != nil {
		log.Printf("[session][handler] retry failed session_id=%s err=%v", id, err)
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusAccepted, response.FromSession(s))
}

func mapSessionError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidIdea):
		return pkg.NewDomainErrorSimple("INVALID_IDEA", "Business idea must be between 1 and 10000 characters", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidSessionID), errors.Is(err, usecase.ErrInvalidUserID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrSessionNotFound):
		return pkg.NewDomainErrorSimple("SESSION_NOT_FOUND", "Session not found", http.StatusNotFound)
	case errors.Is(err, usecase.ErrSessionNotRetryable):
		return pkg.NewDomainErrorSimple("SESSION_NOT_RETRYABLE", "Only failed sessions can be retried", http.StatusConflict)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
