package handlers

import (
	"errors"
	"net/http"
	"strconv"
	"strings"
	"time"

	response "github.com/acg-data/bizgenius-sub001/internal/adapter/http/dto/response"
	"github.com/acg-data/bizgenius-sub001/internal/adapter/http/middleware"
	"github.com/acg-data/bizgenius-sub001/internal/usecase"
	"github.com/acg-data/bizgenius-sub001/pkg"

	"github.com/gin-gonic/gin"
)

const (
	defaultCostWindow = 30 * 24 * time.Hour
	defaultTrendDays  = 30
	queryDateLayout   = "2006-01-02"
)

var (
	errInvalidDateQuery = pkg.NewDomainErrorSimple("INVALID_DATE", "from/to must be YYYY-MM-DD or RFC3339", http.StatusBadRequest)
	errInvalidDaysQuery = pkg.NewDomainErrorSimple("INVALID_DAYS", "days must be an integer between 1 and 365", http.StatusBadRequest)
)

// CostHandler serves the cost ledger: per-session totals for the owner and
// provider/trend analytics for admins.
type CostHandler struct {
	costs    usecase.ICostUseCase
	sessions usecase.ISessionUseCase
	now      func() time.Time
}

func NewCostHandler(costs usecase.ICostUseCase, sessions usecase.ISessionUseCase) *CostHandler {
	return &CostHandler{costs: costs, sessions: sessions, now: time.Now}
}

// @Summary      Cost ledger of one session
// @Tags         costs
// @Produce      json
// @Security     Bearer
// @Param        id   path      string  true  "Session ID"
// @Success      200  {object}  response.SessionCostResponse
// @Router       /sessions/{id}/costs [get]
func (h *CostHandler) GetSessionCosts(c *gin.Context) {
	ctx := c.Request.Context()
	s, err := h.sessions.GetSession(ctx, middleware.UserID(c), c.Param("id"))
	if err != nil {
		appErr := mapSessionError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}

	summary, err := h.costs.GetCostsBySession(ctx, s.ID)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.FromSessionCostSummary(s.ID, summary))
}

// GetProviderCosts aggregates by provider over [from, to). Defaults to the
// last 30 days; a date-only `to` includes that whole day.
//
// @Summary      Cost by provider (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        from  query     string  false  "YYYY-MM-DD or RFC3339"
// @Param        to    query     string  false  "YYYY-MM-DD or RFC3339"
// @Success      200   {object}  response.ProviderCostsResponse
// @Router       /admin/costs/providers [get]
func (h *CostHandler) GetProviderCosts(c *gin.Context) {
	to := h.now().UTC()
	from := to.Add(-defaultCostWindow)

	if v := c.Query("to"); v != "" {
		t, dateOnly, err := parseQueryTime(v)
		if err != nil {
			c.JSON(errInvalidDateQuery.HTTPStatus, errInvalidDateQuery.ToHTTPError())
			return
		}
		if dateOnly {
			t = t.AddDate(0, 0, 1)
		}
		to = t
	}
	if v := c.Query("from"); v != "" {
		t, _, err := parseQueryTime(v)
		if err != nil {
			c.JSON(errInvalidDateQuery.HTTPStatus, errInvalidDateQuery.ToHTTPError())
			return
		}
		from = t
	}

	providers, err := h.costs.GetCostsByProvider(c.Request.Context(), from, to)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.ProviderCostsResponse{From: from, To: to, Providers: providers})
}

// @Summary      Daily cost trend (admin)
// @Tags         admin
// @Produce      json
// @Security     Bearer
// @Param        days  query     int  false  "1-365, default 30"
// @Success      200   {object}  response.CostTrendsResponse
// @Router       /admin/costs/trends [get]
func (h *CostHandler) GetCostTrends(c *gin.Context) {
	days := defaultTrendDays
	if v := strings.TrimSpace(c.Query("days")); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil {
			c.JSON(errInvalidDaysQuery.HTTPStatus, errInvalidDaysQuery.ToHTTPError())
			return
		}
		days = n
	}

	points, err := h.costs.GetCostTrends(c.Request.Context(), days)
	if err != nil {
		appErr := mapCostError(err)
		c.JSON(appErr.HTTPStatus, appErr.ToHTTPError())
		return
	}
	c.JSON(http.StatusOK, response.CostTrendsResponse{Days: days, Points: points})
}

func parseQueryTime(v string) (time.Time, bool, error) {
	v = strings.TrimSpace(v)
	if t, err := time.Parse(queryDateLayout, v); err == nil {
		return t.UTC(), true, nil
	}
	t, err := time.Parse(time.RFC3339, v)
	if err != nil {
		return time.Time{}, false, err
	}
	return t.UTC(), false, nil
}

func mapCostError(err error) *pkg.AppError {
	switch {
	case errors.Is(err, usecase.ErrInvalidDateRange):
		return pkg.NewDomainErrorSimple("INVALID_DATE_RANGE", "from must be before to", http.StatusBadRequest)
	case errors.Is(err, usecase.ErrInvalidTrendDays):
		return errInvalidDaysQuery
	case errors.Is(err, usecase.ErrInvalidSessionID):
		return pkg.NewDomainErrorSimple("INVALID_REQUEST", "Invalid request", http.StatusBadRequest)
	default:
		return pkg.NewDomainError("INTERNAL_ERROR", "An internal error occurred", err, http.StatusInternalServerError)
	}
}
