package api

import (
	"net/http"

	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/internal/handler/httperr"
	"hotelbook/internal/usecase/queries"

	"github.com/gin-gonic/gin"
)

type DashboardHandler struct {
	dashboardQueries queries.DashboardQueries
}

func NewDashboardHandler(dashboardQueries queries.DashboardQueries) *DashboardHandler {
	return &DashboardHandler{
		dashboardQueries: dashboardQueries,
	}
}

// @Summary Dashboard summary
// @Description Occupancy, revenue, and per-category booking counts
// @Tags dashboard
// @Produce json
// @Security BearerAuth
// @Success 200 {object} resdto.DashboardResponse
// @Failure 403 {object} map[string]string
// @Router /dashboard [get]
func (h *DashboardHandler) Summary(c *gin.Context) {
	view, err := h.dashboardQueries.Summary(c.Request.Context())
	if err != nil {
		httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		return
	}

	c.JSON(http.StatusOK, resdto.FromDashboardView(view))
}
