package api

import (
	"errors"
	"net/http"

	reqdto "hotelbook/internal/handler/dto/request"
	resdto "hotelbook/internal/handler/dto/response"
	"hotelbook/internal/handler/httperr"
	"hotelbook/internal/usecase/commands"

	"github.com/gin-gonic/gin"
)

type StaffHandler struct {
	staffCommands commands.StaffCommands
}

func NewStaffHandler(staffCommands commands.StaffCommands) *StaffHandler {
	return &StaffHandler{
		staffCommands: staffCommands,
	}
}

// @Summary Register staff account
// @Description Create a staff account; admin only
// @Tags staff
// @Accept json
// @Produce json
// @Security BearerAuth
// @Param request body reqdto.RegisterStaffRequest true "Staff account"
// @Success 201 {object} resdto.StaffResponse
// @Failure 400 {object} map[string]string
// @Failure 403 {object} map[string]string
// @Failure 409 {object} map[string]string
// @Router /staff [post]
func (h *StaffHandler) RegisterStaff(c *gin.Context) {
	var req reqdto.RegisterStaffRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		httperr.AbortWithError(c, http.StatusBadRequest, err, "Invalid request format", nil)
		return
	}

	view, err := h.staffCommands.RegisterStaff(c.Request.Context(), req)
	if err != nil {
		switch {
		case errors.Is(err, commands.ErrStaffValidation):
			httperr.AbortWithError(c, http.StatusUnprocessableEntity, err, "Staff details failed validation", nil)
		case errors.Is(err, commands.ErrEmailTaken):
			httperr.AbortWithError(c, http.StatusConflict, err, "Email already registered", nil)
		default:
			httperr.AbortWithError(c, http.StatusInternalServerError, err, "Internal server error", nil)
		}
		return
	}

	c.JSON(http.StatusCreated, resdto.StaffResponse{User: view})
}
