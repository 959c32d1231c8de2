package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"helpdesk/internal/application/auth/usecases"
	"helpdesk/internal/shared/authorization"
	"helpdesk/internal/shared/errors"
	"helpdesk/internal/shared/logger"
	"helpdesk/internal/shared/utils"
)

type AuthHandler struct {
	validateEmployeeUC usecases.ValidateEmployeeExecutor
	adminLoginUC       usecases.AdminLoginExecutor
	getUserUC          usecases.GetUserExecutor
	logger             logger.Interface
}

func NewAuthHandler(
	validateEmployeeUC usecases.ValidateEmployeeExecutor,
	adminLoginUC usecases.AdminLoginExecutor,
	getUserUC usecases.GetUserExecutor,
) *AuthHandler {
	return &AuthHandler{
		validateEmployeeUC: validateEmployeeUC,
		adminLoginUC:       adminLoginUC,
		getUserUC:          getUserUC,
		logger:             logger.NewLogger(),
	}
}

type ValidateEmployeeRequest struct {
	EmployeeID string `json:"employeeId" binding:"required"`
	Username   string `json:"username" binding:"required"`
}

type AdminLoginRequest struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

func (h *AuthHandler) ValidateEmployee(c *gin.Context) {
	var req ValidateEmployeeRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for employee validation", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	result, err := h.validateEmployeeUC.Execute(c.Request.Context(), usecases.ValidateEmployeeCommand{
		EmployeeID: req.EmployeeID,
		Username:   req.Username,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Login successful", result)
}

func (h *AuthHandler) AdminLogin(c *gin.Context) {
	var req AdminLoginRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		h.logger.Warnw("invalid request body for admin login", "error", err)
		utils.ErrorResponseWithError(c, errors.NewValidationError("invalid request payload", err.Error()))
		return
	}

	result, err := h.adminLoginUC.Execute(c.Request.Context(), usecases.AdminLoginCommand{
		Username: req.Username,
		Password: req.Password,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "Login successful", result)
}

func (h *AuthHandler) GetUser(c *gin.Context) {
	identity, ok := authorization.IdentityFromContext(c)
	if !ok {
		utils.ErrorResponse(c, http.StatusUnauthorized, "authentication required")
		return
	}

	userID, err := utils.ParseUintParam(c, "id", "user")
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	result, err := h.getUserUC.Execute(c.Request.Context(), usecases.GetUserQuery{
		UserID:   userID,
		Identity: identity,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}

	utils.SuccessResponse(c, 200, "", result)
}
