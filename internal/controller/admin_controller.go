package controller

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/internal/service"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/response"
	"github.com/rs/zerolog/log"
)

const defaultAdminID = "admin"

// AdminController exposes the review hooks used by the external admin tool.
type AdminController struct {
	service service.SellerProfileService
}

func CreateAdminController(g *echo.Group, service service.SellerProfileService, isAdmin echo.MiddlewareFunc) {
	c := AdminController{
		service: service,
	}

	admin := g.Group("/admin/seller-profiles", isAdmin)
	admin.POST("/:userId/approve", c.ApproveProfile)
	admin.POST("/:userId/reject", c.RejectProfile)
	admin.POST("/:userId/suspend", c.SuspendProfile)
}

func (c *AdminController) ApproveProfile(e echo.Context) error {
	approvedBy := strings.TrimSpace(e.Request().Header.Get(middleware.AdminIDHeader))
	if approvedBy == "" {
		approvedBy = defaultAdminID
	}

	resp, err := c.service.ApproveProfile(e.Request().Context(), e.Param("userId"), approvedBy)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *AdminController) RejectProfile(e echo.Context) error {
	payload := dto.AdminDecisionRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "RejectProfile").Msg("")
	}

	resp, err := c.service.RejectProfile(e.Request().Context(), e.Param("userId"), payload.Reason)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *AdminController) SuspendProfile(e echo.Context) error {
	resp, err := c.service.SuspendProfile(e.Request().Context(), e.Param("userId"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}
