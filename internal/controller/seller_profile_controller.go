package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/internal/service"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/errs"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/response"
	"github.com/rs/zerolog/log"
)

type SellerProfileController struct {
	service service.SellerProfileService
}

func CreateSellerProfileController(g *echo.Group, service service.SellerProfileService, isLoggedIn echo.MiddlewareFunc) {
	c := SellerProfileController{
		service: service,
	}

	sellerOnly := middleware.Authorize(domain.RoleSeller)

	g.GET("/users/seller-profile", c.GetProfile, isLoggedIn, sellerOnly)
	g.POST("/users/seller-profile", c.SubmitProfile, isLoggedIn, sellerOnly)
	g.GET("/users/seller-status", c.GetStatus, isLoggedIn, sellerOnly)
}

func (c *SellerProfileController) GetProfile(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetProfile(e.Request().Context(), principal)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *SellerProfileController) SubmitProfile(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.SellerProfileRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SubmitProfile").Msg("")
		return response.WriteErrorResponse(e, errs.ErrClient, nil)
	}

	payload.Normalize()
	if err = e.Validate(payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	documents, closeAll, err := formFiles(e, service.FieldBusinessRegCertificate, service.FieldCancelledCheque)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	defer closeAll()

	resp, err := c.service.SubmitProfile(e.Request().Context(), principal, payload, documents)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *SellerProfileController) GetStatus(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetStatus(e.Request().Context(), principal)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}
