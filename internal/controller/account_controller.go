package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/internal/service"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/response"
	"github.com/rs/zerolog/log"
)

type AccountController struct {
	service service.AccountService
}

func CreateAccountController(g *echo.Group, service service.AccountService, isLoggedIn echo.MiddlewareFunc) {
	c := AccountController{
		service: service,
	}

	authenticated := middleware.Authorize()

	g.POST("/auth/register", c.Register)
	g.POST("/auth/login", c.Login)
	g.GET("/auth/me", c.GetUser, isLoggedIn, authenticated)
	g.GET("/users/profile", c.GetUser, isLoggedIn, authenticated)
	g.PUT("/users/profile", c.UpdateUser, isLoggedIn, authenticated)
}

func (c *AccountController) Register(e echo.Context) error {
	payload := dto.RegisterRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Register").Msg("")
	}

	if err = e.Validate(payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.Register(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, resp)
}

func (c *AccountController) Login(e echo.Context) error {
	payload := dto.LoginRequest{}
	err := e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "Login").Msg("")
	}

	if err = e.Validate(payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.Login(e.Request().Context(), payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *AccountController) GetUser(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	user, err := c.service.GetUser(e.Request().Context(), principal)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, dto.UserEnvelope{User: user})
}

func (c *AccountController) UpdateUser(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.UserProfileRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateUser").Msg("")
	}

	if err = e.Validate(payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	user, err := c.service.UpdateUser(e.Request().Context(), principal, payload)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, dto.UserEnvelope{User: user})
}
