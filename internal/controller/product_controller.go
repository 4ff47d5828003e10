package controller

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/lalitaditya04/EcomStore-Platform/internal/domain"
	"github.com/lalitaditya04/EcomStore-Platform/internal/dto"
	"github.com/lalitaditya04/EcomStore-Platform/internal/middleware"
	"github.com/lalitaditya04/EcomStore-Platform/internal/service"
	pkgdto "github.com/lalitaditya04/EcomStore-Platform/pkg/dto"
	"github.com/lalitaditya04/EcomStore-Platform/pkg/response"
	"github.com/rs/zerolog/log"
)

const (
	imagesField = "images"

	messageProductDeleted = "Product deleted successfully"
)

type ProductController struct {
	service service.ProductService
}

func CreateProductController(g *echo.Group, service service.ProductService, isLoggedIn echo.MiddlewareFunc) {
	c := ProductController{
		service: service,
	}

	authenticated := middleware.Authorize()
	sellerOnly := middleware.Authorize(domain.RoleSeller)

	g.GET("/products", c.GetProducts)
	g.GET("/products/search", c.SearchProducts)
	g.GET("/products/seller/my-products", c.GetSellerProducts, isLoggedIn, sellerOnly)
	g.GET("/products/:id", c.GetProduct)
	// role is checked by the service so non-sellers get the create-specific message
	g.POST("/products", c.AddProduct, isLoggedIn, authenticated)
	g.PUT("/products/:id", c.UpdateProduct, isLoggedIn, authenticated)
	g.DELETE("/products/:id", c.DeleteProduct, isLoggedIn, authenticated)
}

func (c *ProductController) GetProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "GetProducts").Msg("")
	}

	resp, err := c.service.GetProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *ProductController) SearchProducts(e echo.Context) error {
	filter := pkgdto.Filter{}
	err := e.Bind(&filter)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "SearchProducts").Msg("")
	}

	resp, err := c.service.SearchProducts(e.Request().Context(), filter)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *ProductController) GetProduct(e echo.Context) error {
	resp, err := c.service.GetProduct(e.Request().Context(), e.Param("id"))
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *ProductController) GetSellerProducts(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	resp, err := c.service.GetSellerProducts(e.Request().Context(), principal)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *ProductController) AddProduct(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "AddProduct").Msg("")
	}

	if err = e.Validate(payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	images, closeAll, err := formFiles(e, imagesField)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	defer closeAll()

	resp, err := c.service.AddProduct(e.Request().Context(), principal, payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusCreated, resp)
}

func (c *ProductController) UpdateProduct(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	payload := dto.ProductUpdateRequest{}
	err = e.Bind(&payload)
	if err != nil {
		log.Ctx(e.Request().Context()).Error().Err(err).Str("component", "UpdateProduct").Msg("")
	}

	if err = e.Validate(payload); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	images, closeAll, err := formFiles(e, imagesField)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}
	defer closeAll()

	resp, err := c.service.UpdateProduct(e.Request().Context(), principal, e.Param("id"), payload, images)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteSuccessResponse(e, http.StatusOK, resp)
}

func (c *ProductController) DeleteProduct(e echo.Context) error {
	principal, err := middleware.PrincipalFrom(e)
	if err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	if err = c.service.DeleteProduct(e.Request().Context(), principal, e.Param("id")); err != nil {
		return response.WriteErrorResponse(e, err, nil)
	}

	return response.WriteMessageResponse(e, messageProductDeleted)
}
