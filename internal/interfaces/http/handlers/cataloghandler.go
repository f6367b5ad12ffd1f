package handlers

import (
	"github.com/gin-gonic/gin"

	"simvia/internal/application/storefront"
	"simvia/internal/shared/logger"
	"simvia/internal/shared/utils"
)

type CatalogHandler struct {
	storefront *storefront.Service
	logger     logger.Interface
}

func NewCatalogHandler(service *storefront.Service) *CatalogHandler {
	return &CatalogHandler{
		storefront: service,
		logger:     logger.NewLogger(),
	}
}

func (h *CatalogHandler) ListCountries(c *gin.Context) {
	countries, err := h.storefront.ListCountries(c.Request.Context())
	if err != nil {
		h.logger.Errorw("failed to list countries", "error", err)
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, countries)
}

func (h *CatalogHandler) GetCountry(c *gin.Context) {
	detail, err := h.storefront.GetCountryBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, detail)
}

func (h *CatalogHandler) ListProducts(c *gin.Context) {
	pagination := utils.ParsePagination(c)
	list, err := h.storefront.ListProducts(c.Request.Context(), storefront.ListProductsQuery{
		ESIMType: c.Query("esimType"),
		Page:     pagination.Page,
		PageSize: pagination.PageSize,
	})
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.ListSuccessResponse(c, list.Products, list.Total, list.Page, list.PageSize)
}

func (h *CatalogHandler) GetProduct(c *gin.Context) {
	detail, err := h.storefront.GetProductBySlug(c.Request.Context(), c.Param("slug"))
	if err != nil {
		utils.ErrorResponseWithError(c, err)
		return
	}
	utils.OKResponse(c, detail)
}
