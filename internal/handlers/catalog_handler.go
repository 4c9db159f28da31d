package handlers

import (
	"github.com/gofiber/fiber/v2"

	"alfredoptarigan/resume-analyser/internal/models"
	"alfredoptarigan/resume-analyser/internal/services"
)

type CatalogHandler struct {
	catalog *services.Catalog
}

func NewCatalogHandler(catalog *services.Catalog) *CatalogHandler {
	return &CatalogHandler{catalog: catalog}
}

// HandleGetCatalog handles GET /catalog
func (h *CatalogHandler) HandleGetCatalog(c *fiber.Ctx) error {
	return c.JSON(models.CatalogResponse{
		Rules:  h.catalog.Rules(),
		Videos: h.catalog.Videos(),
	})
}
