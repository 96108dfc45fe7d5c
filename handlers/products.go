package handlers

import (
	"errors"
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/rabbitoyo/catalog-admin-ui/audit"
	"github.com/rabbitoyo/catalog-admin-ui/console"
	"github.com/rabbitoyo/catalog-admin-ui/middleware"
)

type ProductHandler struct {
	App *console.App
}

func NewProductHandler(app *console.App) *ProductHandler {
	return &ProductHandler{App: app}
}

// GET /api/v1/products -> current list, refreshed from the backend.
// A failed refresh is logged upstream and the prior list is returned as-is.
func (h *ProductHandler) List(c *gin.Context) {
	h.App.Refresh(c.Request.Context(), middleware.Token(c))
	c.JSON(http.StatusOK, gin.H{"products": h.App.Products()})
}

// PATCH /api/v1/products/:id/enabled -> flip is_enabled on one product.
// A rejected update leaves the product as it was; the response carries the
// state that is actually in effect.
func (h *ProductHandler) ToggleEnabled(c *gin.Context) {
	id := c.Param("id")
	p, err := h.App.ToggleEnabled(c.Request.Context(), middleware.Token(c), id)
	if err != nil {
		if errors.Is(err, console.ErrProductNotFound) {
			c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
			return
		}
		c.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	audit.Record("product.toggle", id, "")
	c.JSON(http.StatusOK, gin.H{"product": p})
}
