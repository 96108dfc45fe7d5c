package handlers

import (
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/rabbitoyo/catalog-admin-ui/audit"
	"github.com/rabbitoyo/catalog-admin-ui/catalog"
	"github.com/rabbitoyo/catalog-admin-ui/console"
	"github.com/rabbitoyo/catalog-admin-ui/middleware"
)

// ModalHandler drives the single reused product modal: open/close, draft
// field edits, image slots, and the save/delete commits.
type ModalHandler struct {
	App *console.App
}

func NewModalHandler(app *console.App) *ModalHandler {
	return &ModalHandler{App: app}
}

// GET /api/v1/modal -> renderable modal snapshot
func (h *ModalHandler) Get(c *gin.Context) {
	c.JSON(http.StatusOK, h.App.Modal())
}

type openModalRequest struct {
	Mode string `json:"mode" binding:"required"`
	ID   string `json:"id"`
}

// POST /api/v1/modal/open -> load draft + mode and show the modal.
// Add mode starts from the blank template; the other modes need an id.
func (h *ModalHandler) Open(c *gin.Context) {
	var req openModalRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	mode, err := catalog.ParseMode(req.Mode)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	if err := h.App.OpenModal(mode, req.ID); err != nil {
		c.JSON(http.StatusNotFound, gin.H{"error": "product not found"})
		return
	}
	c.JSON(http.StatusOK, h.App.Modal())
}

// POST /api/v1/modal/close -> hide without clearing the draft
func (h *ModalHandler) Close(c *gin.Context) {
	h.App.CloseModal()
	c.JSON(http.StatusOK, h.App.Modal())
}

type fieldRequest struct {
	Field string `json:"field" binding:"required"`
	Value string `json:"value"`
}

// POST /api/v1/modal/field -> one draft field from raw form input
func (h *ModalHandler) SetField(c *gin.Context) {
	var req fieldRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	if err := h.App.SetField(req.Field, req.Value); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, h.App.Modal())
}

type addImageRequest struct {
	URL string `json:"url"`
}

// POST /api/v1/modal/images -> fill the next free slot (primary first).
// Empty urls and adds past the four-slot limit are silently ignored.
func (h *ModalHandler) AddImage(c *gin.Context) {
	var req addImageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "Invalid request format"})
		return
	}
	h.App.AddImage(req.URL)
	c.JSON(http.StatusOK, h.App.Modal())
}

// DELETE /api/v1/modal/images/:index -> clear one slot in the flat sequence
func (h *ModalHandler) RemoveImage(c *gin.Context) {
	index, err := strconv.Atoi(c.Param("index"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid image index"})
		return
	}
	h.App.RemoveImage(index)
	c.JSON(http.StatusOK, h.App.Modal())
}

// POST /api/v1/modal/save -> commit the draft (create or update by mode).
// On failure the modal stays open and the error says which one failed.
func (h *ModalHandler) Save(c *gin.Context) {
	if err := h.App.SaveDraft(c.Request.Context(), middleware.Token(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audit.Record("product.save", h.App.Modal().Draft.ID, "")
	c.JSON(http.StatusOK, gin.H{"message": "saved", "products": h.App.Products()})
}

// POST /api/v1/modal/delete -> remove the product loaded in delete mode
func (h *ModalHandler) Delete(c *gin.Context) {
	id := h.App.Modal().Product.ID
	if err := h.App.DeleteProduct(c.Request.Context(), middleware.Token(c)); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}

	audit.Record("product.delete", id, "")
	c.JSON(http.StatusOK, gin.H{"message": "deleted", "products": h.App.Products()})
}
