package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/services"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

// ContentHandler serves the shared CRUD surface of the four content
// resources. Only the request binding differs per resource; the verbs map
// one-to-one onto the engine.
type ContentHandler[T repositories.Document, PT repositories.Stampable[T]] struct {
	svc  *services.ContentService[T, PT]
	bind func(*gin.Context) (T, error)
}

func (h *ContentHandler[T, PT]) List(c *gin.Context) {
	out, err := h.svc.List(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContentHandler[T, PT]) Create(c *gin.Context) {
	doc, err := h.bind(c)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContentHandler.Create", "invalid request body", err))
		return
	}
	out, err := h.svc.Create(c.Request.Context(), doc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContentHandler[T, PT]) Update(c *gin.Context) {
	doc, err := h.bind(c)
	if err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "ContentHandler.Update", "invalid request body", err))
		return
	}
	out, err := h.svc.Update(c.Request.Context(), c.Param("id"), doc)
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, out)
}

func (h *ContentHandler[T, PT]) Delete(c *gin.Context) {
	if err := h.svc.Delete(c.Request.Context(), c.Param("id")); err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": h.svc.Label() + " deleted successfully"})
}
