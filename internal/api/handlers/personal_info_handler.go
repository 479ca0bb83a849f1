package handlers

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarathmw/portfolio-api/internal/services"
	"github.com/sarathmw/portfolio-api/internal/utils"
)

type PersonalInfoHandler struct {
	svc services.PersonalInfoService
}

func NewPersonalInfoHandler(svc services.PersonalInfoService) *PersonalInfoHandler {
	return &PersonalInfoHandler{svc: svc}
}

func (h *PersonalInfoHandler) Get(c *gin.Context) {
	info, err := h.svc.Get(c.Request.Context())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}

// Update is the singleton upsert: PUT creates the record when none exists
// and fully replaces it otherwise.
func (h *PersonalInfoHandler) Update(c *gin.Context) {
	var req PersonalInfoRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		writeError(c, utils.E(utils.CodeInvalidArgument, "PersonalInfoHandler.Update", "invalid request body", err))
		return
	}

	info, err := h.svc.Upsert(c.Request.Context(), req.model())
	if err != nil {
		writeError(c, err)
		return
	}
	c.JSON(http.StatusOK, info)
}
