package routes

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/sarathmw/portfolio-api/internal/api/handlers"
	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories"
)

type Deps struct {
	Personal   *handlers.PersonalInfoHandler
	Skills     *handlers.ContentHandler[models.Skill, *models.Skill]
	Experience *handlers.ContentHandler[models.Experience, *models.Experience]
	Education  *handlers.ContentHandler[models.Education, *models.Education]
	Languages  *handlers.ContentHandler[models.Language, *models.Language]
	Contact    *handlers.ContactHandler
}

func RegisterRoutes(r *gin.Engine, d Deps) {
	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "pong"})
	})

	api := r.Group("/api")

	api.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"message": "Portfolio API - v1.0.0"})
	})

	api.GET("/personal-info", d.Personal.Get)
	api.PUT("/personal-info", d.Personal.Update)

	mountContent(api, "/skills", d.Skills)
	mountContent(api, "/experience", d.Experience)
	mountContent(api, "/education", d.Education)
	mountContent(api, "/languages", d.Languages)

	api.POST("/contact", d.Contact.Submit)
	api.GET("/contact", d.Contact.List)
}

func mountContent[T repositories.Document, PT repositories.Stampable[T]](g *gin.RouterGroup, path string, h *handlers.ContentHandler[T, PT]) {
	g.GET(path, h.List)
	g.POST(path, h.Create)
	g.PUT(path+"/:id", h.Update)
	g.DELETE(path+"/:id", h.Delete)
}
