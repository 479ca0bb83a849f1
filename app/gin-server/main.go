package main

import (
	"os"
	"strings"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/joho/godotenv"

	"github.com/sarathmw/portfolio-api/config"
	"github.com/sarathmw/portfolio-api/internal/api/handlers"
	"github.com/sarathmw/portfolio-api/internal/api/middleware"
	"github.com/sarathmw/portfolio-api/internal/api/routes"
	"github.com/sarathmw/portfolio-api/internal/cache"
	"github.com/sarathmw/portfolio-api/internal/logger"
	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories"
	"github.com/sarathmw/portfolio-api/internal/repositories/memory"
	mongorepo "github.com/sarathmw/portfolio-api/internal/repositories/mongo"
	"github.com/sarathmw/portfolio-api/internal/services"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	var (
		personal   repositories.Singleton[models.PersonalInfo]
		skills     repositories.Collection[models.Skill]
		experience repositories.Collection[models.Experience]
		education  repositories.Collection[models.Education]
		languages  repositories.Collection[models.Language]
		contact    repositories.Collection[models.ContactMessage]
	)

	if os.Getenv("MONGO_URI") != "" {
		if err := config.InitMongo(); err != nil {
			log.Fatalf("MongoDB init error: %v", err)
		}
		if err := config.EnsureMongoIndexes(); err != nil {
			log.Fatalf("MongoDB index error: %v", err)
		}
		db := config.Database()
		personal = mongorepo.NewSingleton[models.PersonalInfo](db, "personal_info")
		skills = mongorepo.NewCollection[models.Skill](db, "skills", mongorepo.SortByDisplayOrder)
		experience = mongorepo.NewCollection[models.Experience](db, "experience", mongorepo.SortByDisplayOrder)
		education = mongorepo.NewCollection[models.Education](db, "education", mongorepo.SortByDisplayOrder)
		languages = mongorepo.NewCollection[models.Language](db, "languages", mongorepo.SortByDisplayOrder)
		contact = mongorepo.NewCollection[models.ContactMessage](db, "contact_messages", mongorepo.SortNewestFirst)
		log.WithField("db", db.Name()).Info("MongoDB connected")
	} else {
		log.Warn("MONGO_URI not set, using in-memory store (data is lost on restart)")
		personal = memory.NewSingleton[models.PersonalInfo]()
		skills = memory.NewCollection(memory.ContentLess[models.Skill])
		experience = memory.NewCollection(memory.ContentLess[models.Experience])
		education = memory.NewCollection(memory.ContentLess[models.Education])
		languages = memory.NewCollection(memory.ContentLess[models.Language])
		contact = memory.NewCollection(memory.NewestFirst)
	}

	var cc cache.Cache = cache.Noop{}
	if err := config.InitRedis(); err != nil {
		log.WithError(err).Warn("Redis unavailable, responses will not be cached")
	} else {
		cc = cache.NewRedisCache(config.RedisClient)
		log.Info("Redis connected")
	}

	d := routes.Deps{
		Personal: handlers.NewPersonalInfoHandler(services.NewPersonalInfoService(personal, cc)),
		Skills: handlers.NewSkillHandler(
			services.NewContentService[models.Skill, *models.Skill]("skills", "Skill category", skills, cc)),
		Experience: handlers.NewExperienceHandler(
			services.NewContentService[models.Experience, *models.Experience]("experience", "Experience entry", experience, cc)),
		Education: handlers.NewEducationHandler(
			services.NewContentService[models.Education, *models.Education]("education", "Education record", education, cc)),
		Languages: handlers.NewLanguageHandler(
			services.NewContentService[models.Language, *models.Language]("languages", "Language record", languages, cc)),
		Contact: handlers.NewContactHandler(services.NewContactService(contact)),
	}

	r := gin.New()
	r.Use(gin.Recovery())
	r.Use(middleware.RequestLogger(log))
	r.Use(cors.New(corsConfig()))

	routes.RegisterRoutes(r, d)

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}
	log.WithField("port", port).Info("portfolio API listening")
	if err := r.Run(":" + port); err != nil {
		log.Fatalf("server error: %v", err)
	}
}

// corsConfig allows all origins unless CORS_ORIGINS narrows the list; the
// site frontend is served from a different host.
func corsConfig() cors.Config {
	cfg := cors.DefaultConfig()
	cfg.AllowMethods = []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"}
	cfg.AllowHeaders = []string{"Origin", "Content-Type", "Accept", "X-Request-Id"}
	if origins := os.Getenv("CORS_ORIGINS"); origins != "" {
		cfg.AllowOrigins = strings.Split(origins, ",")
		cfg.AllowCredentials = true
	} else {
		cfg.AllowAllOrigins = true
	}
	return cfg
}
