// Command seed loads the initial portfolio content into MongoDB. It clears
// the five content collections first, so it is safe to re-run; the contact
// inbox is left untouched.
package main

import (
	"context"
	"time"

	"github.com/joho/godotenv"

	"github.com/sarathmw/portfolio-api/config"
	"github.com/sarathmw/portfolio-api/internal/cache"
	"github.com/sarathmw/portfolio-api/internal/logger"
	"github.com/sarathmw/portfolio-api/internal/models"
	mongorepo "github.com/sarathmw/portfolio-api/internal/repositories/mongo"
	"github.com/sarathmw/portfolio-api/internal/services"
)

func main() {
	_ = godotenv.Load()
	log := logger.New()

	if err := config.InitMongo(); err != nil {
		log.Fatalf("MongoDB init error: %v", err)
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}
	db := config.Database()

	ctx, cancel := context.WithTimeout(context.Background(), 60*time.Second)
	defer cancel()

	for _, name := range []string{"personal_info", "skills", "experience", "education", "languages"} {
		if err := db.Collection(name).Drop(ctx); err != nil {
			log.Fatalf("failed to clear %s: %v", name, err)
		}
	}
	if err := config.EnsureMongoIndexes(); err != nil {
		log.Fatalf("MongoDB index error: %v", err)
	}

	// Seed through the services so ids and timestamps get stamped exactly
	// as API writes would stamp them.
	cc := cache.Noop{}
	personal := services.NewPersonalInfoService(mongorepo.NewSingleton[models.PersonalInfo](db, "personal_info"), cc)
	skills := services.NewContentService[models.Skill, *models.Skill]("skills", "Skill category",
		mongorepo.NewCollection[models.Skill](db, "skills", mongorepo.SortByDisplayOrder), cc)
	experience := services.NewContentService[models.Experience, *models.Experience]("experience", "Experience entry",
		mongorepo.NewCollection[models.Experience](db, "experience", mongorepo.SortByDisplayOrder), cc)
	education := services.NewContentService[models.Education, *models.Education]("education", "Education record",
		mongorepo.NewCollection[models.Education](db, "education", mongorepo.SortByDisplayOrder), cc)
	languages := services.NewContentService[models.Language, *models.Language]("languages", "Language record",
		mongorepo.NewCollection[models.Language](db, "languages", mongorepo.SortByDisplayOrder), cc)

	if _, err := personal.Upsert(ctx, seedPersonalInfo); err != nil {
		log.Fatalf("failed to seed personal info: %v", err)
	}
	log.Info("seeded personal information")

	for _, s := range seedSkills {
		if _, err := skills.Create(ctx, s); err != nil {
			log.Fatalf("failed to seed skill %q: %v", s.Category, err)
		}
	}
	log.WithField("count", len(seedSkills)).Info("seeded skill categories")

	for _, e := range seedExperience {
		if _, err := experience.Create(ctx, e); err != nil {
			log.Fatalf("failed to seed experience %q: %v", e.Title, err)
		}
	}
	log.WithField("count", len(seedExperience)).Info("seeded experience entries")

	for _, e := range seedEducation {
		if _, err := education.Create(ctx, e); err != nil {
			log.Fatalf("failed to seed education %q: %v", e.Degree, err)
		}
	}
	log.WithField("count", len(seedEducation)).Info("seeded education records")

	for _, l := range seedLanguages {
		if _, err := languages.Create(ctx, l); err != nil {
			log.Fatalf("failed to seed language %q: %v", l.Name, err)
		}
	}
	log.WithField("count", len(seedLanguages)).Info("seeded languages")

	log.Info("database seeding complete")
}
