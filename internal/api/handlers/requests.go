package handlers

import (
	"github.com/gin-gonic/gin"

	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/services"
)

// Request payloads carry the editable fields of each document; identity and
// timestamps are always server-assigned.

type PersonalInfoRequest struct {
	Name         string  `json:"name" binding:"required"`
	Role         string  `json:"role" binding:"required"`
	SubRole      string  `json:"sub_role" binding:"required"`
	Location     string  `json:"location" binding:"required"`
	Email        string  `json:"email" binding:"required"`
	Phone        string  `json:"phone" binding:"required"`
	LinkedIn     string  `json:"linkedin" binding:"required"`
	Avatar       *string `json:"avatar"`
	AboutSummary string  `json:"about_summary" binding:"required"`
}

func (r PersonalInfoRequest) model() models.PersonalInfo {
	return models.PersonalInfo{
		Name:         r.Name,
		Role:         r.Role,
		SubRole:      r.SubRole,
		Location:     r.Location,
		Email:        r.Email,
		Phone:        r.Phone,
		LinkedIn:     r.LinkedIn,
		Avatar:       r.Avatar,
		AboutSummary: r.AboutSummary,
	}
}

type SkillRequest struct {
	Category string   `json:"category" binding:"required"`
	Items    []string `json:"items" binding:"required"`
	Order    int      `json:"order"`
}

func bindSkill(c *gin.Context) (models.Skill, error) {
	var req SkillRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.Skill{}, err
	}
	return models.Skill{Category: req.Category, Items: req.Items, Order: req.Order}, nil
}

type ExperienceRequest struct {
	Title      string   `json:"title" binding:"required"`
	Company    string   `json:"company" binding:"required"`
	StartDate  string   `json:"start_date" binding:"required"`
	EndDate    *string  `json:"end_date"`
	Duration   string   `json:"duration" binding:"required"`
	Logo       *string  `json:"logo"`
	Highlights []string `json:"highlights" binding:"required"`
	Order      int      `json:"order"`
}

func bindExperience(c *gin.Context) (models.Experience, error) {
	var req ExperienceRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.Experience{}, err
	}
	return models.Experience{
		Title:      req.Title,
		Company:    req.Company,
		StartDate:  req.StartDate,
		EndDate:    req.EndDate,
		Duration:   req.Duration,
		Logo:       req.Logo,
		Highlights: req.Highlights,
		Order:      req.Order,
	}, nil
}

type EducationRequest struct {
	Degree      string `json:"degree" binding:"required"`
	Institution string `json:"institution" binding:"required"`
	Year        string `json:"year" binding:"required"`
	Description string `json:"description" binding:"required"`
	Order       int    `json:"order"`
}

func bindEducation(c *gin.Context) (models.Education, error) {
	var req EducationRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.Education{}, err
	}
	return models.Education{
		Degree:      req.Degree,
		Institution: req.Institution,
		Year:        req.Year,
		Description: req.Description,
		Order:       req.Order,
	}, nil
}

type LanguageRequest struct {
	Name string `json:"name" binding:"required"`
	// Level is a pointer so a proficiency of 0 still passes required.
	Level *int `json:"level" binding:"required,gte=0,lte=100"`
	Order int  `json:"order"`
}

func bindLanguage(c *gin.Context) (models.Language, error) {
	var req LanguageRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		return models.Language{}, err
	}
	return models.Language{Name: req.Name, Level: *req.Level, Order: req.Order}, nil
}

// Per-resource handler constructors pair the engine with its binding.

func NewSkillHandler(svc *services.ContentService[models.Skill, *models.Skill]) *ContentHandler[models.Skill, *models.Skill] {
	return &ContentHandler[models.Skill, *models.Skill]{svc: svc, bind: bindSkill}
}

func NewExperienceHandler(svc *services.ContentService[models.Experience, *models.Experience]) *ContentHandler[models.Experience, *models.Experience] {
	return &ContentHandler[models.Experience, *models.Experience]{svc: svc, bind: bindExperience}
}

func NewEducationHandler(svc *services.ContentService[models.Education, *models.Education]) *ContentHandler[models.Education, *models.Education] {
	return &ContentHandler[models.Education, *models.Education]{svc: svc, bind: bindEducation}
}

func NewLanguageHandler(svc *services.ContentService[models.Language, *models.Language]) *ContentHandler[models.Language, *models.Language] {
	return &ContentHandler[models.Language, *models.Language]{svc: svc, bind: bindLanguage}
}
