package routes_test

import (
	"bytes"
	"encoding/json"
	"io"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sarathmw/portfolio-api/internal/api/handlers"
	"github.com/sarathmw/portfolio-api/internal/api/routes"
	"github.com/sarathmw/portfolio-api/internal/cache"
	"github.com/sarathmw/portfolio-api/internal/models"
	"github.com/sarathmw/portfolio-api/internal/repositories/memory"
	"github.com/sarathmw/portfolio-api/internal/services"
)

func init() {
	gin.SetMode(gin.TestMode)
}

func newTestRouter() *gin.Engine {
	cc := cache.Noop{}
	d := routes.Deps{
		Personal: handlers.NewPersonalInfoHandler(
			services.NewPersonalInfoService(memory.NewSingleton[models.PersonalInfo](), cc)),
		Skills: handlers.NewSkillHandler(
			services.NewContentService[models.Skill, *models.Skill]("skills", "Skill category",
				memory.NewCollection(memory.ContentLess[models.Skill]), cc)),
		Experience: handlers.NewExperienceHandler(
			services.NewContentService[models.Experience, *models.Experience]("experience", "Experience entry",
				memory.NewCollection(memory.ContentLess[models.Experience]), cc)),
		Education: handlers.NewEducationHandler(
			services.NewContentService[models.Education, *models.Education]("education", "Education record",
				memory.NewCollection(memory.ContentLess[models.Education]), cc)),
		Languages: handlers.NewLanguageHandler(
			services.NewContentService[models.Language, *models.Language]("languages", "Language record",
				memory.NewCollection(memory.ContentLess[models.Language]), cc)),
		Contact: handlers.NewContactHandler(
			services.NewContactService(memory.NewCollection(memory.NewestFirst))),
	}

	r := gin.New()
	routes.RegisterRoutes(r, d)
	return r
}

func doJSON(t *testing.T, r *gin.Engine, method, path string, body any) *httptest.ResponseRecorder {
	t.Helper()
	var rd io.Reader
	if body != nil {
		b, err := json.Marshal(body)
		require.NoError(t, err)
		rd = bytes.NewReader(b)
	}
	req := httptest.NewRequest(method, path, rd)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	r.ServeHTTP(w, req)
	return w
}

func decode[T any](t *testing.T, w *httptest.ResponseRecorder) T {
	t.Helper()
	var out T
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &out))
	return out
}

func TestPing(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/ping", nil)
	assert.Equal(t, http.StatusOK, w.Code)
}

func TestAPIRoot(t *testing.T) {
	r := newTestRouter()
	w := doJSON(t, r, http.MethodGet, "/api/", nil)
	assert.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Portfolio API")
}

func TestContactFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "John Smith",
		"email":   "john.smith@example.com",
		"message": "Hello",
	})
	require.Equal(t, http.StatusOK, w.Code)
	msg := decode[models.ContactMessage](t, w)
	assert.NotEmpty(t, msg.ID)
	assert.Equal(t, "unread", msg.Status)
	assert.False(t, msg.CreatedAt.IsZero())

	time.Sleep(5 * time.Millisecond)
	w = doJSON(t, r, http.MethodPost, "/api/contact", gin.H{
		"name":    "Jane Doe",
		"email":   "jane@example.com",
		"message": "Hi there",
	})
	require.Equal(t, http.StatusOK, w.Code)

	w = doJSON(t, r, http.MethodGet, "/api/contact", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.ContactMessage](t, w)
	require.Len(t, list, 2)
	assert.Equal(t, "Jane Doe", list[0].Name, "inbox must list newest first")
	assert.Equal(t, msg.ID, list[1].ID)
}

func TestContactValidation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/contact", gin.H{"name": "John"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "INVALID_ARGUMENT")
}

func TestSkillsFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{
		"category": "Cloud",
		"items":    []string{"AWS", "Azure"},
		"order":    1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Skill](t, w)
	assert.NotEmpty(t, created.ID)

	w = doJSON(t, r, http.MethodGet, "/api/skills", nil)
	require.Equal(t, http.StatusOK, w.Code)
	list := decode[[]models.Skill](t, w)
	require.Len(t, list, 1)
	assert.Equal(t, "Cloud", list[0].Category)
	assert.Equal(t, []string{"AWS", "Azure"}, list[0].Items)

	w = doJSON(t, r, http.MethodPut, "/api/skills/"+created.ID, gin.H{
		"category": "Cloud Platforms",
		"items":    []string{"AWS", "GCP"},
		"order":    2,
	})
	require.Equal(t, http.StatusOK, w.Code)
	updated := decode[models.Skill](t, w)
	assert.Equal(t, created.ID, updated.ID)
	assert.Equal(t, []string{"AWS", "GCP"}, updated.Items)

	w = doJSON(t, r, http.MethodDelete, "/api/skills/"+created.ID, nil)
	require.Equal(t, http.StatusOK, w.Code)
	assert.Contains(t, w.Body.String(), "Skill category deleted successfully")

	w = doJSON(t, r, http.MethodDelete, "/api/skills/"+created.ID, nil)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestSkillsValidation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/skills", gin.H{})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestUpdateMissingID(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/education/no-such-id", gin.H{
		"degree":      "B.Tech",
		"institution": "University",
		"year":        "2017",
		"description": "desc",
	})
	assert.Equal(t, http.StatusNotFound, w.Code)
	assert.Contains(t, w.Body.String(), "Education record not found")
}

func TestLanguageLevelBounds(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/languages", gin.H{"name": "English", "level": 80, "order": 1})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Language](t, w)

	t.Run("CreateOutOfRange", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/languages", gin.H{"name": "Hindi", "level": 150})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateMissingLevel", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/languages", gin.H{"name": "Hindi"})
		assert.Equal(t, http.StatusBadRequest, w.Code)
	})

	t.Run("CreateLevelZero", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPost, "/api/languages", gin.H{"name": "Latin", "level": 0})
		assert.Equal(t, http.StatusOK, w.Code)
	})

	t.Run("UpdateOutOfRangeLeavesRecordUnchanged", func(t *testing.T) {
		w := doJSON(t, r, http.MethodPut, "/api/languages/"+created.ID, gin.H{"name": "English", "level": 150})
		assert.Equal(t, http.StatusBadRequest, w.Code)

		w = doJSON(t, r, http.MethodGet, "/api/languages", nil)
		require.Equal(t, http.StatusOK, w.Code)
		for _, l := range decode[[]models.Language](t, w) {
			if l.ID == created.ID {
				assert.Equal(t, 80, l.Level)
				return
			}
		}
		t.Fatal("created language missing from listing")
	})
}

func TestPersonalInfoFlow(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodGet, "/api/personal-info", nil)
	assert.Equal(t, http.StatusNotFound, w.Code)

	body := gin.H{
		"name":          "Sarath M Warrier",
		"role":          "IT Infrastructure & Support Engineer",
		"sub_role":      "Cybersecurity & DevOps Enthusiast",
		"location":      "Shoranur, Kerala, India",
		"email":         "sarathmwarrier@gmail.com",
		"phone":         "+91-6363-092-902",
		"linkedin":      "linkedin.com/in/sarathmwarrier",
		"about_summary": "Experienced IT engineer.",
	}

	w = doJSON(t, r, http.MethodPut, "/api/personal-info", body)
	require.Equal(t, http.StatusOK, w.Code)
	first := decode[models.PersonalInfo](t, w)
	assert.NotEmpty(t, first.ID)

	body["name"] = "Sarath"
	w = doJSON(t, r, http.MethodPut, "/api/personal-info", body)
	require.Equal(t, http.StatusOK, w.Code)
	second := decode[models.PersonalInfo](t, w)
	assert.Equal(t, first.ID, second.ID, "second upsert must update the same record")
	assert.Equal(t, "Sarath", second.Name)

	w = doJSON(t, r, http.MethodGet, "/api/personal-info", nil)
	require.Equal(t, http.StatusOK, w.Code)
	got := decode[models.PersonalInfo](t, w)
	assert.Equal(t, first.ID, got.ID)
}

func TestPersonalInfoValidation(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPut, "/api/personal-info", gin.H{"name": "only a name"})
	assert.Equal(t, http.StatusBadRequest, w.Code)
}

func TestExperienceOptionalFields(t *testing.T) {
	r := newTestRouter()

	w := doJSON(t, r, http.MethodPost, "/api/experience", gin.H{
		"title":      "IT & Assets Coordinator",
		"company":    "Headout Inc.",
		"start_date": "2025-01-01",
		"duration":   "2025 – Present",
		"highlights": []string{"Managing global IT infrastructure"},
		"order":      1,
	})
	require.Equal(t, http.StatusOK, w.Code)
	created := decode[models.Experience](t, w)
	assert.Nil(t, created.EndDate)
	assert.Nil(t, created.Logo)
	assert.Equal(t, "Headout Inc.", created.Company)
}
