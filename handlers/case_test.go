package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"justice_lab_go/models"
	"justice_lab_go/services"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestGenerateCaseHandlerLocalFallback(t *testing.T) {
	setupStores(t)

	body := `{"templateId":"TPL_PENAL_DETENTION","seed":"42","level":"Intermediate"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/justicelab/cases/generate", strings.NewReader(body))

	err := GenerateCaseHandler(c)
	assert.NoError(t, err)
	assert.Equal(t, http.StatusOK, rec.Code)

	var caseData models.Case
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caseData))
	assert.Equal(t, services.MakeCaseID("TPL_PENAL_DETENTION", "42"), caseData.CaseID)
	assert.Equal(t, models.LevelIntermediate, caseData.Level)
}

func TestGenerateCaseHandlerByDomain(t *testing.T) {
	setupStores(t)

	body := `{"domaine":"litige foncier","seed":"9"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/justicelab/cases/generate", strings.NewReader(body))

	assert.NoError(t, GenerateCaseHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var caseData models.Case
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caseData))
	assert.Equal(t, models.DomainFoncier, caseData.Domain)
}

func TestGenerateCaseHandlerRemote(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"caseData": map[string]interface{}{"title": "Affaire distante"},
		})
	}))
	defer server.Close()
	setupStoresWithAI(t, server.URL, "key")

	body := `{"templateId":"TPL_PENAL_DETENTION","seed":"42"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/justicelab/cases/generate", strings.NewReader(body))

	assert.NoError(t, GenerateCaseHandler(c))

	var caseData models.Case
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &caseData))
	assert.Equal(t, "Affaire distante", caseData.Title)
}

func TestGenerateCaseHandlerRejectsUnknownLevel(t *testing.T) {
	setupStores(t)

	body := `{"templateId":"TPL_PENAL_DETENTION","level":"Impossible"}`
	_, c, _ := setupEcho(http.MethodPost, "/api/justicelab/cases/generate", strings.NewReader(body))

	err := GenerateCaseHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestGetCaseHandler(t *testing.T) {
	cases, _ := setupStores(t)
	caseData := services.GenerateCase(cases, services.GenerateCaseInput{TemplateID: "TPL_PENAL_DETENTION", Seed: "1"})

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	c.SetPath("/api/justicelab/cases/:id")
	c.SetParamNames("id")
	c.SetParamValues(caseData.CaseID)

	assert.NoError(t, GetCaseHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestGetCaseHandlerNotFound(t *testing.T) {
	setupStores(t)

	_, c, _ := setupEcho(http.MethodGet, "/", nil)
	c.SetPath("/api/justicelab/cases/:id")
	c.SetParamNames("id")
	c.SetParamValues("RDC-PEN-missing0")

	err := GetCaseHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestListTemplatesHandler(t *testing.T) {
	setupStores(t)
	_, c, rec := setupEcho(http.MethodGet, "/api/justicelab/templates", nil)

	assert.NoError(t, ListTemplatesHandler(c))

	var templates []map[string]interface{}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &templates))
	assert.Len(t, templates, len(services.Templates()))
}
