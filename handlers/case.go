package handlers

import (
	"net/http"
	"strings"

	"justice_lab_go/models"
	"justice_lab_go/services"

	"github.com/labstack/echo/v4"
)

// GenerateCaseRequest is the body of the case generation endpoint. When
// Domaine is set the free-text domain path is used, otherwise the
// template-keyed path.
type GenerateCaseRequest struct {
	TemplateID string `json:"templateId"`
	Seed       string `json:"seed"`
	Level      string `json:"level"`
	Domaine    string `json:"domaine"`
	Lang       string `json:"lang"`
}

// GenerateCaseHandler generates a case, asking the AI collaborator first
// and falling back to the local deterministic generator on any failure
func GenerateCaseHandler(c echo.Context) error {
	var req GenerateCaseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if req.Level != "" && !models.IsValidLevel(req.Level) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown level")
	}

	var caseData *models.Case
	if strings.TrimSpace(req.Domaine) != "" {
		caseData = services.GenerateCaseAIByDomain(caseStore, aiClient, services.DomainInput{
			Domaine: req.Domaine,
			Level:   req.Level,
			Seed:    req.Seed,
			Lang:    req.Lang,
			Timeout: cfg.AIDomainTimeout,
		})
	} else {
		caseData = services.GenerateCaseHybrid(caseStore, aiClient, services.HybridInput{
			TemplateID: req.TemplateID,
			Seed:       req.Seed,
			Level:      req.Level,
			AI:         cfg.AIEnabled,
			Timeout:    cfg.AITimeout,
		})
	}

	return c.JSON(http.StatusOK, caseData)
}

// GetCaseHandler looks a generated case up in the cache
func GetCaseHandler(c echo.Context) error {
	id := c.Param("id")
	caseData, ok := caseStore.GetCaseByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}
	return c.JSON(http.StatusOK, caseData)
}

// ListTemplatesHandler returns the catalog of case templates
func ListTemplatesHandler(c echo.Context) error {
	templates := services.Templates()
	out := make([]map[string]interface{}, 0, len(templates))
	for _, t := range templates {
		out = append(out, map[string]interface{}{
			"id":     t.ID,
			"domain": t.Domain,
			"levels": t.Levels,
		})
	}
	return c.JSON(http.StatusOK, out)
}
