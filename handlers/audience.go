package handlers

import (
	"context"
	"log"
	"net/http"

	"justice_lab_go/models"
	"justice_lab_go/services"
	"justice_lab_go/services/ai"

	"github.com/labstack/echo/v4"
)

// SetAudienceSceneHandler attaches a hearing scene to the run. The AI
// collaborator is asked first; its scene is merged with the case's
// objection templates, and on any failure the templates alone serve.
func SetAudienceSceneHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}
	caseData, ok := caseStore.GetCaseByID(run.CaseID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case no longer cached")
	}

	var remote *models.AudienceScene
	if aiClient.IsConfigured() {
		ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.AITimeout)
		defer cancel()

		scene, err := aiClient.AudienceScene(ctx, ai.SceneRequest{
			Domain:           caseData.Domain,
			Level:            caseData.Level,
			Summary:          caseData.Summary,
			Pieces:           caseData.Pieces,
			LegalIssues:      caseData.LegalIssues,
			Role:             run.Answers.Role,
			ProceduralOption: run.Answers.ProceduralOption,
		})
		if err != nil {
			log.Printf("[WARNING] AI audience scene failed, using templates: %v", err)
		} else {
			remote = scene
		}
	}

	merged := services.MergeAudienceWithTemplates(caseData, remote)
	updated := services.SetAudienceScene(run, merged)
	if err := runStore.UpdateRunByID(updated.RunID, updated); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	return c.JSON(http.StatusOK, updated)
}

// DecisionRequest is one objection ruling submitted by the player
type DecisionRequest struct {
	ObjectionID string `json:"objectionId"`
	Decision    string `json:"decision"`
	Reasoning   string `json:"reasoning"`
}

// ApplyDecisionHandler records an objection ruling on the run and folds
// its effects into the run state
func ApplyDecisionHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}

	var req DecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.ObjectionID == "" || req.Decision == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "objectionId and decision are required")
	}
	if !models.IsValidOption(req.Decision) {
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown decision option")
	}

	updated := services.ApplyAudienceDecision(run, services.DecisionInput{
		ObjectionID: req.ObjectionID,
		Decision:    req.Decision,
		Reasoning:   services.SanitizeText(req.Reasoning),
		Role:        run.Answers.Role,
	})
	if err := runStore.UpdateRunByID(updated.RunID, updated); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	return c.JSON(http.StatusOK, updated)
}

// SuggestDecisionRequest asks for an AI ruling suggestion
type SuggestDecisionRequest struct {
	ObjectionID   string `json:"objectionId"`
	DraftDecision string `json:"draftDecision"`
	DraftReason   string `json:"draftReason"`
}

// SuggestDecisionHandler asks the AI collaborator how it would rule on
// an objection. There is no local fallback: a missing credential comes
// back as 503 with an actionable message.
func SuggestDecisionHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}

	var req SuggestDecisionRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if run.Answers.Audience.Scene == nil {
		return echo.NewHTTPError(http.StatusConflict, "Run has no audience scene")
	}
	var objection *models.Objection
	for i := range run.Answers.Audience.Scene.Objections {
		if run.Answers.Audience.Scene.Objections[i].ID == req.ObjectionID {
			objection = &run.Answers.Audience.Scene.Objections[i]
			break
		}
	}
	if objection == nil {
		return echo.NewHTTPError(http.StatusNotFound, "Objection not found in scene")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.AITimeout)
	defer cancel()

	suggestion, err := aiClient.JudgeDecision(ctx, ai.JudgeRequest{
		Objection:     *objection,
		Role:          run.Answers.Role,
		DraftDecision: req.DraftDecision,
		DraftReason:   services.SanitizeText(req.DraftReason),
	})
	if err != nil {
		if err == ai.ErrMissingCredential {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "AI credential not configured")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "AI suggestion unavailable")
	}
	return c.JSON(http.StatusOK, suggestion)
}

// IncidentRequest is one procedural incident to record
type IncidentRequest struct {
	Type   string `json:"type"`
	Title  string `json:"title"`
	Detail string `json:"detail"`
	Actor  string `json:"actor"`
}

// RecordIncidentHandler records a procedural incident on the run
func RecordIncidentHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}

	var req IncidentRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Type == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "type is required")
	}

	updated := services.RecordIncident(run, services.IncidentInput{
		Type:   req.Type,
		Title:  services.SanitizeText(req.Title),
		Detail: services.SanitizeText(req.Detail),
		Actor:  req.Actor,
	})
	if err := runStore.UpdateRunByID(updated.RunID, updated); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	return c.JSON(http.StatusOK, updated)
}

// ChronoRequest carries the elapsed value for the elapsed action
type ChronoRequest struct {
	ElapsedMs int64 `json:"elapsedMs"`
}

// ChronoHandler drives the run's hearing chronometer with the actions
// start, stop and elapsed
func ChronoHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}

	var updated *models.Run
	switch c.Param("action") {
	case "start":
		updated = services.StartChrono(run)
	case "stop":
		updated = services.StopChrono(run)
	case "elapsed":
		var req ChronoRequest
		if err := c.Bind(&req); err != nil {
			return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
		}
		updated = services.SetChronoElapsed(run, req.ElapsedMs)
	default:
		return echo.NewHTTPError(http.StatusBadRequest, "Unknown chrono action")
	}

	if err := runStore.UpdateRunByID(updated.RunID, updated); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	return c.JSON(http.StatusOK, updated)
}
