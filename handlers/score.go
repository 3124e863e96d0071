package handlers

import (
	"context"
	"net/http"
	"time"

	"justice_lab_go/models"
	"justice_lab_go/services"
	"justice_lab_go/services/ai"

	"github.com/labstack/echo/v4"
)

// ScoreRunRequest carries the externally-assessed axis scores. Absent
// axes keep whatever the run already holds.
type ScoreRunRequest struct {
	Qualification *int `json:"qualification"`
	Procedure     *int `json:"procedure"`
	Rights        *int `json:"rights"`
	Motivation    *int `json:"motivation"`
}

// ScoreRunHandler scores a run, freezes it and folds it into the
// aggregate stats. Rescoring a finished run recomputes the scores but
// never counts the run twice.
func ScoreRunHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}

	var req ScoreRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.Qualification != nil {
		run.Scores.Qualification = *req.Qualification
	}
	if req.Procedure != nil {
		run.Scores.Procedure = *req.Procedure
	}
	if req.Rights != nil {
		run.Scores.Rights = *req.Rights
	}
	if req.Motivation != nil {
		run.Scores.Motivation = *req.Motivation
	}

	result := services.ScoreRun(run)
	updated := services.ApplyScoreResult(run, result)
	updated.Step = models.StepResult
	updated.Finished = true
	if updated.FinishedAt == nil {
		now := time.Now().UTC()
		updated.FinishedAt = &now
	}

	if !updated.StatsCounted {
		runStore.UpdateGlobalStats(updated)
		updated.StatsCounted = true
	}

	if err := runStore.UpdateRunByID(updated.RunID, updated); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	return c.JSON(http.StatusOK, updated)
}

// AppealRunHandler asks the AI collaborator for the appellate ruling on
// a finished run. There is no local fallback: failures surface as typed
// HTTP errors so the UI can react.
func AppealRunHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}
	if !run.Finished {
		return echo.NewHTTPError(http.StatusConflict, "Run is not finished")
	}
	caseData, ok := caseStore.GetCaseByID(run.CaseID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case no longer cached")
	}

	ctx, cancel := context.WithTimeout(c.Request().Context(), cfg.AITimeout)
	defer cancel()

	appeal, err := aiClient.AppealDecision(ctx, ai.AppealRequest{
		Case:   caseData,
		Run:    run,
		Scores: run.Scores,
	})
	if err != nil {
		if err == ai.ErrMissingCredential {
			return echo.NewHTTPError(http.StatusServiceUnavailable, "AI credential not configured")
		}
		return echo.NewHTTPError(http.StatusBadGateway, "Appellate ruling unavailable")
	}

	run.Appeal = appeal
	run.Step = models.StepAppeal
	if err := runStore.UpdateRunByID(run.RunID, run); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	return c.JSON(http.StatusOK, run)
}
