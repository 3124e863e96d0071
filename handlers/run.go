package handlers

import (
	"net/http"

	"justice_lab_go/models"
	"justice_lab_go/services"

	"github.com/labstack/echo/v4"
)

// CreateRunRequest starts a playthrough of a cached case
type CreateRunRequest struct {
	CaseID string `json:"caseId"`
	Role   string `json:"role"`
}

// CreateRunHandler creates a run for a cached case and marks it active
func CreateRunHandler(c echo.Context) error {
	var req CreateRunRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}
	if req.CaseID == "" {
		return echo.NewHTTPError(http.StatusBadRequest, "caseId is required")
	}

	caseData, ok := caseStore.GetCaseByID(req.CaseID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case not found")
	}

	run := services.CreateNewRun(caseData)
	if req.Role != "" {
		if !models.IsValidRole(req.Role) {
			return echo.NewHTTPError(http.StatusBadRequest, "Unknown role")
		}
		run.Answers.Role = req.Role
	}

	if err := runStore.AddRun(run); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to save run")
	}
	if err := runStore.SetActiveRunID(run.RunID); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to activate run")
	}

	return c.JSON(http.StatusCreated, run)
}

// ListRunsHandler returns the stored runs, newest first
func ListRunsHandler(c echo.Context) error {
	return c.JSON(http.StatusOK, runStore.ReadRuns())
}

// GetRunHandler returns one run by id
func GetRunHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}
	return c.JSON(http.StatusOK, run)
}

// DeleteRunHandler removes a run, clearing the active pointer if it
// referenced the deleted run
func DeleteRunHandler(c echo.Context) error {
	id := c.Param("id")
	if _, ok := runStore.GetRunByID(id); !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}
	if err := runStore.DeleteRun(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to delete run")
	}
	runStore.EnsureActiveRunValid()
	return c.NoContent(http.StatusNoContent)
}

// GetActiveRunHandler resolves the active-run pointer
func GetActiveRunHandler(c echo.Context) error {
	runStore.EnsureActiveRunValid()
	run, ok := runStore.GetActiveRun()
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "No active run")
	}
	return c.JSON(http.StatusOK, run)
}

// ActivateRunHandler points the active-run marker at an existing run
func ActivateRunHandler(c echo.Context) error {
	id := c.Param("id")
	run, ok := runStore.GetRunByID(id)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}
	if err := runStore.SetActiveRunID(id); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to activate run")
	}
	return c.JSON(http.StatusOK, run)
}

// PatchActiveRunHandler applies a partial update to the active run. Free
// text inside the answers block is sanitized before merging.
func PatchActiveRunHandler(c echo.Context) error {
	var patch map[string]interface{}
	if err := c.Bind(&patch); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "Invalid request body")
	}

	if answers, ok := patch["answers"].(map[string]interface{}); ok {
		patch["answers"] = services.SanitizeRunAnswers(answers)
	}

	run, err := runStore.PatchActiveRun(patch)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}
	return c.JSON(http.StatusOK, run)
}

// ClearActiveRunHandler drops the active-run pointer without touching
// the run itself
func ClearActiveRunHandler(c echo.Context) error {
	if err := runStore.ClearActiveRunID(); err != nil {
		return echo.NewHTTPError(http.StatusInternalServerError, "Failed to clear active run")
	}
	return c.NoContent(http.StatusNoContent)
}

// GetRunPiecesHandler returns the case pieces as seen through the run's
// accumulated exclusion and late-admission effects
func GetRunPiecesHandler(c echo.Context) error {
	run, ok := runStore.GetRunByID(c.Param("id"))
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Run not found")
	}
	caseData, ok := caseStore.GetCaseByID(run.CaseID)
	if !ok {
		return echo.NewHTTPError(http.StatusNotFound, "Case no longer cached")
	}
	return c.JSON(http.StatusOK, map[string]interface{}{
		"pieces":  services.GetEffectivePieces(run, caseData),
		"summary": services.GetPiecesStatusSummary(run, caseData),
	})
}
