package handlers

import (
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"justice_lab_go/models"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestCreateRunHandler(t *testing.T) {
	cases, runs := setupStores(t)
	caseData, _ := seedCaseAndRun(t, cases, runs)

	body := `{"caseId":"` + caseData.CaseID + `","role":"PROSECUTOR"}`
	_, c, rec := setupEcho(http.MethodPost, "/api/justicelab/runs", strings.NewReader(body))

	assert.NoError(t, CreateRunHandler(c))
	assert.Equal(t, http.StatusCreated, rec.Code)

	var run models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &run))
	assert.Equal(t, caseData.CaseID, run.CaseID)
	assert.Equal(t, models.RoleProsecutor, run.Answers.Role)
	// New run becomes the active one
	assert.Equal(t, run.RunID, runs.GetActiveRunID())
}

func TestCreateRunHandlerUnknownCase(t *testing.T) {
	setupStores(t)

	body := `{"caseId":"RDC-PEN-missing0"}`
	_, c, _ := setupEcho(http.MethodPost, "/api/justicelab/runs", strings.NewReader(body))

	err := CreateRunHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)
}

func TestCreateRunHandlerUnknownRole(t *testing.T) {
	cases, runs := setupStores(t)
	caseData, _ := seedCaseAndRun(t, cases, runs)

	body := `{"caseId":"` + caseData.CaseID + `","role":"SPECTATOR"}`
	_, c, _ := setupEcho(http.MethodPost, "/api/justicelab/runs", strings.NewReader(body))

	err := CreateRunHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestListAndGetRunHandlers(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	_, c, rec := setupEcho(http.MethodGet, "/api/justicelab/runs", nil)
	assert.NoError(t, ListRunsHandler(c))
	var list []models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &list))
	assert.Len(t, list, 1)

	_, c, rec = setupEcho(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)
	assert.NoError(t, GetRunHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
}

func TestDeleteRunHandlerHealsActivePointer(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)
	runs.SetActiveRunID(run.RunID)

	_, c, rec := setupEcho(http.MethodDelete, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, DeleteRunHandler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "", runs.GetActiveRunID())
}

func TestActiveRunLifecycle(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	// No active run yet
	_, c, _ := setupEcho(http.MethodGet, "/api/justicelab/runs/active", nil)
	err := GetActiveRunHandler(c)
	httpErr, _ := err.(*echo.HTTPError)
	assert.Equal(t, http.StatusNotFound, httpErr.Code)

	// Activate
	_, c, rec := setupEcho(http.MethodPost, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)
	assert.NoError(t, ActivateRunHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	// Resolve
	_, c, rec = setupEcho(http.MethodGet, "/api/justicelab/runs/active", nil)
	assert.NoError(t, GetActiveRunHandler(c))
	var active models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &active))
	assert.Equal(t, run.RunID, active.RunID)

	// Clear
	_, c, rec = setupEcho(http.MethodDelete, "/api/justicelab/runs/active", nil)
	assert.NoError(t, ClearActiveRunHandler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)
	assert.Equal(t, "", runs.GetActiveRunID())
}

func TestPatchActiveRunHandlerSanitizes(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)
	runs.SetActiveRunID(run.RunID)

	body := `{"step":"QUALIFICATION","answers":{"qualification":"<b>Vol</b> aggravé"}}`
	_, c, rec := setupEcho(http.MethodPatch, "/api/justicelab/runs/active", strings.NewReader(body))

	assert.NoError(t, PatchActiveRunHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var patched models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &patched))
	assert.Equal(t, models.StepQualification, patched.Step)
	assert.Equal(t, "Vol aggravé", patched.Answers.Qualification)
	// Role survives the partial answers patch
	assert.Equal(t, models.RoleJudge, patched.Answers.Role)
}

func TestGetRunPiecesHandler(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, GetRunPiecesHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var payload struct {
		Pieces  []map[string]interface{} `json:"pieces"`
		Summary map[string]int           `json:"summary"`
	}
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &payload))
	assert.NotEmpty(t, payload.Pieces)
	assert.Contains(t, payload.Summary, models.PieceStatusOK)
}
