package handlers

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"justice_lab_go/models"
	"justice_lab_go/services/ai"

	"github.com/labstack/echo/v4"
	"github.com/stretchr/testify/assert"
)

func TestSetAudienceSceneHandlerTemplateFallback(t *testing.T) {
	cases, runs := setupStores(t)
	caseData, run := seedCaseAndRun(t, cases, runs)

	_, c, rec := setupEcho(http.MethodPost, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, SetAudienceSceneHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.NotNil(t, updated.Answers.Audience.Scene)
	assert.Len(t, updated.Answers.Audience.Scene.Objections, len(caseData.ObjectionTemplates))
	assert.NotEmpty(t, updated.Answers.Audience.Scene.Transcript)
}

func TestSetAudienceSceneHandlerMergesRemoteScene(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(map[string]interface{}{
			"scene": map[string]interface{}{
				"transcript": []string{"Le président constate la présence des parties."},
				"objections": []map[string]interface{}{{"id": "AI_OBJ_1", "statement": "Objection distante"}},
			},
		})
	}))
	defer server.Close()
	cases, runs := setupStoresWithAI(t, server.URL, "key")
	_, run := seedCaseAndRun(t, cases, runs)

	_, c, rec := setupEcho(http.MethodPost, "/", nil)
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, SetAudienceSceneHandler(c))

	var updated models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Equal(t, "AI_OBJ_1", updated.Answers.Audience.Scene.Objections[0].ID)
}

func TestApplyDecisionHandler(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)
	objection := run.Answers.Audience.Scene.Objections[0]
	best := objection.BestChoiceByRole[models.RoleJudge]

	body := `{"objectionId":"` + objection.ID + `","decision":"` + best + `","reasoning":"<b>Objection</b> fondée"}`
	_, c, rec := setupEcho(http.MethodPost, "/", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, ApplyDecisionHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)

	var updated models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Len(t, updated.Answers.Audience.Decisions, 1)
	assert.Equal(t, 6, updated.Answers.Audience.Decisions[0].Micro)
	assert.Equal(t, "Objection fondée", updated.Answers.Audience.Decisions[0].Reasoning)
}

func TestApplyDecisionHandlerRejectsUnknownOption(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	body := `{"objectionId":"PEN_OBJ_1","decision":"MAYBE"}`
	_, c, _ := setupEcho(http.MethodPost, "/", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	err := ApplyDecisionHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}

func TestSuggestDecisionHandler(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		json.NewEncoder(w).Encode(ai.JudgeSuggestion{Choice: models.OptionOverrule, Reasoning: "Objection dilatoire."})
	}))
	defer server.Close()
	cases, runs := setupStoresWithAI(t, server.URL, "key")
	_, run := seedCaseAndRun(t, cases, runs)
	objection := run.Answers.Audience.Scene.Objections[0]

	body := `{"objectionId":"` + objection.ID + `"}`
	_, c, rec := setupEcho(http.MethodPost, "/", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, SuggestDecisionHandler(c))

	var suggestion ai.JudgeSuggestion
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &suggestion))
	assert.Equal(t, models.OptionOverrule, suggestion.Choice)
}

func TestSuggestDecisionHandlerMissingCredential(t *testing.T) {
	cases, runs := setupStoresWithAI(t, "http://localhost:9999", "")
	_, run := seedCaseAndRun(t, cases, runs)
	objection := run.Answers.Audience.Scene.Objections[0]

	body := `{"objectionId":"` + objection.ID + `"}`
	_, c, _ := setupEcho(http.MethodPost, "/", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	err := SuggestDecisionHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, httpErr.Code)
}

func TestRecordIncidentHandler(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	body := `{"type":"NULLITY","title":"Exception de nullité","actor":"DEFENSE_COUNSEL"}`
	_, c, rec := setupEcho(http.MethodPost, "/", strings.NewReader(body))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)

	assert.NoError(t, RecordIncidentHandler(c))

	var updated models.Run
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &updated))
	assert.Len(t, updated.State.Incidents, 1)
	assert.Equal(t, 6, updated.State.Incidents[0].Points)
}

func TestChronoHandlerActions(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	_, c, _ := setupEcho(http.MethodPost, "/", nil)
	c.SetParamNames("id", "action")
	c.SetParamValues(run.RunID, "start")
	assert.NoError(t, ChronoHandler(c))

	stored, _ := runs.GetRunByID(run.RunID)
	assert.True(t, stored.State.Chrono.Running)

	_, c, _ = setupEcho(http.MethodPost, "/", strings.NewReader(`{"elapsedMs":90000}`))
	c.SetParamNames("id", "action")
	c.SetParamValues(run.RunID, "elapsed")
	assert.NoError(t, ChronoHandler(c))

	stored, _ = runs.GetRunByID(run.RunID)
	assert.Equal(t, int64(90000), stored.State.Chrono.ElapsedMs)

	_, c, _ = setupEcho(http.MethodPost, "/", nil)
	c.SetParamNames("id", "action")
	c.SetParamValues(run.RunID, "pause")
	err := ChronoHandler(c)
	httpErr, ok := err.(*echo.HTTPError)
	assert.True(t, ok)
	assert.Equal(t, http.StatusBadRequest, httpErr.Code)
}
