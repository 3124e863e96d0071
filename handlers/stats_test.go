package handlers

import (
	"bytes"
	"encoding/json"
	"net/http"
	"strings"
	"testing"

	"justice_lab_go/models"

	"github.com/stretchr/testify/assert"
	"github.com/xuri/excelize/v2"
)

func TestGetStatsHandler(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	assert.NoError(t, GetStatsHandler(c))

	var stats models.Stats
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 0, stats.TotalRuns)

	// Scoring folds the run in
	_, c, _ = setupEcho(http.MethodPost, "/", strings.NewReader(`{"qualification":75}`))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)
	assert.NoError(t, ScoreRunHandler(c))

	_, c, rec = setupEcho(http.MethodGet, "/", nil)
	assert.NoError(t, GetStatsHandler(c))
	assert.NoError(t, json.Unmarshal(rec.Body.Bytes(), &stats))
	assert.Equal(t, 1, stats.TotalRuns)
	assert.NotZero(t, stats.AvgScore)
}

func TestResetStatsHandler(t *testing.T) {
	cases, runs := setupStores(t)
	_, run := seedCaseAndRun(t, cases, runs)

	_, c, _ := setupEcho(http.MethodPost, "/", strings.NewReader(`{"qualification":75}`))
	c.SetParamNames("id")
	c.SetParamValues(run.RunID)
	assert.NoError(t, ScoreRunHandler(c))

	_, c, rec := setupEcho(http.MethodDelete, "/", nil)
	assert.NoError(t, ResetStatsHandler(c))
	assert.Equal(t, http.StatusNoContent, rec.Code)

	assert.Empty(t, runs.ReadRuns())
	assert.Equal(t, 0, runs.ReadStats().TotalRuns)
	assert.Empty(t, runs.GetActiveRunID())
}

func TestExportJournalHandler(t *testing.T) {
	cases, runs := setupStores(t)
	seedCaseAndRun(t, cases, runs)

	_, c, rec := setupEcho(http.MethodGet, "/", nil)
	assert.NoError(t, ExportJournalHandler(c))
	assert.Equal(t, http.StatusOK, rec.Code)
	assert.Contains(t, rec.Header().Get("Content-Disposition"), "justicelab_journal_")

	f, err := excelize.OpenReader(bytes.NewReader(rec.Body.Bytes()))
	assert.NoError(t, err)
	defer f.Close()
	assert.ElementsMatch(t, []string{"Journal", "Décisions", "Statistiques"}, f.GetSheetList())
}
