package handlers

import (
	"io"
	"net/http/httptest"
	"testing"
	"time"

	"justice_lab_go/config"
	"justice_lab_go/models"
	"justice_lab_go/services"
	"justice_lab_go/services/ai"

	"github.com/labstack/echo/v4"
)

// setupStores wires the handler package onto fresh in-memory stores and
// an unconfigured AI client, so every generation path falls back local
func setupStores(t *testing.T) (*services.CaseStore, *services.RunStore) {
	t.Helper()
	kv := services.NewMemoryKV()
	cases := services.NewCaseStore(kv)
	runs := services.NewRunStore(kv)
	Init(&config.Config{
		Environment:     "test",
		AITimeout:       config.DefaultAITimeout,
		AIDomainTimeout: config.DefaultAIDomainTimeout,
	}, cases, runs, ai.NewClient("", ""))
	return cases, runs
}

// setupStoresWithAI wires the handler package against a live AI endpoint
func setupStoresWithAI(t *testing.T, baseURL, apiKey string) (*services.CaseStore, *services.RunStore) {
	t.Helper()
	kv := services.NewMemoryKV()
	cases := services.NewCaseStore(kv)
	runs := services.NewRunStore(kv)
	Init(&config.Config{
		Environment:     "test",
		AIEnabled:       true,
		AIBaseURL:       baseURL,
		AIAPIKey:        apiKey,
		AITimeout:       2 * time.Second,
		AIDomainTimeout: 2 * time.Second,
	}, cases, runs, ai.NewClient(baseURL, apiKey))
	return cases, runs
}

func setupEcho(method, path string, body io.Reader) (*echo.Echo, echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	req := httptest.NewRequest(method, path, body)
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	c := e.NewContext(req, rec)
	return e, c, rec
}

// seedCaseAndRun generates a local case and starts a run on it
func seedCaseAndRun(t *testing.T, cases *services.CaseStore, runs *services.RunStore) (*models.Case, *models.Run) {
	t.Helper()
	caseData := services.GenerateCase(cases, services.GenerateCaseInput{
		TemplateID: "TPL_PENAL_DETENTION",
		Seed:       "handlers",
		Level:      models.LevelIntermediate,
	})
	run := services.CreateNewRun(caseData)
	scene := services.MergeAudienceWithTemplates(caseData, nil)
	run = services.SetAudienceScene(run, scene)
	if err := runs.AddRun(run); err != nil {
		t.Fatalf("failed to seed run: %v", err)
	}
	return caseData, run
}
