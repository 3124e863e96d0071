package ai

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"time"

	"justice_lab_go/models"
)

// ErrMissingCredential signals that no bearer credential is configured.
// Callers with a local fallback treat it like any other failure; callers
// without one surface it so the UI can show a reconnect prompt.
var ErrMissingCredential = errors.New("ai: missing credential")

// Client talks to the remote AI collaborator used for case generation,
// audience scenes, judging suggestions and appellate rulings
type Client struct {
	baseURL string
	apiKey  string
	client  *http.Client
}

// NewClient creates a configured client. The per-call deadline comes from
// the caller's context, so the transport-level timeout stays generous.
func NewClient(baseURL, apiKey string) *Client {
	return &Client{
		baseURL: baseURL,
		apiKey:  apiKey,
		client: &http.Client{
			Timeout: 30 * time.Second,
		},
	}
}

// IsConfigured reports whether a remote endpoint is set up
func (c *Client) IsConfigured() bool {
	return c != nil && c.baseURL != ""
}

// RawCase is the loosely-typed case payload returned by the AI service.
// Every field is optional; hydration turns it into a canonical Case.
type RawCase struct {
	CaseID             string             `json:"case_id"`
	Domain             string             `json:"domain"`
	Level              string             `json:"level"`
	Court              string             `json:"court"`
	Chamber            string             `json:"chamber"`
	HearingType        string             `json:"hearing_type"`
	Title              string             `json:"title"`
	Summary            string             `json:"summary"`
	Parties            []models.CaseParty `json:"parties"`
	LegalIssues        []string           `json:"legal_issues"`
	Pieces             []RawPiece         `json:"pieces"`
	EventsDeck         []models.EventCard `json:"events_deck"`
	ObjectionTemplates []models.Objection `json:"objection_templates"`
	Pedagogy           *models.Pedagogy   `json:"pedagogy"`
}

// RawPiece is a piece as the service sends it. Reliability is a pointer
// so an explicit zero is distinguishable from an absent field.
type RawPiece struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	IsLate      bool   `json:"is_late"`
	Reliability *int   `json:"reliability"`
}

// caseResponse tolerates both response envelopes the service uses
type caseResponse struct {
	CaseData *RawCase `json:"caseData"`
	Case     *RawCase `json:"case"`
}

func (r *caseResponse) payload() *RawCase {
	if r.CaseData != nil {
		return r.CaseData
	}
	return r.Case
}

// GenerateCaseRequest is the hybrid generation request keyed by template
type GenerateCaseRequest struct {
	TemplateID string `json:"templateId"`
	Seed       string `json:"seed"`
	Level      string `json:"level"`
}

// GenerateCaseByDomainRequest is keyed by a free-text domain label
type GenerateCaseByDomainRequest struct {
	Domaine string `json:"domaine"`
	Level   string `json:"level"`
	Seed    string `json:"seed"`
	Lang    string `json:"lang"`
}

// SceneRequest carries the case context needed for a hearing transcript
type SceneRequest struct {
	Domain           string         `json:"domain"`
	Level            string         `json:"level"`
	Summary          string         `json:"summary"`
	Pieces           []models.Piece `json:"pieces"`
	LegalIssues      []string       `json:"legal_issues"`
	Role             string         `json:"role"`
	ProceduralOption string         `json:"procedural_option"`
}

// sceneResponse tolerates both envelopes
type sceneResponse struct {
	Audience *models.AudienceScene `json:"audience"`
	Scene    *models.AudienceScene `json:"scene"`
}

// JudgeRequest asks for a ruling suggestion on one objection
type JudgeRequest struct {
	Objection     models.Objection `json:"objection"`
	Role          string           `json:"role"`
	DraftDecision string           `json:"draft_decision"`
	DraftReason   string           `json:"draft_reason"`
}

// JudgeSuggestion is the AI's suggested ruling
type JudgeSuggestion struct {
	Choice    string `json:"choice"`
	Reasoning string `json:"reasoning"`
}

// AppealRequest carries the full case, run and computed scores
type AppealRequest struct {
	Case   *models.Case    `json:"case"`
	Run    *models.Run     `json:"run"`
	Scores models.RunScores `json:"scores"`
}

// GenerateCase requests a case for a template and seed
func (c *Client) GenerateCase(ctx context.Context, req GenerateCaseRequest) (*RawCase, error) {
	var resp caseResponse
	if err := c.post(ctx, "/justicelab/cases/generate", req, &resp); err != nil {
		return nil, err
	}
	raw := resp.payload()
	if raw == nil {
		return nil, fmt.Errorf("response carries no case payload")
	}
	return raw, nil
}

// GenerateCaseByDomain requests a case for a free-text domain label
func (c *Client) GenerateCaseByDomain(ctx context.Context, req GenerateCaseByDomainRequest) (*RawCase, error) {
	var resp caseResponse
	if err := c.post(ctx, "/justicelab/cases/generate-by-domain", req, &resp); err != nil {
		return nil, err
	}
	raw := resp.payload()
	if raw == nil {
		return nil, fmt.Errorf("response carries no case payload")
	}
	return raw, nil
}

// AudienceScene requests a hearing transcript with objections
func (c *Client) AudienceScene(ctx context.Context, req SceneRequest) (*models.AudienceScene, error) {
	var resp sceneResponse
	if err := c.post(ctx, "/justicelab/audience/scene", req, &resp); err != nil {
		return nil, err
	}
	scene := resp.Audience
	if scene == nil {
		scene = resp.Scene
	}
	if scene == nil {
		return nil, fmt.Errorf("response carries no scene payload")
	}
	return scene, nil
}

// JudgeDecision requests a ruling suggestion for one objection
func (c *Client) JudgeDecision(ctx context.Context, req JudgeRequest) (*JudgeSuggestion, error) {
	var suggestion JudgeSuggestion
	if err := c.post(ctx, "/justicelab/judge/suggest", req, &suggestion); err != nil {
		return nil, err
	}
	return &suggestion, nil
}

// AppealDecision requests the appellate ruling for a finished run
func (c *Client) AppealDecision(ctx context.Context, req AppealRequest) (*models.Appeal, error) {
	var appeal models.Appeal
	if err := c.post(ctx, "/justicelab/appeal", req, &appeal); err != nil {
		return nil, err
	}
	switch appeal.Decision {
	case models.AppealConfirmation, models.AppealAnnulation, models.AppealRenvoi:
	default:
		return nil, fmt.Errorf("unknown appeal decision: %q", appeal.Decision)
	}
	return &appeal, nil
}

// post sends a JSON request and decodes the JSON response into out
func (c *Client) post(ctx context.Context, path string, body interface{}, out interface{}) error {
	if !c.IsConfigured() {
		return fmt.Errorf("ai client not configured")
	}
	if c.apiKey == "" {
		return ErrMissingCredential
	}

	payload, err := json.Marshal(body)
	if err != nil {
		return fmt.Errorf("failed to encode request: %w", err)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL+path, bytes.NewReader(payload))
	if err != nil {
		return fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+c.apiKey)

	resp, err := c.client.Do(req)
	if err != nil {
		return fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return fmt.Errorf("API returned status: %d", resp.StatusCode)
	}

	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		return fmt.Errorf("failed to decode response: %w", err)
	}
	return nil
}
