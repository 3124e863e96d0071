package services

import (
	"encoding/json"
	"fmt"
	"math/rand"
	"time"
	"unicode/utf8"

	"justice_lab_go/models"

	"github.com/google/uuid"
)

// Micro-score awards per decision
const (
	microBestChoice    = 6
	microClarification = 3
	microParticipation = 1
)

// incidentPoints maps incident type to its point value
var incidentPoints = map[string]int{
	models.IncidentNullity:     6,
	models.IncidentDisclosure:  4,
	models.IncidentContinuance: 3,
	models.IncidentJoinder:     2,
}

// defaultTranscript is the 2-line filler used when a scene has none
var defaultTranscript = []string{
	"Le greffier appelle la cause et vérifie l'identité des parties.",
	"Le président ouvre les débats et donne la parole aux parties.",
}

// cloneRun deep-clones a run through a JSON round-trip so every mutator
// works copy-on-write. Clone failure is non-fatal: a shallow copy is
// returned instead (shared slices, but callers only append).
func cloneRun(run *models.Run) *models.Run {
	payload, err := json.Marshal(run)
	if err != nil {
		shallow := *run
		return &shallow
	}
	var out models.Run
	if err := json.Unmarshal(payload, &out); err != nil {
		shallow := *run
		return &shallow
	}
	return &out
}

// CreateNewRun starts a playthrough of a case: step briefing, one random
// event card drawn from the case's deck (nil when the deck is empty),
// role defaulted to judge, zeroed counters, idle chronometer
func CreateNewRun(caseData *models.Case) *models.Run {
	var eventCard *models.EventCard
	if len(caseData.EventsDeck) > 0 {
		card := caseData.EventsDeck[rand.Intn(len(caseData.EventsDeck))]
		eventCard = &card
	}

	return &models.Run{
		RunID:  uuid.New().String(),
		CaseID: caseData.CaseID,
		CaseMeta: models.CaseSnapshot{
			CaseID: caseData.CaseID,
			Title:  caseData.Title,
			Domain: caseData.Domain,
			Level:  caseData.Level,
		},
		Step:      models.StepBriefing,
		EventCard: eventCard,
		Answers: models.RunAnswers{
			Role: models.RoleJudge,
			Audience: models.RunAudience{
				Decisions: []models.AudienceDecision{},
			},
		},
		State: models.RunState{
			ExcludedPieceIDs:     []string{},
			AdmittedLatePieceIDs: []string{},
			Audit:                []models.AuditEntry{},
			Incidents:            []models.Incident{},
		},
		Flags:     []models.RunFlag{},
		Debrief:   []string{},
		StartedAt: time.Now().UTC(),
	}
}

// MergeAudienceWithTemplates ensures a scene has a non-empty transcript
// and objection list, synthesizing both from the case when absent. Pure
// merge: neither input is mutated.
func MergeAudienceWithTemplates(caseData *models.Case, scene *models.AudienceScene) *models.AudienceScene {
	out := &models.AudienceScene{
		Transcript: []string{},
		Objections: []models.Objection{},
	}
	if scene != nil {
		out.Transcript = append(out.Transcript, scene.Transcript...)
		out.Objections = append(out.Objections, scene.Objections...)
	}
	if len(out.Transcript) == 0 {
		out.Transcript = append(out.Transcript, defaultTranscript...)
	}
	if len(out.Objections) == 0 && caseData != nil {
		out.Objections = append(out.Objections, caseData.ObjectionTemplates...)
	}
	return out
}

// SetAudienceScene attaches or replaces the run's audience scene
func SetAudienceScene(run *models.Run, scene *models.AudienceScene) *models.Run {
	out := cloneRun(run)
	out.Answers.Audience.Scene = scene
	appendAudit(out, "AUDIENCE_SCENE_SET", "")
	return out
}

// DecisionInput is one objection ruling submitted by the player
type DecisionInput struct {
	ObjectionID string
	Decision    string
	Reasoning   string
	Role        string
}

// ApplyAudienceDecision records an objection ruling and folds its effects
// into the run state. An unknown objection id is a deliberate no-op on
// effects: the decision entry is still recorded, with nothing applied.
func ApplyAudienceDecision(run *models.Run, input DecisionInput) *models.Run {
	out := cloneRun(run)

	var objection *models.Objection
	if out.Answers.Audience.Scene != nil {
		for i := range out.Answers.Audience.Scene.Objections {
			if out.Answers.Audience.Scene.Objections[i].ID == input.ObjectionID {
				objection = &out.Answers.Audience.Scene.Objections[i]
				break
			}
		}
	}

	best := ""
	applied := models.ObjectionEffects{
		ExcludePieceIDs:   []string{},
		AdmitLatePieceIDs: []string{},
	}
	if objection != nil {
		best = objection.BestChoiceByRole[input.Role]
		applied = objection.Effects
	}

	micro := microParticipation
	switch {
	case best != "" && input.Decision == best:
		micro = microBestChoice
	case input.Decision == models.OptionClarify:
		micro = microClarification
	}

	out.State.AudienceMicro += micro
	out.State.ExcludedPieceIDs = unionStrings(out.State.ExcludedPieceIDs, applied.ExcludePieceIDs)
	out.State.AdmittedLatePieceIDs = unionStrings(out.State.AdmittedLatePieceIDs, applied.AdmitLatePieceIDs)
	// Risk modifiers only ever grow
	if applied.Risk.AppealRiskPenalty > 0 {
		out.State.RiskModifiers.AppealRiskPenalty += applied.Risk.AppealRiskPenalty
	}
	if applied.Risk.DueProcessBonus > 0 {
		out.State.RiskModifiers.DueProcessBonus += applied.Risk.DueProcessBonus
	}

	record := models.AudienceDecision{
		ObjectionID: input.ObjectionID,
		Decision:    input.Decision,
		Reasoning:   truncate(input.Reasoning, models.MaxReasoningLength),
		At:          time.Now().UTC(),
		Role:        input.Role,
		Micro:       micro,
		Effects:     applied,
	}
	out.Answers.Audience.Decisions = prependDecision(out.Answers.Audience.Decisions, record, models.MaxAudienceDecisions)

	appendAudit(out, "AUDIENCE_DECISION", fmt.Sprintf("%s: %s", input.ObjectionID, input.Decision))
	return out
}

// IncidentInput is one procedural incident to record
type IncidentInput struct {
	Type   string
	Title  string
	Detail string
	Actor  string
}

// RecordIncident adds a procedural incident: fixed points by type feed
// the micro-score, and up to 2 points feed the due-process bonus
func RecordIncident(run *models.Run, input IncidentInput) *models.Run {
	out := cloneRun(run)

	points, ok := incidentPoints[input.Type]
	if !ok {
		points = 1
	}

	out.State.AudienceMicro += points
	bonus := points
	if bonus > 2 {
		bonus = 2
	}
	out.State.RiskModifiers.DueProcessBonus += bonus

	incident := models.Incident{
		ID:     uuid.New().String(),
		Type:   input.Type,
		Title:  input.Title,
		Detail: input.Detail,
		Actor:  input.Actor,
		Points: points,
		At:     time.Now().UTC(),
	}
	out.State.Incidents = prependIncident(out.State.Incidents, incident, models.MaxIncidents)

	appendAudit(out, "INCIDENT_RECORDED", input.Type)
	return out
}

// StartChrono starts the chronometer. The start timestamp is only set
// once, so restarting after a stop keeps the original; each restart
// opens a fresh lap instead.
func StartChrono(run *models.Run) *models.Run {
	out := cloneRun(run)
	now := time.Now().UTC()
	if out.State.Chrono.StartedAt == nil {
		out.State.Chrono.StartedAt = &now
	}
	if !out.State.Chrono.Running {
		out.State.Chrono.ResumedAt = &now
	}
	out.State.Chrono.Running = true
	return out
}

// StopChrono stops the chronometer and folds the current lap into the
// accumulated elapsed time
func StopChrono(run *models.Run) *models.Run {
	out := cloneRun(run)
	if out.State.Chrono.Running {
		lap := out.State.Chrono.ResumedAt
		if lap == nil {
			lap = out.State.Chrono.StartedAt
		}
		if lap != nil {
			out.State.Chrono.ElapsedMs += time.Since(*lap).Milliseconds()
		}
	}
	out.State.Chrono.Running = false
	out.State.Chrono.ResumedAt = nil
	return out
}

// SetChronoElapsed seeds the chronometer's elapsed milliseconds
func SetChronoElapsed(run *models.Run, ms int64) *models.Run {
	out := cloneRun(run)
	if ms < 0 {
		ms = 0
	}
	out.State.Chrono.ElapsedMs = ms
	return out
}

// appendAudit prepends an audit entry, newest first, capped
func appendAudit(run *models.Run, action string, detail string) {
	entry := models.AuditEntry{Action: action, Detail: detail, At: time.Now().UTC()}
	run.State.Audit = append([]models.AuditEntry{entry}, run.State.Audit...)
	if len(run.State.Audit) > models.MaxAuditEntries {
		run.State.Audit = run.State.Audit[:models.MaxAuditEntries]
	}
}

// unionStrings merges additions into base preserving first-seen order
func unionStrings(base []string, additions []string) []string {
	out := append([]string{}, base...)
	seen := make(map[string]bool, len(out))
	for _, s := range out {
		seen[s] = true
	}
	for _, s := range additions {
		if !seen[s] {
			out = append(out, s)
			seen[s] = true
		}
	}
	return out
}

func prependDecision(list []models.AudienceDecision, entry models.AudienceDecision, limit int) []models.AudienceDecision {
	out := append([]models.AudienceDecision{entry}, list...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

func prependIncident(list []models.Incident, entry models.Incident, limit int) []models.Incident {
	out := append([]models.Incident{entry}, list...)
	if len(out) > limit {
		out = out[:limit]
	}
	return out
}

// truncate cuts s to at most max bytes, backing off to a rune boundary
// so accented text never loses a partial rune
func truncate(s string, max int) string {
	if len(s) <= max {
		return s
	}
	cut := max
	for cut > 0 && !utf8.RuneStart(s[cut]) {
		cut--
	}
	return s[:cut]
}
