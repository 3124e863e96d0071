package services

import (
	"strings"
	"testing"
	"time"
	"unicode/utf8"

	"justice_lab_go/models"

	"github.com/stretchr/testify/assert"
)

func engineTestCase(t *testing.T) *models.Case {
	t.Helper()
	return GenerateCase(nil, GenerateCaseInput{TemplateID: "TPL_PENAL_DETENTION", Seed: "engine", Level: models.LevelIntermediate})
}

func engineTestRun(t *testing.T) (*models.Run, *models.Case) {
	t.Helper()
	caseData := engineTestCase(t)
	run := CreateNewRun(caseData)
	scene := MergeAudienceWithTemplates(caseData, nil)
	run = SetAudienceScene(run, scene)
	return run, caseData
}

func TestCreateNewRunDefaults(t *testing.T) {
	caseData := engineTestCase(t)
	run := CreateNewRun(caseData)

	assert.NotEmpty(t, run.RunID)
	assert.Equal(t, caseData.CaseID, run.CaseID)
	assert.Equal(t, caseData.Title, run.CaseMeta.Title)
	assert.Equal(t, models.StepBriefing, run.Step)
	assert.Equal(t, models.RoleJudge, run.Answers.Role)
	assert.NotNil(t, run.EventCard)
	assert.Empty(t, run.Answers.Audience.Decisions)
	assert.Zero(t, run.State.AudienceMicro)
	assert.False(t, run.Finished)

	// The event card always comes from the case's deck
	found := false
	for _, card := range caseData.EventsDeck {
		if card.ID == run.EventCard.ID {
			found = true
		}
	}
	assert.True(t, found)
}

func TestCreateNewRunEmptyDeck(t *testing.T) {
	caseData := engineTestCase(t)
	caseData.EventsDeck = nil
	run := CreateNewRun(caseData)
	assert.Nil(t, run.EventCard)
}

func TestMergeAudienceWithTemplates(t *testing.T) {
	caseData := engineTestCase(t)

	merged := MergeAudienceWithTemplates(caseData, nil)
	assert.Equal(t, defaultTranscript, merged.Transcript)
	assert.Len(t, merged.Objections, len(caseData.ObjectionTemplates))

	remote := &models.AudienceScene{
		Transcript: []string{"Le président suspend brièvement l'audience."},
		Objections: []models.Objection{{ID: "AI_OBJ_1", Statement: "Objection du collaborateur"}},
	}
	merged = MergeAudienceWithTemplates(caseData, remote)
	assert.Equal(t, remote.Transcript, merged.Transcript)
	assert.Len(t, merged.Objections, 1)
	// The remote scene itself is never mutated
	assert.Len(t, remote.Objections, 1)
}

func TestApplyAudienceDecisionBestChoice(t *testing.T) {
	run, _ := engineTestRun(t)
	objection := run.Answers.Audience.Scene.Objections[0]
	best := objection.BestChoiceByRole[models.RoleJudge]

	updated := ApplyAudienceDecision(run, DecisionInput{
		ObjectionID: objection.ID,
		Decision:    best,
		Reasoning:   "Motivation conforme.",
		Role:        models.RoleJudge,
	})

	assert.Equal(t, microBestChoice, updated.State.AudienceMicro)
	assert.Len(t, updated.Answers.Audience.Decisions, 1)
	assert.Equal(t, microBestChoice, updated.Answers.Audience.Decisions[0].Micro)
	// Copy-on-write: the input run is untouched
	assert.Zero(t, run.State.AudienceMicro)
	assert.Empty(t, run.Answers.Audience.Decisions)
}

func TestApplyAudienceDecisionClarification(t *testing.T) {
	run, _ := engineTestRun(t)
	objection := run.Answers.Audience.Scene.Objections[0]

	updated := ApplyAudienceDecision(run, DecisionInput{
		ObjectionID: objection.ID,
		Decision:    models.OptionClarify,
		Role:        models.RoleJudge,
	})
	assert.Equal(t, microClarification, updated.State.AudienceMicro)
}

func TestApplyAudienceDecisionEffectsUnion(t *testing.T) {
	run, _ := engineTestRun(t)
	objection := run.Answers.Audience.Scene.Objections[0]
	best := objection.BestChoiceByRole[models.RoleJudge]

	once := ApplyAudienceDecision(run, DecisionInput{ObjectionID: objection.ID, Decision: best, Role: models.RoleJudge})
	twice := ApplyAudienceDecision(once, DecisionInput{ObjectionID: objection.ID, Decision: best, Role: models.RoleJudge})

	// Applying the same objection twice never duplicates piece ids
	assert.Equal(t, once.State.ExcludedPieceIDs, twice.State.ExcludedPieceIDs)
	assert.Equal(t, once.State.AdmittedLatePieceIDs, twice.State.AdmittedLatePieceIDs)
	// But both decisions are recorded, newest first
	assert.Len(t, twice.Answers.Audience.Decisions, 2)
}

func TestApplyAudienceDecisionUnknownObjection(t *testing.T) {
	run, _ := engineTestRun(t)

	updated := ApplyAudienceDecision(run, DecisionInput{
		ObjectionID: "OBJ_MISSING",
		Decision:    models.OptionSustain,
		Role:        models.RoleJudge,
	})

	assert.Equal(t, microParticipation, updated.State.AudienceMicro)
	assert.Empty(t, updated.State.ExcludedPieceIDs)
	assert.Empty(t, updated.State.AdmittedLatePieceIDs)
	assert.Len(t, updated.Answers.Audience.Decisions, 1)
}

func TestApplyAudienceDecisionRiskModifiersOnlyGrow(t *testing.T) {
	run, _ := engineTestRun(t)

	current := run
	for _, objection := range run.Answers.Audience.Scene.Objections {
		before := current.State.RiskModifiers
		current = ApplyAudienceDecision(current, DecisionInput{
			ObjectionID: objection.ID,
			Decision:    models.OptionSustain,
			Role:        models.RoleJudge,
		})
		assert.GreaterOrEqual(t, current.State.RiskModifiers.AppealRiskPenalty, before.AppealRiskPenalty)
		assert.GreaterOrEqual(t, current.State.RiskModifiers.DueProcessBonus, before.DueProcessBonus)
		assert.GreaterOrEqual(t, current.State.AudienceMicro, 0)
	}
}

func TestApplyAudienceDecisionTruncatesReasoning(t *testing.T) {
	run, _ := engineTestRun(t)
	objection := run.Answers.Audience.Scene.Objections[0]

	updated := ApplyAudienceDecision(run, DecisionInput{
		ObjectionID: objection.ID,
		Decision:    models.OptionSustain,
		Reasoning:   strings.Repeat("x", models.MaxReasoningLength+500),
		Role:        models.RoleJudge,
	})
	assert.Len(t, updated.Answers.Audience.Decisions[0].Reasoning, models.MaxReasoningLength)

	// Accented text is cut on a rune boundary, never mid-rune
	accented := ApplyAudienceDecision(run, DecisionInput{
		ObjectionID: objection.ID,
		Decision:    models.OptionSustain,
		Reasoning:   strings.Repeat("é", models.MaxReasoningLength),
		Role:        models.RoleJudge,
	})
	got := accented.Answers.Audience.Decisions[0].Reasoning
	assert.LessOrEqual(t, len(got), models.MaxReasoningLength)
	assert.True(t, utf8.ValidString(got))
}

func TestApplyAudienceDecisionCap(t *testing.T) {
	run, _ := engineTestRun(t)
	objection := run.Answers.Audience.Scene.Objections[0]

	current := run
	for i := 0; i < models.MaxAudienceDecisions+10; i++ {
		current = ApplyAudienceDecision(current, DecisionInput{
			ObjectionID: objection.ID,
			Decision:    models.OptionClarify,
			Role:        models.RoleJudge,
		})
	}
	assert.Len(t, current.Answers.Audience.Decisions, models.MaxAudienceDecisions)
}

func TestRecordIncidentPoints(t *testing.T) {
	run, _ := engineTestRun(t)

	updated := RecordIncident(run, IncidentInput{Type: models.IncidentNullity, Title: "Exception de nullité"})
	assert.Equal(t, 6, updated.State.AudienceMicro)
	assert.Equal(t, 2, updated.State.RiskModifiers.DueProcessBonus)
	assert.Len(t, updated.State.Incidents, 1)
	assert.Equal(t, 6, updated.State.Incidents[0].Points)
	assert.NotEmpty(t, updated.State.Incidents[0].ID)

	unknown := RecordIncident(run, IncidentInput{Type: "SOMETHING_ELSE"})
	assert.Equal(t, 1, unknown.State.AudienceMicro)
	assert.Equal(t, 1, unknown.State.RiskModifiers.DueProcessBonus)
}

func TestChronoLifecycle(t *testing.T) {
	run, _ := engineTestRun(t)

	started := StartChrono(run)
	assert.True(t, started.State.Chrono.Running)
	assert.NotNil(t, started.State.Chrono.StartedAt)

	firstStart := *started.State.Chrono.StartedAt
	restarted := StartChrono(StopChrono(started))
	assert.Equal(t, firstStart, *restarted.State.Chrono.StartedAt)

	stopped := StopChrono(started)
	assert.False(t, stopped.State.Chrono.Running)
	assert.GreaterOrEqual(t, stopped.State.Chrono.ElapsedMs, int64(0))

	set := SetChronoElapsed(run, 90000)
	assert.Equal(t, int64(90000), set.State.Chrono.ElapsedMs)
}

func TestChronoRestartCountsEachLapOnce(t *testing.T) {
	run, _ := engineTestRun(t)

	// A running chronometer from an older payload carries no lap marker
	past := time.Now().UTC().Add(-time.Hour)
	run.State.Chrono.Running = true
	run.State.Chrono.StartedAt = &past

	stopped := StopChrono(run)
	firstLap := stopped.State.Chrono.ElapsedMs
	assert.GreaterOrEqual(t, firstLap, time.Hour.Milliseconds())
	assert.Nil(t, stopped.State.Chrono.ResumedAt)

	// Restarting keeps the original start but opens a fresh lap, so the
	// first hour is not counted again
	again := StopChrono(StartChrono(stopped))
	assert.Equal(t, past, *again.State.Chrono.StartedAt)
	assert.Less(t, again.State.Chrono.ElapsedMs-firstLap, time.Minute.Milliseconds())
	assert.False(t, again.State.Chrono.Running)
}

func TestAuditTrailGrows(t *testing.T) {
	run, _ := engineTestRun(t)
	assert.NotEmpty(t, run.State.Audit)
	assert.Equal(t, "AUDIENCE_SCENE_SET", run.State.Audit[0].Action)

	updated := RecordIncident(run, IncidentInput{Type: models.IncidentJoinder})
	assert.Equal(t, "INCIDENT_RECORDED", updated.State.Audit[0].Action)
	assert.Greater(t, len(updated.State.Audit), len(run.State.Audit))
}
