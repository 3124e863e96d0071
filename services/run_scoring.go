package services

import (
	"fmt"
	"math"

	"justice_lab_go/models"
)

// Clamp bounds applied before the audience-score formula
const (
	maxMicroForScore    = 120
	maxModifierForScore = 20
	highAppealRiskBar   = 10
)

// ScoreResult is the outcome of a scoring pass. The run store is
// responsible for writing it back onto the persisted run.
type ScoreResult struct {
	ScoreGlobal int              `json:"score_global"`
	Scores      models.RunScores `json:"scores"`
	Flags       []models.RunFlag `json:"flags"`
	Debrief     []string         `json:"debrief"`
}

// ScoreRun recomputes the derived scores from the run's accumulated
// state. Qualification and procedure come from external collaborators
// and are only clamped; the audience axis rewards correct objection
// handling and due-process care while penalizing appellate risk, and is
// guaranteed to stay within [0,100] however extreme the accumulators.
func ScoreRun(run *models.Run) ScoreResult {
	scores := run.Scores
	scores.Qualification = clampInt(scores.Qualification, 0, 100)
	scores.Procedure = clampInt(scores.Procedure, 0, 100)
	scores.Rights = clampInt(scores.Rights, 0, 100)
	scores.Motivation = clampInt(scores.Motivation, 0, 100)

	micro := clampInt(run.State.AudienceMicro, 0, maxMicroForScore)
	bonus := clampInt(run.State.RiskModifiers.DueProcessBonus, 0, maxModifierForScore)
	penalty := clampInt(run.State.RiskModifiers.AppealRiskPenalty, 0, maxModifierForScore)

	audience := 50.0 + float64(micro)/2.0 + float64(bonus) - float64(penalty)
	scores.Audience = clampInt(int(math.Round(audience)), 0, 100)

	mean := float64(scores.Qualification+scores.Procedure+scores.Audience) / 3.0
	scores.Global = clampInt(int(math.Round(mean)), 0, 100)

	flags := []models.RunFlag{}
	if penalty >= highAppealRiskBar {
		flags = append(flags, models.RunFlag{Level: "warn", Label: "High appeal risk"})
	}

	debrief := []string{
		fmt.Sprintf("Qualification %d/100, procédure %d/100, audience %d/100. Score global: %d/100.",
			scores.Qualification, scores.Procedure, scores.Audience, scores.Global),
		fmt.Sprintf("Gestion d'audience: micro-score %d, bonus de procédure régulière %d, risque d'appel %d.",
			micro, bonus, penalty),
	}

	return ScoreResult{
		ScoreGlobal: scores.Global,
		Scores:      scores,
		Flags:       flags,
		Debrief:     debrief,
	}
}

// ApplyScoreResult writes a scoring pass back onto a copy of the run
func ApplyScoreResult(run *models.Run, result ScoreResult) *models.Run {
	out := cloneRun(run)
	out.Scores = result.Scores
	out.Flags = result.Flags
	out.Debrief = result.Debrief
	return out
}

// PieceStatus pairs a case piece with its status under a run's effects
type PieceStatus struct {
	Piece  models.Piece `json:"piece"`
	Status string       `json:"status"`
}

// GetEffectivePieces labels every case piece as excluded, late-admitted
// or untouched under the run's accumulated effects. Derived view,
// recomputed on demand, never cached.
func GetEffectivePieces(run *models.Run, caseData *models.Case) []PieceStatus {
	excluded := make(map[string]bool, len(run.State.ExcludedPieceIDs))
	for _, id := range run.State.ExcludedPieceIDs {
		excluded[id] = true
	}
	late := make(map[string]bool, len(run.State.AdmittedLatePieceIDs))
	for _, id := range run.State.AdmittedLatePieceIDs {
		late[id] = true
	}

	out := make([]PieceStatus, 0, len(caseData.Pieces))
	for _, p := range caseData.Pieces {
		status := models.PieceStatusOK
		if excluded[p.ID] {
			status = models.PieceStatusExcluded
		} else if late[p.ID] {
			status = models.PieceStatusLateAdmitted
		}
		out = append(out, PieceStatus{Piece: p, Status: status})
	}
	return out
}

// GetPiecesStatusSummary groups the effective pieces by status
func GetPiecesStatusSummary(run *models.Run, caseData *models.Case) map[string]int {
	summary := map[string]int{
		models.PieceStatusOK:           0,
		models.PieceStatusExcluded:     0,
		models.PieceStatusLateAdmitted: 0,
	}
	for _, ps := range GetEffectivePieces(run, caseData) {
		summary[ps.Status]++
	}
	return summary
}
