package models

import "time"

// Run step constants. The order is a display/progress hint only; screens
// may write any step directly and the engine never enforces transitions.
const (
	StepBriefing      = "BRIEFING"
	StepQualification = "QUALIFICATION"
	StepProcedure     = "PROCEDURE"
	StepAudience      = "AUDIENCE"
	StepDecision      = "DECISION"
	StepScore         = "SCORE"
	StepAppeal        = "APPEAL"
	StepResult        = "RESULT"
)

// Player role constants
const (
	RoleJudge            = "JUDGE"
	RoleProsecutor       = "PROSECUTOR"
	RolePlaintiffCounsel = "PLAINTIFF_COUNSEL"
	RoleDefenseCounsel   = "DEFENSE_COUNSEL"
	RoleClerk            = "CLERK"
)

// Procedural incident type constants
const (
	IncidentNullity     = "NULLITY"
	IncidentDisclosure  = "DISCLOSURE"
	IncidentContinuance = "CONTINUANCE"
	IncidentJoinder     = "JOINDER"
)

// Appellate decision constants
const (
	AppealConfirmation = "CONFIRMATION"
	AppealAnnulation   = "ANNULATION"
	AppealRenvoi       = "RENVOI"
)

// Piece status labels as seen through a run's accumulated effects
const (
	PieceStatusOK           = "OK"
	PieceStatusExcluded     = "EXCLUDED"
	PieceStatusLateAdmitted = "LATE_ADMITTED"
)

// Collection caps enforced by the engine and stores
const (
	MaxAudienceDecisions = 60
	MaxIncidents         = 80
	MaxAuditEntries      = 250
	MaxStoredRuns        = 60
	MaxReasoningLength   = 1200
)

// AllSteps lists the run steps in display order
var AllSteps = []string{
	StepBriefing,
	StepQualification,
	StepProcedure,
	StepAudience,
	StepDecision,
	StepScore,
	StepAppeal,
	StepResult,
}

// AllRoles lists the playable roles
var AllRoles = []string{
	RoleJudge,
	RoleProsecutor,
	RolePlaintiffCounsel,
	RoleDefenseCounsel,
	RoleClerk,
}

// IsValidStep checks if the step is one of the known run steps
func IsValidStep(step string) bool {
	for _, s := range AllSteps {
		if s == step {
			return true
		}
	}
	return false
}

// IsValidRole checks if the role is one of the playable roles
func IsValidRole(role string) bool {
	for _, r := range AllRoles {
		if r == role {
			return true
		}
	}
	return false
}

// CaseSnapshot is the denormalized case header kept on a Run so it stays
// displayable even after the case cache is cleared
type CaseSnapshot struct {
	CaseID string `json:"case_id"`
	Title  string `json:"title"`
	Domain string `json:"domain"`
	Level  string `json:"level"`
}

// AudienceScene is the hearing transcript plus the objections in play,
// supplied externally (AI) or synthesized from the case templates
type AudienceScene struct {
	Transcript []string    `json:"transcript"`
	Objections []Objection `json:"objections"`
}

// AudienceDecision records one objection ruling made by the player
type AudienceDecision struct {
	ObjectionID string           `json:"objection_id"`
	Decision    string           `json:"decision"`
	Reasoning   string           `json:"reasoning"`
	At          time.Time        `json:"at"`
	Role        string           `json:"role"`
	Micro       int              `json:"micro"`
	Effects     ObjectionEffects `json:"effects"`
}

// RunAudience groups the scene with the player's decisions, newest first
type RunAudience struct {
	Scene     *AudienceScene     `json:"scene,omitempty"`
	Decisions []AudienceDecision `json:"decisions"`
}

// RunAnswers holds everything the player has entered during a playthrough
type RunAnswers struct {
	Role                    string      `json:"role"`
	Qualification           string      `json:"qualification"`
	ProceduralOption        string      `json:"procedural_option"`
	ProceduralJustification string      `json:"procedural_justification"`
	Audience                RunAudience `json:"audience"`
	Motivation              string      `json:"motivation"`
	Dispositif              string      `json:"dispositif"`
}

// RiskModifiers accumulate monotonically from decisions and incidents
type RiskModifiers struct {
	AppealRiskPenalty int `json:"appeal_risk_penalty"`
	DueProcessBonus   int `json:"due_process_bonus"`
}

// Chrono is the run's hearing chronometer. StartedAt marks the first
// start and never moves; ResumedAt marks the current lap.
type Chrono struct {
	Running   bool       `json:"running"`
	StartedAt *time.Time `json:"started_at,omitempty"`
	ResumedAt *time.Time `json:"resumed_at,omitempty"`
	ElapsedMs int64      `json:"elapsed_ms"`
}

// Incident is a recorded procedural incident, worth a fixed number of
// points by type
type Incident struct {
	ID     string    `json:"id"`
	Type   string    `json:"type"`
	Title  string    `json:"title"`
	Detail string    `json:"detail"`
	Actor  string    `json:"actor"`
	Points int       `json:"points"`
	At     time.Time `json:"at"`
}

// AuditEntry is one line of the run's append-only audit log, newest first
type AuditEntry struct {
	Action string    `json:"action"`
	Detail string    `json:"detail,omitempty"`
	At     time.Time `json:"at"`
}

// RunState is the accumulated effect of every decision and incident
// applied so far. ExcludedPieceIDs and AdmittedLatePieceIDs are always the
// union of applied decision effects, never hand-edited.
type RunState struct {
	ExcludedPieceIDs     []string      `json:"excluded_piece_ids"`
	AdmittedLatePieceIDs []string      `json:"admitted_late_piece_ids"`
	AudienceMicro        int           `json:"audience_micro"`
	RiskModifiers        RiskModifiers `json:"risk_modifiers"`
	Audit                []AuditEntry  `json:"audit"`
	Chrono               Chrono        `json:"chrono"`
	Incidents            []Incident    `json:"incidents"`
}

// RunScores holds the per-axis scores, each 0-100. Qualification,
// procedure, rights and motivation are set by external collaborators; the
// engine only derives audience and the global mean.
type RunScores struct {
	Qualification int `json:"qualification"`
	Procedure     int `json:"procedure"`
	Audience      int `json:"audience"`
	Rights        int `json:"rights"`
	Motivation    int `json:"motivation"`
	Global        int `json:"global"`
}

// RunFlag is a warning derived from score thresholds
type RunFlag struct {
	Level string `json:"level"`
	Label string `json:"label"`
}

// Appeal is the externally-computed appellate outcome for a finished run
type Appeal struct {
	Decision        string   `json:"decision"`
	Grounds         []string `json:"grounds"`
	Dispositif      string   `json:"dispositif"`
	Recommendations []string `json:"recommendations"`
}

// Run is one user's playthrough of a Case
type Run struct {
	RunID        string       `json:"run_id"`
	CaseID       string       `json:"case_id"`
	CaseMeta     CaseSnapshot `json:"case_meta"`
	Step         string       `json:"step"`
	EventCard    *EventCard   `json:"event_card,omitempty"`
	Answers      RunAnswers   `json:"answers"`
	State        RunState     `json:"state"`
	Scores       RunScores    `json:"scores"`
	Flags        []RunFlag    `json:"flags"`
	Debrief      []string     `json:"debrief"`
	Appeal       *Appeal      `json:"appeal,omitempty"`
	StartedAt    time.Time    `json:"started_at"`
	FinishedAt   *time.Time   `json:"finished_at,omitempty"`
	Finished     bool         `json:"finished"`
	StatsCounted bool         `json:"stats_counted"`
}

// IsFinished checks if the run has been completed and frozen
func (r *Run) IsFinished() bool {
	return r.Finished
}
