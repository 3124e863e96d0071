package models

import "time"

// Legal domain constants (one per simulated jurisdiction branch)
const (
	DomainPenal           = "PENAL"
	DomainFoncier         = "FONCIER"
	DomainTravail         = "TRAVAIL"
	DomainConstitutionnel = "CONSTITUTIONNEL"
	DomainPenalMilitaire  = "PENAL_MILITAIRE"
	DomainFamille         = "FAMILLE"
	DomainCommercial      = "COMMERCIAL_OHADA"
	DomainAdministratif   = "ADMINISTRATIF"
)

// Difficulty level constants
const (
	LevelBeginner     = "Beginner"
	LevelIntermediate = "Intermediate"
	LevelAdvanced     = "Advanced"
)

// Objection ruling options (fixed 3-option choice set)
const (
	OptionSustain  = "SUSTAIN"
	OptionOverrule = "OVERRULE"
	OptionClarify  = "REQUEST_CLARIFICATION"
)

// AllDomains lists every supported legal domain
var AllDomains = []string{
	DomainPenal,
	DomainFoncier,
	DomainTravail,
	DomainConstitutionnel,
	DomainPenalMilitaire,
	DomainFamille,
	DomainCommercial,
	DomainAdministratif,
}

// AllLevels lists the supported difficulty levels
var AllLevels = []string{LevelBeginner, LevelIntermediate, LevelAdvanced}

// IsValidDomain checks if the domain is one of the supported domains
func IsValidDomain(domain string) bool {
	for _, d := range AllDomains {
		if d == domain {
			return true
		}
	}
	return false
}

// IsValidLevel checks if the level is one of the supported levels
func IsValidLevel(level string) bool {
	for _, l := range AllLevels {
		if l == level {
			return true
		}
	}
	return false
}

// IsValidOption checks if the decision is one of the ruling options
func IsValidOption(option string) bool {
	return option == OptionSustain || option == OptionOverrule || option == OptionClarify
}

// CaseParty is one participant in a simulated dossier.
// Parties are kept as an ordered list (not a map) so generated cases
// serialize identically for identical inputs.
type CaseParty struct {
	Key       string `json:"key"`
	Name      string `json:"name"`
	RoleLabel string `json:"role_label"`
}

// Piece is an item of evidence in a Case
type Piece struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Type        string `json:"type"`
	IsLate      bool   `json:"is_late"`
	Reliability int    `json:"reliability"` // 0-100
}

// EventCard is a potential complicating event for a playthrough
type EventCard struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
}

// RiskEffects are the appellate-risk deltas attached to an objection ruling
type RiskEffects struct {
	AppealRiskPenalty int `json:"appeal_risk_penalty"`
	DueProcessBonus   int `json:"due_process_bonus"`
}

// ObjectionEffects describe what applying an objection decision does to
// the run state: evidentiary exclusions/admissions plus risk deltas
type ObjectionEffects struct {
	ExcludePieceIDs   []string    `json:"exclude_piece_ids"`
	AdmitLatePieceIDs []string    `json:"admit_late_piece_ids"`
	Risk              RiskEffects `json:"risk"`
}

// Objection is a procedural challenge a party may raise during the audience
type Objection struct {
	ID               string            `json:"id"`
	Statement        string            `json:"statement"`
	By               string            `json:"by"` // filer role
	Options          []string          `json:"options"`
	BestChoiceByRole map[string]string `json:"best_choice_by_role"`
	Effects          ObjectionEffects  `json:"effects"`
}

// Pedagogy is the informational learning block attached to a Case.
// It is never consumed by the engine.
type Pedagogy struct {
	Objectives        []string `json:"objectives"`
	Pitfalls          []string `json:"pitfalls"`
	AudienceChecklist []string `json:"audience_checklist"`
}

// CaseMeta is the provenance metadata stamped on a generated Case
type CaseMeta struct {
	TemplateID  string    `json:"template_id"`
	Seed        string    `json:"seed"` // normalized
	City        string    `json:"city"`
	Court       string    `json:"court"`
	Chamber     string    `json:"chamber"`
	Domain      string    `json:"domain,omitempty"` // originating domain for AI cases
	GeneratedAt time.Time `json:"generated_at"`
}

// Case is an immutable-once-generated simulated legal dossier.
// CaseID is a pure function of (templateID, normalized seed); the run
// engine never writes into a Case.
type Case struct {
	CaseID             string      `json:"case_id"`
	Domain             string      `json:"domain"`
	Level              string      `json:"level"`
	Court              string      `json:"court"`
	Chamber            string      `json:"chamber"`
	HearingType        string      `json:"hearing_type"`
	Title              string      `json:"title"`
	Summary            string      `json:"summary"`
	Parties            []CaseParty `json:"parties"`
	LegalIssues        []string    `json:"legal_issues"`
	Pieces             []Piece     `json:"pieces"`
	EventsDeck         []EventCard `json:"events_deck"`
	ObjectionTemplates []Objection `json:"objection_templates"`
	Pedagogy           Pedagogy    `json:"pedagogy"`
	Meta               CaseMeta    `json:"meta"`
}

// FindObjection returns the objection template with the given id, or nil
func (c *Case) FindObjection(id string) *Objection {
	for i := range c.ObjectionTemplates {
		if c.ObjectionTemplates[i].ID == id {
			return &c.ObjectionTemplates[i]
		}
	}
	return nil
}

// FindPiece returns the piece with the given id, or nil
func (c *Case) FindPiece(id string) *Piece {
	for i := range c.Pieces {
		if c.Pieces[i].ID == id {
			return &c.Pieces[i]
		}
	}
	return nil
}
