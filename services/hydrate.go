package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"justice_lab_go/models"
	"justice_lab_go/services/ai"
)

// defaultReliability replaces an absent reliability on AI pieces
const defaultReliability = 70

// domainLabelRules map free-text domain labels to the canonical domain.
// Order matters: military wins over plain penal. Unmatched labels fall
// back to the penal domain, which is also the catalog's first template.
var domainLabelRules = []struct {
	Keyword string
	Domain  string
}{
	{"milit", models.DomainPenalMilitaire},
	{"penal", models.DomainPenal},
	{"pénal", models.DomainPenal},
	{"foncier", models.DomainFoncier},
	{"terre", models.DomainFoncier},
	{"land", models.DomainFoncier},
	{"travail", models.DomainTravail},
	{"labor", models.DomainTravail},
	{"constitution", models.DomainConstitutionnel},
	{"famille", models.DomainFamille},
	{"family", models.DomainFamille},
	{"commerc", models.DomainCommercial},
	{"ohada", models.DomainCommercial},
	{"administrat", models.DomainAdministratif},
}

// DomainForLabel resolves a free-text domain label to a canonical domain
func DomainForLabel(label string) string {
	lower := strings.ToLower(label)
	if models.IsValidDomain(label) {
		return label
	}
	for _, rule := range domainLabelRules {
		if strings.Contains(lower, rule.Keyword) {
			return rule.Domain
		}
	}
	return models.DomainPenal
}

// genericEventsDeck is the fixed deck used when an AI case carries none
var genericEventsDeck = []models.EventCard{
	{ID: "GEN_E1", Title: "Témoin inattendu", Description: "Un témoin non annoncé demande à être entendu."},
	{ID: "GEN_E2", Title: "Pièce tardive", Description: "Une partie dépose une pièce à l'ouverture des débats."},
	{ID: "GEN_E3", Title: "Demande de renvoi", Description: "Une partie sollicite le renvoi de la cause à une audience ultérieure."},
}

// HydrateOptions carry the request context the raw payload came from
type HydrateOptions struct {
	TemplateID string
	Domaine    string
	Level      string
	Seed       string
}

// HydrateCaseData coerces a possibly-partial AI payload into a canonical
// Case. Total by construction: a nil or empty payload yields a fully
// populated case built from the resolved template, and every present
// field is sanitized rather than trusted. The result is persisted into
// the case store when one is provided.
func HydrateCaseData(store *CaseStore, raw *ai.RawCase, opts HydrateOptions) *models.Case {
	if raw == nil {
		raw = &ai.RawCase{}
	}

	template := resolveHydrationTemplate(opts, raw.Domain)
	seed := NormalizeSeed(opts.Seed)

	level := raw.Level
	if !models.IsValidLevel(level) {
		level = opts.Level
	}
	if !models.IsValidLevel(level) {
		level = models.LevelIntermediate
	}

	// Local skeleton provides the defaulting logic of the deterministic
	// generator for every field the payload is missing.
	base := GenerateCase(nil, GenerateCaseInput{TemplateID: template.ID, Seed: seed, Level: level})

	c := &models.Case{
		CaseID:             raw.CaseID,
		Domain:             raw.Domain,
		Level:              level,
		Court:              raw.Court,
		Chamber:            raw.Chamber,
		HearingType:        raw.HearingType,
		Title:              raw.Title,
		Summary:            raw.Summary,
		Parties:            raw.Parties,
		LegalIssues:        raw.LegalIssues,
		Pieces:             sanitizePieces(raw.Pieces),
		EventsDeck:         raw.EventsDeck,
		ObjectionTemplates: nil,
		Meta: models.CaseMeta{
			TemplateID:  template.ID,
			Seed:        seed,
			City:        base.Meta.City,
			Domain:      opts.Domaine,
			GeneratedAt: time.Now().UTC(),
		},
	}

	if !models.IsValidDomain(c.Domain) {
		c.Domain = template.Domain
	}
	jurisdiction := JurisdictionFor(c.Domain)
	if c.Court == "" {
		c.Court = jurisdiction.Court
	}
	if c.Chamber == "" {
		c.Chamber = jurisdiction.Chamber
	}
	if c.HearingType == "" {
		c.HearingType = jurisdiction.HearingType
	}
	c.Meta.Court = c.Court
	c.Meta.Chamber = c.Chamber

	if c.CaseID == "" {
		c.CaseID = MakeCaseID(template.ID, seed)
	}
	if c.Title == "" {
		c.Title = base.Title
	}
	if c.Summary == "" {
		c.Summary = base.Summary
	}
	if len(c.Parties) == 0 {
		c.Parties = base.Parties
	}
	if len(c.LegalIssues) == 0 {
		c.LegalIssues = base.LegalIssues
	}
	if len(c.Pieces) == 0 {
		c.Pieces = base.Pieces
	}
	if len(c.EventsDeck) == 0 {
		c.EventsDeck = append([]models.EventCard{}, genericEventsDeck...)
	}

	if len(raw.ObjectionTemplates) > 0 {
		c.ObjectionTemplates = sanitizeObjections(raw.ObjectionTemplates, template.ID, c.Pieces)
	} else {
		c.ObjectionTemplates = base.ObjectionTemplates
	}

	if raw.Pedagogy != nil && len(raw.Pedagogy.Objectives) > 0 {
		c.Pedagogy = *raw.Pedagogy
	} else {
		c.Pedagogy = BuildPedagogy(c.Domain, c.Level)
	}

	if store != nil {
		if err := store.SaveCase(c); err != nil {
			log.Printf("[WARNING] Failed to cache hydrated case %s: %v", c.CaseID, err)
		}
	}
	return c
}

// resolveHydrationTemplate picks the fallback template: explicit template
// id first, then domain label, then the payload's own domain claim
func resolveHydrationTemplate(opts HydrateOptions, rawDomain string) CaseTemplate {
	if opts.TemplateID != "" {
		return FindTemplate(opts.TemplateID)
	}
	if opts.Domaine != "" {
		return TemplateForDomain(DomainForLabel(opts.Domaine))
	}
	if rawDomain != "" {
		return TemplateForDomain(DomainForLabel(rawDomain))
	}
	return FindTemplate("")
}

// sanitizePieces defaults missing piece fields, clamps reliability and
// re-enforces the contestability invariant. An explicit zero reliability
// is kept; only an absent one takes the default.
func sanitizePieces(pieces []ai.RawPiece) []models.Piece {
	if len(pieces) == 0 {
		return nil
	}
	out := make([]models.Piece, 0, len(pieces))
	for i, raw := range pieces {
		p := models.Piece{
			ID:     raw.ID,
			Title:  raw.Title,
			Type:   raw.Type,
			IsLate: raw.IsLate,
		}
		if p.ID == "" {
			p.ID = fmt.Sprintf("P%d", i+1)
		}
		if p.Title == "" {
			p.Title = fmt.Sprintf("Pièce n°%d", i+1)
		}
		if p.Type == "" {
			p.Type = "DOCUMENT"
		}
		if raw.Reliability == nil {
			p.Reliability = defaultReliability
		} else {
			p.Reliability = clampInt(*raw.Reliability, 0, 100)
		}
		out = append(out, p)
	}
	return EnsurePiecesInvariant(out)
}

// sanitizeObjections defaults ids, the option set, best choices and
// evidentiary effects on AI-supplied objections
func sanitizeObjections(objections []models.Objection, templateID string, pieces []models.Piece) []models.Objection {
	tag := TemplateTag(templateID)
	out := make([]models.Objection, 0, len(objections))
	for i, o := range objections {
		if o.ID == "" {
			o.ID = fmt.Sprintf("%s_OBJ_%d", tag, i+1)
		}
		if o.By == "" {
			o.By = models.RoleDefenseCounsel
		}
		if len(o.Options) == 0 {
			o.Options = []string{
				models.OptionSustain,
				models.OptionOverrule,
				models.OptionClarify,
			}
		}
		if len(o.BestChoiceByRole) == 0 {
			o.BestChoiceByRole = bestChoiceTable(o.By)
		}
		if len(o.Effects.ExcludePieceIDs) == 0 && len(o.Effects.AdmitLatePieceIDs) == 0 {
			risk := o.Effects.Risk
			o.Effects = objectionEffects(ObjectionSeed{Risk: risk}, pieces)
		}
		if o.Effects.ExcludePieceIDs == nil {
			o.Effects.ExcludePieceIDs = []string{}
		}
		if o.Effects.AdmitLatePieceIDs == nil {
			o.Effects.AdmitLatePieceIDs = []string{}
		}
		out = append(out, o)
	}
	return out
}
