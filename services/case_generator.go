package services

import (
	"fmt"
	"log"
	"strings"
	"time"

	"justice_lab_go/models"
)

// Fixed draw counts of the local generator
const (
	legalIssueCount = 3
	pieceCount      = 6
	eventCount      = 3
)

// lowReliabilityThreshold marks a piece as contestable on reliability
const lowReliabilityThreshold = 65

// GenerateCaseInput are the inputs of the deterministic generator
type GenerateCaseInput struct {
	TemplateID string
	Seed       string
	Level      string
}

// GenerateCase produces a fully-populated Case from a template and seed.
// Unknown template ids fall back to the catalog's first template; the
// function never fails. Two calls with identical inputs produce identical
// output except Meta.GeneratedAt. The result is persisted into the case
// store when one is provided.
func GenerateCase(store *CaseStore, input GenerateCaseInput) *models.Case {
	template := FindTemplate(input.TemplateID)
	seed := NormalizeSeed(input.Seed)
	rng := NewRNG(template.ID + ":" + seed)

	level := input.Level
	if level == "" {
		if picked, ok := Pick(rng, template.Levels); ok {
			level = picked
		} else {
			level = models.LevelIntermediate
		}
	}

	parties := drawParties(rng, template.PartySchema)
	title, _ := Pick(rng, template.Titles)
	facts, _ := Pick(rng, template.FactVariants)
	issues := PickN(rng, template.LegalIssues, legalIssueCount)
	pieces := drawPieces(rng, template.Pieces)
	events := PickN(rng, template.Events, eventCount)
	objections := drawObjections(rng, template, pieces)

	city, _ := Pick(rng, cities)
	stake := drawStake(rng)
	jurisdiction := JurisdictionFor(template.Domain)

	c := &models.Case{
		CaseID:             MakeCaseID(template.ID, seed),
		Domain:             template.Domain,
		Level:              level,
		Court:              jurisdiction.Court,
		Chamber:            jurisdiction.Chamber,
		HearingType:        jurisdiction.HearingType,
		Title:              title,
		Summary:            composeSummary(facts, stake, city),
		Parties:            parties,
		LegalIssues:        issues,
		Pieces:             pieces,
		EventsDeck:         events,
		ObjectionTemplates: objections,
		Pedagogy:           BuildPedagogy(template.Domain, level),
		Meta: models.CaseMeta{
			TemplateID:  template.ID,
			Seed:        seed,
			City:        city,
			Court:       jurisdiction.Court,
			Chamber:     jurisdiction.Chamber,
			GeneratedAt: time.Now().UTC(),
		},
	}

	if store != nil {
		if err := store.SaveCase(c); err != nil {
			log.Printf("[WARNING] Failed to cache generated case %s: %v", c.CaseID, err)
		}
	}
	return c
}

// drawParties fills the template's party schema with generated names.
// The schema is an ordered list so the draw sequence is reproducible.
func drawParties(rng RNG, schema []PartyRole) []models.CaseParty {
	parties := make([]models.CaseParty, 0, len(schema))
	for _, role := range schema {
		first, _ := Pick(rng, firstNames)
		last, _ := Pick(rng, lastNames)
		label, ok := Pick(rng, role.Labels)
		if !ok {
			label = role.Key
		}
		parties = append(parties, models.CaseParty{
			Key:       role.Key,
			Name:      first + " " + last,
			RoleLabel: label,
		})
	}
	return parties
}

// drawPieces draws the evidence set and enforces the contestability
// invariant: every non-empty set carries at least one late piece and at
// least one piece at or below the reliability threshold. When the raw
// draw misses one, the first/last items are force-flipped.
func drawPieces(rng RNG, pool []PieceSeed) []models.Piece {
	drawn := PickN(rng, pool, pieceCount)
	pieces := make([]models.Piece, 0, len(drawn))
	for _, seed := range drawn {
		pieces = append(pieces, models.Piece{
			ID:          seed.ID,
			Title:       seed.Title,
			Type:        seed.Type,
			IsLate:      seed.IsLate,
			Reliability: clampInt(seed.Reliability, 0, 100),
		})
	}
	return EnsurePiecesInvariant(pieces)
}

// EnsurePiecesInvariant force-flips fields so that any non-empty piece
// list contains at least one late item and one low-reliability item
func EnsurePiecesInvariant(pieces []models.Piece) []models.Piece {
	if len(pieces) == 0 {
		return pieces
	}
	hasLate := false
	hasUnreliable := false
	for _, p := range pieces {
		if p.IsLate {
			hasLate = true
		}
		if p.Reliability <= lowReliabilityThreshold {
			hasUnreliable = true
		}
	}
	if !hasLate {
		pieces[0].IsLate = true
	}
	if !hasUnreliable {
		pieces[len(pieces)-1].Reliability = 55
	}
	return pieces
}

// drawObjections draws 2-5 objections and attaches per-case ids, the
// fixed option set, best choices and evidentiary effects
func drawObjections(rng RNG, template CaseTemplate, pieces []models.Piece) []models.Objection {
	count := clampInt(int(2+rng()*3), 2, 5)
	seeds := PickN(rng, template.Objections, count)
	tag := TemplateTag(template.ID)

	objections := make([]models.Objection, 0, len(seeds))
	for i, seed := range seeds {
		objections = append(objections, models.Objection{
			ID:        fmt.Sprintf("%s_OBJ_%d", tag, i+1),
			Statement: seed.Statement,
			By:        seed.By,
			Options: []string{
				models.OptionSustain,
				models.OptionOverrule,
				models.OptionClarify,
			},
			BestChoiceByRole: bestChoiceTable(seed.By),
			Effects:          objectionEffects(seed, pieces),
		})
	}
	return objections
}

// bestChoiceTable derives the ideal ruling per role from the filer role
// name. Substring-keyed on purpose: this preserves the observed product
// behavior, fragile labels included.
func bestChoiceTable(filer string) map[string]string {
	f := strings.ToUpper(filer)
	prosecutionSide := strings.Contains(f, "PROSECUTOR") || strings.Contains(f, "PLAINTIFF")

	best := map[string]string{models.RoleClerk: models.OptionClarify}
	if prosecutionSide {
		best[models.RoleJudge] = models.OptionSustain
		best[models.RoleProsecutor] = models.OptionSustain
		best[models.RolePlaintiffCounsel] = models.OptionSustain
		best[models.RoleDefenseCounsel] = models.OptionOverrule
	} else {
		best[models.RoleJudge] = models.OptionOverrule
		best[models.RoleProsecutor] = models.OptionOverrule
		best[models.RolePlaintiffCounsel] = models.OptionOverrule
		best[models.RoleDefenseCounsel] = models.OptionSustain
	}
	return best
}

// objectionEffects injects the drawn unreliable piece and late piece into
// the objection so every objection can plausibly affect evidence
func objectionEffects(seed ObjectionSeed, pieces []models.Piece) models.ObjectionEffects {
	effects := models.ObjectionEffects{
		ExcludePieceIDs:   []string{},
		AdmitLatePieceIDs: []string{},
		Risk:              seed.Risk,
	}
	for _, p := range pieces {
		if p.Reliability <= lowReliabilityThreshold {
			effects.ExcludePieceIDs = append(effects.ExcludePieceIDs, p.ID)
			break
		}
	}
	for _, p := range pieces {
		if p.IsLate {
			effects.AdmitLatePieceIDs = append(effects.AdmitLatePieceIDs, p.ID)
			break
		}
	}
	return effects
}

// drawStake draws an amount from the fixed ladder times a multiplier
func drawStake(rng RNG) int {
	base, _ := Pick(rng, stakeLadder)
	mult, _ := Pick(rng, stakeMultipliers)
	return base * mult
}

// composeSummary builds the narrative summary from facts, stake and city
func composeSummary(facts string, stake int, city string) string {
	return fmt.Sprintf("%s Montant en jeu estimé à %d CDF. Affaire portée devant les juridictions de %s.", facts, stake, city)
}

func clampInt(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
