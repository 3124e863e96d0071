package services

import (
	"testing"

	"justice_lab_go/models"
	"justice_lab_go/services/ai"

	"github.com/stretchr/testify/assert"
)

func TestDomainForLabel(t *testing.T) {
	// Canonical domains pass through untouched
	assert.Equal(t, models.DomainTravail, DomainForLabel(models.DomainTravail))

	assert.Equal(t, models.DomainPenalMilitaire, DomainForLabel("droit pénal militaire"))
	assert.Equal(t, models.DomainPenal, DomainForLabel("Droit pénal"))
	assert.Equal(t, models.DomainFoncier, DomainForLabel("conflit de terres"))
	assert.Equal(t, models.DomainTravail, DomainForLabel("labor law"))
	assert.Equal(t, models.DomainConstitutionnel, DomainForLabel("contentieux constitutionnel"))
	assert.Equal(t, models.DomainFamille, DomainForLabel("family dispute"))
	assert.Equal(t, models.DomainCommercial, DomainForLabel("recouvrement OHADA"))
	assert.Equal(t, models.DomainAdministratif, DomainForLabel("acte administratif"))
	// Unmatched labels fall back to penal
	assert.Equal(t, models.DomainPenal, DomainForLabel("quelque chose d'autre"))
}

func TestHydrateCaseDataTotalOnEmptyPayload(t *testing.T) {
	c := HydrateCaseData(nil, &ai.RawCase{}, HydrateOptions{Seed: "77"})

	assert.NotEmpty(t, c.CaseID)
	assert.True(t, models.IsValidDomain(c.Domain))
	assert.True(t, models.IsValidLevel(c.Level))
	assert.NotEmpty(t, c.Court)
	assert.NotEmpty(t, c.Chamber)
	assert.NotEmpty(t, c.Title)
	assert.NotEmpty(t, c.Summary)
	assert.NotEmpty(t, c.Parties)
	assert.NotEmpty(t, c.LegalIssues)
	assert.NotEmpty(t, c.Pieces)
	assert.NotEmpty(t, c.EventsDeck)
	assert.NotEmpty(t, c.ObjectionTemplates)
	assert.NotEmpty(t, c.Pedagogy.Objectives)
}

func TestHydrateCaseDataNilPayload(t *testing.T) {
	c := HydrateCaseData(nil, nil, HydrateOptions{TemplateID: "TPL_FAMILLE_SUCCESSION", Seed: "1"})
	assert.Equal(t, models.DomainFamille, c.Domain)
}

func TestHydrateCaseDataOverlaysProvidedFields(t *testing.T) {
	raw := &ai.RawCase{
		CaseID:  "RDC-PEN-custom01",
		Title:   "Ministère public contre X",
		Summary: "Résumé fourni par le collaborateur.",
		Level:   models.LevelAdvanced,
	}
	c := HydrateCaseData(nil, raw, HydrateOptions{TemplateID: "TPL_PENAL_DETENTION", Seed: "5"})

	assert.Equal(t, "RDC-PEN-custom01", c.CaseID)
	assert.Equal(t, "Ministère public contre X", c.Title)
	assert.Equal(t, "Résumé fourni par le collaborateur.", c.Summary)
	assert.Equal(t, models.LevelAdvanced, c.Level)
	// Court metadata still defaults from the domain
	assert.NotEmpty(t, c.Court)
}

func intRef(v int) *int {
	return &v
}

func TestHydrateCaseDataSanitizesPieces(t *testing.T) {
	raw := &ai.RawCase{
		Pieces: []ai.RawPiece{
			{Title: "PV d'audition"},
			{ID: "X2", Reliability: intRef(250)},
			{ID: "X3", Title: "Attestation tardive", IsLate: true, Reliability: intRef(40)},
		},
	}
	c := HydrateCaseData(nil, raw, HydrateOptions{TemplateID: "TPL_PENAL_DETENTION", Seed: "5"})

	assert.Equal(t, "P1", c.Pieces[0].ID)
	assert.Equal(t, "DOCUMENT", c.Pieces[0].Type)
	assert.Equal(t, defaultReliability, c.Pieces[0].Reliability)
	assert.Equal(t, 100, c.Pieces[1].Reliability)

	hasLate := false
	hasUnreliable := false
	for _, p := range c.Pieces {
		if p.IsLate {
			hasLate = true
		}
		if p.Reliability <= lowReliabilityThreshold {
			hasUnreliable = true
		}
	}
	assert.True(t, hasLate)
	assert.True(t, hasUnreliable)
}

func TestHydrateCaseDataKeepsZeroReliability(t *testing.T) {
	raw := &ai.RawCase{
		Pieces: []ai.RawPiece{
			{ID: "Z1", Title: "Copie illisible", Reliability: intRef(0)},
			{ID: "Z2", Title: "Original certifié", Reliability: intRef(90)},
		},
	}
	c := HydrateCaseData(nil, raw, HydrateOptions{TemplateID: "TPL_PENAL_DETENTION", Seed: "5"})

	assert.Equal(t, 0, c.Pieces[0].Reliability)
	assert.Equal(t, 90, c.Pieces[1].Reliability)
}

func TestHydrateCaseDataSanitizesObjections(t *testing.T) {
	raw := &ai.RawCase{
		ObjectionTemplates: []models.Objection{
			{Statement: "Nullité de la citation"},
		},
	}
	c := HydrateCaseData(nil, raw, HydrateOptions{TemplateID: "TPL_PENAL_DETENTION", Seed: "5"})

	objection := c.ObjectionTemplates[0]
	assert.Equal(t, "PEN_OBJ_1", objection.ID)
	assert.Equal(t, models.RoleDefenseCounsel, objection.By)
	assert.Len(t, objection.Options, 3)
	assert.NotEmpty(t, objection.BestChoiceByRole)
	assert.NotNil(t, objection.Effects.ExcludePieceIDs)
	assert.NotNil(t, objection.Effects.AdmitLatePieceIDs)
}

func TestHydrateCaseDataDomainLabelResolution(t *testing.T) {
	c := HydrateCaseData(nil, &ai.RawCase{}, HydrateOptions{Domaine: "litige foncier", Seed: "3"})
	assert.Equal(t, models.DomainFoncier, c.Domain)
	assert.Equal(t, "litige foncier", c.Meta.Domain)
}

func TestHydrateCaseDataPersistsIntoStore(t *testing.T) {
	store := NewCaseStore(NewMemoryKV())
	c := HydrateCaseData(store, &ai.RawCase{}, HydrateOptions{TemplateID: "TPL_ADMIN_ANNULATION", Seed: "8"})

	_, ok := store.GetCaseByID(c.CaseID)
	assert.True(t, ok)
}
