package services

import "justice_lab_go/models"

// universalObjectives apply to every domain and level
var universalObjectives = []string{
	"Identifier la juridiction compétente et vérifier sa saisine régulière",
	"Qualifier juridiquement les faits à partir des pièces du dossier",
	"Apprécier la recevabilité et la valeur probante de chaque pièce",
	"Conduire les débats en respectant le contradictoire",
	"Statuer sur les objections en motivant chaque décision",
	"Rédiger un dispositif clair, complet et exécutable",
}

// domainObjectives are up to 3 additional objectives per domain
var domainObjectives = map[string][]string{
	models.DomainPenal: {
		"Contrôler la régularité de la détention préventive",
		"Distinguer les éléments constitutifs de l'infraction poursuivie",
		"Statuer sur l'action civile jointe à l'action publique",
	},
	models.DomainFoncier: {
		"Hiérarchiser les titres fonciers concurrents",
		"Articuler droits coutumiers et droit écrit",
		"Apprécier la bonne foi de l'occupant constructeur",
	},
	models.DomainTravail: {
		"Vérifier la procédure préalable au licenciement",
		"Contrôler le calcul du décompte final",
	},
	models.DomainConstitutionnel: {
		"Apprécier la qualité et l'intérêt des requérants",
		"Délimiter les compétences entre pouvoir central et provinces",
	},
	models.DomainPenalMilitaire: {
		"Vérifier la compétence personnelle de la juridiction militaire",
		"Apprécier les circonstances propres au service",
	},
	models.DomainFamille: {
		"Faire prévaloir l'intérêt supérieur de l'enfant",
		"Contrôler les pouvoirs du conseil de famille",
	},
	models.DomainCommercial: {
		"Vérifier les caractères de la créance invoquée",
		"Appliquer les actes uniformes OHADA pertinents",
	},
	models.DomainAdministratif: {
		"Contrôler la compétence de l'auteur de l'acte",
		"Vérifier l'exigence du recours préalable",
	},
}

// commonPitfalls shown in every pedagogy block
var commonPitfalls = []string{
	"Statuer sur une objection sans entendre la partie adverse",
	"Fonder la décision sur une pièce écartée des débats",
	"Confondre recevabilité et bien-fondé",
	"Omettre de motiver le rejet d'une pièce tardive",
	"Laisser le chronomètre d'audience dériver sans cadrer les débats",
}

// audienceChecklist is the fixed self-check list for the hearing phase
var audienceChecklist = []string{
	"Les parties et leurs conseils ont-ils tous été entendus ?",
	"Chaque objection a-t-elle reçu une réponse motivée ?",
	"Les pièces tardives ont-elles été admises ou écartées expressément ?",
	"Les incidents de procédure ont-ils été actés au plumitif ?",
	"Le dispositif annoncé couvre-t-il toutes les demandes ?",
}

// BuildPedagogy composes the informational learning block for a domain.
// Purely static composition: no randomness, no external calls. The level
// is accepted for future differentiation but does not alter the output.
func BuildPedagogy(domain string, level string) models.Pedagogy {
	objectives := make([]string, 0, len(universalObjectives)+3)
	objectives = append(objectives, universalObjectives...)

	extra := domainObjectives[domain]
	if len(extra) > 3 {
		extra = extra[:3]
	}
	objectives = append(objectives, extra...)

	return models.Pedagogy{
		Objectives:        objectives,
		Pitfalls:          append([]string{}, commonPitfalls...),
		AudienceChecklist: append([]string{}, audienceChecklist...),
	}
}
