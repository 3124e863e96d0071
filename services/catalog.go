package services

import "justice_lab_go/models"

// PartyRole describes one slot of a template's party schema: the role key
// plus the pool of display labels it may carry
type PartyRole struct {
	Key    string
	Labels []string
}

// PieceSeed is one entry of a template's evidence pool. IDs are
// template-scoped so a drawn subset keeps stable ids.
type PieceSeed struct {
	ID          string
	Title       string
	Type        string
	IsLate      bool
	Reliability int
}

// ObjectionSeed is one entry of a template's objection pool. Per-case ids,
// options, best choices and piece effects are attached at generation time.
type ObjectionSeed struct {
	Statement string
	By        string
	Risk      models.RiskEffects
}

// Jurisdiction is the court metadata derived from a domain
type Jurisdiction struct {
	Court       string
	Chamber     string
	HearingType string
}

// CaseTemplate is the static per-domain data a Case is drawn from
type CaseTemplate struct {
	ID           string
	Domain       string
	Levels       []string
	Titles       []string
	PartySchema  []PartyRole
	FactVariants []string
	LegalIssues  []string
	Pieces       []PieceSeed
	Events       []models.EventCard
	Objections   []ObjectionSeed
}

// jurisdictionByDomain maps each of the 8 domains to its court metadata
var jurisdictionByDomain = map[string]Jurisdiction{
	models.DomainPenal:           {Court: "Tribunal de Grande Instance", Chamber: "Chambre pénale", HearingType: "Audience publique"},
	models.DomainFoncier:         {Court: "Tribunal de Grande Instance", Chamber: "Chambre foncière", HearingType: "Audience publique"},
	models.DomainTravail:         {Court: "Tribunal du Travail", Chamber: "Chambre sociale", HearingType: "Audience de conciliation puis publique"},
	models.DomainConstitutionnel: {Court: "Cour Constitutionnelle", Chamber: "Chambre plénière", HearingType: "Audience solennelle"},
	models.DomainPenalMilitaire:  {Court: "Cour Militaire", Chamber: "Chambre de jugement", HearingType: "Audience publique militaire"},
	models.DomainFamille:         {Court: "Tribunal de Paix", Chamber: "Chambre de famille", HearingType: "Audience en chambre du conseil"},
	models.DomainCommercial:      {Court: "Tribunal de Commerce", Chamber: "Chambre commerciale", HearingType: "Audience publique"},
	models.DomainAdministratif:   {Court: "Conseil d'État", Chamber: "Section du contentieux", HearingType: "Audience publique"},
}

// defaultJurisdiction covers unmatched domains
var defaultJurisdiction = Jurisdiction{
	Court:       "Tribunal de Grande Instance",
	Chamber:     "Chambre civile",
	HearingType: "Audience publique",
}

// JurisdictionFor returns the court metadata for a domain
func JurisdictionFor(domain string) Jurisdiction {
	if j, ok := jurisdictionByDomain[domain]; ok {
		return j
	}
	return defaultJurisdiction
}

// cities used to situate generated cases
var cities = []string{
	"Kinshasa", "Lubumbashi", "Goma", "Bukavu", "Kisangani",
	"Matadi", "Mbuji-Mayi", "Kolwezi", "Kananga", "Bunia",
}

// name pools for party generation
var firstNames = []string{
	"Jean-Claude", "Marie", "Serge", "Naomi", "Didier", "Esther",
	"Patrick", "Grâce", "Blaise", "Chantal", "Emmanuel", "Sifa",
	"Olivier", "Ruth", "Papy", "Divine",
}

var lastNames = []string{
	"Mukendi", "Ilunga", "Kasongo", "Mwamba", "Tshibangu", "Ngalula",
	"Bahati", "Amani", "Lukusa", "Mbuyi", "Kalala", "Nzuzi",
	"Mutombo", "Kahindo", "Loseke", "Bompenda",
}

// stake amount ladder (CDF) and multipliers used in summaries
var stakeLadder = []int{250000, 500000, 1000000, 2500000, 5000000, 10000000}

var stakeMultipliers = []int{1, 2, 5}

// caseTemplates is the full template catalog, one template per domain.
// The first entry doubles as the fallback for unknown template ids.
var caseTemplates = []CaseTemplate{
	{
		ID:     "TPL_PENAL_DETENTION",
		Domain: models.DomainPenal,
		Levels: []string{models.LevelBeginner, models.LevelIntermediate, models.LevelAdvanced},
		Titles: []string{
			"Ministère public contre le prévenu pour vol aggravé",
			"Détention préventive contestée devant la chambre pénale",
			"Poursuites pour coups et blessures volontaires",
		},
		PartySchema: []PartyRole{
			{Key: "prevenu", Labels: []string{"Prévenu", "Prévenu détenu"}},
			{Key: "ministere_public", Labels: []string{"Officier du Ministère Public", "Substitut du Procureur"}},
			{Key: "partie_civile", Labels: []string{"Partie civile", "Victime constituée partie civile"}},
		},
		FactVariants: []string{
			"Le prévenu est poursuivi pour vol aggravé commis la nuit dans un dépôt commercial. Il est en détention préventive depuis quatre mois sans ordonnance de prorogation régulière.",
			"Une bagarre à la sortie d'un débit de boissons a laissé la victime avec une incapacité de travail de trois semaines. Le prévenu conteste l'identification opérée par les témoins.",
			"Le prévenu aurait dissipé des marchandises confiées en dépôt. La partie civile réclame la restitution et des dommages-intérêts.",
		},
		LegalIssues: []string{
			"Régularité de la détention préventive au regard du délai légal",
			"Qualification des faits: vol simple ou vol aggravé",
			"Valeur probante des témoignages indirects",
			"Recevabilité de la constitution de partie civile",
			"Imputabilité des faits au prévenu",
			"Proportionnalité de la peine requise",
		},
		Pieces: []PieceSeed{
			{ID: "PEN_P1", Title: "Procès-verbal d'audition du prévenu", Type: "PV", Reliability: 80},
			{ID: "PEN_P2", Title: "Témoignage du gardien de nuit", Type: "TEMOIGNAGE", Reliability: 55},
			{ID: "PEN_P3", Title: "Certificat médical de la victime", Type: "EXPERTISE", Reliability: 90},
			{ID: "PEN_P4", Title: "Relevé des objets saisis", Type: "INVENTAIRE", Reliability: 75},
			{ID: "PEN_P5", Title: "Photographies des lieux", Type: "PHOTO", IsLate: true, Reliability: 70},
			{ID: "PEN_P6", Title: "Déclaration écrite d'un co-détenu", Type: "TEMOIGNAGE", Reliability: 40},
			{ID: "PEN_P7", Title: "Rapport de la police judiciaire", Type: "RAPPORT", Reliability: 85},
			{ID: "PEN_P8", Title: "Extrait de casier judiciaire", Type: "ADMINISTRATIF", IsLate: true, Reliability: 95},
		},
		Events: []models.EventCard{
			{ID: "PEN_E1", Title: "Témoin manquant", Description: "Le témoin principal ne se présente pas à l'audience."},
			{ID: "PEN_E2", Title: "Aveu rétracté", Description: "Le prévenu rétracte ses aveux en alléguant des pressions lors de la garde à vue."},
			{ID: "PEN_E3", Title: "Pièce surprise", Description: "La partie civile produit une nouvelle pièce à l'ouverture des débats."},
		},
		Objections: []ObjectionSeed{
			{Statement: "La défense soulève la nullité du procès-verbal d'audition, dressé hors la présence d'un conseil.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "Le Ministère Public s'oppose au dépôt tardif des photographies des lieux.", By: models.RoleProsecutor, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "La partie civile conteste la fiabilité de la déclaration du co-détenu, obtenue sans serment.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2}},
			{Statement: "La défense demande l'écartement du témoignage du gardien, qui n'a pas assisté directement aux faits.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2, DueProcessBonus: 1}},
			{Statement: "Le Ministère Public sollicite une clarification sur la chaîne de conservation des objets saisis.", By: models.RoleProsecutor, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_FONCIER_CONFLIT",
		Domain: models.DomainFoncier,
		Levels: []string{models.LevelIntermediate, models.LevelAdvanced},
		Titles: []string{
			"Conflit de certificats d'enregistrement sur une parcelle",
			"Revendication d'une concession coutumière contre un titre écrit",
			"Action en déguerpissement sur terrain litigieux",
		},
		PartySchema: []PartyRole{
			{Key: "demandeur", Labels: []string{"Demandeur", "Concessionnaire"}},
			{Key: "defendeur", Labels: []string{"Défendeur", "Occupant"}},
			{Key: "conservateur", Labels: []string{"Conservateur des titres immobiliers"}},
		},
		FactVariants: []string{
			"Deux certificats d'enregistrement portant sur la même parcelle ont été délivrés à dix ans d'intervalle. Le second acquéreur a construit et occupe les lieux.",
			"Une famille invoque des droits fonciers coutumiers sur un terrain dont un opérateur détient un contrat de concession ordinaire récent.",
			"Le demandeur poursuit le déguerpissement d'un occupant qui se prévaut d'un acte de vente sous seing privé non enregistré.",
		},
		LegalIssues: []string{
			"Primauté du certificat d'enregistrement le plus ancien",
			"Portée des droits fonciers coutumiers face au titre écrit",
			"Bonne foi de l'occupant constructeur",
			"Responsabilité du conservateur en cas de double immatriculation",
			"Validité d'une vente immobilière non enregistrée",
		},
		Pieces: []PieceSeed{
			{ID: "FON_P1", Title: "Certificat d'enregistrement du demandeur", Type: "TITRE", Reliability: 90},
			{ID: "FON_P2", Title: "Certificat d'enregistrement du défendeur", Type: "TITRE", Reliability: 85},
			{ID: "FON_P3", Title: "Croquis cadastral contradictoire", Type: "EXPERTISE", Reliability: 60},
			{ID: "FON_P4", Title: "Acte de vente sous seing privé", Type: "CONTRAT", IsLate: true, Reliability: 45},
			{ID: "FON_P5", Title: "Attestation des chefs coutumiers", Type: "TEMOIGNAGE", Reliability: 55},
			{ID: "FON_P6", Title: "Rapport de descente sur les lieux", Type: "RAPPORT", Reliability: 80},
			{ID: "FON_P7", Title: "Quittances de taxes foncières", Type: "ADMINISTRATIF", IsLate: true, Reliability: 70},
		},
		Events: []models.EventCard{
			{ID: "FON_E1", Title: "Descente sur les lieux", Description: "Le tribunal ordonne une visite contradictoire de la parcelle."},
			{ID: "FON_E2", Title: "Intervention volontaire", Description: "Un troisième acquéreur présumé intervient à la cause."},
			{ID: "FON_E3", Title: "Expertise cadastrale", Description: "Les mesures du géomètre contredisent les deux croquis produits."},
		},
		Objections: []ObjectionSeed{
			{Statement: "Le défendeur soulève l'irrecevabilité de l'acte de vente sous seing privé, jamais enregistré.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2}},
			{Statement: "Le demandeur s'oppose à la production tardive des quittances de taxes foncières.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "Le demandeur conteste le croquis cadastral, établi sans convocation des parties.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "Le défendeur sollicite une clarification sur la qualité du conservateur cité à la cause.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_TRAVAIL_LICENCIEMENT",
		Domain: models.DomainTravail,
		Levels: []string{models.LevelBeginner, models.LevelIntermediate},
		Titles: []string{
			"Licenciement contesté pour faute lourde",
			"Rupture abusive du contrat de travail à durée indéterminée",
			"Salaires et indemnités impayés après fermeture de site",
		},
		PartySchema: []PartyRole{
			{Key: "travailleur", Labels: []string{"Travailleur demandeur", "Ancien salarié"}},
			{Key: "employeur", Labels: []string{"Employeur défendeur", "Société employeuse"}},
			{Key: "inspecteur", Labels: []string{"Inspecteur du travail"}},
		},
		FactVariants: []string{
			"Le travailleur a été licencié pour faute lourde après un inventaire déficitaire, sans avoir été entendu préalablement.",
			"L'employeur a fermé le site et notifié les ruptures par simple affichage, sans préavis ni décompte final.",
			"Le travailleur réclame des heures supplémentaires sur trois ans que l'employeur conteste faute de pointages signés.",
		},
		LegalIssues: []string{
			"Existence et gravité de la faute lourde invoquée",
			"Respect de la procédure préalable au licenciement",
			"Calcul du décompte final et des dommages-intérêts",
			"Valeur probante des pointages et registres de paie",
			"Compétence préalable de l'inspection du travail",
		},
		Pieces: []PieceSeed{
			{ID: "TRA_P1", Title: "Contrat de travail signé", Type: "CONTRAT", Reliability: 95},
			{ID: "TRA_P2", Title: "Lettre de licenciement", Type: "CORRESPONDANCE", Reliability: 90},
			{ID: "TRA_P3", Title: "Rapport d'inventaire déficitaire", Type: "RAPPORT", Reliability: 60},
			{ID: "TRA_P4", Title: "Registres de pointage", Type: "ADMINISTRATIF", IsLate: true, Reliability: 50},
			{ID: "TRA_P5", Title: "PV de non-conciliation de l'inspection", Type: "PV", Reliability: 85},
			{ID: "TRA_P6", Title: "Témoignages de collègues", Type: "TEMOIGNAGE", Reliability: 55},
			{ID: "TRA_P7", Title: "Bulletins de paie des douze derniers mois", Type: "ADMINISTRATIF", IsLate: true, Reliability: 80},
		},
		Events: []models.EventCard{
			{ID: "TRA_E1", Title: "Offre de réintégration", Description: "L'employeur propose la réintégration en cours d'instance."},
			{ID: "TRA_E2", Title: "Témoin retourné", Description: "Un collègue revient sur son attestation initiale."},
			{ID: "TRA_E3", Title: "Jonction demandée", Description: "Trois autres travailleurs demandent la jonction de leurs causes."},
		},
		Objections: []ObjectionSeed{
			{Statement: "Le travailleur soulève la nullité du rapport d'inventaire, dressé sans contradicteur.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "L'employeur s'oppose au dépôt tardif des registres de pointage.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "L'employeur conteste les témoignages de collègues encore sous son autorité hiérarchique.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2}},
			{Statement: "Le travailleur demande une clarification sur la saisine préalable de l'inspection du travail.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_CONST_REQUETE",
		Domain: models.DomainConstitutionnel,
		Levels: []string{models.LevelAdvanced},
		Titles: []string{
			"Requête en inconstitutionnalité d'un édit provincial",
			"Contrôle de conformité d'une loi organique",
			"Conflit de compétence entre institutions provinciales",
		},
		PartySchema: []PartyRole{
			{Key: "requerant", Labels: []string{"Requérant", "Député requérant"}},
			{Key: "defendeur", Labels: []string{"Autorité défenderesse", "Assemblée provinciale"}},
			{Key: "procureur_general", Labels: []string{"Procureur Général"}},
		},
		FactVariants: []string{
			"Un groupe de députés conteste la conformité d'un édit provincial instituant une taxe sur les produits déjà imposés par la loi nationale.",
			"Le requérant soutient qu'une loi organique a été adoptée sans la majorité qualifiée exigée par la Constitution.",
			"Deux institutions provinciales revendiquent la même compétence réglementaire et saisissent la haute juridiction.",
		},
		LegalIssues: []string{
			"Recevabilité de la requête au regard de la qualité des requérants",
			"Répartition des compétences entre pouvoir central et provinces",
			"Respect de la procédure législative prescrite",
			"Effets dans le temps d'une déclaration d'inconstitutionnalité",
			"Portée de l'autorité de la chose jugée constitutionnelle",
		},
		Pieces: []PieceSeed{
			{ID: "CON_P1", Title: "Texte de l'édit attaqué", Type: "ACTE", Reliability: 100},
			{ID: "CON_P2", Title: "Procès-verbaux des débats parlementaires", Type: "PV", Reliability: 85},
			{ID: "CON_P3", Title: "Avis de la commission juridique", Type: "RAPPORT", Reliability: 65},
			{ID: "CON_P4", Title: "Relevé des votes nominatifs", Type: "ADMINISTRATIF", IsLate: true, Reliability: 90},
			{ID: "CON_P5", Title: "Note doctrinale produite par le requérant", Type: "DOCTRINE", Reliability: 50},
			{ID: "CON_P6", Title: "Mémoire en réponse de l'assemblée", Type: "MEMOIRE", Reliability: 80},
		},
		Events: []models.EventCard{
			{ID: "CON_E1", Title: "Demande d'avis", Description: "Le Procureur Général sollicite un délai pour déposer son avis."},
			{ID: "CON_E2", Title: "Désistement partiel", Description: "Trois requérants se désistent en cours d'instance."},
			{ID: "CON_E3", Title: "Question incidente", Description: "Une exception d'irrecevabilité est soulevée à l'ouverture."},
		},
		Objections: []ObjectionSeed{
			{Statement: "L'assemblée soulève l'irrecevabilité de la requête pour défaut de qualité des signataires.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "Le requérant s'oppose au dépôt tardif du relevé des votes nominatifs.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "L'assemblée conteste la note doctrinale, dépourvue de valeur probante.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 1}},
			{Statement: "Le Procureur Général demande une clarification sur l'étendue de la saisine.", By: models.RoleProsecutor, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_MILITAIRE_DESERTION",
		Domain: models.DomainPenalMilitaire,
		Levels: []string{models.LevelIntermediate, models.LevelAdvanced},
		Titles: []string{
			"Poursuites pour désertion en temps de paix",
			"Dissipation d'effets militaires devant la cour",
			"Abandon de poste en zone opérationnelle",
		},
		PartySchema: []PartyRole{
			{Key: "prevenu", Labels: []string{"Prévenu militaire", "Sous-officier prévenu"}},
			{Key: "auditeur_militaire", Labels: []string{"Auditeur Militaire", "Substitut de l'Auditeur"}},
			{Key: "corps", Labels: []string{"Unité d'affectation", "Commandement d'unité"}},
		},
		FactVariants: []string{
			"Le prévenu ne s'est pas présenté à son unité pendant plus de trente jours consécutifs et a été interpellé en tenue civile.",
			"Des effets militaires confiés au prévenu ont disparu de l'armurerie dont il avait la garde.",
			"Le prévenu a quitté son poste en zone opérationnelle en invoquant l'absence de solde depuis cinq mois.",
		},
		LegalIssues: []string{
			"Éléments constitutifs de la désertion",
			"Compétence de la juridiction militaire à l'égard des faits",
			"Incidence du défaut de paiement de la solde",
			"Régularité de la procédure d'instruction militaire",
			"Individualisation de la peine militaire",
		},
		Pieces: []PieceSeed{
			{ID: "MIL_P1", Title: "Ordre de mission et registre d'appel", Type: "ADMINISTRATIF", Reliability: 90},
			{ID: "MIL_P2", Title: "PV d'interpellation", Type: "PV", Reliability: 80},
			{ID: "MIL_P3", Title: "Inventaire de l'armurerie", Type: "INVENTAIRE", Reliability: 60},
			{ID: "MIL_P4", Title: "Témoignage du chef de corps", Type: "TEMOIGNAGE", Reliability: 70},
			{ID: "MIL_P5", Title: "États de solde de l'unité", Type: "ADMINISTRATIF", IsLate: true, Reliability: 55},
			{ID: "MIL_P6", Title: "Rapport de l'auditorat", Type: "RAPPORT", Reliability: 85},
		},
		Events: []models.EventCard{
			{ID: "MIL_E1", Title: "Comparution du chef de corps", Description: "Le chef de corps est cité à comparaître comme témoin."},
			{ID: "MIL_E2", Title: "Jonction de prévenus", Description: "Deux co-prévenus de la même unité sont joints à la cause."},
			{ID: "MIL_E3", Title: "Renvoi pour complément", Description: "La cour envisage un renvoi pour complément d'instruction."},
		},
		Objections: []ObjectionSeed{
			{Statement: "La défense soulève l'incompétence de la juridiction militaire, le prévenu ayant été radié des cadres.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "L'Auditeur Militaire s'oppose au dépôt tardif des états de solde.", By: models.RoleProsecutor, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "La défense conteste l'inventaire de l'armurerie, dressé hors la présence du prévenu.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2}},
			{Statement: "L'Auditeur demande une clarification sur la période exacte d'absence reprochée.", By: models.RoleProsecutor, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_FAMILLE_SUCCESSION",
		Domain: models.DomainFamille,
		Levels: []string{models.LevelBeginner, models.LevelIntermediate},
		Titles: []string{
			"Liquidation contestée d'une succession",
			"Conflit sur la garde des enfants après divorce",
			"Contestation de la qualité d'héritier",
		},
		PartySchema: []PartyRole{
			{Key: "demandeur", Labels: []string{"Demandeur", "Héritier demandeur"}},
			{Key: "defendeur", Labels: []string{"Défendeur", "Liquidateur désigné"}},
			{Key: "conseil_famille", Labels: []string{"Représentant du conseil de famille"}},
		},
		FactVariants: []string{
			"Le liquidateur désigné par le conseil de famille est accusé d'avoir vendu un immeuble successoral sans autorisation.",
			"Un enfant né hors mariage revendique sa part dans la succession que les héritiers légitimes lui contestent.",
			"Après le divorce, chaque parent revendique la garde exclusive des trois enfants mineurs.",
		},
		LegalIssues: []string{
			"Étendue des pouvoirs du liquidateur successoral",
			"Preuve de la filiation et vocation successorale",
			"Intérêt supérieur de l'enfant dans l'attribution de la garde",
			"Sort des actes passés sans autorisation du conseil de famille",
			"Rapport des libéralités entre héritiers",
		},
		Pieces: []PieceSeed{
			{ID: "FAM_P1", Title: "Acte de décès et attestation d'hérédité", Type: "ACTE", Reliability: 95},
			{ID: "FAM_P2", Title: "PV du conseil de famille", Type: "PV", Reliability: 75},
			{ID: "FAM_P3", Title: "Acte de vente de l'immeuble successoral", Type: "CONTRAT", Reliability: 85},
			{ID: "FAM_P4", Title: "Test de filiation produit en cause d'appel", Type: "EXPERTISE", IsLate: true, Reliability: 90},
			{ID: "FAM_P5", Title: "Témoignages des voisins sur la garde effective", Type: "TEMOIGNAGE", Reliability: 50},
			{ID: "FAM_P6", Title: "Enquête sociale du tribunal", Type: "RAPPORT", Reliability: 80},
			{ID: "FAM_P7", Title: "Lettres manuscrites du défunt", Type: "CORRESPONDANCE", IsLate: true, Reliability: 45},
		},
		Events: []models.EventCard{
			{ID: "FAM_E1", Title: "Médiation familiale", Description: "Le tribunal propose une médiation avant les débats."},
			{ID: "FAM_E2", Title: "Nouvel héritier déclaré", Description: "Une personne se déclarant héritière intervient à la cause."},
			{ID: "FAM_E3", Title: "Enquête sociale complémentaire", Description: "Le juge ordonne un complément d'enquête sociale."},
		},
		Objections: []ObjectionSeed{
			{Statement: "Le défendeur s'oppose à la production tardive du test de filiation.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "Le demandeur soulève la nullité du PV du conseil de famille, signé par un membre non convoqué.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "Le défendeur conteste les lettres manuscrites, dont l'écriture n'est pas vérifiée.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2}},
			{Statement: "Le conseil de famille demande une clarification sur l'étendue de la saisine du tribunal.", By: models.RoleClerk, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_COMMERCIAL_CREANCE",
		Domain: models.DomainCommercial,
		Levels: []string{models.LevelIntermediate, models.LevelAdvanced},
		Titles: []string{
			"Recouvrement de créance commerciale impayée",
			"Rupture brutale d'une relation commerciale établie",
			"Contestation d'une injonction de payer OHADA",
		},
		PartySchema: []PartyRole{
			{Key: "creancier", Labels: []string{"Société créancière", "Fournisseur demandeur"}},
			{Key: "debiteur", Labels: []string{"Société débitrice", "Commerçant défendeur"}},
			{Key: "greffier", Labels: []string{"Greffier du tribunal de commerce"}},
		},
		FactVariants: []string{
			"Le fournisseur réclame le paiement de factures impayées sur dix-huit mois de livraisons que le débiteur dit n'avoir jamais reçues intégralement.",
			"Le débiteur a formé opposition à une injonction de payer en contestant le caractère certain et exigible de la créance.",
			"Le distributeur exclusif conteste la résiliation sans préavis d'un contrat exécuté pendant sept ans.",
		},
		LegalIssues: []string{
			"Caractère certain, liquide et exigible de la créance",
			"Preuve des livraisons entre commerçants",
			"Régularité de l'opposition à l'injonction de payer",
			"Préavis raisonnable en cas de rupture de relation établie",
			"Intérêts moratoires et capitalisation",
		},
		Pieces: []PieceSeed{
			{ID: "COM_P1", Title: "Factures et bons de livraison", Type: "COMPTABLE", Reliability: 85},
			{ID: "COM_P2", Title: "Relevé de compte entre parties", Type: "COMPTABLE", Reliability: 70},
			{ID: "COM_P3", Title: "Contrat-cadre de distribution", Type: "CONTRAT", Reliability: 95},
			{ID: "COM_P4", Title: "Courriels de réclamation", Type: "CORRESPONDANCE", IsLate: true, Reliability: 60},
			{ID: "COM_P5", Title: "Rapport d'expertise comptable privée", Type: "EXPERTISE", Reliability: 55},
			{ID: "COM_P6", Title: "Ordonnance d'injonction de payer", Type: "ACTE", Reliability: 100},
			{ID: "COM_P7", Title: "Attestation du transporteur", Type: "TEMOIGNAGE", IsLate: true, Reliability: 50},
		},
		Events: []models.EventCard{
			{ID: "COM_E1", Title: "Offre transactionnelle", Description: "Le débiteur propose un paiement échelonné en cours d'instance."},
			{ID: "COM_E2", Title: "Expertise ordonnée", Description: "Le tribunal ordonne une expertise comptable contradictoire."},
			{ID: "COM_E3", Title: "Procédure collective", Description: "Le débiteur est admis en règlement préventif OHADA."},
		},
		Objections: []ObjectionSeed{
			{Statement: "Le débiteur conteste l'expertise comptable privée, réalisée sans contradicteur.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 2}},
			{Statement: "Le créancier s'oppose au dépôt tardif de l'attestation du transporteur.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "Le débiteur soulève l'irrecevabilité de l'action, l'opposition ayant été formée hors délai.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "Le greffier demande une clarification sur le décompte des intérêts réclamés.", By: models.RoleClerk, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
	{
		ID:     "TPL_ADMIN_ANNULATION",
		Domain: models.DomainAdministratif,
		Levels: []string{models.LevelIntermediate, models.LevelAdvanced},
		Titles: []string{
			"Recours en annulation d'un arrêté de déguerpissement",
			"Contestation d'une révocation de fonctionnaire",
			"Annulation d'une décision d'attribution de marché public",
		},
		PartySchema: []PartyRole{
			{Key: "requerant", Labels: []string{"Requérant", "Fonctionnaire requérant"}},
			{Key: "administration", Labels: []string{"Autorité administrative", "Ministère défendeur"}},
			{Key: "commissaire", Labels: []string{"Commissaire du gouvernement"}},
		},
		FactVariants: []string{
			"Le requérant conteste un arrêté ordonnant le déguerpissement de son quartier pour cause d'utilité publique, sans indemnisation préalable.",
			"Un fonctionnaire révoqué sans procédure disciplinaire préalable demande l'annulation de l'arrêté de révocation.",
			"Un soumissionnaire évincé attaque l'attribution d'un marché public conclu de gré à gré malgré l'appel d'offres.",
		},
		LegalIssues: []string{
			"Compétence de l'auteur de l'acte attaqué",
			"Respect de la procédure administrative préalable",
			"Détournement de pouvoir allégué",
			"Droit à l'indemnisation préalable en cas d'expropriation",
			"Effets de l'annulation sur les actes subséquents",
		},
		Pieces: []PieceSeed{
			{ID: "ADM_P1", Title: "Arrêté attaqué", Type: "ACTE", Reliability: 100},
			{ID: "ADM_P2", Title: "Recours gracieux préalable", Type: "CORRESPONDANCE", Reliability: 85},
			{ID: "ADM_P3", Title: "Dossier disciplinaire du requérant", Type: "ADMINISTRATIF", IsLate: true, Reliability: 65},
			{ID: "ADM_P4", Title: "Rapport d'évaluation des offres", Type: "RAPPORT", Reliability: 60},
			{ID: "ADM_P5", Title: "Conclusions du commissaire du gouvernement", Type: "MEMOIRE", Reliability: 90},
			{ID: "ADM_P6", Title: "Coupures de presse sur le projet", Type: "PRESSE", Reliability: 30},
		},
		Events: []models.EventCard{
			{ID: "ADM_E1", Title: "Sursis à exécution", Description: "Le requérant sollicite le sursis à exécution de l'acte attaqué."},
			{ID: "ADM_E2", Title: "Production du dossier administratif", Description: "Le juge enjoint à l'administration de produire le dossier complet."},
			{ID: "ADM_E3", Title: "Désistement de l'administration", Description: "L'administration rapporte partiellement l'acte en cours d'instance."},
		},
		Objections: []ObjectionSeed{
			{Statement: "L'administration soulève l'irrecevabilité du recours pour défaut de recours gracieux préalable.", By: models.RoleDefenseCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 3}},
			{Statement: "Le requérant s'oppose au dépôt tardif de son dossier disciplinaire.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{DueProcessBonus: 2}},
			{Statement: "Le requérant conteste les coupures de presse, dépourvues de toute valeur probante.", By: models.RolePlaintiffCounsel, Risk: models.RiskEffects{AppealRiskPenalty: 1}},
			{Statement: "Le commissaire du gouvernement demande une clarification sur les moyens d'annulation soulevés.", By: models.RoleProsecutor, Risk: models.RiskEffects{DueProcessBonus: 1}},
		},
	},
}

// FindTemplate resolves a template by id, falling back to the first
// catalog entry for unknown ids. Never fails.
func FindTemplate(templateID string) CaseTemplate {
	for _, t := range caseTemplates {
		if t.ID == templateID {
			return t
		}
	}
	return caseTemplates[0]
}

// TemplateForDomain returns the template whose domain matches, or the
// first catalog entry
func TemplateForDomain(domain string) CaseTemplate {
	for _, t := range caseTemplates {
		if t.Domain == domain {
			return t
		}
	}
	return caseTemplates[0]
}

// Templates returns the full catalog (copy of the slice header; templates
// themselves are treated as read-only)
func Templates() []CaseTemplate {
	return caseTemplates
}
