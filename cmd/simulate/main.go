package main

import (
	"flag"
	"fmt"
	"log"

	"justice_lab_go/models"
	"justice_lab_go/services"
)

func main() {
	templateID := flag.String("template", "TPL_PENAL_DETENTION", "case template id")
	seed := flag.String("seed", "demo", "generation seed")
	level := flag.String("level", models.LevelIntermediate, "difficulty level")
	role := flag.String("role", models.RoleJudge, "player role")
	flag.Parse()

	if !models.IsValidLevel(*level) {
		log.Fatalf("Unknown level %q (valid: %v)", *level, models.AllLevels)
	}
	if !models.IsValidRole(*role) {
		log.Fatalf("Unknown role %q (valid: %v)", *role, models.AllRoles)
	}

	// Everything runs against the in-memory stores, no database needed
	kv := services.NewMemoryKV()
	caseStore := services.NewCaseStore(kv)
	runStore := services.NewRunStore(kv)

	caseData := services.GenerateCase(caseStore, services.GenerateCaseInput{
		TemplateID: *templateID,
		Seed:       *seed,
		Level:      *level,
	})

	fmt.Println("=== Justice Lab Simulation ===")
	fmt.Println()
	fmt.Printf("Affaire:    %s\n", caseData.CaseID)
	fmt.Printf("Titre:      %s\n", caseData.Title)
	fmt.Printf("Domaine:    %s (%s, %s)\n", caseData.Domain, caseData.Court, caseData.Chamber)
	fmt.Printf("Niveau:     %s\n", caseData.Level)
	fmt.Printf("Rôle joué:  %s\n", *role)
	fmt.Println()

	run := services.CreateNewRun(caseData)
	run.Answers.Role = *role
	if err := runStore.AddRun(run); err != nil {
		log.Fatalf("Failed to save run: %v", err)
	}

	// Hearing: template objections only, ruled with the role's best choice
	scene := services.MergeAudienceWithTemplates(caseData, nil)
	run = services.SetAudienceScene(run, scene)
	run = services.StartChrono(run)

	fmt.Printf("Audience: %d objections\n", len(scene.Objections))
	for _, objection := range scene.Objections {
		decision := objection.BestChoiceByRole[*role]
		if decision == "" {
			decision = models.OptionClarify
		}
		run = services.ApplyAudienceDecision(run, services.DecisionInput{
			ObjectionID: objection.ID,
			Decision:    decision,
			Reasoning:   "Décision conforme à la procédure applicable.",
			Role:        *role,
		})
		fmt.Printf("  %-16s %-22s par %s\n", objection.ID, decision, objection.By)
	}

	run = services.RecordIncident(run, services.IncidentInput{
		Type:   models.IncidentDisclosure,
		Title:  "Communication tardive de pièces",
		Detail: "Pièces communiquées à l'ouverture de l'audience.",
		Actor:  models.RoleDefenseCounsel,
	})
	run = services.StopChrono(run)

	// External axes get a neutral assessment in simulation
	run.Scores.Qualification = 70
	run.Scores.Procedure = 70
	result := services.ScoreRun(run)
	run = services.ApplyScoreResult(run, result)
	if err := runStore.UpdateRunByID(run.RunID, run); err != nil {
		log.Fatalf("Failed to save run: %v", err)
	}

	fmt.Println()
	fmt.Println("=== Résultats ===")
	fmt.Printf("  Qualification: %3d/100\n", result.Scores.Qualification)
	fmt.Printf("  Procédure:     %3d/100\n", result.Scores.Procedure)
	fmt.Printf("  Audience:      %3d/100\n", result.Scores.Audience)
	fmt.Printf("  Global:        %3d/100\n", result.ScoreGlobal)
	for _, flagEntry := range result.Flags {
		fmt.Printf("  [%s] %s\n", flagEntry.Level, flagEntry.Label)
	}
	fmt.Println()
	for _, line := range result.Debrief {
		fmt.Println(line)
	}

	stats := runStore.UpdateGlobalStats(run)
	fmt.Println()
	fmt.Printf("Statistiques: %d simulation(s), moyenne %.1f, meilleur score %d\n",
		stats.TotalRuns, stats.AvgScore, stats.BestScore)
}
