package services

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"justice_lab_go/models"

	"github.com/xuri/excelize/v2"
)

// ExportRunsJournal builds an Excel workbook of the stored runs: one
// journal sheet with every run, one sheet with the objection rulings and
// one with the aggregate stats
func ExportRunsJournal(runs []models.Run, stats *models.Stats) (*bytes.Buffer, error) {
	f := excelize.NewFile()
	defer f.Close()

	// --- Journal Sheet ---
	sheetJournal := "Journal"
	f.SetSheetName("Sheet1", sheetJournal)

	journalHeaders := []string{
		"Run",            // A
		"Affaire",        // B
		"Titre",          // C
		"Domaine",        // D
		"Niveau",         // E
		"Rôle",           // F
		"Étape",          // G
		"Score global",   // H
		"Qualification",  // I
		"Procédure",      // J
		"Audience",       // K
		"Droits",         // L
		"Motivation",     // M
		"Débutée le",     // N
		"Terminée le",    // O
		"Durée audience", // P
	}
	for i, header := range journalHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetJournal, cell, header)
	}
	headerStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 12}})
	f.SetCellStyle(sheetJournal, "A1", "P1", headerStyle)
	f.SetColWidth(sheetJournal, "A", "C", 28)
	f.SetColWidth(sheetJournal, "D", "P", 16)

	for i, run := range runs {
		row := i + 2
		finished := ""
		if run.FinishedAt != nil {
			finished = run.FinishedAt.Format(time.RFC3339)
		}
		values := []interface{}{
			run.RunID,
			run.CaseID,
			run.CaseMeta.Title,
			run.CaseMeta.Domain,
			run.CaseMeta.Level,
			run.Answers.Role,
			run.Step,
			run.Scores.Global,
			run.Scores.Qualification,
			run.Scores.Procedure,
			run.Scores.Audience,
			run.Scores.Rights,
			run.Scores.Motivation,
			run.StartedAt.Format(time.RFC3339),
			finished,
			formatElapsed(run.State.Chrono.ElapsedMs),
		}
		for j, value := range values {
			cell, _ := excelize.CoordinatesToCellName(j+1, row)
			f.SetCellValue(sheetJournal, cell, value)
		}
	}

	// --- Decisions Sheet ---
	sheetDecisions := "Décisions"
	f.NewSheet(sheetDecisions)
	decisionHeaders := []string{
		"Run",       // A
		"Objection", // B
		"Décision",  // C
		"Points",    // D
		"Motif",     // E
		"Horodatage",
	}
	for i, header := range decisionHeaders {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		f.SetCellValue(sheetDecisions, cell, header)
	}
	f.SetCellStyle(sheetDecisions, "A1", "F1", headerStyle)
	f.SetColWidth(sheetDecisions, "A", "B", 28)
	f.SetColWidth(sheetDecisions, "C", "F", 22)
	f.SetColWidth(sheetDecisions, "E", "E", 60)

	row := 2
	for _, run := range runs {
		for _, decision := range run.Answers.Audience.Decisions {
			values := []interface{}{
				run.RunID,
				decision.ObjectionID,
				decision.Decision,
				decision.Micro,
				decision.Reasoning,
				decision.At.Format(time.RFC3339),
			}
			for j, value := range values {
				cell, _ := excelize.CoordinatesToCellName(j+1, row)
				f.SetCellValue(sheetDecisions, cell, value)
			}
			row++
		}
	}

	// --- Stats Sheet ---
	sheetStats := "Statistiques"
	f.NewSheet(sheetStats)
	f.SetCellValue(sheetStats, "A1", "Statistiques globales")
	titleStyle, _ := f.NewStyle(&excelize.Style{Font: &excelize.Font{Bold: true, Size: 14}})
	f.SetCellStyle(sheetStats, "A1", "A1", titleStyle)
	f.SetColWidth(sheetStats, "A", "A", 32)
	f.SetColWidth(sheetStats, "B", "D", 16)

	f.SetCellValue(sheetStats, "A3", "Simulations terminées")
	f.SetCellValue(sheetStats, "B3", stats.TotalRuns)
	f.SetCellValue(sheetStats, "A4", "Score moyen")
	f.SetCellValue(sheetStats, "B4", stats.AvgScore)
	f.SetCellValue(sheetStats, "A5", "Meilleur score")
	f.SetCellValue(sheetStats, "B5", stats.BestScore)

	f.SetCellValue(sheetStats, "A7", "Par domaine")
	f.SetCellStyle(sheetStats, "A7", "A7", headerStyle)
	statsRow := 8
	for _, domain := range models.AllDomains {
		ds, ok := stats.ByDomain[domain]
		if !ok {
			continue
		}
		f.SetCellValue(sheetStats, fmt.Sprintf("A%d", statsRow), domain)
		f.SetCellValue(sheetStats, fmt.Sprintf("B%d", statsRow), ds.Runs)
		f.SetCellValue(sheetStats, fmt.Sprintf("C%d", statsRow), ds.Avg)
		f.SetCellValue(sheetStats, fmt.Sprintf("D%d", statsRow), ds.Best)
		statsRow++
	}

	statsRow++
	f.SetCellValue(sheetStats, fmt.Sprintf("A%d", statsRow), "Par compétence")
	f.SetCellStyle(sheetStats, fmt.Sprintf("A%d", statsRow), fmt.Sprintf("A%d", statsRow), headerStyle)
	statsRow++
	for _, skill := range models.AllSkills {
		sk, ok := stats.Skills[skill]
		if !ok {
			continue
		}
		f.SetCellValue(sheetStats, fmt.Sprintf("A%d", statsRow), skill)
		f.SetCellValue(sheetStats, fmt.Sprintf("B%d", statsRow), sk.N)
		f.SetCellValue(sheetStats, fmt.Sprintf("C%d", statsRow), sk.Avg)
		statsRow++
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("failed to write journal workbook: %w", err)
	}
	return buf, nil
}

func formatElapsed(ms int64) string {
	d := time.Duration(ms) * time.Millisecond
	minutes := int(d.Minutes())
	seconds := int(d.Seconds()) - minutes*60
	return strings.TrimSpace(fmt.Sprintf("%dm %02ds", minutes, seconds))
}
