package services

import (
	"encoding/json"
	"fmt"
	"log"
	"sort"
	"time"

	"justice_lab_go/models"

	"github.com/google/uuid"
)

// RunStore persists runs, the cross-run stats and the active-run pointer
type RunStore struct {
	kv KVStore
}

// NewRunStore creates a run store over the given key-value layer
func NewRunStore(kv KVStore) *RunStore {
	return &RunStore{kv: kv}
}

// NormalizeRun backfills every field of a possibly-legacy run shape with
// its default. Total: a bare zero value comes out as a fully-defaulted
// run, nothing ever throws.
func NormalizeRun(run models.Run) models.Run {
	if run.RunID == "" {
		run.RunID = uuid.New().String()
	}
	if run.CaseMeta.CaseID == "" {
		run.CaseMeta.CaseID = run.CaseID
	}
	if !models.IsValidStep(run.Step) {
		run.Step = models.StepBriefing
	}
	if !models.IsValidRole(run.Answers.Role) {
		run.Answers.Role = models.RoleJudge
	}
	if run.Answers.Audience.Decisions == nil {
		run.Answers.Audience.Decisions = []models.AudienceDecision{}
	}
	if len(run.Answers.Audience.Decisions) > models.MaxAudienceDecisions {
		run.Answers.Audience.Decisions = run.Answers.Audience.Decisions[:models.MaxAudienceDecisions]
	}
	if run.State.ExcludedPieceIDs == nil {
		run.State.ExcludedPieceIDs = []string{}
	}
	if run.State.AdmittedLatePieceIDs == nil {
		run.State.AdmittedLatePieceIDs = []string{}
	}
	if run.State.AudienceMicro < 0 {
		run.State.AudienceMicro = 0
	}
	if run.State.RiskModifiers.AppealRiskPenalty < 0 {
		run.State.RiskModifiers.AppealRiskPenalty = 0
	}
	if run.State.RiskModifiers.DueProcessBonus < 0 {
		run.State.RiskModifiers.DueProcessBonus = 0
	}
	if run.State.Audit == nil {
		run.State.Audit = []models.AuditEntry{}
	}
	if len(run.State.Audit) > models.MaxAuditEntries {
		run.State.Audit = run.State.Audit[:models.MaxAuditEntries]
	}
	if run.State.Incidents == nil {
		run.State.Incidents = []models.Incident{}
	}
	if len(run.State.Incidents) > models.MaxIncidents {
		run.State.Incidents = run.State.Incidents[:models.MaxIncidents]
	}
	if run.State.Chrono.ElapsedMs < 0 {
		run.State.Chrono.ElapsedMs = 0
	}
	run.Scores.Qualification = clampInt(run.Scores.Qualification, 0, 100)
	run.Scores.Procedure = clampInt(run.Scores.Procedure, 0, 100)
	run.Scores.Audience = clampInt(run.Scores.Audience, 0, 100)
	run.Scores.Rights = clampInt(run.Scores.Rights, 0, 100)
	run.Scores.Motivation = clampInt(run.Scores.Motivation, 0, 100)
	run.Scores.Global = clampInt(run.Scores.Global, 0, 100)
	if run.Flags == nil {
		run.Flags = []models.RunFlag{}
	}
	if run.Debrief == nil {
		run.Debrief = []string{}
	}
	if run.StartedAt.IsZero() {
		run.StartedAt = time.Now().UTC()
	}
	return run
}

// NormalizeRuns normalizes every stored run, sorts the collection
// newest-first by finish (or start) time, and caps it
func NormalizeRuns(runs []models.Run) []models.Run {
	out := make([]models.Run, 0, len(runs))
	for _, run := range runs {
		out = append(out, NormalizeRun(run))
	}
	sort.SliceStable(out, func(i, j int) bool {
		return runSortTime(out[i]).After(runSortTime(out[j]))
	})
	if len(out) > models.MaxStoredRuns {
		out = out[:models.MaxStoredRuns]
	}
	return out
}

func runSortTime(run models.Run) time.Time {
	if run.FinishedAt != nil {
		return *run.FinishedAt
	}
	return run.StartedAt
}

// ReadRuns loads the stored collection, normalizing it and rewriting the
// stored form when normalization changed anything (in-place migration of
// legacy shapes on first read)
func (s *RunStore) ReadRuns() []models.Run {
	value, ok, err := s.kv.Get(KeyRuns)
	if err != nil {
		log.Printf("[WARNING] Failed to read runs: %v", err)
		return []models.Run{}
	}
	if !ok {
		return []models.Run{}
	}

	var stored []models.Run
	if err := json.Unmarshal([]byte(value), &stored); err != nil {
		log.Printf("[WARNING] Corrupt runs collection, starting fresh: %v", err)
		return []models.Run{}
	}

	normalized := NormalizeRuns(stored)
	if payload, err := json.Marshal(normalized); err == nil && string(payload) != value {
		if err := s.kv.Set(KeyRuns, string(payload)); err != nil {
			log.Printf("[WARNING] Failed to rewrite migrated runs: %v", err)
		}
	}
	return normalized
}

// WriteRuns persists the full normalized collection
func (s *RunStore) WriteRuns(runs []models.Run) error {
	normalized := NormalizeRuns(runs)
	payload, err := json.Marshal(normalized)
	if err != nil {
		return fmt.Errorf("failed to encode runs: %w", err)
	}
	return s.kv.Set(KeyRuns, string(payload))
}

// AddRun inserts a run at the head of the collection
func (s *RunStore) AddRun(run *models.Run) error {
	runs := s.ReadRuns()
	return s.WriteRuns(append([]models.Run{NormalizeRun(*run)}, runs...))
}

// GetRunByID fetches one run; the bool reports presence
func (s *RunStore) GetRunByID(runID string) (*models.Run, bool) {
	for _, run := range s.ReadRuns() {
		if run.RunID == runID {
			found := run
			return &found, true
		}
	}
	return nil, false
}

// UpdateRunByID replaces the run with the given id
func (s *RunStore) UpdateRunByID(runID string, updated *models.Run) error {
	runs := s.ReadRuns()
	for i := range runs {
		if runs[i].RunID == runID {
			runs[i] = NormalizeRun(*updated)
			return s.WriteRuns(runs)
		}
	}
	return fmt.Errorf("run not found: %s", runID)
}

// UpsertRun updates the run in place or inserts it when absent
func (s *RunStore) UpsertRun(run *models.Run) error {
	runs := s.ReadRuns()
	for i := range runs {
		if runs[i].RunID == run.RunID {
			runs[i] = NormalizeRun(*run)
			return s.WriteRuns(runs)
		}
	}
	return s.WriteRuns(append([]models.Run{NormalizeRun(*run)}, runs...))
}

// DeleteRun removes one run from the collection
func (s *RunStore) DeleteRun(runID string) error {
	runs := s.ReadRuns()
	out := make([]models.Run, 0, len(runs))
	for _, run := range runs {
		if run.RunID != runID {
			out = append(out, run)
		}
	}
	return s.WriteRuns(out)
}

// ClearAllRuns wipes the collection
func (s *RunStore) ClearAllRuns() error {
	return s.kv.Delete(KeyRuns)
}

// SetActiveRunID points the single "currently open run" marker
func (s *RunStore) SetActiveRunID(runID string) error {
	return s.kv.Set(KeyActiveRun, runID)
}

// GetActiveRunID reads the active-run pointer, empty when unset
func (s *RunStore) GetActiveRunID() string {
	value, ok, err := s.kv.Get(KeyActiveRun)
	if err != nil || !ok {
		return ""
	}
	return value
}

// ClearActiveRunID removes the pointer
func (s *RunStore) ClearActiveRunID() error {
	return s.kv.Delete(KeyActiveRun)
}

// GetActiveRun resolves the pointer to a run; the bool reports presence
func (s *RunStore) GetActiveRun() (*models.Run, bool) {
	runID := s.GetActiveRunID()
	if runID == "" {
		return nil, false
	}
	return s.GetRunByID(runID)
}

// EnsureActiveRunValid clears the pointer when the referenced run no
// longer exists, self-healing against stale pointers
func (s *RunStore) EnsureActiveRunValid() {
	runID := s.GetActiveRunID()
	if runID == "" {
		return
	}
	if _, ok := s.GetRunByID(runID); !ok {
		if err := s.ClearActiveRunID(); err != nil {
			log.Printf("[WARNING] Failed to clear stale active run pointer: %v", err)
		}
	}
}

// PatchActiveRun shallow-merges the patch onto the active run, deep
// merging the answers, state and scores sub-objects so sibling fields in
// those sub-objects survive partial patches
func (s *RunStore) PatchActiveRun(patch map[string]interface{}) (*models.Run, error) {
	run, ok := s.GetActiveRun()
	if !ok {
		return nil, fmt.Errorf("no active run")
	}

	payload, err := json.Marshal(run)
	if err != nil {
		return nil, fmt.Errorf("failed to encode active run: %w", err)
	}
	var current map[string]interface{}
	if err := json.Unmarshal(payload, &current); err != nil {
		return nil, fmt.Errorf("failed to decode active run: %w", err)
	}

	for key, value := range patch {
		if key == "answers" || key == "state" || key == "scores" {
			dst, dstOK := current[key].(map[string]interface{})
			src, srcOK := value.(map[string]interface{})
			if dstOK && srcOK {
				current[key] = deepMerge(dst, src)
				continue
			}
		}
		current[key] = value
	}

	merged, err := json.Marshal(current)
	if err != nil {
		return nil, fmt.Errorf("failed to encode patched run: %w", err)
	}
	var out models.Run
	if err := json.Unmarshal(merged, &out); err != nil {
		return nil, fmt.Errorf("patch does not fit the run shape: %w", err)
	}

	normalized := NormalizeRun(out)
	if err := s.UpdateRunByID(run.RunID, &normalized); err != nil {
		return nil, err
	}
	return &normalized, nil
}

// deepMerge recursively merges src into dst, returning dst
func deepMerge(dst, src map[string]interface{}) map[string]interface{} {
	for key, value := range src {
		if srcMap, ok := value.(map[string]interface{}); ok {
			if dstMap, ok := dst[key].(map[string]interface{}); ok {
				dst[key] = deepMerge(dstMap, srcMap)
				continue
			}
		}
		dst[key] = value
	}
	return dst
}

// ReadStats loads the aggregate stats, empty-initialized when absent
func (s *RunStore) ReadStats() *models.Stats {
	stats := models.NewStats()
	value, ok, err := s.kv.Get(KeyStats)
	if err != nil {
		log.Printf("[WARNING] Failed to read stats: %v", err)
		return stats
	}
	if !ok {
		return stats
	}
	if err := json.Unmarshal([]byte(value), stats); err != nil {
		log.Printf("[WARNING] Corrupt stats blob, starting fresh: %v", err)
		return models.NewStats()
	}
	if stats.ByDomain == nil {
		stats.ByDomain = make(map[string]models.DomainStats)
	}
	if stats.Skills == nil {
		stats.Skills = make(map[string]models.SkillStats)
	}
	return stats
}

// WriteStats persists the aggregate stats
func (s *RunStore) WriteStats(stats *models.Stats) error {
	payload, err := json.Marshal(stats)
	if err != nil {
		return fmt.Errorf("failed to encode stats: %w", err)
	}
	return s.kv.Set(KeyStats, string(payload))
}

// UpdateGlobalStats folds one finished run into the aggregate stats with
// the incremental-mean formula. Must be called exactly once per finished
// run; the caller guards against double counting.
func (s *RunStore) UpdateGlobalStats(run *models.Run) *models.Stats {
	stats := s.ReadStats()
	global := float64(run.Scores.Global)

	stats.TotalRuns++
	n := float64(stats.TotalRuns)
	stats.AvgScore = (stats.AvgScore*(n-1) + global) / n
	if run.Scores.Global > stats.BestScore {
		stats.BestScore = run.Scores.Global
	}
	at := time.Now().UTC()
	if run.FinishedAt != nil {
		at = *run.FinishedAt
	}
	stats.LastRunAt = &at

	domain := run.CaseMeta.Domain
	if domain != "" {
		ds := stats.ByDomain[domain]
		ds.Runs++
		dn := float64(ds.Runs)
		ds.Avg = (ds.Avg*(dn-1) + global) / dn
		if run.Scores.Global > ds.Best {
			ds.Best = run.Scores.Global
		}
		stats.ByDomain[domain] = ds
	}

	axes := map[string]int{
		models.SkillQualification: run.Scores.Qualification,
		models.SkillProcedure:     run.Scores.Procedure,
		models.SkillAudience:      run.Scores.Audience,
		models.SkillRights:        run.Scores.Rights,
		models.SkillMotivation:    run.Scores.Motivation,
	}
	for _, skill := range models.AllSkills {
		sk := stats.Skills[skill]
		sk.N++
		sn := float64(sk.N)
		sk.Avg = (sk.Avg*(sn-1) + float64(axes[skill])) / sn
		stats.Skills[skill] = sk
	}

	if err := s.WriteStats(stats); err != nil {
		log.Printf("[WARNING] Failed to persist stats: %v", err)
	}
	return stats
}
