package models

import "time"

// Skill axis keys used in Stats.Skills
const (
	SkillQualification = "qualification"
	SkillProcedure     = "procedure"
	SkillAudience      = "audience"
	SkillRights        = "rights"
	SkillMotivation    = "motivation"
)

// AllSkills lists the five score axes tracked in the aggregate stats
var AllSkills = []string{
	SkillQualification,
	SkillProcedure,
	SkillAudience,
	SkillRights,
	SkillMotivation,
}

// DomainStats aggregates finished runs for one legal domain
type DomainStats struct {
	Runs int     `json:"runs"`
	Avg  float64 `json:"avg"`
	Best int     `json:"best"`
}

// SkillStats is a running average for one score axis
type SkillStats struct {
	Avg float64 `json:"avg"`
	N   int     `json:"n"`
}

// Stats is the process-wide aggregate over finished runs. Averages are
// maintained incrementally, never recomputed from scratch.
type Stats struct {
	TotalRuns int                    `json:"total_runs"`
	AvgScore  float64                `json:"avg_score"`
	BestScore int                    `json:"best_score"`
	LastRunAt *time.Time             `json:"last_run_at,omitempty"`
	ByDomain  map[string]DomainStats `json:"by_domain"`
	Skills    map[string]SkillStats  `json:"skills"`
}

// NewStats returns an empty, fully-initialized Stats value
func NewStats() *Stats {
	return &Stats{
		ByDomain: make(map[string]DomainStats),
		Skills:   make(map[string]SkillStats),
	}
}
