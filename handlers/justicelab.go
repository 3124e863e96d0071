package handlers

import (
	"justice_lab_go/config"
	"justice_lab_go/services"
	"justice_lab_go/services/ai"
)

// Shared handler dependencies, wired once at startup
var (
	cfg       *config.Config
	caseStore *services.CaseStore
	runStore  *services.RunStore
	aiClient  *ai.Client
)

// Init wires the stores and the AI collaborator client into the handler
// package. Must be called before any route is served.
func Init(c *config.Config, cases *services.CaseStore, runs *services.RunStore, client *ai.Client) {
	cfg = c
	caseStore = cases
	runStore = runs
	aiClient = client
}
