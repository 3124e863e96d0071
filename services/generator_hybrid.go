package services

import (
	"context"
	"log"
	"time"

	"justice_lab_go/config"
	"justice_lab_go/models"
	"justice_lab_go/services/ai"
)

// HybridInput drives the template-keyed hybrid generation path
type HybridInput struct {
	TemplateID string
	Seed       string
	Level      string
	AI         bool
	Timeout    time.Duration
}

// DomainInput drives the domain-label-keyed AI generation path
type DomainInput struct {
	Domaine string
	Level   string
	Seed    string
	Lang    string
	Timeout time.Duration
}

// GenerateCaseHybrid asks the AI collaborator for a case and falls back
// to the local deterministic generator on any failure: disabled AI,
// missing configuration, timeout, transport error, non-2xx status or a
// malformed payload. It always returns a valid Case.
func GenerateCaseHybrid(store *CaseStore, client *ai.Client, input HybridInput) *models.Case {
	local := GenerateCaseInput{TemplateID: input.TemplateID, Seed: input.Seed, Level: input.Level}
	if !input.AI || client == nil || !client.IsConfigured() {
		return GenerateCase(store, local)
	}

	timeout := input.Timeout
	if timeout <= 0 {
		timeout = config.DefaultAITimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	raw, err := client.GenerateCase(ctx, ai.GenerateCaseRequest{
		TemplateID: input.TemplateID,
		Seed:       NormalizeSeed(input.Seed),
		Level:      input.Level,
	})
	if err != nil {
		log.Printf("[WARNING] AI case generation failed, using local generator: %v", err)
		return GenerateCase(store, local)
	}

	return HydrateCaseData(store, raw, HydrateOptions{
		TemplateID: input.TemplateID,
		Level:      input.Level,
		Seed:       input.Seed,
	})
}

// GenerateCaseAIByDomain asks the AI collaborator for a case in a
// free-text domain, mapping the label to the nearest template for the
// local fallback path. It always returns a valid Case.
func GenerateCaseAIByDomain(store *CaseStore, client *ai.Client, input DomainInput) *models.Case {
	fallbackTemplate := TemplateForDomain(DomainForLabel(input.Domaine))
	local := GenerateCaseInput{TemplateID: fallbackTemplate.ID, Seed: input.Seed, Level: input.Level}
	if client == nil || !client.IsConfigured() {
		return GenerateCase(store, local)
	}

	timeout := input.Timeout
	if timeout <= 0 {
		timeout = config.DefaultAIDomainTimeout
	}
	ctx, cancel := context.WithTimeout(context.Background(), timeout)
	defer cancel()

	raw, err := client.GenerateCaseByDomain(ctx, ai.GenerateCaseByDomainRequest{
		Domaine: input.Domaine,
		Level:   input.Level,
		Seed:    NormalizeSeed(input.Seed),
		Lang:    input.Lang,
	})
	if err != nil {
		log.Printf("[WARNING] AI domain case generation failed, using local generator: %v", err)
		return GenerateCase(store, local)
	}

	return HydrateCaseData(store, raw, HydrateOptions{
		Domaine: input.Domaine,
		Level:   input.Level,
		Seed:    input.Seed,
	})
}
