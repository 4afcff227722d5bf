// Package suggest produces suggestion chips for interview steps, using the
// LLM for fields that depend on earlier answers and falling back to the
// catalog's static defaults when generation fails.
package suggest

import (
	"context"
	"fmt"
	"log"
	"strings"

	"github.com/jonathan/resume-builder/internal/interview"
	"github.com/jonathan/resume-builder/internal/llm"
	"github.com/jonathan/resume-builder/internal/prompts"
)

const (
	maxJobTitles = 3
	maxSkills    = 6
)

// Provider implements interview.Suggester.
type Provider struct {
	llm     llm.Client
	catalog *interview.Catalog
}

// NewProvider creates a suggestion provider backed by the given LLM client.
func NewProvider(client llm.Client, catalog *interview.Catalog) *Provider {
	return &Provider{llm: client, catalog: catalog}
}

// Suggestions returns chips for the given field. Suggestions are advisory:
// any failure degrades to the field's static defaults and never blocks the
// turn.
func (p *Provider) Suggestions(ctx context.Context, field string, draft map[string]string) []string {
	switch field {
	case "job_title":
		if items := p.jobTitles(ctx, draft); len(items) > 0 {
			return items
		}
	case "skills":
		if items := p.skills(ctx, draft); len(items) > 0 {
			return items
		}
	}
	return p.defaults(field)
}

func (p *Provider) jobTitles(ctx context.Context, draft map[string]string) []string {
	level := strings.TrimSpace(draft["experience_level"])
	if level == "" {
		return nil
	}

	domainClause := ""
	if domain := strings.TrimSpace(draft["skills"]); domain != "" {
		domainClause = fmt.Sprintf(" working with %s", domain)
	}

	prompt, err := prompts.Render("interview.json", "job_titles", map[string]string{
		"ExperienceLevel": level,
		"DomainClause":    domainClause,
	})
	if err != nil {
		return nil
	}

	text, err := p.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("suggest: job title generation failed, using defaults: %v", err)
		return nil
	}
	return llm.SplitList(text, ",", maxJobTitles)
}

func (p *Provider) skills(ctx context.Context, draft map[string]string) []string {
	title := strings.TrimSpace(draft["job_title"])
	if title == "" {
		return nil
	}

	prompt, err := prompts.Render("interview.json", "skills_for_title", map[string]string{
		"JobTitle": title,
	})
	if err != nil {
		return nil
	}

	text, err := p.llm.GenerateContent(ctx, prompt, llm.TierLite)
	if err != nil {
		log.Printf("suggest: skill generation failed, using defaults: %v", err)
		return nil
	}
	return llm.SplitList(text, ",", maxSkills)
}

func (p *Provider) defaults(field string) []string {
	i := p.catalog.IndexOf(field)
	if i == -1 {
		return nil
	}
	step, _ := p.catalog.StepAt(i)
	return step.Suggestions
}
