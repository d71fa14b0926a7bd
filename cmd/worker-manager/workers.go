// cmd/worker-manager/workers.go
package main

import (
	"database/sql"

	"idea-match-workers/internal/common/camunda"
	"idea-match-workers/internal/common/config"
	"idea-match-workers/internal/common/database"
	"idea-match-workers/internal/common/logger"
	"idea-match-workers/internal/common/profiles"
	"idea-match-workers/internal/matching"

	setdecisionmode "idea-match-workers/internal/workers/decision/set-decision-mode"
	compareideas "idea-match-workers/internal/workers/ideas/compare-ideas"
	dismissidea "idea-match-workers/internal/workers/ideas/dismiss-idea"
	explainmatch "idea-match-workers/internal/workers/ideas/explain-match"
	pickbestidea "idea-match-workers/internal/workers/ideas/pick-best-idea"
	summarizeprofile "idea-match-workers/internal/workers/profile/summarize-profile"
	saveidea "idea-match-workers/internal/workers/saved/save-idea"
	searchsavedideas "idea-match-workers/internal/workers/saved/search-saved-ideas"
)

type dependencies struct {
	cfg       *config.Config
	db        *sql.DB
	es        *database.ElasticsearchClient
	profiles  *profiles.Repository
	matcher   *matching.Matcher
	publisher setdecisionmode.DecisionPublisher
	log       logger.Logger
}

type registration struct {
	taskType string
	handler  camunda.JobHandler
}

// registrations lists every job worker this service runs.
func registrations(d *dependencies) []registration {
	catalog := d.matcher.Catalog()

	return []registration{
		{
			taskType: summarizeprofile.TaskType,
			handler:  summarizeprofile.NewHandler(summarizeprofile.LoadConfig(d.cfg), d.db, d.profiles, d.log),
		},
		{
			taskType: pickbestidea.TaskType,
			handler:  pickbestidea.NewHandler(pickbestidea.LoadConfig(d.cfg), d.db, d.profiles, d.matcher, d.log),
		},
		{
			taskType: explainmatch.TaskType,
			handler:  explainmatch.NewHandler(explainmatch.LoadConfig(d.cfg), d.profiles, catalog, d.log),
		},
		{
			taskType: compareideas.TaskType,
			handler:  compareideas.NewHandler(compareideas.LoadConfig(d.cfg), d.profiles, catalog, d.log),
		},
		{
			taskType: dismissidea.TaskType,
			handler:  dismissidea.NewHandler(dismissidea.LoadConfig(d.cfg), d.profiles, catalog, d.log),
		},
		{
			taskType: saveidea.TaskType,
			handler:  saveidea.NewHandler(saveidea.LoadConfig(d.cfg), d.db, d.es, catalog, d.log),
		},
		{
			taskType: searchsavedideas.TaskType,
			handler:  searchsavedideas.NewHandler(searchsavedideas.LoadConfig(d.cfg), d.es, d.log),
		},
		{
			taskType: setdecisionmode.TaskType,
			handler:  setdecisionmode.NewHandler(setdecisionmode.LoadConfig(d.cfg), d.db, d.publisher, catalog, d.log),
		},
	}
}
