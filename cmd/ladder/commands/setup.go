package commands

import (
	"fmt"

	"github.com/pitchrank/ladder/internal/contracts"
	"github.com/pitchrank/ladder/internal/ranking"
	"github.com/pitchrank/ladder/internal/rankconfig"
	"github.com/pitchrank/ladder/internal/runner"
	"github.com/pitchrank/ladder/internal/store"
	"github.com/pitchrank/ladder/pkg/config"
	"github.com/pitchrank/ladder/pkg/database"
	"github.com/pitchrank/ladder/pkg/logger"
)

// deps is the wired object graph every command starts from
type deps struct {
	cfg       *config.Config
	log       *logger.Logger
	db        *database.DB
	params    *rankconfig.Config
	paramHash string
	matches   *store.MatchRepository
	rankings  *store.RankingRepository
	pipeline  *ranking.Pipeline
	runner    *runner.Runner
	divisions []contracts.Division
}

// setup loads config, connects to the database and wires the repositories,
// pipeline and runner. Callers own db.Close().
func setup() (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}

	log := logger.New(cfg)

	params, paramHash, err := loadParams(cfg)
	if err != nil {
		return nil, fmt.Errorf("load ranking parameters: %w", err)
	}

	db, err := database.New(cfg)
	if err != nil {
		return nil, fmt.Errorf("connect to database: %w", err)
	}

	divisions, err := parseDivisions(cfg.Ranking.Divisions)
	if err != nil {
		db.Close()
		return nil, err
	}

	matches := store.NewMatchRepository(db.Pool)
	rankings := store.NewRankingRepository(db.Pool)
	pipeline := ranking.NewPipeline(params, log)

	return &deps{
		cfg:       cfg,
		log:       log,
		db:        db,
		params:    params,
		paramHash: paramHash,
		matches:   matches,
		rankings:  rankings,
		pipeline:  pipeline,
		runner:    runner.New(matches, matches, matches, rankings, pipeline, paramHash, log),
		divisions: divisions,
	}, nil
}

// loadParams reads the tuning file named by the flag or config, falling back
// to the built-in defaults when neither is set.
func loadParams(cfg *config.Config) (*rankconfig.Config, string, error) {
	path := paramsFile
	if path == "" {
		path = cfg.Ranking.ParamsPath
	}

	var params *rankconfig.Config
	if path == "" {
		params = rankconfig.Default()
	} else {
		loaded, _, err := rankconfig.Load(path)
		if err != nil {
			return nil, "", err
		}
		params = loaded
	}

	hash, err := rankconfig.Hash(params)
	if err != nil {
		return nil, "", err
	}
	return params, hash, nil
}

func parseDivisions(specs []string) ([]contracts.Division, error) {
	divisions := make([]contracts.Division, 0, len(specs))
	for _, s := range specs {
		div, err := contracts.ParseDivision(s)
		if err != nil {
			return nil, fmt.Errorf("parse division %q: %w", s, err)
		}
		divisions = append(divisions, div)
	}
	return divisions, nil
}
