package search

import (
	"context"
	"strconv"
	"strings"

	"go.uber.org/zap"

	"github.com/tstnetwork/tstnode/internal/apierr"
	"github.com/tstnetwork/tstnode/internal/config"
	"github.com/tstnetwork/tstnode/internal/crypto"
	"github.com/tstnetwork/tstnode/internal/model"
	"github.com/tstnetwork/tstnode/pkg/workerpool"
)

// Transaction kinds accepted by ExtendedTransactions.
const (
	MatchAddress  = "address"
	MatchName     = "name"
	MatchMetadata = "metadata"
)

// minExtendedQuery keeps metadata scans off one- and two-character queries.
const minExtendedQuery = 3

// Result holds whichever entities matched the query exactly. Fields that
// did not match, or were not probed because the query cannot name that
// entity, stay nil.
type Result struct {
	Query       string             `json:"query"`
	Address     *model.Address     `json:"address,omitempty"`
	Block       *model.Block       `json:"block,omitempty"`
	Transaction *model.Transaction `json:"transaction,omitempty"`
	Name        *model.Name        `json:"name,omitempty"`
}

// ExtendedResult counts the transactions a query touches. A count of -1
// means the query cannot name that match kind.
type ExtendedResult struct {
	Query           string `json:"query"`
	AddressInvolved int    `json:"address_involved"`
	NameInvolved    int    `json:"name_involved"`
	MetadataMatches int    `json:"metadata_matches"`
}

// Service is the search engine.
type Service struct {
	repo      Repository
	constants config.Constants
	logger    *zap.Logger
}

// New builds the engine.
func New(repo Repository, constants config.Constants, logger *zap.Logger) *Service {
	return &Service{repo: repo, constants: constants, logger: logger}
}

// Query probes every entity the query could name, concurrently, and returns
// whatever matched exactly.
func (s *Service) Query(ctx context.Context, query string) (*Result, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apierr.MissingParameter("q")
	}

	result := &Result{Query: query}
	var tasks []workerpool.Task

	if crypto.IsValidAddress(s.constants.AddressPrefix, query) {
		tasks = append(tasks, func(ctx context.Context) error {
			row, err := s.repo.Address(ctx, query)
			result.Address = row
			return err
		})
	}
	if id, err := strconv.ParseUint(query, 10, 64); err == nil {
		tasks = append(tasks,
			func(ctx context.Context) error {
				row, err := s.repo.Block(ctx, id)
				result.Block = row
				return err
			},
			func(ctx context.Context) error {
				row, err := s.repo.Transaction(ctx, id)
				result.Transaction = row
				return err
			})
	}
	if name, ok := s.nameQuery(query); ok {
		tasks = append(tasks, func(ctx context.Context) error {
			row, err := s.repo.Name(ctx, name)
			result.Name = row
			return err
		})
	}

	if err := workerpool.Run(ctx, len(tasks), tasks); err != nil {
		return nil, err
	}
	return result, nil
}

// Extended counts the transactions the query is involved in, as an address,
// as a name and as a metadata substring.
func (s *Service) Extended(ctx context.Context, query string) (*ExtendedResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, apierr.MissingParameter("q")
	}
	if len(query) < minExtendedQuery {
		return nil, apierr.InvalidParameter("q")
	}

	result := &ExtendedResult{Query: query, AddressInvolved: -1, NameInvolved: -1}
	tasks := []workerpool.Task{
		func(ctx context.Context) error {
			_, total, err := s.repo.MetadataTransactions(ctx, query, 1, 0)
			result.MetadataMatches = total
			return err
		},
	}

	if crypto.IsValidAddress(s.constants.AddressPrefix, query) {
		tasks = append(tasks, func(ctx context.Context) error {
			_, total, err := s.repo.AddressTransactions(ctx, query, 1, 0)
			result.AddressInvolved = total
			return err
		})
	}
	if name, ok := s.nameQuery(query); ok {
		tasks = append(tasks, func(ctx context.Context) error {
			_, total, err := s.repo.NameTransactions(ctx, name, 1, 0)
			result.NameInvolved = total
			return err
		})
	}

	if err := workerpool.Run(ctx, len(tasks), tasks); err != nil {
		return nil, err
	}
	return result, nil
}

// ExtendedTransactions pages through the transactions behind one extended
// match kind.
func (s *Service) ExtendedTransactions(ctx context.Context, query, kind string, limit, offset int) ([]model.Transaction, int, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, 0, apierr.MissingParameter("q")
	}

	switch kind {
	case MatchAddress:
		if !crypto.IsValidAddress(s.constants.AddressPrefix, query) {
			return nil, 0, apierr.InvalidParameter("q")
		}
		return s.repo.AddressTransactions(ctx, query, limit, offset)
	case MatchName:
		name, ok := s.nameQuery(query)
		if !ok {
			return nil, 0, apierr.InvalidParameter("q")
		}
		return s.repo.NameTransactions(ctx, name, limit, offset)
	case MatchMetadata:
		if len(query) < minExtendedQuery {
			return nil, 0, apierr.InvalidParameter("q")
		}
		return s.repo.MetadataTransactions(ctx, query, limit, offset)
	default:
		return nil, 0, apierr.InvalidParameter("type")
	}
}

// nameQuery canonicalizes a query into a registry key, accepting both the
// bare and the suffixed form.
func (s *Service) nameQuery(query string) (string, bool) {
	name := crypto.StripNameSuffix(strings.ToLower(query), s.constants.NameSuffix)
	if !crypto.IsValidNameForFetch(name) {
		return "", false
	}
	return name, true
}
