package search

import (
	"fmt"
	"sync"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/rmacedo/memsearch/services"
)

// MultiSearch executes multiple named search queries in parallel against
// the same index. The first query that fails cancels the batch.
func (s *Service) MultiSearch(multiQuery services.MultiSearchQuery) (*services.MultiSearchResult, error) {
	startTime := time.Now()

	if len(multiQuery.Queries) == 0 {
		return nil, fmt.Errorf("at least one query is required")
	}
	seen := make(map[string]struct{}, len(multiQuery.Queries))
	for _, nq := range multiQuery.Queries {
		if nq.Name == "" {
			return nil, fmt.Errorf("each query must have a non-empty name")
		}
		if _, dup := seen[nq.Name]; dup {
			return nil, fmt.Errorf("duplicate query name '%s'", nq.Name)
		}
		seen[nq.Name] = struct{}{}
	}

	var (
		g  errgroup.Group
		mu sync.Mutex
	)
	results := make(map[string]services.SearchResult, len(multiQuery.Queries))

	for _, namedQuery := range multiQuery.Queries {
		nq := namedQuery
		g.Go(func() error {
			result, err := s.Search(services.SearchQuery{
				QueryString: nq.Query,
				Page:        multiQuery.Page,
				PageSize:    multiQuery.PageSize,
			})
			if err != nil {
				return fmt.Errorf("error executing query '%s': %w", nq.Name, err)
			}

			mu.Lock()
			results[nq.Name] = result
			mu.Unlock()
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	return &services.MultiSearchResult{
		Results:          results,
		TotalQueries:     len(multiQuery.Queries),
		ProcessingTimeMs: float64(time.Since(startTime).Nanoseconds()) / 1e6,
	}, nil
}
