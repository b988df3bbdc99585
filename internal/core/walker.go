package core

import (
	"context"
	"errors"
	"fmt"
	"log"

	"github.com/agenthands/thread/internal/core/model"
	"github.com/agenthands/thread/internal/registry"
)

var (
	ErrEmptySeed    = errors.New("seed company number is empty")
	ErrInvalidDepth = errors.New("max depth must be >= 0")
)

// Walker discovers companies associated with a seed company through shared
// officers, one BFS level at a time.
type Walker struct {
	Registry registry.Client
}

func NewWalker(client registry.Client) *Walker {
	return &Walker{Registry: client}
}

// DiscoverAssociations returns the companies reachable from seed at each level
// 0..maxDepth. Registry calls are made strictly one after another and the
// first failure aborts the walk.
func (w *Walker) DiscoverAssociations(ctx context.Context, seed string, maxDepth int) (model.AssociationGraph, error) {
	if seed == "" {
		return nil, ErrEmptySeed
	}
	if maxDepth < 0 {
		return nil, fmt.Errorf("%w: got %d", ErrInvalidDepth, maxDepth)
	}

	graph := model.AssociationGraph{0: model.NewCompanySet(seed)}
	calls := 0

	for level := 0; level < maxDepth; level++ {
		companies := graph[level].Sorted()

		officers, n, err := w.officersOf(ctx, companies)
		calls += n
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}

		next, n, err := w.companiesOf(ctx, officers)
		calls += n
		if err != nil {
			return nil, fmt.Errorf("level %d: %w", level, err)
		}
		graph[level+1] = next
	}

	log.Printf("Discovered associations for %s: depth=%d levels=%v registry_calls=%d", seed, maxDepth, levelSizes(graph), calls)
	return graph, nil
}

// officersOf lists the officer ids for every company. Officers sitting on
// several companies are returned once per company.
func (w *Walker) officersOf(ctx context.Context, companies []string) ([]string, int, error) {
	var officerIDs []string
	calls := 0
	for _, companyNumber := range companies {
		items, err := w.Registry.ListOfficers(ctx, companyNumber, nil)
		calls++
		if err != nil {
			return nil, calls, fmt.Errorf("failed to list officers of %s: %w", companyNumber, err)
		}
		for _, item := range items {
			id, err := registry.OfficerID(item)
			if err != nil {
				return nil, calls, fmt.Errorf("company %s: %w", companyNumber, err)
			}
			officerIDs = append(officerIDs, id)
		}
	}
	return officerIDs, calls, nil
}

func (w *Walker) companiesOf(ctx context.Context, officerIDs []string) (model.CompanySet, int, error) {
	companies := model.NewCompanySet()
	calls := 0
	for _, officerID := range officerIDs {
		items, err := w.Registry.ListAppointments(ctx, officerID, nil)
		calls++
		if err != nil {
			return nil, calls, fmt.Errorf("failed to list appointments of officer %s: %w", officerID, err)
		}
		for _, item := range items {
			if item.AppointedTo.CompanyNumber == "" {
				return nil, calls, fmt.Errorf("%w: appointment of officer %s has no company number", registry.ErrMalformedResponse, officerID)
			}
			companies.Add(item.AppointedTo.CompanyNumber)
		}
	}
	return companies, calls, nil
}

// GetCompanyInfo returns the registry's profile record for a company unchanged.
func (w *Walker) GetCompanyInfo(ctx context.Context, companyNumber string) (model.Record, error) {
	profile, err := w.Registry.GetProfile(ctx, companyNumber)
	if err != nil {
		return nil, fmt.Errorf("failed to get profile of %s: %w", companyNumber, err)
	}
	return profile.Raw, nil
}

func levelSizes(g model.AssociationGraph) []int {
	sizes := make([]int, len(g))
	for level, set := range g {
		sizes[level] = len(set)
	}
	return sizes
}
