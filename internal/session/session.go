package session

import (
	"context"
	"sync"

	"petfood/finder/internal/client"
	"petfood/finder/internal/domain"
	"petfood/finder/internal/filter"

	log "github.com/sirupsen/logrus"
)

// ProductView names what the product panel should render.
type ProductView string

const (
	ViewIdle    ProductView = "idle"
	ViewLoading ProductView = "loading"
	ViewEmpty   ProductView = "empty"
	ViewResults ProductView = "results"
)

// Session holds the filter state, the loaded catalog and the loaded
// special-care taxonomy for one interactive session. The two loaders are
// independent and may be in flight simultaneously; each carries a generation
// token so a completing load only commits if no newer load of the same kind
// has started since.
type Session struct {
	mu     sync.Mutex
	client client.CatalogClient

	filters            domain.FilterState
	products           []domain.Product
	specialCareOptions []domain.SpecialCareItem

	loadingProducts     bool
	loadingSpecialCares bool
	hasSearched         bool
	specialCareErr      string

	productGen     uint64
	specialCareGen uint64
}

func New(catalogClient client.CatalogClient) *Session {
	return &Session{
		client:  catalogClient,
		filters: domain.NewFilterState(),
	}
}

// SetFoodType switches the catalog segment and reloads the product list.
// Failures degrade to an empty result set with the searched flag set, so the
// consumer renders the empty state instead of an error or a stuck spinner.
// An empty food type clears the list without a remote call.
func (s *Session) SetFoodType(ctx context.Context, foodType domain.FoodType) {
	s.mu.Lock()
	s.filters.FoodType = foodType
	s.productGen++
	gen := s.productGen

	if foodType == "" {
		s.products = nil
		s.hasSearched = false
		s.loadingProducts = false
		s.mu.Unlock()
		return
	}

	s.loadingProducts = true
	s.mu.Unlock()

	products, err := s.client.FetchProducts(ctx, foodType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.productGen {
		log.Debugf("Discarding stale %s product load (gen %d, current %d)", foodType, gen, s.productGen)
		return
	}

	s.loadingProducts = false
	s.hasSearched = true

	if err != nil {
		log.Warnf("Product catalog load failed, showing empty results: %v", err)
		s.products = nil
		return
	}
	s.products = products
}

// SetPetType switches the species, drops stale special-care selections and
// reloads the species-scoped taxonomy. Unlike the product load, a failure here
// is surfaced: the error text is kept for the options panel and also returned.
// An empty species clears the options without a remote call.
func (s *Session) SetPetType(ctx context.Context, petType domain.PetType) error {
	s.mu.Lock()
	s.filters.SetPetType(petType)
	s.specialCareGen++
	gen := s.specialCareGen

	if petType == "" {
		s.specialCareOptions = nil
		s.specialCareErr = ""
		s.loadingSpecialCares = false
		s.mu.Unlock()
		return nil
	}

	s.loadingSpecialCares = true
	s.mu.Unlock()

	options, err := s.client.FetchSpecialCares(ctx, petType)

	s.mu.Lock()
	defer s.mu.Unlock()

	if gen != s.specialCareGen {
		log.Debugf("Discarding stale %s special care load (gen %d, current %d)", petType, gen, s.specialCareGen)
		return nil
	}

	s.loadingSpecialCares = false

	if err != nil {
		s.specialCareOptions = nil
		s.specialCareErr = err.Error()
		return err
	}

	s.specialCareOptions = options
	s.specialCareErr = ""
	return nil
}

func (s *Session) SetSearchTerm(term string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.SearchTerm = term
}

func (s *Session) SetLifeStage(stage string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.LifeStage = stage
}

func (s *Session) SetPregnant(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.IsPregnant = v
}

func (s *Session) SetLactating(v bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.IsLactating = v
}

func (s *Session) ToggleSpecialCare(id string) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.filters.ToggleSpecialCare(id)
}

// Visible applies the current filters over the loaded catalog, preserving
// load order.
func (s *Session) Visible() []domain.Product {
	s.mu.Lock()
	defer s.mu.Unlock()
	return filter.Apply(s.products, s.filters)
}

// Filters returns an independent copy of the current filter state.
func (s *Session) Filters() domain.FilterState {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.filters.Clone()
}

func (s *Session) SpecialCareOptions() []domain.SpecialCareItem {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]domain.SpecialCareItem, len(s.specialCareOptions))
	copy(out, s.specialCareOptions)
	return out
}

// SpecialCareError returns the message from the last failed taxonomy load, or
// empty when the last load succeeded.
func (s *Session) SpecialCareError() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.specialCareErr
}

func (s *Session) Loading() (products, specialCares bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.loadingProducts, s.loadingSpecialCares
}

// ProductViewState resolves which product panel to render: loading while a
// load is in flight, results when matches exist, empty once a search has
// settled without matches, idle before any search.
func (s *Session) ProductViewState() ProductView {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.loadingProducts {
		return ViewLoading
	}
	if len(filter.Apply(s.products, s.filters)) > 0 {
		return ViewResults
	}
	if s.hasSearched {
		return ViewEmpty
	}
	return ViewIdle
}
