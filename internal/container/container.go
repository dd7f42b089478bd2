package container

import (
	"context"

	"golang.org/x/sync/errgroup"

	"petfood/finder/internal/client"
	"petfood/finder/internal/config"
	"petfood/finder/internal/domain"
	"petfood/finder/internal/session"

	log "github.com/sirupsen/logrus"
)

// Container holds all initialized components
type Container struct {
	Config  *config.Config
	Client  client.CatalogClient
	Session *session.Session
}

// New creates a new container with all dependencies initialized
func New(cfg *config.Config) (*Container, error) {
	catalogClient := client.NewCatalogClient(cfg.Catalog)

	return &Container{
		Config:  cfg,
		Client:  catalogClient,
		Session: session.New(catalogClient),
	}, nil
}

// Run performs the two initial loads for the default filters and logs the
// resulting display set.
func (c *Container) Run(ctx context.Context) error {
	filters := c.Session.Filters()

	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		c.Session.SetFoodType(ctx, filters.FoodType)
		return nil
	})

	g.Go(func() error {
		if err := c.Session.SetPetType(ctx, filters.PetType); err != nil {
			log.Warnf("⚠️ Special care options unavailable: %v", err)
		}
		return nil
	})

	if err := g.Wait(); err != nil {
		return err
	}

	options := c.Session.SpecialCareOptions()
	log.Infof("✅ Loaded %d special care options for %s", len(options), filters.PetType)

	visible := c.Session.Visible()
	log.Infof("✅ %d products match the current filters", len(visible))
	for _, p := range visible {
		log.Infof("  • %s [%s / %s / %s]",
			p.Name,
			p.ProductType.DisplayLabel(),
			p.PetType.DisplayLabel(),
			domain.LifeStageLabel(p.LifeStage))
	}

	return nil
}
