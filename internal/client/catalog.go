package client

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sort"
	"time"

	"petfood/finder/internal/config"
	"petfood/finder/internal/domain"

	log "github.com/sirupsen/logrus"
	"go.uber.org/ratelimit"
	"resty.dev/v3"
)

// ErrUnexpectedShape is returned when a response decodes but does not contain
// the nested payload path the API contract promises.
var ErrUnexpectedShape = errors.New("response did not contain the expected payload shape")

type CatalogClient interface {
	FetchProducts(ctx context.Context, foodType domain.FoodType) ([]domain.Product, error)
	FetchSpecialCares(ctx context.Context, petType domain.PetType) ([]domain.SpecialCareItem, error)
}

type catalogClient struct {
	rl         ratelimit.Limiter
	config     config.CatalogConfig
	httpClient *resty.Client
	mapper     *catalogMapper
}

func NewCatalogClient(cfg config.CatalogConfig) CatalogClient {
	httpClient := resty.New().
		SetBaseURL(cfg.BaseURL).
		SetTimeout(time.Duration(cfg.Timeout)*time.Second).
		SetBasicAuth(cfg.Username, cfg.Password).
		SetHeader("Accept", "application/json")

	rl := ratelimit.NewUnlimited()
	if cfg.MaxRequestsPerSecond > 0 {
		rl = ratelimit.New(cfg.MaxRequestsPerSecond)
	}

	return &catalogClient{
		rl:         rl,
		config:     cfg,
		httpClient: httpClient,
		mapper:     newCatalogMapper(),
	}
}

// FetchProducts fetches the catalog for one food type and maps every record
// into the canonical product shape. Records come back as a keyed mapping; the
// result is ordered by catalog key so repeated fetches are comparable.
func (c *catalogClient) FetchProducts(ctx context.Context, foodType domain.FoodType) ([]domain.Product, error) {
	if foodType == "" {
		return []domain.Product{}, nil
	}

	body, err := c.fetchJSON(ctx, "/api/products", map[string]string{
		"country":      c.config.Country,
		"languageId":   c.config.LanguageID,
		"productId":    c.config.ProductID,
		"productType":  foodType.String(),
		"type":         "",
		"appsAndEshop": "true",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch product catalog: %w", err)
	}

	var payload productsResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode product catalog response: %w", err)
	}
	if payload.Result == nil || payload.Result.Products == nil {
		return nil, fmt.Errorf("product catalog: %w", ErrUnexpectedShape)
	}

	keys := make([]string, 0, len(payload.Result.Products))
	for key := range payload.Result.Products {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	products := make([]domain.Product, 0, len(keys))
	for _, key := range keys {
		products = append(products, c.mapper.MapProduct(payload.Result.Products[key], foodType))
	}

	log.Debugf("Fetched %d %s products from catalog", len(products), foodType)
	return products, nil
}

// FetchSpecialCares fetches the special-care taxonomy for one species. Each
// raw record carries its id and name under species-prefixed field names.
func (c *catalogClient) FetchSpecialCares(ctx context.Context, petType domain.PetType) ([]domain.SpecialCareItem, error) {
	if petType == "" {
		return []domain.SpecialCareItem{}, nil
	}

	body, err := c.fetchJSON(ctx, "/api/specialcares", map[string]string{
		"species":    petType.String(),
		"country":    c.config.Country,
		"languageId": c.config.LanguageID,
		"type":       "specialcare",
	})
	if err != nil {
		return nil, fmt.Errorf("failed to fetch special care taxonomy: %w", err)
	}

	var payload specialCaresResponse
	if err := json.Unmarshal(body, &payload); err != nil {
		return nil, fmt.Errorf("failed to decode special care response: %w", err)
	}
	if payload.Result == nil || len(payload.Result.SpecialCares) == 0 {
		return nil, fmt.Errorf("special care taxonomy: %w", ErrUnexpectedShape)
	}

	items := c.mapper.MapSpecialCares(payload.Result.SpecialCares[0].List, petType)
	log.Debugf("Fetched %d special care options for %s", len(items), petType)
	return items, nil
}

func (c *catalogClient) fetchJSON(ctx context.Context, path string, params map[string]string) ([]byte, error) {
	c.rl.Take()

	resp, err := c.httpClient.R().
		SetContext(ctx).
		SetQueryParams(params).
		Get(path)

	if err != nil {
		if ctx.Err() != nil {
			return nil, fmt.Errorf("request cancelled: %w", ctx.Err())
		}
		return nil, fmt.Errorf("failed to fetch URL: %w", err)
	}

	if resp.IsError() {
		return nil, fmt.Errorf("HTTP error: %d %s", resp.StatusCode(), resp.Status())
	}

	return []byte(resp.String()), nil
}
