package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"net/url"
	"sync/atomic"
	"testing"

	"petfood/finder/internal/config"
	"petfood/finder/internal/domain"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testConfig(baseURL string) config.CatalogConfig {
	return config.CatalogConfig{
		BaseURL:    baseURL,
		Timeout:    5,
		Username:   "apps",
		Password:   "secret",
		Country:    "ru",
		LanguageID: "1",
		ProductID:  "0",
	}
}

const productsPayload = `{
	"result": {
		"products": {
			"k1": {
				"id": 101,
				"name": "Medium Adult",
				"description": "For medium breed dogs",
				"image": "medium-adult.png",
				"petType": "dog",
				"lifeStages": {"0": "adult"},
				"forPregnant": false,
				"forLactation": false,
				"benefits": "digestion; coat,immunity\njoints",
				"specialCares": {"a": {"id": "1", "name": "Low Fat"}}
			},
			"k2": {
				"id": "102",
				"name": "Kitten Sterilised",
				"imageUrl": "kitten.png",
				"type": "cat",
				"lifeStages": {"0": "puppy-kitten"},
				"forPregnant": true,
				"forLactation": true,
				"benefits": ["urinary", "growth"],
				"specialCares": [{"id": "7", "name": "Sterilised"}]
			}
		}
	}
}`

func TestFetchProducts(t *testing.T) {
	var gotAuth atomic.Value
	var gotQuery atomic.Value

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/products", r.URL.Path)
		user, pass, _ := r.BasicAuth()
		gotAuth.Store(user + ":" + pass)
		gotQuery.Store(r.URL.Query())
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(productsPayload))
	}))
	defer srv.Close()

	c := NewCatalogClient(testConfig(srv.URL))

	products, err := c.FetchProducts(context.Background(), domain.FoodTypeDry)
	require.NoError(t, err)
	require.Len(t, products, 2)

	t.Run("request carries auth and fixed parameters", func(t *testing.T) {
		assert.Equal(t, "apps:secret", gotAuth.Load())

		query := gotQuery.Load().(url.Values)
		assert.Equal(t, []string{"ru"}, query["country"])
		assert.Equal(t, []string{"1"}, query["languageId"])
		assert.Equal(t, []string{"0"}, query["productId"])
		assert.Equal(t, []string{"dry"}, query["productType"])
		assert.Equal(t, []string{""}, query["type"])
		assert.Equal(t, []string{"true"}, query["appsAndEshop"])
	})

	// Results ordered by catalog key.
	first, second := products[0], products[1]

	t.Run("numeric id and alternate fields resolved", func(t *testing.T) {
		assert.Equal(t, "101", first.ID)
		assert.Equal(t, "Medium Adult", first.Name)
		assert.Equal(t, "medium-adult.png", first.ImageURL)
		assert.Equal(t, domain.PetTypeDog, first.PetType)
		assert.Equal(t, "adult", first.LifeStage)
		assert.Equal(t, []string{"digestion", "coat", "immunity"}, first.Benefits.Top3())
		assert.Equal(t, []string{"1"}, first.SpecialCares.IDs())
	})

	t.Run("legacy type field and array shapes resolved", func(t *testing.T) {
		assert.Equal(t, "102", second.ID)
		assert.Equal(t, "kitten.png", second.ImageURL)
		assert.Equal(t, domain.PetTypeCat, second.PetType)
		assert.Equal(t, "puppy-kitten", second.LifeStage)
		assert.True(t, second.ForPregnant)
		assert.True(t, second.ForLactation)
		assert.Equal(t, []string{"7"}, second.SpecialCares.IDs())
	})

	t.Run("product type comes from the request", func(t *testing.T) {
		assert.Equal(t, domain.FoodTypeDry, first.ProductType)
		assert.Equal(t, domain.FoodTypeDry, second.ProductType)
	})
}

func TestFetchProducts_EmptyFoodTypeSkipsRemoteCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewCatalogClient(testConfig(srv.URL))

	products, err := c.FetchProducts(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, products)
	assert.Zero(t, calls.Load())
}

func TestFetchProducts_Failures(t *testing.T) {
	t.Run("http error status", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.WriteHeader(http.StatusBadGateway)
		}))
		defer srv.Close()

		c := NewCatalogClient(testConfig(srv.URL))
		_, err := c.FetchProducts(context.Background(), domain.FoodTypeWet)
		assert.Error(t, err)
	})

	t.Run("malformed body", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{not json`))
		}))
		defer srv.Close()

		c := NewCatalogClient(testConfig(srv.URL))
		_, err := c.FetchProducts(context.Background(), domain.FoodTypeWet)
		assert.Error(t, err)
	})

	t.Run("missing result.products path", func(t *testing.T) {
		srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Write([]byte(`{"result": {}}`))
		}))
		defer srv.Close()

		c := NewCatalogClient(testConfig(srv.URL))
		_, err := c.FetchProducts(context.Background(), domain.FoodTypeWet)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrUnexpectedShape)
	})
}

const specialCaresPayload = `{
	"result": {
		"specialCares": [
			{
				"list": [
					{"dogSpecialCareId": "1", "dogSpecialCareName": "Low Fat"},
					{"dogSpecialCareId": "2", "dogSpecialCareName": "Renal"},
					{"catSpecialCareId": "9", "catSpecialCareName": "Hairball"}
				]
			}
		]
	}
}`

func TestFetchSpecialCares(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "/api/specialcares", r.URL.Path)
		assert.Equal(t, "dog", r.URL.Query().Get("species"))
		assert.Equal(t, "specialcare", r.URL.Query().Get("type"))
		w.Write([]byte(specialCaresPayload))
	}))
	defer srv.Close()

	c := NewCatalogClient(testConfig(srv.URL))

	items, err := c.FetchSpecialCares(context.Background(), domain.PetTypeDog)
	require.NoError(t, err)

	// The cat-scoped record has no dog fields and is skipped.
	assert.Equal(t, []domain.SpecialCareItem{
		{ID: "1", Name: "Low Fat"},
		{ID: "2", Name: "Renal"},
	}, items)
}

func TestFetchSpecialCares_EmptyPetTypeSkipsRemoteCall(t *testing.T) {
	var calls atomic.Int32
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		calls.Add(1)
	}))
	defer srv.Close()

	c := NewCatalogClient(testConfig(srv.URL))

	items, err := c.FetchSpecialCares(context.Background(), "")
	require.NoError(t, err)
	assert.Empty(t, items)
	assert.Zero(t, calls.Load())
}

func TestFetchSpecialCares_MissingShape(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"result": {"specialCares": []}}`))
	}))
	defer srv.Close()

	c := NewCatalogClient(testConfig(srv.URL))
	_, err := c.FetchSpecialCares(context.Background(), domain.PetTypeCat)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrUnexpectedShape)
}
