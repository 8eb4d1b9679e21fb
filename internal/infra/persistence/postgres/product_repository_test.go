package postgres

import (
	"testing"

	"darkstore/internal/domain/entity"
	"darkstore/internal/infra/persistence/model"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFromProductDomain_ExplicitOutOfStockSurvivesInsert(t *testing.T) {
	product := &entity.Product{
		ID:      uuid.New(),
		Name:    "Куртка DARK",
		Price:   4500,
		Sizes:   []string{"S", "M"},
		InStock: false,
	}

	productM, err := fromProductDomain(product)

	require.NoError(t, err)
	// A nil or absent flag would let the column default (true) win on INSERT.
	require.NotNil(t, productM.InStock)
	assert.False(t, *productM.InStock, "product created with InStock=false must stay out of stock")
}

func TestProductDomainRoundTrip_PreservesInStock(t *testing.T) {
	for _, inStock := range []bool{true, false} {
		product := &entity.Product{
			ID:      uuid.New(),
			Name:    "Худи STORE",
			Price:   4900,
			InStock: inStock,
		}

		productM, err := fromProductDomain(product)
		require.NoError(t, err)

		got := toProductDomain(productM)
		assert.Equal(t, inStock, got.InStock)
	}
}

func TestToProductDomain_MissingFlagReadsAsInStock(t *testing.T) {
	got := toProductDomain(&model.ProductModel{ID: uuid.New(), Name: "Куртка DARK", Price: 4500})

	assert.True(t, got.InStock)
}
