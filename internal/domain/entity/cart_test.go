package entity_test

import (
	"testing"

	"darkstore/internal/domain/entity"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCart_Add_MergesByProductAndSize(t *testing.T) {
	hoodie := &entity.Product{ID: uuid.New(), Name: "Худи STORE", Price: 4900, Sizes: []string{"M", "L"}}
	cart := &entity.Cart{Token: uuid.New()}

	cart.Add(hoodie, "M")
	cart.Add(hoodie, "M")
	cart.Add(hoodie, "L")

	require.Len(t, cart.Lines, 2)
	assert.Equal(t, 2, cart.Lines[0].Quantity)
	assert.Equal(t, "M", cart.Lines[0].Size)
	assert.Equal(t, 1, cart.Lines[1].Quantity)
	assert.Equal(t, "L", cart.Lines[1].Size)
	assert.Equal(t, 3, cart.ItemCount())
	assert.Equal(t, int64(4900*3), cart.Total())
}

func TestCart_Add_SnapshotsNameAndPrice(t *testing.T) {
	jacket := &entity.Product{ID: uuid.New(), Name: "Куртка DARK", Price: 4500}
	cart := &entity.Cart{Token: uuid.New()}

	cart.Add(jacket, "")
	jacket.Price = 9900
	jacket.Name = "Куртка DARK v2"

	assert.Equal(t, "Куртка DARK", cart.Lines[0].Name)
	assert.Equal(t, int64(4500), cart.Lines[0].Price)
}

func TestCart_SetQuantity(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Куртка DARK", Price: 4500, Sizes: []string{"S", "M"}}
	cart := &entity.Cart{Token: uuid.New()}
	cart.Add(product, "S")

	cart.SetQuantity(product.ID, "S", 5)

	assert.Equal(t, 5, cart.Lines[0].Quantity)
	assert.Equal(t, int64(4500*5), cart.Total())
}

func TestCart_SetQuantity_ZeroRemoves(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Куртка DARK", Price: 4500}
	cart := &entity.Cart{Token: uuid.New()}
	cart.Add(product, "")

	cart.SetQuantity(product.ID, "", 0)

	assert.Empty(t, cart.Lines)
	assert.True(t, cart.IsEmpty())
}

func TestCart_SetQuantity_NegativeRemoves(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Куртка DARK", Price: 4500}
	cart := &entity.Cart{Token: uuid.New()}
	cart.Add(product, "")

	cart.SetQuantity(product.ID, "", -3)

	assert.Empty(t, cart.Lines)
}

func TestCart_SetQuantity_AbsentLineIsNoop(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Куртка DARK", Price: 4500}
	cart := &entity.Cart{Token: uuid.New()}
	cart.Add(product, "")

	cart.SetQuantity(uuid.New(), "", 5)

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, 1, cart.Lines[0].Quantity)
}

func TestCart_Remove_MatchesSizeExactly(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Худи STORE", Price: 4900, Sizes: []string{"M", "L"}}
	cart := &entity.Cart{Token: uuid.New()}
	cart.Add(product, "M")
	cart.Add(product, "L")

	cart.Remove(product.ID, "M")

	require.Len(t, cart.Lines, 1)
	assert.Equal(t, "L", cart.Lines[0].Size)
}

func TestCart_Clear(t *testing.T) {
	product := &entity.Product{ID: uuid.New(), Name: "Худи STORE", Price: 4900}
	cart := &entity.Cart{Token: uuid.New()}
	cart.Add(product, "")
	cart.Add(product, "")

	cart.Clear()

	assert.True(t, cart.IsEmpty())
	assert.Equal(t, int64(0), cart.Total())
	assert.Equal(t, 0, cart.ItemCount())
}

func TestProduct_HasSize(t *testing.T) {
	product := &entity.Product{Sizes: []string{"S", "M", "L"}}

	assert.True(t, product.HasSize("M"))
	assert.False(t, product.HasSize("XXL"))
	assert.False(t, product.HasSize(""))
}
