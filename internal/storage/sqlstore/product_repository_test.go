package sqlstore_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/vladislavdragonenkov/storefront/internal/domain"
	"github.com/vladislavdragonenkov/storefront/internal/storage/sqlstore"
)

func makeProduct(t *testing.T, id string, price int64) *domain.Product {
	t.Helper()
	product, err := domain.NewProduct(id, "Product "+id, price)
	require.NoError(t, err, "make product %s", id)
	return product
}

func TestProductRepositoryCreateFindUpdate(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewProductRepository(store)

	product := makeProduct(t, "prod-1", 100)
	require.NoError(t, repo.Create(product))

	found, err := repo.Find("prod-1")
	require.NoError(t, err)
	require.Equal(t, int64(100), found.PriceMinor())

	require.NoError(t, product.ChangePrice(250))
	require.NoError(t, repo.Update(product))

	found, err = repo.Find("prod-1")
	require.NoError(t, err)
	require.Equal(t, int64(250), found.PriceMinor())
}

func TestProductRepositoryErrors(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewProductRepository(store)

	_, err := repo.Find("prod-404")
	require.ErrorIs(t, err, domain.ErrProductNotFound)

	require.ErrorIs(t, repo.Update(makeProduct(t, "prod-404", 10)), domain.ErrProductNotFound)

	product := makeProduct(t, "prod-1", 100)
	require.NoError(t, repo.Create(product))
	require.ErrorIs(t, repo.Create(product), domain.ErrProductExists)
}

func TestProductRepositoryFindAll(t *testing.T) {
	store := newTestStore(t)
	repo := sqlstore.NewProductRepository(store)

	products, err := repo.FindAll()
	require.NoError(t, err)
	require.Empty(t, products)

	require.NoError(t, repo.Create(makeProduct(t, "prod-2", 20)))
	require.NoError(t, repo.Create(makeProduct(t, "prod-1", 10)))

	products, err = repo.FindAll()
	require.NoError(t, err)
	require.Len(t, products, 2)
	require.Equal(t, "prod-1", products[0].ID())
	require.Equal(t, "prod-2", products[1].ID())
}
