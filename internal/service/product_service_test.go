package service

import (
	"testing"

	"go-perfume-crm/internal/model"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newProductTestService(store *fakeStore) ProductService {
	return NewProductService(&fakeProductRepo{store: store}, &fakeSupplierRepo{store: store})
}

func strPtr(s string) *string           { return &s }
func intPtr(i int) *int                 { return &i }
func decPtr(s string) *decimal.Decimal  { d := decimal.RequireFromString(s); return &d }
func tierPtr(t model.ProductTier) *model.ProductTier { return &t }

func TestProductService_Create(t *testing.T) {
	t.Run("success", func(t *testing.T) {
		store := newFakeStore()
		supplierID := store.addSupplier(testOwner)
		svc := newProductTestService(store)

		product, err := svc.Create(&CreateProductRequest{
			Name:          "Nuit Ambrée 50ml",
			Brand:         "Ambrette",
			Price:         price("129.90"),
			Tier:          model.TierPremium,
			ExpiryDate:    strPtr("2028-06-30"),
			StockQuantity: 12,
			SupplierID:    supplierID,
		}, testOwner)

		require.NoError(t, err)
		assert.Equal(t, testOwner, product.CreatedBy)
		assert.True(t, product.Price.Equal(price("129.90")))
		require.NotNil(t, product.ExpiryDate)
		assert.Equal(t, "2028-06-30", product.ExpiryDate.Format("2006-01-02"))
	})

	t.Run("missing required fields", func(t *testing.T) {
		store := newFakeStore()
		supplierID := store.addSupplier(testOwner)
		svc := newProductTestService(store)

		_, err := svc.Create(&CreateProductRequest{
			Brand:      "Ambrette",
			Tier:       model.TierBasic,
			SupplierID: supplierID,
		}, testOwner)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown tier", func(t *testing.T) {
		store := newFakeStore()
		supplierID := store.addSupplier(testOwner)
		svc := newProductTestService(store)

		_, err := svc.Create(&CreateProductRequest{
			Name:       "Nuit Ambrée",
			Brand:      "Ambrette",
			Tier:       model.ProductTier("luxury"),
			SupplierID: supplierID,
		}, testOwner)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("negative price", func(t *testing.T) {
		store := newFakeStore()
		supplierID := store.addSupplier(testOwner)
		svc := newProductTestService(store)

		_, err := svc.Create(&CreateProductRequest{
			Name:       "Nuit Ambrée",
			Brand:      "Ambrette",
			Price:      price("-1.00"),
			Tier:       model.TierBasic,
			SupplierID: supplierID,
		}, testOwner)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("malformed expiry date", func(t *testing.T) {
		store := newFakeStore()
		supplierID := store.addSupplier(testOwner)
		svc := newProductTestService(store)

		_, err := svc.Create(&CreateProductRequest{
			Name:       "Nuit Ambrée",
			Brand:      "Ambrette",
			Tier:       model.TierBasic,
			ExpiryDate: strPtr("30/06/2028"),
			SupplierID: supplierID,
		}, testOwner)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("unknown supplier", func(t *testing.T) {
		store := newFakeStore()
		svc := newProductTestService(store)

		_, err := svc.Create(&CreateProductRequest{
			Name:       "Nuit Ambrée",
			Brand:      "Ambrette",
			Tier:       model.TierBasic,
			SupplierID: uuid.New(),
		}, testOwner)
		assert.ErrorIs(t, err, ErrSupplierNotFound)
	})

	t.Run("another owner's supplier is invisible", func(t *testing.T) {
		store := newFakeStore()
		theirSupplier := store.addSupplier("owner-2")
		svc := newProductTestService(store)

		_, err := svc.Create(&CreateProductRequest{
			Name:       "Nuit Ambrée",
			Brand:      "Ambrette",
			Tier:       model.TierBasic,
			SupplierID: theirSupplier,
		}, testOwner)
		assert.ErrorIs(t, err, ErrSupplierNotFound)
	})
}

func TestProductService_Update(t *testing.T) {
	setup := func(t *testing.T) (*fakeStore, ProductService, uuid.UUID) {
		store := newFakeStore()
		supplierID := store.addSupplier(testOwner)
		svc := newProductTestService(store)
		product, err := svc.Create(&CreateProductRequest{
			Name:          "Nuit Ambrée 50ml",
			Description:   "amber, vanilla",
			Brand:         "Ambrette",
			Price:         price("129.90"),
			Tier:          model.TierPremium,
			StockQuantity: 12,
			SupplierID:    supplierID,
		}, testOwner)
		require.NoError(t, err)
		return store, svc, product.ID
	}

	t.Run("patch merges only provided fields", func(t *testing.T) {
		_, svc, id := setup(t)

		updated, err := svc.Update(id, &UpdateProductRequest{
			Price: decPtr("119.00"),
			Tier:  tierPtr(model.TierMedium),
		}, testOwner)

		require.NoError(t, err)
		assert.True(t, updated.Price.Equal(price("119.00")))
		assert.Equal(t, model.TierMedium, updated.Tier)
		// untouched fields survive
		assert.Equal(t, "Nuit Ambrée 50ml", updated.Name)
		assert.Equal(t, "amber, vanilla", updated.Description)
		assert.Equal(t, 12, updated.StockQuantity)
	})

	t.Run("explicit zero values apply", func(t *testing.T) {
		_, svc, id := setup(t)

		updated, err := svc.Update(id, &UpdateProductRequest{
			Description:   strPtr(""),
			StockQuantity: intPtr(0),
		}, testOwner)

		require.NoError(t, err)
		assert.Equal(t, "", updated.Description)
		assert.Equal(t, 0, updated.StockQuantity)
	})

	t.Run("empty expiry date clears it", func(t *testing.T) {
		_, svc, id := setup(t)

		updated, err := svc.Update(id, &UpdateProductRequest{ExpiryDate: strPtr("2027-01-15")}, testOwner)
		require.NoError(t, err)
		require.NotNil(t, updated.ExpiryDate)

		updated, err = svc.Update(id, &UpdateProductRequest{ExpiryDate: strPtr("")}, testOwner)
		require.NoError(t, err)
		assert.Nil(t, updated.ExpiryDate)
	})

	t.Run("negative stock rejected", func(t *testing.T) {
		_, svc, id := setup(t)
		_, err := svc.Update(id, &UpdateProductRequest{StockQuantity: intPtr(-1)}, testOwner)
		assert.ErrorIs(t, err, ErrValidation)
	})

	t.Run("negative price rejected", func(t *testing.T) {
		_, svc, id := setup(t)
		_, err := svc.Update(id, &UpdateProductRequest{Price: decPtr("-0.01")}, testOwner)
		assert.ErrorIs(t, err, ErrInvalidPrice)
	})

	t.Run("reassigning to unknown supplier rejected", func(t *testing.T) {
		_, svc, id := setup(t)
		bad := uuid.New()
		_, err := svc.Update(id, &UpdateProductRequest{SupplierID: &bad}, testOwner)
		assert.ErrorIs(t, err, ErrSupplierNotFound)
	})

	t.Run("unknown product", func(t *testing.T) {
		_, svc, _ := setup(t)
		_, err := svc.Update(uuid.New(), &UpdateProductRequest{Name: strPtr("x")}, testOwner)
		assert.ErrorIs(t, err, ErrProductNotFound)
	})

	t.Run("cross-owner update looks like not found", func(t *testing.T) {
		_, svc, id := setup(t)
		_, err := svc.Update(id, &UpdateProductRequest{Name: strPtr("x")}, "owner-2")
		assert.ErrorIs(t, err, ErrProductNotFound)
	})
}

func TestProductService_Delete(t *testing.T) {
	store := newFakeStore()
	productID := store.addProduct(testOwner, price("10.00"), 3)
	svc := newProductTestService(store)

	require.NoError(t, svc.Delete(productID, testOwner))
	_, err := svc.GetByID(productID, testOwner)
	assert.ErrorIs(t, err, ErrProductNotFound)

	assert.ErrorIs(t, svc.Delete(productID, testOwner), ErrProductNotFound)
}
