package catalog

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"

	"github.com/OnurOzayyy/ecommerce/models"
)

// setupTestDB creates an in-memory SQLite database for testing.
func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}

	if err := db.AutoMigrate(&models.Product{}, &models.Variation{}, &models.Category{}); err != nil {
		t.Fatalf("failed to migrate test database: %v", err)
	}

	return db
}

func dec(t *testing.T, s string) decimal.Decimal {
	t.Helper()
	d, err := decimal.NewFromString(s)
	if err != nil {
		t.Fatalf("bad decimal literal %q: %v", s, err)
	}
	return d
}

func TestVariation_EffectivePrice(t *testing.T) {
	t.Run("no sale price", func(t *testing.T) {
		v := models.Variation{Price: decimal.NewFromInt(40)}
		if !v.EffectivePrice().Equal(decimal.NewFromInt(40)) {
			t.Errorf("expected 40, got %s", v.EffectivePrice())
		}
	})

	t.Run("sale price wins", func(t *testing.T) {
		sale := decimal.NewFromInt(7)
		v := models.Variation{Price: decimal.NewFromInt(10), SalePrice: &sale}
		if !v.EffectivePrice().Equal(sale) {
			t.Errorf("expected 7, got %s", v.EffectivePrice())
		}
	})
}

func TestStore_EnsureDefaultVariation(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	t.Run("materializes default on first save", func(t *testing.T) {
		product := models.Product{Title: "Lamp", Price: decimal.NewFromInt(40), Active: true}
		if err := store.CreateProduct(&product); err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}

		var variations []models.Variation
		if err := db.Where("product_id = ?", product.ID).Find(&variations).Error; err != nil {
			t.Fatalf("failed to load variations: %v", err)
		}
		if len(variations) != 1 {
			t.Fatalf("expected 1 variation, got %d", len(variations))
		}
		if variations[0].Title != "Default" {
			t.Errorf("expected title %q, got %q", "Default", variations[0].Title)
		}
		if !variations[0].Price.Equal(product.Price) {
			t.Errorf("expected price %s, got %s", product.Price, variations[0].Price)
		}
	})

	t.Run("resave does not duplicate", func(t *testing.T) {
		product := models.Product{Title: "Chair", Price: decimal.NewFromInt(25), Active: true}
		if err := store.CreateProduct(&product); err != nil {
			t.Fatalf("CreateProduct() error = %v", err)
		}
		if err := store.SaveProduct(&product); err != nil {
			t.Fatalf("SaveProduct() error = %v", err)
		}

		var count int64
		db.Model(&models.Variation{}).Where("product_id = ?", product.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 variation after resave, got %d", count)
		}
	})

	t.Run("existing variations untouched", func(t *testing.T) {
		product := models.Product{Title: "Desk", Price: decimal.NewFromInt(100), Active: true}
		if err := db.Create(&product).Error; err != nil {
			t.Fatalf("failed to create product: %v", err)
		}
		variation := models.Variation{ProductID: product.ID, Title: "Walnut", Price: decimal.NewFromInt(120), Active: true}
		if err := db.Create(&variation).Error; err != nil {
			t.Fatalf("failed to create variation: %v", err)
		}

		if err := store.EnsureDefaultVariation(&product); err != nil {
			t.Fatalf("EnsureDefaultVariation() error = %v", err)
		}

		var count int64
		db.Model(&models.Variation{}).Where("product_id = ?", product.ID).Count(&count)
		if count != 1 {
			t.Errorf("expected 1 variation, got %d", count)
		}
	})
}

func TestStore_GetVariation(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	product := models.Product{Title: "Sofa", Price: decimal.NewFromInt(300), Active: true}
	if err := store.CreateProduct(&product); err != nil {
		t.Fatalf("CreateProduct() error = %v", err)
	}
	var variation models.Variation
	db.Where("product_id = ?", product.ID).First(&variation)

	t.Run("existing variation", func(t *testing.T) {
		found, err := store.GetVariation(variation.ID)
		if err != nil {
			t.Fatalf("GetVariation() error = %v", err)
		}
		if found.ID != variation.ID {
			t.Errorf("expected ID %d, got %d", variation.ID, found.ID)
		}
	})

	t.Run("missing variation", func(t *testing.T) {
		_, err := store.GetVariation(99999)
		if !errors.Is(err, ErrVariationNotFound) {
			t.Errorf("expected ErrVariationNotFound, got %v", err)
		}
	})
}

func TestStore_ListActive(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	active := models.Product{Title: "Visible", Price: decimal.NewFromInt(10), Active: true}
	inactive := models.Product{Title: "Hidden", Price: decimal.NewFromInt(10), Active: false}
	if err := db.Create(&active).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}
	if err := db.Create(&inactive).Error; err != nil {
		t.Fatalf("failed to create product: %v", err)
	}

	products, err := store.ListActive()
	if err != nil {
		t.Fatalf("ListActive() error = %v", err)
	}
	if len(products) != 1 {
		t.Fatalf("expected 1 product, got %d", len(products))
	}
	if products[0].Title != "Visible" {
		t.Errorf("expected %q, got %q", "Visible", products[0].Title)
	}
}

func TestStore_SearchActive(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	lamp := models.Product{Title: "Table Lamp", Description: "Warm bedside light", Price: dec(t, "40.00"), Active: true}
	rug := models.Product{Title: "Rug", Description: "Wool, hand woven", Price: dec(t, "85.50"), Active: true}
	hidden := models.Product{Title: "Lamp Shade", Price: dec(t, "12.00"), Active: false}
	for _, p := range []*models.Product{&lamp, &rug, &hidden} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to create product: %v", err)
		}
	}

	t.Run("title match is case-insensitive", func(t *testing.T) {
		products, err := store.SearchActive("lamp")
		if err != nil {
			t.Fatalf("SearchActive() error = %v", err)
		}
		if len(products) != 1 {
			t.Fatalf("expected 1 product, got %d", len(products))
		}
		if products[0].Title != "Table Lamp" {
			t.Errorf("expected %q, got %q", "Table Lamp", products[0].Title)
		}
	})

	t.Run("description match", func(t *testing.T) {
		products, err := store.SearchActive("woven")
		if err != nil {
			t.Fatalf("SearchActive() error = %v", err)
		}
		if len(products) != 1 || products[0].Title != "Rug" {
			t.Fatalf("expected Rug, got %v", products)
		}
	})

	t.Run("numeric query matches price", func(t *testing.T) {
		products, err := store.SearchActive("85.50")
		if err != nil {
			t.Fatalf("SearchActive() error = %v", err)
		}
		if len(products) != 1 || products[0].Title != "Rug" {
			t.Fatalf("expected Rug by price, got %v", products)
		}
	})

	t.Run("inactive products stay hidden", func(t *testing.T) {
		products, err := store.SearchActive("shade")
		if err != nil {
			t.Fatalf("SearchActive() error = %v", err)
		}
		if len(products) != 0 {
			t.Errorf("expected no products, got %d", len(products))
		}
	})
}

func TestStore_Related(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	living := models.Category{Title: "Living Room", Slug: "living-room", Active: true}
	office := models.Category{Title: "Office", Slug: "office", Active: true}
	if err := db.Create(&living).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}
	if err := db.Create(&office).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	lamp := models.Product{
		Title: "Lamp", Price: decimal.NewFromInt(40), Active: true,
		Categories: []models.Category{living}, DefaultCategoryID: &office.ID,
	}
	sofa := models.Product{
		Title: "Sofa", Price: decimal.NewFromInt(300), Active: true,
		Categories: []models.Category{living},
	}
	desk := models.Product{
		Title: "Desk", Price: decimal.NewFromInt(100), Active: true,
		DefaultCategoryID: &office.ID,
	}
	unrelated := models.Product{Title: "Kettle", Price: decimal.NewFromInt(20), Active: true}
	retired := models.Product{
		Title: "Old Sofa", Price: decimal.NewFromInt(50), Active: false,
		Categories: []models.Category{living},
	}
	for _, p := range []*models.Product{&lamp, &sofa, &desk, &unrelated, &retired} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to create product: %v", err)
		}
	}

	related, err := store.Related(&lamp)
	if err != nil {
		t.Fatalf("Related() error = %v", err)
	}

	titles := map[string]bool{}
	for _, p := range related {
		if titles[p.Title] {
			t.Errorf("duplicate product %q in related set", p.Title)
		}
		titles[p.Title] = true
	}

	if len(related) != 2 {
		t.Fatalf("expected 2 related products, got %d (%v)", len(related), titles)
	}
	if !titles["Sofa"] {
		t.Error("expected Sofa (shared category) in related set")
	}
	if !titles["Desk"] {
		t.Error("expected Desk (shared default category) in related set")
	}
	if titles["Lamp"] {
		t.Error("related set must exclude the product itself")
	}
}

func TestStore_CategoryProducts(t *testing.T) {
	db := setupTestDB(t)
	store := NewStore(db)

	bedroom := models.Category{Title: "Bedroom", Slug: "bedroom", Active: true}
	if err := db.Create(&bedroom).Error; err != nil {
		t.Fatalf("failed to create category: %v", err)
	}

	// Assigned to the category AND defaulting to it: must appear once.
	bed := models.Product{
		Title: "Bed", Price: decimal.NewFromInt(500), Active: true,
		Categories: []models.Category{bedroom}, DefaultCategoryID: &bedroom.ID,
	}
	nightstand := models.Product{
		Title: "Nightstand", Price: decimal.NewFromInt(60), Active: true,
		DefaultCategoryID: &bedroom.ID,
	}
	for _, p := range []*models.Product{&bed, &nightstand} {
		if err := db.Create(p).Error; err != nil {
			t.Fatalf("failed to create product: %v", err)
		}
	}

	category, err := store.GetCategoryBySlug("bedroom")
	if err != nil {
		t.Fatalf("GetCategoryBySlug() error = %v", err)
	}

	products, err := store.CategoryProducts(category)
	if err != nil {
		t.Fatalf("CategoryProducts() error = %v", err)
	}
	if len(products) != 2 {
		t.Fatalf("expected 2 products, got %d", len(products))
	}
}
