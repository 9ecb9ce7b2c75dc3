package catalog

import (
	"errors"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/models"
)

var ErrVariationNotFound = errors.New("variation not found")

// Store is the read-mostly catalog the cart prices against.
type Store struct {
	db *gorm.DB
}

func NewStore(db *gorm.DB) *Store {
	return &Store{db: db}
}

// GetVariation fetches a variation by id. Returns ErrVariationNotFound when
// no such row exists.
func (s *Store) GetVariation(id uint) (*models.Variation, error) {
	var variation models.Variation
	if err := s.db.First(&variation, id).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrVariationNotFound
		}
		return nil, err
	}
	return &variation, nil
}

// EnsureDefaultVariation materializes a "Default" variation mirroring the
// product's own price when the product has none. Products that already carry
// variations are never touched, so repeated calls are no-ops.
func (s *Store) EnsureDefaultVariation(product *models.Product) error {
	var count int64
	if err := s.db.Model(&models.Variation{}).Where("product_id = ?", product.ID).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}
	defaultVar := models.Variation{
		ProductID: product.ID,
		Title:     "Default",
		Price:     product.Price,
		Active:    true,
	}
	return s.db.Create(&defaultVar).Error
}

// CreateProduct persists a new product and materializes its default
// variation.
func (s *Store) CreateProduct(product *models.Product) error {
	if err := s.db.Create(product).Error; err != nil {
		return err
	}
	return s.EnsureDefaultVariation(product)
}

// SaveProduct persists changes to an existing product, materializing a
// default variation if the product somehow still has none.
func (s *Store) SaveProduct(product *models.Product) error {
	if err := s.db.Save(product).Error; err != nil {
		return err
	}
	return s.EnsureDefaultVariation(product)
}

// ListActive returns active products only. Callers that want everything
// (admin screens) query the DB directly; there is no implicitly-filtered
// "all" here.
func (s *Store) ListActive() ([]models.Product, error) {
	var products []models.Product
	err := s.db.Preload("Categories").
		Where("active = ?", true).
		Order("title desc").
		Find(&products).Error
	return products, err
}

// SearchActive filters active products whose title or description contains
// the query, or whose price equals it when the query parses as a number.
func (s *Store) SearchActive(query string) ([]models.Product, error) {
	likePattern := "%" + query + "%"
	q := s.db.Preload("Categories").
		Where("active = ?", true)

	if price, err := decimal.NewFromString(query); err == nil {
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?) OR price = ?",
			likePattern, likePattern, price)
	} else {
		q = q.Where("LOWER(title) LIKE LOWER(?) OR LOWER(description) LIKE LOWER(?)",
			likePattern, likePattern)
	}

	var products []models.Product
	err := q.Order("title desc").Find(&products).Error
	return products, err
}

// Related returns active products sharing at least one category with the
// given product, or sharing its default category. The product itself is
// excluded and duplicates are collapsed.
func (s *Store) Related(product *models.Product) ([]models.Product, error) {
	var categoryIDs []uint
	if err := s.db.Table("product_categories").
		Where("product_id = ?", product.ID).
		Pluck("category_id", &categoryIDs).Error; err != nil {
		return nil, err
	}

	q := s.db.Model(&models.Product{}).
		Distinct("products.*").
		Joins("LEFT JOIN product_categories pc ON pc.product_id = products.id").
		Where("products.active = ?", true).
		Where("products.id <> ?", product.ID)

	switch {
	case len(categoryIDs) > 0 && product.DefaultCategoryID != nil:
		q = q.Where("pc.category_id IN ? OR products.default_category_id = ?", categoryIDs, *product.DefaultCategoryID)
	case len(categoryIDs) > 0:
		q = q.Where("pc.category_id IN ?", categoryIDs)
	case product.DefaultCategoryID != nil:
		q = q.Where("products.default_category_id = ?", *product.DefaultCategoryID)
	default:
		return []models.Product{}, nil
	}

	var products []models.Product
	err := q.Find(&products).Error
	return products, err
}

// ListCategories returns every category, active or not.
func (s *Store) ListCategories() ([]models.Category, error) {
	var categories []models.Category
	err := s.db.Order("title").Find(&categories).Error
	return categories, err
}

// GetCategoryBySlug fetches one category by its unique slug.
func (s *Store) GetCategoryBySlug(slug string) (*models.Category, error) {
	var category models.Category
	if err := s.db.Where("slug = ?", slug).First(&category).Error; err != nil {
		return nil, err
	}
	return &category, nil
}

// CategoryProducts returns the distinct union of products assigned to the
// category and products that name it as their default category.
func (s *Store) CategoryProducts(category *models.Category) ([]models.Product, error) {
	var products []models.Product
	err := s.db.Model(&models.Product{}).
		Distinct("products.*").
		Joins("LEFT JOIN product_categories pc ON pc.product_id = products.id").
		Where("pc.category_id = ? OR products.default_category_id = ?", category.ID, category.ID).
		Find(&products).Error
	return products, err
}
