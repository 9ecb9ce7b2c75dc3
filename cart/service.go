package cart

import (
	"errors"
	"strconv"
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"

	"github.com/OnurOzayyy/ecommerce/catalog"
	"github.com/OnurOzayyy/ecommerce/models"
)

var (
	// ErrInvalidQuantity is returned when a quantity input cannot be read
	// as an integer. No cart state changes in that case.
	ErrInvalidQuantity = errors.New("invalid quantity")

	// ErrMissingSession is returned when a cart lookup arrives without a
	// session identity.
	ErrMissingSession = errors.New("session id is required")
)

// ParseQuantity reads a raw quantity parameter. Anything that is not an
// integer is ErrInvalidQuantity; negative and zero values parse fine and are
// treated as removal requests downstream.
func ParseQuantity(raw string) (int, error) {
	qty, err := strconv.Atoi(raw)
	if err != nil {
		return 0, ErrInvalidQuantity
	}
	return qty, nil
}

// Service owns cart rows and their derived totals. Prices come from the
// catalog; the service snapshots them into line items at write time.
type Service struct {
	db      *gorm.DB
	catalog *catalog.Store
}

func NewService(db *gorm.DB, store *catalog.Store) *Service {
	return &Service{db: db, catalog: store}
}

// View is the read-only projection handed to display and AJAX callers.
type View struct {
	Items      []models.CartItem `json:"items"`
	Subtotal   decimal.Decimal   `json:"subtotal"`
	TotalItems int               `json:"total_items"`
}

// ResolveOrCreateCart returns the single cart bound to the given session,
// creating it lazily on first use. When an authenticated user id is supplied
// the cart is claimed for that user as a side effect.
func (s *Service) ResolveOrCreateCart(sessionID, userID string) (*models.Cart, error) {
	if sessionID == "" {
		return nil, ErrMissingSession
	}

	var cart models.Cart
	err := s.db.Where("session_id = ?", sessionID).First(&cart).Error
	if err != nil {
		if !errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, err
		}
		cart = models.Cart{SessionID: sessionID}
		if err := s.db.Create(&cart).Error; err != nil {
			return nil, err
		}
	}

	if userID != "" && cart.UserID != userID {
		cart.UserID = userID
		if err := s.db.Save(&cart).Error; err != nil {
			return nil, err
		}
	}
	return &cart, nil
}

// SetItemQuantity creates, updates, or deletes the single (cart, variation)
// row:
//
//   - quantity <= 0 removes any existing row (deleted=true, nil item);
//   - no existing row and quantity >= 1 creates one (created=true);
//   - otherwise the existing row's quantity is replaced.
//
// Every non-delete write stores LineItemTotal from the variation's current
// effective price, and every outcome leaves Cart.Subtotal equal to the sum
// of the remaining line totals. The item write and the subtotal update
// commit together or not at all.
func (s *Service) SetItemQuantity(cart *models.Cart, variationID uint, quantity int) (*models.CartItem, bool, bool, error) {
	variation, err := s.catalog.GetVariation(variationID)
	if err != nil {
		return nil, false, false, err
	}

	var (
		item    models.CartItem
		created bool
		deleted bool
	)

	err = s.db.Transaction(func(tx *gorm.DB) error {
		findErr := tx.Where("cart_id = ? AND variation_id = ?", cart.ID, variation.ID).First(&item).Error
		exists := findErr == nil
		if findErr != nil && !errors.Is(findErr, gorm.ErrRecordNotFound) {
			return findErr
		}

		if quantity <= 0 {
			deleted = true
			if exists {
				if err := tx.Delete(&item).Error; err != nil {
					return err
				}
			}
			return recomputeSubtotal(tx, cart)
		}

		if !exists {
			created = true
			item = models.CartItem{
				CartID:      cart.ID,
				VariationID: variation.ID,
			}
		}
		item.Quantity = quantity
		item.LineItemTotal = variation.EffectivePrice().Mul(decimal.NewFromInt(int64(quantity)))
		item.AddedAt = time.Now()
		if err := tx.Save(&item).Error; err != nil {
			return err
		}
		return recomputeSubtotal(tx, cart)
	})
	if err != nil {
		return nil, false, false, err
	}

	if deleted {
		return nil, created, true, nil
	}
	return &item, created, false, nil
}

// RemoveItem deletes the (cart, variation) row if present and recomputes the
// subtotal. Removing an absent item is a no-op, not an error.
func (s *Service) RemoveItem(cart *models.Cart, variationID uint) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ? AND variation_id = ?", cart.ID, variationID).
			Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return recomputeSubtotal(tx, cart)
	})
}

// ClearCart removes every item and zeroes the subtotal.
func (s *Service) ClearCart(cart *models.Cart) error {
	return s.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("cart_id = ?", cart.ID).Delete(&models.CartItem{}).Error; err != nil {
			return err
		}
		return recomputeSubtotal(tx, cart)
	})
}

// View loads the cart's current items (with their variations) and subtotal.
func (s *Service) View(cart *models.Cart) (*View, error) {
	var fresh models.Cart
	if err := s.db.Preload("Items.Variation").First(&fresh, cart.ID).Error; err != nil {
		return nil, err
	}
	return &View{
		Items:      fresh.Items,
		Subtotal:   fresh.Subtotal,
		TotalItems: len(fresh.Items),
	}, nil
}

// ItemCount returns the number of distinct item rows in the session's cart,
// 0 when the session has no cart yet.
func (s *Service) ItemCount(sessionID string) (int64, error) {
	if sessionID == "" {
		return 0, ErrMissingSession
	}
	var cart models.Cart
	if err := s.db.Where("session_id = ?", sessionID).First(&cart).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return 0, nil
		}
		return 0, err
	}
	var count int64
	err := s.db.Model(&models.CartItem{}).Where("cart_id = ?", cart.ID).Count(&count).Error
	return count, err
}

// recomputeSubtotal re-sums the cart's current line totals and saves the
// result. A full re-sum after every mutation stays correct regardless of
// mutation history; carts are small enough that O(items) per write is fine.
func recomputeSubtotal(tx *gorm.DB, cart *models.Cart) error {
	var items []models.CartItem
	if err := tx.Where("cart_id = ?", cart.ID).Find(&items).Error; err != nil {
		return err
	}
	subtotal := decimal.Zero
	for _, item := range items {
		subtotal = subtotal.Add(item.LineItemTotal)
	}
	cart.Subtotal = subtotal
	return tx.Model(&models.Cart{}).Where("id = ?", cart.ID).Update("subtotal", subtotal).Error
}
