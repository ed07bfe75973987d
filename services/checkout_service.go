package services

import (
	"fmt"
	"time"

	"github.com/ArrowAk07/Green-Chilli/entity"
	"github.com/ArrowAk07/Green-Chilli/repository"
	"gorm.io/gorm"
)

type CheckoutService struct {
	DB   *gorm.DB
	Repo *repository.OrderRepository
}

func NewCheckoutService(db *gorm.DB, repo *repository.OrderRepository) *CheckoutService {
	return &CheckoutService{DB: db, Repo: repo}
}

// Checkout persists the cart as one order: header plus one order_items row per
// cart line, all inside a single transaction. Any failure rolls the whole
// thing back and leaves the cart untouched so the user can retry; on success
// the caller clears the session.
//
// Lines resolve back to the catalog by the item id carried on the line. A
// line whose item has vanished fails the transaction rather than being
// silently dropped, so an order can never persist with missing lines.
func (s *CheckoutService) Checkout(sess *CartSession) (*entity.Order, []entity.OrderItem, error) {
	if sess.Len() == 0 {
		return nil, nil, ErrEmptyCart
	}

	totals := sess.ComputeTotals()
	lines := sess.Lines()

	order := entity.Order{
		OrderDate: time.Now(),
		Subtotal:  totals.Subtotal,
		Tax:       totals.Tax,
		Total:     totals.Total,
	}
	items := make([]entity.OrderItem, 0, len(lines))

	err := s.DB.Transaction(func(tx *gorm.DB) error {
		if err := s.Repo.CreateOrder(tx, &order); err != nil {
			return err
		}

		for _, ln := range lines {
			ok, err := s.Repo.FoodItemExists(tx, ln.ItemID)
			if err != nil {
				return err
			}
			if !ok {
				return fmt.Errorf("%w: id %d", ErrItemNotFound, ln.ItemID)
			}

			oi := entity.OrderItem{
				OrderID:    order.ID,
				FoodItemID: ln.ItemID,
				ItemName:   ln.Name,
				ItemPrice:  ln.UnitPrice,
			}
			if err := s.Repo.CreateOrderItem(tx, &oi); err != nil {
				return err
			}
			items = append(items, oi)
		}
		return nil
	})
	if err != nil {
		return nil, nil, err
	}
	return &order, items, nil
}

// Detail loads a committed order with its lines.
func (s *CheckoutService) Detail(orderID uint) (*entity.Order, []entity.OrderItem, error) {
	o, err := s.Repo.GetOrder(orderID)
	if err != nil {
		return nil, nil, err
	}
	items, err := s.Repo.GetOrderItems(o.ID)
	if err != nil {
		return nil, nil, err
	}
	return o, items, nil
}
