package placedorderrepo

import (
	"context"
	"errors"

	"ordertaking/internal/core/domain/model/kernel"
	"ordertaking/internal/core/domain/model/order"
	"ordertaking/internal/pkg/errs"

	"gorm.io/gorm"
)

// GormPlacedOrderRepository implements PlacedOrderRepository using GORM.
type GormPlacedOrderRepository struct {
	db *gorm.DB
}

// NewGormPlacedOrderRepository creates a new GORM placed-order repository.
func NewGormPlacedOrderRepository(db *gorm.DB) *GormPlacedOrderRepository {
	return &GormPlacedOrderRepository{
		db: db,
	}
}

// Add saves a placed order and its lines. A duplicate order id violates the
// primary key and surfaces as a database error.
func (r *GormPlacedOrderRepository) Add(ctx context.Context, priced order.PricedOrder) error {
	if err := priced.Validate(); err != nil {
		return err
	}

	dto, lineDTOs := fromDomain(priced)
	if err := r.db.WithContext(ctx).Create(&dto).Error; err != nil {
		return err
	}

	if len(lineDTOs) > 0 {
		if err := r.db.WithContext(ctx).Create(&lineDTOs).Error; err != nil {
			return err
		}
	}

	return nil
}

// Get retrieves a placed order by id, lines in submission order.
func (r *GormPlacedOrderRepository) Get(ctx context.Context, id kernel.OrderID) (order.PricedOrder, error) {
	if err := id.Validate(); err != nil {
		return order.PricedOrder{}, err
	}

	var dto PlacedOrderDTO
	if err := r.db.WithContext(ctx).First(&dto, "order_id = ?", id.Value()).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return order.PricedOrder{}, errs.NewObjectNotFoundError("order", id.Value())
		}
		return order.PricedOrder{}, err
	}

	var lineDTOs []PlacedOrderLineDTO
	err := r.db.WithContext(ctx).
		Order("line_no").
		Find(&lineDTOs, "order_id = ?", id.Value()).Error
	if err != nil {
		return order.PricedOrder{}, err
	}

	return toDomain(dto, lineDTOs)
}
