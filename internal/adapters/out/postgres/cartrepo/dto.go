package cartrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/cart"
	"fulfillment/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
)

// CartDTO is the carts row. The unique index on customer_id is what enforces
// one open cart per customer.
type CartDTO struct {
	Code         string        `gorm:"type:varchar(64);primaryKey"`
	CustomerID   int64         `gorm:"not null;uniqueIndex:idx_carts_customer_id"`
	RestaurantID int64         `gorm:"not null;index"`
	Items        []CartItemDTO `gorm:"foreignKey:CartCode;references:Code;constraint:OnDelete:CASCADE"`
	CreatedAt    time.Time
	UpdatedAt    time.Time
}

func (CartDTO) TableName() string {
	return "carts"
}

type CartItemDTO struct {
	CartCode  string          `gorm:"type:varchar(64);primaryKey"`
	ItemName  string          `gorm:"type:varchar(255);primaryKey"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Position  int             `gorm:"not null"`
}

func (CartItemDTO) TableName() string {
	return "cart_items"
}

func itemsFromDomain(aggregate *cart.Cart) []CartItemDTO {
	items := aggregate.Items()
	dtos := make([]CartItemDTO, 0, len(items))
	for pos, item := range items {
		dtos = append(dtos, CartItemDTO{
			CartCode:  aggregate.Code(),
			ItemName:  item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Position:  pos,
		})
	}
	return dtos
}

func toDomain(dto CartDTO) (*cart.Cart, error) {
	items := make([]*cart.LineItem, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := cart.NewLineItem(itemDTO.ItemName, itemDTO.UnitPrice, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	return cart.RestoreCart(kernel.CustomerID(dto.CustomerID), kernel.RestaurantID(dto.RestaurantID), items)
}
