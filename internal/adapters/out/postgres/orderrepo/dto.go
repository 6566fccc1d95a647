package orderrepo

import (
	"time"

	"fulfillment/internal/core/domain/model/kernel"
	"fulfillment/internal/core/domain/model/order"

	"github.com/shopspring/decimal"
)

type OrderDTO struct {
	Code            string          `gorm:"type:varchar(96);primaryKey"`
	CustomerID      int64           `gorm:"not null;index"`
	RestaurantID    int64           `gorm:"not null;index:idx_orders_restaurant_status"`
	Status          int             `gorm:"type:smallint;not null;index:idx_orders_restaurant_status"`
	Recipient       string          `gorm:"type:varchar(255);not null"`
	Phone           string          `gorm:"type:varchar(32);not null"`
	DeliveryAddress string          `gorm:"type:text;not null"`
	CourierName     string          `gorm:"type:varchar(255)"`
	CourierPhone    string          `gorm:"type:varchar(32)"`
	Review          string          `gorm:"type:text"`
	Rating          *int            `gorm:"type:smallint"`
	RejectReason    string          `gorm:"type:text"`
	OrderDate       time.Time       `gorm:"type:date;not null;index"`
	PlacedAt        time.Time       `gorm:"not null"`
	OrderCost       decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Items           []OrderItemDTO  `gorm:"foreignKey:OrderCode;references:Code;constraint:OnDelete:CASCADE"`
}

func (OrderDTO) TableName() string {
	return "orders"
}

type OrderItemDTO struct {
	OrderCode string          `gorm:"type:varchar(96);primaryKey"`
	ItemName  string          `gorm:"type:varchar(255);primaryKey"`
	UnitPrice decimal.Decimal `gorm:"type:numeric(12,2);not null"`
	Quantity  int             `gorm:"not null"`
	Position  int             `gorm:"not null"`
}

func (OrderItemDTO) TableName() string {
	return "order_items"
}

func fromDomain(aggregate *order.Order) OrderDTO {
	items := aggregate.Items()
	itemDTOs := make([]OrderItemDTO, 0, len(items))
	for pos, item := range items {
		itemDTOs = append(itemDTOs, OrderItemDTO{
			OrderCode: aggregate.Code(),
			ItemName:  item.Name(),
			UnitPrice: item.UnitPrice(),
			Quantity:  item.Quantity(),
			Position:  pos,
		})
	}

	dto := OrderDTO{
		Code:            aggregate.Code(),
		CustomerID:      int64(aggregate.CustomerID()),
		RestaurantID:    int64(aggregate.RestaurantID()),
		Status:          int(aggregate.Status()),
		Recipient:       aggregate.Recipient(),
		Phone:           aggregate.Phone(),
		DeliveryAddress: aggregate.DeliveryAddress(),
		CourierName:     aggregate.CourierName(),
		CourierPhone:    aggregate.CourierPhone(),
		Review:          aggregate.ReviewText(),
		RejectReason:    aggregate.RejectReason(),
		OrderDate:       aggregate.OrderDate(),
		PlacedAt:        aggregate.PlacedAt(),
		OrderCost:       aggregate.TotalCost(),
		Items:           itemDTOs,
	}
	if rating := aggregate.Rating(); rating != nil {
		value := rating.Int()
		dto.Rating = &value
	}

	return dto
}

// mutableColumns are the columns lifecycle transitions may change.
func mutableColumns(aggregate *order.Order) map[string]any {
	var rating any
	if r := aggregate.Rating(); r != nil {
		rating = r.Int()
	}

	return map[string]any{
		"status":        int(aggregate.Status()),
		"courier_name":  aggregate.CourierName(),
		"courier_phone": aggregate.CourierPhone(),
		"review":        aggregate.ReviewText(),
		"rating":        rating,
		"reject_reason": aggregate.RejectReason(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	items := make([]order.Item, 0, len(dto.Items))
	for _, itemDTO := range dto.Items {
		item, err := order.NewItem(itemDTO.ItemName, itemDTO.UnitPrice, itemDTO.Quantity)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}

	var rating *kernel.Rating
	if dto.Rating != nil {
		r := kernel.Rating(*dto.Rating)
		rating = &r
	}

	return order.RestoreOrder(order.Snapshot{
		Code:            dto.Code,
		CustomerID:      kernel.CustomerID(dto.CustomerID),
		RestaurantID:    kernel.RestaurantID(dto.RestaurantID),
		Recipient:       dto.Recipient,
		Phone:           dto.Phone,
		DeliveryAddress: dto.DeliveryAddress,
		Status:          order.Status(dto.Status),
		CourierName:     dto.CourierName,
		CourierPhone:    dto.CourierPhone,
		Review:          dto.Review,
		Rating:          rating,
		RejectReason:    dto.RejectReason,
		PlacedAt:        dto.PlacedAt,
		OrderDate:       dto.OrderDate,
		TotalCost:       dto.OrderCost,
		Items:           items,
	})
}
