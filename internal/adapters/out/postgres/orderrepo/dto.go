// Package orderrepo persists terminal order records with GORM. Records
// feed the order-history and admin views; the pipeline itself never
// reads them back mid-flight.
package orderrepo

import (
	"time"

	"nexye/internal/core/domain/model/courier"
	"nexye/internal/core/domain/model/kernel"
	"nexye/internal/core/domain/model/order"

	"github.com/google/uuid"
)

// OrderDTO is the database row for one terminal order. The surrogate
// uuid key keeps the table GORM-friendly; the NEXYE order id stays the
// business identifier and is unique.
type OrderDTO struct {
	ID      uuid.UUID `gorm:"type:uuid;primaryKey"`
	OrderID string    `gorm:"uniqueIndex;not null"`

	Sender   PartyDTO `gorm:"embedded;embeddedPrefix:sender_"`
	Receiver PartyDTO `gorm:"embedded;embeddedPrefix:receiver_"`

	Weight        float64
	Length        float64
	Breadth       float64
	Height        float64
	Description   string
	DeclaredValue float64

	ServiceType string
	Status      int `gorm:"index"`

	AWBCode       string `gorm:"column:awb_code"`
	CourierName   string
	FailureReason string

	CreatedAt time.Time
}

// TableName overrides GORM's default to use "orders".
func (OrderDTO) TableName() string {
	return "orders"
}

// PartyDTO is the embedded sender/receiver block within the order row.
type PartyDTO struct {
	Name    string
	Phone   string
	Address string
	Pincode string
	Email   string
}

func fromDomain(o *order.Order) OrderDTO {
	dims := o.Parcel().Dimensions()
	return OrderDTO{
		ID:      uuid.New(),
		OrderID: o.ID().String(),
		Sender: PartyDTO{
			Name:    o.Sender().Name(),
			Phone:   o.Sender().Phone(),
			Address: o.Sender().Address(),
			Pincode: o.Sender().Pincode().String(),
			Email:   o.Sender().Email(),
		},
		Receiver: PartyDTO{
			Name:    o.Receiver().Name(),
			Phone:   o.Receiver().Phone(),
			Address: o.Receiver().Address(),
			Pincode: o.Receiver().Pincode().String(),
			Email:   o.Receiver().Email(),
		},
		Weight:        o.Parcel().Weight(),
		Length:        dims.Length(),
		Breadth:       dims.Breadth(),
		Height:        dims.Height(),
		Description:   o.Parcel().Description(),
		DeclaredValue: o.Parcel().DeclaredValue(),
		ServiceType:   o.ServiceType().String(),
		Status:        int(o.Status()),
		AWBCode:       o.AWBCode(),
		CourierName:   o.CourierName(),
		FailureReason: o.FailureReason(),
		CreatedAt:     o.CreatedAt(),
	}
}

func toDomain(dto OrderDTO) (*order.Order, error) {
	id, err := kernel.OrderIDFromString(dto.OrderID)
	if err != nil {
		return nil, err
	}

	sender, err := partyFromDTO(dto.Sender)
	if err != nil {
		return nil, err
	}
	receiver, err := partyFromDTO(dto.Receiver)
	if err != nil {
		return nil, err
	}

	dims, err := kernel.NewDimensions(dto.Length, dto.Breadth, dto.Height)
	if err != nil {
		return nil, err
	}
	parcel, err := order.NewPackage(dto.Weight, dims, dto.Description, dto.DeclaredValue)
	if err != nil {
		return nil, err
	}

	return order.RestoreOrder(id, sender, receiver, parcel,
		courier.ParseServiceType(dto.ServiceType), dto.CreatedAt,
		order.Status(dto.Status), dto.AWBCode, dto.CourierName, dto.FailureReason)
}

func partyFromDTO(dto PartyDTO) (order.Party, error) {
	pincode, err := kernel.NewPincode(dto.Pincode)
	if err != nil {
		return order.Party{}, err
	}
	return order.NewParty(dto.Name, dto.Phone, dto.Address, pincode, dto.Email)
}
