package request

import (
	"staybook/internal/domain/availability"
	"staybook/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateBookingRequest struct {
	PropertyID uuid.UUID `json:"propertyId" binding:"required"`
	CheckIn    string    `json:"checkIn" binding:"required,datetime=2006-01-02"`
	CheckOut   string    `json:"checkOut" binding:"required,datetime=2006-01-02"`
	Guests     int       `json:"guests" binding:"required,min=1"`
}

func (r CreateBookingRequest) ToInput() (commands.CreateBookingInput, error) {
	checkIn, err := availability.ParseDate(r.CheckIn)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	checkOut, err := availability.ParseDate(r.CheckOut)
	if err != nil {
		return commands.CreateBookingInput{}, err
	}
	return commands.CreateBookingInput{
		PropertyID: r.PropertyID,
		CheckIn:    checkIn,
		CheckOut:   checkOut,
		Guests:     r.Guests,
	}, nil
}

type ListBookingsQuery struct {
	Limit int `form:"limit" binding:"omitempty,min=1,max=200"`
}
