package request

import (
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

type CreateReservationRequest struct {
	ProductID uuid.UUID `json:"productId" binding:"required"`
	UserID    uuid.UUID `json:"userId" binding:"required"`
	StartDate string    `json:"startDate" binding:"required,datetime=2006-01-02"`
	EndDate   string    `json:"endDate" binding:"required,datetime=2006-01-02"`
}

func (r CreateReservationRequest) ToInput() (commands.CreateReservationInput, error) {
	start, err := reservation.ParseDay(r.StartDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	end, err := reservation.ParseDay(r.EndDate)
	if err != nil {
		return commands.CreateReservationInput{}, err
	}
	return commands.CreateReservationInput{
		ProductID: r.ProductID,
		UserID:    r.UserID,
		StartDate: start,
		EndDate:   end,
	}, nil
}

type ChangeStatusRequest struct {
	Status string `json:"status" binding:"required"`
}
