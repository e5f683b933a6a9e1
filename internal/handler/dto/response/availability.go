package response

import (
	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type PeriodResponse struct {
	StartDate string `json:"startDate"`
	EndDate   string `json:"endDate"`
}

type AvailabilityResponse struct {
	ProductID uuid.UUID        `json:"productId"`
	From      string           `json:"from"`
	To        string           `json:"to"`
	Free      []PeriodResponse `json:"free"`
}

func FromAvailabilityView(v *queries.AvailabilityView) *AvailabilityResponse {
	free := make([]PeriodResponse, len(v.Free))
	for i, p := range v.Free {
		free[i] = PeriodResponse{
			StartDate: p.Start().Format(reservation.DateLayout),
			EndDate:   p.End().Format(reservation.DateLayout),
		}
	}
	return &AvailabilityResponse{
		ProductID: v.ProductID,
		From:      v.From.Format(reservation.DateLayout),
		To:        v.To.Format(reservation.DateLayout),
		Free:      free,
	}
}
