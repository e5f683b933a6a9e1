package response

import (
	"time"

	"dh-booking/internal/domain/reservation"
	"dh-booking/internal/usecase/commands"
	"dh-booking/internal/usecase/queries"

	"github.com/google/uuid"
)

type ReservationResponse struct {
	ID          uuid.UUID `json:"id"`
	ProductID   uuid.UUID `json:"productId"`
	ProductName string    `json:"productName"`
	UserID      uuid.UUID `json:"userId"`
	UserName    string    `json:"userName"`
	UserEmail   string    `json:"userEmail"`
	StartDate   string    `json:"startDate"`
	EndDate     string    `json:"endDate"`
	Status      string    `json:"status"`
	CreatedAt   time.Time `json:"createdAt"`
	UpdatedAt   time.Time `json:"updatedAt"`
}

func FromReservationView(v *queries.ReservationView) *ReservationResponse {
	return &ReservationResponse{
		ID:          v.ID,
		ProductID:   v.ProductID,
		ProductName: v.ProductName,
		UserID:      v.UserID,
		UserName:    v.UserName,
		UserEmail:   v.UserEmail,
		StartDate:   v.StartDate.Format(reservation.DateLayout),
		EndDate:     v.EndDate.Format(reservation.DateLayout),
		Status:      v.Status.String(),
		CreatedAt:   v.CreatedAt,
		UpdatedAt:   v.UpdatedAt,
	}
}

func FromReservationViews(views []*queries.ReservationView) []*ReservationResponse {
	res := make([]*ReservationResponse, len(views))
	for i, v := range views {
		res[i] = FromReservationView(v)
	}
	return res
}

type ReservationSnapshotResponse struct {
	ReservationID uuid.UUID `json:"reservationId"`
	ProductID     uuid.UUID `json:"productId"`
	ProductName   string    `json:"productName"`
	UserID        uuid.UUID `json:"userId"`
	RenterName    string    `json:"renterName"`
	StartDate     string    `json:"startDate"`
	EndDate       string    `json:"endDate"`
	Status        string    `json:"status"`
}

type CreateReservationResponse struct {
	Reservation ReservationSnapshotResponse `json:"reservation"`
	Warnings    []string                    `json:"warnings"`
}

func FromCreateReservationResult(r *commands.CreateReservationResult) *CreateReservationResponse {
	s := r.Reservation
	warnings := r.Warnings
	if warnings == nil {
		warnings = []string{}
	}
	return &CreateReservationResponse{
		Reservation: ReservationSnapshotResponse{
			ReservationID: s.ReservationID,
			ProductID:     s.ProductID,
			ProductName:   s.ProductName,
			UserID:        s.UserID,
			RenterName:    s.RenterName,
			StartDate:     s.StartDate.Format(reservation.DateLayout),
			EndDate:       s.EndDate.Format(reservation.DateLayout),
			Status:        s.Status.String(),
		},
		Warnings: warnings,
	}
}

type ReservationStatusResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	StartDate string    `json:"startDate"`
	EndDate   string    `json:"endDate"`
	Status    string    `json:"status"`
	UpdatedAt time.Time `json:"updatedAt"`
}

func FromReservation(r *reservation.Reservation) *ReservationStatusResponse {
	return &ReservationStatusResponse{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserID:    r.UserID(),
		StartDate: r.Period().Start().Format(reservation.DateLayout),
		EndDate:   r.Period().End().Format(reservation.DateLayout),
		Status:    r.Status().String(),
		UpdatedAt: r.UpdatedAt(),
	}
}
