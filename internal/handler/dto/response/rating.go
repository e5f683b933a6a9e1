package response

import (
	"time"

	"dh-booking/internal/domain/rating"
	"dh-booking/internal/usecase/queries"

	"github.com/google/uuid"
	"github.com/jinzhu/copier"
)

type RatingResponse struct {
	ID        uuid.UUID `json:"id"`
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	UserName  string    `json:"userName,omitempty"`
	Stars     int       `json:"stars"`
	CreatedAt time.Time `json:"createdAt"`
}

type ProductRatingsResponse struct {
	ProductID uuid.UUID         `json:"productId"`
	Count     int               `json:"count"`
	Average   float64           `json:"average"`
	Ratings   []*RatingResponse `json:"ratings"`
}

func FromProductRatingsView(v *queries.ProductRatingsView) (*ProductRatingsResponse, error) {
	res := &ProductRatingsResponse{
		ProductID: v.ProductID,
		Count:     v.Count,
		Average:   v.Average,
		Ratings:   []*RatingResponse{},
	}
	if len(v.Ratings) == 0 {
		return res, nil
	}
	if err := copier.Copy(&res.Ratings, v.Ratings); err != nil {
		return nil, err
	}
	return res, nil
}

func FromRating(r *rating.Rating) *RatingResponse {
	return &RatingResponse{
		ID:        r.ID(),
		ProductID: r.ProductID(),
		UserID:    r.UserID(),
		Stars:     r.Stars().Value(),
		CreatedAt: r.CreatedAt(),
	}
}

type CanRateResponse struct {
	ProductID uuid.UUID `json:"productId"`
	UserID    uuid.UUID `json:"userId"`
	CanRate   bool      `json:"canRate"`
}
