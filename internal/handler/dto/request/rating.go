package request

import (
	"dh-booking/internal/usecase/commands"

	"github.com/google/uuid"
)

// Stars is range-checked by the rating gate, not by binding.
type SubmitRatingRequest struct {
	UserID uuid.UUID `json:"userId" binding:"required"`
	Stars  int       `json:"stars"`
}

func (r SubmitRatingRequest) ToInput(productID uuid.UUID) commands.SubmitRatingInput {
	return commands.SubmitRatingInput{
		UserID:    r.UserID,
		ProductID: productID,
		Stars:     r.Stars,
	}
}
