package rating

const (
	MinStars = 1
	MaxStars = 5
)

type Stars struct {
	value int
}

func NewStars(value int) (Stars, error) {
	if value < MinStars || value > MaxStars {
		return Stars{}, ErrInvalidStars
	}
	return Stars{value: value}, nil
}

func (s Stars) Value() int {
	return s.value
}
