package kernel

import "fulfillment/internal/pkg/errs"

const (
	RatingMin = 1
	RatingMax = 5
)

// Rating is a customer's score for a completed order.
type Rating int

func NewRating(value int) (Rating, error) {
	if value < RatingMin || value > RatingMax {
		return 0, errs.NewValueIsOutOfRangeError("rating", value, RatingMin, RatingMax)
	}
	return Rating(value), nil
}

func (r Rating) Validate() error {
	_, err := NewRating(int(r))
	return err
}

func (r Rating) Int() int {
	return int(r)
}
