package exchangeset

import "fmt"

// ErrInvalidCoordinate indicates coordinate out of valid bounds
type ErrInvalidCoordinate struct {
	Lat, Lon float64
}

func (e *ErrInvalidCoordinate) Error() string {
	return fmt.Sprintf("invalid coordinate: lat=%f lon=%f (lat must be ±90, lon must be ±180)",
		e.Lat, e.Lon)
}

// ErrInvertedBounds indicates a box whose minimum exceeds its maximum.
type ErrInvertedBounds struct {
	Bounds Bounds
}

func (e *ErrInvertedBounds) Error() string {
	return fmt.Sprintf("inverted bounds: %v (minimum exceeds maximum)", e.Bounds)
}

// ValidateCoordinate validates a single coordinate pair
func ValidateCoordinate(lat, lon float64) error {
	if lat < -90.0 || lat > 90.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	if lon < -180.0 || lon > 180.0 {
		return &ErrInvalidCoordinate{Lat: lat, Lon: lon}
	}
	return nil
}

// ValidateBounds checks both corners of b and their order.
func ValidateBounds(b Bounds) error {
	if err := ValidateCoordinate(b.MinLat, b.MinLon); err != nil {
		return err
	}
	if err := ValidateCoordinate(b.MaxLat, b.MaxLon); err != nil {
		return err
	}
	if b.MinLat > b.MaxLat || b.MinLon > b.MaxLon {
		return &ErrInvertedBounds{Bounds: b}
	}
	return nil
}
