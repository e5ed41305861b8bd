package models

import "fmt"

// Location географические координаты пользователя.
type Location struct {
	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// LocationLengthError означает, что последовательность координат
// состоит не из двух элементов.
type LocationLengthError struct {
	Length int
}

func (e *LocationLengthError) Error() string {
	return fmt.Sprintf("location must contain exactly 2 coordinates, got %d", e.Length)
}

// LocationFromFloats строит Location из последовательности [широта, долгота].
// Возвращает *LocationLengthError, если длина не равна двум.
func LocationFromFloats(coords []float64) (Location, error) {
	if len(coords) != 2 {
		return Location{}, &LocationLengthError{Length: len(coords)}
	}
	return Location{Latitude: coords[0], Longitude: coords[1]}, nil
}
