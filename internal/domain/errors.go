package domain

import "errors"

var (
	ErrInvalidDrink     = errors.New("invalid drink")
	ErrDuplicateDrink   = errors.New("duplicate drink id")
	ErrInvalidCategory  = errors.New("invalid category")
	ErrInvalidSortKey   = errors.New("invalid sort key")
	ErrInvalidDelivery  = errors.New("invalid delivery option")
	ErrInvalidGenre     = errors.New("genre not suggested for mood")
	ErrMoodNotFound     = errors.New("mood not found")
	ErrDrinkNotFound    = errors.New("drink not found")
	ErrSpiritNotFound   = errors.New("premium spirit not found")
	ErrPanelHidden      = errors.New("panel not revealed")
	ErrSessionNotFound  = errors.New("session not found")
	ErrOrderPlaced      = errors.New("order already placed")
	ErrVisualizationOff = errors.New("no drink visualization open")
)
