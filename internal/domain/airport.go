package domain

import "time"

type Airport struct {
	ID        string
	Name      string
	Code      string
	Country   string
	City      string
	Airlines  []Airline
	CreatedAt time.Time
	UpdatedAt time.Time
}
