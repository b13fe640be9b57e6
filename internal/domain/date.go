package domain

import "time"

// DateDimension representa uma linha de dim.dim_date
type DateDimension struct {
	DateID   int64     `json:"date_id"`
	FullDate time.Time `json:"full_date"`
	Year     int       `json:"year"`
	Month    int       `json:"month"`
	Quarter  int       `json:"quarter"`
}
