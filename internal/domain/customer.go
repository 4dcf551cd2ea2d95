package domain

import "time"

type Customer struct {
	ID        int64
	FullName  string
	Phone     string
	Email     string
	IDNumber  string
	CreatedAt time.Time
	UpdatedAt time.Time
}
