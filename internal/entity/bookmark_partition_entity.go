package entity

import "time"

type BookmarkPartition struct {
	Name      string
	StartsAt  time.Time
	EndsAt    time.Time
	CreatedAt time.Time
}
