package domain

import "time"

type Review struct {
	ID        int64
	ProductID int64
	Author    string
	Role      string
	Rating    int
	Text      string
	Date      time.Time
}
