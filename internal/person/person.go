package person

import "time"

type Person struct {
	ID        int64     `json:"id"`
	Name      *string   `json:"name"`
	Age       *int      `json:"age"`
	Gender    string    `json:"gender"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}
