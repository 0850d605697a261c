package store

// User is an account from the fixed credential table.
type User struct {
	ID       int64
	Name     string
	Email    string
	Password string
	Role     string
}

type Setting struct {
	Key   string
	Value string
}

// WeeklySummary is the hours booked per week, grouped by status.
type WeeklySummary struct {
	Week    int
	Status  string
	Hours   float64
	Records int
}
