package entity

// Airport is static reference data, immutable once seeded
type Airport struct {
	Code    string `db:"code"` // IATA code, primary key
	Name    string `db:"name"`
	City    string `db:"city"`
	Country string `db:"country"`
}
