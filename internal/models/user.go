package models

// User roles. Kept as small integers to match the stored column.
const (
	RoleAdmin  = 1
	RoleStaff  = 2
	RoleViewer = 3
)

// User represents a staff account.
type User struct {
	ID           int64  `json:"id"`
	Name         string `json:"name"`
	Email        string `json:"email"`
	Phone1       string `json:"phone1,omitempty"`
	Phone2       string `json:"phone2,omitempty"`
	Address      string `json:"address,omitempty"`
	City         string `json:"city,omitempty"`
	District     string `json:"district,omitempty"`
	Username     string `json:"username"`
	PasswordHash string `json:"-"`
	Role         int    `json:"role"`
}

// Salon is a bookable hall from the settings module.
type Salon struct {
	ID          int64   `json:"id"`
	Name        string  `json:"name"`
	Capacity    int     `json:"capacity"`
	PriceFactor float64 `json:"price_factor"`
	Color       string  `json:"color,omitempty"`
	IsActive    bool    `json:"is_active"`
}

// Expense is a bookkeeping entry used by the reports module.
type Expense struct {
	ID            int64   `json:"id"`
	Date          string  `json:"date"` // ISO YYYY-MM-DD
	Category      string  `json:"category"`
	Description   string  `json:"description,omitempty"`
	Amount        float64 `json:"amount"`
	ReservationID *int64  `json:"reservation_id,omitempty"`
	CreatedAt     string  `json:"created_at,omitempty"`
}
