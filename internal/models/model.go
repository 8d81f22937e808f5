package models

// Furniture represents a catalog listing. The web layer never writes it.
type Furniture struct {
	ID          int     `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
	Category    string  `json:"category,omitempty"`
	ImageURL    string  `json:"image_url,omitempty"`
}

// User represents a registered visitor. Email is the login key.
type User struct {
	ID       int    `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// Booking reserves a furniture item for a date range
type Booking struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	FurnitureID int    `json:"furniture_id"`
	StartDate   string `json:"start_date"`
	EndDate     string `json:"end_date"`
}

// Payment records money paid against a booking
type Payment struct {
	ID            int     `json:"id"`
	BookingID     int     `json:"booking_id"`
	Amount        float64 `json:"amount"`
	PaymentMethod string  `json:"payment_method"`
}
