package helpers

// Form DTOs. All bodies are application/x-www-form-urlencoded; the first value of each key wins.
// Numeric fields are pointers: "required" then only rejects an absent key, so 0 is a valid value.

type RegisterRequest struct {
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type LoginRequest struct {
	Email    string `form:"email" binding:"required"`
	Password string `form:"password" binding:"required"`
}

type AccountRequest struct {
	UserID   *int   `form:"user_id" binding:"required"`
	Username string `form:"username" binding:"required"`
	Email    string `form:"email" binding:"required"`
}

type BookingRequest struct {
	UserID      *int   `form:"user_id" binding:"required"`
	FurnitureID *int   `form:"furniture_id" binding:"required"`
	StartDate   string `form:"start_date" binding:"required"`
	EndDate     string `form:"end_date" binding:"required"`
}

type PaymentRequest struct {
	BookingID     *int     `form:"booking_id" binding:"required"`
	Amount        *float64 `form:"amount" binding:"required"`
	PaymentMethod string   `form:"payment_method" binding:"required"`
}

// SearchRequest is bound from the query string of GET /search. An empty query is
// allowed and matches everything; only a missing key is rejected.
type SearchRequest struct {
	Query *string `form:"query" binding:"required"`
}
