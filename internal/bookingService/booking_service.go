package booking

import (
	"fmt"
	"slices"
	"strings"

	"furniture-booking/internal/bookingerrors"
	"furniture-booking/internal/models"
	"furniture-booking/internal/repository"
)

// BookingService holds the catalog, account and booking rules over a CollectionStore
type BookingService struct {
	store repository.CollectionStore
}

// NewBookingService creates a new BookingService instance
func NewBookingService(store repository.CollectionStore) *BookingService {
	return &BookingService{
		store: store,
	}
}

// ListFurniture returns the whole catalog in stored order
func (s *BookingService) ListFurniture() ([]models.Furniture, error) {
	items, err := repository.LoadAll[models.Furniture](s.store, repository.Furniture)
	if err != nil {
		return nil, fmt.Errorf("service: failed to list furniture: %w", err)
	}
	return items, nil
}

// GetFurniture returns the item with the given id or ErrFurnitureNotFound
func (s *BookingService) GetFurniture(id int) (models.Furniture, error) {
	items, err := s.ListFurniture()
	if err != nil {
		return models.Furniture{}, err
	}

	for _, item := range items {
		if item.ID == id {
			return item, nil
		}
	}
	return models.Furniture{}, fmt.Errorf("service: furniture %d: %w", id, bookingerrors.ErrFurnitureNotFound)
}

// SearchFurniture returns items whose name or description contains query, ignoring case.
// Catalog order is preserved and an empty result is not an error.
func (s *BookingService) SearchFurniture(query string) ([]models.Furniture, error) {
	items, err := s.ListFurniture()
	if err != nil {
		return nil, err
	}

	needle := strings.ToLower(query)
	results := make([]models.Furniture, 0)
	for _, item := range items {
		if strings.Contains(strings.ToLower(item.Name), needle) ||
			strings.Contains(strings.ToLower(item.Description), needle) {
			results = append(results, item)
		}
	}
	return results, nil
}

// RegisterUser appends a new user. Emails are not checked for uniqueness.
func (s *BookingService) RegisterUser(username, email, password string) (models.User, error) {
	if err := requireFields(map[string]string{"username": username, "email": email, "password": password}); err != nil {
		return models.User{}, err
	}

	user, err := repository.Append(s.store, repository.Users, func(id int) models.User {
		return models.User{ID: id, Username: username, Email: email, Password: password}
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to register user %s: %w", email, err)
	}
	return user, nil
}

// Authenticate finds the first user with exactly this email and password.
// It never writes to the store.
func (s *BookingService) Authenticate(email, password string) (models.User, error) {
	users, err := repository.LoadAll[models.User](s.store, repository.Users)
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to load users: %w", err)
	}

	for _, u := range users {
		if u.Email == email && u.Password == password {
			return u, nil
		}
	}
	return models.User{}, bookingerrors.ErrInvalidCredentials
}

// UpdateProfile overwrites username and email of an existing user
func (s *BookingService) UpdateProfile(userID int, username, email string) (models.User, error) {
	if err := requireFields(map[string]string{"username": username, "email": email}); err != nil {
		return models.User{}, err
	}

	var users []models.User
	var updated models.User
	err := s.store.Update(repository.Users, &users, func() (bool, error) {
		for i := range users {
			if users[i].ID == userID {
				users[i].Username = username
				users[i].Email = email
				updated = users[i]
				return true, nil
			}
		}
		return false, bookingerrors.ErrUserNotFound
	})
	if err != nil {
		return models.User{}, fmt.Errorf("service: failed to update user %d: %w", userID, err)
	}
	return updated, nil
}

// CreateBooking appends a booking. User and furniture ids are not checked
// against their collections and dates are stored as given.
func (s *BookingService) CreateBooking(userID, furnitureID int, startDate, endDate string) (models.Booking, error) {
	if err := requireFields(map[string]string{"start_date": startDate, "end_date": endDate}); err != nil {
		return models.Booking{}, err
	}

	booking, err := repository.Append(s.store, repository.Bookings, func(id int) models.Booking {
		return models.Booking{
			ID:          id,
			UserID:      userID,
			FurnitureID: furnitureID,
			StartDate:   startDate,
			EndDate:     endDate,
		}
	})
	if err != nil {
		return models.Booking{}, fmt.Errorf("service: failed to create booking for furniture %d by user %d: %w", furnitureID, userID, err)
	}
	return booking, nil
}

// CreatePayment appends a payment. The booking id is not checked and the
// booking record is not touched.
func (s *BookingService) CreatePayment(bookingID int, amount float64, method string) (models.Payment, error) {
	if err := requireFields(map[string]string{"payment_method": method}); err != nil {
		return models.Payment{}, err
	}

	payment, err := repository.Append(s.store, repository.Payments, func(id int) models.Payment {
		return models.Payment{ID: id, BookingID: bookingID, Amount: amount, PaymentMethod: method}
	})
	if err != nil {
		return models.Payment{}, fmt.Errorf("service: failed to create payment for booking %d: %w", bookingID, err)
	}
	return payment, nil
}

// requireFields rejects empty values and lists every missing field
func requireFields(fields map[string]string) error {
	var missing []string
	for name, value := range fields {
		if value == "" {
			missing = append(missing, name)
		}
	}
	if len(missing) == 0 {
		return nil
	}
	slices.Sort(missing)
	return fmt.Errorf("service: %w - %s", bookingerrors.ErrMissingField, strings.Join(missing, ", "))
}
