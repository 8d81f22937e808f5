package handler

import (
	"errors"
	"net/http"

	"furniture-booking/internal/bookingerrors"
	model "furniture-booking/internal/models"
	"furniture-booking/internal/render"
	"furniture-booking/services/booking/helpers"
	"furniture-booking/utils"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
)

// Page templates, resolved by the PageRenderer
const (
	indexTemplate     = "index.html"
	registerTemplate  = "register.html"
	loginTemplate     = "login.html"
	profileTemplate   = "profile.html"
	furnitureTemplate = "furniture.html"
	searchTemplate    = "search.html"
	bookingTemplate   = "booking.html"
	paymentTemplate   = "payment.html"
)

type BookingServiceInterface interface {
	ListFurniture() ([]model.Furniture, error)
	GetFurniture(id int) (model.Furniture, error)
	SearchFurniture(query string) ([]model.Furniture, error)
	RegisterUser(username, email, password string) (model.User, error)
	Authenticate(email, password string) (model.User, error)
	UpdateProfile(userID int, username, email string) (model.User, error)
	CreateBooking(userID, furnitureID int, startDate, endDate string) (model.Booking, error)
	CreatePayment(bookingID int, amount float64, method string) (model.Payment, error)
}

type PageRenderer interface {
	RenderPage(name string, ctx render.Context) (string, error)
}

type BookingHandler struct {
	service BookingServiceInterface
	pages   PageRenderer
}

func NewBookingHandler(service BookingServiceInterface, pages PageRenderer) *BookingHandler {
	return &BookingHandler{service: service, pages: pages}
}

// renderPage renders a template and answers 200 text/html
func (h *BookingHandler) renderPage(c *gin.Context, handlerName, template string, ctx render.Context) {
	body, err := h.pages.RenderPage(template, ctx)
	if err != nil {
		helpers.HandleError(c, handlerName, err, map[string]any{"template": template})
		return
	}
	utils.HTMLResponse(c, http.StatusOK, body)
}

// HomeHandler handles GET / and GET /home
func (h *BookingHandler) HomeHandler(c *gin.Context) {
	items, err := h.service.ListFurniture()
	if err != nil {
		helpers.HandleError(c, "HomeHandler", err, nil)
		return
	}
	h.renderPage(c, "HomeHandler", indexTemplate, render.Context{}.With("furniture", items))
}

// RegisterPageHandler handles GET /register
func (h *BookingHandler) RegisterPageHandler(c *gin.Context) {
	h.renderPage(c, "RegisterPageHandler", registerTemplate, nil)
}

// LoginPageHandler handles GET /login
func (h *BookingHandler) LoginPageHandler(c *gin.Context) {
	h.renderPage(c, "LoginPageHandler", loginTemplate, nil)
}

// AccountPageHandler handles GET /account. No profile data is loaded.
func (h *BookingHandler) AccountPageHandler(c *gin.Context) {
	h.renderPage(c, "AccountPageHandler", profileTemplate, nil)
}

// FurnitureHandler handles GET /furniture/:id
func (h *BookingHandler) FurnitureHandler(c *gin.Context) {
	h.itemPage(c, "FurnitureHandler", furnitureTemplate)
}

// BookingPageHandler handles GET /booking/:id, the booking form for one item
func (h *BookingHandler) BookingPageHandler(c *gin.Context) {
	h.itemPage(c, "BookingPageHandler", bookingTemplate)
}

func (h *BookingHandler) itemPage(c *gin.Context, handlerName, template string) {
	id, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleError(c, handlerName, err, nil)
		return
	}

	item, err := h.service.GetFurniture(id)
	if err != nil {
		helpers.HandleError(c, handlerName, err, map[string]any{"furniture_id": id})
		return
	}
	h.renderPage(c, handlerName, template, render.Context{}.With("item", item))
}

// SearchHandler handles GET /search?query=Q
func (h *BookingHandler) SearchHandler(c *gin.Context) {
	var req helpers.SearchRequest
	if err := c.ShouldBindQuery(&req); err != nil {
		helpers.HandleBindError(c, "SearchHandler", err)
		return
	}

	query := *req.Query
	results, err := h.service.SearchFurniture(query)
	if err != nil {
		helpers.HandleError(c, "SearchHandler", err, map[string]any{"query": query})
		return
	}
	h.renderPage(c, "SearchHandler", searchTemplate, render.Context{}.With("furniture", results))
	utils.Debug("SearchHandler: search completed", map[string]any{"query": query, "count": len(results)})
}

// PaymentPageHandler handles GET /payment/:id. The id is passed through unchecked.
func (h *BookingHandler) PaymentPageHandler(c *gin.Context) {
	bookingID, err := helpers.ParseIDParam(c, "id")
	if err != nil {
		helpers.HandleError(c, "PaymentPageHandler", err, nil)
		return
	}
	h.renderPage(c, "PaymentPageHandler", paymentTemplate, render.Context{}.With("booking_id", bookingID))
}

// RegisterHandler handles POST /register
func (h *BookingHandler) RegisterHandler(c *gin.Context) {
	var req helpers.RegisterRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		helpers.HandleBindError(c, "RegisterHandler", err)
		return
	}

	user, err := h.service.RegisterUser(req.Username, req.Email, req.Password)
	if err != nil {
		helpers.HandleError(c, "RegisterHandler", err, map[string]any{"email": req.Email})
		return
	}

	utils.Redirect(c, "/login")
	helpers.LogSuccess("RegisterHandler", "user registered", map[string]any{"user_id": user.ID})
}

// LoginHandler handles POST /login. Bad credentials redirect back to the form without a message.
func (h *BookingHandler) LoginHandler(c *gin.Context) {
	var req helpers.LoginRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		helpers.HandleBindError(c, "LoginHandler", err)
		return
	}

	user, err := h.service.Authenticate(req.Email, req.Password)
	if errors.Is(err, bookingerrors.ErrInvalidCredentials) {
		utils.Redirect(c, "/login")
		utils.Info("LoginHandler: login rejected", map[string]any{"email": req.Email})
		return
	}
	if err != nil {
		helpers.HandleError(c, "LoginHandler", err, nil)
		return
	}

	utils.Redirect(c, "/home")
	helpers.LogSuccess("LoginHandler", "login accepted", map[string]any{"user_id": user.ID})
}

// AccountHandler handles POST /account, the profile edit
func (h *BookingHandler) AccountHandler(c *gin.Context) {
	var req helpers.AccountRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		helpers.HandleBindError(c, "AccountHandler", err)
		return
	}

	userID := *req.UserID
	if _, err := h.service.UpdateProfile(userID, req.Username, req.Email); err != nil {
		helpers.HandleError(c, "AccountHandler", err, map[string]any{"user_id": userID})
		return
	}

	utils.Redirect(c, "/account")
	helpers.LogSuccess("AccountHandler", "profile updated", map[string]any{"user_id": userID})
}

// CreateBookingHandler handles POST /booking/:id. The furniture comes from the
// form body; the path segment is not used.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var req helpers.BookingRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		helpers.HandleBindError(c, "CreateBookingHandler", err)
		return
	}

	booking, err := h.service.CreateBooking(*req.UserID, *req.FurnitureID, req.StartDate, req.EndDate)
	if err != nil {
		helpers.HandleError(c, "CreateBookingHandler", err, map[string]any{
			"user_id":      *req.UserID,
			"furniture_id": *req.FurnitureID,
		})
		return
	}

	utils.Redirect(c, "/home")
	helpers.LogSuccess("CreateBookingHandler", "booking created", map[string]any{
		"booking_id":   booking.ID,
		"user_id":      booking.UserID,
		"furniture_id": booking.FurnitureID,
	})
}

// CreatePaymentHandler handles POST /payment/:id. The booking comes from the form body.
func (h *BookingHandler) CreatePaymentHandler(c *gin.Context) {
	var req helpers.PaymentRequest
	if err := c.ShouldBindWith(&req, binding.FormPost); err != nil {
		helpers.HandleBindError(c, "CreatePaymentHandler", err)
		return
	}

	payment, err := h.service.CreatePayment(*req.BookingID, *req.Amount, req.PaymentMethod)
	if err != nil {
		helpers.HandleError(c, "CreatePaymentHandler", err, map[string]any{"booking_id": *req.BookingID})
		return
	}

	utils.Redirect(c, "/home")
	helpers.LogSuccess("CreatePaymentHandler", "payment recorded", map[string]any{
		"payment_id": payment.ID,
		"booking_id": payment.BookingID,
		"amount":     payment.Amount,
	})
}

// NotFoundHandler answers every unmatched method and path
func (h *BookingHandler) NotFoundHandler(c *gin.Context) {
	helpers.HandleError(c, "NotFoundHandler", bookingerrors.ErrNotFound, map[string]any{
		"method": c.Request.Method,
		"path":   c.Request.URL.Path,
	})
}
