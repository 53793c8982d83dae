package demoapi

import (
	"encoding/json"
	"net/http"
	"net/mail"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-chi/chi/v5"

	"github.com/samvad-hq/storefront-console/internal/logger"
)

const (
	defaultOrderStatus = "PENDING"
	badBodyMessage     = "Invalid request body"
)

type handler struct {
	store *Store
	log   logger.Logger
}

// Products ------------------------------------------------------------------

func (h *handler) listProducts(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.products.list(nil))
}

func (h *handler) productsByCategory(w http.ResponseWriter, r *http.Request) {
	categoryID, ok := h.idParam(w, r, "categoryId")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.products.list(func(p Product) bool { return p.CategoryID == categoryID }))
}

func (h *handler) getProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	p, found := h.store.products.get(id)
	if !found {
		h.writeNotFound(w, "Product")
		return
	}
	h.writeJSON(w, http.StatusOK, p)
}

func (h *handler) productStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	p, found := h.store.products.get(id)
	if !found {
		h.writeNotFound(w, "Product")
		return
	}
	h.writeJSON(w, http.StatusOK, map[string]bool{"inStock": p.Stock > 0})
}

func (h *handler) createProduct(w http.ResponseWriter, r *http.Request) {
	var in productInput
	if !h.decode(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		h.writeText(w, http.StatusBadRequest, msg)
		return
	}
	now := h.store.now()
	p := h.store.products.insert(Product{
		CategoryID:  *in.CategoryID,
		Name:        in.Name,
		Description: in.Description,
		Price:       *in.Price,
		Stock:       *in.Stock,
		SKU:         in.SKU,
		IsActive:    in.IsActive,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	h.writeJSON(w, http.StatusCreated, p)
}

func (h *handler) updateProduct(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	var in productInput
	if !h.decode(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		h.writeText(w, http.StatusBadRequest, msg)
		return
	}
	now := h.store.now()
	_, found := h.store.products.update(id, func(p *Product) {
		p.CategoryID = *in.CategoryID
		p.Name = in.Name
		p.Description = in.Description
		p.Price = *in.Price
		p.Stock = *in.Stock
		p.SKU = in.SKU
		p.IsActive = in.IsActive
		p.UpdatedAt = now
	})
	if !found {
		h.writeNotFound(w, "Product")
		return
	}
	h.writeText(w, http.StatusOK, "Product updated successfully")
}

func (h *handler) updateStock(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	var in stockInput
	if !h.decode(w, r, &in) {
		return
	}
	if in.Quantity == nil {
		h.writeText(w, http.StatusBadRequest, "Quantity is required")
		return
	}
	if *in.Quantity < 0 {
		h.writeText(w, http.StatusBadRequest, "Stock quantity cannot be negative")
		return
	}
	now := h.store.now()
	_, found := h.store.products.update(id, func(p *Product) {
		p.Stock = *in.Quantity
		p.UpdatedAt = now
	})
	if !found {
		h.writeNotFound(w, "Product")
		return
	}
	h.writeText(w, http.StatusOK, "Stock updated successfully")
}

func (h *handler) deleteProduct(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, "Product", h.store.products.remove)
}

func (in productInput) validate() string {
	switch {
	case in.CategoryID == nil:
		return "Product must have a category"
	case strings.TrimSpace(in.Name) == "":
		return "Product name cannot be empty"
	case in.Price == nil || *in.Price < 0:
		return "Product price must be non-negative"
	case in.Stock == nil || *in.Stock < 0:
		return "Stock quantity cannot be negative"
	}
	return ""
}

// Orders --------------------------------------------------------------------

func (h *handler) listOrders(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.orders.list(nil))
}

func (h *handler) ordersByUser(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.idParam(w, r, "userId")
	if !ok {
		return
	}
	h.writeJSON(w, http.StatusOK, h.store.orders.list(func(o Order) bool { return o.UserID == userID }))
}

func (h *handler) orderCount(w http.ResponseWriter, r *http.Request) {
	userID, ok := h.idParam(w, r, "userId")
	if !ok {
		return
	}
	n := h.store.orders.count(func(o Order) bool { return o.UserID == userID })
	h.writeJSON(w, http.StatusOK, map[string]int{"count": n})
}

func (h *handler) getOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	o, found := h.store.orders.get(id)
	if !found {
		h.writeNotFound(w, "Order")
		return
	}
	h.writeJSON(w, http.StatusOK, o)
}

func (h *handler) createOrder(w http.ResponseWriter, r *http.Request) {
	var in orderInput
	if !h.decode(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		h.writeText(w, http.StatusBadRequest, msg)
		return
	}
	now := h.store.now()
	o := h.store.orders.insert(Order{
		UserID:            *in.UserID,
		OrderNumber:       in.OrderNumber,
		Status:            in.status(),
		TotalAmount:       *in.TotalAmount,
		ShippingAddressID: in.ShippingAddressID,
		BillingAddressID:  in.BillingAddressID,
		OrderDate:         now,
		Notes:             in.Notes,
		CreatedAt:         now,
		UpdatedAt:         now,
	})
	h.writeJSON(w, http.StatusCreated, o)
}

func (h *handler) updateOrder(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	var in orderInput
	if !h.decode(w, r, &in) {
		return
	}
	if msg := in.validate(); msg != "" {
		h.writeText(w, http.StatusBadRequest, msg)
		return
	}
	now := h.store.now()
	_, found := h.store.orders.update(id, func(o *Order) {
		o.UserID = *in.UserID
		o.OrderNumber = in.OrderNumber
		o.Status = in.status()
		o.TotalAmount = *in.TotalAmount
		o.ShippingAddressID = in.ShippingAddressID
		o.BillingAddressID = in.BillingAddressID
		o.Notes = in.Notes
		o.UpdatedAt = now
	})
	if !found {
		h.writeNotFound(w, "Order")
		return
	}
	h.writeText(w, http.StatusOK, "Order updated successfully")
}

func (h *handler) updateOrderStatus(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	var in statusInput
	if !h.decode(w, r, &in) {
		return
	}
	status := strings.TrimSpace(in.Status)
	if status == "" {
		h.writeText(w, http.StatusBadRequest, "Order status cannot be empty")
		return
	}
	now := h.store.now()
	_, found := h.store.orders.update(id, func(o *Order) {
		o.Status = status
		o.UpdatedAt = now
		switch strings.ToUpper(status) {
		case "SHIPPED":
			o.ShippedDate = &now
		case "DELIVERED":
			o.DeliveredDate = &now
		}
	})
	if !found {
		h.writeNotFound(w, "Order")
		return
	}
	h.writeText(w, http.StatusOK, "Order status updated successfully")
}

func (h *handler) deleteOrder(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, "Order", h.store.orders.remove)
}

func (in orderInput) validate() string {
	switch {
	case in.UserID == nil:
		return "Order must have a user ID"
	case in.TotalAmount == nil:
		return "Order must have a total amount"
	case *in.TotalAmount < 0:
		return "Order total amount must be non-negative"
	}
	return ""
}

func (in orderInput) status() string {
	if s := strings.TrimSpace(in.Status); s != "" {
		return s
	}
	return defaultOrderStatus
}

// Categories ----------------------------------------------------------------

func (h *handler) listCategories(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.categories.list(nil))
}

func (h *handler) getCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	c, found := h.store.categories.get(id)
	if !found {
		h.writeNotFound(w, "Category")
		return
	}
	h.writeJSON(w, http.StatusOK, c)
}

func (h *handler) createCategory(w http.ResponseWriter, r *http.Request) {
	var in categoryInput
	if !h.decode(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		h.writeText(w, http.StatusBadRequest, "Category name cannot be empty")
		return
	}
	now := h.store.now()
	c := h.store.categories.insert(Category{Name: in.Name, Description: in.Description, CreatedAt: now, UpdatedAt: now})
	h.writeJSON(w, http.StatusCreated, c)
}

func (h *handler) updateCategory(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	var in categoryInput
	if !h.decode(w, r, &in) {
		return
	}
	if strings.TrimSpace(in.Name) == "" {
		h.writeText(w, http.StatusBadRequest, "Category name cannot be empty")
		return
	}
	now := h.store.now()
	_, found := h.store.categories.update(id, func(c *Category) {
		c.Name = in.Name
		c.Description = in.Description
		c.UpdatedAt = now
	})
	if !found {
		h.writeNotFound(w, "Category")
		return
	}
	h.writeText(w, http.StatusOK, "Category updated successfully")
}

func (h *handler) deleteCategory(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, "Category", h.store.categories.remove)
}

// Users ---------------------------------------------------------------------

func (h *handler) listUsers(w http.ResponseWriter, r *http.Request) {
	h.writeJSON(w, http.StatusOK, h.store.users.list(nil))
}

func (h *handler) getUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	u, found := h.store.users.get(id)
	if !found {
		h.writeNotFound(w, "User")
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func (h *handler) userByEmail(w http.ResponseWriter, r *http.Request) {
	email, err := url.PathUnescape(chi.URLParam(r, "email"))
	if err != nil {
		h.writeText(w, http.StatusBadRequest, "Invalid email format")
		return
	}
	u, found := h.store.users.find(func(u User) bool { return strings.EqualFold(u.Email, email) })
	if !found {
		h.writeNotFound(w, "User")
		return
	}
	h.writeJSON(w, http.StatusOK, u)
}

func (h *handler) createUser(w http.ResponseWriter, r *http.Request) {
	var in userInput
	if !h.decode(w, r, &in) {
		return
	}
	if msg := h.validateUser(in, 0); msg != "" {
		h.writeText(w, http.StatusBadRequest, msg)
		return
	}
	now := h.store.now()
	u := h.store.users.insert(User{
		Email:        in.Email,
		PasswordHash: in.PasswordHash,
		FirstName:    in.FirstName,
		LastName:     in.LastName,
		Phone:        in.Phone,
		Role:         in.Role,
		IsActive:     in.IsActive,
		CreatedAt:    now,
		UpdatedAt:    now,
	})
	h.writeJSON(w, http.StatusCreated, u)
}

func (h *handler) updateUser(w http.ResponseWriter, r *http.Request) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	var in userInput
	if !h.decode(w, r, &in) {
		return
	}
	if msg := h.validateUser(in, id); msg != "" {
		h.writeText(w, http.StatusBadRequest, msg)
		return
	}
	now := h.store.now()
	_, found := h.store.users.update(id, func(u *User) {
		u.Email = in.Email
		u.PasswordHash = in.PasswordHash
		u.FirstName = in.FirstName
		u.LastName = in.LastName
		u.Phone = in.Phone
		u.Role = in.Role
		u.IsActive = in.IsActive
		u.UpdatedAt = now
	})
	if !found {
		h.writeNotFound(w, "User")
		return
	}
	h.writeText(w, http.StatusOK, "User updated successfully")
}

func (h *handler) deleteUser(w http.ResponseWriter, r *http.Request) {
	h.remove(w, r, "User", h.store.users.remove)
}

// validateUser checks the email shape and that no other user (id excluded) owns it.
func (h *handler) validateUser(in userInput, id int64) string {
	addr, err := mail.ParseAddress(in.Email)
	if err != nil || addr.Address != in.Email {
		return "Invalid email format"
	}
	_, taken := h.store.users.find(func(u User) bool {
		return u.UserID != id && strings.EqualFold(u.Email, in.Email)
	})
	if taken {
		return "Email already exists"
	}
	return ""
}

// Helpers -------------------------------------------------------------------

func (h *handler) remove(w http.ResponseWriter, r *http.Request, entity string, del func(int64) bool) {
	id, ok := h.idParam(w, r, "id")
	if !ok {
		return
	}
	if !del(id) {
		h.writeNotFound(w, entity)
		return
	}
	h.writeText(w, http.StatusOK, entity+" deleted successfully")
}

func (h *handler) idParam(w http.ResponseWriter, r *http.Request, key string) (int64, bool) {
	id, err := strconv.ParseInt(chi.URLParam(r, key), 10, 64)
	if err != nil {
		h.writeText(w, http.StatusBadRequest, "Invalid ID supplied")
		return 0, false
	}
	return id, true
}

func (h *handler) decode(w http.ResponseWriter, r *http.Request, dst any) bool {
	if err := json.NewDecoder(r.Body).Decode(dst); err != nil {
		h.log.WarnObj("demo api rejected body", "decode_error", map[string]any{
			"path":  r.URL.Path,
			"error": err.Error(),
		})
		h.writeText(w, http.StatusBadRequest, badBodyMessage)
		return false
	}
	return true
}

func (h *handler) writeJSON(w http.ResponseWriter, status int, data any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(data); err != nil {
		h.log.ErrorObj("failed to encode JSON response", "error", err.Error())
	}
}

func (h *handler) writeNotFound(w http.ResponseWriter, entity string) {
	h.writeJSON(w, http.StatusNotFound, map[string]string{"message": entity + " not found"})
}

func (h *handler) writeText(w http.ResponseWriter, status int, msg string) {
	w.Header().Set("Content-Type", "text/plain; charset=utf-8")
	w.WriteHeader(status)
	_, _ = w.Write([]byte(msg))
}
