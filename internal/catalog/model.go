package catalog

import (
	"errors"
	"fmt"
	"time"
)

var (
	ErrNotFound  = errors.New("Product not found")
	ErrInvalidID = errors.New("Invalid product ID")
)

// DuplicateIDError reports an add with an id that is already a document key.
type DuplicateIDError struct {
	ID int
}

func (e *DuplicateIDError) Error() string {
	return fmt.Sprintf("ID %d already exists", e.ID)
}

// DuplicateNumberError reports a number already held by an existing product.
type DuplicateNumberError struct {
	Number int
}

func (e *DuplicateNumberError) Error() string {
	return fmt.Sprintf("Number %d already exists", e.Number)
}

// InvalidInputError carries the offending value of a failed coercion.
type InvalidInputError struct {
	Field string
	Value string
}

func (e *InvalidInputError) Error() string {
	return fmt.Sprintf("Invalid input: %q is not a valid value for %s", e.Value, e.Field)
}

const (
	EventsQueue  = "catalog.events"
	EventCreated = "product_created"
	EventUpdated = "product_updated"
	EventDeleted = "product_deleted"
)

// Product is one catalog document. The document key is the string form of ID.
type Product struct {
	ID             int      `json:"id" firestore:"id" example:"1"`
	Number         int      `json:"number" firestore:"number" example:"100"`
	Name           string   `json:"name" firestore:"name" example:"Chair"`
	Category       string   `json:"category" firestore:"category" example:"furniture"`
	Price          int      `json:"price" firestore:"price" example:"50000"`
	OriginalPrice  int      `json:"originalPrice" firestore:"originalPrice" example:"65000"`
	Image          string   `json:"image" firestore:"image"`
	Images         []string `json:"images" firestore:"images"`
	Link           string   `json:"link" firestore:"link"`
	Rating         float64  `json:"rating" firestore:"rating" example:"4.5"`
	Reviews        int      `json:"reviews" firestore:"reviews" example:"12"`
	Ribuan         string   `json:"ribuan" firestore:"ribuan"`
	Stock          int      `json:"stock" firestore:"stock" example:"3"`
	Description    string   `json:"description" firestore:"description"`
	Specifications string   `json:"specifications" firestore:"specifications"`
	Features       []string `json:"features" firestore:"features"`
}

type ProductEvent struct {
	EventType string    `json:"event_type"`
	ProductID int       `json:"product_id"`
	Name      string    `json:"name,omitempty"`
	Timestamp time.Time `json:"timestamp"`
}

// ValidateID gates every write: ids are integers strictly greater than zero.
func ValidateID(id int) bool {
	return id > 0
}
