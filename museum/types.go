package museum

// Exhibit is a content item displayed on the home page
type Exhibit struct {
	ID       string `json:"id"`
	Slug     string `json:"slug"`
	Title    string `json:"title"`
	Summary  string `json:"summary"`
	ImageURL string `json:"image_url"`
}

// TicketType is a bookable entrance category
type TicketType struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
}

// BookingRequest creates a ticket booking
type BookingRequest struct {
	Reference    string `json:"reference"`
	TicketTypeID string `json:"ticket_type_id"`
	VisitDate    string `json:"visit_date"` // YYYY-MM-DD
	Quantity     int    `json:"quantity"`
	Email        string `json:"email"`
}

// Booking is a confirmed ticket booking
type Booking struct {
	ID           string `json:"id"`
	Reference    string `json:"reference"`
	TicketTypeID string `json:"ticket_type_id"`
	VisitDate    string `json:"visit_date"`
	Quantity     int    `json:"quantity"`
	Email        string `json:"email"`
	TotalCents   int64  `json:"total_cents"`
	Status       string `json:"status"`
}

// Product is a shop item
type Product struct {
	ID          string `json:"id"`
	Slug        string `json:"slug"`
	Name        string `json:"name"`
	Description string `json:"description"`
	PriceCents  int64  `json:"price_cents"`
	Currency    string `json:"currency"`
	ImageURL    string `json:"image_url"`
	Stock       int    `json:"stock"`
}

// OrderRequest creates a shop order
type OrderRequest struct {
	Reference string      `json:"reference"`
	Email     string      `json:"email"`
	Items     []OrderItem `json:"items"`
}

// OrderItem is one line of an order
type OrderItem struct {
	ProductID string `json:"product_id"`
	Quantity  int    `json:"quantity"`
}

// Order is a confirmed shop order
type Order struct {
	ID         string      `json:"id"`
	Reference  string      `json:"reference"`
	Email      string      `json:"email"`
	Items      []OrderItem `json:"items"`
	TotalCents int64       `json:"total_cents"`
	Status     string      `json:"status"`
	CreatedAt  string      `json:"created_at"`
}

// ContactMessage is a contact form submission
type ContactMessage struct {
	Name    string `json:"name"`
	Email   string `json:"email"`
	Subject string `json:"subject"`
	Body    string `json:"body"`
}
