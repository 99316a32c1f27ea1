package server

// Route path constants
// All application routes are defined here to ensure consistency and prevent typos.
// Paths are canonical (locale-free): the locale middleware strips a leading
// locale segment before the mux sees the path.
const (
	// Content pages
	RouteHome    = "/"
	RouteVisit   = "/visit"
	RouteHistory = "/history"

	// Booking & shop
	RouteTickets  = "/tickets"
	RouteShop     = "/shop"
	RouteProduct  = "/shop/{slug}"
	RouteCheckout = "/checkout/{slug}"
	RouteContact  = "/contact"

	// Auth pages (delegated to the identity provider)
	RouteLogin  = "/login"
	RouteSignup = "/signup"
	RouteLogout = "/logout"

	// Account pages (require a verified session)
	RouteAccount = "/account"
	RouteOrders  = "/orders"

	// Static Asset Routes (patterns)
	RouteStaticCSS    = "/css/{file}"
	RouteStaticImages = "/images/{file}"
)
