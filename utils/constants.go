package utils

// Auth
const (
	MsgUserExists   = "User Name or Email already exists"
	MsgAuthFailed   = "These credentials do not match our records."
	MsgAuthRequired = "Authentication required. Please log in to access this resource."
	MsgUserNotFound = "User not found."
	MsgInvalidToken = "Invalid or expired token."
)

// Photographer
const (
	MsgPhotographerNotFound = "Photographer not found."
	MsgPhotographerOnly     = "Only photographers can access this resource."
	MsgUsernameTaken        = "Username is already taken."
	MsgProfileExists        = "Photographer profile already exists for this user."
)

// Booking
const (
	MsgBookingNotFound          = "Booking not found."
	MsgCannotBookSelf           = "You cannot book yourself."
	MsgBookingExists            = "You already have a pending or accepted booking with this photographer for this date."
	MsgBookingCannotModify      = "This booking cannot be modified."
	MsgBookingCannotCancel      = "This booking cannot be cancelled."
	MsgBookingInvalidTransition = "Invalid status transition."
	MsgBookingStatusConflict    = "Booking status changed concurrently. Please retry."
)

// Review
const (
	MsgReviewNotFound       = "Review not found."
	MsgCannotReviewSelf     = "You cannot review yourself."
	MsgReviewRequiresBooked = "You can only review photographers after a completed booking."
	MsgReviewExists         = "You have already reviewed this photographer."
)

// Portfolio
const (
	MsgPortfolioItemNotFound = "Portfolio item not found."
)
