package support

type TicketForm struct {
	Subject  string `form:"subject" validate:"required,max=200"`
	Message  string `form:"message" validate:"required,max=10000"`
	Email    string `form:"email" validate:"required,email"`
	Category string `form:"category" validate:"required,oneof=bug question feature billing other"`
	Priority string `form:"priority" validate:"omitempty,oneof=low normal high urgent"`
}
