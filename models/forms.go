package models

// Form structs mirror the HTML forms submitted by the browser. The `form`
// tag names the submitted field; the `validate` tag declares the constraints
// checked by the validators package before any persistence call is made.

// RegisterForm carries the fields of the registration form.
type RegisterForm struct {
	Username  string `form:"username" validate:"required,max=20"`
	Password  string `form:"password" validate:"required"`
	FirstName string `form:"first_name" validate:"required,max=30"`
	LastName  string `form:"last_name" validate:"required,max=30"`
	Email     string `form:"email" validate:"required,email,max=50"`
}

// LoginForm carries the fields of the login form.
type LoginForm struct {
	Username string `form:"username" validate:"required,max=20"`
	Password string `form:"password" validate:"required"`
}

// FeedbackForm carries the fields shared by the add-feedback and
// edit-feedback forms.
type FeedbackForm struct {
	Title   string `form:"title" validate:"required,max=100"`
	Content string `form:"content" validate:"required"`
}
