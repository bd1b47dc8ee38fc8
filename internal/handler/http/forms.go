package http

import (
	"net/http"
	"strings"

	"github.com/mlevkin/feedboard/models"
)

// Form decoding is deliberately explicit: three small forms do not warrant a
// reflective binder, and explicit field mapping keeps trimming rules visible.

func parseRegisterForm(r *http.Request) (models.RegisterForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.RegisterForm{}, err
	}

	return models.RegisterForm{
		Username:  strings.TrimSpace(r.PostForm.Get("username")),
		Password:  r.PostForm.Get("password"),
		FirstName: strings.TrimSpace(r.PostForm.Get("first_name")),
		LastName:  strings.TrimSpace(r.PostForm.Get("last_name")),
		Email:     strings.TrimSpace(r.PostForm.Get("email")),
	}, nil
}

func parseLoginForm(r *http.Request) (models.LoginForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.LoginForm{}, err
	}

	return models.LoginForm{
		Username: strings.TrimSpace(r.PostForm.Get("username")),
		Password: r.PostForm.Get("password"),
	}, nil
}

func parseFeedbackForm(r *http.Request) (models.FeedbackForm, error) {
	if err := r.ParseForm(); err != nil {
		return models.FeedbackForm{}, err
	}

	return models.FeedbackForm{
		Title:   strings.TrimSpace(r.PostForm.Get("title")),
		Content: strings.TrimSpace(r.PostForm.Get("content")),
	}, nil
}
