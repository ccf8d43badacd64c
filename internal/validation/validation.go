// Package validation holds the explicit per-input validators. Each input shape
// gets one function that returns a structured list of field errors, evaluated
// before any store access.
package validation

import (
	"regexp"
	"strings"
)

// FieldError describes a single invalid input field.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

var emailPattern = regexp.MustCompile(`^[^\s@]+@[^\s@]+\.[^\s@]+$`)

// ValidateSignup checks the signup input shape.
func ValidateSignup(name, email, password string) []FieldError {
	var errs []FieldError

	name = strings.TrimSpace(name)
	if name == "" {
		errs = append(errs, FieldError{Field: "name", Message: "Name is required."})
	} else if len(name) < 3 {
		errs = append(errs, FieldError{Field: "name", Message: "Name should be at least 3 characters long."})
	}

	errs = append(errs, validateEmail(email)...)
	errs = append(errs, validatePassword(password)...)

	return errs
}

// ValidateLogin checks the login input shape.
func ValidateLogin(email, password string) []FieldError {
	var errs []FieldError
	errs = append(errs, validateEmail(email)...)
	errs = append(errs, validatePassword(password)...)
	return errs
}

// ValidateBookInput checks the writable book fields shared by add and update.
func ValidateBookInput(title, author, description string) []FieldError {
	var errs []FieldError

	if strings.TrimSpace(title) == "" {
		errs = append(errs, FieldError{Field: "title", Message: "Title is required."})
	}
	if strings.TrimSpace(author) == "" {
		errs = append(errs, FieldError{Field: "author", Message: "Author is required."})
	}
	if strings.TrimSpace(description) == "" {
		errs = append(errs, FieldError{Field: "description", Message: "Description is required."})
	}

	return errs
}

func validateEmail(email string) []FieldError {
	email = strings.TrimSpace(email)
	if email == "" {
		return []FieldError{{Field: "email", Message: "Email is required."}}
	}
	if !emailPattern.MatchString(email) {
		return []FieldError{{Field: "email", Message: "Please provide a valid email address."}}
	}
	return nil
}

func validatePassword(password string) []FieldError {
	if password == "" {
		return []FieldError{{Field: "password", Message: "Password is required."}}
	}
	if len(password) < 6 {
		return []FieldError{{Field: "password", Message: "Password must be at least 6 characters long."}}
	}
	return nil
}
