// Package validate выполняет клиентскую проверку форм до любого сетевого
// вызова. Правила повторяют формы входа и регистрации интерфейса;
// окончательную проверку всегда делает бэкенд.
package validate

import (
	"regexp"
	"strings"
)

var (
	emailRegex    = regexp.MustCompile(`^\S+@\S+\.\S+$`)
	usernameRegex = regexp.MustCompile(`^[a-zA-Z0-9_]+$`)
	lowerRegex    = regexp.MustCompile(`[a-z]`)
	upperRegex    = regexp.MustCompile(`[A-Z]`)
	digitRegex    = regexp.MustCompile(`\d`)
)

// Errors содержит сообщения об ошибках по именам полей
type Errors map[string]string

// Valid сообщает, что ошибок нет
func (e Errors) Valid() bool { return len(e) == 0 }

// LoginInput содержит поля формы входа
type LoginInput struct {
	Username string
	Password string
}

// Validate проверяет форму входа
func (in LoginInput) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(in.Username) == "" {
		errs["username"] = "Username is required"
	}

	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < 6 {
		errs["password"] = "Password must be at least 6 characters"
	}

	return errs
}

// RegisterInput содержит поля формы регистрации
type RegisterInput struct {
	Email           string
	Username        string
	Password        string
	ConfirmPassword string
	FirstName       string
	LastName        string
}

// Validate проверяет форму регистрации
func (in RegisterInput) Validate() Errors {
	errs := Errors{}

	if strings.TrimSpace(in.Email) == "" {
		errs["email"] = "Email is required"
	} else if !emailRegex.MatchString(in.Email) {
		errs["email"] = "Please enter a valid email address"
	}

	if strings.TrimSpace(in.Username) == "" {
		errs["username"] = "Username is required"
	} else if len(in.Username) < 3 {
		errs["username"] = "Username must be at least 3 characters"
	} else if !usernameRegex.MatchString(in.Username) {
		errs["username"] = "Username can only contain letters, numbers, and underscores"
	}

	if in.Password == "" {
		errs["password"] = "Password is required"
	} else if len(in.Password) < 8 {
		errs["password"] = "Password must be at least 8 characters"
	} else if !lowerRegex.MatchString(in.Password) ||
		!upperRegex.MatchString(in.Password) ||
		!digitRegex.MatchString(in.Password) {
		errs["password"] = "Password must contain at least one uppercase letter, one lowercase letter, and one number"
	}

	if in.ConfirmPassword == "" {
		errs["confirm_password"] = "Please confirm your password"
	} else if in.Password != in.ConfirmPassword {
		errs["confirm_password"] = "Passwords do not match"
	}

	if strings.TrimSpace(in.FirstName) == "" {
		errs["first_name"] = "First name is required"
	}
	if strings.TrimSpace(in.LastName) == "" {
		errs["last_name"] = "Last name is required"
	}

	return errs
}
