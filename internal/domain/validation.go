package domain

import "regexp"

var (
	emailRe    = regexp.MustCompile(`^[^@\s]+@[^@\s]+\.[^@\s]+$`)
	usernameRe = regexp.MustCompile(`^[A-Za-z0-9_]{3,25}$`)
)

func ValidEmail(s string) bool {
	return len(s) <= 40 && emailRe.MatchString(s)
}

func ValidUsername(s string) bool {
	return usernameRe.MatchString(s)
}

// Пароль: минимум 6 символов (как в исходных требованиях), максимум 72
func ValidPassword(s string) bool {
	return len(s) >= 6 && len(s) <= 72
}

func ValidRating(n int) bool { return n >= 1 && n <= 5 }
