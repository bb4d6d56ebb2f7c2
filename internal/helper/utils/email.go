package utils

import "regexp"

var emailPattern = regexp.MustCompile(`^[^@]+@[^\.]+\.\w+$`)

func IsEmail(s string) bool {
	return emailPattern.MatchString(s)
}
