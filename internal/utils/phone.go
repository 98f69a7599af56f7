package utils

import "regexp"

// Indian mobile numbers only: country code +91 followed by 10 digits
var phoneRegex = regexp.MustCompile(`^\+91\d{10}$`)

// ValidPhone reports whether s is a phone number in +91xxxxxxxxxx form.
func ValidPhone(s string) bool {
	return phoneRegex.MatchString(s)
}
