// Package domain models the customer directory.
package domain

import "strings"

// MaxNameLength bounds first and last names.
const MaxNameLength = 100

// MaxEmailLength bounds email addresses.
const MaxEmailLength = 255

// Customer is the directory aggregate.
type Customer struct {
	ID        int
	FirstName string
	LastName  string
	Email     string
}

// ValidEmail reports whether the address has the minimal shape
// local@domain.tld with a non-empty label after the last dot.
func ValidEmail(email string) bool {
	if strings.TrimSpace(email) == "" || len(email) < 5 || len(email) > MaxEmailLength {
		return false
	}
	atIndex := strings.Index(email, "@")
	if atIndex <= 0 || atIndex != strings.LastIndex(email, "@") {
		return false
	}
	localPart := email[:atIndex]
	domainPart := email[atIndex+1:]
	if strings.TrimSpace(localPart) == "" || strings.TrimSpace(domainPart) == "" {
		return false
	}
	if !strings.Contains(domainPart, ".") ||
		strings.HasPrefix(domainPart, ".") ||
		strings.HasSuffix(domainPart, ".") ||
		strings.Contains(domainPart, "..") {
		return false
	}
	return true
}
