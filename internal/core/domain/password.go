package domain

import "strconv"

// PasswordPolicy describes the rules a new password must satisfy.
type PasswordPolicy struct {
	MinLength        int
	RequireDigit     bool
	RequireLowercase bool
	RequireUppercase bool
	RequireSymbol    bool
}

// DefaultPasswordPolicy: six characters, one digit, one lowercase letter.
var DefaultPasswordPolicy = PasswordPolicy{
	MinLength:        6,
	RequireDigit:     true,
	RequireLowercase: true,
}

// Check returns every rule the password violates, or nil. Character classes
// are ASCII: a non-ASCII letter counts as a symbol.
func (p PasswordPolicy) Check(password string) []string {
	var hasDigit, hasLower, hasUpper, hasSymbol bool
	length := 0
	for _, r := range password {
		length++
		switch {
		case r >= '0' && r <= '9':
			hasDigit = true
		case r >= 'a' && r <= 'z':
			hasLower = true
		case r >= 'A' && r <= 'Z':
			hasUpper = true
		default:
			hasSymbol = true
		}
	}

	var violations []string
	if length < p.MinLength {
		violations = append(violations, "password must be at least "+strconv.Itoa(p.MinLength)+" characters")
	}
	if p.RequireDigit && !hasDigit {
		violations = append(violations, "password must contain at least one digit ('0'-'9')")
	}
	if p.RequireLowercase && !hasLower {
		violations = append(violations, "password must contain at least one lowercase letter ('a'-'z')")
	}
	if p.RequireUppercase && !hasUpper {
		violations = append(violations, "password must contain at least one uppercase letter ('A'-'Z')")
	}
	if p.RequireSymbol && !hasSymbol {
		violations = append(violations, "password must contain at least one non-alphanumeric character")
	}
	return violations
}
