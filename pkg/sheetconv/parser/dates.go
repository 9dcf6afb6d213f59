package parser

import "strings"

// IsBuiltinDateFormat reports whether a built-in number format id renders
// dates or times.
func IsBuiltinDateFormat(id int) bool {
	switch {
	case id >= 14 && id <= 22:
		return true
	case id >= 27 && id <= 36:
		return true
	case id >= 45 && id <= 47:
		return true
	case id >= 50 && id <= 58:
		return true
	default:
		return false
	}
}

// IsDateFormatCode reports whether a custom number format code renders
// dates or times. Quoted literals, escaped characters, bracketed sections
// such as colors and locales are ignored; "General" is never a date.
func IsDateFormatCode(code string) bool {
	// Only the first section applies to positive numbers.
	if idx := sectionEnd(code); idx >= 0 {
		code = code[:idx]
	}
	if strings.EqualFold(strings.TrimSpace(code), "general") {
		return false
	}

	var (
		inQuote   bool
		inBracket bool
		escaped   bool
	)
	for _, r := range code {
		switch {
		case escaped:
			escaped = false
		case inQuote:
			if r == '"' {
				inQuote = false
			}
		case inBracket:
			if r == ']' {
				inBracket = false
			}
		case r == '\\' || r == '_' || r == '*':
			escaped = true
		case r == '"':
			inQuote = true
		case r == '[':
			inBracket = true
		default:
			switch r {
			case 'y', 'Y', 'm', 'M', 'd', 'D', 'h', 'H', 's', 'S':
				return true
			}
		}
	}
	// Elapsed time formats such as [h]:mm are bracketed.
	return strings.Contains(code, "[h]") || strings.Contains(code, "[m]") || strings.Contains(code, "[s]")
}

// sectionEnd returns the index of the first unquoted ';' in code, or -1.
func sectionEnd(code string) int {
	inQuote := false
	for i, r := range code {
		switch {
		case r == '"':
			inQuote = !inQuote
		case r == ';' && !inQuote:
			return i
		}
	}
	return -1
}
