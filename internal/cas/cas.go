// Package cas validates CAS registry numbers.
//
// A CAS number has the form NNNNNNN-NN-N: two to seven digits, a
// hyphen, two digits, a hyphen, and a single check digit. The check
// digit is the weighted sum of the preceding digits, rightmost digit
// weighted 1 and weights increasing leftward, taken mod 10.
package cas

import "regexp"

var casPattern = regexp.MustCompile(`^\d{2,7}-\d{2}-\d$`)

// IsValid reports whether s is a well-formed CAS number with a
// matching check digit.
func IsValid(s string) bool {
	if !casPattern.MatchString(s) {
		return false
	}

	var digits []byte
	for i := 0; i < len(s); i++ {
		if s[i] != '-' {
			digits = append(digits, s[i]-'0')
		}
	}

	check := int(digits[len(digits)-1])
	body := digits[:len(digits)-1]

	sum := 0
	weight := 1
	for i := len(body) - 1; i >= 0; i-- {
		sum += int(body[i]) * weight
		weight++
	}

	return sum%10 == check
}

// CheckDigit computes the expected check digit for the digit groups
// before the final hyphen (e.g. "7732-18"). Returns -1 when the prefix
// is not digit groups in CAS form.
func CheckDigit(prefix string) int {
	if !regexp.MustCompile(`^\d{2,7}-\d{2}$`).MatchString(prefix) {
		return -1
	}

	var digits []byte
	for i := 0; i < len(prefix); i++ {
		if prefix[i] != '-' {
			digits = append(digits, prefix[i]-'0')
		}
	}

	sum := 0
	weight := 1
	for i := len(digits) - 1; i >= 0; i-- {
		sum += int(digits[i]) * weight
		weight++
	}

	return sum % 10
}
