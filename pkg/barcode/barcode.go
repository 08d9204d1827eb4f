// Package barcode classifies retail barcode digit strings into their
// symbology and verifies their check digits. All functions are pure and
// safe for concurrent use.
package barcode

import (
	"encoding/json"
	"strings"
)

// Symbology identifies a barcode encoding standard.
type Symbology int

const (
	Invalid Symbology = iota
	EAN13
	EAN8
	UPCA
	UPCE
)

func (s Symbology) String() string {
	switch s {
	case EAN13:
		return "EAN-13"
	case EAN8:
		return "EAN-8"
	case UPCA:
		return "UPC-A"
	case UPCE:
		return "UPC-E"
	default:
		return "invalid"
	}
}

// MarshalJSON renders the symbology as its display name.
func (s Symbology) MarshalJSON() ([]byte, error) {
	return json.Marshal(s.String())
}

// Reason explains why a barcode was rejected, or OK when it was accepted.
type Reason int

const (
	OK Reason = iota
	Empty
	NonNumeric
	TooShort
	TooLong
	UnsupportedLength
	ChecksumMismatch
)

func (r Reason) String() string {
	switch r {
	case OK:
		return "ok"
	case Empty:
		return "empty"
	case NonNumeric:
		return "non-numeric"
	case TooShort:
		return "too-short"
	case TooLong:
		return "too-long"
	case UnsupportedLength:
		return "unsupported-length"
	case ChecksumMismatch:
		return "checksum-mismatch"
	default:
		return "unknown"
	}
}

// MarshalJSON renders the reason as its display name.
func (r Reason) MarshalJSON() ([]byte, error) {
	return json.Marshal(r.String())
}

// Result is the outcome of validating a single input string.
type Result struct {
	Valid     bool      `json:"valid"`
	Symbology Symbology `json:"symbology"`
	Reason    Reason    `json:"reason"`
	Message   string    `json:"message"`
}

// isDigits reports whether s is non-empty and consists of ASCII digits only.
func isDigits(s string) bool {
	if s == "" {
		return false
	}
	for i := 0; i < len(s); i++ {
		if s[i] < '0' || s[i] > '9' {
			return false
		}
	}
	return true
}

// checkDigit computes the EAN/UPC modulo-10 check digit over the payload
// digits. startWeight is the multiplier applied at index 0; weights then
// alternate between startWeight and its counterpart (1<->3).
func checkDigit(payload string, startWeight int) int {
	other := 4 - startWeight // 1 <-> 3
	sum := 0
	for i := 0; i < len(payload); i++ {
		d := int(payload[i] - '0')
		if i%2 == 0 {
			sum += d * startWeight
		} else {
			sum += d * other
		}
	}
	return (10 - sum%10) % 10
}

// validEAN13 verifies the check digit of a 13-digit string. EAN-13 weights
// the leftmost digit by 1 and alternates 1,3,1,3,...
func validEAN13(s string) bool {
	return checkDigit(s[:12], 1) == int(s[12]-'0')
}

// validEAN8 verifies the check digit of an 8-digit string. EAN-8 weights the
// leftmost digit by 3, matching the GS1 convention and the well-known
// 96385074 test vector.
func validEAN8(s string) bool {
	return checkDigit(s[:7], 3) == int(s[7]-'0')
}

// validUPCA verifies the check digit of a 12-digit string. UPC-A weights the
// leftmost digit by 3.
func validUPCA(s string) bool {
	return checkDigit(s[:11], 3) == int(s[11]-'0')
}

// Classify detects the symbology of a trimmed digit string. It returns
// Invalid for non-numeric input, unsupported lengths, and failed checksums.
// UPC-E codes (6-8 digits) are accepted on format alone: a full UPC-E check
// requires expansion to UPC-A, which the catalog does not need.
func Classify(input string) Symbology {
	s := strings.TrimSpace(input)
	if !isDigits(s) {
		return Invalid
	}
	switch len(s) {
	case 13:
		if validEAN13(s) {
			return EAN13
		}
	case 12:
		if validUPCA(s) {
			return UPCA
		}
	case 8:
		if validEAN8(s) {
			return EAN8
		}
		// An 8-digit code that fails the EAN-8 checksum may still be a
		// zero-suppressed UPC-E code.
		return UPCE
	case 6, 7:
		return UPCE
	}
	return Invalid
}

// Validate checks an input string and reports whether it is an acceptable
// barcode, which symbology it belongs to, and a human-readable message for
// rejections.
func Validate(input string) Result {
	s := strings.TrimSpace(input)

	if s == "" {
		return Result{Reason: Empty, Message: "barcode is required"}
	}
	if !isDigits(s) {
		return Result{Reason: NonNumeric, Message: "barcode must contain only digits"}
	}

	switch n := len(s); {
	case n < 6:
		return Result{Reason: TooShort, Message: "barcode is too short: expected 8, 12, or 13 digits"}
	case n > 13:
		return Result{Reason: TooLong, Message: "barcode is too long: expected 8, 12, or 13 digits"}
	case n >= 9 && n <= 11:
		return Result{Reason: UnsupportedLength, Message: "no symbology uses this length: expected 8, 12, or 13 digits"}
	}

	sym := Classify(s)
	if sym == Invalid {
		return Result{Reason: ChecksumMismatch, Message: "check digit verification failed"}
	}
	return Result{Valid: true, Symbology: sym, Message: "valid " + sym.String() + " barcode"}
}
