package barcode

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestValidate(t *testing.T) {
	testCases := []struct {
		name      string
		input     string
		valid     bool
		symbology Symbology
		reason    Reason
	}{
		{
			name:      "known-good EAN-13",
			input:     "4006381333931",
			valid:     true,
			symbology: EAN13,
			reason:    OK,
		},
		{
			name:   "EAN-13 with wrong check digit",
			input:  "4006381333932",
			reason: ChecksumMismatch,
		},
		{
			name:      "known-good EAN-8",
			input:     "96385074",
			valid:     true,
			symbology: EAN8,
			reason:    OK,
		},
		{
			name:      "known-good UPC-A",
			input:     "036000291452",
			valid:     true,
			symbology: UPCA,
			reason:    OK,
		},
		{
			name:   "UPC-A with wrong check digit",
			input:  "036000291453",
			reason: ChecksumMismatch,
		},
		{
			name:      "8 digits failing EAN-8 checksum fall back to UPC-E",
			input:     "96385075",
			valid:     true,
			symbology: UPCE,
			reason:    OK,
		},
		{
			name:      "6-digit UPC-E accepted on format alone",
			input:     "123456",
			valid:     true,
			symbology: UPCE,
			reason:    OK,
		},
		{
			name:      "7-digit UPC-E accepted on format alone",
			input:     "1234567",
			valid:     true,
			symbology: UPCE,
			reason:    OK,
		},
		{
			name:      "surrounding whitespace is trimmed",
			input:     "  4006381333931\n",
			valid:     true,
			symbology: EAN13,
			reason:    OK,
		},
		{
			name:   "too short",
			input:  "12345",
			reason: TooShort,
		},
		{
			name:   "too long",
			input:  "12345678901234",
			reason: TooLong,
		},
		{
			name:   "nine digits match no symbology",
			input:  "123456789",
			reason: UnsupportedLength,
		},
		{
			name:   "letters rejected",
			input:  "40063813339ab",
			reason: NonNumeric,
		},
		{
			name:   "embedded space rejected",
			input:  "4006381 333931",
			reason: NonNumeric,
		},
		{
			name:   "empty input",
			input:  "",
			reason: Empty,
		},
		{
			name:   "whitespace-only input",
			input:  "   ",
			reason: Empty,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := Validate(tc.input)
			assert.Equal(t, tc.valid, got.Valid)
			assert.Equal(t, tc.symbology, got.Symbology)
			assert.Equal(t, tc.reason, got.Reason)
			assert.NotEmpty(t, got.Message)
		})
	}
}

func TestValidateIsDeterministic(t *testing.T) {
	inputs := []string{"4006381333931", "4006381333932", "96385074", "036000291452", "12345"}
	for _, in := range inputs {
		first := Validate(in)
		second := Validate(in)
		assert.Equal(t, first, second, "input %q", in)
	}
}

func TestClassify(t *testing.T) {
	assert.Equal(t, EAN13, Classify("4006381333931"))
	assert.Equal(t, UPCA, Classify("036000291452"))
	assert.Equal(t, EAN8, Classify("96385074"))
	assert.Equal(t, UPCE, Classify("425261"))
	assert.Equal(t, Invalid, Classify("4006381333932"))
	assert.Equal(t, Invalid, Classify("not-a-barcode"))
	assert.Equal(t, Invalid, Classify(""))
}
