package kernel

import (
	"fmt"
	"math/rand/v2"
	"strings"
	"time"

	"github.com/ayobami7/click-and-collect-notif/internal/pkg/errs"
)

// DefaultBarcodePrefix is the store prefix applied when the caller does not
// supply one.
const DefaultBarcodePrefix = "MNS"

const (
	barcodeSegments   = 3
	barcodeDateLength = 8
	barcodeCodeLength = 6

	codeAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
)

// ErrBarcodeIsNotConstructed indicates that a Barcode was not created through
// GenerateBarcode or ParseBarcode.
var ErrBarcodeIsNotConstructed = errs.NewValueIsRequiredError(
	"Barcode must be created via GenerateBarcode or ParseBarcode",
)

// Barcode is a value object representing the unique token a customer presents
// at the collection point. Its canonical format is PREFIX-YYYYMMDD-CODE6,
// for example MNS-20250115-A3X9K2.
//
// The zero value is invalid; use GenerateBarcode or ParseBarcode. Barcode is
// immutable and safe for concurrent use.
//
// Uniqueness is not guaranteed by generation alone (36^6 codes per day per
// prefix); the store's unique constraint is the source of truth and callers
// retry generation on conflict.
type Barcode struct {
	value string
}

// GenerateBarcode creates a new random barcode for the given prefix.
// An empty prefix falls back to DefaultBarcodePrefix. The prefix must be
// purely alphabetic.
func GenerateBarcode(prefix string) (Barcode, error) {
	if prefix == "" {
		prefix = DefaultBarcodePrefix
	}
	if !isAlpha(prefix) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode prefix",
			fmt.Errorf("%q is not purely alphabetic", prefix))
	}

	value := fmt.Sprintf("%s-%s-%s",
		strings.ToUpper(prefix),
		time.Now().Format("20060102"),
		randomCode(barcodeCodeLength),
	)
	return Barcode{value: value}, nil
}

// ParseBarcode validates the structural format of a barcode string and wraps
// it as a value object. The check is purely structural: three hyphen-separated
// segments with an alphabetic prefix, an 8-digit date, and a 6-character
// alphanumeric code. Existence in the store is a separate lookup performed by
// the caller.
func ParseBarcode(s string) (Barcode, error) {
	if s == "" {
		return Barcode{}, errs.NewValueIsRequiredError("barcode")
	}

	parts := strings.Split(s, "-")
	if len(parts) != barcodeSegments {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode",
			fmt.Errorf("%q does not have %d segments", s, barcodeSegments))
	}

	prefix, date, code := parts[0], parts[1], parts[2]
	if prefix == "" || !isAlpha(prefix) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode",
			fmt.Errorf("prefix %q is not alphabetic", prefix))
	}
	if len(date) != barcodeDateLength || !isDigits(date) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode",
			fmt.Errorf("date segment %q is not %d digits", date, barcodeDateLength))
	}
	if len(code) != barcodeCodeLength || !isAlnum(code) {
		return Barcode{}, errs.NewValueIsInvalidErrorWithCause("barcode",
			fmt.Errorf("code segment %q is not %d alphanumeric characters", code, barcodeCodeLength))
	}

	return Barcode{value: s}, nil
}

// String returns the barcode in its canonical wire form.
func (b Barcode) String() string {
	return b.value
}

// IsEqual compares two barcodes by value.
func (b Barcode) IsEqual(other Barcode) bool {
	return b.value == other.value
}

// Validate checks that the barcode was properly constructed.
func (b Barcode) Validate() error {
	if b.value == "" {
		return ErrBarcodeIsNotConstructed
	}
	return nil
}

func randomCode(n int) string {
	var sb strings.Builder
	sb.Grow(n)
	for range n {
		sb.WriteByte(codeAlphabet[rand.IntN(len(codeAlphabet))])
	}
	return sb.String()
}

func isAlpha(s string) bool {
	for _, r := range s {
		if !(r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return false
		}
	}
	return s != ""
}

func isDigits(s string) bool {
	for _, r := range s {
		if r < '0' || r > '9' {
			return false
		}
	}
	return s != ""
}

func isAlnum(s string) bool {
	for _, r := range s {
		if !(r >= '0' && r <= '9' || r >= 'A' && r <= 'Z' || r >= 'a' && r <= 'z') {
			return false
		}
	}
	return s != ""
}
