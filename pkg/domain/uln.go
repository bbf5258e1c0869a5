// Package domain contains the validated domain primitives for learner
// records. Construct values via the ParseX factories at trust boundaries;
// direct struct literals cannot carry a validated value because the fields
// are unexported.
package domain

import (
	"fmt"
	"regexp"

	dErrors "uln/pkg/domain-errors"
)

// ULN is a validated Unique Learner Number: 9 decimal digits followed by a
// check digit, as issued for UK education records.
//
// Invariants:
//   - Every non-zero ULN in existence has passed format and checksum
//     validation (the value field is unexported, so the only construction
//     paths outside this package are ParseULN and UnmarshalText).
//   - The wrapped value never changes after construction.
//
// The zero value is not a valid number; use IsZero to detect it.
type ULN struct {
	value string
}

// 9 digits plus exactly one check digit. [0-9] keeps this ASCII-only.
var ulnPattern = regexp.MustCompile(`^[0-9]{9}[0-9]$`)

// ParseULN constructs a ULN from external input.
//
// Usage: call from handlers/adapters when parsing requests or records.
//
// Errors: CodeInvalidFormat when the candidate is not 10 decimal digits;
// CodeInvalidChecksum when the shape is right but the check digit does not
// verify (including the remainder-zero case, for which no check digit is
// valid). No other errors are expected.
func ParseULN(s string) (ULN, error) {
	ok, err := IsValidULN(s)
	if err != nil {
		return ULN{}, err
	}
	if !ok {
		return ULN{}, dErrors.Newf(dErrors.CodeInvalidChecksum, "check digit does not verify for %q", s)
	}
	return ULN{value: s}, nil
}

// IsValidULN reports whether a candidate passes the ULN checksum.
//
// The two failure modes signal differently, matching the reference behavior
// downstream callers depend on: a shape mismatch is an error
// (CodeInvalidFormat), while a well-formed candidate with a bad check digit
// is (false, nil). Callers that want a single outcome should use ParseULN.
//
// The checksum weights the first 9 digits 10 down to 2 (left to right) and
// takes the sum mod 11. A remainder of 0 means no check digit can verify,
// so the candidate is invalid; otherwise the candidate is valid exactly when
// its 10th digit equals 10 minus the remainder.
func IsValidULN(s string) (bool, error) {
	if !ulnPattern.MatchString(s) {
		return false, dErrors.Newf(dErrors.CodeInvalidFormat, "candidate %q is not 9 digits followed by a check digit", s)
	}
	sum := 0
	for i := 0; i < 9; i++ {
		sum += (10 - i) * int(s[i]-'0')
	}
	remainder := sum % 11
	if remainder == 0 {
		return false, nil
	}
	return int(s[9]-'0') == 10-remainder, nil
}

// RequireValid guards an API boundary that accepts a learner number as
// either a raw string or an already-validated ULN. The input is returned
// unchanged on success: strings stay strings, ULNs pass through without
// re-validation.
//
// Errors: CodeNullInput for nil; CodeInvalidFormat or CodeInvalidChecksum
// for a string that fails validation; CodeWrongType for any other dynamic
// type.
func RequireValid(v any) (any, error) {
	switch c := v.(type) {
	case nil:
		return nil, dErrors.New(dErrors.CodeNullInput, "learner number is required")
	case ULN:
		return c, nil
	case string:
		ok, err := IsValidULN(c)
		if err != nil {
			return nil, err
		}
		if !ok {
			return nil, dErrors.Newf(dErrors.CodeInvalidChecksum, "check digit does not verify for %q", c)
		}
		return c, nil
	default:
		return nil, dErrors.Newf(dErrors.CodeWrongType, "expected string or ULN, got %T", v)
	}
}

// Equals reports value equality. Anything that is not a ULN compares
// unequal, including structural look-alikes that happen to carry the same
// digits.
func (u ULN) Equals(other any) bool {
	o, ok := other.(ULN)
	return ok && o.value == u.value
}

// Value returns the wrapped 10-digit string.
func (u ULN) Value() string {
	return u.value
}

// IsZero reports whether u is the (invalid) zero value.
func (u ULN) IsZero() bool {
	return u.value == ""
}

// String returns the display form, e.g. ULN(0000000042).
func (u ULN) String() string {
	return fmt.Sprintf("ULN(%s)", u.value)
}

// GoString makes the %#v debug verb render the same display form as String
// instead of a field dump.
func (u ULN) GoString() string {
	return u.String()
}

// MarshalText implements encoding.TextMarshaler. The zero value cannot be
// marshalled.
func (u ULN) MarshalText() ([]byte, error) {
	if u.IsZero() {
		return nil, dErrors.New(dErrors.CodeInvalidFormat, "cannot marshal zero ULN")
	}
	return []byte(u.value), nil
}

// UnmarshalText implements encoding.TextUnmarshaler, validating the input so
// decoded values hold the same invariant as parsed ones. The receiver is
// left untouched on failure.
func (u *ULN) UnmarshalText(b []byte) error {
	parsed, err := ParseULN(string(b))
	if err != nil {
		return err
	}
	*u = parsed
	return nil
}
