package entity

import (
	"fmt"
	"regexp"
	"strings"
	"time"

	domainerrors "shop/internal/domain/errors"
)

var trackingNumberPattern = regexp.MustCompile(`^[A-Z0-9\-]{5,50}$`)

// TrackingNumber is a carrier tracking identifier: 5 to 50 uppercase
// characters, case-normalized on creation.
type TrackingNumber struct {
	value string
}

// NewTrackingNumber creates a TrackingNumber from raw input.
func NewTrackingNumber(raw string) (TrackingNumber, error) {
	return newValueObject(TrackingNumber{value: strings.ToUpper(strings.TrimSpace(raw))})
}

// GenerateTrackingNumber builds a fresh tracking number from the clock date
// and ten random characters drawn from the injected source.
func GenerateTrackingNumber(now time.Time, rnd RandSource) TrackingNumber {
	suffix := make([]byte, 10)
	for i := range suffix {
		suffix[i] = orderNumberAlphabet[rnd.IntN(len(orderNumberAlphabet))]
	}

	return TrackingNumber{value: fmt.Sprintf("TRK-%s-%s", now.Format("20060102"), suffix)}
}

func (t TrackingNumber) validate() error {
	if !trackingNumberPattern.MatchString(t.value) {
		return domainerrors.ErrValidationFailed.WrapMessage(
			fmt.Sprintf("tracking number %q must be 5-50 uppercase characters", t.value))
	}

	return nil
}

// Value returns the tracking number string.
func (t TrackingNumber) Value() string {
	return t.value
}

// Equals reports value equality.
func (t TrackingNumber) Equals(other TrackingNumber) bool {
	return t.value == other.value
}

func (t TrackingNumber) String() string {
	return t.value
}
