package entity

import (
	"math/rand/v2"
	"regexp"
	"testing"
	"time"

	domainerrors "shop/internal/domain/errors"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testRand() *rand.Rand {
	return rand.New(rand.NewPCG(42, 1))
}

func TestGenerateOrderNumberFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	number := GenerateOrderNumber(now, testRand())

	assert.Regexp(t, regexp.MustCompile(`^ORD-20260314-[A-Z0-9]{5}$`), number.Value())
}

func TestGenerateOrderNumberIsDistinct(t *testing.T) {
	rnd := testRand()
	now := time.Now().UTC()

	seen := make(map[string]struct{}, 1000)
	for range 1000 {
		number := GenerateOrderNumber(now, rnd)
		seen[number.Value()] = struct{}{}
	}

	// 36^5 possibilities; 1000 draws colliding would point at a broken source.
	assert.Greater(t, len(seen), 990)
}

func TestNewOrderNumberRejectsMalformed(t *testing.T) {
	cases := []string{
		"",
		"ORD-2026031-ABCDE",
		"ORD-20260314-abcde",
		"ORD-20260314-ABCD",
		"XXX-20260314-ABCDE",
	}
	for _, raw := range cases {
		_, err := NewOrderNumber(raw)
		assert.ErrorIs(t, err, domainerrors.ErrValidationFailed, "raw %q", raw)
	}
}

func TestGenerateTrackingNumberFormat(t *testing.T) {
	now := time.Date(2026, 3, 14, 9, 0, 0, 0, time.UTC)

	number := GenerateTrackingNumber(now, testRand())

	assert.Regexp(t, regexp.MustCompile(`^TRK-20260314-[A-Z0-9]{10}$`), number.Value())
}

func TestNewTrackingNumberNormalizesCase(t *testing.T) {
	number, err := NewTrackingNumber(" 1z999aa10123456784 ")
	require.NoError(t, err)

	assert.Equal(t, "1Z999AA10123456784", number.Value())
}

func TestNewTrackingNumberRejectsBadLength(t *testing.T) {
	_, err := NewTrackingNumber("AB12")

	require.ErrorIs(t, err, domainerrors.ErrValidationFailed)
}
