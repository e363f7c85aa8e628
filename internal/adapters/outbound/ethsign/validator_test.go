package ethsign_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/signet/internal/adapters/outbound/ethsign"
	"github.com/sufield/signet/internal/domain"
)

// Checksummed addresses from the EIP-55 specification examples.
const (
	checksummed1 = "0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAed"
	checksummed2 = "0xfB6916095ca1df60bB79Ce92cE3Ea74c37c5d359"
)

func TestValidator_AcceptsChecksummed(t *testing.T) {
	t.Parallel()
	v := ethsign.NewValidator()

	addr, err := v.Validate(checksummed1)
	require.NoError(t, err)
	assert.Equal(t, checksummed1, addr.String())
}

func TestValidator_AcceptsLowercase(t *testing.T) {
	t.Parallel()
	v := ethsign.NewValidator()

	addr, err := v.Validate(strings.ToLower(checksummed2))
	require.NoError(t, err)
	// Output is always the canonical checksummed form.
	assert.Equal(t, checksummed2, addr.String())
}

func TestValidator_AcceptsUppercase(t *testing.T) {
	t.Parallel()
	v := ethsign.NewValidator()

	upper := "0x" + strings.ToUpper(checksummed1[2:])
	addr, err := v.Validate(upper)
	require.NoError(t, err)
	assert.Equal(t, checksummed1, addr.String())
}

func TestValidator_RejectsBadChecksum(t *testing.T) {
	t.Parallel()
	v := ethsign.NewValidator()

	// Flip the casing of one checksum-bearing letter.
	bad := strings.Replace(checksummed1, "aA", "aa", 1)
	require.NotEqual(t, checksummed1, bad)

	_, err := v.Validate(bad)
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalidAddress)
}

func TestValidator_RejectsMalformed(t *testing.T) {
	t.Parallel()
	v := ethsign.NewValidator()

	for _, candidate := range []string{
		"",
		"not-an-address",
		"0x1234",
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAe",    // 39 hex chars
		"0x5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAedd",  // 41 hex chars
		"0xzzAeb6053F3E94C9b9A09f33669435E7Ef1BeAed",   // bad charset
		"5aAeb6053F3E94C9b9A09f33669435E7Ef1BeAedXX",   // no prefix, bad charset
	} {
		_, err := v.Validate(candidate)
		assert.ErrorIs(t, err, domain.ErrInvalidAddress, "candidate %q", candidate)
	}
}

func TestValidator_Idempotent(t *testing.T) {
	t.Parallel()
	v := ethsign.NewValidator()

	lower := strings.ToLower(checksummed1)
	first, err := v.Validate(lower)
	require.NoError(t, err)
	second, err := v.Validate(lower)
	require.NoError(t, err)
	assert.Equal(t, first, second)

	// Validating the validator's own output round-trips.
	again, err := v.Validate(first.String())
	require.NoError(t, err)
	assert.Equal(t, first, again)
}
