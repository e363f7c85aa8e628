package ethsign_test

import (
	"testing"

	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/ethereum/go-ethereum/crypto"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/sufield/signet/internal/adapters/outbound/ethsign"
	"github.com/sufield/signet/internal/domain"
)

func newTestSigner(t *testing.T) (*ethsign.Signer, string) {
	t.Helper()
	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexKey := hexutil.Encode(crypto.FromECDSA(key))
	signer, err := ethsign.NewSigner(hexKey)
	require.NoError(t, err)
	return signer, crypto.PubkeyToAddress(key.PublicKey).Hex()
}

func TestNewSigner_DerivesAddress(t *testing.T) {
	t.Parallel()

	signer, wantAddr := newTestSigner(t)
	assert.Equal(t, wantAddr, signer.Address().String())
}

func TestNewSigner_AcceptsBarePrefix(t *testing.T) {
	t.Parallel()

	key, err := crypto.GenerateKey()
	require.NoError(t, err)
	hexKey := hexutil.Encode(crypto.FromECDSA(key))

	withPrefix, err := ethsign.NewSigner(hexKey)
	require.NoError(t, err)
	withoutPrefix, err := ethsign.NewSigner(hexKey[2:])
	require.NoError(t, err)
	assert.Equal(t, withPrefix.Address(), withoutPrefix.Address())
}

func TestNewSigner_RejectsBadKeys(t *testing.T) {
	t.Parallel()

	for _, hexKey := range []string{
		"",
		"0x",
		"not-hex",
		"0x1234",
		"0x0000000000000000000000000000000000000000000000000000000000000000",
	} {
		_, err := ethsign.NewSigner(hexKey)
		assert.ErrorIs(t, err, domain.ErrSigningUnavailable, "key %q", hexKey)
	}
}

func TestSignMessage_RecoversToApprover(t *testing.T) {
	t.Parallel()

	signer, _ := newTestSigner(t)
	message := "Requesting Signature To Approve ENS Records Signer\n\ntest body"

	sigHex, err := signer.SignMessage(message)
	require.NoError(t, err)

	sig, err := hexutil.Decode(sigHex)
	require.NoError(t, err)
	require.Len(t, sig, 65)
	require.Contains(t, []byte{27, 28}, sig[64], "V must use the ethereum convention")

	// Recover the signing address the way a third-party verifier would.
	sig[64] -= 27
	pub, err := crypto.SigToPub(ethsign.MessageDigest(message), sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address().String(), crypto.PubkeyToAddress(*pub).Hex())
}

func TestSignMessage_CoversApprovalTemplate(t *testing.T) {
	t.Parallel()

	signer, _ := newTestSigner(t)
	payload := domain.BuildApprovalMessage(
		"alice",
		"0x1234resolver",
		1,
		domain.NewAddressFromChecksummed("0xd8dA6BF26964aF9D7eEd9e03E53415D37aA96045"),
	)

	sigHex, err := signer.SignMessage(payload)
	require.NoError(t, err)

	sig, err := hexutil.Decode(sigHex)
	require.NoError(t, err)
	sig[64] -= 27
	pub, err := crypto.SigToPub(ethsign.MessageDigest(payload), sig)
	require.NoError(t, err)
	assert.Equal(t, signer.Address().String(), crypto.PubkeyToAddress(*pub).Hex())
}

func TestMessageDigest_MatchesEIP191(t *testing.T) {
	t.Parallel()

	msg := "hello"
	want := crypto.Keccak256([]byte("\x19Ethereum Signed Message:\n5hello"))
	assert.Equal(t, want, ethsign.MessageDigest(msg))
}
