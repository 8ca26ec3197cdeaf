package swish

import (
	"crypto/rand"
	"crypto/rsa"
	"crypto/x509"
	"crypto/x509/pkix"
	"math/big"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// testCertFiles writes a self-signed certificate to disk twice: once as a
// DER root and once as a passphrase-protected PKCS#12 bundle, the two
// formats Swish hands out to merchants.
func testCertFiles(t *testing.T, passphrase string) (rootCertPath, certPath string) {
	t.Helper()

	key, err := rsa.GenerateKey(rand.Reader, 2048)
	require.NoError(t, err)

	template := &x509.Certificate{
		SerialNumber:          big.NewInt(1),
		Subject:               pkix.Name{CommonName: "1231181189"},
		NotBefore:             time.Now().Add(-time.Hour),
		NotAfter:              time.Now().Add(24 * time.Hour),
		KeyUsage:              x509.KeyUsageDigitalSignature | x509.KeyUsageCertSign,
		BasicConstraintsValid: true,
		IsCA:                  true,
	}
	der, err := x509.CreateCertificate(rand.Reader, template, template, &key.PublicKey, key)
	require.NoError(t, err)

	cert, err := x509.ParseCertificate(der)
	require.NoError(t, err)

	bundle, err := pkcs12.Modern.Encode(key, cert, nil, passphrase)
	require.NoError(t, err)

	dir := t.TempDir()
	rootCertPath = filepath.Join(dir, "root_cert.der")
	certPath = filepath.Join(dir, "test_cert.p12")
	require.NoError(t, os.WriteFile(rootCertPath, der, 0o600))
	require.NoError(t, os.WriteFile(certPath, bundle, 0o600))
	return rootCertPath, certPath
}

func TestNewClient_BuildsTransportFromCerts(t *testing.T) {
	rootCertPath, certPath := testCertFiles(t, "swish")

	client, err := NewClient(Config{
		MerchantNumber: "1231181189",
		CertPath:       certPath,
		RootCertPath:   rootCertPath,
		Passphrase:     "swish",
		Timeout:        10 * time.Second,
	})

	require.NoError(t, err)
	assert.NotNil(t, client)
}

func TestNewClient_WrongPassphrase(t *testing.T) {
	rootCertPath, certPath := testCertFiles(t, "swish")

	_, err := NewClient(Config{
		MerchantNumber: "1231181189",
		CertPath:       certPath,
		RootCertPath:   rootCertPath,
		Passphrase:     "wrong",
	})

	cfgErr, ok := IsConfigError(err)
	require.True(t, ok)
	assert.Contains(t, cfgErr.Reason, "client certificate bundle")
}

func TestNewClient_MissingCertFile(t *testing.T) {
	rootCertPath, _ := testCertFiles(t, "swish")
	missing := filepath.Join(t.TempDir(), "nope.p12")

	_, err := NewClient(Config{
		MerchantNumber: "1231181189",
		CertPath:       missing,
		RootCertPath:   rootCertPath,
		Passphrase:     "swish",
	})

	// The failure names the unreadable path instead of surfacing later as a
	// TLS parse error.
	cfgErr, ok := IsConfigError(err)
	require.True(t, ok)
	assert.Contains(t, cfgErr.Reason, missing)
}

func TestNewClient_BadRootCert(t *testing.T) {
	_, certPath := testCertFiles(t, "swish")
	badRoot := filepath.Join(t.TempDir(), "root_cert.der")
	require.NoError(t, os.WriteFile(badRoot, []byte("not a certificate"), 0o600))

	_, err := NewClient(Config{
		MerchantNumber: "1231181189",
		CertPath:       certPath,
		RootCertPath:   badRoot,
		Passphrase:     "swish",
	})

	cfgErr, ok := IsConfigError(err)
	require.True(t, ok)
	assert.Contains(t, cfgErr.Reason, "root certificate")
}
