package swish

import (
	"crypto/tls"
	"crypto/x509"
	"fmt"
	"net/http"
	"os"
	"time"

	pkcs12 "software.sslmate.com/src/go-pkcs12"
)

// readCertFile loads certificate material from disk. A missing or unreadable
// file fails here, at construction, instead of surfacing as a cryptic parse
// failure inside the TLS handshake.
func readCertFile(path string) ([]byte, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, &ConfigError{Reason: fmt.Sprintf("reading certificate %q", path), Err: err}
	}
	return data, nil
}

// newHTTPClient builds the mutual-TLS client used for every Swish call. The
// root certificate is a DER-encoded anchor and is pinned: only chains rooted
// at it are trusted. The client certificate is a PKCS#12 bundle unlocked by
// the passphrase.
func newHTTPClient(rootCert, clientCert []byte, passphrase string, timeout time.Duration) (*http.Client, error) {
	root, err := x509.ParseCertificate(rootCert)
	if err != nil {
		return nil, &ConfigError{Reason: "parsing root certificate", Err: err}
	}
	pool := x509.NewCertPool()
	pool.AddCert(root)

	key, cert, err := pkcs12.Decode(clientCert, passphrase)
	if err != nil {
		return nil, &ConfigError{Reason: "decoding client certificate bundle", Err: err}
	}

	tlsConfig := &tls.Config{
		Certificates: []tls.Certificate{{
			Certificate: [][]byte{cert.Raw},
			PrivateKey:  key,
		}},
		RootCAs:    pool,
		MinVersion: tls.VersionTLS12,
	}

	return &http.Client{
		Timeout: timeout,
		Transport: &http.Transport{
			TLSClientConfig: tlsConfig,
		},
	}, nil
}
