package ssh

import (
	"bytes"
	"crypto/ed25519"
	"crypto/rand"
	"encoding/pem"
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/ssh"
)

// testPrivateKey generates a PEM-encoded ed25519 key for client construction.
func testPrivateKey(t *testing.T) []byte {
	t.Helper()

	_, priv, err := ed25519.GenerateKey(rand.Reader)
	require.NoError(t, err)

	block, err := ssh.MarshalPrivateKey(priv, "")
	require.NoError(t, err)

	return pem.EncodeToMemory(block)
}

func TestNew_AppliesDefaults(t *testing.T) {
	t.Parallel()

	comm, err := New(Config{PrivateKey: testPrivateKey(t)})
	require.NoError(t, err)

	assert.Equal(t, defaultPort, comm.config.Port)
	assert.Equal(t, defaultDialTimeout, comm.config.DialTimeout)
	assert.Equal(t, defaultDialAttempts, comm.config.DialAttempts)
	assert.Equal(t, defaultDialInterval, comm.config.DialInterval)
}

func TestNew_KeepsExplicitValues(t *testing.T) {
	t.Parallel()

	comm, err := New(Config{
		PrivateKey:   testPrivateKey(t),
		Port:         2222,
		DialTimeout:  time.Second,
		DialAttempts: 1,
		DialInterval: time.Millisecond,
	})
	require.NoError(t, err)

	assert.Equal(t, 2222, comm.config.Port)
	assert.Equal(t, 1, comm.config.DialAttempts)
}

func TestNew_RejectsEmptyKey(t *testing.T) {
	t.Parallel()

	_, err := New(Config{})
	assert.ErrorContains(t, err, "private key cannot be empty")
}

func TestNew_RejectsMalformedKey(t *testing.T) {
	t.Parallel()

	_, err := New(Config{PrivateKey: []byte("not a key")})
	assert.ErrorContains(t, err, "failed to parse private key")
}

func TestNewFromKeyFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "id_ed25519")
	require.NoError(t, os.WriteFile(path, testPrivateKey(t), 0o600))

	comm, err := NewFromKeyFile(path)
	require.NoError(t, err)
	assert.NotNil(t, comm)
}

func TestNewFromKeyFile_Missing(t *testing.T) {
	t.Parallel()

	_, err := NewFromKeyFile(filepath.Join(t.TempDir(), "absent"))
	assert.ErrorContains(t, err, "failed to read private key")
}

func TestSendFile_SinkFraming(t *testing.T) {
	t.Parallel()

	var buf bytes.Buffer
	content := []byte("hello fleet\n")

	err := sendFile(nopWriteCloser{&buf}, bytes.NewReader(content), int64(len(content)), "a.txt")
	require.NoError(t, err)

	expected := "C0644 12 a.txt\nhello fleet\n\x00"
	assert.Equal(t, expected, buf.String())
}

type nopWriteCloser struct {
	*bytes.Buffer
}

func (nopWriteCloser) Close() error { return nil }
