// Package ssh implements the remote primitives with a native SSH client
// instead of shelling out to the OpenSSH binaries. Connections are dialed
// per operation with a bounded fixed-interval retry; Pi Zero nodes answer
// slowly right after the boot window.
//
// Host key verification is disabled: the fleet lives on a closed bench LAN
// and node images are reflashed often enough that pinning keys would only
// produce churn.
package ssh

import (
	"context"
	"fmt"
	"io"
	"os"
	"path"
	"time"

	"golang.org/x/crypto/ssh"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/fleet"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/util/backoff"
)

const (
	defaultPort         = 22
	defaultDialTimeout  = 10 * time.Second
	defaultDialAttempts = 3
	defaultDialInterval = 2 * time.Second
)

// Config holds native transport configuration.
type Config struct {
	// Port is the SSH port on every node. Defaults to 22.
	Port int

	// PrivateKey is the PEM-encoded private key used for every node.
	PrivateKey []byte

	// DialTimeout is the timeout for establishing one TCP connection.
	DialTimeout time.Duration

	// DialAttempts and DialInterval bound the fixed-interval dial retry.
	// Retrying stops at the transport boundary: remote operations
	// themselves are never retried.
	DialAttempts int
	DialInterval time.Duration
}

// Communicator executes remote operations over native SSH connections.
// The private key is parsed once during construction.
type Communicator struct {
	config Config
	signer ssh.Signer
}

// New creates a Communicator and validates the private key.
func New(cfg Config) (*Communicator, error) {
	if len(cfg.PrivateKey) == 0 {
		return nil, fmt.Errorf("private key cannot be empty")
	}

	if cfg.Port == 0 {
		cfg.Port = defaultPort
	}
	if cfg.DialTimeout == 0 {
		cfg.DialTimeout = defaultDialTimeout
	}
	if cfg.DialAttempts == 0 {
		cfg.DialAttempts = defaultDialAttempts
	}
	if cfg.DialInterval == 0 {
		cfg.DialInterval = defaultDialInterval
	}

	signer, err := ssh.ParsePrivateKey(cfg.PrivateKey)
	if err != nil {
		return nil, fmt.Errorf("failed to parse private key: %w", err)
	}

	return &Communicator{config: cfg, signer: signer}, nil
}

// NewFromKeyFile creates a Communicator reading the private key from path.
func NewFromKeyFile(keyPath string) (*Communicator, error) {
	// #nosec G304 - path comes from the operator's own configuration
	key, err := os.ReadFile(keyPath)
	if err != nil {
		return nil, fmt.Errorf("failed to read private key %s: %w", keyPath, err)
	}
	return New(Config{PrivateKey: key})
}

// EnsureDir creates dir and missing parents on the node.
func (c *Communicator) EnsureDir(ctx context.Context, node fleet.Node, dir string) error {
	_, err := c.Execute(ctx, node, "mkdir -p "+dir)
	return err
}

// Execute runs a command on the node and returns its combined output.
func (c *Communicator) Execute(ctx context.Context, node fleet.Node, command string) (string, error) {
	client, err := c.connect(ctx, node)
	if err != nil {
		return "", err
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return "", fmt.Errorf("failed to create session on %s: %w", node.Host, err)
	}
	defer func() { _ = session.Close() }()

	output, err := session.CombinedOutput(command)
	if err != nil {
		return string(output), fmt.Errorf("command failed on %s: %w", node.Host, err)
	}
	return string(output), nil
}

// Copy transfers localPath to remotePath on the node using the SCP sink
// protocol ("scp -t" on the remote side).
func (c *Communicator) Copy(ctx context.Context, node fleet.Node, localPath, remotePath string) error {
	// #nosec G304 - path was preflight-validated against the search roots
	file, err := os.Open(localPath)
	if err != nil {
		return fmt.Errorf("failed to open %s: %w", localPath, err)
	}
	defer func() { _ = file.Close() }()

	info, err := file.Stat()
	if err != nil {
		return fmt.Errorf("failed to stat %s: %w", localPath, err)
	}

	client, err := c.connect(ctx, node)
	if err != nil {
		return err
	}
	defer func() { _ = client.Close() }()

	session, err := client.NewSession()
	if err != nil {
		return fmt.Errorf("failed to create session on %s: %w", node.Host, err)
	}
	defer func() { _ = session.Close() }()

	remoteDir, remoteName := path.Split(remotePath)

	stdin, err := session.StdinPipe()
	if err != nil {
		return fmt.Errorf("failed to open stdin on %s: %w", node.Host, err)
	}

	if err := session.Start("scp -t " + remoteDir); err != nil {
		return fmt.Errorf("failed to start scp sink on %s: %w", node.Host, err)
	}

	// Sink protocol: file header, contents, then a zero byte to finish.
	if err := sendFile(stdin, file, info.Size(), remoteName); err != nil {
		return fmt.Errorf("failed to send %s to %s: %w", localPath, node.Host, err)
	}

	if err := session.Wait(); err != nil {
		return fmt.Errorf("scp sink on %s failed: %w", node.Host, err)
	}
	return nil
}

// sendFile writes one file through the SCP sink stream and closes it.
func sendFile(stdin io.WriteCloser, file io.Reader, size int64, name string) error {
	defer func() { _ = stdin.Close() }()

	if _, err := fmt.Fprintf(stdin, "C0644 %d %s\n", size, name); err != nil {
		return err
	}
	if _, err := io.Copy(stdin, file); err != nil {
		return err
	}
	_, err := fmt.Fprint(stdin, "\x00")
	return err
}

// connect dials the node with bounded fixed-interval retries.
func (c *Communicator) connect(ctx context.Context, node fleet.Node) (*ssh.Client, error) {
	config := &ssh.ClientConfig{
		User:            node.User,
		Auth:            []ssh.AuthMethod{ssh.PublicKeys(c.signer)},
		HostKeyCallback: ssh.InsecureIgnoreHostKey(), // #nosec G106 - closed bench LAN
		Timeout:         c.config.DialTimeout,
	}

	addr := fmt.Sprintf("%s:%d", node.Host, c.config.Port)
	var client *ssh.Client

	err := backoff.Do(ctx, c.config.DialAttempts, c.config.DialInterval, func() error {
		var dialErr error
		client, dialErr = ssh.Dial("tcp", addr, config)
		return dialErr
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to %s: %w", addr, err)
	}
	return client, nil
}
