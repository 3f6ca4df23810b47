package config

import "time"

// Fleet topology and power timing constants.
//
// MaxNodes and the bulk "all" power directive reflect the ClusterHAT
// hardware: four Pi Zero slots on one controller board.
const (
	// MaxNodes is the number of node slots on the controller board.
	MaxNodes = 4

	// PowerOnPacing is the delay between per-node power-on calls.
	// It paces power-rail transients and must not be shortened or
	// parallelized away.
	PowerOnPacing = 200 * time.Millisecond

	// SettleWindow is the unconditional wait after power-on before any
	// network operation. There is no liveness probing; this fixed window
	// is assumed sufficient for the nodes to boot.
	SettleWindow = 30 * time.Second
)

// Fleet addressing defaults (ClusterHAT conventions: pi@p1.local..pi@p4.local).
const (
	DefaultUser         = "pi"
	DefaultHostPrefix   = "p"
	DefaultDomainSuffix = ".local"
)

// Transport names selectable via configuration.
const (
	// TransportOpenSSH shells out to the ssh and scp client binaries.
	TransportOpenSSH = "openssh"
	// TransportSSH dials nodes directly with a native SSH client.
	TransportSSH = "ssh"
)

// DefaultPowerTool is the ClusterHAT control binary.
const DefaultPowerTool = "clusterhat"

// FileName is the configuration file looked up in the current directory
// and then in $HOME.
const FileName = "distribute.yaml"
