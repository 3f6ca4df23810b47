// Package fleet maps node indices to connection identities.
//
// The fleet topology is static: node i is reachable at
// "<host prefix><i><domain suffix>" as a fixed SSH user. There is no
// discovery and no per-node state; nodes are addressed, not tracked.
package fleet

import "fmt"

// Addressing derives connection identities from a node index.
type Addressing struct {
	HostPrefix   string
	DomainSuffix string
	User         string
}

// Node identifies one subordinate compute unit in the fleet.
type Node struct {
	Index int
	Host  string
	User  string
}

// Node returns the connection identity for the 1-based index i.
// Input is caller-validated; out-of-range indices are not checked here.
func (a Addressing) Node(i int) Node {
	return Node{
		Index: i,
		Host:  fmt.Sprintf("%s%d%s", a.HostPrefix, i, a.DomainSuffix),
		User:  a.User,
	}
}

// Targets returns nodes 1..count in index order.
func (a Addressing) Targets(count int) []Node {
	nodes := make([]Node, 0, count)
	for i := 1; i <= count; i++ {
		nodes = append(nodes, a.Node(i))
	}
	return nodes
}

// Address returns the user@host form used by the ssh and scp clients.
func (n Node) Address() string {
	return n.User + "@" + n.Host
}
