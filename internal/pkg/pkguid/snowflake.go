package pkguid

import (
	"crypto/rand"
	"encoding/binary"
	"errors"
	"fmt"

	"github.com/bwmarrin/snowflake"
)

const (
	// Epoch is the Snowflake epoch in Unix milliseconds (2025-12-01T00:00:00Z).
	Epoch int64 = 1764547200000

	nodeBits       = 10
	maxNodeID      = 1<<nodeBits - 1
	randomNodeFlag = -1
)

// ErrNodeOutOfRange is returned for node IDs outside 0..1023.
var ErrNodeOutOfRange = errors.New("pkguid: snowflake node out of range")

// Snowflake generates numeric IDs using the Snowflake algorithm.
type Snowflake struct {
	node *snowflake.Node
}

func randomNodeID() (int64, error) {
	var n uint16
	if err := binary.Read(rand.Reader, binary.BigEndian, &n); err != nil {
		return 0, fmt.Errorf("pkguid: random node id: %w", err)
	}

	return int64(n) & maxNodeID, nil
}

// NewSnowflake constructs a Snowflake generator on a random node.
func NewSnowflake() (*Snowflake, error) {
	return NewSnowflakeNode(randomNodeFlag)
}

// NewSnowflakeNode constructs a Snowflake generator on the given node.
// A negative node picks one at random.
func NewSnowflakeNode(node int64) (*Snowflake, error) {
	if node < 0 {
		n, err := randomNodeID()
		if err != nil {
			return nil, err
		}
		node = n
	}
	if node > maxNodeID {
		return nil, fmt.Errorf("%w: %d", ErrNodeOutOfRange, node)
	}

	snowflake.Epoch = Epoch

	n, err := snowflake.NewNode(node)
	if err != nil {
		return nil, fmt.Errorf("pkguid: snowflake node %d: %w", node, err)
	}

	return &Snowflake{node: n}, nil
}

// Generate returns a new unique numeric ID.
func (s *Snowflake) Generate() int64 {
	return s.node.Generate().Int64()
}
