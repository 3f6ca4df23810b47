package handlers

import (
	"context"
	"fmt"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/observe"
)

// Power handles the standalone power command: switch nodes 1..count on
// and wait out the boot window, without distributing anything.
func Power(ctx context.Context, nodeCount int, verbose bool) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	count := nodeCount
	if count == 0 {
		count = cfg.NodeCount
	}
	if err := config.ValidateNodeCount(count); err != nil {
		return err
	}

	obs := observe.New(verbose)
	powerOn(ctx, cfg, obs, verbose, count)

	printDone(fmt.Sprintf("Powered on %d node(s)", count))
	return nil
}
