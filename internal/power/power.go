// Package power sequences fleet power-on: bulk or paced per-node switch
// calls, then a fixed settle window during which the nodes boot.
package power

import (
	"context"
	"os"
	"time"

	"github.com/mattn/go-isatty"
	"github.com/schollz/progressbar/v3"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/observe"
)

// Switch is the opaque power-on primitive. The controller issues calls
// fire-and-forget: a failed call is not retried and does not abort the
// sequence, so the hardware pacing below stays exact.
type Switch interface {
	// PowerOnAll powers every slot with the bulk directive.
	PowerOnAll(ctx context.Context) error

	// PowerOn powers the slot with the given 1-based index.
	PowerOn(ctx context.Context, index int) error
}

// Controller implements the power-on sequencing.
type Controller struct {
	Switch   Switch
	Observer observe.Observer

	// Pacing separates per-node power-on calls; Settle is the fixed boot
	// wait after the last call. Production values are the config constants;
	// tests shorten them.
	Pacing time.Duration
	Settle time.Duration

	// Countdown renders the settle wait as a progress bar. Callers enable
	// it for verbose runs on an interactive terminal; EnableCountdown
	// applies that check.
	Countdown bool

	// sleep is swapped in tests to record the blocking waits.
	sleep func(time.Duration)
}

// New returns a Controller with the production timing constants.
func New(sw Switch, obs observe.Observer) *Controller {
	return &Controller{
		Switch:   sw,
		Observer: obs,
		Pacing:   config.PowerOnPacing,
		Settle:   config.SettleWindow,
		sleep:    time.Sleep,
	}
}

// EnableCountdown turns the settle countdown on when verbose output goes
// to an interactive terminal.
func (c *Controller) EnableCountdown(verbose bool) {
	c.Countdown = verbose && isatty.IsTerminal(os.Stdout.Fd())
}

// PowerOn turns on nodes 1..count and blocks for the settle window.
//
// count == MaxNodes uses the board's single bulk directive; otherwise the
// slots are switched one at a time with the pacing delay between calls.
// Switch failures are deliberately discarded.
func (c *Controller) PowerOn(ctx context.Context, count int) {
	if count == config.MaxNodes {
		c.Observer.Printf("powering on all %d nodes", count)
		_ = c.Switch.PowerOnAll(ctx)
	} else {
		for i := 1; i <= count; i++ {
			c.Observer.Printf("powering on node p%d", i)
			_ = c.Switch.PowerOn(ctx, i)
			if i < count {
				c.wait(c.Pacing)
			}
		}
	}

	c.Observer.Printf("waiting %s for nodes to boot", c.Settle)
	c.settle()
}

// settle blocks for the fixed boot window, optionally rendering a
// one-tick-per-second countdown. Total wall time is the same either way.
func (c *Controller) settle() {
	seconds := int(c.Settle / time.Second)
	if !c.Countdown || seconds == 0 {
		c.wait(c.Settle)
		return
	}

	bar := progressbar.NewOptions(seconds,
		progressbar.OptionSetDescription("booting"),
		progressbar.OptionClearOnFinish(),
	)
	for range seconds {
		c.wait(time.Second)
		_ = bar.Add(1)
	}
}

func (c *Controller) wait(d time.Duration) {
	if c.sleep != nil {
		c.sleep(d)
		return
	}
	time.Sleep(d)
}
