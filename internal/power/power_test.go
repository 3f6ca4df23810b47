package power

import (
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/config"
	"github.com/PaulBrownMagic/ClusterHat-Distribute/internal/observe"
	ctesting "github.com/PaulBrownMagic/ClusterHat-Distribute/internal/testing"
)

// newTestController wires a controller with recorded sleeps and short timings.
func newTestController(sw Switch) (*Controller, *[]time.Duration) {
	sleeps := &[]time.Duration{}
	c := &Controller{
		Switch:   sw,
		Observer: observe.Nop{},
		Pacing:   config.PowerOnPacing,
		Settle:   config.SettleWindow,
		sleep:    func(d time.Duration) { *sleeps = append(*sleeps, d) },
	}
	return c, sleeps
}

func TestPowerOn_FullFleetUsesBulkDirective(t *testing.T) {
	t.Parallel()

	sw := ctesting.NewMockSwitch().WithPowerOnAll()
	c, sleeps := newTestController(sw)

	c.PowerOn(context.Background(), config.MaxNodes)

	sw.AssertCalled(t, "PowerOnAll")
	sw.AssertNotCalled(t, "PowerOn")
	// Bulk dispatch has no pacing, only the settle wait.
	require.Len(t, *sleeps, 1)
	assert.Equal(t, config.SettleWindow, (*sleeps)[0])
}

func TestPowerOn_PartialFleetIsPaced(t *testing.T) {
	t.Parallel()

	sw := ctesting.NewMockSwitch().WithPowerOn()
	c, sleeps := newTestController(sw)

	c.PowerOn(context.Background(), 3)

	sw.AssertNotCalled(t, "PowerOnAll")
	sw.AssertNumberOfCalls(t, "PowerOn", 3)
	for i := 1; i <= 3; i++ {
		sw.AssertCalledWithIndex(t, i)
	}

	// Two pacing delays between three calls, then one settle wait.
	require.Len(t, *sleeps, 3)
	assert.Equal(t, config.PowerOnPacing, (*sleeps)[0])
	assert.Equal(t, config.PowerOnPacing, (*sleeps)[1])
	assert.Equal(t, config.SettleWindow, (*sleeps)[2])
}

func TestPowerOn_SingleNode(t *testing.T) {
	t.Parallel()

	sw := ctesting.NewMockSwitch().WithPowerOn()
	c, sleeps := newTestController(sw)

	c.PowerOn(context.Background(), 1)

	sw.AssertNumberOfCalls(t, "PowerOn", 1)
	// No pacing for a single call; settle only.
	require.Len(t, *sleeps, 1)
	assert.Equal(t, config.SettleWindow, (*sleeps)[0])
}

func TestPowerOn_SwitchFailuresAreDiscarded(t *testing.T) {
	t.Parallel()

	sw := ctesting.NewMockSwitch().WithPowerOnFailing()
	c, sleeps := newTestController(sw)

	// Must not panic or abort: all three calls issued, settle still runs.
	c.PowerOn(context.Background(), 3)

	sw.AssertNumberOfCalls(t, "PowerOn", 3)
	assert.Equal(t, config.SettleWindow, (*sleeps)[len(*sleeps)-1])
}

func TestPowerOn_CountdownTicksPerSecond(t *testing.T) {
	t.Parallel()

	sw := ctesting.NewMockSwitch().WithPowerOn()
	c, sleeps := newTestController(sw)
	c.Settle = 3 * time.Second
	c.Countdown = true

	c.PowerOn(context.Background(), 1)

	// Three one-second ticks instead of one blocking settle sleep.
	require.Len(t, *sleeps, 3)
	for _, d := range *sleeps {
		assert.Equal(t, time.Second, d)
	}
}

func TestNew_ProductionDefaults(t *testing.T) {
	t.Parallel()

	c := New(ctesting.NewMockSwitch(), observe.Nop{})

	assert.Equal(t, config.PowerOnPacing, c.Pacing)
	assert.Equal(t, config.SettleWindow, c.Settle)
}
