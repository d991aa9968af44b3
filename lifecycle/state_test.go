package lifecycle_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/vkngwrapper/vulkan-window/lifecycle"
)

func TestCanTransition(t *testing.T) {
	valid := [][2]lifecycle.State{
		{lifecycle.Unstarted, lifecycle.WindowReady},
		{lifecycle.WindowReady, lifecycle.InstanceReady},
		{lifecycle.InstanceReady, lifecycle.Running},
		{lifecycle.Running, lifecycle.ShutDown},
		{lifecycle.Unstarted, lifecycle.Failed},
		{lifecycle.WindowReady, lifecycle.Failed},
		{lifecycle.InstanceReady, lifecycle.Failed},
		{lifecycle.Running, lifecycle.Failed},
	}
	for _, pair := range valid {
		assert.True(t, lifecycle.CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}

	invalid := [][2]lifecycle.State{
		{lifecycle.Unstarted, lifecycle.Running},
		{lifecycle.WindowReady, lifecycle.ShutDown},
		{lifecycle.Running, lifecycle.WindowReady},
		{lifecycle.ShutDown, lifecycle.Unstarted},
		{lifecycle.ShutDown, lifecycle.Failed},
		{lifecycle.Failed, lifecycle.ShutDown},
	}
	for _, pair := range invalid {
		assert.False(t, lifecycle.CanTransition(pair[0], pair[1]), "%s -> %s", pair[0], pair[1])
	}
}

func TestStateString(t *testing.T) {
	assert.Equal(t, "InstanceReady", lifecycle.InstanceReady.String())
	assert.Equal(t, "Unknown", lifecycle.State(42).String())
}
