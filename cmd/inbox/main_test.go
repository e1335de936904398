package main

import (
	"testing"
	"time"

	"github.com/spf13/cobra"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"threadline/web/internal/apiclient"
	"threadline/web/internal/cache"
)

func TestSessionContext_RequiresToken(t *testing.T) {
	t.Setenv("THREADLINE_TOKEN", "")
	cmd := &cobra.Command{}
	cmd.Flags().String("token", "", "")

	_, err := sessionContext(t.Context(), cmd)
	assert.ErrorIs(t, err, errNoToken)

	t.Setenv("THREADLINE_TOKEN", "env-token")
	ctx, err := sessionContext(t.Context(), cmd)
	require.NoError(t, err)
	assert.Equal(t, "env-token", apiclient.TokenFromContext(ctx))
}

func TestRootCommand_RegistersSubcommands(t *testing.T) {
	names := make(map[string]bool)
	for _, c := range rootCmd.Commands() {
		names[c.Name()] = true
	}
	for _, want := range []string{"login", "watch", "send", "unread", "suppliers"} {
		assert.True(t, names[want], want)
	}
}

func TestFollow_ReturnsWhenSubscriptionCloses(t *testing.T) {
	updates := make(chan cache.Entry, 1)
	updates <- cache.Entry{Data: "first"}
	close(updates)

	var seen []any
	done := make(chan struct{})
	go func() {
		follow(t.Context(), updates, func(e cache.Entry) { seen = append(seen, e.Data) })
		close(done)
	}()

	select {
	case <-done:
	case <-time.After(time.Second):
		t.Fatal("follow kept reading a closed subscription")
	}
	assert.Equal(t, []any{"first"}, seen)
}
