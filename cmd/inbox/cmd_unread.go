package main

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
)

var unreadCmd = &cobra.Command{
	Use:   "unread",
	Short: "Print the unread message count",
	RunE:  runUnread,
}

func init() {
	unreadCmd.Flags().BoolP("watch", "w", false, "Keep polling and print the count whenever it changes")
}

func runUnread(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	ctx, err := sessionContext(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	if watch, _ := cmd.Flags().GetBool("watch"); !watch {
		count, err := eng.messages.UnreadCount(ctx)
		if err != nil {
			return err
		}
		fmt.Fprintln(cmd.OutOrStdout(), count.Count)
		return nil
	}

	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	updates, cancel := eng.messages.SubscribeUnread(ctx)
	defer cancel()
	if err := eng.messages.WatchInbox(ctx); err != nil {
		return err
	}
	defer eng.poller.StopAll()
	defer pauseWhileSuspended(eng.poller)()

	last := -1
	follow(ctx, updates, func(entry cache.Entry) {
		if entry.Err != nil {
			eng.log.Warn("Unread count refresh failed", "error", entry.Err)
		}
		count, ok := entry.Data.(model.UnreadCount)
		if !ok || count.Count == last {
			return
		}
		last = count.Count
		fmt.Fprintln(cmd.OutOrStdout(), count.Count)
	})
	return nil
}
