package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/spf13/cobra"

	"threadline/web/internal/cache"
	"threadline/web/internal/model"
	"threadline/web/internal/pagination"
)

var watchCmd = &cobra.Command{
	Use:   "watch <conversation-id>",
	Short: "Follow a conversation until interrupted",
	Args:  cobra.ExactArgs(1),
	RunE:  runWatch,
}

func init() {
	watchCmd.Flags().Int("history", 0, "Pages of older messages to print first")
}

func runWatch(cmd *cobra.Command, args []string) error {
	conversationID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid conversation id %q", args[0])
	}

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, err = sessionContext(ctx, cmd)
	if err != nil {
		return err
	}

	seen := make(map[string]bool)
	out := cmd.OutOrStdout()

	if pages, _ := cmd.Flags().GetInt("history"); pages > 0 {
		var history pagination.Infinite[model.Message]
		for range pages {
			more, err := eng.messages.LoadOlder(ctx, conversationID, &history)
			if err != nil {
				return err
			}
			if !more {
				break
			}
		}
		msgs := history.Items()
		model.SortMessages(msgs)
		printNew(out, msgs, seen)
	}

	updates, cancel := eng.messages.SubscribeThread(ctx, conversationID)
	defer cancel()
	if err := eng.messages.WatchThread(ctx, conversationID); err != nil {
		return err
	}
	defer eng.poller.StopAll()
	defer pauseWhileSuspended(eng.poller)()

	follow(ctx, updates, func(entry cache.Entry) {
		if entry.Err != nil {
			eng.log.Warn("Thread refresh failed", "conversation_id", conversationID, "error", entry.Err)
		}
		if page, ok := entry.Data.(pagination.Page[model.Message]); ok {
			printNew(out, page.Data, seen)
		}
	})
	eng.messages.StopWatching(ctx, conversationID)
	return nil
}

// printNew writes messages not printed before. A provisional message is
// printed again once the server confirms it.
func printNew(out io.Writer, msgs []model.Message, seen map[string]bool) {
	for _, m := range msgs {
		id := "id-" + strconv.FormatInt(m.ID, 10)
		if m.Provisional {
			id = m.ClientID
		}
		if seen[id] {
			continue
		}
		seen[id] = true

		name := strconv.FormatInt(m.SenderID, 10)
		if m.Sender != nil && m.Sender.Name != "" {
			name = m.Sender.Name
		}
		suffix := ""
		if m.Provisional {
			suffix = " (sending)"
		}
		fmt.Fprintf(out, "[%s] %s: %s%s\n", m.CreatedAt.Local().Format("15:04"), name, m.Body, suffix)
	}
}
