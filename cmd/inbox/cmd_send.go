package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"threadline/web/internal/model"
)

var sendCmd = &cobra.Command{
	Use:   "send <conversation-id> <message>",
	Short: "Send a message to a conversation",
	Args:  cobra.MinimumNArgs(2),
	RunE:  runSend,
}

func runSend(cmd *cobra.Command, args []string) error {
	conversationID, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil {
		return fmt.Errorf("invalid conversation id %q", args[0])
	}
	body := strings.Join(args[1:], " ")

	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	ctx, err := sessionContext(cmd.Context(), cmd)
	if err != nil {
		return err
	}

	user, err := eng.auth.CurrentUser(ctx)
	if err != nil {
		return err
	}
	// Loading the thread first lets the send show up optimistically.
	if _, err := eng.messages.Thread(ctx, conversationID, 1); err != nil {
		return err
	}

	sender := model.Participant{ID: user.ID, Name: user.Name, Role: user.Role}
	msg, err := eng.messages.Send(ctx, conversationID, sender, body)
	if err != nil {
		return err
	}
	fmt.Fprintf(cmd.OutOrStdout(), "Sent #%d at %s\n", msg.ID, msg.CreatedAt.Local().Format("15:04:05"))
	return nil
}
