package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"threadline/web/internal/model"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Sign in and print a bearer token",
	RunE:  runLogin,
}

func init() {
	loginCmd.Flags().String("email", "", "Account email")
	loginCmd.Flags().String("password", "", "Account password")
	loginCmd.Flags().BoolP("quiet", "q", false, "Print only the token")
	_ = loginCmd.MarkFlagRequired("email")
	_ = loginCmd.MarkFlagRequired("password")
}

func runLogin(cmd *cobra.Command, args []string) error {
	eng, err := newEngine(cmd)
	if err != nil {
		return err
	}
	email, _ := cmd.Flags().GetString("email")
	password, _ := cmd.Flags().GetString("password")

	session, err := eng.auth.Login(cmd.Context(), model.LoginRequest{Email: email, Password: password})
	if err != nil {
		return err
	}

	if quiet, _ := cmd.Flags().GetBool("quiet"); quiet {
		fmt.Fprintln(cmd.OutOrStdout(), session.Token)
		return nil
	}
	out := cmd.OutOrStdout()
	fmt.Fprintf(out, "Signed in as %s (%s)\n", session.User.Name, session.User.Role)
	fmt.Fprintf(out, "Landing page: %s\n", session.Redirect)
	fmt.Fprintf(out, "export THREADLINE_TOKEN=%s\n", session.Token)
	return nil
}
