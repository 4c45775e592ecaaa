package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/phanxgames/cinescroll/contact"
)

var (
	submitName     string
	submitEmail    string
	submitCompany  string
	submitMessage  string
	submitEndpoint string
)

var submitCmd = &cobra.Command{
	Use:   "submit",
	Short: "Send one contact form through the configured relay",
	Run:   runSubmit,
}

func init() {
	f := submitCmd.Flags()
	f.StringVar(&submitName, "name", "", "sender name (required)")
	f.StringVar(&submitEmail, "email", "", "sender email (required)")
	f.StringVar(&submitCompany, "company", "", "sender company")
	f.StringVarP(&submitMessage, "message", "m", "", "message (required)")
	f.StringVar(&submitEndpoint, "endpoint", "", "override the relay endpoint")
	rootCmd.AddCommand(submitCmd)
}

func runSubmit(cmd *cobra.Command, args []string) {
	cfg, err := loadConfig()
	exitOnError(err)

	endpoint := cfg.Contact.Endpoint
	if submitEndpoint != "" {
		endpoint = submitEndpoint
	}
	p := contact.Payload{
		Name:    submitName,
		Email:   submitEmail,
		Company: submitCompany,
		Message: submitMessage,
	}
	exitOnError(p.Validate())

	client := contact.NewClient(endpoint, cfg.ContactTimeout())
	exitOnError(client.Submit(context.Background(), p))
	fmt.Fprintln(cmd.OutOrStdout(), "Message sent.")
}
