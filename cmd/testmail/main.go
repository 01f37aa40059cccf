// Command testmail sends one test message through the configured mail
// transport, using the same environment as the server.
//
//	SMTP_HOST=smtp.hostinger.com SMTP_PORT=465 SMTP_IMPLICIT_TLS=true \
//	SMTP_USERNAME=... SMTP_PASSWORD=... testmail -to someone@example.com
//
// Check the mailbox for the printed token to confirm reception.
package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"strconv"
	"time"

	"github.com/cln-solutions/contactform/config"
	"github.com/cln-solutions/contactform/pkg/logger"
	"github.com/cln-solutions/contactform/pkg/mailer"
)

var version = "dev"

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(args []string) error {
	fs := flag.NewFlagSet("testmail", flag.ContinueOnError)
	to := fs.String("to", "", "recipient (defaults to CONTACT_ADDRESS)")
	prefix := fs.String("subject-prefix", "[CLN mailbox test]", "subject prefix")
	if err := fs.Parse(args); err != nil {
		return err
	}

	cfg, err := config.Load()
	if err != nil {
		return err
	}
	log := logger.New(cfg.Log)

	transport, _, err := cfg.Mail.Transport(log)
	if err != nil {
		return err
	}
	mailCfg := cfg.Mail.Mailer
	if mailCfg.XMailer == "" {
		mailCfg.XMailer = "cln-contactform/" + version
	}
	m := mailer.New(transport, mailCfg)

	recipient := *to
	if recipient == "" {
		recipient = cfg.Contact.Address
	}
	token := strconv.FormatInt(time.Now().Unix(), 10)

	email := &mailer.Email{
		To:      []string{recipient},
		From:    mailer.Recipient(cfg.Contact.SenderName, cfg.Contact.Address),
		Subject: *prefix + " " + token,
		Text: "Bonjour,\n\n" +
			"Ce message automatique vérifie l'envoi depuis " + cfg.Contact.Address + ".\n" +
			"Identifiant: " + token + "\n\n" +
			"Cordialement.\n",
	}

	fmt.Printf("Sending test email with token %s to %s via %s...\n", token, recipient, cfg.Mail.Driver)
	if err := m.Send(context.Background(), email); err != nil {
		return fmt.Errorf("send failed: %w", err)
	}
	fmt.Println("Send succeeded.")
	return nil
}
