package notifier

import (
	"bytes"
	"fmt"
	"html/template"
	"net/smtp"
	"time"

	"macdealtracker/internal/deal"
	"macdealtracker/logger"
	"macdealtracker/pkg/errors"
)

// EmailConfig holds the SMTP settings for deal alerts
type EmailConfig struct {
	SMTPServer string
	SMTPPort   int
	Sender     string
	Password   string
	Recipient  string
}

// EmailNotifier implements Notifier by sending an HTML digest over SMTP
type EmailNotifier struct {
	config EmailConfig
	log    *logger.Logger
}

// NewEmailNotifier creates a new email notifier
func NewEmailNotifier(config EmailConfig) *EmailNotifier {
	return &EmailNotifier{
		config: config,
		log:    logger.ForNotifier(),
	}
}

var bodyTemplate = template.Must(template.New("deals").Funcs(template.FuncMap{
	"truncate": func(s string, n int) string {
		if len(s) <= n {
			return s
		}
		return s[:n] + "..."
	},
	"price": func(p float64) string {
		return fmt.Sprintf("$%.2f", p)
	},
	"inc": func(i int) int { return i + 1 },
}).Parse(`<html>
<head>
<style>
body { font-family: Arial, sans-serif; margin: 0; padding: 20px; }
.header { background-color: #f8f9fa; padding: 20px; border-radius: 5px; margin-bottom: 20px; }
.deal { border: 1px solid #ddd; margin: 10px 0; padding: 15px; border-radius: 5px; }
.deal-title { font-weight: bold; color: #333; margin-bottom: 5px; }
.deal-price { color: #28a745; font-size: 18px; font-weight: bold; }
.deal-specs { color: #666; font-size: 14px; margin: 5px 0; }
.deal-link { color: #007bff; text-decoration: none; }
</style>
</head>
<body>
<div class="header">
<h1>Best MacBook Deals Found</h1>
<p>Here are the top refurbished MacBook deals found on eBay:</p>
</div>
{{range $i, $d := .}}<div class="deal">
<div class="deal-title">#{{inc $i}}. {{truncate $d.Title 100}}</div>
<div class="deal-price">{{price $d.Price}}</div>
<div class="deal-specs">{{$d.Model}} ({{$d.Year}}) | {{$d.ScreenSize}}&quot; | {{$d.MemoryGB}}GB RAM | {{$d.StorageGB}}GB Storage</div>
<div class="deal-specs">{{$d.Location}} | {{$d.Shipping}}</div>
<a href="{{$d.Link}}" class="deal-link">View on eBay</a>
</div>
{{end}}</body>
</html>
`))

// SendDeals sends an HTML email with the ranked deals. Missing email
// configuration is a warn-and-skip, never an error, so an unconfigured
// tracker still runs the rest of the pipeline.
func (n *EmailNotifier) SendDeals(deals []deal.Deal) error {
	if n.config.Sender == "" || n.config.Recipient == "" {
		n.log.Warn().Msg("Email configuration missing, skipping email alert")
		return nil
	}
	if len(deals) == 0 {
		return nil
	}

	body, err := renderBody(deals)
	if err != nil {
		return errors.NewNotification("email", "failed to render email body", err)
	}

	subject := fmt.Sprintf("Best MacBook Deals - %s", time.Now().Format("2006-01-02"))
	msg := buildMessage(n.config.Sender, n.config.Recipient, subject, body)

	addr := fmt.Sprintf("%s:%d", n.config.SMTPServer, n.config.SMTPPort)
	auth := smtp.PlainAuth("", n.config.Sender, n.config.Password, n.config.SMTPServer)

	if err := smtp.SendMail(addr, auth, n.config.Sender, []string{n.config.Recipient}, msg); err != nil {
		return errors.NewNotification("email", "failed to send email", err)
	}

	n.log.Info().
		Int("deal_count", len(deals)).
		Str("recipient", n.config.Recipient).
		Msg("Email alert sent")

	return nil
}

// renderBody renders the HTML digest for the given deals
func renderBody(deals []deal.Deal) (string, error) {
	var buf bytes.Buffer
	if err := bodyTemplate.Execute(&buf, deals); err != nil {
		return "", err
	}
	return buf.String(), nil
}

// buildMessage assembles an RFC 822 message with an HTML body
func buildMessage(from, to, subject, body string) []byte {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "From: %s\r\n", from)
	fmt.Fprintf(&buf, "To: %s\r\n", to)
	fmt.Fprintf(&buf, "Subject: %s\r\n", subject)
	buf.WriteString("MIME-Version: 1.0\r\n")
	buf.WriteString("Content-Type: text/html; charset=\"UTF-8\"\r\n")
	buf.WriteString("\r\n")
	buf.WriteString(body)
	return buf.Bytes()
}
