// Package notification delivers the monthly summary email over SMTP.
package notification

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"gopkg.in/gomail.v2"

	"github.com/nunsahui/cafeledger/internal/core/domain"
	portssvc "github.com/nunsahui/cafeledger/internal/core/ports/services"
	"github.com/nunsahui/cafeledger/internal/platform/config"
	"github.com/nunsahui/cafeledger/internal/utils"
)

// Mailer sends summary emails through a configured SMTP relay.
type Mailer struct {
	dialer *gomail.Dialer
	from   string
}

// NewMailer creates the SMTP dispatcher from the application config.
func NewMailer(cfg *config.Config) *Mailer {
	return &Mailer{
		dialer: gomail.NewDialer(cfg.SMTPHost, cfg.SMTPPort, cfg.SMTPUsername, cfg.SMTPPassword),
		from:   cfg.SMTPFrom,
	}
}

var _ portssvc.NotificationDispatcher = (*Mailer)(nil)

type summaryEmailData struct {
	CafeName     string
	Month        string
	Year         int
	Income       string
	Expenses     string
	Balance      string
	IncomeCount  int
	ExpenseCount int
	Status       string
	StatusColor  string
	PanelBg      string
	PanelFg      string
}

// SendMonthlySummary renders the HTML summary and delivers it to the
// configured recipient. The context is checked before dialing since gomail
// has no context support of its own.
func (m *Mailer) SendMonthlySummary(ctx context.Context, summary domain.MonthlySummary, cafeName string) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	data := summaryEmailData{
		CafeName:     cafeName,
		Month:        summary.Month.String(),
		Year:         summary.Year,
		Income:       utils.FormatAmount(summary.TotalIncome, 2),
		Expenses:     utils.FormatAmount(summary.TotalExpenses, 2),
		Balance:      utils.FormatAmount(summary.NetBalance.Abs(), 2),
		IncomeCount:  summary.IncomeCount,
		ExpenseCount: summary.ExpenseCount,
	}
	if summary.NetBalance.IsNegative() {
		data.Status = "Loss"
		data.StatusColor = "#dc2626"
		data.PanelBg = "#fee2e2"
		data.PanelFg = "#991b1b"
	} else {
		data.Status = "Profit"
		data.StatusColor = "#16a34a"
		data.PanelBg = "#dcfce7"
		data.PanelFg = "#166534"
	}

	var body bytes.Buffer
	if err := summaryTemplate.Execute(&body, data); err != nil {
		return fmt.Errorf("failed to render summary email: %w", err)
	}

	msg := gomail.NewMessage()
	msg.SetHeader("From", m.from)
	msg.SetHeader("To", summary.RecipientEmail)
	msg.SetHeader("Subject", fmt.Sprintf("Monthly Financial Report - %s %d", data.Month, data.Year))
	msg.SetBody("text/html", body.String())

	if err := m.dialer.DialAndSend(msg); err != nil {
		return fmt.Errorf("failed to send summary email: %w", err)
	}
	return nil
}

var summaryTemplate = template.Must(template.New("monthly-summary").Parse(`<!DOCTYPE html>
<html>
<head>
  <meta charset="utf-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
</head>
<body style="font-family: Arial, sans-serif; line-height: 1.6; color: #333; max-width: 600px; margin: 0 auto; padding: 20px;">
  <div style="background: linear-gradient(135deg, #0d9488 0%, #065f46 100%); padding: 30px; text-align: center; border-radius: 10px 10px 0 0;">
    <h1 style="color: white; margin: 0; font-size: 24px;">{{.CafeName}}</h1>
    <p style="color: rgba(255,255,255,0.9); margin: 10px 0 0;">Monthly Financial Report</p>
  </div>

  <div style="background: #f8fafc; padding: 30px; border: 1px solid #e2e8f0; border-top: none; border-radius: 0 0 10px 10px;">
    <h2 style="color: #0f766e; margin-top: 0;">{{.Month}} {{.Year}} Summary</h2>

    <div style="background: #dcfce7; padding: 20px; border-radius: 8px; text-align: center; margin-bottom: 20px;">
      <p style="margin: 0; color: #166534; font-size: 12px; text-transform: uppercase;">Total Income</p>
      <p style="margin: 5px 0 0; color: #16a34a; font-size: 20px; font-weight: bold;">{{.Income}}</p>
      <p style="margin: 5px 0 0; color: #166534; font-size: 12px;">{{.IncomeCount}} transactions</p>
    </div>

    <div style="background: #fee2e2; padding: 20px; border-radius: 8px; text-align: center; margin-bottom: 20px;">
      <p style="margin: 0; color: #991b1b; font-size: 12px; text-transform: uppercase;">Total Expenses</p>
      <p style="margin: 5px 0 0; color: #dc2626; font-size: 20px; font-weight: bold;">{{.Expenses}}</p>
      <p style="margin: 5px 0 0; color: #991b1b; font-size: 12px;">{{.ExpenseCount}} transactions</p>
    </div>

    <div style="background: {{.PanelBg}}; padding: 25px; border-radius: 8px; text-align: center; margin-bottom: 20px;">
      <p style="margin: 0; color: {{.PanelFg}}; font-size: 14px; text-transform: uppercase;">Net {{.Status}}</p>
      <p style="margin: 10px 0 0; color: {{.StatusColor}}; font-size: 28px; font-weight: bold;">{{.Balance}}</p>
    </div>

    <hr style="border: none; border-top: 1px solid #e2e8f0; margin: 25px 0;">

    <p style="font-size: 12px; color: #64748b; text-align: center; margin: 0;">
      This is an automated report from the {{.CafeName}} finance system.
    </p>
  </div>
</body>
</html>
`))
