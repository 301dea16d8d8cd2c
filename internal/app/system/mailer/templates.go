// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"

	"github.com/dalemusser/advocatehub/internal/app/system/htmlsanitize"
	"github.com/dalemusser/advocatehub/internal/domain/models"
)

const sendTimeout = 30 * time.Second

// FundRequestEmailData holds data for the fund request notification.
type FundRequestEmailData struct {
	SiteName   string
	CaseNumber string
	CaseURL    string
	Request    models.FundRequest
}

// BuildFundRequestNotice creates the staff notification for a newly
// submitted fund request, with both HTML and text bodies.
func BuildFundRequestNotice(data FundRequestEmailData) Email {
	return Email{
		To:       "", // Set by caller
		Subject:  fmt.Sprintf("[%s] Fund request for case %s", data.SiteName, data.CaseNumber),
		TextBody: buildFundRequestText(data),
		HTMLBody: buildFundRequestHTML(data),
	}
}

func buildFundRequestText(data FundRequestEmailData) string {
	fr := data.Request
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("A fund request was submitted for case %s.\n\n", data.CaseNumber))
	buf.WriteString(fmt.Sprintf("Reference:       %s\n", fr.Reference))
	buf.WriteString(fmt.Sprintf("Submitted by:    %s\n", fr.SubmitterEmail))
	buf.WriteString(fmt.Sprintf("Youth:           %s\n", fr.YouthName))
	buf.WriteString(fmt.Sprintf("Amount:          %s\n", fr.PaymentAmount))
	if fr.Deadline != "" {
		buf.WriteString(fmt.Sprintf("Deadline:        %s\n", fr.Deadline))
	}
	buf.WriteString(fmt.Sprintf("Purpose:         %s\n", htmlsanitize.Strip(fr.RequestPurpose)))
	buf.WriteString(fmt.Sprintf("Payee:           %s\n", fr.PayeeName))
	if fr.RequestedByAndRel != "" {
		buf.WriteString(fmt.Sprintf("Requested by:    %s\n", fr.RequestedByAndRel))
	}
	if fr.OtherFundingSource != "" {
		buf.WriteString(fmt.Sprintf("Other funding:   %s\n", fr.OtherFundingSource))
	}
	if fr.Impact != "" {
		buf.WriteString(fmt.Sprintf("\nImpact:\n%s\n", htmlsanitize.Strip(fr.Impact)))
	}
	if fr.ExtraInfo != "" {
		buf.WriteString(fmt.Sprintf("\nAdditional information:\n%s\n", htmlsanitize.Strip(fr.ExtraInfo)))
	}
	buf.WriteString("\nView the case:\n" + data.CaseURL + "\n")
	return buf.String()
}

func buildFundRequestHTML(data FundRequestEmailData) string {
	tmpl := template.Must(template.New("fund_request").Parse(fundRequestHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const fundRequestHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Fund Request</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 560px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 24px; font-size: 16px; color: #374151; line-height: 1.5;">
                A fund request was submitted for case <strong>{{.CaseNumber}}</strong>.
              </p>
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="font-size: 14px; color: #374151;">
                <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Reference</td><td>{{.Request.Reference}}</td></tr>
                <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Submitted by</td><td>{{.Request.SubmitterEmail}}</td></tr>
                <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Youth</td><td>{{.Request.YouthName}}</td></tr>
                <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Amount</td><td>{{.Request.PaymentAmount}}</td></tr>
                {{if .Request.Deadline}}<tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Deadline</td><td>{{.Request.Deadline}}</td></tr>{{end}}
                <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Purpose</td><td>{{.Request.RequestPurpose}}</td></tr>
                <tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Payee</td><td>{{.Request.PayeeName}}</td></tr>
                {{if .Request.RequestedByAndRel}}<tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Requested by</td><td>{{.Request.RequestedByAndRel}}</td></tr>{{end}}
                {{if .Request.OtherFundingSource}}<tr><td style="padding: 4px 12px 4px 0; color: #6b7280;">Other funding</td><td>{{.Request.OtherFundingSource}}</td></tr>{{end}}
              </table>
              {{if .Request.Impact}}
              <p style="margin: 24px 0 8px; font-size: 14px; color: #6b7280;">Impact</p>
              <p style="margin: 0; font-size: 14px; color: #374151; line-height: 1.5;">{{.Request.Impact}}</p>
              {{end}}
              {{if .Request.ExtraInfo}}
              <p style="margin: 24px 0 8px; font-size: 14px; color: #6b7280;">Additional information</p>
              <p style="margin: 0; font-size: 14px; color: #374151; line-height: 1.5;">{{.Request.ExtraInfo}}</p>
              {{end}}
              <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="margin-top: 32px;">
                <tr>
                  <td align="center">
                    <a href="{{.CaseURL}}" style="display: inline-block; padding: 12px 32px; background-color: #4f46e5; color: #ffffff; text-decoration: none; border-radius: 6px; font-size: 16px; font-weight: 600;">View Case</a>
                  </td>
                </tr>
              </table>
            </td>
          </tr>
          <tr>
            <td style="padding: 24px 32px; border-top: 1px solid #e5e7eb; text-align: center;">
              <p style="margin: 0; font-size: 12px; color: #9ca3af;">You received this because your address is on file as a fund request recipient for your organization.</p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
