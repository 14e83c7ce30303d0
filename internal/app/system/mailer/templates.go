// internal/app/system/mailer/templates.go
package mailer

import (
	"bytes"
	"fmt"
	"html/template"
)

// ContactMessageData holds the fields of a submitted contact form.
type ContactMessageData struct {
	SiteName    string
	SenderName  string
	SenderEmail string
	Message     string
}

// BuildContactEmail creates the notification sent to the agency inbox when
// someone submits the public contact form.
func BuildContactEmail(data ContactMessageData) Email {
	return Email{
		To:       "", // set by caller
		Subject:  fmt.Sprintf("[%s] New contact form message from %s", data.SiteName, data.SenderName),
		TextBody: buildContactText(data),
		HTMLBody: buildContactHTML(data),
	}
}

func buildContactText(data ContactMessageData) string {
	var buf bytes.Buffer
	buf.WriteString(fmt.Sprintf("New message via the %s contact form.\n\n", data.SiteName))
	buf.WriteString(fmt.Sprintf("From: %s <%s>\n\n", data.SenderName, data.SenderEmail))
	buf.WriteString(data.Message + "\n")
	return buf.String()
}

func buildContactHTML(data ContactMessageData) string {
	tmpl := template.Must(template.New("contact").Parse(contactHTMLTemplate))
	var buf bytes.Buffer
	_ = tmpl.Execute(&buf, data)
	return buf.String()
}

const contactHTMLTemplate = `<!DOCTYPE html>
<html>
<head>
  <meta charset="UTF-8">
  <meta name="viewport" content="width=device-width, initial-scale=1.0">
  <title>Contact Form Message</title>
</head>
<body style="margin: 0; padding: 0; font-family: -apple-system, BlinkMacSystemFont, 'Segoe UI', Roboto, 'Helvetica Neue', Arial, sans-serif; background-color: #f3f4f6;">
  <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="background-color: #f3f4f6;">
    <tr>
      <td align="center" style="padding: 40px 20px;">
        <table role="presentation" width="100%" cellspacing="0" cellpadding="0" style="max-width: 480px; background-color: #ffffff; border-radius: 8px; box-shadow: 0 2px 4px rgba(0, 0, 0, 0.1);">
          <tr>
            <td style="padding: 32px 32px 24px; text-align: center; border-bottom: 1px solid #e5e7eb;">
              <h1 style="margin: 0; font-size: 24px; font-weight: 600; color: #4f46e5;">{{.SiteName}}</h1>
            </td>
          </tr>
          <tr>
            <td style="padding: 32px;">
              <p style="margin: 0 0 16px; font-size: 16px; color: #374151; line-height: 1.5;">
                New message from <strong>{{.SenderName}}</strong> ({{.SenderEmail}}):
              </p>
              <div style="background-color: #f3f4f6; border-radius: 8px; padding: 24px; margin-bottom: 24px;">
                <p style="margin: 0; font-size: 15px; color: #1f2937; line-height: 1.6; white-space: pre-wrap;">{{.Message}}</p>
              </div>
              <p style="margin: 0; font-size: 13px; color: #9ca3af;">
                Reply directly to this address to answer.
              </p>
            </td>
          </tr>
        </table>
      </td>
    </tr>
  </table>
</body>
</html>`
