package email

import (
	"fmt"
	"html"

	"github.com/pixelsmith/contactrelay/internal/model"
)

// OwnerNotificationHTML returns the HTML body for the new-lead notification
// sent to the business inbox. All submitted fields are rendered as a table.
func OwnerNotificationHTML(sub model.Submission, appName string) string {
	company := sub.CompanyName
	if company == "" {
		company = "(not provided)"
	}
	phone := sub.ContactNumber
	if phone == "" {
		phone = "(not provided)"
	}

	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>New contact form submission</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="520" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px 24px;">
    <h1 style="margin:0;font-size:22px;color:#1a1a2e;">New contact form submission</h1>
  </td></tr>
  <tr><td style="padding:0 40px;">
    <table width="100%%" cellpadding="8" cellspacing="0" style="font-size:14px;color:#4a4a68;border-collapse:collapse;">
      <tr style="border-bottom:1px solid #eeeef2;"><td style="font-weight:bold;width:140px;">Name</td><td>%s</td></tr>
      <tr style="border-bottom:1px solid #eeeef2;"><td style="font-weight:bold;">Email</td><td>%s</td></tr>
      <tr style="border-bottom:1px solid #eeeef2;"><td style="font-weight:bold;">Company</td><td>%s</td></tr>
      <tr style="border-bottom:1px solid #eeeef2;"><td style="font-weight:bold;">Phone</td><td>%s</td></tr>
      <tr><td style="font-weight:bold;vertical-align:top;">Message</td><td style="white-space:pre-wrap;">%s</td></tr>
    </table>
  </td></tr>
  <tr><td style="padding:24px 40px 32px;">
    <p style="margin:0;font-size:13px;color:#8888a0;line-height:1.5;">
      Reply directly to this email to answer <strong>%s</strong>.
    </p>
  </td></tr>
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; %s &mdash; automated notification from the website contact form.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`,
		html.EscapeString(sub.FullName),
		html.EscapeString(sub.Email),
		html.EscapeString(company),
		html.EscapeString(phone),
		html.EscapeString(sub.Message),
		html.EscapeString(sub.FullName),
		appName)
}

// OwnerNotificationText returns the plain-text body for the owner
// notification, including the raw message text.
func OwnerNotificationText(sub model.Submission, appName string) string {
	return fmt.Sprintf(`New contact form submission

Name:    %s
Email:   %s
Company: %s
Phone:   %s

Message:
%s

- %s website`,
		sub.FullName, sub.Email, sub.CompanyName, sub.ContactNumber, sub.Message, appName)
}

// AutoReplyHTML returns the HTML body for the acknowledgment sent back to
// the submitter, echoing what they submitted.
func AutoReplyHTML(sub model.Submission, appName string) string {
	return fmt.Sprintf(`<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>We received your message</title>
</head>
<body style="margin:0;padding:0;font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,Helvetica,Arial,sans-serif;background-color:#f4f5f7;">
<table width="100%%" cellpadding="0" cellspacing="0" style="background-color:#f4f5f7;padding:40px 0;">
<tr><td align="center">
<table width="480" cellpadding="0" cellspacing="0" style="background-color:#ffffff;border-radius:8px;overflow:hidden;box-shadow:0 2px 8px rgba(0,0,0,0.08);">
  <tr><td style="padding:32px 40px 24px;text-align:center;">
    <h1 style="margin:0;font-size:24px;color:#1a1a2e;">Thanks for reaching out, %s!</h1>
  </td></tr>
  <tr><td style="padding:0 40px;">
    <p style="margin:0 0 24px;font-size:15px;color:#4a4a68;line-height:1.6;">
      We received your message and a member of the <strong>%s</strong> team will get back to you within one business day.
    </p>
    <p style="margin:0 0 8px;font-size:13px;color:#8888a0;">Here is a copy of what you sent us:</p>
    <div style="background-color:#f9f9fc;border-radius:8px;padding:16px 20px;margin:0 0 24px;">
      <p style="margin:0;font-size:14px;color:#4a4a68;white-space:pre-wrap;">%s</p>
    </div>
  </td></tr>
  <tr><td style="padding:16px 40px;background-color:#f9f9fc;border-top:1px solid #eeeef2;">
    <p style="margin:0;font-size:12px;color:#aaaabc;text-align:center;">
      &copy; %s &mdash; This is an automated message, please do not reply.
    </p>
  </td></tr>
</table>
</td></tr>
</table>
</body>
</html>`,
		html.EscapeString(sub.FullName),
		html.EscapeString(appName),
		html.EscapeString(sub.Message),
		appName)
}

// AutoReplyText returns the plain-text body for the acknowledgment.
func AutoReplyText(sub model.Submission, appName string) string {
	return fmt.Sprintf(`Thanks for reaching out, %s!

We received your message and a member of the %s team will get back to you within one business day.

Here is a copy of what you sent us:

%s

- %s`,
		sub.FullName, appName, sub.Message, appName)
}
