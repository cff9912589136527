package email

import (
	"bytes"
	"fmt"
	"html/template"
)

const SubjectConfirm = "Confirm your Channelry email address!"

var confirmTmpl = template.Must(template.New("confirm_email").Parse(
	`<p>Welcome to Channelry!</p>
<p>Please confirm your email address by clicking the link below:</p>
<p><a href="{{.ConfirmationURL}}">Confirm my email address</a></p>
<p>The link expires in 24 hours. If you did not create an account, you can safely ignore this email.</p>`))

// RenderConfirmation renders the HTML body of the confirmation email.
func RenderConfirmation(confirmationURL string) (string, error) {
	var buf bytes.Buffer
	data := struct{ ConfirmationURL string }{ConfirmationURL: confirmationURL}
	if err := confirmTmpl.Execute(&buf, data); err != nil {
		return "", fmt.Errorf("render confirmation email: %w", err)
	}
	return buf.String(), nil
}
