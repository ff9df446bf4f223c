package email

import (
	"bytes"
	"fmt"
	htmltemplate "html/template"
	texttemplate "text/template"
)

type verificationData struct {
	Name string
	Link string
}

var verificationText = texttemplate.Must(texttemplate.New("verification.txt").Parse(`Hello {{.Name}},

Welcome to the IT Support System.

Please verify your email address by visiting:
{{.Link}}

This link will expire in 24 hours.

If you did not create an account, please ignore this email.
`))

var verificationHTML = htmltemplate.Must(htmltemplate.New("verification.html").Parse(`<html>
<body>
	<h2>Welcome to the IT Support System</h2>
	<p>Hello {{.Name}},</p>
	<p>Please verify your email address by clicking the link below:</p>
	<p><a href="{{.Link}}">Verify Email Address</a></p>
	<p>Or copy and paste this URL into your browser:</p>
	<p>{{.Link}}</p>
	<p>This link will expire in 24 hours.</p>
	<p>If you did not create an account, please ignore this email.</p>
</body>
</html>
`))

func renderVerification(name, link string) (plain, html string, err error) {
	data := verificationData{Name: name, Link: link}

	var pb, hb bytes.Buffer
	if err := verificationText.Execute(&pb, data); err != nil {
		return "", "", fmt.Errorf("failed to render verification text: %w", err)
	}
	if err := verificationHTML.Execute(&hb, data); err != nil {
		return "", "", fmt.Errorf("failed to render verification html: %w", err)
	}
	return pb.String(), hb.String(), nil
}
