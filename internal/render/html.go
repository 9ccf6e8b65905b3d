// Package render holds the default certificate document renderer. The
// layout is intentionally minimal; a production deployment swaps in a
// PDF renderer behind the same port.
package render

import (
	"bytes"
	"context"
	"fmt"
	"html/template"

	"github.com/devray254/bookable-festivals-sub000/internal/domain"
)

const certificateTemplate = `<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Certificate of Participation</title></head>
<body style="font-family: Georgia, serif; text-align: center; padding: 4em;">
  <h1>Certificate of Participation</h1>
  <p>This certifies that</p>
  <h2>{{.RecipientName}}</h2>
  <p>participated in</p>
  <h3>{{.EventTitle}}</h3>
  <p>held on {{.EventDateLabel}}</p>
  {{if .CPDPoints}}<p>CPD points awarded: {{.CPDPoints}}</p>{{end}}
  {{if .TargetAudience}}<p>{{.TargetAudience}}</p>{{end}}
  <p>Issued on {{.IssuedDateLabel}}</p>
  <p><small>Certificate No: {{.CertificateID}}</small></p>
</body>
</html>
`

type HTMLRenderer struct {
	tmpl *template.Template
}

func NewHTMLRenderer() (*HTMLRenderer, error) {
	tmpl, err := template.New("certificate").Parse(certificateTemplate)
	if err != nil {
		return nil, fmt.Errorf("parse certificate template: %w", err)
	}
	return &HTMLRenderer{tmpl: tmpl}, nil
}

func (r *HTMLRenderer) Render(_ context.Context, content domain.CertificateContent) (*domain.Artifact, error) {
	var buf bytes.Buffer
	if err := r.tmpl.Execute(&buf, content); err != nil {
		return nil, fmt.Errorf("render certificate: %w", err)
	}

	return &domain.Artifact{
		Name:        content.CertificateID + ".html",
		ContentType: "text/html",
		Data:        buf.Bytes(),
	}, nil
}
