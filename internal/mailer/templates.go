package mailer

import (
	"bytes"
	"fmt"
	"html/template"
	"time"
)

// Template names, one per notification event.
const (
	TemplateWelcome             = "welcome"
	TemplateProjectApproved     = "project-approved"
	TemplateApplicationApproved = "application-approved"
	TemplateApplicationRejected = "application-rejected"
)

// TemplateData carries every field any template can reference; unused fields
// are simply ignored by the template.
type TemplateData struct {
	UserName           string
	ProjectName        string
	ProjectDescription string
	StartDate          time.Time
	EndDate            time.Time
}

var funcs = template.FuncMap{
	"date": func(t time.Time) string { return t.Format("January 2, 2006") },
}

var bodies = map[string]*template.Template{
	TemplateWelcome: template.Must(template.New(TemplateWelcome).Funcs(funcs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #f97316;">Welcome to Projectify, {{.UserName}}!</h2>
  <p>Thank you for joining our platform! We're excited to have you on board.</p>
  <h3>What's Next?</h3>
  <ul>
    <li>Browse available projects in your dashboard</li>
    <li>Apply to projects that match your skills</li>
    <li>Track your application status</li>
    <li>Get notified when projects are approved</li>
  </ul>
  <p style="color: #6b7280;">The Projectify Team</p>
</div>`)),

	TemplateProjectApproved: template.Must(template.New(TemplateProjectApproved).Funcs(funcs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981;">Project Approved!</h2>
  <p>We're excited to inform you that the project you applied to has been approved!</p>
  <div style="background-color: #f0fdf4; border: 1px solid #10b981; border-radius: 8px; padding: 20px; margin: 20px 0;">
    <h3 style="color: #10b981; margin-top: 0;">{{.ProjectName}}</h3>
    <p><strong>Description:</strong> {{.ProjectDescription}}</p>
    <p><strong>Start Date:</strong> {{date .StartDate}}</p>
    <p><strong>End Date:</strong> {{date .EndDate}}</p>
  </div>
  <p>You can now proceed with your application. Check your dashboard for more details.</p>
  <p style="color: #6b7280;">The Projectify Team</p>
</div>`)),

	TemplateApplicationApproved: template.Must(template.New(TemplateApplicationApproved).Funcs(funcs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #10b981;">Congratulations {{.UserName}}!</h2>
  <p>We're thrilled to inform you that your application has been <strong>approved</strong>!</p>
  <div style="background-color: #f0fdf4; border: 1px solid #10b981; border-radius: 8px; padding: 20px; margin: 20px 0;">
    <h3 style="color: #10b981; margin-top: 0;">Project: {{.ProjectName}}</h3>
    <p>Your application has been reviewed and accepted. You're now part of this project!</p>
  </div>
  <p>Check your dashboard for project details and prepare for the kickoff.</p>
  <p style="color: #6b7280;">The Projectify Team</p>
</div>`)),

	TemplateApplicationRejected: template.Must(template.New(TemplateApplicationRejected).Funcs(funcs).Parse(`
<div style="font-family: Arial, sans-serif; max-width: 600px; margin: 0 auto;">
  <h2 style="color: #f97316;">Application Update</h2>
  <p>Hi {{.UserName}},</p>
  <p>Thank you for your interest in the "{{.ProjectName}}" project. After careful
  consideration, we've decided to move forward with other candidates for this
  particular opportunity.</p>
  <div style="background-color: #fef3c7; border: 1px solid #f59e0b; border-radius: 8px; padding: 20px; margin: 20px 0;">
    <p style="margin: 0;"><strong>Don't let this discourage you!</strong> There are many other projects available on our platform.</p>
  </div>
  <p>We encourage you to keep exploring opportunities on Projectify.</p>
  <p style="color: #6b7280;">The Projectify Team</p>
</div>`)),
}

// Render produces the subject and HTML body for the named template.
func Render(name string, data TemplateData) (subject, body string, err error) {
	tmpl, ok := bodies[name]
	if !ok {
		return "", "", fmt.Errorf("unknown email template %q", name)
	}

	var buf bytes.Buffer
	if err := tmpl.Execute(&buf, data); err != nil {
		return "", "", fmt.Errorf("failed to render %s template: %w", name, err)
	}

	switch name {
	case TemplateWelcome:
		subject = "Welcome to Projectify!"
	case TemplateProjectApproved:
		subject = fmt.Sprintf("Great News! Project %q has been approved", data.ProjectName)
	case TemplateApplicationApproved:
		subject = fmt.Sprintf("Your application for %q has been approved!", data.ProjectName)
	case TemplateApplicationRejected:
		subject = fmt.Sprintf("Update on your application for %q", data.ProjectName)
	}

	return subject, buf.String(), nil
}
