package export

import (
	"html/template"
	"os"
	"strings"

	"github.com/jonathan/careerpath/internal/types"
)

// ReportData is the data structure passed to the HTML report template.
type ReportData struct {
	Roadmap  *types.Roadmap
	Profile  *types.Profile
	Estimate *types.TimelineEstimate
}

const defaultReportTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>PM Career Roadmap</title>
<style>
body { font-family: -apple-system, "Segoe UI", sans-serif; max-width: 860px; margin: 2rem auto; padding: 0 1rem; color: #1a202c; }
h1 { border-bottom: 2px solid #4a5568; padding-bottom: .3rem; }
h2 { margin-top: 2rem; }
.badge { font-size: 1.4rem; }
.note { background: #f7fafc; border-left: 4px solid #4299e1; padding: .6rem 1rem; margin: 1rem 0; }
.action { border: 1px solid #e2e8f0; border-radius: 8px; padding: 1rem; margin: 1rem 0; }
.priority-HIGH { border-left: 4px solid #e53e3e; }
.priority-MEDIUM { border-left: 4px solid #dd6b20; }
.priority-LOW { border-left: 4px solid #38a169; }
.meta { color: #718096; font-size: .9rem; }
ul { margin: .4rem 0; }
</style>
</head>
<body>
<h1>PM Career Roadmap</h1>
<p><span class="badge">{{.Roadmap.Tier.Badge}}</span> <strong>{{.Roadmap.Tier.Level}}</strong>
{{- if .Profile}} &mdash; {{.Profile.CurrentRole}}{{end}}</p>

{{if .Estimate}}<p class="note">{{.Estimate.Feedback}}</p>{{end}}

<h2>Where You Stand</h2>
<ul>
{{range .Roadmap.ExistingStrengths}}<li>✅ {{.}}</li>
{{end}}</ul>
<ul>
{{range .Roadmap.Gaps}}<li>⚠️ {{.}}</li>
{{end}}</ul>

{{range $i, $phase := .Roadmap.Phases}}
<h2>Phase {{addOne $i}}: {{$phase.Title}}</h2>
<p>{{$phase.Description}}</p>
{{if $phase.MotivationNote}}<p class="note">💪 {{$phase.MotivationNote}}</p>{{end}}
{{if $phase.ChallengeNote}}<p class="note">🤝 {{$phase.ChallengeNote}}</p>{{end}}
{{if $phase.TimelineNote}}<p class="note">🗓 {{$phase.TimelineNote}}</p>{{end}}
{{range $phase.Actions}}
<div class="action priority-{{.Priority}}">
<strong>{{.Title}}</strong>
<p class="meta">{{.Priority}} · {{.EffortHours}}h · {{.Time}}{{if .Provider}} · {{.Provider}}{{end}}</p>
{{if .Why}}<p>{{.Why}}</p>{{end}}
{{if .Link}}<p><a href="{{.Link}}">Resource</a></p>{{end}}
{{if .Skills}}<p class="meta">Skills: {{joinSkills .Skills}}</p>{{end}}
</div>
{{end}}
{{end}}

<p class="meta">{{.Roadmap.TimelineNote}}</p>
</body>
</html>
`

var reportFuncs = template.FuncMap{
	"addOne":     func(i int) int { return i + 1 },
	"joinSkills": func(skills []string) string { return strings.Join(skills, ", ") },
}

// RenderHTML renders the roadmap report using the embedded default template.
func RenderHTML(data *ReportData) (string, error) {
	if data == nil || data.Roadmap == nil {
		return "", &TemplateError{Message: "no roadmap to render"}
	}

	tmpl, err := template.New("report").Funcs(reportFuncs).Parse(defaultReportTemplate)
	if err != nil {
		return "", &TemplateError{Message: "failed to parse report template", Cause: err}
	}

	var sb strings.Builder
	if err := tmpl.Execute(&sb, data); err != nil {
		return "", &TemplateError{Message: "failed to execute report template", Cause: err}
	}
	return sb.String(), nil
}

// WriteHTML renders the report and writes it to path.
func WriteHTML(data *ReportData, path string) error {
	html, err := RenderHTML(data)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, []byte(html), 0644); err != nil {
		return &WriteError{Path: path, Cause: err}
	}
	return nil
}
