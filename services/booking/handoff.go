package booking

import (
	"bytes"
	"context"
	"html/template"
	"time"

	"crickbox/models"
)

// HandoffStage is one step of the fixed-timer redirect sequence.
type HandoffStage string

const (
	StageInitializing HandoffStage = "initializing"
	StageEncrypting   HandoffStage = "encrypting"
	StageRedirecting  HandoffStage = "redirecting"
	StageAutoSubmit   HandoffStage = "auto-submit"
)

var handoffStages = []HandoffStage{
	StageInitializing,
	StageEncrypting,
	StageRedirecting,
	StageAutoSubmit,
}

// HandoffRunner paces the payment redirect through its staged sequence:
// Initializing at t=0, then one stage per interval up to AutoSubmit at
// t=+3 intervals. Timing only; no stage reacts to user input. Cancelling
// the context stops every pending stage, so an abandoned attempt never
// reaches AutoSubmit.
type HandoffRunner struct {
	Interval time.Duration // defaults to one second
	OnStage  func(HandoffStage)
}

func (r *HandoffRunner) Run(ctx context.Context) error {
	interval := r.Interval
	if interval <= 0 {
		interval = time.Second
	}
	for i, stage := range handoffStages {
		if i > 0 {
			t := time.NewTimer(interval)
			select {
			case <-ctx.Done():
				t.Stop()
				return ctx.Err()
			case <-t.C:
			}
		}
		if r.OnStage != nil {
			r.OnStage(stage)
		}
	}
	return nil
}

// The payload must travel as a form body, so the form is POST; query-string
// redirects are not accepted by the processor.
var autoSubmitTmpl = template.Must(template.New("handoff").Parse(`<!DOCTYPE html>
<html>
<head><meta charset="utf-8"><title>Redirecting to payment</title></head>
<body onload="document.getElementById('handoff').submit()">
<p>Redirecting to the payment processor&hellip;</p>
<form id="handoff" method="POST" action="{{.SPURL}}">
<input type="hidden" name="encData" value="{{.EncData}}">
<input type="hidden" name="clientCode" value="{{.ClientCode}}">
</form>
</body>
</html>
`))

// RenderAutoSubmitForm renders the hidden auto-submitting gateway form.
func RenderAutoSubmitForm(p models.HandoffPayload) (string, error) {
	var buf bytes.Buffer
	if err := autoSubmitTmpl.Execute(&buf, p); err != nil {
		return "", err
	}
	return buf.String(), nil
}
