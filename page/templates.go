package page

import (
	"html/template"
)

const documentSource = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
{{.RootVars}}
{{.Style}}
    </style>
</head>
<body>

    <div class="haa-logo">
{{- range .Reels}}
        <div class="reel" data-reel="{{.Name}}"><div class="strip">
{{- range .Boxes}}<div class="icon-box" data-name="{{.Name}}">{{.Markup}}</div>{{end -}}
        </div></div>
{{- end}}
    </div>

    <script>window.HAA_RUNTIME = {{.Runtime}};</script>
    <script>{{.Script}}</script>
</body>
</html>
`

const tunerSource = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>{{.Style}}</style>
</head>
<body class="{{.Class}}">

    <div class="preview-area">
        <div class="guide-x"></div>
        <div class="guide-y"></div>
        <div class="icon-container">{{.Markup}}</div>
    </div>

    <div class="controls">
        <h2>{{.Title}}</h2>
{{- if .Scale}}
        <div class="control-group">
            <h3>Animation</h3>
            <div class="input-row">
                <label>Cover scale (0-1)</label>
                <input type="range" id="anim-scale" min="0" max="1" step="0.01" value="1">
            </div>
        </div>
{{- end}}
{{- range .Groups}}
        <div class="control-group">
            <h3>{{.Name}}</h3>
{{- range .Fields}}
            <div class="input-row">
                <label>{{.Label}} <span id="val-{{.ID}}" class="val">{{.Value}}%</span></label>
                <input type="range" id="inp-{{.ID}}" min="{{.Min}}" max="{{.Max}}" step="{{.Step}}" value="{{.Value}}">
{{- if .Mirror}}
                <div class="hint">Mirrored: <span id="mirror-{{.ID}}">{{.Mirror}}%</span></div>
{{- end}}
            </div>
{{- end}}
        </div>
{{- end}}
        <div class="control-group">
            <h3>Config snippet</h3>
            <div class="code-output" id="result-code">...</div>
            <button class="copy-btn">Copy YAML</button>
        </div>
    </div>

    <script>window.HAA_TUNER = {{.Runtime}};</script>
    <script>{{.Script}}</script>
</body>
</html>
`

const motionSource = `<!DOCTYPE html>
<html lang="en">
<head>
    <meta charset="UTF-8">
    <title>{{.Title}}</title>
    <style>
{{.RootVars}}
{{.Style}}
    </style>
</head>
<body>

    <div class="debug-container">
        <div class="guide-x"></div>
        <div class="guide-y"></div>
        <div class="icon-box" id="target">{{.Markup}}</div>
    </div>

    <script>window.HAA_MOTION = {{.Runtime}};</script>
    <script>{{.Script}}</script>
</body>
</html>
`

var (
	documentTemplate = template.Must(template.New("document").Parse(documentSource))
	tunerTemplate    = template.Must(template.New("tuner").Parse(tunerSource))
	motionTemplate   = template.Must(template.New("motion").Parse(motionSource))
)
