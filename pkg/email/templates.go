package email

import (
	"bytes"
	"html/template"
	"log"
)

// TemplateManager holds the parsed email templates.
type TemplateManager struct {
	NotificationTmpl *template.Template
}

// NewTemplateManager parses all email templates at startup.
func NewTemplateManager() (*TemplateManager, error) {
	notificationTmpl, err := template.New("notification").Parse(notificationTemplate)
	if err != nil {
		return nil, err
	}

	log.Println("Email templates parsed successfully.")
	return &TemplateManager{
		NotificationTmpl: notificationTmpl,
	}, nil
}

// LegLine is one trip leg rendered in the notification body.
type LegLine struct {
	Label      string
	DistanceKm float64
	RawMinutes int
	Chargeable int
}

// DepartureLine is one shift regime's suggested departure.
type DepartureLine struct {
	Regime    string
	Baseline  string
	Departure string
	Feasible  bool
}

// NotificationData holds the dynamic data for the notification template.
type NotificationData struct {
	Username         string
	Note             string
	Legs             []LegLine
	IdenticalReverse bool
	TotalMinutes     int
	Overnight        bool
	HalfPerDiem      bool
	SpecialWorkday   bool
	Departures       []DepartureLine
}

// GenerateNotificationHTML executes the notification template.
func (tm *TemplateManager) GenerateNotificationHTML(data NotificationData) (string, error) {
	var body bytes.Buffer
	if err := tm.NotificationTmpl.Execute(&body, data); err != nil {
		return "", err
	}
	return body.String(), nil
}

// --- HTML Template Definitions ---

const notificationTemplate = `
<!DOCTYPE html>
<html>
<head>
	<title>Aviso de desplazamiento</title>
</head>
<body style="font-family: Arial, sans-serif;">
	<h2>Aviso de desplazamiento</h2>
	<p>{{.Username}} ha calculado el siguiente desplazamiento:</p>
	{{if .IdenticalReverse}}<p>Trayecto de ida y vuelta idéntico detectado.</p>{{end}}
	<ul>
	{{range .Legs}}
		<li>{{.Label}}: {{printf "%.1f" .DistanceKm}} km &mdash; {{.RawMinutes}} min ({{.Chargeable}} min a cargo)</li>
	{{end}}
	</ul>
	<p><strong>Minutos totales de desplazamiento a cargo: {{.TotalMinutes}}</strong></p>
	{{if .Overnight}}<p>&#128716; <strong>Aviso Pernocta:</strong> Uno o ambos trayectos superan los 80 minutos. Comprueba posible pernocta.</p>{{end}}
	{{if .HalfPerDiem}}<p>&#9888; <strong>Aviso Media Dieta:</strong> Uno o ambos trayectos superan los 40 km. Comprueba el tipo de jornada.</p>{{end}}
	{{if .SpecialWorkday}}<p>&#9200; <strong>Aviso Jornada:</strong> Uno o ambos trayectos superan los 60 minutos. Comprueba el tipo de jornada.</p>{{end}}
	<h3>Horas de salida sugeridas</h3>
	<table border="1" cellpadding="4" cellspacing="0">
		<tr><th>Jornada</th><th>Hora base</th><th>Salida hoy</th></tr>
	{{range .Departures}}
		<tr><td>{{.Regime}}</td><td>{{.Baseline}}</td><td>{{if .Feasible}}{{.Departure}}{{else}}no viable en el día{{end}}</td></tr>
	{{end}}
	</table>
	{{if .Note}}<p>{{.Note}}</p>{{end}}
</body>
</html>
`
