package notify

import (
	"fmt"
	"strings"

	"commute-notice/internal/models"
	emailSvc "commute-notice/pkg/email"
)

const defaultSubject = "Aviso de desplazamiento"

// Subject returns the caller's subject or the standard one.
func Subject(req models.NotificationRequest) string {
	if strings.TrimSpace(req.Subject) != "" {
		return req.Subject
	}
	return defaultSubject
}

// legLines flattens the assessment's pair into renderable lines. A
// collapsed round trip renders its canonical leg once.
func legLines(a models.Assessment) []emailSvc.LegLine {
	if a.Pair.IdenticalReverse {
		leg := a.Pair.Canonical()
		return []emailSvc.LegLine{{
			Label:      "Trayecto más largo",
			DistanceKm: leg.DistanceKm,
			RawMinutes: leg.RawMinutes,
			Chargeable: a.Charge.ChargeableIn,
		}}
	}
	return []emailSvc.LegLine{
		{
			Label:      "Ida",
			DistanceKm: a.Pair.LegIn.DistanceKm,
			RawMinutes: a.Pair.LegIn.RawMinutes,
			Chargeable: a.Charge.ChargeableIn,
		},
		{
			Label:      "Vuelta",
			DistanceKm: a.Pair.LegOut.DistanceKm,
			RawMinutes: a.Pair.LegOut.RawMinutes,
			Chargeable: a.Charge.ChargeableOut,
		},
	}
}

// TemplateData maps the request onto the email template's input.
func TemplateData(username string, req models.NotificationRequest) emailSvc.NotificationData {
	a := req.Assessment
	data := emailSvc.NotificationData{
		Username:         username,
		Note:             req.Note,
		Legs:             legLines(a),
		IdenticalReverse: a.Pair.IdenticalReverse,
		TotalMinutes:     a.TotalMinutes,
		Overnight:        a.Flags.Overnight,
		HalfPerDiem:      a.Flags.HalfPerDiem,
		SpecialWorkday:   a.Flags.SpecialWorkday,
	}
	for _, d := range a.Departures {
		data.Departures = append(data.Departures, emailSvc.DepartureLine{
			Regime:    d.Regime,
			Baseline:  d.Baseline,
			Departure: d.Departure,
			Feasible:  d.Feasible,
		})
	}
	return data
}

// PlainBody renders the plain-text alternative of the notification.
func PlainBody(username string, req models.NotificationRequest) string {
	a := req.Assessment
	var b strings.Builder

	fmt.Fprintf(&b, "%s ha calculado el siguiente desplazamiento:\n\n", username)
	if a.Pair.IdenticalReverse {
		b.WriteString("Trayecto de ida y vuelta idéntico detectado.\n")
	}
	for _, leg := range legLines(a) {
		fmt.Fprintf(&b, "%s: %.1f km - %d min (%d min a cargo)\n",
			leg.Label, leg.DistanceKm, leg.RawMinutes, leg.Chargeable)
	}
	fmt.Fprintf(&b, "\nMinutos totales de desplazamiento a cargo: %d\n", a.TotalMinutes)

	if a.Flags.Overnight {
		b.WriteString("\nAviso Pernocta: Uno o ambos trayectos superan los 80 minutos. Comprueba posible pernocta.\n")
	}
	if a.Flags.HalfPerDiem {
		b.WriteString("\nAviso Media Dieta: Uno o ambos trayectos superan los 40 km. Comprueba el tipo de jornada.\n")
	}
	if a.Flags.SpecialWorkday {
		b.WriteString("\nAviso Jornada: Uno o ambos trayectos superan los 60 minutos. Comprueba el tipo de jornada.\n")
	}

	b.WriteString("\nHoras de salida sugeridas:\n")
	for _, d := range a.Departures {
		departure := d.Departure
		if !d.Feasible {
			departure = "no viable en el día"
		}
		fmt.Fprintf(&b, "  %s (base %s): %s\n", d.Regime, d.Baseline, departure)
	}

	if strings.TrimSpace(req.Note) != "" {
		fmt.Fprintf(&b, "\n%s\n", req.Note)
	}
	return b.String()
}
