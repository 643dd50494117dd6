package email

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"marg-ai/internal/domain"
)

// RoadmapSummary es el contenido del correo que se envía al fijar una carrera.
type RoadmapSummary struct {
	FullName      string
	CareerTitle   string
	Roadmap       domain.Roadmap
	MissingSkills []string
}

// Sender define la interfaz para el envío del resumen de roadmap.
type Sender interface {
	SendRoadmapSummary(ctx context.Context, toEmail string, summary RoadmapSummary) error
}

// ErrDisabled indica que no hay transporte de correo configurado.
var ErrDisabled = errors.New("email sender disabled")

type disabledSender struct {
	reason string
}

func NewDisabledSender(reason string) Sender {
	return &disabledSender{reason: reason}
}

func (s *disabledSender) SendRoadmapSummary(_ context.Context, _ string, _ RoadmapSummary) error {
	if s.reason == "" {
		return ErrDisabled
	}
	return fmt.Errorf("%w: %s", ErrDisabled, s.reason)
}

// RenderRoadmapSummary arma el asunto y el cuerpo en texto plano.
func RenderRoadmapSummary(summary RoadmapSummary) (subject string, body string) {
	subject = fmt.Sprintf("Your %s roadmap", summary.CareerTitle)

	var b strings.Builder
	name := strings.TrimSpace(summary.FullName)
	if name == "" {
		name = "there"
	}
	fmt.Fprintf(&b, "Hi %s,\n\n", name)
	fmt.Fprintf(&b, "You locked in %s as your target career. Estimated timeline: %s.\n\n",
		summary.CareerTitle, summary.Roadmap.EstimatedTimeline)

	for _, phase := range summary.Roadmap.Phases {
		fmt.Fprintf(&b, "Phase %d: %s (%s)\n  %s\n", phase.Phase, phase.Title, phase.Duration, phase.Skills)
	}
	if len(summary.MissingSkills) > 0 {
		fmt.Fprintf(&b, "\nSkills to pick up: %s\n", strings.Join(summary.MissingSkills, ", "))
	}
	return subject, b.String()
}
