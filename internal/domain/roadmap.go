package domain

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"
)

type DurationUnit string

const (
	UnitWeeks  DurationUnit = "Weeks"
	UnitMonths DurationUnit = "Months"
)

// Duration es un par {valor, unidad}; solo se formatea como "4 Weeks" en el borde JSON.
type Duration struct {
	Value int
	Unit  DurationUnit
}

func Weeks(n int) Duration  { return Duration{Value: n, Unit: UnitWeeks} }
func Months(n int) Duration { return Duration{Value: n, Unit: UnitMonths} }

func (d Duration) String() string {
	return fmt.Sprintf("%d %s", d.Value, d.Unit)
}

func (d Duration) MarshalJSON() ([]byte, error) {
	return json.Marshal(d.String())
}

func (d *Duration) UnmarshalJSON(data []byte) error {
	var raw string
	if err := json.Unmarshal(data, &raw); err != nil {
		return fmt.Errorf("duration must be a string: %w", err)
	}
	parsed, err := ParseDuration(raw)
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// ParseDuration interpreta "<N> Weeks" o "<N> Months".
func ParseDuration(raw string) (Duration, error) {
	parts := strings.Fields(raw)
	if len(parts) != 2 {
		return Duration{}, fmt.Errorf("invalid duration %q", raw)
	}
	n, err := strconv.Atoi(parts[0])
	if err != nil {
		return Duration{}, fmt.Errorf("invalid duration value %q: %w", parts[0], err)
	}
	switch DurationUnit(parts[1]) {
	case UnitWeeks, UnitMonths:
		return Duration{Value: n, Unit: DurationUnit(parts[1])}, nil
	}
	return Duration{}, fmt.Errorf("invalid duration unit %q", parts[1])
}

// PhaseStatus es el estado de avance de una fase del roadmap.
type PhaseStatus string

const (
	PhaseNotStarted PhaseStatus = "not-started"
	PhaseInProgress PhaseStatus = "in-progress"
	PhaseCompleted  PhaseStatus = "completed"
)

type RoadmapPhase struct {
	Phase    int         `json:"phase"`
	Title    string      `json:"title"`
	Duration Duration    `json:"duration"`
	Status   PhaseStatus `json:"status"`
	Progress int         `json:"progress"`
	Skills   string      `json:"skills"`
}

// Roadmap es el plan de aprendizaje de tres fases y su línea de tiempo estimada.
type Roadmap struct {
	Phases            []RoadmapPhase `json:"roadmap"`
	EstimatedTimeline Duration       `json:"estimated_timeline"`
}
