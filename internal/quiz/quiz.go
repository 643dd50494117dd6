package quiz

import (
	_ "embed"
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/xeipuuv/gojsonschema"
)

var (
	//go:embed quiz.json
	defaultQuiz []byte

	//go:embed schema.json
	quizSchema []byte
)

// ErrInvalidQuiz envuelve cualquier fallo de validación del contenido del quiz.
var ErrInvalidQuiz = errors.New("invalid quiz content")

type Option struct {
	Text string `json:"text"`
	Tag  string `json:"tag"`
}

type Question struct {
	ID       string   `json:"id"`
	Question string   `json:"question"`
	Options  []Option `json:"options"`
}

type Section struct {
	Section   string     `json:"section"`
	Questions []Question `json:"questions"`
}

// Quiz es el contenido de solo lectura que se sirve al cliente.
type Quiz []Section

// Load parsea y valida el quiz embebido en el binario.
func Load() (Quiz, error) {
	return Parse(defaultQuiz)
}

// Parse valida data contra el JSON Schema embebido y rechaza IDs de pregunta repetidos.
func Parse(data []byte) (Quiz, error) {
	schemaLoader := gojsonschema.NewBytesLoader(quizSchema)
	documentLoader := gojsonschema.NewBytesLoader(data)

	result, err := gojsonschema.Validate(schemaLoader, documentLoader)
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuiz, err)
	}
	if !result.Valid() {
		errs := make([]string, len(result.Errors()))
		for i, desc := range result.Errors() {
			errs[i] = desc.String()
		}
		return nil, fmt.Errorf("%w: %s", ErrInvalidQuiz, strings.Join(errs, "; "))
	}

	var q Quiz
	if err := json.Unmarshal(data, &q); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidQuiz, err)
	}

	seen := make(map[string]struct{})
	for _, section := range q {
		for _, question := range section.Questions {
			if _, dup := seen[question.ID]; dup {
				return nil, fmt.Errorf("%w: duplicate question id %q", ErrInvalidQuiz, question.ID)
			}
			seen[question.ID] = struct{}{}
		}
	}
	return q, nil
}

// QuestionCount devuelve el total de preguntas de todas las secciones.
func (q Quiz) QuestionCount() int {
	n := 0
	for _, section := range q {
		n += len(section.Questions)
	}
	return n
}
