package quiz

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"marg-ai/internal/domain"
)

func TestLoad_EmbeddedQuizIsValid(t *testing.T) {
	q, err := Load()
	require.NoError(t, err)

	assert.Len(t, q, 3)
	assert.Equal(t, 8, q.QuestionCount())
	for _, section := range q {
		for _, question := range section.Questions {
			for _, opt := range question.Options {
				_, ok := domain.ParseInterestTag(opt.Tag)
				assert.Truef(t, ok, "question %s has unknown tag %q", question.ID, opt.Tag)
			}
		}
	}
}

func TestParse_RejectsUnknownTag(t *testing.T) {
	data := []byte(`[{"section":"S","questions":[{"id":"q1","question":"?","options":[
		{"text":"a","tag":"technology"},{"text":"b","tag":"astrology"}]}]}]`)

	_, err := Parse(data)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrInvalidQuiz)
	assert.Contains(t, err.Error(), "tag")
}

func TestParse_RejectsDuplicateQuestionIDs(t *testing.T) {
	data := []byte(`[
		{"section":"A","questions":[{"id":"q1","question":"?","options":[{"text":"a","tag":"social"},{"text":"b","tag":"science"}]}]},
		{"section":"B","questions":[{"id":"q1","question":"?","options":[{"text":"a","tag":"social"},{"text":"b","tag":"science"}]}]}
	]`)

	_, err := Parse(data)
	assert.ErrorIs(t, err, ErrInvalidQuiz)
}

func TestParse_RejectsMalformedDocument(t *testing.T) {
	_, err := Parse([]byte(`{"section":"not an array"}`))
	assert.ErrorIs(t, err, ErrInvalidQuiz)

	_, err = Parse([]byte(`not json`))
	assert.ErrorIs(t, err, ErrInvalidQuiz)
}
