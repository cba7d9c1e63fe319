package suitability

import (
	_ "embed"
	"fmt"
	"sort"

	"gopkg.in/yaml.v3"
)

//go:embed questions.yaml
var defaultQuestionsYAML []byte

var defaultQuestionnaire = mustParse(defaultQuestionsYAML)

// Option é uma alternativa de resposta e a pontuação que ela vale
type Option struct {
	Value string `yaml:"value" json:"value"`
	Label string `yaml:"label" json:"label"`
	Score int    `yaml:"score" json:"score"`
}

// Question é uma pergunta do questionário, identificada pela sua posição (1..N)
type Question struct {
	ID      int      `yaml:"id" json:"id"`
	Prompt  string   `yaml:"prompt" json:"prompt"`
	Options []Option `yaml:"options" json:"options"`
}

// Answer é a opção escolhida para uma pergunta
type Answer struct {
	Value string `json:"value"`
	Score int    `json:"score"`
}

// Answers mapeia id da pergunta -> resposta escolhida
type Answers map[int]Answer

// Result é a saída de uma avaliação completa
type Result struct {
	Score   int     `json:"score"`
	Profile Profile `json:"profile"`
}

// Questionnaire é um conjunto fixo e ordenado de perguntas
type Questionnaire struct {
	questions []Question
	byID      map[int]Question
}

// Default retorna o questionário embutido no binário
func Default() *Questionnaire {
	return defaultQuestionnaire
}

// Parse lê um questionário em YAML
func Parse(data []byte) (*Questionnaire, error) {
	var questions []Question
	if err := yaml.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("parse questionnaire: %w", err)
	}
	return New(questions)
}

// New valida e monta um questionário. Os ids precisam ser sequenciais a partir de 1
// e os valores de cada opção únicos dentro da pergunta.
func New(questions []Question) (*Questionnaire, error) {
	if len(questions) == 0 {
		return nil, fmt.Errorf("questionnaire has no questions")
	}
	byID := make(map[int]Question, len(questions))
	for i, q := range questions {
		if q.ID != i+1 {
			return nil, fmt.Errorf("question at position %d has id %d, want %d", i+1, q.ID, i+1)
		}
		if len(q.Options) == 0 {
			return nil, fmt.Errorf("question %d has no options", q.ID)
		}
		seen := make(map[string]bool, len(q.Options))
		for _, o := range q.Options {
			if o.Score < MinOptionScore || o.Score > MaxOptionScore {
				return nil, fmt.Errorf("question %d option %q has score %d outside %d..%d", q.ID, o.Value, o.Score, MinOptionScore, MaxOptionScore)
			}
			if seen[o.Value] {
				return nil, fmt.Errorf("question %d repeats option %q", q.ID, o.Value)
			}
			seen[o.Value] = true
		}
		byID[q.ID] = q
	}
	return &Questionnaire{questions: questions, byID: byID}, nil
}

func mustParse(data []byte) *Questionnaire {
	q, err := Parse(data)
	if err != nil {
		panic(err)
	}
	return q
}

// Questions retorna uma cópia das perguntas, na ordem
func (q *Questionnaire) Questions() []Question {
	out := make([]Question, len(q.questions))
	for i, question := range q.questions {
		question.Options = append([]Option(nil), question.Options...)
		out[i] = question
	}
	return out
}

// Len retorna o número de perguntas
func (q *Questionnaire) Len() int {
	return len(q.questions)
}

// Range retorna a menor e a maior pontuação total possíveis
func (q *Questionnaire) Range() (minTotal, maxTotal int) {
	for _, question := range q.questions {
		lo, hi := question.Options[0].Score, question.Options[0].Score
		for _, o := range question.Options[1:] {
			if o.Score < lo {
				lo = o.Score
			}
			if o.Score > hi {
				hi = o.Score
			}
		}
		minTotal += lo
		maxTotal += hi
	}
	return minTotal, maxTotal
}

// Resolve converte as opções escolhidas (id da pergunta -> value) em respostas pontuadas.
// Perguntas ausentes não são tratadas aqui; isso fica para Validate.
func (q *Questionnaire) Resolve(selections map[int]string) (Answers, error) {
	answers := make(Answers, len(selections))
	for id, value := range selections {
		question, ok := q.byID[id]
		if !ok {
			return nil, &OutOfRangeError{QuestionID: id, Value: value, Reason: "unknown question"}
		}
		option, ok := question.option(value)
		if !ok {
			return nil, &OutOfRangeError{QuestionID: id, Value: value, Reason: "unknown option"}
		}
		answers[id] = Answer{Value: option.Value, Score: option.Score}
	}
	return answers, nil
}

// Validate exige exatamente uma resposta por pergunta, com pontuação dentro do domínio.
func (q *Questionnaire) Validate(answers Answers) error {
	ids := make([]int, 0, len(answers))
	for id := range answers {
		ids = append(ids, id)
	}
	sort.Ints(ids)

	for _, id := range ids {
		if _, ok := q.byID[id]; !ok {
			return &OutOfRangeError{QuestionID: id, Value: answers[id].Value, Score: answers[id].Score, Reason: "unknown question"}
		}
	}

	var missing []int
	for _, question := range q.questions {
		if _, ok := answers[question.ID]; !ok {
			missing = append(missing, question.ID)
		}
	}
	if len(missing) > 0 {
		return &MissingAnswerError{QuestionIDs: missing}
	}

	for _, id := range ids {
		a := answers[id]
		if a.Score < MinOptionScore || a.Score > MaxOptionScore {
			return &OutOfRangeError{QuestionID: id, Value: a.Value, Score: a.Score, Reason: "score out of range"}
		}
		if a.Value == "" {
			continue
		}
		option, ok := q.byID[id].option(a.Value)
		if !ok {
			return &OutOfRangeError{QuestionID: id, Value: a.Value, Score: a.Score, Reason: "unknown option"}
		}
		if option.Score != a.Score {
			return &OutOfRangeError{QuestionID: id, Value: a.Value, Score: a.Score, Reason: fmt.Sprintf("option is worth %d", option.Score)}
		}
	}
	return nil
}

// Evaluate valida as respostas e calcula pontuação e perfil
func (q *Questionnaire) Evaluate(answers Answers) (Result, error) {
	if err := q.Validate(answers); err != nil {
		return Result{}, err
	}
	total := Score(answers)
	return Result{Score: total, Profile: Classify(total)}, nil
}

func (question Question) option(value string) (Option, bool) {
	for _, o := range question.Options {
		if o.Value == value {
			return o, true
		}
	}
	return Option{}, false
}
