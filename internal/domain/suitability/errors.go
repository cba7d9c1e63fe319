package suitability

import (
	"errors"
	"fmt"
	"strconv"
	"strings"
)

var (
	ErrMissingAnswer = errors.New("missing answer")
	ErrOutOfRange    = errors.New("answer out of range")
)

// MissingAnswerError lista as perguntas sem resposta
type MissingAnswerError struct {
	QuestionIDs []int
}

func (e *MissingAnswerError) Error() string {
	ids := make([]string, len(e.QuestionIDs))
	for i, id := range e.QuestionIDs {
		ids[i] = strconv.Itoa(id)
	}
	return fmt.Sprintf("missing answer for question(s) %s", strings.Join(ids, ", "))
}

func (e *MissingAnswerError) Is(target error) bool { return target == ErrMissingAnswer }

// OutOfRangeError indica uma resposta para pergunta desconhecida ou fora do domínio de opções
type OutOfRangeError struct {
	QuestionID int
	Value      string
	Score      int
	Reason     string
}

func (e *OutOfRangeError) Error() string {
	if e.Value != "" {
		return fmt.Sprintf("question %d: %s (value %q)", e.QuestionID, e.Reason, e.Value)
	}
	return fmt.Sprintf("question %d: %s (score %d)", e.QuestionID, e.Reason, e.Score)
}

func (e *OutOfRangeError) Is(target error) bool { return target == ErrOutOfRange }
