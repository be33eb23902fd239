package service

import (
	"bufio"
	"fmt"
	"strconv"
	"strings"

	"flashdeck/internal/domain"
	"flashdeck/internal/util"
)

// ImportFormatHint describes the expected quiz file format, one record per
// line.
const ImportFormatHint = "Question? | Option A | Option B | ... | CorrectIndex (0-based, 2-6 options)"

// ParseQuizFile parses pipe-delimited quiz file content into questions.
// Blank lines are skipped. Any malformed line makes the whole file unusable
// and is reported with its line number.
func ParseQuizFile(content string) ([]domain.Question, error) {
	var questions []domain.Question

	scanner := bufio.NewScanner(strings.NewReader(content))
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)
	lineNum := 0

	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		question, err := parseQuestionLine(line)
		if err != nil {
			return nil, domain.NewImportError(fmt.Sprintf("line %d: %v (format: %s)", lineNum, err, ImportFormatHint))
		}
		questions = append(questions, *question)
	}

	if err := scanner.Err(); err != nil {
		return nil, domain.NewImportError(fmt.Sprintf("failed to read content: %v", err))
	}

	if len(questions) == 0 {
		return nil, domain.NewImportError(fmt.Sprintf("no valid questions found (format: %s)", ImportFormatHint))
	}

	return questions, nil
}

// parseQuestionLine parses one pipe-delimited record into a question.
func parseQuestionLine(line string) (*domain.Question, error) {
	parts := strings.Split(line, "|")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}

	// Question text, 2-6 options, correct index.
	minParts := 1 + domain.MinOptions + 1
	maxParts := 1 + domain.MaxOptions + 1
	if len(parts) < minParts {
		return nil, fmt.Errorf("expected at least %d pipe-delimited fields, got %d", minParts, len(parts))
	}
	if len(parts) > maxParts {
		return nil, fmt.Errorf("expected at most %d pipe-delimited fields, got %d", maxParts, len(parts))
	}

	questionText := parts[0]
	if questionText == "" {
		return nil, fmt.Errorf("question text is empty")
	}

	options := parts[1 : len(parts)-1]
	for i, opt := range options {
		if opt == "" {
			return nil, fmt.Errorf("option %d is empty", i+1)
		}
	}

	correctAnswer, err := strconv.Atoi(parts[len(parts)-1])
	if err != nil {
		return nil, fmt.Errorf("invalid correct answer index %q", parts[len(parts)-1])
	}
	if correctAnswer < 0 || correctAnswer >= len(options) {
		return nil, fmt.Errorf("correct answer index %d out of range for %d options", correctAnswer, len(options))
	}

	question := &domain.Question{
		ID:            util.NewULID(),
		Question:      questionText,
		Options:       options,
		CorrectAnswer: correctAnswer,
	}
	if err := question.Validate(); err != nil {
		return nil, err
	}
	return question, nil
}
