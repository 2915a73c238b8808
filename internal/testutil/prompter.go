package testutil

import (
	"codeberg.org/snonux/wordcard/internal/prompt"
)

// PromptCall records one question asked through ScriptedPrompter
type PromptCall struct {
	Title   string
	Choices []string
}

// Answer is a scripted reply to one question
type Answer struct {
	Chosen []string
	Err    error
}

// Pick answers with the given choices
func Pick(choices ...string) Answer {
	return Answer{Chosen: choices}
}

// Cancel answers by dismissing the prompt
func Cancel() Answer {
	return Answer{Err: prompt.ErrCancelled}
}

// ScriptedPrompter replays prepared answers in order. Once the script
// runs out every further question is cancelled.
type ScriptedPrompter struct {
	Answers []Answer
	Calls   []PromptCall
}

// NewScriptedPrompter creates a prompter replaying answers
func NewScriptedPrompter(answers ...Answer) *ScriptedPrompter {
	return &ScriptedPrompter{Answers: answers}
}

// Select implements prompt.Prompter
func (p *ScriptedPrompter) Select(title string, choices []string) ([]string, error) {
	p.Calls = append(p.Calls, PromptCall{
		Title:   title,
		Choices: append([]string(nil), choices...),
	})

	if len(p.Answers) == 0 {
		return nil, prompt.ErrCancelled
	}

	answer := p.Answers[0]
	p.Answers = p.Answers[1:]
	return answer.Chosen, answer.Err
}
