package derive

import (
	"sort"

	"edubit/internal/api"
)

// QuizAnswers tracks the learner's selected option index per question,
// -1 while unanswered.
type QuizAnswers struct {
	selected []int
}

func NewQuizAnswers(questions int) *QuizAnswers {
	sel := make([]int, questions)
	for i := range sel {
		sel[i] = -1
	}
	return &QuizAnswers{selected: sel}
}

// Select records an answer. Selecting the same option again is a
// no-op; selecting a different one replaces it.
func (a *QuizAnswers) Select(question, option int) {
	if question < 0 || question >= len(a.selected) || option < 0 {
		return
	}
	a.selected[question] = option
}

func (a *QuizAnswers) Selected(question int) int {
	if question < 0 || question >= len(a.selected) {
		return -1
	}
	return a.selected[question]
}

// Complete reports whether every question has an answer. The score is
// undefined until it does.
func (a *QuizAnswers) Complete() bool {
	if len(a.selected) == 0 {
		return false
	}
	for _, s := range a.selected {
		if s < 0 {
			return false
		}
	}
	return true
}

// Score counts questions whose selected index matches the correct
// one. ok is false until the answer set covers every question.
func (a *QuizAnswers) Score(quiz api.Quiz) (score int, ok bool) {
	if len(a.selected) != len(quiz.Questions) || !a.Complete() {
		return 0, false
	}
	for i, q := range quiz.Questions {
		if a.selected[i] == q.CorrectAnswer {
			score++
		}
	}
	return score, true
}

// Selection is the set of reel ids picked on a selection screen.
// Toggle is its own inverse.
type Selection struct {
	ids map[int]bool
}

func NewSelection() *Selection {
	return &Selection{ids: map[int]bool{}}
}

func (s *Selection) Toggle(id int) {
	if s.ids[id] {
		delete(s.ids, id)
		return
	}
	s.ids[id] = true
}

func (s *Selection) Has(id int) bool { return s.ids[id] }
func (s *Selection) Count() int      { return len(s.ids) }
func (s *Selection) Empty() bool     { return len(s.ids) == 0 }

// IDs returns the selection in ascending order for submission.
func (s *Selection) IDs() []int {
	ids := make([]int, 0, len(s.ids))
	for id := range s.ids {
		ids = append(ids, id)
	}
	sort.Ints(ids)
	return ids
}
