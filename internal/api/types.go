package api

import (
	"encoding/json"
	"strconv"
	"strings"
)

type User struct {
	ID        int    `json:"id"`
	Email     string `json:"email"`
	FullName  string `json:"full_name,omitempty"`
	Role      string `json:"role"`
	CreatedAt string `json:"created_at"`
}

const (
	RoleLearner = "learner"
	RoleCreator = "creator"
)

type AuthToken struct {
	AccessToken string `json:"access_token"`
	TokenType   string `json:"token_type"`
	User        User   `json:"user"`
}

type Reel struct {
	ID                 int      `json:"id"`
	Title              string   `json:"title"`
	Description        string   `json:"description,omitempty"`
	VideoURL           string   `json:"video_url"`
	CloudinaryPublicID string   `json:"cloudinary_public_id,omitempty"`
	Tags               string   `json:"tags,omitempty"`
	DifficultyLevel    string   `json:"difficulty_level"`
	DurationSeconds    int      `json:"duration_seconds"`
	CreatorID          int      `json:"creator_id"`
	CreatorName        string   `json:"creator_name,omitempty"`
	CreatedAt          string   `json:"created_at"`
	ViewsCount         int      `json:"views_count"`
	AISummary          string   `json:"ai_summary,omitempty"`
	AIKeyPoints        []string `json:"ai_key_points,omitempty"`
	AIQuiz             *Quiz    `json:"ai_quiz,omitempty"`
}

type MicroCourse struct {
	ID              int    `json:"id"`
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DifficultyLevel string `json:"difficulty_level"`
	CreatorID       int    `json:"creator_id"`
	CreatedAt       string `json:"created_at"`
	Reels           []Reel `json:"reels"`
}

type Playlist struct {
	ID          int    `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	UserID      int    `json:"user_id"`
	CreatedAt   string `json:"created_at"`
	Reels       []Reel `json:"reels"`
}

type Progress struct {
	ID          int    `json:"id"`
	UserID      int    `json:"user_id"`
	ReelID      *int   `json:"reel_id,omitempty"`
	CourseID    *int   `json:"course_id,omitempty"`
	Completed   bool   `json:"completed"`
	CompletedAt string `json:"completed_at,omitempty"`
	CreatedAt   string `json:"created_at"`
}

type CourseProgress struct {
	CourseID             int `json:"course_id"`
	TotalReels           int `json:"total_reels"`
	CompletedReels       int `json:"completed_reels"`
	CompletionPercentage int `json:"completion_percentage"`
}

type Comment struct {
	ID        int    `json:"id"`
	Content   string `json:"content"`
	UserID    int    `json:"user_id"`
	ReelID    int    `json:"reel_id"`
	CreatedAt string `json:"created_at"`
	UserName  string `json:"user_name,omitempty"`
}

type Summary struct {
	Summary   string   `json:"summary"`
	KeyPoints []string `json:"key_points"`
}

type Quiz struct {
	Questions []QuizQuestion `json:"questions"`
}

// QuizQuestion's canonical correct-answer representation is the index
// into Options. The generation service is inconsistent on the wire: it
// sends the index as a number, the index as a string, or the literal
// option text. All three are normalized here, at decode time.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer int      `json:"correct_answer"`
}

func (q *QuizQuestion) UnmarshalJSON(data []byte) error {
	var raw struct {
		Question      string          `json:"question"`
		Options       []string        `json:"options"`
		CorrectAnswer json.RawMessage `json:"correct_answer"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	q.Question = raw.Question
	q.Options = raw.Options
	q.CorrectAnswer = -1

	if len(raw.CorrectAnswer) == 0 {
		return nil
	}

	var idx int
	if err := json.Unmarshal(raw.CorrectAnswer, &idx); err == nil {
		if idx >= 0 && idx < len(q.Options) {
			q.CorrectAnswer = idx
		}
		return nil
	}

	var s string
	if err := json.Unmarshal(raw.CorrectAnswer, &s); err != nil {
		return nil
	}
	if idx, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		if idx >= 0 && idx < len(q.Options) {
			q.CorrectAnswer = idx
		}
		return nil
	}
	for i, opt := range q.Options {
		if strings.EqualFold(strings.TrimSpace(opt), strings.TrimSpace(s)) {
			q.CorrectAnswer = i
			return nil
		}
	}
	return nil
}
