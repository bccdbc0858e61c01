package api

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestQuizQuestionCorrectAnswerAsIndex(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(
		`{"question":"q","options":["a","b","c"],"correct_answer":2}`), &q))
	assert.Equal(t, 2, q.CorrectAnswer)
}

func TestQuizQuestionCorrectAnswerAsNumericString(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(
		`{"question":"q","options":["a","b","c"],"correct_answer":"1"}`), &q))
	assert.Equal(t, 1, q.CorrectAnswer)
}

func TestQuizQuestionCorrectAnswerAsOptionText(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(
		`{"question":"q","options":["alpha","beta","gamma"],"correct_answer":"beta"}`), &q))
	assert.Equal(t, 1, q.CorrectAnswer)
}

func TestQuizQuestionCorrectAnswerUnresolvable(t *testing.T) {
	var q QuizQuestion
	require.NoError(t, json.Unmarshal([]byte(
		`{"question":"q","options":["a","b"],"correct_answer":"nope"}`), &q))
	assert.Equal(t, -1, q.CorrectAnswer, "unmatchable text never scores")

	require.NoError(t, json.Unmarshal([]byte(
		`{"question":"q","options":["a","b"],"correct_answer":9}`), &q))
	assert.Equal(t, -1, q.CorrectAnswer, "out-of-range index never scores")

	require.NoError(t, json.Unmarshal([]byte(
		`{"question":"q","options":["a","b"]}`), &q))
	assert.Equal(t, -1, q.CorrectAnswer)
}

func TestQuizDecodesInsideReel(t *testing.T) {
	var r Reel
	require.NoError(t, json.Unmarshal([]byte(`{
		"id": 7,
		"title": "t",
		"video_url": "https://cdn/x.mp4",
		"difficulty_level": "beginner",
		"duration_seconds": 45,
		"creator_id": 1,
		"views_count": 3,
		"ai_quiz": {"questions":[{"question":"q","options":["a","b"],"correct_answer":"b"}]}
	}`), &r))
	require.NotNil(t, r.AIQuiz)
	require.Len(t, r.AIQuiz.Questions, 1)
	assert.Equal(t, 1, r.AIQuiz.Questions[0].CorrectAnswer)
}

func TestProgressTolerantOfEitherTarget(t *testing.T) {
	var reelProgress Progress
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":1,"user_id":2,"reel_id":7,"completed":true}`), &reelProgress))
	require.NotNil(t, reelProgress.ReelID)
	assert.Equal(t, 7, *reelProgress.ReelID)
	assert.Nil(t, reelProgress.CourseID)

	var courseProgress Progress
	require.NoError(t, json.Unmarshal([]byte(
		`{"id":1,"user_id":2,"course_id":4,"completed":false}`), &courseProgress))
	assert.Nil(t, courseProgress.ReelID)
	require.NotNil(t, courseProgress.CourseID)
	assert.Equal(t, 4, *courseProgress.CourseID)
}
