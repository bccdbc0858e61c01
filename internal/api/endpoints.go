package api

import (
	"bytes"
	"fmt"
	"mime/multipart"
	"net/url"
	"strconv"
	"strings"
)

// Auth

func (c *Client) Register(email, password, fullName, role string) (AuthToken, error) {
	var out AuthToken
	err := c.do("POST", "/auth/register", nil, map[string]string{
		"email":     email,
		"password":  password,
		"full_name": fullName,
		"role":      role,
	}, &out)
	return out, err
}

func (c *Client) Login(email, password string) (AuthToken, error) {
	var out AuthToken
	err := c.do("POST", "/auth/login", nil, map[string]string{
		"email":    email,
		"password": password,
	}, &out)
	return out, err
}

func (c *Client) Me() (User, error) {
	var out User
	err := c.do("GET", "/auth/me", nil, nil, &out)
	return out, err
}

// Reels

const maxUploadBytes = 100 << 20

type UploadReelInput struct {
	FileName        string
	FileType        string
	Data            []byte
	Title           string
	Description     string
	Tags            string
	DifficultyLevel string
}

func (c *Client) UploadReel(in UploadReelInput) (Reel, error) {
	var out Reel
	if len(in.Data) == 0 {
		return out, &ValidationError{Message: "Please select a video file"}
	}
	if !strings.HasPrefix(in.FileType, "video/") {
		return out, &ValidationError{Message: "Please select a valid video file"}
	}
	if len(in.Data) > maxUploadBytes {
		return out, &ValidationError{Message: "Video file must be less than 100MB"}
	}
	if strings.TrimSpace(in.Title) == "" {
		return out, &ValidationError{Message: "Please enter a title"}
	}

	var buf bytes.Buffer
	w := multipart.NewWriter(&buf)
	part, err := w.CreateFormFile("file", in.FileName)
	if err != nil {
		return out, err
	}
	if _, err := part.Write(in.Data); err != nil {
		return out, err
	}
	for k, v := range map[string]string{
		"title":            in.Title,
		"description":      in.Description,
		"tags":             in.Tags,
		"difficulty_level": in.DifficultyLevel,
	} {
		if err := w.WriteField(k, v); err != nil {
			return out, err
		}
	}
	if err := w.Close(); err != nil {
		return out, err
	}

	err = c.send("POST", "/reels/upload", nil, &buf, w.FormDataContentType(), &out)
	return out, err
}

type CreateReelInput struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	VideoURL        string `json:"video_url"`
	Tags            string `json:"tags,omitempty"`
	DifficultyLevel string `json:"difficulty_level"`
	DurationSeconds int    `json:"duration_seconds"`
}

func (c *Client) CreateReel(in CreateReelInput) (Reel, error) {
	var out Reel
	err := c.do("POST", "/reels/", nil, in, &out)
	return out, err
}

type FeedParams struct {
	Limit      int
	Offset     int
	Tags       string
	Difficulty string
}

func (c *Client) Feed(p FeedParams) ([]Reel, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.Tags != "" {
		q.Set("tags", p.Tags)
	}
	if p.Difficulty != "" {
		q.Set("difficulty", p.Difficulty)
	}
	var out []Reel
	err := c.do("GET", "/reels/feed", q, nil, &out)
	return out, err
}

func (c *Client) GetReel(id int) (Reel, error) {
	var out Reel
	err := c.do("GET", fmt.Sprintf("/reels/%d", id), nil, nil, &out)
	return out, err
}

type ListReelsParams struct {
	Limit     int
	Offset    int
	CreatorID int
}

func (c *Client) ListReels(p ListReelsParams) ([]Reel, error) {
	q := url.Values{}
	if p.Limit > 0 {
		q.Set("limit", strconv.Itoa(p.Limit))
	}
	if p.Offset > 0 {
		q.Set("offset", strconv.Itoa(p.Offset))
	}
	if p.CreatorID > 0 {
		q.Set("creator_id", strconv.Itoa(p.CreatorID))
	}
	var out []Reel
	err := c.do("GET", "/reels/", q, nil, &out)
	return out, err
}

// Micro-courses

type CreateCourseInput struct {
	Title           string `json:"title"`
	Description     string `json:"description,omitempty"`
	DifficultyLevel string `json:"difficulty_level"`
	ReelIDs         []int  `json:"reel_ids"`
}

func (c *Client) CreateCourse(in CreateCourseInput) (MicroCourse, error) {
	var out MicroCourse
	err := c.do("POST", "/courses/", nil, in, &out)
	return out, err
}

func (c *Client) GetCourse(id int) (MicroCourse, error) {
	var out MicroCourse
	err := c.do("GET", fmt.Sprintf("/courses/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) ListCourses(limit, offset int) ([]MicroCourse, error) {
	q := url.Values{}
	if limit > 0 {
		q.Set("limit", strconv.Itoa(limit))
	}
	if offset > 0 {
		q.Set("offset", strconv.Itoa(offset))
	}
	var out []MicroCourse
	err := c.do("GET", "/courses/", q, nil, &out)
	return out, err
}

// Playlists

func (c *Client) CreatePlaylist(title, description string) (Playlist, error) {
	var out Playlist
	err := c.do("POST", "/playlists/", nil, map[string]string{
		"title":       title,
		"description": description,
	}, &out)
	return out, err
}

func (c *Client) AddReelToPlaylist(playlistID, reelID int) (Playlist, error) {
	var out Playlist
	err := c.do("POST", fmt.Sprintf("/playlists/%d/reels", playlistID), nil, map[string]int{
		"reel_id": reelID,
	}, &out)
	return out, err
}

func (c *Client) GetPlaylist(id int) (Playlist, error) {
	var out Playlist
	err := c.do("GET", fmt.Sprintf("/playlists/%d", id), nil, nil, &out)
	return out, err
}

func (c *Client) ListPlaylists() ([]Playlist, error) {
	var out []Playlist
	err := c.do("GET", "/playlists/", nil, nil, &out)
	return out, err
}

// Progress

type MarkProgressInput struct {
	ReelID    *int `json:"reel_id,omitempty"`
	CourseID  *int `json:"course_id,omitempty"`
	Completed bool `json:"completed"`
}

func (c *Client) MarkProgress(in MarkProgressInput) (Progress, error) {
	var out Progress
	err := c.do("POST", "/progress/", nil, in, &out)
	return out, err
}

func (c *Client) CourseProgress(courseID int) (CourseProgress, error) {
	var out CourseProgress
	err := c.do("GET", fmt.Sprintf("/progress/course/%d", courseID), nil, nil, &out)
	return out, err
}

func (c *Client) MyProgress() ([]Progress, error) {
	var out []Progress
	err := c.do("GET", "/progress/", nil, nil, &out)
	return out, err
}

// Comments

func (c *Client) CreateComment(reelID int, content string) (Comment, error) {
	var out Comment
	err := c.do("POST", "/comments/", nil, map[string]any{
		"reel_id": reelID,
		"content": content,
	}, &out)
	return out, err
}

func (c *Client) ListReelComments(reelID int) ([]Comment, error) {
	var out []Comment
	err := c.do("GET", fmt.Sprintf("/comments/reel/%d", reelID), nil, nil, &out)
	return out, err
}

// AI

type GenerateInput struct {
	ReelID   *int `json:"reel_id,omitempty"`
	CourseID *int `json:"course_id,omitempty"`
}

func (c *Client) GenerateSummary(in GenerateInput) (Summary, error) {
	var out Summary
	err := c.do("POST", "/ai/summary", nil, in, &out)
	return out, err
}

func (c *Client) GenerateQuiz(in GenerateInput) (Quiz, error) {
	var out Quiz
	err := c.do("POST", "/ai/quiz", nil, in, &out)
	return out, err
}
