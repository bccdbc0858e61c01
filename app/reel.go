package main

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/derive"
	"edubit/internal/state"
)

type ReelView struct {
	app.Compo

	id       int
	reel     state.Resource[api.Reel]
	comments state.Resource[[]api.Comment]

	// AI sections are best-effort: absent until loaded or generated,
	// and a generation failure just leaves them out.
	summary  *api.Summary
	quiz     *api.Quiz
	answers  *derive.QuizAnswers
	showQuiz bool

	newComment string
	watched    bool
}

func (v *ReelView) OnMount(ctx app.Context) {
	if !requireAuth(ctx) {
		return
	}
	v.loadFromURL(ctx)
}

func (v *ReelView) OnNav(ctx app.Context) {
	v.loadFromURL(ctx)
}

func routeID(ctx app.Context) int {
	parts := strings.Split(strings.Trim(ctx.Page().URL().Path, "/"), "/")
	if len(parts) < 2 {
		return 0
	}
	id, _ := strconv.Atoi(parts[1])
	return id
}

func (v *ReelView) loadFromURL(ctx app.Context) {
	id := routeID(ctx)
	if id == 0 || id == v.id {
		return
	}
	v.id = id
	v.summary = nil
	v.quiz = nil
	v.answers = nil
	v.showQuiz = false
	v.watched = false
	v.loadReel(ctx, id)
	v.loadComments(ctx, id)
}

// loadReel fetches the reel, then conditionally asks the AI service
// for whatever the reel record did not carry precomputed. The reel
// and the comments load independently; neither blocks the other.
func (v *ReelView) loadReel(ctx app.Context, id int) {
	gen := v.reel.Begin()
	ctx.Async(func() {
		reel, err := backend.GetReel(id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				if v.reel.Fail(gen, errorMessage(err, "Failed to load reel."), true) {
					app.Log("error loading reel:", err)
				}
				return
			}
			if !v.reel.Complete(gen, reel) {
				return
			}
			if reel.AISummary != "" {
				v.summary = &api.Summary{Summary: reel.AISummary, KeyPoints: reel.AIKeyPoints}
			} else {
				v.generateSummary(ctx, id)
			}
			if reel.AIQuiz != nil && len(reel.AIQuiz.Questions) > 0 {
				v.setQuiz(reel.AIQuiz)
			} else {
				v.generateQuiz(ctx, id)
			}
		})
	})
}

func (v *ReelView) setQuiz(q *api.Quiz) {
	v.quiz = q
	v.answers = derive.NewQuizAnswers(len(q.Questions))
}

func (v *ReelView) generateSummary(ctx app.Context, id int) {
	ctx.Async(func() {
		summary, err := backend.GenerateSummary(api.GenerateInput{ReelID: &id})
		ctx.Dispatch(func(ctx app.Context) {
			if v.id != id {
				return
			}
			if err != nil {
				app.Log("AI summary not available:", err)
				return
			}
			v.summary = &summary
		})
	})
}

func (v *ReelView) generateQuiz(ctx app.Context, id int) {
	ctx.Async(func() {
		quiz, err := backend.GenerateQuiz(api.GenerateInput{ReelID: &id})
		ctx.Dispatch(func(ctx app.Context) {
			if v.id != id {
				return
			}
			if err != nil {
				app.Log("quiz not available:", err)
				return
			}
			if len(quiz.Questions) > 0 {
				v.setQuiz(&quiz)
			}
		})
	})
}

func (v *ReelView) loadComments(ctx app.Context, id int) {
	gen := v.comments.Begin()
	ctx.Async(func() {
		comments, err := backend.ListReelComments(id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				if v.comments.Fail(gen, errorMessage(err, "Failed to load comments."), false) {
					app.Log("error loading comments:", err)
				}
				return
			}
			v.comments.Complete(gen, comments)
		})
	})
}

func (v *ReelView) onMarkWatched(ctx app.Context, e app.Event) {
	id := v.id
	ctx.Async(func() {
		_, err := backend.MarkProgress(api.MarkProgressInput{ReelID: &id, Completed: true})
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				app.Log("error marking progress:", err)
				return
			}
			if v.id == id {
				v.watched = true
			}
		})
	})
}

func (v *ReelView) onCommentInput(ctx app.Context, e app.Event) {
	v.newComment = ctx.JSSrc().Get("value").String()
}

func (v *ReelView) onSubmitComment(ctx app.Context, e app.Event) {
	e.PreventDefault()
	content := strings.TrimSpace(v.newComment)
	if content == "" {
		return
	}
	id := v.id
	ctx.Async(func() {
		_, err := backend.CreateComment(id, content)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				app.Log("error posting comment:", err)
				return
			}
			if v.id != id {
				return
			}
			v.newComment = ""
			v.loadComments(ctx, id)
		})
	})
}

func (v *ReelView) onSelectAnswer(question, option int) app.EventHandler {
	return func(ctx app.Context, e app.Event) {
		if v.answers != nil {
			v.answers.Select(question, option)
		}
	}
}

func (v *ReelView) Render() app.UI {
	if v.reel.Loading() {
		return page(loader())
	}
	if v.reel.Errored() {
		return page(
			errorBanner(v.reel.Err()),
			app.A().Class("btn btn-primary").Href("/").Text("Back to Feed"),
		)
	}
	if !v.reel.Loaded() {
		return page(loader())
	}

	reel := v.reel.Data()
	return page(
		app.Div().Class("reel-layout").Body(
			app.Div().Class("reel-main").Body(
				app.Video().
					Class("reel-player").
					Src(reel.VideoURL).
					Controls(true).
					AutoPlay(true),
				v.renderInfo(reel),
				v.renderComments(),
			),
			app.Div().Class("reel-sidebar").Body(
				v.renderSummary(),
				v.renderQuiz(),
			),
		),
	)
}

func (v *ReelView) renderInfo(reel api.Reel) app.UI {
	watchLabel := "Mark as Watched"
	if v.watched {
		watchLabel = "Watched"
	}

	return app.Div().Class("panel").Body(
		app.H1().Text(reel.Title),
		app.Div().Class("card-meta").Body(
			app.Span().Text("by "+reel.CreatorName),
			app.Span().Text(fmt.Sprintf("%d views", reel.ViewsCount)),
			app.Span().Text(fmt.Sprintf("%ds", reel.DurationSeconds)),
			difficultyBadge(reel.DifficultyLevel),
		),
		app.If(reel.Description != "", func() app.UI {
			return app.P().Text(reel.Description)
		}),
		tagRow(reel.Tags),
		app.Div().Class("actions").Body(
			app.Button().
				Class("btn btn-success").
				Disabled(v.watched).
				OnClick(v.onMarkWatched).
				Text(watchLabel),
		),
	)
}

func (v *ReelView) renderComments() app.UI {
	comments := v.comments.Data()
	return app.Div().Class("panel").Body(
		app.H2().Text(fmt.Sprintf("Comments (%d)", len(comments))),
		app.If(v.comments.Errored(), func() app.UI {
			return errorBanner(v.comments.Err())
		}),
		app.Form().OnSubmit(v.onSubmitComment).Body(
			app.Textarea().
				Class("comment-input").
				Placeholder("Add a comment...").
				Rows(3).
				Text(v.newComment).
				OnInput(v.onCommentInput),
			app.Button().Class("btn btn-primary").Type("submit").Text("Post Comment"),
		),
		app.Div().Class("comment-list").Body(
			app.Range(comments).Slice(func(i int) app.UI {
				c := comments[i]
				return app.Div().Class("comment").Body(
					app.Div().Class("comment-head").Body(
						app.Span().Class("comment-author").Text(c.UserName),
						app.Span().Class("comment-date").Text(c.CreatedAt),
					),
					app.P().Text(c.Content),
				)
			}),
			app.If(v.comments.Loaded() && len(comments) == 0, func() app.UI {
				return emptyState("No comments yet. Be the first!")
			}),
		),
	)
}

func (v *ReelView) renderSummary() app.UI {
	if v.summary == nil {
		return app.Div()
	}
	s := v.summary
	return app.Div().Class("panel").Body(
		app.H2().Text("AI Summary"),
		app.P().Text(s.Summary),
		app.If(len(s.KeyPoints) > 0, func() app.UI {
			return app.Div().Body(
				app.H3().Text("Key Points:"),
				app.Ul().Body(
					app.Range(s.KeyPoints).Slice(func(i int) app.UI {
						return app.Li().Text(s.KeyPoints[i])
					}),
				),
			)
		}),
	)
}

func (v *ReelView) renderQuiz() app.UI {
	if v.quiz == nil || len(v.quiz.Questions) == 0 {
		return app.Div()
	}
	quiz := *v.quiz

	toggle := "Show"
	if v.showQuiz {
		toggle = "Hide"
	}

	return app.Div().Class("panel").Body(
		app.Div().Class("panel-head").Body(
			app.H2().Text("Practice Quiz"),
			app.Button().
				Class("btn btn-secondary").
				Text(toggle).
				OnClick(func(ctx app.Context, e app.Event) {
					v.showQuiz = !v.showQuiz
				}),
		),
		app.If(v.showQuiz, func() app.UI {
			return app.Div().Class("quiz").Body(
				app.Range(quiz.Questions).Slice(func(qi int) app.UI {
					q := quiz.Questions[qi]
					return app.Div().Class("quiz-question").Body(
						app.P().Class("quiz-prompt").Text(fmt.Sprintf("%d. %s", qi+1, q.Question)),
						app.Range(q.Options).Slice(func(oi int) app.UI {
							return app.Label().Class("quiz-option").Body(
								app.Input().
									Type("radio").
									Name(fmt.Sprintf("question-%d", qi)).
									Checked(v.answers.Selected(qi) == oi).
									OnChange(v.onSelectAnswer(qi, oi)),
								app.Span().Text(q.Options[oi]),
							)
						}),
					)
				}),
				app.If(v.answers.Complete(), func() app.UI {
					score, _ := v.answers.Score(quiz)
					return app.Div().Class("quiz-score").Text(
						fmt.Sprintf("Score: %d / %d", score, len(quiz.Questions)),
					)
				}),
			)
		}),
	)
}
