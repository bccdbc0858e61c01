package main

import (
	"fmt"
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/derive"
	"edubit/internal/session"
	"edubit/internal/state"
)

type CreateCourseView struct {
	app.Compo

	myReels  state.Resource[[]api.Reel]
	selected *derive.Selection

	title       string
	description string
	difficulty  string

	saving bool
	errMsg string
}

func (v *CreateCourseView) OnInit() {
	v.difficulty = "beginner"
	v.selected = derive.NewSelection()
}

func (v *CreateCourseView) OnMount(ctx app.Context) {
	if !requireAuth(ctx) {
		return
	}
	v.loadMyReels(ctx)
}

func (v *CreateCourseView) loadMyReels(ctx app.Context) {
	gen := v.myReels.Begin()
	creatorID := session.User().ID
	ctx.Async(func() {
		reels, err := backend.ListReels(api.ListReelsParams{Limit: 100, CreatorID: creatorID})
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				// A selection in progress survives a refresh failure.
				if v.myReels.Fail(gen, errorMessage(err, "Failed to load your reels."), false) {
					app.Log("error loading reels:", err)
				}
				return
			}
			v.myReels.Complete(gen, reels)
		})
	})
}

func (v *CreateCourseView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if v.saving {
		return
	}
	if v.selected.Empty() {
		v.errMsg = "Please select at least one reel"
		return
	}
	if strings.TrimSpace(v.title) == "" {
		v.errMsg = "Please enter a title"
		return
	}

	v.saving = true
	v.errMsg = ""
	in := api.CreateCourseInput{
		Title:           v.title,
		Description:     v.description,
		DifficultyLevel: v.difficulty,
		ReelIDs:         v.selected.IDs(),
	}
	ctx.Async(func() {
		_, err := backend.CreateCourse(in)
		ctx.Dispatch(func(ctx app.Context) {
			v.saving = false
			if err != nil {
				v.errMsg = errorMessage(err, "Failed to create course.")
				return
			}
			ctx.Navigate("/courses")
		})
	})
}

func (v *CreateCourseView) Render() app.UI {
	reels := v.myReels.Data()
	submitLabel := "Create Course"
	if v.saving {
		submitLabel = "Creating..."
	}

	return page(
		app.H1().Text("Create Micro-Course"),

		app.If(v.errMsg != "", func() app.UI {
			return errorBanner(v.errMsg)
		}),
		app.If(v.myReels.Errored(), func() app.UI {
			return errorBanner(v.myReels.Err())
		}),

		app.Form().OnSubmit(v.onSubmit).Class("form").Body(
			app.Div().Class("panel").Body(
				app.Label().Text("Course Title *"),
				app.Input().
					Type("text").
					Value(v.title).
					Placeholder("e.g., Python Fundamentals in 5 Minutes").
					OnInput(func(ctx app.Context, e app.Event) {
						v.title = ctx.JSSrc().Get("value").String()
					}),

				app.Label().Text("Description"),
				app.Textarea().
					Rows(4).
					Text(v.description).
					Placeholder("What will learners gain from this course?").
					OnInput(func(ctx app.Context, e app.Event) {
						v.description = ctx.JSSrc().Get("value").String()
					}),

				app.Label().Text("Difficulty Level"),
				difficultySelect(v.difficulty, func(ctx app.Context, e app.Event) {
					v.difficulty = ctx.JSSrc().Get("value").String()
				}),
			),

			app.Div().Class("panel").Body(
				app.H2().Text(fmt.Sprintf("Select Reels (%d selected)", v.selected.Count())),
				app.If(v.myReels.Loaded() && len(reels) == 0, func() app.UI {
					return app.Div().Class("empty-state").Body(
						app.P().Text("You haven't created any reels yet."),
						app.A().Class("btn btn-primary").Href("/create-reel").Text("Create Your First Reel"),
					)
				}).Else(func() app.UI {
					return app.Div().Class("select-list").Body(
						app.Range(reels).Slice(func(i int) app.UI {
							return v.renderPickRow(reels[i])
						}),
					)
				}),
			),

			app.Div().Class("actions").Body(
				app.Button().
					Class("btn btn-primary").
					Type("submit").
					Disabled(v.saving || v.selected.Empty()).
					Text(submitLabel),
				app.A().Class("btn btn-secondary").Href("/courses").Text("Cancel"),
			),
		),
	)
}

func (v *CreateCourseView) renderPickRow(r api.Reel) app.UI {
	cls := "select-row"
	if v.selected.Has(r.ID) {
		cls += " selected"
	}
	return app.Label().Class(cls).Body(
		app.Input().
			Type("checkbox").
			Checked(v.selected.Has(r.ID)).
			OnChange(func(ctx app.Context, e app.Event) {
				v.selected.Toggle(r.ID)
			}),
		app.Div().Class("select-row-body").Body(
			app.Div().Class("select-row-title").Text(r.Title),
			app.Div().Class("select-row-meta").Text(fmt.Sprintf("%ds", r.DurationSeconds)),
		),
	)
}
