package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/derive"
	"edubit/internal/state"
)

type CourseView struct {
	app.Compo

	id       int
	course   state.Resource[api.MicroCourse]
	progress state.Resource[api.CourseProgress]
}

func (v *CourseView) OnMount(ctx app.Context) {
	if !requireAuth(ctx) {
		return
	}
	v.loadFromURL(ctx)
}

func (v *CourseView) OnNav(ctx app.Context) {
	v.loadFromURL(ctx)
}

// The course and its progress load concurrently and apply
// independently; a missing progress record never blocks the course.
func (v *CourseView) loadFromURL(ctx app.Context) {
	id := routeID(ctx)
	if id == 0 || id == v.id {
		return
	}
	v.id = id
	v.loadCourse(ctx, id)
	v.loadProgress(ctx, id)
}

func (v *CourseView) loadCourse(ctx app.Context, id int) {
	gen := v.course.Begin()
	ctx.Async(func() {
		course, err := backend.GetCourse(id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				if v.course.Fail(gen, errorMessage(err, "Failed to load course."), true) {
					app.Log("error loading course:", err)
				}
				return
			}
			v.course.Complete(gen, course)
		})
	})
}

func (v *CourseView) loadProgress(ctx app.Context, id int) {
	gen := v.progress.Begin()
	ctx.Async(func() {
		progress, err := backend.CourseProgress(id)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				if v.progress.Fail(gen, "", true) {
					app.Log("error loading progress:", err)
				}
				return
			}
			v.progress.Complete(gen, progress)
		})
	})
}

func (v *CourseView) Render() app.UI {
	if !v.course.Loaded() && !v.course.Errored() {
		return page(loader())
	}
	if v.course.Errored() {
		return page(
			errorBanner(v.course.Err()),
			app.A().Class("btn btn-primary").Href("/").Text("Back to Feed"),
		)
	}

	course := v.course.Data()
	return page(
		app.Div().Class("panel").Body(
			app.H1().Text(course.Title),
			app.If(course.Description != "", func() app.UI {
				return app.P().Text(course.Description)
			}),
			app.If(v.progress.Loaded(), func() app.UI {
				return v.renderProgress()
			}),
			app.Div().Class("card-meta").Body(
				app.Span().Text(fmt.Sprintf("%d lessons", len(course.Reels))),
				difficultyBadge(course.DifficultyLevel),
			),
		),
		app.H2().Text("Course Content"),
		app.Div().Class("card-grid").Body(
			app.Range(course.Reels).Slice(func(i int) app.UI {
				return app.Div().Class("lesson").Body(
					app.Div().Class("lesson-number").Text(fmt.Sprintf("Lesson %d", i+1)),
					reelCard(course.Reels[i]),
				)
			}),
		),
	)
}

func (v *CourseView) renderProgress() app.UI {
	p := v.progress.Data()
	percent := derive.CompletionPercent(p.CompletedReels, p.TotalReels)
	return app.Div().Class("progress-block").Body(
		app.Div().Class("progress-head").Body(
			app.Span().Text("Progress"),
			app.Span().Text(fmt.Sprintf("%d%%", percent)),
		),
		app.Div().Class("progress-track").Body(
			app.Div().Class("progress-fill").Style("width", fmt.Sprintf("%d%%", percent)),
		),
		app.P().Class("progress-detail").Text(
			fmt.Sprintf("%d of %d lessons completed", p.CompletedReels, p.TotalReels),
		),
	)
}
