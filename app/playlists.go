package main

import (
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/state"
)

type PlaylistsView struct {
	app.Compo

	playlists state.Resource[[]api.Playlist]
	courses   state.Resource[[]api.MicroCourse]

	showModal      bool
	newTitle       string
	newDescription string
	modalError     string
}

func (v *PlaylistsView) OnMount(ctx app.Context) {
	if !requireAuth(ctx) {
		return
	}
	v.load(ctx)
}

// The two lists fetch concurrently but render all-or-nothing: loading
// clears only once both settle, and either failure drives the shared
// error state.
func (v *PlaylistsView) load(ctx app.Context) {
	playlistGen := v.playlists.Begin()
	courseGen := v.courses.Begin()

	ctx.Async(func() {
		playlists, err := backend.ListPlaylists()
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				if v.playlists.Fail(playlistGen, errorMessage(err, "Failed to load playlists."), false) {
					app.Log("error loading playlists:", err)
				}
				return
			}
			v.playlists.Complete(playlistGen, playlists)
		})
	})

	ctx.Async(func() {
		courses, err := backend.ListCourses(20, 0)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				if v.courses.Fail(courseGen, errorMessage(err, "Failed to load courses."), false) {
					app.Log("error loading courses:", err)
				}
				return
			}
			v.courses.Complete(courseGen, courses)
		})
	})
}

func (v *PlaylistsView) onCreatePlaylist(ctx app.Context, e app.Event) {
	e.PreventDefault()
	title := strings.TrimSpace(v.newTitle)
	if title == "" {
		v.modalError = "Please enter a title"
		return
	}
	description := v.newDescription

	ctx.Async(func() {
		_, err := backend.CreatePlaylist(title, description)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				v.modalError = errorMessage(err, "Failed to create playlist.")
				return
			}
			v.showModal = false
			v.newTitle = ""
			v.newDescription = ""
			v.modalError = ""
			v.load(ctx)
		})
	})
}

func (v *PlaylistsView) Render() app.UI {
	joined := state.Join(v.playlists.Status(), v.courses.Status())
	if joined == state.Loading || joined == state.Idle {
		return page(loader())
	}
	if joined == state.Errored {
		msg := v.playlists.Err()
		if msg == "" {
			msg = v.courses.Err()
		}
		return page(errorBanner(msg))
	}

	playlists := v.playlists.Data()
	courses := v.courses.Data()

	return page(
		app.Div().Class("section-head").Body(
			app.H1().Text("My Playlists"),
			app.Button().
				Class("btn btn-primary").
				Text("Create Playlist").
				OnClick(func(ctx app.Context, e app.Event) {
					v.showModal = true
				}),
		),
		app.If(len(playlists) > 0, func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(playlists).Slice(func(i int) app.UI {
					return playlistCard(playlists[i])
				}),
			)
		}).Else(func() app.UI {
			return emptyState("No playlists yet. Create your first playlist!")
		}),

		app.H2().Text("Available Micro-Courses"),
		app.If(len(courses) > 0, func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(courses).Slice(func(i int) app.UI {
					return courseCard(courses[i])
				}),
			)
		}).Else(func() app.UI {
			return emptyState("No courses available yet.")
		}),

		app.If(v.showModal, func() app.UI {
			return v.renderModal()
		}),
	)
}

func (v *PlaylistsView) renderModal() app.UI {
	return app.Div().Class("modal-backdrop").Body(
		app.Div().Class("modal").Body(
			app.H2().Text("Create New Playlist"),
			app.If(v.modalError != "", func() app.UI {
				return errorBanner(v.modalError)
			}),
			app.Form().OnSubmit(v.onCreatePlaylist).Body(
				app.Label().Text("Title"),
				app.Input().
					Type("text").
					Value(v.newTitle).
					OnInput(func(ctx app.Context, e app.Event) {
						v.newTitle = ctx.JSSrc().Get("value").String()
					}),
				app.Label().Text("Description"),
				app.Textarea().
					Rows(3).
					Text(v.newDescription).
					OnInput(func(ctx app.Context, e app.Event) {
						v.newDescription = ctx.JSSrc().Get("value").String()
					}),
				app.Div().Class("actions").Body(
					app.Button().Class("btn btn-primary").Type("submit").Text("Create"),
					app.Button().
						Class("btn btn-secondary").
						Type("button").
						Text("Cancel").
						OnClick(func(ctx app.Context, e app.Event) {
							v.showModal = false
							v.modalError = ""
						}),
				),
			),
		),
	)
}
