package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/session"
)

// navbar renders the top navigation. Creator-only links are a
// presentation nicety; the server enforces roles.
func navbar() app.UI {
	user := session.User()
	name := user.FullName
	if name == "" {
		name = user.Email
	}

	return app.Nav().Class("navbar").Body(
		app.A().Class("navbar-brand").Href("/").Text("EduBit"),
		app.If(session.LoggedIn(), func() app.UI {
			return app.Div().Class("navbar-links").Body(
				app.A().Href("/").Text("Feed"),
				app.A().Href("/playlists").Text("Playlists"),
				app.A().Href("/courses").Text("Courses"),
				app.If(session.IsCreator(), func() app.UI {
					return app.Div().Class("navbar-creator").Body(
						app.A().Href("/create-reel").Text("Create Reel"),
						app.A().Href("/create-course").Text("Create Course"),
					)
				}),
				app.Span().Class("navbar-user").Text(name),
				app.Button().
					Class("btn btn-primary").
					Text("Logout").
					OnClick(func(ctx app.Context, e app.Event) {
						session.Clear(ctx.LocalStorage())
						ctx.Navigate("/login")
					}),
			)
		}),
	)
}

// page wraps a view's content under the navbar.
func page(content ...app.UI) app.UI {
	return app.Div().Class("page").Body(
		navbar(),
		app.Main().Class("page-content").Body(content...),
	)
}
