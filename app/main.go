package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"
)

func main() {
	app.Route("/", func() app.Composer { return &FeedView{} })
	app.Route("/login", func() app.Composer { return &LoginView{} })
	app.Route("/register", func() app.Composer { return &RegisterView{} })
	app.RouteWithRegexp(`^/reel/\d+$`, func() app.Composer { return &ReelView{} })
	app.RouteWithRegexp(`^/course/\d+$`, func() app.Composer { return &CourseView{} })
	app.Route("/playlists", func() app.Composer { return &PlaylistsView{} })
	app.Route("/courses", func() app.Composer { return &PlaylistsView{} })
	app.Route("/create-reel", func() app.Composer { return &CreateReelView{} })
	app.Route("/create-course", func() app.Composer { return &CreateCourseView{} })
	app.RunWhenOnBrowser()
}
