package main

import (
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/session"
)

type LoginView struct {
	app.Compo

	email    string
	password string
	busy     bool
	errMsg   string
}

func (v *LoginView) OnMount(ctx app.Context) {
	session.Load(ctx.LocalStorage())
	if session.LoggedIn() {
		ctx.Navigate("/")
	}
}

func (v *LoginView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if v.busy {
		return
	}
	v.busy = true
	v.errMsg = ""
	email, password := v.email, v.password

	ctx.Async(func() {
		token, err := backend.Login(email, password)
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.errMsg = errorMessage(err, "Login failed. Please try again.")
				return
			}
			session.SetAuth(ctx.LocalStorage(), token)
			ctx.Navigate("/")
		})
	})
}

func (v *LoginView) Render() app.UI {
	return authPage("Welcome back", v.errMsg,
		app.Form().OnSubmit(v.onSubmit).Class("form").Body(
			app.Label().Text("Email"),
			app.Input().
				Type("email").
				Value(v.email).
				OnInput(func(ctx app.Context, e app.Event) {
					v.email = ctx.JSSrc().Get("value").String()
				}),
			app.Label().Text("Password"),
			app.Input().
				Type("password").
				Value(v.password).
				OnInput(func(ctx app.Context, e app.Event) {
					v.password = ctx.JSSrc().Get("value").String()
				}),
			app.Button().
				Class("btn btn-primary").
				Type("submit").
				Disabled(v.busy).
				Text("Log in"),
		),
		app.P().Class("auth-switch").Body(
			app.Text("New to EduBit? "),
			app.A().Href("/register").Text("Create an account"),
		),
	)
}

type RegisterView struct {
	app.Compo

	email    string
	password string
	fullName string
	role     string
	busy     bool
	errMsg   string
}

func (v *RegisterView) OnInit() {
	v.role = api.RoleLearner
}

func (v *RegisterView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if v.busy {
		return
	}
	if strings.TrimSpace(v.email) == "" || v.password == "" {
		v.errMsg = "Email and password are required"
		return
	}
	v.busy = true
	v.errMsg = ""
	email, password, fullName, role := v.email, v.password, v.fullName, v.role

	ctx.Async(func() {
		token, err := backend.Register(email, password, fullName, role)
		ctx.Dispatch(func(ctx app.Context) {
			v.busy = false
			if err != nil {
				v.errMsg = errorMessage(err, "Registration failed. Please try again.")
				return
			}
			session.SetAuth(ctx.LocalStorage(), token)
			ctx.Navigate("/")
		})
	})
}

func (v *RegisterView) Render() app.UI {
	return authPage("Create your account", v.errMsg,
		app.Form().OnSubmit(v.onSubmit).Class("form").Body(
			app.Label().Text("Full name"),
			app.Input().
				Type("text").
				Value(v.fullName).
				OnInput(func(ctx app.Context, e app.Event) {
					v.fullName = ctx.JSSrc().Get("value").String()
				}),
			app.Label().Text("Email"),
			app.Input().
				Type("email").
				Value(v.email).
				OnInput(func(ctx app.Context, e app.Event) {
					v.email = ctx.JSSrc().Get("value").String()
				}),
			app.Label().Text("Password"),
			app.Input().
				Type("password").
				Value(v.password).
				OnInput(func(ctx app.Context, e app.Event) {
					v.password = ctx.JSSrc().Get("value").String()
				}),
			app.Label().Text("I want to"),
			app.Select().
				OnChange(func(ctx app.Context, e app.Event) {
					v.role = ctx.JSSrc().Get("value").String()
				}).
				Body(
					app.Option().Value(api.RoleLearner).Text("Learn").Selected(v.role == api.RoleLearner),
					app.Option().Value(api.RoleCreator).Text("Create content").Selected(v.role == api.RoleCreator),
				),
			app.Button().
				Class("btn btn-primary").
				Type("submit").
				Disabled(v.busy).
				Text("Sign up"),
		),
		app.P().Class("auth-switch").Body(
			app.Text("Already have an account? "),
			app.A().Href("/login").Text("Log in"),
		),
	)
}

func authPage(title, errMsg string, content ...app.UI) app.UI {
	body := []app.UI{
		app.A().Class("navbar-brand").Href("/login").Text("EduBit"),
		app.H1().Text(title),
	}
	if errMsg != "" {
		body = append(body, errorBanner(errMsg))
	}
	body = append(body, content...)

	return app.Div().Class("auth-page").Body(
		app.Div().Class("auth-card").Body(body...),
	)
}
