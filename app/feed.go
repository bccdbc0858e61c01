package main

import (
	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/state"
)

const feedPageSize = 50

type FeedView struct {
	app.Compo

	reels      state.Resource[[]api.Reel]
	tags       string
	difficulty string
}

func (v *FeedView) OnMount(ctx app.Context) {
	if !requireAuth(ctx) {
		return
	}
	v.load(ctx)
}

// load re-fetches the feed wholesale. Called on mount and on every
// filter change; the generation check makes a slow response for an
// older filter combination harmless.
func (v *FeedView) load(ctx app.Context) {
	gen := v.reels.Begin()
	params := api.FeedParams{Limit: feedPageSize, Tags: v.tags, Difficulty: v.difficulty}

	ctx.Async(func() {
		reels, err := backend.Feed(params)
		ctx.Dispatch(func(ctx app.Context) {
			if err != nil {
				// The feed clears to its empty state on failure.
				if v.reels.Fail(gen, errorMessage(err, "Failed to load feed. Please try again."), true) {
					app.Log("error loading feed:", err)
				}
				return
			}
			v.reels.Complete(gen, reels)
		})
	})
}

func (v *FeedView) onTagsInput(ctx app.Context, e app.Event) {
	v.tags = ctx.JSSrc().Get("value").String()
	v.load(ctx)
}

func (v *FeedView) onDifficultyChange(ctx app.Context, e app.Event) {
	v.difficulty = ctx.JSSrc().Get("value").String()
	v.load(ctx)
}

func (v *FeedView) Render() app.UI {
	reels := v.reels.Data()

	return page(
		app.H1().Text("Your Learning Feed"),
		app.P().Class("subtitle").Text("Personalized educational reels based on your interests"),

		app.Div().Class("filters").Body(
			app.Div().Class("filter-field").Body(
				app.Label().Text("Filter by tags"),
				app.Input().
					Type("text").
					Placeholder("e.g., python, javascript").
					Value(v.tags).
					OnInput(v.onTagsInput),
			),
			app.Div().Class("filter-field").Body(
				app.Label().Text("Difficulty level"),
				app.Select().OnChange(v.onDifficultyChange).Body(
					app.Option().Value("").Text("All levels").Selected(v.difficulty == ""),
					app.Option().Value("beginner").Text("Beginner").Selected(v.difficulty == "beginner"),
					app.Option().Value("intermediate").Text("Intermediate").Selected(v.difficulty == "intermediate"),
					app.Option().Value("advanced").Text("Advanced").Selected(v.difficulty == "advanced"),
				),
			),
		),

		app.If(v.reels.Errored(), func() app.UI {
			return errorBanner(v.reels.Err())
		}),
		app.If(v.reels.Loading(), func() app.UI {
			return loader()
		}),
		app.If(v.reels.Loaded() && len(reels) > 0, func() app.UI {
			return app.Div().Class("card-grid").Body(
				app.Range(reels).Slice(func(i int) app.UI {
					return reelCard(reels[i])
				}),
			)
		}),
		app.If(v.reels.Loaded() && len(reels) == 0, func() app.UI {
			return emptyState("No reels found. Try adjusting your filters.")
		}),
	)
}
