package main

import (
	"fmt"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
	"edubit/internal/derive"
)

const maxCardTags = 3

func loader() app.UI {
	return app.Div().Class("loading-overlay").Body(
		app.Div().Class("loading-spinner"),
	)
}

func errorBanner(msg string) app.UI {
	return app.Div().Class("error-banner").Text(msg)
}

func emptyState(msg string) app.UI {
	return app.Div().Class("empty-state").Text(msg)
}

func tagBadge(tag string) app.UI {
	return app.Span().Class("tag-badge").Text("#" + tag)
}

func difficultyBadge(level string) app.UI {
	return app.Span().Class("difficulty-badge difficulty-" + level).Text(level)
}

func tagRow(raw string) app.UI {
	tags := derive.Tags(raw)
	if len(tags) == 0 {
		return app.Div()
	}
	shown, hidden := derive.VisibleTags(tags, maxCardTags)
	return app.Div().Class("tag-row").Body(
		app.Range(shown).Slice(func(i int) app.UI {
			return tagBadge(shown[i])
		}),
		app.If(hidden > 0, func() app.UI {
			return app.Span().Class("tag-more").Text(fmt.Sprintf("+%d more", hidden))
		}),
	)
}

func reelCard(r api.Reel) app.UI {
	return app.A().Class("card reel-card").Href(fmt.Sprintf("/reel/%d", r.ID)).Body(
		app.Div().Class("reel-thumb").Body(
			app.Video().Class("reel-preview").Src(r.VideoURL).Preload("metadata"),
			app.Span().Class("reel-duration").Text(fmt.Sprintf("%ds", r.DurationSeconds)),
		),
		app.Div().Class("card-body").Body(
			app.H3().Text(r.Title),
			app.If(r.Description != "", func() app.UI {
				return app.P().Class("card-desc").Text(r.Description)
			}),
			app.Div().Class("card-meta").Body(
				app.Span().Text(r.CreatorName),
				app.Span().Text(fmt.Sprintf("%d views", r.ViewsCount)),
			),
			tagRow(r.Tags),
			app.If(r.AISummary != "", func() app.UI {
				return app.Span().Class("ai-badge").Text("AI Enhanced")
			}),
		),
	)
}

func courseCard(c api.MicroCourse) app.UI {
	return app.A().Class("card course-card").Href(fmt.Sprintf("/course/%d", c.ID)).Body(
		app.Div().Class("card-body").Body(
			app.H3().Text(c.Title),
			app.If(c.Description != "", func() app.UI {
				return app.P().Class("card-desc").Text(c.Description)
			}),
			app.Div().Class("card-meta").Body(
				app.Span().Text(fmt.Sprintf("%d lessons", len(c.Reels))),
				difficultyBadge(c.DifficultyLevel),
			),
		),
	)
}

func playlistCard(p api.Playlist) app.UI {
	return app.Div().Class("card playlist-card").Body(
		app.Div().Class("card-body").Body(
			app.H3().Text(p.Title),
			app.If(p.Description != "", func() app.UI {
				return app.P().Class("card-desc").Text(p.Description)
			}),
			app.Span().Class("card-meta").Text(fmt.Sprintf("%d reels", len(p.Reels))),
		),
	)
}
