package main

import (
	"strings"

	"github.com/maxence-charriere/go-app/v10/pkg/app"

	"edubit/internal/api"
)

const maxVideoBytes = 100 << 20

type CreateReelView struct {
	app.Compo

	title       string
	description string
	tags        string
	difficulty  string

	file     app.Value
	fileName string
	fileType string
	fileSize int

	uploading bool
	errMsg    string
}

func (v *CreateReelView) OnInit() {
	v.difficulty = "beginner"
}

func (v *CreateReelView) OnMount(ctx app.Context) {
	requireAuth(ctx)
}

func (v *CreateReelView) onFileChange(ctx app.Context, e app.Event) {
	files := ctx.JSSrc().Get("files")
	if !files.Truthy() || files.Get("length").Int() == 0 {
		return
	}
	file := files.Index(0)

	fileType := file.Get("type").String()
	if !strings.HasPrefix(fileType, "video/") {
		v.errMsg = "Please select a valid video file"
		return
	}
	if file.Get("size").Int() > maxVideoBytes {
		v.errMsg = "Video file must be less than 100MB"
		return
	}

	v.file = file
	v.fileName = file.Get("name").String()
	v.fileType = fileType
	v.fileSize = file.Get("size").Int()
	v.errMsg = ""
}

// onSubmit validates locally first; an empty title or missing file
// never reaches the network. The file bytes are only pulled out of
// the browser once validation passes.
func (v *CreateReelView) onSubmit(ctx app.Context, e app.Event) {
	e.PreventDefault()
	if v.uploading {
		return
	}
	if v.file == nil || !v.file.Truthy() {
		v.errMsg = "Please select a video file"
		return
	}
	if strings.TrimSpace(v.title) == "" {
		v.errMsg = "Please enter a title"
		return
	}

	v.uploading = true
	v.errMsg = ""

	v.file.Call("arrayBuffer").Then(func(buf app.Value) {
		bytes := app.Window().Get("Uint8Array").New(buf)
		data := make([]byte, bytes.Get("length").Int())
		app.CopyBytesToGo(data, bytes)
		ctx.Dispatch(func(ctx app.Context) {
			v.upload(ctx, data)
		})
	})
}

func (v *CreateReelView) upload(ctx app.Context, data []byte) {
	in := api.UploadReelInput{
		FileName:        v.fileName,
		FileType:        v.fileType,
		Data:            data,
		Title:           v.title,
		Description:     v.description,
		Tags:            v.tags,
		DifficultyLevel: v.difficulty,
	}
	ctx.Async(func() {
		_, err := backend.UploadReel(in)
		ctx.Dispatch(func(ctx app.Context) {
			v.uploading = false
			if err != nil {
				v.errMsg = errorMessage(err, "Failed to upload reel.")
				app.Log("error uploading reel:", err)
				return
			}
			ctx.Navigate("/")
		})
	})
}

func (v *CreateReelView) Render() app.UI {
	submitLabel := "Upload Reel"
	if v.uploading {
		submitLabel = "Uploading..."
	}

	return page(
		app.H1().Text("Upload New Reel"),
		app.P().Class("subtitle").Text("Share your educational content with the community"),

		app.If(v.errMsg != "", func() app.UI {
			return errorBanner(v.errMsg)
		}),

		app.Form().OnSubmit(v.onSubmit).Class("form").Body(
			app.Label().Text("Video File *"),
			app.Div().Class("file-drop").Body(
				app.Input().
					Type("file").
					Accept("video/*").
					OnChange(v.onFileChange),
				app.If(v.fileName != "", func() app.UI {
					return app.P().Class("file-name").Text(v.fileName)
				}),
			),

			app.Label().Text("Title *"),
			app.Input().
				Type("text").
				Value(v.title).
				Placeholder("e.g., Python list comprehensions in 60 seconds").
				OnInput(func(ctx app.Context, e app.Event) {
					v.title = ctx.JSSrc().Get("value").String()
				}),

			app.Label().Text("Description"),
			app.Textarea().
				Rows(4).
				Text(v.description).
				OnInput(func(ctx app.Context, e app.Event) {
					v.description = ctx.JSSrc().Get("value").String()
				}),

			app.Label().Text("Tags (comma separated)"),
			app.Input().
				Type("text").
				Value(v.tags).
				Placeholder("python, basics").
				OnInput(func(ctx app.Context, e app.Event) {
					v.tags = ctx.JSSrc().Get("value").String()
				}),

			app.Label().Text("Difficulty Level"),
			difficultySelect(v.difficulty, func(ctx app.Context, e app.Event) {
				v.difficulty = ctx.JSSrc().Get("value").String()
			}),

			app.Button().
				Class("btn btn-primary").
				Type("submit").
				Disabled(v.uploading).
				Text(submitLabel),
		),
	)
}

func difficultySelect(current string, onChange app.EventHandler) app.UI {
	return app.Select().OnChange(onChange).Body(
		app.Option().Value("beginner").Text("Beginner").Selected(current == "beginner"),
		app.Option().Value("intermediate").Text("Intermediate").Selected(current == "intermediate"),
		app.Option().Value("advanced").Text("Advanced").Selected(current == "advanced"),
	)
}
