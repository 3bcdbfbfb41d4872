package oauth

import (
	"net/http"

	. "maragu.dev/gomponents"
	. "maragu.dev/gomponents/html"
)

const pageStyle = `
	body {
		font-family: Arial, sans-serif;
		max-width: 600px;
		margin: 50px auto;
		padding: 20px;
		text-align: center;
	}
	.mark { font-size: 48px; margin-bottom: 20px; }
	.ok { color: #4CAF50; }
	.bad { color: #E53935; }
	h1 { color: #333; }
	p { color: #666; font-size: 18px; }
`

func renderSuccessPage(w http.ResponseWriter) {
	w.Header().Set("Content-Type", "text/html")
	_ = HTML(
		Head(
			Meta(Charset("UTF-8")),
			TitleEl(Text("Authorization Complete")),
			StyleEl(Raw(pageStyle)),
		),
		Body(
			Div(Class("mark ok"), Text("✓")),
			H1(Text("Authorization Complete")),
			P(Text("You can close this window and return to your terminal.")),
		),
	).Render(w)
}

func renderDeniedPage(w http.ResponseWriter, code, description string) {
	msg := description
	if msg == "" {
		msg = code
	}

	w.Header().Set("Content-Type", "text/html")
	w.WriteHeader(http.StatusBadRequest)
	_ = HTML(
		Head(
			Meta(Charset("UTF-8")),
			TitleEl(Text("Authorization Failed")),
			StyleEl(Raw(pageStyle)),
		),
		Body(
			Div(Class("mark bad"), Text("✗")),
			H1(Text("Authorization Failed")),
			P(Text(msg)),
			P(Text("Return to your terminal for details.")),
		),
	).Render(w)
}
