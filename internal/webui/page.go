package webui

const pageHTML = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="utf-8">
<meta name="viewport" content="width=device-width, initial-scale=1">
<title>{{.Title}}</title>
<style>
body { font-family: system-ui, sans-serif; max-width: 760px; margin: 2rem auto; padding: 0 1rem; color: #262730; }
h1 { margin-bottom: .25rem; }
.caption { color: #6b6b76; margin-top: 0; }
input[type=text] { width: 100%; box-sizing: border-box; padding: .5rem; font-size: 1rem; }
button { margin-top: .75rem; padding: .5rem 1rem; font-size: 1rem; cursor: pointer; }
.banner { padding: .6rem .8rem; border-radius: .4rem; margin: .75rem 0; }
.banner-info { background: #e8f1fb; color: #0b4f8a; }
.banner-success { background: #e6f6ea; color: #176c2e; }
.banner-warning { background: #fff6de; color: #8a6100; }
.banner-error { background: #fde8e8; color: #9b1c1c; }
textarea { width: 100%; box-sizing: border-box; height: 400px; font-size: .95rem; }
</style>
</head>
<body>
<h1>{{.Title}}</h1>
<p class="caption">{{.Caption}}</p>
<form method="post" action="/">
<label for="url">Enter YouTube Video URL:</label>
<input type="text" id="url" name="url" value="{{.URL}}" autofocus>
<button type="submit">Get Transcript</button>
</form>
{{range .Banners}}<div class="banner banner-{{.Level}}">{{.Text}}</div>
{{end}}{{with .Result}}{{if .HasTranscript}}<label for="transcript">{{$.OutputLabel}}</label>
<textarea id="transcript" readonly>{{.Transcript}}</textarea>
{{end}}{{end}}</body>
</html>
`
