package regexp_test

import (
	"testing"

	"github.com/fwojciec/spafrag"
	"github.com/fwojciec/spafrag/regexp"
	"github.com/stretchr/testify/assert"
)

func TestMarkup_ImplementsInterface(t *testing.T) {
	t.Parallel()

	var _ spafrag.Markup = regexp.NewMarkup()
}

func TestMarkup_ExtractRegion(t *testing.T) {
	t.Parallel()

	tests := []struct {
		name   string
		text   string
		tag    string
		want   string
		wantOK bool
	}{
		{
			name:   "body with attributes",
			text:   `<html><body class="home" data-x="1"><p>Hi</p></body></html>`,
			tag:    "body",
			want:   "<p>Hi</p>",
			wantOK: true,
		},
		{
			name:   "case insensitive",
			text:   "<HTML><BODY>\n<p>Hi</p>\n</BODY></HTML>",
			tag:    "body",
			want:   "\n<p>Hi</p>\n",
			wantOK: true,
		},
		{
			name:   "spans newlines",
			text:   "<head>\n<title>T</title>\n</head>",
			tag:    "head",
			want:   "\n<title>T</title>\n",
			wantOK: true,
		},
		{
			name:   "first occurrence only and non greedy",
			text:   "<body>one</body><body>two</body>",
			tag:    "body",
			want:   "one",
			wantOK: true,
		},
		{
			name:   "header is not head",
			text:   "<body><header>Top</header></body>",
			tag:    "head",
			wantOK: false,
		},
		{
			name:   "missing element",
			text:   "<head><title>T</title></head>",
			tag:    "body",
			wantOK: false,
		},
		{
			name:   "unclosed element",
			text:   "<body><p>Hi</p>",
			tag:    "body",
			wantOK: false,
		},
		{
			name:   "empty element",
			text:   "<head></head>",
			tag:    "head",
			want:   "",
			wantOK: true,
		},
		{
			name:   "empty tag name",
			text:   "<body>x</body>",
			tag:    "",
			wantOK: false,
		},
		{
			name:   "upper case tag argument",
			text:   "<main>x</main>",
			tag:    "MAIN",
			want:   "x",
			wantOK: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			t.Parallel()

			m := regexp.NewMarkup()

			got, ok := m.ExtractRegion(tt.text, tt.tag)

			assert.Equal(t, tt.wantOK, ok)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestMarkup_ExtractStyles(t *testing.T) {
	t.Parallel()

	t.Run("returns complete elements in order", func(t *testing.T) {
		t.Parallel()

		head := `<title>T</title>
<style>.a{color:red}</style>
<link rel="stylesheet" href="style.css">
<STYLE data-scope="page">
.b{margin:0}
</STYLE>`

		got := regexp.NewMarkup().ExtractStyles(head)

		assert.Equal(t, []string{
			"<style>.a{color:red}</style>",
			"<STYLE data-scope=\"page\">\n.b{margin:0}\n</STYLE>",
		}, got)
	})

	t.Run("returns nil when there are no styles", func(t *testing.T) {
		t.Parallel()

		assert.Empty(t, regexp.NewMarkup().ExtractStyles("<title>T</title>"))
	})
}

func TestMarkup_ExtractInlineScripts(t *testing.T) {
	t.Parallel()

	t.Run("returns trimmed bodies in source order", func(t *testing.T) {
		t.Parallel()

		text := "<script>\n  first();\n</script><p>x</p><SCRIPT type=\"module\">second();</SCRIPT>"

		got := regexp.NewMarkup().ExtractInlineScripts(text)

		assert.Equal(t, []string{"first();", "second();"}, got)
	})

	t.Run("skips empty bodies", func(t *testing.T) {
		t.Parallel()

		got := regexp.NewMarkup().ExtractInlineScripts("<script>   \n </script><script>x()</script>")

		assert.Equal(t, []string{"x()"}, got)
	})

	t.Run("skips external scripts", func(t *testing.T) {
		t.Parallel()

		text := `<script src="a.js"></script><script SRC='b.js'>ignored()</script><script src=c.js></script><script>kept()</script>`

		got := regexp.NewMarkup().ExtractInlineScripts(text)

		assert.Equal(t, []string{"kept()"}, got)
	})

	t.Run("skips bodies starting with src=", func(t *testing.T) {
		t.Parallel()

		got := regexp.NewMarkup().ExtractInlineScripts(`<script> src="leaked.js"</script><script>ok()</script>`)

		assert.Equal(t, []string{"ok()"}, got)
	})

	t.Run("keeps data-src scripts as inline", func(t *testing.T) {
		t.Parallel()

		got := regexp.NewMarkup().ExtractInlineScripts(`<script data-src="x">lazy()</script>`)

		assert.Equal(t, []string{"lazy()"}, got)
	})

	t.Run("ignores src= inside another attribute value", func(t *testing.T) {
		t.Parallel()

		text := `<script data-note="see src=x">init()</script><script title='a src="b"'>two()</script>`

		got := regexp.NewMarkup().ExtractInlineScripts(text)

		assert.Equal(t, []string{"init()", "two()"}, got)
	})

	t.Run("keeps markup inside script bodies", func(t *testing.T) {
		t.Parallel()

		got := regexp.NewMarkup().ExtractInlineScripts("<script>el.innerHTML = '<b>x</b>';</script>")

		assert.Equal(t, []string{"el.innerHTML = '<b>x</b>';"}, got)
	})
}

func TestMarkup_RemoveGlobalScripts(t *testing.T) {
	t.Parallel()

	names := spafrag.DefaultConfig().GlobalScripts

	t.Run("removes global references with any quoting", func(t *testing.T) {
		t.Parallel()

		text := `<p>a</p>` +
			`<script src="../www-config.js?v=2"></script>` +
			`<script defer src='./assets/js/Auth.js'></script>` +
			`<script src=/js/app-state.js type="text/javascript"></script>` +
			`<p>b</p>`

		got := regexp.NewMarkup().RemoveGlobalScripts(text, names)

		assert.Equal(t, "<p>a</p><p>b</p>", got)
	})

	t.Run("keeps page specific external scripts", func(t *testing.T) {
		t.Parallel()

		text := `<script src="./assets/js/pages/about.js"></script><script src="auth.js"></script>`

		got := regexp.NewMarkup().RemoveGlobalScripts(text, names)

		assert.Equal(t, `<script src="./assets/js/pages/about.js"></script>`, got)
	})

	t.Run("keeps inline scripts mentioning global names", func(t *testing.T) {
		t.Parallel()

		text := `<script>load("auth.js")</script>`

		got := regexp.NewMarkup().RemoveGlobalScripts(text, names)

		assert.Equal(t, text, got)
	})

	t.Run("returns text unchanged without names", func(t *testing.T) {
		t.Parallel()

		text := `<script src="auth.js"></script>`

		assert.Equal(t, text, regexp.NewMarkup().RemoveGlobalScripts(text, nil))
	})

	t.Run("does not strip global stylesheet links", func(t *testing.T) {
		t.Parallel()

		text := `<link rel="stylesheet" href="style.css"><p>x</p>`

		got := regexp.NewMarkup().RemoveGlobalScripts(text, spafrag.DefaultConfig().GlobalStyles)

		assert.Equal(t, text, got)
	})
}

func TestMarkup_RemoveScripts(t *testing.T) {
	t.Parallel()

	t.Run("removes inline scripts across lines", func(t *testing.T) {
		t.Parallel()

		text := "<p>a</p>\n<script>\nvar x = 1;\n</script>\n<Script type=\"module\">y()</Script><p>b</p>"

		got := regexp.NewMarkup().RemoveScripts(text)

		assert.Equal(t, "<p>a</p>\n\n<p>b</p>", got)
	})

	t.Run("removes empty inline scripts", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, "<p>a</p>", regexp.NewMarkup().RemoveScripts("<p>a</p><script></script>"))
	})

	t.Run("keeps external references", func(t *testing.T) {
		t.Parallel()

		text := `<script src="./lib/chart.js"></script><script>draw()</script>`

		got := regexp.NewMarkup().RemoveScripts(text)

		assert.Equal(t, `<script src="./lib/chart.js"></script>`, got)
	})

	t.Run("removes inline scripts with src= inside another attribute value", func(t *testing.T) {
		t.Parallel()

		text := `<p>a</p><script data-note="see src=x">init()</script>`

		got := regexp.NewMarkup().RemoveScripts(text)

		assert.Equal(t, "<p>a</p>", got)
	})
}
