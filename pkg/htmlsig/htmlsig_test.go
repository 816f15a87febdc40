package htmlsig_test

import (
	"context"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/net/html"

	"github.com/sigforge/sigforge/pkg/htmlsig"
)

func render(t *testing.T, sig htmlsig.Signature) string {
	t.Helper()
	out, err := htmlsig.Render(context.Background(), htmlsig.Table(sig))
	require.NoError(t, err)
	return out
}

// parse returns the parsed fragment for structural assertions.
func parse(t *testing.T, markup string) *html.Node {
	t.Helper()
	doc, err := html.Parse(strings.NewReader(markup))
	require.NoError(t, err)
	return doc
}

// findAll walks the node tree collecting elements with the given tag.
func findAll(n *html.Node, tag string) []*html.Node {
	var out []*html.Node
	var walk func(*html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && n.Data == tag {
			out = append(out, n)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(n)
	return out
}

func attr(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func TestTableMinimal(t *testing.T) {
	t.Parallel()

	// Required fields only: no logo block, no "at ..." suffix, no contact
	// line.
	out := render(t, htmlsig.Signature{Name: "John Doe", Title: "Engineer"})

	assert.Contains(t, out, ">John Doe</p>")
	assert.Contains(t, out, ">Engineer</p>")
	assert.NotContains(t, out, "<img")
	assert.NotContains(t, out, " at ")
	assert.NotContains(t, out, "•")
	assert.NotContains(t, out, "x.com")

	doc := parse(t, out)
	require.Len(t, findAll(doc, "table"), 1)
	assert.Len(t, findAll(doc, "p"), 2)
	assert.Empty(t, findAll(doc, "a"))
}

func TestTableCompanySuffix(t *testing.T) {
	t.Parallel()

	out := render(t, htmlsig.Signature{Name: "John Doe", Title: "Engineer", Company: "Acme"})
	assert.Contains(t, out, ">Engineer at Acme</p>")
}

func TestTableContactLine(t *testing.T) {
	t.Parallel()

	t.Run("phone and twitter with separator", func(t *testing.T) {
		out := render(t, htmlsig.Signature{
			Name: "John Doe", Title: "Engineer",
			Phone: "555-1234", Twitter: "jdoe",
		})
		assert.Contains(t, out, "555-1234 • ")
		assert.Contains(t, out, `href="https://x.com/jdoe"`)
		assert.Contains(t, out, ">@jdoe</a>")
	})

	t.Run("phone only, no separator", func(t *testing.T) {
		out := render(t, htmlsig.Signature{Name: "J D", Title: "E", Phone: "555-1234"})
		assert.Contains(t, out, "555-1234")
		assert.NotContains(t, out, "•")
	})

	t.Run("twitter only, no separator", func(t *testing.T) {
		out := render(t, htmlsig.Signature{Name: "J D", Title: "E", Twitter: "@jdoe"})
		assert.NotContains(t, out, "•")
		assert.Contains(t, out, `href="https://x.com/jdoe"`)
		assert.Contains(t, out, ">@jdoe</a>")
	})

	t.Run("handle keeps single leading at sign", func(t *testing.T) {
		out := render(t, htmlsig.Signature{Name: "J D", Title: "E", Twitter: "@jdoe"})
		assert.NotContains(t, out, "@@jdoe")
	})
}

func TestTableLogoBlock(t *testing.T) {
	t.Parallel()

	t.Run("logo without website is unlinked", func(t *testing.T) {
		out := render(t, htmlsig.Signature{
			Name: "J D", Title: "E",
			LogoURL: "https://cdn.example.com/logo.png",
		})
		doc := parse(t, out)
		imgs := findAll(doc, "img")
		require.Len(t, imgs, 1)
		assert.Equal(t, "https://cdn.example.com/logo.png", attr(imgs[0], "src"))
		assert.Equal(t, "40", attr(imgs[0], "height"))
		assert.Equal(t, "Company Logo", attr(imgs[0], "alt"))
		assert.Empty(t, findAll(doc, "a"))
	})

	t.Run("logo with website is linked safely", func(t *testing.T) {
		out := render(t, htmlsig.Signature{
			Name: "J D", Title: "E", Company: "Acme",
			LogoURL: "https://cdn.example.com/logo.png",
			Website: "https://acme.example",
		})
		doc := parse(t, out)
		links := findAll(doc, "a")
		require.Len(t, links, 1)
		assert.Equal(t, "https://acme.example", attr(links[0], "href"))
		assert.Equal(t, "_blank", attr(links[0], "target"))
		assert.Equal(t, "noopener noreferrer", attr(links[0], "rel"))

		imgs := findAll(doc, "img")
		require.Len(t, imgs, 1)
		assert.Equal(t, "Acme Logo", attr(imgs[0], "alt"))
	})
}

func TestTablePlaceholders(t *testing.T) {
	t.Parallel()

	out := render(t, htmlsig.Signature{})
	assert.Contains(t, out, ">Your Name</p>")
	assert.Contains(t, out, ">Your Title</p>")
}

func TestTableInlineStylesOnly(t *testing.T) {
	t.Parallel()

	out := render(t, htmlsig.Signature{
		Name: "J D", Title: "E", Company: "Acme",
		Phone: "555", Twitter: "jd",
		LogoURL: "https://x/l.png", Website: "https://x",
	})
	assert.NotContains(t, out, "<style")
	assert.NotContains(t, out, "class=")

	doc := parse(t, out)
	for _, p := range findAll(doc, "p") {
		assert.NotEmpty(t, attr(p, "style"))
	}
}

func TestTableEscapesUserText(t *testing.T) {
	t.Parallel()

	out := render(t, htmlsig.Signature{
		Name:  `<script>alert("x")</script>`,
		Title: "Eng & Co",
	})
	assert.NotContains(t, out, "<script>")
	assert.Contains(t, out, "&lt;script&gt;")
	assert.Contains(t, out, "Eng &amp; Co")
}

func TestTableDeterministic(t *testing.T) {
	t.Parallel()

	sig := htmlsig.Signature{
		Name: "John Doe", Title: "Engineer", Company: "Acme",
		Phone: "555-1234", Twitter: "jdoe",
		Website: "https://acme.example", LogoURL: "https://x/l.png",
	}
	assert.Equal(t, render(t, sig), render(t, sig))
}

func TestPreview(t *testing.T) {
	t.Parallel()

	sig := htmlsig.Signature{
		Name: "John Doe", Title: "Engineer", Company: "Acme",
		Phone: "555-1234", Twitter: "jdoe",
		Website: "https://acme.example", LogoURL: "https://x/l.png",
	}

	renderPreview := func(t *testing.T, dark bool) string {
		t.Helper()
		out, err := htmlsig.Render(context.Background(), htmlsig.Preview(sig, dark))
		require.NoError(t, err)
		return out
	}

	t.Run("structurally parallel to the table render", func(t *testing.T) {
		out := renderPreview(t, false)
		assert.Contains(t, out, ">John Doe</p>")
		assert.Contains(t, out, ">Engineer at Acme</p>")
		assert.Contains(t, out, "555-1234 • ")
		assert.Contains(t, out, `href="https://x.com/jdoe"`)

		doc := parse(t, out)
		require.Len(t, findAll(doc, "img"), 1)
		assert.NotEmpty(t, findAll(doc, "div"))
		assert.Empty(t, findAll(doc, "table"), "preview must not be table based")
	})

	t.Run("dark palette swaps text colors", func(t *testing.T) {
		light := renderPreview(t, false)
		dark := renderPreview(t, true)
		assert.NotEqual(t, light, dark)
		assert.Contains(t, dark, "#ffffff")
		assert.Contains(t, light, "#1f2937")
	})

	t.Run("logo link carries safe rel", func(t *testing.T) {
		doc := parse(t, renderPreview(t, false))
		links := findAll(doc, "a")
		require.Len(t, links, 2) // logo link + handle link
		assert.Equal(t, "noopener noreferrer", attr(links[0], "rel"))
	})
}

func TestHandleURL(t *testing.T) {
	t.Parallel()

	assert.Equal(t, "https://x.com/jdoe", htmlsig.HandleURL("@jdoe"))
	assert.Equal(t, "https://x.com/jdoe", htmlsig.HandleURL("jdoe"))
}
