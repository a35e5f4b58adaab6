package injector_test

import (
	"strings"
	"testing"

	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/logolink/internal/adapters/injector"
	"go.trai.ch/logolink/internal/core/domain"
)

const scriptBase = "/_logolink/"

func portfolioPayload() domain.Payload {
	return domain.Payload{
		HomeURL:        "https://example.com/",
		RedirectURL:    "https://example.com/portfolio",
		MenuLabel:      "View Portfolio",
		RightClickType: domain.ModeCustom,
		CustomText:     "View Portfolio",
		LogoSelector:   ".custom-logo-link",
		Presentation:   domain.PresentationMenu,
	}
}

func TestInject_Golden(t *testing.T) {
	tests := []struct {
		name       string
		page       string
		goldenName string
	}{
		{
			name: "simple page",
			page: "<!DOCTYPE html>\n<html>\n<head><title>Example</title></head>\n<body>\n" +
				"<a class=\"custom-logo-link\" href=\"/\">Example</a>\n</body>\n</html>\n",
			goldenName: "inject_simple",
		},
		{
			name: "body close inside script and comment",
			page: "<html><body>\n<script>var tail = \"</body>\";</script>\n</body>\n<!-- </body> -->\n</html>\n",
			goldenName: "inject_lookalikes",
		},
		{
			name:       "uppercase tag",
			page:       "<HTML><BODY><div class=\"navbar-brand\">Brand</div></BODY></HTML>",
			goldenName: "inject_uppercase",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			out, ok, err := injector.New().Inject([]byte(tt.page), portfolioPayload(), scriptBase)
			require.NoError(t, err)
			require.True(t, ok)

			g := goldie.New(t)
			g.Assert(t, tt.goldenName, out)
		})
	}
}

func TestInject_NoBody(t *testing.T) {
	page := []byte("<html><head></head><p>fragment without a body close</html>")

	out, ok, err := injector.New().Inject(page, portfolioPayload(), scriptBase)

	require.NoError(t, err)
	assert.False(t, ok)
	assert.Equal(t, page, out)
}

func TestInject_LastBodyWins(t *testing.T) {
	page := "<body>one</body><body>two</body>"

	out, ok, err := injector.New().Inject([]byte(page), portfolioPayload(), scriptBase)

	require.NoError(t, err)
	require.True(t, ok)
	s := string(out)
	assert.True(t, strings.HasPrefix(s, "<body>one</body><body>two<script"))
	assert.True(t, strings.HasSuffix(s, "</script>\n</body>"))
}

func TestInject_EscapesPayload(t *testing.T) {
	p := portfolioPayload()
	p.CustomText = `</script><script>alert("x")</script>`
	p.MenuLabel = p.CustomText

	out, ok, err := injector.New().Inject([]byte("<body></body>"), p, scriptBase)

	require.NoError(t, err)
	require.True(t, ok)
	s := string(out)
	assert.NotContains(t, s, "<script>alert")
	assert.Contains(t, s, `\u003c/script\u003e\u003cscript\u003ealert(\"x\")`)
	assert.Equal(t, 3, strings.Count(s, "</script>"))
}

func TestInject_ScriptBase(t *testing.T) {
	out, ok, err := injector.New().Inject([]byte("<body></body>"), portfolioPayload(), "/assets/logo/")

	require.NoError(t, err)
	require.True(t, ok)
	s := string(out)
	assert.Contains(t, s, `<script src="/assets/logo/wasm_exec.js"></script>`)
	assert.Contains(t, s, `data-wasm="/assets/logo/widget.wasm"`)
	assert.Contains(t, s, `id="logolink-config"`)
}

func TestInject_RoundTripsPayload(t *testing.T) {
	out, _, err := injector.New().Inject([]byte("<body></body>"), portfolioPayload(), scriptBase)
	require.NoError(t, err)

	s := string(out)
	start := strings.Index(s, `id="logolink-config">`) + len(`id="logolink-config">`)
	end := strings.Index(s[start:], "</script>")
	require.Positive(t, end)

	got, err := domain.ParsePayload([]byte(s[start : start+end]))
	require.NoError(t, err)
	assert.Equal(t, portfolioPayload(), got)
}
