package services

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/florv/home-helper/internal/constants"
)

func TestNotePreview_StripsScriptKeepsFormatting(t *testing.T) {
	preview := NotePreview("<script>x</script><b>ok</b>", constants.NotePreviewLength)

	require.NotContains(t, preview, "script")
	require.Contains(t, preview, "<b>ok</b>")
}

func TestNotePreview_AllowListOnly(t *testing.T) {
	body := `<p>hello <em>world</em></p><img src="x.png"><iframe src="evil"></iframe>`
	preview := NotePreview(body, 200)

	require.Contains(t, preview, "<p>")
	require.Contains(t, preview, "<em>world</em>")
	require.NotContains(t, preview, "img")
	require.NotContains(t, preview, "iframe")
}

func TestNotePreview_AnchorAttributes(t *testing.T) {
	body := `<a href="https://example.com" title="home" target="_blank" onclick="steal()">link</a>`
	preview := NotePreview(body, 200)

	require.Contains(t, preview, `href="https://example.com"`)
	require.Contains(t, preview, `title="home"`)
	require.NotContains(t, preview, "onclick")
}

func TestNotePreview_Truncates(t *testing.T) {
	body := strings.Repeat("a", 500)
	preview := NotePreview(body, constants.NotePreviewLength)

	require.LessOrEqual(t, len([]rune(preview)), constants.NotePreviewLength)
	require.Equal(t, strings.Repeat("a", constants.NotePreviewLength), preview)
}

func TestNotePreview_ShortBodyUntouched(t *testing.T) {
	require.Equal(t, "milk, eggs", NotePreview("milk, eggs", constants.NotePreviewLength))
}
