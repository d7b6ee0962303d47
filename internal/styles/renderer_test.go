package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/records"
)

func TestBoundBind(t *testing.T) {
	var b Bound[note]
	require.NoError(t, b.Bind("plain", note{Text: "value"}))
	assert.Equal(t, note{Text: "value"}, b.Data())
	assert.Equal(t, note{Text: "value"}, b.Record())

	var p Bound[note]
	require.NoError(t, p.Bind("plain", &note{Text: "pointer"}))
	assert.Equal(t, "pointer", p.Data().Text)

	var nilPointer Bound[note]
	err := nilPointer.Bind("plain", (*note)(nil))
	require.Error(t, err)
	assert.True(t, apperrors.IsKindMismatchError(err))

	var wrong Bound[note]
	err = wrong.Bind("plain", records.Book{Title: "x"})
	require.Error(t, err)
	assert.True(t, apperrors.IsKindMismatchError(err))
	assert.EqualError(t, err, "plain note renderer cannot render a book record")
}

func TestBoundMemoizeRendersOnce(t *testing.T) {
	var b Bound[note]
	require.NoError(t, b.Bind("plain", note{Text: "x"}))

	calls := 0
	render := func(n note) string {
		calls++
		return "rendered " + n.Text
	}

	assert.Equal(t, "rendered x", b.Memoize(render))
	assert.Equal(t, "rendered x", b.Memoize(render))
	assert.Equal(t, 1, calls)
}

type checkedNote struct {
	Text string
}

func (checkedNote) Kind() records.Kind { return "checked" }
func (c checkedNote) Label() string    { return c.Text }
func (c checkedNote) Validate() error {
	if c.Text == "" {
		return apperrors.NewValidationError("checked", "text", nil, "is required")
	}
	return nil
}

func TestBoundBindValidates(t *testing.T) {
	var b Bound[checkedNote]
	err := b.Bind("plain", checkedNote{})
	require.Error(t, err)
	assert.True(t, apperrors.IsValidationError(err))
	assert.Empty(t, b.Style())

	err = b.Bind("plain", &checkedNote{})
	assert.True(t, apperrors.IsValidationError(err))

	require.NoError(t, b.Bind("plain", &checkedNote{Text: "ok"}))
	assert.Equal(t, "ok", b.Data().Text)
	assert.Equal(t, Style("plain"), b.Style())
}
