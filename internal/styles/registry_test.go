package styles

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	apperrors "github.com/lepinkainen/biblio/internal/errors"
	"github.com/lepinkainen/biblio/internal/records"
)

// note is a record kind that no built-in style knows about.
type note struct {
	Text string
}

func (note) Kind() records.Kind { return "note" }
func (n note) Label() string    { return n.Text }

type noteRenderer struct {
	Bound[note]
}

func newNoteRenderer(rec records.Record) (*noteRenderer, error) {
	r := &noteRenderer{}
	if err := r.Bind("plain", rec); err != nil {
		return nil, err
	}
	return r, nil
}

func (r *noteRenderer) Render() string {
	return r.Memoize(func(n note) string { return "Note: " + n.Text })
}

func TestRegistryLookup(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("plain", "note", FactoryOf(newNoteRenderer)))

	factory, err := reg.Lookup("plain", "note")
	require.NoError(t, err)

	r, err := factory(note{Text: "hello"})
	require.NoError(t, err)
	assert.Equal(t, "Note: hello", r.Render())
	assert.Equal(t, Style("plain"), r.Style())

	_, err = reg.Lookup("plain", records.KindBook)
	require.Error(t, err)
	assert.True(t, apperrors.IsUnsupportedKindError(err))
	assert.EqualError(t, err, "no plain renderer registered for book records")
}

func TestRegistryRejectsDuplicates(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("plain", "note", FactoryOf(newNoteRenderer)))

	err := reg.Register("plain", "note", FactoryOf(newNoteRenderer))
	assert.EqualError(t, err, "renderer for plain/note already registered")

	err = reg.Register("plain", "other", nil)
	assert.Error(t, err)
}

func TestRegistryNew(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register("plain", "note", FactoryOf(newNoteRenderer)))

	r, err := reg.New("plain", note{Text: "x"})
	require.NoError(t, err)
	assert.Equal(t, "Note: x", r.Render())

	_, err = reg.New("plain", nil)
	assert.True(t, apperrors.IsUnsupportedKindError(err))

	_, err = reg.New("plain", (*records.Book)(nil))
	assert.True(t, apperrors.IsUnsupportedKindError(err))

	_, err = reg.New("other", note{Text: "x"})
	assert.True(t, apperrors.IsUnsupportedKindError(err))
}

func TestRegistryListings(t *testing.T) {
	reg := NewRegistry()
	for _, pair := range []struct {
		style Style
		kind  records.Kind
	}{
		{"zeta", "note"},
		{"alpha", "note"},
		{"alpha", records.KindBook},
	} {
		require.NoError(t, reg.Register(pair.style, pair.kind, FactoryOf(newNoteRenderer)))
	}

	if diff := cmp.Diff([]Style{"alpha", "zeta"}, reg.Styles()); diff != "" {
		t.Errorf("Styles() mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]records.Kind{records.KindBook, "note"}, reg.Kinds("alpha")); diff != "" {
		t.Errorf("Kinds() mismatch (-want +got):\n%s", diff)
	}
	assert.Empty(t, reg.Kinds("missing"))
}

func TestParseStyle(t *testing.T) {
	reg := NewRegistry()
	require.NoError(t, reg.Register(APA, records.KindBook, FactoryOf(newNoteRenderer)))

	testCases := []struct {
		input   string
		want    Style
		wantErr bool
	}{
		{input: "apa", want: APA},
		{input: "  APA ", want: APA},
		{input: "gost", wantErr: true},
		{input: "", wantErr: true},
	}

	for _, tc := range testCases {
		t.Run(tc.input, func(t *testing.T) {
			got, err := reg.ParseStyle(tc.input)
			if tc.wantErr {
				require.Error(t, err)
				assert.True(t, apperrors.IsUnsupportedKindError(err))
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}
