package content

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestBuildReferenceList(t *testing.T) {
	citations := []string{"Б. Второй", "А. Первый"}

	assert.Equal(t, "1. Б. Второй\n2. А. Первый\n", BuildReferenceList(citations, true))
	assert.Equal(t, "- Б. Второй\n- А. Первый\n", BuildReferenceList(citations, false))
	assert.Empty(t, BuildReferenceList(nil, true))
}

func TestBuildReferenceSection(t *testing.T) {
	assert.Equal(t,
		"## References\n\n1. A\n",
		BuildReferenceSection("", []string{"A"}, true),
	)
	assert.Equal(t,
		"## Список литературы\n\n- A\n",
		BuildReferenceSection("Список литературы", []string{"A"}, false),
	)
	assert.Empty(t, BuildReferenceSection("References", nil, true))
}
