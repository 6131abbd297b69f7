package enum

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLang_IsTarget(t *testing.T) {
	for _, l := range LangValues {
		t.Run(l.String(), func(t *testing.T) {
			assert.Equal(t, l != LangAuto, l.IsTarget())
		})
	}
}

func TestParseLang(t *testing.T) {
	l, err := ParseLang("es")
	require.NoError(t, err)
	assert.Equal(t, LangES, l)

	l, err = ParseLang("auto")
	require.NoError(t, err)
	assert.Equal(t, LangAuto, l)

	for _, code := range []string{"xx", "ES", " es", ""} {
		_, err = ParseLang(code)
		require.Error(t, err, "only exact lower case codes are accepted, %q", code)
	}
}

func TestTargetLangs(t *testing.T) {
	assert.Equal(t, []Lang{LangES, LangEN, LangFR, LangDE, LangPT}, TargetLangs())
}
