package validator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type payload struct {
	Source string `json:"source" validate:"omitempty,lang"`
	Target string `json:"target" validate:"required,target_lang"`
	Text   string `json:"text" validate:"required,notblank"`
}

func TestService_Struct(t *testing.T) {
	svc := NewService()

	tests := []struct {
		name     string
		in       payload
		wantErr  string
		wantLang bool
	}{
		{name: "valid", in: payload{Source: "es", Target: "en", Text: "hola"}},
		{name: "valid auto source", in: payload{Source: "auto", Target: "fr", Text: "hola"}},
		{name: "valid empty source", in: payload{Target: "pt", Text: "hola"}},
		{name: "upper case codes", in: payload{Source: "ES", Target: "DE", Text: "hola"},
			wantErr: "unsupported language code in 'source'; unsupported language code in 'target'", wantLang: true},
		{name: "missing target", in: payload{Source: "es", Text: "hola"}, wantErr: "missing field 'target'"},
		{name: "missing text", in: payload{Source: "es", Target: "en"}, wantErr: "missing field 'text'"},
		{name: "blank text", in: payload{Source: "es", Target: "en", Text: "  \n"}, wantErr: "field 'text' is empty"},
		{name: "auto target", in: payload{Source: "es", Target: "auto", Text: "hola"},
			wantErr: "unsupported language code in 'target'", wantLang: true},
		{name: "unknown source", in: payload{Source: "xx", Target: "en", Text: "hola"},
			wantErr: "unsupported language code in 'source'", wantLang: true},
		{name: "two failures", in: payload{Source: "xx", Target: "en"},
			wantErr: "unsupported language code in 'source'; missing field 'text'", wantLang: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := svc.Struct(tt.in)
			if tt.wantErr == "" {
				require.NoError(t, err)
				return
			}
			require.Error(t, err)
			assert.Equal(t, tt.wantErr, err.Error())
			assert.Equal(t, tt.wantLang, errors.Is(err, ErrUnsupportedLang))
			var verr *Error
			require.ErrorAs(t, err, &verr)
			assert.NotEmpty(t, verr.Fields)
		})
	}
}

func TestService_StructNotAStruct(t *testing.T) {
	svc := NewService()
	err := svc.Struct("string")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "can't validate")
}

func TestService_SupportedTargets(t *testing.T) {
	svc := NewService()
	assert.Equal(t, []string{"es", "en", "fr", "de", "pt"}, svc.SupportedTargets())
}
