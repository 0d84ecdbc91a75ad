package jurisdiction

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestDefault_AllProvincesRegistered(t *testing.T) {
	reg := Default()

	want := []string{"AB", "BC", "MB", "NB", "NL", "NS", "NT", "NU", "ON", "PE", "QC", "SK", "YT"}
	assert.Equal(t, want, reg.Codes())

	for _, code := range want {
		p, err := reg.Profile(code)
		require.NoError(t, err, code)
		assert.Equal(t, code, p.Code)
		assert.NotEmpty(t, p.Brackets, code)
		assert.True(t, p.Brackets[len(p.Brackets)-1].Top, "%s: final bracket must be unbounded", code)
	}
}

func TestProfile_UnknownCode(t *testing.T) {
	_, err := Default().Profile("ZZ")

	var unknownErr *UnknownCodeError
	require.ErrorAs(t, err, &unknownErr)
	assert.Equal(t, "ZZ", unknownErr.Code)
}

func TestNew_RejectsMalformedBrackets(t *testing.T) {
	valid := []TaxBracket{
		bracket("0", "50000", "0.05"),
		topBracket("50000", "0.10"),
	}

	tests := []struct {
		name     string
		brackets []TaxBracket
	}{
		{"empty table", nil},
		{"nonzero first min", []TaxBracket{
			bracket("1000", "50000", "0.05"),
			topBracket("50000", "0.10"),
		}},
		{"gap between brackets", []TaxBracket{
			bracket("0", "50000", "0.05"),
			bracket("60000", "90000", "0.08"),
			topBracket("90000", "0.10"),
		}},
		{"bounded final bracket", []TaxBracket{
			bracket("0", "50000", "0.05"),
			bracket("50000", "90000", "0.10"),
		}},
		{"unbounded middle bracket", []TaxBracket{
			topBracket("0", "0.05"),
			topBracket("50000", "0.10"),
		}},
		{"empty range", []TaxBracket{
			bracket("0", "0", "0.05"),
			topBracket("0", "0.10"),
		}},
		{"negative rate", []TaxBracket{
			bracket("0", "50000", "-0.05"),
			topBracket("50000", "0.10"),
		}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			profiles := []*Profile{{Code: "XY", Name: "Test", Brackets: tc.brackets}}
			_, err := New(federal2024(), payroll2024(), benefits2024(), profiles)
			assert.Error(t, err)
		})
	}

	t.Run("valid table passes", func(t *testing.T) {
		profiles := []*Profile{{Code: "XY", Name: "Test", Brackets: valid}}
		_, err := New(federal2024(), payroll2024(), benefits2024(), profiles)
		assert.NoError(t, err)
	})
}

func TestNew_RejectsDuplicateAndBlankCodes(t *testing.T) {
	brackets := []TaxBracket{topBracket("0", "0.10")}

	_, err := New(federal2024(), payroll2024(), benefits2024(), []*Profile{
		{Code: "XY", Name: "First", Brackets: brackets},
		{Code: "XY", Name: "Second", Brackets: brackets},
	})
	assert.Error(t, err)

	_, err = New(federal2024(), payroll2024(), benefits2024(), []*Profile{
		{Name: "Nameless", Brackets: brackets},
	})
	assert.Error(t, err)
}
