package validation

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type leadFixture struct {
	Name          string   `validate:"required,max=120"`
	Phone         string   `validate:"omitempty,valid_phone"`
	Subject       string   `validate:"max=200"`
	TransportType string   `validate:"required,oneof=national international"`
	CargoWeight   *float64 `validate:"omitempty,gte=0"`
}

func TestCustomValidators(t *testing.T) {
	v := New()

	valid := []leadFixture{
		{Name: "Ion Popescu S.R.L.", Phone: "+373 68 727 975", Subject: "Mutare", TransportType: "national"},
		{Name: "SRL Trans_Log!", Phone: "068/727-975", Subject: "Marfă la 2-8°C ^ ©", TransportType: "international"},
	}
	for _, tc := range valid {
		assert.NoError(t, v.Struct(tc), tc.Name)
	}

	cases := map[string]leadFixture{
		"bad phone":   {Name: "Ion", Phone: "12ab", TransportType: "national"},
		"short phone": {Name: "Ion", Phone: "12 34", TransportType: "national"},
		"enum":        {Name: "Ion", TransportType: "air"},
	}
	for name, tc := range cases {
		t.Run(name, func(t *testing.T) {
			assert.Error(t, v.Struct(tc))
		})
	}
}

func TestNormalizePhone(t *testing.T) {
	assert.Equal(t, "+37368727975", NormalizePhone(" +373 (68) 727-975 "))
	assert.Equal(t, "068727975", NormalizePhone("068/727.975"))
}

func TestFormatValidationErrors(t *testing.T) {
	v := New()
	weight := -5.0
	err := v.Struct(leadFixture{TransportType: "air", CargoWeight: &weight})
	require.Error(t, err)

	messages := FormatValidationErrors(err)
	assert.Contains(t, messages, "Nume: Câmp obligatoriu")
	assert.Contains(t, messages, "Tipul transportului: Trebuie să fie una dintre: Național, Internațional")
	assert.Contains(t, messages, "Greutatea: Minim 0 kg")
}

func TestFormatValidationErrorsPassthrough(t *testing.T) {
	messages := FormatValidationErrors(assert.AnError)
	assert.Equal(t, []string{assert.AnError.Error()}, messages)
}
