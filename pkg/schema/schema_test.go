package schema

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func testSpec() *Spec {
	reminder := New().
		Field("fecha", Date().AllowNull()).
		Field("hora", String().AllowNull()).
		Field("activo", Bool())

	return New().
		Field("nota", String().Required().Max(1000)).
		Field("categoria", String().Required().Max(100)).
		Field("etiquetas", Array(String().Max(50)).Default([]string{})).
		Field("color", String().Default("#ffffff")).
		Field("autor", String().Required()).
		Field("recordatorio", Object(reminder).Default(map[string]interface{}{
			"fecha":  nil,
			"hora":   nil,
			"activo": false,
		})).
		Field("estado", String().Enum("pendiente", "en_progreso", "completada", "archivada").Default("pendiente")).
		Field("prioridad", String().Enum("baja", "media", "alta", "urgente").Default("media")).
		Field("fechaVencimiento", Date().AllowNull()).
		Field("adjuntos", Array(String().URI()).Default([]string{})).
		Field("colaboradores", Array(String()).Default([]string{}))
}

func violations(t *testing.T, err error) []string {
	t.Helper()
	var verr *ValidationError
	require.True(t, errors.As(err, &verr), "expected ValidationError, got %v", err)
	return verr.Violations
}

func TestValidateAppliesDefaults(t *testing.T) {
	out, err := testSpec().Validate(map[string]interface{}{
		"nota":      "comprar leche",
		"categoria": "hogar",
		"autor":     "Ana",
	})
	require.NoError(t, err)

	assert.Equal(t, "pendiente", out["estado"])
	assert.Equal(t, "media", out["prioridad"])
	assert.Equal(t, "#ffffff", out["color"])
	assert.Equal(t, []interface{}{}, out["etiquetas"])
	assert.Equal(t, []interface{}{}, out["adjuntos"])

	rec, ok := out["recordatorio"].(map[string]interface{})
	require.True(t, ok)
	assert.Nil(t, rec["fecha"])
	assert.Nil(t, rec["hora"])
	assert.Equal(t, false, rec["activo"])

	// no default, not provided: stays absent
	_, present := out["fechaVencimiento"]
	assert.False(t, present)
}

func TestValidateStripsUnknownFields(t *testing.T) {
	out, err := testSpec().Validate(map[string]interface{}{
		"nota":      "comprar leche",
		"categoria": "hogar",
		"autor":     "Ana",
		"isAdmin":   true,
		"_id":       "inyectado",
	})
	require.NoError(t, err)

	assert.NotContains(t, out, "isAdmin")
	assert.NotContains(t, out, "_id")
}

func TestValidateCollectsAllViolations(t *testing.T) {
	_, err := testSpec().Validate(map[string]interface{}{})
	vs := violations(t, err)

	// every required field is reported at once, not just the first
	require.Len(t, vs, 3)
	joined := strings.Join(vs, "\n")
	assert.Contains(t, joined, `"nota"`)
	assert.Contains(t, joined, `"categoria"`)
	assert.Contains(t, joined, `"autor"`)
}

func TestValidateMixedViolations(t *testing.T) {
	_, err := testSpec().Validate(map[string]interface{}{
		"nota":      strings.Repeat("x", 1001),
		"categoria": "hogar",
		"autor":     "Ana",
		"estado":    "volando",
		"adjuntos":  []interface{}{"not a uri"},
	})
	vs := violations(t, err)

	require.Len(t, vs, 3)
	joined := strings.Join(vs, "\n")
	assert.Contains(t, joined, "no debe exceder 1000 caracteres")
	assert.Contains(t, joined, `"estado" debe ser uno de: pendiente, en_progreso, completada, archivada`)
	assert.Contains(t, joined, `"adjuntos[0]" debe ser una URI válida`)
}

func TestValidateNestedObject(t *testing.T) {
	out, err := testSpec().Validate(map[string]interface{}{
		"nota":      "revisar informe",
		"categoria": "trabajo",
		"autor":     "Luis",
		"recordatorio": map[string]interface{}{
			"fecha":  "2026-09-15T10:00:00Z",
			"hora":   "10:00",
			"activo": true,
		},
	})
	require.NoError(t, err)

	rec := out["recordatorio"].(map[string]interface{})
	fecha, ok := rec["fecha"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, 2026, fecha.Year())
	assert.Equal(t, "10:00", rec["hora"])
	assert.Equal(t, true, rec["activo"])
}

func TestValidateNestedViolationNamesPath(t *testing.T) {
	_, err := testSpec().Validate(map[string]interface{}{
		"nota":      "revisar informe",
		"categoria": "trabajo",
		"autor":     "Luis",
		"recordatorio": map[string]interface{}{
			"fecha":  "no es una fecha",
			"activo": "tampoco un booleano",
		},
	})
	vs := violations(t, err)

	joined := strings.Join(vs, "\n")
	assert.Contains(t, joined, `"recordatorio.fecha" debe ser una fecha válida`)
	assert.Contains(t, joined, `"recordatorio.activo" debe ser un booleano`)
}

func TestValidateTypeChecks(t *testing.T) {
	tests := []struct {
		name    string
		input   map[string]interface{}
		message string
	}{
		{
			name: "string field with number",
			input: map[string]interface{}{
				"nota": 42, "categoria": "hogar", "autor": "Ana",
			},
			message: `"nota" debe ser un texto`,
		},
		{
			name: "array field with string",
			input: map[string]interface{}{
				"nota": "n", "categoria": "hogar", "autor": "Ana", "etiquetas": "sola",
			},
			message: `"etiquetas" debe ser una lista`,
		},
		{
			name: "object field with string",
			input: map[string]interface{}{
				"nota": "n", "categoria": "hogar", "autor": "Ana", "recordatorio": "mañana",
			},
			message: `"recordatorio" debe ser un objeto`,
		},
		{
			name: "null on non-nullable field",
			input: map[string]interface{}{
				"nota": nil, "categoria": "hogar", "autor": "Ana",
			},
			message: `"nota" no puede ser nulo`,
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := testSpec().Validate(tt.input)
			vs := violations(t, err)
			assert.Contains(t, strings.Join(vs, "\n"), tt.message)
		})
	}
}

func TestValidateTrimsStrings(t *testing.T) {
	out, err := testSpec().Validate(map[string]interface{}{
		"nota":      "  comprar leche  ",
		"categoria": " hogar ",
		"autor":     "Ana",
		"etiquetas": []interface{}{" compras ", "urgente "},
	})
	require.NoError(t, err)

	assert.Equal(t, "comprar leche", out["nota"])
	assert.Equal(t, "hogar", out["categoria"])
	assert.Equal(t, []interface{}{"compras", "urgente"}, out["etiquetas"])
}

func TestValidateAcceptsNullWhenAllowed(t *testing.T) {
	out, err := testSpec().Validate(map[string]interface{}{
		"nota":             "n",
		"categoria":        "hogar",
		"autor":            "Ana",
		"fechaVencimiento": nil,
	})
	require.NoError(t, err)

	v, present := out["fechaVencimiento"]
	assert.True(t, present)
	assert.Nil(t, v)
}

func TestValidateDoesNotMutateInput(t *testing.T) {
	input := map[string]interface{}{
		"nota":      "n",
		"categoria": "hogar",
		"autor":     "Ana",
		"extra":     "se queda",
	}
	_, err := testSpec().Validate(input)
	require.NoError(t, err)

	assert.Equal(t, "se queda", input["extra"])
	assert.Len(t, input, 4)
}

func TestValidateDefaultsAreCopies(t *testing.T) {
	spec := testSpec()

	first, err := spec.Validate(map[string]interface{}{
		"nota": "n", "categoria": "c", "autor": "a",
	})
	require.NoError(t, err)
	first["recordatorio"].(map[string]interface{})["activo"] = true

	second, err := spec.Validate(map[string]interface{}{
		"nota": "n", "categoria": "c", "autor": "a",
	})
	require.NoError(t, err)
	assert.Equal(t, false, second["recordatorio"].(map[string]interface{})["activo"])
}

func TestValidateDateFormats(t *testing.T) {
	out, err := testSpec().Validate(map[string]interface{}{
		"nota":             "n",
		"categoria":        "c",
		"autor":            "a",
		"fechaVencimiento": "2026-12-31",
	})
	require.NoError(t, err)

	fecha, ok := out["fechaVencimiento"].(time.Time)
	require.True(t, ok)
	assert.Equal(t, time.December, fecha.Month())
}
