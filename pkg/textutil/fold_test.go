package textutil_test

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Distriquim-api/pkg/textutil"
)

func TestFold(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Química Bogotá S.A.S.", "quimica bogota s.a.s."},
		{"DISTRIBUCIÓN  ANDINA", "distribucion andina"},
		{"  ácido   sulfúrico  ", "acido sulfurico"},
		{"Ñoño", "nono"},
		{"sin tildes", "sin tildes"},
		{"", ""},
	}
	for _, tc := range cases {
		assert.Equal(t, tc.want, textutil.Fold(tc.in), "Fold(%q)", tc.in)
	}
}
