package utils

import (
	"os"
	"testing"

	"iapt/config"

	"github.com/stretchr/testify/assert"
)

// The clients under test read the global config, which is only populated by
// LoadConfig in main. Tests assign fields on it directly.
func TestMain(m *testing.M) {
	config.AppConfig = &config.Config{}
	os.Exit(m.Run())
}

func TestSlugify(t *testing.T) {
	cases := []struct {
		in   string
		want string
	}{
		{"Introduction à l'IA", "introduction-a-l-ia"},
		{"Santé & Éducation", "sante-education"},
		{"  L'IA pour tous!  ", "l-ia-pour-tous"},
		{"Déjà vu -- encore", "deja-vu-encore"},
		{"100% Français, ça marche", "100-francais-ca-marche"},
	}

	for _, tc := range cases {
		assert.Equal(t, tc.want, Slugify(tc.in), "Slugify(%q)", tc.in)
	}
}
